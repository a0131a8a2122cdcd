package common

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/joseph-ayodele/invoice-organizer/constants"
	"github.com/joseph-ayodele/invoice-organizer/internal/entity"
)

// Config holds all application configuration.
type Config struct {
	InputFolder  string
	OutputFolder string

	NamingScheme    entity.NamingScheme
	OrganizeByMonth bool
	DryRun          bool
	Recursive       bool
	DateOrder       constants.DateOrder
	LabelsFile      string
	HistoryDBPath   string
	LogLevel        slog.Level
	SkipHidden      bool
	MinTextLen      int
}

// LoadConfig reads configuration from an optional invfrog.yaml plus
// INVFROG_* environment overrides. Flag values are bound by the CLI layer
// before this runs, so precedence is flags > env > file > defaults.
func LoadConfig(v *viper.Viper) Config {
	if v == nil {
		v = viper.New()
	}
	v.SetConfigName("invfrog")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "invfrog"))
	}
	v.SetEnvPrefix("INVFROG")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault("naming-scheme", string(entity.SchemeInvoiceNumber))
	v.SetDefault("organize-by-month", false)
	v.SetDefault("dry-run", true)
	v.SetDefault("recursive", false)
	v.SetDefault("date-order", string(constants.DateOrderDayFirst))
	v.SetDefault("skip-hidden", true)
	v.SetDefault("min-text-len", 20)
	v.SetDefault("log-level", "INFO")
	v.SetDefault("history-db", defaultHistoryPath())

	// Config file is optional; env and flags still apply without it.
	_ = v.ReadInConfig()

	return Config{
		InputFolder:     v.GetString("input"),
		OutputFolder:    v.GetString("output"),
		NamingScheme:    entity.NamingScheme(v.GetString("naming-scheme")),
		OrganizeByMonth: v.GetBool("organize-by-month"),
		DryRun:          v.GetBool("dry-run"),
		Recursive:       v.GetBool("recursive"),
		DateOrder:       constants.DateOrder(v.GetString("date-order")),
		LabelsFile:      v.GetString("labels-file"),
		HistoryDBPath:   v.GetString("history-db"),
		LogLevel:        ParseLogLevel(v.GetString("log-level")),
		SkipHidden:      v.GetBool("skip-hidden"),
		MinTextLen:      v.GetInt("min-text-len"),
	}
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "invfrog_history.db"
	}
	return filepath.Join(home, ".config", "invfrog", "history.db")
}

// ParseLogLevel maps a level name to a slog level, defaulting to INFO.
func ParseLogLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Validate checks the run preconditions that must fail before any per-file
// processing starts.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.InputFolder) == "" {
		return NewAppError("CONFIG_ERROR", "input folder is required", ErrInvalidInput)
	}
	info, err := os.Stat(c.InputFolder)
	if err != nil || !info.IsDir() {
		return NewAppError("CONFIG_ERROR", "input folder is not a readable directory", ErrInvalidInput)
	}
	switch c.NamingScheme {
	case entity.SchemeInvoiceNumber, entity.SchemeVendorName, entity.SchemeOriginalFilename:
	default:
		return NewAppError("CONFIG_ERROR", "unknown naming scheme: "+string(c.NamingScheme), ErrInvalidInput)
	}
	switch c.DateOrder {
	case constants.DateOrderDayFirst, constants.DateOrderMonthFirst:
	default:
		return NewAppError("CONFIG_ERROR", "unknown date order: "+string(c.DateOrder), ErrInvalidInput)
	}
	return nil
}

// EffectiveOutput returns the output folder, defaulting to the input folder
// when none was configured.
func (c *Config) EffectiveOutput() string {
	if strings.TrimSpace(c.OutputFolder) == "" {
		return c.InputFolder
	}
	return c.OutputFolder
}
