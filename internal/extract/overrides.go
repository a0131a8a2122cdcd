package extract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/joseph-ayodele/invoice-organizer/constants"
)

// labelOverrides is the YAML shape of a custom labels file. Any list that
// is present replaces the corresponding built-in table wholesale.
type labelOverrides struct {
	InvoiceNumberLabels []string `yaml:"invoice_number_labels"`
	DateLabels          []string `yaml:"date_labels"`
	TotalLabels         []string `yaml:"total_labels"`
	TotalExclusions     []string `yaml:"total_exclusions"`
	VendorLabels        []string `yaml:"vendor_labels"`
	CompanySuffixes     []string `yaml:"company_suffixes"`
	DateOrder           string   `yaml:"date_order"`
}

// LoadTables builds the run's tables: the defaults for the given order,
// overlaid with a custom labels file when one is configured. An invalid
// file is a configuration error and fails the run before any file is
// processed.
func LoadTables(path string, order constants.DateOrder) (*Tables, error) {
	if path == "" {
		return DefaultTables(order), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read labels file: %w", err)
	}

	var generic any
	if err := yaml.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("parse labels file: %w", err)
	}
	if err := validateAgainstSchema(BuildLabelsSchema(), generic); err != nil {
		return nil, fmt.Errorf("labels file %s: %w", path, err)
	}

	var ov labelOverrides
	if err := yaml.Unmarshal(raw, &ov); err != nil {
		return nil, fmt.Errorf("decode labels file: %w", err)
	}

	t := Tables{
		InvoiceNumberLabels: pick(ov.InvoiceNumberLabels, constants.InvoiceNumberLabels),
		DateLabels:          pick(ov.DateLabels, constants.DateLabels),
		TotalLabels:         pick(ov.TotalLabels, constants.TotalLabels),
		TotalExclusions:     pick(ov.TotalExclusions, constants.TotalExclusions),
		VendorLabels:        pick(ov.VendorLabels, constants.VendorLabels),
		CompanySuffixes:     pick(ov.CompanySuffixes, constants.CompanySuffixes),
		DateOrder:           order,
	}
	if ov.DateOrder != "" {
		t.DateOrder = constants.DateOrder(ov.DateOrder)
	}
	return NewTables(t), nil
}

func pick(override, fallback []string) []string {
	if len(override) > 0 {
		return override
	}
	return fallback
}

// validateAgainstSchema validates a decoded document against schemaMap.
func validateAgainstSchema(schemaMap map[string]any, doc any) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("labels.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("labels.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	// YAML decodes map keys as interface{}; round-trip through JSON to get
	// the map[string]any shape the validator expects.
	jb, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("labels file is not schema-checkable: %w", err)
	}
	var v any
	if err := json.Unmarshal(jb, &v); err != nil {
		return fmt.Errorf("normalize labels file: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("labels file does not match schema: %w", err)
	}
	return nil
}
