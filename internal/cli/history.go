package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/invoice-organizer/internal/common"
	"github.com/joseph-ayodele/invoice-organizer/internal/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent run summaries",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "max runs to show")
	historyCmd.Flags().String("history-db", "", "path of the run-history database")
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := common.LoadConfig(vp)
	dbPath := cfg.HistoryDBPath
	if flagPath, _ := cmd.Flags().GetString("history-db"); flagPath != "" {
		dbPath = flagPath
	}
	store, err := history.Open(ctx, dbPath, nil)
	if err != nil {
		return common.WrapError(err, "open history")
	}
	defer func() { _ = store.Close() }()

	runs, err := store.ListRuns(ctx, historyLimit)
	if err != nil {
		return common.WrapError(err, "list runs")
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("Runs (%d):\n\n", len(runs))
	for _, r := range runs {
		fmt.Printf("- %s  %s  %s\n", r.StartedAt.Format("2006-01-02 15:04"), r.Mode, r.InputFolder)
		fmt.Printf("  scheme=%s total=%d ok=%d partial=%d skipped=%d copied=%d\n",
			r.Scheme, r.Total, r.OK, r.Partial, r.Skipped, r.Copied)
	}
	return nil
}
