// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/shakesearch/internal/searchlog"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List queries recorded by the server",
	Long: `History reads the search log written by serve and lists the most recent
queries, or the most frequent ones with --top. Use --export to write the
whole log as YAML.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Bool("top", false, "list the most frequent queries")
	historyCmd.Flags().Int("limit", 0, "maximum rows (0 = use default)")
	historyCmd.Flags().Bool("json", false, "output as JSON")
	historyCmd.Flags().String("export", "", "write the whole log as YAML to this file (- for stdout)")
	historyCmd.Flags().String("log", "", "search log database (default data/searchlog.db)")

	viper.BindPFlag("search_log.path", historyCmd.Flags().Lookup("log"))

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(viper.GetViper())

	store, err := searchlog.Open(cfg.SearchLog)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()

	if path, _ := cmd.Flags().GetString("export"); path != "" {
		return exportHistory(ctx, store, path)
	}

	limit, _ := cmd.Flags().GetInt("limit")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if top, _ := cmd.Flags().GetBool("top"); top {
		counts, err := store.Top(ctx, limit)
		if err != nil {
			return err
		}
		if jsonOutput {
			return writeJSON(counts)
		}
		formatTop(counts)
		return nil
	}

	entries, err := store.Recent(ctx, limit)
	if err != nil {
		return err
	}
	if jsonOutput {
		return writeJSON(entries)
	}
	formatRecent(entries)
	return nil
}

func exportHistory(ctx context.Context, store *searchlog.Store, path string) error {
	if path == "-" {
		return store.ExportYAML(ctx, os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := store.ExportYAML(ctx, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Exported to %s\n", path)
	return nil
}

func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatRecent(entries []searchlog.Entry) {
	if len(entries) == 0 {
		fmt.Println("No searches recorded.")
		return
	}

	fmt.Printf("%-19s  %-40s  %5s  %9s  %8s\n", "When", "Query", "Works", "Fragments", "Took")
	fmt.Println(strings.Repeat("-", 89))
	for _, e := range entries {
		fmt.Printf("%-19s  %-40s  %5d  %9d  %8s\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04:05"), truncate(e.Query, 40),
			e.Works, e.Fragments, e.Duration)
	}
	fmt.Printf("\n%d searches\n", len(entries))
}

func formatTop(counts []searchlog.QueryCount) {
	if len(counts) == 0 {
		fmt.Println("No searches recorded.")
		return
	}

	fmt.Printf("%-4s  %-40s  %5s  %s\n", "Rank", "Query", "Count", "Last searched")
	fmt.Println(strings.Repeat("-", 75))
	for i, c := range counts {
		fmt.Printf("%-4d  %-40s  %5d  %s\n",
			i+1, truncate(c.Query, 40), c.Count, c.LastSeen.Local().Format("2006-01-02 15:04:05"))
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
