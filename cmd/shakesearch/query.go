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

	"github.com/pdiddy/shakesearch/internal/client"
	"github.com/pdiddy/shakesearch/internal/render"
	"github.com/pdiddy/shakesearch/pkg/types"
)

var queryCmd = &cobra.Command{
	Use:   "query [terms...]",
	Short: "Search a running shakesearch server",
	Long: `Query submits a search to a shakesearch server and prints the results.
Words are matched anywhere in the text, case-insensitively; wrap words in
double quotes to search for a phrase.

  shakesearch query '"to be" question'

Output is plain text by default; --format html prints the rendered content
region and --format json prints the raw results.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().String("server", "", "search server base URL (default http://localhost:3001)")
	queryCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 10s)")
	queryCmd.Flags().String("format", "text", "output format: text, html or json")

	viper.BindPFlag("client.base_url", queryCmd.Flags().Lookup("server"))
	viper.BindPFlag("client.timeout", queryCmd.Flags().Lookup("timeout"))

	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(viper.GetViper())
	format, _ := cmd.Flags().GetString("format")

	renderer, err := render.New(cfg.Render)
	if err != nil {
		return err
	}
	var region render.Buffer
	submitter := client.New(cfg.Client, renderer, &region)

	results, err := submitter.Submit(context.Background(), strings.Join(args, " "))
	if err != nil {
		return err
	}

	return writeQueryOutput(results, &region, format)
}

func writeQueryOutput(results []types.SearchResult, region *render.Buffer, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "html":
		fmt.Println(region.String())
		return nil
	case "text", "":
		if len(results) == 0 {
			fmt.Println("No results found.")
			return nil
		}
		text, err := render.Text(region.Markup())
		if err != nil {
			return err
		}
		fmt.Print(text)
		fmt.Printf("\n%d fragments in %d works\n", types.FragmentCount(results), len(results))
		return nil
	default:
		return fmt.Errorf("unsupported format %q: use text, html or json", format)
	}
}
