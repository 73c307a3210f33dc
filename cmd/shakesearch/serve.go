// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/shakesearch/internal/corpus"
	"github.com/pdiddy/shakesearch/internal/logger"
	"github.com/pdiddy/shakesearch/internal/render"
	"github.com/pdiddy/shakesearch/internal/searchlog"
	"github.com/pdiddy/shakesearch/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Index the corpus and serve the search page and API",
	Long: `Serve loads the complete works file, builds a suffix-array index per work,
and serves:

  /            search page (renders server-side when ?query= is given)
  /search?q=   JSON array of {work_title, fragments}
  /results?q=  rendered result markup
  /metrics     Prometheus metrics

Every query is recorded in the search log unless --no-log is given.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :$PORT or :3001)")
	serveCmd.Flags().String("corpus", "", "complete works file (default completeworks.txt)")
	serveCmd.Flags().Int("window", 0, "bytes of context around each hit (default 250)")
	serveCmd.Flags().Int("max-fragments", 0, "maximum fragments per work (0 = unlimited)")
	serveCmd.Flags().Float64("rate-limit", 0, "requests per second accepted (0 = unlimited)")
	serveCmd.Flags().Bool("trusted", false, "insert fragments without sanitising")
	serveCmd.Flags().Bool("no-log", false, "do not record queries in the search log")

	viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	viper.BindPFlag("corpus.path", serveCmd.Flags().Lookup("corpus"))
	viper.BindPFlag("corpus.window", serveCmd.Flags().Lookup("window"))
	viper.BindPFlag("corpus.max_fragments", serveCmd.Flags().Lookup("max-fragments"))
	viper.BindPFlag("server.rate_limit", serveCmd.Flags().Lookup("rate-limit"))
	viper.BindPFlag("render.trusted", serveCmd.Flags().Lookup("trusted"))

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(viper.GetViper())
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := logger.Track(ctx, "loading corpus "+cfg.Corpus.Path)
	index, err := corpus.Load(cfg.Corpus)
	if err != nil {
		return err
	}
	done()
	logger.For(ctx).Infof("indexed %d works", len(index.Works))

	renderer, err := render.New(cfg.Render)
	if err != nil {
		return err
	}

	var recorder server.Recorder
	if noLog, _ := cmd.Flags().GetBool("no-log"); !noLog && cfg.SearchLog.Path != "" {
		store, err := searchlog.Open(cfg.SearchLog)
		if err != nil {
			return err
		}
		defer store.Close()
		recorder = store
	}

	return server.New(cfg.Server, index, renderer, recorder).Run(ctx)
}
