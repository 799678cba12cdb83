package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/deusflow/newspost/internal/app"
	"github.com/deusflow/newspost/internal/config"
	"github.com/deusflow/newspost/internal/logger"
	"github.com/deusflow/newspost/internal/scraper"
)

func newRootCmd() *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:           "newspost",
		Short:         "Turn news article URLs into social media post material",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Init(debug)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	root.AddCommand(serveCmd(&debug), extractCmd(), sitesCmd())
	return root
}

func serveCmd(debug *bool) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if addr != "" {
				cfg.HTTPAddr = addr
			}
			if *debug {
				cfg.Debug = true
			}
			return app.Run(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides HTTP_ADDR)")
	return cmd
}

func extractCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "extract <url>",
		Short: "Extract one article and print it as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			article, err := extractArticle(cmd, args[0], file)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(article)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "read the page from a saved HTML file instead of fetching it")
	return cmd
}

func extractArticle(cmd *cobra.Command, rawURL, file string) (*scraper.Article, error) {
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return scraper.Parse(rawURL, f)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	article, err := app.NewScraper(cfg).Extract(cmd.Context(), rawURL)
	if err != nil {
		// Keep the cause visible on the command line.
		var ee *scraper.ExtractionError
		if errors.As(err, &ee) && ee.Err != nil {
			return nil, fmt.Errorf("%s: %w", ee.Error(), ee.Err)
		}
		return nil, err
	}
	return article, nil
}

func sitesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sites",
		Short: "List hostnames with curated selectors",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			domains := scraper.SupportedDomains()
			slices.Sort(domains)
			for _, d := range domains {
				name, _ := scraper.LookupSourceName(d)
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %s\n", d, name)
			}
		},
	}
}
