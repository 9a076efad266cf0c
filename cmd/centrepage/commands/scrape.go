package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mediavision/centrepage/internal/logger"
	"github.com/mediavision/centrepage/internal/output"
	"github.com/mediavision/centrepage/internal/property"
	"github.com/mediavision/centrepage/internal/scraper"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrape property details from listing pages",
	Long: `Scrape office-space listing pages into property records.

Extraction is best-effort: each page yields whatever fields the
heuristics can find (name, address, contact, amenities, description).
Pages that fail to fetch are skipped with a warning. Fetches are
sequential with a fixed pause between requests.

Examples:
  # Scrape two listings into a CSV ready for generate
  centrepage scrape -u "https://example.com/a" -u "https://example.com/b" -o scraped.csv

  # URLs from a file, one per line
  centrepage scrape --urls-file listings.txt -o scraped.csv

  # Inspect what the heuristics found
  centrepage scrape -u "https://example.com/a" --format yaml`,
	RunE: runScrapeProperties,
}

func init() {
	rootCmd.AddCommand(scrapeCmd)

	flags := scrapeCmd.Flags()

	flags.StringSliceP("url", "u", nil, "listing URL (can be repeated)")
	flags.String("urls-file", "", "file of listing URLs, one per line")
	flags.StringP("output", "o", "", "output file (default: stdout)")
	flags.String("format", "", "output format: csv, xlsx, json, jsonl, yaml (default: by output extension, else csv)")
	flags.Duration("pause", scraper.DefaultPause, "pause between requests")
	flags.Duration("timeout", 30*time.Second, "request timeout")
	flags.String("user-agent", "", "override the request user agent")
}

func runScrapeProperties(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	urls, err := collectURLs(cmd)
	if err != nil {
		logError("%v", err)
		return err
	}
	if len(urls) == 0 {
		return cmd.Help()
	}

	pause, _ := cmd.Flags().GetDuration("pause")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	userAgent, _ := cmd.Flags().GetString("user-agent")

	s := scraper.New(scraper.FetcherConfig{
		UserAgent: userAgent,
		Timeout:   timeout,
	}, pause)

	logInfo("Scraping %d URLs", len(urls))
	records := s.ScrapeAll(ctx, urls)
	logInfo("Scraped %d of %d properties", len(records), len(urls))

	if len(records) == 0 {
		return fmt.Errorf("no properties scraped")
	}
	return writeScraped(cmd, records)
}

func collectURLs(cmd *cobra.Command) ([]string, error) {
	urls, _ := cmd.Flags().GetStringSlice("url")

	if path, _ := cmd.Flags().GetString("urls-file"); path != "" {
		data, err := os.ReadFile(path) //#nosec G304 -- CLI tool reads user-specified URL list
		if err != nil {
			return nil, fmt.Errorf("read urls file: %w", err)
		}
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			urls = append(urls, line)
		}
	}
	return urls, nil
}

func writeScraped(cmd *cobra.Command, records []property.Record) error {
	outPath, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		switch strings.ToLower(filepath.Ext(outPath)) {
		case ".xlsx":
			format = "xlsx"
		case ".json":
			format = "json"
		case ".jsonl":
			format = "jsonl"
		case ".yaml", ".yml":
			format = "yaml"
		default:
			format = "csv"
		}
	}

	table := property.FromRecords(records)

	switch format {
	case "csv":
		out := os.Stdout
		if outPath != "" {
			f, err := os.Create(outPath) //#nosec G304 -- CLI tool writes to user-specified output file
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()
			out = f
		}
		if err := table.ExportCSV(out, false, nil); err != nil {
			return err
		}
	case "xlsx":
		if outPath == "" {
			return fmt.Errorf("xlsx output requires --output")
		}
		if err := table.ExportXLSX(outPath, false, nil); err != nil {
			return err
		}
	case "json", "jsonl", "yaml":
		out := os.Stdout
		if outPath != "" {
			f, err := os.Create(outPath) //#nosec G304 -- CLI tool writes to user-specified output file
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()
			out = f
		}
		writer, err := output.NewWriter(out, output.Format(format))
		if err != nil {
			return err
		}
		for _, rec := range records {
			if err := writer.Write(rec); err != nil {
				return err
			}
		}
		if err := writer.Flush(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}

	if outPath != "" {
		logInfo("Wrote %d records to %s", len(records), outPath)
	}
	return nil
}
