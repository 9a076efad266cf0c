package commands

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mediavision/centrepage/internal/content"
	"github.com/mediavision/centrepage/internal/logger"
	"github.com/mediavision/centrepage/internal/output"
	"github.com/mediavision/centrepage/internal/property"
	"github.com/mediavision/centrepage/internal/seo"
	"github.com/mediavision/centrepage/internal/style"
)

// recordReport is one record's analysis in the SEO report.
type recordReport struct {
	Index           int          `json:"index" yaml:"index"`
	Property        string       `json:"property" yaml:"property"`
	City            string       `json:"city,omitempty" yaml:"city,omitempty"`
	MetaDescription string       `json:"meta_description" yaml:"meta_description"`
	Analysis        seo.Analysis `json:"analysis" yaml:"analysis"`
}

// reportOverview aggregates the per-record metrics.
type reportOverview struct {
	Properties       int     `json:"properties" yaml:"properties"`
	Analyzed         int     `json:"analyzed" yaml:"analyzed"`
	AverageScore     float64 `json:"average_score" yaml:"average_score"`
	AverageWordCount float64 `json:"average_word_count" yaml:"average_word_count"`
	WithAddress      int     `json:"with_address" yaml:"with_address"`
	WithCTA          int     `json:"with_cta" yaml:"with_cta"`
	GoodReadability  int     `json:"good_readability" yaml:"good_readability"`
}

type seoReport struct {
	GeneratedAt string         `json:"generated_at" yaml:"generated_at"`
	Records     []recordReport `json:"records" yaml:"records"`
	Overview    reportOverview `json:"overview" yaml:"overview"`
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze generated content for SEO quality",
	Long: `Analyze the generated content in an enriched spreadsheet.

Each record with content gets a word count, address and location
checks, keyword density, call-to-action detection, readability label,
and a 0-100 SEO score, plus a collection-level overview.

Examples:
  # Report on a previous generate run
  centrepage analyze -i enriched.csv

  # YAML report against a settings snapshot's keywords
  centrepage analyze -i enriched.csv --settings house-style.yaml --format yaml`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	flags := analyzeCmd.Flags()

	flags.StringP("input", "i", "", "enriched spreadsheet, .csv or .xlsx (required)")
	flags.String("settings", "", "settings snapshot supplying target keywords")
	flags.StringP("output", "o", "", "output file (default: stdout)")
	flags.String("format", "json", "output format: json, jsonl, yaml")

	_ = analyzeCmd.MarkFlagRequired("input")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	inputPath, _ := cmd.Flags().GetString("input")
	table, err := property.Load(inputPath)
	if err != nil {
		logError("%v", err)
		return err
	}

	cfg := style.Default()
	if settingsPath, _ := cmd.Flags().GetString("settings"); settingsPath != "" {
		if cfg, err = style.LoadFile(settingsPath); err != nil {
			logError("%v", err)
			return err
		}
	}

	report := buildReport(table, cfg.TargetKeywords)
	if report.Overview.Analyzed == 0 {
		err := fmt.Errorf("no generated content found in %s (run generate first)", inputPath)
		logError("%v", err)
		return err
	}

	logInfo("Analyzed %d of %d properties, average score %.0f%%",
		report.Overview.Analyzed, report.Overview.Properties, report.Overview.AverageScore)

	out := os.Stdout
	if outPath, _ := cmd.Flags().GetString("output"); outPath != "" {
		f, err := os.Create(outPath) //#nosec G304 -- CLI tool writes to user-specified output file
		if err != nil {
			logError("%v", err)
			return err
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	formatStr, _ := cmd.Flags().GetString("format")
	writer, err := output.NewWriter(out, output.Format(formatStr))
	if err != nil {
		logError("%v", err)
		return err
	}
	if err := writer.Write(report); err != nil {
		logError("%v", err)
		return err
	}
	if err := writer.Flush(); err != nil {
		logError("%v", err)
		return err
	}
	return nil
}

func buildReport(table *property.Table, keywords []string) seoReport {
	report := seoReport{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Overview:    reportOverview{Properties: len(table.Records)},
	}

	var totalScore, totalWords int
	for i, rec := range table.Records {
		text := content.Normalize(rec.Get(property.FieldContent))
		if text == "" {
			continue
		}

		a := seo.Analyze(text, rec, keywords)
		report.Records = append(report.Records, recordReport{
			Index:           i,
			Property:        rec.DisplayName(fmt.Sprintf("Property #%d", i)),
			City:            rec.Get(property.FieldCity),
			MetaDescription: seo.MetaDescription(rec, text),
			Analysis:        a,
		})

		report.Overview.Analyzed++
		totalScore += a.Score
		totalWords += a.WordCount
		if a.HasAddress {
			report.Overview.WithAddress++
		}
		if a.HasCTA {
			report.Overview.WithCTA++
		}
		if a.Readability == "Good" {
			report.Overview.GoodReadability++
		}
	}

	if n := report.Overview.Analyzed; n > 0 {
		report.Overview.AverageScore = math.Round(float64(totalScore)/float64(n)*10) / 10
		report.Overview.AverageWordCount = math.Round(float64(totalWords)/float64(n)*10) / 10
	}
	return report
}
