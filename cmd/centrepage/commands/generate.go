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

	"github.com/mediavision/centrepage/internal/content"
	"github.com/mediavision/centrepage/internal/generator"
	"github.com/mediavision/centrepage/internal/logger"
	"github.com/mediavision/centrepage/internal/pipeline"
	"github.com/mediavision/centrepage/internal/property"
	"github.com/mediavision/centrepage/internal/seo"
	"github.com/mediavision/centrepage/internal/session"
	"github.com/mediavision/centrepage/internal/style"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate SEO content for property records",
	Long: `Generate marketing copy for every property in a spreadsheet.

Records are processed in contiguous batches with a configurable pause
between batches of remote API calls. Records that already have content
are skipped, so an interrupted run can be resumed by re-running with
the previous output as input.

Examples:
  # Generate for all records, export CSV with SEO columns
  centrepage generate -i properties.csv -o enriched.csv

  # Excel in, Excel out
  centrepage generate -i properties.xlsx -o enriched.xlsx

  # Deterministic template content, no API calls
  centrepage generate -i properties.csv --test

  # Regenerate a single record
  centrepage generate -i enriched.csv -o enriched.csv --index 3 --force

  # Style constraints from a settings snapshot
  centrepage generate -i properties.csv --settings house-style.yaml`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	flags := generateCmd.Flags()

	flags.StringP("input", "i", "", "property spreadsheet, .csv or .xlsx (required)")
	flags.StringP("output", "o", "", "output file (default: CSV to stdout)")
	flags.String("format", "", "output format: csv, xlsx (default: by output extension)")
	flags.Bool("include-seo", true, "append SEO metric columns to the export")

	// Backend settings
	flags.StringP("provider", "p", "", "content backend: anthropic, openai, template (auto-detects from env vars)")
	flags.StringP("model", "m", "", "model name (provider-specific)")
	flags.StringP("api-key", "k", "", "API key (or use env var)")
	flags.String("base-url", "", "custom API base URL")
	flags.Bool("test", false, "use the deterministic template backend")
	flags.Duration("timeout", 60*time.Second, "request timeout per API call")

	// Style and batching
	flags.String("settings", "", "settings snapshot to load (.yaml or .json)")
	flags.Int("batch-size", 5, "records per batch")
	flags.Duration("delay", time.Second, "pause between batches of remote calls")
	flags.StringSlice("keyword", nil, "target keyword (can be repeated; replaces defaults)")
	flags.StringSlice("exclude", nil, "term the copy must not contain (can be repeated)")

	// Single-record regeneration
	flags.Int("index", -1, "regenerate only this record index (0-based)")
	flags.Bool("force", false, "with --index, replace existing content")

	_ = generateCmd.MarkFlagRequired("input")

	_ = viper.BindPFlag("provider", flags.Lookup("provider"))
	_ = viper.BindPFlag("model", flags.Lookup("model"))
	_ = viper.BindPFlag("api_key", flags.Lookup("api-key"))
	_ = viper.BindPFlag("base_url", flags.Lookup("base-url"))
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	inputPath, _ := cmd.Flags().GetString("input")
	table, err := property.Load(inputPath)
	if err != nil {
		logError("%v", err)
		return err
	}
	logInfo("Loaded %d properties from %s", len(table.Records), inputPath)

	sess := session.New()
	if err := applyStyleFlags(cmd, sess); err != nil {
		logError("%v", err)
		return err
	}
	sess.LoadTable(table)

	// Records loaded from a previous export already carry their content;
	// seed the session so the pipeline skips them.
	for i, rec := range table.Records {
		if text := rec.Get(property.FieldContent); text != "" {
			sess.SetContent(i, text, seo.MetaDescription(rec, text))
		}
	}

	backend, err := buildBackend(cmd, sess)
	if err != nil {
		logError("%v", err)
		return err
	}
	logInfo("Using %s backend", backend.Name())

	runner := pipeline.New(backend)

	if index, _ := cmd.Flags().GetInt("index"); index >= 0 {
		if err := regenerateOne(ctx, runner, sess, index, cmd); err != nil {
			logError("%v", err)
			return err
		}
	} else {
		notices, err := runner.Run(ctx, sess, func(completed, total int) {
			logger.Debug("generation progress", "completed", completed, "total", total)
		})
		for _, n := range notices {
			logInfo("Failed: %s", n)
		}
		if err != nil {
			logError("generation stopped: %v", err)
			return err
		}
		logInfo("Generated content for %d of %d properties", len(sess.Content()), len(table.Records))
	}

	auditExcludedTerms(sess)

	if err := exportTable(cmd, sess); err != nil {
		logError("%v", err)
		return err
	}
	return nil
}

// applyStyleFlags resolves the style configuration: settings snapshot
// first, then explicit flags on top.
func applyStyleFlags(cmd *cobra.Command, sess *session.Session) error {
	if settingsPath, _ := cmd.Flags().GetString("settings"); settingsPath != "" {
		cfg, err := style.LoadFile(settingsPath)
		if err != nil {
			return err
		}
		sess.Style = cfg
		logInfo("Loaded settings from %s", settingsPath)
	}

	if cmd.Flags().Changed("batch-size") {
		sess.Style.BatchSize, _ = cmd.Flags().GetInt("batch-size")
	}
	if cmd.Flags().Changed("delay") {
		sess.Style.Delay, _ = cmd.Flags().GetDuration("delay")
	}
	if keywords, _ := cmd.Flags().GetStringSlice("keyword"); len(keywords) > 0 {
		sess.Style.SetTargetKeywords(keywords)
	}
	excluded, _ := cmd.Flags().GetStringSlice("exclude")
	for _, term := range excluded {
		sess.Style.AddExcludedTerm(term)
	}

	return sess.Style.Validate()
}

// buildBackend picks and constructs the content backend. With no usable
// API key the template backend stands in so a run always produces
// output.
func buildBackend(cmd *cobra.Command, sess *session.Session) (generator.Provider, error) {
	name := viper.GetString("provider")
	apiKey := viper.GetString("api_key")

	if name == "" {
		detected, detectedKey := generator.Detect()
		name = detected
		if apiKey == "" {
			apiKey = detectedKey
		}
	}

	if test, _ := cmd.Flags().GetBool("test"); test {
		name = "template"
	} else if name != "template" && apiKey == "" {
		logger.Warn("no API key available, falling back to template content", "provider", name)
		name = "template"
	}

	cfg := generator.DefaultConfig()
	cfg.APIKey = apiKey
	cfg.Model = viper.GetString("model")
	cfg.BaseURL = viper.GetString("base_url")
	cfg.Observer = sess
	if timeout, _ := cmd.Flags().GetDuration("timeout"); timeout > 0 {
		cfg.Timeout = timeout
	}

	return generator.New(name, cfg)
}

func regenerateOne(ctx context.Context, runner *pipeline.Runner, sess *session.Session, index int, cmd *cobra.Command) error {
	force, _ := cmd.Flags().GetBool("force")
	if _, done := sess.ContentFor(index); done && !force {
		return fmt.Errorf("record %d already has content (use --force to replace)", index)
	}
	if force {
		sess.DropContent(index)
	}
	if err := runner.GenerateOne(ctx, sess, index); err != nil {
		return err
	}
	name := sess.Table.Records[index].DisplayName(fmt.Sprintf("Property #%d", index))
	logInfo("Regenerated content for %s", name)
	return nil
}

// auditExcludedTerms warns about configured terms that slipped into the
// generated copy. The prompt asks the backend to avoid them; this is
// the after-the-fact check.
func auditExcludedTerms(sess *session.Session) {
	if len(sess.Style.ExcludedTerms) == 0 {
		return
	}
	for i, rec := range sess.Table.Records {
		text, ok := sess.ContentFor(i)
		if !ok {
			continue
		}
		if found := content.FindExcludedTerms(text, sess.Style.ExcludedTerms); len(found) > 0 {
			logger.Warn("generated content contains excluded terms",
				"index", i,
				"property", rec.DisplayName(fmt.Sprintf("Property #%d", i)),
				"terms", strings.Join(found, ", "))
		}
	}
}

func exportTable(cmd *cobra.Command, sess *session.Session) error {
	outPath, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("format")
	includeSEO, _ := cmd.Flags().GetBool("include-seo")

	if format == "" {
		if strings.EqualFold(filepath.Ext(outPath), ".xlsx") {
			format = "xlsx"
		} else {
			format = "csv"
		}
	}

	enrich := func(rec property.Record, text string) (string, int, int, int, bool) {
		a := seo.Analyze(text, rec, sess.Style.TargetKeywords)
		return seo.MetaDescription(rec, text), a.WordCount, a.Score, a.LocationMentions, a.HasCTA
	}

	switch format {
	case "xlsx":
		if outPath == "" {
			return fmt.Errorf("xlsx output requires --output")
		}
		if err := sess.Table.ExportXLSX(outPath, includeSEO, enrich); err != nil {
			return err
		}
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
		if err := sess.Table.ExportCSV(out, includeSEO, enrich); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported export format %q (use csv or xlsx)", format)
	}

	if outPath != "" {
		logInfo("Wrote %d records to %s", len(sess.Table.Records), outPath)
	}
	return nil
}
