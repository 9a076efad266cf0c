package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mediavision/centrepage/internal/logger"
	"github.com/mediavision/centrepage/internal/property"
	"github.com/mediavision/centrepage/internal/seo"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Emit Schema.org JSON-LD for property records",
	Long: `Emit Schema.org OfficeSpace JSON-LD structured data.

Each selected record becomes one JSON-LD document ready to embed in a
listing page's <script type="application/ld+json"> tag.

Examples:
  # One record
  centrepage schema -i properties.csv --index 0

  # All records to a file
  centrepage schema -i properties.csv -o markup.jsonld`,
	RunE: runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)

	flags := schemaCmd.Flags()

	flags.StringP("input", "i", "", "property spreadsheet, .csv or .xlsx (required)")
	flags.Int("index", -1, "emit only this record index (default: all)")
	flags.StringP("output", "o", "", "output file (default: stdout)")

	_ = schemaCmd.MarkFlagRequired("input")
}

func runSchema(cmd *cobra.Command, args []string) error {
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

	records := table.Records
	if index, _ := cmd.Flags().GetInt("index"); index >= 0 {
		if index >= len(records) {
			err := fmt.Errorf("record index %d out of range (have %d records)", index, len(records))
			logError("%v", err)
			return err
		}
		records = records[index : index+1]
	}

	docs := make([]string, 0, len(records))
	for _, rec := range records {
		doc, err := seo.SchemaMarkup(rec)
		if err != nil {
			logError("%v", err)
			return err
		}
		docs = append(docs, doc)
	}

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

	if _, err := fmt.Fprintln(out, strings.Join(docs, "\n")); err != nil {
		logError("%v", err)
		return err
	}
	return nil
}
