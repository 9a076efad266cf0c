package commands

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mediavision/centrepage/internal/logger"
	"github.com/mediavision/centrepage/internal/output"
	"github.com/mediavision/centrepage/internal/style"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage style settings snapshots",
	Long: `Manage the style settings that steer content generation:
excluded terms, target keywords, example copies, and batching.

A snapshot written by "settings init" can be edited by hand and passed
to generate and analyze via --settings.`,
}

var settingsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default settings snapshot",
	RunE:  runSettingsInit,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved settings",
	RunE:  runSettingsShow,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsInitCmd)
	settingsCmd.AddCommand(settingsShowCmd)

	settingsInitCmd.Flags().StringP("output", "o", "centrepage-settings.yaml", "snapshot file to write (.yaml or .json)")

	settingsShowCmd.Flags().String("settings", "", "settings snapshot to load (default: built-in defaults)")
	settingsShowCmd.Flags().String("format", "yaml", "output format: json, yaml")
}

func runSettingsInit(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	outPath, _ := cmd.Flags().GetString("output")
	cfg := style.Default()
	if err := cfg.Save(outPath); err != nil {
		logError("%v", err)
		return err
	}
	logInfo("Wrote default settings to %s", outPath)
	return nil
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	cfg := style.Default()
	if settingsPath, _ := cmd.Flags().GetString("settings"); settingsPath != "" {
		var err error
		if cfg, err = style.LoadFile(settingsPath); err != nil {
			logError("%v", err)
			return err
		}
	}

	formatStr, _ := cmd.Flags().GetString("format")
	writer, err := output.NewWriter(os.Stdout, output.Format(formatStr))
	if err != nil {
		logError("%v", err)
		return err
	}
	if err := writer.Write(cfg); err != nil {
		logError("%v", err)
		return err
	}
	return writer.Flush()
}
