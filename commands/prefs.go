package commands

import (
	"fmt"

	"github.com/penwyp/go-entparser/internal/core/zone"
	"github.com/penwyp/go-entparser/internal/prefs"
	"github.com/penwyp/go-entparser/internal/util"
	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the source, archive and time zone as preferences",
	Long: `Writes the effective settings (saved preferences overridden by any flags
given) to the preferences file so later runs use them by default.

Example:
  go-entparser save --source ~/logs --timezone Europe/London`,
	RunE: runSave,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default source and archive directories",
	Long: `Resets the saved source and archive directories to their defaults and saves
the preferences. The saved time zone is kept.`,
	RunE: runReset,
}

func init() {
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(resetCmd)
}

func runSave(cmd *cobra.Command, args []string) error {
	if err := initLogging(); err != nil {
		return err
	}

	p := loadSettings(cmd)
	if _, err := zone.Load(p.TimeZone); err != nil {
		return err
	}
	if err := prefs.Save(prefsPath, p); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}

	util.LogInfo("Preferences saved",
		util.F("source", p.Source),
		util.F("archive", p.Archive),
		util.F("timezone", p.TimeZone))
	printPrefs(cmd, "Preferences saved", p)
	return nil
}

func runReset(cmd *cobra.Command, args []string) error {
	if err := initLogging(); err != nil {
		return err
	}

	p, err := prefs.Load(prefsPath)
	if err != nil {
		util.LogWarnf("Using default preferences: %v", err)
	}
	p = p.Reset()
	if err := prefs.Save(prefsPath, p); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}

	util.LogInfo("Preferences reset", util.F("timezone", p.TimeZone))
	printPrefs(cmd, "Preferences reset", p)
	return nil
}

func printPrefs(cmd *cobra.Command, title string, p prefs.Prefs) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, util.FormatSuccess(title))
	fmt.Fprintf(out, "  %s %s\n", util.PadString("Source:", 10, true), p.Source)
	fmt.Fprintf(out, "  %s %s\n", util.PadString("Archive:", 10, true), p.Archive)
	fmt.Fprintf(out, "  %s %s\n", util.PadString("Time zone:", 10, true), p.TimeZone)
}
