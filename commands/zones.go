package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/penwyp/go-entparser/internal/core/zone"
	"github.com/penwyp/go-entparser/internal/util"
	"github.com/spf13/cobra"
)

var zonesFilter string

var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "List the time zones accepted by --timezone",
	Long: `Lists the zone identifiers found in the host zone database together with
their current offset from UTC. "Local" is always accepted as well.

Examples:
  go-entparser zones                  # All zones
  go-entparser zones --filter europe  # Zones whose name contains "europe"`,
	RunE: runZones,
}

func init() {
	rootCmd.AddCommand(zonesCmd)

	zonesCmd.Flags().StringVar(&zonesFilter, "filter", "",
		"Only list zones whose identifier contains this text (case-insensitive)")
}

func runZones(cmd *cobra.Command, args []string) error {
	infos, err := zone.Available(time.Now())
	if err != nil {
		// Only UTC is listed without a zone database
		util.LogWarnf("Zone database not found: %v", err)
	}

	cells := zoneCells(infos, zonesFilter)
	out := cmd.OutOrStdout()
	if len(cells) == 0 {
		fmt.Fprintln(out, util.FormatWarning("No matching time zones"))
		return nil
	}

	fmt.Fprintln(out, util.FormatHeaderTitle(fmt.Sprintf("Time zones (%d)", len(cells))))
	for _, line := range util.Columns(cells, util.TerminalWidth()) {
		fmt.Fprintln(out, line)
	}
	return nil
}

func zoneCells(infos []zone.Info, filter string) []string {
	filter = strings.ToLower(strings.TrimSpace(filter))
	cells := make([]string, 0, len(infos))
	for _, info := range infos {
		if filter != "" && !strings.Contains(strings.ToLower(info.ID), filter) {
			continue
		}
		cells = append(cells, fmt.Sprintf("%s (%s)", info.ID, util.FormatOffset(info.Offset)))
	}
	return cells
}
