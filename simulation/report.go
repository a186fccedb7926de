package simulation

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/fxamacker/cbor/v2"
)

// Report output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCBOR = "cbor"
)

// WriteReport encodes the report to w in the requested format.
func WriteReport(w io.Writer, report *BatchReport, format string) error {
	switch format {
	case FormatText:
		return writeText(w, report)
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(report); err != nil {
			return fmt.Errorf("encode json report: %w", err)
		}
		return nil
	case FormatCBOR:
		// Canonical encoding keeps the outcome map ordering stable.
		encMode, err := cbor.CanonicalEncOptions().EncMode()
		if err != nil {
			return fmt.Errorf("build cbor encoder: %w", err)
		}
		if err := encMode.NewEncoder(w).Encode(report); err != nil {
			return fmt.Errorf("encode cbor report: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

func writeText(w io.Writer, report *BatchReport) error {
	outcomes := make([]string, 0, len(report.Outcomes))
	for outcome := range report.Outcomes {
		outcomes = append(outcomes, outcome)
	}
	sort.Strings(outcomes)

	lines := []string{
		"Auction Simulation Report",
		"",
		fmt.Sprintf("  Batch:              %s", report.ID),
		fmt.Sprintf("  Auctions:           %d (quantity %d, cash %d)", report.Auctions, report.Quantity, report.Cash),
		fmt.Sprintf("  Wins:               %d", report.Wins),
		fmt.Sprintf("  Losses:             %d", report.Losses),
		fmt.Sprintf("  Ties:               %d", report.Ties),
		fmt.Sprintf("  Win Rate:           %s", report.WinRate),
		fmt.Sprintf("  Avg Units Won:      %s", report.AvgUnits),
		fmt.Sprintf("  Avg Cash Left:      %s", report.AvgCashLeft),
		fmt.Sprintf("  Processing Time:    %dms", report.ProcessingTime),
		"",
		"Outcomes:",
	}
	for _, outcome := range outcomes {
		lines = append(lines, fmt.Sprintf("  - %-20s %d", outcome, report.Outcomes[outcome]))
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write text report: %w", err)
		}
	}
	return nil
}
