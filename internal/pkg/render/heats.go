package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/swimboard/swimboard/internal/pkg/view"
)

var (
	eventTitleColor = color.New(color.FgCyan, color.Bold)
	heatTitleColor  = color.New(color.FgYellow, color.Bold)
	noTimeColor     = color.New(color.FgRed)
	firstColor      = color.New(color.FgYellow, color.Bold)
	secondColor     = color.New(color.FgHiWhite, color.Bold)
	thirdColor      = color.New(color.FgHiRed, color.Bold)
)

// RenderHeatReport prints the heat and lane assignment report.
func RenderHeatReport(out io.Writer, events []view.EventView) {
	for _, ev := range events {
		fmt.Fprintf(out, "\n%s\n", strings.Repeat("─", 100))
		eventTitleColor.Fprintf(out, "EVENT #%s: %s (%s)\n",
			ev.Event.EventNumberLabel(), ev.Event.Label(), strings.ToUpper(ev.Event.EventType()))
		fmt.Fprintf(out, "%s\n", strings.Repeat("─", 100))

		if !ev.HasDetails {
			fmt.Fprintln(out, "  Heat and lane details not available in cache")
			continue
		}

		for _, heat := range ev.Heats {
			heatTitleColor.Fprintf(out, "\n  Heat %s:\n", heat.Label)
			fmt.Fprintf(out, "  %-6s %-18s %-46s %-11s %-11s %s\n", "Lane", "Team", "Athlete(s)", "Seed", "Result", "Place")
			fmt.Fprintf(out, "  %s\n", strings.Repeat("-", 96))

			for _, record := range heat.Records {
				fmt.Fprintf(out, "  %-6d %-18s %-46s %-11s %s %s\n",
					record.Lane,
					teamColumn(record),
					athleteColumn(record),
					record.SeedTime,
					resultColumn(record),
					placeColumn(record.Place),
				)
			}
		}
	}
	fmt.Fprintf(out, "\n%s\n", strings.Repeat("=", 100))
}

func teamColumn(record view.RecordView) string {
	if record.RelayTeamName != "" {
		return record.RelayTeamName
	}
	return record.Team
}

func athleteColumn(record view.RecordView) string {
	if record.RelayTeamName == "" {
		return record.AthleteName
	}
	if len(record.Swimmers) == 0 {
		return "No swimmers assigned"
	}
	parts := make([]string, 0, len(record.Swimmers))
	for _, swimmer := range record.Swimmers {
		parts = append(parts, fmt.Sprintf("%d:%s", swimmer.Position, swimmer.Name))
	}
	return strings.Join(parts, ", ")
}

func resultColumn(record view.RecordView) string {
	value := fmt.Sprintf("%-11s", record.ResultTime)
	if !record.HasResult {
		return noTimeColor.Sprint(value)
	}
	return value
}

func placeColumn(place view.Place) string {
	switch place.Style {
	case view.PlaceStyleFirst:
		return firstColor.Sprint(place.Label)
	case view.PlaceStyleSecond:
		return secondColor.Sprint(place.Label)
	case view.PlaceStyleThird:
		return thirdColor.Sprint(place.Label)
	default:
		return place.Label
	}
}
