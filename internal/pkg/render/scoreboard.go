// Package render turns assembled views into their output forms: the
// static HTML scoreboard, the console heat report and shared badge
// classification.
package render

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/swimboard/swimboard/internal/pkg/model"
	"github.com/swimboard/swimboard/internal/pkg/view"
)

//go:embed scoreboard.gohtml
var scoreboardTemplate string

// ScoreboardPage is the template input.
type ScoreboardPage struct {
	GeneratedAt string
	Events      []ScoreboardEvent
}

// ScoreboardEvent is one event with its status badge resolved.
type ScoreboardEvent struct {
	view.EventView
	StatusText  string
	StatusClass string
}

// NewScoreboardEvent classifies the event state into a badge. Events
// without cached details are dimmed and marked.
func NewScoreboardEvent(ev view.EventView) ScoreboardEvent {
	state := ev.Event.State()

	var class string
	switch state {
	case model.EventStateScored:
		class = "completed"
	case model.EventStatePartial:
		class = "seeded"
	case model.EventStateUnseeded:
		class = "no-details"
	default:
		if ev.HasDetails {
			class = "seeded"
		} else {
			class = "no-details"
		}
	}

	text := strings.ToUpper(state)
	if !ev.HasDetails {
		text += " (No Details)"
	}

	return ScoreboardEvent{EventView: ev, StatusText: text, StatusClass: class}
}

// RenderScoreboard writes the complete HTML scoreboard.
func RenderScoreboard(w io.Writer, events []view.EventView, now time.Time) error {
	tmpl, err := template.New("scoreboard").Parse(scoreboardTemplate)
	if err != nil {
		return fmt.Errorf("cannot parse scoreboard template: %w", err)
	}

	page := ScoreboardPage{
		GeneratedAt: now.Format("January 2, 2006 at 3:04 PM"),
	}
	for _, ev := range events {
		page.Events = append(page.Events, NewScoreboardEvent(ev))
	}

	if err := tmpl.Execute(w, page); err != nil {
		return fmt.Errorf("cannot render scoreboard: %w", err)
	}
	return nil
}
