package view

import "strconv"

// Place style tags consumed by renderers.
const (
	PlaceStyleFirst  = "first"
	PlaceStyleSecond = "second"
	PlaceStyleThird  = "third"
)

// Place is a classified finishing place. Number 0 means unplaced, which is
// legitimate for unscored heats.
type Place struct {
	Number int
	Label  string // "1st", "2nd", "3rd", "4", ... or "-" when unplaced
	Style  string // style tag for the podium places, empty otherwise
}

// ClassifyPlace maps a place number to its display form.
func ClassifyPlace(place int) Place {
	switch {
	case place == 1:
		return Place{Number: 1, Label: "1st", Style: PlaceStyleFirst}
	case place == 2:
		return Place{Number: 2, Label: "2nd", Style: PlaceStyleSecond}
	case place == 3:
		return Place{Number: 3, Label: "3rd", Style: PlaceStyleThird}
	case place > 0:
		return Place{Number: place, Label: strconv.Itoa(place)}
	default:
		return Place{Label: "-"}
	}
}
