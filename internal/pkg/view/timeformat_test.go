package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTime(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "NT", FormatTime(0))
	assert.Equal(t, "NT", FormatTime(-1))
	assert.Equal(t, "30.00", FormatTime(3000))
	assert.Equal(t, "32.10", FormatTime(3210))
	assert.Equal(t, "1:05.32", FormatTime(6532))
	assert.Equal(t, "10:53.21", FormatTime(65321))
	// Seconds under 10 are zero padded once minutes are shown
	assert.Equal(t, "1:00.00", FormatTime(6000))
	assert.Equal(t, "1:05.00", FormatTime(6500))
	assert.Equal(t, "9.99", FormatTime(999))
}

func TestClassifyPlace(t *testing.T) {
	t.Parallel()
	assert.Equal(t, Place{Number: 1, Label: "1st", Style: PlaceStyleFirst}, ClassifyPlace(1))
	assert.Equal(t, Place{Number: 2, Label: "2nd", Style: PlaceStyleSecond}, ClassifyPlace(2))
	assert.Equal(t, Place{Number: 3, Label: "3rd", Style: PlaceStyleThird}, ClassifyPlace(3))
	assert.Equal(t, Place{Number: 4, Label: "4"}, ClassifyPlace(4))
	assert.Equal(t, Place{Label: "-"}, ClassifyPlace(0))
}
