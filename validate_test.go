package tabbar

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Color(t *testing.T) {
	valid := []string{"#fff", "#FFFFFF", "#1890ff", "rgb(0, 0, 0)", "rgb(255,255,255)",
		"rgba(0, 0, 0, 0.5)", "rgba(1,2,3,1)", "black", "Grey", "PURPLE"}
	for _, c := range valid {
		assert.True(t, ValidateColor(c), c)
	}

	invalid := []string{"", "notacolor", "#ff", "#ffff", "#gggggg", "rgb(0,0)", "rgba(0,0,0)", "hsl(0,0%,0%)", "navy"}
	for _, c := range invalid {
		assert.False(t, ValidateColor(c), c)
	}
}

func TestValidate_SizeBoundaries(t *testing.T) {
	for _, s := range []string{"16", "81", "1024"} {
		_, err := ValidateSize(s)
		assert.NoError(t, err, s)
	}

	_, err := ValidateSize("15")
	assert.EqualError(t, err, "Size 15 is too small: minimum is 16px")
	_, err = ValidateSize("1025")
	assert.EqualError(t, err, "Size 1025 is too large: maximum is 1024px")
	_, err = ValidateSize("abc")
	assert.EqualError(t, err, `Invalid size "abc": must be a number`)
	_, err = ValidateSize("81.5")
	assert.EqualError(t, err, `Invalid size "81.5": must be an integer`)
	assert.Equal(t, CodeInvalidOptions, CodeOf(err))
}

func TestValidate_StrokeWidthBoundaries(t *testing.T) {
	for _, s := range []string{"0.5", "2", "5"} {
		_, err := ValidateStrokeWidth(s)
		assert.NoError(t, err, s)
	}

	_, err := ValidateStrokeWidth("0.49")
	assert.EqualError(t, err, "Stroke-width 0.49 is too small: minimum is 0.5")
	_, err = ValidateStrokeWidth("5.01")
	assert.EqualError(t, err, "Stroke-width 5.01 is too large: maximum is 5")
	_, err = ValidateStrokeWidth("thick")
	assert.EqualError(t, err, `Invalid stroke-width "thick": must be a number`)
	_, err = ValidateStrokeWidth("NaN")
	assert.Error(t, err)
}

func TestValidate_OptionsCollectsEveryProblem(t *testing.T) {
	_, err := Options{
		Color:       "notacolor",
		ActiveColor: "alsonot",
		Size:        "8",
		StrokeWidth: "9",
		Output:      "out",
	}.Validate()
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Problems, 4)
	assert.Contains(t, verr.Problems[0], `Invalid color "notacolor"`)
	assert.Contains(t, verr.Problems[1], `Invalid active-color "alsonot"`)
}

func TestValidate_OptionsDefaults(t *testing.T) {
	s, err := Options{
		Color:       DefaultColor,
		Size:        "81",
		StrokeWidth: "2",
		Output:      DefaultOutput,
	}.Validate()
	require.NoError(t, err)
	assert.Equal(t, Settings{Color: "#000000", Size: 81, StrokeWidth: 2, Output: "./tabbar-icons"}, s)
}
