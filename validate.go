package tabbar

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Defaults and limits of the tabbar icon options.
const (
	DefaultColor       = "#000000"
	DefaultSize        = 81
	DefaultStrokeWidth = 2.0
	DefaultOutput      = "./tabbar-icons"

	MinSize        = 16
	MaxSize        = 1024
	MinStrokeWidth = 0.5
	MaxStrokeWidth = 5.0
)

var (
	hexColor  = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)
	rgbColor  = regexp.MustCompile(`^rgb\(\s*\d+\s*,\s*\d+\s*,\s*\d+\s*\)$`)
	rgbaColor = regexp.MustCompile(`^rgba\(\s*\d+\s*,\s*\d+\s*,\s*\d+\s*,\s*[\d.]+\s*\)$`)
)

var namedColors = map[string]struct{}{
	"black": {}, "white": {}, "red": {}, "green": {}, "blue": {},
	"yellow": {}, "cyan": {}, "magenta": {}, "gray": {}, "grey": {},
	"orange": {}, "pink": {}, "purple": {}, "brown": {},
}

// ValidateColor reports whether color is a hex, rgb(), rgba() or named color.
func ValidateColor(color string) bool {
	if hexColor.MatchString(color) || rgbColor.MatchString(color) || rgbaColor.MatchString(color) {
		return true
	}
	_, ok := namedColors[strings.ToLower(color)]
	return ok
}

// ValidateSize parses an icon size in pixels.
func ValidateSize(size string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(size))
	if err != nil {
		if _, ferr := strconv.ParseFloat(strings.TrimSpace(size), 64); ferr == nil {
			return 0, errorf(CodeInvalidOptions, err, "Invalid size %q: must be an integer", size)
		}
		return 0, errorf(CodeInvalidOptions, err, "Invalid size %q: must be a number", size)
	}
	if n < MinSize {
		return n, errorf(CodeInvalidOptions, nil, "Size %d is too small: minimum is %dpx", n, MinSize)
	}
	if n > MaxSize {
		return n, errorf(CodeInvalidOptions, nil, "Size %d is too large: maximum is %dpx", n, MaxSize)
	}
	return n, nil
}

// ValidateStrokeWidth parses a stroke width.
func ValidateStrokeWidth(width string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(width), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errorf(CodeInvalidOptions, err, "Invalid stroke-width %q: must be a number", width)
	}
	if f < MinStrokeWidth {
		return f, errorf(CodeInvalidOptions, nil, "Stroke-width %s is too small: minimum is %s", formatNumber(f), formatNumber(MinStrokeWidth))
	}
	if f > MaxStrokeWidth {
		return f, errorf(CodeInvalidOptions, nil, "Stroke-width %s is too large: maximum is %s", formatNumber(f), formatNumber(MaxStrokeWidth))
	}
	return f, nil
}

// Options are the raw, unvalidated tabbar options as typed by the user.
type Options struct {
	Color       string
	ActiveColor string
	Size        string
	StrokeWidth string
	Output      string
}

// Settings are validated options.
type Settings struct {
	Color       string
	ActiveColor string
	Size        int
	StrokeWidth float64
	Output      string
}

// ValidationError lists every problem found in the options.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid options: " + strings.Join(e.Problems, "; ")
}

// Validate checks all the options at once. On failure the returned error
// is a *ValidationError holding every violation.
func (o Options) Validate() (Settings, error) {
	var problems []string

	if !ValidateColor(o.Color) {
		problems = append(problems, colorProblem("color", o.Color))
	}
	if o.ActiveColor != "" && !ValidateColor(o.ActiveColor) {
		problems = append(problems, colorProblem("active-color", o.ActiveColor))
	}
	size, err := ValidateSize(o.Size)
	if err != nil {
		problems = append(problems, err.Error())
	}
	width, err := ValidateStrokeWidth(o.StrokeWidth)
	if err != nil {
		problems = append(problems, err.Error())
	}
	if strings.TrimSpace(o.Output) == "" {
		problems = append(problems, "Invalid output: directory must not be empty")
	}

	if len(problems) > 0 {
		return Settings{}, &ValidationError{Problems: problems}
	}
	return Settings{
		Color:       o.Color,
		ActiveColor: o.ActiveColor,
		Size:        size,
		StrokeWidth: width,
		Output:      o.Output,
	}, nil
}

func colorProblem(flag, color string) string {
	return "Invalid " + flag + " " + strconv.Quote(color) + ": use hex (#fff or #ffffff), rgb(), rgba(), or named color"
}
