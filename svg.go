package tabbar

import (
	"regexp"
	"strconv"
	"strings"
)

// viewBoxUnit is the native coordinate size of a Lucide icon.
const viewBoxUnit = 24

var (
	strokeWidthAttr = regexp.MustCompile(`stroke-width="[^"]*"`)
	widthAttr       = regexp.MustCompile(`(^|\s)width="[^"]*"`)
	heightAttr      = regexp.MustCompile(`(^|\s)height="[^"]*"`)
)

// SVGOptions holds the substitutions applied to a raw SVG document.
// Zero values leave the corresponding attributes untouched.
type SVGOptions struct {
	Color       string
	StrokeWidth float64
	Size        int
}

// ApplyColor replaces every stroke="currentColor" and fill="currentColor"
// attribute with the given color.
func ApplyColor(svg, color string) string {
	return strings.NewReplacer(
		`stroke="currentColor"`, `stroke="`+color+`"`,
		`fill="currentColor"`, `fill="`+color+`"`,
	).Replace(svg)
}

// ApplyStrokeWidth sets the value of every stroke-width attribute.
func ApplyStrokeWidth(svg string, width float64) string {
	return strokeWidthAttr.ReplaceAllLiteralString(svg, `stroke-width="`+formatNumber(width)+`"`)
}

// ApplySize sets the first width and height attributes, which on a Lucide
// icon are the ones of the root element.
func ApplySize(svg string, size int) string {
	n := strconv.Itoa(size)
	svg = replaceFirst(widthAttr, svg, `width="`+n+`"`)
	return replaceFirst(heightAttr, svg, `height="`+n+`"`)
}

// ProcessSVG applies the color, stroke width and size substitutions, in this order.
func ProcessSVG(svg string, opts SVGOptions) string {
	if opts.Color != "" {
		svg = ApplyColor(svg, opts.Color)
	}
	if opts.StrokeWidth != 0 {
		svg = ApplyStrokeWidth(svg, opts.StrokeWidth)
	}
	if opts.Size != 0 {
		svg = ApplySize(svg, opts.Size)
	}
	return svg
}

// EffectiveStrokeWidth returns the stroke width to write into the template.
// With absolute set the width is scaled so that the rendered stroke keeps
// the same weight at any size.
func EffectiveStrokeWidth(width float64, absolute bool, size float64) float64 {
	if absolute && size > 0 {
		return width * viewBoxUnit / size
	}
	return width
}

// replaceFirst substitutes the first match of re. The optional leading
// whitespace captured by the first group is preserved.
func replaceFirst(re *regexp.Regexp, s, repl string) string {
	loc := re.FindStringSubmatchIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[3]] + repl + s[loc[1]:]
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
