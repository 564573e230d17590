package tabbar

import (
	"strconv"
	"strings"
)

// DefaultIconSize is the size used when Params.Size is empty.
const DefaultIconSize = 24

// Size is an icon dimension. Numeric values are pixels; any other value
// (e.g. "2rem") is passed through as a CSS length.
type Size string

// Px returns a pixel size.
func Px(n float64) Size { return Size(formatNumber(n)) }

// Pixels returns the numeric value of s. An empty size is DefaultIconSize.
func (s Size) Pixels() (float64, bool) {
	if s == "" {
		return DefaultIconSize, true
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(string(s)), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// CSS returns s as a CSS length.
func (s Size) CSS() string {
	if px, ok := s.Pixels(); ok {
		return formatNumber(px) + "px"
	}
	return string(s)
}

// Params is the set of rendering parameters of an icon. Zero values mean unset.
type Params struct {
	Color               string
	StrokeWidth         float64
	AbsoluteStrokeWidth bool
	Size                Size
}

func (p Params) apply(template string) string {
	if p.Color != "" {
		template = ApplyColor(template, p.Color)
	}
	if p.StrokeWidth != 0 {
		width := p.StrokeWidth
		if px, ok := p.Size.Pixels(); ok {
			width = EffectiveStrokeWidth(width, p.AbsoluteStrokeWidth, px)
		}
		template = ApplyStrokeWidth(template, width)
	}
	return template
}

// Image describes how an icon is displayed: a data URL source and CSS dimensions.
type Image struct {
	Src    string
	Width  string
	Height string
}

// Icon binds an icon name to its SVG template.
type Icon struct {
	name     string
	template string
	cache    *Cache
}

// NewIcon returns an icon rendered through the package level cache.
func NewIcon(name, template string) *Icon {
	return &Icon{name: name, template: template}
}

// WithCache returns a copy of the icon that renders through c.
func (i *Icon) WithCache(c *Cache) *Icon {
	return &Icon{name: i.name, template: i.template, cache: c}
}

// Name returns the kebab-case name of the icon.
func (i *Icon) Name() string { return i.name }

// Template returns the unprocessed SVG document.
func (i *Icon) Template() string { return i.template }

// DisplayName returns the PascalCase name of the icon.
func (i *Icon) DisplayName() string {
	if i.name == "" {
		return "LucideIcon"
	}
	return KebabToPascal(NormalizeName(i.name))
}

// DataURL returns the processed template as a data URL.
func (i *Icon) DataURL(p Params) string {
	c := i.cache
	if c == nil {
		c = DefaultCache()
	}
	return c.Process(i.template, p)
}

// Image returns the display description of the icon for p.
func (i *Icon) Image(p Params) Image {
	css := p.Size.CSS()
	return Image{
		Src:    i.DataURL(p),
		Width:  css,
		Height: css,
	}
}
