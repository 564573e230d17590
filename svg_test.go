package tabbar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const houseSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><path d="M15 21v-8a1 1 0 0 0-1-1h-4a1 1 0 0 0-1 1v8"/><path d="M3 10a2 2 0 0 1 .709-1.528l7-5.999a2 2 0 0 1 2.582 0l7 5.999A2 2 0 0 1 21 10v9a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2z"/></svg>`

const circleSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><circle cx="12" cy="12" r="10"/></svg>`

func TestSVG_ApplyColor(t *testing.T) {
	out := ApplyColor(`<svg stroke="currentColor"><path fill="currentColor"/></svg>`, "#ff0000")
	assert.Equal(t, `<svg stroke="#ff0000"><path fill="#ff0000"/></svg>`, out)
	assert.NotContains(t, out, "currentColor")
}

func TestSVG_ApplyStrokeWidth(t *testing.T) {
	out := ApplyStrokeWidth(`<svg stroke-width="2"><path stroke-width="1.5"/></svg>`, 3)
	assert.Equal(t, `<svg stroke-width="3"><path stroke-width="3"/></svg>`, out)

	out = ApplyStrokeWidth(circleSVG, 1.25)
	assert.Contains(t, out, `stroke-width="1.25"`)
}

func TestSVG_ApplySizeOnlyTouchesRootDimensions(t *testing.T) {
	out := ApplySize(circleSVG, 81)
	assert.Contains(t, out, ` width="81"`)
	assert.Contains(t, out, ` height="81"`)
	assert.Contains(t, out, `stroke-width="2"`)

	rect := `<svg width="24" height="24"><rect width="10" height="10"/></svg>`
	assert.Equal(t, `<svg width="48" height="48"><rect width="10" height="10"/></svg>`, ApplySize(rect, 48))
}

func TestSVG_ProcessSVG(t *testing.T) {
	out := ProcessSVG(circleSVG, SVGOptions{Color: "blue", StrokeWidth: 1.5, Size: 64})
	assert.Contains(t, out, `stroke="blue"`)
	assert.Contains(t, out, `stroke-width="1.5"`)
	assert.Contains(t, out, `width="64"`)

	assert.Equal(t, circleSVG, ProcessSVG(circleSVG, SVGOptions{}))
}

func TestSVG_EffectiveStrokeWidth(t *testing.T) {
	assert.Equal(t, 1.0, EffectiveStrokeWidth(2, true, 48))
	assert.Equal(t, 4.0, EffectiveStrokeWidth(2, true, 12))
	assert.Equal(t, 2.0, EffectiveStrokeWidth(2, false, 48))
	assert.Equal(t, 2.0, EffectiveStrokeWidth(2, true, 0))
}

func TestDataURL_EncodeLikeEncodeURIComponent(t *testing.T) {
	out := EncodeDataURL(`<svg stroke="#ff0000">a b</svg>`)
	assert.Equal(t, "data:image/svg+xml,%3Csvg%20stroke%3D%22%23ff0000%22%3Ea%20b%3C%2Fsvg%3E", out)

	// Characters left alone by encodeURIComponent.
	assert.Equal(t, dataURLPrefix+"A-z_0.9!~*'()", EncodeDataURL("A-z_0.9!~*'()"))
}

func TestDataURL_RoundTrip(t *testing.T) {
	src := EncodeDataURL(houseSVG)
	require.True(t, strings.HasPrefix(src, "data:image/svg+xml,"))

	svg, err := DecodeDataURL(src)
	require.NoError(t, err)
	assert.Equal(t, houseSVG, svg)

	_, err = DecodeDataURL("data:image/png;base64,AAAA")
	assert.Error(t, err)
}
