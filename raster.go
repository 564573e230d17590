package tabbar

import (
	"bytes"
	"image"
	"image/color"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/esimov/lucide-tabbar/utils"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
)

// supersample is the factor the icon is drawn at before being scaled down
// to the requested size.
const supersample = 2

var rgbaFunc = regexp.MustCompile(`rgba\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*,\s*([\d.]+)\s*\)`)

// Rasterize renders the svg document into a size x size PNG with a
// transparent background. The drawing keeps its aspect ratio and is
// centered on the canvas.
func Rasterize(svg string, size int) (data []byte, err error) {
	defer func() {
		// The svg reader panics on some malformed attribute values.
		if r := recover(); r != nil {
			data, err = nil, errorf(CodeConversion, nil, "SVG to PNG conversion failed: %v", r)
		}
	}()
	if size <= 0 {
		return nil, errorf(CodeConversion, nil, "SVG to PNG conversion failed: invalid size %d", size)
	}
	svg, opacity := flattenRGBA(svg)

	icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		return nil, errorf(CodeConversion, err, "SVG to PNG conversion failed: %v", err)
	}

	w, h := icon.ViewBox.W, icon.ViewBox.H
	if w <= 0 || h <= 0 {
		w, h = viewBoxUnit, viewBoxUnit
	}
	target := float64(size * supersample)
	scale := target / math.Max(w, h)
	outW := int(math.Round(w * scale))
	outH := int(math.Round(h * scale))
	if outW < 1 || outH < 1 {
		return nil, errorf(CodeConversion, nil, "SVG to PNG conversion failed: empty drawing")
	}
	icon.SetTarget(0, 0, float64(outW), float64(outH))

	hi := image.NewRGBA(image.Rect(0, 0, outW, outH))
	scanner := rasterx.NewScannerGV(outW, outH, hi, hi.Bounds())
	raster := rasterx.NewDasher(outW, outH, scanner)
	icon.Draw(raster, opacity)

	lo := image.NewNRGBA(image.Rect(0, 0,
		utils.Max(1, outW/supersample), utils.Max(1, outH/supersample)))
	draw.CatmullRom.Scale(lo, lo.Bounds(), hi, hi.Bounds(), draw.Src, nil)

	canvas := imaging.New(size, size, color.NRGBA{})
	canvas = imaging.PasteCenter(canvas, lo)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, canvas, imaging.PNG); err != nil {
		return nil, errorf(CodeConversion, err, "SVG to PNG conversion failed: %v", err)
	}
	return buf.Bytes(), nil
}

// flattenRGBA rewrites rgba() colors to rgb(), which the svg reader
// understands, and returns the alpha of the first one as drawing opacity.
func flattenRGBA(svg string) (string, float64) {
	opacity := 1.0
	m := rgbaFunc.FindStringSubmatch(svg)
	if m == nil {
		return svg, opacity
	}
	if a, err := strconv.ParseFloat(m[4], 64); err == nil {
		opacity = utils.Clamp(a, 0, 1)
	}
	return rgbaFunc.ReplaceAllString(svg, "rgb($1,$2,$3)"), opacity
}
