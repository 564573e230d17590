package tabbar

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Result holds the outcome of generating the tabbar images of one icon.
type Result struct {
	// Name is the icon name as requested by the user.
	Name string
	// Kebab is the normalized name used for the output files.
	Kebab string
	// Files lists the written files, including those written before a failure.
	Files []string
	Err   error
}

// OK reports whether every image of the icon was written.
func (r Result) OK() bool { return r.Err == nil }

// Code returns the failure classification, or an empty code on success.
func (r Result) Code() ErrorCode {
	if r.Err == nil {
		return ""
	}
	return CodeOf(r.Err)
}

// Summary aggregates the results of a run.
type Summary struct {
	Results   []Result
	Succeeded int
	Failed    int
	Elapsed   time.Duration
}

// Failures returns the failed results in request order.
func (s Summary) Failures() []Result {
	var failed []Result
	for _, r := range s.Results {
		if !r.OK() {
			failed = append(failed, r)
		}
	}
	return failed
}

// Generator produces the PNG tabbar images of Lucide icons.
type Generator struct {
	Source   Source
	Settings Settings
	// Progress, if not nil, is called before each icon of a run.
	Progress func(name string)
}

// NewGenerator returns a generator downloading icons from src.
func NewGenerator(src Source, s Settings) *Generator {
	return &Generator{Source: src, Settings: s}
}

// variant is one output image of an icon.
type variant struct {
	color  string
	suffix string
}

func (g *Generator) variants() []variant {
	v := []variant{{color: g.Settings.Color}}
	if g.Settings.ActiveColor != "" {
		v = append(v, variant{color: g.Settings.ActiveColor, suffix: "-active"})
	}
	return v
}

// Generate downloads a single icon and writes its images. Failures are
// returned in the result, never as a panic or an early exit.
func (g *Generator) Generate(ctx context.Context, name string) Result {
	res := Result{Name: name, Kebab: NormalizeName(name)}

	svg, err := g.Source.Fetch(ctx, name)
	if err != nil {
		res.Err = classify(err)
		return res
	}

	if err := os.MkdirAll(g.Settings.Output, 0755); err != nil {
		res.Err = errorf(CodeDirCreate, err, "Failed to create directory %q: %v", g.Settings.Output, err)
		return res
	}

	for _, v := range g.variants() {
		path, err := g.write(svg, res.Kebab, v)
		if err != nil {
			res.Err = classify(err)
			return res
		}
		res.Files = append(res.Files, path)
	}
	return res
}

func (g *Generator) write(svg, kebab string, v variant) (string, error) {
	processed := ProcessSVG(svg, SVGOptions{
		Color:       v.color,
		StrokeWidth: g.Settings.StrokeWidth,
		Size:        g.Settings.Size,
	})
	data, err := Rasterize(processed, g.Settings.Size)
	if err != nil {
		return "", err
	}

	path := filepath.Join(g.Settings.Output, kebab+v.suffix+".png")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", errorf(CodeFileWrite, err, "Failed to write file %q: %v", path, err)
	}
	return path, nil
}

// Run generates the icons one after the other. report, if not nil, is
// called after each icon. A failing icon never stops the batch.
func (g *Generator) Run(ctx context.Context, names []string, report func(Result)) Summary {
	var sum Summary
	start := time.Now()

	for _, name := range names {
		if g.Progress != nil {
			g.Progress(name)
		}
		res := g.Generate(ctx, name)
		if res.OK() {
			sum.Succeeded++
		} else {
			sum.Failed++
		}
		sum.Results = append(sum.Results, res)
		if report != nil {
			report(res)
		}
	}
	sum.Elapsed = time.Since(start)
	return sum
}

// classify makes sure err carries an error code.
func classify(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{Code: CodeUnknown, Msg: fmt.Sprintf("Unexpected error: %v", err), Err: err}
}
