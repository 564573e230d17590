// Package codegen turns a directory of Lucide SVG files into a Go package
// exposing one tabbar.Icon per file.
package codegen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"sort"
	"strings"
	"sync"
	"text/template"
	"unicode"

	tabbar "github.com/esimov/lucide-tabbar"
	"github.com/esimov/lucide-tabbar/utils"
)

// MaxWorkers sets the maximum number of concurrently running workers.
const MaxWorkers = 20

const (
	svgExt    = ".svg"
	indexName = "icons"
)

var (
	whitespace  = regexp.MustCompile(`\s+`)
	betweenTags = regexp.MustCompile(`>\s+<`)
)

// Entry is a single icon of the generated package.
type Entry struct {
	// Name is the kebab-case file name without extension.
	Name string
	// Ident is the exported Go identifier of the icon.
	Ident string
	// SVG is the compacted SVG document.
	SVG string
}

// result holds a loaded entry or the error raised while loading it.
type result struct {
	entry Entry
	err   error
}

// Load reads every .svg file found in dir using the given number of
// workers. The entries are returned sorted by name.
func Load(ctx context.Context, dir string, workers int) ([]Entry, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("icons source directory not found: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = utils.Clamp(workers, 1, MaxWorkers)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	paths, errc := walkDir(ctx, dir)
	results := make(chan result)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			consumer(ctx, paths, results)
		}()
	}

	// Close the channel after the values are consumed.
	go func() {
		defer close(results)
		wg.Wait()
	}()

	var (
		entries []Entry
		errs    []error
	)
	for res := range results {
		if res.err != nil {
			errs = append(errs, res.err)
			continue
		}
		entries = append(entries, res.entry)
	}
	if err := <-errc; err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	if err := checkDuplicates(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// walkDir starts a goroutine to walk the specified directory tree
// and send the path of each svg file on the string channel.
// It sends the result of the walk on the error channel.
// It terminates in case the context is cancelled.
func walkDir(ctx context.Context, src string) (<-chan string, <-chan error) {
	pathChan := make(chan string)
	errChan := make(chan error, 1)

	go func() {
		// Close the paths channel after Walk returns.
		defer close(pathChan)

		errChan <- filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.Type().IsRegular() || filepath.Ext(d.Name()) != svgExt {
				return nil
			}
			select {
			case <-ctx.Done():
				return errors.New("directory walk cancelled")
			case pathChan <- path:
			}
			return nil
		})
	}()
	return pathChan, errChan
}

// consumer reads the path names from the paths channel, loads the icons
// and sends the results on the res channel.
func consumer(ctx context.Context, paths <-chan string, res chan<- result) {
	for path := range paths {
		entry, err := loadEntry(path)

		select {
		case <-ctx.Done():
			return
		case res <- result{entry: entry, err: err}:
		}
	}
}

func loadEntry(path string) (Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Entry{}, fmt.Errorf("unable to read %s: %w", path, err)
	}
	svg := Compact(string(data))
	if !strings.Contains(svg, "<svg") {
		return Entry{}, fmt.Errorf("%s does not contain an svg document", path)
	}

	name := strings.TrimSuffix(filepath.Base(path), svgExt)
	return Entry{Name: name, Ident: Ident(name), SVG: svg}, nil
}

// Compact drops the whitespace between tags and collapses the remaining
// runs of whitespace to a single space.
func Compact(svg string) string {
	svg = betweenTags.ReplaceAllString(svg, "><")
	return strings.TrimSpace(whitespace.ReplaceAllString(svg, " "))
}

// Ident returns the exported Go identifier of an icon name.
func Ident(name string) string {
	id := tabbar.KebabToPascal(tabbar.NormalizeName(name))
	if id == "" || !unicode.IsLetter([]rune(id)[0]) {
		id = "Icon" + id
	}
	return id
}

func checkDuplicates(entries []Entry) error {
	seen := make(map[string]string, len(entries))
	for _, e := range entries {
		if e.Name == indexName || e.Ident == "All" {
			return fmt.Errorf("icon %q clashes with the generated index", e.Name)
		}
		if prev, ok := seen[e.Ident]; ok {
			return fmt.Errorf("icons %q and %q map to the same identifier %s", prev, e.Name, e.Ident)
		}
		seen[e.Ident] = e.Name
	}
	return nil
}

var iconTmpl = template.Must(template.New("icon").Parse(`// Code generated by lucidegen. DO NOT EDIT.

package {{.Package}}

import tabbar "github.com/esimov/lucide-tabbar"

// {{.Entry.Ident}} is the Lucide {{.Entry.Name}} icon.
var {{.Entry.Ident}} = tabbar.NewIcon({{printf "%q" .Entry.Name}}, {{printf "%q" .Entry.SVG}})
`))

var indexTmpl = template.Must(template.New("index").Parse(`// Code generated by lucidegen. DO NOT EDIT.

// Package {{.Package}} exposes the Lucide icons as tabbar icons.
package {{.Package}}

import tabbar "github.com/esimov/lucide-tabbar"

// All maps the kebab-case icon names to the icons.
var All = map[string]*tabbar.Icon{
{{- range .Entries}}
	{{printf "%q" .Name}}: {{.Ident}},
{{- end}}
}
`))

// RenderIcon returns the formatted source file of a single icon.
func RenderIcon(pkg string, e Entry) ([]byte, error) {
	return render(iconTmpl, map[string]any{"Package": pkg, "Entry": e})
}

// RenderIndex returns the formatted source file listing every icon.
func RenderIndex(pkg string, entries []Entry) ([]byte, error) {
	return render(indexTmpl, map[string]any{"Package": pkg, "Entries": entries})
}

func render(t *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("could not execute the %s template: %w", t.Name(), err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("could not format the generated %s source: %w", t.Name(), err)
	}
	return src, nil
}

// Write removes dir, then writes one file per entry plus the index file into it.
func Write(dir, pkg string, entries []Entry) error {
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("unable to clean the output directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("unable to create the output directory: %w", err)
	}

	for _, e := range entries {
		src, err := RenderIcon(pkg, e)
		if err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(dir, e.Name+".go"), src, 0644); err != nil {
			return fmt.Errorf("unable to write icon %s: %w", e.Name, err)
		}
	}

	src, err := RenderIndex(pkg, entries)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, indexName+".go"), src, 0644); err != nil {
		return fmt.Errorf("unable to write the index file: %w", err)
	}
	return nil
}
