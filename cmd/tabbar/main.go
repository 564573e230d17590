package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tabbar "github.com/esimov/lucide-tabbar"
	"github.com/esimov/lucide-tabbar/utils"
	"golang.org/x/term"
)

const helpBanner = `
╔╦╗┌─┐┌┐ ┌┐ ┌─┐┬─┐
 ║ ├─┤├┴┐├┴┐├─┤├┬┘
 ╩ ┴ ┴└─┘└─┘┴ ┴┴└─

Generate PNG tabbar icons from the Lucide icon set.
    Version: %s

Usage: tabbar <icons...> [options]

`

const iconsURL = "https://lucide.dev/icons"

// Version indicates the current build version.
var Version = "dev"

func main() {
	log.SetFlags(0)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// flags holds the parsed command line.
type flags struct {
	opts    tabbar.Options
	icons   []string
	timeout time.Duration
	version bool
}

// parseArgs parses the command line. Flags may be given before, between
// or after the icon names.
func parseArgs(args []string, stderr io.Writer) (*flags, error) {
	f := &flags{}
	fs := flag.NewFlagSet("tabbar", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, helpBanner, Version)
		fs.PrintDefaults()
	}

	fs.StringVar(&f.opts.Color, "color", tabbar.DefaultColor, "Icon color (hex, rgb, rgba, or named)")
	fs.StringVar(&f.opts.Color, "c", tabbar.DefaultColor, "Shorthand for -color")
	fs.StringVar(&f.opts.ActiveColor, "active-color", "", "Active state icon color")
	fs.StringVar(&f.opts.ActiveColor, "a", "", "Shorthand for -active-color")
	fs.StringVar(&f.opts.Size, "size", fmt.Sprint(tabbar.DefaultSize), "Icon size in pixels, 16-1024")
	fs.StringVar(&f.opts.Size, "s", fmt.Sprint(tabbar.DefaultSize), "Shorthand for -size")
	fs.StringVar(&f.opts.StrokeWidth, "stroke-width", fmt.Sprint(tabbar.DefaultStrokeWidth), "Stroke width, 0.5-5")
	fs.StringVar(&f.opts.Output, "output", tabbar.DefaultOutput, "Output directory")
	fs.StringVar(&f.opts.Output, "o", tabbar.DefaultOutput, "Shorthand for -output")
	fs.DurationVar(&f.timeout, "timeout", 0, "Download timeout per icon (default: TABBAR_TIMEOUT or 30s)")
	fs.BoolVar(&f.version, "version", false, "Print the version and exit")
	fs.BoolVar(&f.version, "v", false, "Shorthand for -version")

	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		args = fs.Args()
		if len(args) == 0 {
			break
		}
		f.icons = append(f.icons, args[0])
		args = args[1:]
	}
	return f, nil
}

// run executes the command and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	f, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	if f.version {
		fmt.Fprintf(stdout, "tabbar version %s\n", Version)
		return 0
	}

	cfg, err := tabbar.LoadConfig()
	if err != nil {
		fmt.Fprintln(stderr, utils.DecorateText("Error: "+err.Error(), utils.ErrorMessage))
		return 1
	}
	utils.SetColor(cfg.Colors() && isTerminal(stdout))

	if len(f.icons) == 0 {
		fmt.Fprintln(stderr, utils.DecorateText("Error: No icons specified.", utils.ErrorMessage))
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Usage: tabbar <icons...> [options]")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Example:")
		fmt.Fprintln(stderr, `  tabbar House Settings User -c "#999" -a "#1890ff"`)
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Available icons: "+iconsURL)
		return 1
	}

	settings, err := f.opts.Validate()
	if err != nil {
		fmt.Fprintln(stderr, utils.DecorateText("Error: Invalid options", utils.ErrorMessage))
		fmt.Fprintln(stderr)
		var verr *tabbar.ValidationError
		if errors.As(err, &verr) {
			for _, p := range verr.Problems {
				fmt.Fprintf(stderr, "  - %s\n", p)
			}
		}
		return 1
	}

	if f.timeout > 0 {
		cfg.Timeout = f.timeout
	}
	fetcher := cfg.Fetcher()

	printHeader(stdout, settings)

	var spinner *utils.Spinner
	if isTerminal(stderr) {
		spinner = utils.NewSpinner(stderr, "", 80*time.Millisecond)
		defer spinner.Stop()
	}

	gen := tabbar.NewGenerator(fetcher, settings)
	if spinner != nil {
		gen.Progress = func(name string) {
			spinner.SetMessage(fmt.Sprintf("%s %s",
				utils.DecorateText("⚡ TABBAR", utils.StatusMessage),
				utils.DecorateText("⇢ generating "+name+"...", utils.DefaultMessage),
			))
			spinner.Start()
		}
	}
	sum := gen.Run(ctx, f.icons, func(res tabbar.Result) {
		if spinner != nil {
			spinner.Stop()
		}
		printResult(stdout, res)
	})

	return printSummary(stdout, sum)
}

func printHeader(w io.Writer, s tabbar.Settings) {
	out, err := filepath.Abs(s.Output)
	if err != nil {
		out = s.Output
	}
	fmt.Fprintln(w, utils.DecorateText("Creating tabbar icons...", utils.StatusMessage))
	fmt.Fprintf(w, "  Color: %s\n", s.Color)
	if s.ActiveColor != "" {
		fmt.Fprintf(w, "  Active Color: %s\n", s.ActiveColor)
	}
	fmt.Fprintf(w, "  Size: %dx%d\n", s.Size, s.Size)
	fmt.Fprintf(w, "  Stroke Width: %v\n", s.StrokeWidth)
	fmt.Fprintf(w, "  Output: %s\n", out)
	fmt.Fprintln(w)
}

// printResult displays the status of a single icon.
func printResult(w io.Writer, res tabbar.Result) {
	if res.OK() {
		for _, file := range res.Files {
			fmt.Fprintf(w, "  %s %s\n", utils.DecorateText("[OK]", utils.SuccessMessage), filepath.Base(file))
		}
		return
	}
	fmt.Fprintf(w, "  %s %s: %v\n", utils.DecorateText("[FAIL]", utils.ErrorMessage), res.Name, res.Err)
}

// printSummary displays the totals and the itemized failures, and
// returns the exit code of the run.
func printSummary(w io.Writer, sum tabbar.Summary) int {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Summary: %d succeeded, %d failed\n", sum.Succeeded, sum.Failed)
	fmt.Fprintf(w, "Execution time: %s\n", utils.DecorateText(utils.FormatTime(sum.Elapsed), utils.SuccessMessage))

	if sum.Failed == 0 {
		return 0
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Failed icons:")
	for _, res := range sum.Failures() {
		fmt.Fprintf(w, "  - %s: %v (%s)\n", res.Name, res.Err, res.Code())
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Tip: Check icon names at "+iconsURL)
	return 1
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
