package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/esimov/lucide-tabbar/codegen"
	"github.com/esimov/lucide-tabbar/utils"
	"golang.org/x/term"
)

const helpBanner = `
Generate a Go package exposing every Lucide SVG icon as a tabbar.Icon.
    Version: %s

`

// Version indicates the current build version.
var Version = "dev"

var (
	// Flags
	source      = flag.String("in", ".lucide-cache/icons", "Directory holding the Lucide SVG files")
	destination = flag.String("out", "icons", "Output package directory")
	pkgName     = flag.String("pkg", "icons", "Name of the generated package")
	workers     = flag.Int("conc", runtime.NumCPU(), "Number of files to read concurrently")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, helpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := generate(ctx, os.Stderr, *source, *destination, *pkgName, *workers); err != nil {
		log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
	}
}

// generate loads the icons from src and writes the package into dst,
// reporting the progress on w.
func generate(ctx context.Context, w io.Writer, src, dst, pkg string, conc int) error {
	now := time.Now()

	var spinner *utils.Spinner
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		spinner = utils.NewSpinner(w, fmt.Sprintf("%s %s",
			utils.DecorateText("⚡ LUCIDEGEN", utils.StatusMessage),
			utils.DecorateText("⇢ generating icon modules...", utils.DefaultMessage),
		), 80*time.Millisecond)
		spinner.Start()
		defer spinner.Stop()
	}

	entries, err := codegen.Load(ctx, src, conc)
	if err != nil {
		return fmt.Errorf("%w\nRun the icon fetch step first or point -in to a Lucide icons directory", err)
	}
	if err := codegen.Write(dst, pkg, entries); err != nil {
		return err
	}

	if spinner != nil {
		spinner.Stop()
	}
	fmt.Fprintf(w, "Generated %s icon modules\n", utils.DecorateText(fmt.Sprint(len(entries)), utils.SuccessMessage))
	fmt.Fprintf(w, "Output directory: %s\n", dst)
	fmt.Fprintf(w, "Execution time: %s\n", utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
	return nil
}
