// Command grayfx applies a grayscale effect to an image.
//
// Usage:
//
//	grayfx -in photo.png -effect 2 -size 5 -out blurred.png
//
// Missing -in or -effect values are asked for interactively.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/text/message"

	"github.com/gogpu/grayfx"
	"github.com/gogpu/grayfx/internal/imageio"
	"github.com/gogpu/grayfx/internal/stats"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type config struct {
	in, out    string
	effect     string
	size       int
	workers    int
	lang       string
	show       string
	showWidth  int
	showHeight int
	stats      bool
	histogram  string
	verbose    bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var c config
	fs := flag.NewFlagSet("grayfx", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&c.in, "in", "", "input image")
	fs.StringVar(&c.out, "out", "", "output image (default <in>-<effect>.png)")
	fs.StringVar(&c.effect, "effect", "", "effect: 1=invert 2=blur 3=sharpen 4=edges")
	fs.IntVar(&c.size, "size", 0, "kernel size for blur and sharpen")
	fs.IntVar(&c.workers, "workers", runtime.GOMAXPROCS(0), "goroutines per pass")
	fs.StringVar(&c.lang, "lang", "en", "interface language (en, pt)")
	fs.StringVar(&c.show, "show", "", "write a GIF preview to this path")
	fs.IntVar(&c.showWidth, "show-width", 0, "preview width (default image width)")
	fs.IntVar(&c.showHeight, "show-height", 0, "preview height (default image height)")
	fs.BoolVar(&c.stats, "stats", false, "print intensity statistics")
	fs.StringVar(&c.histogram, "histogram", "", "plot the output histogram to this path")
	fs.BoolVar(&c.verbose, "v", false, "debug logging")
	return c, fs.Parse(args)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	c, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	p := newPrinter(c.lang)
	if err := execute(c, p, bufio.NewScanner(stdin), stdout, stderr); err != nil {
		p.Fprintf(stderr, msgError, err)
		return 1
	}
	return 0
}

func execute(c config, p *message.Printer, in *bufio.Scanner, stdout, stderr io.Writer) error {
	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	grayfx.SetLogger(logger)

	if c.in == "" {
		p.Fprintf(stdout, msgWelcome)
		p.Fprintf(stdout, msgPromptPath)
		c.in = readLine(in)
	}

	src, err := imageio.Load(c.in)
	if err != nil {
		return err
	}
	p.Fprintf(stdout, msgLoaded, src.Width(), src.Height())

	if c.effect == "" {
		p.Fprintf(stdout, msgPromptEffect)
		c.effect = readLine(in)
	}
	if needsSize(c.effect) && c.size <= 0 {
		p.Fprintf(stdout, msgPromptSize)
		if c.size, err = parseSize(readLine(in)); err != nil {
			return err
		}
	}
	effect, err := parseEffect(c.effect, c.size)
	if err != nil {
		return err
	}

	proc := grayfx.NewProcessor(grayfx.WithWorkers(c.workers))
	defer proc.Close()

	start := time.Now()
	dst, err := proc.Apply(src, effect)
	if err != nil {
		return err
	}
	p.Fprintf(stdout, msgApplied, effect, time.Since(start).Round(time.Microsecond))

	out := c.out
	if out == "" {
		out = defaultOutput(c.in, effect)
	}
	if err := imageio.Save(dst, out); err != nil {
		return err
	}
	p.Fprintf(stdout, msgSaved, out)

	if c.show != "" {
		if err := imageio.SavePreview(dst, c.show, c.showWidth, c.showHeight); err != nil {
			return err
		}
		p.Fprintf(stdout, msgPreview, c.show)
	}

	if c.stats {
		printStats(p, stdout, p.Sprintf(msgInput), stats.Summarize(src))
		s := stats.Summarize(dst)
		printStats(p, stdout, p.Sprintf(msgOutput), s)
		logger.Debug("grayfx: output stats", "effect", effect.String(), "stats", s)
	}

	if c.histogram != "" {
		title := fmt.Sprintf("%s (%s)", p.Sprintf(msgHistogram), effect)
		if err := stats.PlotHistogram(dst, title, c.histogram); err != nil {
			return err
		}
		p.Fprintf(stdout, msgSaved, c.histogram)
	}
	return nil
}

func printStats(p *message.Printer, w io.Writer, label string, s stats.Summary) {
	p.Fprintf(w, msgStats, label, s.Mean, s.StdDev, s.Min, s.Max)
}

// defaultOutput names the result after the input and the effect, keeping
// the input's extension when it can be encoded.
func defaultOutput(in string, e grayfx.Effect) string {
	ext := filepath.Ext(in)
	if _, err := imageio.FormatFromPath(in); err != nil {
		ext = ".png"
	}
	name := strings.NewReplacer("(", "", ")", "").Replace(e.String())
	return strings.TrimSuffix(in, filepath.Ext(in)) + "-" + name + ext
}

func readLine(s *bufio.Scanner) string {
	if s.Scan() {
		return strings.TrimSpace(s.Text())
	}
	return ""
}
