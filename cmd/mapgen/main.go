// Command mapgen generates a terrain map and prints it as text, ANSI
// colour, HTML or PNG.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"mapgen/internal/config"
	"mapgen/internal/generators/terrain"
	"mapgen/internal/logging"
	"mapgen/internal/render"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("want key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map returns the pairs as a map; later keys win.
func (l kvList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		k, v, _ := strings.Cut(kv, "=")
		out[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return out
}

type options struct {
	configFile string
	overrides  kvList
	format     string
	output     string
	scale      int
	seed       int64
	stats      bool
	dump       string
	logLevel   string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("mapgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configFile, "config", "", "YAML or TOML terrain config file")
	fs.Var(&opts.overrides, "set", "parameter override in key=value form (repeatable)")
	fs.StringVar(&opts.format, "format", "", "output format: text, ansi, html or png (default ansi on a terminal, text otherwise)")
	fs.StringVar(&opts.output, "o", "", "output file (default stdout)")
	fs.IntVar(&opts.scale, "scale", 4, "pixels per cell for png output")
	fs.Int64Var(&opts.seed, "seed", 0, "seed override; 0 keeps the configured seed")
	fs.BoolVar(&opts.stats, "stats", false, "print category statistics to stderr")
	fs.StringVar(&opts.dump, "dump-config", "", "print the effective config as yaml or toml and exit")
	fs.StringVar(&opts.logLevel, "log", "warn", "log level: debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

// buildConfig layers defaults, the config file, -set overrides and -seed.
func buildConfig(opts *options) (terrain.Config, error) {
	cfg := terrain.DefaultConfig()
	if opts.configFile != "" {
		loaded, err := config.Load(opts.configFile)
		if err != nil {
			return terrain.Config{}, err
		}
		cfg = loaded
	}
	cfg = terrain.ApplyMap(cfg, opts.overrides.Map())
	if opts.seed != 0 {
		cfg.Noise.Seed = opts.seed
	}
	return cfg, nil
}

// pickFormat resolves the output format. Without an explicit choice, colour
// is used only when writing to a terminal and NO_COLOR is unset.
func pickFormat(requested string, toTerminal bool) (render.Format, error) {
	if requested == "" {
		if toTerminal && os.Getenv("NO_COLOR") == "" {
			return render.FormatANSI, nil
		}
		return render.FormatText, nil
	}
	for _, f := range render.Formats() {
		if string(f) == requested {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q", requested)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func run(args []string, stdout, stderr io.Writer) (err error) {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	log := logging.New(opts.logLevel, stderr)

	cfg, err := buildConfig(opts)
	if err != nil {
		return err
	}
	if opts.dump != "" {
		out, err := config.Encode(cfg, config.Format(opts.dump))
		if err != nil {
			return err
		}
		_, err = stdout.Write(out)
		return err
	}

	p := terrain.Pipeline{Logger: log}
	res, err := p.Generate(cfg)
	if err != nil {
		return err
	}

	out := stdout
	if opts.output != "" {
		f, ferr := os.Create(opts.output)
		if ferr != nil {
			return fmt.Errorf("create output: %w", ferr)
		}
		defer closeOutput(&err, f)
		out = f
	}
	format, err := pickFormat(opts.format, isTerminal(out))
	if err != nil {
		return err
	}
	if format == render.FormatANSI {
		if f, ok := out.(*os.File); ok && isTerminal(f) {
			out = colorable.NewColorable(f)
		}
	}

	m := render.Map{W: res.Width, H: res.Height, Cells: res.CoreCells()}
	if err := render.Write(out, m, format, render.Options{Scale: opts.scale}); err != nil {
		return err
	}
	if opts.stats {
		printStats(stderr, res)
	}
	log.Debug("done", "map", res.ID.String(), "format", format)
	return nil
}

// closeOutput closes c and stores the failure in *errp unless an earlier
// error is already set.
func closeOutput(errp *error, c io.Closer) {
	if cerr := c.Close(); cerr != nil && *errp == nil {
		*errp = fmt.Errorf("close output: %w", cerr)
	}
}

func printStats(w io.Writer, res *terrain.Result) {
	fmt.Fprintf(w, "map %s  %dx%d  generated in %s\n", res.ID, res.Width, res.Height, res.Stats.Elapsed)
	for cat := terrain.Ocean; cat < terrain.NumCategories; cat++ {
		fmt.Fprintf(w, "  %-9s %6d  %5.1f%%\n", cat, res.Stats.Counts[cat], 100*res.Stats.Fraction(cat))
	}
	fmt.Fprintf(w, "  rivers %d, lakes %d\n", res.Stats.Rivers, res.Stats.Lakes)
	for _, warning := range res.Warnings {
		fmt.Fprintf(w, "  warning: %v\n", warning)
	}
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		slog.Error("mapgen failed", "err", err)
		os.Exit(1)
	}
}
