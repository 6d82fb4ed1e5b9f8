package main

import (
	"context"
	"flag"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"regexp"
	"slices"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"

	optargsinternal "github.com/jkelleyrtp/optargs/internal/optargs"
)

var Version = "dev"

var (
	bFlag      = flag.String("b", "", "comma-separated build tags")
	tFlag      = flag.Bool("t", false, "include tests")
	oFlag      = flag.String("o", "optargs_gen.go", "output file name")
	cFlag      = flag.String("c", "auto", "colorize (auto|always|never)")
	vFlag      = flag.Bool("v", false, "verbose logging")
	configFlag = flag.String("config", optargsinternal.SettingsFile, "settings file")
)

func init() {
	optargsinternal.Version = Version
}

func main() {
	flag.Parse()

	wd, err := os.Getwd()
	if err != nil {
		fatal(err)
	}

	configPath := *configFlag
	if !filepath.IsAbs(configPath) {
		configPath = filepath.Join(wd, configPath)
	}
	settings, err := optargsinternal.LoadSettings(configPath)
	if err != nil {
		fatal(err)
	}

	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	opts := settings.Apply(optargsinternal.Options{
		Tags:     *bFlag,
		Tests:    *tFlag,
		Output:   *oFlag,
		Color:    *cFlag,
		Patterns: flag.Args(),
	}, func(name string) bool { return explicit[name] })

	switch opts.Color {
	case "auto":
		color.NoColor = !isatty()
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		fatal(fmt.Sprintf("invalid -c value: %s", opts.Color))
	}

	level := zerolog.InfoLevel
	if *vFlag {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: color.NoColor}).
		Level(level).
		With().Timestamp().Logger()
	ctx := logger.WithContext(context.Background())

	if settings != nil {
		logger.Debug().Str("path", configPath).Msg("loaded settings")
	}

	outs, err := optargsinternal.Main(ctx, wd, os.Environ(), opts.Tags, opts.Tests, opts.Output, opts.Patterns)
	if err != nil {
		fmt.Fprintln(os.Stderr, colorize(err.Error()))
		os.Exit(1)
	}

	for _, out := range slices.Sorted(maps.Keys(outs)) {
		if err := os.WriteFile(out, outs[out], 0o644); err != nil {
			fatal(err)
		}

		if relOut, err := filepath.Rel(wd, out); err == nil {
			out = relOut
		}
		logger.Info().Str("out", out).Msg("generated")
	}
}

func fatal(msg any) {
	fmt.Fprintln(os.Stderr, red(fmt.Sprint(msg)))
	os.Exit(1)
}

// isatty reports whether the program is running in a terminal. If it is true,
// we can use ANSI color codes.
func isatty() bool {
	_, err := unix.IoctlGetWinsize(int(os.Stderr.Fd()), unix.TIOCGWINSZ)
	return err == nil
}

var (
	red   = color.New(color.FgRed).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
	faint = color.New(color.Faint).SprintFunc()

	reTab  = regexp.MustCompile(`(?m)^\t.+`)
	reHint = regexp.MustCompile(`^\tavailable keywords:`)
)

// colorize adds ANSI color codes to the message. Indented lines are details of
// the error above them. Hints are highlighted and the others are dimmed.
func colorize(message string) string {
	return reTab.ReplaceAllStringFunc(message, func(line string) string {
		if reHint.MatchString(line) {
			return cyan(line)
		}
		return faint(line)
	})
}
