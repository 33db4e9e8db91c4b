package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dingutil/flashborder/internal/color"
	"github.com/dingutil/flashborder/internal/config"
	"github.com/dingutil/flashborder/internal/flash"
	"github.com/dingutil/flashborder/internal/overlay"
	"github.com/dingutil/flashborder/internal/x11"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// options holds everything parsed from the command line.
type options struct {
	cfg        config.Config
	listColors bool
	verbose    bool
}

func run(args []string) int {
	opts, err := parseArgs(args, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if opts.listColors {
		printPalette(os.Stdout)
		return 0
	}

	if err := opts.cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	return flashBorder(opts.cfg, logger)
}

func flashBorder(cfg config.Config, logger *slog.Logger) int {
	c := color.Parse(cfg.Color)
	logger.Debug("resolved color", "input", cfg.Color, "hex", c.Hex())

	conn, err := x11.NewConnection()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		fmt.Fprintln(os.Stderr, "Is an X server running and DISPLAY set?")
		return 1
	}
	defer conn.Close()

	monitors := conn.Monitors()
	for _, mon := range monitors {
		logger.Debug("monitor",
			"name", mon.Name,
			"x", mon.X, "y", mon.Y,
			"width", mon.Width, "height", mon.Height)
	}

	set, err := overlay.New(conn, monitors, color.Pixel(c), cfg.Width)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		fmt.Fprintln(os.Stderr, "The X server must support the Shape extension.")
		return 1
	}
	defer set.Destroy()
	logger.Debug("overlays created", "count", set.Len())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctrl := &flash.Controller{
		Hold:    cfg.HoldDuration(),
		Fade:    cfg.FadeDuration(),
		Surface: set,
		Logger:  logger,
	}
	if err := ctrl.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			// Interrupted by a signal; tear down quietly.
			return 0
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	return 0
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	opts := options{cfg: config.Default()}

	fs := flag.NewFlagSet("flashborder", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr) }

	fs.StringVar(&opts.cfg.Color, "color", opts.cfg.Color, "Border color (name or #hex)")
	fs.StringVar(&opts.cfg.Color, "c", opts.cfg.Color, "Border color (shorthand)")
	fs.IntVar(&opts.cfg.Width, "width", opts.cfg.Width, "Border width in pixels")
	fs.IntVar(&opts.cfg.Width, "w", opts.cfg.Width, "Border width (shorthand)")
	fs.Float64Var(&opts.cfg.Hold, "hold", opts.cfg.Hold, "How long to show the border (seconds)")
	fs.Float64Var(&opts.cfg.Fade, "fade", opts.cfg.Fade, "Fade-out duration (seconds)")
	fs.BoolVar(&opts.listColors, "list-colors", false, "List named colors and exit")
	fs.BoolVar(&opts.verbose, "verbose", false, "Enable debug logging")
	fs.BoolVar(&opts.verbose, "v", false, "Enable debug logging (shorthand)")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() != 0 {
		fmt.Fprintf(stderr, "unexpected argument: %s\n\n", fs.Arg(0))
		printUsage(stderr)
		return opts, fmt.Errorf("unexpected arguments")
	}

	return opts, nil
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: flashborder [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Flash a colored border around all connected displays, then fade it out.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  --color, -c <name|#hex>   Border color (default: orange)")
	fmt.Fprintln(w, "  --width, -w <pixels>      Border width in pixels (default: 6)")
	fmt.Fprintln(w, "  --hold <seconds>          How long to show the border (default: 0.4)")
	fmt.Fprintln(w, "  --fade <seconds>          Fade-out duration, <=0 to skip (default: 0.3)")
	fmt.Fprintln(w, "  --list-colors             List named colors and exit")
	fmt.Fprintln(w, "  --verbose, -v             Enable debug logging")
	fmt.Fprintln(w, "  --help, -h                Show this help")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "The fade needs a running compositor to be visible; without one the")
	fmt.Fprintln(w, "border simply disappears when the flash ends.")
}
