package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/grayfold3/flashview/internal/app"
	"github.com/grayfold3/flashview/internal/flashstation"
)

// Exit codes. Anything unclassified exits 1.
const (
	exitOK        = 0
	exitOther     = 1
	exitUsage     = 2
	exitTransport = 3
	exitDecode    = 4
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		device  string
		generic bool
		raw     bool
		browse  bool
	)
	flag.StringVar(&device, "d", "", "device codename (e.g. komodo)")
	flag.StringVar(&device, "device", "", "device codename (e.g. komodo)")
	flag.BoolVar(&generic, "g", false, "include generic GSI images")
	flag.BoolVar(&generic, "generic", false, "include generic GSI images")
	flag.BoolVar(&raw, "r", false, "emit the raw response from the server")
	flag.BoolVar(&raw, "raw", false, "emit the raw response from the server")
	flag.BoolVar(&browse, "b", false, "browse results interactively")
	flag.BoolVar(&browse, "browse", false, "browse results interactively")
	configPath := flag.String("config", "", "override flashview config path (optional)")
	timeoutSeconds := flag.Int("timeout", 0, "HTTP timeout in seconds (optional)")
	verbose := flag.Bool("verbose", false, "enable debug logging on stderr")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger := zap.NewNop()
	if *verbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "flashview: init logger: %v\n", err)
			return exitOther
		}
		logger = dev
	}
	defer func() { _ = logger.Sync() }()

	opts := app.Options{
		Device:         device,
		IncludeGeneric: generic,
		Raw:            raw,
		Browse:         browse,
		ConfigPath:     *configPath,
		Logger:         logger,
	}
	if *timeoutSeconds > 0 {
		opts.Timeout = time.Duration(*timeoutSeconds) * time.Second
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "flashview: %v\n", err)
		return exitCode(err)
	}
	return exitOK
}

func exitCode(err error) int {
	var usageErr *app.UsageError
	var transportErr *flashstation.TransportError
	var decodeErr *flashstation.DecodeError

	switch {
	case errors.As(err, &usageErr):
		return exitUsage
	case errors.As(err, &transportErr):
		return exitTransport
	case errors.As(err, &decodeErr):
		return exitDecode
	}
	return exitOther
}
