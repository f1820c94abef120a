package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/grayfold3/flashview/internal/config"
	"github.com/grayfold3/flashview/internal/flashstation"
	"github.com/grayfold3/flashview/internal/prefs"
	"github.com/grayfold3/flashview/internal/report"
	"github.com/grayfold3/flashview/internal/ui"
)

// UsageError reports invalid command-line input. It is raised before any
// network traffic happens.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

// Options configure one flashview invocation. Zero values mean defaults;
// Stdout and Fetcher are injectable for tests.
type Options struct {
	Device         string
	IncludeGeneric bool
	Raw            bool
	Browse         bool
	ConfigPath     string
	PrefsPath      string
	Timeout        time.Duration

	Stdout  io.Writer
	Fetcher flashstation.Fetcher
	Logger  *zap.Logger
}

// Run performs the lookup/fetch/print pipeline (or hands the result to the
// interactive browser) and returns the first error encountered.
func Run(ctx context.Context, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	out := opts.Stdout
	if out == nil {
		out = os.Stdout
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	device := strings.TrimSpace(opts.Device)
	if device == "" {
		device = userPrefs.Device
	}
	if device == "" {
		return &UsageError{Msg: "device codename is required (pass -d or set device in prefs)"}
	}

	fetcher := opts.Fetcher
	if fetcher == nil {
		cfg, err := config.Load(opts.ConfigPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		timeout := cfg.Timeout()
		if opts.Timeout > 0 {
			timeout = opts.Timeout
		}
		client, err := flashstation.NewClient(flashstation.Settings{
			PortalURL: cfg.PortalURL,
			BuildsURL: cfg.BuildsURL,
			UserAgent: cfg.UserAgent,
			Timeout:   timeout,
			Logger:    logger,
		})
		if err != nil {
			return fmt.Errorf("init flashstation client: %w", err)
		}
		fetcher = client
	}

	query := flashstation.Query{Codename: device, IncludeGeneric: opts.IncludeGeneric}

	lookup, err := fetcher.Lookup(ctx, query)
	if err != nil {
		return err
	}
	logger.Debug("lookup complete",
		zap.String("device", device),
		zap.Int("products", len(lookup.Products)))

	result, err := fetcher.FetchBuilds(ctx, lookup)
	if err != nil {
		return err
	}

	if opts.Raw {
		return report.WriteJSON(out, result.Raw)
	}

	summary := report.Summarize(result.Builds, opts.IncludeGeneric)

	if opts.Browse {
		return ui.Run(ui.Options{
			Device:    device,
			Summary:   summary,
			ThemeName: userPrefs.Theme,
			PrefsPath: opts.PrefsPath,
		})
	}

	return report.WriteJSON(out, summary)
}
