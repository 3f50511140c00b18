package main

import (
	"context"
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alejandrodnm/lottodraw/config"
	"github.com/alejandrodnm/lottodraw/internal/adapters/notify"
	"github.com/alejandrodnm/lottodraw/internal/lotto"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	jackpot := flag.Bool("jackpot", false, "repeat draws until the top prize pays out and report the odds")
	table := flag.Bool("table", false, "print full tables (default: compact 1-line)")
	verbose := flag.Bool("verbose", false, "set log level to debug")
	logFormat := flag.String("format", "", "log format: text|json (overrides config)")
	seed := flag.Int64("seed", 0, "random seed, 0 seeds from the clock")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err, "path", *configPath)
		os.Exit(1)
	}

	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	setupLogger(cfg.Log)

	slog.Info("lottodraw starting",
		"config", *configPath,
		"pool_size", cfg.Draw.PoolSize,
		"ticket_size", cfg.Draw.TicketSize,
		"num_tickets", cfg.Draw.NumTickets,
		"jackpot", *jackpot,
	)

	notifier := notify.NewConsole(*table || *jackpot)

	drawCfg := lotto.DefaultConfig()
	drawCfg.PoolSize = cfg.Draw.PoolSize
	drawCfg.TicketSize = cfg.Draw.TicketSize
	drawCfg.NumTickets = cfg.Draw.NumTickets
	drawCfg.TicketPrice = cfg.Draw.TicketPrice
	drawCfg.MinMatches = cfg.Draw.MinMatches
	drawCfg.TopPrize = cfg.Draw.TopPrize
	drawCfg.PrizeDivisor = cfg.Draw.PrizeDivisor

	d := lotto.New(drawCfg, notifier, newRNG(*seed))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if *jackpot {
		runJackpot(ctx, d, notifier)
		return
	}

	if _, err := d.Run(ctx); err != nil {
		slog.Error("draw exited with error", "err", err)
		os.Exit(1)
	}

	slog.Info("lottodraw stopped cleanly")
}

// newRNG builds the shared random source. A fixed seed reproduces a run.
func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
