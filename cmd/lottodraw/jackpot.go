package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/alejandrodnm/lottodraw/internal/adapters/notify"
	"github.com/alejandrodnm/lottodraw/internal/lotto"
)

func runJackpot(ctx context.Context, d *lotto.Drawer, notifier *notify.Console) {
	slog.Info("=== JACKPOT MODE: drawing until the top prize pays out ===")

	est, err := lotto.NewJackpotEstimator(d).Run(ctx)
	switch {
	case errors.Is(err, context.Canceled):
		slog.Warn("jackpot search cancelled", "draws", est.Draws)
	case err != nil:
		slog.Error("jackpot search failed", "err", err)
		os.Exit(1)
	}

	notifier.PrintJackpotReport(est)
	slog.Info("jackpot search complete", "draws", est.Draws, "tickets_sold", est.TicketsSold)
}
