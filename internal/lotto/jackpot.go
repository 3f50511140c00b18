package lotto

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alejandrodnm/lottodraw/internal/domain"
	"golang.org/x/time/rate"
)

const jackpotProgressEvery = 2 * time.Second

// JackpotEstimator repeats full draws until some ticket hits the top prize
// tier, to measure the empirical jackpot odds. Every iteration starts from
// a fresh DrawResult; the estimator only accumulates its own totals.
type JackpotEstimator struct {
	drawer   *Drawer
	progress rate.Sometimes
}

// NewJackpotEstimator creates an estimator over the given drawer.
func NewJackpotEstimator(d *Drawer) *JackpotEstimator {
	return &JackpotEstimator{
		drawer:   d,
		progress: rate.Sometimes{First: 1, Interval: jackpotProgressEvery},
	}
}

// Run draws until the jackpot is paid or ctx is cancelled. On cancellation
// it returns the partial estimate together with ctx.Err(). The search can
// take a while on realistic configurations: the expected number of tickets
// is the inverse of the single-ticket jackpot probability.
func (e *JackpotEstimator) Run(ctx context.Context) (*domain.JackpotEstimate, error) {
	start := time.Now()
	est := &domain.JackpotEstimate{}

	for {
		select {
		case <-ctx.Done():
			est.Duration = time.Since(start)
			slog.Info("jackpot search interrupted", "draws", est.Draws)
			return est, ctx.Err()
		default:
		}

		result, err := e.drawer.Draw()
		if err != nil {
			return nil, fmt.Errorf("lotto.JackpotEstimator: draw %d: %w", est.Draws+1, err)
		}

		est.Draws++
		est.TicketsSold += result.TicketsSold
		est.TotalRevenue += result.TotalRevenue
		est.TotalPrizes += result.TotalPrizes
		est.Profit += result.Profit
		est.JackpotTickets += result.JackpotWinners

		if result.JackpotWinners > 0 {
			est.LastDraw = result
			est.Duration = time.Since(start)
			slog.Info("jackpot paid",
				"draws", est.Draws,
				"tickets_sold", est.TicketsSold,
				"jackpot_tickets", est.JackpotTickets,
				"duration", est.Duration.Round(time.Millisecond),
			)
			return est, nil
		}

		e.progress.Do(func() {
			slog.Info("searching for a jackpot",
				"draws", est.Draws,
				"tickets_sold", est.TicketsSold,
				"profit", est.Profit,
			)
		})
	}
}
