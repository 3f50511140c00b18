package notify

import (
	"fmt"
	"time"

	"github.com/alejandrodnm/lottodraw/internal/domain"
)

// PrintJackpotReport prints the report for a jackpot search run.
func (c *Console) PrintJackpotReport(est *domain.JackpotEstimate) {
	if est == nil || est.Draws == 0 {
		fmt.Fprintln(c.out, "\n  No draws were run.")
		return
	}

	fmt.Fprintf(c.out, "\n")
	fmt.Fprintf(c.out, "========================================================\n")
	fmt.Fprintf(c.out, "  JACKPOT SEARCH REPORT\n")
	fmt.Fprintf(c.out, "========================================================\n\n")

	fmt.Fprintf(c.out, "  Draws run:        %s\n", c.count(est.Draws))
	fmt.Fprintf(c.out, "  Tickets sold:     %s\n", c.count(est.TicketsSold))
	fmt.Fprintf(c.out, "  Jackpot tickets:  %d\n", est.JackpotTickets)
	if odds := est.Odds(); odds > 0 {
		fmt.Fprintf(c.out, "  Empirical odds:   1 in %s per ticket\n", c.count(int(odds+0.5)))
	}
	fmt.Fprintf(c.out, "  Elapsed:          %s\n", est.Duration.Round(time.Millisecond))

	fmt.Fprintf(c.out, "\n  --- CUMULATIVE ACCOUNTING ---\n")
	fmt.Fprintf(c.out, "  Total revenue:  %s\n", c.money(est.TotalRevenue))
	fmt.Fprintf(c.out, "  Total prizes:   %s\n", c.money(est.TotalPrizes))
	fmt.Fprintf(c.out, "  House profit:   %s\n", c.money(est.Profit))

	if est.LastDraw == nil {
		fmt.Fprintf(c.out, "\n  Interrupted before any ticket hit the jackpot.\n\n")
		return
	}

	fmt.Fprintf(c.out, "\n  Winning draw %s: %s matched in full.\n\n",
		shortID(est.LastDraw.DrawID), est.LastDraw.Winning)
}
