package domain

import "time"

// TicketResult is one purchased ticket resolved against the winning ticket.
type TicketResult struct {
	Ticket     *Ticket
	MatchCount int
	Prize      int64
}

// Won reports whether the ticket pays anything.
func (tr TicketResult) Won() bool { return tr.Prize > 0 }

// DrawResult holds the full accounting of one draw. A fresh value is built
// per draw; nothing here is shared between draws.
type DrawResult struct {
	DrawID      string
	Winning     *Ticket
	Table       PrizeTable
	PoolSize    int
	TicketPrice int64

	Tickets        []TicketResult // in purchase order
	TicketsSold    int
	TotalRevenue   int64
	TotalPrizes    int64
	Profit         int64 // TotalRevenue - TotalPrizes
	JackpotWinners int   // tickets that matched every number

	Duration time.Duration
}

// Winners returns the tickets that won something, in purchase order.
func (r *DrawResult) Winners() []TicketResult {
	var out []TicketResult
	for _, tr := range r.Tickets {
		if tr.Won() {
			out = append(out, tr)
		}
	}
	return out
}

// PoolNumbers returns the full drawable range in list order. Front
// insertion of 1..PoolSize leaves the highest number first.
func (r *DrawResult) PoolNumbers() []Number {
	out := make([]Number, r.PoolSize)
	for i := range out {
		out[i] = Number(r.PoolSize - i)
	}
	return out
}

// JackpotEstimate aggregates a run of draws repeated until the top prize
// tier paid out at least once.
type JackpotEstimate struct {
	Draws          int
	TicketsSold    int
	JackpotTickets int
	TotalRevenue   int64
	TotalPrizes    int64
	Profit         int64
	LastDraw       *DrawResult // the draw that paid the jackpot, nil if interrupted
	Duration       time.Duration
}

// Odds returns the empirical odds of a single ticket hitting the jackpot,
// as the N of "1 in N". Returns 0 before any jackpot was seen.
func (e *JackpotEstimate) Odds() float64 {
	if e.JackpotTickets == 0 {
		return 0
	}
	return float64(e.TicketsSold) / float64(e.JackpotTickets)
}
