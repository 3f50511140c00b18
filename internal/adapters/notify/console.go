package notify

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alejandrodnm/lottodraw/internal/domain"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Console implementa ports.Notifier.
type Console struct {
	out     io.Writer
	table   bool
	printer *message.Printer
}

// NewConsole crea un notificador que escribe a stdout.
func NewConsole(table bool) *Console {
	return &Console{
		out:     os.Stdout,
		table:   table,
		printer: message.NewPrinter(language.AmericanEnglish),
	}
}

// NewConsoleWriter crea un notificador para tests.
func NewConsoleWriter(w io.Writer, table bool) *Console {
	return &Console{
		out:     w,
		table:   table,
		printer: message.NewPrinter(language.AmericanEnglish),
	}
}

// Notify imprime el resultado del sorteo en el modo configurado.
func (c *Console) Notify(_ context.Context, result *domain.DrawResult) error {
	if result == nil {
		return nil
	}

	if c.table {
		c.printFull(result)
	} else {
		c.printCompact(result)
	}

	return nil
}

// printCompact imprime lo esencial en dos líneas.
func (c *Console) printCompact(r *domain.DrawResult) {
	now := time.Now().Format("15:04:05")
	winners := len(r.Winners())

	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s] draw %s: %d tickets x %s | revenue %s | prizes %s | profit %s | %d winners",
		now, shortID(r.DrawID), r.TicketsSold, c.money(r.TicketPrice),
		c.money(r.TotalRevenue), c.money(r.TotalPrizes), c.money(r.Profit), winners)
	if r.JackpotWinners > 0 {
		fmt.Fprintf(&sb, " | JACKPOT x%d", r.JackpotWinners)
	}
	fmt.Fprintf(&sb, "\n  winning: %s", r.Winning)

	fmt.Fprintln(c.out, sb.String())
}

// printFull imprime el bombo, el ticket ganador, la tabla de premios,
// todos los tickets vendidos y el resumen contable.
func (c *Console) printFull(r *domain.DrawResult) {
	now := time.Now().Format("15:04:05")
	fmt.Fprintf(c.out, "\n[%s] draw %s — %d tickets x %s\n\n",
		now, shortID(r.DrawID), r.TicketsSold, c.money(r.TicketPrice))

	fmt.Fprintf(c.out, "  Pool:    %s\n", joinNumbers(r.PoolNumbers()))
	fmt.Fprintf(c.out, "  Winning: %s\n\n", r.Winning)

	c.printPrizeTable(r.Table)
	c.printTickets(r)
	c.printSummary(r)
}

// printPrizeTable imprime la tabla aciertos → premio.
func (c *Console) printPrizeTable(pt domain.PrizeTable) {
	table := tablewriter.NewWriter(c.out)
	table.Header("Matches", "Prize")

	for m, prize := range pt {
		table.Append(fmt.Sprintf("%d", m), c.money(prize))
	}

	table.Render()
}

// printTickets imprime una fila por ticket vendido.
func (c *Console) printTickets(r *domain.DrawResult) {
	table := tablewriter.NewWriter(c.out)
	table.Header("#", "Ticket", "Matches", "Prize")

	for i, tr := range r.Tickets {
		prizeLabel := "-"
		if tr.Won() {
			prizeLabel = c.money(tr.Prize)
		}

		table.Append(
			fmt.Sprintf("%d", i+1),
			tr.Ticket.String(),
			fmt.Sprintf("%d", tr.MatchCount),
			prizeLabel,
		)
	}

	table.Render()
}

// printSummary imprime la contabilidad del sorteo.
func (c *Console) printSummary(r *domain.DrawResult) {
	fmt.Fprintf(c.out, "\n  --- DRAW SUMMARY ---\n")
	fmt.Fprintf(c.out, "  Tickets sold:   %d\n", r.TicketsSold)
	fmt.Fprintf(c.out, "  Ticket price:   %s\n", c.money(r.TicketPrice))
	fmt.Fprintf(c.out, "  Total revenue:  %s\n", c.money(r.TotalRevenue))
	fmt.Fprintf(c.out, "  Total prizes:   %s\n", c.money(r.TotalPrizes))
	fmt.Fprintf(c.out, "  Profit:         %s\n", c.money(r.Profit))
	fmt.Fprintf(c.out, "  Winners:        %d", len(r.Winners()))
	if r.JackpotWinners > 0 {
		fmt.Fprintf(c.out, " (%d jackpot)", r.JackpotWinners)
	}
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out)
}

// --- helpers ---

// money formatea un importe con los separadores de la locale.
func (c *Console) money(v int64) string {
	return c.printer.Sprintf("$%d", v)
}

// count formatea un contador con los separadores de la locale.
func (c *Console) count(v int) string {
	return c.printer.Sprintf("%d", v)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func joinNumbers(nums []domain.Number) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = n.String()
	}
	return strings.Join(parts, " -> ")
}
