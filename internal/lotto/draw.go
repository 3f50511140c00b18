package lotto

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/alejandrodnm/lottodraw/internal/domain"
	"github.com/alejandrodnm/lottodraw/internal/ports"
	"github.com/google/uuid"
)

// Valores del juego clásico: 6 aciertos sobre un bombo de 40.
const (
	defaultPoolSize     = 40
	defaultTicketSize   = 6
	defaultNumTickets   = 100
	defaultTicketPrice  = 10
	defaultMinMatches   = 2
	defaultTopPrize     = 100_000
	defaultPrizeDivisor = 10
)

// Config contiene los parámetros de un sorteo.
type Config struct {
	PoolSize     int   // números en el bombo (1..PoolSize)
	TicketSize   int   // números por ticket
	NumTickets   int   // tickets vendidos por sorteo
	TicketPrice  int64 // precio por ticket
	MinMatches   int   // aciertos mínimos que pagan premio
	TopPrize     int64 // premio del nivel máximo
	PrizeDivisor int64 // divisor entre niveles consecutivos de la tabla
}

// DefaultConfig devuelve la configuración del juego clásico.
func DefaultConfig() Config {
	return Config{
		PoolSize:     defaultPoolSize,
		TicketSize:   defaultTicketSize,
		NumTickets:   defaultNumTickets,
		TicketPrice:  defaultTicketPrice,
		MinMatches:   defaultMinMatches,
		TopPrize:     defaultTopPrize,
		PrizeDivisor: defaultPrizeDivisor,
	}
}

// Validate comprueba que la configuración permite empezar un sorteo.
func (c Config) Validate() error {
	switch {
	case c.PoolSize < 1:
		return fmt.Errorf("lotto.Config: pool size must be >= 1, got %d: %w", c.PoolSize, domain.ErrConfiguration)
	case c.TicketSize < 1:
		return fmt.Errorf("lotto.Config: ticket size must be >= 1, got %d: %w", c.TicketSize, domain.ErrConfiguration)
	case c.TicketSize > c.PoolSize:
		return fmt.Errorf("lotto.Config: ticket size (%d) exceeds pool size (%d): %w", c.TicketSize, c.PoolSize, domain.ErrConfiguration)
	case c.NumTickets < 0:
		return fmt.Errorf("lotto.Config: num tickets must be >= 0, got %d: %w", c.NumTickets, domain.ErrConfiguration)
	case c.TicketPrice < 0:
		return fmt.Errorf("lotto.Config: ticket price must be >= 0, got %d: %w", c.TicketPrice, domain.ErrConfiguration)
	case c.MinMatches < 1:
		return fmt.Errorf("lotto.Config: min matches must be >= 1, got %d: %w", c.MinMatches, domain.ErrConfiguration)
	case c.MinMatches > c.TicketSize:
		return fmt.Errorf("lotto.Config: min matches (%d) exceeds ticket size (%d): %w", c.MinMatches, c.TicketSize, domain.ErrConfiguration)
	case c.TopPrize < 0:
		return fmt.Errorf("lotto.Config: top prize must be >= 0, got %d: %w", c.TopPrize, domain.ErrConfiguration)
	case c.PrizeDivisor < 1:
		return fmt.Errorf("lotto.Config: prize divisor must be >= 1, got %d: %w", c.PrizeDivisor, domain.ErrConfiguration)
	}
	return nil
}

// Drawer orquesta sorteos completos.
type Drawer struct {
	cfg      Config
	gen      *Generator
	pool     *domain.Pool
	notifier ports.Notifier
}

// New crea un Drawer con las dependencias inyectadas. Un rng nil se siembra
// con la hora; un notifier nil desactiva la notificación.
func New(cfg Config, notifier ports.Notifier, rng *rand.Rand) *Drawer {
	return &Drawer{
		cfg:      cfg,
		gen:      NewGenerator(rng),
		pool:     domain.NewPool(),
		notifier: notifier,
	}
}

// Run ejecuta un sorteo, lo notifica y registra el resumen.
func (d *Drawer) Run(ctx context.Context) (*domain.DrawResult, error) {
	result, err := d.Draw()
	if err != nil {
		return nil, err
	}

	if d.notifier != nil {
		if err := d.notifier.Notify(ctx, result); err != nil {
			slog.Warn("notifier error", "err", err)
		}
	}

	slog.Info("draw complete",
		"draw_id", result.DrawID,
		"tickets", result.TicketsSold,
		"revenue", result.TotalRevenue,
		"prizes", result.TotalPrizes,
		"profit", result.Profit,
		"winners", len(result.Winners()),
		"duration", result.Duration.Round(time.Microsecond),
	)
	return result, nil
}

// Draw ejecuta el pipeline de un sorteo: tabla de premios, ticket ganador,
// NumTickets tickets resueltos en el momento, totales. Cada llamada parte
// de un DrawResult nuevo.
func (d *Drawer) Draw() (*domain.DrawResult, error) {
	start := time.Now()

	if err := d.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("lotto.Draw: %w", err)
	}

	table, err := domain.BuildPrizeTable(d.cfg.TicketSize, d.cfg.MinMatches, d.cfg.TopPrize, d.cfg.PrizeDivisor)
	if err != nil {
		return nil, fmt.Errorf("lotto.Draw: build prize table: %w", err)
	}

	winning, err := d.gen.Generate(d.pool, d.cfg.PoolSize, d.cfg.TicketSize)
	if err != nil {
		return nil, fmt.Errorf("lotto.Draw: winning ticket: %w", err)
	}
	slog.Debug("winning ticket drawn", "numbers", winning.String())

	result := &domain.DrawResult{
		DrawID:      uuid.New().String(),
		Winning:     winning,
		Table:       table,
		PoolSize:    d.cfg.PoolSize,
		TicketPrice: d.cfg.TicketPrice,
		Tickets:     make([]domain.TicketResult, 0, d.cfg.NumTickets),
	}

	for i := 0; i < d.cfg.NumTickets; i++ {
		ticket, err := d.gen.Generate(d.pool, d.cfg.PoolSize, d.cfg.TicketSize)
		if err != nil {
			return nil, fmt.Errorf("lotto.Draw: ticket %d: %w", i+1, err)
		}

		matches, prize, err := domain.Resolve(ticket, winning, table)
		if err != nil {
			return nil, fmt.Errorf("lotto.Draw: resolve ticket %d: %w", i+1, err)
		}

		result.Tickets = append(result.Tickets, domain.TicketResult{
			Ticket:     ticket,
			MatchCount: matches,
			Prize:      prize,
		})
		result.TicketsSold++
		result.TotalPrizes += prize
		if matches == d.cfg.TicketSize {
			result.JackpotWinners++
		}

		slog.Debug("ticket resolved",
			"ticket", ticket.String(), "matches", matches, "prize", prize)
	}

	result.TotalRevenue = int64(result.TicketsSold) * d.cfg.TicketPrice
	result.Profit = result.TotalRevenue - result.TotalPrizes
	result.Duration = time.Since(start)

	return result, nil
}
