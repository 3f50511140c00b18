package lotto

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/alejandrodnm/lottodraw/internal/domain"
)

// Generator extrae tickets del bombo. Cada ticket parte de un bombo recién
// rellenado y se forma con ticketSize extracciones sin reemplazo.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator crea un Generator. Con rng nil se siembra con la hora.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// Generate rellena el bombo con 1..poolSize y extrae ticketSize números
// únicos. Falla con ErrConfiguration antes de tocar el bombo si el ticket
// no cabe en él.
func (g *Generator) Generate(pool *domain.Pool, poolSize, ticketSize int) (*domain.Ticket, error) {
	if ticketSize > poolSize {
		return nil, fmt.Errorf("lotto.Generate: ticket size %d exceeds pool size %d: %w",
			ticketSize, poolSize, domain.ErrConfiguration)
	}

	pool.Reset(poolSize)

	numbers := domain.NewNumberList()
	for numbers.Len() < ticketSize {
		n, err := g.drawOne(pool)
		if err != nil {
			return nil, fmt.Errorf("lotto.Generate: %w", err)
		}
		numbers.Add(n)
	}

	return domain.NewTicket(numbers), nil
}

// drawOne elige un índice uniforme entre los números que quedan en el bombo
// y extrae ese valor. Un fallo del remove no aborta la extracción: se
// registra y el número elegido se devuelve igualmente.
func (g *Generator) drawOne(pool *domain.Pool) (domain.Number, error) {
	if pool.IsEmpty() {
		return 0, fmt.Errorf("lotto.drawOne: %w", domain.ErrEmptyList)
	}

	n, err := pool.ValueAt(g.rng.Intn(pool.Len()))
	if err != nil {
		return 0, fmt.Errorf("lotto.drawOne: %w", err)
	}

	if err := pool.Remove(n); err != nil {
		slog.Warn("pool remove failed, continuing draw", "number", n, "err", err)
	}
	return n, nil
}
