package domain

import "fmt"

// PrizeTable mapea número de aciertos a premio. El índice es el número de
// aciertos: la tabla es densa, de longitud ticketSize+1, no decreciente, y
// todo lo que queda por debajo del mínimo de aciertos paga 0.
type PrizeTable []int64

// BuildPrizeTable construye la tabla por división descendente: el nivel
// máximo (ticketSize aciertos) paga topPrize y cada nivel inferior paga el
// anterior dividido por divisor, hasta llegar a minMatches.
//
// Ejemplo con 6 aciertos, mínimo 2, top 100000 y divisor 10:
//
//	aciertos: 0  1   2    3     4      5       6
//	premio:   0  0  10  100  1000  10000  100000
func BuildPrizeTable(ticketSize, minMatches int, topPrize, divisor int64) (PrizeTable, error) {
	switch {
	case ticketSize < 1:
		return nil, fmt.Errorf("prizetable: ticket size must be >= 1, got %d: %w", ticketSize, ErrConfiguration)
	case minMatches < 0:
		return nil, fmt.Errorf("prizetable: min matches must be >= 0, got %d: %w", minMatches, ErrConfiguration)
	case minMatches > ticketSize:
		return nil, fmt.Errorf("prizetable: min matches (%d) exceeds ticket size (%d): %w", minMatches, ticketSize, ErrConfiguration)
	case topPrize < 0:
		return nil, fmt.Errorf("prizetable: top prize must be >= 0, got %d: %w", topPrize, ErrConfiguration)
	case divisor < 1:
		return nil, fmt.Errorf("prizetable: divisor must be >= 1, got %d: %w", divisor, ErrConfiguration)
	}

	table := make(PrizeTable, ticketSize+1)
	prize := topPrize
	for m := ticketSize; m >= minMatches; m-- {
		table[m] = prize
		prize /= divisor
	}
	return table, nil
}

// Amount devuelve el premio para matches aciertos. Un valor por encima del
// rango de la tabla se recorta al nivel máximo; por debajo de 0 paga 0.
func (pt PrizeTable) Amount(matches int) int64 {
	if len(pt) == 0 || matches < 0 {
		return 0
	}
	if matches >= len(pt) {
		matches = len(pt) - 1
	}
	return pt[matches]
}

// Top devuelve el premio del nivel máximo.
func (pt PrizeTable) Top() int64 {
	if len(pt) == 0 {
		return 0
	}
	return pt[len(pt)-1]
}

// Resolve cuenta los aciertos de ticket contra winning y busca el premio en
// la tabla. Un recuento por encima del rango de la tabla se recorta al
// nivel máximo antes de devolverlo, y el premio se busca con el recuento ya
// recortado. Devuelve ErrNoPrizeTable si la tabla no se ha construido y
// ErrNoWinningTicket si no hay ticket ganador designado: los dos son
// errores de uso y abortan el sorteo en curso.
func Resolve(ticket, winning *Ticket, table PrizeTable) (matches int, prize int64, err error) {
	if len(table) == 0 {
		return 0, 0, fmt.Errorf("prizetable: resolve: %w", ErrNoPrizeTable)
	}
	if winning == nil {
		return 0, 0, fmt.Errorf("prizetable: resolve: %w", ErrNoWinningTicket)
	}
	matches = ticket.Matches(winning)
	if matches >= len(table) {
		matches = len(table) - 1
	}
	return matches, table.Amount(matches), nil
}
