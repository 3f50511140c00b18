package domain

import "errors"

// Errores centinela del dominio. Las capas superiores los envuelven con
// fmt.Errorf("...: %w", err) y los clasifican con errors.Is.
var (
	ErrConfiguration   = errors.New("invalid draw configuration") // fatal: el sorteo no debe empezar
	ErrOutOfRange      = errors.New("index out of range")
	ErrEmptyList       = errors.New("list is empty")
	ErrNotFound        = errors.New("value not found")
	ErrNoPrizeTable    = errors.New("prize table not built")
	ErrNoWinningTicket = errors.New("no winning ticket designated")
)
