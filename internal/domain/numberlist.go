package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Number es un valor del bombo o de un ticket.
type Number int

// String devuelve la forma decimal del número.
func (n Number) String() string { return strconv.Itoa(int(n)) }

// NumberList es una secuencia ordenada de números. La inserción es siempre
// por el frente: el orden de iteración va del más reciente al más antiguo.
// La unicidad es disciplina del caller; el protocolo bombo/ticket nunca
// inserta un valor que siga presente.
type NumberList struct {
	values []Number // values[0] es el frente
}

// NewNumberList crea una lista vacía.
func NewNumberList() *NumberList {
	return &NumberList{}
}

// IsEmpty indica si la lista no tiene elementos.
func (l *NumberList) IsEmpty() bool { return len(l.values) == 0 }

// Len devuelve el número de elementos.
func (l *NumberList) Len() int { return len(l.values) }

// Add inserta n al frente de la lista.
func (l *NumberList) Add(n Number) {
	l.values = append(l.values, 0)
	copy(l.values[1:], l.values)
	l.values[0] = n
}

// ValueAt devuelve el valor en la posición i (0 es el frente).
func (l *NumberList) ValueAt(i int) (Number, error) {
	if i < 0 || i >= len(l.values) {
		return 0, fmt.Errorf("numberlist: index %d with length %d: %w", i, len(l.values), ErrOutOfRange)
	}
	return l.values[i], nil
}

// Has indica si n está en la lista.
func (l *NumberList) Has(n Number) bool {
	for _, v := range l.values {
		if v == n {
			return true
		}
	}
	return false
}

// Remove elimina la primera aparición de n buscando desde el frente.
// Devuelve ErrEmptyList si la lista está vacía y ErrNotFound si el valor
// no está; en ambos casos la lista queda intacta.
func (l *NumberList) Remove(n Number) error {
	if l.IsEmpty() {
		return fmt.Errorf("numberlist: remove %s: %w", n, ErrEmptyList)
	}
	for i, v := range l.values {
		if v == n {
			l.values = append(l.values[:i], l.values[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("numberlist: remove %s: %w", n, ErrNotFound)
}

// Clear vacía la lista conservando la capacidad.
func (l *NumberList) Clear() {
	l.values = l.values[:0]
}

// Values devuelve una copia de los valores, del frente hacia atrás.
func (l *NumberList) Values() []Number {
	out := make([]Number, len(l.values))
	copy(out, l.values)
	return out
}

// String renderiza la lista como "v1 -> v2 -> ... -> vn -> null", o
// exactamente "null" si está vacía.
func (l *NumberList) String() string {
	if l.IsEmpty() {
		return "null"
	}
	var sb strings.Builder
	for _, v := range l.values {
		sb.WriteString(v.String())
		sb.WriteString(" -> ")
	}
	sb.WriteString("null")
	return sb.String()
}
