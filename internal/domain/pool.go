package domain

// Pool es el bombo: los números que todavía no se han extraído para el
// ticket en curso. Se vacía y se rellena con el rango completo antes de
// generar cada ticket, así todos los tickets parten del mismo bombo.
type Pool struct {
	list *NumberList
}

// NewPool crea un bombo vacío.
func NewPool() *Pool {
	return &Pool{list: NewNumberList()}
}

// Reset vacía el bombo y lo rellena con los enteros 1..poolSize. El orden
// de inserción solo importa para el renderizado.
func (p *Pool) Reset(poolSize int) {
	p.list.Clear()
	for i := 1; i <= poolSize; i++ {
		p.list.Add(Number(i))
	}
}

// Len devuelve cuántos números quedan en el bombo.
func (p *Pool) Len() int { return p.list.Len() }

// IsEmpty indica si el bombo está agotado.
func (p *Pool) IsEmpty() bool { return p.list.IsEmpty() }

// Has indica si n sigue en el bombo.
func (p *Pool) Has(n Number) bool { return p.list.Has(n) }

// ValueAt devuelve el número en la posición i sin extraerlo.
func (p *Pool) ValueAt(i int) (Number, error) { return p.list.ValueAt(i) }

// Remove extrae n del bombo.
func (p *Pool) Remove(n Number) error { return p.list.Remove(n) }

// Numbers devuelve una copia de los números restantes.
func (p *Pool) Numbers() []Number { return p.list.Values() }

// String renderiza el bombo con el formato de lista encadenada.
func (p *Pool) String() string { return p.list.String() }
