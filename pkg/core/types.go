package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Contains reports whether (x, y) lies inside the grid.
func (s Size) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.W && y < s.H
}

// Grid is the read-only view renderers and serializers consume.
type Grid interface {
	Size() Size
	Alive(x, y int) bool
}

// Automaton is a Grid that can advance one generation at a time.
type Automaton interface {
	Grid
	Name() string
	Step()
	Generation() int
}
