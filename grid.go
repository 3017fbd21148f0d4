package aoc

// Pt is a point on a character grid. X grows rightward, Y downward.
type Pt struct {
	X, Y int
}

// ForNeighbors calls f for each of the eight neighbors of p until f
// returns false.
func (p Pt) ForNeighbors(f func(Pt) (keepGoing bool)) {
	for y := -1; y <= 1; y++ {
		for x := -1; x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}
