package ustr

// Pos addresses a scalar boundary either counted from the front of a text or
// counted backward from its end. Positions are clamped to the text, so End
// and End.Minus(n) can be used without knowing the length up front.
type Pos struct {
	n       int
	fromEnd bool
}

// End is the boundary after the last scalar.
var End = Pos{fromEnd: true}

// Front addresses the boundary before the n-th scalar.
func Front(n int) Pos {
	return Pos{n: n}
}

// Minus moves a position n scalars toward the front.
func (p Pos) Minus(n int) Pos {
	if p.fromEnd {
		return Pos{n: p.n + n, fromEnd: true}
	}
	return Pos{n: p.n - n}
}

// Plus moves a position n scalars toward the end.
func (p Pos) Plus(n int) Pos {
	return p.Minus(-n)
}

// resolvePos turns p into a unit offset within units.
func resolvePos[U Unit](units []U, p Pos) int {
	if p.fromEnd {
		if p.n < 0 {
			return len(units)
		}
		return runeOffsetBack(units, p.n)
	}
	if p.n <= 0 {
		return 0
	}
	off, _ := runeOffset(units, p.n)
	return off
}
