package ustr

// Match returns a view over every non-overlapping occurrence of needle in
// hay, scanning left to right. Operands of the same width are searched with
// Knuth-Morris-Pratt over raw units; otherwise both sides are decoded
// scalar by scalar. An empty needle matches nothing.
func Match[H, N Unit](hay Text[H], needle Text[N]) []View[H] {
	units := hay.Raw()
	ctx := acquireContext()
	defer ctx.release()

	scan(ctx, units, needle.Raw())

	// ONE allocation for the result slice
	n := ctx.count()
	if n == 0 {
		return nil
	}
	out := make([]View[H], n)
	for i := range out {
		sp := ctx.at(i)
		out[i] = View[H]{units: units[sp.start:sp.end:sp.end]}
	}
	return out
}

// IndexAll returns the unit offset of every occurrence Match would report.
func IndexAll[H, N Unit](hay Text[H], needle Text[N]) []int {
	ctx := acquireContext()
	defer ctx.release()

	scan(ctx, hay.Raw(), needle.Raw())

	n := ctx.count()
	if n == 0 {
		return nil
	}
	out := make([]int, n)
	for i := range out {
		out[i] = ctx.at(i).start
	}
	return out
}

// Split cuts hay at every occurrence of divider and returns the pieces in
// between, including an empty leading or trailing piece when hay starts or
// ends with divider. It returns nil when divider does not occur, and when
// its only occurrence is hay itself since nothing is left on either side.
func Split[H, N Unit](hay Text[H], divider Text[N]) []View[H] {
	units := hay.Raw()
	ctx := acquireContext()
	defer ctx.release()

	scan(ctx, units, divider.Raw())

	n := ctx.count()
	if n == 0 {
		return nil
	}
	if first := ctx.at(0); n == 1 && first.start == 0 && first.end == len(units) {
		return nil
	}

	out := make([]View[H], 0, n+1)
	prev := 0
	for i := 0; i < n; i++ {
		sp := ctx.at(i)
		out = append(out, View[H]{units: units[prev:sp.start:sp.start]})
		prev = sp.end
	}
	return append(out, View[H]{units: units[prev:len(units):len(units)]})
}

// Index returns the unit offset of the first occurrence of needle in hay,
// or -1.
func Index[H, N Unit](hay Text[H], needle Text[N]) int {
	units, sub := hay.Raw(), needle.Raw()
	if len(sub) == 0 {
		return -1
	}
	if unitSize[H]() == unitSize[N]() {
		m := len(sub)
		if m > len(units) {
			return -1
		}
		ctx := acquireContext()
		defer ctx.release()
		table := ctx.table(m)
		same := recast[H](sub)
		buildPrefix(same, table)
		k := 0
		for i := 0; i < len(units); i++ {
			for k > 0 && units[i] != same[k] {
				k = table[k-1]
			}
			if units[i] == same[k] {
				k++
			}
			if k == m {
				return i - m + 1
			}
		}
		return -1
	}
	for off := 0; off < len(units); off += widthAt(units, off) {
		if _, ok := matchesAt(units, off, sub); ok {
			return off
		}
	}
	return -1
}

// Contains reports whether needle occurs in hay. An empty needle is never
// contained, since Match reports no occurrence for it.
func Contains[H, N Unit](hay Text[H], needle Text[N]) bool {
	return Index(hay, needle) >= 0
}

// StartsWith reports whether the first Length(prefix) scalars of hay equal
// prefix.
func StartsWith[H, N Unit](hay Text[H], prefix Text[N]) bool {
	p := prefix.Raw()
	head := ViewOf(hay).Slice(Front(0), Front(countRunes(p)))
	return Equal[H, N](head, Literal[N](p))
}

// EndsWith reports whether the last Length(suffix) scalars of hay equal
// suffix.
func EndsWith[H, N Unit](hay Text[H], suffix Text[N]) bool {
	p := suffix.Raw()
	tail := ViewOf(hay).Slice(End.Minus(countRunes(p)), End)
	return Equal[H, N](tail, Literal[N](p))
}
