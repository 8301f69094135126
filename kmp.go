package ustr

// buildPrefix fills table with, for each prefix of needle, the length of
// its longest proper prefix that is also a suffix.
func buildPrefix[U Unit](needle []U, table []int) {
	table[0] = 0
	k := 0
	for i := 1; i < len(needle); i++ {
		for k > 0 && needle[i] != needle[k] {
			k = table[k-1]
		}
		if needle[i] == needle[k] {
			k++
		}
		table[i] = k
	}
}

// scanKMP records every non-overlapping occurrence of needle in hay,
// left to right. After a hit the automaton restarts from scratch so the
// next occurrence cannot share units with the previous one.
func scanKMP[U Unit](ctx *searchContext, hay, needle []U) {
	m := len(needle)
	if m == 0 || m > len(hay) {
		return
	}
	table := ctx.table(m)
	buildPrefix(needle, table)

	k := 0
	for i := 0; i < len(hay); i++ {
		for k > 0 && hay[i] != needle[k] {
			k = table[k-1]
		}
		if hay[i] == needle[k] {
			k++
		}
		if k == m {
			ctx.record(i-m+1, i+1)
			k = 0
		}
	}
}

// scanCross records every non-overlapping occurrence of a needle stored in
// a different encoding. Each scalar boundary of hay is tried in turn by
// decoding both sides in lock-step, so the cost is O(n*m) scalars.
func scanCross[H, N Unit](ctx *searchContext, hay []H, needle []N) {
	if len(needle) == 0 {
		return
	}
	for off := 0; off < len(hay); {
		if end, ok := matchesAt(hay, off, needle); ok {
			ctx.record(off, end)
			off = end
			continue
		}
		off += widthAt(hay, off)
	}
}

// matchesAt reports whether needle's scalars appear in hay starting at off,
// and where the occurrence ends.
func matchesAt[H, N Unit](hay []H, off int, needle []N) (int, bool) {
	i, j := off, 0
	for j < len(needle) {
		if i >= len(hay) {
			return 0, false
		}
		r1, w1 := decodeAt(hay, i)
		r2, w2 := decodeAt(needle, j)
		if r1 != r2 {
			return 0, false
		}
		i += w1
		j += w2
	}
	return i, true
}

// scan dispatches to KMP when both sides share a unit width.
func scan[H, N Unit](ctx *searchContext, hay []H, needle []N) {
	if unitSize[H]() == unitSize[N]() {
		scanKMP(ctx, hay, recast[H](needle))
		return
	}
	scanCross(ctx, hay, needle)
}
