package ustr

import "sync"

// maxPooledNeedle is the longest needle whose prefix table fits in a pooled
// context. Longer needles get a table of their own.
const maxPooledNeedle = 256

// span is a half-open unit range [start, end) within a haystack.
type span struct {
	start, end int
}

// searchContext holds pre-allocated scratch memory for one search
type searchContext struct {
	// Longest-proper-prefix-suffix table for the current needle
	prefix [maxPooledNeedle]int

	// Occurrences found so far; overflow goes to spill
	hits    [64]span
	hitsLen int
	spill   []span
}

// Zero-allocation context pool to reuse searchContext instances
var contextPool = sync.Pool{
	New: func() interface{} {
		return &searchContext{}
	},
}

// acquireContext takes a context from the pool.
func acquireContext() *searchContext {
	return contextPool.Get().(*searchContext)
}

// release resets the context and returns it to the pool.
func (ctx *searchContext) release() {
	ctx.reset()
	contextPool.Put(ctx)
}

// reset clears the context for reuse without allocating
func (ctx *searchContext) reset() {
	ctx.hitsLen = 0
	ctx.spill = nil
}

// table returns a prefix table able to hold n entries.
func (ctx *searchContext) table(n int) []int {
	if n <= len(ctx.prefix) {
		return ctx.prefix[:n]
	}
	return make([]int, n)
}

// record stores one occurrence.
func (ctx *searchContext) record(start, end int) {
	if ctx.hitsLen < len(ctx.hits) {
		ctx.hits[ctx.hitsLen] = span{start, end}
		ctx.hitsLen++
		return
	}
	ctx.spill = append(ctx.spill, span{start, end})
}

// count returns the number of recorded occurrences.
func (ctx *searchContext) count() int {
	return ctx.hitsLen + len(ctx.spill)
}

// at returns the i-th recorded occurrence.
func (ctx *searchContext) at(i int) span {
	if i < ctx.hitsLen {
		return ctx.hits[i]
	}
	return ctx.spill[i-ctx.hitsLen]
}
