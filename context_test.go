package ustr

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextPool(t *testing.T) {
	// Acquire a context from the pool
	ctx := acquireContext()

	// Modify the context
	ctx.record(0, 3)
	ctx.record(5, 8)
	assert.Equal(t, 2, ctx.count())

	// Reset the context
	ctx.reset()

	// Validate that the context is reset
	if ctx.count() != 0 || ctx.spill != nil {
		t.Errorf("Context was not properly reset")
	}

	// Return the context to the pool
	ctx.release()
}

func TestContextSpill(t *testing.T) {
	ctx := acquireContext()
	defer ctx.release()

	total := len(ctx.hits) + 10
	for i := 0; i < total; i++ {
		ctx.record(i*2, i*2+1)
	}

	assert.Equal(t, total, ctx.count())
	assert.Equal(t, span{0, 1}, ctx.at(0))
	assert.Equal(t, span{(total - 1) * 2, (total-1)*2 + 1}, ctx.at(total-1))
}

func TestContextTable(t *testing.T) {
	ctx := acquireContext()
	defer ctx.release()

	small := ctx.table(10)
	assert.Len(t, small, 10)
	assert.Same(t, &ctx.prefix[0], &small[0], "short needles reuse the pooled table")

	large := ctx.table(maxPooledNeedle + 1)
	assert.Len(t, large, maxPooledNeedle+1)
	assert.NotSame(t, &ctx.prefix[0], &large[0])
}

func TestContextPoolMemoryLeak(t *testing.T) {
	var wg sync.WaitGroup
	poolSize := 1000

	// Simulate concurrent usage of the context pool
	for i := 0; i < poolSize; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctx := acquireContext()
			ctx.record(1, 2)
			ctx.release()
		}()
	}

	// Wait for all goroutines to finish
	wg.Wait()

	// Every pooled context must come back empty with its fixed tables intact
	ctx := acquireContext()
	defer ctx.release()
	if ctx.count() != 0 || len(ctx.prefix) != maxPooledNeedle {
		t.Errorf("Pooled context was returned dirty")
	}
}
