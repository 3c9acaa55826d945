// internal/pkg/invoice/number.go
package invoice

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Generator produces invoice numbers in the form
// INV-<millisecond epoch>-<3 digit zero padded random>.
//
// The random suffix alone gives only 1000 values per millisecond, so
// back-to-back calls could collide. The generator remembers which
// suffixes it has issued for the current millisecond and re-rolls on a
// repeat; when a millisecond is exhausted it moves to the next one.
// This makes numbers unique within a process while keeping the exact
// wire format. Cross-process uniqueness still rests on the timestamp
// plus the database's unique index.
type Generator struct {
	mu   sync.Mutex
	rand *rand.Rand
	ms   int64
	used map[int]struct{}
	now  func() time.Time
}

// NewGenerator creates an invoice number generator
func NewGenerator() *Generator {
	return &Generator{
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
		used: make(map[int]struct{}),
		now:  time.Now,
	}
}

// Next returns a fresh invoice number
func (g *Generator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms < g.ms {
		// Clock went backwards; keep issuing from the last window
		ms = g.ms
	}
	if ms != g.ms {
		g.ms = ms
		g.used = make(map[int]struct{})
	}

	for len(g.used) >= 1000 {
		g.ms++
		g.used = make(map[int]struct{})
	}

	suffix := g.rand.Intn(1000)
	for {
		if _, taken := g.used[suffix]; !taken {
			break
		}
		suffix = (suffix + 1) % 1000
	}
	g.used[suffix] = struct{}{}

	return fmt.Sprintf("INV-%d-%03d", g.ms, suffix)
}
