// internal/pkg/invoice/number_test.go
package invoice

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var invoicePattern = regexp.MustCompile(`^INV-(\d+)-(\d{3})$`)

func TestGeneratorFormat(t *testing.T) {
	t.Parallel()

	g := NewGenerator()
	number := g.Next()

	matches := invoicePattern.FindStringSubmatch(number)
	require.NotNil(t, matches, "invoice number %q does not match expected shape", number)

	ms, err := strconv.ParseInt(matches[1], 10, 64)
	require.NoError(t, err)
	assert.InDelta(t, time.Now().UnixMilli(), ms, float64(5*time.Second/time.Millisecond))

	suffix, err := strconv.Atoi(matches[2])
	require.NoError(t, err)
	assert.GreaterOrEqual(t, suffix, 0)
	assert.Less(t, suffix, 1000)
}

func TestGeneratorNoCollisionsInTightLoop(t *testing.T) {
	t.Parallel()

	g := NewGenerator()
	seen := make(map[string]struct{}, 1000)

	for i := 0; i < 1000; i++ {
		number := g.Next()
		_, dup := seen[number]
		require.False(t, dup, "duplicate invoice number %q at iteration %d", number, i)
		seen[number] = struct{}{}
	}
}

func TestGeneratorParseableAsLookupKey(t *testing.T) {
	t.Parallel()

	g := NewGenerator()
	number := g.Next()

	// The number is used verbatim as a URL segment and lookup key
	assert.True(t, strings.HasPrefix(number, "INV-"))
	assert.NotContains(t, number, "/")
	assert.NotContains(t, number, " ")
}

func TestGeneratorClockStuck(t *testing.T) {
	t.Parallel()

	g := NewGenerator()
	fixed := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return fixed }

	seen := make(map[string]struct{}, 2500)
	for i := 0; i < 2500; i++ {
		number := g.Next()
		_, dup := seen[number]
		require.False(t, dup, "duplicate %q with frozen clock", number)
		seen[number] = struct{}{}
		assert.Regexp(t, invoicePattern, number)
	}
}
