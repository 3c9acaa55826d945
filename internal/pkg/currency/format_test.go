// internal/pkg/currency/format_test.go
package currency

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatIDR(t *testing.T) {
	t.Parallel()

	t.Run("carries the rupiah prefix", func(t *testing.T) {
		t.Parallel()

		got := FormatIDR(25000000)
		assert.True(t, strings.HasPrefix(got, "Rp"))
	})

	t.Run("no fractional digits", func(t *testing.T) {
		t.Parallel()

		got := FormatIDR(1500)
		assert.NotContains(t, got, ",5")
		assert.NotContains(t, got, ".5")

		digits := strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, got)
		assert.Equal(t, "1500", digits)
	})

	t.Run("zero", func(t *testing.T) {
		t.Parallel()

		digits := strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, FormatIDR(0))
		assert.Equal(t, "0", digits)
	})
}
