package randompkg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDigits(t *testing.T) {
	for _, n := range []int{1, 6, 10} {
		got := Digits(n)
		require.Len(t, got, n)

		for _, c := range got {
			require.Contains(t, "0123456789", string(c))
		}
	}
}

func TestNumericIDAvoidsExisting(t *testing.T) {
	// All single-digit identifiers but one are taken, so the generator must
	// retry until it lands on the only free one.
	existing := make(map[string]struct{})
	for _, d := range strings.Split("012345678", "") {
		existing[d] = struct{}{}
	}

	got := NumericID(existing, 1)
	require.Equal(t, "9", got)
}

func TestNumericIDSequentialIssuance(t *testing.T) {
	existing := make(map[string]struct{})

	for i := 0; i < 500; i++ {
		id := NumericID(existing, 6)
		require.Len(t, id, 6)

		_, taken := existing[id]
		require.False(t, taken, "identifier %q issued twice", id)

		existing[id] = struct{}{}
	}
}
