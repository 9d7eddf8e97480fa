package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Armavica/tsp"
)

// buildBlocks concatenates four blocks and returns the slice together with
// the Exchange boundaries around the two middle blocks.
func buildBlocks(v1, v2, v3, v4 []int) (seq []int, a, b, c int) {
	seq = make([]int, 0, len(v1)+len(v2)+len(v3)+len(v4))
	seq = append(seq, v1...)
	seq = append(seq, v2...)
	seq = append(seq, v3...)
	seq = append(seq, v4...)
	a = len(v1)
	b = a + len(v2)
	c = b + len(v3)

	return seq, a, b, c
}

func TestExchange_SwapsMiddleBlocks(t *testing.T) {
	tests := []struct {
		name           string
		v1, v2, v3, v4 []int
	}{
		{"equal blocks", []int{0}, []int{1, 2}, []int{3, 4}, []int{5}},
		{"left longer", []int{0}, []int{1, 2, 3, 4}, []int{5, 6}, []int{7}},
		{"right longer", []int{0}, []int{1, 2}, []int{3, 4, 5, 6, 7}, []int{8}},
		{"empty prefix", nil, []int{0, 1}, []int{2, 3, 4}, []int{5}},
		{"empty tail", []int{0}, []int{1, 2, 3}, []int{4}, nil},
		{"empty left block", []int{0}, nil, []int{1, 2}, []int{3}},
		{"empty right block", []int{0}, []int{1, 2}, nil, []int{3}},
		{"all empty", nil, nil, nil, nil},
		{"singletons", []int{9}, []int{7}, []int{8}, []int{6}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			seq, a, b, c := buildBlocks(tc.v1, tc.v2, tc.v3, tc.v4)

			want := make([]int, 0, len(seq))
			want = append(want, tc.v1...)
			want = append(want, tc.v3...)
			want = append(want, tc.v2...)
			want = append(want, tc.v4...)

			require.NoError(t, tsp.Exchange(seq, a, b, c))
			require.Equal(t, want, seq)
		})
	}
}

// TestExchange_RandomBlocks is the quickcheck-style four-block property:
// for any V1·V2·V3·V4, exchanging at (|V1|, |V1|+|V2|, |V1|+|V2|+|V3|)
// yields V1·V3·V2·V4.
func TestExchange_RandomBlocks(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))

	for trial := 0; trial < 500; trial++ {
		blocks := make([][]int, 4)
		label := 0
		for i := range blocks {
			blocks[i] = make([]int, rng.Intn(9))
			for j := range blocks[i] {
				blocks[i][j] = label
				label++
			}
		}

		seq, a, b, c := buildBlocks(blocks[0], blocks[1], blocks[2], blocks[3])
		want, _, _, _ := buildBlocks(blocks[0], blocks[2], blocks[1], blocks[3])

		require.NoError(t, tsp.Exchange(seq, a, b, c))
		require.Equal(t, want, seq, "blocks %v", blocks)
	}
}

// TestExchange_SelfInverse checks that re-exchanging with the new middle
// boundary a+(c-b) restores the original sequence.
func TestExchange_SelfInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))

	for trial := 0; trial < 200; trial++ {
		n := 2 + rng.Intn(20)
		seq := rng.Perm(n)
		orig := append([]int(nil), seq...)

		a := rng.Intn(n + 1)
		b := a + rng.Intn(n+1-a)
		c := b + rng.Intn(n+1-b)

		require.NoError(t, tsp.Exchange(seq, a, b, c))
		require.NoError(t, tsp.Exchange(seq, a, a+(c-b), c))
		require.Equal(t, orig, seq)
	}
}

func TestExchange_Rotation(t *testing.T) {
	// The result on [a:c] is exactly a rotation of that subrange by |B|.
	seq := []int{0, 1, 2, 3, 4, 5, 6, 7}
	require.NoError(t, tsp.Exchange(seq, 1, 4, 7))
	require.Equal(t, []int{0, 4, 5, 6, 1, 2, 3, 7}, seq)
}

func TestExchange_BadBoundaries(t *testing.T) {
	seq := []int{0, 1, 2, 3}

	tests := []struct {
		name    string
		a, b, c int
	}{
		{"negative a", -1, 1, 2},
		{"a beyond b", 3, 1, 2},
		{"b beyond c", 0, 3, 2},
		{"c beyond len", 0, 1, 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tsp.Exchange(seq, tc.a, tc.b, tc.c)
			require.ErrorIs(t, err, tsp.ErrOutOfRange)
			require.Equal(t, []int{0, 1, 2, 3}, seq, "sequence must be untouched on error")
		})
	}
}
