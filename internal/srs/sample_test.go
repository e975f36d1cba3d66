package srs

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ints(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestSample(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		items   []int
		skip    int
		take    int
		wantLen int
	}{
		{name: "take fewer than available", items: ints(40), skip: 0, take: 20, wantLen: 20},
		{name: "fewer candidates than take", items: ints(10), skip: 0, take: 20, wantLen: 10},
		{name: "skip then take", items: ints(40), skip: 5, take: 10, wantLen: 10},
		{name: "skip past tail", items: ints(12), skip: 8, take: 10, wantLen: 4},
		{name: "skip beyond candidates", items: ints(5), skip: 5, take: 3, wantLen: 0},
		{name: "zero take", items: ints(5), skip: 0, take: 0, wantLen: 0},
		{name: "empty candidates", items: nil, skip: 0, take: 5, wantLen: 0},
		{name: "negative skip", items: ints(5), skip: -3, take: 2, wantLen: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rnd := rand.New(rand.NewSource(7))
			got := Sample(rnd, tt.items, tt.skip, tt.take)

			require.NotNil(t, got)
			assert.Len(t, got, tt.wantLen)

			seen := make(map[int]bool)
			for _, v := range got {
				assert.False(t, seen[v], "duplicate %d", v)
				seen[v] = true
				assert.Contains(t, tt.items, v)
			}
		})
	}
}

func TestSample_DoesNotModifyInput(t *testing.T) {
	t.Parallel()

	items := ints(30)
	_ = Sample(rand.New(rand.NewSource(1)), items, 0, 30)

	assert.Equal(t, ints(30), items)
}

func TestSample_Deterministic(t *testing.T) {
	t.Parallel()

	a := Sample(rand.New(rand.NewSource(99)), ints(100), 0, 10)
	b := Sample(rand.New(rand.NewSource(99)), ints(100), 0, 10)

	assert.Equal(t, a, b)
}

func TestSample_CoversAllItems(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(3))
	counts := make(map[int]int)
	for i := 0; i < 2000; i++ {
		for _, v := range Sample(rnd, ints(10), 0, 3) {
			counts[v]++
		}
	}

	assert.Len(t, counts, 10)
	for v, c := range counts {
		assert.Greater(t, c, 300, "item %d drawn %d times", v, c)
	}
}
