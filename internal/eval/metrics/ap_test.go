package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rankeval/rankeval/internal/apperr"
)

func TestAveragePrecision(t *testing.T) {
	tests := []struct {
		name          string
		ranks         []int
		totalRelevant int
		want          float64
	}{
		{
			name:          "empty ranks",
			ranks:         nil,
			totalRelevant: 5,
			want:          0,
		},
		{
			name:          "single relevant at top",
			ranks:         []int{0},
			totalRelevant: 1,
			want:          1.0,
		},
		{
			name:          "perfect ranking of three",
			ranks:         []int{0, 1, 2},
			totalRelevant: 3,
			want:          1.0,
		},
		{
			name:          "perfect ranking of ten",
			ranks:         []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
			totalRelevant: 10,
			want:          1.0,
		},
		{
			name:          "single relevant at position 1",
			ranks:         []int{1},
			totalRelevant: 1,
			// precision before = 1.0 (empty-prefix convention), after = 1/2
			want: (1.0 + 1.0/2.0) / 2.0,
		},
		{
			name:          "single relevant at position 4",
			ranks:         []int{4},
			totalRelevant: 1,
			want:          (1.0 + 1.0/5.0) / 2.0,
		},
		{
			name:          "alternating relevant",
			ranks:         []int{0, 2, 4},
			totalRelevant: 3,
			// 1/3 + (1/2 + 2/3)/6 + (1/2 + 3/5)/6 = 32/45
			want: 32.0 / 45.0,
		},
		{
			name:          "partial retrieval",
			ranks:         []int{0, 1},
			totalRelevant: 4,
			// two of four relevant found, both at the top: half the area
			want: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AveragePrecision(tt.ranks, tt.totalRelevant)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestAveragePrecision_ClosedFormSingleRelevant(t *testing.T) {
	// AP for a single relevant item at rank k is (1 + 1/(k+1))/2, with the
	// k == 0 case covered by the empty-prefix convention.
	for k := 0; k < 20; k++ {
		got, err := AveragePrecision([]int{k}, 1)
		require.NoError(t, err)
		assert.InDelta(t, (1.0+1.0/float64(k+1))/2.0, got, 1e-9, "k=%d", k)
	}
}

func TestAveragePrecision_Bounds(t *testing.T) {
	cases := [][]int{
		nil,
		{0},
		{3},
		{0, 1, 2},
		{1, 5, 9},
		{0, 7, 8, 20, 99},
	}

	for _, ranks := range cases {
		for _, total := range []int{len(ranks) + 1, 10, 100} {
			got, err := AveragePrecision(ranks, total)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		}
	}
}

func TestAveragePrecision_MovingRelevantEarlierNeverHurts(t *testing.T) {
	// Promoting any single relevant document (holding the others fixed)
	// must not decrease AP.
	base := []int{2, 5, 9}
	baseAP, err := AveragePrecision(base, 5)
	require.NoError(t, err)

	promotions := [][]int{
		{1, 5, 9},
		{0, 5, 9},
		{2, 4, 9},
		{2, 3, 9},
		{2, 5, 8},
		{2, 5, 6},
	}

	for _, ranks := range promotions {
		got, err := AveragePrecision(ranks, 5)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, baseAP, "ranks=%v", ranks)
	}
}

func TestAveragePrecision_InvalidInput(t *testing.T) {
	tests := []struct {
		name          string
		ranks         []int
		totalRelevant int
	}{
		{name: "zero total relevant", ranks: []int{0}, totalRelevant: 0},
		{name: "negative total relevant", ranks: []int{0}, totalRelevant: -3},
		{name: "negative rank", ranks: []int{-1, 2}, totalRelevant: 2},
		{name: "descending ranks", ranks: []int{4, 2}, totalRelevant: 2},
		{name: "duplicate ranks", ranks: []int{3, 3}, totalRelevant: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AveragePrecision(tt.ranks, tt.totalRelevant)
			require.Error(t, err)

			var ve *apperr.ValidationError
			assert.ErrorAs(t, err, &ve)
		})
	}
}
