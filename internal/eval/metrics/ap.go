package metrics

import (
	"fmt"

	"github.com/rankeval/rankeval/internal/apperr"
)

// AveragePrecision computes average precision for a single query from the
// zero-based positions at which relevant documents occur in a ranked list.
//
// ranks must be strictly ascending; its length is the number of relevant
// documents actually retrieved and may be smaller than totalRelevant, the
// number of relevant documents that exist for the query. Malformed input is
// rejected rather than sorted, since a reordered slice would hide a caller
// bug behind a plausible-looking score.
//
// The result is the area under the precision-recall curve in [0, 1],
// integrated with one trapezoid per relevant document found: each found
// document contributes a recall increment of 1/totalRelevant, with precision
// interpolated linearly between the prefix just before it and the prefix
// that includes it. An empty ranks slice yields 0.
func AveragePrecision(ranks []int, totalRelevant int) (float64, error) {
	if totalRelevant <= 0 {
		return 0, apperr.NewValidation(fmt.Sprintf("total relevant must be positive, got %d", totalRelevant))
	}
	for i, r := range ranks {
		if r < 0 {
			return 0, apperr.NewValidation(fmt.Sprintf("rank at index %d is negative: %d", i, r))
		}
		if i > 0 && r <= ranks[i-1] {
			return 0, apperr.NewValidation(fmt.Sprintf("ranks must be strictly ascending, got %d after %d", r, ranks[i-1]))
		}
	}

	recallStep := 1.0 / float64(totalRelevant)
	var ap float64

	for j, rank := range ranks {
		// Precision over the empty prefix is taken as perfect.
		before := 1.0
		if rank > 0 {
			before = float64(j) / float64(rank)
		}
		after := float64(j+1) / float64(rank+1)
		ap += (before + after) * recallStep / 2
	}

	return ap, nil
}
