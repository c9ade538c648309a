package metrics

import "github.com/google/uuid"

// RelevantRanks returns the zero-based positions in ranked at which a
// relevant document occurs, ascending by construction. A document appearing
// more than once only counts at its first position.
func RelevantRanks(ranked []uuid.UUID, relevant map[uuid.UUID]bool) []int {
	seen := make(map[uuid.UUID]bool, len(relevant))
	var ranks []int
	for i, id := range ranked {
		if relevant[id] && !seen[id] {
			seen[id] = true
			ranks = append(ranks, i)
		}
	}
	return ranks
}
