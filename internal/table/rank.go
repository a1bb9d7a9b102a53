package table

// UnknownRank is returned for names that are not part of the dataset.
const UnknownRank = 999

// fixed placements, everything else follows in dataset order
var fixedRanks = map[string]int{
	"Kraken Pro": 1,
	"Binance":    2,
	"AscendEx":   3,
}

const firstOpenRank = 4

// Rank returns the display rank of name within allNames.
func Rank(name string, allNames []string) int {
	if r, ok := fixedRanks[name]; ok {
		return r
	}

	idx := 0
	for _, n := range allNames {
		if _, fixed := fixedRanks[n]; fixed {
			continue
		}
		if n == name {
			return firstOpenRank + idx
		}
		idx++
	}
	return UnknownRank
}

// Ranker answers Rank for one dataset without rescanning it.
type Ranker struct {
	ranks map[string]int
}

func NewRanker(allNames []string) *Ranker {
	ranks := make(map[string]int, len(allNames))
	for name, r := range fixedRanks {
		ranks[name] = r
	}

	idx := 0
	for _, n := range allNames {
		if _, fixed := fixedRanks[n]; fixed {
			continue
		}
		if _, seen := ranks[n]; !seen {
			ranks[n] = firstOpenRank + idx
		}
		idx++
	}
	return &Ranker{ranks: ranks}
}

func (r *Ranker) Rank(name string) int {
	if rank, ok := r.ranks[name]; ok {
		return rank
	}
	return UnknownRank
}
