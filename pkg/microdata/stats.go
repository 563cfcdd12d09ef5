package microdata

import "sort"

// Gini returns the weighted Gini coefficient of the series. Units are
// rank-ordered by value and the index is computed from cumulative weights,
// so a unit with weight 500 contributes as 500 identical units would.
// Degenerate inputs (zero total weight or zero weighted sum) yield 0.
func (s *Series) Gini() float64 {
	idx := s.sortedIndex()
	var cumWeight, weightedTotal, area float64
	for _, i := range idx {
		w := s.weights[i]
		v := s.values[i]
		cumWeight += w
		// Each unit occupies the weight band (cumWeight-w, cumWeight];
		// its mean rank is the band midpoint.
		area += v * w * (cumWeight - w/2)
		weightedTotal += v * w
	}
	if cumWeight == 0 || weightedTotal == 0 {
		return 0
	}
	return 2*area/(cumWeight*weightedTotal) - 1
}

// TopShare returns the fraction of the total weighted value held by the
// top `fraction` of units ranked by value. The boundary unit is included
// pro-rata so the cut lands exactly on the requested population share.
func (s *Series) TopShare(fraction float64) float64 {
	total := s.Sum()
	population := s.Count()
	if total == 0 || population == 0 {
		return 0
	}
	idx := s.sortedIndex()
	target := fraction * population
	var taken, top float64
	for j := len(idx) - 1; j >= 0 && taken < target; j-- {
		i := idx[j]
		w := s.weights[i]
		if taken+w > target {
			w = target - taken
		}
		top += s.values[i] * w
		taken += w
	}
	return top / total
}

// sortedIndex returns the series indices ordered by ascending value. Ties
// keep their original order so repeated runs produce identical results.
func (s *Series) sortedIndex() []int {
	idx := make([]int, len(s.values))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return s.values[idx[a]] < s.values[idx[b]]
	})
	return idx
}
