// Package pareto implements a bounded archive of mutually non-dominated
// MVRPPD solutions.
//
// =============================================================================
// Archive semantics
// =============================================================================
//
// Solutions are kept in an ordered, deduplicated set keyed by Solution.Less
// (mirroring a std::set<Solution> keyed by operator<): inserting a solution
// that is Less-equivalent to one already present is a no-op. Once the set
// exceeds its configured maximum size, it is organized into fronts of
// mutually non-dominated solutions via fast non-dominated sorting, each
// front is ordered internally by crowding distance (most-isolated first),
// and the most-crowded member of the worst front is evicted until the set
// fits within its bound again.
// =============================================================================
package pareto

import (
	"math"
	"sort"

	"mvrppd/internal/solution"
)

// Archive is a bounded, deduplicated set of MVRPPD solutions, organized
// into non-dominated fronts on demand.
type Archive struct {
	maxSize int

	// solutions is kept sorted by Solution.Less at all times, so it also
	// doubles as this archive's iteration order.
	solutions []*solution.Solution

	fronts           [][]*solution.Solution
	minTotalProfitsF []float64
	maxTotalProfitsF []float64
	minSumTFulfillsF []float64
	maxSumTFulfillsF []float64

	sorted bool
}

// New creates an empty archive bounded to maxSize solutions.
func New(maxSize int) *Archive {
	return &Archive{maxSize: maxSize}
}

// NewFromSolutions creates an archive bounded to maxSize, pre-populated
// with solutions (deduplicated by Less-equivalence).
func NewFromSolutions(maxSize int, solutions []*solution.Solution) *Archive {
	a := &Archive{maxSize: maxSize}
	for _, s := range solutions {
		a.insertOne(s)
	}
	if len(a.solutions) > a.maxSize {
		a.sortArchive()
	}
	return a
}

// MaxSize returns the archive's maximum size.
func (a *Archive) MaxSize() int { return a.maxSize }

// Size returns the number of solutions currently held.
func (a *Archive) Size() int { return len(a.solutions) }

// Solutions returns the archive's solutions in Less order.
func (a *Archive) Solutions() []*solution.Solution {
	out := make([]*solution.Solution, len(a.solutions))
	copy(out, a.solutions)
	return out
}

// Insert adds solution s to the archive, triggering a re-sort and
// eviction of the most-crowded member of the worst front if the
// archive now exceeds its maximum size.
func (a *Archive) Insert(s *solution.Solution) {
	a.insertOne(s)
	a.sorted = false
	if len(a.solutions) > a.maxSize {
		a.sortArchive()
	}
}

// InsertAll adds every solution in ss to the archive.
func (a *Archive) InsertAll(ss []*solution.Solution) {
	for _, s := range ss {
		a.insertOne(s)
	}
	a.sorted = false
	if len(a.solutions) > a.maxSize {
		a.sortArchive()
	}
}

// insertOne inserts s into the sorted solutions slice, skipping the
// insert if an Less-equivalent solution is already present.
func (a *Archive) insertOne(s *solution.Solution) {
	i := sort.Search(len(a.solutions), func(i int) bool {
		return !a.solutions[i].Less(s)
	})
	if i < len(a.solutions) && !s.Less(a.solutions[i]) && !a.solutions[i].Less(s) {
		return
	}
	a.solutions = append(a.solutions, nil)
	copy(a.solutions[i+1:], a.solutions[i:])
	a.solutions[i] = s
}

// removeSolution removes s from the solutions slice by pointer identity.
func (a *Archive) removeSolution(s *solution.Solution) {
	for i, other := range a.solutions {
		if other == s {
			a.solutions = append(a.solutions[:i], a.solutions[i+1:]...)
			return
		}
	}
}

// Fronts returns the archive's non-dominated fronts, sorting if needed.
func (a *Archive) Fronts() [][]*solution.Solution {
	if !a.sorted {
		a.sortArchive()
	}
	return a.fronts
}

// Front returns the f-th non-dominated front.
func (a *Archive) Front(f int) []*solution.Solution {
	if !a.sorted {
		a.sortArchive()
	}
	return a.fronts[f]
}

// MinTotalProfitsF returns the minimum total profit of each front.
func (a *Archive) MinTotalProfitsF() []float64 {
	if !a.sorted {
		a.sortArchive()
	}
	return a.minTotalProfitsF
}

// MinTotalProfitF returns the minimum total profit of front f.
func (a *Archive) MinTotalProfitF(f int) float64 {
	if !a.sorted {
		a.sortArchive()
	}
	return a.minTotalProfitsF[f]
}

// MaxTotalProfitsF returns the maximum total profit of each front.
func (a *Archive) MaxTotalProfitsF() []float64 {
	if !a.sorted {
		a.sortArchive()
	}
	return a.maxTotalProfitsF
}

// MaxTotalProfitF returns the maximum total profit of front f.
func (a *Archive) MaxTotalProfitF(f int) float64 {
	if !a.sorted {
		a.sortArchive()
	}
	return a.maxTotalProfitsF[f]
}

// MinSumTFulfillsF returns the minimum sum of fulfillment time of each front.
func (a *Archive) MinSumTFulfillsF() []float64 {
	if !a.sorted {
		a.sortArchive()
	}
	return a.minSumTFulfillsF
}

// MinSumTFulfillF returns the minimum sum of fulfillment time of front f.
func (a *Archive) MinSumTFulfillF(f int) float64 {
	if !a.sorted {
		a.sortArchive()
	}
	return a.minSumTFulfillsF[f]
}

// MaxSumTFulfillsF returns the maximum sum of fulfillment time of each front.
func (a *Archive) MaxSumTFulfillsF() []float64 {
	if !a.sorted {
		a.sortArchive()
	}
	return a.maxSumTFulfillsF
}

// MaxSumTFulfillF returns the maximum sum of fulfillment time of front f.
func (a *Archive) MaxSumTFulfillF(f int) float64 {
	if !a.sorted {
		a.sortArchive()
	}
	return a.maxSumTFulfillsF[f]
}

// crowdItem pairs a front-local index with a sort key, used to replicate
// the original's pair<pair<double, unsigned>, Solution> sort-by-key,
// tiebreak-by-original-index idiom without re-sorting the front itself
// until the final assignment.
type crowdItem struct {
	idx int
	key float64
}

func sortItemsAsc(items []crowdItem) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].key != items[j].key {
			return items[i].key < items[j].key
		}
		return items[i].idx < items[j].idx
	})
}

func sortItemsDesc(items []crowdItem) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].key != items[j].key {
			return items[i].key > items[j].key
		}
		return items[i].idx > items[j].idx
	})
}

// sortArchive performs fast non-dominated sorting followed by a two-pass
// crowding-distance ordering of each front, then evicts the most-crowded
// member of the worst front until the archive fits within maxSize.
func (a *Archive) sortArchive() {
	n := len(a.solutions)

	dominationCount := make([]int, n)
	dominatedSolutions := make([][]int, n)

	frontsAuxIdx := [][]int{{}}

	for p := 0; p < n; p++ {
		for q := 0; q < n; q++ {
			if a.solutions[p].Dominates(a.solutions[q]) {
				dominatedSolutions[p] = append(dominatedSolutions[p], q)
			} else if a.solutions[q].Dominates(a.solutions[p]) {
				dominationCount[p]++
			}
		}
		if dominationCount[p] == 0 {
			last := len(frontsAuxIdx) - 1
			frontsAuxIdx[last] = append(frontsAuxIdx[last], p)
		}
	}

	i := 0
	for len(frontsAuxIdx[i]) > 0 {
		frontsAuxIdx = append(frontsAuxIdx, []int{})
		for _, p := range frontsAuxIdx[i] {
			for _, q := range dominatedSolutions[p] {
				dominationCount[q]--
				if dominationCount[q] == 0 {
					frontsAuxIdx[i+1] = append(frontsAuxIdx[i+1], q)
				}
			}
		}
		i++
	}

	for len(frontsAuxIdx[len(frontsAuxIdx)-1]) == 0 {
		frontsAuxIdx = frontsAuxIdx[:len(frontsAuxIdx)-1]
	}

	a.fronts = make([][]*solution.Solution, len(frontsAuxIdx))
	for fi, idxs := range frontsAuxIdx {
		front := make([]*solution.Solution, len(idxs))
		for j, idx := range idxs {
			front[j] = a.solutions[idx]
		}
		a.fronts[fi] = front
	}

	nf := len(a.fronts)
	a.minTotalProfitsF = make([]float64, nf)
	a.maxTotalProfitsF = make([]float64, nf)
	a.minSumTFulfillsF = make([]float64, nf)
	a.maxSumTFulfillsF = make([]float64, nf)

	for f := 0; f < nf; f++ {
		m := len(a.fronts[f])
		front := a.fronts[f]
		distance := make([]float64, m)

		items := make([]crowdItem, m)
		for j := range items {
			items[j] = crowdItem{idx: j, key: front[j].TotalProfit()}
		}
		sortItemsAsc(items)

		a.minTotalProfitsF[f] = items[0].key
		a.maxTotalProfitsF[f] = items[m-1].key

		distance[items[0].idx] = math.MaxFloat64
		distance[items[m-1].idx] = math.MaxFloat64

		for k := 1; k < m-1; k++ {
			if distance[items[k].idx] < math.MaxFloat64 {
				distance[items[k].idx] +=
					(front[items[k+1].idx].TotalProfit() - front[items[k-1].idx].TotalProfit()) /
						(a.maxTotalProfitsF[f] - a.minTotalProfitsF[f])
			}
		}

		for j := range items {
			items[j].key = front[items[j].idx].SumTFulfill()
		}
		sortItemsAsc(items)

		a.minSumTFulfillsF[f] = items[0].key
		a.maxSumTFulfillsF[f] = items[m-1].key

		distance[items[0].idx] = math.MaxFloat64
		distance[items[m-1].idx] = math.MaxFloat64

		for k := 1; k < m-1; k++ {
			if distance[items[k].idx] < math.MaxFloat64 {
				distance[items[k].idx] +=
					(front[items[k+1].idx].SumTFulfill() - front[items[k-1].idx].SumTFulfill()) /
						(a.maxSumTFulfillsF[f] - a.minSumTFulfillsF[f])
			}
		}

		for j := range items {
			items[j].key = distance[items[j].idx]
		}
		sortItemsDesc(items)

		newFront := make([]*solution.Solution, m)
		for j, it := range items {
			newFront[j] = front[it.idx]
		}
		a.fronts[f] = newFront
	}

	for len(a.solutions) > a.maxSize {
		if len(a.fronts) == 0 {
			break
		}
		for len(a.fronts) > 0 && len(a.fronts[len(a.fronts)-1]) == 0 {
			a.fronts = a.fronts[:len(a.fronts)-1]
		}
		if len(a.fronts) == 0 {
			break
		}
		last := len(a.fronts) - 1
		worst := a.fronts[last][len(a.fronts[last])-1]
		a.fronts[last] = a.fronts[last][:len(a.fronts[last])-1]
		a.removeSolution(worst)
	}

	a.sorted = true
}
