package pareto

import (
	"testing"

	"mvrppd/internal/instance"
	"mvrppd/internal/solution"
)

// buildSolution constructs a single-request, single-vehicle solution on
// a fixed geometry (pickup and delivery 20 apart, both co-located with
// their respective depot) so that sumTFulfill is exactly 20 - tCreate.
// This lets tests target precise (profit, sumTFulfill) pairs without
// reaching into the solution package's internals.
func buildSolution(profit, tCreate float64) *solution.Solution {
	inst := instance.New(
		[]float64{profit}, []float64{tCreate}, []float64{1}, []int{0}, []int{1},
		[]float64{0}, []float64{1000}, []float64{1}, []float64{10}, []int{2}, []int{3},
		[]float64{0, 0, 0, 0}, []float64{0, 20, 0, 20}, []float64{0, 0, 0, 0},
	)
	return solution.New(inst, [][]int{{2, 0, 1, 3}})
}

func TestInsert_DeduplicatesEquivalentSolutions(t *testing.T) {
	a := New(10)
	s1 := buildSolution(10, 15)
	s2 := buildSolution(10, 15)

	a.Insert(s1)
	a.Insert(s2)

	if a.Size() != 1 {
		t.Errorf("Size() = %d, want 1 (Less-equivalent solutions should dedupe)", a.Size())
	}
}

func TestInsert_DistinctObjectivesBothKept(t *testing.T) {
	a := New(10)
	a.Insert(buildSolution(10, 15))
	a.Insert(buildSolution(8, 17))

	if a.Size() != 2 {
		t.Errorf("Size() = %d, want 2", a.Size())
	}
}

func TestFronts_NonDominatedSeparatedFromDominated(t *testing.T) {
	a := New(10)
	nonDominated1 := buildSolution(10, 15) // profit 10, fulfill 5
	nonDominated2 := buildSolution(8, 17)  // profit 8, fulfill 3
	dominated := buildSolution(5, 10)      // profit 5, fulfill 10 — dominated by both

	a.Insert(nonDominated1)
	a.Insert(nonDominated2)
	a.Insert(dominated)

	fronts := a.Fronts()
	if len(fronts) < 2 {
		t.Fatalf("expected at least 2 fronts, got %d", len(fronts))
	}
	if len(fronts[0]) != 2 {
		t.Errorf("front 0 size = %d, want 2", len(fronts[0]))
	}
	if len(fronts[1]) != 1 {
		t.Errorf("front 1 size = %d, want 1", len(fronts[1]))
	}
}

func TestFronts_ExtremesHaveCorrectProfitBounds(t *testing.T) {
	a := New(10)
	// Three mutually non-dominated solutions trading profit for
	// fulfillment time, all in one front.
	a.Insert(buildSolution(10, 10)) // fulfill 10
	a.Insert(buildSolution(7, 14))  // fulfill 6
	a.Insert(buildSolution(3, 18))  // fulfill 2

	fronts := a.Fronts()
	if len(fronts) != 1 {
		t.Fatalf("expected a single front, got %d", len(fronts))
	}

	minP, maxP := a.MinTotalProfitF(0), a.MaxTotalProfitF(0)
	if minP != 3 || maxP != 10 {
		t.Errorf("profit bounds = [%v, %v], want [3, 10]", minP, maxP)
	}
}

func TestEviction_KeepsArchiveWithinMaxSize(t *testing.T) {
	a := New(2)
	a.Insert(buildSolution(10, 10))
	a.Insert(buildSolution(7, 14))
	a.Insert(buildSolution(3, 18))

	if a.Size() > 2 {
		t.Errorf("Size() = %d, want <= 2", a.Size())
	}
}

func TestEviction_PrefersDroppingDominatedSolutions(t *testing.T) {
	a := New(2)
	best := buildSolution(10, 19)     // fulfill 1
	mid := buildSolution(5, 19.5)     // fulfill 0.5
	dominated := buildSolution(1, 15) // fulfill 5 — dominated by both

	a.Insert(best)
	a.Insert(mid)
	a.Insert(dominated)

	for _, s := range a.Solutions() {
		if s == dominated {
			t.Error("dominated solution should have been evicted before non-dominated ones")
		}
	}
}

func TestNewFromSolutions_SortsWhenOverCapacity(t *testing.T) {
	ss := []*solution.Solution{
		buildSolution(10, 10),
		buildSolution(7, 14),
		buildSolution(3, 18),
	}

	a := NewFromSolutions(2, ss)
	if a.Size() > 2 {
		t.Errorf("Size() = %d, want <= 2", a.Size())
	}
}

func TestMaxSize(t *testing.T) {
	a := New(42)
	if a.MaxSize() != 42 {
		t.Errorf("MaxSize() = %d, want 42", a.MaxSize())
	}
}

func TestFront_ReturnsAllInsertedWhenUnderCapacity(t *testing.T) {
	a := New(10)
	a.Insert(buildSolution(10, 10))
	a.Insert(buildSolution(7, 14))
	a.Insert(buildSolution(3, 18))

	front := a.Front(0)
	if len(front) != 3 {
		t.Fatalf("expected front of 3, got %d", len(front))
	}
}
