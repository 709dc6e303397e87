package solution

import (
	"bytes"
	"math"
	"testing"

	"mvrppd/internal/instance"
)

// buildInstance returns a single-request, single-vehicle instance:
// vehicle depot source is vertex 2, request pickup is vertex 0, request
// delivery is vertex 1, vehicle depot target is vertex 3.
func buildInstance() *instance.Instance {
	return instance.New(
		[]float64{5}, []float64{0}, []float64{1}, []int{0}, []int{1},
		[]float64{0}, []float64{100}, []float64{1}, []float64{10}, []int{2}, []int{3},
		[]float64{0, 3, 0, 3}, []float64{0, 4, 5, 9}, []float64{0, 0, 0, 0},
	)
}

func buildSolution() (*instance.Instance, *Solution) {
	inst := buildInstance()
	// Vehicle path: depot source (2) -> pickup (0) -> delivery (1) -> depot target (3).
	sol := New(inst, [][]int{{2, 0, 1, 3}})
	return inst, sol
}

func TestNew_DecisionVariablesMatchPath(t *testing.T) {
	_, sol := buildSolution()

	if !sol.X(2, 0, 0) || !sol.X(0, 1, 0) || !sol.X(1, 3, 0) {
		t.Fatal("expected edges along the path to be set in x")
	}
	if !sol.Y(0, 0) {
		t.Error("expected vehicle 0 to serve request 0")
	}
	if sol.VehicleR(0) != 0 {
		t.Errorf("VehicleR(0) = %d, want 0", sol.VehicleR(0))
	}
	if sol.TotalProfit() != 5 {
		t.Errorf("TotalProfit() = %v, want 5", sol.TotalProfit())
	}
}

func TestIsValidPath_Valid(t *testing.T) {
	_, sol := buildSolution()
	ok, code := sol.IsValidPath(0)
	if !ok {
		t.Errorf("expected valid path, got code %d", code)
	}
}

func TestIsValidPath_WrongSource(t *testing.T) {
	inst := buildInstance()
	sol := New(inst, [][]int{{0, 2, 1, 3}})
	ok, code := sol.IsValidPath(0)
	if ok || code != 1 {
		t.Errorf("expected code 1 for wrong source, got ok=%v code=%d", ok, code)
	}
}

func TestIsValidPath_CapacityExceeded(t *testing.T) {
	inst := instance.New(
		[]float64{5}, []float64{0}, []float64{20}, []int{0}, []int{1},
		[]float64{0}, []float64{1000}, []float64{1}, []float64{10}, []int{2}, []int{3},
		[]float64{0, 3, 0, 3}, []float64{0, 4, 5, 9}, []float64{0, 0, 0, 0},
	)
	sol := New(inst, [][]int{{2, 0, 1, 3}})
	ok, code := sol.IsValidPath(0)
	if ok || code != 4 {
		t.Errorf("expected code 4 for capacity exceeded, got ok=%v code=%d", ok, code)
	}
}

func TestIsValidPath_PickupAfterDelivery(t *testing.T) {
	inst := buildInstance()
	// Visit delivery before pickup: source -> delivery -> pickup -> target.
	sol := New(inst, [][]int{{2, 1, 0, 3}})
	ok, code := sol.IsValidPath(0)
	if ok || code != 5 {
		t.Errorf("expected code 5 for pickup-after-delivery, got ok=%v code=%d", ok, code)
	}
}

func TestIsFeasible(t *testing.T) {
	_, sol := buildSolution()
	ok, code := sol.IsFeasible()
	if !ok || code != 0 {
		t.Errorf("expected feasible, got ok=%v code=%d", ok, code)
	}
}

func TestIsFeasible_ReportsVehiclePlusOne(t *testing.T) {
	inst := buildInstance()
	sol := New(inst, [][]int{{0, 2, 1, 3}})
	ok, code := sol.IsFeasible()
	if ok || code != 1 {
		t.Errorf("expected infeasible with code 1 (vehicle 0), got ok=%v code=%d", ok, code)
	}
}

func TestAreConstraintsSatisfied_Valid(t *testing.T) {
	_, sol := buildSolution()
	ok, code := sol.AreConstraintsSatisfied()
	if !ok {
		t.Errorf("expected constraints satisfied, got violated clause %d", code)
	}
}

func TestAreConstraintsSatisfied_EmptyVehicleTriviallySatisfied(t *testing.T) {
	inst := instance.New(
		nil, nil, nil, nil, nil,
		[]float64{0}, []float64{100}, []float64{1}, []float64{10}, []int{0}, []int{1},
		[]float64{0, 3}, []float64{0, 4}, []float64{0, 0},
	)
	sol := New(inst, [][]int{{0, 1}})
	ok, code := sol.AreConstraintsSatisfied()
	if !ok {
		t.Errorf("expected trivially satisfied constraints, got violated clause %d", code)
	}
}

// withObjectives builds a bare Solution carrying only the two objective
// values, for exercising Dominates/Less/Greater in isolation from path
// construction.
func withObjectives(paths [][]int, profit, fulfill float64) *Solution {
	return &Solution{paths: paths, totalProfit: profit, sumTFulfill: fulfill}
}

func TestDominates(t *testing.T) {
	better := withObjectives([][]int{{0}}, 10, 5)
	worse := withObjectives([][]int{{0}}, 5, 10)

	if !better.Dominates(worse) {
		t.Error("higher profit and lower fulfillment time should dominate")
	}
	if worse.Dominates(better) {
		t.Error("lower profit and higher fulfillment time should not dominate")
	}
	if better.Dominates(better) {
		t.Error("a solution should not dominate itself")
	}

	tiedProfit := withObjectives([][]int{{0}}, 10, 3)
	if !tiedProfit.Dominates(better) {
		t.Error("equal profit with strictly lower fulfillment time should dominate")
	}
}

func TestLess_ProfitShortCircuits(t *testing.T) {
	inst := buildInstance()
	better := New(inst, [][]int{{2, 0, 1, 3}})
	worse := New(inst, [][]int{{2, 3}})

	// Less is not a lexicographic order: a strictly higher profit alone
	// is enough for better.Less(worse) to hold here, and a strictly
	// lower sumTFulfill alone is enough for the reverse to hold too —
	// both can be true at once, which is the documented short-circuit
	// behavior rather than a contradiction.
	if !better.Less(worse) {
		t.Error("higher-profit solution should be Less than lower-profit one")
	}
}

func TestGreater_LowerProfitIsGreater(t *testing.T) {
	inst := buildInstance()
	a := New(inst, [][]int{{2, 0, 1, 3}})
	b := New(inst, [][]int{{2, 3}})

	// b has strictly lower profit than a, so b > a under the original's
	// operator> (lower profit sorts as "greater"), regardless of the
	// redundant path-count clause that follows.
	if !b.Greater(a) {
		t.Error("lower-profit solution should be Greater than the higher-profit one")
	}
	if a.Greater(a) {
		t.Error("a solution should not be Greater than itself")
	}
}

func TestWriteRead_RoundTrip(t *testing.T) {
	inst, sol := buildSolution()

	var buf bytes.Buffer
	if err := sol.Write(&buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := Read(inst, &buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if !got.Equal(sol) {
		t.Error("round-tripped solution should equal the original")
	}
}

func TestTTravel_MatchesTriangleLengths(t *testing.T) {
	_, sol := buildSolution()

	want := sol.Instance().TVisit(2) +
		sol.Instance().Length(2, 0)/sol.Instance().Speed(0) + sol.Instance().TVisit(0) +
		sol.Instance().Length(0, 1)/sol.Instance().Speed(0) + sol.Instance().TVisit(1) +
		sol.Instance().Length(1, 3)/sol.Instance().Speed(0) + sol.Instance().TVisit(3)

	if math.Abs(sol.TTravel(0)-want) > 1e-9 {
		t.Errorf("TTravel(0) = %v, want %v", sol.TTravel(0), want)
	}
}
