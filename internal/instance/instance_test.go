package instance

import (
	"math"
	"testing"
)

func TestNew_VertexCountAndOwnership(t *testing.T) {
	// One request (pickup at vertex 0, delivery at vertex 1) and one
	// vehicle (depot source at vertex 2, depot target at vertex 3).
	inst := New(
		[]float64{5}, []float64{0}, []float64{1}, []int{0}, []int{1},
		[]float64{0}, []float64{10}, []float64{1}, []float64{5}, []int{2}, []int{3},
		[]float64{0, 4, 0, 0}, []float64{0, 3, 0, 0}, []float64{0, 0, 0, 0},
	)

	if inst.NumVertices() != 4 {
		t.Errorf("NumVertices() = %d, want 4", inst.NumVertices())
	}
	if inst.NumRequests() != 1 || inst.NumVehicles() != 1 {
		t.Errorf("unexpected request/vehicle counts: %d %d", inst.NumRequests(), inst.NumVehicles())
	}
	if inst.SumProfit() != 5 {
		t.Errorf("SumProfit() = %v, want 5", inst.SumProfit())
	}
	if !inst.IsSource(0) || inst.IsTarget(0) {
		t.Error("vertex 0 should be a source only")
	}
	if !inst.IsTarget(1) || inst.IsSource(1) {
		t.Error("vertex 1 should be a target only")
	}
	if inst.RequestV(0) != 0 || inst.RequestV(1) != 0 {
		t.Error("vertices 0 and 1 should belong to request 0")
	}
	if inst.VehicleV(2) != 0 || inst.VehicleV(3) != 0 {
		t.Error("vertices 2 and 3 should belong to vehicle 0")
	}
	if inst.DemandV(0) != 1 || inst.DemandV(1) != -1 {
		t.Errorf("unexpected demand vector: %v %v", inst.DemandV(0), inst.DemandV(1))
	}

	wantLen := math.Hypot(4, 3)
	if math.Abs(inst.Length(0, 1)-wantLen) > 1e-9 {
		t.Errorf("Length(0,1) = %v, want %v", inst.Length(0, 1), wantLen)
	}
	if inst.Length(0, 1) != inst.Length(1, 0) {
		t.Error("length matrix should be symmetric")
	}
}

func TestIsValid_EmptyInstance(t *testing.T) {
	inst := Empty()
	ok, code := inst.IsValid()
	if !ok || code != 0 {
		t.Errorf("empty instance should be valid, got ok=%v code=%d", ok, code)
	}
}

func TestIsValid_VertexCountMismatch(t *testing.T) {
	inst := &Instance{numRequests: 1, numVehicles: 0, numVertices: 1}
	ok, code := inst.IsValid()
	if ok || code != 1 {
		t.Errorf("expected code 1, got ok=%v code=%d", ok, code)
	}
}

func TestIsValid_NegativeProfit(t *testing.T) {
	inst := New(
		[]float64{-1}, []float64{0}, []float64{1}, []int{0}, []int{1},
		nil, nil, nil, nil, nil, nil,
		[]float64{0, 1}, []float64{0, 1}, []float64{0, 0},
	)
	ok, code := inst.IsValid()
	if ok || code != 16 {
		t.Errorf("expected code 16 for negative profit, got ok=%v code=%d", ok, code)
	}
}

func TestIsValid_ZeroSpeed(t *testing.T) {
	inst := New(
		nil, nil, nil, nil, nil,
		[]float64{0}, []float64{10}, []float64{0}, []float64{5}, []int{0}, []int{1},
		[]float64{0, 1}, []float64{0, 1}, []float64{0, 0},
	)
	ok, code := inst.IsValid()
	if ok || code != 21 {
		t.Errorf("expected code 21 for non-positive speed, got ok=%v code=%d", ok, code)
	}
}

func TestIsValid_DuplicateVertexUsage(t *testing.T) {
	inst := New(
		[]float64{1, 1}, []float64{0, 0}, []float64{1, 1}, []int{0, 0}, []int{1, 1},
		nil, nil, nil, nil, nil, nil,
		[]float64{0, 1, 2, 3}, []float64{0, 1, 2, 3}, []float64{0, 0, 0, 0},
	)
	ok, code := inst.IsValid()
	if ok {
		t.Fatal("expected duplicate vertex usage to be invalid")
	}
	if code != 27 {
		t.Errorf("expected code 27 for duplicate vertex usage, got %d", code)
	}
}

func TestIsValid_NotAllVerticesUsed(t *testing.T) {
	// One vehicle over two vertices, so the vertex count agrees (code 1
	// passes). Its target id equals numVertices, which the ">" bounds
	// check accepts, so vertex 1 is never used.
	inst := &Instance{
		numRequests: 0,
		numVehicles: 1,
		numVertices: 2,
		tStarts:     []float64{0},
		tLimits:     []float64{10},
		speeds:      []float64{1},
		capacities:  []float64{5},
		sourcesK:    []int{0},
		targetsK:    []int{2},
		x:           []float64{0, 1},
		y:           []float64{0, 1},
		tVisits:     []float64{0, 0},
	}
	inst.init()
	ok, code := inst.IsValid()
	if ok || code != 31 {
		t.Errorf("expected code 31 for unused vertices, got ok=%v code=%d", ok, code)
	}
}

func TestIsValid_FullyValidSingleRequestSingleVehicle(t *testing.T) {
	inst := New(
		[]float64{5}, []float64{0}, []float64{1}, []int{0}, []int{1},
		[]float64{0}, []float64{100}, []float64{1}, []float64{10}, []int{2}, []int{3},
		[]float64{0, 3, 10, 10}, []float64{0, 4, 0, 0}, []float64{0, 0, 0, 0},
	)
	ok, code := inst.IsValid()
	if !ok {
		t.Errorf("expected valid instance, got invalid with code %d", code)
	}
}
