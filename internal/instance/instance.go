// Package instance implements the immutable problem definition for the
// multi-vehicle routing problem with pickup and delivery and profit
// maximization (MVRPPD): requests, vehicles, a derived vertex set and a
// full pairwise travel-length matrix, along with a 35-code integrity
// validator and the plain-text wire format used to read and write
// instances.
//
// =============================================================================
// Instance data model
// =============================================================================
//
// An instance has |R| requests and |K| vehicles. Each request contributes
// two vertices (a pickup/source and a delivery/target); each vehicle
// contributes two vertices (its own source depot and target depot). The
// total vertex count is therefore always |V| = 2|R| + 2|K|. Read numbers
// vertices in the order records appear in the stream (two ids per "k" or
// "r" record), Write emits every vehicle record before any request
// record, and New takes every request and vehicle vertex id explicitly.
//
// Instances are immutable once constructed: Init derives every back
// reference (which request/vehicle owns a vertex, net demand at a vertex,
// the full Euclidean travel-length matrix) exactly once, and nothing
// mutates an Instance afterward.
// =============================================================================
package instance

import (
	"fmt"
	"math"
)

// float64Epsilon is the tolerance used for all floating-point comparisons
// in validation (length-matrix symmetry and the triangle inequality),
// matching the 32-bit float epsilon the solver's C++ ancestor compares
// against for these same checks.
const float64Epsilon = 1.1920929e-7

// Instance is an immutable MVRPPD problem definition.
type Instance struct {
	numRequests int
	numVehicles int
	numVertices int

	sumProfit float64

	// Per-request attributes, indexed by request id 0..numRequests-1.
	profits   []float64
	tCreates  []float64
	demandsR  []float64
	sourcesR  []int
	targetsR  []int

	// Per-vehicle attributes, indexed by vehicle id 0..numVehicles-1.
	tStarts    []float64
	tLimits    []float64
	speeds     []float64
	capacities []float64
	sourcesK   []int
	targetsK   []int

	// Per-vertex attributes, indexed by vertex id 0..numVertices-1.
	tVisits   []float64
	x         []float64
	y         []float64
	lengths   [][]float64
	requestsV []int // request owning this vertex, or numRequests if none
	vehiclesV []int // vehicle owning this vertex, or numVehicles if none
	isSourceV []bool
	isTargetV []bool
	demandsV  []float64
}

// NumRequests returns the number of requests, |R|.
func (inst *Instance) NumRequests() int { return inst.numRequests }

// NumVehicles returns the number of vehicles, |K|.
func (inst *Instance) NumVehicles() int { return inst.numVehicles }

// NumVertices returns the number of vertices, |V| = 2|R| + 2|K|.
func (inst *Instance) NumVertices() int { return inst.numVertices }

// SumProfit returns the sum of all request profits.
func (inst *Instance) SumProfit() float64 { return inst.sumProfit }

// Profit returns the profit of request r.
func (inst *Instance) Profit(r int) float64 { return inst.profits[r] }

// TCreate returns the release time of request r.
func (inst *Instance) TCreate(r int) float64 { return inst.tCreates[r] }

// DemandR returns the demand (quantity) of request r.
func (inst *Instance) DemandR(r int) float64 { return inst.demandsR[r] }

// SourceR returns the pickup vertex id of request r.
func (inst *Instance) SourceR(r int) int { return inst.sourcesR[r] }

// TargetR returns the delivery vertex id of request r.
func (inst *Instance) TargetR(r int) int { return inst.targetsR[r] }

// TStart returns the earliest departure time of vehicle k.
func (inst *Instance) TStart(k int) float64 { return inst.tStarts[k] }

// TLimit returns the time budget of vehicle k.
func (inst *Instance) TLimit(k int) float64 { return inst.tLimits[k] }

// Speed returns the travel speed of vehicle k.
func (inst *Instance) Speed(k int) float64 { return inst.speeds[k] }

// Capacity returns the load capacity of vehicle k.
func (inst *Instance) Capacity(k int) float64 { return inst.capacities[k] }

// SourceK returns the depot (source) vertex id of vehicle k.
func (inst *Instance) SourceK(k int) int { return inst.sourcesK[k] }

// TargetK returns the depot (target) vertex id of vehicle k.
func (inst *Instance) TargetK(k int) int { return inst.targetsK[k] }

// TVisit returns the service duration at vertex v.
func (inst *Instance) TVisit(v int) float64 { return inst.tVisits[v] }

// X returns the x coordinate of vertex v.
func (inst *Instance) X(v int) float64 { return inst.x[v] }

// Y returns the y coordinate of vertex v.
func (inst *Instance) Y(v int) float64 { return inst.y[v] }

// Length returns the travel length between vertices u and v.
func (inst *Instance) Length(u, v int) float64 { return inst.lengths[u][v] }

// RequestV returns the request owning vertex v, or NumRequests() if v does
// not belong to any request.
func (inst *Instance) RequestV(v int) int { return inst.requestsV[v] }

// VehicleV returns the vehicle owning vertex v, or NumVehicles() if v does
// not belong to any vehicle.
func (inst *Instance) VehicleV(v int) int { return inst.vehiclesV[v] }

// IsSource reports whether vertex v is a pickup or depot-source vertex.
func (inst *Instance) IsSource(v int) bool { return inst.isSourceV[v] }

// IsTarget reports whether vertex v is a delivery or depot-target vertex.
func (inst *Instance) IsTarget(v int) bool { return inst.isTargetV[v] }

// DemandV returns the signed net demand at vertex v (positive at a
// request's pickup vertex, negative at its delivery vertex, zero at any
// depot vertex).
func (inst *Instance) DemandV(v int) float64 { return inst.demandsV[v] }

// New constructs an Instance from per-request and per-vehicle attribute
// vectors, plus the coordinates and service durations of every vertex
// (the vertex ids in sourcesR, targetsR, sourcesK and targetsK may come in
// any order; IsValid checks that each vertex is used exactly once). It derives all back
// references and the travel-length matrix via Init.
func New(profits, tCreates, demandsR []float64, sourcesR, targetsR []int,
	tStarts, tLimits, speeds, capacities []float64, sourcesK, targetsK []int,
	x, y, tVisits []float64) *Instance {

	inst := &Instance{
		numRequests: len(profits),
		numVehicles: len(tLimits),
		numVertices: len(x),
		profits:     profits,
		tCreates:    tCreates,
		demandsR:    demandsR,
		sourcesR:    sourcesR,
		targetsR:    targetsR,
		tStarts:     tStarts,
		tLimits:     tLimits,
		speeds:      speeds,
		capacities:  capacities,
		sourcesK:    sourcesK,
		targetsK:    targetsK,
		x:           x,
		y:           y,
		tVisits:     tVisits,
	}

	for _, p := range profits {
		inst.sumProfit += p
	}

	inst.init()
	return inst
}

// Empty returns the zero-valued, empty instance (no requests, no
// vehicles, no vertices).
func Empty() *Instance {
	return &Instance{}
}

// init derives requestsV/vehiclesV ownership, isSourceV/isTargetV flags,
// per-vertex net demand, and the full pairwise Euclidean travel-length
// matrix. It does not enforce the triangle inequality or any other
// validity property; that is IsValid's job.
func (inst *Instance) init() {
	inst.requestsV = make([]int, inst.numVertices)
	inst.vehiclesV = make([]int, inst.numVertices)
	inst.isSourceV = make([]bool, inst.numVertices)
	inst.isTargetV = make([]bool, inst.numVertices)
	inst.demandsV = make([]float64, inst.numVertices)

	for v := range inst.requestsV {
		inst.requestsV[v] = inst.numRequests
		inst.vehiclesV[v] = inst.numVehicles
	}

	for r := 0; r < inst.numRequests; r++ {
		src, tgt := inst.sourcesR[r], inst.targetsR[r]
		if src >= 0 && src < inst.numVertices {
			inst.requestsV[src] = r
			inst.isSourceV[src] = true
			inst.demandsV[src] += inst.demandsR[r]
		}
		if tgt >= 0 && tgt < inst.numVertices {
			inst.requestsV[tgt] = r
			inst.isTargetV[tgt] = true
			inst.demandsV[tgt] -= inst.demandsR[r]
		}
	}

	for k := 0; k < inst.numVehicles; k++ {
		src, tgt := inst.sourcesK[k], inst.targetsK[k]
		if src >= 0 && src < inst.numVertices {
			inst.vehiclesV[src] = k
			inst.isSourceV[src] = true
		}
		if tgt >= 0 && tgt < inst.numVertices {
			inst.vehiclesV[tgt] = k
			inst.isTargetV[tgt] = true
		}
	}

	inst.lengths = make([][]float64, inst.numVertices)
	for u := 0; u < inst.numVertices; u++ {
		inst.lengths[u] = make([]float64, inst.numVertices)
		for v := 0; v < inst.numVertices; v++ {
			dx := inst.x[u] - inst.x[v]
			dy := inst.y[u] - inst.y[v]
			inst.lengths[u][v] = math.Sqrt(dx*dx + dy*dy)
		}
	}
}

// IsValid runs the full 35-code integrity check and reports the first
// code encountered (1..35), or 0 if the instance is fully valid. Checks
// run in a fixed order so that error codes are deterministic and stable
// across instances.
func (inst *Instance) IsValid() (bool, int) {
	n, r, k := inst.numVertices, inst.numRequests, inst.numVehicles

	if n != 2*r+2*k {
		return false, 1
	}
	if len(inst.profits) != r {
		return false, 2
	}
	if len(inst.tCreates) != r {
		return false, 3
	}
	if len(inst.demandsR) != r {
		return false, 4
	}
	if len(inst.sourcesR) != r {
		return false, 5
	}
	if len(inst.targetsR) != r {
		return false, 6
	}
	if len(inst.tStarts) != k {
		return false, 7
	}
	if len(inst.tLimits) != k {
		return false, 8
	}
	if len(inst.speeds) != k {
		return false, 9
	}
	if len(inst.capacities) != k {
		return false, 10
	}
	if len(inst.sourcesK) != k {
		return false, 11
	}
	if len(inst.targetsK) != k {
		return false, 12
	}
	if len(inst.tVisits) != n {
		return false, 13
	}
	if len(inst.lengths) != n {
		return false, 14
	}
	for i := 0; i < len(inst.lengths); i++ {
		if len(inst.lengths[i]) != n {
			return false, 15
		}
	}

	for i := 0; i < r; i++ {
		if inst.profits[i] < 0 {
			return false, 16
		}
	}
	for i := 0; i < r; i++ {
		if inst.tCreates[i] < 0 {
			return false, 17
		}
	}
	for i := 0; i < r; i++ {
		if inst.demandsR[i] < 0 {
			return false, 18
		}
	}
	for i := 0; i < k; i++ {
		if inst.tStarts[i] < 0 {
			return false, 19
		}
	}
	for i := 0; i < k; i++ {
		if inst.tLimits[i] < 0 {
			return false, 20
		}
	}
	for i := 0; i < k; i++ {
		if inst.speeds[i] <= 0 {
			return false, 21
		}
	}
	for i := 0; i < k; i++ {
		if inst.capacities[i] < 0 {
			return false, 22
		}
	}

	// Note: strictly ">" rather than ">=" against numVertices, preserved
	// literally from the original — a source/target id exactly equal to
	// numVertices is (incorrectly) accepted by this check alone.
	for i := 0; i < r; i++ {
		if inst.sourcesR[i] > n {
			return false, 23
		}
	}
	for i := 0; i < r; i++ {
		if inst.targetsR[i] > n {
			return false, 24
		}
	}
	for i := 0; i < k; i++ {
		if inst.sourcesK[i] > n {
			return false, 25
		}
	}
	for i := 0; i < k; i++ {
		if inst.targetsK[i] > n {
			return false, 26
		}
	}

	used := make([]int, n)
	for i := 0; i < r; i++ {
		if inst.sourcesR[i] >= 0 && inst.sourcesR[i] < n {
			used[inst.sourcesR[i]]++
			if used[inst.sourcesR[i]] > 1 {
				return false, 27
			}
		}
	}
	for i := 0; i < r; i++ {
		if inst.targetsR[i] >= 0 && inst.targetsR[i] < n {
			used[inst.targetsR[i]]++
			if used[inst.targetsR[i]] > 1 {
				return false, 28
			}
		}
	}
	for i := 0; i < k; i++ {
		if inst.sourcesK[i] >= 0 && inst.sourcesK[i] < n {
			used[inst.sourcesK[i]]++
			if used[inst.sourcesK[i]] > 1 {
				return false, 29
			}
		}
	}
	for i := 0; i < k; i++ {
		if inst.targetsK[i] >= 0 && inst.targetsK[i] < n {
			used[inst.targetsK[i]]++
			if used[inst.targetsK[i]] > 1 {
				return false, 30
			}
		}
	}
	for v := 0; v < n; v++ {
		if used[v] != 1 {
			return false, 31
		}
	}

	for v := 0; v < n; v++ {
		if inst.tVisits[v] < 0 {
			return false, 32
		}
	}
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if inst.lengths[u][v] < 0 {
				return false, 33
			}
		}
	}
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if math.Abs(inst.lengths[u][v]-inst.lengths[v][u]) > float64Epsilon {
				return false, 34
			}
		}
	}
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			for w := 0; w < n; w++ {
				if inst.lengths[u][w] > inst.lengths[u][v]+inst.lengths[v][w]+float64Epsilon {
					return false, 35
				}
			}
		}
	}

	return true, 0
}

// String renders a short human-readable summary, used by logging call
// sites rather than the wire format (see Write for that).
func (inst *Instance) String() string {
	return fmt.Sprintf("Instance{requests=%d, vehicles=%d, vertices=%d, sumProfit=%.2f}",
		inst.numRequests, inst.numVehicles, inst.numVertices, inst.sumProfit)
}
