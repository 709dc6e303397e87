// Package solution represents a candidate assignment of vehicles to
// requests for an MVRPPD instance, in both of its equivalent forms: a
// per-vehicle ordered path of vertices, and the x/y/t/l decision
// variables of the underlying mixed-integer formulation. Either form can
// be built from the other; both are kept in sync by computeDecisionVariables
// and init, mirroring the two constructors of the original solver.
package solution

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"mvrppd/internal/instance"
	"mvrppd/pkg/apperr"
)

// float32Epsilon reproduces the tolerance the original constraint checker
// uses for its big-M propagation clauses, which was taken from C++'s
// std::numeric_limits<float>::epsilon() rather than a double epsilon.
// It has the same value as instance.float64Epsilon; the two are separate
// constants only because they live in different packages.
const float32Epsilon = 1.1920929e-7

// Solution holds one candidate MVRPPD solution against a fixed instance.
type Solution struct {
	inst *instance.Instance

	// paths[k] is the ordered sequence of vertices vehicle k visits,
	// starting at its source depot and ending at its target depot.
	paths [][]int

	// x[i][j][k] is true iff vehicle k traverses edge (i, j).
	x [][][]bool
	// y[r][k] is true iff vehicle k serves request r.
	y [][]bool
	// t[i][k] is the time vehicle k starts serving vertex i.
	t [][]float64
	// l[i][k] is the load of vehicle k after serving vertex i.
	l [][]float64

	// tTravels[k] is the total time vehicle k spends visiting vertices
	// and traversing edges along its path.
	tTravels []float64
	// tFulfills[r] is the time needed to fulfill request r.
	tFulfills []float64
	// totalProfit is the sum of profits of all served requests.
	totalProfit float64
	// sumTFulfill is the sum of tFulfills over all served requests.
	sumTFulfill float64

	// loads[k][i] is the load of vehicle k after serving the i-th
	// vertex of its path.
	loads [][]float64
	// times[k][i] is the elapsed travel time of vehicle k up to and
	// including the i-th vertex of its path.
	times [][]float64

	// vehiclesR[r] is the vehicle that fulfills request r, or
	// numVehicles if no vehicle serves it.
	vehiclesR []int
	// vehiclesV[v] is the vehicle that serves vertex v, or numVehicles
	// if no vehicle visits it.
	vehiclesV []int
	// vehiclesE[u][v] is the vehicle that traverses edge (u, v), or
	// numVehicles if no vehicle uses it.
	vehiclesE [][]int
	// requestsK[k] is the set of requests fulfilled by vehicle k.
	requestsK []map[int]struct{}
	// indexesKV[k][v] is the index of vertex v within paths[k], or
	// len(paths[k]) if vehicle k never visits v.
	indexesKV [][]int
}

// Instance returns the instance this solution was built against.
func (s *Solution) Instance() *instance.Instance { return s.inst }

// Paths returns the per-vehicle vertex sequences.
func (s *Solution) Paths() [][]int { return s.paths }

// Path returns the vertex sequence for vehicle k.
func (s *Solution) Path(k int) []int { return s.paths[k] }

// X reports whether vehicle k traverses edge (i, j).
func (s *Solution) X(i, j, k int) bool { return s.x[i][j][k] }

// Y reports whether vehicle k serves request r.
func (s *Solution) Y(r, k int) bool { return s.y[r][k] }

// T returns the time vehicle k starts serving vertex i.
func (s *Solution) T(i, k int) float64 { return s.t[i][k] }

// L returns the load of vehicle k after serving vertex i.
func (s *Solution) L(i, k int) float64 { return s.l[i][k] }

// TTravel returns the total travel time of vehicle k.
func (s *Solution) TTravel(k int) float64 { return s.tTravels[k] }

// TFulfill returns the time needed to fulfill request r.
func (s *Solution) TFulfill(r int) float64 { return s.tFulfills[r] }

// TotalProfit returns the sum of profits of all served requests.
func (s *Solution) TotalProfit() float64 { return s.totalProfit }

// SumTFulfill returns the sum of fulfillment times of all served requests.
func (s *Solution) SumTFulfill() float64 { return s.sumTFulfill }

// Load returns the load of vehicle k after serving the i-th vertex of
// its path.
func (s *Solution) Load(k, i int) float64 { return s.loads[k][i] }

// Time returns the elapsed travel time of vehicle k up to the i-th
// vertex of its path.
func (s *Solution) Time(k, i int) float64 { return s.times[k][i] }

// VehicleR returns the vehicle that fulfills request r, or NumVehicles
// if no vehicle serves it.
func (s *Solution) VehicleR(r int) int { return s.vehiclesR[r] }

// VehicleV returns the vehicle that serves vertex v, or NumVehicles if
// no vehicle visits it.
func (s *Solution) VehicleV(v int) int { return s.vehiclesV[v] }

// VehicleE returns the vehicle that traverses edge (u, v), or
// NumVehicles if no vehicle uses it.
func (s *Solution) VehicleE(u, v int) int { return s.vehiclesE[u][v] }

// RequestsK returns the set of requests fulfilled by vehicle k.
func (s *Solution) RequestsK(k int) map[int]struct{} { return s.requestsK[k] }

// IndexKV returns the index of vertex v within vehicle k's path, or
// len(Path(k)) if vehicle k never visits v.
func (s *Solution) IndexKV(k, v int) int { return s.indexesKV[k][v] }

// New builds a solution from an explicit set of per-vehicle paths.
func New(inst *instance.Instance, paths [][]int) *Solution {
	s := &Solution{inst: inst, paths: paths}
	s.computeDecisionVariables()
	s.init()
	return s
}

// NewFromDecisionVariables builds a solution from the x/y/t/l decision
// variables, reconstructing each vehicle's path by following its x
// matrix from its source depot to its target depot.
func NewFromDecisionVariables(inst *instance.Instance, x [][][]bool, y [][]bool, t, l [][]float64) *Solution {
	s := &Solution{inst: inst, x: x, y: y, t: t, l: l}

	s.paths = make([][]int, inst.NumVehicles())
	for k := 0; k < inst.NumVehicles(); k++ {
		path := []int{inst.SourceK(k)}
		for path[len(path)-1] != inst.TargetK(k) {
			cur := path[len(path)-1]
			for v := 0; v < inst.NumVertices(); v++ {
				if s.x[cur][v][k] {
					path = append(path, v)
					break
				}
			}
		}
		s.paths[k] = path
	}

	s.init()
	return s
}

// Empty builds a solution against inst with an empty path for every
// vehicle, mirroring the original's instance-only constructor.
func Empty(inst *instance.Instance) *Solution {
	s := &Solution{inst: inst, paths: make([][]int, inst.NumVehicles())}
	s.computeDecisionVariables()
	s.init()
	return s
}

// computeDecisionVariables derives x, y, t and l from paths.
func (s *Solution) computeDecisionVariables() {
	inst := s.inst
	nv, nk, nr := inst.NumVertices(), inst.NumVehicles(), inst.NumRequests()

	s.x = make([][][]bool, nv)
	for i := range s.x {
		s.x[i] = make([][]bool, nv)
		for j := range s.x[i] {
			s.x[i][j] = make([]bool, nk)
		}
	}
	s.y = make([][]bool, nr)
	for r := range s.y {
		s.y[r] = make([]bool, nk)
	}
	s.t = make([][]float64, nv)
	s.l = make([][]float64, nv)
	for v := 0; v < nv; v++ {
		s.t[v] = make([]float64, nk)
		s.l[v] = make([]float64, nk)
	}

	for k := 0; k < nk; k++ {
		path := s.paths[k]
		for i, v := range path {
			r := inst.RequestV(v)

			if i == 0 {
				s.t[v][k] = inst.TStart(k)
				s.l[v][k] = 0.0
				continue
			}

			u := path[i-1]
			s.x[u][v][k] = true

			if i < len(path)-1 && inst.IsTarget(v) && r < nr {
				s.y[r][k] = true
			}

			s.t[v][k] = s.t[u][k] + inst.TVisit(u) + inst.Length(u, v)/inst.Speed(k)

			if inst.IsSource(v) && r < nr && s.t[v][k] < inst.TCreate(r) {
				s.t[v][k] = inst.TCreate(r)
			}

			s.l[v][k] = s.l[u][k] + inst.DemandV(v)
		}
	}
}

// init recomputes every cached aggregate (tTravels, tFulfills,
// totalProfit, sumTFulfill, loads, times, vehiclesR, vehiclesV,
// vehiclesE, requestsK, indexesKV) by walking paths.
func (s *Solution) init() {
	inst := s.inst
	nv, nk, nr := inst.NumVertices(), inst.NumVehicles(), inst.NumRequests()

	s.tTravels = make([]float64, nk)
	s.tFulfills = make([]float64, nr)
	s.totalProfit = 0.0
	s.sumTFulfill = 0.0
	s.loads = make([][]float64, nk)
	s.times = make([][]float64, nk)

	s.vehiclesR = make([]int, nr)
	for r := range s.vehiclesR {
		s.vehiclesR[r] = nk
	}
	s.vehiclesV = make([]int, nv)
	for v := range s.vehiclesV {
		s.vehiclesV[v] = nk
	}
	s.vehiclesE = make([][]int, nv)
	for u := range s.vehiclesE {
		s.vehiclesE[u] = make([]int, nv)
		for v := range s.vehiclesE[u] {
			s.vehiclesE[u][v] = nk
		}
	}
	s.requestsK = make([]map[int]struct{}, nk)
	s.indexesKV = make([][]int, nk)

	for k := 0; k < nk; k++ {
		path := s.paths[k]
		s.requestsK[k] = make(map[int]struct{})
		s.loads[k] = make([]float64, len(path))
		s.times[k] = make([]float64, len(path))
		s.indexesKV[k] = make([]int, nv)
		for v := range s.indexesKV[k] {
			s.indexesKV[k][v] = len(path)
		}

		for i, v := range path {
			r := inst.RequestV(v)

			if i == 0 {
				s.tTravels[k] = inst.TVisit(v)
				s.loads[k][i] = inst.DemandV(v)
				s.times[k][i] = inst.TVisit(v)
			} else {
				u := path[i-1]

				s.tTravels[k] += inst.Length(u, v)/inst.Speed(k) + inst.TVisit(v)
				s.loads[k][i] = s.loads[k][i-1] + inst.DemandV(v)
				s.times[k][i] = s.times[k][i-1] + inst.Length(u, v)/inst.Speed(k) + inst.TVisit(v)
				s.vehiclesE[u][v] = k
			}

			if r < nr && inst.IsTarget(v) {
				s.tFulfills[r] = inst.TStart(k) + s.times[k][i] - inst.TCreate(r)

				s.totalProfit += inst.Profit(r)
				s.sumTFulfill += s.tFulfills[r]
				s.vehiclesR[r] = k
				s.requestsK[k][r] = struct{}{}
			}

			s.vehiclesV[v] = k
			s.indexesKV[k][v] = i
		}
	}
}

// IsValidPath reports whether vehicle k's path is self-consistent: it
// starts and ends at the vehicle's own depot, respects its time limit
// and capacity, and serves every request's pickup before its delivery.
// When invalid, error is one of:
//
//	1  path does not start at the vehicle's source depot
//	2  path does not end at the vehicle's target depot
//	3  total travel time exceeds the vehicle's time limit
//	4  load exceeds the vehicle's capacity at some point along the path
//	5  a request's pickup is visited at or after its delivery
func (s *Solution) IsValidPath(k int) (bool, int) {
	inst := s.inst
	path := s.paths[k]

	if path[0] != inst.SourceK(k) {
		return false, 1
	}

	if path[len(path)-1] != inst.TargetK(k) {
		return false, 2
	}

	if s.tTravels[k] > inst.TLimit(k) {
		return false, 3
	}

	for j := range path {
		if s.loads[k][j] > inst.Capacity(k) {
			return false, 4
		}
	}

	for r := range s.requestsK[k] {
		if s.indexesKV[k][inst.SourceR(r)] >= s.indexesKV[k][inst.TargetR(r)] {
			return false, 5
		}
	}

	return true, 0
}

// IsFeasible reports whether every vehicle's path is valid. When not
// feasible, error is k+1 for the first offending vehicle k.
func (s *Solution) IsFeasible() (bool, int) {
	for k := 0; k < s.inst.NumVehicles(); k++ {
		if ok, _ := s.IsValidPath(k); !ok {
			return false, k + 1
		}
	}
	return true, 0
}

// AreConstraintsSatisfied checks the solution's x/y/t/l decision
// variables against every constraint of the underlying MILP, returning
// the first violated clause number (1-22) on failure.
func (s *Solution) AreConstraintsSatisfied() (bool, int) {
	inst := s.inst
	nv, nk, nr := inst.NumVertices(), inst.NumVehicles(), inst.NumRequests()

	xb := func(b bool) int {
		if b {
			return 1
		}
		return 0
	}

	// 1: at most one outgoing arc from a request's pickup vertex.
	for r := 0; r < nr; r++ {
		sum := 0
		for i := 0; i < nv; i++ {
			if i == inst.SourceR(r) {
				continue
			}
			for k := 0; k < nk; k++ {
				sum += xb(s.x[inst.SourceR(r)][i][k])
			}
		}
		if sum > 1 {
			return false, 1
		}
	}

	// 2: at most one incoming arc to a request's delivery vertex.
	for r := 0; r < nr; r++ {
		sum := 0
		for i := 0; i < nv; i++ {
			if i == inst.TargetR(r) {
				continue
			}
			for k := 0; k < nk; k++ {
				sum += xb(s.x[i][inst.TargetR(r)][k])
			}
		}
		if sum > 1 {
			return false, 2
		}
	}

	// 3: a vehicle visits a request's pickup iff it visits its delivery.
	for k := 0; k < nk; k++ {
		for r := 0; r < nr; r++ {
			sumOrik, sumIdrk := 0, 0
			for i := 0; i < nv; i++ {
				if i != inst.SourceR(r) {
					sumOrik += xb(s.x[inst.SourceR(r)][i][k])
				}
				if i != inst.TargetR(r) {
					sumIdrk += xb(s.x[i][inst.TargetR(r)][k])
				}
			}
			if sumOrik-sumIdrk != 0 {
				return false, 3
			}
		}
	}

	// 4: a vehicle departs its own source exactly once.
	for k := 0; k < nk; k++ {
		sum := 0
		for i := 0; i < nv; i++ {
			if (inst.IsSource(i) && i != inst.SourceK(k)) || i == inst.TargetK(k) {
				sum += xb(s.x[inst.SourceK(k)][i][k])
			}
		}
		if sum != 1 {
			return false, 4
		}
	}

	// 5: a vehicle arrives at its own target exactly once.
	for k := 0; k < nk; k++ {
		sum := 0
		for i := 0; i < nv; i++ {
			if (inst.IsTarget(i) && i != inst.TargetK(k)) || i == inst.SourceK(k) {
				sum += xb(s.x[i][inst.TargetK(k)][k])
			}
		}
		if sum != 1 {
			return false, 5
		}
	}

	// 6: flow conservation at intermediate, non-depot vertices.
	for k := 0; k < nk; k++ {
		for i := 0; i < nv; i++ {
			if i == inst.SourceK(k) || i == inst.TargetK(k) {
				continue
			}
			sumJik, sumIjk := 0, 0
			for j := 0; j < nv; j++ {
				if j != inst.TargetK(k) {
					sumJik += xb(s.x[j][i][k])
				}
				if j != inst.SourceK(k) {
					sumIjk += xb(s.x[i][j][k])
				}
			}
			if sumJik-sumIjk != 0 {
				return false, 6
			}
		}
	}

	// 7: y[r][k] is consistent with departing request r's pickup.
	for k := 0; k < nk; k++ {
		for r := 0; r < nr; r++ {
			yrk := xb(s.y[r][k])
			sumOrik := 0
			for i := 0; i < nv; i++ {
				if i != inst.SourceR(r) {
					sumOrik += xb(s.x[inst.SourceR(r)][i][k])
				}
			}
			if yrk-sumOrik != 0 {
				return false, 7
			}
		}
	}

	// 8: y[r][k] is consistent with arriving at request r's delivery.
	for k := 0; k < nk; k++ {
		for r := 0; r < nr; r++ {
			yrk := xb(s.y[r][k])
			sumIdrk := 0
			for i := 0; i < nv; i++ {
				if i != inst.TargetR(r) {
					sumIdrk += xb(s.x[i][inst.TargetR(r)][k])
				}
			}
			if yrk-sumIdrk != 0 {
				return false, 8
			}
		}
	}

	// 9: a vehicle cannot depart before its start time.
	for k := 0; k < nk; k++ {
		if s.t[inst.SourceK(k)][k] < inst.TStart(k) {
			return false, 9
		}
	}

	// 10: a vehicle must reach its target within its time budget.
	for k := 0; k < nk; k++ {
		if s.t[inst.TargetK(k)][k] > inst.TStart(k)+inst.TLimit(k)-inst.TVisit(inst.TargetK(k)) {
			return false, 10
		}
	}

	// 11: departure time respects a served request's release time.
	for k := 0; k < nk; k++ {
		for r := 0; r < nr; r++ {
			if s.y[r][k] {
				if s.t[inst.SourceK(k)][k]-inst.TCreate(r) < 0.0 {
					return false, 11
				}
			} else if s.t[inst.SourceK(k)][k] < 0.0 {
				return false, 11
			}
		}
	}

	// 12: time at a served request's delivery respects the time budget.
	for k := 0; k < nk; k++ {
		for r := 0; r < nr; r++ {
			if s.y[r][k] {
				if s.t[inst.TargetR(r)][k]-inst.TStart(k)-inst.TLimit(k)+inst.TVisit(inst.TargetK(k)) > 0.0 {
					return false, 12
				}
			} else if s.t[inst.TargetR(r)][k] > 0.0 {
				return false, 12
			}
		}
	}

	// 13: elapsed time covers direct pickup-to-delivery travel when served.
	for k := 0; k < nk; k++ {
		for r := 0; r < nr; r++ {
			if s.y[r][k] {
				if s.t[inst.TargetK(k)][k]-s.t[inst.SourceK(k)][k]-
					inst.Length(inst.SourceR(r), inst.TargetR(r))/inst.Speed(k) < 0.0 {
					return false, 13
				}
			} else if s.t[inst.TargetK(k)][k]-s.t[inst.SourceK(k)][k] < 0.0 {
				return false, 13
			}
		}
	}

	// 14: big-M time propagation along used arcs.
	for k := 0; k < nk; k++ {
		bigM := inst.TStart(k) + inst.TLimit(k) - inst.TVisit(inst.TargetK(k))
		for i := 0; i < nv; i++ {
			for j := 0; j < nv; j++ {
				xijk := float64(xb(s.x[i][j][k]))
				lhs := s.t[j][k] - s.t[i][k] -
					(bigM+inst.TVisit(i)+inst.Length(i, j)/inst.Speed(k))*xijk
				rhs := inst.TVisit(inst.TargetK(k)) - inst.TStart(k) - inst.TLimit(k) - float32Epsilon
				if lhs < rhs {
					return false, 14
				}
			}
		}
	}

	// 15: load at a vehicle's own source depot must be ~0.
	for k := 0; k < nk; k++ {
		if abs(s.l[inst.SourceK(k)][k]) > float32Epsilon {
			return false, 15
		}
	}

	// 16: load at a vehicle's own target depot must be ~0.
	for k := 0; k < nk; k++ {
		if abs(s.l[inst.TargetK(k)][k]) > float32Epsilon {
			return false, 16
		}
	}

	// 17: load at a served request's pickup is at least its demand.
	for k := 0; k < nk; k++ {
		for r := 0; r < nr; r++ {
			if s.y[r][k] {
				if s.l[inst.SourceR(r)][k]-inst.DemandR(r) < 0.0 {
					return false, 17
				}
			} else if s.l[inst.SourceR(r)][k] < 0.0 {
				return false, 17
			}
		}
	}

	// 18: load never exceeds capacity at any request's pickup.
	for k := 0; k < nk; k++ {
		for r := 0; r < nr; r++ {
			if s.l[inst.SourceR(r)][k] > inst.Capacity(k) {
				return false, 18
			}
		}
	}

	// 19: load at a request's delivery is capped at capacity minus demand.
	for k := 0; k < nk; k++ {
		for r := 0; r < nr; r++ {
			if s.l[inst.TargetR(r)][k] > inst.Capacity(k)-inst.DemandR(r) {
				return false, 19
			}
		}
	}

	// 20: big-M load propagation along used arcs.
	for k := 0; k < nk; k++ {
		for i := 0; i < nv; i++ {
			for j := 0; j < nv; j++ {
				xijk := float64(xb(s.x[i][j][k]))
				if s.l[i][k]-s.l[j][k]+(inst.Capacity(k)+inst.DemandV(j))*xijk > inst.Capacity(k)+float32Epsilon {
					return false, 20
				}
			}
		}
	}

	// 21: global time non-negativity.
	for k := 0; k < nk; k++ {
		for i := 0; i < nv; i++ {
			if s.t[i][k] < 0.0 {
				return false, 21
			}
		}
	}

	// 22: global load non-negativity.
	for k := 0; k < nk; k++ {
		for i := 0; i < nv; i++ {
			if s.l[i][k] < 0.0 {
				return false, 22
			}
		}
	}

	return true, 0
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Equal reports whether s and other have identical per-vehicle paths.
func (s *Solution) Equal(other *Solution) bool {
	if len(s.paths) != len(other.paths) {
		return false
	}
	for k := range s.paths {
		if len(s.paths[k]) != len(other.paths[k]) {
			return false
		}
	}
	for k := range s.paths {
		for i := range s.paths[k] {
			if s.paths[k][i] != other.paths[k][i] {
				return false
			}
		}
	}
	return true
}

// Dominates reports whether s Pareto-dominates other: at least as good
// in both objectives, and strictly better in at least one.
func (s *Solution) Dominates(other *Solution) bool {
	return (s.totalProfit > other.totalProfit && s.sumTFulfill <= other.sumTFulfill) ||
		(s.totalProfit >= other.totalProfit && s.sumTFulfill < other.sumTFulfill)
}

// Less provides the ordering used to keep a bounded archive sorted. It is
// not a lexicographic order on (totalProfit, sumTFulfill), and not even
// antisymmetric: a strictly better profit or fulfillment sum short-circuits
// true on its own, regardless of the other objective, so a.Less(b) and
// b.Less(a) can both hold; path shape is consulted as a tiebreaker only
// when neither short-circuit fires.
func (s *Solution) Less(other *Solution) bool {
	if s.totalProfit > other.totalProfit {
		return true
	}

	if s.sumTFulfill < other.sumTFulfill {
		return true
	}

	if len(s.paths) < len(other.paths) {
		return true
	}

	if len(s.paths) > len(other.paths) {
		return false
	}

	for k := range s.paths {
		if len(s.paths[k]) < len(other.paths[k]) {
			return true
		}
		if len(s.paths[k]) > len(other.paths[k]) {
			return false
		}
	}

	for k := range s.paths {
		for i := range s.paths[k] {
			if s.paths[k][i] < other.paths[k][i] {
				return true
			}
			if s.paths[k][i] > other.paths[k][i] {
				return false
			}
		}
	}

	return false
}

// Greater mirrors the original's operator>, including its redundant
// path-count comparison: the second paths.size() > other paths.size()
// check is a literal duplicate of the first and never fires on its own,
// but is kept to match the clause the solver actually evaluates.
func (s *Solution) Greater(other *Solution) bool {
	if s.totalProfit < other.totalProfit {
		return true
	}

	if s.sumTFulfill > other.sumTFulfill {
		return true
	}

	if len(s.paths) > len(other.paths) {
		return true
	}

	if len(s.paths) > len(other.paths) {
		return false
	}

	for k := range s.paths {
		if len(s.paths[k]) > len(other.paths[k]) {
			return true
		}
		if len(s.paths[k]) < len(other.paths[k]) {
			return false
		}
	}

	for k := range s.paths {
		for i := range s.paths[k] {
			if s.paths[k][i] > other.paths[k][i] {
				return true
			}
			if s.paths[k][i] < other.paths[k][i] {
				return false
			}
		}
	}

	return false
}

// Write serializes the solution in plain text: a line with each
// vehicle's path length, followed by one line per vehicle listing its
// visited vertex ids in order.
func (s *Solution) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)

	for k, path := range s.paths {
		sep := ""
		if k > 0 {
			sep = " "
		}
		if _, err := fmt.Fprintf(bw, "%s%d", sep, len(path)); err != nil {
			return apperr.Wrap(err, apperr.CodeIO, "failed to write path sizes")
		}
	}
	if _, err := fmt.Fprint(bw, "\n"); err != nil {
		return apperr.Wrap(err, apperr.CodeIO, "failed to write path sizes")
	}

	for _, path := range s.paths {
		for i, v := range path {
			sep := ""
			if i > 0 {
				sep = " "
			}
			if _, err := fmt.Fprintf(bw, "%s%d", sep, v); err != nil {
				return apperr.Wrap(err, apperr.CodeIO, "failed to write path")
			}
		}
		if _, err := fmt.Fprint(bw, "\n"); err != nil {
			return apperr.Wrap(err, apperr.CodeIO, "failed to write path")
		}
	}

	return bw.Flush()
}

// WriteFile writes the solution to path in the plain-text format.
func (s *Solution) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return apperr.ErrSolutionFileNotWritten
	}
	defer f.Close()
	return s.Write(f)
}
