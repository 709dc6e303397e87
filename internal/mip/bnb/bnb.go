// Package bnb is a depth-first branch-and-bound reference engine
// satisfying mip.Solver: at every node it solves an LP relaxation with a
// Big-M primal simplex (see simplex.go), branches on the first
// fractional binary variable in declaration order, and fires the
// model's callback at every integer-feasible node it visits — mirroring
// Gurobi's MIPSOL callback event, which the original driver relies on to
// enumerate every incumbent along the way, not just the final optimum.
//
// This is the one package in this module with no third-party dependency
// behind it: there is no MILP/LP solver library behind mip.Solver, so the
// reference relaxation-and-branch engine here is self-authored, built
// entirely on context, math and slices.
package bnb

import (
	"context"
	"math"
	"time"

	"mvrppd/internal/mip"
)

// integerEps is the tolerance used to decide whether a binary variable's
// relaxed value is "close enough" to 0 or 1 to be treated as integral,
// and whether an integer solution violates a freshly added lazy constraint.
const integerEps = 1e-6

// checkInterval is how often (in explored nodes) the engine polls ctx
// for cancellation, matching the periodic-check idiom used by
// solver-svc/internal/algorithms/dijkstra.go.
const checkInterval = 25

// Engine is a stateless depth-first branch-and-bound solver. The zero
// value is ready to use.
type Engine struct{}

// New returns a ready-to-use Engine.
func New() *Engine { return &Engine{} }

// node is one branch-and-bound tree node: a tightened copy of every
// variable's bounds.
type node struct {
	lb []float64
	ub []float64
}

// Optimize implements mip.Solver. It honors ctx and the model's own
// Params.TimeLimit (whichever elapses first), exploring nodes
// depth-first and firing m's callback once per integer-feasible node
// reached, including nodes visited before the search's own pruning
// bound tightens around them. An integer solution that violates a lazy
// constraint the callback added while handling it does not become the
// incumbent; its node is solved again under the new constraint.
func (e *Engine) Optimize(ctx context.Context, m *mip.Model) (mip.Status, error) {
	if m.Params.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(m.Params.TimeLimit*float64(time.Second)))
		defer cancel()
	}

	vars := m.Vars()
	n := len(vars)

	lb0 := make([]float64, n)
	ub0 := make([]float64, n)
	for i, v := range vars {
		lb0[i] = v.LB()
		ub0[i] = v.UB()
	}

	minimize := m.Sense == mip.Minimize
	c := make([]float64, n)
	for i, v := range vars {
		if minimize {
			c[i] = v.Obj()
		} else {
			c[i] = -v.Obj()
		}
	}

	stack := []node{{lb: lb0, ub: ub0}}

	haveIncumbent := false
	bestObj := math.Inf(1)
	explored := 0
	interrupted := false

	for len(stack) > 0 {
		if explored%checkInterval == 0 {
			select {
			case <-ctx.Done():
				interrupted = true
			default:
			}
		}
		if interrupted {
			break
		}
		explored++

		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		rows := buildRows(vars, top.lb, top.ub, m.Constraints())
		rows = append(rows, buildRows(vars, top.lb, top.ub, m.LazyConstraints())...)

		feasible, xShifted, relObj := solveLP(n, c, rows)
		if !feasible {
			continue
		}
		for i := range c {
			relObj += c[i] * top.lb[i]
		}
		if haveIncumbent && relObj >= bestObj-integerEps {
			continue // bound: this subtree cannot beat the incumbent
		}

		x := make([]float64, n)
		for i := range x {
			x[i] = xShifted[i] + top.lb[i]
		}

		branchVar := firstFractionalBinary(vars, x)
		if branchVar < 0 {
			before := len(m.LazyConstraints())
			m.Fire(x)
			cutOff := false
			for _, con := range m.LazyConstraints()[before:] {
				v := con.Expr.Eval(x)
				cutOff = cutOff || (con.Sense != mip.GE && v > con.RHS+integerEps) ||
					(con.Sense != mip.LE && v < con.RHS-integerEps)
			}
			if cutOff {
				stack = append(stack, top) // re-solve this node under the new lazy cuts
				continue
			}
			haveIncumbent = true
			bestObj = relObj
			continue
		}

		floorLB := append([]float64(nil), top.lb...)
		floorUB := append([]float64(nil), top.ub...)
		floorUB[branchVar] = math.Floor(x[branchVar])

		ceilLB := append([]float64(nil), top.lb...)
		ceilUB := append([]float64(nil), top.ub...)
		ceilLB[branchVar] = math.Ceil(x[branchVar])

		stack = append(stack, node{lb: floorLB, ub: floorUB}, node{lb: ceilLB, ub: ceilUB})
	}

	switch {
	case interrupted:
		return mip.StatusInterrupted, nil
	case !haveIncumbent:
		return mip.StatusInfeasible, nil
	default:
		return mip.StatusOptimal, nil
	}
}

// firstFractionalBinary returns the index of the first binary variable
// whose relaxed value is not within integerEps of 0 or 1, or -1 if the
// relaxation is already integer-feasible.
func firstFractionalBinary(vars []*mip.Var, x []float64) int {
	for i, v := range vars {
		if v.Type() != mip.Binary {
			continue
		}
		frac := x[i] - math.Floor(x[i])
		if frac > integerEps && frac < 1-integerEps {
			return i
		}
	}
	return -1
}

// buildRows lowers every constraint to a dense row over x' = x - lb,
// shifting each row's right-hand side by the lower-bound offset, then
// appends one explicit upper-bound row per variable (x'_i <= ub_i -
// lb_i), since the simplex tableau only ever enforces x' >= 0 directly.
func buildRows(vars []*mip.Var, lb, ub []float64, constraints []*mip.Constraint) []lpRow {
	n := len(vars)
	rows := make([]lpRow, 0, len(constraints)+n)

	for _, con := range constraints {
		coeffs := make([]float64, n)
		rhs := con.RHS - con.Expr.Const()
		for _, t := range con.Expr.Terms() {
			idx := t.Var.Index()
			coeffs[idx] += t.Coeff
			rhs -= t.Coeff * lb[idx]
		}
		rows = append(rows, lpRow{coeffs: coeffs, sense: con.Sense, rhs: rhs})
	}

	for i := 0; i < n; i++ {
		if math.IsInf(ub[i], 1) {
			continue
		}
		coeffs := make([]float64, n)
		coeffs[i] = 1
		rows = append(rows, lpRow{coeffs: coeffs, sense: mip.LE, rhs: ub[i] - lb[i]})
	}

	return rows
}
