package optimizer

import (
	"mvrppd/internal/instance"
	"mvrppd/internal/mip"
	"mvrppd/internal/solution"
	"mvrppd/pkg/logger"
)

// callbackHook materialises a Solution from every MIP integer incumbent
// and enforces the iterated epsilon-constraint ratchet, the Go
// counterpart of BnBSolverCallback::callback(): pop every profit
// threshold the new incumbent already clears, then re-impose the next
// unsurpassed threshold as a lazy constraint so the search is pushed
// toward higher-profit regions for the remainder of the run.
type callbackHook struct {
	inst      *instance.Instance
	vars      *variables
	thresholds []float64 // ascending profit-threshold ladder, head first
	solutions []*solution.Solution
}

func newCallbackHook(inst *instance.Instance, vars *variables, thresholds []float64) *callbackHook {
	return &callbackHook{inst: inst, vars: vars, thresholds: thresholds}
}

// OnSolution implements mip.Callback.
func (h *callbackHook) OnSolution(ctx *mip.CallbackContext) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("optimizer callback failed", "panic", r)
		}
	}()

	n := h.inst.NumVertices()
	numR := h.inst.NumRequests()
	numK := h.inst.NumVehicles()

	x := make([][][]bool, n)
	for i := range x {
		x[i] = make([][]bool, n)
		for j := range x[i] {
			x[i][j] = make([]bool, numK)
			for k := range x[i][j] {
				x[i][j][k] = ctx.BoolValue(h.vars.x[i][j][k])
			}
		}
	}

	y := make([][]bool, numR)
	for r := range y {
		y[r] = make([]bool, numK)
		for k := range y[r] {
			y[r][k] = ctx.BoolValue(h.vars.y[r][k])
		}
	}

	t := make([][]float64, n)
	l := make([][]float64, n)
	for i := 0; i < n; i++ {
		t[i] = make([]float64, numK)
		l[i] = make([]float64, numK)
		for k := 0; k < numK; k++ {
			t[i][k] = ctx.Value(h.vars.t[i][k])
			l[i][k] = ctx.Value(h.vars.l[i][k])
		}
	}

	sol := solution.NewFromDecisionVariables(h.inst, x, y, t, l)
	h.solutions = append(h.solutions, sol)

	for len(h.thresholds) > 0 && h.thresholds[0] <= sol.TotalProfit() {
		h.thresholds = h.thresholds[1:]
	}

	if len(h.thresholds) > 0 {
		expr := mip.NewLinExpr(0)
		for k := 0; k < numK; k++ {
			for r := 0; r < numR; r++ {
				expr.AddTerm(h.inst.Profit(r), h.vars.y[r][k])
			}
		}
		ctx.AddLazy(expr, mip.GE, h.thresholds[0], "profit_ratchet")
	}
}
