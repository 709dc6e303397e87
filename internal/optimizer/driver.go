package optimizer

import (
	"context"
	"fmt"
	"time"

	"mvrppd/internal/instance"
	"mvrppd/internal/mip"
	"mvrppd/internal/pareto"
	"mvrppd/pkg/apperr"
	"mvrppd/pkg/logger"
)

// Config carries the runtime parameters BnBSolver's constructor chain
// layers defaults into: a wall-clock time limit, a seed (unused by the
// branch-and-bound engine itself, kept for parity with the original's
// constructor surface and for any future randomized tie-breaking), and
// the number of profit-threshold rungs driving the epsilon-constraint
// ladder.
type Config struct {
	TimeLimit       float64
	Seed            int64
	MaxNumSolutions int
}

// DefaultConfig mirrors Solver::Solver's no-instance-size-known defaults:
// a one-hour time limit and a clock-derived seed. MaxNumSolutions still needs the
// instance to default (2*|V|), so callers should prefer
// DefaultConfigFor.
func DefaultConfig() Config {
	return Config{TimeLimit: 3600, Seed: time.Now().UnixNano()}
}

// DefaultConfigFor derives the MaxNumSolutions default (2*|V|) the way
// Solver::Solver(instance, timeLimit, seed) does once the instance size
// is known.
func DefaultConfigFor(inst *instance.Instance) Config {
	cfg := DefaultConfig()
	cfg.MaxNumSolutions = 2 * inst.NumVertices()
	return cfg
}

// Driver builds and runs the MVRPPD MILP against a concrete mip.Solver,
// the Go counterpart of BnBSolver: constructor takes the instance and
// runtime parameters, Solve does the one-shot build-and-optimize that
// originally lived in BnBSolver::solve().
type Driver struct {
	solver mip.Solver
	cfg    Config
}

// NewDriver returns a Driver that runs its MILP through solver (normally
// bnb.New()).
func NewDriver(solver mip.Solver, cfg Config) *Driver {
	return &Driver{solver: solver, cfg: cfg}
}

// Solve builds the MILP for inst, attaches the epsilon-constraint
// callback hook, and runs the solver once. It returns a maxNumSolutions-
// bounded Pareto archive seeded with every incumbent the callback
// observed plus the solver's own final incumbent, matching
// BnBSolver::solve()'s "callback.getSolutions() union final incumbent"
// assembly. When the solver returns an error after the callback has
// captured incumbents, the archive of those incumbents is returned
// together with the error.
func (d *Driver) Solve(ctx context.Context, inst *instance.Instance) (*pareto.Archive, error) {
	if ok, code := inst.IsValid(); !ok {
		return nil, apperr.New(apperr.CodeInvalidArgument,
			fmt.Sprintf("instance failed validation (code %d)", code))
	}

	maxNumSolutions := d.cfg.MaxNumSolutions
	if maxNumSolutions < 2 {
		maxNumSolutions = 2 * inst.NumVertices()
	}

	thresholds := make([]float64, maxNumSolutions)
	for i := 0; i < maxNumSolutions; i++ {
		thresholds[i] = float64(i) * inst.SumProfit() / float64(maxNumSolutions-1)
	}

	model, vars := buildModel(inst)
	model.Params = mip.Params{
		TimeLimit:       d.cfg.TimeLimit,
		Threads:         1,
		LazyConstraints: true,
		Silent:          true,
	}

	hook := newCallbackHook(inst, vars, thresholds)
	model.SetCallback(hook)

	status, err := d.solver.Optimize(ctx, model)
	if err != nil {
		wrapped := apperr.Wrap(err, apperr.CodeOptimizerError, "optimizer failed")
		if len(hook.solutions) == 0 {
			return nil, wrapped
		}
		partial := pareto.New(maxNumSolutions)
		partial.InsertAll(hook.solutions)
		return partial, wrapped
	}

	switch status {
	case mip.StatusInfeasible:
		logger.Warn("optimizer found no feasible solution", "instance_vertices", inst.NumVertices())
	case mip.StatusInterrupted, mip.StatusTimeLimit:
		logger.Warn("optimizer stopped before proving optimality", "status", status)
	}

	// The final MIPSOL-reported incumbent is, by construction, already
	// the last entry hook.solutions recorded, so no separate
	// post-optimize read-out is needed here the way BnBSolver::solve()
	// re-reads GRBModel one last time after optimize() returns.
	archive := pareto.New(maxNumSolutions)
	archive.InsertAll(hook.solutions)

	if archive.Size() == 0 {
		return archive, apperr.NewWarning(apperr.CodeOptimizerInfeasible, "no solutions found")
	}

	return archive, nil
}
