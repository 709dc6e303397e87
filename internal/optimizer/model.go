// Package optimizer builds the MVRPPD MILP over the abstract internal/mip
// model and drives an iterated epsilon-constraint search for a Pareto set
// of solutions: a GRBModel-shaped variable/constraint build that runs once
// under a profit-threshold ratchet enforced through lazy constraints fired
// from its callback.
package optimizer

import (
	"mvrppd/internal/instance"
	"mvrppd/internal/mip"
)

// variables is the full set of decision-variable handles the MILP builder
// hands to the callback hook, mirroring the x/y/t/l arrays BnBSolver.cpp
// keeps alongside its GRBModel.
type variables struct {
	x [][][]*mip.Var // x[i][j][k]
	y [][]*mip.Var   // y[r][k]
	t [][]*mip.Var   // t[i][k]
	l [][]*mip.Var   // l[i][k]
}

// buildModel declares every decision variable and adds constraints c_01
// through c_16 over x, y, t and l.
func buildModel(inst *instance.Instance) (*mip.Model, *variables) {
	m := mip.New(mip.Minimize)
	n := inst.NumVertices()
	numR := inst.NumRequests()
	numK := inst.NumVehicles()

	vars := &variables{
		x: make([][][]*mip.Var, n),
		y: make([][]*mip.Var, numR),
		t: make([][]*mip.Var, n),
		l: make([][]*mip.Var, n),
	}
	for i := range vars.x {
		vars.x[i] = make([][]*mip.Var, n)
		for j := range vars.x[i] {
			vars.x[i][j] = make([]*mip.Var, numK)
		}
	}
	for r := range vars.y {
		vars.y[r] = make([]*mip.Var, numK)
	}
	for i := range vars.t {
		vars.t[i] = make([]*mip.Var, numK)
		vars.l[i] = make([]*mip.Var, numK)
	}

	for k := 0; k < numK; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				vars.x[i][j][k] = m.AddVar(0, 1, 0, mip.Binary, "x")
			}
		}
	}

	for k := 0; k < numK; k++ {
		for r := 0; r < numR; r++ {
			// Coefficient in the minimised objective: the service time
			// of request r's delivery vertex minus r's release time.
			obj := inst.TVisit(inst.TargetR(r)) - inst.TCreate(r)
			vars.y[r][k] = m.AddVar(0, 1, obj, mip.Binary, "y")
		}
	}

	for k := 0; k < numK; k++ {
		ub := inst.TStart(k) + inst.TLimit(k)
		for i := 0; i < n; i++ {
			obj := 0.0
			if inst.IsTarget(i) && inst.RequestV(i) < numR {
				obj = 1.0
			}
			vars.t[i][k] = m.AddVar(0, ub, obj, mip.Continuous, "t")
		}
	}

	for k := 0; k < numK; k++ {
		for i := 0; i < n; i++ {
			ub := inst.Capacity(k)
			r := inst.RequestV(i)

			switch {
			case i == inst.SourceK(k) || i == inst.TargetK(k):
				ub = 0
			case inst.IsTarget(i) && r < numR:
				ub -= inst.DemandR(r)
			}

			vars.l[i][k] = m.AddVar(0, ub, 0, mip.Continuous, "l")
		}
	}

	addFlowConstraints(m, inst, vars)
	addTimeConstraints(m, inst, vars)
	addLoadConstraints(m, inst, vars)

	return m, vars
}

// addFlowConstraints adds c_01 through c_08, the routing-flow half of the
// MILP: at-most-once arrival/departure at a request's endpoints (c01,
// c02), per-request per-vehicle flow balance (c03), single departure from
// and arrival at each vehicle's own depot (c04, c05), flow conservation at
// every other vertex (c06), and the y-to-x coupling at request endpoints
// (c07, c08).
func addFlowConstraints(m *mip.Model, inst *instance.Instance, vars *variables) {
	n := inst.NumVertices()
	numR := inst.NumRequests()
	numK := inst.NumVehicles()

	for r := 0; r < numR; r++ {
		src := inst.SourceR(r)
		expr := mip.NewLinExpr(0)
		for i := 0; i < n; i++ {
			if i == src {
				continue
			}
			for k := 0; k < numK; k++ {
				expr.AddTerm(1, vars.x[src][i][k])
			}
		}
		m.AddConstr(expr, mip.LE, 1, "c_01")
	}

	for r := 0; r < numR; r++ {
		tgt := inst.TargetR(r)
		expr := mip.NewLinExpr(0)
		for i := 0; i < n; i++ {
			if i == tgt {
				continue
			}
			for k := 0; k < numK; k++ {
				expr.AddTerm(1, vars.x[i][tgt][k])
			}
		}
		m.AddConstr(expr, mip.LE, 1, "c_02")
	}

	for k := 0; k < numK; k++ {
		for r := 0; r < numR; r++ {
			src, tgt := inst.SourceR(r), inst.TargetR(r)
			expr := mip.NewLinExpr(0)
			for i := 0; i < n; i++ {
				if i != src {
					expr.AddTerm(1, vars.x[src][i][k])
				}
			}
			for i := 0; i < n; i++ {
				if i != tgt {
					expr.AddTerm(-1, vars.x[i][tgt][k])
				}
			}
			m.AddConstr(expr, mip.EQ, 0, "c_03")
		}
	}

	for k := 0; k < numK; k++ {
		srcK, tgtK := inst.SourceK(k), inst.TargetK(k)
		expr := mip.NewLinExpr(0)
		for i := 0; i < n; i++ {
			if (inst.IsSource(i) && i != srcK) || i == tgtK {
				expr.AddTerm(1, vars.x[srcK][i][k])
			}
		}
		m.AddConstr(expr, mip.EQ, 1, "c_04")
	}

	for k := 0; k < numK; k++ {
		srcK, tgtK := inst.SourceK(k), inst.TargetK(k)
		expr := mip.NewLinExpr(0)
		for i := 0; i < n; i++ {
			if (inst.IsTarget(i) && i != tgtK) || i == srcK {
				expr.AddTerm(1, vars.x[i][tgtK][k])
			}
		}
		m.AddConstr(expr, mip.EQ, 1, "c_05")
	}

	for k := 0; k < numK; k++ {
		srcK, tgtK := inst.SourceK(k), inst.TargetK(k)
		for i := 0; i < n; i++ {
			if i == srcK || i == tgtK {
				continue
			}
			expr := mip.NewLinExpr(0)
			for j := 0; j < n; j++ {
				if j != tgtK {
					expr.AddTerm(1, vars.x[j][i][k])
				}
			}
			for j := 0; j < n; j++ {
				if j != srcK {
					expr.AddTerm(-1, vars.x[i][j][k])
				}
			}
			m.AddConstr(expr, mip.EQ, 0, "c_06")
		}
	}

	for k := 0; k < numK; k++ {
		for r := 0; r < numR; r++ {
			src := inst.SourceR(r)
			expr := mip.NewLinExpr(0).AddTerm(1, vars.y[r][k])
			for i := 0; i < n; i++ {
				if i != src {
					expr.AddTerm(-1, vars.x[src][i][k])
				}
			}
			m.AddConstr(expr, mip.EQ, 0, "c_07")
		}
	}

	for k := 0; k < numK; k++ {
		for r := 0; r < numR; r++ {
			tgt := inst.TargetR(r)
			expr := mip.NewLinExpr(0).AddTerm(1, vars.y[r][k])
			for i := 0; i < n; i++ {
				if i != tgt {
					expr.AddTerm(-1, vars.x[i][tgt][k])
				}
			}
			m.AddConstr(expr, mip.EQ, 0, "c_08")
		}
	}
}

// addTimeConstraints adds c_09 through c_14: the vehicle's own
// start/return time window (c09, c10), release-time and duration-budget
// coupling via y (c11, c12), the request's own travel-time lower bound
// (c13), and the edge-wise big-M time propagation (c14).
func addTimeConstraints(m *mip.Model, inst *instance.Instance, vars *variables) {
	n := inst.NumVertices()
	numR := inst.NumRequests()
	numK := inst.NumVehicles()

	for k := 0; k < numK; k++ {
		srcK, tgtK := inst.SourceK(k), inst.TargetK(k)

		m.AddConstr(mip.NewLinExpr(0).AddTerm(1, vars.t[srcK][k]), mip.GE, inst.TStart(k), "c_09")

		rhs10 := inst.TStart(k) + inst.TLimit(k) - inst.TVisit(tgtK)
		m.AddConstr(mip.NewLinExpr(0).AddTerm(1, vars.t[tgtK][k]), mip.LE, rhs10, "c_10")
	}

	for k := 0; k < numK; k++ {
		tgtK := inst.TargetK(k)
		windowEnd := inst.TStart(k) + inst.TLimit(k) - inst.TVisit(tgtK)

		for r := 0; r < numR; r++ {
			src, tgt := inst.SourceR(r), inst.TargetR(r)

			expr11 := mip.NewLinExpr(0).AddTerm(1, vars.t[src][k]).AddTerm(-inst.TCreate(r), vars.y[r][k])
			m.AddConstr(expr11, mip.GE, 0, "c_11")

			expr12 := mip.NewLinExpr(0).AddTerm(1, vars.t[tgt][k]).AddTerm(-windowEnd, vars.y[r][k])
			m.AddConstr(expr12, mip.LE, 0, "c_12")

			travel := inst.Length(src, tgt) / inst.Speed(k)
			expr13 := mip.NewLinExpr(0).AddTerm(1, vars.t[tgt][k]).AddTerm(-1, vars.t[src][k]).AddTerm(-travel, vars.y[r][k])
			m.AddConstr(expr13, mip.GE, 0, "c_13")
		}
	}

	for k := 0; k < numK; k++ {
		tgtK := inst.TargetK(k)
		windowEnd := inst.TStart(k) + inst.TLimit(k) - inst.TVisit(tgtK)

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				bigM := windowEnd + inst.TVisit(i) + inst.Length(i, j)/inst.Speed(k)
				expr := mip.NewLinExpr(0).
					AddTerm(1, vars.t[j][k]).
					AddTerm(-1, vars.t[i][k]).
					AddTerm(-bigM, vars.x[i][j][k])
				rhs := inst.TVisit(tgtK) - inst.TStart(k) - inst.TLimit(k)
				m.AddConstr(expr, mip.GE, rhs, "c_14")
			}
		}
	}
}

// addLoadConstraints adds c_15 and c_16: load lower bound at a request's
// source coupled via y, and the edge-wise load propagation.
func addLoadConstraints(m *mip.Model, inst *instance.Instance, vars *variables) {
	n := inst.NumVertices()
	numR := inst.NumRequests()
	numK := inst.NumVehicles()

	for k := 0; k < numK; k++ {
		for r := 0; r < numR; r++ {
			src := inst.SourceR(r)
			expr := mip.NewLinExpr(0).AddTerm(1, vars.l[src][k]).AddTerm(-inst.DemandR(r), vars.y[r][k])
			m.AddConstr(expr, mip.GE, 0, "c_15")
		}
	}

	for k := 0; k < numK; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				coeff := inst.Capacity(k) + inst.DemandV(j)
				expr := mip.NewLinExpr(0).
					AddTerm(1, vars.l[i][k]).
					AddTerm(-1, vars.l[j][k]).
					AddTerm(coeff, vars.x[i][j][k])
				m.AddConstr(expr, mip.LE, inst.Capacity(k), "c_16")
			}
		}
	}
}
