package bnb

import "mvrppd/internal/mip"

// bigM is the penalty applied to artificial variables. It must dominate
// any attainable objective value for the Big-M method's feasibility
// guarantee to hold; MVRPPD objective coefficients are all derived from
// bounded instance data, so this margin is generous in practice.
const bigM = 1e9

// simplexEps is the tolerance used for all sign/zero comparisons inside
// the tableau.
const simplexEps = 1e-7

// maxSimplexIterations bounds the pivot count as a safety net against a
// cycling or numerically stuck tableau; real MVRPPD relaxations settle
// in far fewer iterations than this.
const maxSimplexIterations = 20000

// lpRow is one constraint row over a node's shifted variables x' = x - lb
// (see buildRows in bnb.go), to be assembled into a tableau by solveLP.
type lpRow struct {
	coeffs []float64
	sense  mip.Sense
	rhs    float64
}

// rowKind classifies a normalized row by which auxiliary columns it
// needs.
type rowKind int

const (
	kindLE rowKind = iota // slack only
	kindGE                // surplus + artificial
	kindEQ                // artificial only
)

// solveLP solves minimize c^T x subject to rows, x >= 0, with a Big-M
// primal simplex over a dense tableau. Every variable's own upper bound
// must already be present as one of rows (there is no implicit bound
// handling beyond x >= 0), matching how bnb.go assembles a node's
// relaxation. Reports infeasibility when no artificial-free basis is
// reached; does not detect unboundedness, since MVRPPD variables always
// carry an explicit finite upper bound row.
func solveLP(n int, c []float64, rows []lpRow) (feasible bool, x []float64, obj float64) {
	m := len(rows)
	if m == 0 {
		return true, make([]float64, n), 0
	}

	type prepRow struct {
		coeffs []float64
		rhs    float64
		kind   rowKind
	}

	preps := make([]prepRow, m)
	extraCols := 0
	for i, r := range rows {
		coeffs := append([]float64(nil), r.coeffs...)
		rhs := r.rhs
		sense := r.sense

		if rhs < -simplexEps {
			for j := range coeffs {
				coeffs[j] = -coeffs[j]
			}
			rhs = -rhs
			switch sense {
			case mip.LE:
				sense = mip.GE
			case mip.GE:
				sense = mip.LE
			}
		}

		var kind rowKind
		switch sense {
		case mip.LE:
			kind = kindLE
			extraCols++
		case mip.GE:
			kind = kindGE
			extraCols += 2
		case mip.EQ:
			kind = kindEQ
			extraCols++
		}
		preps[i] = prepRow{coeffs: coeffs, rhs: rhs, kind: kind}
	}

	totalCols := n + extraCols
	A := make([][]float64, m)
	for i := range A {
		A[i] = make([]float64, totalCols+1)
	}
	basis := make([]int, m)
	isArtificial := make([]bool, totalCols)

	col := n
	for i, p := range preps {
		copy(A[i][:n], p.coeffs)
		A[i][totalCols] = p.rhs

		switch p.kind {
		case kindLE:
			A[i][col] = 1
			basis[i] = col
			col++
		case kindGE:
			A[i][col] = -1 // surplus
			col++
			A[i][col] = 1 // artificial
			isArtificial[col] = true
			basis[i] = col
			col++
		case kindEQ:
			A[i][col] = 1 // artificial
			isArtificial[col] = true
			basis[i] = col
			col++
		}
	}

	cc := make([]float64, totalCols)
	copy(cc, c)
	for j := n; j < totalCols; j++ {
		if isArtificial[j] {
			cc[j] = bigM
		}
	}

	// r holds the reduced cost of every column under the current basis;
	// optimal once every entry is >= -simplexEps. rhsZ mirrors the
	// running objective value but is only used for bookkeeping — the
	// reported objective is recomputed directly from x at the end of
	// solveLP.
	r := make([]float64, totalCols)
	var rhsZ float64
	for j := 0; j < totalCols; j++ {
		sum := 0.0
		for i := 0; i < m; i++ {
			sum += cc[basis[i]] * A[i][j]
		}
		r[j] = cc[j] - sum
	}
	for i := 0; i < m; i++ {
		rhsZ += cc[basis[i]] * A[i][totalCols]
	}

	for iter := 0; iter < maxSimplexIterations; iter++ {
		enter := -1
		best := -simplexEps
		for j := 0; j < totalCols; j++ {
			if r[j] < best {
				best = r[j]
				enter = j
			}
		}
		if enter < 0 {
			break // optimal
		}

		leave := -1
		bestRatio := 0.0
		for i := 0; i < m; i++ {
			if A[i][enter] <= simplexEps {
				continue
			}
			ratio := A[i][totalCols] / A[i][enter]
			if leave < 0 || ratio < bestRatio-simplexEps ||
				(ratio < bestRatio+simplexEps && basis[i] < basis[leave]) {
				leave = i
				bestRatio = ratio
			}
		}
		if leave < 0 {
			// No bounded leaving row: every variable here already
			// carries an explicit upper-bound row, so this indicates a
			// degenerate/numerically exhausted tableau rather than a
			// genuinely unbounded relaxation. Treat as infeasible.
			return false, nil, 0
		}

		pivot := A[leave][enter]
		for j := 0; j <= totalCols; j++ {
			A[leave][j] /= pivot
		}
		for i := 0; i < m; i++ {
			if i == leave {
				continue
			}
			factor := A[i][enter]
			if factor == 0 {
				continue
			}
			for j := 0; j <= totalCols; j++ {
				A[i][j] -= factor * A[leave][j]
			}
		}
		factor := r[enter]
		if factor != 0 {
			for j := 0; j < totalCols; j++ {
				r[j] -= factor * A[leave][j]
			}
			rhsZ -= factor * A[leave][totalCols]
		}
		basis[leave] = enter
	}

	for i := 0; i < m; i++ {
		if isArtificial[basis[i]] && A[i][totalCols] > simplexEps {
			return false, nil, 0
		}
	}

	x = make([]float64, n)
	for i, b := range basis {
		if b < n {
			x[b] = A[i][totalCols]
		}
	}

	obj = 0
	for j := 0; j < n; j++ {
		obj += c[j] * x[j]
	}

	return true, x, obj
}
