// Package mip defines a small abstract mixed-integer programming model,
// shaped after the Gurobi C++ API surface the original solver was built
// against (GRBModel/GRBVar/GRBLinExpr/addVar/addConstr/setCallback/
// optimize): add variables with bounds and an objective coefficient, add
// linear constraints, register a callback invoked at every integer
// incumbent, add lazy constraints from within that callback, and run a
// single blocking Optimize. internal/optimizer is written only against
// this API, exactly as the original is written only against GRBModel, so
// a real external solver binding could later implement Solver over a
// Model without any change to the builder that uses it.
package mip

import "context"

// VarType is the domain of a decision variable.
type VarType int

const (
	Continuous VarType = iota
	Binary
)

// Sense is the relational operator of a linear constraint.
type Sense int

const (
	LE Sense = iota
	GE
	EQ
)

// ModelSense is the optimization direction.
type ModelSense int

const (
	Minimize ModelSense = iota
	Maximize
)

// Status is the outcome of a call to Optimize.
type Status int

const (
	StatusOptimal Status = iota
	StatusTimeLimit
	StatusInfeasible
	StatusInterrupted
)

// Var is a handle to a declared decision variable.
type Var struct {
	index int
	name  string
	lb    float64
	ub    float64
	obj   float64
	vtype VarType
}

// Index returns the variable's position in the model, used internally by
// solver implementations to index dense value arrays.
func (v *Var) Index() int { return v.index }

// Name returns the variable's declared name.
func (v *Var) Name() string { return v.name }

// LB returns the variable's lower bound.
func (v *Var) LB() float64 { return v.lb }

// UB returns the variable's upper bound.
func (v *Var) UB() float64 { return v.ub }

// Obj returns the variable's linear objective coefficient.
func (v *Var) Obj() float64 { return v.obj }

// Type returns the variable's domain.
func (v *Var) Type() VarType { return v.vtype }

// term is one coefficient*variable pair of a LinExpr.
type term struct {
	coeff float64
	v     *Var
}

// LinExpr is a linear expression built incrementally with AddTerm, in the
// style of GRBLinExpr's += accumulation.
type LinExpr struct {
	terms    []term
	constant float64
}

// NewLinExpr returns an empty linear expression, optionally with a
// constant offset.
func NewLinExpr(constant float64) *LinExpr {
	return &LinExpr{constant: constant}
}

// AddTerm appends coeff*v to the expression and returns the receiver, so
// calls can be chained the way GRBLinExpr's operator+= is chained in the
// original builder.
func (e *LinExpr) AddTerm(coeff float64, v *Var) *LinExpr {
	e.terms = append(e.terms, term{coeff: coeff, v: v})
	return e
}

// Eval evaluates the expression against a dense variable value slice
// indexed by Var.Index().
func (e *LinExpr) Eval(values []float64) float64 {
	sum := e.constant
	for _, t := range e.terms {
		sum += t.coeff * values[t.v.index]
	}
	return sum
}

// Term is one coefficient*variable pair of a LinExpr, exposed so a
// Solver implementation can walk an expression's structure (e.g. to
// build a dense constraint row indexed by Var.Index()) rather than only
// evaluate it against a full value vector.
type Term struct {
	Coeff float64
	Var   *Var
}

// Terms returns every term of the expression, in the order added.
func (e *LinExpr) Terms() []Term {
	out := make([]Term, len(e.terms))
	for i, t := range e.terms {
		out[i] = Term{Coeff: t.coeff, Var: t.v}
	}
	return out
}

// Const returns the expression's constant offset.
func (e *LinExpr) Const() float64 { return e.constant }

// Constraint is a linear constraint coeffs·vars (sense) rhs.
type Constraint struct {
	Expr  *LinExpr
	Sense Sense
	RHS   float64
	Name  string
}

// Params holds the runtime knobs the original sets on GRBModel before
// calling optimize (TimeLimit, OutputFlag, Threads, LazyConstraints).
type Params struct {
	TimeLimit       float64 // seconds; zero means no limit
	Threads         int
	LazyConstraints bool
	Silent          bool
}

// CallbackContext is handed to Callback.OnSolution at every new integer
// incumbent, mirroring GRBCallback's getSolution/addLazy pair.
type CallbackContext struct {
	model *Model
	values []float64
}

// Value returns v's value in the current incumbent, the equivalent of
// GRBCallback::getSolution(v).
func (c *CallbackContext) Value(v *Var) float64 {
	return c.values[v.index]
}

// BoolValue reports whether v's incumbent value rounds to true, the
// ">= 0.5" thresholding the original applies to every binary variable it
// reads out of a callback or a final incumbent.
func (c *CallbackContext) BoolValue(v *Var) bool {
	return c.values[v.index] >= 0.5
}

// AddLazy registers a lazy constraint, equivalent to GRBCallback::addLazy.
// It is appended to the model's lazy-constraint list (LazyConstraints,
// kept apart from Constraints) and takes effect for every node explored
// after this call returns.
func (c *CallbackContext) AddLazy(expr *LinExpr, sense Sense, rhs float64, name string) {
	c.model.lazyConstraints = append(c.model.lazyConstraints, &Constraint{
		Expr: expr, Sense: sense, RHS: rhs, Name: name,
	})
}

// Callback is invoked once per integer-feasible incumbent found during
// Optimize.
type Callback interface {
	OnSolution(ctx *CallbackContext)
}

// CallbackFunc adapts a plain function to the Callback interface.
type CallbackFunc func(ctx *CallbackContext)

func (f CallbackFunc) OnSolution(ctx *CallbackContext) { f(ctx) }

// Solver runs a Model to completion (or until ctx is cancelled or the
// model's own time limit elapses), returning the final status. It is the
// seam a concrete MIP engine implements; internal/mip/bnb is this
// module's only implementation of it.
type Solver interface {
	Optimize(ctx context.Context, m *Model) (Status, error)
}

// Model is the MILP this module's optimizer builds, independent of
// whichever Solver runs it.
type Model struct {
	Sense ModelSense
	Params Params

	vars        []*Var
	constraints []*Constraint
	lazyConstraints []*Constraint

	callback Callback
}

// New creates an empty model with the given optimization sense.
func New(sense ModelSense) *Model {
	return &Model{Sense: sense}
}

// AddVar declares a new decision variable with bounds [lb, ub], linear
// objective coefficient obj, domain vtype, and a diagnostic name.
func (m *Model) AddVar(lb, ub, obj float64, vtype VarType, name string) *Var {
	v := &Var{index: len(m.vars), lb: lb, ub: ub, obj: obj, vtype: vtype, name: name}
	m.vars = append(m.vars, v)
	return v
}

// AddConstr adds a linear constraint expr (sense) rhs to the model.
func (m *Model) AddConstr(expr *LinExpr, sense Sense, rhs float64, name string) *Constraint {
	c := &Constraint{Expr: expr, Sense: sense, RHS: rhs, Name: name}
	m.constraints = append(m.constraints, c)
	return c
}

// SetCallback registers cb to be invoked at every integer incumbent
// found while solving the model.
func (m *Model) SetCallback(cb Callback) { m.callback = cb }

// Vars returns every declared variable, in declaration order.
func (m *Model) Vars() []*Var { return m.vars }

// Constraints returns every statically added constraint (not including
// lazy constraints added during the search).
func (m *Model) Constraints() []*Constraint { return m.constraints }

// LazyConstraints returns every lazy constraint added so far (via a
// callback's AddLazy), in the order they were added.
func (m *Model) LazyConstraints() []*Constraint { return m.lazyConstraints }

// Callback returns the registered callback, or nil if none was set.
func (m *Model) Callback() Callback { return m.callback }

// Fire invokes the registered callback (if any) with the given incumbent
// values, the Solver-side counterpart of a Gurobi MIPSOL event. Solver
// implementations call this once per integer-feasible node they visit.
func (m *Model) Fire(values []float64) {
	if m.callback == nil {
		return
	}
	m.callback.OnSolution(&CallbackContext{model: m, values: values})
}
