// Package boolalg provides named boolean symbols and expressions over them.
// Expressions are hash-consed and-inverter circuits backed by gini's logic
// package; an Algebra owns one circuit together with the mapping between
// symbol names and circuit inputs, so all expressions that are combined or
// compared must come from the same Algebra.
package boolalg

import (
	"fmt"
	"sort"

	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

// Symbol values identify particular boolean variables within an Algebra.
// Symbols are ordered by their string form.
type Symbol string

func (s Symbol) String() string {
	return string(s)
}

// Expr is an opaque boolean expression. The zero Expr is invalid.
type Expr struct {
	alg *Algebra
	m   z.Lit
}

// Algebra holds a circuit and the translation tables between Symbols and the
// literals that appear in it.
type Algebra struct {
	c     *logic.C
	lits  map[Symbol]z.Lit
	names map[z.Var]Symbol
}

// New returns an empty Algebra.
func New() *Algebra {
	return &Algebra{
		c:     logic.NewC(),
		lits:  make(map[Symbol]z.Lit),
		names: make(map[z.Var]Symbol),
	}
}

// Symbol registers a boolean variable under the given name and returns its
// Symbol. Registering the same name again returns the same Symbol.
func (a *Algebra) Symbol(name string) Symbol {
	s := Symbol(name)
	a.Var(s)
	return s
}

// Symbols registers the given names in order.
func (a *Algebra) Symbols(names ...string) []Symbol {
	syms := make([]Symbol, len(names))
	for i, name := range names {
		syms[i] = a.Symbol(name)
	}
	return syms
}

// Var returns the expression consisting of the single symbol s, allocating a
// circuit input for s on first use.
func (a *Algebra) Var(s Symbol) Expr {
	m, ok := a.lits[s]
	if !ok {
		m = a.c.Lit()
		a.lits[s] = m
		a.names[m.Var()] = s
	}
	return Expr{alg: a, m: m}
}

// True returns the constant-true expression.
func (a *Algebra) True() Expr {
	return Expr{alg: a, m: a.c.T}
}

// False returns the constant-false expression.
func (a *Algebra) False() Expr {
	return Expr{alg: a, m: a.c.F}
}

// Not returns the negation of e.
func (a *Algebra) Not(e Expr) Expr {
	a.check(e)
	return Expr{alg: a, m: e.m.Not()}
}

// And returns the conjunction of es. With no operands it returns True.
func (a *Algebra) And(es ...Expr) Expr {
	return Expr{alg: a, m: a.c.Ands(a.litsOf(es)...)}
}

// Or returns the disjunction of es. With no operands it returns False.
func (a *Algebra) Or(es ...Expr) Expr {
	return Expr{alg: a, m: a.c.Ors(a.litsOf(es)...)}
}

// Implies returns the expression (p implies q).
func (a *Algebra) Implies(p, q Expr) Expr {
	a.check(p)
	a.check(q)
	return Expr{alg: a, m: a.c.Implies(p.m, q.m)}
}

// Xor returns the expression (p xor q).
func (a *Algebra) Xor(p, q Expr) Expr {
	a.check(p)
	a.check(q)
	return Expr{alg: a, m: a.c.Xor(p.m, q.m)}
}

// FreeSymbols returns the symbols referenced by e, sorted by name.
func (a *Algebra) FreeSymbols(e Expr) []Symbol {
	a.check(e)
	seen := make(map[z.Var]bool)
	var syms []Symbol
	var walk func(m z.Lit)
	walk = func(m z.Lit) {
		v := m.Var()
		if seen[v] {
			return
		}
		seen[v] = true
		x, y := a.c.Ins(m)
		if x == z.LitNull && y == z.LitNull {
			if s, ok := a.names[v]; ok {
				syms = append(syms, s)
			}
			return
		}
		walk(x)
		walk(y)
	}
	walk(e.m)
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}

// Eval substitutes the given symbol values into e and returns the resulting
// boolean. Every free symbol of e must be assigned.
func (a *Algebra) Eval(e Expr, values map[Symbol]bool) (bool, error) {
	if e.alg != a {
		return false, fmt.Errorf("expression does not belong to this algebra")
	}
	for _, s := range a.FreeSymbols(e) {
		if _, ok := values[s]; !ok {
			return false, fmt.Errorf("no value for symbol %q", s)
		}
	}
	vs := make([]bool, a.c.Len())
	vs[a.c.T.Var()] = true
	for s, v := range values {
		if m, ok := a.lits[s]; ok && v {
			vs[m.Var()] = true
		}
	}
	a.c.Eval(vs)
	res := vs[e.m.Var()]
	if !e.m.IsPos() {
		res = !res
	}
	return res, nil
}

func (a *Algebra) litsOf(es []Expr) []z.Lit {
	ms := make([]z.Lit, len(es))
	for i, e := range es {
		a.check(e)
		ms[i] = e.m
	}
	return ms
}

func (a *Algebra) check(e Expr) {
	if e.alg != a {
		panic("boolalg: expression does not belong to this algebra")
	}
}
