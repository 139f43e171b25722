package boolalg

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/inter"
)

const satisfiable = 1

// AddClauses teaches the part of the circuit reachable from e to an external
// solver in conjunctive normal form.
func (a *Algebra) AddClauses(dst inter.Adder, e Expr) {
	a.check(e)
	a.c.ToCnfFrom(dst, e.m)
}

// Satisfiable reports whether some assignment of e's free symbols makes e
// true.
func (a *Algebra) Satisfiable(e Expr) bool {
	a.check(e)
	if e.m == a.c.T {
		return true
	}
	if e.m == a.c.F {
		return false
	}
	g := gini.New()
	a.AddClauses(g, e)
	g.Assume(e.m)
	return g.Solve() == satisfiable
}
