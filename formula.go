package walksat

import "fmt"

// A Literal is a signed variable reference: positive for the variable
// itself, negative for its negation. The magnitude is the variable
// number, in [1, NumVars].
type Literal int32

// Var returns the variable referenced by l, always positive.
func (l Literal) Var() int32 {
	if l < 0 {
		return int32(-l)
	}
	return int32(l)
}

// Negate returns the complementary literal.
func (l Literal) Negate() Literal {
	return -l
}

// Positive reports whether l is a positive occurrence of its variable.
func (l Literal) Positive() bool {
	return l > 0
}

// Formula is an immutable CNF formula: a flat array of literals with a
// clause-start index, built once by NewFormula or ParseDIMACS and
// shared read-only for the lifetime of a solve.
type Formula struct {
	lits   []Literal
	starts []int32 // len == NumClauses; starts[k] is the offset of clause k
	vars   int32
	nclz   int32
}

// NewFormula builds a Formula from a sequence of clauses, each a slice
// of literals. It validates that every literal's variable is within
// [1, numVars].
func NewFormula(numVars int32, clauses [][]Literal) (*Formula, error) {
	f := &Formula{
		starts: make([]int32, len(clauses)),
		vars:   numVars,
		nclz:   int32(len(clauses)),
	}
	for k, clause := range clauses {
		f.starts[k] = int32(len(f.lits))
		for _, l := range clause {
			v := l.Var()
			if v < 1 || v > numVars {
				return nil, fmt.Errorf("walksat: literal %d out of range [1, %d]", l, numVars)
			}
			f.lits = append(f.lits, l)
		}
	}
	return f, nil
}

// NumVars returns the number of variables V.
func (f *Formula) NumVars() int32 { return f.vars }

// NumClauses returns the number of clauses C.
func (f *Formula) NumClauses() int32 { return f.nclz }

// Literals returns the literals of clause k, in order, without
// allocating. The returned slice aliases the formula's storage and
// must not be modified.
func (f *Formula) Literals(k int32) []Literal {
	start := f.starts[k]
	var end int32
	if int(k)+1 < len(f.starts) {
		end = f.starts[k+1]
	} else {
		end = int32(len(f.lits))
	}
	return f.lits[start:end]
}

// HasEmptyClause reports whether any clause has zero literals. Per the
// DIMACS convention, a formula with an empty clause is trivially
// unsatisfiable; the solver entry point checks this before starting
// the search loop rather than during parsing.
func (f *Formula) HasEmptyClause() bool {
	for k := int32(0); k < f.nclz; k++ {
		if len(f.Literals(k)) == 0 {
			return true
		}
	}
	return false
}
