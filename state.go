package walksat

// wNil is the reverse-index sentinel meaning "this clause is
// satisfied and has no slot in the unsatisfied stack".
const wNil int32 = -1

// state is the mutable solver state derived from the current
// assignment: truth values, per-clause true-literal counts, the
// unsatisfied-clause stack with its O(1) reverse index, the
// per-variable break count ("cost"), and the inverse-clause index.
//
// A state is exclusively owned by one Solver for the duration of a
// solve and is never shared.
type state struct {
	val     []bool  // val[v], v in [1, numVars]
	numTrue []int32 // numTrue[k], k in [0, numClauses)
	cost    []int32 // cost[v], v in [1, numVars]

	f []int32 // dense stack of unsatisfied clause indices
	w []int32 // w[k] = position of k in f, or wNil

	// invPos[v]/invNeg[v] list the clauses (with multiplicity) in
	// which variable v appears positively/negatively, populated once
	// during initialization and never mutated afterward.
	invPos [][]int32
	invNeg [][]int32
}

func newState(form *Formula) *state {
	n := form.NumVars()
	c := form.NumClauses()
	s := &state{
		val:     make([]bool, n+1),
		numTrue: make([]int32, c),
		cost:    make([]int32, n+1),
		f:       make([]int32, 0, c),
		w:       make([]int32, c),
		invPos:  make([][]int32, n+1),
		invNeg:  make([][]int32, n+1),
	}
	for k := range s.w {
		s.w[k] = wNil
	}
	return s
}

// isTrue reports whether literal l currently evaluates to true under val.
func (s *state) isTrue(l Literal) bool {
	return l.Positive() == s.val[l.Var()]
}

// addInv records that clause k contains literal l. Called only
// during W1; never mutates f/w/numTrue/cost.
func (s *state) addInv(l Literal, k int32) {
	v := l.Var()
	if l.Positive() {
		s.invPos[v] = append(s.invPos[v], k)
	} else {
		s.invNeg[v] = append(s.invNeg[v], k)
	}
}

// inv returns the clauses (with multiplicity) containing literal l.
func (s *state) inv(l Literal) []int32 {
	if l.Positive() {
		return s.invPos[l.Var()]
	}
	return s.invNeg[l.Var()]
}

// registerUnsatisfied marks clause k as unsatisfied, appending it to
// the dense stack f. Precondition: w[k] == wNil. Idempotent.
func (s *state) registerUnsatisfied(k int32) {
	if s.w[k] != wNil {
		return
	}
	s.w[k] = int32(len(s.f))
	s.f = append(s.f, k)
}

// registerSatisfied marks clause k as satisfied, removing it from the
// dense stack f in O(1) by swapping it with the last element and
// fixing up the reverse index of whichever clause gets swapped into
// the vacated slot. Precondition: w[k] != wNil. Idempotent.
//
// The reverse index must be updated for the clause swapped INTO k's
// old slot, not for k itself — k's own w entry is about to be
// overwritten with wNil regardless.
func (s *state) registerSatisfied(k int32) {
	pos := s.w[k]
	if pos == wNil {
		return
	}
	last := int32(len(s.f)) - 1
	moved := s.f[last]
	s.f[pos] = moved
	s.w[moved] = pos
	s.f = s.f[:last]
	s.w[k] = wNil
}
