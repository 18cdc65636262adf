// Package walksat implements Knuth's Algorithm W, a stochastic
// local-search procedure for propositional satisfiability of CNF
// formulas. WalkSAT is incomplete: given a satisfiable formula it
// eventually returns a satisfying assignment, but given an
// unsatisfiable one it runs forever unless the caller bounds the
// search with Config.MaxFlips.
package walksat

import "fmt"

// Config holds the parameters that are fixed over the lifetime of a
// single solve.
type Config struct {
	// InitialBias is the probability that a variable is initialized
	// to true. Must be in [0, 1]. Zero value is NOT the default —
	// use DefaultConfig to get 0.1.
	InitialBias float64

	// NonGreedyChoice is the probability that literal selection
	// considers every literal in the current clause rather than only
	// those at the minimum break count, when the clause has at least
	// one literal with a positive cost. Must be in [0, 1].
	NonGreedyChoice float64

	// Seed seeds the solver's private PRNG. Zero seeds from
	// wall-clock time, which makes the run non-reproducible.
	Seed int64

	// MaxFlips bounds the number of flips the solver will attempt
	// before giving up and reporting no model found. Zero (the
	// default) means unbounded: the solver runs until it finds a
	// model, which never happens on an unsatisfiable formula.
	MaxFlips int64

	// RestartEvery, if positive, reinitializes the assignment from a
	// fresh random coin after this many consecutive flips without
	// finding a model. Zero disables restarts.
	RestartEvery int64
}

// DefaultConfig returns the configuration spec.md describes as
// default: InitialBias 0.1, NonGreedyChoice 0.65, random seed,
// unbounded flips, no restarts.
func DefaultConfig() Config {
	return Config{
		InitialBias:     0.1,
		NonGreedyChoice: 0.65,
	}
}

func (c Config) validate() error {
	if c.InitialBias < 0 || c.InitialBias > 1 {
		return fmt.Errorf("walksat: InitialBias %v out of range [0,1]", c.InitialBias)
	}
	if c.NonGreedyChoice < 0 || c.NonGreedyChoice > 1 {
		return fmt.Errorf("walksat: NonGreedyChoice %v out of range [0,1]", c.NonGreedyChoice)
	}
	if c.MaxFlips < 0 {
		return fmt.Errorf("walksat: MaxFlips %d must be non-negative", c.MaxFlips)
	}
	if c.RestartEvery < 0 {
		return fmt.Errorf("walksat: RestartEvery %d must be non-negative", c.RestartEvery)
	}
	return nil
}

// Result is the outcome of a solve.
type Result struct {
	// Assignment is indexed by variable; Assignment[0] is unused.
	// Nil when Satisfiable is false.
	Assignment  []bool
	Satisfiable bool
	Flips       int64
	Restarts    int
}

// Solver drives the WalkSAT search loop over an immutable Formula. A
// Solver is single-use: construct one per Solve call. It owns its
// state and PRNG exclusively and performs no synchronization.
type Solver struct {
	form *Formula
	cfg  Config
	rng  *rng
	st   *state
}

// NewSolver builds a Solver for form with the given configuration.
func NewSolver(form *Formula, cfg Config) (*Solver, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Solver{
		form: form,
		cfg:  cfg,
		rng:  newRNG(cfg.Seed),
	}, nil
}

// Solve runs the WalkSAT loop to completion (W1 through W5, repeating
// W2-W5 until a model is found) and returns the result.
//
// If form has an empty clause, Solve returns immediately with
// Satisfiable false without entering the search loop at all — the one
// case WalkSAT can prove unsatisfiable (spec.md §4.1, §7).
//
// If cfg.MaxFlips is zero, Solve never returns Satisfiable false for a
// non-trivial formula: it loops until it finds a model. Callers that
// need a bounded search must set MaxFlips.
func (s *Solver) Solve() *Result {
	if s.form.HasEmptyClause() {
		return &Result{Satisfiable: false}
	}

	s.st = newState(s.form)
	s.initialize()

	var flips int64
	var restarts int
	var sinceRestart int64

	for {
		if len(s.st.f) == 0 {
			return &Result{
				Assignment:  s.valCopy(),
				Satisfiable: true,
				Flips:       flips,
				Restarts:    restarts,
			}
		}
		if s.cfg.MaxFlips > 0 && flips >= s.cfg.MaxFlips {
			return &Result{Satisfiable: false, Flips: flips, Restarts: restarts}
		}
		if s.cfg.RestartEvery > 0 && sinceRestart >= s.cfg.RestartEvery {
			s.st = newState(s.form)
			s.initialize()
			restarts++
			sinceRestart = 0
			continue
		}

		clause := s.selectClause()
		choice := s.selectLiteral(clause)
		s.flip(choice)

		flips++
		sinceRestart++
	}
}

// valCopy returns a defensive copy of the current assignment.
func (s *Solver) valCopy() []bool {
	out := make([]bool, len(s.st.val))
	copy(out, s.st.val)
	return out
}

// initialize implements W1: randomize val, then build the inverse
// index, numTrue, cost, and the unsatisfied stack in one pass over
// the formula's clauses.
func (s *Solver) initialize() {
	st := s.st
	form := s.form

	for v := int32(1); v <= form.NumVars(); v++ {
		st.val[v] = s.rng.flip(s.cfg.InitialBias)
	}

	for k := int32(0); k < form.NumClauses(); k++ {
		var lastTrueVar int32 = -1
		for _, l := range form.Literals(k) {
			st.addInv(l, k)
			if st.isTrue(l) {
				st.numTrue[k]++
				lastTrueVar = l.Var()
			}
		}
		switch st.numTrue[k] {
		case 0:
			st.registerUnsatisfied(k)
		case 1:
			st.cost[lastTrueVar]++
		}
	}
}

// selectClause implements W3: pick a uniformly random unsatisfied clause.
func (s *Solver) selectClause() int32 {
	q := s.rng.uniform(len(s.st.f))
	return s.st.f[q]
}

// selectLiteral implements W4: reservoir-sample a literal from
// clause K, favoring minimum break count unless the non-greedy
// escape fires.
//
// Distribution (spec.md §4.3):
//   - if some literal in K has cost 0, or "all" is false: choice is
//     uniform among the minimum-cost literals.
//   - otherwise ("all" true and every literal has positive cost):
//     choice is uniform among every literal in K.
func (s *Solver) selectLiteral(k int32) Literal {
	st := s.st
	all := s.rng.flip(s.cfg.NonGreedyChoice)

	var minCost int32 = -1 // sentinel for "+inf": unset
	var choice Literal
	var reservoir int = 1

	for _, l := range s.form.Literals(k) {
		c := st.cost[l.Var()]
		if minCost == -1 || c < minCost {
			minCost = c
			if !all || minCost == 0 {
				reservoir = 1
			}
		}
		if (all && minCost > 0) || c == minCost {
			if s.rng.uniform(reservoir) == 0 {
				choice = l
			}
			reservoir++
		}
	}
	return choice
}

// flip implements W5: toggle the chosen literal's variable and
// incrementally maintain numTrue, cost, and the unsatisfied stack.
func (s *Solver) flip(choice Literal) {
	st := s.st
	v := choice.Var()

	var pos Literal
	if st.isTrue(choice) {
		pos = choice
	} else {
		pos = choice.Negate()
	}
	neg := pos.Negate()

	st.val[v] = !st.val[v]

	// Clauses that lost a true literal.
	for _, k := range st.inv(pos) {
		st.numTrue[k]--
		switch st.numTrue[k] {
		case 0:
			st.registerUnsatisfied(k)
			st.cost[v]--
		case 1:
			uv := firstTrueVar(st, s.form.Literals(k))
			st.cost[uv]++
		}
	}

	// Clauses that gained a true literal.
	for _, k := range st.inv(neg) {
		st.numTrue[k]++
		switch st.numTrue[k] {
		case 1:
			st.registerSatisfied(k)
			st.cost[v]++
		case 2:
			ov := otherTrueVar(st, s.form.Literals(k), neg)
			st.cost[ov]--
		}
	}
}

// firstTrueVar scans lits for the first literal that is currently
// true and returns its variable. Called only when exactly one such
// literal exists (numTrue == 1).
func firstTrueVar(st *state, lits []Literal) int32 {
	for _, l := range lits {
		if st.isTrue(l) {
			return l.Var()
		}
	}
	panic("walksat: numTrue==1 but no true literal found in clause")
}

// otherTrueVar scans lits for the first true literal other than
// skip (which was just made true by the current flip) and returns
// its variable. Called only when exactly two true literals exist.
func otherTrueVar(st *state, lits []Literal, skip Literal) int32 {
	for _, l := range lits {
		if l == skip {
			continue
		}
		if st.isTrue(l) {
			return l.Var()
		}
	}
	panic("walksat: numTrue==2 but no other true literal found in clause")
}

// Solve is a convenience wrapper around NewSolver+Solver.Solve for
// callers that don't need to hold onto the Solver.
func Solve(form *Formula, cfg Config) (*Result, error) {
	s, err := NewSolver(form, cfg)
	if err != nil {
		return nil, err
	}
	return s.Solve(), nil
}
