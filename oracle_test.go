package walksat

import (
	"testing"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// TestCrossOracleAgreement checks, for every formula in the randomized
// test corpus that Solve reports satisfiable, that an independently
// implemented complete solver (github.com/go-air/gini) agrees the
// formula is satisfiable. This is stronger than solutionIsValid: a
// solver that miscomputes numTrue/cost could still stumble onto a val
// that happens to satisfy the formula it was fed while its internal
// bookkeeping is wrong. Cross-checking satisfiability itself against
// an unrelated decision procedure guards against that.
func TestCrossOracleAgreement(t *testing.T) {
	for _, tt := range []struct {
		numVars    int32
		numClauses int32
		numSeeds   int
	}{
		{3, 10, 20},
		{5, 12, 20},
		{10, 24, 10},
	} {
		for seed := 0; seed < tt.numSeeds; seed++ {
			form := makeRandomSat(int64(seed)+1, tt.numVars, tt.numClauses)
			cfg := DefaultConfig()
			cfg.Seed = int64(seed) + 1
			cfg.MaxFlips = 100000
			result, err := Solve(form, cfg)
			if err != nil {
				t.Fatal(err)
			}
			if !result.Satisfiable {
				continue
			}
			if !giniSolve(t, form) {
				t.Fatalf("[vars=%d,clauses=%d,seed=%d] Solve reports SAT, gini reports UNSAT",
					tt.numVars, tt.numClauses, seed)
			}
		}
	}

	for _, tt := range loadFixtures(t, false) {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Seed = 1
			cfg.MaxFlips = 200000
			result, err := Solve(tt.form, cfg)
			if err != nil {
				t.Fatal(err)
			}
			if !result.Satisfiable {
				return
			}
			if !giniSolve(t, tt.form) {
				t.Fatalf("Solve reports SAT on %s, gini reports UNSAT", tt.name)
			}
		})
	}
}

// giniSolve decides form's satisfiability with gini, a complete SAT
// solver unrelated to this package's own implementation.
func giniSolve(t *testing.T, form *Formula) bool {
	t.Helper()
	g := gini.New()
	for k := int32(0); k < form.NumClauses(); k++ {
		for _, l := range form.Literals(k) {
			g.Add(z.Dimacs2Lit(int(l)))
		}
		g.Add(0)
	}
	switch g.Solve() {
	case 1:
		return true
	case -1:
		return false
	default:
		t.Fatal("gini.Solve returned 0 (canceled), want a definite result")
		return false
	}
}
