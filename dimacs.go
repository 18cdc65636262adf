package walksat

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseDIMACS parses text in the DIMACS CNF format into a Formula.
//
// For convenience, a few non-standard variations are accepted:
//
//   - Comments (lines beginning with 'c') may appear anywhere, not just in
//     the preamble.
//   - The problem line may be missing; the variable count is then taken to
//     be the largest variable referenced by any clause.
//
// An empty clause (two consecutive zeros, or a trailing lone zero) is
// accepted rather than rejected: it simply makes the resulting
// Formula trivially unsatisfiable, which Solve detects up front.
func ParseDIMACS(r io.Reader) (*Formula, error) {
	var problem struct {
		seen    bool
		vars    int
		clauses int
	}
	var clauses [][]Literal
	var clause []Literal
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := s.Text()
		if len(line) == 0 || line[0] == 'c' {
			continue
		}
		// Some CNF formats attach extra data in a trailer after a line
		// containing a single %.
		if line == "%" {
			break
		}
		if line[0] == 'p' {
			if len(clauses) > 0 {
				return nil, errors.New("problem line appears after clauses")
			}
			if problem.seen {
				return nil, errors.New("multiple problem lines")
			}
			fields := strings.Fields(line)
			if len(fields) != 4 {
				return nil, fmt.Errorf("malformed problem line %q", line)
			}
			if fields[0] != "p" {
				return nil, fmt.Errorf("problem line starts with unexpected signifier %q", fields[0])
			}
			if fields[1] != "cnf" {
				return nil, fmt.Errorf("only cnf supported; got %q", fields[1])
			}
			var err error
			problem.vars, err = strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("malformed #vars in problem line: %s", err)
			}
			problem.clauses, err = strconv.Atoi(fields[3])
			if err != nil {
				return nil, fmt.Errorf("malformed #clauses in problem line: %s", err)
			}
			if problem.vars < 0 {
				return nil, fmt.Errorf("invalid #vars %d", problem.vars)
			}
			if problem.clauses < 0 {
				return nil, fmt.Errorf("invalid #clauses %d", problem.clauses)
			}
			problem.seen = true
			continue
		}
		for _, field := range strings.Fields(line) {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("invalid literal: %s", err)
			}
			if n == 0 {
				clauses = append(clauses, clause)
				clause = nil
			} else {
				clause = append(clause, Literal(n))
			}
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if len(clause) > 0 {
		clauses = append(clauses, clause)
	}

	maxVar := 0
	for _, clause := range clauses {
		for _, l := range clause {
			if v := int(l.Var()); v > maxVar {
				maxVar = v
			}
		}
	}

	if problem.seen {
		if maxVar > problem.vars {
			return nil, fmt.Errorf("formula contains var %d, but problem line asserts %d vars (only vars in [1, %d] expected)",
				maxVar, problem.vars, problem.vars)
		}
		if len(clauses) != problem.clauses {
			return nil, fmt.Errorf("problem line specifies %d clauses, but there are %d", problem.clauses, len(clauses))
		}
	} else {
		problem.vars = maxVar
	}

	return NewFormula(int32(problem.vars), clauses)
}

// WriteDIMACS writes f in DIMACS CNF format: a problem line followed
// by each clause as whitespace-separated literals terminated by a
// zero, one clause per line.
func WriteDIMACS(w io.Writer, f *Formula) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", f.NumVars(), f.NumClauses()); err != nil {
		return err
	}
	for k := int32(0); k < f.NumClauses(); k++ {
		lits := f.Literals(k)
		fields := make([]string, 0, len(lits)+1)
		for _, l := range lits {
			fields = append(fields, strconv.Itoa(int(l)))
		}
		fields = append(fields, "0")
		if _, err := fmt.Fprintln(bw, strings.Join(fields, " ")); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteSolution writes a model in the DIMACS solver-output convention:
// one or more lines beginning with 'v', each literal signed by the
// assignment (variable v is written as v if assignment[v] is true, -v
// otherwise), at most 10 literals per line, terminated by a trailing
// "v 0" line.
func WriteSolution(w io.Writer, assignment []bool) error {
	bw := bufio.NewWriter(w)
	const perLine = 10
	count := 0
	for v := 1; v < len(assignment); v++ {
		if count == 0 {
			if _, err := fmt.Fprint(bw, "v"); err != nil {
				return err
			}
		}
		n := v
		if !assignment[v] {
			n = -v
		}
		if _, err := fmt.Fprintf(bw, " %d", n); err != nil {
			return err
		}
		count++
		if count == perLine {
			if _, err := fmt.Fprintln(bw); err != nil {
				return err
			}
			count = 0
		}
	}
	if count > 0 {
		if _, err := fmt.Fprintln(bw); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(bw, "v 0"); err != nil {
		return err
	}
	return bw.Flush()
}
