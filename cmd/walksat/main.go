// Command walksat reads one or more DIMACS CNF files and searches for
// a satisfying assignment using Algorithm W (WalkSAT).
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"

	"github.com/go-walksat/walksat"
)

// runResult is one input file's outcome, gathered so batch mode can
// render a single summary table across every file instead of one per
// run.
type runResult struct {
	name     string
	sat      bool
	unknown  bool
	flips    int64
	restarts int
}

func main() {
	cfg := walksat.DefaultConfig()
	verbose := flag.Bool("v", false, "verbose mode: print a run summary table and a debug dump to stderr")
	seed := flag.Int64("seed", 0, "PRNG seed (0 picks one from wall-clock time)")
	bias := flag.Float64("bias", cfg.InitialBias, "probability a variable starts true")
	noise := flag.Float64("noise", cfg.NonGreedyChoice, "probability of a non-greedy (escape) literal choice")
	maxFlips := flag.Int64("maxflips", 0, "stop and report UNKNOWN after this many flips (0: unbounded)")
	restartEvery := flag.Int64("restart", 0, "reinitialize the assignment every N flips without a model (0: disabled)")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `walksat: a WalkSAT-family SAT solver.

Usage:

  walksat [flags] [input.cnf ...]

walksat reads one or more problem specifications in the DIMACS CNF
format, one per argument, solving each independently. For every file
it writes the output in the conventional way to stdout: either the
first line is UNSAT (or UNKNOWN if the flip budget was exhausted), or
else the first line is SAT followed by one or more 'v'-prefixed
solution lines.

If no input file is given, walksat reads a single problem from
standard input. If more than one file is given (batch mode), -v prints
a single summary table covering every run instead of one table per
run.

Flags:
`)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg.Seed = *seed
	cfg.InitialBias = *bias
	cfg.NonGreedyChoice = *noise
	cfg.MaxFlips = *maxFlips
	cfg.RestartEvery = *restartEvery

	runID := uuid.New().String()
	logger := log.WithField("run", runID)

	names := flag.Args()
	if len(names) == 0 {
		names = []string{""} // "" means stdin
	}

	var results []runResult
	for _, name := range names {
		results = append(results, solveOne(logger, cfg, *verbose, name))
	}

	if *verbose {
		printSummary(os.Stderr, runID, results)
	}
}

// solveOne reads one DIMACS input (stdin if name is empty), solves it,
// writes its SAT/UNSAT/UNKNOWN verdict and any solution to stdout, and
// returns a summary for the verbose report. In verbose mode it also
// writes a kr/pretty debug dump of the solve result to stderr.
func solveOne(logger *log.Entry, cfg walksat.Config, verbose bool, name string) runResult {
	var r io.Reader = os.Stdin
	label := "<stdin>"
	if name != "" {
		f, err := os.Open(name)
		if err != nil {
			logger.Fatal(err)
		}
		defer f.Close()
		r = f
		label = name
	}

	form, err := walksat.ParseDIMACS(r)
	if err != nil {
		logger.Fatalf("%s: error reading input as DIMACS CNF: %s", label, err)
	}

	result, err := walksat.Solve(form, cfg)
	if err != nil {
		logger.Fatalf("invalid configuration: %s", err)
	}

	res := runResult{name: label, sat: result.Satisfiable, flips: result.Flips, restarts: result.Restarts}
	if !result.Satisfiable && cfg.MaxFlips > 0 && !form.HasEmptyClause() {
		res.unknown = true
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "%s: solve result:\n%s\n", label, walksat.Dump(form, result))
	}

	switch {
	case res.unknown:
		fmt.Println("UNKNOWN")
	case !result.Satisfiable:
		fmt.Println("UNSAT")
	default:
		fmt.Println("SAT")
		if err := walksat.WriteSolution(os.Stdout, result.Assignment); err != nil {
			logger.Fatal(err)
		}
	}
	return res
}

// printSummary renders one row per run, combining every input file's
// outcome into a single table in batch mode rather than one table per
// run.
func printSummary(w io.Writer, runID string, results []runResult) {
	fmt.Fprintf(w, "run %s\n", runID)
	t := tablewriter.NewWriter(w)
	t.SetHeader([]string{"input", "result", "flips", "restarts"})
	for _, r := range results {
		verdict := "UNSAT"
		switch {
		case r.unknown:
			verdict = "UNKNOWN"
		case r.sat:
			verdict = "SAT"
		}
		t.Append([]string{r.name, verdict, fmt.Sprint(r.flips), fmt.Sprint(r.restarts)})
	}
	t.Render()
}
