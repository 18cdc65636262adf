package walksat

import "github.com/kr/pretty"

// Dump renders a solve result with kr/pretty for offline debugging;
// it is not on any hot path. The CLI writes it to stderr in verbose
// mode.
func Dump(form *Formula, result *Result) string {
	return pretty.Sprint(struct {
		NumVars    int32
		NumClauses int32
		Result     *Result
	}{form.NumVars(), form.NumClauses(), result})
}
