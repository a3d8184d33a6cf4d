package filter

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Expression compiles a boolean expr-lang expression evaluated with `text`
// and `query` in scope, e.g. `lower(text) startsWith lower(query)`. The
// program is compiled once; evaluation errors count as non-matches.
func Expression(source string) (Predicate, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, fmt.Errorf("filter: expression must not be empty")
	}
	program, err := expr.Compile(source, expr.Env(exprEnv("", "")), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("filter: compile expression: %w", err)
	}
	return func(text, query string) bool {
		if query == "" {
			return true
		}
		return runBool(program, exprEnv(text, query))
	}, nil
}

func exprEnv(text, query string) map[string]any {
	return map[string]any{
		"text":  text,
		"query": query,
	}
}

func runBool(program *vm.Program, env map[string]any) bool {
	out, err := expr.Run(program, env)
	if err != nil {
		return false
	}
	matched, _ := out.(bool)
	return matched
}
