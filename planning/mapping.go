package planning

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Rule is a configurable cell value mapping, e.g. replacing blank cells with a
// placeholder. When evaluates to a bool, Value to the replacement cell value.
// Both are expr-lang expressions over the environment {cell, row, col}.
type Rule struct {
	When  string `json:"when"`
	Value string `json:"value"`
}

// Mapper applies an ordered list of mapping rules to a grid. The first rule
// whose condition matches a cell wins.
type Mapper struct {
	rules []rule
}

type rule struct {
	when  *vm.Program
	value *vm.Program
}

// NewMapper compiles the mapping rules. A rule that does not compile is a
// configuration error.
func NewMapper(rules []Rule) (*Mapper, error) {
	m := Mapper{}

	for i, r := range rules {
		when, err := expr.Compile(r.When, expr.AllowUndefinedVariables(), expr.AsBool())
		if err != nil {
			return nil, Configurationf("mapping rule %d: invalid condition %q (%v)", i+1, r.When, err)
		}

		value, err := expr.Compile(r.Value, expr.AllowUndefinedVariables())
		if err != nil {
			return nil, Configurationf("mapping rule %d: invalid value %q (%v)", i+1, r.Value, err)
		}

		m.rules = append(m.rules, rule{when: when, value: value})
	}

	return &m, nil
}

// Apply returns a copy of the grid with the mapping rules applied to every
// cell. The input grid is left unmodified.
func (m *Mapper) Apply(grid Grid) (Grid, error) {
	if len(m.rules) == 0 {
		return grid, nil
	}

	mapped := make(Grid, len(grid))

	for i, row := range grid {
		mapped[i] = make([]string, len(row))

		for j, cell := range row {
			v, err := m.apply(cell, i, j)
			if err != nil {
				return nil, err
			}

			mapped[i][j] = v
		}
	}

	return mapped, nil
}

func (m *Mapper) apply(cell string, row, col int) (string, error) {
	env := map[string]any{
		"cell": cell,
		"row":  row,
		"col":  col,
	}

	for _, r := range m.rules {
		matched, err := expr.Run(r.when, env)
		if err != nil {
			return "", fmt.Errorf("error evaluating mapping condition (%v)", err)
		}

		if matched == true {
			v, err := expr.Run(r.value, env)
			if err != nil {
				return "", fmt.Errorf("error evaluating mapping value (%v)", err)
			}

			return fmt.Sprintf("%v", v), nil
		}
	}

	return cell, nil
}
