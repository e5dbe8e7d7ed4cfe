// Package filter evaluates expr-language predicates against building records
// on the client side, after the server-side region and type filters have
// been applied.
package filter

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/datapio/buildstock/buildstock"
)

// Filter is a compiled predicate over building records.
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile compiles a filter expression. Building attributes are available as
// lowercase variables (area, height, building_type, household_count and the
// four commodity fields), e.g.:
//
//	area > 100 and heating_commodity == "gas"
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, fmt.Errorf("empty filter expression")
	}

	program, err := expr.Compile(expression,
		expr.AllowUndefinedVariables(), // building attributes
		expr.AsBool(),                  // ensure boolean result
	)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression %q: %w", expression, err)
	}

	return &Filter{expression: expression, program: program}, nil
}

// Expression returns the source expression the filter was compiled from.
func (f *Filter) Expression() string {
	return f.expression
}

// Match evaluates the filter against a single building.
func (f *Filter) Match(b buildstock.Building) (bool, error) {
	env := map[string]any{
		"id":                      b.ID,
		"area":                    b.Area,
		"height":                  b.Height,
		"building_type":           b.Type,
		"household_count":         b.HouseholdCount,
		"heating_commodity":       b.HeatingCommodity,
		"cooling_commodity":       b.CoolingCommodity,
		"water_heating_commodity": b.WaterHeatingCommodity,
		"cooking_commodity":       b.CookingCommodity,
	}

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate filter: %w", err)
	}

	matched, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("filter did not evaluate to a boolean")
	}
	return matched, nil
}

// Apply returns the buildings matching the filter.
func (f *Filter) Apply(buildings []buildstock.Building) ([]buildstock.Building, error) {
	var matched []buildstock.Building
	for _, b := range buildings {
		ok, err := f.Match(b)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, b)
		}
	}
	return matched, nil
}
