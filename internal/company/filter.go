package company

import (
	"strconv"
	"strings"

	"joblist/api-service/internal/domain"
	"joblist/api-service/internal/sqlbuild"
)

// compileFilters turns the raw filter values into an AND-joined predicate
// builder. An inverted employee range is rejected with both bounds in the
// message before any predicate is built.
func compileFilters(f Filters) (*sqlbuild.WhereBuilder, error) {
	lo, loSet, err := parseBound("minEmployees", f.MinEmployees)
	if err != nil {
		return nil, err
	}
	hi, hiSet, err := parseBound("maxEmployees", f.MaxEmployees)
	if err != nil {
		return nil, err
	}
	if loSet && hiSet && lo > hi {
		return nil, domain.Validationf(
			"minEmployees %d cannot be greater than maxEmployees %d", lo, hi)
	}

	b := &sqlbuild.WhereBuilder{}
	if f.Name != "" {
		b.ContainsFold("name", f.Name)
	}
	if loSet {
		b.Compare("num_employees", ">=", lo)
	}
	if hiSet {
		b.Compare("num_employees", "<=", hi)
	}
	return b, nil
}

func parseBound(name, raw string) (value int, set bool, err error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false, nil
	}
	v, convErr := strconv.Atoi(s)
	if convErr != nil {
		return 0, false, domain.Validationf("%s must be an integer, got %q", name, raw)
	}
	return v, true, nil
}
