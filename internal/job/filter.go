package job

import (
	"strconv"
	"strings"

	"joblist/api-service/internal/domain"
	"joblist/api-service/internal/sqlbuild"
)

// maxSalaryFilter is the exclusive ceiling for the minSalary filter. Asking
// for a lower bound at or above it can never match a listed job.
const maxSalaryFilter = 1_000_000

// compileFilters turns the raw filter values into an AND-joined predicate
// builder. Out-of-range input is rejected before any predicate is built.
//
// hasEquity is tri-state: "true" keeps only jobs with equity, "false" keeps
// only jobs without, and anything else (including absent) compiles to the
// permissive `equity >= 0` so the equity clause is always present and
// deterministic.
func compileFilters(f Filters) (*sqlbuild.WhereBuilder, error) {
	minSalary := 0
	if s := strings.TrimSpace(f.MinSalary); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, domain.Validationf("minSalary must be an integer, got %q", f.MinSalary)
		}
		if v >= maxSalaryFilter {
			return nil, domain.Validationf("minSalary %d is at or above the %d ceiling", v, maxSalaryFilter)
		}
		minSalary = v
	}

	b := &sqlbuild.WhereBuilder{}
	if f.Title != "" {
		b.ContainsFold("title", f.Title)
	}
	if minSalary != 0 {
		b.Compare("salary", ">=", minSalary)
	}

	switch strings.ToLower(f.HasEquity) {
	case "true":
		b.Compare("equity", ">", 0)
	case "false":
		b.Compare("equity", "=", 0)
	default:
		b.Compare("equity", ">=", 0)
	}

	return b, nil
}
