package job

// Job is the JSON shape returned to API clients. Title is the natural key,
// compared case-insensitively for lookup, update and delete. Equity is
// stored as NUMERIC and normalized to float64 on the way out.
type Job struct {
	Title         string  `json:"title"`
	Salary        int     `json:"salary"`
	Equity        float64 `json:"equity"`
	CompanyHandle string  `json:"companyHandle"`
}

// CreateParams holds the fields required to post a new job. Binding tags
// stand in for request-schema validation at the route layer.
type CreateParams struct {
	Title         string  `json:"title" binding:"required"`
	Salary        int     `json:"salary"`
	Equity        float64 `json:"equity"`
	CompanyHandle string  `json:"companyHandle" binding:"required"`
}

// UpdateParams holds fields that can be patched. All fields are pointers so
// callers only set what needs changing; the repository builds the SET clause
// from the non-nil fields in declared order.
type UpdateParams struct {
	Title         *string  `json:"title"`
	Salary        *int     `json:"salary"`
	Equity        *float64 `json:"equity"`
	CompanyHandle *string  `json:"companyHandle"`
}

// Filters carries the raw query-string filter values for listing jobs.
// Numeric filters arrive as strings and are parsed by compileFilters.
type Filters struct {
	Title     string
	MinSalary string
	HasEquity string
}
