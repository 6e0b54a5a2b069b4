package company

// Company is the JSON shape returned to API clients. Handle is the natural
// key, compared case-insensitively for lookup, update and delete.
type Company struct {
	Handle       string `json:"handle"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	NumEmployees int    `json:"numEmployees"`
	LogoURL      string `json:"logoUrl"`
}

// CreateParams holds the fields required to register a company.
type CreateParams struct {
	Handle       string `json:"handle" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	NumEmployees int    `json:"numEmployees"`
	LogoURL      string `json:"logoUrl"`
}

// UpdateParams holds fields that can be patched; nil fields are left alone.
type UpdateParams struct {
	Handle       *string `json:"handle"`
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	NumEmployees *int    `json:"numEmployees"`
	LogoURL      *string `json:"logoUrl"`
}

// Filters carries the raw query-string filter values for listing companies.
type Filters struct {
	Name         string
	MinEmployees string
	MaxEmployees string
}
