// Package company contains the business logic for the companies resource.
// It is transport-agnostic: used by the HTTP handlers in httpapi.
package company

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"joblist/api-service/internal/domain"
	"joblist/api-service/internal/events"
	"joblist/api-service/internal/sqlbuild"
)

var columnOverrides = map[string]string{
	"numEmployees": "num_employees",
	"logoUrl":      "logo_url",
}

const selectColumns = `handle, name, description, num_employees, logo_url`

// Service encapsulates all companies business logic over an injected pool.
type Service struct {
	pool *pgxpool.Pool
	pub  *events.Publisher
}

// NewService returns a configured Service.
func NewService(pool *pgxpool.Pool, pub *events.Publisher) *Service {
	return &Service{pool: pool, pub: pub}
}

// Create validates and inserts a new company, returning the stored row.
// A duplicate handle (case-insensitive) is a validation error; a unique
// violation raised by the store maps to the same duplicate.
func (s *Service) Create(ctx context.Context, p CreateParams) (*Company, error) {
	if p.NumEmployees < 0 {
		return nil, domain.Validationf("numEmployees must not be negative, got %d", p.NumEmployees)
	}

	var existing string
	err := s.pool.QueryRow(ctx,
		`SELECT handle FROM companies WHERE lower(handle) = lower($1)`,
		p.Handle,
	).Scan(&existing)
	if err == nil {
		return nil, domain.Validationf("a company with handle %q already exists", p.Handle)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("company duplicate check: %w", err)
	}

	var c Company
	err = s.pool.QueryRow(ctx,
		`INSERT INTO companies (handle, name, description, num_employees, logo_url)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+selectColumns,
		p.Handle, p.Name, p.Description, p.NumEmployees, p.LogoURL,
	).Scan(&c.Handle, &c.Name, &c.Description, &c.NumEmployees, &c.LogoURL)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.Validationf("a company with handle %q already exists", p.Handle)
		}
		return nil, fmt.Errorf("company insert: %w", err)
	}

	s.pub.ResourceChanged(ctx, "company.created", c.Handle)
	return &c, nil
}

// List returns all companies matching the given filters, in store-defined
// order.
func (s *Service) List(ctx context.Context, f Filters) ([]Company, error) {
	where, err := compileFilters(f)
	if err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx,
		`SELECT `+selectColumns+` FROM companies`+where.Clause(),
		where.Args()...,
	)
	if err != nil {
		return nil, fmt.Errorf("company list query: %w", err)
	}
	defer rows.Close()

	companies := make([]Company, 0)
	for rows.Next() {
		var c Company
		if err := rows.Scan(&c.Handle, &c.Name, &c.Description, &c.NumEmployees, &c.LogoURL); err != nil {
			return nil, fmt.Errorf("company list scan: %w", err)
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

// Get returns the company with the given handle (case-insensitive).
func (s *Service) Get(ctx context.Context, handle string) (*Company, error) {
	var c Company
	err := s.pool.QueryRow(ctx,
		`SELECT `+selectColumns+` FROM companies WHERE lower(handle) = lower($1)`,
		handle,
	).Scan(&c.Handle, &c.Name, &c.Description, &c.NumEmployees, &c.LogoURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &domain.NotFoundError{Resource: "company", Key: handle}
	}
	if err != nil {
		return nil, fmt.Errorf("company get: %w", err)
	}
	return &c, nil
}

// Update patches the fields set in p on the company with the given handle.
func (s *Service) Update(ctx context.Context, handle string, p UpdateParams) (*Company, error) {
	fragments, values, err := sqlbuild.SetFragments(p.assignments(), columnOverrides)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(
		`UPDATE companies SET %s WHERE lower(handle) = lower($%d) RETURNING %s`,
		strings.Join(fragments, ", "), len(values)+1, selectColumns,
	)
	values = append(values, handle)

	var c Company
	err = s.pool.QueryRow(ctx, query, values...).
		Scan(&c.Handle, &c.Name, &c.Description, &c.NumEmployees, &c.LogoURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &domain.NotFoundError{Resource: "company", Key: handle}
	}
	if err != nil {
		return nil, fmt.Errorf("company update: %w", err)
	}

	s.pub.ResourceChanged(ctx, "company.updated", c.Handle)
	return &c, nil
}

// Remove deletes the company with the given handle.
func (s *Service) Remove(ctx context.Context, handle string) error {
	var deleted string
	err := s.pool.QueryRow(ctx,
		`DELETE FROM companies WHERE lower(handle) = lower($1) RETURNING handle`,
		handle,
	).Scan(&deleted)
	if errors.Is(err, pgx.ErrNoRows) {
		return &domain.NotFoundError{Resource: "company", Key: handle}
	}
	if err != nil {
		return fmt.Errorf("company delete: %w", err)
	}

	s.pub.ResourceChanged(ctx, "company.removed", deleted)
	return nil
}

// assignments collects the non-nil patch fields in declared order.
func (p UpdateParams) assignments() []sqlbuild.Assignment {
	var out []sqlbuild.Assignment
	if p.Handle != nil {
		out = append(out, sqlbuild.Assignment{Field: "handle", Value: *p.Handle})
	}
	if p.Name != nil {
		out = append(out, sqlbuild.Assignment{Field: "name", Value: *p.Name})
	}
	if p.Description != nil {
		out = append(out, sqlbuild.Assignment{Field: "description", Value: *p.Description})
	}
	if p.NumEmployees != nil {
		out = append(out, sqlbuild.Assignment{Field: "numEmployees", Value: *p.NumEmployees})
	}
	if p.LogoURL != nil {
		out = append(out, sqlbuild.Assignment{Field: "logoUrl", Value: *p.LogoURL})
	}
	return out
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
