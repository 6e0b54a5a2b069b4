// Package job contains the business logic for the jobs resource. It is
// transport-agnostic: used by the HTTP handlers in httpapi.
package job

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

// columnOverrides maps domain field names to physical columns where they
// differ. The only per-resource customization the SET-clause builder needs.
var columnOverrides = map[string]string{
	"companyHandle": "company_handle",
}

const selectColumns = `title, salary, equity, company_handle`

// Service encapsulates all jobs business logic over an injected pool.
type Service struct {
	pool *pgxpool.Pool
	pub  *events.Publisher
}

// NewService returns a configured Service.
func NewService(pool *pgxpool.Pool, pub *events.Publisher) *Service {
	return &Service{pool: pool, pub: pub}
}

// Create validates and inserts a new job, returning the stored row.
// Duplicate titles (case-insensitive) are a validation error; a unique
// violation raised by the store is treated as the same duplicate, which
// closes the check-then-insert race under concurrent creates.
func (s *Service) Create(ctx context.Context, p CreateParams) (*Job, error) {
	if p.Salary < 0 {
		return nil, domain.Validationf("salary must not be negative, got %d", p.Salary)
	}
	if p.Equity > 1.0 {
		return nil, domain.Validationf("equity must not exceed 1.0, got %v", p.Equity)
	}

	var existing string
	err := s.pool.QueryRow(ctx,
		`SELECT title FROM jobs WHERE lower(title) = lower($1)`,
		p.Title,
	).Scan(&existing)
	if err == nil {
		return nil, domain.Validationf("a job with title %q already exists", p.Title)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("job duplicate check: %w", err)
	}

	var j Job
	err = s.pool.QueryRow(ctx,
		`INSERT INTO jobs (title, salary, equity, company_handle)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+selectColumns,
		p.Title, p.Salary, p.Equity, p.CompanyHandle,
	).Scan(&j.Title, &j.Salary, &j.Equity, &j.CompanyHandle)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.Validationf("a job with title %q already exists", p.Title)
		}
		return nil, fmt.Errorf("job insert: %w", err)
	}

	s.pub.ResourceChanged(ctx, "job.created", j.Title)
	return &j, nil
}

// List returns all jobs matching the given filters, in store-defined order.
func (s *Service) List(ctx context.Context, f Filters) ([]Job, error) {
	where, err := compileFilters(f)
	if err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx,
		`SELECT `+selectColumns+` FROM jobs`+where.Clause(),
		where.Args()...,
	)
	if err != nil {
		return nil, fmt.Errorf("job list query: %w", err)
	}
	defer rows.Close()

	jobs := make([]Job, 0)
	for rows.Next() {
		var j Job
		if err := rows.Scan(&j.Title, &j.Salary, &j.Equity, &j.CompanyHandle); err != nil {
			return nil, fmt.Errorf("job list scan: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// Get returns the job with the given title (case-insensitive).
func (s *Service) Get(ctx context.Context, title string) (*Job, error) {
	var j Job
	err := s.pool.QueryRow(ctx,
		`SELECT `+selectColumns+` FROM jobs WHERE lower(title) = lower($1)`,
		title,
	).Scan(&j.Title, &j.Salary, &j.Equity, &j.CompanyHandle)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &domain.NotFoundError{Resource: "job", Key: title}
	}
	if err != nil {
		return nil, fmt.Errorf("job get: %w", err)
	}
	return &j, nil
}

// Update patches the fields set in p on the job with the given title.
// An empty patch is a validation error; an unknown title is not found.
func (s *Service) Update(ctx context.Context, title string, p UpdateParams) (*Job, error) {
	fragments, values, err := sqlbuild.SetFragments(p.assignments(), columnOverrides)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(
		`UPDATE jobs SET %s WHERE lower(title) = lower($%d) RETURNING %s`,
		strings.Join(fragments, ", "), len(values)+1, selectColumns,
	)
	values = append(values, title)

	var j Job
	err = s.pool.QueryRow(ctx, query, values...).
		Scan(&j.Title, &j.Salary, &j.Equity, &j.CompanyHandle)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &domain.NotFoundError{Resource: "job", Key: title}
	}
	if err != nil {
		return nil, fmt.Errorf("job update: %w", err)
	}

	s.pub.ResourceChanged(ctx, "job.updated", j.Title)
	return &j, nil
}

// Remove deletes the job with the given title.
func (s *Service) Remove(ctx context.Context, title string) error {
	var deleted string
	err := s.pool.QueryRow(ctx,
		`DELETE FROM jobs WHERE lower(title) = lower($1) RETURNING title`,
		title,
	).Scan(&deleted)
	if errors.Is(err, pgx.ErrNoRows) {
		return &domain.NotFoundError{Resource: "job", Key: title}
	}
	if err != nil {
		return fmt.Errorf("job delete: %w", err)
	}

	s.pub.ResourceChanged(ctx, "job.removed", deleted)
	return nil
}

// assignments collects the non-nil patch fields in declared order.
func (p UpdateParams) assignments() []sqlbuild.Assignment {
	var out []sqlbuild.Assignment
	if p.Title != nil {
		out = append(out, sqlbuild.Assignment{Field: "title", Value: *p.Title})
	}
	if p.Salary != nil {
		out = append(out, sqlbuild.Assignment{Field: "salary", Value: *p.Salary})
	}
	if p.Equity != nil {
		out = append(out, sqlbuild.Assignment{Field: "equity", Value: *p.Equity})
	}
	if p.CompanyHandle != nil {
		out = append(out, sqlbuild.Assignment{Field: "companyHandle", Value: *p.CompanyHandle})
	}
	return out
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
