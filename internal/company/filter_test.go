package company

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"joblist/api-service/internal/domain"
)

func TestCompileFilters_NoInput(t *testing.T) {
	b, err := compileFilters(Filters{})
	require.NoError(t, err)
	assert.Empty(t, b.Clause())
	assert.Empty(t, b.Args())
}

func TestCompileFilters_NameSubstring(t *testing.T) {
	b, err := compileFilters(Filters{Name: "net"})
	require.NoError(t, err)
	assert.Equal(t, " WHERE name ILIKE $1", b.Clause())
	assert.Equal(t, []any{"%net%"}, b.Args())
}

func TestCompileFilters_EmployeeRange(t *testing.T) {
	b, err := compileFilters(Filters{MinEmployees: "10", MaxEmployees: "500"})
	require.NoError(t, err)
	assert.Equal(t, " WHERE num_employees >= $1 AND num_employees <= $2", b.Clause())
	assert.Equal(t, []any{10, 500}, b.Args())
}

func TestCompileFilters_SingleBound(t *testing.T) {
	b, err := compileFilters(Filters{MinEmployees: "3"})
	require.NoError(t, err)
	assert.Equal(t, " WHERE num_employees >= $1", b.Clause())

	b, err = compileFilters(Filters{MaxEmployees: "3"})
	require.NoError(t, err)
	assert.Equal(t, " WHERE num_employees <= $1", b.Clause())
}

func TestCompileFilters_InvertedRange(t *testing.T) {
	_, err := compileFilters(Filters{MinEmployees: "3", MaxEmployees: "2"})
	require.Error(t, err)

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Msg, "3")
	assert.Contains(t, ve.Msg, "2")
}

func TestCompileFilters_NonIntegerBound(t *testing.T) {
	for _, f := range []Filters{
		{MinEmployees: "few"},
		{MaxEmployees: "many"},
	} {
		_, err := compileFilters(f)
		require.Error(t, err)

		var ve *domain.ValidationError
		assert.ErrorAs(t, err, &ve)
	}
}

func TestCreate_RejectsNegativeNumEmployees(t *testing.T) {
	s := NewService(nil, nil)
	_, err := s.Create(context.Background(), CreateParams{
		Handle:       "acme",
		Name:         "Acme",
		NumEmployees: -5,
	})
	require.Error(t, err)

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Msg, "-5")
}

func TestUpdate_EmptyPatchIsValidationError(t *testing.T) {
	s := NewService(nil, nil)
	_, err := s.Update(context.Background(), "acme", UpdateParams{})
	require.Error(t, err)

	var ve *domain.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestUpdateParams_ColumnOverrides(t *testing.T) {
	n := 12
	logo := "https://example.com/logo.png"
	p := UpdateParams{NumEmployees: &n, LogoURL: &logo}

	assigns := p.assignments()
	require.Len(t, assigns, 2)
	assert.Equal(t, "numEmployees", assigns[0].Field)
	assert.Equal(t, "logoUrl", assigns[1].Field)
}
