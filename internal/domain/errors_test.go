package domain_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"joblist/api-service/internal/domain"
)

func TestValidationf(t *testing.T) {
	err := domain.Validationf("salary must not be negative, got %d", -3)
	assert.Equal(t, "salary must not be negative, got -3", err.Error())
	assert.True(t, domain.IsValidation(err))
	assert.False(t, domain.IsNotFound(err))
}

func TestNotFoundError(t *testing.T) {
	err := &domain.NotFoundError{Resource: "company", Key: "Acme"}
	assert.Equal(t, `no company found with key "Acme"`, err.Error())
	assert.True(t, domain.IsNotFound(err))
	assert.False(t, domain.IsValidation(err))
}

func TestClassifiersSeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("job update: %w", &domain.NotFoundError{Resource: "job", Key: "x"})
	assert.True(t, domain.IsNotFound(wrapped))

	wrapped = fmt.Errorf("compile: %w", &domain.ValidationError{Msg: "bad"})
	assert.True(t, domain.IsValidation(wrapped))
}
