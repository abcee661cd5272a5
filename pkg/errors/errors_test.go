// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code matching

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/vitex/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_cloned",
			code:    errors.ErrNotCloned,
			message: "template `normal` is not cloned",
			wantStr: "[TEMPLATE_NOT_CLONED] template `normal` is not cloned",
		},
		{
			name:    "no_templates",
			code:    errors.ErrNoTemplates,
			message: "there are no templates",
			wantStr: "[NO_TEMPLATES] there are no templates",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrMissingPlaceholder, "missing `%s` in %s", "VITEX_TITLE_PLACEHOLDER", "main.tex")
	assert.Equal(t, "missing `VITEX_TITLE_PLACEHOLDER` in main.tex", err.Message)
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("permission denied")

	err := errors.Wrap(cause, errors.ErrCopyFailed, "could not copy")
	require.NotNil(t, err)

	assert.Equal(t, "[COPY_FAILED] could not copy: permission denied", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Nil(t, errors.Wrap(nil, errors.ErrCopyFailed, "nothing"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrCopyFailed, "nothing %d", 1))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrNotCloned, "not cloned").
		WithDetail("id", "normal").
		WithDetail("path", "/clone/normal")

	details := errors.GetErrorDetails(err)
	assert.Equal(t, "normal", details["id"])
	assert.Equal(t, "/clone/normal", details["path"])

	var bare errors.VitexError
	bare.WithDetail("id", "x")
	assert.Equal(t, "x", bare.Details["id"])
}

func TestCodeMatching(t *testing.T) {
	err := fmt.Errorf("validate: %w", errors.New(errors.ErrInvalidPathPrefix, "prefix leads nowhere"))

	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidPathPrefix))
	assert.False(t, errors.IsErrorCode(err, errors.ErrNotCloned))
	assert.Equal(t, errors.ErrInvalidPathPrefix, errors.GetErrorCode(err))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))

	// Is matches on code alone
	assert.ErrorIs(t, err, errors.New(errors.ErrInvalidPathPrefix, "other message"))
	assert.NotErrorIs(t, err, errors.New(errors.ErrMissingMarkerFile, "prefix leads nowhere"))
}

func TestChainedDetails(t *testing.T) {
	inner := errors.New(errors.ErrMissingMarkerFile, "no marker").
		WithDetail("id", "inner").
		WithDetail("path", "/clone/normal")
	outer := errors.Wrap(inner, errors.ErrConfigValid, "validation failed").
		WithDetail("id", "normal")

	details := errors.GetErrorDetails(fmt.Errorf("sync: %w", outer))
	assert.Equal(t, "normal", details["id"])
	assert.Equal(t, "/clone/normal", details["path"])

	assert.True(t, errors.IsErrorCode(outer, errors.ErrConfigValid))
	assert.False(t, errors.IsErrorCode(outer, errors.ErrMissingMarkerFile))
	assert.True(t, errors.HasErrorCode(outer, errors.ErrMissingMarkerFile))
	assert.False(t, errors.HasErrorCode(outer, errors.ErrNotCloned))
}
