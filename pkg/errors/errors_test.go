package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCategoryString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		category ErrorCategory
		want     string
	}{
		{ErrorFileAccess, "file_access"},
		{ErrorParse, "parse"},
		{ErrorLookup, "lookup"},
		{ErrorExec, "exec"},
		{ErrorCompression, "compression"},
		{ErrorMismatch, "mismatch"},
		{ErrorCategory(0), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.category.String())
	}
}

func TestChecksumErrorWrapping(t *testing.T) {
	t.Parallel()
	err := fmt.Errorf("load: %w", NewFileAccessError("read", "input/a.bin", fs.ErrNotExist))

	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.True(t, IsCategory(err, ErrorFileAccess))
	assert.False(t, IsCategory(err, ErrorParse))

	ce := AsChecksumError(err)
	require.NotNil(t, ce)
	assert.Equal(t, "input/a.bin", ce.Path)
	assert.Contains(t, ce.Error(), "[file_access] read input/a.bin")
}

func TestParseErrorLine(t *testing.T) {
	t.Parallel()
	err := NewParseError("expected_out.txt", 3, errors.New("missing ':'"))
	assert.Equal(t, "[parse] parse line 3 expected_out.txt: missing ':'", err.Error())
}

func TestMismatchError(t *testing.T) {
	t.Parallel()
	err := NewMismatchError("a.bin", "linux", 0xFBFD, 0xFEFA)
	assert.Equal(t, ErrorMismatch, err.Category)
	assert.Contains(t, err.Error(), "expected FBFD, got FEFA")
}

func TestIsCategoryPlainError(t *testing.T) {
	t.Parallel()
	assert.False(t, IsCategory(errors.New("boom"), ErrorExec))
	assert.Nil(t, AsChecksumError(nil))
}

func TestValidationError(t *testing.T) {
	t.Parallel()
	err := fmt.Errorf("config: %w", NewValidationError("harness.parallelism", -1, errors.New("must be positive")))

	assert.True(t, IsValidationError(err))
	ve := AsValidationError(err)
	require.NotNil(t, ve)
	assert.Equal(t, "harness.parallelism", ve.Field)
	assert.Equal(t, -1, ve.Value)
	assert.Equal(t, "harness.parallelism: must be positive", ve.Error())

	assert.Nil(t, AsValidationError(errors.New("plain")))
}
