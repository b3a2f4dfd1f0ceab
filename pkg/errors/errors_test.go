package errors

import (
	stdErrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("did not find expected key")
	err := NewParseError("prism.yaml", 7, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "prism.yaml", parseErr.Path)
	require.Equal(t, 7, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: prism.yaml:7: did not find expected key", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("prism.yaml", 0, fs.ErrNotExist)
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.NotContains(t, err.Error(), ":0:")
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("theme.palette[brand]", "must be a colour", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "theme.palette[brand]", validationErr.Field)
	require.Contains(t, err.Error(), "must be a colour")
}

func TestResourceErrorIncludesOperation(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("connection refused")
	err := NewResourceError("https://example.com/x.md", "fetch", underlying)

	var resourceErr *ResourceError
	require.ErrorAs(t, err, &resourceErr)
	require.Equal(t, "fetch", resourceErr.Op)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "unable to fetch https://example.com/x.md: connection refused", err.Error())
}

func TestLookupErrorListsKnownNames(t *testing.T) {
	t.Parallel()

	err := NewLookupError("spinner", "wobble", []string{"dot", "line"})

	var lookupErr *LookupError
	require.ErrorAs(t, err, &lookupErr)
	require.Equal(t, "wobble", lookupErr.Name)
	require.Equal(t, `unknown spinner "wobble" (available: dot, line)`, err.Error())
}
