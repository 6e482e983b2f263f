//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"lodging-service/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSentinel = errors.New("sentinel")

func TestMark(t *testing.T) {
	t.Run("nil error returns the mark itself", func(t *testing.T) {
		assert.Equal(t, errSentinel, errs.Mark(nil, errSentinel))
	})

	t.Run("marked error matches both identities", func(t *testing.T) {
		base := errors.New("db down")
		marked := errs.Mark(base, errSentinel)

		assert.True(t, errs.Is(marked, errSentinel))
		assert.True(t, errs.Is(marked, base))
		assert.False(t, errors.Is(marked, errSentinel), "mark is only visible through errs.Is")
		assert.Contains(t, marked.Error(), "db down")
	})
}

func TestWrap(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "ignored"))
	assert.NoError(t, errs.Wrapf(nil, "ignored %d", 1))

	wrapped := errs.Wrapf(errSentinel, "loading room %d", 7)
	require.Error(t, wrapped)
	assert.True(t, errors.Is(wrapped, errSentinel))
	assert.Equal(t, "loading room 7: sentinel", wrapped.Error())
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 3))

	lines := errs.ExtractStackLines(errs.New("boom"), 2)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "boom")
}
