package serrors_test

import (
	"browse/pkg/serrors"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrUnavailable,
		serrors.ErrTimeout,
		serrors.ErrRateLimited,
		serrors.ErrBadRequest,
		serrors.ErrNotFound,
		serrors.ErrInternal,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("connection refused")

	require.Equal(t, "status 502", serrors.With(serrors.ErrUnavailable, "status %d", 502).Error())
	require.Equal(t, "get categories: connection refused",
		serrors.Wrap(serrors.ErrUnavailable, base, "get categories").Error())
	require.Equal(t, "connection refused", serrors.Wrap(serrors.ErrUnavailable, base, "").Error())
	require.Equal(t, "TIMEOUT", serrors.KindOnly(serrors.ErrTimeout).Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	e := serrors.Wrap(serrors.ErrTimeout, context.DeadlineExceeded, "get items")

	require.ErrorIs(t, e, serrors.ErrTimeout)
	require.ErrorIs(t, e, context.DeadlineExceeded)
	require.NotErrorIs(t, e, serrors.ErrUnavailable)

	// still matches through an outer fmt wrap
	require.ErrorIs(t, fmt.Errorf("fetch: %w", e), serrors.ErrTimeout)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrUnavailable, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrUnavailable, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestKindOf(t *testing.T) {
	require.Nil(t, serrors.KindOf(nil))
	require.Equal(t, serrors.ErrInternal, serrors.KindOf(errors.New("plain")))
	require.Equal(t, serrors.ErrRateLimited,
		serrors.KindOf(fmt.Errorf("outer: %w", serrors.With(serrors.ErrRateLimited, "slow down"))))
	require.Equal(t, serrors.ErrNotFound, serrors.KindOf(fmt.Errorf("lookup: %w", serrors.ErrNotFound)))
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrBadRequest, base, "invalid set")
	require.Equal(t, serrors.ErrBadRequest, e.Kind())
	require.Equal(t, "invalid set", e.Message())
	require.Equal(t, base, e.Cause())
}
