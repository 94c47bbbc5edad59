package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupTransitions(t *testing.T) {
	var l Lookup
	assert.Equal(t, LookupIdle, l.Status)

	require.NoError(t, l.Start())
	assert.Equal(t, LookupLoading, l.Status)
	assert.ErrorIs(t, l.Start(), ErrInvalidTransition)

	require.NoError(t, l.Fail("Tweet not found or private."))
	assert.Equal(t, LookupError, l.Status)
	assert.Equal(t, "Tweet not found or private.", l.Error)

	require.NoError(t, l.Start())
	assert.Empty(t, l.Error)

	res := &ResolutionResult{Username: "jack"}
	require.NoError(t, l.Succeed(res))
	assert.Equal(t, LookupSuccess, l.Status)
	assert.Same(t, res, l.Result)

	require.NoError(t, l.Start())
	assert.Nil(t, l.Result)
}

func TestLookupRejectsTerminalWithoutLoading(t *testing.T) {
	var l Lookup
	assert.ErrorIs(t, l.Succeed(&ResolutionResult{}), ErrInvalidTransition)
	assert.ErrorIs(t, l.Fail("x"), ErrInvalidTransition)
	assert.Equal(t, "idle", l.Status.String())
}
