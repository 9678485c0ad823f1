package d_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dusk-network/microkelvin/d"
)

func TestTryRecoversWalkerViolation(t *testing.T) {
	err := d.Try(func() {
		d.Exp.Equal(1, 2, "expected %d to equal %d", 1, 2)
	})
	require.Error(t, err)
	_, ok := err.(d.WalkerViolation)
	assert.True(t, ok)
}

func TestTryPassesThroughOtherPanics(t *testing.T) {
	assert.Panics(t, func() {
		_ = d.Try(func() {
			panic("not a walker violation")
		})
	})
}

func TestTryReturnsNilOnSuccess(t *testing.T) {
	err := d.Try(func() {
		d.Exp.True(true, "must hold")
	})
	assert.NoError(t, err)
}

func TestChkPanicsUnconditionally(t *testing.T) {
	assert.Panics(t, func() {
		d.Chk.Equal(1, 2, "must never mismatch")
	})
}
