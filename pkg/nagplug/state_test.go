package nagplug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateString(t *testing.T) {
	t.Parallel()

	for _, check := range []struct {
		state  State
		expect string
	}{
		{OK, "OK"},
		{Warning, "WARNING"},
		{Critical, "CRITICAL"},
		{Unknown, "UNKNOWN"},
		{State(99), "UNKNOWN"},
	} {
		assert.Equal(t, check.expect, check.state.String())
	}
}

func TestStateExitCode(t *testing.T) {
	t.Parallel()

	for _, check := range []struct {
		state  State
		expect int
	}{
		{OK, 0},
		{Warning, 1},
		{Critical, 2},
		{Unknown, 3},
		{State(99), 3},
		{State(-1), 3},
	} {
		assert.Equal(t, check.expect, check.state.ExitCode())
	}
}
