package labkeeper

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutorOutputCapturesStdout(t *testing.T) {
	e := &Executor{Context: context.Background()}

	out, err := e.Output(exec.Command("echo", "hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello\n", out)
}

func TestExecutorRunReportsExitStatus(t *testing.T) {
	e := &Executor{Context: context.Background()}

	assert.NoError(t, e.Run(exec.Command("true")))
	assert.Error(t, e.Run(exec.Command("false")))
}

func TestExecutorLookPath(t *testing.T) {
	e := &Executor{Context: context.Background()}

	_, err := e.LookPath("sh")
	assert.NoError(t, err)
	_, err = e.LookPath("labkeeper-no-such-binary")
	assert.Error(t, err)
}

func TestExecutorKillsProcessGroupOnCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	e := &Executor{Context: ctx}

	start := time.Now()
	err := e.Run(exec.Command("sleep", "10"))
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}
