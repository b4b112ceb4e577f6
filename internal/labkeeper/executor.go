package labkeeper

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"syscall"
	"time"
)

// Runner is the narrow capability every maintenance stage uses to talk to the
// system's package managers and tools. Tests substitute a scripted fake so no
// real system is mutated.
type Runner interface {
	// Run executes the command, streaming its output, and returns the
	// command's completion error (nil means exit status 0).
	Run(cmd *exec.Cmd) error
	// Output executes the command and returns its captured stdout.
	Output(cmd *exec.Cmd) (string, error)
	// LookPath reports whether a binary is resolvable on PATH.
	LookPath(name string) (string, error)
}

// Executor provides a consistent interface for executing commands under the
// run's cancellable context. labkeeper refuses to start without root, so no
// privilege escalation wrapper is needed here.
type Executor struct {
	Context context.Context // The context to use for cancellation
}

// Run executes the given command. It wires up stdio and isolates the child in
// its own process group so a cancelled context kills the whole group.
func (e *Executor) Run(cmd *exec.Cmd) error {
	// --- Phase 0: wire up stdio ---
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	// --- Phase 1: rebuild under the run context ---
	finalCmd := exec.CommandContext(e.Context, cmd.Path, cmd.Args[1:]...)
	finalCmd.Dir = cmd.Dir

	// preserve or inherit the environment
	if len(cmd.Env) > 0 {
		finalCmd.Env = cmd.Env
	} else {
		finalCmd.Env = os.Environ()
	}

	// carry over stdio
	finalCmd.Stdin = cmd.Stdin
	finalCmd.Stdout = cmd.Stdout
	finalCmd.Stderr = cmd.Stderr

	// --- Phase 2: isolate process group for context-based cleanup ---
	finalCmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	// --- Phase 3: start and watch for cancel ---
	if err := finalCmd.Start(); err != nil {
		return fmt.Errorf("failed to start command: %w", err)
	}

	pgid := finalCmd.Process.Pid
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-e.Context.Done():
			syscall.Kill(-pgid, syscall.SIGKILL)
		case <-done:
		}
	}()

	// --- Phase 4: wait and return ---
	if waitErr := finalCmd.Wait(); waitErr != nil {
		if e.Context.Err() != nil {
			time.Sleep(100 * time.Millisecond)
			return fmt.Errorf("command aborted: %v", e.Context.Err())
		}
		return waitErr
	}
	return nil
}

// Output executes the command quietly and returns its captured stdout.
func (e *Executor) Output(cmd *exec.Cmd) (string, error) {
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := e.Run(cmd)
	return out.String(), err
}

// LookPath resolves a binary on PATH.
func (e *Executor) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
