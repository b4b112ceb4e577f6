package labkeeper

import (
	"errors"
	"os/exec"
	"strings"
)

// fakeRunner is a scripted Runner: commands are recorded in order, canned
// stdout and failures are keyed by the full command line, and missing marks
// binaries absent from PATH.
type fakeRunner struct {
	commands []string
	outputs  map[string]string
	failures map[string]bool
	missing  map[string]bool
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		outputs:  make(map[string]string),
		failures: make(map[string]bool),
		missing:  make(map[string]bool),
	}
}

func cmdline(cmd *exec.Cmd) string {
	return strings.Join(cmd.Args, " ")
}

func (f *fakeRunner) Run(cmd *exec.Cmd) error {
	line := cmdline(cmd)
	f.commands = append(f.commands, line)
	if f.failures[line] {
		return errors.New("exit status 1")
	}
	return nil
}

func (f *fakeRunner) Output(cmd *exec.Cmd) (string, error) {
	line := cmdline(cmd)
	f.commands = append(f.commands, line)
	if f.failures[line] {
		return "", errors.New("exit status 1")
	}
	return f.outputs[line], nil
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	if f.missing[name] {
		return "", exec.ErrNotFound
	}
	return "/usr/bin/" + name, nil
}

// ran reports whether any recorded command line contains the fragment.
func (f *fakeRunner) ran(fragment string) bool {
	return f.indexOf(fragment) >= 0
}

// indexOf returns the position of the first command line containing the
// fragment, or -1.
func (f *fakeRunner) indexOf(fragment string) int {
	for i, line := range f.commands {
		if strings.Contains(line, fragment) {
			return i
		}
	}
	return -1
}

// count returns how many recorded command lines contain the fragment.
func (f *fakeRunner) count(fragment string) int {
	n := 0
	for _, line := range f.commands {
		if strings.Contains(line, fragment) {
			n++
		}
	}
	return n
}
