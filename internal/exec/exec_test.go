package exec

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCommand re-executes the test binary as a stand-in for the named tool
func mockCommand(name string, args ...string) *exec.Cmd {
	cs := []string{"-test.run=TestHelperProcess", "--", name}
	cs = append(cs, args...)
	cmd := exec.Command(os.Args[0], cs...)
	cmd.Env = []string{"GO_WANT_HELPER_PROCESS=1"}
	return cmd
}

// TestHelperProcess is the fake tool invoked by mockCommand
func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}

	args := os.Args
	for i, arg := range args {
		if arg == "--" {
			args = args[i+1:]
			break
		}
	}

	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "no command specified\n")
		os.Exit(1)
	}

	switch args[0] {
	case "echo":
		if len(args) > 1 {
			fmt.Println(strings.Join(args[1:], " "))
		}
		os.Exit(0)
	case "pyuic6":
		// pyuic6 -o <target> <source>
		if len(args) != 4 || args[1] != "-o" {
			fmt.Fprintf(os.Stderr, "usage: pyuic6 -o target source\n")
			os.Exit(2)
		}
		if err := os.WriteFile(args[2], []byte("# generated from "+args[3]+"\n"), 0644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		os.Exit(0)
	case "sleep":
		time.Sleep(10 * time.Second)
		os.Exit(0)
	case "error":
		fmt.Fprintf(os.Stderr, "error occurred\n")
		os.Exit(1)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		os.Exit(1)
	}
}

func TestNewExecutor(t *testing.T) {
	executor := NewExecutor(nil)
	assert.NotNil(t, executor)
	assert.Equal(t, os.Stdout, executor.stdout)
	assert.Equal(t, os.Stderr, executor.stderr)
	assert.NotNil(t, executor.commandFunc)

	var stdout, stderr bytes.Buffer
	executor = NewExecutor(&Options{
		Stdout:  &stdout,
		Stderr:  &stderr,
		Env:     []string{"TEST=1"},
		Dir:     "/tmp",
		Spinner: true,
	})
	assert.Equal(t, &stdout, executor.stdout)
	assert.Equal(t, &stderr, executor.stderr)
	assert.Equal(t, []string{"TEST=1"}, executor.env)
	assert.Equal(t, "/tmp", executor.dir)
	assert.False(t, executor.spinner, "spinner must stay off when stderr is not a terminal")
}

func TestExecutor_Run(t *testing.T) {
	var stdout bytes.Buffer

	executor := NewExecutor(&Options{Stdout: &stdout})
	executor.commandFunc = mockCommand

	err := executor.Run(context.Background(), "echo", "hello", "world")
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "hello world")
}

func TestExecutor_RunWritesTarget(t *testing.T) {
	target := t.TempDir() + "/main_window_ui.py"

	executor := NewExecutor(&Options{Stdout: &bytes.Buffer{}})
	executor.commandFunc = mockCommand

	err := executor.Run(context.Background(), "pyuic6", "-o", target, "main_window.ui")
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "# generated from main_window.ui\n", string(data))
}

func TestExecutor_RunWithError(t *testing.T) {
	var stderr bytes.Buffer

	executor := NewExecutor(&Options{Stderr: &stderr})
	executor.commandFunc = mockCommand

	err := executor.Run(context.Background(), "error")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error failed")
	assert.Contains(t, stderr.String(), "error occurred")
}

func TestExecutor_RunWithPrefix(t *testing.T) {
	var stderr bytes.Buffer

	executor := NewExecutor(&Options{Stderr: &stderr, Prefix: "rcc │ "})
	executor.commandFunc = mockCommand

	err := executor.Run(context.Background(), "error")
	require.Error(t, err)
	assert.Contains(t, stderr.String(), "rcc │ ")
	assert.Contains(t, stderr.String(), "error occurred")
}

func TestExecutor_Cancelled(t *testing.T) {
	executor := NewExecutor(&Options{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}})
	executor.commandFunc = mockCommand

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := executor.Run(ctx, "sleep")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cancelled")
}

func TestExecutor_CommandNotFound(t *testing.T) {
	executor := NewExecutor(&Options{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}})

	err := executor.Run(context.Background(), "quill-definitely-missing-tool")
	require.Error(t, err)
	assert.True(t, IsCommandNotFound(err))
	assert.Contains(t, err.Error(), "Please install it")
}

func TestIsCommandNotFound(t *testing.T) {
	assert.False(t, IsCommandNotFound(nil))
	assert.True(t, IsCommandNotFound(exec.ErrNotFound))
	assert.True(t, IsCommandNotFound(fmt.Errorf("wrap: %w", exec.ErrNotFound)))
	assert.False(t, IsCommandNotFound(fmt.Errorf("exit status 1")))
}

func TestPrefixWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewPrefixWriter(&buf, "> ")

	_, err := w.Write([]byte("one\ntw"))
	require.NoError(t, err)
	_, err = w.Write([]byte("o\nthree"))
	require.NoError(t, err)
	require.NoError(t, w.Flush())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[0], "one"))
	assert.True(t, strings.HasSuffix(lines[1], "two"))
	assert.True(t, strings.HasSuffix(lines[2], "three"))
	for _, line := range lines {
		assert.Contains(t, line, ">")
	}
}

func TestExecutor_RunWithSpinner(t *testing.T) {
	var stdout, stderr bytes.Buffer
	executor := &Executor{stdout: &stdout, stderr: &stderr, spinner: true, commandFunc: mockCommand}

	err := executor.Run(context.Background(), "echo", "hidden")
	require.NoError(t, err)
	assert.NotContains(t, stdout.String(), "hidden", "command output is swallowed behind the spinner")

	err = executor.Run(context.Background(), "error")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error failed")
	assert.Contains(t, err.Error(), "error occurred", "captured stderr is attached to the error")
}

func TestSpinnerModel(t *testing.T) {
	m := newSpinnerModel("Building")
	assert.Contains(t, m.View(), "Building...")

	_, cmd := m.Update(spinnerDoneMsg{})
	assert.NotNil(t, cmd)
	assert.Equal(t, "✅ Building\n", m.View())

	m = newSpinnerModel("Building")
	m.Update(spinnerDoneMsg{err: fmt.Errorf("boom")})
	assert.Equal(t, "❌ Building\n", m.View())
}
