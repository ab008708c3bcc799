// Package exec runs the external code generators that quill drives.
//
// An Executor wraps os/exec with context cancellation, optional line prefixes
// on the child's output and an optional spinner for interactive terminals:
//
//	executor := exec.NewExecutor(&exec.Options{Prefix: "pyuic6 │ "})
//	err := executor.Run(ctx, "pyuic6", "-o", "main_window_ui.py", "main_window.ui")
//
// The command constructor is swappable so tests can re-exec the test binary
// instead of the real tool.
package exec
