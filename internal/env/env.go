// Package env validates the host before any file is regenerated.
package env

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/simonhull/quill/internal/exec"
)

// InstallHint tells the user where the generators come from.
const InstallHint = "please install PyQt5 and PyQt6 development tools (e.g. pyqt5-dev-tools)"

// EnvironmentError is a fatal problem with the host, reported before any work starts.
type EnvironmentError struct {
	Reason string
}

func (e *EnvironmentError) Error() string {
	return e.Reason
}

// Checker validates the platform and resolves tools
type Checker struct {
	GOOS     string
	LookPath func(name string) (string, error)
}

// Check validates the running host and resolves every tool on PATH.
func Check(tools ...string) (map[string]string, error) {
	return Checker{GOOS: runtime.GOOS, LookPath: exec.LookPath}.Check(tools...)
}

// Check refuses non-Linux hosts and returns the resolved path of each tool.
func (c Checker) Check(tools ...string) (map[string]string, error) {
	if c.GOOS != "linux" {
		return nil, &EnvironmentError{Reason: "quill can only be run on Linux"}
	}

	resolved := make(map[string]string, len(tools))
	var missing bool
	for _, tool := range tools {
		path, err := c.LookPath(tool)
		if err != nil {
			missing = true
			continue
		}
		resolved[tool] = path
	}

	if missing {
		return nil, &EnvironmentError{
			Reason: fmt.Sprintf("%s couldn't be found, %s", strings.Join(tools, " or "), InstallHint),
		}
	}
	return resolved, nil
}
