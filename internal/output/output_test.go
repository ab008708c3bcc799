package output

import (
	"bytes"
	"strings"
	"testing"
)

// captureOutput redirects console output during f.
func captureOutput(f func()) string {
	var buf bytes.Buffer
	SetWriter(&buf)
	defer SetWriter(nil)

	f()
	return buf.String()
}

func TestSuccess(t *testing.T) {
	output := captureOutput(func() {
		Success("Test message")
	})

	if !strings.Contains(output, "✔") {
		t.Error("Success output should contain check mark")
	}
	if !strings.Contains(output, "Test message") {
		t.Error("Success output should contain the message")
	}
}

func TestError(t *testing.T) {
	output := captureOutput(func() {
		Error("Error message")
	})

	if !strings.Contains(output, "❌") {
		t.Error("Error output should contain X emoji")
	}
	if !strings.Contains(output, "Error message") {
		t.Error("Error output should contain the message")
	}
}

func TestWarn(t *testing.T) {
	output := captureOutput(func() {
		Warn("pyuic6 failed")
	})

	if !strings.Contains(output, "pyuic6 failed") {
		t.Errorf("Warn output missing message, got %q", output)
	}
}

func TestInfoAndStep(t *testing.T) {
	output := captureOutput(func() {
		Info("Building UI main_window.ui")
		Step("main_window_ui.py")
	})

	if !strings.Contains(output, "Building UI main_window.ui") {
		t.Errorf("Info output missing message, got %q", output)
	}
	if !strings.Contains(output, "   main_window_ui.py") {
		t.Errorf("Step output should be indented, got %q", output)
	}
}

func TestVerbose(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		SetVerbose(false)
		output := captureOutput(func() {
			Verbose("hidden")
		})
		if output != "" {
			t.Errorf("Verbose should print nothing when disabled, got %q", output)
		}
	})

	t.Run("enabled", func(t *testing.T) {
		SetVerbose(true)
		defer SetVerbose(false)

		output := captureOutput(func() {
			Verbose("shown")
		})
		if !strings.Contains(output, "shown") {
			t.Errorf("Verbose should print when enabled, got %q", output)
		}
		if !IsVerbose() {
			t.Error("IsVerbose() = false, want true")
		}
	})
}
