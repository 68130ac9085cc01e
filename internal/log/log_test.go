package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)

	Info("test message: %s", "hello")
	Error("failed: %d", 42)

	output := buf.String()
	if !strings.Contains(output, "[INFO] test message: hello") {
		t.Errorf("Expected info message not found in output: %s", output)
	}
	if !strings.Contains(output, "[ERROR] failed: 42") {
		t.Errorf("Expected error message not found in output: %s", output)
	}
}

func TestDebugToggle(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)
	defer SetDebug(false)

	Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("Debug wrote output while disabled: %s", buf.String())
	}

	SetDebug(true)
	Debug("shown %d", 1)
	if !strings.Contains(buf.String(), "[DEBUG] shown 1") {
		t.Errorf("Expected debug message not found in output: %s", buf.String())
	}
}

func TestCallerLocation(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)
	defer SetDebug(false)

	SetDebug(true)
	Info("info")
	Error("error")
	Debug("debug")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %s", len(lines), buf.String())
	}
	for _, line := range lines {
		if !strings.Contains(line, "log_test.go:") {
			t.Errorf("line does not carry the caller location: %s", line)
		}
	}
}
