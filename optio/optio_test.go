package optio

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dzonerzy/go-optmap/optmap"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf).WithLevel(LevelWarning)

	logger.Debugf("hidden %d", 1)
	logger.Infof("hidden %d", 2)
	logger.Warnf("shown %d", 3)
	logger.Errorf("shown %d", 4)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("messages below level leaked: %q", out)
	}
	if !strings.Contains(out, "[WARN] shown 3") || !strings.Contains(out, "[ERROR] shown 4") {
		t.Errorf("expected warn and error lines, got %q", out)
	}
}

func TestLoggerPrefix(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf).WithPrefix("compile").Infof("done")

	if got := buf.String(); got != "[INFO] compile: done\n" {
		t.Errorf("unexpected line: %q", got)
	}
}

func TestDiagnosticSinkLogsDuplicateTrigger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf)

	optmap.CompileWithDiagnostics([]optmap.Option{
		{Triggers: []string{"-v"}, Type: optmap.TypeNone},
		{Triggers: []string{"-v"}, Type: optmap.TypeNone, Target: "other"},
	}, logger.DiagnosticSink())

	out := buf.String()
	if !strings.Contains(out, "[WARN]") || !strings.Contains(out, "duplicate_trigger") {
		t.Errorf("expected duplicate trigger warning, got %q", out)
	}
}

func TestFilesystemWrappers(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b")

	if Exists(nested) {
		t.Fatal("nested dir should not exist yet")
	}
	if err := EnsureDir(nested); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	if !IsDir(nested) {
		t.Error("EnsureDir did not create a directory")
	}

	file := filepath.Join(nested, "out.txt")
	if err := WriteFile(file, []byte("hello")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := AppendFile(file, []byte(" world")); err != nil {
		t.Fatalf("AppendFile: %v", err)
	}

	data, err := ReadFile(file)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "hello world" {
		t.Errorf("file contents = %q", data)
	}

	size, err := Size(file)
	if err != nil || size != int64(len("hello world")) {
		t.Errorf("Size = %d, %v", size, err)
	}
	if IsDir(file) {
		t.Error("IsDir reported true for a file")
	}

	if err := RemoveAll(filepath.Join(dir, "a")); err != nil {
		t.Fatalf("RemoveAll: %v", err)
	}
	if Exists(nested) {
		t.Error("RemoveAll left the tree behind")
	}
	if _, err := os.Stat(file); !os.IsNotExist(err) {
		t.Errorf("expected file gone, stat err = %v", err)
	}
}
