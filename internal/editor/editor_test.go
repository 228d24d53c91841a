package editor

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/thoreinstein/testswitch/internal/errors"
	"github.com/thoreinstein/testswitch/internal/logging"
)

func clearEditorEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvEditor, "")
	t.Setenv("EDITOR", "")
	t.Setenv("VISUAL", "")
}

func TestDetectEditor(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"override wins", map[string]string{EnvEditor: "hx", "EDITOR": "nvim", "VISUAL": "code"}, "hx"},
		{"editor before visual", map[string]string{"EDITOR": "nvim", "VISUAL": "code"}, "nvim"},
		{"visual", map[string]string{"VISUAL": "code --wait"}, "code --wait"},
		{"blank treated as unset", map[string]string{"EDITOR": "  ", "VISUAL": "vscode"}, "vscode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEditorEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if got := detectEditor(); got != tt.want {
				t.Errorf("detectEditor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectEditor_FallbackNano(t *testing.T) {
	clearEditorEnv(t)

	got := detectEditor()
	want := "vi"
	if _, err := exec.LookPath("nano"); err == nil {
		want = "nano"
	}
	if got != want {
		t.Errorf("detectEditor() = %q, want %q", got, want)
	}
}

func TestSplitCommand(t *testing.T) {
	argv, err := splitCommand("code  --wait -n")
	if err != nil {
		t.Fatalf("splitCommand() error = %v", err)
	}
	if strings.Join(argv, "|") != "code|--wait|-n" {
		t.Errorf("splitCommand() = %q", argv)
	}

	if _, err := splitCommand("   "); !errors.Is(err, ErrEmptyCommand) {
		t.Errorf("splitCommand(blank) error = %v, want ErrEmptyCommand", err)
	}
}

func TestOpen_Integration(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("skipping integration test on windows (uses shell script mock)")
	}

	tmpDir := t.TempDir()
	mockEditor := filepath.Join(tmpDir, "mock-editor.sh")
	outputFile := filepath.Join(tmpDir, "output.txt")

	script := "#!/bin/sh\necho \"$@\" > " + outputFile + "\n"
	if err := os.WriteFile(mockEditor, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}

	clearEditorEnv(t)
	t.Setenv("EDITOR", mockEditor+" --wait")

	target := filepath.Join(tmpDir, "widget_spec.js")
	ctx := logging.NewContext(t.Context(), logging.ForTest(t))
	o := &Opener{ctx: ctx, stdin: strings.NewReader(""), stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}
	if err := o.Open(target); err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	got, err := os.ReadFile(outputFile)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(got)) != "--wait "+target {
		t.Errorf("mock editor args = %q, want %q", strings.TrimSpace(string(got)), "--wait "+target)
	}
}

func TestOpen_MissingEditor(t *testing.T) {
	clearEditorEnv(t)
	t.Setenv("EDITOR", "non-existent-binary-12345")

	o := &Opener{ctx: t.Context(), stdin: strings.NewReader(""), stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}
	if err := o.Open("widget.js"); err == nil {
		t.Error("expected error for non-existent editor, got nil")
	}
}

func TestPrintOpener(t *testing.T) {
	var buf bytes.Buffer
	if err := (PrintOpener{W: &buf}).Open("/proj/spec/widget_spec.js"); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if got := buf.String(); got != "/proj/spec/widget_spec.js\n" {
		t.Errorf("PrintOpener wrote %q", got)
	}
}
