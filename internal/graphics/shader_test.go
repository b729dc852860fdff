package graphics

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStageString(t *testing.T) {
	if VertexStage.String() != "vertex" {
		t.Errorf("Unexpected vertex stage name %q", VertexStage.String())
	}
	if FragmentStage.String() != "fragment" {
		t.Errorf("Unexpected fragment stage name %q", FragmentStage.String())
	}
	if s := Stage(0x1234).String(); s != "stage(0x1234)" {
		t.Errorf("Unexpected unknown stage name %q", s)
	}
}

func TestCompileErrorMessage(t *testing.T) {
	err := &CompileError{Stage: FragmentStage, Path: "shaders/solid.frag", Log: "0:3: 'colour' : undeclared identifier"}
	msg := err.Error()
	for _, part := range []string{"fragment", "shaders/solid.frag", "undeclared identifier"} {
		if !strings.Contains(msg, part) {
			t.Errorf("Expected %q in %q", part, msg)
		}
	}

	inline := (&CompileError{Stage: VertexStage, Log: "bad"}).Error()
	if inline != "failed to compile vertex shader: bad" {
		t.Errorf("Unexpected message %q", inline)
	}
}

func TestCompileErrorUnwrapsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("colors: %w", &CompileError{Stage: VertexStage, Log: "bad"})
	var ce *CompileError
	if !errors.As(wrapped, &ce) {
		t.Fatal("Expected errors.As to find CompileError")
	}
	if ce.Stage != VertexStage {
		t.Errorf("Expected vertex stage, got %v", ce.Stage)
	}

	var le *LinkError
	if errors.As(wrapped, &le) {
		t.Error("CompileError must not match LinkError")
	}
}

func TestLinkErrorMessage(t *testing.T) {
	err := &LinkError{Log: "error: vertex shader output `Color' not read by fragment shader"}
	if !strings.HasPrefix(err.Error(), "failed to link program: ") {
		t.Errorf("Unexpected message %q", err.Error())
	}
}

// Source files are read before any GL call, so these run without a context.
func TestNewShaderMissingFiles(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "ok.frag")
	if err := os.WriteFile(existing, []byte("#version 330 core\nvoid main() {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(dir, "missing.vert")

	tests := []struct {
		name     string
		vertex   string
		fragment string
	}{
		{"missing vertex", missing, existing},
		{"missing fragment", existing, missing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sh, err := NewShader(tt.vertex, tt.fragment)
			if sh != nil {
				t.Errorf("Expected no shader, got %+v", sh)
			}
			if !errors.Is(err, fs.ErrNotExist) {
				t.Fatalf("Expected fs.ErrNotExist, got %v", err)
			}
			if !strings.Contains(err.Error(), "missing.vert") {
				t.Errorf("Expected path in error, got %q", err.Error())
			}
		})
	}
}
