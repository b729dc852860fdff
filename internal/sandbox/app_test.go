package sandbox

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"evo/internal/config"
)

func TestLoadSettings(t *testing.T) {
	dir := t.TempDir()
	fromEnv := filepath.Join(dir, "env.yaml")
	fromFlag := filepath.Join(dir, "flag.yaml")
	if err := os.WriteFile(fromEnv, []byte("title: from-env\nshader_dir: env-shaders\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(fromFlag, []byte("title: from-flag\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name          string
		args          []string
		env           string
		wantTitle     string
		wantShaderDir string
	}{
		{"defaults", nil, "", "evo", "shaders"},
		{"env fallback", nil, fromEnv, "from-env", "env-shaders"},
		{"flag beats env", []string{"-config", fromFlag}, fromEnv, "from-flag", "shaders"},
		{"shaders override file", []string{"-shaders", "other"}, fromEnv, "from-env", "other"},
		{"shaders override defaults", []string{"-shaders", "other"}, "", "evo", "other"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getenv := func(key string) string {
				if key == config.EnvPath {
					return tt.env
				}
				return ""
			}
			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			s, err := loadSettings(fs, tt.args, getenv)
			if err != nil {
				t.Fatalf("loadSettings failed: %v", err)
			}
			if s.Title != tt.wantTitle {
				t.Errorf("Expected title %q, got %q", tt.wantTitle, s.Title)
			}
			if s.ShaderDir != tt.wantShaderDir {
				t.Errorf("Expected shader dir %q, got %q", tt.wantShaderDir, s.ShaderDir)
			}
		})
	}
}

func TestLoadSettingsErrors(t *testing.T) {
	noEnv := func(string) string { return "" }

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if _, err := loadSettings(fs, []string{"-unknown"}, noEnv); err == nil {
		t.Error("Expected error for unknown flag")
	}

	missing := filepath.Join(t.TempDir(), "missing.yaml")
	fs = flag.NewFlagSet("test", flag.ContinueOnError)
	if _, err := loadSettings(fs, []string{"-config", missing}, noEnv); err == nil {
		t.Error("Expected error for missing config file")
	}
}
