package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable consulted when no -config flag is given
const EnvPath = "EVO_CONFIG"

// Settings holds window and render configuration shared by all sandbox variants
type Settings struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	GLMajor   int    `yaml:"gl_major"`
	GLMinor   int    `yaml:"gl_minor"`
	Samples   int    `yaml:"samples"`
	VSync     bool   `yaml:"vsync"`
	Hidden    bool   `yaml:"hidden"` // create the window invisible, for headless runs
	ShaderDir string `yaml:"shader_dir"`

	// SlowFrame logs frames taking longer than this; zero disables it
	SlowFrame time.Duration `yaml:"slow_frame"`

	// ClearColor is RGBA in [0,1]
	ClearColor mgl32.Vec4 `yaml:"clear_color,flow"`
}

// Default returns the settings used when no config file is present
func Default() Settings {
	return Settings{
		Width:      640,
		Height:     480,
		Title:      "evo",
		GLMajor:    3,
		GLMinor:    3,
		Samples:    4, // 4x antialiasing
		VSync:      true,
		ShaderDir:  "shaders",
		SlowFrame:  50 * time.Millisecond,
		ClearColor: mgl32.Vec4{0, 0, 0, 1},
	}
}

// Load reads a YAML settings file on top of the defaults.
// An empty path yields the defaults unchanged.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("could not read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("could not parse config file %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return s, nil
}

// Validate reports the first setting that cannot produce a usable window
func (s Settings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", s.Width, s.Height)
	}
	if s.GLMajor < 3 || (s.GLMajor == 3 && s.GLMinor < 3) {
		return fmt.Errorf("OpenGL %d.%d is below the required 3.3 core profile", s.GLMajor, s.GLMinor)
	}
	if s.Samples < 0 {
		return fmt.Errorf("samples must not be negative, got %d", s.Samples)
	}
	for i, c := range s.ClearColor {
		if c < 0 || c > 1 {
			return fmt.Errorf("clear color component %d out of range: %v", i, c)
		}
	}
	if s.SlowFrame < 0 {
		return fmt.Errorf("slow_frame must not be negative, got %v", s.SlowFrame)
	}
	if s.ShaderDir == "" {
		return errors.New("shader directory must not be empty")
	}
	return nil
}

// ShaderPath resolves a shader file name against the configured shader directory
func (s Settings) ShaderPath(name string) string {
	return filepath.Join(s.ShaderDir, name)
}
