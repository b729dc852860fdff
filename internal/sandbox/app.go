package sandbox

import (
	"flag"
	"fmt"
	"log"
	"os"

	"evo/internal/config"
	"evo/internal/geometry"
	"evo/internal/graphics"
	"evo/internal/window"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Variant is one of the sandbox binaries: a shape and the shader pair that draws it
type Variant struct {
	Name           string
	Geometry       geometry.Geometry
	VertexShader   string // file name inside Settings.ShaderDir
	FragmentShader string
}

// ShaderPaths resolves the variant's shader files against the configured directory
func (v Variant) ShaderPaths(s config.Settings) (vertex, fragment string) {
	return s.ShaderPath(v.VertexShader), s.ShaderPath(v.FragmentShader)
}

// Title returns the window title for the variant
func (v Variant) Title(s config.Settings) string {
	if v.Name == "" {
		return s.Title
	}
	return fmt.Sprintf("%s - %s", s.Title, v.Name)
}

type meshScene struct {
	shader *graphics.Shader
	mesh   *graphics.Mesh
}

func (m meshScene) Draw() {
	m.shader.Use()
	m.mesh.Draw()
}

// Run opens the window, builds the shader and mesh for v and renders until the window closes
func Run(v Variant, s config.Settings, logger *log.Logger) error {
	s.Title = v.Title(s)
	win, err := window.Open(s, logger)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer win.Destroy()

	vertexPath, fragmentPath := v.ShaderPaths(s)
	shader, err := graphics.NewShader(vertexPath, fragmentPath)
	if err != nil {
		return err
	}
	defer shader.Delete()

	mesh, err := graphics.NewMesh(v.Geometry.Vertices, v.Geometry.Indices, v.Geometry.Layout)
	if err != nil {
		return fmt.Errorf("failed to upload %s geometry: %w", v.Name, err)
	}
	defer mesh.Delete()

	c := s.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])

	viewport := func(width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
	}
	loop := &Loop{
		Surface:   win,
		Scene:     meshScene{shader: shader, mesh: mesh},
		Poll:      glfw.PollEvents,
		Viewport:  viewport,
		Clear:     func() { gl.Clear(gl.COLOR_BUFFER_BIT) },
		Stats:     NewFrameStats(logger),
		SlowFrame: s.SlowFrame,
		Logger:    logger,
	}
	frames := loop.Run()
	logger.Printf("window closed after %d frames", frames)
	return nil
}

// Main is the entry point shared by the cmd/ binaries. It exits the process non-zero on any failure.
func Main(v Variant) {
	logger := log.New(os.Stderr, v.Name+": ", log.LstdFlags)

	s, err := loadSettings(flag.NewFlagSet(v.Name, flag.ExitOnError), os.Args[1:], os.Getenv)
	if err != nil {
		logger.Fatal(err)
	}

	if err := Run(v, s, logger); err != nil {
		logger.Fatal(err)
	}
}

// loadSettings resolves settings from command-line flags. The config file
// comes from -config, falling back to EVO_CONFIG; -shaders overrides the
// shader directory from either source.
func loadSettings(fs *flag.FlagSet, args []string, getenv func(string) string) (config.Settings, error) {
	configPath := fs.String("config", getenv(config.EnvPath), "optional YAML settings file")
	shaderDir := fs.String("shaders", "", "override the shader directory")
	if err := fs.Parse(args); err != nil {
		return config.Settings{}, err
	}

	s, err := config.Load(*configPath)
	if err != nil {
		return config.Settings{}, err
	}
	if *shaderDir != "" {
		s.ShaderDir = *shaderDir
	}
	return s, nil
}
