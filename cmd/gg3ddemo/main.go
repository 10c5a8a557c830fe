// Command gg3ddemo prints the matrices gg3d builds for a camera and renders
// the projected wireframe of a cube to a PNG file.
//
// Settings come from GG3D_* environment variables and can be overridden
// with flags:
//
//	GG3D_YAW=45 gg3ddemo -output cube.png -fov 50
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/gogpu/gg3d"
)

// config holds the demo settings.
type config struct {
	Width     int     `env:"GG3D_WIDTH" envDefault:"800"`
	Height    int     `env:"GG3D_HEIGHT" envDefault:"600"`
	Output    string  `env:"GG3D_OUTPUT" envDefault:"cube.png"`
	FOV       float64 `env:"GG3D_FOV" envDefault:"60"`
	Yaw       float64 `env:"GG3D_YAW" envDefault:"30"`
	Distance  float64 `env:"GG3D_DISTANCE" envDefault:"5"`
	EyeHeight float64 `env:"GG3D_EYE_HEIGHT" envDefault:"2"`
	Verbose   bool    `env:"GG3D_VERBOSE"`
}

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("gg3ddemo: %v", err)
	}
	if cfg.Verbose {
		gg3d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatalf("gg3ddemo: %v", err)
	}
}

// parseConfig loads defaults from the environment and then applies flags.
// It returns flag.ErrHelp when args ask for usage; the usage text has
// already been printed by then.
func parseConfig(args []string) (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("gg3ddemo", flag.ContinueOnError)
	fs.IntVar(&cfg.Width, "width", cfg.Width, "image width")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "image height")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "output PNG file (empty to skip rendering)")
	fs.Float64Var(&cfg.FOV, "fov", cfg.FOV, "vertical field of view in degrees")
	fs.Float64Var(&cfg.Yaw, "yaw", cfg.Yaw, "camera orbit angle in degrees")
	fs.Float64Var(&cfg.Distance, "distance", cfg.Distance, "camera distance from the cube")
	fs.Float64Var(&cfg.EyeHeight, "eye-height", cfg.EyeHeight, "camera height above the cube center")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return cfg, fmt.Errorf("invalid image size %dx%d", cfg.Width, cfg.Height)
	}
	return cfg, nil
}

// camera builds the demo camera from cfg.
func (cfg config) camera() gg3d.Camera[float32] {
	return gg3d.NewCamera(
		gg3d.WithEye(gg3d.V3(0, float32(cfg.EyeHeight), float32(cfg.Distance))),
		gg3d.WithFOV(float32(cfg.FOV)),
		gg3d.WithAspect(float32(cfg.Width)/float32(cfg.Height)),
	).Orbit(gg3d.Radians(float32(cfg.Yaw)))
}

func run(cfg config, out io.Writer) error {
	cam := cfg.camera()
	if err := cam.Validate(); err != nil {
		return err
	}

	if err := printMatrices(out, cam); err != nil {
		return err
	}

	if cfg.Output == "" {
		return nil
	}
	if err := renderPNG(cfg.Output, cam, cfg.Width, cfg.Height); err != nil {
		return err
	}
	gg3d.Logger().Info("demo saved", "file", cfg.Output, "width", cfg.Width, "height", cfg.Height)
	return nil
}
