// mandelbrot renders a region of the Mandelbrot set into an image file.
//
//	mandelbrot [-palette NAME] [-v] DEST THREADS ITERATIONS WIDTHxHEIGHT UPPER_LEFT LOWER_RIGHT
//
// The output format follows the extension of DEST (.png, .jpg, .tif).
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	mandel "github.com/ivanrybin/mandelbrot_set"
	"github.com/ivanrybin/mandelbrot_set/encode"
	"github.com/ivanrybin/mandelbrot_set/render"
)

const (
	exitConfig = 1
	exitFault  = 2
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		os.Exit(report(err))
	}
}

// report prints err and returns the process exit code for it.
func report(err error) int {
	switch {
	case errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, mandel.ErrConfig):
		fmt.Fprintf(os.Stderr, "%v\nusage: mandelbrot [flags] %s\n", err, mandel.Usage)
		return exitConfig
	default:
		log.Printf("FATAL: %v", err)
		return exitFault
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("mandelbrot", flag.ContinueOnError)
	palette := fs.String("palette", "gray", "pixel palette: "+strings.Join(mandel.ShaderNames(), ", "))
	verbose := fs.Bool("v", false, "log every finished band")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return &mandel.ConfigError{Field: "flags", Msg: err.Error()}
	}

	shader, err := mandel.ShaderByName(*palette)
	if err != nil {
		return err
	}
	cfg, dest, err := mandel.ParseArgs(fs.Args())
	if err != nil {
		return err
	}

	renderer := render.Renderer{Shader: shader}
	if *verbose {
		renderer.OnBandRender = func(r render.WorkRange) { log.Printf("rendered band: %s", r) }
	}

	log.Printf("rendering %s of %s, %d iterations, %d threads", cfg.Resolution, cfg.Region, cfg.Iterations, cfg.Workers)
	start := time.Now()
	buf, err := renderer.Render(cfg)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	log.Printf("render took %s", time.Since(start))

	if err := encode.Write(dest, buf.Image); err != nil {
		return fmt.Errorf("write image: %w", err)
	}
	log.Printf("%s image saved to %q", encode.FormatFromPath(dest), dest)
	return nil
}
