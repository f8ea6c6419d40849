// cliclient asks a running render server for an image through its irpc
// RenderService and saves the answer.
//
//	cliclient [-addr localhost:8081 | ws://localhost:8080/irpc] [-palette NAME] [-region NAME] DEST THREADS ITERATIONS WIDTHxHEIGHT [UPPER_LEFT LOWER_RIGHT]
//
// Without corners the named landmark region is rendered.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"strconv"
	"time"

	mandel "github.com/ivanrybin/mandelbrot_set"
	"github.com/ivanrybin/mandelbrot_set/encode"
)

// main is the entry point for the CLI client.
// It runs the client logic and logs any fatal errors.
func main() {
	if err := run(); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

func run() error {
	addr := flag.String("addr", "localhost:8081", "irpc address of the render server, host:port or a ws:// url")
	palette := flag.String("palette", "", "pixel palette, gray if empty")
	region := flag.String("region", "whole", "landmark region used when no corners are given")
	timeout := flag.Duration("timeout", time.Minute, "overall deadline")
	flag.Parse()

	dest, req, err := requestFromArgs(flag.Args())
	if err != nil {
		return err
	}
	req.Palette = *palette
	if req.UpperLeft == "" {
		req.Region = *region
	}
	// fail early with the same validation the server runs
	if _, _, err := req.Config(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	log.Printf("Connecting to render server at %s...", *addr)
	resp, img, err := fetchImage(ctx, *addr, req)
	if err != nil {
		return fmt.Errorf("fetch image: %w", err)
	}

	log.Printf("Saving %dx%d image to %q...", resp.Width, resp.Height, dest)
	if err := encode.WriteFunc(dest, func(w io.Writer) error {
		_, err := w.Write(img)
		return err
	}); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	log.Printf("Fully rendered image saved to %q", dest)
	return nil
}

// requestFromArgs reads DEST THREADS ITERATIONS RESOLUTION and optionally
// the two region corners.
func requestFromArgs(args []string) (string, mandel.RenderRequest, error) {
	if len(args) != 4 && len(args) != 6 {
		return "", mandel.RenderRequest{}, &mandel.ConfigError{Msg: "want DEST THREADS ITERATIONS WIDTHxHEIGHT [UPPER_LEFT LOWER_RIGHT]"}
	}
	threads, err := strconv.Atoi(args[1])
	if err != nil {
		return "", mandel.RenderRequest{}, &mandel.ConfigError{Field: "threads", Msg: fmt.Sprintf("%q: want an integer", args[1])}
	}
	iterations, err := strconv.Atoi(args[2])
	if err != nil {
		return "", mandel.RenderRequest{}, &mandel.ConfigError{Field: "iterations", Msg: fmt.Sprintf("%q: want an integer", args[2])}
	}
	req := mandel.RenderRequest{
		Threads:    threads,
		Iterations: iterations,
		Resolution: args[3],
	}
	if len(args) == 6 {
		req.UpperLeft, req.LowerRight = args[4], args[5]
	}
	return args[0], req, nil
}
