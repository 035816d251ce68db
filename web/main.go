package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/df07/go-spectral-pathtracer/pkg/renderer"
	"github.com/df07/go-spectral-pathtracer/web/server"
)

func main() {
	config := server.DefaultConfig()

	// Parse command line flags
	flag.IntVar(&config.Port, "port", config.Port, "Port to serve on")
	flag.StringVar(&config.StaticDir, "static", config.StaticDir, "Directory with the preview page (empty disables)")
	flag.IntVar(&config.Frame.NumWorkers, "workers", config.Frame.NumWorkers, "Render workers (0 = CPU count)")
	flag.IntVar(&config.Frame.TileSize, "tile-size", config.Frame.TileSize, "Tile size in pixels")
	flag.StringVar(&config.Scene.EnvironmentPath, "env", "", "Environment map (EXR, PNG or JPEG) for every scene")
	flag.StringVar(&config.Scene.MeshPath, "mesh", "", "PLY mesh for the mesh scene")
	flag.Float64Var(&config.Scene.MeshScale, "mesh-scale", config.Scene.MeshScale, "Uniform scale for the PLY mesh")
	flag.Parse()

	webServer := server.NewServer(config)

	log.Printf("Spectral Path Tracer Web Server")
	server.LogSystemInfo(renderer.NewDefaultLogger(), config.Frame.NumWorkers)
	log.Printf("Visit http://localhost:%d to start rendering", config.Port)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := webServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	}()

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
