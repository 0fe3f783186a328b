package main

import (
	"context"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"runtime"

	"wolfcast/internal/assets"
	"wolfcast/internal/engine"
)

func main() {
	flag.Parse()
	runtime.GOMAXPROCS(runtime.NumCPU())

	if logFile := setupLogging(); logFile != nil {
		defer logFile.Close()
	}

	if *cpuProfileFlag != "" {
		prof, err := startCPUProfile(*cpuProfileFlag)
		if err != nil {
			log.Fatalf("%v", err)
		}
		defer prof.Stop()
		log.Printf("Writing CPU profile to %s", *cpuProfileFlag)
	}

	level, err := loadLevel()
	if err != nil {
		log.Fatalf("Level: %v", err)
	}
	cfg, err := buildConfig(level)
	if err != nil {
		log.Fatalf("Config: %v", err)
	}
	textures, err := assets.NewRegistry(context.Background(), *texturesFlag, assets.DefaultTextureSize, cfg.SpriteTransparent)
	if err != nil {
		log.Fatalf("Textures: %v", err)
	}
	log.Printf("Level %dx%d, spawn (%.1f, %.1f), %d strips",
		level.Map.Width(), level.Map.Height(), cfg.Spawn.X, cfg.Spawn.Y, cfg.StripCount)

	switch {
	case *screenshotFlag != "":
		err = writeScreenshot(*screenshotFlag, cfg, level, textures)
	case *tuiFlag:
		err = runTerminal(cfg, level, textures)
	default:
		err = runDesktop(cfg, level, textures)
	}
	if err != nil {
		log.Fatalf("%v", err)
	}
}

// setupLogging points the standard logger and the engine logger at the
// same writer. It returns the log file when -log is set.
func setupLogging() *os.File {
	var out io.Writer = os.Stderr
	var file *os.File
	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Log file: %v", err)
		}
		out, file = f, f
	} else if *tuiFlag {
		// The terminal front-end owns stdout and stderr.
		out = io.Discard
	}
	log.SetOutput(out)

	level := slog.LevelInfo
	if *debugFlag {
		level = slog.LevelDebug
	}
	engine.SetLogger(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})))
	return file
}

func loadLevel() (*assets.Level, error) {
	switch {
	case *levelFlag != "":
		return assets.LoadLevelImage(*levelFlag)
	case *randomLevelFlag:
		opts := assets.DefaultGenerateOptions()
		opts.Seed = *seedFlag
		return assets.Generate(opts)
	}
	return assets.DefaultLevel(), nil
}

func buildConfig(level *assets.Level) (engine.Config, error) {
	cfg := engine.DefaultConfig()
	cfg.ScreenWidth = *widthFlag
	cfg.ScreenHeight = *heightFlag
	cfg.StripCount = *stripsFlag
	cfg.UseTextures = !*flatFlag
	if err := level.Validate(); err != nil {
		return cfg, err
	}
	cfg.Spawn = level.Spawn
	return cfg, cfg.Validate()
}
