package main

import (
	"fmt"
	"image/png"
	"log"
	"os"

	"wolfcast/internal/assets"
	"wolfcast/internal/engine"
)

// writeScreenshot renders the spawn view once and saves it as a PNG.
func writeScreenshot(path string, cfg engine.Config, level *assets.Level, textures *engine.TextureManager) error {
	renderer, err := engine.NewRenderer(cfg, textures)
	if err != nil {
		return err
	}
	defer renderer.Close()

	fb := renderer.Render(cfg.NewPlayer(), level.Map, engine.NewWeapon())
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	if err := png.Encode(f, fb.RGBA()); err != nil {
		f.Close()
		return fmt.Errorf("screenshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	log.Printf("Wrote %dx%d frame to %s", fb.Width(), fb.Height(), path)
	return nil
}
