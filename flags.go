package main

import (
	"flag"

	"wolfcast/internal/engine"
)

// Command-line flags that select the level, the front-end and optional
// diagnostics. Rendering constants not listed here come from
// engine.DefaultConfig.
var (
	// widthFlag and heightFlag set the render resolution in pixels.
	widthFlag  = flag.Int("width", engine.DefaultScreenWidth, "render width in pixels")
	heightFlag = flag.Int("height", engine.DefaultScreenHeight, "render height in pixels")

	// scaleFlag multiplies the window size on the desktop front-end.
	scaleFlag = flag.Int("scale", defaultWindowScale, "window scale factor")

	// texturesFlag points at a directory of wall.png, wall2.png and
	// shoot_N.png assets. Missing assets are generated.
	texturesFlag = flag.String("textures", "", "directory with texture images (png or bmp)")

	// flatFlag renders walls with flat palette colours.
	flatFlag = flag.Bool("flat", false, "disable wall textures")

	// levelFlag loads a level image, one pixel per tile.
	levelFlag = flag.String("level", "", "level image (png or bmp), one pixel per tile")

	// randomLevelFlag generates a level instead of loading one.
	randomLevelFlag = flag.Bool("random-level", false, "play a procedurally generated level")

	// seedFlag seeds the level generator.
	seedFlag = flag.Int64("seed", 1, "seed for -random-level")

	// stripsFlag sets how many vertical strips render in parallel.
	stripsFlag = flag.Int("strips", engine.DefaultStripCount, "parallel render strips")

	// tuiFlag runs in the terminal instead of a window.
	tuiFlag = flag.Bool("tui", false, "render in the terminal with half-block characters")

	// screenshotFlag renders one frame to a PNG and exits.
	screenshotFlag = flag.String("screenshot", "", "render a single frame to this PNG file and exit")

	// debugFlag enables the FPS and pose overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and player overlay")

	// minimapFlag draws the level and cast rays in a corner.
	minimapFlag = flag.Bool("minimap", false, "show the minimap")

	// shotSoundFlag replaces the synthesized shot with a WAV file.
	shotSoundFlag = flag.String("shot-sound", "", "WAV file played when shooting")

	// recordDefaultPGO triggers a scripted walk to produce default.pgo.
	recordDefaultPGO = flag.Bool("record-default-pgo", false, "walk randomly for 15s while capturing default.pgo")

	// cpuProfileFlag writes a CPU profile for the whole run.
	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile to this file")

	// logFlag sends logs to a file, which the terminal front-end needs.
	logFlag = flag.String("log", "", "write logs to this file instead of stderr")
)
