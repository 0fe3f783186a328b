package main

import "time"

// Front-end constants for the desktop window, the terminal view, input
// tuning, audio and profiling. Rendering defaults live in the engine.
const (
	windowTitle        = "wolfcast"
	defaultWindowScale = 2
	defaultTPS         = 60

	// mouseSensitivity is radians of turn per pixel of mouse drag.
	mouseSensitivity = 0.004

	minimapCell     = 4
	minimapMargin   = 8
	minimapRays     = 24
	playerMarkerRad = 1

	terminalFPS     = 30
	terminalKeyHold = 300 * time.Millisecond
	terminalPoll    = 30 * time.Millisecond

	audioSampleRate   = 48000
	shotToneHz        = 196
	shotDuration      = 140 * time.Millisecond
	pcm16MaxValue     = 32767
	pgoRecordDuration = 15 * time.Second
)
