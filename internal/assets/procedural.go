package assets

import (
	"image/color"

	"wolfcast/internal/engine"
)

// ProceduralWall draws a red brick texture.
func ProceduralWall(size int) *engine.Texture {
	brickH := max(size/8, 2)
	brickW := max(size/4, 4)
	pixels := make([]uint32, size*size)
	for y := 0; y < size; y++ {
		row := y / brickH
		offset := 0
		if row%2 == 1 {
			offset = brickW / 2
		}
		for x := 0; x < size; x++ {
			mortar := y%brickH == 0 || (x+offset)%brickW == 0
			var c uint32
			if mortar {
				c = engine.PackARGB(0x70, 0x70, 0x68, 0xFF)
			} else {
				n := uint8(noise(x, y) % 0x28)
				c = engine.PackARGB(0x90+n, 0x30+n/2, 0x28, 0xFF)
			}
			pixels[y*size+x] = c
		}
	}
	return mustTexture(size, size, pixels)
}

// ProceduralWall2 draws grey-blue stone blocks.
func ProceduralWall2(size int) *engine.Texture {
	block := max(size/4, 2)
	pixels := make([]uint32, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			n := uint8(noise(x, y) % 0x20)
			base := uint8(0x58)
			if (x/block+y/block)%2 == 0 {
				base = 0x68
			}
			c := engine.PackARGB(base+n, base+n, base+0x18+n, 0xFF)
			if x%block == block-1 || y%block == block-1 {
				c = engine.PackARGB(0x28, 0x28, 0x30, 0xFF)
			}
			pixels[y*size+x] = c
		}
	}
	return mustTexture(size, size, pixels)
}

// ProceduralWeapon draws frame n of the pistol animation on a transparent
// background. Frames 1 to 3 add a shrinking muzzle flash and later frames
// show the recoil settling.
func ProceduralWeapon(frame, size int, transparent uint32) *engine.Texture {
	pixels := make([]uint32, size*size)
	for i := range pixels {
		pixels[i] = transparent
	}
	set := func(x, y int, c uint32) {
		if x >= 0 && x < size && y >= 0 && y < size {
			pixels[y*size+x] = c
		}
	}

	recoil := 0
	if frame > 0 && frame <= engine.ShootAnimationFrames {
		recoil = (engine.ShootAnimationFrames - frame + 1) * size / 64
	}
	cx := size / 2
	barrelW := max(size/10, 1)
	barrelTop := size*2/5 + recoil
	gripTop := size*3/5 + recoil

	metal := engine.PackARGB(0x50, 0x50, 0x58, 0xFF)
	dark := engine.PackARGB(0x30, 0x30, 0x34, 0xFF)
	wood := engine.PackARGB(0x6B, 0x42, 0x26, 0xFF)
	for y := barrelTop; y < size; y++ {
		for x := cx - barrelW; x <= cx+barrelW; x++ {
			c := metal
			if x == cx-barrelW || x == cx+barrelW {
				c = dark
			}
			set(x, y, c)
		}
	}
	for y := gripTop; y < size; y++ {
		for x := cx - 2*barrelW; x <= cx+2*barrelW; x++ {
			if x < cx-barrelW || x > cx+barrelW {
				set(x, y, wood)
			}
		}
	}

	if frame >= 1 && frame <= 3 {
		flash := color.RGBA{R: 0xFF, G: 0xE0 - uint8(frame*0x20), B: 0x40, A: 0xFF}
		fc := engine.PackARGB(flash.R, flash.G, flash.B, flash.A)
		radius := size / 6 / frame
		fy := barrelTop - radius
		for y := -radius; y <= radius; y++ {
			for x := -radius; x <= radius; x++ {
				if x*x+y*y <= radius*radius {
					set(cx+x, fy+y, fc)
				}
			}
		}
	}
	return mustTexture(size, size, pixels)
}

// noise is a cheap deterministic hash for texture grain.
func noise(x, y int) uint32 {
	h := uint32(x)*374761393 + uint32(y)*668265263
	h = (h ^ (h >> 13)) * 1274126177
	return h ^ (h >> 16)
}

func mustTexture(w, h int, pixels []uint32) *engine.Texture {
	t, err := engine.NewTexture(w, h, pixels)
	if err != nil {
		panic(err)
	}
	return t
}
