package engine

import "image"

// FrameBuffer is the renderer's width*height ARGB target.
//
// Writers that own disjoint column ranges may draw concurrently; nothing
// here allocates or locks.
type FrameBuffer struct {
	width, height int
	pixels        []uint32
}

func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		width:  width,
		height: height,
		pixels: make([]uint32, width*height),
	}
}

func (f *FrameBuffer) Width() int  { return f.width }
func (f *FrameBuffer) Height() int { return f.height }

// Pixels exposes the row-major ARGB store. Consumers must treat it as
// read-only and must not retain it past the frame callback.
func (f *FrameBuffer) Pixels() []uint32 { return f.pixels }

// At returns the pixel at (x, y), or 0 outside the buffer.
func (f *FrameBuffer) At(x, y int) uint32 {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return 0
	}
	return f.pixels[y*f.width+x]
}

func (f *FrameBuffer) Clear(color uint32) {
	for i := range f.pixels {
		f.pixels[i] = color
	}
}

// SetPixel writes one pixel, ignoring coordinates outside the buffer.
func (f *FrameBuffer) SetPixel(x, y int, color uint32) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.pixels[y*f.width+x] = color
}

// setPixelUnchecked is for loops that have already clamped their range.
func (f *FrameBuffer) setPixelUnchecked(x, y int, color uint32) {
	f.pixels[y*f.width+x] = color
}

// DrawVerticalLine fills rows startY..endY (inclusive) of column x.
func (f *FrameBuffer) DrawVerticalLine(x, startY, endY int, color uint32) {
	f.FillVerticalBlock(x, startY, endY, color)
}

// FillVerticalBlock fills rows startY..endY (inclusive) of column x,
// clamped to the buffer.
func (f *FrameBuffer) FillVerticalBlock(x, startY, endY int, color uint32) {
	if x < 0 || x >= f.width {
		return
	}
	if startY < 0 {
		startY = 0
	}
	if endY > f.height-1 {
		endY = f.height - 1
	}
	for i, end := startY*f.width+x, endY*f.width+x; i <= end; i += f.width {
		f.pixels[i] = color
	}
}

// FillColumn paints column x as three bands: ceiling above wallStart, wall
// from wallStart to wallEnd inclusive, floor below.
func (f *FrameBuffer) FillColumn(x, wallStart, wallEnd int, ceiling, wall, floor uint32) {
	if x < 0 || x >= f.width {
		return
	}
	wallStart = clampInt(wallStart, 0, f.height)
	wallEnd = clampInt(wallEnd, -1, f.height-1)

	y := 0
	i := x
	for ; y < wallStart; y++ {
		f.pixels[i] = ceiling
		i += f.width
	}
	for ; y <= wallEnd; y++ {
		f.pixels[i] = wall
		i += f.width
	}
	for ; y < f.height; y++ {
		f.pixels[i] = floor
		i += f.width
	}
}

// WriteRGBA converts the frame to RGBA bytes in dst, which must hold
// width*height*4 bytes.
func (f *FrameBuffer) WriteRGBA(dst []byte) {
	_ = dst[len(f.pixels)*4-1]
	for i, c := range f.pixels {
		base := i * 4
		dst[base] = byte(c >> 16)
		dst[base+1] = byte(c >> 8)
		dst[base+2] = byte(c)
		dst[base+3] = byte(c >> 24)
	}
}

// RGBA returns a copy of the frame as an image.
func (f *FrameBuffer) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	f.WriteRGBA(img.Pix)
	return img
}
