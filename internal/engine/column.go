package engine

// columnSpan is the on-screen extent of one wall slice.
type columnSpan struct {
	lineHeight int
	drawStart  int
	drawEnd    int // inclusive
	// ratio is the uncapped projected height over the screen height.
	ratio float64
}

func (r *Renderer) project(dist float64) columnSpan {
	h := r.cfg.ScreenHeight
	projected := float64(h) / dist
	capped := projected
	if limit := float64(h * maxLineHeightFactor); capped > limit {
		capped = limit
	}
	lineHeight := int(capped)
	if lineHeight < 1 {
		lineHeight = 1
	}
	drawStart := -lineHeight/2 + h/2
	if drawStart < 0 {
		drawStart = 0
	}
	drawEnd := lineHeight/2 + h/2
	if drawEnd > h-1 {
		drawEnd = h - 1
	}
	return columnSpan{
		lineHeight: lineHeight,
		drawStart:  drawStart,
		drawEnd:    drawEnd,
		ratio:      projected / float64(h),
	}
}

func (r *Renderer) drawColumn(x int, hit *RaycastResult) {
	col := r.project(hit.WallDistance)
	if r.cfg.UseTextures && r.textures != nil && hit.WallType > 0 {
		if tex, ok := r.textures.Wall(hit.WallType); ok {
			r.drawTexturedColumn(x, hit, col, tex)
			return
		}
	}
	r.drawFlatColumn(x, hit, col)
}

func (r *Renderer) drawFlatColumn(x int, hit *RaycastResult, col columnSpan) {
	wall := r.cfg.wallColor(hit.WallType)
	if hit.Side == SideY {
		wall = shade(wall)
	}
	r.fb.FillColumn(x, col.drawStart, col.drawEnd, r.cfg.CeilingColor, wall, r.cfg.FloorColor)
}

// drawTexturedColumn maps one texture column onto the wall band. Past
// lodSkipRatio screen heights it fills runs from sparser samples; past
// lodSolidRatio it fills the band with the texture's vertical midpoint.
func (r *Renderer) drawTexturedColumn(x int, hit *RaycastResult, col columnSpan, tex *Texture) {
	h := r.cfg.ScreenHeight
	if col.drawStart > 0 {
		r.fb.DrawVerticalLine(x, 0, col.drawStart-1, r.cfg.CeilingColor)
	}
	if col.drawEnd < h-1 {
		r.fb.DrawVerticalLine(x, col.drawEnd+1, h-1, r.cfg.FloorColor)
	}

	texX := int(hit.WallX*float64(tex.Width())) % tex.Width()
	texCol := tex.Column(texX)
	dark := hit.Side == SideY

	switch {
	case col.ratio >= lodSolidRatio:
		c := texCol[tex.Height()/2]
		if dark {
			c = shade(c)
		}
		r.fb.FillVerticalBlock(x, col.drawStart, col.drawEnd, c)
	case col.ratio > lodSkipRatio:
		r.sampleColumn(x, col, texCol, int(col.ratio/lodSkipRatio), dark)
	default:
		r.sampleColumn(x, col, texCol, 1, dark)
	}
}

// sampleColumn walks the texture in 16.16 fixed point, taking one sample
// every skip rows and repeating it over the run.
func (r *Renderer) sampleColumn(x int, col columnSpan, texCol []uint32, skip int, dark bool) {
	texH := len(texCol)
	half := r.cfg.ScreenHeight / 2
	step := (texH << 16) / col.lineHeight
	pos := (col.drawStart - half + col.lineHeight/2) * step
	runStep := step * skip

	for y := col.drawStart; y <= col.drawEnd; y += skip {
		c := texCol[clampInt(pos>>16, 0, texH-1)]
		if dark {
			c = shade(c)
		}
		end := y + skip - 1
		if end > col.drawEnd {
			end = col.drawEnd
		}
		for fy := y; fy <= end; fy++ {
			r.fb.setPixelUnchecked(x, fy, c)
		}
		pos += runStep
	}
}

// shade halves each colour channel and keeps alpha.
func shade(c uint32) uint32 {
	return c&0xFF000000 | (c>>1)&0x007F7F7F
}
