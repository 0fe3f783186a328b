package engine

// drawWeapon blits the current weapon sprite, integer-upscaled, at the
// bottom centre of the frame. Pixels equal to the transparent key are skipped.
func (r *Renderer) drawWeapon(w *Weapon) {
	sprite, ok := r.textures.Sprite(w.SpriteName())
	if !ok {
		return
	}
	scale := r.weaponScale(sprite)
	x0 := (r.cfg.ScreenWidth - sprite.Width()*scale) / 2
	y0 := r.cfg.ScreenHeight - sprite.Height()*scale
	key := r.cfg.SpriteTransparent

	for sy := 0; sy < sprite.Height(); sy++ {
		py := y0 + sy*scale
		for sx := 0; sx < sprite.Width(); sx++ {
			c := sprite.At(sx, sy)
			if c == key {
				continue
			}
			px := x0 + sx*scale
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					r.fb.SetPixel(px+dx, py+dy, c)
				}
			}
		}
	}
}

func (r *Renderer) weaponScale(sprite *Texture) int {
	if r.cfg.WeaponScale > 0 {
		return r.cfg.WeaponScale
	}
	scale := (r.cfg.ScreenHeight / 2) / sprite.Height()
	if scale < 1 {
		scale = 1
	}
	return scale
}
