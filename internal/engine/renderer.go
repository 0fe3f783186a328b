package engine

// Renderer casts one ray per screen column and composites the result into
// its FrameBuffer. The screen is split into StripCount vertical strips that
// are rendered in parallel; each strip only reads the player snapshot, the
// map and the sealed texture registry, and only writes its own columns.
type Renderer struct {
	cfg      Config
	textures *TextureManager
	fb       *FrameBuffer
	strips   []span
	pool     *stripPool
}

// NewRenderer allocates the frame buffer and starts the strip workers.
// textures may be nil, which renders flat colours only; otherwise it must
// already be sealed.
func NewRenderer(cfg Config, textures *TextureManager) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if textures != nil && !textures.Sealed() {
		return nil, ErrRegistryUnsealed
	}
	r := &Renderer{
		cfg:      cfg,
		textures: textures,
		fb:       NewFrameBuffer(cfg.ScreenWidth, cfg.ScreenHeight),
		strips:   partitionStrips(cfg.ScreenWidth, cfg.StripCount),
	}
	if len(r.strips) > 1 {
		r.pool = newStripPool(len(r.strips))
	}
	Logger().Debug("renderer ready",
		"width", cfg.ScreenWidth, "height", cfg.ScreenHeight,
		"strips", len(r.strips), "textures", cfg.UseTextures && textures != nil)
	return r, nil
}

func (r *Renderer) FrameBuffer() *FrameBuffer { return r.fb }
func (r *Renderer) Config() Config            { return r.cfg }

// CastRay traces the ray for one screen column.
func (r *Renderer) CastRay(screenX int, p Player, m *Map) RaycastResult {
	return castRay(cameraX(screenX, r.cfg.ScreenWidth), &p, m, r.cfg.MinWallDistance)
}

// Render draws a complete frame and returns the renderer's frame buffer,
// which stays valid until the next call. weapon may be nil.
func (r *Renderer) Render(p Player, m *Map, weapon *Weapon) *FrameBuffer {
	r.fb.Clear(ClearColor)
	if r.pool == nil {
		for _, s := range r.strips {
			r.renderStrip(s, &p, m)
		}
	} else {
		r.pool.run(func(i int) {
			r.renderStrip(r.strips[i], &p, m)
		})
	}
	if weapon != nil && r.cfg.ShowWeapon && r.textures != nil {
		r.drawWeapon(weapon)
	}
	return r.fb
}

func (r *Renderer) renderStrip(s span, p *Player, m *Map) {
	for x := s.start; x < s.end; x++ {
		hit := castRay(cameraX(x, r.cfg.ScreenWidth), p, m, r.cfg.MinWallDistance)
		r.drawColumn(x, &hit)
	}
}

// Close stops the strip workers. Render keeps working afterwards, serially.
func (r *Renderer) Close() {
	if r.pool != nil {
		r.pool.close()
	}
}
