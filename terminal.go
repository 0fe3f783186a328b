package main

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"wolfcast/internal/assets"
	"wolfcast/internal/engine"
)

const terminalHelp = " wasd move  q/e or arrows turn  space fire  p pause  esc quit "

// termAction is a movement key the terminal front-end tracks.
type termAction int

const (
	actNone termAction = iota
	actForward
	actBack
	actLeft
	actRight
	actTurnLeft
	actTurnRight
)

// heldKeys turns key events into held movement. Terminals report repeats
// but no releases, so a key counts as held for a short window after its
// last event.
type heldKeys struct {
	hold time.Duration
	last map[termAction]time.Time
	fire bool
}

func newHeldKeys(hold time.Duration) *heldKeys {
	return &heldKeys{hold: hold, last: make(map[termAction]time.Time)}
}

func (k *heldKeys) press(a termAction, now time.Time) {
	if a != actNone {
		k.last[a] = now
	}
}

func (k *heldKeys) held(a termAction, now time.Time) bool {
	t, ok := k.last[a]
	return ok && now.Sub(t) <= k.hold
}

// intent samples the held keys; a pending shot is consumed.
func (k *heldKeys) intent(now time.Time, turn float64) engine.Intent {
	var in engine.Intent
	if k.held(actForward, now) {
		in.Forward++
	}
	if k.held(actBack, now) {
		in.Forward--
	}
	if k.held(actRight, now) {
		in.Strafe++
	}
	if k.held(actLeft, now) {
		in.Strafe--
	}
	if k.held(actTurnLeft, now) {
		in.Rotation += turn
	}
	if k.held(actTurnRight, now) {
		in.Rotation -= turn
	}
	in.Fire, k.fire = k.fire, false
	return in
}

func termActionFor(ev *tcell.EventKey) termAction {
	switch ev.Key() {
	case tcell.KeyUp:
		return actForward
	case tcell.KeyDown:
		return actBack
	case tcell.KeyLeft:
		return actTurnLeft
	case tcell.KeyRight:
		return actTurnRight
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return actForward
		case 's', 'S':
			return actBack
		case 'a', 'A':
			return actLeft
		case 'd', 'D':
			return actRight
		case 'q', 'Q':
			return actTurnLeft
		case 'e', 'E':
			return actTurnRight
		}
	}
	return actNone
}

// terminalView draws frames as half-block cells: the foreground is the
// upper pixel and the background the lower one.
type terminalView struct {
	screen    tcell.Screen
	mu        sync.Mutex
	frames    int
	fps       int
	window    time.Time
	paused    bool
	statusRow int
}

func (v *terminalView) drawFrame(fb *engine.FrameBuffer) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for row := 0; row < fb.Height()/2; row++ {
		for x := 0; x < fb.Width(); x++ {
			style := tcell.StyleDefault.
				Foreground(termColor(fb.At(x, 2*row))).
				Background(termColor(fb.At(x, 2*row+1)))
			v.screen.SetContent(x, row, '▀', nil, style)
		}
	}

	now := time.Now()
	v.frames++
	if now.Sub(v.window) >= time.Second {
		v.fps, v.frames, v.window = v.frames, 0, now
	}
	v.drawStatus()
	v.screen.Show()
}

func (v *terminalView) setPaused(paused bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.paused = paused
	v.drawStatus()
	v.screen.Show()
}

// resized clears the old layout; the next frame repaints at the new size.
func (v *terminalView) resized(statusRow int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.statusRow = statusRow
	v.screen.Clear()
	v.drawStatus()
	v.screen.Sync()
}

func (v *terminalView) drawStatus() {
	row := v.statusRow
	status := fmt.Sprintf("%s| %d fps", terminalHelp, v.fps)
	if v.paused {
		status = " PAUSED, p to resume " + status
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	cols, _ := v.screen.Size()
	runes := []rune(status)
	for x := 0; x < cols; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		v.screen.SetContent(x, row, r, nil, style)
	}
}

func termColor(c uint32) tcell.Color {
	r, g, b, _ := engine.UnpackARGB(c)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// terminalSound plays the shot through the speaker. It is silent when no
// audio device could be opened.
type terminalSound struct {
	rate   beep.SampleRate
	ok     bool
	buffer *beep.Buffer
}

func newTerminalSound(path string) *terminalSound {
	rate := beep.SampleRate(audioSampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		log.Printf("Audio initialization failed: %v", err)
		return &terminalSound{}
	}
	s := &terminalSound{rate: rate, ok: true}
	if path != "" {
		buf, err := loadBeepBuffer(path, rate)
		if err != nil {
			log.Printf("Shot sound %s: %v", path, err)
		} else {
			s.buffer = buf
		}
	}
	return s
}

func loadBeepBuffer(path string, rate beep.SampleRate) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	defer streamer.Close()
	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	buf.Append(beep.Resample(4, format.SampleRate, rate, streamer))
	return buf, nil
}

func (s *terminalSound) play() {
	if !s.ok {
		return
	}
	if s.buffer != nil {
		speaker.Play(s.buffer.Streamer(0, s.buffer.Len()))
		return
	}
	tone, err := generators.SineTone(s.rate, shotToneHz)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(s.rate.N(shotDuration), tone))
}

func (s *terminalSound) close() {
	if s.ok {
		speaker.Close()
	}
}

// terminalConfig sizes cfg to the terminal: one column per cell and two
// rows per cell, leaving the last line for the status bar.
func terminalConfig(cfg engine.Config, cols, rows int) (engine.Config, error) {
	cfg.ScreenWidth = cols
	cfg.ScreenHeight = (rows - 1) * 2
	if cfg.ScreenWidth < 2 || cfg.ScreenHeight < 2 {
		return cfg, fmt.Errorf("terminal too small: %dx%d", cols, rows)
	}
	cfg.WeaponScale = 0
	return cfg, nil
}

// runTerminal renders into the terminal until esc, ctrl-c or x. Resizing
// the terminal swaps in a renderer of the new size.
func runTerminal(cfg engine.Config, level *assets.Level, textures *engine.TextureManager) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	cols, rows := screen.Size()
	cfg, err = terminalConfig(cfg, cols, rows)
	if err != nil {
		return err
	}
	renderer, err := engine.NewRenderer(cfg, textures)
	if err != nil {
		return err
	}
	defer func() { renderer.Close() }()

	sound := newTerminalSound(*shotSoundFlag)
	defer sound.close()

	view := &terminalView{screen: screen, window: time.Now(), statusRow: rows - 1}
	intents := make(chan engine.Intent, 8)
	state := engine.NewGameState(cfg.NewPlayer(), level.Map)
	eng := engine.NewEngine(state, renderer, engine.NewTickerCadence(terminalFPS), intents, engine.Hooks{
		Frame: view.drawFrame,
		Fired: sound.play,
	})
	eng.Start()
	defer eng.Stop()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	keys := newHeldKeys(terminalKeyHold)
	poll := time.NewTicker(terminalPoll)
	defer poll.Stop()
	paused := false
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'x':
					return nil
				case ev.Rune() == 'p':
					paused = !paused
					eng.SetPaused(paused)
					view.setPaused(paused)
				case ev.Rune() == ' ':
					keys.fire = true
				default:
					keys.press(termActionFor(ev), time.Now())
				}
			case *tcell.EventResize:
				cols, rows := ev.Size()
				resizedCfg, err := terminalConfig(cfg, cols, rows)
				if err != nil {
					log.Printf("Keeping %dx%d view: %v", cfg.ScreenWidth, cfg.ScreenHeight, err)
					screen.Sync()
					continue
				}
				next, err := engine.NewRenderer(resizedCfg, textures)
				if err != nil {
					return err
				}
				eng.SetRenderer(next).Close()
				renderer, cfg = next, resizedCfg
				view.resized(rows - 1)
			}
		case now := <-poll.C:
			engine.SendIntent(intents, keys.intent(now, cfg.RotationSpeed))
		}
	}
}
