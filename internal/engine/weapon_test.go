package engine

import "testing"

func TestWeaponAnimation(t *testing.T) {
	w := NewWeapon()
	if w.State() != WeaponIdle || w.Frame() != 0 || w.SpriteName() != "shoot_0" {
		t.Fatalf("new weapon = %v frame %d", w.State(), w.Frame())
	}
	w.Update(1)
	if w.Frame() != 0 {
		t.Errorf("idle Update moved frame to %d", w.Frame())
	}

	if !w.StartShooting() {
		t.Fatal("StartShooting() = false from idle")
	}
	if w.StartShooting() {
		t.Error("StartShooting() = true while already shooting")
	}
	if w.State() != WeaponShooting || w.Frame() != 1 {
		t.Fatalf("after StartShooting: %v frame %d", w.State(), w.Frame())
	}

	w.Update(shootFrameTime / 2)
	if w.Frame() != 1 {
		t.Errorf("half a frame time advanced to frame %d", w.Frame())
	}
	w.Update(shootFrameTime / 2)
	if w.Frame() != 2 {
		t.Errorf("full frame time: frame = %d, want 2", w.Frame())
	}

	for want := 3; want <= ShootAnimationFrames; want++ {
		w.Update(shootFrameTime)
		if w.Frame() != want || w.State() != WeaponShooting {
			t.Fatalf("frame = %d (%v), want %d shooting", w.Frame(), w.State(), want)
		}
		if w.SpriteName() != SpriteName(want) {
			t.Errorf("SpriteName() = %q", w.SpriteName())
		}
	}

	w.Update(shootFrameTime)
	if w.State() != WeaponIdle || w.Frame() != 0 {
		t.Errorf("after last frame: %v frame %d, want idle frame 0", w.State(), w.Frame())
	}
	if !w.StartShooting() {
		t.Error("StartShooting() = false after the animation finished")
	}
}

func TestWeaponStateString(t *testing.T) {
	if WeaponIdle.String() != "idle" || WeaponShooting.String() != "shooting" {
		t.Errorf("String() = %q, %q", WeaponIdle, WeaponShooting)
	}
}
