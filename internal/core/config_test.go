package core

import "testing"

func TestRuntimeConfigNormalize(t *testing.T) {
	cfg := RuntimeConfig{}.Normalize()
	if cfg.ScreenW != 80 || cfg.ScreenH != 24 || cfg.TickRate != 60 {
		t.Errorf("Normalize() of zero config = %+v, expected defaults", cfg)
	}

	cfg = RuntimeConfig{ScreenW: 100, ScreenH: 40, TickRate: 1000}.Normalize()
	if cfg.ScreenW != 100 || cfg.ScreenH != 40 {
		t.Errorf("Normalize() should keep explicit sizes, got %dx%d", cfg.ScreenW, cfg.ScreenH)
	}
	if cfg.TickRate != 240 {
		t.Errorf("Normalize() should cap tick rate at 240, got %d", cfg.TickRate)
	}
}
