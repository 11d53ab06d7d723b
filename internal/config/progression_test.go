package config

import "testing"

func TestGapSizeFloor(t *testing.T) {
	p := NewProgression(DefaultFloppyConfig(), 60)

	tests := []struct {
		score, expected int
	}{
		{0, 200},
		{10, 180},
		{40, 120},
		{41, 120},
		{1_000_000, 120},
	}

	for _, tc := range tests {
		if got := p.GapSize(tc.score); got != tc.expected {
			t.Errorf("GapSize(%d) = %d, expected %d", tc.score, got, tc.expected)
		}
	}
}

func TestSpawnInterval(t *testing.T) {
	tests := []struct {
		speed    float64
		expected int
	}{
		{1, 90},
		{2, 45},
		{4, 23}, // 22.5 rounds half away from zero
		{0.5, 180},
		{1000, 1},
	}

	for _, tc := range tests {
		cfg := DefaultFloppyConfig()
		cfg.Obstacles.GameSpeed = tc.speed
		if got := NewProgression(cfg, 60).SpawnInterval(); got != tc.expected {
			t.Errorf("SpawnInterval(speed=%v) = %d, expected %d", tc.speed, got, tc.expected)
		}
	}
}

func TestDurationsFollowTickRate(t *testing.T) {
	p := NewProgression(DefaultFloppyConfig(), 60)
	if p.EffectTicks() != 180 {
		t.Errorf("EffectTicks() = %d, expected 180", p.EffectTicks())
	}
	if p.InvincibleTicks() != 120 {
		t.Errorf("InvincibleTicks() = %d, expected 120", p.InvincibleTicks())
	}
	if p.SlowTickRate() != 30 {
		t.Errorf("SlowTickRate() = %d, expected 30", p.SlowTickRate())
	}

	p = NewProgression(DefaultFloppyConfig(), 0)
	if p.TickRate() != 60 {
		t.Errorf("zero tick rate should fall back to 60, got %d", p.TickRate())
	}
}

func TestReachedLevel(t *testing.T) {
	p := NewProgression(DefaultFloppyConfig(), 60)

	for score, expected := range map[int]bool{0: false, 9: false, 10: true, 11: false, 20: true} {
		if got := p.ReachedLevel(score); got != expected {
			t.Errorf("ReachedLevel(%d) = %v, expected %v", score, got, expected)
		}
	}
}
