package debug

import (
	"testing"
	"time"
)

func TestFrameStatsAveragesWindow(t *testing.T) {
	var s FrameStats
	for i := 0; i < 25; i++ {
		s.Update(20 * time.Millisecond)
	}
	if s.FPS() != 50 {
		t.Errorf("fps = %f, want 50", s.FPS())
	}
	if s.FrameTime() != 20*time.Millisecond {
		t.Errorf("frame time = %v", s.FrameTime())
	}
	if s.HeapAlloc() == 0 {
		t.Error("memory not sampled on first frame")
	}
}

func TestFrameStatsBeforeFirstWindow(t *testing.T) {
	var s FrameStats
	s.Update(10 * time.Millisecond)
	if s.FPS() != 0 {
		t.Errorf("fps = %f before a full window", s.FPS())
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{512, "512 B"},
		{2048, "2.00 KB"},
		{3 * 1024 * 1024, "3.00 MB"},
		{5 * 1024 * 1024 * 1024, "5.00 GB"},
	}
	for _, tt := range tests {
		if got := FormatBytes(tt.in); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
