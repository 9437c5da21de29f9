package debug

import (
	"fmt"
	"runtime"
	"time"
)

// FrameStats averages frame times over half-second windows and samples
// memory every two seconds.
type FrameStats struct {
	fps       float64
	frameTime time.Duration

	window     time.Duration
	frames     int
	memWindow  time.Duration
	memSampled bool
	mem        runtime.MemStats
}

// Update records one frame that took dt.
func (s *FrameStats) Update(dt time.Duration) {
	s.frameTime = dt
	s.frames++
	s.window += dt
	if s.window >= 500*time.Millisecond {
		s.fps = float64(s.frames) / s.window.Seconds()
		s.frames = 0
		s.window = 0
	}

	s.memWindow += dt
	if !s.memSampled || s.memWindow >= 2*time.Second {
		runtime.ReadMemStats(&s.mem)
		s.memSampled = true
		s.memWindow = 0
	}
}

// FPS returns the frame rate of the last complete window.
func (s *FrameStats) FPS() float64 {
	return s.fps
}

// FrameTime returns the duration of the last frame.
func (s *FrameStats) FrameTime() time.Duration {
	return s.frameTime
}

// HeapAlloc returns the sampled heap size in bytes.
func (s *FrameStats) HeapAlloc() uint64 {
	return s.mem.HeapAlloc
}

// FormatBytes formats a byte count for display.
func FormatBytes(bytes uint64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)

	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.2f GB", float64(bytes)/GB)
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/MB)
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/KB)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
