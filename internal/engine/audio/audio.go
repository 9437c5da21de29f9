// Package audio plays looping background music.
package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/logger"
)

// DefaultSampleRate is the rate the speaker is opened at.
const DefaultSampleRate = beep.SampleRate(44100)

// ErrNotInitialized is returned when playing before Init succeeded.
var ErrNotInitialized = errors.New("audio not initialized")

// Manager owns the speaker and the music track. The speaker goroutine reads
// the track while the main thread changes pause, volume and mute state.
type Manager struct {
	mu  sync.RWMutex
	log *zap.Logger

	initialized bool
	sampleRate  beep.SampleRate

	streamer beep.StreamSeekCloser
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	track    string

	// Volume is 0.0 to 1.0.
	level  float64
	muted  bool
	paused bool
}

// New returns a manager with the given volume. The speaker is not opened
// until Init.
func New(volume float64, muted bool) *Manager {
	return &Manager{
		log:   logger.Named("audio"),
		level: clamp(volume, 0, 1),
		muted: muted,
	}
}

// Init opens the speaker.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	m.sampleRate = DefaultSampleRate
	if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	m.initialized = true
	return nil
}

// Close stops the music and releases the track.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		speaker.Clear()
	}
	m.releaseTrack()
	m.initialized = false
}

// PlayMusic decodes WAV data and loops it until replaced or closed.
func (m *Manager) PlayMusic(name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return ErrNotInitialized
	}

	streamer, looped, err := decodeLoop(data, m.sampleRate)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	speaker.Clear()
	m.releaseTrack()

	m.streamer = streamer
	m.ctrl = &beep.Ctrl{Streamer: looped, Paused: m.paused}
	m.volume = &effects.Volume{Streamer: m.ctrl, Base: 10}
	m.track = name
	m.applyVolume()

	speaker.Play(m.volume)
	m.log.Info("music started", zap.String("track", name))
	return nil
}

// decodeLoop decodes WAV data into an endless stream at sampleRate.
func decodeLoop(data []byte, sampleRate beep.SampleRate) (beep.StreamSeekCloser, beep.Streamer, error) {
	streamer, format, err := wav.Decode(io.NopCloser(bytes.NewReader(data)))
	if err != nil {
		return nil, nil, fmt.Errorf("decode wav: %w", err)
	}
	if streamer.Len() == 0 {
		streamer.Close()
		return nil, nil, errors.New("decode wav: no samples")
	}

	var s beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}
	return streamer, &loopStreamer{source: streamer, resampled: s}, nil
}

func (m *Manager) releaseTrack() {
	if m.streamer != nil {
		m.streamer.Close()
	}
	m.streamer = nil
	m.ctrl = nil
	m.volume = nil
	m.track = ""
}

// SetPaused pauses or resumes the music. The state is kept when no track
// is loaded and applies to the next one.
func (m *Manager) SetPaused(paused bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.paused = paused
	if m.ctrl != nil {
		speaker.Lock()
		m.ctrl.Paused = paused
		speaker.Unlock()
	}
}

// Paused reports whether the music is paused.
func (m *Manager) Paused() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.paused
}

// SetVolume sets the music volume (0.0 to 1.0).
func (m *Manager) SetVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.level = clamp(vol, 0, 1)
	m.applyVolume()
}

// Volume returns the music volume.
func (m *Manager) Volume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.level
}

// SetMuted silences the music without pausing it.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
	m.applyVolume()
}

// Muted reports whether the music is muted.
func (m *Manager) Muted() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.muted
}

// Track returns the name of the loaded track, or "".
func (m *Manager) Track() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.track
}

func (m *Manager) applyVolume() {
	if m.volume == nil {
		return
	}
	silent := m.muted || m.level <= 0
	db := volumeToDb(m.level)
	if m.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	m.volume.Silent = silent
	// Base 10 makes Volume a power of ten on amplitude.
	m.volume.Volume = db / 20
}

// volumeToDb converts a 0-1 volume to decibels: 1 is 0dB, 0.5 about -6dB.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100
	}
	return 20 * math.Log10(vol)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// loopStreamer restarts its source whenever it runs dry.
type loopStreamer struct {
	source    beep.StreamSeeker
	resampled beep.Streamer
}

func (l *loopStreamer) Stream(samples [][2]float64) (int, bool) {
	filled := 0
	for filled < len(samples) {
		n, ok := l.resampled.Stream(samples[filled:])
		filled += n
		if !ok || n == 0 {
			if err := l.source.Seek(0); err != nil {
				return filled, filled > 0
			}
		}
	}
	return filled, true
}

func (l *loopStreamer) Err() error {
	return l.source.Err()
}
