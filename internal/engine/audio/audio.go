// Package audio plays the synthesized dice sounds.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// Manager handles sound effect playback.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate

	// Volume settings (0.0 to 1.0)
	masterVolume float64
	sfxVolLevel  float64
	muted        bool

	// Mixer for concurrent sound effects
	sfxMixer *beep.Mixer
}

// New creates a new audio manager.
func New() *Manager {
	return &Manager{
		masterVolume: 1.0,
		sfxVolLevel:  1.0,
		sampleRate:   DefaultSampleRate,
		sfxMixer:     &beep.Mixer{},
	}
}

// Init opens the speaker and starts the mixer.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(m.sfxMixer)

	m.initialized = true
	return nil
}

// Close shuts down the audio system.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	m.initialized = false
}

// IsInitialized returns whether the audio system is initialized.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// SetMasterVolume sets the master volume (0.0 to 1.0).
func (m *Manager) SetMasterVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.masterVolume = clamp(vol, 0, 1)
}

// SetSFXVolume sets the SFX volume (0.0 to 1.0).
func (m *Manager) SetSFXVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sfxVolLevel = clamp(vol, 0, 1)
}

// SetMuted silences all new sounds.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
}

// GetMasterVolume returns the master volume.
func (m *Manager) GetMasterVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.masterVolume
}

// GetSFXVolume returns the SFX volume.
func (m *Manager) GetSFXVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sfxVolLevel
}

// volumeToDb converts a 0-1 volume to decibels: 1 -> 0dB, 0.5 -> ~-6dB.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100
	}
	return 20 * math.Log10(vol)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// PlayRattle plays one short clack of dice hitting the table.
// strength scales loudness and pitch, 0..1.
func (m *Manager) PlayRattle(strength float64) {
	m.play(func(sr beep.SampleRate) (beep.Streamer, error) {
		strength = clamp(strength, 0, 1)
		return beep.Take(sr.N(25*time.Millisecond), newClackGenerator(sr, 0.25+0.35*strength, 1800+1400*strength)), nil
	})
}

// PlaySettle plays the two-note chime once a roll lands.
func (m *Manager) PlaySettle() {
	m.play(func(sr beep.SampleRate) (beep.Streamer, error) {
		lo, err := generators.SineTone(sr, 660)
		if err != nil {
			return nil, err
		}
		hi, err := generators.SineTone(sr, 990)
		if err != nil {
			return nil, err
		}
		return beep.Seq(
			fade(sr, beep.Take(sr.N(70*time.Millisecond), lo), 0.2),
			fade(sr, beep.Take(sr.N(120*time.Millisecond), hi), 0.2),
		), nil
	})
}

// play builds a streamer and hands it to the mixer at the current SFX volume.
func (m *Manager) play(build func(beep.SampleRate) (beep.Streamer, error)) {
	m.mu.RLock()
	initialized := m.initialized
	muted := m.muted
	vol := m.masterVolume * m.sfxVolLevel
	sr := m.sampleRate
	m.mu.RUnlock()

	if !initialized || muted || vol <= 0 {
		return
	}

	s, err := build(sr)
	if err != nil {
		return
	}

	volStreamer := &effects.Volume{
		Streamer: s,
		Base:     10,
		Volume:   volumeToDb(vol) / 20,
	}

	speaker.Lock()
	m.sfxMixer.Add(volStreamer)
	speaker.Unlock()
}

// fade applies a linear decay envelope from gain to silence over s.
func fade(sr beep.SampleRate, s beep.Streamer, gain float64) beep.Streamer {
	return &envelope{streamer: s, gain: gain, length: sr.N(120 * time.Millisecond)}
}

type envelope struct {
	streamer beep.Streamer
	gain     float64
	pos      int
	length   int
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		k := e.gain * (1 - float64(e.pos)/float64(e.length))
		if k < 0 {
			k = 0
		}
		samples[i][0] *= k
		samples[i][1] *= k
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error {
	return e.streamer.Err()
}
