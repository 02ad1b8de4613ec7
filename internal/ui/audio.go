package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundType represents different sound effects.
type SoundType int

const (
	SoundPlace SoundType = iota
	SoundFlip
	SoundInvalid
	SoundGameEnd
	SoundMatchEnd
)

const (
	sampleRate = 44100
)

// AudioManager handles sound effect playback.
type AudioManager struct {
	context *audio.Context
	sounds  map[SoundType][]byte
	enabled bool
	volume  float64
}

// NewAudioManager creates a new audio manager.
func NewAudioManager() *AudioManager {
	am := &AudioManager{
		context: audio.NewContext(sampleRate),
		sounds:  make(map[SoundType][]byte),
		enabled: true,
		volume:  0.5,
	}
	am.generateSounds()
	return am
}

// generateSounds creates procedural sounds for each event type.
func (am *AudioManager) generateSounds() {
	// Disc set down on felt
	am.sounds[SoundPlace] = synth(0.08, 0.3, func(t, _ float64) float64 {
		return math.Sin(2*math.Pi*420*t) * math.Exp(-t*35)
	})

	// Flips: a rising ripple of clicks
	am.sounds[SoundFlip] = synth(0.18, 0.35, func(t, progress float64) float64 {
		freq := 520 + 380*progress
		pulse := math.Exp(-math.Mod(t, 0.045) * 60)
		return math.Sin(2*math.Pi*freq*t) * pulse
	})

	// Invalid: low buzz
	am.sounds[SoundInvalid] = synth(0.1, 0.3, func(t, progress float64) float64 {
		wave := math.Sin(2*math.Pi*150*t) + 0.3*math.Sin(4*math.Pi*150*t)
		return wave * (1 - progress) * 0.5
	})

	// Game end: C major chord
	am.sounds[SoundGameEnd] = synth(0.4, 0.5, chord(261.63, 329.63, 392.00))

	// Match end: the chord an octave up, held longer
	am.sounds[SoundMatchEnd] = synth(0.8, 0.5, chord(523.25, 659.25, 783.99, 1046.50))
}

// synth renders duration seconds of a waveform as stereo 16-bit PCM.
// wave receives the time in seconds and the progress in [0, 1).
func synth(duration, amplitude float64, wave func(t, progress float64) float64) []byte {
	samples := int(sampleRate * duration)
	data := make([]byte, samples*4) // stereo 16-bit

	for i := 0; i < samples; i++ {
		t := float64(i) / sampleRate
		sample := wave(t, t/duration) * amplitude
		sample = math.Max(-1, math.Min(1, sample))

		val := int16(sample * 32767)
		// Write stereo samples (left and right)
		data[i*4] = byte(val)
		data[i*4+1] = byte(val >> 8)
		data[i*4+2] = byte(val)
		data[i*4+3] = byte(val >> 8)
	}
	return data
}

// chord returns a waveform of equal-weight sines with a fade in and out.
func chord(freqs ...float64) func(t, progress float64) float64 {
	return func(t, progress float64) float64 {
		var envelope float64
		switch {
		case progress < 0.1:
			envelope = progress / 0.1
		case progress > 0.7:
			envelope = (1.0 - progress) / 0.3
		default:
			envelope = 1.0
		}

		sample := 0.0
		for _, freq := range freqs {
			sample += math.Sin(2 * math.Pi * freq * t)
		}
		return sample / float64(len(freqs)) * envelope
	}
}

// Play plays a sound effect.
func (am *AudioManager) Play(sound SoundType) {
	if !am.enabled {
		return
	}

	data, ok := am.sounds[sound]
	if !ok {
		return
	}

	// Create a new player for each play (allows overlapping sounds)
	player := am.context.NewPlayerFromBytes(data)
	player.SetVolume(am.volume)
	player.Play()
}

// SetEnabled enables or disables audio.
func (am *AudioManager) SetEnabled(enabled bool) {
	am.enabled = enabled
}

// IsEnabled returns whether audio is enabled.
func (am *AudioManager) IsEnabled() bool {
	return am.enabled
}
