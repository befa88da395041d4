package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 48000

	// AudioBufferDuration trades latency for underrun safety
	AudioBufferDuration = 100 * time.Millisecond
)

// Key feedback tones
const (
	ToneDuration = 60 * time.Millisecond
	ToneAttack   = 5 * time.Millisecond
	ToneVolume   = 0.2

	ToneIncrementHz = 880.0
	ToneDecrementHz = 440.0
	ToneQuitHz      = 220.0
)
