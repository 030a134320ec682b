// Package assets provides the audio context and the synthesized sound
// clips. There are no binary assets; the clips are generated as raw
// PCM in ebiten's native format.
package assets

import (
	"encoding/binary"
	"math"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 44100

var (
	contextOnce  sync.Once
	audioContext *audio.Context
)

// Context returns the shared audio context, creating it on first use.
func Context() *audio.Context {
	contextOnce.Do(func() {
		audioContext = audio.NewContext(sampleRate)
	})
	return audioContext
}

// SquareWave renders a square wave at freq for the given duration as
// 16-bit little-endian stereo PCM, the format NewPlayerFromBytes
// expects.
func SquareWave(freq float64, duration time.Duration, volume float64) []byte {
	n := int(float64(sampleRate) * duration.Seconds())
	buf := make([]byte, n*4)

	amp := volume * float64(math.MaxInt16)
	period := float64(sampleRate) / freq
	for i := 0; i < n; i++ {
		v := int16(amp)
		if math.Mod(float64(i), period) > period/2 {
			v = int16(-amp)
		}
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}

// NewCollisionPlayer builds the player for the collision cue: a short
// high beep.
func NewCollisionPlayer() *audio.Player {
	return Context().NewPlayerFromBytes(SquareWave(880, 50*time.Millisecond, 0.2))
}
