package screen

import (
	"encoding/binary"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	sampleRate = 44100
	blipHz     = 880
	blipLength = sampleRate / 12
)

// Sfx plays the arcade's blip through Ebiten's audio context.
type Sfx struct {
	player *audio.Player
}

// NewSfx creates the audio context. Only one may exist per process.
func NewSfx() *Sfx {
	ctx := audio.NewContext(sampleRate)
	return &Sfx{player: ctx.NewPlayerFromBytes(blipPCM())}
}

// Blip restarts the effect. Playback failures are ignored.
func (s *Sfx) Blip() {
	if s == nil || s.player == nil {
		return
	}
	if err := s.player.SetPosition(0); err != nil {
		return
	}
	s.player.Play()
}

// blipPCM renders a decaying square wave as 16-bit little endian stereo.
func blipPCM() []byte {
	buf := make([]byte, blipLength*4)
	for i := 0; i < blipLength; i++ {
		phase := math.Mod(float64(i)*blipHz/sampleRate, 1)
		amp := 0.25 * (1 - float64(i)/blipLength)
		v := amp
		if phase >= 0.5 {
			v = -amp
		}
		sample := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], sample)
		binary.LittleEndian.PutUint16(buf[i*4+2:], sample)
	}
	return buf
}
