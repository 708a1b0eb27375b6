package assets

import (
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Sound is a preloaded, fully buffered audio clip. Play is fire-and-forget:
// the clip is handed to the speaker mixer and forgotten, with no completion
// callback.
type Sound struct {
	buf   *beep.Buffer
	muted bool
}

// Play queues the clip on the speaker mixer. Muted handles (no audio
// device, or --mute) are silent no-ops so sketches never branch on audio
// availability.
func (s *Sound) Play() {
	if s.muted || s.buf == nil {
		return
	}
	shot := s.buf.Streamer(0, s.buf.Len())
	speaker.Play(shot)
}

// Duration returns the clip length in samples.
func (s *Sound) Duration() int {
	if s.buf == nil {
		return 0
	}
	return s.buf.Len()
}
