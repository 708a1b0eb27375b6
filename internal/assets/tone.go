package assets

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"gopkg.in/yaml.v3"
)

// toneSpec describes a synthesized clip. Keeping sounds as tiny text
// descriptors avoids shipping binary audio in the repository; the preload
// barrier renders them into buffers before the first tick.
type toneSpec struct {
	Wave     string  `yaml:"wave"`     // sine, square, triangle, noise
	Freq     float64 `yaml:"freq"`     // Hz, ignored for noise
	Millis   int     `yaml:"ms"`       // clip length
	Volume   float64 `yaml:"volume"`   // 0..1, default 0.2
	SlideTo  float64 `yaml:"slide_to"` // optional end frequency for sweeps
	Envelope float64 `yaml:"envelope"` // decay rate; 0 = flat with edge fade
}

// renderTone parses a .tone descriptor and renders it to a buffer at the
// library's sample rate.
func renderTone(data []byte, sr beep.SampleRate) (*beep.Buffer, error) {
	var spec toneSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("assets: cannot parse tone: %w", err)
	}
	if spec.Millis <= 0 {
		return nil, fmt.Errorf("assets: tone has no duration")
	}
	if spec.Volume <= 0 {
		spec.Volume = 0.2
	}

	total := sr.N(time.Duration(spec.Millis) * time.Millisecond)
	gen := &toneGenerator{spec: spec, sr: sr, total: total}

	format := beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2}
	buf := beep.NewBuffer(format)
	buf.Append(beep.Take(total, gen))
	return buf, nil
}

// toneGenerator streams the synthesized waveform.
type toneGenerator struct {
	spec  toneSpec
	sr    beep.SampleRate
	total int
	pos   int
	noise int64
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}

	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}

		t := float64(g.pos) / float64(g.sr)
		progress := float64(g.pos) / float64(g.total)

		freq := g.spec.Freq
		if g.spec.SlideTo > 0 {
			freq = g.spec.Freq + (g.spec.SlideTo-g.spec.Freq)*progress
		}

		var sample float64
		switch g.spec.Wave {
		case "square":
			if math.Sin(2*math.Pi*freq*t) >= 0 {
				sample = 1
			} else {
				sample = -1
			}
		case "triangle":
			sample = 2*math.Abs(2*(t*freq-math.Floor(t*freq+0.5))) - 1
		case "noise":
			g.noise = (g.noise*1103515245 + 12345) & 0x7fffffff
			sample = float64(g.noise)/float64(0x7fffffff)*2 - 1
		default: // sine
			sample = math.Sin(2 * math.Pi * freq * t)
		}

		sample *= g.spec.Volume * g.envelope(progress, t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

// envelope shapes the clip amplitude: exponential decay when configured,
// otherwise a short linear fade at both edges to avoid clicks.
func (g *toneGenerator) envelope(progress, t float64) float64 {
	if g.spec.Envelope > 0 {
		return math.Exp(-t * g.spec.Envelope)
	}

	const edge = 0.05
	switch {
	case progress < edge:
		return progress / edge
	case progress > 1-edge:
		return (1 - progress) / edge
	default:
		return 1
	}
}

func (g *toneGenerator) Err() error {
	return nil
}
