package assets

import (
	"strings"
)

// Sprite is a preloaded text-art image with one or more animation frames.
// Frames are rectangular: every row is padded to the widest line.
type Sprite struct {
	frames [][]string
	width  int
	height int
}

// ParseSprite parses sprite source text. Frames are separated by blank
// lines; all frames share the dimensions of the largest one.
func ParseSprite(src string) *Sprite {
	var frames [][]string
	var current []string

	lines := strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				frames = append(frames, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		frames = append(frames, current)
	}

	s := &Sprite{frames: frames}
	for _, f := range frames {
		if len(f) > s.height {
			s.height = len(f)
		}
		for _, row := range f {
			if n := len([]rune(row)); n > s.width {
				s.width = n
			}
		}
	}
	s.pad()
	return s
}

// pad normalizes every frame to width x height.
func (s *Sprite) pad() {
	for i, f := range s.frames {
		for len(f) < s.height {
			f = append(f, "")
		}
		for j, row := range f {
			if n := len([]rune(row)); n < s.width {
				f[j] = row + strings.Repeat(" ", s.width-n)
			}
		}
		s.frames[i] = f
	}
}

// Frames returns the number of animation frames.
func (s *Sprite) Frames() int {
	return len(s.frames)
}

// Frame returns the rows of the i-th frame. The index wraps, so callers
// can pass a running tick counter directly.
func (s *Sprite) Frame(i int) []string {
	if len(s.frames) == 0 {
		return nil
	}
	return s.frames[((i%len(s.frames))+len(s.frames))%len(s.frames)]
}

// Size returns the width and height in cells of a frame.
func (s *Sprite) Size() (w, h int) {
	return s.width, s.height
}
