// Package assets implements the preload barrier: every image and sound
// named by the manifest is resolved before the first simulation tick, so
// sketches never see a missing handle mid-run. Load failures are startup
// errors that abort entering the tick loop; an absent audio device merely
// mutes playback.
package assets

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-sketch/internal/core"
)

//go:embed defaults
var defaultsFS embed.FS

// sampleRate is the speaker mixer rate; decoded clips are resampled to it.
const sampleRate = beep.SampleRate(48000)

// speakerReady tracks whether speaker.Init already ran; beep's speaker is
// process-global and must be initialized once.
var speakerReady bool

// Manifest lists every asset the platform preloads.
type Manifest struct {
	Images []ManifestEntry `yaml:"images"`
	Sounds []ManifestEntry `yaml:"sounds"`
}

// ManifestEntry names one asset and its path relative to the asset root.
type ManifestEntry struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// Options configures a Library before preload.
type Options struct {
	// Dir overrides the embedded defaults with an on-disk asset directory
	// containing its own manifest.yaml.
	Dir string

	// Muted disables audio output. Sounds still load and validate.
	Muted bool

	// Logger receives preload diagnostics. Nil means a default stderr logger.
	Logger *log.Logger
}

// Library holds every preloaded asset. It implements core.Assets.
type Library struct {
	images map[string]*Sprite
	sounds map[string]*Sound
	muted  bool
	logger *log.Logger
}

// NewLibrary creates an empty library. Call Preload before handing it to
// the platform.
func NewLibrary(opts Options) *Library {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "assets"})
	}
	return &Library{
		images: make(map[string]*Sprite),
		sounds: make(map[string]*Sound),
		muted:  opts.Muted,
		logger: logger,
	}
}

// Preload is the blocking barrier gating simulation start: it loads every
// manifest entry and initializes the speaker. Any load failure returns an
// error and the tick loop must not start.
func (l *Library) Preload(opts Options) error {
	manifest, err := l.readManifest(opts.Dir)
	if err != nil {
		return err
	}

	if !l.muted {
		l.initSpeaker()
	}

	for _, entry := range manifest.Images {
		sprite, err := l.LoadImage(opts.Dir, entry.Path)
		if err != nil {
			return fmt.Errorf("assets: preload image %q: %w", entry.Name, err)
		}
		l.images[entry.Name] = sprite
	}

	for _, entry := range manifest.Sounds {
		sound, err := l.LoadSound(opts.Dir, entry.Path)
		if err != nil {
			return fmt.Errorf("assets: preload sound %q: %w", entry.Name, err)
		}
		l.sounds[entry.Name] = sound
	}

	return nil
}

// initSpeaker starts the process-global speaker. A failure (typically no
// audio device on the host) degrades to muted playback instead of aborting,
// since only load failures are fatal.
func (l *Library) initSpeaker() {
	if speakerReady {
		return
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		l.logger.Warn("no audio device, sound muted", "error", err)
		l.muted = true
		return
	}
	speakerReady = true
}

// readManifest loads manifest.yaml from the asset directory, or the
// embedded default manifest when no directory is given.
func (l *Library) readManifest(dir string) (*Manifest, error) {
	data, err := l.readFile(dir, "manifest.yaml")
	if err != nil {
		return nil, fmt.Errorf("assets: cannot read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("assets: cannot parse manifest: %w", err)
	}
	return &m, nil
}

// readFile resolves a manifest-relative path against the asset directory,
// falling back to the embedded defaults.
func (l *Library) readFile(dir, path string) ([]byte, error) {
	if dir != "" {
		return os.ReadFile(filepath.Join(dir, path))
	}
	return defaultsFS.ReadFile("defaults/" + path)
}

// LoadImage loads and parses one text-art sprite.
func (l *Library) LoadImage(dir, path string) (*Sprite, error) {
	data, err := l.readFile(dir, path)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot read image %s: %w", path, err)
	}

	sprite := ParseSprite(string(data))
	if sprite.Frames() == 0 {
		return nil, fmt.Errorf("assets: image %s has no frames", path)
	}
	return sprite, nil
}

// LoadSound loads one audio clip: WAV files are decoded and resampled via
// beep, .tone descriptors are synthesized.
func (l *Library) LoadSound(dir, path string) (*Sound, error) {
	data, err := l.readFile(dir, path)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot read sound %s: %w", path, err)
	}

	var buf *beep.Buffer
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		buf, err = decodeWAV(data)
	case ".tone":
		buf, err = renderTone(data, sampleRate)
	default:
		err = fmt.Errorf("assets: unsupported sound format %s", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("assets: cannot load sound %s: %w", path, err)
	}

	return &Sound{buf: buf, muted: l.muted}, nil
}

// decodeWAV decodes a WAV clip and resamples it to the speaker rate.
func decodeWAV(data []byte) (*beep.Buffer, error) {
	streamer, format, err := wav.Decode(bytesReadCloser{strings.NewReader(string(data))})
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}
	defer streamer.Close()

	target := beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}
	buf := beep.NewBuffer(target)
	if format.SampleRate != sampleRate {
		buf.Append(beep.Resample(4, format.SampleRate, sampleRate, streamer))
	} else {
		buf.Append(streamer)
	}
	return buf, nil
}

// bytesReadCloser adapts an in-memory reader to the ReadCloser wav.Decode
// expects.
type bytesReadCloser struct {
	*strings.Reader
}

func (bytesReadCloser) Close() error { return nil }

// Image returns a preloaded image by name, or nil if the manifest never
// named it. After a successful Preload, sketches can rely on non-nil
// handles for every manifest entry.
func (l *Library) Image(name string) core.Image {
	if s, ok := l.images[name]; ok {
		return s
	}
	return nil
}

// Sound returns a preloaded sound by name, or nil if unknown.
func (l *Library) Sound(name string) core.Sound {
	if s, ok := l.sounds[name]; ok {
		return s
	}
	return nil
}

// Ensure Library satisfies the collaborator interface sketches consume.
var _ core.Assets = (*Library)(nil)
