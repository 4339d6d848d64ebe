// Package audio plays the named sound cues emitted by the simulation.
//
// Cues are rendered once into memory on Load, either from <dir>/<name>.wav
// or from a built-in square-wave recipe, and replayed on Play. Nothing here
// is fatal: a missing device or a bad file only costs the sound.
package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
)

const sampleRate = beep.SampleRate(44100)

var format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// Sink receives streams to play. The speaker is the only production sink.
type Sink interface {
	Play(s beep.Streamer)
}

type speakerSink struct{}

func (speakerSink) Play(s beep.Streamer) { speaker.Play(s) }

// device guards the process-wide speaker. It is opened at most once; a
// failed open is remembered and not retried.
var device struct {
	mu      sync.Mutex
	tried   bool
	opened  bool
	initErr error

	open  func() error
	close func()
}

func init() {
	device.open = func() error {
		return speaker.Init(sampleRate, sampleRate.N(time.Second/30))
	}
	device.close = speaker.Close
}

// initSpeaker opens the output device once per process.
func initSpeaker() error {
	device.mu.Lock()
	defer device.mu.Unlock()
	if !device.tried {
		device.tried = true
		device.initErr = device.open()
		device.opened = device.initErr == nil
	}
	return device.initErr
}

// Bank holds the loaded cues. It is safe for concurrent use; loads run in
// their own goroutines and Play skips cues that are not ready yet.
type Bank struct {
	cfg    config.AudioConfig
	sink   Sink
	logger *log.Logger

	mu    sync.Mutex
	cues  map[string]*beep.Buffer // nil value: still loading
	muted bool

	loads sync.WaitGroup
}

// NewBank opens the speaker and returns a bank playing through it. If the
// device cannot be opened the bank still works but stays silent.
func NewBank(cfg config.AudioConfig, logger *log.Logger) *Bank {
	if logger == nil {
		logger = log.Default()
	}
	var sink Sink = speakerSink{}
	if err := initSpeaker(); err != nil {
		logger.Warn("audio disabled", "err", err)
		sink = nil
	}
	return NewBankWithSink(cfg, sink, logger)
}

// NewBankWithSink returns a bank playing into sink. A nil sink is silent.
func NewBankWithSink(cfg config.AudioConfig, sink Sink, logger *log.Logger) *Bank {
	if logger == nil {
		logger = log.Default()
	}
	return &Bank{
		cfg:    cfg,
		sink:   sink,
		logger: logger,
		cues:   make(map[string]*beep.Buffer),
		muted:  cfg.Muted,
	}
}

// Load starts rendering a cue in the background. Loading a name twice is a
// no-op.
func (b *Bank) Load(name string) {
	b.mu.Lock()
	if _, ok := b.cues[name]; ok {
		b.mu.Unlock()
		return
	}
	b.cues[name] = nil
	b.mu.Unlock()

	b.loads.Add(1)
	go func() {
		defer b.loads.Done()
		buf := b.render(name)

		b.mu.Lock()
		b.cues[name] = buf
		b.mu.Unlock()
		b.logger.Debug("cue loaded", "name", name, "samples", buf.Len())
	}()
}

// Wait blocks until every Load started so far has finished.
func (b *Bank) Wait() {
	b.loads.Wait()
}

// Play starts a cue. Unknown, unloaded and muted cues are skipped.
func (b *Bank) Play(name string) {
	b.mu.Lock()
	buf := b.cues[name]
	muted := b.muted
	b.mu.Unlock()

	if buf == nil || muted || b.sink == nil {
		return
	}
	b.sink.Play(buf.Streamer(0, buf.Len()))
}

// Loaded reports whether a cue is ready to play.
func (b *Bank) Loaded(name string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cues[name] != nil
}

// ToggleMute flips the mute flag and returns the new value.
func (b *Bank) ToggleMute() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.muted = !b.muted
	return b.muted
}

// Muted reports whether playback is muted.
func (b *Bank) Muted() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.muted
}

// render buffers a cue from its WAV file when one is configured, falling
// back to the procedural recipe.
func (b *Bank) render(name string) *beep.Buffer {
	buf := beep.NewBuffer(format)
	if b.cfg.Dir != "" {
		s, err := decodeFile(filepath.Join(b.cfg.Dir, name+".wav"))
		if err == nil {
			buf.Append(s)
			return buf
		}
		b.logger.Warn("cue file unusable, using tone", "name", name, "err", err)
	}
	buf.Append(synth(name, b.cfg.Gain))
	return buf
}

// decodeFile reads a whole WAV file into memory at the bank's sample rate.
func decodeFile(path string) (beep.Streamer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: open %s: %w", path, err)
	}
	stream, fileFormat, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("audio: decode %s: %w", path, err)
	}
	defer stream.Close()

	decoded := beep.NewBuffer(fileFormat)
	decoded.Append(stream)
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("audio: decode %s: %w", path, err)
	}

	var s beep.Streamer = decoded.Streamer(0, decoded.Len())
	if fileFormat.SampleRate != sampleRate {
		s = beep.Resample(4, fileFormat.SampleRate, sampleRate, s)
	}
	return s, nil
}

// Close releases the speaker if a bank opened it.
func Close() {
	device.mu.Lock()
	defer device.mu.Unlock()
	if device.opened {
		device.close()
		device.opened = false
	}
}

// Nop is a silent bank for headless and SSH sessions.
type Nop struct{}

// Load does nothing.
func (Nop) Load(string) {}

// Play does nothing.
func (Nop) Play(string) {}
