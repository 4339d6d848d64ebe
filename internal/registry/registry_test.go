package registry

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

type stubGame struct {
	opts Options
}

func (s *stubGame) ID() string                           { return "stub" }
func (s *stubGame) Title() string                        { return "Stub" }
func (s *stubGame) Reset(core.RuntimeConfig)             {}
func (s *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s *stubGame) Render(*core.Screen)                  {}
func (s *stubGame) State() core.GameState                { return core.GameState{} }

var errBroken = errors.New("broken config")

func init() {
	Register("zz-stub", "Stub", func(opts Options) (Game, error) {
		return &stubGame{opts: opts}, nil
	})
	Register("zz-broken", "Broken", func(Options) (Game, error) {
		return nil, errBroken
	})
}

func TestCreate(t *testing.T) {
	g, err := Create("zz-stub", Options{Difficulty: config.DifficultyHard})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	stub := g.(*stubGame)
	if stub.opts.Logger == nil {
		t.Error("expected a default logger")
	}
	if stub.opts.Difficulty != config.DifficultyHard {
		t.Errorf("difficulty = %q, expected hard", stub.opts.Difficulty)
	}

	logger := log.New(io.Discard)
	g, _ = Create("zz-stub", Options{Logger: logger})
	if g.(*stubGame).opts.Logger != logger {
		t.Error("explicit logger was replaced")
	}
}

func TestCreateErrors(t *testing.T) {
	if _, err := Create("missing", Options{}); err == nil {
		t.Error("expected an error for an unknown game")
	}

	_, err := Create("zz-broken", Options{})
	if !errors.Is(err, errBroken) {
		t.Errorf("err = %v, expected it to wrap the factory error", err)
	}
}

func TestListSortedAndExists(t *testing.T) {
	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}

	found := false
	for _, info := range list {
		if info.ID == "zz-stub" {
			found = info.Title == "Stub"
		}
	}
	if !found {
		t.Error("zz-stub missing from List")
	}

	if !Exists("zz-stub") || Exists("missing") {
		t.Error("Exists disagrees with registrations")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic on duplicate registration")
		}
	}()
	Register("zz-stub", "Again", nil)
}
