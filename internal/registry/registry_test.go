package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

type stubGame struct{}

func (stubGame) ID() string { return "stub" }
func (stubGame) Title() string { return "Stub" }
func (stubGame) Reset(core.RuntimeConfig) {}
func (stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (stubGame) Render(*core.Screen) {}
func (stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-ok", func() (Game, error) { return stubGame{}, nil })

	g, err := Create("stub-ok")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "stub" {
		t.Errorf("ID() = %q, expected stub", g.ID())
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does-not-exist"); err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestCreateFactoryError(t *testing.T) {
	errBoom := errors.New("boom")
	Register("stub-err", func() (Game, error) { return nil, errBoom })

	_, err := Create("stub-err")
	if !errors.Is(err, errBoom) {
		t.Errorf("Create() error = %v, expected wrapped %v", err, errBoom)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() (Game, error) { return stubGame{}, nil })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub-dup", func() (Game, error) { return stubGame{}, nil })
}
