package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-control/engine/camera"
	"github.com/Carmen-Shannon/oxy-control/engine/game_object"
	"github.com/Carmen-Shannon/oxy-control/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
)

func orbitScene(active bool) scene.Scene {
	s := scene.NewScene("orbit", scene.WithActive(active), scene.WithComputeWorkers(1))
	s.Add(game_object.NewGameObject(game_object.WithID(1)))
	s.Add(game_object.NewGameObject(game_object.WithID(2), game_object.WithPosition(0, 0, 10)))
	if _, err := s.Attach(1, camera.NewController(2, camera.AnchorOrbit{Distance: 5}, nil)); err != nil {
		panic(err)
	}
	return s
}

func TestStepOrder(t *testing.T) {
	active := orbitScene(true)
	inactive := orbitScene(false)
	e := NewEngine(WithScene(1, active), WithScene(0, inactive))

	var order []string
	e.SetTickCallback(func(float32) {
		order = append(order, "tick")
		if got := active.Get(2).Position(); got != (mgl32.Vec3{0, 0, 10}) {
			t.Errorf("tick callback failed: expected unresolved camera, got %v", got)
		}
	})
	e.SetResolvedCallback(func(float32) { order = append(order, "resolved") })

	if err := e.Step(1.0 / 60); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if len(order) != 2 || order[0] != "tick" || order[1] != "resolved" {
		t.Errorf("Step failed: expected [tick resolved], got %v", order)
	}
	if got := active.Get(2).Position(); got != (mgl32.Vec3{0, 0, 5}) {
		t.Errorf("Step failed: expected active camera at (0,0,5), got %v", got)
	}
	if got := inactive.Get(2).Position(); got != (mgl32.Vec3{0, 0, 10}) {
		t.Errorf("Step failed: expected inactive scene untouched, got %v", got)
	}
}

func TestStepJoinsFailures(t *testing.T) {
	a := orbitScene(true)
	b := orbitScene(true)
	a.Remove(2)
	b.Remove(2)
	e := NewEngine(WithScene(0, a), WithScene(1, b), WithProfiling(true))

	err := e.Step(1.0 / 60)
	if !errors.Is(err, camera.ErrMissingEntity) {
		t.Fatalf("Step failed: expected ErrMissingEntity, got %v", err)
	}
	if n := countErrors(err); n != 2 {
		t.Errorf("countErrors failed: expected 2, got %d", n)
	}
}

func TestCountErrors(t *testing.T) {
	a, b, c := errors.New("a"), errors.New("b"), errors.New("c")
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"single", a, 1},
		{"nested", errors.Join(a, errors.Join(b, c)), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := countErrors(tt.err); got != tt.want {
				t.Errorf("countErrors failed: expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestRunHeadlessQuit(t *testing.T) {
	s := orbitScene(true)
	e := NewEngine(WithScene(0, s), WithTickRate(500))
	ticked := make(chan struct{}, 1)
	e.SetResolvedCallback(func(float32) {
		select {
		case ticked <- struct{}{}:
		default:
		}
	})

	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()

	select {
	case <-ticked:
	case <-time.After(2 * time.Second):
		t.Fatal("Run failed: no tick")
	}
	e.SetTickRate(250)
	e.Quit()
	e.Quit()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run failed: did not stop after Quit")
	}
	if got := s.Get(2).Position(); got != (mgl32.Vec3{0, 0, 5}) {
		t.Errorf("Run failed: expected camera at (0,0,5), got %v", got)
	}
}

func TestSceneRegistry(t *testing.T) {
	e := NewEngine()
	s := orbitScene(true)
	e.AddScene(3, s)
	if e.Scene(3) != s {
		t.Error("Scene failed: expected registered scene")
	}
	scenes := e.Scenes()
	delete(scenes, 3)
	if e.Scene(3) == nil {
		t.Error("Scenes failed: expected a copy")
	}
	e.RemoveScene(3)
	if e.Scene(3) != nil {
		t.Error("RemoveScene failed: scene still registered")
	}
}
