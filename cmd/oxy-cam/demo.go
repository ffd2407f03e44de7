package main

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/Carmen-Shannon/oxy-control/common"
	"github.com/Carmen-Shannon/oxy-control/engine"
	"github.com/Carmen-Shannon/oxy-control/engine/camera"
	"github.com/Carmen-Shannon/oxy-control/engine/game_object"
	"github.com/Carmen-Shannon/oxy-control/engine/input"
	"github.com/Carmen-Shannon/oxy-control/engine/physics"
	"github.com/Carmen-Shannon/oxy-control/engine/preset"
	"github.com/Carmen-Shannon/oxy-control/engine/scene"
	"github.com/Carmen-Shannon/oxy-control/engine/window"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/spf13/cobra"
)

const (
	demoPlayer uint64 = 1
	demoCamera uint64 = 2
	demoMarker uint64 = 3

	moveSpeed     = 5
	panScale      = 0.02
	rotateScale   = 0.004
	pointerScale  = 0.15
	reportSeconds = 1
)

var (
	demoMode    string
	demoPresets string
	demoPreset  string
	demoWatch   bool
	demoCapture bool
	demoProfile bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Open a window and drive a camera controller interactively",
	Long: `Demo drives one controller from keyboard and mouse and logs the camera state.

  WASD      move the player           mouse   rotate / pan (per mode)
  8 (hold)  manual pan                9 (hold) manual rotate
  Esc       quit

  anchor mode: 1 yaw  2 plane facing  3 point  4 orbit at current distance  5 toggle target view
  3d mode:     0 manual  1 perspective  2 follow (obstructed by the wall and pillar)
  2d mode:     0 manual  1 follow  Q/E or scroll zoom`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&demoMode, "mode", "anchor", "controller kind: anchor, 3d, 2d")
	demoCmd.Flags().StringVar(&demoPresets, "presets", "", "YAML presets file merged over the built-in presets")
	demoCmd.Flags().StringVar(&demoPreset, "preset", "smooth", "preset applied to the controller")
	demoCmd.Flags().BoolVar(&demoWatch, "watch", false, "reload --presets when the file changes")
	demoCmd.Flags().BoolVar(&demoCapture, "capture", true, "capture the cursor for mouse look")
	demoCmd.Flags().BoolVar(&demoProfile, "profile", false, "log tick statistics")
	rootCmd.AddCommand(demoCmd)
}

// tunable is the configuration surface shared by every controller kind.
type tunable interface {
	preset.Configurable
	YawAxis() mgl32.Vec3
	PitchRange() camera.PitchRange
}

type demo struct {
	scene   scene.Scene
	keys    *input.KeyState
	pointer *input.PointerAccumulator
	scroll  *input.PointerAccumulator
	buf     input.DeltaBuffer
	logger  *slog.Logger

	mode       string
	ctrl       camera.Controller
	ctrl2d     camera.Controller2d
	ctrl3d     camera.Controller3d
	tuned      tunable
	targetView bool
	elapsed    float32
}

func runDemo(cmd *cobra.Command, args []string) error {
	presets := preset.Defaults()
	if demoPresets != "" {
		file, err := preset.Load(demoPresets)
		if err != nil {
			return err
		}
		presets = presets.Merge(file)
	} else if demoWatch {
		return fmt.Errorf("--watch requires --presets")
	}
	p, err := presets.Get(demoPreset)
	if err != nil {
		return err
	}

	d := &demo{
		keys:    input.NewKeyState(),
		pointer: &input.PointerAccumulator{},
		scroll:  &input.PointerAccumulator{},
		logger:  slog.Default().With("mode", demoMode),
		mode:    demoMode,
	}
	if err := d.build(append([]camera.ControllerOption{camera.WithSensitivity(pointerScale)}, p.Options()...)); err != nil {
		return err
	}

	win := window.NewWindow(
		window.WithTitle("oxy-cam demo ("+demoMode+")"),
		window.WithCursorCaptured(demoCapture),
	)
	defer win.Close()
	window.Bind(win, window.Input{Keys: d.keys, Pointer: d.pointer, Scroll: d.scroll})

	if demoWatch {
		w, err := preset.NewWatcher(demoPresets, func(set *preset.Set) {
			if err := preset.Apply(preset.Defaults().Merge(set), preset.Binding{Preset: demoPreset, Controller: d.tuned}); err != nil {
				d.logger.Warn("preset not applied", "preset", demoPreset, "err", err)
			}
		})
		if err != nil {
			return err
		}
		defer w.Close()
	}

	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithScene(0, d.scene),
		engine.WithTickRate(60),
		engine.WithProfiling(demoProfile),
	)
	eng.SetTickCallback(d.tick)
	eng.SetResolvedCallback(d.report)

	d.logger.Info("demo started", "preset", demoPreset)
	eng.Run()
	return nil
}

// build creates the scene, the obstacles and the controller for d.mode.
func (d *demo) build(opts []camera.ControllerOption) error {
	d.scene = scene.NewScene("demo", scene.WithActive(true), scene.WithLogger(d.logger))
	d.scene.Add(game_object.NewGameObject(game_object.WithID(demoPlayer), game_object.WithName("player"), game_object.WithPosition(0, 1, 0)))
	d.scene.Add(game_object.NewGameObject(game_object.WithID(demoMarker), game_object.WithName("marker"), game_object.WithPosition(6, 1, -4)))

	var err error
	switch d.mode {
	case "anchor":
		d.scene.Add(game_object.NewGameObject(game_object.WithID(demoCamera), game_object.WithName("camera"),
			game_object.WithPosition(0, 3, 8), game_object.WithLookAt(mgl32.Vec3{0, 1, 0})))
		d.ctrl = camera.NewController(demoCamera, camera.AnchorOrbit{Distance: 8}, camera.ViewFree{}, opts...)
		d.tuned = d.ctrl
		d.buf, err = d.scene.Attach(demoPlayer, d.ctrl)
	case "3d":
		d.scene.Add(game_object.NewGameObject(game_object.WithID(demoCamera), game_object.WithName("camera"),
			game_object.WithPosition(0, 1, 8)))
		space := physics.NewSpace()
		space.AddWall(100, mgl32.Vec3{-4, 0, 4}, mgl32.Vec3{4, 0, 4}, 0.3, 3)
		space.AddCylinder(101, mgl32.Vec3{-3, 0, -3}, 0.8, 4)
		d.scene.SetRayCaster(space)
		d.ctrl3d = camera.NewController3d(demoCamera, camera.View3dFollow{Distance: 8, BackDistance: 0.3}, opts...)
		d.tuned = d.ctrl3d
		d.buf, err = d.scene.Attach3d(demoPlayer, d.ctrl3d)
	case "2d":
		d.scene.Add(game_object.NewGameObject(game_object.WithID(demoCamera), game_object.WithName("camera"),
			game_object.WithPosition(0, 0, 10)))
		d.ctrl2d = camera.NewController2d(demoCamera, camera.View2dFollow{Distance: 2}, append(opts, camera.WithYawAxis(common.AxisZ))...)
		d.tuned = d.ctrl2d
		d.buf, err = d.scene.Attach2d(demoPlayer, d.ctrl2d)
	default:
		return fmt.Errorf("unknown mode %q", d.mode)
	}
	return err
}

// tick runs before any controller resolves: mode switches, player movement,
// manual handlers, then pointer input into the controller buffer.
func (d *demo) tick(dt float32) {
	defer d.keys.EndTick()
	d.switchModes()

	cam, ok := d.scene.Transform(demoCamera)
	if !ok {
		return
	}

	dir := camera.MoveDirection(d.keys.Pressed(common.KeyW), d.keys.Pressed(common.KeyS), d.keys.Pressed(common.KeyA), d.keys.Pressed(common.KeyD))
	if obj := d.scene.Get(demoPlayer); obj != nil {
		if d.mode == "2d" {
			obj.Translate(camera.ScreenMove(cam.Rotation, dir).Mul(moveSpeed * dt))
		} else if step, moved := camera.PlanarMove(cam.Rotation, dir, d.tuned.YawAxis()); moved {
			obj.Translate(step.Mul(moveSpeed * dt))
		}
	}

	if d.ctrl2d != nil {
		zoom := d.scroll.Drain()[1]
		if d.keys.Pressed(common.KeyQ) {
			zoom += dt * 4
		}
		if d.keys.Pressed(common.KeyE) {
			zoom -= dt * 4
		}
		if zoom != 0 {
			d.ctrl2d.ZoomBy(float32(math.Exp(float64(zoom) * 0.1)))
		}
	}

	switch {
	case d.keys.Pressed(common.Key8):
		camera.ManualPan(&cam, d.pointer.Drain().Mul(panScale))
		d.scene.SetTransform(demoCamera, cam)
	case d.keys.Pressed(common.Key9):
		camera.ManualRotate(&cam, d.pointer.Drain().Mul(-rotateScale), d.tuned.YawAxis(), d.tuned.PitchRange())
		d.scene.SetTransform(demoCamera, cam)
	default:
		d.pointer.Flush(dt, d.buf)
	}
}

func (d *demo) switchModes() {
	pressed := d.keys.JustPressed
	switch d.mode {
	case "anchor":
		player, _ := d.scene.Transform(demoPlayer)
		cam, _ := d.scene.Transform(demoCamera)
		switch {
		case pressed(common.Key1):
			d.ctrl.SetAnchor(camera.AnchorYaw{})
		case pressed(common.Key2):
			d.ctrl.SetAnchor(camera.PlaneFacing(cam))
		case pressed(common.Key3):
			d.ctrl.SetAnchor(camera.AnchorPoint{})
		case pressed(common.Key4):
			d.ctrl.SetAnchor(camera.OrbitAtCurrentDistance(player, cam))
		case pressed(common.Key5):
			d.targetView = !d.targetView
			if d.targetView {
				d.ctrl.SetView(camera.ViewTarget{Entity: demoMarker})
			} else {
				d.ctrl.SetView(camera.ViewFree{})
			}
		default:
			return
		}
		d.logger.Info("controller switched", "anchor", fmt.Sprintf("%T", d.ctrl.Anchor()), "view", fmt.Sprintf("%T", d.ctrl.View()))
	case "3d":
		switch {
		case pressed(common.Key0):
			d.ctrl3d.SetView(camera.View3dManual{})
		case pressed(common.Key1):
			d.ctrl3d.SetView(camera.View3dPerspective{})
		case pressed(common.Key2):
			d.ctrl3d.SetView(camera.View3dFollow{Distance: 8, BackDistance: 0.3})
		default:
			return
		}
		d.logger.Info("controller switched", "view", fmt.Sprintf("%T", d.ctrl3d.View()))
	case "2d":
		switch {
		case pressed(common.Key0):
			d.ctrl2d.SetView(camera.View2dManual{})
		case pressed(common.Key1):
			d.ctrl2d.SetView(camera.View2dFollow{Distance: 2})
		default:
			return
		}
		d.logger.Info("controller switched", "view", fmt.Sprintf("%T", d.ctrl2d.View()))
	}
}

func (d *demo) report(dt float32) {
	d.elapsed += dt
	if d.elapsed < reportSeconds {
		return
	}
	d.elapsed = 0
	cam, ok := d.scene.Transform(demoCamera)
	if !ok {
		return
	}
	scale, _ := d.scene.ProjectionScale(demoCamera)
	d.logger.Info("camera",
		"position", cam.Translation,
		"forward", cam.Forward(),
		"scale", scale,
	)
}
