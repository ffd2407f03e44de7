package scene

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"slices"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-control/common"
	"github.com/Carmen-Shannon/oxy-control/engine/camera"
	"github.com/Carmen-Shannon/oxy-control/engine/game_object"
	"github.com/Carmen-Shannon/oxy-control/engine/input"
)

var (
	// ErrUnknownEntity is returned when attaching a controller to an entity or
	// camera that is not in the scene.
	ErrUnknownEntity = errors.New("scene: unknown entity")

	// ErrCameraInUse is returned when a camera is already driven by another controller.
	ErrCameraInUse = errors.New("scene: camera already driven by another controller")
)

// Scene is the host side of the camera core: it owns the GameObjects that make
// up the transform store and the camera controllers attached to them, and
// resolves every controller once per tick.
// Scenes can be hot-swapped via the Active flag.
// Thread-safe for concurrent access.
type Scene interface {
	camera.ProjectionStore

	// Name returns the scene's name.
	//
	// Returns:
	//   - string: the scene name
	Name() string

	// SetName sets the scene's name.
	//
	// Parameters:
	//   - name: the new name
	SetName(name string)

	// Active returns whether the scene is resolved by the engine each tick.
	//
	// Returns:
	//   - bool: true if active
	Active() bool

	// SetActive sets whether the scene is resolved by the engine each tick.
	//
	// Parameters:
	//   - active: true to activate
	SetActive(active bool)

	// Count returns the number of objects in the scene.
	//
	// Returns:
	//   - int: the object count
	Count() int

	// Add inserts an object into the scene. Objects without an ID are assigned one.
	// An object with the ID of an existing object replaces it.
	//
	// Parameters:
	//   - obj: the object to add
	//
	// Returns:
	//   - uint64: the object's ID
	Add(obj game_object.GameObject) uint64

	// Get returns the object with the given ID, or nil.
	//
	// Parameters:
	//   - id: the object ID
	//
	// Returns:
	//   - game_object.GameObject: the object or nil
	Get(id uint64) game_object.GameObject

	// Remove deletes an object and detaches any controller attached to it.
	// Controllers referencing the object as camera or target start failing
	// with camera.ErrMissingEntity.
	//
	// Parameters:
	//   - id: the object ID
	Remove(id uint64)

	// Clear removes every object and controller.
	Clear()

	// Attach attaches a generalized controller to an entity.
	//
	// Parameters:
	//   - entity: the controlled entity
	//   - ctrl: the controller
	//
	// Returns:
	//   - input.DeltaBuffer: the buffer created for the controller
	//   - error: ErrUnknownEntity or ErrCameraInUse
	Attach(entity uint64, ctrl camera.Controller) (input.DeltaBuffer, error)

	// Attach2d attaches a 2D controller to an entity.
	//
	// Parameters:
	//   - entity: the controlled entity
	//   - ctrl: the controller
	//
	// Returns:
	//   - input.DeltaBuffer: the buffer created for the controller
	//   - error: ErrUnknownEntity or ErrCameraInUse
	Attach2d(entity uint64, ctrl camera.Controller2d) (input.DeltaBuffer, error)

	// Attach3d attaches a 3D controller to an entity.
	//
	// Parameters:
	//   - entity: the controlled entity
	//   - ctrl: the controller
	//
	// Returns:
	//   - input.DeltaBuffer: the buffer created for the controller
	//   - error: ErrUnknownEntity or ErrCameraInUse
	Attach3d(entity uint64, ctrl camera.Controller3d) (input.DeltaBuffer, error)

	// Detach removes the controller attached to an entity along with its buffer.
	//
	// Parameters:
	//   - entity: the controlled entity
	Detach(entity uint64)

	// Buffer returns the input buffer of the controller attached to entity, or nil.
	//
	// Parameters:
	//   - entity: the controlled entity
	//
	// Returns:
	//   - input.DeltaBuffer: the buffer or nil
	Buffer(entity uint64) input.DeltaBuffer

	// Buffers returns the input buffers of every attached controller.
	//
	// Returns:
	//   - []input.DeltaBuffer: the buffers in entity order
	Buffers() []input.DeltaBuffer

	// Controlled returns the IDs of every entity with an attached controller.
	//
	// Returns:
	//   - []uint64: entity IDs in ascending order
	Controlled() []uint64

	// SetRayCaster installs or removes (nil) the obstruction ray caster used by
	// 3D follow controllers.
	//
	// Parameters:
	//   - caster: the ray caster or nil
	SetRayCaster(caster camera.RayCaster)

	// Update resolves every attached controller for one tick. A failing
	// controller does not stop the others; all failures are joined.
	//
	// Parameters:
	//   - dt: tick duration in seconds
	//
	// Returns:
	//   - error: joined *camera.ResolveError values, or nil
	Update(dt float32) error
}

type scene struct {
	mu *sync.RWMutex

	name   string
	active bool

	registry map[uint64]game_object.GameObject
	nextID   uint64

	attachments map[uint64]*attachment
	caster      camera.RayCaster
	logger      *slog.Logger

	// computePool resolves controllers in parallel when more than one is
	// attached. Workers persist across ticks.
	computePool    worker.DynamicWorkerPool
	computeWorkers int
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates a new, inactive Scene.
//
// Parameters:
//   - name: the name of the scene
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:             &sync.RWMutex{},
		name:           name,
		registry:       make(map[uint64]game_object.GameObject),
		nextID:         1,
		attachments:    make(map[uint64]*attachment),
		logger:         slog.Default(),
		computeWorkers: max(runtime.NumCPU()-1, 1),
	}

	for _, option := range options {
		option(s)
	}

	// Initialize the compute pool after options so WithComputeWorkers can override the default.
	s.computePool = worker.NewDynamicWorkerPool(s.computeWorkers, 256, 1*time.Second)
	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.registry)
}

func (s *scene) Add(obj game_object.GameObject) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(obj)
}

// add registers obj. Caller must hold s.mu write lock.
func (s *scene) add(obj game_object.GameObject) uint64 {
	if obj.ID() == 0 {
		for s.registry[s.nextID] != nil {
			s.nextID++
		}
		obj.SetID(s.nextID)
		s.nextID++
	}
	s.registry[obj.ID()] = obj
	return obj.ID()
}

func (s *scene) Get(id uint64) game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry[id]
}

func (s *scene) Remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.registry, id)
	delete(s.attachments, id)
}

func (s *scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry = make(map[uint64]game_object.GameObject)
	s.attachments = make(map[uint64]*attachment)
}

func (s *scene) Transform(id uint64) (common.Transform, bool) {
	obj := s.enabled(id)
	if obj == nil {
		return common.Transform{}, false
	}
	return obj.Transform(), true
}

func (s *scene) SetTransform(id uint64, t common.Transform) bool {
	obj := s.enabled(id)
	if obj == nil {
		return false
	}
	obj.SetTransform(t)
	return true
}

func (s *scene) ProjectionScale(id uint64) (float32, bool) {
	obj := s.enabled(id)
	if obj == nil {
		return 0, false
	}
	return obj.ProjectionScale(), true
}

func (s *scene) SetProjectionScale(id uint64, scale float32) bool {
	obj := s.enabled(id)
	if obj == nil {
		return false
	}
	obj.SetProjectionScale(scale)
	return true
}

// enabled returns the object with the given ID when it exists and is enabled.
func (s *scene) enabled(id uint64) game_object.GameObject {
	s.mu.RLock()
	obj := s.registry[id]
	s.mu.RUnlock()
	if obj == nil || !obj.Enabled() {
		return nil
	}
	return obj
}

func (s *scene) Attach(entity uint64, ctrl camera.Controller) (input.DeltaBuffer, error) {
	if ctrl == nil {
		panic("scene: Attach requires a non-nil Controller")
	}
	return s.attach(entity, &attachment{kind: kindGeneral, general: ctrl})
}

func (s *scene) Attach2d(entity uint64, ctrl camera.Controller2d) (input.DeltaBuffer, error) {
	if ctrl == nil {
		panic("scene: Attach2d requires a non-nil Controller2d")
	}
	return s.attach(entity, &attachment{kind: kind2d, ctrl2d: ctrl})
}

func (s *scene) Attach3d(entity uint64, ctrl camera.Controller3d) (input.DeltaBuffer, error) {
	if ctrl == nil {
		panic("scene: Attach3d requires a non-nil Controller3d")
	}
	return s.attach(entity, &attachment{kind: kind3d, ctrl3d: ctrl})
}

func (s *scene) attach(entity uint64, a *attachment) (input.DeltaBuffer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cam := a.camera()
	if s.registry[entity] == nil {
		return nil, fmt.Errorf("attach controller to entity %d: %w", entity, ErrUnknownEntity)
	}
	if s.registry[cam] == nil {
		return nil, fmt.Errorf("attach controller to entity %d: camera %d: %w", entity, cam, ErrUnknownEntity)
	}
	for other, existing := range s.attachments {
		if other != entity && existing.camera() == cam {
			return nil, fmt.Errorf("attach controller to entity %d: camera %d used by entity %d: %w", entity, cam, other, ErrCameraInUse)
		}
	}

	a.entity = entity
	a.buf = input.NewDeltaBuffer()
	s.attachments[entity] = a
	return a.buf, nil
}

func (s *scene) Detach(entity uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.attachments, entity)
}

func (s *scene) Buffer(entity uint64) input.DeltaBuffer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if a, ok := s.attachments[entity]; ok {
		return a.buf
	}
	return nil
}

func (s *scene) Buffers() []input.DeltaBuffer {
	list := s.snapshot()
	bufs := make([]input.DeltaBuffer, len(list))
	for i, a := range list {
		bufs[i] = a.buf
	}
	return bufs
}

func (s *scene) Controlled() []uint64 {
	list := s.snapshot()
	ids := make([]uint64, len(list))
	for i, a := range list {
		ids[i] = a.entity
	}
	return ids
}

func (s *scene) SetRayCaster(caster camera.RayCaster) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.caster = caster
}

// snapshot returns the attachments in ascending entity order.
func (s *scene) snapshot() []*attachment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]*attachment, 0, len(s.attachments))
	for _, a := range s.attachments {
		list = append(list, a)
	}
	slices.SortFunc(list, func(a, b *attachment) int {
		switch {
		case a.entity < b.entity:
			return -1
		case a.entity > b.entity:
			return 1
		}
		return 0
	})
	return list
}

func (s *scene) Update(dt float32) error {
	list := s.snapshot()
	s.mu.RLock()
	caster := s.caster
	name := s.name
	s.mu.RUnlock()

	// Cameras may be reassigned after attach; a camera claimed twice is only
	// resolved for the lowest entity so no two workers write the same camera.
	errs := make([]error, len(list))
	run := make([]int, 0, len(list))
	claimed := make(map[uint64]uint64, len(list))
	for i, a := range list {
		cam := a.camera()
		if owner, taken := claimed[cam]; taken {
			errs[i] = &camera.ResolveError{
				Controller: a.entity,
				Entity:     cam,
				Role:       camera.RoleCamera,
				Err:        fmt.Errorf("used by entity %d: %w", owner, ErrCameraInUse),
			}
			continue
		}
		claimed[cam] = a.entity
		run = append(run, i)
	}

	if len(run) <= 1 || s.computeWorkers <= 1 {
		for _, i := range run {
			errs[i] = list[i].resolve(s, caster, dt)
		}
	} else {
		// A WaitGroup provides the per-tick barrier; pool workers outlive the tick.
		var wg sync.WaitGroup
		for _, i := range run {
			wg.Add(1)
			a := list[i]
			idx := i
			s.computePool.SubmitTask(worker.Task{
				ID: idx,
				Do: func() (any, error) {
					defer wg.Done()
					errs[idx] = a.resolve(s, caster, dt)
					return nil, nil
				},
			})
		}
		wg.Wait()
	}

	for i, err := range errs {
		if err != nil {
			s.logger.Warn("camera controller skipped", "scene", name, "entity", list[i].entity, "err", err)
		}
	}
	return errors.Join(errs...)
}
