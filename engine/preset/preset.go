package preset

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/Carmen-Shannon/oxy-control/common"
	"github.com/Carmen-Shannon/oxy-control/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// ErrUnknownPreset is returned when a preset name is not defined.
var ErrUnknownPreset = errors.New("preset: unknown preset")

// Preset is a named set of controller tuning values. Unset fields leave the
// controller's current value untouched, so presets can be layered.
type Preset struct {
	Sensitivity          *float32    `yaml:"sensitivity,omitempty"`
	Offset               *[3]float32 `yaml:"offset,omitempty"`
	Smoothing            *float32    `yaml:"smoothing,omitempty"`
	TranslationSmoothing *float32    `yaml:"translation_smoothing,omitempty"`
	RotationSmoothing    *float32    `yaml:"rotation_smoothing,omitempty"`
	YawAxis              *[3]float32 `yaml:"yaw_axis,omitempty"`
	PitchRangeDeg        *float32    `yaml:"pitch_range_deg,omitempty"`
	Zoom                 *float32    `yaml:"zoom,omitempty"`
}

// Set is a collection of presets as stored in a presets file:
//
//	presets:
//	  orbit:
//	    smoothing: 0.05
//	    pitch_range_deg: 90
type Set struct {
	Presets map[string]Preset `yaml:"presets"`
}

// Parse decodes and validates a presets document.
//
// Parameters:
//   - data: YAML document
//
// Returns:
//   - *Set: the decoded presets
//   - error: decode or validation error
func Parse(data []byte) (*Set, error) {
	var set Set
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("preset: decode: %w", err)
	}
	if set.Presets == nil {
		set.Presets = make(map[string]Preset)
	}
	for _, name := range set.Names() {
		if err := set.Presets[name].Validate(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
	}
	return &set, nil
}

// Load reads and parses a presets file.
//
// Parameters:
//   - path: path to the YAML file
//
// Returns:
//   - *Set: the decoded presets
//   - error: read, decode or validation error
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("preset: read %s: %w", path, err)
	}
	return Parse(data)
}

// Names returns the preset names in sorted order.
func (s *Set) Names() []string {
	return slices.Sorted(maps.Keys(s.Presets))
}

// Get returns a preset by name.
//
// Parameters:
//   - name: the preset name
//
// Returns:
//   - Preset: the preset
//   - error: ErrUnknownPreset if it is not defined
func (s *Set) Get(name string) (Preset, error) {
	p, ok := s.Presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p, nil
}

// Validate rejects values that cannot be turned into controller options.
// Other out-of-range values are passed through and degrade gracefully.
func (p Preset) Validate() error {
	if p.Zoom != nil && *p.Zoom == 0 {
		return errors.New("zoom must be non-zero")
	}
	if p.PitchRangeDeg != nil && *p.PitchRangeDeg < 0 {
		return errors.New("pitch_range_deg must be >= 0")
	}
	if p.YawAxis != nil && mgl32.Vec3(*p.YawAxis).Len() == 0 {
		return errors.New("yaw_axis must be non-zero")
	}
	for field, v := range map[string]*float32{
		"smoothing":             p.Smoothing,
		"translation_smoothing": p.TranslationSmoothing,
		"rotation_smoothing":    p.RotationSmoothing,
	} {
		if v != nil && *v < 0 {
			return fmt.Errorf("%s must be >= 0", field)
		}
	}
	return nil
}

// Options converts the preset into controller options. Smoothing is applied
// before the per-channel smoothing values so those override it.
//
// Returns:
//   - []camera.ControllerOption: options for any controller kind
func (p Preset) Options() []camera.ControllerOption {
	var opts []camera.ControllerOption
	if p.Sensitivity != nil {
		opts = append(opts, camera.WithSensitivity(*p.Sensitivity))
	}
	if p.Offset != nil {
		opts = append(opts, camera.WithOffset(mgl32.Vec3(*p.Offset)))
	}
	if p.Smoothing != nil {
		opts = append(opts, camera.WithSmoothing(*p.Smoothing))
	}
	if p.TranslationSmoothing != nil {
		opts = append(opts, camera.WithTranslationSmoothing(*p.TranslationSmoothing))
	}
	if p.RotationSmoothing != nil {
		opts = append(opts, camera.WithRotationSmoothing(*p.RotationSmoothing))
	}
	if p.YawAxis != nil {
		opts = append(opts, camera.WithYawAxis(mgl32.Vec3(*p.YawAxis)))
	}
	if p.PitchRangeDeg != nil {
		opts = append(opts, camera.WithPitchRange(common.Radians(*p.PitchRangeDeg)))
	}
	if p.Zoom != nil {
		opts = append(opts, camera.WithZoom(*p.Zoom))
	}
	return opts
}

func ptr[T any](v T) *T {
	return &v
}

// Defaults returns the built-in presets: "snappy" has no smoothing, "smooth"
// is a typical third person feel and "cinematic" trails heavily.
//
// Returns:
//   - *Set: the built-in presets
func Defaults() *Set {
	return &Set{Presets: map[string]Preset{
		"snappy": {
			Smoothing: ptr[float32](0),
		},
		"smooth": {
			Smoothing:     ptr[float32](0.05),
			PitchRangeDeg: ptr[float32](90),
		},
		"cinematic": {
			Sensitivity:          ptr[float32](0.5),
			TranslationSmoothing: ptr[float32](0.4),
			RotationSmoothing:    ptr[float32](0.2),
			PitchRangeDeg:        ptr[float32](60),
		},
	}}
}

// Merge returns a set containing the presets of s overlaid with those of other.
func (s *Set) Merge(other *Set) *Set {
	out := &Set{Presets: maps.Clone(s.Presets)}
	if out.Presets == nil {
		out.Presets = make(map[string]Preset)
	}
	if other != nil {
		maps.Copy(out.Presets, other.Presets)
	}
	return out
}
