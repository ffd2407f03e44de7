package physics

// SpaceBuilderOption is a functional option for configuring a Space.
type SpaceBuilderOption func(*space)

// WithPlane selects the world axes mapped into the physics space. Defaults to PlaneXZ.
//
// Parameters:
//   - plane: PlaneXZ or PlaneXY
//
// Returns:
//   - SpaceBuilderOption: option function to apply
func WithPlane(plane Plane) SpaceBuilderOption {
	return func(s *space) {
		s.plane = plane
	}
}
