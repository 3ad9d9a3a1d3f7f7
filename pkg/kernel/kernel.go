// Package kernel defines the abstract geometry kernel interface.
// Implementations (sdfx today, others later) provide solid modeling and
// boolean operations behind this interface. The kernel abstraction
// allows swapping backends without changing the part builders, and lets
// layout-heavy code be tested against a stub.
package kernel

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface. All primitives are
// centered at the origin. Dimensions are in millimeters.
type Kernel interface {
	// Primitives
	Box(x, y, z float64) Solid
	// RoundedBox is a box whose vertical (|Z) edges are rounded with the
	// given corner radius. With round close to half the smaller footprint
	// dimension the profile degenerates to a stadium, which is the
	// footprint a milled slot actually has.
	RoundedBox(x, y, z, round float64) Solid
	Cylinder(height, radius float64) Solid
	// Cone is a truncated cone along Z with bottom radius r0 and top
	// radius r1. Used for countersinks and chamfer cutters.
	Cone(height, r0, r1 float64) Solid

	// Boolean operations
	Union(a, b Solid) Solid
	Difference(a, b Solid) Solid
	Intersection(a, b Solid) Solid

	// Transforms
	Translate(s Solid, x, y, z float64) Solid
	Rotate(s Solid, x, y, z float64) Solid // Euler angles in degrees

	// Mesh output
	ToMesh(s Solid) (*Mesh, error)
}
