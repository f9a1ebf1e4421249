package geometry

// Boundary is the name of one face of a simulation domain.
type Boundary = string

// Geometry describes the shape of a simulation domain through its set of
// named boundaries. Implementations are immutable after construction, so a
// single value can be read from multiple goroutines without synchronization.
//
// Each variant defines its own constructor and validation; callers that only
// need the boundary set should depend on this interface rather than on a
// concrete type, so future variants (curvilinear, tripolar) can slot in.
type Geometry interface {
	// Boundaries returns every boundary name of the domain exactly once.
	// Order is not significant.
	Boundaries() []Boundary
}
