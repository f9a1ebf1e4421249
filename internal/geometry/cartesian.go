package geometry

import "fmt"

// CartesianGeometry is an axis-aligned rectangular box domain in three
// dimensions. The six extents are fixed at construction and every method is
// a pure query, so values are safe for concurrent use.
type CartesianGeometry struct {
	xMin, xMax float64
	yMin, yMax float64
	zMin, zMax float64
}

var _ Geometry = (*CartesianGeometry)(nil)

// cartesianBoundaries is the fixed boundary set of every Cartesian domain,
// independent of the numeric extents.
var cartesianBoundaries = [...]Boundary{"x_min", "x_max", "y_min", "y_max", "z_min", "z_max"}

// NewCartesianGeometry builds a Cartesian domain from six extents, ordered
// x_min, x_max, y_min, y_max, z_min, z_max. Each minimum must be strictly
// less than its maximum; equal bounds on an axis are rejected rather than
// treated as a zero-length domain. Extents are stored verbatim.
func NewCartesianGeometry(xMin, xMax, yMin, yMax, zMin, zMax float64) (*CartesianGeometry, error) {
	if xMin >= xMax {
		return nil, fmt.Errorf("%w: x_min (%v) must be less than x_max (%v)", ErrInvalidDomainExtents, xMin, xMax)
	}
	if yMin >= yMax {
		return nil, fmt.Errorf("%w: y_min (%v) must be less than y_max (%v)", ErrInvalidDomainExtents, yMin, yMax)
	}
	if zMin >= zMax {
		return nil, fmt.Errorf("%w: z_min (%v) must be less than z_max (%v)", ErrInvalidDomainExtents, zMin, zMax)
	}

	return &CartesianGeometry{
		xMin: xMin, xMax: xMax,
		yMin: yMin, yMax: yMax,
		zMin: zMin, zMax: zMax,
	}, nil
}

// Boundaries returns the six boundary names of a Cartesian box. The returned
// slice is a copy; mutating it does not affect the geometry.
func (g *CartesianGeometry) Boundaries() []Boundary {
	out := make([]Boundary, len(cartesianBoundaries))
	copy(out, cartesianBoundaries[:])
	return out
}

// XMin returns the minimum x-coordinate of the domain.
func (g *CartesianGeometry) XMin() float64 { return g.xMin }

// XMax returns the maximum x-coordinate of the domain.
func (g *CartesianGeometry) XMax() float64 { return g.xMax }

// YMin returns the minimum y-coordinate of the domain.
func (g *CartesianGeometry) YMin() float64 { return g.yMin }

// YMax returns the maximum y-coordinate of the domain.
func (g *CartesianGeometry) YMax() float64 { return g.yMax }

// ZMin returns the minimum z-coordinate of the domain.
func (g *CartesianGeometry) ZMin() float64 { return g.zMin }

// ZMax returns the maximum z-coordinate of the domain.
func (g *CartesianGeometry) ZMax() float64 { return g.zMax }

// LX returns the domain length in the x direction. Strictly positive for any
// constructed geometry.
func (g *CartesianGeometry) LX() float64 { return g.xMax - g.xMin }

// LY returns the domain length in the y direction.
func (g *CartesianGeometry) LY() float64 { return g.yMax - g.yMin }

// LZ returns the domain length in the z direction.
func (g *CartesianGeometry) LZ() float64 { return g.zMax - g.zMin }
