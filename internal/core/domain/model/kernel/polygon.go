package kernel

import (
	"errors"
	"fmt"

	"orderintake/internal/pkg/errs"
	"orderintake/internal/pkg/guard"
)

// MinPolygonVertices is the minimum number of vertices for a closed ring:
// three distinct corners plus the repeated closing vertex.
const MinPolygonVertices = 4

// ErrPolygonIsNotConstructed is returned when attempting to use an improperly
// initialized Polygon. Polygons must be created via NewPolygon.
var ErrPolygonIsNotConstructed = errs.NewValueIsRequiredError(
	"polygon must be created via NewPolygon constructor")

// Polygon is an immutable closed ring of geographic vertices. The first and
// last vertex must be equal, and the ring must have at least four vertices.
//
// Containment uses the standard ray-casting (even-odd) test. Points exactly
// on an edge or vertex follow whatever side the ray-cast arithmetic lands on;
// no boundary-inclusive guarantee is made.
type Polygon struct { //nolint:recvcheck //using for validation
	vertices []GeoPoint
	guard    guard.ConstructorGuard
}

// NewPolygon creates a Polygon from an ordered, closed vertex ring.
func NewPolygon(vertices []GeoPoint) (Polygon, error) {
	poly := Polygon{
		guard: guard.NewConstructorGuard(),
	}

	if err := poly.setVertices(vertices); err != nil {
		return Polygon{}, err
	}

	return poly, nil
}

// Validate checks that the Polygon was created through its constructor.
func (p Polygon) Validate() error {
	return p.guard.Validate(ErrPolygonIsNotConstructed)
}

// Vertices returns a copy of the closed vertex ring.
func (p Polygon) Vertices() []GeoPoint {
	out := make([]GeoPoint, len(p.vertices))
	copy(out, p.vertices)
	return out
}

// Contains reports whether the point lies inside the polygon using the
// even-odd rule: a ray cast from the point toward increasing longitude is
// intersected with every edge, and an odd crossing count means inside.
func (p Polygon) Contains(pt GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), pt.Validate()); err != nil {
		return false, err
	}

	// The closing vertex duplicates the first; walk the open ring.
	ring := p.vertices[:len(p.vertices)-1]

	inside := false
	for i, j := 0, len(ring)-1; i < len(ring); j, i = i, i+1 {
		vi, vj := ring[i], ring[j]

		crosses := (vi.lat > pt.lat) != (vj.lat > pt.lat)
		if crosses && pt.lng < (vj.lng-vi.lng)*(pt.lat-vi.lat)/(vj.lat-vi.lat)+vi.lng {
			inside = !inside
		}
	}

	return inside, nil
}

func (p *Polygon) setVertices(vertices []GeoPoint) error {
	if len(vertices) < MinPolygonVertices {
		return errs.NewValueIsInvalidErrorWithCause("polygon",
			fmt.Errorf("a closed ring needs at least %d vertices, got %d", MinPolygonVertices, len(vertices)))
	}

	for i, v := range vertices {
		if err := v.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("polygon vertex %d", i), err)
		}
	}

	closed, err := vertices[0].IsEqual(vertices[len(vertices)-1])
	if err != nil {
		return err
	}
	if !closed {
		return errs.NewValueIsInvalidErrorWithCause("polygon",
			errors.New("ring is not closed: first and last vertex differ"))
	}

	p.vertices = make([]GeoPoint, len(vertices))
	copy(p.vertices, vertices)
	return nil
}
