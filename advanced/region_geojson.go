package advanced

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Export the result as GeoJSON, in plain plot coordinates (x as longitude, y
// as latitude). The first feature is the region itself: a polygon, or a line
// or point when the region is degenerate. It is followed by one point feature
// per optimum. An infeasible result gives an empty collection.
func (r *Result) FeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	if !r.IsOptimal() {
		return fc
	}

	region := geojson.NewFeature(regionGeometry(Region(r.Vertices)))
	region.Properties["status"] = string(r.Status)
	region.Properties["vertex_count"] = len(r.Vertices)
	fc.Append(region)

	for _, opt := range []struct {
		role    Sense
		optimum *Optimum
	}{
		{Minimize, r.Min},
		{Maximize, r.Max},
	} {
		f := geojson.NewFeature(orbPoint(opt.optimum.Point))
		f.Properties["role"] = string(opt.role)
		f.Properties["value"] = opt.optimum.Value
		fc.Append(f)
	}
	return fc
}

func regionGeometry(region []Point) orb.Geometry {
	switch len(region) {
	case 1:
		return orbPoint(region[0])
	case 2:
		return orb.LineString{orbPoint(region[0]), orbPoint(region[1])}
	}
	ring := make(orb.Ring, 0, len(region)+1)
	for _, p := range region {
		ring = append(ring, orbPoint(p))
	}
	// GeoJSON rings are closed explicitly
	ring = append(ring, ring[0])
	return orb.Polygon{ring}
}

func orbPoint(p Point) orb.Point {
	return orb.Point{p.X, p.Y}
}
