// Package geoutil provides bounding-box and center-point arithmetic over
// geometric feature collections.
package geoutil

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// BBox is the minimal axis-aligned rectangle covering a set of features.
type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Bound converts the box to an orb.Bound.
func (b BBox) Bound() orb.Bound {
	return orb.Bound{Min: orb.Point{b.MinX, b.MinY}, Max: orb.Point{b.MaxX, b.MaxY}}
}

// BBoxOfFeatureCollection returns the bounding box of all the features in
// the collection: each feature's own extent is scanned, then the minima and
// maxima are taken across the collection.
func BBoxOfFeatureCollection(fc *geojson.FeatureCollection) (BBox, error) {
	if fc == nil || len(fc.Features) == 0 {
		return BBox{}, fmt.Errorf("geoutil: empty feature collection")
	}
	var box BBox
	for i, f := range fc.Features {
		b := f.Geometry.Bound()
		if i == 0 {
			box = BBox{MinX: b.Min[0], MinY: b.Min[1], MaxX: b.Max[0], MaxY: b.Max[1]}
			continue
		}
		if b.Min[0] < box.MinX {
			box.MinX = b.Min[0]
		}
		if b.Min[1] < box.MinY {
			box.MinY = b.Min[1]
		}
		if b.Max[0] > box.MaxX {
			box.MaxX = b.Max[0]
		}
		if b.Max[1] > box.MaxY {
			box.MaxY = b.Max[1]
		}
	}
	return box, nil
}

// CenterOfBBox returns the midpoint of a bounding box's x and y extents.
func CenterOfBBox(b BBox) orb.Point {
	return orb.Point{
		b.MinX + (b.MaxX-b.MinX)/2,
		b.MinY + (b.MaxY-b.MinY)/2,
	}
}
