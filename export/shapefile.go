package export

import (
	"fmt"
	"sort"

	shp "github.com/jonas-p/go-shp"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// maxFieldNameLen is the DBF attribute name limit. Longer property names
// are truncated on export; this is a format constraint, not a bug.
const maxFieldNameLen = 10

const maxFieldValueLen = 254

// WriteShapefile writes a feature collection to an ESRI shapefile. All
// features must share one geometry family (point, line or polygon).
// Property values are written as strings; property names longer than ten
// characters are truncated.
func WriteShapefile(fc *geojson.FeatureCollection, path string) error {
	if len(fc.Features) == 0 {
		return fmt.Errorf("export: empty feature collection")
	}
	shapeType, err := shapeTypeOf(fc.Features[0].Geometry)
	if err != nil {
		return err
	}

	names := propertyNames(fc)
	fields := make([]shp.Field, len(names))
	for i, name := range names {
		size := 1
		for _, f := range fc.Features {
			if v, ok := f.Properties[name]; ok {
				if n := len(fmt.Sprint(v)); n > size {
					size = n
				}
			}
		}
		if size > maxFieldValueLen {
			size = maxFieldValueLen
		}
		fields[i] = shp.StringField(truncateFieldName(name), uint8(size))
	}

	w, err := shp.Create(path, shapeType)
	if err != nil {
		return err
	}
	defer w.Close()
	w.SetFields(fields)

	for n, f := range fc.Features {
		shape, err := shapeOf(f.Geometry)
		if err != nil {
			return fmt.Errorf("feature %d: %w", n, err)
		}
		w.Write(shape)
		for i, name := range names {
			v, ok := f.Properties[name]
			if !ok {
				v = ""
			}
			if err := w.WriteAttribute(n, i, fmt.Sprint(v)); err != nil {
				return fmt.Errorf("feature %d attribute %q: %w", n, name, err)
			}
		}
	}
	return nil
}

func truncateFieldName(name string) string {
	if len(name) > maxFieldNameLen {
		return name[:maxFieldNameLen]
	}
	return name
}

// propertyNames collects the union of property names across all features,
// sorted for a stable attribute schema.
func propertyNames(fc *geojson.FeatureCollection) []string {
	seen := map[string]bool{}
	var names []string
	for _, f := range fc.Features {
		for name := range f.Properties {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}

func shapeTypeOf(g orb.Geometry) (shp.ShapeType, error) {
	switch g.(type) {
	case orb.Point:
		return shp.POINT, nil
	case orb.LineString, orb.MultiLineString:
		return shp.POLYLINE, nil
	case orb.Polygon, orb.MultiPolygon:
		return shp.POLYGON, nil
	default:
		return 0, fmt.Errorf("export: unsupported geometry type %T", g)
	}
}

func shapeOf(g orb.Geometry) (shp.Shape, error) {
	switch geom := g.(type) {
	case orb.Point:
		return &shp.Point{X: geom[0], Y: geom[1]}, nil
	case orb.LineString:
		return shp.NewPolyLine([][]shp.Point{shpPoints(geom)}), nil
	case orb.MultiLineString:
		parts := make([][]shp.Point, len(geom))
		for i, ls := range geom {
			parts[i] = shpPoints(ls)
		}
		return shp.NewPolyLine(parts), nil
	case orb.Polygon:
		parts := make([][]shp.Point, len(geom))
		for i, ring := range geom {
			parts[i] = shpPoints(orb.LineString(ring))
		}
		return (*shp.Polygon)(shp.NewPolyLine(parts)), nil
	case orb.MultiPolygon:
		var parts [][]shp.Point
		for _, poly := range geom {
			for _, ring := range poly {
				parts = append(parts, shpPoints(orb.LineString(ring)))
			}
		}
		return (*shp.Polygon)(shp.NewPolyLine(parts)), nil
	default:
		return nil, fmt.Errorf("export: unsupported geometry type %T", g)
	}
}

func shpPoints(ls orb.LineString) []shp.Point {
	pts := make([]shp.Point, len(ls))
	for i, p := range ls {
		pts[i] = shp.Point{X: p[0], Y: p[1]}
	}
	return pts
}
