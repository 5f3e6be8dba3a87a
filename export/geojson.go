package export

import (
	"encoding/json"
	"os"

	"github.com/paulmach/orb/geojson"
)

// WriteGeoJSON writes a feature collection to a GeoJSON file.
func WriteGeoJSON(fc *geojson.FeatureCollection, path string) error {
	data, err := json.Marshal(fc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadGeoJSON reads a feature collection from a GeoJSON file.
func ReadGeoJSON(path string) (*geojson.FeatureCollection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return geojson.UnmarshalFeatureCollection(data)
}
