// Package export writes tabular and geometric collections to interchange
// formats: delimited text for Frames, GeoJSON and ESRI shapefiles for
// feature collections.
package export
