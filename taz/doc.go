// Package taz provides attribute queries over the model region's Traffic
// Analysis Zones.
//
// Attributes are read from the canonical TAZ shapefile's .dbf companion;
// the geometry portion of the shapefile is ignored. A Manager owns an
// independent, immutable snapshot of the attribute table, so more than one
// instance may be active at once (e.g. to compare two model vintages).
// The snapshot is never mutated after construction, which is what makes
// concurrent reads of a single instance safe.
package taz
