// Package trips provides access to the model's trip table matrices.
//
// Trip tables are stored as one matrix file per time period (am, md, pm,
// nt), each holding one named origin-destination matrix per travel mode.
// The file format is hidden behind the MatrixFile interface; the default
// opener reads the zip-of-CSV container produced by the model export step.
//
// Loading is deliberately uncached: every LoadTripTables call re-reads and
// re-copies the requested matrices, so callers comparing scenarios always
// see the bytes on disk.
package trips
