// Package transit provides utilities for the transit mode: resolution of
// numeric route mode codes to coarse "metamode" categories, and aggregation
// of per-period transit assignment boardings into a daily total.
package transit
