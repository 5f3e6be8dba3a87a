// Package config handles application configuration loading and validation.
//
// Configuration is loaded from modx.yml and validated using struct tags.
// Paths for model data (trip tables, TAZ shapefile, transit assignment
// results) are plain filesystem paths; there is no environment-variable or
// network surface.
package config
