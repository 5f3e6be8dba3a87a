/*
Package modx provides utilities used by the CTPS Model Data Explorer.

The utilities fall into the following categories:

  - Version identification (this package)
  - Trip table management (package trips)
  - TAZ attribute table management (package taz)
  - Utilities for the transit mode: metamode resolution and boardings
    aggregation (package transit)
  - Utilities for highway assignment and skims (package assignment)
  - Export and geometry helpers for tabular and geometric collections
    (packages export and geoutil)

Configuration is loaded from modx.yml (package config). All operations are
synchronous, in-process transformations over data read from the model's
output directories; nothing here runs the model itself.
*/
package modx
