// Package assignment holds the version-tagged managers for highway
// assignment data and skims.
//
// Earlier revisions modeled each TDM version as its own subtype; the
// versions differ only by a tag and the (still unsettled) on-disk layout of
// their scenario outputs, so a single Manager dispatched on TDMVersion
// replaces the hierarchy. The loaders stay unimplemented until the TDM23
// output layout is finalized.
package assignment

import (
	"errors"
	"fmt"
)

// TDMVersion identifies a travel demand model version.
type TDMVersion string

const (
	TDM19 TDMVersion = "tdm19"
	TDM23 TDMVersion = "tdm23"
)

// ErrNotImplemented is returned by loaders whose scenario layout is not yet
// defined.
var ErrNotImplemented = errors.New("not implemented")

// Manager provides access to highway assignment data and skims for one TDM
// version.
type Manager struct {
	version TDMVersion
}

// NewManager returns a manager for the given TDM version.
func NewManager(version TDMVersion) (*Manager, error) {
	switch version {
	case TDM19, TDM23:
		return &Manager{version: version}, nil
	default:
		return nil, fmt.Errorf("assignment: unknown TDM version %q", version)
	}
}

// Version returns the manager's TDM version tag.
func (m *Manager) Version() TDMVersion {
	return m.version
}

// LoadHighwayAssignment loads highway assignment results for a scenario.
func (m *Manager) LoadHighwayAssignment(scenario string) error {
	return fmt.Errorf("assignment: highway assignment for %s: %w", m.version, ErrNotImplemented)
}

// LoadSkims loads the skim matrices for a scenario.
func (m *Manager) LoadSkims(scenario string) error {
	return fmt.Errorf("assignment: skims for %s: %w", m.version, ErrNotImplemented)
}
