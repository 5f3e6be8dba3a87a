package taz

import "fmt"

// ZoneType classifies a TAZ as inside or outside the modeled region.
type ZoneType string

const (
	Internal ZoneType = "I"
	External ZoneType = "E"
)

// Record is one TAZ's attribute record. ID and Taz are model-wide unique.
// Subregion may hold two '/'-joined subregion codes for towns that belong
// to two subregions; it is empty whenever InBRMPO is false. Sector is empty
// for TAZes outside the 164-municipality analysis area.
type Record struct {
	ID        int
	Taz       int
	Type      ZoneType
	Town      string
	State     string
	TownState string
	MPO       string
	InBRMPO   bool
	Subregion string
	Sector    string
}

// requiredAttributes are the .dbf columns a TAZ shapefile must carry.
var requiredAttributes = []string{
	"id", "taz", "type", "town", "state", "town_state",
	"mpo", "in_brmpo", "subregion", "sector",
}

// MissingAttributeError reports a required attribute absent from the
// shapefile's .dbf schema.
type MissingAttributeError struct {
	Attribute string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("taz: required attribute %q missing from shapefile", e.Attribute)
}
