package taz

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	shp "github.com/jonas-p/go-shp"
)

// DefaultShapefile is the canonical TAZ shapefile location. The path is
// specific to the CTPS network and will not resolve on other hosts; pass an
// explicit path to NewManager anywhere else.
const DefaultShapefile = `G:/Data_Resources/modx/canonical_TAZ_shapefile/candidate_CTPS_TAZ_STATEWIDE_2019.shp`

// Manager answers attribute queries over the TAZes in the model region.
// Every accessor is a pure scan over the manager's own snapshot and returns
// a new slice in table order.
type Manager struct {
	records []Record
}

// NewManager loads the attribute table from the given shapefile. An empty
// path falls back to DefaultShapefile. Only the .dbf attribute portion of
// the shapefile is read.
func NewManager(shapefile string) (*Manager, error) {
	if shapefile == "" {
		shapefile = DefaultShapefile
	}
	r, err := shp.Open(shapefile)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	fields := r.Fields()
	col := make(map[string]int, len(fields))
	for i, f := range fields {
		col[strings.ToLower(f.String())] = i
	}
	for _, name := range requiredAttributes {
		if _, ok := col[name]; !ok {
			return nil, &MissingAttributeError{Attribute: name}
		}
	}

	m := &Manager{}
	for r.Next() {
		n, _ := r.Shape()
		attr := func(name string) string {
			return strings.TrimSpace(r.ReadAttribute(n, col[name]))
		}
		id, err := strconv.Atoi(attr("id"))
		if err != nil {
			return nil, fmt.Errorf("taz: record %d: bad id: %w", n, err)
		}
		tazNum, err := strconv.Atoi(attr("taz"))
		if err != nil {
			return nil, fmt.Errorf("taz: record %d: bad taz: %w", n, err)
		}
		inBRMPO, err := strconv.Atoi(attr("in_brmpo"))
		if err != nil {
			return nil, fmt.Errorf("taz: record %d: bad in_brmpo: %w", n, err)
		}
		m.records = append(m.records, Record{
			ID:        id,
			Taz:       tazNum,
			Type:      ZoneType(attr("type")),
			Town:      attr("town"),
			State:     attr("state"),
			TownState: attr("town_state"),
			MPO:       attr("mpo"),
			InBRMPO:   inBRMPO == 1,
			Subregion: attr("subregion"),
			Sector:    attr("sector"),
		})
	}
	log.Printf("Number of records read = %d", len(m.records))
	return m, nil
}

// NumRecords returns the size of the loaded attribute table.
func (m *Manager) NumRecords() int {
	return len(m.records)
}

func (m *Manager) filter(pred func(Record) bool) []Record {
	var out []Record
	for _, rec := range m.records {
		if pred(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// MPOToTazes returns the records for the TAZes in the named MPO.
func (m *Manager) MPOToTazes(mpo string) []Record {
	return m.filter(func(r Record) bool { return r.MPO == mpo })
}

// BRMPOTazes returns the records for the TAZes in the Boston Region MPO.
func (m *Manager) BRMPOTazes() []Record {
	return m.filter(func(r Record) bool { return r.InBRMPO })
}

// BRMPOTownToTazes returns the records for the TAZes in the named Boston
// Region MPO town.
func (m *Manager) BRMPOTownToTazes(town string) []Record {
	return m.filter(func(r Record) bool { return r.InBRMPO && r.Town == town })
}

// BRMPOSubregionToTazes returns the records for the TAZes in the named
// Boston Region MPO subregion.
//
// Some towns lie in two subregions and carry a compound subregion field of
// the form 'SUBREGION_1/SUBREGION_2', so the codes that appear in compounds
// (ICC, TRIC, SWAP) match by substring containment; every other code
// matches exactly.
func (m *Manager) BRMPOSubregionToTazes(subregion string) []Record {
	switch subregion {
	case "ICC", "TRIC", "SWAP":
		return m.filter(func(r Record) bool { return strings.Contains(r.Subregion, subregion) })
	default:
		return m.filter(func(r Record) bool { return r.Subregion == subregion })
	}
}

// SectorToTazes returns the records for the TAZes in the named analysis
// sector.
func (m *Manager) SectorToTazes(sector string) []Record {
	return m.filter(func(r Record) bool { return r.Sector == sector })
}

// TownToTazes returns the records for the TAZes in the named town. If a
// town with the same name occurs in more than one state, the TAZes of all
// such towns are returned.
func (m *Manager) TownToTazes(town string) []Record {
	return m.filter(func(r Record) bool { return r.Town == town })
}

// TownStateToTazes returns the records for the TAZes in the named town of
// the named state.
func (m *Manager) TownStateToTazes(town, state string) []Record {
	return m.filter(func(r Record) bool { return r.State == state && r.Town == town })
}

// StateToTazes returns the records for the TAZes in the named state.
func (m *Manager) StateToTazes(state string) []Record {
	return m.filter(func(r Record) bool { return r.State == state })
}

// TazIDs projects a list of TAZ records down to their IDs, preserving
// order.
func TazIDs(records []Record) []int {
	ids := make([]int, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	return ids
}
