package config

// TripTablesConfig locates the trip table matrix files.
type TripTablesConfig struct {
	Dir string `yaml:"dir"`
}

// TAZConfig locates the canonical TAZ shapefile.
//
// If Shapefile is empty the taz package falls back to its canonical default
// path, which only resolves on the CTPS network.
type TAZConfig struct {
	Shapefile string `yaml:"shapefile"`
}

// TransitConfig configures transit assignment post-processing.
//
// MetamodeRevision selects which revision of the mode-to-metamode mapping
// table is in effect; the table contents changed between model vintages and
// the choice is an explicit input rather than a guess.
type TransitConfig struct {
	ScenarioDir      string `yaml:"scenarioDir"`
	MetamodeRevision string `yaml:"metamodeRevision" validate:"omitempty,oneof=2019 2021"`
}

// ModelConfig selects the travel demand model version.
type ModelConfig struct {
	TDMVersion string `yaml:"tdmVersion" validate:"omitempty,oneof=tdm19 tdm23"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	TripTables TripTablesConfig `yaml:"tripTables"`
	TAZ        TAZConfig        `yaml:"taz"`
	Transit    TransitConfig    `yaml:"transit"`
	Model      ModelConfig      `yaml:"model"`
}
