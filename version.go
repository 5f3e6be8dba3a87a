package modx

// Version identifies the current revision of the modx utilities.
const Version = "0.2.3"

// GetVersion returns the modx version string.
func GetVersion() string {
	return Version
}
