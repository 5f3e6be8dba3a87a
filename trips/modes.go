package trips

// Time period identifiers for the four daily assignment periods.
const (
	PeriodAM = "am"
	PeriodMD = "md"
	PeriodPM = "pm"
	PeriodNT = "nt"
)

// AllTimePeriods lists the four daily time periods in model order.
var AllTimePeriods = []string{PeriodAM, PeriodMD, PeriodPM, PeriodNT}

// Mode catalogue, partitioned by category.
var (
	AutoModes         = []string{"SOV", "HOV"}
	TruckModes        = []string{"Heavy_Truck", "Heavy_Truck_HazMat", "Medium_Truck", "Medium_Truck_HazMat", "Light_Truck"}
	NonMotorizedModes = []string{"Walk", "Bike"}
	TransitModes      = []string{"DAT_Boat", "DET_Boat", "DAT_CR", "DET_CR", "DAT_LB", "DET_LB", "DAT_RT", "DET_RT", "WAT"}
)

// AllModes is the full mode catalogue; it defaults a nil mode list in
// LoadTripTables.
var AllModes = concat(AutoModes, TruckModes, NonMotorizedModes, TransitModes)

func concat(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
