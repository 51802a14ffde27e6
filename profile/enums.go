package profile

// enumTables holds, per named-enumeration FieldType, the raw-code→symbol
// table an SDK generator would emit from types.csv. Only a representative
// slice of each real enumeration is carried — enough for the message
// types profile.go wires up — since the full vendor tables run into the
// thousands of entries and add nothing a lookup-by-code doesn't already
// demonstrate.
var enumTables = map[FieldType]map[uint16]string{
	"file": {
		1:  "device",
		2:  "settings",
		3:  "sport_settings",
		4:  "activity",
		5:  "workout",
		6:  "course",
		9:  "weight",
		10: "totals",
		11: "goals",
		34: "segment",
		49: "dive_summary",
	},
	"manufacturer": {
		1:   "garmin",
		2:   "garmin_fr405_antfs",
		3:   "zephyr",
		4:   "dayton",
		7:   "quarq",
		23:  "dynastream",
		255: "development",
		257: "healthandlife",
	},
	"garmin_product": {
		1:    "hrm1",
		2:    "axh01",
		3:    "axb01",
		717:  "edge_520",
		988:  "edge_820",
		1561: "fenix5",
		2886: "edge_830",
	},
	"event": {
		0:  "timer",
		3:  "workout",
		4:  "workout_step",
		7:  "power_down",
		8:  "power_up",
		9:  "off_course",
		10: "session",
		11: "lap",
		23: "recovery_hr",
		25: "battery_low",
		26: "hr_high_alert",
		43: "rider_position_change",
	},
	"event_type": {
		0: "start",
		1: "stop",
		3: "marker",
		4: "stop_all",
		8: "stop_disable",
		9: "stop_disable_all",
	},
	"sport": {
		0:   "generic",
		1:   "running",
		2:   "cycling",
		4:   "swimming",
		5:   "strength_training",
		11:  "hiking",
		254: "all",
	},
	"sub_sport": {
		0:  "generic",
		1:  "treadmill",
		6:  "road",
		7:  "mountain",
		58: "indoor_cycling",
	},
	"activity_type": {
		0:   "generic",
		1:   "running",
		2:   "cycling",
		3:   "transition",
		4:   "fitness_equipment",
		5:   "swimming",
		6:   "walking",
		254: "all",
	},
	"activity": {
		0: "manual",
		1: "auto_multi_sport",
	},
	"battery_status": {
		1: "new",
		2: "good",
		3: "ok",
		4: "low",
		5: "critical",
		6: "charging",
		7: "unknown",
	},
}

// EnumSymbol resolves a raw enum code to its symbolic name for a named
// enumeration FieldType. The second return is false when ft names no
// known enumeration, or the table has no entry for code — in both cases
// the caller's contract (spec §4.7) is to keep the raw integer.
func EnumSymbol(ft FieldType, code uint16) (string, bool) {
	table, ok := enumTables[ft]
	if !ok {
		return "", false
	}
	sym, ok := table[code]
	return sym, ok
}
