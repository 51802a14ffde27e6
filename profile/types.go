package profile

// MessageType is the symbolic name the SDK tables resolve a global message
// number to. The sentinel MessageTypeNone stands for "unknown
// global message number" — the engine must still consume the record's
// bytes, it just cannot interpret them.
type MessageType uint16

// MessageTypeNone is returned by MessageTypeOf for any global message
// number this profile does not carry a definition for. 0xFFFF mirrors the
// FIT convention that an all-ones field is the "invalid" sentinel.
const MessageTypeNone MessageType = 0xFFFF

// Known message types. The underlying value is the FIT global message
// number, so MessageTypeOf is a straight table lookup/validity check
// rather than a re-encoding.
const (
	MessageTypeFileId           MessageType = 0
	MessageTypeCapabilities     MessageType = 1
	MessageTypeDeviceSettings   MessageType = 2
	MessageTypeUserProfile      MessageType = 3
	MessageTypeHrmProfile       MessageType = 4
	MessageTypeHrZone           MessageType = 8
	MessageTypeRecord           MessageType = 20
	MessageTypeEvent            MessageType = 21
	MessageTypeDeviceInfo       MessageType = 23
	MessageTypeWorkout          MessageType = 26
	MessageTypeWorkoutStep      MessageType = 27
	MessageTypeSchedule         MessageType = 28
	MessageTypeWeightScale      MessageType = 30
	MessageTypeCourse           MessageType = 31
	MessageTypeCoursePoint      MessageType = 32
	MessageTypeTotals           MessageType = 33
	MessageTypeActivity         MessageType = 34
	MessageTypeSoftware         MessageType = 35
	MessageTypeFileCapabilities MessageType = 37
	MessageTypeLap              MessageType = 19
	MessageTypeSession          MessageType = 18
	MessageTypeFieldDescription MessageType = 206
	MessageTypeDeveloperDataId  MessageType = 207
)

var messageTypeNames = map[MessageType]string{
	MessageTypeFileId:           "file_id",
	MessageTypeCapabilities:     "capabilities",
	MessageTypeDeviceSettings:   "device_settings",
	MessageTypeUserProfile:      "user_profile",
	MessageTypeHrmProfile:       "hrm_profile",
	MessageTypeHrZone:           "hr_zone",
	MessageTypeRecord:           "record",
	MessageTypeEvent:            "event",
	MessageTypeDeviceInfo:       "device_info",
	MessageTypeWorkout:          "workout",
	MessageTypeWorkoutStep:      "workout_step",
	MessageTypeSchedule:         "schedule",
	MessageTypeWeightScale:      "weight_scale",
	MessageTypeCourse:           "course",
	MessageTypeCoursePoint:      "course_point",
	MessageTypeTotals:           "totals",
	MessageTypeActivity:         "activity",
	MessageTypeSoftware:         "software",
	MessageTypeFileCapabilities: "file_capabilities",
	MessageTypeLap:              "lap",
	MessageTypeSession:          "session",
	MessageTypeFieldDescription: "field_description",
	MessageTypeDeveloperDataId:  "developer_data_id",
}

// String returns the SDK's snake_case message name, or "unknown" for
// anything this profile does not know.
func (m MessageType) String() string {
	if name, ok := messageTypeNames[m]; ok {
		return name
	}
	return "unknown"
}

// MessageTypeByName resolves the SDK's snake_case message name back to its
// MessageType, or MessageTypeNone for any name this profile does not
// carry (including "unknown" itself) — the inverse of String, used when
// round-tripping a Message through JSON.
func MessageTypeByName(name string) MessageType {
	for mt, n := range messageTypeNames {
		if n == name {
			return mt
		}
	}
	return MessageTypeNone
}

// MessageTypeOf resolves a wire-level global message number to its
// symbolic MessageType, or MessageTypeNone if this profile carries no
// definition for it.
func MessageTypeOf(globalMesgNum uint16) MessageType {
	mt := MessageType(globalMesgNum)
	if _, ok := messageTypeNames[mt]; ok {
		return mt
	}
	return MessageTypeNone
}

// FieldType is the semantic interpretation the SDK profile assigns to a
// field slot: one of the fixed transform kinds below, or — for anything
// else — the name of a named enumeration to resolve raw codes against
// (e.g. "file", "manufacturer", "garmin_product").
type FieldType string

// Fixed semantic field types with a dedicated post-processing rule.
const (
	FieldTypeNone             FieldType = ""
	FieldTypeCoordinates      FieldType = "coordinates"
	FieldTypeDateTime         FieldType = "date_time"
	FieldTypeTimestamp        FieldType = "timestamp"
	FieldTypeLocalDateTime    FieldType = "local_date_time"
	FieldTypeString           FieldType = "string"
	FieldTypeLocaltimeIntoDay FieldType = "localtime_into_day"
	FieldTypeUint8            FieldType = "uint8"
	FieldTypeUint8z           FieldType = "uint8z"
	FieldTypeUint16           FieldType = "uint16"
	FieldTypeUint16z          FieldType = "uint16z"
	FieldTypeUint32           FieldType = "uint32"
	FieldTypeUint32z          FieldType = "uint32z"
	FieldTypeSint8            FieldType = "sint8"
)

// IsScaled reports whether this FieldType is one of the scale/offset
// bearing numeric kinds from spec §4.7's table.
func (f FieldType) IsScaled() bool {
	switch f {
	case FieldTypeUint8, FieldTypeUint8z, FieldTypeUint16, FieldTypeUint16z,
		FieldTypeUint32, FieldTypeUint32z, FieldTypeSint8:
		return true
	}
	return false
}

// IsNamedEnum reports whether f names a lookup enumeration rather than one
// of the fixed semantic kinds above.
func (f FieldType) IsNamedEnum() bool {
	switch f {
	case FieldTypeNone, FieldTypeCoordinates, FieldTypeDateTime, FieldTypeTimestamp,
		FieldTypeLocalDateTime, FieldTypeString, FieldTypeLocaltimeIntoDay,
		FieldTypeUint8, FieldTypeUint8z, FieldTypeUint16, FieldTypeUint16z,
		FieldTypeUint32, FieldTypeUint32z, FieldTypeSint8:
		return false
	}
	return true
}
