package profile

// fieldSpec is the per-field-slot entry an SDK profile generator would
// emit from messages.csv: the semantic FieldType plus an optional
// scale/offset pair. A zero value (FieldTypeNone, no scale, no offset)
// marks a field the profile doesn't describe; the post-processor drops
// such fields.
type fieldSpec struct {
	fieldType FieldType
	scale     float64
	offset    float64
	hasScale  bool
	hasOffset bool
}

// messageFields holds, per known MessageType, a sparse field_number→
// fieldSpec table. Missing entries default to the zero fieldSpec.
var messageFields = map[MessageType]map[uint8]fieldSpec{
	MessageTypeFileId: {
		0: {fieldType: "file"},
		1: {fieldType: FieldTypeUint16},
		2: {fieldType: "manufacturer"},
		3: {fieldType: FieldTypeUint32z},
		4: {fieldType: FieldTypeDateTime},
		5: {fieldType: FieldTypeUint16},
		7: {fieldType: FieldTypeUint32},
	},
	MessageTypeRecord: {
		0:  {fieldType: FieldTypeCoordinates},
		1:  {fieldType: FieldTypeCoordinates},
		2:  {fieldType: FieldTypeUint16, hasScale: true, scale: 5, hasOffset: true, offset: 500},
		3:  {fieldType: FieldTypeUint8},
		4:  {fieldType: FieldTypeUint8},
		5:  {fieldType: FieldTypeUint32, hasScale: true, scale: 100},
		6:  {fieldType: FieldTypeUint16, hasScale: true, scale: 1000},
		7:  {fieldType: FieldTypeUint16},
		13: {fieldType: FieldTypeSint8},
		30: {fieldType: FieldTypeUint8},
		33: {fieldType: FieldTypeUint16},
		42: {fieldType: "activity_type"},
		253: {fieldType: FieldTypeTimestamp},
	},
	MessageTypeSession: {
		0:   {fieldType: "event"},
		1:   {fieldType: "event_type"},
		2:   {fieldType: FieldTypeDateTime},
		5:   {fieldType: "sport"},
		6:   {fieldType: "sub_sport"},
		7:   {fieldType: FieldTypeUint32, hasScale: true, scale: 1000},
		8:   {fieldType: FieldTypeUint32, hasScale: true, scale: 1000},
		9:   {fieldType: FieldTypeUint32, hasScale: true, scale: 100},
		11:  {fieldType: FieldTypeUint16},
		14:  {fieldType: FieldTypeUint16, hasScale: true, scale: 1000},
		15:  {fieldType: FieldTypeUint16, hasScale: true, scale: 1000},
		16:  {fieldType: FieldTypeUint8},
		17:  {fieldType: FieldTypeUint8},
		18:  {fieldType: FieldTypeUint8},
		19:  {fieldType: FieldTypeUint8},
		253: {fieldType: FieldTypeTimestamp},
	},
	MessageTypeLap: {
		0:   {fieldType: "event"},
		1:   {fieldType: "event_type"},
		2:   {fieldType: FieldTypeDateTime},
		7:   {fieldType: FieldTypeUint32, hasScale: true, scale: 1000},
		8:   {fieldType: FieldTypeUint32, hasScale: true, scale: 1000},
		9:   {fieldType: FieldTypeUint32, hasScale: true, scale: 100},
		15:  {fieldType: FieldTypeUint16, hasScale: true, scale: 1000},
		16:  {fieldType: FieldTypeUint8},
		17:  {fieldType: FieldTypeUint8},
		253: {fieldType: FieldTypeTimestamp},
	},
	MessageTypeEvent: {
		0:   {fieldType: "event"},
		1:   {fieldType: "event_type"},
		3:   {fieldType: FieldTypeUint16},
		4:   {fieldType: FieldTypeUint32},
		7:   {fieldType: FieldTypeUint8},
		253: {fieldType: FieldTypeTimestamp},
	},
	MessageTypeDeviceInfo: {
		0:   {fieldType: FieldTypeUint8},
		1:   {fieldType: FieldTypeUint8},
		2:   {fieldType: "manufacturer"},
		3:   {fieldType: FieldTypeUint32z},
		4:   {fieldType: "garmin_product"},
		5:   {fieldType: FieldTypeUint16, hasScale: true, scale: 100},
		6:   {fieldType: FieldTypeUint8},
		10:  {fieldType: FieldTypeUint16, hasScale: true, scale: 256},
		11:  {fieldType: "battery_status"},
		253: {fieldType: FieldTypeTimestamp},
	},
	MessageTypeActivity: {
		0:   {fieldType: FieldTypeUint32, hasScale: true, scale: 1000},
		1:   {fieldType: FieldTypeUint16},
		2:   {fieldType: "activity"},
		3:   {fieldType: "event"},
		4:   {fieldType: "event_type"},
		5:   {fieldType: FieldTypeLocalDateTime},
		6:   {fieldType: FieldTypeUint8},
		253: {fieldType: FieldTypeTimestamp},
	},
	MessageTypeFieldDescription: {
		0: {fieldType: FieldTypeUint8},
		1: {fieldType: FieldTypeUint8},
		2: {fieldType: FieldTypeUint8},
		3: {fieldType: FieldTypeString},
		8: {fieldType: FieldTypeString},
	},
}

// messageTimestampField names, per known MessageType, the field_definition_number
// that carries the primary Timestamp field — used to stamp a synthetic
// Timestamp field when a compressed-timestamp header is seen.
var messageTimestampField = map[MessageType]uint8{
	MessageTypeRecord:     253,
	MessageTypeSession:    253,
	MessageTypeLap:        253,
	MessageTypeEvent:      253,
	MessageTypeDeviceInfo: 253,
	MessageTypeActivity:   253,
}
