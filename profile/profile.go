package profile

// FieldTypeOf resolves the semantic FieldType the profile assigns to
// (message type, field_definition_number). It returns FieldTypeNone for
// any field the profile doesn't describe, which tells the post-processor
// to drop the field (spec §4.7, "None").
func FieldTypeOf(mt MessageType, fieldNum uint8) FieldType {
	fields, ok := messageFields[mt]
	if !ok {
		return FieldTypeNone
	}
	return fields[fieldNum].fieldType
}

// ScaleOf returns the divisor to apply to a raw numeric field before
// widening to F64, and whether one is defined.
func ScaleOf(mt MessageType, fieldNum uint8) (float64, bool) {
	fields, ok := messageFields[mt]
	if !ok {
		return 0, false
	}
	spec := fields[fieldNum]
	return spec.scale, spec.hasScale
}

// OffsetOf returns the value subtracted from a raw numeric field after
// scaling, and whether one is defined.
func OffsetOf(mt MessageType, fieldNum uint8) (float64, bool) {
	fields, ok := messageFields[mt]
	if !ok {
		return 0, false
	}
	spec := fields[fieldNum]
	return spec.offset, spec.hasOffset
}

// TimestampFieldOf returns the field_definition_number that carries the
// message type's primary Timestamp field, used to stamp a synthetic
// Timestamp field when reconstituting a compressed-timestamp header.
func TimestampFieldOf(mt MessageType) (uint8, bool) {
	num, ok := messageTimestampField[mt]
	return num, ok
}
