package fit

import "github.com/messeiro/gofit/profile"

// FieldValue is one decoded (field_definition_number, Value) pair, in the
// order the owning definition record declared it (spec §6's consumer
// contract: "values() -> ordered iterator of (field_number, Value)").
type FieldValue struct {
	FieldNum uint8 `json:"field_num"`
	Value    Value `json:"value"`
}

// DevFieldValue is one decoded developer field, resolved against the
// developer registry.
type DevFieldValue struct {
	DeveloperDataIndex uint8 `json:"developer_data_index"`
	FieldNum           uint8 `json:"field_num"`
	Value              Value `json:"value"`
}

// Message is a fully decoded, post-processed record (spec §3): its
// resolved MessageType, its standard field values in definition order,
// and any developer field values.
type Message struct {
	Kind      profile.MessageType
	values    []FieldValue
	DevValues []DevFieldValue
}

// Value returns the field with the given field_definition_number, if
// present in this message.
func (m Message) Value(fieldNum uint8) (Value, bool) {
	for _, fv := range m.values {
		if fv.FieldNum == fieldNum {
			return fv.Value, true
		}
	}
	return Value{}, false
}

// Values returns the message's standard fields in the order they were
// declared by the definition record.
func (m Message) Values() []FieldValue {
	return m.values
}

// localDateTimeOffsetSeconds is the offset subtracted back out of a
// LocalDateTime's UNIX-epoch-shifted seconds. It defaults to 0 per spec
// §9's Open Question resolution (DESIGN.md records the decision); the
// CLI's configuration layer can override it before decoding.
var localDateTimeOffsetSeconds int64 = 0

// SetLocalDateTimeOffset overrides the offset LocalDateTime fields are
// adjusted by, in seconds. It is a package-level knob rather than a
// decoder option because the SDK tables that declare a field's FieldType
// are themselves package-level static data (spec §9 Open Questions).
func SetLocalDateTimeOffset(seconds int64) {
	localDateTimeOffsetSeconds = seconds
}

// postProcessResult is the outcome of running the SDK-driven transform
// over one raw field (spec §4.7).
type postProcessResult struct {
	value   Value
	emit    bool
	isTimestamp bool
	rawSeconds uint32
}

// postProcessField applies the SDK-driven semantic transform named by
// mt/fieldNum's FieldType to a freshly-decoded raw Value.
func postProcessField(mt profile.MessageType, fieldNum uint8, raw Value) postProcessResult {
	ft := profile.FieldTypeOf(mt, fieldNum)

	if ft == profile.FieldTypeNone {
		return postProcessResult{emit: false}
	}

	switch ft {
	case profile.FieldTypeCoordinates:
		if n, ok := raw.I32(); ok {
			deg := float32(float64(n) * 180.0 / 2147483648.0)
			return postProcessResult{value: NewF32(deg), emit: true}
		}
		return postProcessResult{value: raw, emit: true}

	case profile.FieldTypeDateTime, profile.FieldTypeTimestamp:
		if s, ok := raw.U32(); ok {
			res := postProcessResult{
				value:       NewTime(s + fitEpochOffset),
				emit:        true,
				isTimestamp: ft == profile.FieldTypeTimestamp,
				rawSeconds:  s,
			}
			return res
		}
		return postProcessResult{value: raw, emit: true}

	case profile.FieldTypeLocalDateTime:
		if s, ok := raw.U32(); ok {
			adjusted := int64(s) + fitEpochOffset - localDateTimeOffsetSeconds
			return postProcessResult{value: NewTime(uint32(adjusted)), emit: true}
		}
		return postProcessResult{value: raw, emit: true}

	case profile.FieldTypeString, profile.FieldTypeLocaltimeIntoDay:
		return postProcessResult{value: raw, emit: true}
	}

	scale, hasScale := profile.ScaleOf(mt, fieldNum)
	offset, hasOffset := profile.OffsetOf(mt, fieldNum)

	if ft.IsNamedEnum() {
		var code uint16
		var haveCode bool
		if v, ok := raw.U8(); ok {
			code, haveCode = uint16(v), true
		} else if v, ok := raw.U16(); ok {
			code, haveCode = v, true
		}
		if haveCode {
			if sym, ok := profile.EnumSymbol(ft, code); ok {
				return postProcessResult{value: NewEnum(sym), emit: true}
			}
		}
		return postProcessResult{value: raw, emit: true}
	}

	if hasScale || hasOffset {
		if scaled, ok := raw.Scaled(scale, offset, hasScale, hasOffset); ok {
			return postProcessResult{value: scaled, emit: true}
		}
	}
	return postProcessResult{value: raw, emit: true}
}
