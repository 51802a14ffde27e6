package fit

import (
	"encoding/json"
	"fmt"

	"github.com/messeiro/gofit/profile"
)

// jsonValue is the wire shape a Value marshals to/from: a symbolic kind
// name plus a single JSON-native payload, so numeric widths and arrays
// come through as ordinary JSON numbers/arrays rather than a struct with
// mostly-empty fields per variant.
type jsonValue struct {
	Kind string      `json:"kind"`
	V    interface{} `json:"value"`
}

// MarshalJSON renders a Value as {"kind": "...", "value": ...}, used by
// cmd/fitdump's JSON output mode.
func (v Value) MarshalJSON() ([]byte, error) {
	jv := jsonValue{Kind: v.Kind.String()}
	switch v.Kind {
	case KindU8:
		jv.V = v.u8
	case KindI8:
		jv.V = v.i8
	case KindU16:
		jv.V = v.u16
	case KindI16:
		jv.V = v.i16
	case KindU32:
		jv.V = v.u32
	case KindI32:
		jv.V = v.i32
	case KindU64:
		jv.V = v.u64
	case KindI64:
		jv.V = v.i64
	case KindF32:
		jv.V = v.f32
	case KindF64:
		jv.V = v.f64
	case KindString, KindEnum:
		jv.V = v.str
	case KindTime:
		jv.V = v.u32
	case KindArrU8:
		// A []uint8 would marshal as a base64 string; widen it so it comes
		// through as a JSON array like the other array kinds.
		arr := make([]uint16, len(v.arrU8))
		for i, b := range v.arrU8 {
			arr[i] = uint16(b)
		}
		jv.V = arr
	case KindArrU16:
		jv.V = v.arrU16
	case KindArrU32:
		jv.V = v.arrU32
	default:
		jv.V = nil
	}
	return json.Marshal(jv)
}

// UnmarshalJSON reconstructs a Value from the shape MarshalJSON produces.
func (v *Value) UnmarshalJSON(data []byte) error {
	var jv jsonValue
	if err := json.Unmarshal(data, &jv); err != nil {
		return err
	}

	switch jv.Kind {
	case KindInvalid.String():
		*v = Value{}
		return nil
	case KindU8.String():
		n, err := jsonNumber[uint8](jv.V)
		*v = NewU8(n)
		return err
	case KindI8.String():
		n, err := jsonNumber[int8](jv.V)
		*v = NewI8(n)
		return err
	case KindU16.String():
		n, err := jsonNumber[uint16](jv.V)
		*v = NewU16(n)
		return err
	case KindI16.String():
		n, err := jsonNumber[int16](jv.V)
		*v = NewI16(n)
		return err
	case KindU32.String():
		n, err := jsonNumber[uint32](jv.V)
		*v = NewU32(n)
		return err
	case KindI32.String():
		n, err := jsonNumber[int32](jv.V)
		*v = NewI32(n)
		return err
	case KindU64.String():
		n, err := jsonNumber[uint64](jv.V)
		*v = NewU64(n)
		return err
	case KindI64.String():
		n, err := jsonNumber[int64](jv.V)
		*v = NewI64(n)
		return err
	case KindF32.String():
		n, err := jsonNumber[float32](jv.V)
		*v = NewF32(n)
		return err
	case KindF64.String():
		n, err := jsonNumber[float64](jv.V)
		*v = NewF64(n)
		return err
	case KindString.String():
		s, _ := jv.V.(string)
		*v = NewString(s)
		return nil
	case KindEnum.String():
		s, _ := jv.V.(string)
		*v = NewEnum(s)
		return nil
	case KindTime.String():
		n, err := jsonNumber[uint32](jv.V)
		*v = NewTime(n)
		return err
	case KindArrU8.String(), KindArrU16.String(), KindArrU32.String():
		return unmarshalJSONArray(v, jv)
	default:
		return fmt.Errorf("fit: unknown Value kind %q in JSON", jv.Kind)
	}
}

func unmarshalJSONArray(v *Value, jv jsonValue) error {
	items, ok := jv.V.([]interface{})
	if !ok {
		return fmt.Errorf("fit: expected array payload for kind %q", jv.Kind)
	}
	switch jv.Kind {
	case "arr_u8":
		out := make([]uint8, 0, len(items))
		for _, it := range items {
			n, err := jsonNumber[uint8](it)
			if err != nil {
				return err
			}
			out = append(out, n)
		}
		*v = NewArrU8(out)
	case "arr_u16":
		out := make([]uint16, 0, len(items))
		for _, it := range items {
			n, err := jsonNumber[uint16](it)
			if err != nil {
				return err
			}
			out = append(out, n)
		}
		*v = NewArrU16(out)
	case "arr_u32":
		out := make([]uint32, 0, len(items))
		for _, it := range items {
			n, err := jsonNumber[uint32](it)
			if err != nil {
				return err
			}
			out = append(out, n)
		}
		*v = NewArrU32(out)
	}
	return nil
}

type jsonNumeric interface {
	~uint8 | ~int8 | ~uint16 | ~int16 | ~uint32 | ~int32 | ~uint64 | ~int64 | ~float32 | ~float64
}

// jsonNumber converts the float64 encoding/json decodes every JSON number
// into back to the concrete numeric type the Value constructor expects.
func jsonNumber[T jsonNumeric](raw interface{}) (T, error) {
	f, ok := raw.(float64)
	if !ok {
		return 0, fmt.Errorf("fit: expected numeric JSON value, got %T", raw)
	}
	return T(f), nil
}

// messageJSON is the wire shape Message (de)serializes to/from — the
// unexported values slice exposed as "values" so the decoded field list
// round-trips, matching spec §6's (field_number, Value) consumer contract.
type messageJSON struct {
	Kind      string          `json:"kind"`
	Values    []FieldValue    `json:"values"`
	DevValues []DevFieldValue `json:"dev_values,omitempty"`
}

// MarshalJSON renders a Message with its field values visible, which the
// default struct-tag-based encoding would miss since values is unexported.
func (m Message) MarshalJSON() ([]byte, error) {
	return json.Marshal(messageJSON{
		Kind:      m.Kind.String(),
		Values:    m.values,
		DevValues: m.DevValues,
	})
}

// UnmarshalJSON reconstructs a Message from the shape MarshalJSON produces.
// Kind is restored by name lookup; an unrecognized name round-trips as
// MessageTypeNone, matching the decoder's own "unknown message type"
// handling.
func (m *Message) UnmarshalJSON(data []byte) error {
	var mj messageJSON
	if err := json.Unmarshal(data, &mj); err != nil {
		return err
	}
	m.Kind = profile.MessageTypeByName(mj.Kind)
	m.values = mj.Values
	m.DevValues = mj.DevValues
	return nil
}
