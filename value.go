package fit

import "fmt"

// Kind tags which variant of Value is populated. Every read site and the
// post-processor switch on Kind rather than inspecting Go's dynamic type,
// so there is exactly one place per variant that knows its own shape.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindU8
	KindU16
	KindU32
	KindU64
	KindI8
	KindI16
	KindI32
	KindI64
	KindF32
	KindF64
	KindString
	KindEnum
	KindTime
	KindArrU8
	KindArrU16
	KindArrU32
)

func (k Kind) String() string {
	switch k {
	case KindU8:
		return "u8"
	case KindU16:
		return "u16"
	case KindU32:
		return "u32"
	case KindU64:
		return "u64"
	case KindI8:
		return "i8"
	case KindI16:
		return "i16"
	case KindI32:
		return "i32"
	case KindI64:
		return "i64"
	case KindF32:
		return "f32"
	case KindF64:
		return "f64"
	case KindString:
		return "string"
	case KindEnum:
		return "enum"
	case KindTime:
		return "time"
	case KindArrU8:
		return "arr_u8"
	case KindArrU16:
		return "arr_u16"
	case KindArrU32:
		return "arr_u32"
	default:
		return "invalid"
	}
}

// Value is a tagged sum over every shape a decoded FIT field can take.
// Exactly one of the typed fields is meaningful, selected by Kind; there
// is no implicit numeric widening between variants outside of Scaled and
// AsFloat64.
type Value struct {
	Kind Kind

	u8  uint8
	i8  int8
	u16 uint16
	i16 int16
	u32 uint32
	i32 int32
	u64 uint64
	i64 int64
	f32 float32
	f64 float64

	str string

	arrU8  []uint8
	arrU16 []uint16
	arrU32 []uint32
}

func NewU8(v uint8) Value   { return Value{Kind: KindU8, u8: v} }
func NewI8(v int8) Value    { return Value{Kind: KindI8, i8: v} }
func NewU16(v uint16) Value { return Value{Kind: KindU16, u16: v} }
func NewI16(v int16) Value  { return Value{Kind: KindI16, i16: v} }
func NewU32(v uint32) Value { return Value{Kind: KindU32, u32: v} }
func NewI32(v int32) Value  { return Value{Kind: KindI32, i32: v} }
func NewU64(v uint64) Value { return Value{Kind: KindU64, u64: v} }
func NewI64(v int64) Value  { return Value{Kind: KindI64, i64: v} }
func NewF32(v float32) Value { return Value{Kind: KindF32, f32: v} }
func NewF64(v float64) Value { return Value{Kind: KindF64, f64: v} }
func NewString(v string) Value { return Value{Kind: KindString, str: v} }
func NewEnum(symbol string) Value { return Value{Kind: KindEnum, str: symbol} }

// NewTime wraps a UNIX-epoch-adjusted second count.
func NewTime(unixSeconds uint32) Value { return Value{Kind: KindTime, u32: unixSeconds} }

func NewArrU8(v []uint8) Value   { return Value{Kind: KindArrU8, arrU8: v} }
func NewArrU16(v []uint16) Value { return Value{Kind: KindArrU16, arrU16: v} }
func NewArrU32(v []uint32) Value { return Value{Kind: KindArrU32, arrU32: v} }

func (v Value) U8() (uint8, bool) {
	if v.Kind != KindU8 {
		return 0, false
	}
	return v.u8, true
}

func (v Value) I8() (int8, bool) {
	if v.Kind != KindI8 {
		return 0, false
	}
	return v.i8, true
}

func (v Value) U16() (uint16, bool) {
	if v.Kind != KindU16 {
		return 0, false
	}
	return v.u16, true
}

func (v Value) I16() (int16, bool) {
	if v.Kind != KindI16 {
		return 0, false
	}
	return v.i16, true
}

func (v Value) U32() (uint32, bool) {
	if v.Kind != KindU32 {
		return 0, false
	}
	return v.u32, true
}

func (v Value) I32() (int32, bool) {
	if v.Kind != KindI32 {
		return 0, false
	}
	return v.i32, true
}

func (v Value) U64() (uint64, bool) {
	if v.Kind != KindU64 {
		return 0, false
	}
	return v.u64, true
}

func (v Value) I64() (int64, bool) {
	if v.Kind != KindI64 {
		return 0, false
	}
	return v.i64, true
}

func (v Value) F32() (float32, bool) {
	if v.Kind != KindF32 {
		return 0, false
	}
	return v.f32, true
}

func (v Value) F64() (float64, bool) {
	if v.Kind != KindF64 {
		return 0, false
	}
	return v.f64, true
}

func (v Value) Str() (string, bool) {
	if v.Kind != KindString {
		return "", false
	}
	return v.str, true
}

func (v Value) Enum() (string, bool) {
	if v.Kind != KindEnum {
		return "", false
	}
	return v.str, true
}

func (v Value) Time() (uint32, bool) {
	if v.Kind != KindTime {
		return 0, false
	}
	return v.u32, true
}

func (v Value) ArrU8() ([]uint8, bool) {
	if v.Kind != KindArrU8 {
		return nil, false
	}
	return v.arrU8, true
}

func (v Value) ArrU16() ([]uint16, bool) {
	if v.Kind != KindArrU16 {
		return nil, false
	}
	return v.arrU16, true
}

func (v Value) ArrU32() ([]uint32, bool) {
	if v.Kind != KindArrU32 {
		return nil, false
	}
	return v.arrU32, true
}

// AsFloat64 widens any scalar numeric Kind to float64. It is the one
// place the decoder allows implicit numeric widening, used exclusively by
// Scaled — never by the field reader.
func (v Value) AsFloat64() (float64, bool) {
	switch v.Kind {
	case KindU8:
		return float64(v.u8), true
	case KindI8:
		return float64(v.i8), true
	case KindU16:
		return float64(v.u16), true
	case KindI16:
		return float64(v.i16), true
	case KindU32:
		return float64(v.u32), true
	case KindI32:
		return float64(v.i32), true
	case KindU64:
		return float64(v.u64), true
	case KindI64:
		return float64(v.i64), true
	case KindF32:
		return float64(v.f32), true
	case KindF64:
		return v.f64, true
	default:
		return 0, false
	}
}

// Scaled applies spec §4.7's scale/offset rule: divide by scale (if
// present), then subtract offset (if present), always widening the
// result to an F64 Value. The caller is expected to have already checked
// hasScale || hasOffset; Scaled on neither just re-widens the raw value.
func (v Value) Scaled(scale, offset float64, hasScale, hasOffset bool) (Value, bool) {
	f, ok := v.AsFloat64()
	if !ok {
		return Value{}, false
	}
	if hasScale {
		f = f / scale
	}
	if hasOffset {
		f = f - offset
	}
	return NewF64(f), true
}

// String implements fmt.Stringer so printing a Value (%v/%s, log lines,
// CLI table output) shows its tagged value instead of its raw struct
// layout.
func (v Value) String() string {
	return v.GoString()
}

func (v Value) GoString() string {
	switch v.Kind {
	case KindU8:
		return fmt.Sprintf("U8(%d)", v.u8)
	case KindI8:
		return fmt.Sprintf("I8(%d)", v.i8)
	case KindU16:
		return fmt.Sprintf("U16(%d)", v.u16)
	case KindI16:
		return fmt.Sprintf("I16(%d)", v.i16)
	case KindU32:
		return fmt.Sprintf("U32(%d)", v.u32)
	case KindI32:
		return fmt.Sprintf("I32(%d)", v.i32)
	case KindU64:
		return fmt.Sprintf("U64(%d)", v.u64)
	case KindI64:
		return fmt.Sprintf("I64(%d)", v.i64)
	case KindF32:
		return fmt.Sprintf("F32(%v)", v.f32)
	case KindF64:
		return fmt.Sprintf("F64(%v)", v.f64)
	case KindString:
		return fmt.Sprintf("String(%q)", v.str)
	case KindEnum:
		return fmt.Sprintf("Enum(%q)", v.str)
	case KindTime:
		return fmt.Sprintf("Time(%d)", v.u32)
	case KindArrU8:
		return fmt.Sprintf("ArrU8(%v)", v.arrU8)
	case KindArrU16:
		return fmt.Sprintf("ArrU16(%v)", v.arrU16)
	case KindArrU32:
		return fmt.Sprintf("ArrU32(%v)", v.arrU32)
	default:
		return "Invalid"
	}
}
