package fit

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/messeiro/gofit/profile"
)

// readField implements spec §4.5: given a field definition and the
// definition's endianness, consume exactly fd.Size bytes and return the
// decoded Value, or ok=false when the field is absent (sentinel hit,
// unsupported array width, invalid UTF-8, or a zero-arity definition).
// The byte count consumed is always fd.Size regardless of the outcome.
func readField(r *byteReader, fd FieldDefinition, end Endianness) (Value, bool, error) {
	bt := fd.BaseType()
	size := int(fd.Size)

	if bt == profile.BaseTypeString {
		return readStringField(r, size)
	}

	elemSize := bt.ElemSize()
	if elemSize == 0 {
		// Unknown base type: consume and drop.
		if err := r.skip(size); err != nil {
			return Value{}, false, err
		}
		return Value{}, false, nil
	}

	arity := size / elemSize
	if arity == 0 {
		if err := r.skip(size); err != nil {
			return Value{}, false, err
		}
		return Value{}, false, nil
	}

	if arity == 1 {
		raw, err := readRawElement(r, bt, end)
		if err != nil {
			return Value{}, false, err
		}
		if raw == bt.Invalid() {
			return Value{}, false, nil
		}
		return makeScalarValue(bt, raw), true, nil
	}

	// arity > 1: only u8/u16/u32 families collect into an array; anything
	// else consumes the bytes and reports absent (spec §4.5, §9 Open
	// Questions — array decoding for other widths is left unsupported).
	switch bt {
	case profile.BaseTypeUint8, profile.BaseTypeUint8z, profile.BaseTypeByte:
		out := make([]uint8, 0, arity)
		for i := 0; i < arity; i++ {
			raw, err := readRawElement(r, bt, end)
			if err != nil {
				return Value{}, false, err
			}
			if raw != bt.Invalid() {
				out = append(out, uint8(raw))
			}
		}
		if len(out) == 0 {
			return Value{}, false, nil
		}
		return NewArrU8(out), true, nil
	case profile.BaseTypeUint16, profile.BaseTypeUint16z:
		out := make([]uint16, 0, arity)
		for i := 0; i < arity; i++ {
			raw, err := readRawElement(r, bt, end)
			if err != nil {
				return Value{}, false, err
			}
			if raw != bt.Invalid() {
				out = append(out, uint16(raw))
			}
		}
		if len(out) == 0 {
			return Value{}, false, nil
		}
		return NewArrU16(out), true, nil
	case profile.BaseTypeUint32, profile.BaseTypeUint32z:
		out := make([]uint32, 0, arity)
		for i := 0; i < arity; i++ {
			raw, err := readRawElement(r, bt, end)
			if err != nil {
				return Value{}, false, err
			}
			if raw != bt.Invalid() {
				out = append(out, uint32(raw))
			}
		}
		if len(out) == 0 {
			return Value{}, false, nil
		}
		return NewArrU32(out), true, nil
	default:
		if err := r.skip(size); err != nil {
			return Value{}, false, err
		}
		return Value{}, false, nil
	}
}

// readRawElement reads one base-type element and returns it zero-extended
// into a uint64, with no sentinel interpretation applied yet — the raw
// integer domain spec §9 requires sentinel comparison happen in.
func readRawElement(r *byteReader, bt profile.BaseType, end Endianness) (uint64, error) {
	switch bt.ElemSize() {
	case 1:
		v, err := r.readU8()
		return uint64(v), err
	case 2:
		v, err := r.readU16(end)
		return uint64(v), err
	case 4:
		v, err := r.readU32(end)
		return uint64(v), err
	case 8:
		return r.readU64(end)
	default:
		return 0, FormatError("unsupported base type element size")
	}
}

// makeScalarValue converts a non-sentinel raw element into its typed
// Value, reinterpreting the raw bit pattern per base type.
func makeScalarValue(bt profile.BaseType, raw uint64) Value {
	switch bt {
	case profile.BaseTypeEnum, profile.BaseTypeUint8, profile.BaseTypeUint8z, profile.BaseTypeByte:
		return NewU8(uint8(raw))
	case profile.BaseTypeSint8:
		return NewI8(int8(uint8(raw)))
	case profile.BaseTypeUint16, profile.BaseTypeUint16z:
		return NewU16(uint16(raw))
	case profile.BaseTypeSint16:
		return NewI16(int16(uint16(raw)))
	case profile.BaseTypeUint32, profile.BaseTypeUint32z:
		return NewU32(uint32(raw))
	case profile.BaseTypeSint32:
		return NewI32(int32(uint32(raw)))
	case profile.BaseTypeUint64, profile.BaseTypeUint64z:
		return NewU64(raw)
	case profile.BaseTypeSint64:
		return NewI64(int64(raw))
	case profile.BaseTypeFloat32:
		return NewF32(math.Float32frombits(uint32(raw)))
	case profile.BaseTypeFloat64:
		return NewF64(math.Float64frombits(raw))
	default:
		return Value{}
	}
}

func readStringField(r *byteReader, size int) (Value, bool, error) {
	b, err := r.take(size)
	if err != nil {
		return Value{}, false, err
	}
	trimmed := strings.Trim(string(b), "\x00")
	trimmed = strings.ReplaceAll(trimmed, "\x00", "")
	if trimmed == "" || !utf8.ValidString(trimmed) {
		return Value{}, false, nil
	}
	return NewString(trimmed), true, nil
}
