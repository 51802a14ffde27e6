// Package profile holds the code-generated-style lookup tables that the FIT
// SDK's vendor profile (types.csv, messages.csv) would normally produce at
// build time: the 17 base types, the known message and field type
// catalogues, scale/offset tables, and symbolic enum names. Everything here
// is closed-world static data keyed by small integers, never mutated after
// init, and safe for concurrent read access.
package profile

// BaseType identifies one of the FIT wire-level primitive encodings.
type BaseType uint8

// The 17 FIT base types (see FIT SDK profile.xlsx "Types" tab, "fit_base_type").
const (
	BaseTypeEnum BaseType = iota
	BaseTypeSint8
	BaseTypeUint8
	BaseTypeSint16
	BaseTypeUint16
	BaseTypeSint32
	BaseTypeUint32
	BaseTypeString
	BaseTypeFloat32
	BaseTypeFloat64
	BaseTypeUint8z
	BaseTypeUint16z
	BaseTypeUint32z
	BaseTypeByte
	BaseTypeSint64
	BaseTypeUint64
	BaseTypeUint64z
)

// baseTypeInfo describes the wire shape of a base type: the size in bytes of
// a single element, and the bit pattern that means "no value".
type baseTypeInfo struct {
	elemSize uint8
	invalid  uint64 // compared against the raw integer before widening to Value; floats compared by bit pattern
}

var baseTypes = [...]baseTypeInfo{
	BaseTypeEnum:    {1, 0xFF},
	BaseTypeSint8:   {1, 0x7F},
	BaseTypeUint8:   {1, 0xFF},
	BaseTypeSint16:  {2, 0x7FFF},
	BaseTypeUint16:  {2, 0xFFFF},
	BaseTypeSint32:  {4, 0x7FFFFFFF},
	BaseTypeUint32:  {4, 0xFFFFFFFF},
	BaseTypeString:  {1, 0x00},
	BaseTypeFloat32: {4, 0xFFFFFFFF},
	BaseTypeFloat64: {8, 0xFFFFFFFFFFFFFFFF},
	BaseTypeUint8z:  {1, 0x00},
	BaseTypeUint16z: {2, 0x0000},
	BaseTypeUint32z: {4, 0x00000000},
	BaseTypeByte:    {1, 0xFF},
	BaseTypeSint64:  {8, 0x7FFFFFFFFFFFFFFF},
	BaseTypeUint64:  {8, 0xFFFFFFFFFFFFFFFF},
	BaseTypeUint64z: {8, 0x0000000000000000},
}

// Valid reports whether id names one of the 17 known base types.
func (b BaseType) Valid() bool {
	return int(b) < len(baseTypes)
}

// ElemSize returns the size in bytes of a single element of this base type.
// It is zero for an unknown base type.
func (b BaseType) ElemSize() int {
	if !b.Valid() {
		return 0
	}
	return int(baseTypes[b].elemSize)
}

// Invalid returns the sentinel bit pattern that means "no value" for this
// base type, widened to uint64 for unsigned/enum/byte types or holding the
// raw two's-complement/IEEE-754 bit pattern otherwise.
func (b BaseType) Invalid() uint64 {
	if !b.Valid() {
		return 0
	}
	return baseTypes[b].invalid
}

// FromDefinitionByte extracts the base type from a field definition's
// base_type byte, masking off the high "is multi-byte" informational bit.
func FromDefinitionByte(raw uint8) BaseType {
	return BaseType(raw & 0x1F)
}
