package fit

import (
	"testing"

	"github.com/messeiro/gofit/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSentinelLaw is the generic property from spec §8.3: a single-element
// field whose bytes equal the base type's invalid sentinel decodes to
// absent; any other value decodes to a present Value of that type.
func TestSentinelLaw(t *testing.T) {
	cases := []struct {
		name    string
		bt      uint8
		size    uint8
		present []byte
		absent  []byte
	}{
		{"uint8", 2, 1, []byte{0x05}, []byte{0xFF}},
		{"sint8", 1, 1, []byte{0x05}, []byte{0x7F}},
		{"uint16", 4, 2, []byte{0x05, 0x00}, []byte{0xFF, 0xFF}},
		{"uint32", 6, 4, []byte{0x05, 0x00, 0x00, 0x00}, []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{"uint8z", 10, 1, []byte{0x05}, []byte{0x00}},
		{"byte", 13, 1, []byte{0x05}, []byte{0xFF}},
		{"float32", 8, 4, []byte{0x00, 0x00, 0x80, 0x3F}, []byte{0xFF, 0xFF, 0xFF, 0xFF}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			fd := FieldDefinition{FieldNum: 1, Size: c.size, BaseTypeRaw: c.bt}

			v, ok, err := readField(newByteReader(c.present), fd, LittleEndian)
			require.NoError(t, err)
			assert.True(t, ok, "present bytes should decode to a value")
			assert.NotEqual(t, KindInvalid, v.Kind)

			v, ok, err = readField(newByteReader(c.absent), fd, LittleEndian)
			require.NoError(t, err)
			assert.False(t, ok, "sentinel bytes should decode to absent")
		})
	}
}

func TestReadFieldStringS3(t *testing.T) {
	fd := FieldDefinition{FieldNum: 7, Size: 16, BaseTypeRaw: 7}

	present := append([]byte("Garmin"), make([]byte, 10)...)
	v, ok, err := readField(newByteReader(present), fd, LittleEndian)
	require.NoError(t, err)
	require.True(t, ok)
	s, _ := v.Str()
	assert.Equal(t, "Garmin", s)

	invalid := make([]byte, 16)
	for i := range invalid {
		invalid[i] = 0xFF
	}
	_, ok, err = readField(newByteReader(invalid), fd, LittleEndian)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReadFieldArrayU8(t *testing.T) {
	fd := FieldDefinition{FieldNum: 1, Size: 4, BaseTypeRaw: 2} // uint8, arity 4
	data := []byte{1, 0xFF, 3, 4}
	v, ok, err := readField(newByteReader(data), fd, LittleEndian)
	require.NoError(t, err)
	require.True(t, ok)
	got, _ := v.ArrU8()
	assert.Equal(t, []uint8{1, 3, 4}, got) // 0xFF sentinel dropped from the array
}

func TestReadFieldArrayAllSentinelIsAbsent(t *testing.T) {
	fd := FieldDefinition{FieldNum: 1, Size: 2, BaseTypeRaw: 2}
	data := []byte{0xFF, 0xFF}
	_, ok, err := readField(newByteReader(data), fd, LittleEndian)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReadFieldArrayUnsupportedWidthIsAbsent(t *testing.T) {
	// sint16 (base type 3) with arity 2: unsupported array width per §4.5/§9.
	fd := FieldDefinition{FieldNum: 1, Size: 4, BaseTypeRaw: 3}
	data := []byte{1, 0, 2, 0}
	v, ok, err := readField(newByteReader(data), fd, LittleEndian)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, Value{}, v)
}

func TestReadFieldZeroArity(t *testing.T) {
	fd := FieldDefinition{FieldNum: 1, Size: 0, BaseTypeRaw: 2}
	_, ok, err := readField(newByteReader(nil), fd, LittleEndian)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReadFieldUnderflow(t *testing.T) {
	fd := FieldDefinition{FieldNum: 1, Size: 4, BaseTypeRaw: 6}
	_, _, err := readField(newByteReader([]byte{1, 2}), fd, LittleEndian)
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestFromDefinitionByteMasksInformationalBit(t *testing.T) {
	assert.Equal(t, profile.BaseTypeFloat32, profile.FromDefinitionByte(0x88))
}
