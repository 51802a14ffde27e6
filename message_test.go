package fit

import (
	"math"
	"testing"

	"github.com/messeiro/gofit/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostProcessNoneDrops(t *testing.T) {
	res := postProcessField(profile.MessageTypeNone, 99, NewU8(1))
	assert.False(t, res.emit)
}

func TestPostProcessCoordinates(t *testing.T) {
	// Property from spec §8.5: deg = v * 180 / 2^31.
	res := postProcessField(profile.MessageTypeRecord, 0, NewI32(1<<30))
	require.True(t, res.emit)
	deg, ok := res.value.F32()
	require.True(t, ok)
	assert.InDelta(t, 90.0, float64(deg), 1e-4)
}

func TestPostProcessDateTime(t *testing.T) {
	res := postProcessField(profile.MessageTypeFileId, 4, NewU32(0x32A20844))
	require.True(t, res.emit)
	sec, ok := res.value.Time()
	require.True(t, ok)
	assert.Equal(t, uint32(0x32A20844)+631065600, sec)
}

func TestPostProcessTimestampUpdatesLastAbsolute(t *testing.T) {
	res := postProcessField(profile.MessageTypeRecord, 253, NewU32(0x3A000020))
	require.True(t, res.emit)
	assert.True(t, res.isTimestamp)
	assert.Equal(t, uint32(0x3A000020), res.rawSeconds)
	sec, _ := res.value.Time()
	assert.Equal(t, uint32(0x3A000020)+631065600, sec)
}

func TestPostProcessLocalDateTimeDefaultOffsetZero(t *testing.T) {
	SetLocalDateTimeOffset(0)
	res := postProcessField(profile.MessageTypeActivity, 5, NewU32(1000))
	require.True(t, res.emit)
	sec, ok := res.value.Time()
	require.True(t, ok)
	assert.Equal(t, uint32(1000+631065600), sec)
}

func TestPostProcessLocalDateTimeConfigurableOffset(t *testing.T) {
	SetLocalDateTimeOffset(3600)
	defer SetLocalDateTimeOffset(0)
	res := postProcessField(profile.MessageTypeActivity, 5, NewU32(1000))
	require.True(t, res.emit)
	sec, _ := res.value.Time()
	assert.Equal(t, uint32(1000+631065600-3600), sec)
}

func TestPostProcessEnumHit(t *testing.T) {
	res := postProcessField(profile.MessageTypeFileId, 0, NewU8(4))
	require.True(t, res.emit)
	sym, ok := res.value.Enum()
	require.True(t, ok)
	assert.Equal(t, "activity", sym)
}

func TestPostProcessEnumMissKeepsRaw(t *testing.T) {
	res := postProcessField(profile.MessageTypeFileId, 0, NewU8(0xFE))
	require.True(t, res.emit)
	raw, ok := res.value.U8()
	require.True(t, ok)
	assert.Equal(t, uint8(0xFE), raw)
}

func TestPostProcessScaleAndOffsetBoth(t *testing.T) {
	res := postProcessField(profile.MessageTypeRecord, 2, NewU16(600)) // altitude: scale 5, offset 500
	require.True(t, res.emit)
	f, ok := res.value.F64()
	require.True(t, ok)
	assert.Equal(t, 600.0/5-500, f)
}

func TestPostProcessNoScaleNoOffsetPassesRawThrough(t *testing.T) {
	res := postProcessField(profile.MessageTypeFileId, 1, NewU16(1))
	require.True(t, res.emit)
	assert.Equal(t, KindU16, res.value.Kind)
	v, _ := res.value.U16()
	assert.Equal(t, uint16(1), v)
}

func TestPostProcessStringPassesThrough(t *testing.T) {
	res := postProcessField(profile.MessageTypeFieldDescription, 3, NewString("x"))
	require.True(t, res.emit)
	assert.Equal(t, "x", mustStr(t, res.value))
}

func mustStr(t *testing.T, v Value) string {
	t.Helper()
	s, ok := v.Str()
	require.True(t, ok)
	return s
}

func TestMessageValueLookup(t *testing.T) {
	m := Message{
		Kind: profile.MessageTypeFileId,
		values: []FieldValue{
			{FieldNum: 0, Value: NewEnum("activity")},
			{FieldNum: 3, Value: NewU32(123)},
		},
	}
	v, ok := m.Value(3)
	require.True(t, ok)
	n, _ := v.U32()
	assert.Equal(t, uint32(123), n)

	_, ok = m.Value(99)
	assert.False(t, ok)
}

func TestSemicircleULPPrecision(t *testing.T) {
	raw := int32(1 << 20)
	res := postProcessField(profile.MessageTypeRecord, 1, NewI32(raw))
	want := float32(float64(raw) * 180.0 / 2147483648.0)
	got, _ := res.value.F32()
	assert.InDelta(t, float64(want), float64(got), math.SmallestNonzeroFloat32*4)
}
