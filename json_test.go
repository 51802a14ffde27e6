package fit

import (
	"encoding/json"
	"testing"

	"github.com/messeiro/gofit/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueJSONRoundTrip(t *testing.T) {
	cases := []Value{
		NewU8(5),
		NewI8(-5),
		NewU16(1000),
		NewI32(-100000),
		NewF32(1.5),
		NewF64(2.5),
		NewString("Garmin"),
		NewEnum("activity"),
		NewTime(1000),
		NewArrU8([]uint8{1, 2, 3}),
		NewArrU16([]uint16{1, 2, 3}),
		NewArrU32([]uint32{1, 2, 3}),
	}
	for _, want := range cases {
		b, err := json.Marshal(want)
		require.NoError(t, err)

		var got Value
		require.NoError(t, json.Unmarshal(b, &got))
		assert.Equal(t, want, got)
	}
}

func TestMessageJSONRoundTrip(t *testing.T) {
	want := Message{
		Kind: profile.MessageTypeFileId,
		values: []FieldValue{
			{FieldNum: 0, Value: NewEnum("activity")},
			{FieldNum: 3, Value: NewU32(123)},
		},
		DevValues: []DevFieldValue{
			{DeveloperDataIndex: 0, FieldNum: 5, Value: NewU8(100)},
		},
	}

	b, err := json.Marshal(want)
	require.NoError(t, err)

	var got Message
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, want, got)
}

func TestMessageJSONUnknownKind(t *testing.T) {
	var m Message
	require.NoError(t, json.Unmarshal([]byte(`{"kind":"not_a_real_type","values":[]}`), &m))
	assert.Equal(t, profile.MessageTypeNone, m.Kind)
}
