package profile

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMessageTypeOf(t *testing.T) {
	cases := []struct {
		gmn  uint16
		want MessageType
	}{
		{0, MessageTypeFileId},
		{20, MessageTypeRecord},
		{206, MessageTypeFieldDescription},
		{9999, MessageTypeNone},
	}
	for _, c := range cases {
		if got := MessageTypeOf(c.gmn); got != c.want {
			t.Errorf("MessageTypeOf(%d) = %v, want %v", c.gmn, got, c.want)
		}
	}
}

func TestMessageTypeString(t *testing.T) {
	if diff := cmp.Diff("file_id", MessageTypeFileId.String()); diff != "" {
		t.Errorf("FileId.String() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff("unknown", MessageTypeNone.String()); diff != "" {
		t.Errorf("None.String() mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldTypeOf(t *testing.T) {
	cases := []struct {
		mt    MessageType
		field uint8
		want  FieldType
	}{
		{MessageTypeFileId, 0, "file"},
		{MessageTypeFileId, 2, "manufacturer"},
		{MessageTypeFileId, 1, FieldTypeUint16},
		{MessageTypeRecord, 0, FieldTypeCoordinates},
		{MessageTypeRecord, 253, FieldTypeTimestamp},
		{MessageTypeNone, 0, FieldTypeNone},
	}
	for _, c := range cases {
		if got := FieldTypeOf(c.mt, c.field); got != c.want {
			t.Errorf("FieldTypeOf(%v, %d) = %q, want %q", c.mt, c.field, got, c.want)
		}
	}
}

func TestScaleAndOffsetOf(t *testing.T) {
	scale, ok := ScaleOf(MessageTypeRecord, 2)
	if !ok || scale != 5 {
		t.Errorf("ScaleOf(Record, 2) = (%v, %v), want (5, true)", scale, ok)
	}
	offset, ok := OffsetOf(MessageTypeRecord, 2)
	if !ok || offset != 500 {
		t.Errorf("OffsetOf(Record, 2) = (%v, %v), want (500, true)", offset, ok)
	}
	if _, ok := ScaleOf(MessageTypeRecord, 3); ok {
		t.Error("ScaleOf(Record, 3) should be undefined")
	}
}

func TestTimestampFieldOf(t *testing.T) {
	if num, ok := TimestampFieldOf(MessageTypeRecord); !ok || num != 253 {
		t.Errorf("TimestampFieldOf(Record) = (%d, %v), want (253, true)", num, ok)
	}
	if _, ok := TimestampFieldOf(MessageTypeFileId); ok {
		t.Error("TimestampFieldOf(FileId) should be undefined")
	}
}

func TestEnumSymbol(t *testing.T) {
	sym, ok := EnumSymbol("file", 4)
	if !ok || sym != "activity" {
		t.Errorf("EnumSymbol(file, 4) = (%q, %v), want (activity, true)", sym, ok)
	}
	if _, ok := EnumSymbol("file", 0xFFFF); ok {
		t.Error("EnumSymbol(file, 0xFFFF) should miss")
	}
	if _, ok := EnumSymbol("not_an_enum", 0); ok {
		t.Error("EnumSymbol on unknown FieldType should miss")
	}
}

func TestBaseTypeTable(t *testing.T) {
	cases := []struct {
		bt       BaseType
		elemSize int
		invalid  uint64
	}{
		{BaseTypeEnum, 1, 0xFF},
		{BaseTypeSint8, 1, 0x7F},
		{BaseTypeUint8, 1, 0xFF},
		{BaseTypeSint16, 2, 0x7FFF},
		{BaseTypeUint16, 2, 0xFFFF},
		{BaseTypeSint32, 4, 0x7FFFFFFF},
		{BaseTypeUint32, 4, 0xFFFFFFFF},
		{BaseTypeString, 1, 0x00},
		{BaseTypeFloat32, 4, 0xFFFFFFFF},
		{BaseTypeFloat64, 8, 0xFFFFFFFFFFFFFFFF},
		{BaseTypeUint8z, 1, 0x00},
		{BaseTypeUint16z, 2, 0x0000},
		{BaseTypeUint32z, 4, 0x00000000},
		{BaseTypeByte, 1, 0xFF},
		{BaseTypeSint64, 8, 0x7FFFFFFFFFFFFFFF},
		{BaseTypeUint64, 8, 0xFFFFFFFFFFFFFFFF},
		{BaseTypeUint64z, 8, 0x0000000000000000},
	}
	for _, c := range cases {
		if !c.bt.Valid() {
			t.Errorf("BaseType %d should be valid", c.bt)
		}
		if got := c.bt.ElemSize(); got != c.elemSize {
			t.Errorf("BaseType(%d).ElemSize() = %d, want %d", c.bt, got, c.elemSize)
		}
		if got := c.bt.Invalid(); got != c.invalid {
			t.Errorf("BaseType(%d).Invalid() = %#x, want %#x", c.bt, got, c.invalid)
		}
	}
	if BaseType(17).Valid() {
		t.Error("BaseType(17) should be invalid")
	}
}

func TestFromDefinitionByte(t *testing.T) {
	if got := FromDefinitionByte(0x88); got != BaseTypeFloat32 {
		t.Errorf("FromDefinitionByte(0x88) = %v, want Float32 (high bit masked off)", got)
	}
	if got := FromDefinitionByte(0x00); got != BaseTypeEnum {
		t.Errorf("FromDefinitionByte(0x00) = %v, want Enum", got)
	}
}
