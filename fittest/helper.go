// Package fittest provides small fixture builders shared by the _test.go
// files across this module, mirroring the teacher's own test package:
// byte-stream assembly helpers and a UTC time helper so tests don't
// depend on the host's local timezone.
package fittest

import (
	"encoding/binary"
	"time"
)

// UTCTime creates a time.Time in UTC from a UNIX second count, avoiding
// test flakiness on hosts in other timezones.
func UTCTime(sec int64) time.Time {
	return time.Unix(sec, 0).In(time.UTC)
}

// U16LE/U32LE/U16BE/U32BE encode an integer as raw bytes for assembling
// FIT byte-stream fixtures inline in tests.
func U16LE(v uint16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v)
	return b
}

func U32LE(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func U16BE(v uint16) []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, v)
	return b
}

func U32BE(v uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return b
}

// Concat flattens a list of byte chunks into one fixture.
func Concat(chunks ...[]byte) []byte {
	total := 0
	for _, c := range chunks {
		total += len(c)
	}
	out := make([]byte, 0, total)
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out
}

// FileHeader12 builds a 12-byte FIT file header (no header CRC) with the
// given data_size.
func FileHeader12(dataSize uint32) []byte {
	return Concat(
		[]byte{12, 0x10},
		U16LE(2078),
		U32LE(dataSize),
		[]byte(".FIT"),
	)
}

// FileHeader14 builds a 14-byte FIT file header including a (unchecked)
// header CRC field.
func FileHeader14(dataSize uint32, headerCRC uint16) []byte {
	return Concat(
		[]byte{14, 0x10},
		U16LE(2078),
		U32LE(dataSize),
		[]byte(".FIT"),
		U16LE(headerCRC),
	)
}

// DefinitionField is one (field_number, size, base_type) triple for a
// definition record fixture.
type DefinitionField struct {
	Num, Size, BaseType byte
}

// Definition builds a normal (non-compressed) definition record payload:
// header byte + reserved + endianness + global message number + field
// list. Pass devFields as nil for a definition with no developer fields.
func Definition(localNum byte, hasDevFields bool, endianness byte, gmn uint16, fields []DefinitionField, devFields []DefinitionField) []byte {
	headerByte := byte(0x40) | (localNum & 0x0F)
	if hasDevFields {
		headerByte |= 0x20
	}

	gmnBytes := U16LE(gmn)
	if endianness == 1 {
		gmnBytes = U16BE(gmn)
	}

	out := Concat([]byte{headerByte, 0x00, endianness}, gmnBytes, []byte{byte(len(fields))})
	for _, f := range fields {
		out = append(out, f.Num, f.Size, f.BaseType)
	}
	if hasDevFields {
		out = append(out, byte(len(devFields)))
		for _, f := range devFields {
			out = append(out, f.Num, f.Size, f.BaseType)
		}
	}
	return out
}

// DataRecord builds a normal (non-compressed) data record: header byte
// (bit 6/5 clear) followed by the payload bytes verbatim.
func DataRecord(localNum byte, payload []byte) []byte {
	headerByte := localNum & 0x0F
	return Concat([]byte{headerByte}, payload)
}

// CompressedDataRecord builds a compressed-timestamp data record header
// byte (local number restricted to 0..3, offset 0..31) followed by the
// payload.
func CompressedDataRecord(localNum, timeOffset byte, payload []byte) []byte {
	headerByte := byte(0x80) | ((localNum & 0x03) << 5) | (timeOffset & 0x1F)
	return Concat([]byte{headerByte}, payload)
}
