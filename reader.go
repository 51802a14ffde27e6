package fit

import (
	"encoding/binary"
)

// Endianness selects the byte order a definition record declared for its
// data records.
type Endianness uint8

const (
	LittleEndian Endianness = 0
	BigEndian    Endianness = 1
)

func (e Endianness) order() binary.ByteOrder {
	if e == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// byteReader is a forward-only cursor over an immutable byte slice — the
// mapped file contents, typically. It never copies the backing slice; it
// only ever advances an offset into it.
type byteReader struct {
	data []byte
	pos  int
}

func newByteReader(data []byte) *byteReader {
	return &byteReader{data: data}
}

func (r *byteReader) remaining() int {
	return len(r.data) - r.pos
}

func (r *byteReader) offset() int {
	return r.pos
}

func (r *byteReader) take(n int) ([]byte, error) {
	if n < 0 || r.remaining() < n {
		return nil, ErrUnexpectedEOF
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *byteReader) skip(n int) error {
	_, err := r.take(n)
	return err
}

func (r *byteReader) readU8() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *byteReader) readI8() (int8, error) {
	b, err := r.readU8()
	return int8(b), err
}

func (r *byteReader) readU16(end Endianness) (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return end.order().Uint16(b), nil
}

func (r *byteReader) readI16(end Endianness) (int16, error) {
	v, err := r.readU16(end)
	return int16(v), err
}

func (r *byteReader) readU32(end Endianness) (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return end.order().Uint32(b), nil
}

func (r *byteReader) readI32(end Endianness) (int32, error) {
	v, err := r.readU32(end)
	return int32(v), err
}

func (r *byteReader) readU64(end Endianness) (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return end.order().Uint64(b), nil
}

func (r *byteReader) readI64(end Endianness) (int64, error) {
	v, err := r.readU64(end)
	return int64(v), err
}
