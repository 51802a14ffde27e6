package fit

const fitEpochOffset = 631065600

// fitSignature is the 4-byte magic every FIT file header carries.
var fitSignature = [4]byte{'.', 'F', 'I', 'T'}

// FileHeader is the 12- or 14-byte record at the start of every FIT
// stream (spec §3, §4.2).
type FileHeader struct {
	HeaderSize      uint8
	ProtocolVersion uint8
	ProfileVersion  uint16
	DataSize        uint32
	HeaderCRC       uint16 // zero when HeaderSize == 12 (no CRC present)
	HasHeaderCRC    bool
}

// DataEndOffset is the byte offset, from the start of the stream, at
// which the data section ends and the trailing file CRC (if any) begins.
func (h FileHeader) DataEndOffset() int {
	return int(h.HeaderSize) + int(h.DataSize)
}

// readFileHeader parses and validates the file header at the current
// cursor position. It does not touch the trailing 2-byte file CRC.
func readFileHeader(r *byteReader) (FileHeader, error) {
	size, err := r.readU8()
	if err != nil {
		return FileHeader{}, err
	}
	if size != 12 && size != 14 {
		return FileHeader{}, FormatError("unsupported header size")
	}

	protocol, err := r.readU8()
	if err != nil {
		return FileHeader{}, err
	}
	profile, err := r.readU16(LittleEndian)
	if err != nil {
		return FileHeader{}, err
	}
	dataSize, err := r.readU32(LittleEndian)
	if err != nil {
		return FileHeader{}, err
	}
	sig, err := r.take(4)
	if err != nil {
		return FileHeader{}, err
	}
	if sig[0] != fitSignature[0] || sig[1] != fitSignature[1] ||
		sig[2] != fitSignature[2] || sig[3] != fitSignature[3] {
		return FileHeader{}, ErrInvalidSignature
	}

	h := FileHeader{
		HeaderSize:      size,
		ProtocolVersion: protocol,
		ProfileVersion:  profile,
		DataSize:        dataSize,
	}

	if size == 14 {
		crc, err := r.readU16(LittleEndian)
		if err != nil {
			return FileHeader{}, err
		}
		h.HeaderCRC = crc
		h.HasHeaderCRC = true
	}

	return h, nil
}

// HeaderByte is the single byte preceding every record, decoded into its
// two disjoint shapes (spec §4.3). When Compressed is true, IsDefinition
// and HasDeveloperFields are always false and TimeOffset is always set.
type HeaderByte struct {
	Compressed         bool
	IsDefinition        bool
	HasDeveloperFields  bool
	LocalMesgNum        uint8
	TimeOffset          uint8
	TimeOffsetSet       bool
}

const (
	maskCompressed  = 0x80
	maskCompLocal   = 0x60
	maskCompOffset  = 0x1F
	maskDefinition  = 0x40
	maskDevFields   = 0x20
	maskLocal       = 0x0F
)

// decodeHeaderByte is pure bit-masking, no I/O.
func decodeHeaderByte(b uint8) HeaderByte {
	if b&maskCompressed != 0 {
		return HeaderByte{
			Compressed:    true,
			LocalMesgNum:  (b & maskCompLocal) >> 5,
			TimeOffset:    b & maskCompOffset,
			TimeOffsetSet: true,
		}
	}
	return HeaderByte{
		IsDefinition:       b&maskDefinition != 0,
		HasDeveloperFields: b&maskDevFields != 0,
		LocalMesgNum:       b & maskLocal,
	}
}
