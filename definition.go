package fit

import "github.com/messeiro/gofit/profile"

// FieldDefinition is one 3-byte entry in a definition record (spec §3,
// §4.4): which field slot, how many bytes it occupies, and its base type.
type FieldDefinition struct {
	FieldNum    uint8
	Size        uint8
	BaseTypeRaw uint8
}

// BaseType extracts the 5-bit base type id, masking off the informational
// high bit (spec §3, Table 1 / §4.4).
func (f FieldDefinition) BaseType() profile.BaseType {
	return profile.FromDefinitionByte(f.BaseTypeRaw)
}

// DeveloperFieldDefinition is one 3-byte developer-field entry appended to
// a definition record when its header set has_developer_fields.
type DeveloperFieldDefinition struct {
	FieldNum           uint8
	Size                uint8
	DeveloperDataIndex  uint8
}

// DefinitionRecord is the schema an engine holds for one local message
// number (spec §3, §4.4).
type DefinitionRecord struct {
	Endianness         Endianness
	GlobalMesgNum      uint16
	Fields             []FieldDefinition
	DeveloperFields    []DeveloperFieldDefinition
}

// totalSize is the number of payload bytes a data record under this
// definition occupies — the invariant that keeps the cursor aligned even
// when the message type or individual fields are unknown (spec §3).
func (d DefinitionRecord) totalSize() int {
	n := 0
	for _, f := range d.Fields {
		n += int(f.Size)
	}
	for _, f := range d.DeveloperFields {
		n += int(f.Size)
	}
	return n
}

// readDefinitionRecord consumes a definition record's payload, following
// the owning header's has_developer_fields bit (spec §4.4).
func readDefinitionRecord(r *byteReader, hasDevFields bool) (DefinitionRecord, error) {
	if err := r.skip(1); err != nil { // reserved byte
		return DefinitionRecord{}, err
	}

	archByte, err := r.readU8()
	if err != nil {
		return DefinitionRecord{}, err
	}
	var end Endianness
	switch archByte {
	case 0:
		end = LittleEndian
	case 1:
		end = BigEndian
	default:
		return DefinitionRecord{}, ErrInvalidEndianness
	}

	gmn, err := r.readU16(end)
	if err != nil {
		return DefinitionRecord{}, err
	}

	n, err := r.readU8()
	if err != nil {
		return DefinitionRecord{}, err
	}
	fields := make([]FieldDefinition, 0, n)
	for i := uint8(0); i < n; i++ {
		fieldNum, err := r.readU8()
		if err != nil {
			return DefinitionRecord{}, err
		}
		size, err := r.readU8()
		if err != nil {
			return DefinitionRecord{}, err
		}
		baseType, err := r.readU8()
		if err != nil {
			return DefinitionRecord{}, err
		}
		fields = append(fields, FieldDefinition{FieldNum: fieldNum, Size: size, BaseTypeRaw: baseType})
	}

	def := DefinitionRecord{Endianness: end, GlobalMesgNum: gmn, Fields: fields}

	if hasDevFields {
		m, err := r.readU8()
		if err != nil {
			return DefinitionRecord{}, err
		}
		devFields := make([]DeveloperFieldDefinition, 0, m)
		for i := uint8(0); i < m; i++ {
			fieldNum, err := r.readU8()
			if err != nil {
				return DefinitionRecord{}, err
			}
			size, err := r.readU8()
			if err != nil {
				return DefinitionRecord{}, err
			}
			devIdx, err := r.readU8()
			if err != nil {
				return DefinitionRecord{}, err
			}
			devFields = append(devFields, DeveloperFieldDefinition{
				FieldNum:           fieldNum,
				Size:               size,
				DeveloperDataIndex: devIdx,
			})
		}
		def.DeveloperFields = devFields
	}

	return def, nil
}

// definitionTable is the fixed-capacity 16-slot local-message definition
// store (spec §9's "naturally a fixed-capacity array of 16 optional
// slots; a hash map is overkill").
type definitionTable [16]*DefinitionRecord

func (t *definitionTable) set(localNum uint8, def DefinitionRecord) {
	t[localNum&0x0F] = &def
}

func (t *definitionTable) get(localNum uint8) (*DefinitionRecord, bool) {
	d := t[localNum&0x0F]
	if d == nil {
		return nil, false
	}
	return d, true
}
