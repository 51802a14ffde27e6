package fit

import "github.com/messeiro/gofit/profile"

// Decoder drives the top-level record loop (spec §4.8): read a header
// byte, branch to a definition or data record, update the definition
// table/developer registry, and emit Messages in stream order. One
// Decoder owns one stream; it is not safe for concurrent use (spec §5).
type Decoder struct {
	r      *byteReader
	Header FileHeader

	defs   definitionTable
	devReg developerRegistry

	lastAbsTimestamp uint32
	dataEnd          int
}

// NewDecoder reads and validates the file header, then positions the
// decoder to walk the data section that follows.
func NewDecoder(data []byte) (*Decoder, error) {
	r := newByteReader(data)
	h, err := readFileHeader(r)
	if err != nil {
		return nil, err
	}
	return &Decoder{r: r, Header: h, dataEnd: h.DataEndOffset()}, nil
}

// DecodeHeader reads only the FileHeader, without walking any records
// (SPEC_FULL §11.5's lighter-weight entry point).
func DecodeHeader(data []byte) (FileHeader, error) {
	r := newByteReader(data)
	return readFileHeader(r)
}

// Decode runs a Decoder to completion and collects every emitted Message.
func Decode(data []byte) (Messages, error) {
	d, err := NewDecoder(data)
	if err != nil {
		return nil, err
	}
	var out Messages
	for {
		msg, ok, err := d.Next()
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, msg)
	}
}

// Next advances the decoder past definition records and non-emitting
// data records (FieldDescription updates, unknown message types, messages
// with no surviving fields) until it produces a user-visible Message, reaches the
// end of the data section (ok=false, err=nil), or hits a fatal error.
func (d *Decoder) Next() (Message, bool, error) {
	for d.r.offset() < d.dataEnd {
		headerByte, err := d.r.readU8()
		if err != nil {
			return Message{}, false, err
		}
		hb := decodeHeaderByte(headerByte)

		if !hb.Compressed && hb.IsDefinition {
			def, err := readDefinitionRecord(d.r, hb.HasDeveloperFields)
			if err != nil {
				return Message{}, false, err
			}
			d.defs.set(hb.LocalMesgNum, def)
			continue
		}

		localNum := hb.LocalMesgNum
		def, found := d.defs.get(localNum)
		if !found {
			return Message{}, false, &MissingDefinitionError{LocalMesgNum: localNum}
		}

		msg, emitted, err := d.readDataRecord(hb, *def)
		if err != nil {
			return Message{}, false, err
		}
		if emitted {
			return msg, true, nil
		}
		// FieldDescription update or a message with nothing to show: keep scanning.
	}
	return Message{}, false, nil
}

// readDataRecord implements spec §4.8 step 3: read every standard and
// developer field per def, update the developer registry or last
// absolute timestamp as a side effect, and decide whether a Message
// should be emitted.
func (d *Decoder) readDataRecord(hb HeaderByte, def DefinitionRecord) (Message, bool, error) {
	mt := profile.MessageTypeOf(def.GlobalMesgNum)

	raw := make([]FieldValue, 0, len(def.Fields))
	for _, fd := range def.Fields {
		val, ok, err := readField(d.r, fd, def.Endianness)
		if err != nil {
			return Message{}, false, err
		}
		if mt == profile.MessageTypeNone || !ok {
			continue
		}
		raw = append(raw, FieldValue{FieldNum: fd.FieldNum, Value: val})
	}

	var devValues []DevFieldValue
	for _, dfd := range def.DeveloperFields {
		desc, found := d.devReg.lookup(dfd.DeveloperDataIndex, dfd.FieldNum)
		if !found {
			if err := d.r.skip(int(dfd.Size)); err != nil {
				return Message{}, false, err
			}
			continue
		}
		syntheticFD := FieldDefinition{FieldNum: desc.FieldDefinitionNum, Size: dfd.Size, BaseTypeRaw: desc.FitBaseTypeID}
		val, ok, err := readField(d.r, syntheticFD, def.Endianness)
		if err != nil {
			return Message{}, false, err
		}
		if !ok {
			continue
		}
		devValues = append(devValues, DevFieldValue{
			DeveloperDataIndex: dfd.DeveloperDataIndex,
			FieldNum:           dfd.FieldNum,
			Value:              val,
		})
	}

	if mt == profile.MessageTypeFieldDescription {
		d.devReg.add(developerFieldDescriptionFromValues(raw))
		return Message{}, false, nil
	}

	if mt == profile.MessageTypeNone {
		return Message{}, false, nil
	}

	processed := make([]FieldValue, 0, len(raw)+1)
	for _, fv := range raw {
		res := postProcessField(mt, fv.FieldNum, fv.Value)
		if !res.emit {
			continue
		}
		if res.isTimestamp {
			d.lastAbsTimestamp = res.rawSeconds
		}
		processed = append(processed, FieldValue{FieldNum: fv.FieldNum, Value: res.value})
	}

	if hb.Compressed {
		if tsFieldNum, ok := profile.TimestampFieldOf(mt); ok {
			absTS := (d.lastAbsTimestamp &^ 0x1F) | uint32(hb.TimeOffset)
			if uint32(hb.TimeOffset) < (d.lastAbsTimestamp & 0x1F) {
				absTS += 32
			}
			d.lastAbsTimestamp = absTS
			processed = append(processed, FieldValue{FieldNum: tsFieldNum, Value: NewTime(absTS + fitEpochOffset)})
		}
	}

	if len(processed) == 0 && len(devValues) == 0 {
		return Message{}, false, nil
	}

	return Message{Kind: mt, values: processed, DevValues: devValues}, true, nil
}
