package fit

import "github.com/messeiro/gofit/profile"

// DeveloperFieldDescription is a fully decoded FieldDescription message
// (global message number 206), giving the wire shape of one developer
// field (spec §3, §4.6).
type DeveloperFieldDescription struct {
	DeveloperDataIndex   uint8
	FieldDefinitionNum   uint8
	FitBaseTypeID        uint8
	FieldName            string
	Units                string // "" when field 8 was absent upstream
}

func (d DeveloperFieldDescription) baseType() profile.BaseType {
	return profile.FromDefinitionByte(d.FitBaseTypeID)
}

// developerRegistry is the append-only list the engine accumulates
// FieldDescription messages into (spec §4.6). Lookup is by the first
// matching (developer_data_index, field_definition_number) pair; later
// descriptions never replace earlier ones.
type developerRegistry struct {
	descriptions []DeveloperFieldDescription
}

func (reg *developerRegistry) add(d DeveloperFieldDescription) {
	reg.descriptions = append(reg.descriptions, d)
}

func (reg *developerRegistry) lookup(devIndex, fieldNum uint8) (DeveloperFieldDescription, bool) {
	for _, d := range reg.descriptions {
		if d.DeveloperDataIndex == devIndex && d.FieldDefinitionNum == fieldNum {
			return d, true
		}
	}
	return DeveloperFieldDescription{}, false
}

// developerFieldDescriptionFromValues builds a DeveloperFieldDescription
// from a decoded FieldDescription message's field values, per the
// well-known field numbers spec §4.6 names. Field 8 (units) is optional;
// its absence yields Units == "" rather than an error (SPEC_FULL §11.5).
func developerFieldDescriptionFromValues(values []FieldValue) DeveloperFieldDescription {
	var d DeveloperFieldDescription
	for _, fv := range values {
		switch fv.FieldNum {
		case 0:
			if v, ok := fv.Value.U8(); ok {
				d.DeveloperDataIndex = v
			}
		case 1:
			if v, ok := fv.Value.U8(); ok {
				d.FieldDefinitionNum = v
			}
		case 2:
			if v, ok := fv.Value.U8(); ok {
				d.FitBaseTypeID = v
			}
		case 3:
			if v, ok := fv.Value.Str(); ok {
				d.FieldName = v
			}
		case 8:
			if v, ok := fv.Value.Str(); ok {
				d.Units = v
			}
		}
	}
	return d
}
