package fit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeveloperRegistryAddLookup(t *testing.T) {
	var reg developerRegistry
	reg.add(DeveloperFieldDescription{DeveloperDataIndex: 0, FieldDefinitionNum: 5, FitBaseTypeID: 2, FieldName: "Power"})

	d, ok := reg.lookup(0, 5)
	require.True(t, ok)
	assert.Equal(t, "Power", d.FieldName)

	_, ok = reg.lookup(1, 5)
	assert.False(t, ok)

	_, ok = reg.lookup(0, 6)
	assert.False(t, ok)
}

func TestDeveloperRegistryFirstMatchWins(t *testing.T) {
	var reg developerRegistry
	reg.add(DeveloperFieldDescription{DeveloperDataIndex: 0, FieldDefinitionNum: 5, FieldName: "First"})
	reg.add(DeveloperFieldDescription{DeveloperDataIndex: 0, FieldDefinitionNum: 5, FieldName: "Second"})

	d, ok := reg.lookup(0, 5)
	require.True(t, ok)
	assert.Equal(t, "First", d.FieldName)
}

func TestDeveloperFieldDescriptionFromValuesWithUnits(t *testing.T) {
	values := []FieldValue{
		{FieldNum: 0, Value: NewU8(0)},
		{FieldNum: 1, Value: NewU8(5)},
		{FieldNum: 2, Value: NewU8(2)},
		{FieldNum: 3, Value: NewString("Power")},
		{FieldNum: 8, Value: NewString("watts")},
	}
	d := developerFieldDescriptionFromValues(values)
	assert.Equal(t, uint8(0), d.DeveloperDataIndex)
	assert.Equal(t, uint8(5), d.FieldDefinitionNum)
	assert.Equal(t, uint8(2), d.FitBaseTypeID)
	assert.Equal(t, "Power", d.FieldName)
	assert.Equal(t, "watts", d.Units)
}

func TestDeveloperFieldDescriptionFromValuesNoUnits(t *testing.T) {
	values := []FieldValue{
		{FieldNum: 0, Value: NewU8(0)},
		{FieldNum: 1, Value: NewU8(5)},
		{FieldNum: 2, Value: NewU8(2)},
		{FieldNum: 3, Value: NewString("Power")},
	}
	d := developerFieldDescriptionFromValues(values)
	assert.Equal(t, "", d.Units)
}
