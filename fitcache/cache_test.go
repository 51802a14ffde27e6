package fitcache

import (
	"testing"

	"github.com/messeiro/gofit/fittest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileIdFixture() []byte {
	def := fittest.Definition(0, false, 0, 0, []fittest.DefinitionField{
		{Num: 3, Size: 4, BaseType: 6}, // U32
	}, nil)
	data := fittest.DataRecord(0, fittest.U32LE(0xE8A5CDC7))
	body := fittest.Concat(def, data)
	header := fittest.FileHeader12(uint32(len(body)))
	return fittest.Concat(header, body)
}

func TestStoreDecodeCachesResult(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)

	data := fileIdFixture()

	first, err := store.Decode(data)
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := store.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestKeyDiffersOnDifferentInput(t *testing.T) {
	assert.NotEqual(t, Key([]byte("a")), Key([]byte("b")))
}
