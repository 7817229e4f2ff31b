package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zooyer/dxfreader/core"
	"github.com/zooyer/dxfreader/entities"
	"github.com/zooyer/dxfreader/notify"
)

func TestReadTable_Layers(t *testing.T) {
	r, scanner, sink := newReader(t, []string{
		"0", "TABLE",
		"2", "LAYER",
		"5", "2",
		"102", "{ACAD_XDICTIONARY",
		"360", "3",
		"102", "}",
		"330", "0",
		"100", "AcDbSymbolTable",
		"70", "3",
		"0", "LAYER",
		"5", "10",
		"330", "2",
		"100", "AcDbSymbolTableRecord",
		"100", "AcDbLayerTableRecord",
		"2", "墙",
		"70", "0",
		"62", "-7",
		"6", "CONTINUOUS",
		"370", "-3",
		"390", "F",
		"0", "LTYPE",
		"5", "14",
		"100", "AcDbSymbolTableRecord",
		"100", "AcDbLinetypeTableRecord",
		"2", "DASHED",
		"0", "LAYER",
		"5", "11",
		"100", "AcDbSymbolTableRecord",
		"100", "AcDbLayerTableRecord",
		"2", "0",
		"62", "7",
		"0", "ENDTAB",
	})

	table, err := r.ReadTable()
	require.NoError(t, err)
	assert.Equal(t, "LAYER", table.Name)
	assert.Equal(t, core.Handle(2), table.Handle)
	assert.Equal(t, 3, table.Count)
	require.NotNil(t, table.XDictHandle)
	assert.Equal(t, core.Handle(3), *table.XDictHandle)
	require.NotNil(t, table.OwnerHandle)
	assert.Zero(t, *table.OwnerHandle)

	for scanner.ValueAsString() != entities.TokenEndTable {
		entry, err := r.ReadTableEntry()
		require.NoError(t, err)
		if entry != nil {
			table.Entries = append(table.Entries, entry)
		}
	}

	require.Len(t, table.Entries, 2)
	assert.Equal(t, 1, sink.Count(notify.NotImplemented))

	wall := table.Entries[0]
	layer, ok := wall.Record().(*entities.Layer)
	require.True(t, ok)
	assert.Equal(t, "墙", layer.Name)
	assert.Equal(t, int16(-7), layer.Color.Index)
	assert.False(t, layer.IsOn())
	assert.Equal(t, "CONTINUOUS", wall.Names[6])
	assert.Equal(t, core.Handle(0xF), wall.Handles[390])
	require.NotNil(t, wall.OwnerHandle)
	assert.Equal(t, core.Handle(2), *wall.OwnerHandle)

	assert.Equal(t, "0", table.Entries[1].Record().Entry().Name)
	assert.True(t, table.Entries[1].Record().(*entities.Layer).IsOn())
}

func TestReadTable_DimStyle(t *testing.T) {
	r, _, _ := newReader(t, []string{
		"0", "TABLE",
		"2", "DIMSTYLE",
		"5", "A",
		"330", "0",
		"100", "AcDbSymbolTable",
		"70", "1",
		"100", "AcDbDimStyleTable",
		"71", "1",
		"340", "27",
		"0", "DIMSTYLE",
		"105", "27",
		"330", "A",
		"100", "AcDbSymbolTableRecord",
		"100", "AcDbDimStyleTableRecord",
		"2", "ISO-25",
		"70", "0",
		"41", "2.5",
		"140", "2.5",
		"271", "2",
		"340", "11",
		"0", "ENDTAB",
	})

	table, err := r.ReadTable()
	require.NoError(t, err)
	assert.Equal(t, "DIMSTYLE", table.Name)
	assert.Equal(t, 1, table.Count)

	entry, err := r.ReadTableEntry()
	require.NoError(t, err)
	require.NotNil(t, entry)

	style, ok := entry.Record().(*entities.DimStyle)
	require.True(t, ok)
	assert.Equal(t, core.Handle(0x27), style.Handle())
	assert.Equal(t, "ISO-25", style.Name)
	assert.Equal(t, 2.5, style.ArrowSize)
	assert.Equal(t, int16(2), style.Precision)
	assert.Equal(t, core.Handle(0x11), entry.Handles[340])
}

func TestReadTable_MissingHandle(t *testing.T) {
	r, scanner, _ := newReader(t, []string{
		"0", "TABLE",
		"2", "STYLE",
		"100", "AcDbSymbolTable",
		"70", "0",
		"0", "ENDTAB",
	})

	table, err := r.ReadTable()
	assert.Nil(t, table)
	assert.ErrorIs(t, err, ErrMissingHandle)
	assert.Equal(t, entities.TokenEndTable, scanner.ValueAsString())
}
