package dxf

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zooyer/dxfreader/config"
	"github.com/zooyer/dxfreader/entities"
	"github.com/zooyer/dxfreader/notify"
	"github.com/zooyer/dxfreader/reader"
	"github.com/zooyer/dxfreader/templates"
	"golang.org/x/text/encoding/simplifiedchinese"
)

func join(tags ...string) string {
	return strings.Join(tags, "\n") + "\n"
}

var sample = join(
	"0", "SECTION",
	"2", "HEADER",
	"9", "$ACADVER",
	"1", "AC1015",
	"0", "ENDSEC",
	"0", "SECTION",
	"2", "TABLES",
	"0", "TABLE",
	"2", "LAYER",
	"5", "2",
	"330", "0",
	"100", "AcDbSymbolTable",
	"70", "1",
	"0", "LAYER",
	"5", "10",
	"330", "2",
	"100", "AcDbSymbolTableRecord",
	"100", "AcDbLayerTableRecord",
	"2", "墙",
	"70", "0",
	"62", "1",
	"6", "CONTINUOUS",
	"0", "ENDTAB",
	"0", "TABLE",
	"2", "DIMSTYLE",
	"5", "A",
	"330", "0",
	"100", "AcDbSymbolTable",
	"70", "1",
	"100", "AcDbDimStyleTable",
	"71", "1",
	"0", "DIMSTYLE",
	"105", "27",
	"330", "A",
	"100", "AcDbSymbolTableRecord",
	"100", "AcDbDimStyleTableRecord",
	"2", "ISO-25",
	"70", "0",
	"271", "2",
	"0", "ENDTAB",
	"0", "ENDSEC",
	"0", "SECTION",
	"2", "BLOCKS",
	"0", "BLOCK",
	"5", "20",
	"330", "1F",
	"100", "AcDbEntity",
	"8", "0",
	"100", "AcDbBlockBegin",
	"2", "门",
	"70", "2",
	"10", "0.0",
	"20", "0.0",
	"30", "0.0",
	"3", "门",
	"1", "",
	"0", "LINE",
	"5", "21",
	"330", "1F",
	"100", "AcDbEntity",
	"8", "0",
	"100", "AcDbLine",
	"10", "0.0",
	"20", "0.0",
	"30", "0.0",
	"11", "1.0",
	"21", "0.0",
	"31", "0.0",
	"0", "ENDBLK",
	"5", "22",
	"330", "1F",
	"100", "AcDbEntity",
	"8", "0",
	"100", "AcDbBlockEnd",
	"0", "ENDSEC",
	"0", "SECTION",
	"2", "ENTITIES",
	"0", "INSERT",
	"5", "30",
	"100", "AcDbEntity",
	"8", "墙",
	"100", "AcDbBlockReference",
	"66", "1",
	"2", "门",
	"10", "5.0",
	"20", "5.0",
	"30", "0.0",
	"0", "ATTRIB",
	"5", "31",
	"100", "AcDbEntity",
	"8", "墙",
	"100", "AcDbText",
	"10", "5.0",
	"20", "5.0",
	"30", "0.0",
	"40", "2.5",
	"1", "M1",
	"100", "AcDbAttribute",
	"2", "编号",
	"70", "0",
	"0", "SEQEND",
	"5", "32",
	"100", "AcDbEntity",
	"8", "墙",
	"0", "POLYLINE",
	"5", "40",
	"100", "AcDbEntity",
	"8", "0",
	"100", "AcDb2dPolyline",
	"66", "1",
	"10", "0.0",
	"20", "0.0",
	"30", "0.0",
	"0", "VERTEX",
	"5", "41",
	"100", "AcDbEntity",
	"8", "0",
	"100", "AcDbVertex",
	"100", "AcDb2dVertex",
	"10", "1.0",
	"20", "1.0",
	"30", "0.0",
	"0", "VERTEX",
	"5", "42",
	"100", "AcDbEntity",
	"8", "0",
	"100", "AcDbVertex",
	"100", "AcDb2dVertex",
	"10", "2.0",
	"20", "1.0",
	"30", "0.0",
	"0", "SEQEND",
	"5", "43",
	"100", "AcDbEntity",
	"8", "0",
	"0", "LINE",
	"100", "AcDbEntity",
	"8", "0",
	"100", "AcDbLine",
	"10", "0.0",
	"0", "WIPEOUT",
	"5", "50",
	"100", "AcDbEntity",
	"0", "CIRCLE",
	"5", "51",
	"100", "AcDbEntity",
	"8", "0",
	"100", "AcDbCircle",
	"10", "0.0",
	"20", "0.0",
	"30", "0.0",
	"40", "abc",
	"0", "ENDSEC",
	"0", "SECTION",
	"2", "OBJECTS",
	"0", "DICTIONARY",
	"5", "C",
	"0", "ENDSEC",
	"0", "EOF",
)

func TestLoad(t *testing.T) {
	doc, err := Load(strings.NewReader(sample))
	require.NoError(t, err)

	// 表
	require.Contains(t, doc.Tables, "LAYER")
	require.Contains(t, doc.Tables, "DIMSTYLE")
	layer := doc.Layer("墙")
	require.NotNil(t, layer)
	assert.Equal(t, int16(1), layer.Color.Index)
	assert.Equal(t, "CONTINUOUS", doc.Tables["LAYER"].Entries[0].Names[6])
	style := doc.DimStyle("iso-25")
	require.NotNil(t, style)
	assert.Equal(t, int16(2), style.Precision)
	assert.Nil(t, doc.DimStyle("Standard"))

	// 块
	require.Contains(t, doc.Blocks, "门")
	block := doc.Blocks["门"]
	assert.Equal(t, "门", block.Name)
	require.Len(t, block.Entities, 1)
	assert.IsType(t, &entities.Line{}, block.Entities[0].Common().Object)
	require.NotNil(t, block.End)

	// 实体：INSERT、POLYLINE、CIRCLE，缺少句柄的 LINE 和 WIPEOUT 被丢弃
	require.Len(t, doc.Entities, 3)

	insert, ok := doc.Entities[0].(*templates.InsertTemplate)
	require.True(t, ok)
	assert.Equal(t, "门", insert.BlockName())
	require.Len(t, insert.Attributes, 1)
	attr := insert.Attributes[0].Object.(*entities.AttributeEntity)
	assert.Equal(t, "编号", attr.Tag)
	assert.Equal(t, "M1", attr.Value)
	require.NotNil(t, insert.Seqend)

	polyline, ok := doc.Entities[1].(*templates.PolylineTemplate)
	require.True(t, ok)
	assert.IsType(t, &entities.Polyline2D{}, polyline.Object)
	require.Len(t, polyline.Vertices, 2)
	assert.Equal(t, 2.0, polyline.Vertices[1].Vertex().AsVertex().Location.X)
	require.NotNil(t, polyline.Seqend)

	assert.IsType(t, &entities.Circle{}, doc.Entities[2].Common().Object)

	// 诊断
	count := func(severity notify.Severity) int {
		var n int
		for _, item := range doc.Notifications {
			if item.Severity == severity {
				n++
			}
		}
		return n
	}
	assert.Equal(t, 1, count(notify.NotImplemented))
	// 缺少句柄和 40 的非法值
	assert.Equal(t, 2, count(notify.Error))
	for _, n := range doc.Notifications {
		if n.Severity == notify.Error && errors.Is(n.Cause, reader.ErrMissingHandle) {
			assert.Positive(t, n.Position)
		}
	}
}

func TestLoad_FailsafeOff(t *testing.T) {
	cfg := config.Default()
	cfg.Failsafe = false

	doc, err := Load(strings.NewReader(sample), WithConfig(cfg))
	assert.Nil(t, doc)

	var mapping *reader.MappingError
	require.ErrorAs(t, err, &mapping)
	assert.Equal(t, 40, mapping.Code)
}

func TestLoad_CodePage(t *testing.T) {
	text := join(
		"0", "SECTION",
		"2", "ENTITIES",
		"0", "TEXT",
		"5", "1",
		"100", "AcDbEntity",
		"8", "图层",
		"100", "AcDbText",
		"1", "中文",
		"0", "ENDSEC",
		"0", "EOF",
	)
	encoded, err := simplifiedchinese.GBK.NewEncoder().String(text)
	require.NoError(t, err)

	cfg := config.Default()
	cfg.CodePage = "ANSI_936"

	doc, err := Load(bytes.NewReader([]byte(encoded)), WithConfig(cfg))
	require.NoError(t, err)
	require.Len(t, doc.Entities, 1)

	tpl := doc.Entities[0].(*templates.TextTemplate)
	assert.Equal(t, "图层", tpl.LayerName())
	assert.Equal(t, "中文", tpl.Object.(*entities.TextEntity).Value)
}

func TestLoad_UnknownCodePage(t *testing.T) {
	cfg := config.Default()
	cfg.CodePage = "ANSI_0"

	_, err := Load(strings.NewReader(""), WithConfig(cfg))
	assert.Error(t, err)
}

func TestLoad_Empty(t *testing.T) {
	doc, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, doc.Entities)
	assert.Empty(t, doc.Notifications)
}
