package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"github.com/zooyer/dxfreader"
	"gopkg.in/yaml.v3"
)

var drawing = strings.Join([]string{
	"0", "SECTION",
	"2", "ENTITIES",
	"0", "INSERT",
	"5", "30",
	"100", "AcDbEntity",
	"8", "门窗",
	"100", "AcDbBlockReference",
	"66", "1",
	"2", "门",
	"0", "ATTRIB",
	"5", "31",
	"100", "AcDbEntity",
	"8", "门窗",
	"100", "AcDbText",
	"1", "M1",
	"100", "AcDbAttribute",
	"2", "编号",
	"0", "SEQEND",
	"5", "32",
	"100", "AcDbEntity",
	"0", "DIMENSION",
	"5", "60",
	"100", "AcDbEntity",
	"8", "标注",
	"100", "AcDbDimension",
	"2", "*D1",
	"1", "<>",
	"3", "ISO-25",
	"42", "899.6",
	"100", "AcDbAlignedDimension",
	"100", "AcDbRotatedDimension",
	"0", "WIPEOUT",
	"5", "61",
	"0", "ENDSEC",
	"0", "EOF",
}, "\n") + "\n"

func loadReport(t *testing.T) *Report {
	t.Helper()

	doc, err := dxf.Load(strings.NewReader(drawing))
	require.NoError(t, err)

	return NewReport("plan.dxf", doc)
}

func TestNewReport(t *testing.T) {
	report := loadReport(t)

	assert.Equal(t, map[string]int{"INSERT": 1, "DIMENSION": 1}, report.Entities)

	require.Len(t, report.Inserts, 1)
	assert.Equal(t, InsertReport{
		Handle:     "30",
		Block:      "门",
		Layer:      "门窗",
		Attributes: map[string]string{"编号": "M1"},
	}, report.Inserts[0])

	require.Len(t, report.Dimensions, 1)
	dim := report.Dimensions[0]
	assert.Equal(t, "AcDbRotatedDimension", dim.Type)
	assert.Equal(t, "ISO-25", dim.Style)
	// 没有标注样式表时取整
	assert.Equal(t, 900.0, dim.Value)

	require.Len(t, report.Notifications, 1)
	assert.Equal(t, "not-implemented", report.Notifications[0].Severity)
	assert.Positive(t, report.Notifications[0].Line)
}

func TestReport_Encode(t *testing.T) {
	report := loadReport(t)

	var text bytes.Buffer
	require.NoError(t, report.Encode(&text, formatText))
	assert.Contains(t, text.String(), "[plan.dxf]")
	assert.Contains(t, text.String(), "编号:M1")

	var out bytes.Buffer
	require.NoError(t, report.Encode(&out, formatYAML))
	var reports []Report
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, report.Inserts, reports[0].Inserts)

	out.Reset()
	require.NoError(t, report.Encode(&out, formatMsgpack))
	var decoded Report
	require.NoError(t, msgpack.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, report.Dimensions, decoded.Dimensions)

	assert.Error(t, report.Encode(&out, "csv"))
}

func TestExpand(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.dxf", "sub/b.dxf", "sub/c.txt"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, nil, 0644))
	}

	files, err := expand([]string{filepath.Join(dir, "**", "*.dxf"), "missing.dxf"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "a.dxf"),
		filepath.Join(dir, "sub", "b.dxf"),
		"missing.dxf",
	}, files)
}

func TestReportName(t *testing.T) {
	assert.Equal(t, filepath.Join("dir", "plan.yaml"), reportName(filepath.Join("dir", "plan.dxf"), formatYAML))
	assert.Equal(t, "plan.txt", reportName("plan.DXF", formatText))
	assert.Equal(t, "plan.msgpack", reportName("plan.dxf", formatMsgpack))
}
