package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/vmihailenco/msgpack/v5"
	"github.com/zooyer/dxfreader"
	"github.com/zooyer/dxfreader/templates"
	"github.com/zooyer/dxfreader/utils"
	"gopkg.in/yaml.v3"
)

const (
	formatText    = "text"
	formatYAML    = "yaml"
	formatMsgpack = "msgpack"
)

type Report struct {
	File          string               `yaml:"file" msgpack:"file"`
	Tables        map[string]int       `yaml:"tables,omitempty" msgpack:"tables,omitempty"`
	Blocks        []string             `yaml:"blocks,omitempty" msgpack:"blocks,omitempty"`
	Entities      map[string]int       `yaml:"entities,omitempty" msgpack:"entities,omitempty"`
	Inserts       []InsertReport       `yaml:"inserts,omitempty" msgpack:"inserts,omitempty"`
	Dimensions    []DimensionReport    `yaml:"dimensions,omitempty" msgpack:"dimensions,omitempty"`
	Notifications []NotificationReport `yaml:"notifications,omitempty" msgpack:"notifications,omitempty"`
}

// InsertReport 块参照及其属性
type InsertReport struct {
	Handle     string            `yaml:"handle" msgpack:"handle"`
	Block      string            `yaml:"block" msgpack:"block"`
	Layer      string            `yaml:"layer,omitempty" msgpack:"layer,omitempty"`
	Attributes map[string]string `yaml:"attributes,omitempty" msgpack:"attributes,omitempty"`
}

// DimensionReport 标注及其显示值
type DimensionReport struct {
	Handle string  `yaml:"handle" msgpack:"handle"`
	Type   string  `yaml:"type" msgpack:"type"`
	Style  string  `yaml:"style,omitempty" msgpack:"style,omitempty"`
	Text   string  `yaml:"text,omitempty" msgpack:"text,omitempty"`
	Value  float64 `yaml:"value" msgpack:"value"`
}

type NotificationReport struct {
	Severity string `yaml:"severity" msgpack:"severity"`
	Line     int    `yaml:"line,omitempty" msgpack:"line,omitempty"`
	Message  string `yaml:"message" msgpack:"message"`
	Cause    string `yaml:"cause,omitempty" msgpack:"cause,omitempty"`
}

func NewReport(file string, doc *dxf.Document) *Report {
	var report = &Report{
		File:     file,
		Tables:   make(map[string]int),
		Entities: make(map[string]int),
	}

	for name, table := range doc.Tables {
		report.Tables[name] = len(table.Entries)
	}

	for _, block := range doc.Blocks {
		report.Blocks = append(report.Blocks, block.Name)
	}
	sort.Strings(report.Blocks)

	for _, tpl := range doc.Entities {
		report.Entities[tpl.Common().Object.ObjectName()]++

		switch t := tpl.(type) {
		case *templates.InsertTemplate:
			report.Inserts = append(report.Inserts, InsertReport{
				Handle:     t.Handle().String(),
				Block:      t.BlockName(),
				Layer:      t.LayerName(),
				Attributes: utils.GetAttrs(t),
			})
		case *templates.DimensionTemplate:
			dim := t.Dimension()
			report.Dimensions = append(report.Dimensions, DimensionReport{
				Handle: t.Handle().String(),
				Type:   dim.SubclassMarker(),
				Style:  t.StyleName(),
				Text:   dim.Dim().Text,
				Value:  utils.GetDimValue(doc, t),
			})
		}
	}

	for _, n := range doc.Notifications {
		var item = NotificationReport{
			Severity: n.Severity.String(),
			Line:     n.Position,
			Message:  n.Message,
		}
		if n.Cause != nil {
			item.Cause = n.Cause.Error()
		}
		report.Notifications = append(report.Notifications, item)
	}

	return report
}

// Encode 按格式输出报告，msgpack 多个报告依次追加
func (r *Report) Encode(w io.Writer, format string) error {
	switch format {
	case formatText:
		return r.writeText(w)
	case formatYAML:
		data, err := yaml.Marshal([]*Report{r})
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case formatMsgpack:
		data, err := msgpack.Marshal(r)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	return fmt.Errorf("unknown format %q: expected %s, %s or %s", format, formatText, formatYAML, formatMsgpack)
}

func sortedKeys(m map[string]int) []string {
	var keys = make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (r *Report) writeText(w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "[%s]\n", r.File)
	for _, name := range sortedKeys(r.Tables) {
		fmt.Fprintf(&b, "    [表 %s] | %d 条记录\n", name, r.Tables[name])
	}
	if len(r.Blocks) > 0 {
		fmt.Fprintf(&b, "    [块] | %s\n", strings.Join(r.Blocks, ", "))
	}
	for _, name := range sortedKeys(r.Entities) {
		fmt.Fprintf(&b, "    [实体 %s] | %d\n", name, r.Entities[name])
	}

	for i, ins := range r.Inserts {
		fmt.Fprintf(&b, "    [块参照%d] | %s | 块:%s 图层:%s\n", i+1, ins.Handle, ins.Block, ins.Layer)
		var tags = make([]string, 0, len(ins.Attributes))
		for tag := range ins.Attributes {
			tags = append(tags, tag)
		}
		sort.Strings(tags)
		for _, tag := range tags {
			fmt.Fprintf(&b, "       |-- %s:%s\n", tag, ins.Attributes[tag])
		}
	}

	for i, dim := range r.Dimensions {
		fmt.Fprintf(&b, "    [标注%d] | %s | %s 样式:%s 值:%g\n", i+1, dim.Handle, dim.Type, dim.Style, dim.Value)
	}

	for _, n := range r.Notifications {
		fmt.Fprintf(&b, "    [%s] 第%d行 | %s", n.Severity, n.Line, n.Message)
		if n.Cause != "" {
			fmt.Fprintf(&b, ": %s", n.Cause)
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// expand 展开通配符 (支持 **)，普通路径原样返回
func expand(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[{") {
			files = append(files, arg)
			continue
		}

		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", arg, err)
		}
		files = append(files, matches...)
	}

	return files, nil
}

// reportName 拖入单个文件时报告写在同目录下
func reportName(file, format string) string {
	var ext = ".txt"
	switch format {
	case formatYAML:
		ext = ".yaml"
	case formatMsgpack:
		ext = ".msgpack"
	}

	return strings.TrimSuffix(file, filepath.Ext(file)) + ext
}

// truncate 清空上次的报告
func truncate(filename string) error {
	return os.WriteFile(filename, nil, 0644)
}
