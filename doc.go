// Package dxf 按段读取 DXF 文件：TABLES 中的表记录、BLOCKS 中的块定义和
// ENTITIES 中的实体都转换为模板，对其他对象的引用保持未解析状态。
package dxf

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/zooyer/dxfreader/config"
	"github.com/zooyer/dxfreader/core"
	"github.com/zooyer/dxfreader/entities"
	"github.com/zooyer/dxfreader/notify"
	"github.com/zooyer/dxfreader/reader"
	"github.com/zooyer/dxfreader/templates"
)

const (
	tokenSection    = "SECTION"
	tokenEndSection = "ENDSEC"

	sectionTables   = "TABLES"
	sectionBlocks   = "BLOCKS"
	sectionEntities = "ENTITIES"
)

// Block 块定义，BLOCK 与 ENDBLK 之间的实体
type Block struct {
	Name     string
	Begin    templates.Entity
	Entities []templates.Entity
	End      templates.Entity
}

type Document struct {
	Tables        map[string]*templates.TableTemplate
	Blocks        map[string]*Block
	Entities      []templates.Entity
	Notifications []notify.Notification
}

// DimStyle 按名称查找标注样式，名称不区分大小写
func (d *Document) DimStyle(name string) *entities.DimStyle {
	if entry := d.tableEntry(entities.TokenDimStyle, name); entry != nil {
		style, _ := entry.Record().(*entities.DimStyle)
		return style
	}
	return nil
}

// Layer 按名称查找图层
func (d *Document) Layer(name string) *entities.Layer {
	if entry := d.tableEntry(entities.TokenLayer, name); entry != nil {
		layer, _ := entry.Record().(*entities.Layer)
		return layer
	}
	return nil
}

func (d *Document) tableEntry(table, name string) *templates.TableEntryTemplate {
	t, ok := d.Tables[table]
	if !ok {
		return nil
	}
	for _, entry := range t.Entries {
		if strings.EqualFold(entry.Record().Entry().Name, name) {
			return entry
		}
	}
	return nil
}

type options struct {
	config *config.Configuration
	logger *slog.Logger
}

type Option func(*options)

// WithConfig 容错模式和代码页
func WithConfig(cfg *config.Configuration) Option {
	return func(o *options) {
		o.config = cfg
	}
}

// WithLogger 诊断同时写入日志
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func Open(filename string, opts ...Option) (doc *Document, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	return Load(file, opts...)
}

// Load 读取整个文档。缺少句柄的记录被丢弃并记为 Error 诊断；
// 关闭容错模式时赋值失败返回 *reader.MappingError。
func Load(r io.Reader, opts ...Option) (*Document, error) {
	o := options{config: config.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	scanner, err := core.NewDecodingScanner(r, o.config.CodePage)
	if err != nil {
		return nil, err
	}

	var collectorOpts []notify.Option
	if o.logger != nil {
		collectorOpts = append(collectorOpts, notify.WithLogger(o.logger))
	}
	sink := notify.NewCollector(collectorOpts...)
	sink.SetPosition(scanner.Position)

	l := &loader{
		scanner: scanner,
		sink:    sink,
		reader:  reader.New(scanner, sink, reader.WithFailsafe(o.config.Failsafe)),
		document: &Document{
			Tables:   make(map[string]*templates.TableTemplate),
			Blocks:   make(map[string]*Block),
			Entities: make([]templates.Entity, 0, 1024),
		},
	}

	err = l.load()
	l.document.Notifications = sink.Notifications()
	if err != nil {
		return nil, err
	}
	if err = scanner.Err(); err != nil {
		return nil, err
	}

	return l.document, nil
}

type loader struct {
	scanner  *core.Scanner
	sink     notify.Sink
	reader   *reader.Reader
	document *Document
}

func (l *loader) at(token string) bool {
	return l.scanner.Code() == core.CodeStart && strings.EqualFold(l.scanner.ValueAsString(), token)
}

func (l *loader) eof() bool {
	return l.at(core.EOFValue)
}

func (l *loader) load() error {
	l.scanner.ReadNext()

	for !l.eof() {
		if !l.at(tokenSection) {
			l.scanner.ReadNext()
			continue
		}

		l.scanner.ReadNext()
		name := strings.ToUpper(l.scanner.ValueAsString())
		l.scanner.ReadNext()

		var err error
		switch name {
		case sectionTables:
			err = l.readTables()
		case sectionBlocks:
			err = l.readBlocks()
		case sectionEntities:
			err = l.readEntities(func(tpl templates.Entity) {
				l.document.Entities = append(l.document.Entities, tpl)
			})
		default:
			l.skipSection()
		}
		if err != nil {
			return err
		}

		if l.at(tokenEndSection) {
			l.scanner.ReadNext()
		}
	}

	return nil
}

func (l *loader) skipSection() {
	for !l.at(tokenEndSection) && !l.eof() {
		l.scanner.ReadNext()
	}
}

// recoverable 缺少句柄只丢弃当前记录
func (l *loader) recoverable(err error) bool {
	if errors.Is(err, reader.ErrMissingHandle) {
		l.sink.Notify("record dropped", notify.Error, err)
		return true
	}
	return false
}

func (l *loader) readTables() error {
	for !l.at(tokenEndSection) && !l.eof() {
		if !l.at(entities.TokenTable) {
			l.scanner.ReadNext()
			continue
		}

		table, err := l.reader.ReadTable()
		if err != nil {
			if l.recoverable(err) {
				continue
			}
			return err
		}

		for !l.at(entities.TokenEndTable) && !l.at(tokenEndSection) && !l.eof() {
			entry, err := l.reader.ReadTableEntry()
			if err != nil {
				if l.recoverable(err) {
					continue
				}
				return err
			}
			if entry != nil {
				table.Entries = append(table.Entries, entry)
			}
		}

		l.document.Tables[strings.ToUpper(table.Name)] = table
	}

	return nil
}

func (l *loader) readBlocks() error {
	var block *Block

	return l.readEntities(func(tpl templates.Entity) {
		switch obj := tpl.Common().Object.(type) {
		case *entities.BlockBegin:
			block = &Block{Name: obj.Name, Begin: tpl}
			l.document.Blocks[strings.ToUpper(obj.Name)] = block
		case *entities.BlockEnd:
			if block != nil {
				block.End = tpl
				block = nil
			}
		default:
			if block == nil {
				l.sink.Notify("entity outside of block definition", notify.Warning, nil)
				return
			}
			block.Entities = append(block.Entities, tpl)
		}
	})
}

// readEntities 读到段结束，ATTRIB、VERTEX 和 SEQEND 归到前面的 INSERT 或 POLYLINE
func (l *loader) readEntities(add func(templates.Entity)) error {
	var seq sequence

	for !l.at(tokenEndSection) && !l.eof() {
		tpl, err := l.reader.ReadEntity()
		if err != nil {
			if l.recoverable(err) {
				continue
			}
			return err
		}
		if tpl == nil {
			continue
		}

		if !seq.add(tpl) {
			add(tpl)
		}
	}

	return nil
}

// sequence 正在接收属性或顶点的实体
type sequence struct {
	insert   *templates.InsertTemplate
	polyline *templates.PolylineTemplate
}

// add 返回 true 表示模板已经归到前面的实体中
func (s *sequence) add(tpl templates.Entity) bool {
	switch t := tpl.(type) {
	case *templates.TextTemplate:
		if _, ok := t.Object.(*entities.AttributeEntity); ok && s.insert != nil {
			s.insert.Attributes = append(s.insert.Attributes, t)
			return true
		}
	case *templates.VertexTemplate:
		if s.polyline != nil {
			s.polyline.Vertices = append(s.polyline.Vertices, t)
			return true
		}
	case *templates.EntityTemplate:
		if _, ok := t.Object.(*entities.Seqend); ok {
			switch {
			case s.insert != nil:
				s.insert.Seqend = t
			case s.polyline != nil:
				s.polyline.Seqend = t
			default:
				return false
			}
			*s = sequence{}
			return true
		}
	}

	*s = sequence{}
	switch t := tpl.(type) {
	case *templates.InsertTemplate:
		if insert, ok := t.Object.(*entities.Insert); ok && insert.HasAttributes {
			s.insert = t
		}
	case *templates.PolylineTemplate:
		s.polyline = t
	}
	return false
}
