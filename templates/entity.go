package templates

import (
	"github.com/zooyer/dxfreader/core"
	"github.com/zooyer/dxfreader/entities"
)

// Entity 图形实体模板
type Entity interface {
	Template
	EntityData() *EntityTemplate
}

// EntityTemplate 通用实体模板，记录线型 (6)、图层 (8)、材质 (347)、打印样式 (390)
type EntityTemplate struct {
	CadTemplate
}

func NewEntityTemplate(e entities.Entity) *EntityTemplate {
	return &EntityTemplate{CadTemplate: *NewCadTemplate(e)}
}

func (t *EntityTemplate) EntityData() *EntityTemplate { return t }

// Entity 正在构建的实体
func (t *EntityTemplate) Entity() entities.Entity {
	e, _ := t.Object.(entities.Entity)
	return e
}

func (t *EntityTemplate) LayerName() string { return t.Names[8] }

func (t *EntityTemplate) LineTypeName() string { return t.Names[6] }

func (t *EntityTemplate) AddHandle(code int, h core.Handle) bool {
	switch code {
	case 347, 390:
		return t.setHandle(code, h)
	}
	return false
}

func (t *EntityTemplate) AddName(code int, name string) bool {
	switch code {
	case 6, 8:
		return t.setName(code, name)
	}
	return false
}

// TextTemplate 文字、多行文字、属性、属性定义，额外记录文字样式 (7)
type TextTemplate struct {
	EntityTemplate
}

func NewTextTemplate(e entities.Entity) *TextTemplate {
	return &TextTemplate{EntityTemplate: *NewEntityTemplate(e)}
}

func (t *TextTemplate) StyleName() string { return t.Names[7] }

func (t *TextTemplate) AddName(code int, name string) bool {
	if code == 7 {
		return t.setName(code, name)
	}
	return t.EntityTemplate.AddName(code, name)
}

// InsertTemplate 块参照，记录块名 (2) 以及随后的属性
type InsertTemplate struct {
	EntityTemplate
	Attributes []*TextTemplate
	Seqend     *EntityTemplate
}

func NewInsertTemplate(e entities.Entity) *InsertTemplate {
	return &InsertTemplate{EntityTemplate: *NewEntityTemplate(e)}
}

func (t *InsertTemplate) BlockName() string { return t.Names[2] }

func (t *InsertTemplate) AddName(code int, name string) bool {
	if code == 2 {
		return t.setName(code, name)
	}
	return t.EntityTemplate.AddName(code, name)
}

// DimensionTemplate 标注，读到具体子类标记后替换为具体类型
type DimensionTemplate struct {
	EntityTemplate
}

func NewDimensionTemplate(d entities.Dimension) *DimensionTemplate {
	return &DimensionTemplate{EntityTemplate: *NewEntityTemplate(d)}
}

func (t *DimensionTemplate) Dimension() entities.Dimension {
	d, _ := t.Object.(entities.Dimension)
	return d
}

// BlockName 标注图形所在的匿名块
func (t *DimensionTemplate) BlockName() string { return t.Names[2] }

// StyleName 标注样式名
func (t *DimensionTemplate) StyleName() string { return t.Names[3] }

func (t *DimensionTemplate) AddName(code int, name string) bool {
	switch code {
	case 2, 3:
		return t.setName(code, name)
	}
	return t.EntityTemplate.AddName(code, name)
}

type alignedDimension interface {
	AsAligned() *entities.DimensionAligned
}

// SetDimension 用具体类型替换当前标注，已读取的公共数据保留
func (t *DimensionTemplate) SetDimension(d entities.Dimension) {
	if old := t.Dimension(); old != nil {
		*d.Dim() = *old.Dim()

		from, ok1 := old.(alignedDimension)
		to, ok2 := d.(alignedDimension)
		if ok1 && ok2 {
			*to.AsAligned() = *from.AsAligned()
		}
	}
	t.Object = d
}

// PolylineTemplate 二维、三维多段线，随后的顶点和 SEQEND 归到这里
type PolylineTemplate struct {
	EntityTemplate
	Vertices []*VertexTemplate
	Seqend   *EntityTemplate
}

func NewPolylineTemplate(p entities.Polyline) *PolylineTemplate {
	return &PolylineTemplate{EntityTemplate: *NewEntityTemplate(p)}
}

func (t *PolylineTemplate) Polyline() entities.Polyline {
	p, _ := t.Object.(entities.Polyline)
	return p
}

// SetPolyline 用具体类型替换当前多段线，已读取的公共数据保留
func (t *PolylineTemplate) SetPolyline(p entities.Polyline) {
	if old := t.Polyline(); old != nil {
		*p.Poly() = *old.Poly()
	}
	t.Object = p
}

type VertexTemplate struct {
	EntityTemplate
}

func NewVertexTemplate(v entities.Vertex) *VertexTemplate {
	return &VertexTemplate{EntityTemplate: *NewEntityTemplate(v)}
}

func (t *VertexTemplate) Vertex() entities.Vertex {
	v, _ := t.Object.(entities.Vertex)
	return v
}

// SetVertex 用具体类型替换当前顶点，已读取的公共数据保留
func (t *VertexTemplate) SetVertex(v entities.Vertex) {
	if old := t.Vertex(); old != nil {
		*v.AsVertex() = *old.AsVertex()
	}
	t.Object = v
}
