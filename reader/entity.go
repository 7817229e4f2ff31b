package reader

import (
	"github.com/zooyer/dxfreader/core"
	"github.com/zooyer/dxfreader/dxfmap"
	"github.com/zooyer/dxfreader/entities"
	"github.com/zooyer/dxfreader/notify"
	"github.com/zooyer/dxfreader/templates"
)

// flatReader 逐组读取整条记录，返回是否处理了当前组码
type flatReader func(r *Reader, tpl templates.Entity, m *dxfmap.DxfMap) (bool, error)

// entityKind 一种实体的模板构造函数和读取方式
type entityKind struct {
	template func(e entities.Entity) templates.Entity
	// flat 为空时先读公共数据，再按子类逐段读取
	flat flatReader
}

func entityTemplate(e entities.Entity) templates.Entity { return templates.NewEntityTemplate(e) }

func textTemplate(e entities.Entity) templates.Entity { return templates.NewTextTemplate(e) }

var entityKinds = map[string]entityKind{
	entities.TokenAttribute:           {template: textTemplate},
	entities.TokenAttributeDefinition: {template: textTemplate, flat: readAttributeDefinition},
	entities.TokenArc:                 {template: entityTemplate, flat: readArc},
	entities.TokenCircle:              {template: entityTemplate, flat: readSubclassMap},
	entities.TokenDimension: {template: func(e entities.Entity) templates.Entity {
		return templates.NewDimensionTemplate(e.(entities.Dimension))
	}},
	entities.Token3DFace:     {template: entityTemplate, flat: readSubclassMap},
	entities.TokenEllipse:    {template: entityTemplate, flat: readSubclassMap},
	entities.TokenLine:       {template: entityTemplate, flat: readSubclassMap},
	entities.TokenLwPolyline: {template: func(e entities.Entity) templates.Entity {
		return templates.NewLwPolylineTemplate(e.(*entities.LWPolyline))
	}},
	entities.TokenHatch: {template: func(e entities.Entity) templates.Entity {
		return templates.NewHatchTemplate(e.(*entities.Hatch))
	}},
	entities.TokenInsert: {template: func(e entities.Entity) templates.Entity {
		return templates.NewInsertTemplate(e)
	}},
	entities.TokenMText: {template: textTemplate},
	entities.TokenMLine: {template: func(e entities.Entity) templates.Entity {
		return templates.NewMLineTemplate(e.(*entities.MLine))
	}},
	entities.TokenPoint: {template: entityTemplate},
	entities.TokenPolyline: {template: func(e entities.Entity) templates.Entity {
		return templates.NewPolylineTemplate(e.(entities.Polyline))
	}},
	entities.TokenRay:    {template: entityTemplate},
	entities.TokenSeqend: {template: entityTemplate},
	entities.TokenSolid:  {template: entityTemplate},
	entities.TokenText:   {template: textTemplate, flat: readTextEntity},
	entities.TokenVertex: {template: func(e entities.Entity) templates.Entity {
		return templates.NewVertexTemplate(e.(entities.Vertex))
	}},
	entities.TokenViewport: {template: func(e entities.Entity) templates.Entity {
		return templates.NewViewportTemplate(e.(*entities.Viewport))
	}, flat: readViewport},
	entities.TokenXLine: {template: entityTemplate},
	entities.TokenSpline: {template: func(e entities.Entity) templates.Entity {
		return templates.NewSplineTemplate(e.(*entities.Spline))
	}},
	entities.TokenBlock:    {template: entityTemplate},
	entities.TokenBlockEnd: {template: entityTemplate},
}

// ReadEntity 读取一个实体，游标位于记录开始 (0 LINE) 上，
// 结束时停在下一个记录开始处。
// 不支持的实体返回 nil, nil，表示跳过该记录。
func (r *Reader) ReadEntity() (templates.Entity, error) {
	if err := r.atRecord(); err != nil {
		return nil, err
	}

	name := r.cursor.ValueAsString()
	kind, ok := entityKinds[name]
	var obj entities.Entity
	if ok {
		obj = entities.CreateEntity(name)
	}
	if obj == nil {
		r.notify(notify.NotImplemented, nil, "entity not implemented: %s", name)
		r.skipRecord()
		return nil, nil
	}

	tpl := kind.template(obj)
	if kind.flat != nil {
		return r.readEntityCodes(tpl, kind.flat)
	}
	return r.readEntity(tpl)
}

// readEntityCodes 逐组读取整条记录，读取函数不处理的组码交给实体和对象的公共读取
func (r *Reader) readEntityCodes(tpl templates.Entity, read flatReader) (templates.Entity, error) {
	position := r.cursor.Position()
	r.cursor.ReadNext()

	m := dxfmap.For(tpl.Common().Object)
	for r.cursor.Code() != core.CodeStart {
		ok, err := read(r, tpl, m)
		if err != nil {
			return nil, err
		}

		if !ok {
			advanced, err := r.readCommonEntityCodes(tpl, m)
			if err != nil {
				return nil, err
			}
			if advanced {
				continue
			}
		}

		if r.cursor.Code() != core.CodeStart {
			r.cursor.ReadNext()
		}
	}

	if tpl.Common().Handle() == 0 {
		return nil, r.missingHandle(tpl.Common().Object.ObjectName(), position)
	}
	return tpl, nil
}

// readEntity 读取公共数据后按子类标记逐段读取
func (r *Reader) readEntity(tpl templates.Entity) (templates.Entity, error) {
	position := r.cursor.Position()
	r.cursor.ReadNext()

	r.readCommonObjectData(tpl)
	if tpl.Common().Handle() == 0 {
		r.resync()
		return nil, r.missingHandle(tpl.Common().Object.ObjectName(), position)
	}

	for r.cursor.Code() == core.CodeSubclass {
		keep, err := r.readSubclass(tpl, r.cursor.ValueAsString())
		if err != nil {
			return nil, err
		}
		if !keep {
			return nil, nil
		}
	}

	return tpl, nil
}

// 读到这些子类时才能确定具体类型
var promotions = map[string]func(tpl templates.Entity) bool{
	entities.SubclassAlignedDimension:       promoteDimension(func() entities.Dimension { return entities.NewDimensionAligned() }),
	entities.SubclassLinearDimension:        promoteDimension(func() entities.Dimension { return entities.NewDimensionLinear() }),
	entities.SubclassRadialDimension:        promoteDimension(func() entities.Dimension { return entities.NewDimensionRadius() }),
	entities.SubclassDiametricDimension:     promoteDimension(func() entities.Dimension { return entities.NewDimensionDiameter() }),
	entities.SubclassAngular3PointDimension: promoteDimension(func() entities.Dimension { return entities.NewDimensionAngular3Pt() }),
	entities.SubclassAngular2LineDimension:  promoteDimension(func() entities.Dimension { return entities.NewDimensionAngular2Line() }),
	entities.SubclassOrdinateDimension:      promoteDimension(func() entities.Dimension { return entities.NewDimensionOrdinate() }),
	entities.SubclassPolyline:               promotePolyline(func() entities.Polyline { return entities.NewPolyline2D() }),
	entities.SubclassPolyline3D:             promotePolyline(func() entities.Polyline { return entities.NewPolyline3D() }),
	entities.SubclassPolylineVertex:         promoteVertex(func() entities.Vertex { return entities.NewVertex2D() }),
	entities.SubclassPolyline3DVertex:       promoteVertex(func() entities.Vertex { return entities.NewVertex3D() }),
}

func promoteDimension(create func() entities.Dimension) func(templates.Entity) bool {
	return func(tpl templates.Entity) bool {
		d, ok := tpl.(*templates.DimensionTemplate)
		if ok {
			d.SetDimension(create())
		}
		return ok
	}
}

func promotePolyline(create func() entities.Polyline) func(templates.Entity) bool {
	return func(tpl templates.Entity) bool {
		p, ok := tpl.(*templates.PolylineTemplate)
		if ok {
			p.SetPolyline(create())
		}
		return ok
	}
}

func promoteVertex(create func() entities.Vertex) func(templates.Entity) bool {
	return func(tpl templates.Entity) bool {
		v, ok := tpl.(*templates.VertexTemplate)
		if ok {
			v.SetVertex(create())
		}
		return ok
	}
}

// 网格类多段线暂不支持，整条记录跳过
var unsupportedSubclasses = map[string]bool{
	entities.SubclassPolyfaceMesh:       true,
	entities.SubclassPolygonMesh:        true,
	entities.SubclassPolyfaceMeshVertex: true,
	entities.SubclassPolygonMeshVertex:  true,
	entities.SubclassFaceRecord:         true,
}

// readSubclass 读取一个子类段，返回 false 表示整条记录被丢弃
func (r *Reader) readSubclass(tpl templates.Entity, marker string) (bool, error) {
	if unsupportedSubclasses[marker] {
		r.notify(notify.NotImplemented, nil, "dxf entity subclass not implemented %s", marker)
		r.resync()
		return false, nil
	}

	if promote, ok := promotions[marker]; ok {
		promote(tpl)
	}

	if hatch, ok := tpl.(*templates.HatchTemplate); ok && marker == entities.SubclassHatch {
		return true, r.readHatch(hatch)
	}

	if _, ok := dxfmap.For(tpl.Common().Object).Class(marker); !ok {
		r.notify(notify.Warning, nil, "[%s] unhandled dxf entity subclass %s", tpl.Common().Object.ObjectName(), marker)
		r.cursor.ReadNext()
		r.resync()
		return true, nil
	}

	return true, r.readMapped(tpl, marker)
}

func readSubclassMap(r *Reader, tpl templates.Entity, m *dxfmap.DxfMap) (bool, error) {
	return r.tryAssign(tpl, class(m, tpl.Common().Object.SubclassMarker()))
}

// readArc 圆弧的组码不在 AcDbArc 中时按圆处理
func readArc(r *Reader, tpl templates.Entity, m *dxfmap.DxfMap) (bool, error) {
	ok, err := r.tryAssign(tpl, class(m, entities.SubclassArc))
	if err != nil || ok {
		return ok, err
	}
	return r.tryAssign(tpl, class(m, entities.SubclassCircle))
}

func readTextEntity(r *Reader, tpl templates.Entity, m *dxfmap.DxfMap) (bool, error) {
	if r.cursor.Code() == 7 {
		return tpl.AddName(7, r.cursor.ValueAsString()), nil
	}
	return r.tryAssign(tpl, class(m, entities.SubclassText))
}

func readAttributeDefinition(r *Reader, tpl templates.Entity, m *dxfmap.DxfMap) (bool, error) {
	switch r.cursor.Code() {
	case 44, 46, 101:
		// 多行属性暂不处理
		return true, nil
	}

	ok, err := r.tryAssign(tpl, class(m, entities.SubclassAttributeDefinition))
	if err != nil || ok {
		return ok, err
	}
	return readTextEntity(r, tpl, m)
}

func readViewport(r *Reader, tpl templates.Entity, m *dxfmap.DxfMap) (bool, error) {
	vp, ok := tpl.(*templates.ViewportTemplate)
	if !ok {
		return false, nil
	}

	switch r.cursor.Code() {
	case 67, 68:
		// 未公开的组码
		return true, nil
	case 69:
		vp.ViewportID = r.cursor.ValueAsShort()
		return true, nil
	case 348:
		vp.SetVisualStyle(r.cursor.ValueAsHandle())
		return true, nil
	}

	return r.tryAssign(tpl, class(m, entities.SubclassViewport))
}
