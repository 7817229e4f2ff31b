package dxfmap

import "github.com/zooyer/dxfreader/entities"

func entity(obj entities.Object) (*entities.BaseEntity, bool) {
	if e, ok := obj.(entities.Entity); ok {
		return e.Entity(), true
	}
	return nil, false
}

func circle(obj entities.Object) (*entities.Circle, bool) {
	if c, ok := obj.(interface{ AsCircle() *entities.Circle }); ok {
		return c.AsCircle(), true
	}
	return nil, false
}

func text(obj entities.Object) (*entities.TextEntity, bool) {
	if t, ok := obj.(interface{ AsText() *entities.TextEntity }); ok {
		return t.AsText(), true
	}
	return nil, false
}

func attribute(obj entities.Object) (*entities.AttributeBase, bool) {
	if a, ok := obj.(interface{ AsAttribute() *entities.AttributeBase }); ok {
		return a.AsAttribute(), true
	}
	return nil, false
}

func dimension(obj entities.Object) (*entities.DimensionBase, bool) {
	if d, ok := obj.(entities.Dimension); ok {
		return d.Dim(), true
	}
	return nil, false
}

func aligned(obj entities.Object) (*entities.DimensionAligned, bool) {
	if d, ok := obj.(interface{ AsAligned() *entities.DimensionAligned }); ok {
		return d.AsAligned(), true
	}
	return nil, false
}

func polyline(obj entities.Object) (*entities.PolylineBase, bool) {
	if p, ok := obj.(entities.Polyline); ok {
		return p.Poly(), true
	}
	return nil, false
}

func vertex(obj entities.Object) (*entities.VertexBase, bool) {
	if v, ok := obj.(entities.Vertex); ok {
		return v.AsVertex(), true
	}
	return nil, false
}

func tableEntry(obj entities.Object) (*entities.TableEntry, bool) {
	if r, ok := obj.(entities.TableRecord); ok {
		return r.Entry(), true
	}
	return nil, false
}
