package reader

import (
	"github.com/zooyer/dxfreader/core"
	"github.com/zooyer/dxfreader/dxfmap"
	"github.com/zooyer/dxfreader/notify"
	"github.com/zooyer/dxfreader/templates"
)

// readMapped 按子类映射表读取一个子类段，游标位于子类标记上，
// 结束时停在下一个子类标记或记录开始处
func (r *Reader) readMapped(tpl templates.Template, marker string) error {
	common := tpl.Common()
	m, _ := dxfmap.For(common.Object).Class(marker)

	r.cursor.ReadNext()

	for r.cursor.Code() != core.CodeStart && r.cursor.Code() != core.CodeSubclass {
		code := r.cursor.Code()

		switch {
		case code == core.CodeExtendedDataRegApp:
			r.readExtendedData(common.SetExtendedData)
			continue
		case code >= core.CodeExtendedDataString:
			r.notify(notify.None, nil, "extended data should start with %d, got %d", core.CodeExtendedDataRegApp, code)
			r.cursor.ReadNext()
			continue
		case code == core.CodeControlString:
			if tpl.CheckCode(code, r.cursor.Value()) {
				r.cursor.ReadNext()
			} else {
				r.readDefinedGroupsInto(common)
			}
			continue
		}

		b, ok := m.Lookup(code)
		if !ok {
			if !tpl.CheckCode(code, r.cursor.Value()) {
				r.notify(notify.None, nil, "dxf code %d not found in map for %s | value: %s", code, marker, r.cursor.ValueAsString())
			}
			r.cursor.ReadNext()
			continue
		}

		switch {
		case b.Reference.Has(dxfmap.Handle):
			if !tpl.AddHandle(code, r.cursor.ValueAsHandle()) {
				r.notify(notify.None, nil, "handle code %d not accepted by %s template for %s | value: %s",
					code, common.Object.ObjectName(), marker, r.cursor.ValueAsString())
			}
		case b.Reference.Has(dxfmap.Name):
			if !tpl.AddName(code, r.cursor.ValueAsString()) {
				r.notify(notify.None, nil, "name code %d not accepted by %s template for %s | value: %s",
					code, common.Object.ObjectName(), marker, r.cursor.ValueAsString())
			}
		case b.Reference.Has(dxfmap.Count):
			// 只是重复次数
		case b.Reference.Has(dxfmap.Ignored), b.Reference.Has(dxfmap.Unprocess):
		default:
			if err := r.assignValue(tpl, b, marker); err != nil {
				return err
			}
		}

		r.cursor.ReadNext()
	}

	return nil
}

// assignValue 按值类型决定是否可以赋值
func (r *Reader) assignValue(tpl templates.Template, b *dxfmap.Binding, marker string) error {
	switch t := r.cursor.ValueType(); t {
	case core.ValueString, core.ValuePoint3D, core.ValueDouble, core.ValueInt16,
		core.ValueInt32, core.ValueInt64, core.ValueChunk, core.ValueBool:
		return r.apply(tpl, b, marker)
	case core.ValueComment:
		r.notify(notify.None, nil, "comment in the file: %s", r.cursor.ValueAsString())
	default:
		r.notify(notify.None, nil, "group code value type %s not handled for %s, code: %d | value: %s",
			t, marker, r.cursor.Code(), r.cursor.ValueAsString())
	}
	return nil
}

// apply 调用赋值函数，失败时按容错模式处理
func (r *Reader) apply(tpl templates.Template, b *dxfmap.Binding, marker string) error {
	value := r.cursor.Value()
	if b.Reference.Has(dxfmap.IsAngle) {
		if f, ok := value.(float64); ok {
			value = f * core.DegToRad
		}
	}

	obj := tpl.Common().Object
	err := b.Set(obj, value)
	if err == nil {
		return nil
	}

	if !r.failsafe {
		return &MappingError{
			Object:   obj.ObjectName(),
			Subclass: marker,
			Code:     r.cursor.Code(),
			Position: r.cursor.Position(),
			Err:      err,
		}
	}

	r.notify(notify.Error, err, "[%s] error assigning code %d for %s", obj.ObjectName(), r.cursor.Code(), marker)
	return nil
}

// tryAssign 在给定的映射表中处理当前组码，映射表中没有该组码时返回 false
func (r *Reader) tryAssign(tpl templates.Template, m *dxfmap.ClassMap) (bool, error) {
	code := r.cursor.Code()

	b, ok := m.Lookup(code)
	if !ok {
		return false, nil
	}

	switch {
	case b.Reference.Has(dxfmap.Handle):
		return tpl.AddHandle(code, r.cursor.ValueAsHandle()), nil
	case b.Reference.Has(dxfmap.Name):
		return tpl.AddName(code, r.cursor.ValueAsString()), nil
	case b.Reference.Has(dxfmap.Count), b.Reference.Has(dxfmap.Ignored), b.Reference.Has(dxfmap.Unprocess):
		return true, nil
	}

	return true, r.apply(tpl, b, m.Name)
}
