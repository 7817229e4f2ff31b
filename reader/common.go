package reader

import (
	"github.com/zooyer/dxfreader/core"
	"github.com/zooyer/dxfreader/dxfmap"
	"github.com/zooyer/dxfreader/entities"
	"github.com/zooyer/dxfreader/notify"
	"github.com/zooyer/dxfreader/templates"
)

// 应用程序定义组 (组码 102)
const (
	dictionaryToken = "{ACAD_XDICTIONARY"
	reactorsToken   = "{ACAD_REACTORS"
	groupEndToken   = "}"
)

// commonData 表头等还没有模板的记录的公共数据
type commonData struct {
	name     string
	handle   core.Handle
	owner    *core.Handle
	xdict    *core.Handle
	reactors []core.Handle
	found    bool
}

// readCommonData 从记录开始读到第一个子类标记，名称、句柄等单独返回
func (r *Reader) readCommonData() commonData {
	var data commonData

	for start := true; r.cursor.Code() != core.CodeSubclass; start = false {
		code := r.cursor.Code()
		if code == core.CodeStart && !start {
			break
		}

		switch code {
		case 0, 2:
			data.name = r.cursor.ValueAsString()
		case 5, 105:
			data.handle = r.cursor.ValueAsHandle()
			data.found = true
		case 102:
			xdict, reactors := r.readDefinedGroups()
			if xdict != nil {
				data.xdict = xdict
			}
			data.reactors = append(data.reactors, reactors...)
			continue
		case 330:
			h := r.cursor.ValueAsHandle()
			data.owner = &h
		default:
			r.notify(notify.None, nil, "unhandled dxf code %d at line %d", code, r.cursor.Position())
		}

		r.cursor.ReadNext()
	}

	return data
}

// readCommonObjectData 读到第一个子类标记，结果直接写入模板。
// 游标应位于记录开始之后的第一组。
func (r *Reader) readCommonObjectData(tpl templates.Template) {
	common := tpl.Common()

	for r.cursor.Code() != core.CodeSubclass && r.cursor.Code() != core.CodeStart {
		switch code := r.cursor.Code(); code {
		case 5, 105:
			common.Object.SetHandle(r.cursor.ValueAsHandle())
		case 102:
			r.readDefinedGroupsInto(common)
			continue
		case 330:
			common.SetOwner(r.cursor.ValueAsHandle())
		default:
			r.notify(notify.None, nil, "unhandled dxf code %d at line %d", code, r.cursor.Position())
		}

		r.cursor.ReadNext()
	}
}

// readCommonCodes 子类读取函数都不处理的组码。
// 返回 true 表示游标已经停在下一组未读的组码上。
func (r *Reader) readCommonCodes(tpl templates.Template, m *dxfmap.DxfMap) bool {
	common := tpl.Common()

	switch code := r.cursor.Code(); code {
	case 5, 105:
		common.Object.SetHandle(r.cursor.ValueAsHandle())
	case core.CodeSubclass:
		if m != nil {
			if _, ok := m.Class(r.cursor.ValueAsString()); !ok {
				r.notify(notify.Warning, nil, "[%s] unidentified subclass %s", common.Object.ObjectName(), r.cursor.ValueAsString())
			}
		}
	case core.CodeControlString:
		r.readDefinedGroupsInto(common)
		return true
	case 330:
		common.SetOwner(r.cursor.ValueAsHandle())
	case core.CodeExtendedDataRegApp:
		r.readExtendedData(common.SetExtendedData)
		return true
	default:
		r.notify(notify.None, nil, "[%s] unhandled dxf code %d with value %s", common.Object.ObjectName(), code, r.cursor.ValueAsString())
	}

	return false
}

// readCommonEntityCodes 所有实体共有的组码：线型、图层、材质以及 AcDbEntity 的映射
func (r *Reader) readCommonEntityCodes(tpl templates.Entity, m *dxfmap.DxfMap) (bool, error) {
	switch code := r.cursor.Code(); code {
	case 6, 8:
		if !tpl.AddName(code, r.cursor.ValueAsString()) {
			r.notify(notify.None, nil, "[%s] name code %d not accepted", tpl.Common().Object.ObjectName(), code)
		}
	case 347:
		if !tpl.AddHandle(code, r.cursor.ValueAsHandle()) {
			r.notify(notify.None, nil, "[%s] handle code %d not accepted", tpl.Common().Object.ObjectName(), code)
		}
	default:
		ok, err := r.tryAssign(tpl, class(m, entities.SubclassEntity))
		if err != nil {
			return false, err
		}
		if !ok {
			return r.readCommonCodes(tpl, m), nil
		}
	}

	return false, nil
}

// readDefinedGroups 读取 102 组，结束时游标位于结束标记 "}" 之后
func (r *Reader) readDefinedGroups() (xdict *core.Handle, reactors []core.Handle) {
	switch r.cursor.ValueAsString() {
	case groupEndToken:
		// 没有开始标记的结束标记
	case dictionaryToken:
		r.cursor.ReadNext()
		h := r.cursor.ValueAsHandle()
		xdict = &h
		r.cursor.ReadNext()
		if r.cursor.Code() != core.CodeControlString {
			r.notify(notify.Warning, nil, "extended dictionary group not closed at line %d", r.cursor.Position())
			r.skipGroup()
		}
	case reactorsToken:
		r.cursor.ReadNext()
		for r.cursor.Code() != core.CodeControlString && r.cursor.Code() != core.CodeStart {
			if r.cursor.Code() == 330 {
				reactors = append(reactors, r.cursor.ValueAsHandle())
			}
			r.cursor.ReadNext()
		}
	default:
		// {BLKREFS 以及其他应用的组
		r.cursor.ReadNext()
		r.skipGroup()
	}

	if r.cursor.Code() == core.CodeControlString {
		r.cursor.ReadNext()
	}
	return xdict, reactors
}

func (r *Reader) skipGroup() {
	for r.cursor.Code() != core.CodeControlString && r.cursor.Code() != core.CodeStart {
		r.cursor.ReadNext()
	}
}

// readDefinedGroupsInto 只覆盖本组提供的数据
func (r *Reader) readDefinedGroupsInto(common *templates.CadTemplate) {
	xdict, reactors := r.readDefinedGroups()
	if xdict != nil {
		common.XDictHandle = xdict
	}
	common.ReactorHandles = append(common.ReactorHandles, reactors...)
}

// readExtendedData 读取一个应用 (1001) 的扩展数据。
// 遇到下一个应用名时递归读取，返回后当前应用也随之结束。
func (r *Reader) readExtendedData(add func(*templates.ExtendedData)) {
	data := templates.NewExtendedData(r.cursor.ValueAsString())
	add(data)

	r.cursor.ReadNext()
	for r.cursor.Code() >= core.CodeExtendedDataString {
		if r.cursor.Code() == core.CodeExtendedDataRegApp {
			r.readExtendedData(add)
			break
		}

		data.Add(r.cursor.Code(), r.cursor.Value())
		r.cursor.ReadNext()
	}
}

func class(m *dxfmap.DxfMap, name string) *dxfmap.ClassMap {
	c, _ := m.Class(name)
	return c
}
