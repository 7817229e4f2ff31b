package entities

import "github.com/zooyer/dxfreader/core"

// Object 是所有 DXF 对象（实体、表记录）的接口
type Object interface {
	// ObjectName 记录开始的名称，如 "LINE"
	ObjectName() string
	// SubclassMarker 最具体的子类标记，如 "AcDbLine"
	SubclassMarker() string
	// Subclasses 按出现顺序排列的子类链
	Subclasses() []string
	Handle() core.Handle
	SetHandle(h core.Handle)
}

// CadObject 存放所有对象通用的属性
type CadObject struct {
	handle core.Handle // 组码 5
}

func (o *CadObject) Handle() core.Handle { return o.handle }

func (o *CadObject) SetHandle(h core.Handle) { o.handle = h }
