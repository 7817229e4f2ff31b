// Package templates 保存解析过程中的中间结果：对象本身已经赋值，
// 对其他对象的引用（所有者、图层、样式、块）只记录句柄或名称，由后续阶段解析。
package templates

import (
	"github.com/zooyer/dxfreader/core"
	"github.com/zooyer/dxfreader/entities"
)

// Template 所有模板的公共接口
type Template interface {
	Common() *CadTemplate
	// AddHandle 记录句柄引用，模板不接受该组码时返回 false
	AddHandle(code int, handle core.Handle) bool
	// AddName 记录名称引用，模板不接受该组码时返回 false
	AddName(code int, name string) bool
	// CheckCode 处理映射表中没有的重复组码（顶点、控制点等）
	CheckCode(code int, value any) bool
}

// CadTemplate 所有对象共有的数据
type CadTemplate struct {
	Object         entities.Object
	OwnerHandle    *core.Handle        // 组码 330
	XDictHandle    *core.Handle        // {ACAD_XDICTIONARY 中的 360
	ReactorHandles []core.Handle       // {ACAD_REACTORS 中的 330
	Handles        map[int]core.Handle // 按组码记录的句柄引用
	Names          map[int]string      // 按组码记录的名称引用
	EData          map[string]*ExtendedData
}

func NewCadTemplate(obj entities.Object) *CadTemplate {
	return &CadTemplate{
		Object:  obj,
		Handles: map[int]core.Handle{},
		Names:   map[int]string{},
		EData:   map[string]*ExtendedData{},
	}
}

func (t *CadTemplate) Common() *CadTemplate { return t }

func (t *CadTemplate) AddHandle(int, core.Handle) bool { return false }

func (t *CadTemplate) AddName(int, string) bool { return false }

func (t *CadTemplate) CheckCode(int, any) bool { return false }

// Handle 对象自身的句柄，0 表示尚未读取
func (t *CadTemplate) Handle() core.Handle {
	if t.Object == nil {
		return 0
	}
	return t.Object.Handle()
}

// SetOwner 记录所有者句柄
func (t *CadTemplate) SetOwner(h core.Handle) {
	t.OwnerHandle = &h
}

// SetXDictionary 记录扩展字典句柄
func (t *CadTemplate) SetXDictionary(h core.Handle) {
	t.XDictHandle = &h
}

// SetExtendedData 同名应用的扩展数据会被覆盖
func (t *CadTemplate) SetExtendedData(data *ExtendedData) {
	t.EData[data.AppName] = data
}

func (t *CadTemplate) setHandle(code int, h core.Handle) bool {
	t.Handles[code] = h
	return true
}

func (t *CadTemplate) setName(code int, name string) bool {
	t.Names[code] = name
	return true
}

// ExtendedData 一个应用 (组码 1001) 的扩展数据
type ExtendedData struct {
	AppName string
	Records []ExtendedDataRecord
}

// ExtendedDataRecord 扩展数据中的一组标签，值保持解析后的原样
type ExtendedDataRecord struct {
	Code  int
	Value any
}

func NewExtendedData(appName string) *ExtendedData {
	return &ExtendedData{AppName: appName}
}

func (d *ExtendedData) Add(code int, value any) {
	d.Records = append(d.Records, ExtendedDataRecord{Code: code, Value: value})
}
