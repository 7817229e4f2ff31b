package templates

import (
	"github.com/zooyer/dxfreader/core"
	"github.com/zooyer/dxfreader/entities"
)

// TableTemplate 符号表头 (0 TABLE)，表记录在 Entries 中
type TableTemplate struct {
	Name           string // 组码 2
	Handle         core.Handle
	OwnerHandle    *core.Handle
	XDictHandle    *core.Handle
	ReactorHandles []core.Handle
	Count          int // 组码 70，仅供参考
	Entries        []*TableEntryTemplate
	EData          map[string]*ExtendedData
}

func NewTableTemplate(name string, handle core.Handle) *TableTemplate {
	return &TableTemplate{Name: name, Handle: handle, EData: map[string]*ExtendedData{}}
}

// SetExtendedData 同名应用的扩展数据会被覆盖
func (t *TableTemplate) SetExtendedData(data *ExtendedData) {
	t.EData[data.AppName] = data
}

// TableEntryTemplate 表记录：图层、文字样式、标注样式
type TableEntryTemplate struct {
	CadTemplate
}

func NewTableEntryTemplate(r entities.TableRecord) *TableEntryTemplate {
	return &TableEntryTemplate{CadTemplate: *NewCadTemplate(r)}
}

func (t *TableEntryTemplate) Record() entities.TableRecord {
	r, _ := t.Object.(entities.TableRecord)
	return r
}

// AddName 6 为图层的线型名
func (t *TableEntryTemplate) AddName(code int, name string) bool {
	if code == 6 {
		return t.setName(code, name)
	}
	return false
}

// AddHandle 340 标注样式的文字样式，347 材质，390 打印样式
func (t *TableEntryTemplate) AddHandle(code int, h core.Handle) bool {
	switch code {
	case 340, 347, 390:
		return t.setHandle(code, h)
	}
	return false
}
