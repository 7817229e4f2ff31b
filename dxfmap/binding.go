// Package dxfmap 保存每个子类的组码映射表：组码 -> 赋值函数 + 引用类型。
// 表在 init 中静态构建，之后只读，可在多个解析器之间共享。
package dxfmap

import (
	"errors"
	"fmt"

	"github.com/zooyer/dxfreader/entities"
)

// Reference 描述组码值的用途，可以按位组合
type Reference int

const (
	// Handle 句柄引用，记录在模板上，由后续的解析阶段处理
	Handle Reference = 1 << iota
	// Name 名称引用（图层名、线型名、块名）
	Name
	// Count 重复次数，不保存
	Count
	// Ignored 忽略，不产生诊断
	Ignored
	// Unprocess 已知但暂不处理
	Unprocess
	// IsAngle 文件中为角度，赋值前换算为弧度
	IsAngle
)

// Direct 直接赋值
const Direct Reference = 0

func (r Reference) Has(flag Reference) bool {
	return r&flag == flag
}

// ErrInvalidValue 值的类型与字段不匹配
var ErrInvalidValue = errors.New("invalid value")

// ErrObjectType 对象不是该子类对应的类型
var ErrObjectType = errors.New("object does not match subclass")

// Setter 把解析后的值赋给对象的字段，类型不匹配时返回错误
type Setter func(obj entities.Object, value any) error

// Binding 一个组码的映射规则
type Binding struct {
	Code      int
	Reference Reference
	Set       Setter
}

// Settable 是否需要调用 Set
func (b *Binding) Settable() bool {
	return b.Set != nil && !b.Reference.Has(Handle) && !b.Reference.Has(Name) &&
		!b.Reference.Has(Count) && !b.Reference.Has(Ignored) && !b.Reference.Has(Unprocess)
}

// ClassMap 一个子类（组码 100）的映射表
type ClassMap struct {
	Name     string
	Bindings map[int]*Binding
}

func NewClassMap(name string) *ClassMap {
	return &ClassMap{Name: name, Bindings: map[int]*Binding{}}
}

// Lookup 查找组码的映射规则
func (m *ClassMap) Lookup(code int) (*Binding, bool) {
	if m == nil {
		return nil, false
	}
	b, ok := m.Bindings[code]
	return b, ok
}

func (m *ClassMap) add(b *Binding) {
	m.Bindings[b.Code] = b
}

// DxfMap 一个对象类型的全部子类映射表
type DxfMap struct {
	Name       string
	SubClasses map[string]*ClassMap
}

// Class 按子类标记取映射表
func (m *DxfMap) Class(marker string) (*ClassMap, bool) {
	c, ok := m.SubClasses[marker]
	return c, ok
}

func valueError(code int, want string, value any) error {
	return fmt.Errorf("%w: code %d expects %s, got %T(%v)", ErrInvalidValue, code, want, value, value)
}
