package dxfmap

import (
	"fmt"

	"github.com/zooyer/dxfreader/core"
	"github.com/zooyer/dxfreader/entities"
)

// is 对象本身就是 T
func is[T any](obj entities.Object) (T, bool) {
	t, ok := obj.(T)
	return t, ok
}

// builder 按子类构建映射表，T 是字段所在的结构体
type builder[T any] struct {
	m   *ClassMap
	get func(obj entities.Object) (T, bool)
}

func on[T any](m *ClassMap, get func(entities.Object) (T, bool)) *builder[T] {
	return &builder[T]{m: m, get: get}
}

func (b *builder[T]) bind(code int, ref Reference, set func(t T, v any) error) *builder[T] {
	var setter Setter
	if set != nil {
		setter = func(obj entities.Object, v any) error {
			t, ok := b.get(obj)
			if !ok {
				return fmt.Errorf("%w: %s for %s", ErrObjectType, b.m.Name, obj.ObjectName())
			}
			return set(t, v)
		}
	}
	b.m.add(&Binding{Code: code, Reference: ref, Set: setter})
	return b
}

func (b *builder[T]) float(code int, field func(T) *float64) *builder[T] {
	return b.bind(code, Direct, func(t T, v any) error {
		f, err := toFloat(code, v)
		if err != nil {
			return err
		}
		*field(t) = f
		return nil
	})
}

// angle 角度字段，读取时换算为弧度
func (b *builder[T]) angle(code int, field func(T) *float64) *builder[T] {
	b.float(code, field)
	b.m.Bindings[code].Reference |= IsAngle
	return b
}

func (b *builder[T]) short(code int, field func(T) *int16) *builder[T] {
	return b.bind(code, Direct, func(t T, v any) error {
		i, err := toShort(code, v)
		if err != nil {
			return err
		}
		*field(t) = i
		return nil
	})
}

func (b *builder[T]) integer(code int, field func(T) *int32) *builder[T] {
	return b.bind(code, Direct, func(t T, v any) error {
		i, err := toInt32(code, v)
		if err != nil {
			return err
		}
		*field(t) = i
		return nil
	})
}

func (b *builder[T]) boolean(code int, field func(T) *bool) *builder[T] {
	return b.bind(code, Direct, func(t T, v any) error {
		x, err := toBool(code, v)
		if err != nil {
			return err
		}
		*field(t) = x
		return nil
	})
}

func (b *builder[T]) text(code int, field func(T) *string) *builder[T] {
	return b.bind(code, Direct, func(t T, v any) error {
		s, err := toString(code, v)
		if err != nil {
			return err
		}
		*field(t) = s
		return nil
	})
}

// appendText 同一字段出现多次时按顺序拼接（多行文字的 3 / 1）
func (b *builder[T]) appendText(code int, field func(T) *string) *builder[T] {
	return b.bind(code, Direct, func(t T, v any) error {
		s, err := toString(code, v)
		if err != nil {
			return err
		}
		*field(t) += s
		return nil
	})
}

// point 绑定 code、code+10、code+20 三个坐标分量
func (b *builder[T]) point(code int, field func(T) *core.Point) *builder[T] {
	b.float(code, func(t T) *float64 { return &field(t).X })
	b.float(code+10, func(t T) *float64 { return &field(t).Y })
	b.float(code+20, func(t T) *float64 { return &field(t).Z })
	return b
}

// xy 绑定 code、code+10 两个坐标分量
func (b *builder[T]) xy(code int, field func(T) *core.XY) *builder[T] {
	b.float(code, func(t T) *float64 { return &field(t).X })
	b.float(code+10, func(t T) *float64 { return &field(t).Y })
	return b
}

// colorIndex 索引色 (62 / 63)
func (b *builder[T]) colorIndex(code int, field func(T) *entities.Color) *builder[T] {
	return b.bind(code, Direct, func(t T, v any) error {
		i, err := toShort(code, v)
		if err != nil {
			return err
		}
		field(t).Index = i
		return nil
	})
}

// trueColor 真彩色 (420 / 421)，保留已读取的索引色
func (b *builder[T]) trueColor(code int, field func(T) *entities.Color) *builder[T] {
	return b.bind(code, Direct, func(t T, v any) error {
		rgb, err := toInt32(code, v)
		if err != nil {
			return err
		}
		c := field(t)
		c.RGB, c.HasRGB = rgb&0xFFFFFF, true
		return nil
	})
}

func (b *builder[T]) handle(codes ...int) *builder[T] {
	return b.refs(Handle, codes)
}

func (b *builder[T]) name(codes ...int) *builder[T] {
	return b.refs(Name, codes)
}

func (b *builder[T]) count(codes ...int) *builder[T] {
	return b.refs(Count, codes)
}

func (b *builder[T]) ignored(codes ...int) *builder[T] {
	return b.refs(Ignored, codes)
}

func (b *builder[T]) unprocess(codes ...int) *builder[T] {
	return b.refs(Unprocess, codes)
}

func (b *builder[T]) refs(ref Reference, codes []int) *builder[T] {
	for _, code := range codes {
		b.bind(code, ref, nil)
	}
	return b
}
