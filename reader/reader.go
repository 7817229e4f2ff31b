// Package reader 把组码流转换为模板：先读取所有对象共有的数据，
// 再按子类标记 (组码 100) 逐段读取，大部分子类通过 dxfmap 的映射表赋值，
// 标注、多段线、填充等少数类型使用专门的读取函数。
package reader

import (
	"errors"
	"fmt"

	"github.com/zooyer/dxfreader/core"
	"github.com/zooyer/dxfreader/notify"
)

// Cursor 组码流，*core.Scanner 实现了该接口
type Cursor interface {
	Code() int
	ValueType() core.GroupCodeValueType
	Value() any
	ValueAsString() string
	ValueAsInt() int
	ValueAsShort() int16
	ValueAsDouble() float64
	ValueAsBool() bool
	ValueAsHandle() core.Handle
	Position() int
	// ReadNext 前进到下一组，读完后停在组码 0
	ReadNext()
}

var (
	// ErrMissingHandle 对象没有句柄，无法被其他对象引用
	ErrMissingHandle = errors.New("object handle not found")
	// ErrNotAtRecord 游标不在记录开始处
	ErrNotAtRecord = errors.New("cursor is not at a record start")
)

// MappingError 关闭容错模式时，赋值失败会中止整个文档的读取
type MappingError struct {
	Object   string
	Subclass string
	Code     int
	Position int
	Err      error
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("line %d: [%s] %s code %d: %v", e.Position, e.Object, e.Subclass, e.Code, e.Err)
}

func (e *MappingError) Unwrap() error {
	return e.Err
}

type Reader struct {
	cursor   Cursor
	sink     notify.Sink
	failsafe bool
}

type Option func(*Reader)

// WithFailsafe 开启时赋值失败只产生 Error 诊断，默认开启
func WithFailsafe(failsafe bool) Option {
	return func(r *Reader) {
		r.failsafe = failsafe
	}
}

func New(cursor Cursor, sink notify.Sink, opts ...Option) *Reader {
	if sink == nil {
		sink = notify.Discard
	}

	r := &Reader{cursor: cursor, sink: sink, failsafe: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Reader) notify(severity notify.Severity, cause error, format string, args ...any) {
	r.sink.Notify(fmt.Sprintf(format, args...), severity, cause)
}

// resync 前进到下一个记录开始，已经在记录开始时不动
func (r *Reader) resync() {
	for r.cursor.Code() != core.CodeStart {
		r.cursor.ReadNext()
	}
}

// skipRecord 跳过当前记录（包括开始的组码 0）
func (r *Reader) skipRecord() {
	r.cursor.ReadNext()
	r.resync()
}

func (r *Reader) missingHandle(name string, position int) error {
	return fmt.Errorf("%w: %s at line %d", ErrMissingHandle, name, position)
}

func (r *Reader) atRecord() error {
	if r.cursor.Code() != core.CodeStart {
		return fmt.Errorf("%w: line %d has code %d", ErrNotAtRecord, r.cursor.Position(), r.cursor.Code())
	}
	return nil
}
