// Package notify 收集解析过程中的诊断信息。诊断不影响解析流程，
// 只有在关闭容错模式时，赋值失败才会变成错误返回。
package notify

import (
	"context"
	"log/slog"
	"sync"
)

type Severity int

const (
	// None 提示信息，如未处理的组码
	None Severity = iota
	Warning
	Error
	// NotImplemented 暂不支持的对象，已跳过
	NotImplemented
)

func (s Severity) String() string {
	switch s {
	case None:
		return "none"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case NotImplemented:
		return "not-implemented"
	}
	return "unknown"
}

// Level 对应的日志级别
func (s Severity) Level() slog.Level {
	switch s {
	case Warning, NotImplemented:
		return slog.LevelWarn
	case Error:
		return slog.LevelError
	}
	return slog.LevelDebug
}

type Notification struct {
	Severity Severity
	Message  string
	Position int // 组码所在行，0 表示未知
	Cause    error
}

// Sink 接收诊断
type Sink interface {
	Notify(message string, severity Severity, cause error)
}

// SinkFunc 把函数适配为 Sink
type SinkFunc func(message string, severity Severity, cause error)

func (f SinkFunc) Notify(message string, severity Severity, cause error) {
	f(message, severity, cause)
}

// Discard 丢弃所有诊断
var Discard Sink = SinkFunc(func(string, Severity, error) {})

// Collector 按顺序保存诊断，可选地同时写入日志
type Collector struct {
	mu       sync.Mutex
	logger   *slog.Logger
	position func() int
	list     []Notification
}

type Option func(*Collector)

// WithLogger 每条诊断同时写入日志
func WithLogger(logger *slog.Logger) Option {
	return func(c *Collector) {
		c.logger = logger.With(slog.String("component", "dxf"))
	}
}

// WithPosition 记录诊断时的行号来源，一般是扫描器的 Position
func WithPosition(position func() int) Option {
	return func(c *Collector) {
		c.position = position
	}
}

func NewCollector(opts ...Option) *Collector {
	c := new(Collector)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetPosition 文档打开后才能拿到扫描器
func (c *Collector) SetPosition(position func() int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = position
}

func (c *Collector) Notify(message string, severity Severity, cause error) {
	c.mu.Lock()
	n := Notification{Severity: severity, Message: message, Cause: cause}
	if c.position != nil {
		n.Position = c.position()
	}
	c.list = append(c.list, n)
	logger := c.logger
	c.mu.Unlock()

	if logger != nil {
		log(logger, n)
	}
}

// Notifications 返回已收集诊断的副本
func (c *Collector) Notifications() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Notification(nil), c.list...)
}

// Count 统计某一级别的诊断数量
func (c *Collector) Count(severity Severity) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	var n int
	for _, item := range c.list {
		if item.Severity == severity {
			n++
		}
	}
	return n
}

// NewLogSink 只写日志，不保存
func NewLogSink(logger *slog.Logger) Sink {
	logger = logger.With(slog.String("component", "dxf"))
	return SinkFunc(func(message string, severity Severity, cause error) {
		log(logger, Notification{Severity: severity, Message: message, Cause: cause})
	})
}

func log(logger *slog.Logger, n Notification) {
	attrs := []slog.Attr{slog.String("severity", n.Severity.String())}
	if n.Position > 0 {
		attrs = append(attrs, slog.Int("line", n.Position))
	}
	if n.Cause != nil {
		attrs = append(attrs, slog.String("error", n.Cause.Error()))
	}
	logger.LogAttrs(context.Background(), n.Severity.Level(), n.Message, attrs...)
}
