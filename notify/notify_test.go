package notify

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Order(t *testing.T) {
	line := 10
	c := NewCollector(WithPosition(func() int { return line }))

	c.Notify("未处理的组码 999", None, nil)
	line = 20
	c.Notify("不支持的实体 MESH", NotImplemented, nil)
	line = 30
	cause := errors.New("bad value")
	c.Notify("赋值失败", Error, cause)

	list := c.Notifications()
	require.Len(t, list, 3)
	assert.Equal(t, None, list[0].Severity)
	assert.Equal(t, 10, list[0].Position)
	assert.Equal(t, "不支持的实体 MESH", list[1].Message)
	assert.Equal(t, 30, list[2].Position)
	assert.ErrorIs(t, list[2].Cause, cause)

	assert.Equal(t, 1, c.Count(NotImplemented))
	assert.Equal(t, 0, c.Count(Warning))
}

func TestCollector_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	c := NewCollector(WithLogger(logger))
	c.Notify("unknown subclass AcDbFoo", Warning, nil)

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "component=dxf")
	assert.Contains(t, out, "severity=warning")
	assert.Contains(t, out, "AcDbFoo")
}

func TestNewLogSink(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	NewLogSink(logger).Notify("setter failed", Error, errors.New("invalid value"))
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "invalid value")
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "not-implemented", NotImplemented.String())
	assert.Equal(t, "unknown", Severity(42).String())
}
