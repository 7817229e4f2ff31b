package core

import (
	"strconv"
	"strings"
)

// Handle 文档内唯一的对象句柄（十六进制）
type Handle uint64

// ParseHandle 解析十六进制句柄
func ParseHandle(s string) (Handle, error) {
	h, err := strconv.ParseUint(strings.TrimSpace(s), 16, 64)
	if err != nil {
		return 0, err
	}
	return Handle(h), nil
}

func (h Handle) String() string {
	return strings.ToUpper(strconv.FormatUint(uint64(h), 16))
}
