package core

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
)

// 旧版 DXF 使用 $DWGCODEPAGE 指定的代码页
var codePages = map[string]string{
	"ANSI_874":  "windows-874",
	"ANSI_932":  "shift_jis",
	"ANSI_936":  "gbk",
	"ANSI_949":  "euc-kr",
	"ANSI_950":  "big5",
	"ANSI_1250": "windows-1250",
	"ANSI_1251": "windows-1251",
	"ANSI_1252": "windows-1252",
	"ANSI_1253": "windows-1253",
	"ANSI_1254": "windows-1254",
	"ANSI_1255": "windows-1255",
	"ANSI_1256": "windows-1256",
	"ANSI_1257": "windows-1257",
	"ANSI_1258": "windows-1258",
}

// NewDecodingScanner 创建按代码页解码的 Scanner，代码页为空或 UTF-8 时不解码
func NewDecodingScanner(r io.Reader, codePage string) (*Scanner, error) {
	name := strings.TrimSpace(codePage)
	if name == "" || strings.EqualFold(name, "utf-8") || strings.EqualFold(name, "utf8") {
		return NewScanner(r), nil
	}

	if mapped, ok := codePages[strings.ToUpper(name)]; ok {
		name = mapped
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unsupported code page %q: %w", codePage, err)
	}

	return NewScanner(enc.NewDecoder().Reader(r)), nil
}
