package core

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// EOFValue 读到文件末尾后 LastTag 的值，组码为 0，保证所有记录循环都能结束
const EOFValue = "EOF"

type Scanner struct {
	reader   *bufio.Reader
	LastTag  Tag
	line     int // 已读取的行数
	position int // LastTag 组码所在行
	eof      bool
	err      error
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		reader: bufio.NewReader(r),
	}
}

func (s *Scanner) readLine() (string, error) {
	line, err := s.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	s.line++
	return line, nil
}

func (s *Scanner) Next() bool {
	if s.eof {
		return false
	}

	// 1. 读取 Code 行
	var codeStr string
	for {
		codeLine, err := s.readLine()
		if err != nil {
			if err != io.EOF {
				s.err = err
			}
			s.eof = true
			return false
		}

		if codeStr = strings.TrimSpace(codeLine); codeStr != "" { // 跳过空行
			break
		}
	}

	code, err := strconv.Atoi(codeStr)
	if err != nil {
		s.err = err
		s.eof = true
		return false
	}
	position := s.line

	// 2. 读取 Value 行
	valueLine, err := s.readLine()
	if err != nil {
		// Value 行如果 EOF 也是不完整的
		s.err = err
		s.eof = true
		return false
	}

	// 去掉行尾的换行符，但保留 Value 开头的空格（DXF 规范要求）
	value := strings.TrimRight(valueLine, "\r\n")

	s.LastTag = Tag{Code: code, Value: value}
	s.position = position
	return true
}

// ReadNext 前进到下一组标签，读到末尾时停在 "0 EOF"
func (s *Scanner) ReadNext() {
	if !s.Next() {
		s.LastTag = Tag{Code: CodeStart, Value: EOFValue}
	}
}

// EOF 是否已经读完
func (s *Scanner) EOF() bool {
	return s.eof
}

func (s *Scanner) Err() error {
	return s.err
}

// Code 当前组码
func (s *Scanner) Code() int {
	return s.LastTag.Code
}

// ValueType 当前组码声明的值类型
func (s *Scanner) ValueType() GroupCodeValueType {
	return ValueTypeOf(s.LastTag.Code)
}

// Value 按值类型解析后的当前值
func (s *Scanner) Value() any {
	return s.LastTag.Typed()
}

// Position 当前组码所在行号（从 1 开始）
func (s *Scanner) Position() int {
	return s.position
}

func (s *Scanner) ValueAsString() string {
	return s.LastTag.AsString()
}

func (s *Scanner) ValueAsInt() int {
	return s.LastTag.AsInt()
}

func (s *Scanner) ValueAsShort() int16 {
	return s.LastTag.AsShort()
}

func (s *Scanner) ValueAsDouble() float64 {
	return s.LastTag.AsFloat()
}

func (s *Scanner) ValueAsBool() bool {
	return s.LastTag.AsBool()
}

func (s *Scanner) ValueAsHandle() Handle {
	return s.LastTag.AsHandle()
}
