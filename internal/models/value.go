package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Kind 原始值的类型
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
)

// Value is a scalar cell value as it arrives from a data source: string,
// number, boolean or null.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
}

func String(s string) Value  { return Value{kind: KindString, str: s} }
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }
func Bool(b bool) Value      { return Value{kind: KindBool, b: b} }

func (v Value) Kind() Kind { return v.kind }

// IsEmpty reports null or the empty string.
func (v Value) IsEmpty() bool {
	return v.kind == KindNull || (v.kind == KindString && v.str == "")
}

// IsMissing reports null, the empty string or the literal "N/A".
func (v Value) IsMissing() bool {
	return v.IsEmpty() || (v.kind == KindString && v.str == "N/A")
}

// Text returns the underlying string for string values and "" otherwise.
func (v Value) Text() string {
	if v.kind == KindString {
		return v.str
	}
	return ""
}

// Float returns the number for numeric values.
func (v Value) Float() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// IsTrue is true only for the native boolean true.
func (v Value) IsTrue() bool {
	return v.kind == KindBool && v.b
}

// IsFalse is true only for the native boolean false.
func (v Value) IsFalse() bool {
	return v.kind == KindBool && !v.b
}

// String coerces the value the way it is printed in a cell without any
// column-specific formatting.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return ""
	}
}

// Flag normalizes boolean-like values.
func (v Value) Flag() Flag {
	switch v.kind {
	case KindBool:
		if v.b {
			return FlagYes
		}
		return FlagNo
	case KindString:
		switch strings.ToLower(strings.TrimSpace(v.str)) {
		case "yes", "true", "1":
			return FlagYes
		case "no", "false", "0":
			return FlagNo
		}
	}
	return FlagUnknown
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		return json.Marshal(v.num)
	case KindBool:
		return json.Marshal(v.b)
	default:
		return []byte("null"), nil
	}
}

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = Value{}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("failed to decode string value: %w", err)
		}
		*v = String(s)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return fmt.Errorf("failed to decode boolean value: %w", err)
		}
		*v = Bool(b)
	default:
		var f float64
		if err := json.Unmarshal(data, &f); err != nil {
			return fmt.Errorf("unsupported value %s: %w", data, err)
		}
		*v = Number(f)
	}
	return nil
}

// Flag 三态布尔
type Flag int8

const (
	FlagUnknown Flag = iota
	FlagNo
	FlagYes
)

// URLList holds companion links; it decodes from a single string or an array.
type URLList []string

func (u *URLList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*u = nil
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("failed to decode url: %w", err)
		}
		if s == "" {
			*u = nil
			return nil
		}
		*u = URLList{s}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("failed to decode url list: %w", err)
	}
	*u = list
	return nil
}

// First returns the first link or "".
func (u URLList) First() string {
	if len(u) == 0 {
		return ""
	}
	return u[0]
}
