// Package apidump decodes the engine's machine-readable API dump: every class, its
// members and every enum.
package apidump

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// RootSuperclass marks a class with no superclass.
const RootSuperclass = "<<<ROOT>>>"

// Well-known tags.
const (
	TagReadOnly     = "ReadOnly"
	TagDeprecated   = "Deprecated"
	TagNotCreatable = "NotCreatable"
	TagService      = "Service"
)

// ErrParseFailed is returned when a document is not a valid API dump.
var ErrParseFailed = errors.New("error when parsing API dump")

// Dump is a decoded API dump.
type Dump struct {
	Classes []Class
	Enums   []Enum
}

// Class is one engine class.
type Class struct {
	Name       string
	Superclass string
	Tags       Tags
	Members    []Member
}

// IsRoot reports whether the class has no superclass.
func (c *Class) IsRoot() bool {
	return c.Superclass == RootSuperclass
}

// Enum is one engine enum.
type Enum struct {
	Name  string
	Items []EnumItem
}

// EnumItem is one value of an enum.
type EnumItem struct {
	Name  string
	Value int
}

// Tags is a list of string tags. Structured tags found in newer dumps are skipped.
type Tags []string

// Contains reports whether tag is present.
func (t Tags) Contains(tag string) bool {
	for _, v := range t {
		if v == tag {
			return true
		}
	}
	return false
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Tags) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	tags := make(Tags, 0, len(raw))
	for _, r := range raw {
		var s string
		if err := json.Unmarshal(r, &s); err != nil {
			continue
		}
		tags = append(tags, s)
	}
	*t = tags
	return nil
}

// Decode reads an API dump document.
func Decode(r io.Reader) (*Dump, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailed, err)
	}
	return Parse(data)
}

// Parse decodes an API dump document. Both the Classes and Enums collections must be
// present.
func Parse(data []byte) (*Dump, error) {
	var raw struct {
		Classes *[]Class `json:"Classes"`
		Enums   *[]Enum  `json:"Enums"`
	}
	if err := json.Unmarshal(bytes.TrimSpace(data), &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailed, err)
	}
	if raw.Classes == nil {
		return nil, fmt.Errorf("%w: missing Classes", ErrParseFailed)
	}
	if raw.Enums == nil {
		return nil, fmt.Errorf("%w: missing Enums", ErrParseFailed)
	}
	return &Dump{Classes: *raw.Classes, Enums: *raw.Enums}, nil
}
