/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package xml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"unicode"
)

// ErrInvalidElementName indicates a field key or configured root name does
// not produce a valid XML element name.
var ErrInvalidElementName = errors.New("invalid XML element name")

type element struct {
	name     string
	text     string
	children []*element
}

func newElement(name string) (*element, error) {
	if !isValidName(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidElementName, name)
	}
	return &element{name: name}, nil
}

// add appends a child element and returns it.
func (e *element) add(name string) (*element, error) {
	child, err := newElement(name)
	if err != nil {
		return nil, err
	}
	e.children = append(e.children, child)
	return child, nil
}

// addText appends a child element holding text.
func (e *element) addText(name, text string) error {
	child, err := e.add(name)
	if err != nil {
		return err
	}
	child.text = text
	return nil
}

func (e *element) encode(enc *xml.Encoder) error {
	start := xml.StartElement{Name: xml.Name{Local: e.name}}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if e.text != "" {
		if err := enc.EncodeToken(xml.CharData(e.text)); err != nil {
			return err
		}
	}
	for _, child := range e.children {
		if err := child.encode(enc); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

// isValidName reports whether name is usable as an unprefixed XML element
// name: a letter or underscore followed by letters, digits, '_', '-' or '.'.
func isValidName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case unicode.IsLetter(r) || r == '_':
		case i > 0 && (unicode.IsDigit(r) || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return true
}
