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
	"io"
	"strings"
)

// compact serializes root with no inserted whitespace, after the XML
// declaration.
func compact(root *element) (string, error) {
	var sb strings.Builder
	sb.WriteString(xml.Header)

	enc := xml.NewEncoder(&sb)
	if err := root.encode(enc); err != nil {
		return "", fmt.Errorf("encoding XML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encoding XML: %w", err)
	}

	sb.WriteString("\n")
	return sb.String(), nil
}

// indent serializes root compactly, then reparses the document and
// re-encodes it with two-space indentation. The compact form inserts no
// whitespace inside the root, so only text outside it is dropped.
func indent(root *element) (string, error) {
	doc, err := compact(root)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(xml.Header)

	dec := xml.NewDecoder(strings.NewReader(doc))
	enc := xml.NewEncoder(&sb)
	enc.Indent("", "  ")

	depth := 0
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("reparsing XML: %w", err)
		}

		switch tok.(type) {
		case xml.ProcInst, xml.Comment, xml.Directive:
			continue
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 0 {
				continue
			}
		}

		if err := enc.EncodeToken(tok); err != nil {
			return "", fmt.Errorf("encoding XML: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encoding XML: %w", err)
	}

	sb.WriteString("\n")
	return sb.String(), nil
}
