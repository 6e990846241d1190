package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// Static error definitions for better error handling.
var (
	// ErrEmptyDocument indicates that the input holds no root element.
	ErrEmptyDocument = errors.New("document has no root element")
	// ErrMultipleRoots indicates a second top-level element.
	ErrMultipleRoots = errors.New("document has more than one root element")
	// ErrTextOutsideRoot indicates non-whitespace character data outside the root element.
	ErrTextOutsideRoot = errors.New("text outside the root element")
	// ErrUnclosedElement indicates that the input ended inside an element.
	ErrUnclosedElement = errors.New("unclosed element")
)

// utf8BOM is the byte order mark some firmware prepends to responses.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parse reads a complete XML document and returns its root element.
// A leading UTF-8 byte order mark is ignored.
// Documents declaring a non UTF-8 encoding are transcoded first.
// Comments, processing instructions and directives are skipped.
func Parse(data []byte) (*Node, error) {
	decoder := xml.NewDecoder(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	decoder.CharsetReader = charset.NewReaderLabel

	var (
		root  *Node
		stack []*Node
	)

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			node := newNode(t)

			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("%w: <%s>", ErrMultipleRoots, node.Name)
				}

				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.Elements = append(parent.Elements, node)
			}

			stack = append(stack, node)
		case xml.EndElement:
			current := stack[len(stack)-1]
			current.Text = strings.TrimSpace(current.Text)
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 {
				if len(bytes.TrimSpace(t)) > 0 {
					return nil, ErrTextOutsideRoot
				}

				continue
			}

			stack[len(stack)-1].Text += string(t)
		}
	}

	if len(stack) > 0 {
		return nil, fmt.Errorf("%w: <%s>", ErrUnclosedElement, stack[len(stack)-1].Name)
	}

	if root == nil {
		return nil, ErrEmptyDocument
	}

	return root, nil
}

func newNode(start xml.StartElement) *Node {
	node := &Node{
		Name:  start.Name.Local,
		Space: start.Name.Space,
	}

	for _, attr := range start.Attr {
		// Namespace declarations are resolved by the decoder already.
		if attr.Name.Space == "xmlns" || attr.Name.Local == "xmlns" {
			continue
		}

		node.Attrs = append(node.Attrs, Attr{Name: attr.Name.Local, Value: attr.Value})
	}

	return node
}
