package xmltree

// Attr is a single element attribute.
type Attr struct {
	Name  string
	Value string
}

// Node is an XML element with its attributes, trimmed text content and child elements.
// Text concatenates every character data chunk directly inside the element.
type Node struct {
	Name     string
	Space    string
	Attrs    []Attr
	Text     string
	Elements []*Node
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	if n == nil {
		return "", false
	}

	for _, attr := range n.Attrs {
		if attr.Name == name {
			return attr.Value, true
		}
	}

	return "", false
}

// Child returns the first child element with the given name, or nil.
func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}

	for _, child := range n.Elements {
		if child.Name == name {
			return child
		}
	}

	return nil
}

// Children returns every child element with the given name, in document order.
func (n *Node) Children(name string) []*Node {
	if n == nil {
		return nil
	}

	var result []*Node

	for _, child := range n.Elements {
		if child.Name == name {
			result = append(result, child)
		}
	}

	return result
}

// Find follows path from n, taking the first matching child at each step.
// An empty path returns n itself.
func (n *Node) Find(path ...string) *Node {
	current := n
	for _, name := range path {
		current = current.Child(name)
		if current == nil {
			return nil
		}
	}

	return current
}

// ChildText returns the text of the first child with the given name, or "".
func (n *Node) ChildText(name string) string {
	if child := n.Child(name); child != nil {
		return child.Text
	}

	return ""
}

// Map renders the tree rooted at n as nested maps keyed by element name.
//
// A leaf element without attributes becomes its text. Any other element becomes a map in which
// attributes live under "$", non-empty text under "_" and every child name maps to the list of
// its values in document order. The root itself is wrapped: {"response": {...}}.
// Attributes and text keep the "$" and "_" keys; child elements with those names are omitted
// when their key is already taken.
func (n *Node) Map() map[string]any {
	if n == nil {
		return nil
	}

	return map[string]any{n.Name: n.value()}
}

func (n *Node) value() any {
	if len(n.Elements) == 0 && len(n.Attrs) == 0 {
		return n.Text
	}

	result := make(map[string]any, len(n.Elements)+2)

	if len(n.Attrs) > 0 {
		attrs := make(map[string]string, len(n.Attrs))
		for _, attr := range n.Attrs {
			attrs[attr.Name] = attr.Value
		}

		result["$"] = attrs
	}

	if n.Text != "" {
		result["_"] = n.Text
	}

	for _, child := range n.Elements {
		existing, taken := result[child.Name]

		values, isList := existing.([]any)
		if taken && !isList {
			continue
		}

		result[child.Name] = append(values, child.value())
	}

	return result
}
