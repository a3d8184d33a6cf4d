package collection

// NodeKind distinguishes options from groups in a declarative description.
type NodeKind string

const (
	KindItem    NodeKind = "item"
	KindSection NodeKind = "section"
)

// Node is one entry of a declarative option description. Items become
// options; sections only group their children.
type Node struct {
	Kind NodeKind `json:"kind,omitempty" yaml:"kind,omitempty"`
	// Key is optional; when empty a structural key is derived from the node's
	// position in the tree.
	Key Key `json:"key,omitempty" yaml:"key,omitempty"`
	// Text is the rendered content of the item.
	Text string `json:"text,omitempty" yaml:"text,omitempty"`
	// TextValue overrides Text for filtering and input syncing.
	TextValue string `json:"textValue,omitempty" yaml:"textValue,omitempty"`
	Disabled  bool   `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Children  []Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// NodeOption customises a node built with Item or Section.
type NodeOption func(*Node)

// WithKey pins the node key.
func WithKey(key Key) NodeOption {
	return func(n *Node) {
		n.Key = key
	}
}

// WithTextValue sets the filter/input text when it differs from the label.
func WithTextValue(text string) NodeOption {
	return func(n *Node) {
		n.TextValue = text
	}
}

// Disabled marks the item as not selectable.
func Disabled() NodeOption {
	return func(n *Node) {
		n.Disabled = true
	}
}

// Item declares a single option.
func Item(text string, opts ...NodeOption) Node {
	n := Node{Kind: KindItem, Text: text}
	for _, opt := range opts {
		if opt != nil {
			opt(&n)
		}
	}
	return n
}

// Section declares a group of options.
func Section(title string, children ...Node) Node {
	return Node{Kind: KindSection, Text: title, Children: children}
}

func (n Node) kind() NodeKind {
	if n.Kind == "" {
		if len(n.Children) > 0 {
			return KindSection
		}
		return KindItem
	}
	return n.Kind
}

func (n Node) textValue() string {
	if n.TextValue != "" {
		return n.TextValue
	}
	return n.Text
}
