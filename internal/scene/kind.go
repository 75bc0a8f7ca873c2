package scene

import "fmt"

// Kind selects the layout node built for an element.
type Kind uint8

const (
	KindContainer Kind = iota
	KindColumns
	KindText
	KindAspect
	KindGroup // Host element without a layout node
)

var kindNames = []string{"container", "columns", "text", "aspect", "group"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if int(k) >= len(kindNames) {
		return nil, fmt.Errorf("unsupported kind %d", uint8(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if name == string(text) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown kind %q (want one of %v)", text, kindNames)
}

// IsLeaf reports whether elements of the kind cannot have children.
func (k Kind) IsLeaf() bool {
	return k == KindText || k == KindAspect
}

// IsRoot reports whether elements of the kind can be laid out as a root.
func (k Kind) IsRoot() bool {
	return k == KindContainer || k == KindColumns
}
