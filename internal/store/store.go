// Package store defines the graph-shaped persistence contract consumed by
// the catalog engine: typed nodes, typed relations between them, and a
// single-hop pattern match. Backends live in the memory and postgres
// subpackages.
package store

import (
	"context"
)

type Label string

const (
	LabelBook   Label = "Book"
	LabelAuthor Label = "Author"
	LabelUser   Label = "User"
)

type RelType string

const (
	RelAuthorOf RelType = "AUTHOR_OF"
	RelBorrows  RelType = "BORROWS"
	RelRates    RelType = "RATES"

	// RelAny matches relations of every type in a pattern.
	RelAny RelType = ""
)

// Ref is an opaque node or relation identifier assigned by the backend.
type Ref string

// Props holds entity properties. Values are strings or ints; backends
// round-trip them through JSON, so integer reads go through Int.
type Props map[string]any

// Int reads an integer property, tolerating the float64 that JSON decoding
// produces for numbers.
func (p Props) Int(field string) int {
	switch v := p[field].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

func (p Props) String(field string) string {
	s, _ := p[field].(string)
	return s
}

// Clone returns a shallow copy; property values are scalars.
func (p Props) Clone() Props {
	c := make(Props, len(p))
	for k, v := range p {
		c[k] = v
	}
	return c
}

type Node struct {
	Ref   Ref
	Label Label
	Props Props
}

type Relation struct {
	Ref   Ref
	Type  RelType
	From  Ref
	To    Ref
	Props Props
}

// NodeSpec matches nodes by label and property equality. An empty Props
// matches every node with the label.
type NodeSpec struct {
	Label Label
	Props Props
}

// RelSpec matches relations by type and property equality. RelAny matches
// every type.
type RelSpec struct {
	Type  RelType
	Props Props
}

// Pattern is either a node match (Rel and To nil) or a single undirected
// hop (from)-[rel]-(to). Multi-hop traversals are composed by the engine
// from successive single-hop matches.
type Pattern struct {
	From NodeSpec
	Rel  *RelSpec
	To   *NodeSpec
}

// Record is one match result. Rel and To are zero-valued for node-only
// patterns. From always holds the node that matched the From spec,
// regardless of the relation's stored direction.
type Record struct {
	From Node
	Rel  Relation
	To   Node
}

// Store is the persistence contract the engine runs against. Implementations
// must be safe for concurrent use; the engine performs no locking of its own.
type Store interface {
	CreateNode(ctx context.Context, label Label, props Props) (Node, error)
	CreateRelation(ctx context.Context, from Ref, typ RelType, to Ref, props Props) (Relation, error)
	DeleteNode(ctx context.Context, ref Ref) error
	DeleteRelation(ctx context.Context, ref Ref) error
	Match(ctx context.Context, p Pattern) ([]Record, error)
	UpdateProperty(ctx context.Context, ref Ref, field string, value any) error
}

// Transactional is implemented by backends that can scope a sequence of
// writes atomically. The engine uses it when atomic operations are enabled;
// fn receives a Store bound to the transaction.
type Transactional interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, s Store) error) error
}
