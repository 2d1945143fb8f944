// Package memory is an in-memory store backend. Pattern matching is an
// explicit join over per-entity indexes, which keeps the engine's traversal
// semantics testable without a database.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"library-catalog/internal/errs"
	"library-catalog/internal/store"
)

// keyFields mirrors the node-key constraints the catalog declares on its
// backends: one unique, mandatory property per label.
var keyFields = map[store.Label]string{
	store.LabelBook:   "isbn",
	store.LabelAuthor: "name",
	store.LabelUser:   "username",
}

type graph struct {
	nodes     map[store.Ref]store.Node
	rels      map[store.Ref]store.Relation
	nodeOrder []store.Ref
	relOrder  []store.Ref
}

func newGraph() *graph {
	return &graph{
		nodes: make(map[store.Ref]store.Node),
		rels:  make(map[store.Ref]store.Relation),
	}
}

func (g *graph) clone() *graph {
	c := &graph{
		nodes:     make(map[store.Ref]store.Node, len(g.nodes)),
		rels:      make(map[store.Ref]store.Relation, len(g.rels)),
		nodeOrder: append([]store.Ref(nil), g.nodeOrder...),
		relOrder:  append([]store.Ref(nil), g.relOrder...),
	}
	for ref, n := range g.nodes {
		n.Props = n.Props.Clone()
		c.nodes[ref] = n
	}
	for ref, r := range g.rels {
		r.Props = r.Props.Clone()
		c.rels[ref] = r
	}
	return c
}

// Store keeps the whole graph in process memory. Safe for concurrent use.
type Store struct {
	mu sync.RWMutex
	g  *graph
}

var (
	_ store.Store         = (*Store)(nil)
	_ store.Transactional = (*Store)(nil)
)

func New() *Store {
	return &Store{g: newGraph()}
}

func (s *Store) CreateNode(_ context.Context, label store.Label, props store.Props) (store.Node, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.createNode(label, props)
}

func (s *Store) CreateRelation(_ context.Context, from store.Ref, typ store.RelType, to store.Ref, props store.Props) (store.Relation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.createRelation(from, typ, to, props)
}

func (s *Store) DeleteNode(_ context.Context, ref store.Ref) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.deleteNode(ref)
}

func (s *Store) DeleteRelation(_ context.Context, ref store.Ref) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.deleteRelation(ref)
}

func (s *Store) Match(_ context.Context, p store.Pattern) ([]store.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.g.match(p)
}

func (s *Store) UpdateProperty(_ context.Context, ref store.Ref, field string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.updateProperty(ref, field, value)
}

// WithinTx runs fn against the graph under the write lock and restores a
// snapshot if fn fails, so a mid-sequence error leaves no partial effects.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, st store.Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.g.clone()
	if err := fn(ctx, txView{g: s.g}); err != nil {
		s.g = snap
		return err
	}
	return nil
}

// txView exposes the graph inside WithinTx without re-locking.
type txView struct {
	g *graph
}

func (v txView) CreateNode(_ context.Context, label store.Label, props store.Props) (store.Node, error) {
	return v.g.createNode(label, props)
}

func (v txView) CreateRelation(_ context.Context, from store.Ref, typ store.RelType, to store.Ref, props store.Props) (store.Relation, error) {
	return v.g.createRelation(from, typ, to, props)
}

func (v txView) DeleteNode(_ context.Context, ref store.Ref) error {
	return v.g.deleteNode(ref)
}

func (v txView) DeleteRelation(_ context.Context, ref store.Ref) error {
	return v.g.deleteRelation(ref)
}

func (v txView) Match(_ context.Context, p store.Pattern) ([]store.Record, error) {
	return v.g.match(p)
}

func (v txView) UpdateProperty(_ context.Context, ref store.Ref, field string, value any) error {
	return v.g.updateProperty(ref, field, value)
}

func (g *graph) createNode(label store.Label, props store.Props) (store.Node, error) {
	key, ok := keyFields[label]
	if !ok {
		return store.Node{}, errs.Store(errors.Errorf("unknown label %q", label))
	}
	keyVal := props.String(key)
	if keyVal == "" {
		return store.Node{}, errs.Store(errors.Errorf("label %s requires property %q", label, key))
	}
	for _, ref := range g.nodeOrder {
		n := g.nodes[ref]
		if n.Label == label && n.Props.String(key) == keyVal {
			return store.Node{}, errs.Store(errors.Errorf("%s with %s=%s already exists", label, key, keyVal))
		}
	}

	n := store.Node{
		Ref:   store.Ref(uuid.NewString()),
		Label: label,
		Props: props.Clone(),
	}
	g.nodes[n.Ref] = n
	g.nodeOrder = append(g.nodeOrder, n.Ref)
	return n, nil
}

func (g *graph) createRelation(from store.Ref, typ store.RelType, to store.Ref, props store.Props) (store.Relation, error) {
	if typ == store.RelAny {
		return store.Relation{}, errs.Store(errors.New("relation type is required"))
	}
	if _, ok := g.nodes[from]; !ok {
		return store.Relation{}, errs.Store(errors.Errorf("from node %s does not exist", from))
	}
	if _, ok := g.nodes[to]; !ok {
		return store.Relation{}, errs.Store(errors.Errorf("to node %s does not exist", to))
	}

	r := store.Relation{
		Ref:   store.Ref(uuid.NewString()),
		Type:  typ,
		From:  from,
		To:    to,
		Props: props.Clone(),
	}
	g.rels[r.Ref] = r
	g.relOrder = append(g.relOrder, r.Ref)
	return r, nil
}

func (g *graph) deleteNode(ref store.Ref) error {
	if _, ok := g.nodes[ref]; !ok {
		return errors.Wrap(errs.ErrNotFound, "node")
	}
	for _, r := range g.rels {
		if r.From == ref || r.To == ref {
			return errs.Store(errors.Errorf("node %s still has relations", ref))
		}
	}
	delete(g.nodes, ref)
	g.nodeOrder = removeRef(g.nodeOrder, ref)
	return nil
}

func (g *graph) deleteRelation(ref store.Ref) error {
	if _, ok := g.rels[ref]; !ok {
		return errors.Wrap(errs.ErrNotFound, "relation")
	}
	delete(g.rels, ref)
	g.relOrder = removeRef(g.relOrder, ref)
	return nil
}

func (g *graph) updateProperty(ref store.Ref, field string, value any) error {
	if n, ok := g.nodes[ref]; ok {
		n.Props[field] = value
		return nil
	}
	if r, ok := g.rels[ref]; ok {
		r.Props[field] = value
		return nil
	}
	return errors.Wrapf(errs.ErrNotFound, "ref %s", ref)
}

func (g *graph) match(p store.Pattern) ([]store.Record, error) {
	if p.Rel == nil {
		var out []store.Record
		for _, ref := range g.nodeOrder {
			n := g.nodes[ref]
			if nodeMatches(n, p.From) {
				out = append(out, store.Record{From: snapshotNode(n)})
			}
		}
		return out, nil
	}
	if p.To == nil {
		return nil, errs.Store(errors.New("hop pattern requires a To spec"))
	}

	var out []store.Record
	for _, ref := range g.relOrder {
		r := g.rels[ref]
		if p.Rel.Type != store.RelAny && r.Type != p.Rel.Type {
			continue
		}
		if !propsMatch(r.Props, p.Rel.Props) {
			continue
		}
		from, to := g.nodes[r.From], g.nodes[r.To]
		switch {
		case nodeMatches(from, p.From) && nodeMatches(to, *p.To):
			out = append(out, store.Record{From: snapshotNode(from), Rel: snapshotRel(r), To: snapshotNode(to)})
		case nodeMatches(to, p.From) && nodeMatches(from, *p.To):
			out = append(out, store.Record{From: snapshotNode(to), Rel: snapshotRel(r), To: snapshotNode(from)})
		}
	}
	return out, nil
}

func nodeMatches(n store.Node, spec store.NodeSpec) bool {
	return n.Label == spec.Label && propsMatch(n.Props, spec.Props)
}

func propsMatch(props, filter store.Props) bool {
	for k, want := range filter {
		if !valueEqual(props[k], want) {
			return false
		}
	}
	return true
}

// valueEqual compares property values across the int widths that appear on
// write paths and after snapshot cloning.
func valueEqual(a, b any) bool {
	if ai, ok := asInt(a); ok {
		bi, ok := asInt(b)
		return ok && ai == bi
	}
	return a == b
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

func snapshotNode(n store.Node) store.Node {
	n.Props = n.Props.Clone()
	return n
}

func snapshotRel(r store.Relation) store.Relation {
	r.Props = r.Props.Clone()
	return r
}

func removeRef(refs []store.Ref, ref store.Ref) []store.Ref {
	for i, r := range refs {
		if r == ref {
			return append(refs[:i], refs[i+1:]...)
		}
	}
	return refs
}
