// Package postgres backs the store contract with two relational tables,
// nodes and relations, keyed by uuid with JSONB properties. Pattern hops
// compile to joins; property filters use JSONB containment.
package postgres

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"library-catalog/internal/errs"
	"library-catalog/internal/store"
)

const (
	nodesTableName     = `nodes`
	relationsTableName = `relations`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Store struct {
	ext sqlx.ExtContext
	db  *sqlx.DB // nil when bound to a transaction
	log *zap.Logger
}

var (
	_ store.Store         = (*Store)(nil)
	_ store.Transactional = (*Store)(nil)
)

func NewStore(db *sqlx.DB, log *zap.Logger) *Store {
	return &Store{
		ext: db,
		db:  db,
		log: log.Named("store"),
	}
}

// WithinTx runs fn against a Store bound to a single transaction. Nested
// calls reuse the surrounding transaction.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, st store.Store) error) error {
	if s.db == nil {
		return fn(ctx, s)
	}
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return errs.Store(err)
	}
	if err := fn(ctx, &Store{ext: tx, log: s.log}); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return errs.Store(err)
	}
	return nil
}

func (s *Store) CreateNode(ctx context.Context, label store.Label, props store.Props) (store.Node, error) {
	propsJSON, err := json.Marshal(props)
	if err != nil {
		return store.Node{}, errs.Store(err)
	}
	ref := store.Ref(uuid.NewString())
	query, args, err := qb.Insert(nodesTableName).
		Columns("ref", "label", "props").
		Values(ref, label, propsJSON).
		ToSql()
	if err != nil {
		return store.Node{}, errs.Store(err)
	}
	if _, err := s.ext.ExecContext(ctx, query, args...); err != nil {
		if isPgErr(err, pgerrcode.UniqueViolation) {
			return store.Node{}, errs.Store(errors.Errorf("%s already exists", label))
		}
		s.log.Error("CreateNode", zap.String("q", query), zap.Error(err))
		return store.Node{}, errs.Store(err)
	}
	return store.Node{Ref: ref, Label: label, Props: props.Clone()}, nil
}

func (s *Store) CreateRelation(ctx context.Context, from store.Ref, typ store.RelType, to store.Ref, props store.Props) (store.Relation, error) {
	if typ == store.RelAny {
		return store.Relation{}, errs.Store(errors.New("relation type is required"))
	}
	propsJSON, err := json.Marshal(props)
	if err != nil {
		return store.Relation{}, errs.Store(err)
	}
	ref := store.Ref(uuid.NewString())
	query, args, err := qb.Insert(relationsTableName).
		Columns("ref", "rel_type", "from_ref", "to_ref", "props").
		Values(ref, typ, from, to, propsJSON).
		ToSql()
	if err != nil {
		return store.Relation{}, errs.Store(err)
	}
	if _, err := s.ext.ExecContext(ctx, query, args...); err != nil {
		if isPgErr(err, pgerrcode.ForeignKeyViolation) {
			return store.Relation{}, errs.Store(errors.New("relation endpoint does not exist"))
		}
		s.log.Error("CreateRelation", zap.String("q", query), zap.Error(err))
		return store.Relation{}, errs.Store(err)
	}
	return store.Relation{Ref: ref, Type: typ, From: from, To: to, Props: props.Clone()}, nil
}

func (s *Store) DeleteNode(ctx context.Context, ref store.Ref) error {
	query, args, err := qb.Delete(nodesTableName).Where(sq.Eq{"ref": ref}).ToSql()
	if err != nil {
		return errs.Store(err)
	}
	res, err := s.ext.ExecContext(ctx, query, args...)
	if err != nil {
		if isPgErr(err, pgerrcode.ForeignKeyViolation) {
			return errs.Store(errors.Errorf("node %s still has relations", ref))
		}
		return errs.Store(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.Wrap(errs.ErrNotFound, "node")
	}
	return nil
}

func (s *Store) DeleteRelation(ctx context.Context, ref store.Ref) error {
	query, args, err := qb.Delete(relationsTableName).Where(sq.Eq{"ref": ref}).ToSql()
	if err != nil {
		return errs.Store(err)
	}
	res, err := s.ext.ExecContext(ctx, query, args...)
	if err != nil {
		return errs.Store(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.Wrap(errs.ErrNotFound, "relation")
	}
	return nil
}

func (s *Store) UpdateProperty(ctx context.Context, ref store.Ref, field string, value any) error {
	patch, err := json.Marshal(store.Props{field: value})
	if err != nil {
		return errs.Store(err)
	}
	for _, table := range []string{nodesTableName, relationsTableName} {
		query, args, err := qb.Update(table).
			Set("props", sq.Expr("props || ?::jsonb", patch)).
			Where(sq.Eq{"ref": ref}).
			ToSql()
		if err != nil {
			return errs.Store(err)
		}
		res, err := s.ext.ExecContext(ctx, query, args...)
		if err != nil {
			s.log.Error("UpdateProperty", zap.String("q", query), zap.Error(err))
			return errs.Store(err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			return nil
		}
	}
	return errors.Wrapf(errs.ErrNotFound, "ref %s", ref)
}

func (s *Store) Match(ctx context.Context, p store.Pattern) ([]store.Record, error) {
	if p.Rel == nil {
		return s.matchNodes(ctx, p.From)
	}
	if p.To == nil {
		return nil, errs.Store(errors.New("hop pattern requires a To spec"))
	}
	return s.matchHop(ctx, p)
}

type nodeRow struct {
	Ref   string `db:"ref"`
	Label string `db:"label"`
	Props []byte `db:"props"`
}

type hopRow struct {
	FRef    string `db:"f_ref"`
	FLabel  string `db:"f_label"`
	FProps  []byte `db:"f_props"`
	RRef    string `db:"r_ref"`
	RType   string `db:"rel_type"`
	FromRef string `db:"from_ref"`
	ToRef   string `db:"to_ref"`
	RProps  []byte `db:"r_props"`
	TRef    string `db:"t_ref"`
	TLabel  string `db:"t_label"`
	TProps  []byte `db:"t_props"`
}

func (s *Store) matchNodes(ctx context.Context, spec store.NodeSpec) ([]store.Record, error) {
	q := qb.Select("ref", "label", "props").
		From(nodesTableName).
		Where(sq.Eq{"label": spec.Label}).
		OrderBy("ref")
	q, err := withContainment(q, "props", spec.Props)
	if err != nil {
		return nil, err
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, errs.Store(err)
	}

	var rows []nodeRow
	if err := sqlx.SelectContext(ctx, s.ext, &rows, query, args...); err != nil {
		s.log.Error("matchNodes", zap.String("q", query), zap.Error(err))
		return nil, errs.Store(err)
	}
	out := make([]store.Record, 0, len(rows))
	for _, row := range rows {
		n, err := rowToNode(row.Ref, row.Label, row.Props)
		if err != nil {
			return nil, err
		}
		out = append(out, store.Record{From: n})
	}
	return out, nil
}

func (s *Store) matchHop(ctx context.Context, p store.Pattern) ([]store.Record, error) {
	q := qb.Select(
		"f.ref as f_ref", "f.label as f_label", "f.props as f_props",
		"r.ref as r_ref", "r.rel_type", "r.from_ref", "r.to_ref", "r.props as r_props",
		"t.ref as t_ref", "t.label as t_label", "t.props as t_props").
		From(relationsTableName + " r").
		Join("nodes f on f.ref in (r.from_ref, r.to_ref)").
		Join("nodes t on t.ref in (r.from_ref, r.to_ref) and t.ref <> f.ref").
		Where(sq.Eq{"f.label": p.From.Label}).
		Where(sq.Eq{"t.label": p.To.Label}).
		OrderBy("r.ref")
	if p.Rel.Type != store.RelAny {
		q = q.Where(sq.Eq{"r.rel_type": p.Rel.Type})
	}
	var err error
	if q, err = withContainment(q, "f.props", p.From.Props); err != nil {
		return nil, err
	}
	if q, err = withContainment(q, "t.props", p.To.Props); err != nil {
		return nil, err
	}
	if q, err = withContainment(q, "r.props", p.Rel.Props); err != nil {
		return nil, err
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, errs.Store(err)
	}

	var rows []hopRow
	if err := sqlx.SelectContext(ctx, s.ext, &rows, query, args...); err != nil {
		s.log.Error("matchHop", zap.String("q", query), zap.Error(err))
		return nil, errs.Store(err)
	}
	out := make([]store.Record, 0, len(rows))
	for _, row := range rows {
		from, err := rowToNode(row.FRef, row.FLabel, row.FProps)
		if err != nil {
			return nil, err
		}
		to, err := rowToNode(row.TRef, row.TLabel, row.TProps)
		if err != nil {
			return nil, err
		}
		var relProps store.Props
		if err := json.Unmarshal(row.RProps, &relProps); err != nil {
			return nil, errs.Store(err)
		}
		out = append(out, store.Record{
			From: from,
			Rel: store.Relation{
				Ref:   store.Ref(row.RRef),
				Type:  store.RelType(row.RType),
				From:  store.Ref(row.FromRef),
				To:    store.Ref(row.ToRef),
				Props: relProps,
			},
			To: to,
		})
	}
	return out, nil
}

func withContainment(q sq.SelectBuilder, column string, props store.Props) (sq.SelectBuilder, error) {
	if len(props) == 0 {
		return q, nil
	}
	filter, err := json.Marshal(props)
	if err != nil {
		return q, errs.Store(err)
	}
	return q.Where(sq.Expr(column+" @> ?::jsonb", filter)), nil
}

func rowToNode(ref, label string, propsJSON []byte) (store.Node, error) {
	var props store.Props
	if err := json.Unmarshal(propsJSON, &props); err != nil {
		return store.Node{}, errs.Store(err)
	}
	return store.Node{Ref: store.Ref(ref), Label: store.Label(label), Props: props}, nil
}

func isPgErr(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
