// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/scriptor-ai/scriptor/ent/feed"
	"github.com/scriptor-ai/scriptor/ent/feedarticle"
)

// FeedCreate is the builder for creating a Feed entity.
type FeedCreate struct {
	config
	mutation *FeedMutation
	hooks    []Hook
}

// SetURL sets the "url" field.
func (_c *FeedCreate) SetURL(v string) *FeedCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *FeedCreate) SetTitle(v string) *FeedCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *FeedCreate) SetNillableTitle(v *string) *FeedCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetCheckIntervalSeconds sets the "check_interval_seconds" field.
func (_c *FeedCreate) SetCheckIntervalSeconds(v int) *FeedCreate {
	_c.mutation.SetCheckIntervalSeconds(v)
	return _c
}

// SetNillableCheckIntervalSeconds sets the "check_interval_seconds" field if the given value is not nil.
func (_c *FeedCreate) SetNillableCheckIntervalSeconds(v *int) *FeedCreate {
	if v != nil {
		_c.SetCheckIntervalSeconds(*v)
	}
	return _c
}

// SetLastCheck sets the "last_check" field.
func (_c *FeedCreate) SetLastCheck(v time.Time) *FeedCreate {
	_c.mutation.SetLastCheck(v)
	return _c
}

// SetNillableLastCheck sets the "last_check" field if the given value is not nil.
func (_c *FeedCreate) SetNillableLastCheck(v *time.Time) *FeedCreate {
	if v != nil {
		_c.SetLastCheck(*v)
	}
	return _c
}

// SetIsPolling sets the "is_polling" field.
func (_c *FeedCreate) SetIsPolling(v bool) *FeedCreate {
	_c.mutation.SetIsPolling(v)
	return _c
}

// SetNillableIsPolling sets the "is_polling" field if the given value is not nil.
func (_c *FeedCreate) SetNillableIsPolling(v *bool) *FeedCreate {
	if v != nil {
		_c.SetIsPolling(*v)
	}
	return _c
}

// SetPollingStartedAt sets the "polling_started_at" field.
func (_c *FeedCreate) SetPollingStartedAt(v time.Time) *FeedCreate {
	_c.mutation.SetPollingStartedAt(v)
	return _c
}

// SetNillablePollingStartedAt sets the "polling_started_at" field if the given value is not nil.
func (_c *FeedCreate) SetNillablePollingStartedAt(v *time.Time) *FeedCreate {
	if v != nil {
		_c.SetPollingStartedAt(*v)
	}
	return _c
}

// SetEtag sets the "etag" field.
func (_c *FeedCreate) SetEtag(v string) *FeedCreate {
	_c.mutation.SetEtag(v)
	return _c
}

// SetNillableEtag sets the "etag" field if the given value is not nil.
func (_c *FeedCreate) SetNillableEtag(v *string) *FeedCreate {
	if v != nil {
		_c.SetEtag(*v)
	}
	return _c
}

// SetLastModified sets the "last_modified" field.
func (_c *FeedCreate) SetLastModified(v string) *FeedCreate {
	_c.mutation.SetLastModified(v)
	return _c
}

// SetNillableLastModified sets the "last_modified" field if the given value is not nil.
func (_c *FeedCreate) SetNillableLastModified(v *string) *FeedCreate {
	if v != nil {
		_c.SetLastModified(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *FeedCreate) SetLastError(v string) *FeedCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *FeedCreate) SetNillableLastError(v *string) *FeedCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (_c *FeedCreate) SetConsecutiveFailures(v int) *FeedCreate {
	_c.mutation.SetConsecutiveFailures(v)
	return _c
}

// SetNillableConsecutiveFailures sets the "consecutive_failures" field if the given value is not nil.
func (_c *FeedCreate) SetNillableConsecutiveFailures(v *int) *FeedCreate {
	if v != nil {
		_c.SetConsecutiveFailures(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FeedCreate) SetCreatedAt(v time.Time) *FeedCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FeedCreate) SetNillableCreatedAt(v *time.Time) *FeedCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FeedCreate) SetID(v string) *FeedCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddArticleIDs adds the "articles" edge to the FeedArticle entity by IDs.
func (_c *FeedCreate) AddArticleIDs(ids ...string) *FeedCreate {
	_c.mutation.AddArticleIDs(ids...)
	return _c
}

// AddArticles adds the "articles" edges to the FeedArticle entity.
func (_c *FeedCreate) AddArticles(v ...*FeedArticle) *FeedCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddArticleIDs(ids...)
}

// Mutation returns the FeedMutation object of the builder.
func (_c *FeedCreate) Mutation() *FeedMutation {
	return _c.mutation
}

// Save creates the Feed in the database.
func (_c *FeedCreate) Save(ctx context.Context) (*Feed, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FeedCreate) SaveX(ctx context.Context) *Feed {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeedCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeedCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FeedCreate) defaults() {
	if _, ok := _c.mutation.CheckIntervalSeconds(); !ok {
		v := feed.DefaultCheckIntervalSeconds
		_c.mutation.SetCheckIntervalSeconds(v)
	}
	if _, ok := _c.mutation.IsPolling(); !ok {
		v := feed.DefaultIsPolling
		_c.mutation.SetIsPolling(v)
	}
	if _, ok := _c.mutation.ConsecutiveFailures(); !ok {
		v := feed.DefaultConsecutiveFailures
		_c.mutation.SetConsecutiveFailures(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := feed.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FeedCreate) check() error {
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "Feed.url"`)}
	}
	if v, ok := _c.mutation.URL(); ok {
		if err := feed.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "Feed.url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CheckIntervalSeconds(); !ok {
		return &ValidationError{Name: "check_interval_seconds", err: errors.New(`ent: missing required field "Feed.check_interval_seconds"`)}
	}
	if _, ok := _c.mutation.IsPolling(); !ok {
		return &ValidationError{Name: "is_polling", err: errors.New(`ent: missing required field "Feed.is_polling"`)}
	}
	if _, ok := _c.mutation.ConsecutiveFailures(); !ok {
		return &ValidationError{Name: "consecutive_failures", err: errors.New(`ent: missing required field "Feed.consecutive_failures"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Feed.created_at"`)}
	}
	return nil
}

func (_c *FeedCreate) sqlSave(ctx context.Context) (*Feed, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Feed.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FeedCreate) createSpec() (*Feed, *sqlgraph.CreateSpec) {
	var (
		_node = &Feed{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(feed.Table, sqlgraph.NewFieldSpec(feed.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(feed.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(feed.FieldTitle, field.TypeString, value)
		_node.Title = &value
	}
	if value, ok := _c.mutation.CheckIntervalSeconds(); ok {
		_spec.SetField(feed.FieldCheckIntervalSeconds, field.TypeInt, value)
		_node.CheckIntervalSeconds = value
	}
	if value, ok := _c.mutation.LastCheck(); ok {
		_spec.SetField(feed.FieldLastCheck, field.TypeTime, value)
		_node.LastCheck = &value
	}
	if value, ok := _c.mutation.IsPolling(); ok {
		_spec.SetField(feed.FieldIsPolling, field.TypeBool, value)
		_node.IsPolling = value
	}
	if value, ok := _c.mutation.PollingStartedAt(); ok {
		_spec.SetField(feed.FieldPollingStartedAt, field.TypeTime, value)
		_node.PollingStartedAt = &value
	}
	if value, ok := _c.mutation.Etag(); ok {
		_spec.SetField(feed.FieldEtag, field.TypeString, value)
		_node.Etag = &value
	}
	if value, ok := _c.mutation.LastModified(); ok {
		_spec.SetField(feed.FieldLastModified, field.TypeString, value)
		_node.LastModified = &value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(feed.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.ConsecutiveFailures(); ok {
		_spec.SetField(feed.FieldConsecutiveFailures, field.TypeInt, value)
		_node.ConsecutiveFailures = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(feed.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ArticlesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   feed.ArticlesTable,
			Columns: []string{feed.ArticlesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(feedarticle.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FeedCreateBulk is the builder for creating many Feed entities in bulk.
type FeedCreateBulk struct {
	config
	err      error
	builders []*FeedCreate
}

// Save creates the Feed entities in the database.
func (_c *FeedCreateBulk) Save(ctx context.Context) ([]*Feed, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Feed, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FeedMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *FeedCreateBulk) SaveX(ctx context.Context) []*Feed {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeedCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeedCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
