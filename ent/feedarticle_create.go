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

// FeedArticleCreate is the builder for creating a FeedArticle entity.
type FeedArticleCreate struct {
	config
	mutation *FeedArticleMutation
	hooks    []Hook
}

// SetFeedID sets the "feed_id" field.
func (_c *FeedArticleCreate) SetFeedID(v string) *FeedArticleCreate {
	_c.mutation.SetFeedID(v)
	return _c
}

// SetGUID sets the "guid" field.
func (_c *FeedArticleCreate) SetGUID(v string) *FeedArticleCreate {
	_c.mutation.SetGUID(v)
	return _c
}

// SetNillableGUID sets the "guid" field if the given value is not nil.
func (_c *FeedArticleCreate) SetNillableGUID(v *string) *FeedArticleCreate {
	if v != nil {
		_c.SetGUID(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *FeedArticleCreate) SetTitle(v string) *FeedArticleCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetURL sets the "url" field.
func (_c *FeedArticleCreate) SetURL(v string) *FeedArticleCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *FeedArticleCreate) SetContent(v string) *FeedArticleCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_c *FeedArticleCreate) SetNillableContent(v *string) *FeedArticleCreate {
	if v != nil {
		_c.SetContent(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *FeedArticleCreate) SetSummary(v string) *FeedArticleCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *FeedArticleCreate) SetNillableSummary(v *string) *FeedArticleCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetAuthor sets the "author" field.
func (_c *FeedArticleCreate) SetAuthor(v string) *FeedArticleCreate {
	_c.mutation.SetAuthor(v)
	return _c
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_c *FeedArticleCreate) SetNillableAuthor(v *string) *FeedArticleCreate {
	if v != nil {
		_c.SetAuthor(*v)
	}
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *FeedArticleCreate) SetContentHash(v string) *FeedArticleCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetEnriched sets the "enriched" field.
func (_c *FeedArticleCreate) SetEnriched(v bool) *FeedArticleCreate {
	_c.mutation.SetEnriched(v)
	return _c
}

// SetNillableEnriched sets the "enriched" field if the given value is not nil.
func (_c *FeedArticleCreate) SetNillableEnriched(v *bool) *FeedArticleCreate {
	if v != nil {
		_c.SetEnriched(*v)
	}
	return _c
}

// SetPublishedAt sets the "published_at" field.
func (_c *FeedArticleCreate) SetPublishedAt(v time.Time) *FeedArticleCreate {
	_c.mutation.SetPublishedAt(v)
	return _c
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_c *FeedArticleCreate) SetNillablePublishedAt(v *time.Time) *FeedArticleCreate {
	if v != nil {
		_c.SetPublishedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FeedArticleCreate) SetCreatedAt(v time.Time) *FeedArticleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FeedArticleCreate) SetNillableCreatedAt(v *time.Time) *FeedArticleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FeedArticleCreate) SetID(v string) *FeedArticleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetFeed sets the "feed" edge to the Feed entity.
func (_c *FeedArticleCreate) SetFeed(v *Feed) *FeedArticleCreate {
	return _c.SetFeedID(v.ID)
}

// Mutation returns the FeedArticleMutation object of the builder.
func (_c *FeedArticleCreate) Mutation() *FeedArticleMutation {
	return _c.mutation
}

// Save creates the FeedArticle in the database.
func (_c *FeedArticleCreate) Save(ctx context.Context) (*FeedArticle, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FeedArticleCreate) SaveX(ctx context.Context) *FeedArticle {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeedArticleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeedArticleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FeedArticleCreate) defaults() {
	if _, ok := _c.mutation.Enriched(); !ok {
		v := feedarticle.DefaultEnriched
		_c.mutation.SetEnriched(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := feedarticle.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FeedArticleCreate) check() error {
	if _, ok := _c.mutation.FeedID(); !ok {
		return &ValidationError{Name: "feed_id", err: errors.New(`ent: missing required field "FeedArticle.feed_id"`)}
	}
	if v, ok := _c.mutation.FeedID(); ok {
		if err := feedarticle.FeedIDValidator(v); err != nil {
			return &ValidationError{Name: "feed_id", err: fmt.Errorf(`ent: validator failed for field "FeedArticle.feed_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "FeedArticle.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := feedarticle.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "FeedArticle.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "FeedArticle.url"`)}
	}
	if v, ok := _c.mutation.URL(); ok {
		if err := feedarticle.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "FeedArticle.url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "FeedArticle.content_hash"`)}
	}
	if v, ok := _c.mutation.ContentHash(); ok {
		if err := feedarticle.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "FeedArticle.content_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Enriched(); !ok {
		return &ValidationError{Name: "enriched", err: errors.New(`ent: missing required field "FeedArticle.enriched"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FeedArticle.created_at"`)}
	}
	if len(_c.mutation.FeedIDs()) == 0 {
		return &ValidationError{Name: "feed", err: errors.New(`ent: missing required edge "FeedArticle.feed"`)}
	}
	return nil
}

func (_c *FeedArticleCreate) sqlSave(ctx context.Context) (*FeedArticle, error) {
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
			return nil, fmt.Errorf("unexpected FeedArticle.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FeedArticleCreate) createSpec() (*FeedArticle, *sqlgraph.CreateSpec) {
	var (
		_node = &FeedArticle{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(feedarticle.Table, sqlgraph.NewFieldSpec(feedarticle.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.GUID(); ok {
		_spec.SetField(feedarticle.FieldGUID, field.TypeString, value)
		_node.GUID = &value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(feedarticle.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(feedarticle.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(feedarticle.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(feedarticle.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.Author(); ok {
		_spec.SetField(feedarticle.FieldAuthor, field.TypeString, value)
		_node.Author = &value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(feedarticle.FieldContentHash, field.TypeString, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.Enriched(); ok {
		_spec.SetField(feedarticle.FieldEnriched, field.TypeBool, value)
		_node.Enriched = value
	}
	if value, ok := _c.mutation.PublishedAt(); ok {
		_spec.SetField(feedarticle.FieldPublishedAt, field.TypeTime, value)
		_node.PublishedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(feedarticle.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.FeedIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   feedarticle.FeedTable,
			Columns: []string{feedarticle.FeedColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(feed.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.FeedID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FeedArticleCreateBulk is the builder for creating many FeedArticle entities in bulk.
type FeedArticleCreateBulk struct {
	config
	err      error
	builders []*FeedArticleCreate
}

// Save creates the FeedArticle entities in the database.
func (_c *FeedArticleCreateBulk) Save(ctx context.Context) ([]*FeedArticle, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FeedArticle, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FeedArticleMutation)
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
func (_c *FeedArticleCreateBulk) SaveX(ctx context.Context) []*FeedArticle {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeedArticleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeedArticleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
