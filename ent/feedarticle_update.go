// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/scriptor-ai/scriptor/ent/feedarticle"
	"github.com/scriptor-ai/scriptor/ent/predicate"
)

// FeedArticleUpdate is the builder for updating FeedArticle entities.
type FeedArticleUpdate struct {
	config
	hooks    []Hook
	mutation *FeedArticleMutation
}

// Where appends a list predicates to the FeedArticleUpdate builder.
func (_u *FeedArticleUpdate) Where(ps ...predicate.FeedArticle) *FeedArticleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGUID sets the "guid" field.
func (_u *FeedArticleUpdate) SetGUID(v string) *FeedArticleUpdate {
	_u.mutation.SetGUID(v)
	return _u
}

// SetNillableGUID sets the "guid" field if the given value is not nil.
func (_u *FeedArticleUpdate) SetNillableGUID(v *string) *FeedArticleUpdate {
	if v != nil {
		_u.SetGUID(*v)
	}
	return _u
}

// ClearGUID clears the value of the "guid" field.
func (_u *FeedArticleUpdate) ClearGUID() *FeedArticleUpdate {
	_u.mutation.ClearGUID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *FeedArticleUpdate) SetTitle(v string) *FeedArticleUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *FeedArticleUpdate) SetNillableTitle(v *string) *FeedArticleUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *FeedArticleUpdate) SetURL(v string) *FeedArticleUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *FeedArticleUpdate) SetNillableURL(v *string) *FeedArticleUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *FeedArticleUpdate) SetContent(v string) *FeedArticleUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *FeedArticleUpdate) SetNillableContent(v *string) *FeedArticleUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *FeedArticleUpdate) ClearContent() *FeedArticleUpdate {
	_u.mutation.ClearContent()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *FeedArticleUpdate) SetSummary(v string) *FeedArticleUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *FeedArticleUpdate) SetNillableSummary(v *string) *FeedArticleUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *FeedArticleUpdate) ClearSummary() *FeedArticleUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetAuthor sets the "author" field.
func (_u *FeedArticleUpdate) SetAuthor(v string) *FeedArticleUpdate {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *FeedArticleUpdate) SetNillableAuthor(v *string) *FeedArticleUpdate {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *FeedArticleUpdate) ClearAuthor() *FeedArticleUpdate {
	_u.mutation.ClearAuthor()
	return _u
}

// SetEnriched sets the "enriched" field.
func (_u *FeedArticleUpdate) SetEnriched(v bool) *FeedArticleUpdate {
	_u.mutation.SetEnriched(v)
	return _u
}

// SetNillableEnriched sets the "enriched" field if the given value is not nil.
func (_u *FeedArticleUpdate) SetNillableEnriched(v *bool) *FeedArticleUpdate {
	if v != nil {
		_u.SetEnriched(*v)
	}
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *FeedArticleUpdate) SetPublishedAt(v time.Time) *FeedArticleUpdate {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *FeedArticleUpdate) SetNillablePublishedAt(v *time.Time) *FeedArticleUpdate {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *FeedArticleUpdate) ClearPublishedAt() *FeedArticleUpdate {
	_u.mutation.ClearPublishedAt()
	return _u
}

// Mutation returns the FeedArticleMutation object of the builder.
func (_u *FeedArticleUpdate) Mutation() *FeedArticleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FeedArticleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeedArticleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FeedArticleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeedArticleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeedArticleUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := feedarticle.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "FeedArticle.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.URL(); ok {
		if err := feedarticle.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "FeedArticle.url": %w`, err)}
		}
	}
	if _u.mutation.FeedCleared() && len(_u.mutation.FeedIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FeedArticle.feed"`)
	}
	return nil
}

func (_u *FeedArticleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(feedarticle.Table, feedarticle.Columns, sqlgraph.NewFieldSpec(feedarticle.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GUID(); ok {
		_spec.SetField(feedarticle.FieldGUID, field.TypeString, value)
	}
	if _u.mutation.GUIDCleared() {
		_spec.ClearField(feedarticle.FieldGUID, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(feedarticle.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(feedarticle.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(feedarticle.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(feedarticle.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(feedarticle.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(feedarticle.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(feedarticle.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(feedarticle.FieldAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.Enriched(); ok {
		_spec.SetField(feedarticle.FieldEnriched, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(feedarticle.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(feedarticle.FieldPublishedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feedarticle.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FeedArticleUpdateOne is the builder for updating a single FeedArticle entity.
type FeedArticleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FeedArticleMutation
}

// SetGUID sets the "guid" field.
func (_u *FeedArticleUpdateOne) SetGUID(v string) *FeedArticleUpdateOne {
	_u.mutation.SetGUID(v)
	return _u
}

// SetNillableGUID sets the "guid" field if the given value is not nil.
func (_u *FeedArticleUpdateOne) SetNillableGUID(v *string) *FeedArticleUpdateOne {
	if v != nil {
		_u.SetGUID(*v)
	}
	return _u
}

// ClearGUID clears the value of the "guid" field.
func (_u *FeedArticleUpdateOne) ClearGUID() *FeedArticleUpdateOne {
	_u.mutation.ClearGUID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *FeedArticleUpdateOne) SetTitle(v string) *FeedArticleUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *FeedArticleUpdateOne) SetNillableTitle(v *string) *FeedArticleUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *FeedArticleUpdateOne) SetURL(v string) *FeedArticleUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *FeedArticleUpdateOne) SetNillableURL(v *string) *FeedArticleUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *FeedArticleUpdateOne) SetContent(v string) *FeedArticleUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *FeedArticleUpdateOne) SetNillableContent(v *string) *FeedArticleUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *FeedArticleUpdateOne) ClearContent() *FeedArticleUpdateOne {
	_u.mutation.ClearContent()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *FeedArticleUpdateOne) SetSummary(v string) *FeedArticleUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *FeedArticleUpdateOne) SetNillableSummary(v *string) *FeedArticleUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *FeedArticleUpdateOne) ClearSummary() *FeedArticleUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetAuthor sets the "author" field.
func (_u *FeedArticleUpdateOne) SetAuthor(v string) *FeedArticleUpdateOne {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *FeedArticleUpdateOne) SetNillableAuthor(v *string) *FeedArticleUpdateOne {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *FeedArticleUpdateOne) ClearAuthor() *FeedArticleUpdateOne {
	_u.mutation.ClearAuthor()
	return _u
}

// SetEnriched sets the "enriched" field.
func (_u *FeedArticleUpdateOne) SetEnriched(v bool) *FeedArticleUpdateOne {
	_u.mutation.SetEnriched(v)
	return _u
}

// SetNillableEnriched sets the "enriched" field if the given value is not nil.
func (_u *FeedArticleUpdateOne) SetNillableEnriched(v *bool) *FeedArticleUpdateOne {
	if v != nil {
		_u.SetEnriched(*v)
	}
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *FeedArticleUpdateOne) SetPublishedAt(v time.Time) *FeedArticleUpdateOne {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *FeedArticleUpdateOne) SetNillablePublishedAt(v *time.Time) *FeedArticleUpdateOne {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *FeedArticleUpdateOne) ClearPublishedAt() *FeedArticleUpdateOne {
	_u.mutation.ClearPublishedAt()
	return _u
}

// Mutation returns the FeedArticleMutation object of the builder.
func (_u *FeedArticleUpdateOne) Mutation() *FeedArticleMutation {
	return _u.mutation
}

// Where appends a list predicates to the FeedArticleUpdate builder.
func (_u *FeedArticleUpdateOne) Where(ps ...predicate.FeedArticle) *FeedArticleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FeedArticleUpdateOne) Select(field string, fields ...string) *FeedArticleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FeedArticle entity.
func (_u *FeedArticleUpdateOne) Save(ctx context.Context) (*FeedArticle, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeedArticleUpdateOne) SaveX(ctx context.Context) *FeedArticle {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FeedArticleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeedArticleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeedArticleUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := feedarticle.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "FeedArticle.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.URL(); ok {
		if err := feedarticle.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "FeedArticle.url": %w`, err)}
		}
	}
	if _u.mutation.FeedCleared() && len(_u.mutation.FeedIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FeedArticle.feed"`)
	}
	return nil
}

func (_u *FeedArticleUpdateOne) sqlSave(ctx context.Context) (_node *FeedArticle, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(feedarticle.Table, feedarticle.Columns, sqlgraph.NewFieldSpec(feedarticle.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FeedArticle.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, feedarticle.FieldID)
		for _, f := range fields {
			if !feedarticle.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != feedarticle.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GUID(); ok {
		_spec.SetField(feedarticle.FieldGUID, field.TypeString, value)
	}
	if _u.mutation.GUIDCleared() {
		_spec.ClearField(feedarticle.FieldGUID, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(feedarticle.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(feedarticle.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(feedarticle.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(feedarticle.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(feedarticle.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(feedarticle.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(feedarticle.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(feedarticle.FieldAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.Enriched(); ok {
		_spec.SetField(feedarticle.FieldEnriched, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(feedarticle.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(feedarticle.FieldPublishedAt, field.TypeTime)
	}
	_node = &FeedArticle{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feedarticle.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
