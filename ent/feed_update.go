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
	"github.com/scriptor-ai/scriptor/ent/feed"
	"github.com/scriptor-ai/scriptor/ent/feedarticle"
	"github.com/scriptor-ai/scriptor/ent/predicate"
)

// FeedUpdate is the builder for updating Feed entities.
type FeedUpdate struct {
	config
	hooks    []Hook
	mutation *FeedMutation
}

// Where appends a list predicates to the FeedUpdate builder.
func (_u *FeedUpdate) Where(ps ...predicate.Feed) *FeedUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetURL sets the "url" field.
func (_u *FeedUpdate) SetURL(v string) *FeedUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *FeedUpdate) SetNillableURL(v *string) *FeedUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *FeedUpdate) SetTitle(v string) *FeedUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *FeedUpdate) SetNillableTitle(v *string) *FeedUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *FeedUpdate) ClearTitle() *FeedUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetCheckIntervalSeconds sets the "check_interval_seconds" field.
func (_u *FeedUpdate) SetCheckIntervalSeconds(v int) *FeedUpdate {
	_u.mutation.ResetCheckIntervalSeconds()
	_u.mutation.SetCheckIntervalSeconds(v)
	return _u
}

// SetNillableCheckIntervalSeconds sets the "check_interval_seconds" field if the given value is not nil.
func (_u *FeedUpdate) SetNillableCheckIntervalSeconds(v *int) *FeedUpdate {
	if v != nil {
		_u.SetCheckIntervalSeconds(*v)
	}
	return _u
}

// AddCheckIntervalSeconds adds value to the "check_interval_seconds" field.
func (_u *FeedUpdate) AddCheckIntervalSeconds(v int) *FeedUpdate {
	_u.mutation.AddCheckIntervalSeconds(v)
	return _u
}

// SetLastCheck sets the "last_check" field.
func (_u *FeedUpdate) SetLastCheck(v time.Time) *FeedUpdate {
	_u.mutation.SetLastCheck(v)
	return _u
}

// SetNillableLastCheck sets the "last_check" field if the given value is not nil.
func (_u *FeedUpdate) SetNillableLastCheck(v *time.Time) *FeedUpdate {
	if v != nil {
		_u.SetLastCheck(*v)
	}
	return _u
}

// ClearLastCheck clears the value of the "last_check" field.
func (_u *FeedUpdate) ClearLastCheck() *FeedUpdate {
	_u.mutation.ClearLastCheck()
	return _u
}

// SetIsPolling sets the "is_polling" field.
func (_u *FeedUpdate) SetIsPolling(v bool) *FeedUpdate {
	_u.mutation.SetIsPolling(v)
	return _u
}

// SetNillableIsPolling sets the "is_polling" field if the given value is not nil.
func (_u *FeedUpdate) SetNillableIsPolling(v *bool) *FeedUpdate {
	if v != nil {
		_u.SetIsPolling(*v)
	}
	return _u
}

// SetPollingStartedAt sets the "polling_started_at" field.
func (_u *FeedUpdate) SetPollingStartedAt(v time.Time) *FeedUpdate {
	_u.mutation.SetPollingStartedAt(v)
	return _u
}

// SetNillablePollingStartedAt sets the "polling_started_at" field if the given value is not nil.
func (_u *FeedUpdate) SetNillablePollingStartedAt(v *time.Time) *FeedUpdate {
	if v != nil {
		_u.SetPollingStartedAt(*v)
	}
	return _u
}

// ClearPollingStartedAt clears the value of the "polling_started_at" field.
func (_u *FeedUpdate) ClearPollingStartedAt() *FeedUpdate {
	_u.mutation.ClearPollingStartedAt()
	return _u
}

// SetEtag sets the "etag" field.
func (_u *FeedUpdate) SetEtag(v string) *FeedUpdate {
	_u.mutation.SetEtag(v)
	return _u
}

// SetNillableEtag sets the "etag" field if the given value is not nil.
func (_u *FeedUpdate) SetNillableEtag(v *string) *FeedUpdate {
	if v != nil {
		_u.SetEtag(*v)
	}
	return _u
}

// ClearEtag clears the value of the "etag" field.
func (_u *FeedUpdate) ClearEtag() *FeedUpdate {
	_u.mutation.ClearEtag()
	return _u
}

// SetLastModified sets the "last_modified" field.
func (_u *FeedUpdate) SetLastModified(v string) *FeedUpdate {
	_u.mutation.SetLastModified(v)
	return _u
}

// SetNillableLastModified sets the "last_modified" field if the given value is not nil.
func (_u *FeedUpdate) SetNillableLastModified(v *string) *FeedUpdate {
	if v != nil {
		_u.SetLastModified(*v)
	}
	return _u
}

// ClearLastModified clears the value of the "last_modified" field.
func (_u *FeedUpdate) ClearLastModified() *FeedUpdate {
	_u.mutation.ClearLastModified()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *FeedUpdate) SetLastError(v string) *FeedUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *FeedUpdate) SetNillableLastError(v *string) *FeedUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *FeedUpdate) ClearLastError() *FeedUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (_u *FeedUpdate) SetConsecutiveFailures(v int) *FeedUpdate {
	_u.mutation.ResetConsecutiveFailures()
	_u.mutation.SetConsecutiveFailures(v)
	return _u
}

// SetNillableConsecutiveFailures sets the "consecutive_failures" field if the given value is not nil.
func (_u *FeedUpdate) SetNillableConsecutiveFailures(v *int) *FeedUpdate {
	if v != nil {
		_u.SetConsecutiveFailures(*v)
	}
	return _u
}

// AddConsecutiveFailures adds value to the "consecutive_failures" field.
func (_u *FeedUpdate) AddConsecutiveFailures(v int) *FeedUpdate {
	_u.mutation.AddConsecutiveFailures(v)
	return _u
}

// AddArticleIDs adds the "articles" edge to the FeedArticle entity by IDs.
func (_u *FeedUpdate) AddArticleIDs(ids ...string) *FeedUpdate {
	_u.mutation.AddArticleIDs(ids...)
	return _u
}

// AddArticles adds the "articles" edges to the FeedArticle entity.
func (_u *FeedUpdate) AddArticles(v ...*FeedArticle) *FeedUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddArticleIDs(ids...)
}

// Mutation returns the FeedMutation object of the builder.
func (_u *FeedUpdate) Mutation() *FeedMutation {
	return _u.mutation
}

// ClearArticles clears all "articles" edges to the FeedArticle entity.
func (_u *FeedUpdate) ClearArticles() *FeedUpdate {
	_u.mutation.ClearArticles()
	return _u
}

// RemoveArticleIDs removes the "articles" edge to FeedArticle entities by IDs.
func (_u *FeedUpdate) RemoveArticleIDs(ids ...string) *FeedUpdate {
	_u.mutation.RemoveArticleIDs(ids...)
	return _u
}

// RemoveArticles removes "articles" edges to FeedArticle entities.
func (_u *FeedUpdate) RemoveArticles(v ...*FeedArticle) *FeedUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveArticleIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FeedUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeedUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FeedUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeedUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeedUpdate) check() error {
	if v, ok := _u.mutation.URL(); ok {
		if err := feed.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "Feed.url": %w`, err)}
		}
	}
	return nil
}

func (_u *FeedUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(feed.Table, feed.Columns, sqlgraph.NewFieldSpec(feed.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(feed.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(feed.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(feed.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.CheckIntervalSeconds(); ok {
		_spec.SetField(feed.FieldCheckIntervalSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCheckIntervalSeconds(); ok {
		_spec.AddField(feed.FieldCheckIntervalSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastCheck(); ok {
		_spec.SetField(feed.FieldLastCheck, field.TypeTime, value)
	}
	if _u.mutation.LastCheckCleared() {
		_spec.ClearField(feed.FieldLastCheck, field.TypeTime)
	}
	if value, ok := _u.mutation.IsPolling(); ok {
		_spec.SetField(feed.FieldIsPolling, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PollingStartedAt(); ok {
		_spec.SetField(feed.FieldPollingStartedAt, field.TypeTime, value)
	}
	if _u.mutation.PollingStartedAtCleared() {
		_spec.ClearField(feed.FieldPollingStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Etag(); ok {
		_spec.SetField(feed.FieldEtag, field.TypeString, value)
	}
	if _u.mutation.EtagCleared() {
		_spec.ClearField(feed.FieldEtag, field.TypeString)
	}
	if value, ok := _u.mutation.LastModified(); ok {
		_spec.SetField(feed.FieldLastModified, field.TypeString, value)
	}
	if _u.mutation.LastModifiedCleared() {
		_spec.ClearField(feed.FieldLastModified, field.TypeString)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(feed.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(feed.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.ConsecutiveFailures(); ok {
		_spec.SetField(feed.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveFailures(); ok {
		_spec.AddField(feed.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if _u.mutation.ArticlesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedArticlesIDs(); len(nodes) > 0 && !_u.mutation.ArticlesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArticlesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feed.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FeedUpdateOne is the builder for updating a single Feed entity.
type FeedUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FeedMutation
}

// SetURL sets the "url" field.
func (_u *FeedUpdateOne) SetURL(v string) *FeedUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *FeedUpdateOne) SetNillableURL(v *string) *FeedUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *FeedUpdateOne) SetTitle(v string) *FeedUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *FeedUpdateOne) SetNillableTitle(v *string) *FeedUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *FeedUpdateOne) ClearTitle() *FeedUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetCheckIntervalSeconds sets the "check_interval_seconds" field.
func (_u *FeedUpdateOne) SetCheckIntervalSeconds(v int) *FeedUpdateOne {
	_u.mutation.ResetCheckIntervalSeconds()
	_u.mutation.SetCheckIntervalSeconds(v)
	return _u
}

// SetNillableCheckIntervalSeconds sets the "check_interval_seconds" field if the given value is not nil.
func (_u *FeedUpdateOne) SetNillableCheckIntervalSeconds(v *int) *FeedUpdateOne {
	if v != nil {
		_u.SetCheckIntervalSeconds(*v)
	}
	return _u
}

// AddCheckIntervalSeconds adds value to the "check_interval_seconds" field.
func (_u *FeedUpdateOne) AddCheckIntervalSeconds(v int) *FeedUpdateOne {
	_u.mutation.AddCheckIntervalSeconds(v)
	return _u
}

// SetLastCheck sets the "last_check" field.
func (_u *FeedUpdateOne) SetLastCheck(v time.Time) *FeedUpdateOne {
	_u.mutation.SetLastCheck(v)
	return _u
}

// SetNillableLastCheck sets the "last_check" field if the given value is not nil.
func (_u *FeedUpdateOne) SetNillableLastCheck(v *time.Time) *FeedUpdateOne {
	if v != nil {
		_u.SetLastCheck(*v)
	}
	return _u
}

// ClearLastCheck clears the value of the "last_check" field.
func (_u *FeedUpdateOne) ClearLastCheck() *FeedUpdateOne {
	_u.mutation.ClearLastCheck()
	return _u
}

// SetIsPolling sets the "is_polling" field.
func (_u *FeedUpdateOne) SetIsPolling(v bool) *FeedUpdateOne {
	_u.mutation.SetIsPolling(v)
	return _u
}

// SetNillableIsPolling sets the "is_polling" field if the given value is not nil.
func (_u *FeedUpdateOne) SetNillableIsPolling(v *bool) *FeedUpdateOne {
	if v != nil {
		_u.SetIsPolling(*v)
	}
	return _u
}

// SetPollingStartedAt sets the "polling_started_at" field.
func (_u *FeedUpdateOne) SetPollingStartedAt(v time.Time) *FeedUpdateOne {
	_u.mutation.SetPollingStartedAt(v)
	return _u
}

// SetNillablePollingStartedAt sets the "polling_started_at" field if the given value is not nil.
func (_u *FeedUpdateOne) SetNillablePollingStartedAt(v *time.Time) *FeedUpdateOne {
	if v != nil {
		_u.SetPollingStartedAt(*v)
	}
	return _u
}

// ClearPollingStartedAt clears the value of the "polling_started_at" field.
func (_u *FeedUpdateOne) ClearPollingStartedAt() *FeedUpdateOne {
	_u.mutation.ClearPollingStartedAt()
	return _u
}

// SetEtag sets the "etag" field.
func (_u *FeedUpdateOne) SetEtag(v string) *FeedUpdateOne {
	_u.mutation.SetEtag(v)
	return _u
}

// SetNillableEtag sets the "etag" field if the given value is not nil.
func (_u *FeedUpdateOne) SetNillableEtag(v *string) *FeedUpdateOne {
	if v != nil {
		_u.SetEtag(*v)
	}
	return _u
}

// ClearEtag clears the value of the "etag" field.
func (_u *FeedUpdateOne) ClearEtag() *FeedUpdateOne {
	_u.mutation.ClearEtag()
	return _u
}

// SetLastModified sets the "last_modified" field.
func (_u *FeedUpdateOne) SetLastModified(v string) *FeedUpdateOne {
	_u.mutation.SetLastModified(v)
	return _u
}

// SetNillableLastModified sets the "last_modified" field if the given value is not nil.
func (_u *FeedUpdateOne) SetNillableLastModified(v *string) *FeedUpdateOne {
	if v != nil {
		_u.SetLastModified(*v)
	}
	return _u
}

// ClearLastModified clears the value of the "last_modified" field.
func (_u *FeedUpdateOne) ClearLastModified() *FeedUpdateOne {
	_u.mutation.ClearLastModified()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *FeedUpdateOne) SetLastError(v string) *FeedUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *FeedUpdateOne) SetNillableLastError(v *string) *FeedUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *FeedUpdateOne) ClearLastError() *FeedUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (_u *FeedUpdateOne) SetConsecutiveFailures(v int) *FeedUpdateOne {
	_u.mutation.ResetConsecutiveFailures()
	_u.mutation.SetConsecutiveFailures(v)
	return _u
}

// SetNillableConsecutiveFailures sets the "consecutive_failures" field if the given value is not nil.
func (_u *FeedUpdateOne) SetNillableConsecutiveFailures(v *int) *FeedUpdateOne {
	if v != nil {
		_u.SetConsecutiveFailures(*v)
	}
	return _u
}

// AddConsecutiveFailures adds value to the "consecutive_failures" field.
func (_u *FeedUpdateOne) AddConsecutiveFailures(v int) *FeedUpdateOne {
	_u.mutation.AddConsecutiveFailures(v)
	return _u
}

// AddArticleIDs adds the "articles" edge to the FeedArticle entity by IDs.
func (_u *FeedUpdateOne) AddArticleIDs(ids ...string) *FeedUpdateOne {
	_u.mutation.AddArticleIDs(ids...)
	return _u
}

// AddArticles adds the "articles" edges to the FeedArticle entity.
func (_u *FeedUpdateOne) AddArticles(v ...*FeedArticle) *FeedUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddArticleIDs(ids...)
}

// Mutation returns the FeedMutation object of the builder.
func (_u *FeedUpdateOne) Mutation() *FeedMutation {
	return _u.mutation
}

// ClearArticles clears all "articles" edges to the FeedArticle entity.
func (_u *FeedUpdateOne) ClearArticles() *FeedUpdateOne {
	_u.mutation.ClearArticles()
	return _u
}

// RemoveArticleIDs removes the "articles" edge to FeedArticle entities by IDs.
func (_u *FeedUpdateOne) RemoveArticleIDs(ids ...string) *FeedUpdateOne {
	_u.mutation.RemoveArticleIDs(ids...)
	return _u
}

// RemoveArticles removes "articles" edges to FeedArticle entities.
func (_u *FeedUpdateOne) RemoveArticles(v ...*FeedArticle) *FeedUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveArticleIDs(ids...)
}

// Where appends a list predicates to the FeedUpdate builder.
func (_u *FeedUpdateOne) Where(ps ...predicate.Feed) *FeedUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FeedUpdateOne) Select(field string, fields ...string) *FeedUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Feed entity.
func (_u *FeedUpdateOne) Save(ctx context.Context) (*Feed, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeedUpdateOne) SaveX(ctx context.Context) *Feed {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FeedUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeedUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeedUpdateOne) check() error {
	if v, ok := _u.mutation.URL(); ok {
		if err := feed.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "Feed.url": %w`, err)}
		}
	}
	return nil
}

func (_u *FeedUpdateOne) sqlSave(ctx context.Context) (_node *Feed, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(feed.Table, feed.Columns, sqlgraph.NewFieldSpec(feed.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Feed.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, feed.FieldID)
		for _, f := range fields {
			if !feed.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != feed.FieldID {
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
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(feed.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(feed.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(feed.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.CheckIntervalSeconds(); ok {
		_spec.SetField(feed.FieldCheckIntervalSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCheckIntervalSeconds(); ok {
		_spec.AddField(feed.FieldCheckIntervalSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastCheck(); ok {
		_spec.SetField(feed.FieldLastCheck, field.TypeTime, value)
	}
	if _u.mutation.LastCheckCleared() {
		_spec.ClearField(feed.FieldLastCheck, field.TypeTime)
	}
	if value, ok := _u.mutation.IsPolling(); ok {
		_spec.SetField(feed.FieldIsPolling, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PollingStartedAt(); ok {
		_spec.SetField(feed.FieldPollingStartedAt, field.TypeTime, value)
	}
	if _u.mutation.PollingStartedAtCleared() {
		_spec.ClearField(feed.FieldPollingStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Etag(); ok {
		_spec.SetField(feed.FieldEtag, field.TypeString, value)
	}
	if _u.mutation.EtagCleared() {
		_spec.ClearField(feed.FieldEtag, field.TypeString)
	}
	if value, ok := _u.mutation.LastModified(); ok {
		_spec.SetField(feed.FieldLastModified, field.TypeString, value)
	}
	if _u.mutation.LastModifiedCleared() {
		_spec.ClearField(feed.FieldLastModified, field.TypeString)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(feed.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(feed.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.ConsecutiveFailures(); ok {
		_spec.SetField(feed.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveFailures(); ok {
		_spec.AddField(feed.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if _u.mutation.ArticlesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedArticlesIDs(); len(nodes) > 0 && !_u.mutation.ArticlesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArticlesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Feed{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feed.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
