// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/scriptor-ai/scriptor/ent/chatmessage"
	"github.com/scriptor-ai/scriptor/ent/checkpoint"
	"github.com/scriptor-ai/scriptor/ent/continuitystate"
	"github.com/scriptor-ai/scriptor/ent/conversation"
	"github.com/scriptor-ai/scriptor/ent/editproposal"
	"github.com/scriptor-ai/scriptor/ent/event"
	"github.com/scriptor-ai/scriptor/ent/feed"
	"github.com/scriptor-ai/scriptor/ent/feedarticle"
	"github.com/scriptor-ai/scriptor/ent/messagereaction"
	"github.com/scriptor-ai/scriptor/ent/predicate"
	"github.com/scriptor-ai/scriptor/ent/presence"
	"github.com/scriptor-ai/scriptor/ent/room"
	"github.com/scriptor-ai/scriptor/ent/roommessage"
	"github.com/scriptor-ai/scriptor/ent/roomparticipant"
	"github.com/scriptor-ai/scriptor/ent/workflow"
	"github.com/scriptor-ai/scriptor/ent/workflowstep"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeChatMessage     = "ChatMessage"
	TypeCheckpoint      = "Checkpoint"
	TypeContinuityState = "ContinuityState"
	TypeConversation    = "Conversation"
	TypeEditProposal    = "EditProposal"
	TypeEvent           = "Event"
	TypeFeed            = "Feed"
	TypeFeedArticle     = "FeedArticle"
	TypeMessageReaction = "MessageReaction"
	TypePresence        = "Presence"
	TypeRoom            = "Room"
	TypeRoomMessage     = "RoomMessage"
	TypeRoomParticipant = "RoomParticipant"
	TypeWorkflow        = "Workflow"
	TypeWorkflowStep    = "WorkflowStep"
)

// ChatMessageMutation represents an operation that mutates the ChatMessage nodes in the graph.
type ChatMessageMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	role                *chatmessage.Role
	content             *string
	metadata            *map[string]interface{}
	created_at          *time.Time
	deleted_at          *time.Time
	clearedFields       map[string]struct{}
	conversation        *string
	clearedconversation bool
	done                bool
	oldValue            func(context.Context) (*ChatMessage, error)
	predicates          []predicate.ChatMessage
}

var _ ent.Mutation = (*ChatMessageMutation)(nil)

// chatmessageOption allows management of the mutation configuration using functional options.
type chatmessageOption func(*ChatMessageMutation)

// newChatMessageMutation creates new mutation for the ChatMessage entity.
func newChatMessageMutation(c config, op Op, opts ...chatmessageOption) *ChatMessageMutation {
	m := &ChatMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeChatMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatMessageID sets the ID field of the mutation.
func withChatMessageID(id string) chatmessageOption {
	return func(m *ChatMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *ChatMessage
		)
		m.oldValue = func(ctx context.Context) (*ChatMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChatMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChatMessage sets the old ChatMessage of the mutation.
func withChatMessage(node *ChatMessage) chatmessageOption {
	return func(m *ChatMessageMutation) {
		m.oldValue = func(context.Context) (*ChatMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChatMessage entities.
func (m *ChatMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChatMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetConversationID sets the "conversation_id" field.
func (m *ChatMessageMutation) SetConversationID(s string) {
	m.conversation = &s
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *ChatMessageMutation) ConversationID() (r string, exists bool) {
	v := m.conversation
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldConversationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *ChatMessageMutation) ResetConversationID() {
	m.conversation = nil
}

// SetRole sets the "role" field.
func (m *ChatMessageMutation) SetRole(c chatmessage.Role) {
	m.role = &c
}

// Role returns the value of the "role" field in the mutation.
func (m *ChatMessageMutation) Role() (r chatmessage.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldRole(ctx context.Context) (v chatmessage.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *ChatMessageMutation) ResetRole() {
	m.role = nil
}

// SetContent sets the "content" field.
func (m *ChatMessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ChatMessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ChatMessageMutation) ResetContent() {
	m.content = nil
}

// SetMetadata sets the "metadata" field.
func (m *ChatMessageMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ChatMessageMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ChatMessageMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[chatmessage.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ChatMessageMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[chatmessage.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ChatMessageMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, chatmessage.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *ChatMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChatMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChatMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *ChatMessageMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *ChatMessageMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *ChatMessageMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[chatmessage.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *ChatMessageMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[chatmessage.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *ChatMessageMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, chatmessage.FieldDeletedAt)
}

// ClearConversation clears the "conversation" edge to the Conversation entity.
func (m *ChatMessageMutation) ClearConversation() {
	m.clearedconversation = true
	m.clearedFields[chatmessage.FieldConversationID] = struct{}{}
}

// ConversationCleared reports if the "conversation" edge to the Conversation entity was cleared.
func (m *ChatMessageMutation) ConversationCleared() bool {
	return m.clearedconversation
}

// ConversationIDs returns the "conversation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ConversationID instead. It exists only for internal usage by the builders.
func (m *ChatMessageMutation) ConversationIDs() (ids []string) {
	if id := m.conversation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetConversation resets all changes to the "conversation" edge.
func (m *ChatMessageMutation) ResetConversation() {
	m.conversation = nil
	m.clearedconversation = false
}

// Where appends a list predicates to the ChatMessageMutation builder.
func (m *ChatMessageMutation) Where(ps ...predicate.ChatMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChatMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChatMessage).
func (m *ChatMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatMessageMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.conversation != nil {
		fields = append(fields, chatmessage.FieldConversationID)
	}
	if m.role != nil {
		fields = append(fields, chatmessage.FieldRole)
	}
	if m.content != nil {
		fields = append(fields, chatmessage.FieldContent)
	}
	if m.metadata != nil {
		fields = append(fields, chatmessage.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, chatmessage.FieldCreatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, chatmessage.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chatmessage.FieldConversationID:
		return m.ConversationID()
	case chatmessage.FieldRole:
		return m.Role()
	case chatmessage.FieldContent:
		return m.Content()
	case chatmessage.FieldMetadata:
		return m.Metadata()
	case chatmessage.FieldCreatedAt:
		return m.CreatedAt()
	case chatmessage.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chatmessage.FieldConversationID:
		return m.OldConversationID(ctx)
	case chatmessage.FieldRole:
		return m.OldRole(ctx)
	case chatmessage.FieldContent:
		return m.OldContent(ctx)
	case chatmessage.FieldMetadata:
		return m.OldMetadata(ctx)
	case chatmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case chatmessage.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChatMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chatmessage.FieldConversationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case chatmessage.FieldRole:
		v, ok := value.(chatmessage.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case chatmessage.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case chatmessage.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case chatmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case chatmessage.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChatMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatMessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatMessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ChatMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chatmessage.FieldMetadata) {
		fields = append(fields, chatmessage.FieldMetadata)
	}
	if m.FieldCleared(chatmessage.FieldDeletedAt) {
		fields = append(fields, chatmessage.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatMessageMutation) ClearField(name string) error {
	switch name {
	case chatmessage.FieldMetadata:
		m.ClearMetadata()
		return nil
	case chatmessage.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatMessageMutation) ResetField(name string) error {
	switch name {
	case chatmessage.FieldConversationID:
		m.ResetConversationID()
		return nil
	case chatmessage.FieldRole:
		m.ResetRole()
		return nil
	case chatmessage.FieldContent:
		m.ResetContent()
		return nil
	case chatmessage.FieldMetadata:
		m.ResetMetadata()
		return nil
	case chatmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case chatmessage.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.conversation != nil {
		edges = append(edges, chatmessage.EdgeConversation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chatmessage.EdgeConversation:
		if id := m.conversation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedconversation {
		edges = append(edges, chatmessage.EdgeConversation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case chatmessage.EdgeConversation:
		return m.clearedconversation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatMessageMutation) ClearEdge(name string) error {
	switch name {
	case chatmessage.EdgeConversation:
		m.ClearConversation()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatMessageMutation) ResetEdge(name string) error {
	switch name {
	case chatmessage.EdgeConversation:
		m.ResetConversation()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage edge %s", name)
}

// CheckpointMutation represents an operation that mutates the Checkpoint nodes in the graph.
type CheckpointMutation struct {
	config
	op              Op
	typ             string
	id              *string
	conversation_id *string
	seq             *int64
	addseq          *int64
	parent_seq      *int64
	addparent_seq   *int64
	phase           *string
	state           *map[string]interface{}
	created_at      *time.Time
	clearedFields   map[string]struct{}
	workflow        *string
	clearedworkflow bool
	done            bool
	oldValue        func(context.Context) (*Checkpoint, error)
	predicates      []predicate.Checkpoint
}

var _ ent.Mutation = (*CheckpointMutation)(nil)

// checkpointOption allows management of the mutation configuration using functional options.
type checkpointOption func(*CheckpointMutation)

// newCheckpointMutation creates new mutation for the Checkpoint entity.
func newCheckpointMutation(c config, op Op, opts ...checkpointOption) *CheckpointMutation {
	m := &CheckpointMutation{
		config:        c,
		op:            op,
		typ:           TypeCheckpoint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCheckpointID sets the ID field of the mutation.
func withCheckpointID(id string) checkpointOption {
	return func(m *CheckpointMutation) {
		var (
			err   error
			once  sync.Once
			value *Checkpoint
		)
		m.oldValue = func(ctx context.Context) (*Checkpoint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Checkpoint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCheckpoint sets the old Checkpoint of the mutation.
func withCheckpoint(node *Checkpoint) checkpointOption {
	return func(m *CheckpointMutation) {
		m.oldValue = func(context.Context) (*Checkpoint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CheckpointMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CheckpointMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Checkpoint entities.
func (m *CheckpointMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CheckpointMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CheckpointMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Checkpoint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetConversationID sets the "conversation_id" field.
func (m *CheckpointMutation) SetConversationID(s string) {
	m.conversation_id = &s
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *CheckpointMutation) ConversationID() (r string, exists bool) {
	v := m.conversation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldConversationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *CheckpointMutation) ResetConversationID() {
	m.conversation_id = nil
}

// SetWorkflowID sets the "workflow_id" field.
func (m *CheckpointMutation) SetWorkflowID(s string) {
	m.workflow = &s
}

// WorkflowID returns the value of the "workflow_id" field in the mutation.
func (m *CheckpointMutation) WorkflowID() (r string, exists bool) {
	v := m.workflow
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowID returns the old "workflow_id" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldWorkflowID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowID: %w", err)
	}
	return oldValue.WorkflowID, nil
}

// ResetWorkflowID resets all changes to the "workflow_id" field.
func (m *CheckpointMutation) ResetWorkflowID() {
	m.workflow = nil
}

// SetSeq sets the "seq" field.
func (m *CheckpointMutation) SetSeq(i int64) {
	m.seq = &i
	m.addseq = nil
}

// Seq returns the value of the "seq" field in the mutation.
func (m *CheckpointMutation) Seq() (r int64, exists bool) {
	v := m.seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSeq returns the old "seq" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldSeq(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeq: %w", err)
	}
	return oldValue.Seq, nil
}

// AddSeq adds i to the "seq" field.
func (m *CheckpointMutation) AddSeq(i int64) {
	if m.addseq != nil {
		*m.addseq += i
	} else {
		m.addseq = &i
	}
}

// AddedSeq returns the value that was added to the "seq" field in this mutation.
func (m *CheckpointMutation) AddedSeq() (r int64, exists bool) {
	v := m.addseq
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeq resets all changes to the "seq" field.
func (m *CheckpointMutation) ResetSeq() {
	m.seq = nil
	m.addseq = nil
}

// SetParentSeq sets the "parent_seq" field.
func (m *CheckpointMutation) SetParentSeq(i int64) {
	m.parent_seq = &i
	m.addparent_seq = nil
}

// ParentSeq returns the value of the "parent_seq" field in the mutation.
func (m *CheckpointMutation) ParentSeq() (r int64, exists bool) {
	v := m.parent_seq
	if v == nil {
		return
	}
	return *v, true
}

// OldParentSeq returns the old "parent_seq" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldParentSeq(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentSeq: %w", err)
	}
	return oldValue.ParentSeq, nil
}

// AddParentSeq adds i to the "parent_seq" field.
func (m *CheckpointMutation) AddParentSeq(i int64) {
	if m.addparent_seq != nil {
		*m.addparent_seq += i
	} else {
		m.addparent_seq = &i
	}
}

// AddedParentSeq returns the value that was added to the "parent_seq" field in this mutation.
func (m *CheckpointMutation) AddedParentSeq() (r int64, exists bool) {
	v := m.addparent_seq
	if v == nil {
		return
	}
	return *v, true
}

// ClearParentSeq clears the value of the "parent_seq" field.
func (m *CheckpointMutation) ClearParentSeq() {
	m.parent_seq = nil
	m.addparent_seq = nil
	m.clearedFields[checkpoint.FieldParentSeq] = struct{}{}
}

// ParentSeqCleared returns if the "parent_seq" field was cleared in this mutation.
func (m *CheckpointMutation) ParentSeqCleared() bool {
	_, ok := m.clearedFields[checkpoint.FieldParentSeq]
	return ok
}

// ResetParentSeq resets all changes to the "parent_seq" field.
func (m *CheckpointMutation) ResetParentSeq() {
	m.parent_seq = nil
	m.addparent_seq = nil
	delete(m.clearedFields, checkpoint.FieldParentSeq)
}

// SetPhase sets the "phase" field.
func (m *CheckpointMutation) SetPhase(s string) {
	m.phase = &s
}

// Phase returns the value of the "phase" field in the mutation.
func (m *CheckpointMutation) Phase() (r string, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldPhase(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ResetPhase resets all changes to the "phase" field.
func (m *CheckpointMutation) ResetPhase() {
	m.phase = nil
}

// SetState sets the "state" field.
func (m *CheckpointMutation) SetState(value map[string]interface{}) {
	m.state = &value
}

// State returns the value of the "state" field in the mutation.
func (m *CheckpointMutation) State() (r map[string]interface{}, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldState(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *CheckpointMutation) ResetState() {
	m.state = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CheckpointMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CheckpointMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CheckpointMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearWorkflow clears the "workflow" edge to the Workflow entity.
func (m *CheckpointMutation) ClearWorkflow() {
	m.clearedworkflow = true
	m.clearedFields[checkpoint.FieldWorkflowID] = struct{}{}
}

// WorkflowCleared reports if the "workflow" edge to the Workflow entity was cleared.
func (m *CheckpointMutation) WorkflowCleared() bool {
	return m.clearedworkflow
}

// WorkflowIDs returns the "workflow" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkflowID instead. It exists only for internal usage by the builders.
func (m *CheckpointMutation) WorkflowIDs() (ids []string) {
	if id := m.workflow; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkflow resets all changes to the "workflow" edge.
func (m *CheckpointMutation) ResetWorkflow() {
	m.workflow = nil
	m.clearedworkflow = false
}

// Where appends a list predicates to the CheckpointMutation builder.
func (m *CheckpointMutation) Where(ps ...predicate.Checkpoint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CheckpointMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CheckpointMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Checkpoint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CheckpointMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CheckpointMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Checkpoint).
func (m *CheckpointMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CheckpointMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.conversation_id != nil {
		fields = append(fields, checkpoint.FieldConversationID)
	}
	if m.workflow != nil {
		fields = append(fields, checkpoint.FieldWorkflowID)
	}
	if m.seq != nil {
		fields = append(fields, checkpoint.FieldSeq)
	}
	if m.parent_seq != nil {
		fields = append(fields, checkpoint.FieldParentSeq)
	}
	if m.phase != nil {
		fields = append(fields, checkpoint.FieldPhase)
	}
	if m.state != nil {
		fields = append(fields, checkpoint.FieldState)
	}
	if m.created_at != nil {
		fields = append(fields, checkpoint.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CheckpointMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case checkpoint.FieldConversationID:
		return m.ConversationID()
	case checkpoint.FieldWorkflowID:
		return m.WorkflowID()
	case checkpoint.FieldSeq:
		return m.Seq()
	case checkpoint.FieldParentSeq:
		return m.ParentSeq()
	case checkpoint.FieldPhase:
		return m.Phase()
	case checkpoint.FieldState:
		return m.State()
	case checkpoint.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CheckpointMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case checkpoint.FieldConversationID:
		return m.OldConversationID(ctx)
	case checkpoint.FieldWorkflowID:
		return m.OldWorkflowID(ctx)
	case checkpoint.FieldSeq:
		return m.OldSeq(ctx)
	case checkpoint.FieldParentSeq:
		return m.OldParentSeq(ctx)
	case checkpoint.FieldPhase:
		return m.OldPhase(ctx)
	case checkpoint.FieldState:
		return m.OldState(ctx)
	case checkpoint.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Checkpoint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) SetField(name string, value ent.Value) error {
	switch name {
	case checkpoint.FieldConversationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case checkpoint.FieldWorkflowID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowID(v)
		return nil
	case checkpoint.FieldSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeq(v)
		return nil
	case checkpoint.FieldParentSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentSeq(v)
		return nil
	case checkpoint.FieldPhase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case checkpoint.FieldState:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case checkpoint.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CheckpointMutation) AddedFields() []string {
	var fields []string
	if m.addseq != nil {
		fields = append(fields, checkpoint.FieldSeq)
	}
	if m.addparent_seq != nil {
		fields = append(fields, checkpoint.FieldParentSeq)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CheckpointMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case checkpoint.FieldSeq:
		return m.AddedSeq()
	case checkpoint.FieldParentSeq:
		return m.AddedParentSeq()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) AddField(name string, value ent.Value) error {
	switch name {
	case checkpoint.FieldSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeq(v)
		return nil
	case checkpoint.FieldParentSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddParentSeq(v)
		return nil
	}
	return fmt.Errorf("unknown Checkpoint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CheckpointMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(checkpoint.FieldParentSeq) {
		fields = append(fields, checkpoint.FieldParentSeq)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CheckpointMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CheckpointMutation) ClearField(name string) error {
	switch name {
	case checkpoint.FieldParentSeq:
		m.ClearParentSeq()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CheckpointMutation) ResetField(name string) error {
	switch name {
	case checkpoint.FieldConversationID:
		m.ResetConversationID()
		return nil
	case checkpoint.FieldWorkflowID:
		m.ResetWorkflowID()
		return nil
	case checkpoint.FieldSeq:
		m.ResetSeq()
		return nil
	case checkpoint.FieldParentSeq:
		m.ResetParentSeq()
		return nil
	case checkpoint.FieldPhase:
		m.ResetPhase()
		return nil
	case checkpoint.FieldState:
		m.ResetState()
		return nil
	case checkpoint.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CheckpointMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.workflow != nil {
		edges = append(edges, checkpoint.EdgeWorkflow)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CheckpointMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case checkpoint.EdgeWorkflow:
		if id := m.workflow; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CheckpointMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CheckpointMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CheckpointMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedworkflow {
		edges = append(edges, checkpoint.EdgeWorkflow)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CheckpointMutation) EdgeCleared(name string) bool {
	switch name {
	case checkpoint.EdgeWorkflow:
		return m.clearedworkflow
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CheckpointMutation) ClearEdge(name string) error {
	switch name {
	case checkpoint.EdgeWorkflow:
		m.ClearWorkflow()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CheckpointMutation) ResetEdge(name string) error {
	switch name {
	case checkpoint.EdgeWorkflow:
		m.ResetWorkflow()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint edge %s", name)
}

// ContinuityStateMutation represents an operation that mutates the ContinuityState nodes in the graph.
type ContinuityStateMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	user_id                   *string
	manuscript_filename       *string
	last_analyzed_chapter     *int
	addlast_analyzed_chapter  *int
	character_states          *map[string]interface{}
	plot_threads              *map[string]interface{}
	timeline                  *[]map[string]interface{}
	appendtimeline            []map[string]interface{}
	world_state_changes       *[]map[string]interface{}
	appendworld_state_changes []map[string]interface{}
	unresolved_tensions       *[]map[string]interface{}
	appendunresolved_tensions []map[string]interface{}
	current_chapter_summary   *string
	created_at                *time.Time
	updated_at                *time.Time
	clearedFields             map[string]struct{}
	done                      bool
	oldValue                  func(context.Context) (*ContinuityState, error)
	predicates                []predicate.ContinuityState
}

var _ ent.Mutation = (*ContinuityStateMutation)(nil)

// continuitystateOption allows management of the mutation configuration using functional options.
type continuitystateOption func(*ContinuityStateMutation)

// newContinuityStateMutation creates new mutation for the ContinuityState entity.
func newContinuityStateMutation(c config, op Op, opts ...continuitystateOption) *ContinuityStateMutation {
	m := &ContinuityStateMutation{
		config:        c,
		op:            op,
		typ:           TypeContinuityState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContinuityStateID sets the ID field of the mutation.
func withContinuityStateID(id string) continuitystateOption {
	return func(m *ContinuityStateMutation) {
		var (
			err   error
			once  sync.Once
			value *ContinuityState
		)
		m.oldValue = func(ctx context.Context) (*ContinuityState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ContinuityState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContinuityState sets the old ContinuityState of the mutation.
func withContinuityState(node *ContinuityState) continuitystateOption {
	return func(m *ContinuityStateMutation) {
		m.oldValue = func(context.Context) (*ContinuityState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContinuityStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContinuityStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ContinuityState entities.
func (m *ContinuityStateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContinuityStateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContinuityStateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ContinuityState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ContinuityStateMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ContinuityStateMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ContinuityState entity.
// If the ContinuityState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContinuityStateMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ContinuityStateMutation) ResetUserID() {
	m.user_id = nil
}

// SetManuscriptFilename sets the "manuscript_filename" field.
func (m *ContinuityStateMutation) SetManuscriptFilename(s string) {
	m.manuscript_filename = &s
}

// ManuscriptFilename returns the value of the "manuscript_filename" field in the mutation.
func (m *ContinuityStateMutation) ManuscriptFilename() (r string, exists bool) {
	v := m.manuscript_filename
	if v == nil {
		return
	}
	return *v, true
}

// OldManuscriptFilename returns the old "manuscript_filename" field's value of the ContinuityState entity.
// If the ContinuityState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContinuityStateMutation) OldManuscriptFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldManuscriptFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldManuscriptFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldManuscriptFilename: %w", err)
	}
	return oldValue.ManuscriptFilename, nil
}

// ResetManuscriptFilename resets all changes to the "manuscript_filename" field.
func (m *ContinuityStateMutation) ResetManuscriptFilename() {
	m.manuscript_filename = nil
}

// SetLastAnalyzedChapter sets the "last_analyzed_chapter" field.
func (m *ContinuityStateMutation) SetLastAnalyzedChapter(i int) {
	m.last_analyzed_chapter = &i
	m.addlast_analyzed_chapter = nil
}

// LastAnalyzedChapter returns the value of the "last_analyzed_chapter" field in the mutation.
func (m *ContinuityStateMutation) LastAnalyzedChapter() (r int, exists bool) {
	v := m.last_analyzed_chapter
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAnalyzedChapter returns the old "last_analyzed_chapter" field's value of the ContinuityState entity.
// If the ContinuityState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContinuityStateMutation) OldLastAnalyzedChapter(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAnalyzedChapter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAnalyzedChapter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAnalyzedChapter: %w", err)
	}
	return oldValue.LastAnalyzedChapter, nil
}

// AddLastAnalyzedChapter adds i to the "last_analyzed_chapter" field.
func (m *ContinuityStateMutation) AddLastAnalyzedChapter(i int) {
	if m.addlast_analyzed_chapter != nil {
		*m.addlast_analyzed_chapter += i
	} else {
		m.addlast_analyzed_chapter = &i
	}
}

// AddedLastAnalyzedChapter returns the value that was added to the "last_analyzed_chapter" field in this mutation.
func (m *ContinuityStateMutation) AddedLastAnalyzedChapter() (r int, exists bool) {
	v := m.addlast_analyzed_chapter
	if v == nil {
		return
	}
	return *v, true
}

// ResetLastAnalyzedChapter resets all changes to the "last_analyzed_chapter" field.
func (m *ContinuityStateMutation) ResetLastAnalyzedChapter() {
	m.last_analyzed_chapter = nil
	m.addlast_analyzed_chapter = nil
}

// SetCharacterStates sets the "character_states" field.
func (m *ContinuityStateMutation) SetCharacterStates(value map[string]interface{}) {
	m.character_states = &value
}

// CharacterStates returns the value of the "character_states" field in the mutation.
func (m *ContinuityStateMutation) CharacterStates() (r map[string]interface{}, exists bool) {
	v := m.character_states
	if v == nil {
		return
	}
	return *v, true
}

// OldCharacterStates returns the old "character_states" field's value of the ContinuityState entity.
// If the ContinuityState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContinuityStateMutation) OldCharacterStates(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCharacterStates is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCharacterStates requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCharacterStates: %w", err)
	}
	return oldValue.CharacterStates, nil
}

// ClearCharacterStates clears the value of the "character_states" field.
func (m *ContinuityStateMutation) ClearCharacterStates() {
	m.character_states = nil
	m.clearedFields[continuitystate.FieldCharacterStates] = struct{}{}
}

// CharacterStatesCleared returns if the "character_states" field was cleared in this mutation.
func (m *ContinuityStateMutation) CharacterStatesCleared() bool {
	_, ok := m.clearedFields[continuitystate.FieldCharacterStates]
	return ok
}

// ResetCharacterStates resets all changes to the "character_states" field.
func (m *ContinuityStateMutation) ResetCharacterStates() {
	m.character_states = nil
	delete(m.clearedFields, continuitystate.FieldCharacterStates)
}

// SetPlotThreads sets the "plot_threads" field.
func (m *ContinuityStateMutation) SetPlotThreads(value map[string]interface{}) {
	m.plot_threads = &value
}

// PlotThreads returns the value of the "plot_threads" field in the mutation.
func (m *ContinuityStateMutation) PlotThreads() (r map[string]interface{}, exists bool) {
	v := m.plot_threads
	if v == nil {
		return
	}
	return *v, true
}

// OldPlotThreads returns the old "plot_threads" field's value of the ContinuityState entity.
// If the ContinuityState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContinuityStateMutation) OldPlotThreads(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlotThreads is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlotThreads requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlotThreads: %w", err)
	}
	return oldValue.PlotThreads, nil
}

// ClearPlotThreads clears the value of the "plot_threads" field.
func (m *ContinuityStateMutation) ClearPlotThreads() {
	m.plot_threads = nil
	m.clearedFields[continuitystate.FieldPlotThreads] = struct{}{}
}

// PlotThreadsCleared returns if the "plot_threads" field was cleared in this mutation.
func (m *ContinuityStateMutation) PlotThreadsCleared() bool {
	_, ok := m.clearedFields[continuitystate.FieldPlotThreads]
	return ok
}

// ResetPlotThreads resets all changes to the "plot_threads" field.
func (m *ContinuityStateMutation) ResetPlotThreads() {
	m.plot_threads = nil
	delete(m.clearedFields, continuitystate.FieldPlotThreads)
}

// SetTimeline sets the "timeline" field.
func (m *ContinuityStateMutation) SetTimeline(value []map[string]interface{}) {
	m.timeline = &value
	m.appendtimeline = nil
}

// Timeline returns the value of the "timeline" field in the mutation.
func (m *ContinuityStateMutation) Timeline() (r []map[string]interface{}, exists bool) {
	v := m.timeline
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeline returns the old "timeline" field's value of the ContinuityState entity.
// If the ContinuityState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContinuityStateMutation) OldTimeline(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeline: %w", err)
	}
	return oldValue.Timeline, nil
}

// AppendTimeline adds value to the "timeline" field.
func (m *ContinuityStateMutation) AppendTimeline(value []map[string]interface{}) {
	m.appendtimeline = append(m.appendtimeline, value...)
}

// AppendedTimeline returns the list of values that were appended to the "timeline" field in this mutation.
func (m *ContinuityStateMutation) AppendedTimeline() ([]map[string]interface{}, bool) {
	if len(m.appendtimeline) == 0 {
		return nil, false
	}
	return m.appendtimeline, true
}

// ClearTimeline clears the value of the "timeline" field.
func (m *ContinuityStateMutation) ClearTimeline() {
	m.timeline = nil
	m.appendtimeline = nil
	m.clearedFields[continuitystate.FieldTimeline] = struct{}{}
}

// TimelineCleared returns if the "timeline" field was cleared in this mutation.
func (m *ContinuityStateMutation) TimelineCleared() bool {
	_, ok := m.clearedFields[continuitystate.FieldTimeline]
	return ok
}

// ResetTimeline resets all changes to the "timeline" field.
func (m *ContinuityStateMutation) ResetTimeline() {
	m.timeline = nil
	m.appendtimeline = nil
	delete(m.clearedFields, continuitystate.FieldTimeline)
}

// SetWorldStateChanges sets the "world_state_changes" field.
func (m *ContinuityStateMutation) SetWorldStateChanges(value []map[string]interface{}) {
	m.world_state_changes = &value
	m.appendworld_state_changes = nil
}

// WorldStateChanges returns the value of the "world_state_changes" field in the mutation.
func (m *ContinuityStateMutation) WorldStateChanges() (r []map[string]interface{}, exists bool) {
	v := m.world_state_changes
	if v == nil {
		return
	}
	return *v, true
}

// OldWorldStateChanges returns the old "world_state_changes" field's value of the ContinuityState entity.
// If the ContinuityState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContinuityStateMutation) OldWorldStateChanges(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorldStateChanges is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorldStateChanges requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorldStateChanges: %w", err)
	}
	return oldValue.WorldStateChanges, nil
}

// AppendWorldStateChanges adds value to the "world_state_changes" field.
func (m *ContinuityStateMutation) AppendWorldStateChanges(value []map[string]interface{}) {
	m.appendworld_state_changes = append(m.appendworld_state_changes, value...)
}

// AppendedWorldStateChanges returns the list of values that were appended to the "world_state_changes" field in this mutation.
func (m *ContinuityStateMutation) AppendedWorldStateChanges() ([]map[string]interface{}, bool) {
	if len(m.appendworld_state_changes) == 0 {
		return nil, false
	}
	return m.appendworld_state_changes, true
}

// ClearWorldStateChanges clears the value of the "world_state_changes" field.
func (m *ContinuityStateMutation) ClearWorldStateChanges() {
	m.world_state_changes = nil
	m.appendworld_state_changes = nil
	m.clearedFields[continuitystate.FieldWorldStateChanges] = struct{}{}
}

// WorldStateChangesCleared returns if the "world_state_changes" field was cleared in this mutation.
func (m *ContinuityStateMutation) WorldStateChangesCleared() bool {
	_, ok := m.clearedFields[continuitystate.FieldWorldStateChanges]
	return ok
}

// ResetWorldStateChanges resets all changes to the "world_state_changes" field.
func (m *ContinuityStateMutation) ResetWorldStateChanges() {
	m.world_state_changes = nil
	m.appendworld_state_changes = nil
	delete(m.clearedFields, continuitystate.FieldWorldStateChanges)
}

// SetUnresolvedTensions sets the "unresolved_tensions" field.
func (m *ContinuityStateMutation) SetUnresolvedTensions(value []map[string]interface{}) {
	m.unresolved_tensions = &value
	m.appendunresolved_tensions = nil
}

// UnresolvedTensions returns the value of the "unresolved_tensions" field in the mutation.
func (m *ContinuityStateMutation) UnresolvedTensions() (r []map[string]interface{}, exists bool) {
	v := m.unresolved_tensions
	if v == nil {
		return
	}
	return *v, true
}

// OldUnresolvedTensions returns the old "unresolved_tensions" field's value of the ContinuityState entity.
// If the ContinuityState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContinuityStateMutation) OldUnresolvedTensions(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnresolvedTensions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnresolvedTensions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnresolvedTensions: %w", err)
	}
	return oldValue.UnresolvedTensions, nil
}

// AppendUnresolvedTensions adds value to the "unresolved_tensions" field.
func (m *ContinuityStateMutation) AppendUnresolvedTensions(value []map[string]interface{}) {
	m.appendunresolved_tensions = append(m.appendunresolved_tensions, value...)
}

// AppendedUnresolvedTensions returns the list of values that were appended to the "unresolved_tensions" field in this mutation.
func (m *ContinuityStateMutation) AppendedUnresolvedTensions() ([]map[string]interface{}, bool) {
	if len(m.appendunresolved_tensions) == 0 {
		return nil, false
	}
	return m.appendunresolved_tensions, true
}

// ClearUnresolvedTensions clears the value of the "unresolved_tensions" field.
func (m *ContinuityStateMutation) ClearUnresolvedTensions() {
	m.unresolved_tensions = nil
	m.appendunresolved_tensions = nil
	m.clearedFields[continuitystate.FieldUnresolvedTensions] = struct{}{}
}

// UnresolvedTensionsCleared returns if the "unresolved_tensions" field was cleared in this mutation.
func (m *ContinuityStateMutation) UnresolvedTensionsCleared() bool {
	_, ok := m.clearedFields[continuitystate.FieldUnresolvedTensions]
	return ok
}

// ResetUnresolvedTensions resets all changes to the "unresolved_tensions" field.
func (m *ContinuityStateMutation) ResetUnresolvedTensions() {
	m.unresolved_tensions = nil
	m.appendunresolved_tensions = nil
	delete(m.clearedFields, continuitystate.FieldUnresolvedTensions)
}

// SetCurrentChapterSummary sets the "current_chapter_summary" field.
func (m *ContinuityStateMutation) SetCurrentChapterSummary(s string) {
	m.current_chapter_summary = &s
}

// CurrentChapterSummary returns the value of the "current_chapter_summary" field in the mutation.
func (m *ContinuityStateMutation) CurrentChapterSummary() (r string, exists bool) {
	v := m.current_chapter_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentChapterSummary returns the old "current_chapter_summary" field's value of the ContinuityState entity.
// If the ContinuityState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContinuityStateMutation) OldCurrentChapterSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentChapterSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentChapterSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentChapterSummary: %w", err)
	}
	return oldValue.CurrentChapterSummary, nil
}

// ClearCurrentChapterSummary clears the value of the "current_chapter_summary" field.
func (m *ContinuityStateMutation) ClearCurrentChapterSummary() {
	m.current_chapter_summary = nil
	m.clearedFields[continuitystate.FieldCurrentChapterSummary] = struct{}{}
}

// CurrentChapterSummaryCleared returns if the "current_chapter_summary" field was cleared in this mutation.
func (m *ContinuityStateMutation) CurrentChapterSummaryCleared() bool {
	_, ok := m.clearedFields[continuitystate.FieldCurrentChapterSummary]
	return ok
}

// ResetCurrentChapterSummary resets all changes to the "current_chapter_summary" field.
func (m *ContinuityStateMutation) ResetCurrentChapterSummary() {
	m.current_chapter_summary = nil
	delete(m.clearedFields, continuitystate.FieldCurrentChapterSummary)
}

// SetCreatedAt sets the "created_at" field.
func (m *ContinuityStateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ContinuityStateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ContinuityState entity.
// If the ContinuityState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContinuityStateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ContinuityStateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ContinuityStateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ContinuityStateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ContinuityState entity.
// If the ContinuityState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContinuityStateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ContinuityStateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ContinuityStateMutation builder.
func (m *ContinuityStateMutation) Where(ps ...predicate.ContinuityState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContinuityStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContinuityStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ContinuityState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContinuityStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContinuityStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ContinuityState).
func (m *ContinuityStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContinuityStateMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.user_id != nil {
		fields = append(fields, continuitystate.FieldUserID)
	}
	if m.manuscript_filename != nil {
		fields = append(fields, continuitystate.FieldManuscriptFilename)
	}
	if m.last_analyzed_chapter != nil {
		fields = append(fields, continuitystate.FieldLastAnalyzedChapter)
	}
	if m.character_states != nil {
		fields = append(fields, continuitystate.FieldCharacterStates)
	}
	if m.plot_threads != nil {
		fields = append(fields, continuitystate.FieldPlotThreads)
	}
	if m.timeline != nil {
		fields = append(fields, continuitystate.FieldTimeline)
	}
	if m.world_state_changes != nil {
		fields = append(fields, continuitystate.FieldWorldStateChanges)
	}
	if m.unresolved_tensions != nil {
		fields = append(fields, continuitystate.FieldUnresolvedTensions)
	}
	if m.current_chapter_summary != nil {
		fields = append(fields, continuitystate.FieldCurrentChapterSummary)
	}
	if m.created_at != nil {
		fields = append(fields, continuitystate.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, continuitystate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContinuityStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case continuitystate.FieldUserID:
		return m.UserID()
	case continuitystate.FieldManuscriptFilename:
		return m.ManuscriptFilename()
	case continuitystate.FieldLastAnalyzedChapter:
		return m.LastAnalyzedChapter()
	case continuitystate.FieldCharacterStates:
		return m.CharacterStates()
	case continuitystate.FieldPlotThreads:
		return m.PlotThreads()
	case continuitystate.FieldTimeline:
		return m.Timeline()
	case continuitystate.FieldWorldStateChanges:
		return m.WorldStateChanges()
	case continuitystate.FieldUnresolvedTensions:
		return m.UnresolvedTensions()
	case continuitystate.FieldCurrentChapterSummary:
		return m.CurrentChapterSummary()
	case continuitystate.FieldCreatedAt:
		return m.CreatedAt()
	case continuitystate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContinuityStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case continuitystate.FieldUserID:
		return m.OldUserID(ctx)
	case continuitystate.FieldManuscriptFilename:
		return m.OldManuscriptFilename(ctx)
	case continuitystate.FieldLastAnalyzedChapter:
		return m.OldLastAnalyzedChapter(ctx)
	case continuitystate.FieldCharacterStates:
		return m.OldCharacterStates(ctx)
	case continuitystate.FieldPlotThreads:
		return m.OldPlotThreads(ctx)
	case continuitystate.FieldTimeline:
		return m.OldTimeline(ctx)
	case continuitystate.FieldWorldStateChanges:
		return m.OldWorldStateChanges(ctx)
	case continuitystate.FieldUnresolvedTensions:
		return m.OldUnresolvedTensions(ctx)
	case continuitystate.FieldCurrentChapterSummary:
		return m.OldCurrentChapterSummary(ctx)
	case continuitystate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case continuitystate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ContinuityState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContinuityStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case continuitystate.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case continuitystate.FieldManuscriptFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetManuscriptFilename(v)
		return nil
	case continuitystate.FieldLastAnalyzedChapter:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAnalyzedChapter(v)
		return nil
	case continuitystate.FieldCharacterStates:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCharacterStates(v)
		return nil
	case continuitystate.FieldPlotThreads:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlotThreads(v)
		return nil
	case continuitystate.FieldTimeline:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeline(v)
		return nil
	case continuitystate.FieldWorldStateChanges:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorldStateChanges(v)
		return nil
	case continuitystate.FieldUnresolvedTensions:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnresolvedTensions(v)
		return nil
	case continuitystate.FieldCurrentChapterSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentChapterSummary(v)
		return nil
	case continuitystate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case continuitystate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ContinuityState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContinuityStateMutation) AddedFields() []string {
	var fields []string
	if m.addlast_analyzed_chapter != nil {
		fields = append(fields, continuitystate.FieldLastAnalyzedChapter)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContinuityStateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case continuitystate.FieldLastAnalyzedChapter:
		return m.AddedLastAnalyzedChapter()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContinuityStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case continuitystate.FieldLastAnalyzedChapter:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastAnalyzedChapter(v)
		return nil
	}
	return fmt.Errorf("unknown ContinuityState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContinuityStateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(continuitystate.FieldCharacterStates) {
		fields = append(fields, continuitystate.FieldCharacterStates)
	}
	if m.FieldCleared(continuitystate.FieldPlotThreads) {
		fields = append(fields, continuitystate.FieldPlotThreads)
	}
	if m.FieldCleared(continuitystate.FieldTimeline) {
		fields = append(fields, continuitystate.FieldTimeline)
	}
	if m.FieldCleared(continuitystate.FieldWorldStateChanges) {
		fields = append(fields, continuitystate.FieldWorldStateChanges)
	}
	if m.FieldCleared(continuitystate.FieldUnresolvedTensions) {
		fields = append(fields, continuitystate.FieldUnresolvedTensions)
	}
	if m.FieldCleared(continuitystate.FieldCurrentChapterSummary) {
		fields = append(fields, continuitystate.FieldCurrentChapterSummary)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContinuityStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContinuityStateMutation) ClearField(name string) error {
	switch name {
	case continuitystate.FieldCharacterStates:
		m.ClearCharacterStates()
		return nil
	case continuitystate.FieldPlotThreads:
		m.ClearPlotThreads()
		return nil
	case continuitystate.FieldTimeline:
		m.ClearTimeline()
		return nil
	case continuitystate.FieldWorldStateChanges:
		m.ClearWorldStateChanges()
		return nil
	case continuitystate.FieldUnresolvedTensions:
		m.ClearUnresolvedTensions()
		return nil
	case continuitystate.FieldCurrentChapterSummary:
		m.ClearCurrentChapterSummary()
		return nil
	}
	return fmt.Errorf("unknown ContinuityState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContinuityStateMutation) ResetField(name string) error {
	switch name {
	case continuitystate.FieldUserID:
		m.ResetUserID()
		return nil
	case continuitystate.FieldManuscriptFilename:
		m.ResetManuscriptFilename()
		return nil
	case continuitystate.FieldLastAnalyzedChapter:
		m.ResetLastAnalyzedChapter()
		return nil
	case continuitystate.FieldCharacterStates:
		m.ResetCharacterStates()
		return nil
	case continuitystate.FieldPlotThreads:
		m.ResetPlotThreads()
		return nil
	case continuitystate.FieldTimeline:
		m.ResetTimeline()
		return nil
	case continuitystate.FieldWorldStateChanges:
		m.ResetWorldStateChanges()
		return nil
	case continuitystate.FieldUnresolvedTensions:
		m.ResetUnresolvedTensions()
		return nil
	case continuitystate.FieldCurrentChapterSummary:
		m.ResetCurrentChapterSummary()
		return nil
	case continuitystate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case continuitystate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ContinuityState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContinuityStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContinuityStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContinuityStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContinuityStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContinuityStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContinuityStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContinuityStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ContinuityState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContinuityStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ContinuityState edge %s", name)
}

// ConversationMutation represents an operation that mutates the Conversation nodes in the graph.
type ConversationMutation struct {
	config
	op               Op
	typ              string
	id               *string
	user_id          *string
	title            *string
	created_at       *time.Time
	updated_at       *time.Time
	deleted_at       *time.Time
	clearedFields    map[string]struct{}
	messages         map[string]struct{}
	removedmessages  map[string]struct{}
	clearedmessages  bool
	workflows        map[string]struct{}
	removedworkflows map[string]struct{}
	clearedworkflows bool
	done             bool
	oldValue         func(context.Context) (*Conversation, error)
	predicates       []predicate.Conversation
}

var _ ent.Mutation = (*ConversationMutation)(nil)

// conversationOption allows management of the mutation configuration using functional options.
type conversationOption func(*ConversationMutation)

// newConversationMutation creates new mutation for the Conversation entity.
func newConversationMutation(c config, op Op, opts ...conversationOption) *ConversationMutation {
	m := &ConversationMutation{
		config:        c,
		op:            op,
		typ:           TypeConversation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConversationID sets the ID field of the mutation.
func withConversationID(id string) conversationOption {
	return func(m *ConversationMutation) {
		var (
			err   error
			once  sync.Once
			value *Conversation
		)
		m.oldValue = func(ctx context.Context) (*Conversation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Conversation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConversation sets the old Conversation of the mutation.
func withConversation(node *Conversation) conversationOption {
	return func(m *ConversationMutation) {
		m.oldValue = func(context.Context) (*Conversation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConversationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConversationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Conversation entities.
func (m *ConversationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConversationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConversationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Conversation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ConversationMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ConversationMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ConversationMutation) ResetUserID() {
	m.user_id = nil
}

// SetTitle sets the "title" field.
func (m *ConversationMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ConversationMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldTitle(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *ConversationMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[conversation.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *ConversationMutation) TitleCleared() bool {
	_, ok := m.clearedFields[conversation.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *ConversationMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, conversation.FieldTitle)
}

// SetCreatedAt sets the "created_at" field.
func (m *ConversationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConversationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConversationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ConversationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ConversationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ConversationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *ConversationMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *ConversationMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *ConversationMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[conversation.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *ConversationMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[conversation.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *ConversationMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, conversation.FieldDeletedAt)
}

// AddMessageIDs adds the "messages" edge to the ChatMessage entity by ids.
func (m *ConversationMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the ChatMessage entity.
func (m *ConversationMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the ChatMessage entity was cleared.
func (m *ConversationMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the ChatMessage entity by IDs.
func (m *ConversationMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the ChatMessage entity.
func (m *ConversationMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *ConversationMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *ConversationMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// AddWorkflowIDs adds the "workflows" edge to the Workflow entity by ids.
func (m *ConversationMutation) AddWorkflowIDs(ids ...string) {
	if m.workflows == nil {
		m.workflows = make(map[string]struct{})
	}
	for i := range ids {
		m.workflows[ids[i]] = struct{}{}
	}
}

// ClearWorkflows clears the "workflows" edge to the Workflow entity.
func (m *ConversationMutation) ClearWorkflows() {
	m.clearedworkflows = true
}

// WorkflowsCleared reports if the "workflows" edge to the Workflow entity was cleared.
func (m *ConversationMutation) WorkflowsCleared() bool {
	return m.clearedworkflows
}

// RemoveWorkflowIDs removes the "workflows" edge to the Workflow entity by IDs.
func (m *ConversationMutation) RemoveWorkflowIDs(ids ...string) {
	if m.removedworkflows == nil {
		m.removedworkflows = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.workflows, ids[i])
		m.removedworkflows[ids[i]] = struct{}{}
	}
}

// RemovedWorkflows returns the removed IDs of the "workflows" edge to the Workflow entity.
func (m *ConversationMutation) RemovedWorkflowsIDs() (ids []string) {
	for id := range m.removedworkflows {
		ids = append(ids, id)
	}
	return
}

// WorkflowsIDs returns the "workflows" edge IDs in the mutation.
func (m *ConversationMutation) WorkflowsIDs() (ids []string) {
	for id := range m.workflows {
		ids = append(ids, id)
	}
	return
}

// ResetWorkflows resets all changes to the "workflows" edge.
func (m *ConversationMutation) ResetWorkflows() {
	m.workflows = nil
	m.clearedworkflows = false
	m.removedworkflows = nil
}

// Where appends a list predicates to the ConversationMutation builder.
func (m *ConversationMutation) Where(ps ...predicate.Conversation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConversationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConversationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Conversation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConversationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConversationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Conversation).
func (m *ConversationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConversationMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.user_id != nil {
		fields = append(fields, conversation.FieldUserID)
	}
	if m.title != nil {
		fields = append(fields, conversation.FieldTitle)
	}
	if m.created_at != nil {
		fields = append(fields, conversation.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, conversation.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, conversation.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConversationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case conversation.FieldUserID:
		return m.UserID()
	case conversation.FieldTitle:
		return m.Title()
	case conversation.FieldCreatedAt:
		return m.CreatedAt()
	case conversation.FieldUpdatedAt:
		return m.UpdatedAt()
	case conversation.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConversationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case conversation.FieldUserID:
		return m.OldUserID(ctx)
	case conversation.FieldTitle:
		return m.OldTitle(ctx)
	case conversation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case conversation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case conversation.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Conversation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case conversation.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case conversation.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case conversation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case conversation.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case conversation.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Conversation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConversationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConversationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Conversation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConversationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(conversation.FieldTitle) {
		fields = append(fields, conversation.FieldTitle)
	}
	if m.FieldCleared(conversation.FieldDeletedAt) {
		fields = append(fields, conversation.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConversationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConversationMutation) ClearField(name string) error {
	switch name {
	case conversation.FieldTitle:
		m.ClearTitle()
		return nil
	case conversation.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Conversation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConversationMutation) ResetField(name string) error {
	switch name {
	case conversation.FieldUserID:
		m.ResetUserID()
		return nil
	case conversation.FieldTitle:
		m.ResetTitle()
		return nil
	case conversation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case conversation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case conversation.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Conversation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConversationMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.messages != nil {
		edges = append(edges, conversation.EdgeMessages)
	}
	if m.workflows != nil {
		edges = append(edges, conversation.EdgeWorkflows)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConversationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case conversation.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	case conversation.EdgeWorkflows:
		ids := make([]ent.Value, 0, len(m.workflows))
		for id := range m.workflows {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConversationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedmessages != nil {
		edges = append(edges, conversation.EdgeMessages)
	}
	if m.removedworkflows != nil {
		edges = append(edges, conversation.EdgeWorkflows)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConversationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case conversation.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	case conversation.EdgeWorkflows:
		ids := make([]ent.Value, 0, len(m.removedworkflows))
		for id := range m.removedworkflows {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConversationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedmessages {
		edges = append(edges, conversation.EdgeMessages)
	}
	if m.clearedworkflows {
		edges = append(edges, conversation.EdgeWorkflows)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConversationMutation) EdgeCleared(name string) bool {
	switch name {
	case conversation.EdgeMessages:
		return m.clearedmessages
	case conversation.EdgeWorkflows:
		return m.clearedworkflows
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConversationMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Conversation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConversationMutation) ResetEdge(name string) error {
	switch name {
	case conversation.EdgeMessages:
		m.ResetMessages()
		return nil
	case conversation.EdgeWorkflows:
		m.ResetWorkflows()
		return nil
	}
	return fmt.Errorf("unknown Conversation edge %s", name)
}

// EditProposalMutation represents an operation that mutates the EditProposal nodes in the graph.
type EditProposalMutation struct {
	config
	op               Op
	typ              string
	id               *string
	user_id          *string
	document_id      *string
	agent_name       *string
	edit_type        *editproposal.EditType
	operations       *[]map[string]interface{}
	appendoperations []map[string]interface{}
	content_edit     *string
	summary          *string
	preview          *string
	applied          *bool
	applied_at       *time.Time
	apply_result     *map[string]interface{}
	created_at       *time.Time
	expires_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*EditProposal, error)
	predicates       []predicate.EditProposal
}

var _ ent.Mutation = (*EditProposalMutation)(nil)

// editproposalOption allows management of the mutation configuration using functional options.
type editproposalOption func(*EditProposalMutation)

// newEditProposalMutation creates new mutation for the EditProposal entity.
func newEditProposalMutation(c config, op Op, opts ...editproposalOption) *EditProposalMutation {
	m := &EditProposalMutation{
		config:        c,
		op:            op,
		typ:           TypeEditProposal,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEditProposalID sets the ID field of the mutation.
func withEditProposalID(id string) editproposalOption {
	return func(m *EditProposalMutation) {
		var (
			err   error
			once  sync.Once
			value *EditProposal
		)
		m.oldValue = func(ctx context.Context) (*EditProposal, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EditProposal.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEditProposal sets the old EditProposal of the mutation.
func withEditProposal(node *EditProposal) editproposalOption {
	return func(m *EditProposalMutation) {
		m.oldValue = func(context.Context) (*EditProposal, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EditProposalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EditProposalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EditProposal entities.
func (m *EditProposalMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EditProposalMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EditProposalMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EditProposal.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *EditProposalMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *EditProposalMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the EditProposal entity.
// If the EditProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditProposalMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *EditProposalMutation) ResetUserID() {
	m.user_id = nil
}

// SetDocumentID sets the "document_id" field.
func (m *EditProposalMutation) SetDocumentID(s string) {
	m.document_id = &s
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *EditProposalMutation) DocumentID() (r string, exists bool) {
	v := m.document_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the EditProposal entity.
// If the EditProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditProposalMutation) OldDocumentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *EditProposalMutation) ResetDocumentID() {
	m.document_id = nil
}

// SetAgentName sets the "agent_name" field.
func (m *EditProposalMutation) SetAgentName(s string) {
	m.agent_name = &s
}

// AgentName returns the value of the "agent_name" field in the mutation.
func (m *EditProposalMutation) AgentName() (r string, exists bool) {
	v := m.agent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentName returns the old "agent_name" field's value of the EditProposal entity.
// If the EditProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditProposalMutation) OldAgentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentName: %w", err)
	}
	return oldValue.AgentName, nil
}

// ResetAgentName resets all changes to the "agent_name" field.
func (m *EditProposalMutation) ResetAgentName() {
	m.agent_name = nil
}

// SetEditType sets the "edit_type" field.
func (m *EditProposalMutation) SetEditType(et editproposal.EditType) {
	m.edit_type = &et
}

// EditType returns the value of the "edit_type" field in the mutation.
func (m *EditProposalMutation) EditType() (r editproposal.EditType, exists bool) {
	v := m.edit_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEditType returns the old "edit_type" field's value of the EditProposal entity.
// If the EditProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditProposalMutation) OldEditType(ctx context.Context) (v editproposal.EditType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEditType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEditType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEditType: %w", err)
	}
	return oldValue.EditType, nil
}

// ResetEditType resets all changes to the "edit_type" field.
func (m *EditProposalMutation) ResetEditType() {
	m.edit_type = nil
}

// SetOperations sets the "operations" field.
func (m *EditProposalMutation) SetOperations(value []map[string]interface{}) {
	m.operations = &value
	m.appendoperations = nil
}

// Operations returns the value of the "operations" field in the mutation.
func (m *EditProposalMutation) Operations() (r []map[string]interface{}, exists bool) {
	v := m.operations
	if v == nil {
		return
	}
	return *v, true
}

// OldOperations returns the old "operations" field's value of the EditProposal entity.
// If the EditProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditProposalMutation) OldOperations(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperations: %w", err)
	}
	return oldValue.Operations, nil
}

// AppendOperations adds value to the "operations" field.
func (m *EditProposalMutation) AppendOperations(value []map[string]interface{}) {
	m.appendoperations = append(m.appendoperations, value...)
}

// AppendedOperations returns the list of values that were appended to the "operations" field in this mutation.
func (m *EditProposalMutation) AppendedOperations() ([]map[string]interface{}, bool) {
	if len(m.appendoperations) == 0 {
		return nil, false
	}
	return m.appendoperations, true
}

// ClearOperations clears the value of the "operations" field.
func (m *EditProposalMutation) ClearOperations() {
	m.operations = nil
	m.appendoperations = nil
	m.clearedFields[editproposal.FieldOperations] = struct{}{}
}

// OperationsCleared returns if the "operations" field was cleared in this mutation.
func (m *EditProposalMutation) OperationsCleared() bool {
	_, ok := m.clearedFields[editproposal.FieldOperations]
	return ok
}

// ResetOperations resets all changes to the "operations" field.
func (m *EditProposalMutation) ResetOperations() {
	m.operations = nil
	m.appendoperations = nil
	delete(m.clearedFields, editproposal.FieldOperations)
}

// SetContentEdit sets the "content_edit" field.
func (m *EditProposalMutation) SetContentEdit(s string) {
	m.content_edit = &s
}

// ContentEdit returns the value of the "content_edit" field in the mutation.
func (m *EditProposalMutation) ContentEdit() (r string, exists bool) {
	v := m.content_edit
	if v == nil {
		return
	}
	return *v, true
}

// OldContentEdit returns the old "content_edit" field's value of the EditProposal entity.
// If the EditProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditProposalMutation) OldContentEdit(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentEdit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentEdit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentEdit: %w", err)
	}
	return oldValue.ContentEdit, nil
}

// ClearContentEdit clears the value of the "content_edit" field.
func (m *EditProposalMutation) ClearContentEdit() {
	m.content_edit = nil
	m.clearedFields[editproposal.FieldContentEdit] = struct{}{}
}

// ContentEditCleared returns if the "content_edit" field was cleared in this mutation.
func (m *EditProposalMutation) ContentEditCleared() bool {
	_, ok := m.clearedFields[editproposal.FieldContentEdit]
	return ok
}

// ResetContentEdit resets all changes to the "content_edit" field.
func (m *EditProposalMutation) ResetContentEdit() {
	m.content_edit = nil
	delete(m.clearedFields, editproposal.FieldContentEdit)
}

// SetSummary sets the "summary" field.
func (m *EditProposalMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *EditProposalMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the EditProposal entity.
// If the EditProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditProposalMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ResetSummary resets all changes to the "summary" field.
func (m *EditProposalMutation) ResetSummary() {
	m.summary = nil
}

// SetPreview sets the "preview" field.
func (m *EditProposalMutation) SetPreview(s string) {
	m.preview = &s
}

// Preview returns the value of the "preview" field in the mutation.
func (m *EditProposalMutation) Preview() (r string, exists bool) {
	v := m.preview
	if v == nil {
		return
	}
	return *v, true
}

// OldPreview returns the old "preview" field's value of the EditProposal entity.
// If the EditProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditProposalMutation) OldPreview(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreview: %w", err)
	}
	return oldValue.Preview, nil
}

// ClearPreview clears the value of the "preview" field.
func (m *EditProposalMutation) ClearPreview() {
	m.preview = nil
	m.clearedFields[editproposal.FieldPreview] = struct{}{}
}

// PreviewCleared returns if the "preview" field was cleared in this mutation.
func (m *EditProposalMutation) PreviewCleared() bool {
	_, ok := m.clearedFields[editproposal.FieldPreview]
	return ok
}

// ResetPreview resets all changes to the "preview" field.
func (m *EditProposalMutation) ResetPreview() {
	m.preview = nil
	delete(m.clearedFields, editproposal.FieldPreview)
}

// SetApplied sets the "applied" field.
func (m *EditProposalMutation) SetApplied(b bool) {
	m.applied = &b
}

// Applied returns the value of the "applied" field in the mutation.
func (m *EditProposalMutation) Applied() (r bool, exists bool) {
	v := m.applied
	if v == nil {
		return
	}
	return *v, true
}

// OldApplied returns the old "applied" field's value of the EditProposal entity.
// If the EditProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditProposalMutation) OldApplied(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApplied is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApplied requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApplied: %w", err)
	}
	return oldValue.Applied, nil
}

// ResetApplied resets all changes to the "applied" field.
func (m *EditProposalMutation) ResetApplied() {
	m.applied = nil
}

// SetAppliedAt sets the "applied_at" field.
func (m *EditProposalMutation) SetAppliedAt(t time.Time) {
	m.applied_at = &t
}

// AppliedAt returns the value of the "applied_at" field in the mutation.
func (m *EditProposalMutation) AppliedAt() (r time.Time, exists bool) {
	v := m.applied_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAppliedAt returns the old "applied_at" field's value of the EditProposal entity.
// If the EditProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditProposalMutation) OldAppliedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppliedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppliedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppliedAt: %w", err)
	}
	return oldValue.AppliedAt, nil
}

// ClearAppliedAt clears the value of the "applied_at" field.
func (m *EditProposalMutation) ClearAppliedAt() {
	m.applied_at = nil
	m.clearedFields[editproposal.FieldAppliedAt] = struct{}{}
}

// AppliedAtCleared returns if the "applied_at" field was cleared in this mutation.
func (m *EditProposalMutation) AppliedAtCleared() bool {
	_, ok := m.clearedFields[editproposal.FieldAppliedAt]
	return ok
}

// ResetAppliedAt resets all changes to the "applied_at" field.
func (m *EditProposalMutation) ResetAppliedAt() {
	m.applied_at = nil
	delete(m.clearedFields, editproposal.FieldAppliedAt)
}

// SetApplyResult sets the "apply_result" field.
func (m *EditProposalMutation) SetApplyResult(value map[string]interface{}) {
	m.apply_result = &value
}

// ApplyResult returns the value of the "apply_result" field in the mutation.
func (m *EditProposalMutation) ApplyResult() (r map[string]interface{}, exists bool) {
	v := m.apply_result
	if v == nil {
		return
	}
	return *v, true
}

// OldApplyResult returns the old "apply_result" field's value of the EditProposal entity.
// If the EditProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditProposalMutation) OldApplyResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApplyResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApplyResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApplyResult: %w", err)
	}
	return oldValue.ApplyResult, nil
}

// ClearApplyResult clears the value of the "apply_result" field.
func (m *EditProposalMutation) ClearApplyResult() {
	m.apply_result = nil
	m.clearedFields[editproposal.FieldApplyResult] = struct{}{}
}

// ApplyResultCleared returns if the "apply_result" field was cleared in this mutation.
func (m *EditProposalMutation) ApplyResultCleared() bool {
	_, ok := m.clearedFields[editproposal.FieldApplyResult]
	return ok
}

// ResetApplyResult resets all changes to the "apply_result" field.
func (m *EditProposalMutation) ResetApplyResult() {
	m.apply_result = nil
	delete(m.clearedFields, editproposal.FieldApplyResult)
}

// SetCreatedAt sets the "created_at" field.
func (m *EditProposalMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EditProposalMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EditProposal entity.
// If the EditProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditProposalMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EditProposalMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *EditProposalMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *EditProposalMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the EditProposal entity.
// If the EditProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditProposalMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *EditProposalMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// Where appends a list predicates to the EditProposalMutation builder.
func (m *EditProposalMutation) Where(ps ...predicate.EditProposal) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EditProposalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EditProposalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EditProposal, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EditProposalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EditProposalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EditProposal).
func (m *EditProposalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EditProposalMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.user_id != nil {
		fields = append(fields, editproposal.FieldUserID)
	}
	if m.document_id != nil {
		fields = append(fields, editproposal.FieldDocumentID)
	}
	if m.agent_name != nil {
		fields = append(fields, editproposal.FieldAgentName)
	}
	if m.edit_type != nil {
		fields = append(fields, editproposal.FieldEditType)
	}
	if m.operations != nil {
		fields = append(fields, editproposal.FieldOperations)
	}
	if m.content_edit != nil {
		fields = append(fields, editproposal.FieldContentEdit)
	}
	if m.summary != nil {
		fields = append(fields, editproposal.FieldSummary)
	}
	if m.preview != nil {
		fields = append(fields, editproposal.FieldPreview)
	}
	if m.applied != nil {
		fields = append(fields, editproposal.FieldApplied)
	}
	if m.applied_at != nil {
		fields = append(fields, editproposal.FieldAppliedAt)
	}
	if m.apply_result != nil {
		fields = append(fields, editproposal.FieldApplyResult)
	}
	if m.created_at != nil {
		fields = append(fields, editproposal.FieldCreatedAt)
	}
	if m.expires_at != nil {
		fields = append(fields, editproposal.FieldExpiresAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EditProposalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case editproposal.FieldUserID:
		return m.UserID()
	case editproposal.FieldDocumentID:
		return m.DocumentID()
	case editproposal.FieldAgentName:
		return m.AgentName()
	case editproposal.FieldEditType:
		return m.EditType()
	case editproposal.FieldOperations:
		return m.Operations()
	case editproposal.FieldContentEdit:
		return m.ContentEdit()
	case editproposal.FieldSummary:
		return m.Summary()
	case editproposal.FieldPreview:
		return m.Preview()
	case editproposal.FieldApplied:
		return m.Applied()
	case editproposal.FieldAppliedAt:
		return m.AppliedAt()
	case editproposal.FieldApplyResult:
		return m.ApplyResult()
	case editproposal.FieldCreatedAt:
		return m.CreatedAt()
	case editproposal.FieldExpiresAt:
		return m.ExpiresAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EditProposalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case editproposal.FieldUserID:
		return m.OldUserID(ctx)
	case editproposal.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case editproposal.FieldAgentName:
		return m.OldAgentName(ctx)
	case editproposal.FieldEditType:
		return m.OldEditType(ctx)
	case editproposal.FieldOperations:
		return m.OldOperations(ctx)
	case editproposal.FieldContentEdit:
		return m.OldContentEdit(ctx)
	case editproposal.FieldSummary:
		return m.OldSummary(ctx)
	case editproposal.FieldPreview:
		return m.OldPreview(ctx)
	case editproposal.FieldApplied:
		return m.OldApplied(ctx)
	case editproposal.FieldAppliedAt:
		return m.OldAppliedAt(ctx)
	case editproposal.FieldApplyResult:
		return m.OldApplyResult(ctx)
	case editproposal.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case editproposal.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	}
	return nil, fmt.Errorf("unknown EditProposal field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EditProposalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case editproposal.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case editproposal.FieldDocumentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case editproposal.FieldAgentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentName(v)
		return nil
	case editproposal.FieldEditType:
		v, ok := value.(editproposal.EditType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEditType(v)
		return nil
	case editproposal.FieldOperations:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperations(v)
		return nil
	case editproposal.FieldContentEdit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentEdit(v)
		return nil
	case editproposal.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case editproposal.FieldPreview:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreview(v)
		return nil
	case editproposal.FieldApplied:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApplied(v)
		return nil
	case editproposal.FieldAppliedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppliedAt(v)
		return nil
	case editproposal.FieldApplyResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApplyResult(v)
		return nil
	case editproposal.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case editproposal.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	}
	return fmt.Errorf("unknown EditProposal field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EditProposalMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EditProposalMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EditProposalMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown EditProposal numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EditProposalMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(editproposal.FieldOperations) {
		fields = append(fields, editproposal.FieldOperations)
	}
	if m.FieldCleared(editproposal.FieldContentEdit) {
		fields = append(fields, editproposal.FieldContentEdit)
	}
	if m.FieldCleared(editproposal.FieldPreview) {
		fields = append(fields, editproposal.FieldPreview)
	}
	if m.FieldCleared(editproposal.FieldAppliedAt) {
		fields = append(fields, editproposal.FieldAppliedAt)
	}
	if m.FieldCleared(editproposal.FieldApplyResult) {
		fields = append(fields, editproposal.FieldApplyResult)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EditProposalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EditProposalMutation) ClearField(name string) error {
	switch name {
	case editproposal.FieldOperations:
		m.ClearOperations()
		return nil
	case editproposal.FieldContentEdit:
		m.ClearContentEdit()
		return nil
	case editproposal.FieldPreview:
		m.ClearPreview()
		return nil
	case editproposal.FieldAppliedAt:
		m.ClearAppliedAt()
		return nil
	case editproposal.FieldApplyResult:
		m.ClearApplyResult()
		return nil
	}
	return fmt.Errorf("unknown EditProposal nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EditProposalMutation) ResetField(name string) error {
	switch name {
	case editproposal.FieldUserID:
		m.ResetUserID()
		return nil
	case editproposal.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case editproposal.FieldAgentName:
		m.ResetAgentName()
		return nil
	case editproposal.FieldEditType:
		m.ResetEditType()
		return nil
	case editproposal.FieldOperations:
		m.ResetOperations()
		return nil
	case editproposal.FieldContentEdit:
		m.ResetContentEdit()
		return nil
	case editproposal.FieldSummary:
		m.ResetSummary()
		return nil
	case editproposal.FieldPreview:
		m.ResetPreview()
		return nil
	case editproposal.FieldApplied:
		m.ResetApplied()
		return nil
	case editproposal.FieldAppliedAt:
		m.ResetAppliedAt()
		return nil
	case editproposal.FieldApplyResult:
		m.ResetApplyResult()
		return nil
	case editproposal.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case editproposal.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown EditProposal field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EditProposalMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EditProposalMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EditProposalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EditProposalMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EditProposalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EditProposalMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EditProposalMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EditProposal unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EditProposalMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EditProposal edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	channel       *string
	payload       *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(s string) {
	m.payload = &s
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r string, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// FeedMutation represents an operation that mutates the Feed nodes in the graph.
type FeedMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	url                       *string
	title                     *string
	check_interval_seconds    *int
	addcheck_interval_seconds *int
	last_check                *time.Time
	is_polling                *bool
	polling_started_at        *time.Time
	etag                      *string
	last_modified             *string
	last_error                *string
	consecutive_failures      *int
	addconsecutive_failures   *int
	created_at                *time.Time
	clearedFields             map[string]struct{}
	articles                  map[string]struct{}
	removedarticles           map[string]struct{}
	clearedarticles           bool
	done                      bool
	oldValue                  func(context.Context) (*Feed, error)
	predicates                []predicate.Feed
}

var _ ent.Mutation = (*FeedMutation)(nil)

// feedOption allows management of the mutation configuration using functional options.
type feedOption func(*FeedMutation)

// newFeedMutation creates new mutation for the Feed entity.
func newFeedMutation(c config, op Op, opts ...feedOption) *FeedMutation {
	m := &FeedMutation{
		config:        c,
		op:            op,
		typ:           TypeFeed,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFeedID sets the ID field of the mutation.
func withFeedID(id string) feedOption {
	return func(m *FeedMutation) {
		var (
			err   error
			once  sync.Once
			value *Feed
		)
		m.oldValue = func(ctx context.Context) (*Feed, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Feed.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFeed sets the old Feed of the mutation.
func withFeed(node *Feed) feedOption {
	return func(m *FeedMutation) {
		m.oldValue = func(context.Context) (*Feed, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FeedMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FeedMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Feed entities.
func (m *FeedMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FeedMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FeedMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Feed.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetURL sets the "url" field.
func (m *FeedMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *FeedMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the Feed entity.
// If the Feed object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *FeedMutation) ResetURL() {
	m.url = nil
}

// SetTitle sets the "title" field.
func (m *FeedMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *FeedMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Feed entity.
// If the Feed object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedMutation) OldTitle(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *FeedMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[feed.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *FeedMutation) TitleCleared() bool {
	_, ok := m.clearedFields[feed.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *FeedMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, feed.FieldTitle)
}

// SetCheckIntervalSeconds sets the "check_interval_seconds" field.
func (m *FeedMutation) SetCheckIntervalSeconds(i int) {
	m.check_interval_seconds = &i
	m.addcheck_interval_seconds = nil
}

// CheckIntervalSeconds returns the value of the "check_interval_seconds" field in the mutation.
func (m *FeedMutation) CheckIntervalSeconds() (r int, exists bool) {
	v := m.check_interval_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckIntervalSeconds returns the old "check_interval_seconds" field's value of the Feed entity.
// If the Feed object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedMutation) OldCheckIntervalSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckIntervalSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckIntervalSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckIntervalSeconds: %w", err)
	}
	return oldValue.CheckIntervalSeconds, nil
}

// AddCheckIntervalSeconds adds i to the "check_interval_seconds" field.
func (m *FeedMutation) AddCheckIntervalSeconds(i int) {
	if m.addcheck_interval_seconds != nil {
		*m.addcheck_interval_seconds += i
	} else {
		m.addcheck_interval_seconds = &i
	}
}

// AddedCheckIntervalSeconds returns the value that was added to the "check_interval_seconds" field in this mutation.
func (m *FeedMutation) AddedCheckIntervalSeconds() (r int, exists bool) {
	v := m.addcheck_interval_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetCheckIntervalSeconds resets all changes to the "check_interval_seconds" field.
func (m *FeedMutation) ResetCheckIntervalSeconds() {
	m.check_interval_seconds = nil
	m.addcheck_interval_seconds = nil
}

// SetLastCheck sets the "last_check" field.
func (m *FeedMutation) SetLastCheck(t time.Time) {
	m.last_check = &t
}

// LastCheck returns the value of the "last_check" field in the mutation.
func (m *FeedMutation) LastCheck() (r time.Time, exists bool) {
	v := m.last_check
	if v == nil {
		return
	}
	return *v, true
}

// OldLastCheck returns the old "last_check" field's value of the Feed entity.
// If the Feed object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedMutation) OldLastCheck(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastCheck is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastCheck requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastCheck: %w", err)
	}
	return oldValue.LastCheck, nil
}

// ClearLastCheck clears the value of the "last_check" field.
func (m *FeedMutation) ClearLastCheck() {
	m.last_check = nil
	m.clearedFields[feed.FieldLastCheck] = struct{}{}
}

// LastCheckCleared returns if the "last_check" field was cleared in this mutation.
func (m *FeedMutation) LastCheckCleared() bool {
	_, ok := m.clearedFields[feed.FieldLastCheck]
	return ok
}

// ResetLastCheck resets all changes to the "last_check" field.
func (m *FeedMutation) ResetLastCheck() {
	m.last_check = nil
	delete(m.clearedFields, feed.FieldLastCheck)
}

// SetIsPolling sets the "is_polling" field.
func (m *FeedMutation) SetIsPolling(b bool) {
	m.is_polling = &b
}

// IsPolling returns the value of the "is_polling" field in the mutation.
func (m *FeedMutation) IsPolling() (r bool, exists bool) {
	v := m.is_polling
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPolling returns the old "is_polling" field's value of the Feed entity.
// If the Feed object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedMutation) OldIsPolling(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPolling is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPolling requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPolling: %w", err)
	}
	return oldValue.IsPolling, nil
}

// ResetIsPolling resets all changes to the "is_polling" field.
func (m *FeedMutation) ResetIsPolling() {
	m.is_polling = nil
}

// SetPollingStartedAt sets the "polling_started_at" field.
func (m *FeedMutation) SetPollingStartedAt(t time.Time) {
	m.polling_started_at = &t
}

// PollingStartedAt returns the value of the "polling_started_at" field in the mutation.
func (m *FeedMutation) PollingStartedAt() (r time.Time, exists bool) {
	v := m.polling_started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPollingStartedAt returns the old "polling_started_at" field's value of the Feed entity.
// If the Feed object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedMutation) OldPollingStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPollingStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPollingStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPollingStartedAt: %w", err)
	}
	return oldValue.PollingStartedAt, nil
}

// ClearPollingStartedAt clears the value of the "polling_started_at" field.
func (m *FeedMutation) ClearPollingStartedAt() {
	m.polling_started_at = nil
	m.clearedFields[feed.FieldPollingStartedAt] = struct{}{}
}

// PollingStartedAtCleared returns if the "polling_started_at" field was cleared in this mutation.
func (m *FeedMutation) PollingStartedAtCleared() bool {
	_, ok := m.clearedFields[feed.FieldPollingStartedAt]
	return ok
}

// ResetPollingStartedAt resets all changes to the "polling_started_at" field.
func (m *FeedMutation) ResetPollingStartedAt() {
	m.polling_started_at = nil
	delete(m.clearedFields, feed.FieldPollingStartedAt)
}

// SetEtag sets the "etag" field.
func (m *FeedMutation) SetEtag(s string) {
	m.etag = &s
}

// Etag returns the value of the "etag" field in the mutation.
func (m *FeedMutation) Etag() (r string, exists bool) {
	v := m.etag
	if v == nil {
		return
	}
	return *v, true
}

// OldEtag returns the old "etag" field's value of the Feed entity.
// If the Feed object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedMutation) OldEtag(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEtag is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEtag requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEtag: %w", err)
	}
	return oldValue.Etag, nil
}

// ClearEtag clears the value of the "etag" field.
func (m *FeedMutation) ClearEtag() {
	m.etag = nil
	m.clearedFields[feed.FieldEtag] = struct{}{}
}

// EtagCleared returns if the "etag" field was cleared in this mutation.
func (m *FeedMutation) EtagCleared() bool {
	_, ok := m.clearedFields[feed.FieldEtag]
	return ok
}

// ResetEtag resets all changes to the "etag" field.
func (m *FeedMutation) ResetEtag() {
	m.etag = nil
	delete(m.clearedFields, feed.FieldEtag)
}

// SetLastModified sets the "last_modified" field.
func (m *FeedMutation) SetLastModified(s string) {
	m.last_modified = &s
}

// LastModified returns the value of the "last_modified" field in the mutation.
func (m *FeedMutation) LastModified() (r string, exists bool) {
	v := m.last_modified
	if v == nil {
		return
	}
	return *v, true
}

// OldLastModified returns the old "last_modified" field's value of the Feed entity.
// If the Feed object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedMutation) OldLastModified(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastModified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastModified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastModified: %w", err)
	}
	return oldValue.LastModified, nil
}

// ClearLastModified clears the value of the "last_modified" field.
func (m *FeedMutation) ClearLastModified() {
	m.last_modified = nil
	m.clearedFields[feed.FieldLastModified] = struct{}{}
}

// LastModifiedCleared returns if the "last_modified" field was cleared in this mutation.
func (m *FeedMutation) LastModifiedCleared() bool {
	_, ok := m.clearedFields[feed.FieldLastModified]
	return ok
}

// ResetLastModified resets all changes to the "last_modified" field.
func (m *FeedMutation) ResetLastModified() {
	m.last_modified = nil
	delete(m.clearedFields, feed.FieldLastModified)
}

// SetLastError sets the "last_error" field.
func (m *FeedMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *FeedMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the Feed entity.
// If the Feed object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *FeedMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[feed.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *FeedMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[feed.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *FeedMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, feed.FieldLastError)
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (m *FeedMutation) SetConsecutiveFailures(i int) {
	m.consecutive_failures = &i
	m.addconsecutive_failures = nil
}

// ConsecutiveFailures returns the value of the "consecutive_failures" field in the mutation.
func (m *FeedMutation) ConsecutiveFailures() (r int, exists bool) {
	v := m.consecutive_failures
	if v == nil {
		return
	}
	return *v, true
}

// OldConsecutiveFailures returns the old "consecutive_failures" field's value of the Feed entity.
// If the Feed object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedMutation) OldConsecutiveFailures(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsecutiveFailures is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsecutiveFailures requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsecutiveFailures: %w", err)
	}
	return oldValue.ConsecutiveFailures, nil
}

// AddConsecutiveFailures adds i to the "consecutive_failures" field.
func (m *FeedMutation) AddConsecutiveFailures(i int) {
	if m.addconsecutive_failures != nil {
		*m.addconsecutive_failures += i
	} else {
		m.addconsecutive_failures = &i
	}
}

// AddedConsecutiveFailures returns the value that was added to the "consecutive_failures" field in this mutation.
func (m *FeedMutation) AddedConsecutiveFailures() (r int, exists bool) {
	v := m.addconsecutive_failures
	if v == nil {
		return
	}
	return *v, true
}

// ResetConsecutiveFailures resets all changes to the "consecutive_failures" field.
func (m *FeedMutation) ResetConsecutiveFailures() {
	m.consecutive_failures = nil
	m.addconsecutive_failures = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *FeedMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FeedMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Feed entity.
// If the Feed object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FeedMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddArticleIDs adds the "articles" edge to the FeedArticle entity by ids.
func (m *FeedMutation) AddArticleIDs(ids ...string) {
	if m.articles == nil {
		m.articles = make(map[string]struct{})
	}
	for i := range ids {
		m.articles[ids[i]] = struct{}{}
	}
}

// ClearArticles clears the "articles" edge to the FeedArticle entity.
func (m *FeedMutation) ClearArticles() {
	m.clearedarticles = true
}

// ArticlesCleared reports if the "articles" edge to the FeedArticle entity was cleared.
func (m *FeedMutation) ArticlesCleared() bool {
	return m.clearedarticles
}

// RemoveArticleIDs removes the "articles" edge to the FeedArticle entity by IDs.
func (m *FeedMutation) RemoveArticleIDs(ids ...string) {
	if m.removedarticles == nil {
		m.removedarticles = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.articles, ids[i])
		m.removedarticles[ids[i]] = struct{}{}
	}
}

// RemovedArticles returns the removed IDs of the "articles" edge to the FeedArticle entity.
func (m *FeedMutation) RemovedArticlesIDs() (ids []string) {
	for id := range m.removedarticles {
		ids = append(ids, id)
	}
	return
}

// ArticlesIDs returns the "articles" edge IDs in the mutation.
func (m *FeedMutation) ArticlesIDs() (ids []string) {
	for id := range m.articles {
		ids = append(ids, id)
	}
	return
}

// ResetArticles resets all changes to the "articles" edge.
func (m *FeedMutation) ResetArticles() {
	m.articles = nil
	m.clearedarticles = false
	m.removedarticles = nil
}

// Where appends a list predicates to the FeedMutation builder.
func (m *FeedMutation) Where(ps ...predicate.Feed) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FeedMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FeedMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Feed, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FeedMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FeedMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Feed).
func (m *FeedMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FeedMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.url != nil {
		fields = append(fields, feed.FieldURL)
	}
	if m.title != nil {
		fields = append(fields, feed.FieldTitle)
	}
	if m.check_interval_seconds != nil {
		fields = append(fields, feed.FieldCheckIntervalSeconds)
	}
	if m.last_check != nil {
		fields = append(fields, feed.FieldLastCheck)
	}
	if m.is_polling != nil {
		fields = append(fields, feed.FieldIsPolling)
	}
	if m.polling_started_at != nil {
		fields = append(fields, feed.FieldPollingStartedAt)
	}
	if m.etag != nil {
		fields = append(fields, feed.FieldEtag)
	}
	if m.last_modified != nil {
		fields = append(fields, feed.FieldLastModified)
	}
	if m.last_error != nil {
		fields = append(fields, feed.FieldLastError)
	}
	if m.consecutive_failures != nil {
		fields = append(fields, feed.FieldConsecutiveFailures)
	}
	if m.created_at != nil {
		fields = append(fields, feed.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FeedMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case feed.FieldURL:
		return m.URL()
	case feed.FieldTitle:
		return m.Title()
	case feed.FieldCheckIntervalSeconds:
		return m.CheckIntervalSeconds()
	case feed.FieldLastCheck:
		return m.LastCheck()
	case feed.FieldIsPolling:
		return m.IsPolling()
	case feed.FieldPollingStartedAt:
		return m.PollingStartedAt()
	case feed.FieldEtag:
		return m.Etag()
	case feed.FieldLastModified:
		return m.LastModified()
	case feed.FieldLastError:
		return m.LastError()
	case feed.FieldConsecutiveFailures:
		return m.ConsecutiveFailures()
	case feed.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FeedMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case feed.FieldURL:
		return m.OldURL(ctx)
	case feed.FieldTitle:
		return m.OldTitle(ctx)
	case feed.FieldCheckIntervalSeconds:
		return m.OldCheckIntervalSeconds(ctx)
	case feed.FieldLastCheck:
		return m.OldLastCheck(ctx)
	case feed.FieldIsPolling:
		return m.OldIsPolling(ctx)
	case feed.FieldPollingStartedAt:
		return m.OldPollingStartedAt(ctx)
	case feed.FieldEtag:
		return m.OldEtag(ctx)
	case feed.FieldLastModified:
		return m.OldLastModified(ctx)
	case feed.FieldLastError:
		return m.OldLastError(ctx)
	case feed.FieldConsecutiveFailures:
		return m.OldConsecutiveFailures(ctx)
	case feed.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Feed field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeedMutation) SetField(name string, value ent.Value) error {
	switch name {
	case feed.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case feed.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case feed.FieldCheckIntervalSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckIntervalSeconds(v)
		return nil
	case feed.FieldLastCheck:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastCheck(v)
		return nil
	case feed.FieldIsPolling:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPolling(v)
		return nil
	case feed.FieldPollingStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPollingStartedAt(v)
		return nil
	case feed.FieldEtag:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEtag(v)
		return nil
	case feed.FieldLastModified:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastModified(v)
		return nil
	case feed.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case feed.FieldConsecutiveFailures:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsecutiveFailures(v)
		return nil
	case feed.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Feed field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FeedMutation) AddedFields() []string {
	var fields []string
	if m.addcheck_interval_seconds != nil {
		fields = append(fields, feed.FieldCheckIntervalSeconds)
	}
	if m.addconsecutive_failures != nil {
		fields = append(fields, feed.FieldConsecutiveFailures)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FeedMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case feed.FieldCheckIntervalSeconds:
		return m.AddedCheckIntervalSeconds()
	case feed.FieldConsecutiveFailures:
		return m.AddedConsecutiveFailures()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeedMutation) AddField(name string, value ent.Value) error {
	switch name {
	case feed.FieldCheckIntervalSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCheckIntervalSeconds(v)
		return nil
	case feed.FieldConsecutiveFailures:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsecutiveFailures(v)
		return nil
	}
	return fmt.Errorf("unknown Feed numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FeedMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(feed.FieldTitle) {
		fields = append(fields, feed.FieldTitle)
	}
	if m.FieldCleared(feed.FieldLastCheck) {
		fields = append(fields, feed.FieldLastCheck)
	}
	if m.FieldCleared(feed.FieldPollingStartedAt) {
		fields = append(fields, feed.FieldPollingStartedAt)
	}
	if m.FieldCleared(feed.FieldEtag) {
		fields = append(fields, feed.FieldEtag)
	}
	if m.FieldCleared(feed.FieldLastModified) {
		fields = append(fields, feed.FieldLastModified)
	}
	if m.FieldCleared(feed.FieldLastError) {
		fields = append(fields, feed.FieldLastError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FeedMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FeedMutation) ClearField(name string) error {
	switch name {
	case feed.FieldTitle:
		m.ClearTitle()
		return nil
	case feed.FieldLastCheck:
		m.ClearLastCheck()
		return nil
	case feed.FieldPollingStartedAt:
		m.ClearPollingStartedAt()
		return nil
	case feed.FieldEtag:
		m.ClearEtag()
		return nil
	case feed.FieldLastModified:
		m.ClearLastModified()
		return nil
	case feed.FieldLastError:
		m.ClearLastError()
		return nil
	}
	return fmt.Errorf("unknown Feed nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FeedMutation) ResetField(name string) error {
	switch name {
	case feed.FieldURL:
		m.ResetURL()
		return nil
	case feed.FieldTitle:
		m.ResetTitle()
		return nil
	case feed.FieldCheckIntervalSeconds:
		m.ResetCheckIntervalSeconds()
		return nil
	case feed.FieldLastCheck:
		m.ResetLastCheck()
		return nil
	case feed.FieldIsPolling:
		m.ResetIsPolling()
		return nil
	case feed.FieldPollingStartedAt:
		m.ResetPollingStartedAt()
		return nil
	case feed.FieldEtag:
		m.ResetEtag()
		return nil
	case feed.FieldLastModified:
		m.ResetLastModified()
		return nil
	case feed.FieldLastError:
		m.ResetLastError()
		return nil
	case feed.FieldConsecutiveFailures:
		m.ResetConsecutiveFailures()
		return nil
	case feed.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Feed field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FeedMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.articles != nil {
		edges = append(edges, feed.EdgeArticles)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FeedMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case feed.EdgeArticles:
		ids := make([]ent.Value, 0, len(m.articles))
		for id := range m.articles {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FeedMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedarticles != nil {
		edges = append(edges, feed.EdgeArticles)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FeedMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case feed.EdgeArticles:
		ids := make([]ent.Value, 0, len(m.removedarticles))
		for id := range m.removedarticles {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FeedMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedarticles {
		edges = append(edges, feed.EdgeArticles)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FeedMutation) EdgeCleared(name string) bool {
	switch name {
	case feed.EdgeArticles:
		return m.clearedarticles
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FeedMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Feed unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FeedMutation) ResetEdge(name string) error {
	switch name {
	case feed.EdgeArticles:
		m.ResetArticles()
		return nil
	}
	return fmt.Errorf("unknown Feed edge %s", name)
}

// FeedArticleMutation represents an operation that mutates the FeedArticle nodes in the graph.
type FeedArticleMutation struct {
	config
	op            Op
	typ           string
	id            *string
	guid          *string
	title         *string
	url           *string
	content       *string
	summary       *string
	author        *string
	content_hash  *string
	enriched      *bool
	published_at  *time.Time
	created_at    *time.Time
	clearedFields map[string]struct{}
	feed          *string
	clearedfeed   bool
	done          bool
	oldValue      func(context.Context) (*FeedArticle, error)
	predicates    []predicate.FeedArticle
}

var _ ent.Mutation = (*FeedArticleMutation)(nil)

// feedarticleOption allows management of the mutation configuration using functional options.
type feedarticleOption func(*FeedArticleMutation)

// newFeedArticleMutation creates new mutation for the FeedArticle entity.
func newFeedArticleMutation(c config, op Op, opts ...feedarticleOption) *FeedArticleMutation {
	m := &FeedArticleMutation{
		config:        c,
		op:            op,
		typ:           TypeFeedArticle,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFeedArticleID sets the ID field of the mutation.
func withFeedArticleID(id string) feedarticleOption {
	return func(m *FeedArticleMutation) {
		var (
			err   error
			once  sync.Once
			value *FeedArticle
		)
		m.oldValue = func(ctx context.Context) (*FeedArticle, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FeedArticle.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFeedArticle sets the old FeedArticle of the mutation.
func withFeedArticle(node *FeedArticle) feedarticleOption {
	return func(m *FeedArticleMutation) {
		m.oldValue = func(context.Context) (*FeedArticle, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FeedArticleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FeedArticleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FeedArticle entities.
func (m *FeedArticleMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FeedArticleMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FeedArticleMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FeedArticle.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFeedID sets the "feed_id" field.
func (m *FeedArticleMutation) SetFeedID(s string) {
	m.feed = &s
}

// FeedID returns the value of the "feed_id" field in the mutation.
func (m *FeedArticleMutation) FeedID() (r string, exists bool) {
	v := m.feed
	if v == nil {
		return
	}
	return *v, true
}

// OldFeedID returns the old "feed_id" field's value of the FeedArticle entity.
// If the FeedArticle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedArticleMutation) OldFeedID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeedID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeedID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeedID: %w", err)
	}
	return oldValue.FeedID, nil
}

// ResetFeedID resets all changes to the "feed_id" field.
func (m *FeedArticleMutation) ResetFeedID() {
	m.feed = nil
}

// SetGUID sets the "guid" field.
func (m *FeedArticleMutation) SetGUID(s string) {
	m.guid = &s
}

// GUID returns the value of the "guid" field in the mutation.
func (m *FeedArticleMutation) GUID() (r string, exists bool) {
	v := m.guid
	if v == nil {
		return
	}
	return *v, true
}

// OldGUID returns the old "guid" field's value of the FeedArticle entity.
// If the FeedArticle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedArticleMutation) OldGUID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGUID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGUID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGUID: %w", err)
	}
	return oldValue.GUID, nil
}

// ClearGUID clears the value of the "guid" field.
func (m *FeedArticleMutation) ClearGUID() {
	m.guid = nil
	m.clearedFields[feedarticle.FieldGUID] = struct{}{}
}

// GUIDCleared returns if the "guid" field was cleared in this mutation.
func (m *FeedArticleMutation) GUIDCleared() bool {
	_, ok := m.clearedFields[feedarticle.FieldGUID]
	return ok
}

// ResetGUID resets all changes to the "guid" field.
func (m *FeedArticleMutation) ResetGUID() {
	m.guid = nil
	delete(m.clearedFields, feedarticle.FieldGUID)
}

// SetTitle sets the "title" field.
func (m *FeedArticleMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *FeedArticleMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the FeedArticle entity.
// If the FeedArticle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedArticleMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *FeedArticleMutation) ResetTitle() {
	m.title = nil
}

// SetURL sets the "url" field.
func (m *FeedArticleMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *FeedArticleMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the FeedArticle entity.
// If the FeedArticle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedArticleMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *FeedArticleMutation) ResetURL() {
	m.url = nil
}

// SetContent sets the "content" field.
func (m *FeedArticleMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *FeedArticleMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the FeedArticle entity.
// If the FeedArticle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedArticleMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ClearContent clears the value of the "content" field.
func (m *FeedArticleMutation) ClearContent() {
	m.content = nil
	m.clearedFields[feedarticle.FieldContent] = struct{}{}
}

// ContentCleared returns if the "content" field was cleared in this mutation.
func (m *FeedArticleMutation) ContentCleared() bool {
	_, ok := m.clearedFields[feedarticle.FieldContent]
	return ok
}

// ResetContent resets all changes to the "content" field.
func (m *FeedArticleMutation) ResetContent() {
	m.content = nil
	delete(m.clearedFields, feedarticle.FieldContent)
}

// SetSummary sets the "summary" field.
func (m *FeedArticleMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *FeedArticleMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the FeedArticle entity.
// If the FeedArticle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedArticleMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *FeedArticleMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[feedarticle.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *FeedArticleMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[feedarticle.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *FeedArticleMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, feedarticle.FieldSummary)
}

// SetAuthor sets the "author" field.
func (m *FeedArticleMutation) SetAuthor(s string) {
	m.author = &s
}

// Author returns the value of the "author" field in the mutation.
func (m *FeedArticleMutation) Author() (r string, exists bool) {
	v := m.author
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthor returns the old "author" field's value of the FeedArticle entity.
// If the FeedArticle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedArticleMutation) OldAuthor(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthor: %w", err)
	}
	return oldValue.Author, nil
}

// ClearAuthor clears the value of the "author" field.
func (m *FeedArticleMutation) ClearAuthor() {
	m.author = nil
	m.clearedFields[feedarticle.FieldAuthor] = struct{}{}
}

// AuthorCleared returns if the "author" field was cleared in this mutation.
func (m *FeedArticleMutation) AuthorCleared() bool {
	_, ok := m.clearedFields[feedarticle.FieldAuthor]
	return ok
}

// ResetAuthor resets all changes to the "author" field.
func (m *FeedArticleMutation) ResetAuthor() {
	m.author = nil
	delete(m.clearedFields, feedarticle.FieldAuthor)
}

// SetContentHash sets the "content_hash" field.
func (m *FeedArticleMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *FeedArticleMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the FeedArticle entity.
// If the FeedArticle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedArticleMutation) OldContentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *FeedArticleMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetEnriched sets the "enriched" field.
func (m *FeedArticleMutation) SetEnriched(b bool) {
	m.enriched = &b
}

// Enriched returns the value of the "enriched" field in the mutation.
func (m *FeedArticleMutation) Enriched() (r bool, exists bool) {
	v := m.enriched
	if v == nil {
		return
	}
	return *v, true
}

// OldEnriched returns the old "enriched" field's value of the FeedArticle entity.
// If the FeedArticle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedArticleMutation) OldEnriched(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnriched is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnriched requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnriched: %w", err)
	}
	return oldValue.Enriched, nil
}

// ResetEnriched resets all changes to the "enriched" field.
func (m *FeedArticleMutation) ResetEnriched() {
	m.enriched = nil
}

// SetPublishedAt sets the "published_at" field.
func (m *FeedArticleMutation) SetPublishedAt(t time.Time) {
	m.published_at = &t
}

// PublishedAt returns the value of the "published_at" field in the mutation.
func (m *FeedArticleMutation) PublishedAt() (r time.Time, exists bool) {
	v := m.published_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishedAt returns the old "published_at" field's value of the FeedArticle entity.
// If the FeedArticle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedArticleMutation) OldPublishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishedAt: %w", err)
	}
	return oldValue.PublishedAt, nil
}

// ClearPublishedAt clears the value of the "published_at" field.
func (m *FeedArticleMutation) ClearPublishedAt() {
	m.published_at = nil
	m.clearedFields[feedarticle.FieldPublishedAt] = struct{}{}
}

// PublishedAtCleared returns if the "published_at" field was cleared in this mutation.
func (m *FeedArticleMutation) PublishedAtCleared() bool {
	_, ok := m.clearedFields[feedarticle.FieldPublishedAt]
	return ok
}

// ResetPublishedAt resets all changes to the "published_at" field.
func (m *FeedArticleMutation) ResetPublishedAt() {
	m.published_at = nil
	delete(m.clearedFields, feedarticle.FieldPublishedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *FeedArticleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FeedArticleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FeedArticle entity.
// If the FeedArticle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedArticleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FeedArticleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearFeed clears the "feed" edge to the Feed entity.
func (m *FeedArticleMutation) ClearFeed() {
	m.clearedfeed = true
	m.clearedFields[feedarticle.FieldFeedID] = struct{}{}
}

// FeedCleared reports if the "feed" edge to the Feed entity was cleared.
func (m *FeedArticleMutation) FeedCleared() bool {
	return m.clearedfeed
}

// FeedIDs returns the "feed" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FeedID instead. It exists only for internal usage by the builders.
func (m *FeedArticleMutation) FeedIDs() (ids []string) {
	if id := m.feed; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFeed resets all changes to the "feed" edge.
func (m *FeedArticleMutation) ResetFeed() {
	m.feed = nil
	m.clearedfeed = false
}

// Where appends a list predicates to the FeedArticleMutation builder.
func (m *FeedArticleMutation) Where(ps ...predicate.FeedArticle) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FeedArticleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FeedArticleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FeedArticle, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FeedArticleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FeedArticleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FeedArticle).
func (m *FeedArticleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FeedArticleMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.feed != nil {
		fields = append(fields, feedarticle.FieldFeedID)
	}
	if m.guid != nil {
		fields = append(fields, feedarticle.FieldGUID)
	}
	if m.title != nil {
		fields = append(fields, feedarticle.FieldTitle)
	}
	if m.url != nil {
		fields = append(fields, feedarticle.FieldURL)
	}
	if m.content != nil {
		fields = append(fields, feedarticle.FieldContent)
	}
	if m.summary != nil {
		fields = append(fields, feedarticle.FieldSummary)
	}
	if m.author != nil {
		fields = append(fields, feedarticle.FieldAuthor)
	}
	if m.content_hash != nil {
		fields = append(fields, feedarticle.FieldContentHash)
	}
	if m.enriched != nil {
		fields = append(fields, feedarticle.FieldEnriched)
	}
	if m.published_at != nil {
		fields = append(fields, feedarticle.FieldPublishedAt)
	}
	if m.created_at != nil {
		fields = append(fields, feedarticle.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FeedArticleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case feedarticle.FieldFeedID:
		return m.FeedID()
	case feedarticle.FieldGUID:
		return m.GUID()
	case feedarticle.FieldTitle:
		return m.Title()
	case feedarticle.FieldURL:
		return m.URL()
	case feedarticle.FieldContent:
		return m.Content()
	case feedarticle.FieldSummary:
		return m.Summary()
	case feedarticle.FieldAuthor:
		return m.Author()
	case feedarticle.FieldContentHash:
		return m.ContentHash()
	case feedarticle.FieldEnriched:
		return m.Enriched()
	case feedarticle.FieldPublishedAt:
		return m.PublishedAt()
	case feedarticle.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FeedArticleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case feedarticle.FieldFeedID:
		return m.OldFeedID(ctx)
	case feedarticle.FieldGUID:
		return m.OldGUID(ctx)
	case feedarticle.FieldTitle:
		return m.OldTitle(ctx)
	case feedarticle.FieldURL:
		return m.OldURL(ctx)
	case feedarticle.FieldContent:
		return m.OldContent(ctx)
	case feedarticle.FieldSummary:
		return m.OldSummary(ctx)
	case feedarticle.FieldAuthor:
		return m.OldAuthor(ctx)
	case feedarticle.FieldContentHash:
		return m.OldContentHash(ctx)
	case feedarticle.FieldEnriched:
		return m.OldEnriched(ctx)
	case feedarticle.FieldPublishedAt:
		return m.OldPublishedAt(ctx)
	case feedarticle.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FeedArticle field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeedArticleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case feedarticle.FieldFeedID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeedID(v)
		return nil
	case feedarticle.FieldGUID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGUID(v)
		return nil
	case feedarticle.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case feedarticle.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case feedarticle.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case feedarticle.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case feedarticle.FieldAuthor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthor(v)
		return nil
	case feedarticle.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case feedarticle.FieldEnriched:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnriched(v)
		return nil
	case feedarticle.FieldPublishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishedAt(v)
		return nil
	case feedarticle.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FeedArticle field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FeedArticleMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FeedArticleMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeedArticleMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown FeedArticle numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FeedArticleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(feedarticle.FieldGUID) {
		fields = append(fields, feedarticle.FieldGUID)
	}
	if m.FieldCleared(feedarticle.FieldContent) {
		fields = append(fields, feedarticle.FieldContent)
	}
	if m.FieldCleared(feedarticle.FieldSummary) {
		fields = append(fields, feedarticle.FieldSummary)
	}
	if m.FieldCleared(feedarticle.FieldAuthor) {
		fields = append(fields, feedarticle.FieldAuthor)
	}
	if m.FieldCleared(feedarticle.FieldPublishedAt) {
		fields = append(fields, feedarticle.FieldPublishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FeedArticleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FeedArticleMutation) ClearField(name string) error {
	switch name {
	case feedarticle.FieldGUID:
		m.ClearGUID()
		return nil
	case feedarticle.FieldContent:
		m.ClearContent()
		return nil
	case feedarticle.FieldSummary:
		m.ClearSummary()
		return nil
	case feedarticle.FieldAuthor:
		m.ClearAuthor()
		return nil
	case feedarticle.FieldPublishedAt:
		m.ClearPublishedAt()
		return nil
	}
	return fmt.Errorf("unknown FeedArticle nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FeedArticleMutation) ResetField(name string) error {
	switch name {
	case feedarticle.FieldFeedID:
		m.ResetFeedID()
		return nil
	case feedarticle.FieldGUID:
		m.ResetGUID()
		return nil
	case feedarticle.FieldTitle:
		m.ResetTitle()
		return nil
	case feedarticle.FieldURL:
		m.ResetURL()
		return nil
	case feedarticle.FieldContent:
		m.ResetContent()
		return nil
	case feedarticle.FieldSummary:
		m.ResetSummary()
		return nil
	case feedarticle.FieldAuthor:
		m.ResetAuthor()
		return nil
	case feedarticle.FieldContentHash:
		m.ResetContentHash()
		return nil
	case feedarticle.FieldEnriched:
		m.ResetEnriched()
		return nil
	case feedarticle.FieldPublishedAt:
		m.ResetPublishedAt()
		return nil
	case feedarticle.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown FeedArticle field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FeedArticleMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.feed != nil {
		edges = append(edges, feedarticle.EdgeFeed)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FeedArticleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case feedarticle.EdgeFeed:
		if id := m.feed; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FeedArticleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FeedArticleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FeedArticleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedfeed {
		edges = append(edges, feedarticle.EdgeFeed)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FeedArticleMutation) EdgeCleared(name string) bool {
	switch name {
	case feedarticle.EdgeFeed:
		return m.clearedfeed
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FeedArticleMutation) ClearEdge(name string) error {
	switch name {
	case feedarticle.EdgeFeed:
		m.ClearFeed()
		return nil
	}
	return fmt.Errorf("unknown FeedArticle unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FeedArticleMutation) ResetEdge(name string) error {
	switch name {
	case feedarticle.EdgeFeed:
		m.ResetFeed()
		return nil
	}
	return fmt.Errorf("unknown FeedArticle edge %s", name)
}

// MessageReactionMutation represents an operation that mutates the MessageReaction nodes in the graph.
type MessageReactionMutation struct {
	config
	op             Op
	typ            string
	id             *string
	user_id        *string
	emoji          *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	message        *string
	clearedmessage bool
	done           bool
	oldValue       func(context.Context) (*MessageReaction, error)
	predicates     []predicate.MessageReaction
}

var _ ent.Mutation = (*MessageReactionMutation)(nil)

// messagereactionOption allows management of the mutation configuration using functional options.
type messagereactionOption func(*MessageReactionMutation)

// newMessageReactionMutation creates new mutation for the MessageReaction entity.
func newMessageReactionMutation(c config, op Op, opts ...messagereactionOption) *MessageReactionMutation {
	m := &MessageReactionMutation{
		config:        c,
		op:            op,
		typ:           TypeMessageReaction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageReactionID sets the ID field of the mutation.
func withMessageReactionID(id string) messagereactionOption {
	return func(m *MessageReactionMutation) {
		var (
			err   error
			once  sync.Once
			value *MessageReaction
		)
		m.oldValue = func(ctx context.Context) (*MessageReaction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MessageReaction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessageReaction sets the old MessageReaction of the mutation.
func withMessageReaction(node *MessageReaction) messagereactionOption {
	return func(m *MessageReactionMutation) {
		m.oldValue = func(context.Context) (*MessageReaction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageReactionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageReactionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MessageReaction entities.
func (m *MessageReactionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageReactionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageReactionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MessageReaction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMessageID sets the "message_id" field.
func (m *MessageReactionMutation) SetMessageID(s string) {
	m.message = &s
}

// MessageID returns the value of the "message_id" field in the mutation.
func (m *MessageReactionMutation) MessageID() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageID returns the old "message_id" field's value of the MessageReaction entity.
// If the MessageReaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageReactionMutation) OldMessageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageID: %w", err)
	}
	return oldValue.MessageID, nil
}

// ResetMessageID resets all changes to the "message_id" field.
func (m *MessageReactionMutation) ResetMessageID() {
	m.message = nil
}

// SetUserID sets the "user_id" field.
func (m *MessageReactionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *MessageReactionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the MessageReaction entity.
// If the MessageReaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageReactionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *MessageReactionMutation) ResetUserID() {
	m.user_id = nil
}

// SetEmoji sets the "emoji" field.
func (m *MessageReactionMutation) SetEmoji(s string) {
	m.emoji = &s
}

// Emoji returns the value of the "emoji" field in the mutation.
func (m *MessageReactionMutation) Emoji() (r string, exists bool) {
	v := m.emoji
	if v == nil {
		return
	}
	return *v, true
}

// OldEmoji returns the old "emoji" field's value of the MessageReaction entity.
// If the MessageReaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageReactionMutation) OldEmoji(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmoji is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmoji requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmoji: %w", err)
	}
	return oldValue.Emoji, nil
}

// ResetEmoji resets all changes to the "emoji" field.
func (m *MessageReactionMutation) ResetEmoji() {
	m.emoji = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MessageReactionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MessageReactionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MessageReaction entity.
// If the MessageReaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageReactionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MessageReactionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearMessage clears the "message" edge to the RoomMessage entity.
func (m *MessageReactionMutation) ClearMessage() {
	m.clearedmessage = true
	m.clearedFields[messagereaction.FieldMessageID] = struct{}{}
}

// MessageCleared reports if the "message" edge to the RoomMessage entity was cleared.
func (m *MessageReactionMutation) MessageCleared() bool {
	return m.clearedmessage
}

// MessageIDs returns the "message" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MessageID instead. It exists only for internal usage by the builders.
func (m *MessageReactionMutation) MessageIDs() (ids []string) {
	if id := m.message; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMessage resets all changes to the "message" edge.
func (m *MessageReactionMutation) ResetMessage() {
	m.message = nil
	m.clearedmessage = false
}

// Where appends a list predicates to the MessageReactionMutation builder.
func (m *MessageReactionMutation) Where(ps ...predicate.MessageReaction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageReactionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageReactionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MessageReaction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageReactionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageReactionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MessageReaction).
func (m *MessageReactionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageReactionMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.message != nil {
		fields = append(fields, messagereaction.FieldMessageID)
	}
	if m.user_id != nil {
		fields = append(fields, messagereaction.FieldUserID)
	}
	if m.emoji != nil {
		fields = append(fields, messagereaction.FieldEmoji)
	}
	if m.created_at != nil {
		fields = append(fields, messagereaction.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageReactionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case messagereaction.FieldMessageID:
		return m.MessageID()
	case messagereaction.FieldUserID:
		return m.UserID()
	case messagereaction.FieldEmoji:
		return m.Emoji()
	case messagereaction.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageReactionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case messagereaction.FieldMessageID:
		return m.OldMessageID(ctx)
	case messagereaction.FieldUserID:
		return m.OldUserID(ctx)
	case messagereaction.FieldEmoji:
		return m.OldEmoji(ctx)
	case messagereaction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MessageReaction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageReactionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case messagereaction.FieldMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageID(v)
		return nil
	case messagereaction.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case messagereaction.FieldEmoji:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmoji(v)
		return nil
	case messagereaction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MessageReaction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageReactionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageReactionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageReactionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown MessageReaction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageReactionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageReactionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageReactionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown MessageReaction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageReactionMutation) ResetField(name string) error {
	switch name {
	case messagereaction.FieldMessageID:
		m.ResetMessageID()
		return nil
	case messagereaction.FieldUserID:
		m.ResetUserID()
		return nil
	case messagereaction.FieldEmoji:
		m.ResetEmoji()
		return nil
	case messagereaction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown MessageReaction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageReactionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.message != nil {
		edges = append(edges, messagereaction.EdgeMessage)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageReactionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case messagereaction.EdgeMessage:
		if id := m.message; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageReactionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageReactionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageReactionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmessage {
		edges = append(edges, messagereaction.EdgeMessage)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageReactionMutation) EdgeCleared(name string) bool {
	switch name {
	case messagereaction.EdgeMessage:
		return m.clearedmessage
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageReactionMutation) ClearEdge(name string) error {
	switch name {
	case messagereaction.EdgeMessage:
		m.ClearMessage()
		return nil
	}
	return fmt.Errorf("unknown MessageReaction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageReactionMutation) ResetEdge(name string) error {
	switch name {
	case messagereaction.EdgeMessage:
		m.ResetMessage()
		return nil
	}
	return fmt.Errorf("unknown MessageReaction edge %s", name)
}

// PresenceMutation represents an operation that mutates the Presence nodes in the graph.
type PresenceMutation struct {
	config
	op            Op
	typ           string
	id            *string
	user_id       *string
	status        *presence.Status
	last_seen_at  *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Presence, error)
	predicates    []predicate.Presence
}

var _ ent.Mutation = (*PresenceMutation)(nil)

// presenceOption allows management of the mutation configuration using functional options.
type presenceOption func(*PresenceMutation)

// newPresenceMutation creates new mutation for the Presence entity.
func newPresenceMutation(c config, op Op, opts ...presenceOption) *PresenceMutation {
	m := &PresenceMutation{
		config:        c,
		op:            op,
		typ:           TypePresence,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPresenceID sets the ID field of the mutation.
func withPresenceID(id string) presenceOption {
	return func(m *PresenceMutation) {
		var (
			err   error
			once  sync.Once
			value *Presence
		)
		m.oldValue = func(ctx context.Context) (*Presence, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Presence.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPresence sets the old Presence of the mutation.
func withPresence(node *Presence) presenceOption {
	return func(m *PresenceMutation) {
		m.oldValue = func(context.Context) (*Presence, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PresenceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PresenceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Presence entities.
func (m *PresenceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PresenceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PresenceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Presence.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *PresenceMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PresenceMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Presence entity.
// If the Presence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PresenceMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PresenceMutation) ResetUserID() {
	m.user_id = nil
}

// SetStatus sets the "status" field.
func (m *PresenceMutation) SetStatus(pr presence.Status) {
	m.status = &pr
}

// Status returns the value of the "status" field in the mutation.
func (m *PresenceMutation) Status() (r presence.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Presence entity.
// If the Presence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PresenceMutation) OldStatus(ctx context.Context) (v presence.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PresenceMutation) ResetStatus() {
	m.status = nil
}

// SetLastSeenAt sets the "last_seen_at" field.
func (m *PresenceMutation) SetLastSeenAt(t time.Time) {
	m.last_seen_at = &t
}

// LastSeenAt returns the value of the "last_seen_at" field in the mutation.
func (m *PresenceMutation) LastSeenAt() (r time.Time, exists bool) {
	v := m.last_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeenAt returns the old "last_seen_at" field's value of the Presence entity.
// If the Presence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PresenceMutation) OldLastSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeenAt: %w", err)
	}
	return oldValue.LastSeenAt, nil
}

// ResetLastSeenAt resets all changes to the "last_seen_at" field.
func (m *PresenceMutation) ResetLastSeenAt() {
	m.last_seen_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PresenceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PresenceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Presence entity.
// If the Presence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PresenceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PresenceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the PresenceMutation builder.
func (m *PresenceMutation) Where(ps ...predicate.Presence) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PresenceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PresenceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Presence, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PresenceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PresenceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Presence).
func (m *PresenceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PresenceMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.user_id != nil {
		fields = append(fields, presence.FieldUserID)
	}
	if m.status != nil {
		fields = append(fields, presence.FieldStatus)
	}
	if m.last_seen_at != nil {
		fields = append(fields, presence.FieldLastSeenAt)
	}
	if m.updated_at != nil {
		fields = append(fields, presence.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PresenceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case presence.FieldUserID:
		return m.UserID()
	case presence.FieldStatus:
		return m.Status()
	case presence.FieldLastSeenAt:
		return m.LastSeenAt()
	case presence.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PresenceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case presence.FieldUserID:
		return m.OldUserID(ctx)
	case presence.FieldStatus:
		return m.OldStatus(ctx)
	case presence.FieldLastSeenAt:
		return m.OldLastSeenAt(ctx)
	case presence.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Presence field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PresenceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case presence.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case presence.FieldStatus:
		v, ok := value.(presence.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case presence.FieldLastSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeenAt(v)
		return nil
	case presence.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Presence field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PresenceMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PresenceMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PresenceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Presence numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PresenceMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PresenceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PresenceMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Presence nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PresenceMutation) ResetField(name string) error {
	switch name {
	case presence.FieldUserID:
		m.ResetUserID()
		return nil
	case presence.FieldStatus:
		m.ResetStatus()
		return nil
	case presence.FieldLastSeenAt:
		m.ResetLastSeenAt()
		return nil
	case presence.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Presence field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PresenceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PresenceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PresenceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PresenceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PresenceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PresenceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PresenceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Presence unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PresenceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Presence edge %s", name)
}

// RoomMutation represents an operation that mutates the Room nodes in the graph.
type RoomMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	name                *string
	created_by          *string
	last_seq            *int64
	addlast_seq         *int64
	last_message_at     *time.Time
	created_at          *time.Time
	deleted_at          *time.Time
	clearedFields       map[string]struct{}
	participants        map[string]struct{}
	removedparticipants map[string]struct{}
	clearedparticipants bool
	messages            map[string]struct{}
	removedmessages     map[string]struct{}
	clearedmessages     bool
	done                bool
	oldValue            func(context.Context) (*Room, error)
	predicates          []predicate.Room
}

var _ ent.Mutation = (*RoomMutation)(nil)

// roomOption allows management of the mutation configuration using functional options.
type roomOption func(*RoomMutation)

// newRoomMutation creates new mutation for the Room entity.
func newRoomMutation(c config, op Op, opts ...roomOption) *RoomMutation {
	m := &RoomMutation{
		config:        c,
		op:            op,
		typ:           TypeRoom,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRoomID sets the ID field of the mutation.
func withRoomID(id string) roomOption {
	return func(m *RoomMutation) {
		var (
			err   error
			once  sync.Once
			value *Room
		)
		m.oldValue = func(ctx context.Context) (*Room, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Room.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRoom sets the old Room of the mutation.
func withRoom(node *Room) roomOption {
	return func(m *RoomMutation) {
		m.oldValue = func(context.Context) (*Room, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RoomMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RoomMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Room entities.
func (m *RoomMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RoomMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RoomMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Room.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *RoomMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *RoomMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Room entity.
// If the Room object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *RoomMutation) ResetName() {
	m.name = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *RoomMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *RoomMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Room entity.
// If the Room object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *RoomMutation) ResetCreatedBy() {
	m.created_by = nil
}

// SetLastSeq sets the "last_seq" field.
func (m *RoomMutation) SetLastSeq(i int64) {
	m.last_seq = &i
	m.addlast_seq = nil
}

// LastSeq returns the value of the "last_seq" field in the mutation.
func (m *RoomMutation) LastSeq() (r int64, exists bool) {
	v := m.last_seq
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeq returns the old "last_seq" field's value of the Room entity.
// If the Room object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMutation) OldLastSeq(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeq: %w", err)
	}
	return oldValue.LastSeq, nil
}

// AddLastSeq adds i to the "last_seq" field.
func (m *RoomMutation) AddLastSeq(i int64) {
	if m.addlast_seq != nil {
		*m.addlast_seq += i
	} else {
		m.addlast_seq = &i
	}
}

// AddedLastSeq returns the value that was added to the "last_seq" field in this mutation.
func (m *RoomMutation) AddedLastSeq() (r int64, exists bool) {
	v := m.addlast_seq
	if v == nil {
		return
	}
	return *v, true
}

// ResetLastSeq resets all changes to the "last_seq" field.
func (m *RoomMutation) ResetLastSeq() {
	m.last_seq = nil
	m.addlast_seq = nil
}

// SetLastMessageAt sets the "last_message_at" field.
func (m *RoomMutation) SetLastMessageAt(t time.Time) {
	m.last_message_at = &t
}

// LastMessageAt returns the value of the "last_message_at" field in the mutation.
func (m *RoomMutation) LastMessageAt() (r time.Time, exists bool) {
	v := m.last_message_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastMessageAt returns the old "last_message_at" field's value of the Room entity.
// If the Room object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMutation) OldLastMessageAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastMessageAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastMessageAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastMessageAt: %w", err)
	}
	return oldValue.LastMessageAt, nil
}

// ClearLastMessageAt clears the value of the "last_message_at" field.
func (m *RoomMutation) ClearLastMessageAt() {
	m.last_message_at = nil
	m.clearedFields[room.FieldLastMessageAt] = struct{}{}
}

// LastMessageAtCleared returns if the "last_message_at" field was cleared in this mutation.
func (m *RoomMutation) LastMessageAtCleared() bool {
	_, ok := m.clearedFields[room.FieldLastMessageAt]
	return ok
}

// ResetLastMessageAt resets all changes to the "last_message_at" field.
func (m *RoomMutation) ResetLastMessageAt() {
	m.last_message_at = nil
	delete(m.clearedFields, room.FieldLastMessageAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *RoomMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RoomMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Room entity.
// If the Room object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RoomMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *RoomMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *RoomMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Room entity.
// If the Room object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *RoomMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[room.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *RoomMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[room.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *RoomMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, room.FieldDeletedAt)
}

// AddParticipantIDs adds the "participants" edge to the RoomParticipant entity by ids.
func (m *RoomMutation) AddParticipantIDs(ids ...string) {
	if m.participants == nil {
		m.participants = make(map[string]struct{})
	}
	for i := range ids {
		m.participants[ids[i]] = struct{}{}
	}
}

// ClearParticipants clears the "participants" edge to the RoomParticipant entity.
func (m *RoomMutation) ClearParticipants() {
	m.clearedparticipants = true
}

// ParticipantsCleared reports if the "participants" edge to the RoomParticipant entity was cleared.
func (m *RoomMutation) ParticipantsCleared() bool {
	return m.clearedparticipants
}

// RemoveParticipantIDs removes the "participants" edge to the RoomParticipant entity by IDs.
func (m *RoomMutation) RemoveParticipantIDs(ids ...string) {
	if m.removedparticipants == nil {
		m.removedparticipants = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.participants, ids[i])
		m.removedparticipants[ids[i]] = struct{}{}
	}
}

// RemovedParticipants returns the removed IDs of the "participants" edge to the RoomParticipant entity.
func (m *RoomMutation) RemovedParticipantsIDs() (ids []string) {
	for id := range m.removedparticipants {
		ids = append(ids, id)
	}
	return
}

// ParticipantsIDs returns the "participants" edge IDs in the mutation.
func (m *RoomMutation) ParticipantsIDs() (ids []string) {
	for id := range m.participants {
		ids = append(ids, id)
	}
	return
}

// ResetParticipants resets all changes to the "participants" edge.
func (m *RoomMutation) ResetParticipants() {
	m.participants = nil
	m.clearedparticipants = false
	m.removedparticipants = nil
}

// AddMessageIDs adds the "messages" edge to the RoomMessage entity by ids.
func (m *RoomMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the RoomMessage entity.
func (m *RoomMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the RoomMessage entity was cleared.
func (m *RoomMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the RoomMessage entity by IDs.
func (m *RoomMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the RoomMessage entity.
func (m *RoomMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *RoomMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *RoomMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// Where appends a list predicates to the RoomMutation builder.
func (m *RoomMutation) Where(ps ...predicate.Room) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RoomMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RoomMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Room, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RoomMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RoomMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Room).
func (m *RoomMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RoomMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.name != nil {
		fields = append(fields, room.FieldName)
	}
	if m.created_by != nil {
		fields = append(fields, room.FieldCreatedBy)
	}
	if m.last_seq != nil {
		fields = append(fields, room.FieldLastSeq)
	}
	if m.last_message_at != nil {
		fields = append(fields, room.FieldLastMessageAt)
	}
	if m.created_at != nil {
		fields = append(fields, room.FieldCreatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, room.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RoomMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case room.FieldName:
		return m.Name()
	case room.FieldCreatedBy:
		return m.CreatedBy()
	case room.FieldLastSeq:
		return m.LastSeq()
	case room.FieldLastMessageAt:
		return m.LastMessageAt()
	case room.FieldCreatedAt:
		return m.CreatedAt()
	case room.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RoomMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case room.FieldName:
		return m.OldName(ctx)
	case room.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case room.FieldLastSeq:
		return m.OldLastSeq(ctx)
	case room.FieldLastMessageAt:
		return m.OldLastMessageAt(ctx)
	case room.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case room.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Room field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoomMutation) SetField(name string, value ent.Value) error {
	switch name {
	case room.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case room.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case room.FieldLastSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeq(v)
		return nil
	case room.FieldLastMessageAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastMessageAt(v)
		return nil
	case room.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case room.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Room field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RoomMutation) AddedFields() []string {
	var fields []string
	if m.addlast_seq != nil {
		fields = append(fields, room.FieldLastSeq)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RoomMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case room.FieldLastSeq:
		return m.AddedLastSeq()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoomMutation) AddField(name string, value ent.Value) error {
	switch name {
	case room.FieldLastSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastSeq(v)
		return nil
	}
	return fmt.Errorf("unknown Room numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RoomMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(room.FieldLastMessageAt) {
		fields = append(fields, room.FieldLastMessageAt)
	}
	if m.FieldCleared(room.FieldDeletedAt) {
		fields = append(fields, room.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RoomMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RoomMutation) ClearField(name string) error {
	switch name {
	case room.FieldLastMessageAt:
		m.ClearLastMessageAt()
		return nil
	case room.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Room nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RoomMutation) ResetField(name string) error {
	switch name {
	case room.FieldName:
		m.ResetName()
		return nil
	case room.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case room.FieldLastSeq:
		m.ResetLastSeq()
		return nil
	case room.FieldLastMessageAt:
		m.ResetLastMessageAt()
		return nil
	case room.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case room.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Room field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RoomMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.participants != nil {
		edges = append(edges, room.EdgeParticipants)
	}
	if m.messages != nil {
		edges = append(edges, room.EdgeMessages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RoomMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case room.EdgeParticipants:
		ids := make([]ent.Value, 0, len(m.participants))
		for id := range m.participants {
			ids = append(ids, id)
		}
		return ids
	case room.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RoomMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedparticipants != nil {
		edges = append(edges, room.EdgeParticipants)
	}
	if m.removedmessages != nil {
		edges = append(edges, room.EdgeMessages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RoomMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case room.EdgeParticipants:
		ids := make([]ent.Value, 0, len(m.removedparticipants))
		for id := range m.removedparticipants {
			ids = append(ids, id)
		}
		return ids
	case room.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RoomMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedparticipants {
		edges = append(edges, room.EdgeParticipants)
	}
	if m.clearedmessages {
		edges = append(edges, room.EdgeMessages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RoomMutation) EdgeCleared(name string) bool {
	switch name {
	case room.EdgeParticipants:
		return m.clearedparticipants
	case room.EdgeMessages:
		return m.clearedmessages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RoomMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Room unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RoomMutation) ResetEdge(name string) error {
	switch name {
	case room.EdgeParticipants:
		m.ResetParticipants()
		return nil
	case room.EdgeMessages:
		m.ResetMessages()
		return nil
	}
	return fmt.Errorf("unknown Room edge %s", name)
}

// RoomMessageMutation represents an operation that mutates the RoomMessage nodes in the graph.
type RoomMessageMutation struct {
	config
	op               Op
	typ              string
	id               *string
	sender_id        *string
	seq              *int64
	addseq           *int64
	ciphertext       *[]byte
	nonce            *[]byte
	wrapped_dek      *[]byte
	dek_nonce        *[]byte
	key_version      *int
	addkey_version   *int
	created_at       *time.Time
	deleted_at       *time.Time
	clearedFields    map[string]struct{}
	room             *string
	clearedroom      bool
	reactions        map[string]struct{}
	removedreactions map[string]struct{}
	clearedreactions bool
	done             bool
	oldValue         func(context.Context) (*RoomMessage, error)
	predicates       []predicate.RoomMessage
}

var _ ent.Mutation = (*RoomMessageMutation)(nil)

// roommessageOption allows management of the mutation configuration using functional options.
type roommessageOption func(*RoomMessageMutation)

// newRoomMessageMutation creates new mutation for the RoomMessage entity.
func newRoomMessageMutation(c config, op Op, opts ...roommessageOption) *RoomMessageMutation {
	m := &RoomMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeRoomMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRoomMessageID sets the ID field of the mutation.
func withRoomMessageID(id string) roommessageOption {
	return func(m *RoomMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *RoomMessage
		)
		m.oldValue = func(ctx context.Context) (*RoomMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RoomMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRoomMessage sets the old RoomMessage of the mutation.
func withRoomMessage(node *RoomMessage) roommessageOption {
	return func(m *RoomMessageMutation) {
		m.oldValue = func(context.Context) (*RoomMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RoomMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RoomMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RoomMessage entities.
func (m *RoomMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RoomMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RoomMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RoomMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRoomID sets the "room_id" field.
func (m *RoomMessageMutation) SetRoomID(s string) {
	m.room = &s
}

// RoomID returns the value of the "room_id" field in the mutation.
func (m *RoomMessageMutation) RoomID() (r string, exists bool) {
	v := m.room
	if v == nil {
		return
	}
	return *v, true
}

// OldRoomID returns the old "room_id" field's value of the RoomMessage entity.
// If the RoomMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMessageMutation) OldRoomID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoomID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoomID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoomID: %w", err)
	}
	return oldValue.RoomID, nil
}

// ResetRoomID resets all changes to the "room_id" field.
func (m *RoomMessageMutation) ResetRoomID() {
	m.room = nil
}

// SetSenderID sets the "sender_id" field.
func (m *RoomMessageMutation) SetSenderID(s string) {
	m.sender_id = &s
}

// SenderID returns the value of the "sender_id" field in the mutation.
func (m *RoomMessageMutation) SenderID() (r string, exists bool) {
	v := m.sender_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSenderID returns the old "sender_id" field's value of the RoomMessage entity.
// If the RoomMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMessageMutation) OldSenderID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSenderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSenderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSenderID: %w", err)
	}
	return oldValue.SenderID, nil
}

// ResetSenderID resets all changes to the "sender_id" field.
func (m *RoomMessageMutation) ResetSenderID() {
	m.sender_id = nil
}

// SetSeq sets the "seq" field.
func (m *RoomMessageMutation) SetSeq(i int64) {
	m.seq = &i
	m.addseq = nil
}

// Seq returns the value of the "seq" field in the mutation.
func (m *RoomMessageMutation) Seq() (r int64, exists bool) {
	v := m.seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSeq returns the old "seq" field's value of the RoomMessage entity.
// If the RoomMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMessageMutation) OldSeq(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeq: %w", err)
	}
	return oldValue.Seq, nil
}

// AddSeq adds i to the "seq" field.
func (m *RoomMessageMutation) AddSeq(i int64) {
	if m.addseq != nil {
		*m.addseq += i
	} else {
		m.addseq = &i
	}
}

// AddedSeq returns the value that was added to the "seq" field in this mutation.
func (m *RoomMessageMutation) AddedSeq() (r int64, exists bool) {
	v := m.addseq
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeq resets all changes to the "seq" field.
func (m *RoomMessageMutation) ResetSeq() {
	m.seq = nil
	m.addseq = nil
}

// SetCiphertext sets the "ciphertext" field.
func (m *RoomMessageMutation) SetCiphertext(b []byte) {
	m.ciphertext = &b
}

// Ciphertext returns the value of the "ciphertext" field in the mutation.
func (m *RoomMessageMutation) Ciphertext() (r []byte, exists bool) {
	v := m.ciphertext
	if v == nil {
		return
	}
	return *v, true
}

// OldCiphertext returns the old "ciphertext" field's value of the RoomMessage entity.
// If the RoomMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMessageMutation) OldCiphertext(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCiphertext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCiphertext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCiphertext: %w", err)
	}
	return oldValue.Ciphertext, nil
}

// ClearCiphertext clears the value of the "ciphertext" field.
func (m *RoomMessageMutation) ClearCiphertext() {
	m.ciphertext = nil
	m.clearedFields[roommessage.FieldCiphertext] = struct{}{}
}

// CiphertextCleared returns if the "ciphertext" field was cleared in this mutation.
func (m *RoomMessageMutation) CiphertextCleared() bool {
	_, ok := m.clearedFields[roommessage.FieldCiphertext]
	return ok
}

// ResetCiphertext resets all changes to the "ciphertext" field.
func (m *RoomMessageMutation) ResetCiphertext() {
	m.ciphertext = nil
	delete(m.clearedFields, roommessage.FieldCiphertext)
}

// SetNonce sets the "nonce" field.
func (m *RoomMessageMutation) SetNonce(b []byte) {
	m.nonce = &b
}

// Nonce returns the value of the "nonce" field in the mutation.
func (m *RoomMessageMutation) Nonce() (r []byte, exists bool) {
	v := m.nonce
	if v == nil {
		return
	}
	return *v, true
}

// OldNonce returns the old "nonce" field's value of the RoomMessage entity.
// If the RoomMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMessageMutation) OldNonce(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNonce is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNonce requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNonce: %w", err)
	}
	return oldValue.Nonce, nil
}

// ClearNonce clears the value of the "nonce" field.
func (m *RoomMessageMutation) ClearNonce() {
	m.nonce = nil
	m.clearedFields[roommessage.FieldNonce] = struct{}{}
}

// NonceCleared returns if the "nonce" field was cleared in this mutation.
func (m *RoomMessageMutation) NonceCleared() bool {
	_, ok := m.clearedFields[roommessage.FieldNonce]
	return ok
}

// ResetNonce resets all changes to the "nonce" field.
func (m *RoomMessageMutation) ResetNonce() {
	m.nonce = nil
	delete(m.clearedFields, roommessage.FieldNonce)
}

// SetWrappedDek sets the "wrapped_dek" field.
func (m *RoomMessageMutation) SetWrappedDek(b []byte) {
	m.wrapped_dek = &b
}

// WrappedDek returns the value of the "wrapped_dek" field in the mutation.
func (m *RoomMessageMutation) WrappedDek() (r []byte, exists bool) {
	v := m.wrapped_dek
	if v == nil {
		return
	}
	return *v, true
}

// OldWrappedDek returns the old "wrapped_dek" field's value of the RoomMessage entity.
// If the RoomMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMessageMutation) OldWrappedDek(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWrappedDek is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWrappedDek requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWrappedDek: %w", err)
	}
	return oldValue.WrappedDek, nil
}

// ClearWrappedDek clears the value of the "wrapped_dek" field.
func (m *RoomMessageMutation) ClearWrappedDek() {
	m.wrapped_dek = nil
	m.clearedFields[roommessage.FieldWrappedDek] = struct{}{}
}

// WrappedDekCleared returns if the "wrapped_dek" field was cleared in this mutation.
func (m *RoomMessageMutation) WrappedDekCleared() bool {
	_, ok := m.clearedFields[roommessage.FieldWrappedDek]
	return ok
}

// ResetWrappedDek resets all changes to the "wrapped_dek" field.
func (m *RoomMessageMutation) ResetWrappedDek() {
	m.wrapped_dek = nil
	delete(m.clearedFields, roommessage.FieldWrappedDek)
}

// SetDekNonce sets the "dek_nonce" field.
func (m *RoomMessageMutation) SetDekNonce(b []byte) {
	m.dek_nonce = &b
}

// DekNonce returns the value of the "dek_nonce" field in the mutation.
func (m *RoomMessageMutation) DekNonce() (r []byte, exists bool) {
	v := m.dek_nonce
	if v == nil {
		return
	}
	return *v, true
}

// OldDekNonce returns the old "dek_nonce" field's value of the RoomMessage entity.
// If the RoomMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMessageMutation) OldDekNonce(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDekNonce is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDekNonce requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDekNonce: %w", err)
	}
	return oldValue.DekNonce, nil
}

// ClearDekNonce clears the value of the "dek_nonce" field.
func (m *RoomMessageMutation) ClearDekNonce() {
	m.dek_nonce = nil
	m.clearedFields[roommessage.FieldDekNonce] = struct{}{}
}

// DekNonceCleared returns if the "dek_nonce" field was cleared in this mutation.
func (m *RoomMessageMutation) DekNonceCleared() bool {
	_, ok := m.clearedFields[roommessage.FieldDekNonce]
	return ok
}

// ResetDekNonce resets all changes to the "dek_nonce" field.
func (m *RoomMessageMutation) ResetDekNonce() {
	m.dek_nonce = nil
	delete(m.clearedFields, roommessage.FieldDekNonce)
}

// SetKeyVersion sets the "key_version" field.
func (m *RoomMessageMutation) SetKeyVersion(i int) {
	m.key_version = &i
	m.addkey_version = nil
}

// KeyVersion returns the value of the "key_version" field in the mutation.
func (m *RoomMessageMutation) KeyVersion() (r int, exists bool) {
	v := m.key_version
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyVersion returns the old "key_version" field's value of the RoomMessage entity.
// If the RoomMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMessageMutation) OldKeyVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyVersion: %w", err)
	}
	return oldValue.KeyVersion, nil
}

// AddKeyVersion adds i to the "key_version" field.
func (m *RoomMessageMutation) AddKeyVersion(i int) {
	if m.addkey_version != nil {
		*m.addkey_version += i
	} else {
		m.addkey_version = &i
	}
}

// AddedKeyVersion returns the value that was added to the "key_version" field in this mutation.
func (m *RoomMessageMutation) AddedKeyVersion() (r int, exists bool) {
	v := m.addkey_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetKeyVersion resets all changes to the "key_version" field.
func (m *RoomMessageMutation) ResetKeyVersion() {
	m.key_version = nil
	m.addkey_version = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RoomMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RoomMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RoomMessage entity.
// If the RoomMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RoomMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *RoomMessageMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *RoomMessageMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the RoomMessage entity.
// If the RoomMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMessageMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *RoomMessageMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[roommessage.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *RoomMessageMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[roommessage.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *RoomMessageMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, roommessage.FieldDeletedAt)
}

// ClearRoom clears the "room" edge to the Room entity.
func (m *RoomMessageMutation) ClearRoom() {
	m.clearedroom = true
	m.clearedFields[roommessage.FieldRoomID] = struct{}{}
}

// RoomCleared reports if the "room" edge to the Room entity was cleared.
func (m *RoomMessageMutation) RoomCleared() bool {
	return m.clearedroom
}

// RoomIDs returns the "room" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RoomID instead. It exists only for internal usage by the builders.
func (m *RoomMessageMutation) RoomIDs() (ids []string) {
	if id := m.room; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRoom resets all changes to the "room" edge.
func (m *RoomMessageMutation) ResetRoom() {
	m.room = nil
	m.clearedroom = false
}

// AddReactionIDs adds the "reactions" edge to the MessageReaction entity by ids.
func (m *RoomMessageMutation) AddReactionIDs(ids ...string) {
	if m.reactions == nil {
		m.reactions = make(map[string]struct{})
	}
	for i := range ids {
		m.reactions[ids[i]] = struct{}{}
	}
}

// ClearReactions clears the "reactions" edge to the MessageReaction entity.
func (m *RoomMessageMutation) ClearReactions() {
	m.clearedreactions = true
}

// ReactionsCleared reports if the "reactions" edge to the MessageReaction entity was cleared.
func (m *RoomMessageMutation) ReactionsCleared() bool {
	return m.clearedreactions
}

// RemoveReactionIDs removes the "reactions" edge to the MessageReaction entity by IDs.
func (m *RoomMessageMutation) RemoveReactionIDs(ids ...string) {
	if m.removedreactions == nil {
		m.removedreactions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.reactions, ids[i])
		m.removedreactions[ids[i]] = struct{}{}
	}
}

// RemovedReactions returns the removed IDs of the "reactions" edge to the MessageReaction entity.
func (m *RoomMessageMutation) RemovedReactionsIDs() (ids []string) {
	for id := range m.removedreactions {
		ids = append(ids, id)
	}
	return
}

// ReactionsIDs returns the "reactions" edge IDs in the mutation.
func (m *RoomMessageMutation) ReactionsIDs() (ids []string) {
	for id := range m.reactions {
		ids = append(ids, id)
	}
	return
}

// ResetReactions resets all changes to the "reactions" edge.
func (m *RoomMessageMutation) ResetReactions() {
	m.reactions = nil
	m.clearedreactions = false
	m.removedreactions = nil
}

// Where appends a list predicates to the RoomMessageMutation builder.
func (m *RoomMessageMutation) Where(ps ...predicate.RoomMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RoomMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RoomMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RoomMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RoomMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RoomMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RoomMessage).
func (m *RoomMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RoomMessageMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.room != nil {
		fields = append(fields, roommessage.FieldRoomID)
	}
	if m.sender_id != nil {
		fields = append(fields, roommessage.FieldSenderID)
	}
	if m.seq != nil {
		fields = append(fields, roommessage.FieldSeq)
	}
	if m.ciphertext != nil {
		fields = append(fields, roommessage.FieldCiphertext)
	}
	if m.nonce != nil {
		fields = append(fields, roommessage.FieldNonce)
	}
	if m.wrapped_dek != nil {
		fields = append(fields, roommessage.FieldWrappedDek)
	}
	if m.dek_nonce != nil {
		fields = append(fields, roommessage.FieldDekNonce)
	}
	if m.key_version != nil {
		fields = append(fields, roommessage.FieldKeyVersion)
	}
	if m.created_at != nil {
		fields = append(fields, roommessage.FieldCreatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, roommessage.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RoomMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case roommessage.FieldRoomID:
		return m.RoomID()
	case roommessage.FieldSenderID:
		return m.SenderID()
	case roommessage.FieldSeq:
		return m.Seq()
	case roommessage.FieldCiphertext:
		return m.Ciphertext()
	case roommessage.FieldNonce:
		return m.Nonce()
	case roommessage.FieldWrappedDek:
		return m.WrappedDek()
	case roommessage.FieldDekNonce:
		return m.DekNonce()
	case roommessage.FieldKeyVersion:
		return m.KeyVersion()
	case roommessage.FieldCreatedAt:
		return m.CreatedAt()
	case roommessage.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RoomMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case roommessage.FieldRoomID:
		return m.OldRoomID(ctx)
	case roommessage.FieldSenderID:
		return m.OldSenderID(ctx)
	case roommessage.FieldSeq:
		return m.OldSeq(ctx)
	case roommessage.FieldCiphertext:
		return m.OldCiphertext(ctx)
	case roommessage.FieldNonce:
		return m.OldNonce(ctx)
	case roommessage.FieldWrappedDek:
		return m.OldWrappedDek(ctx)
	case roommessage.FieldDekNonce:
		return m.OldDekNonce(ctx)
	case roommessage.FieldKeyVersion:
		return m.OldKeyVersion(ctx)
	case roommessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case roommessage.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RoomMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoomMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case roommessage.FieldRoomID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoomID(v)
		return nil
	case roommessage.FieldSenderID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSenderID(v)
		return nil
	case roommessage.FieldSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeq(v)
		return nil
	case roommessage.FieldCiphertext:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCiphertext(v)
		return nil
	case roommessage.FieldNonce:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNonce(v)
		return nil
	case roommessage.FieldWrappedDek:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWrappedDek(v)
		return nil
	case roommessage.FieldDekNonce:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDekNonce(v)
		return nil
	case roommessage.FieldKeyVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyVersion(v)
		return nil
	case roommessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case roommessage.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RoomMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RoomMessageMutation) AddedFields() []string {
	var fields []string
	if m.addseq != nil {
		fields = append(fields, roommessage.FieldSeq)
	}
	if m.addkey_version != nil {
		fields = append(fields, roommessage.FieldKeyVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RoomMessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case roommessage.FieldSeq:
		return m.AddedSeq()
	case roommessage.FieldKeyVersion:
		return m.AddedKeyVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoomMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case roommessage.FieldSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeq(v)
		return nil
	case roommessage.FieldKeyVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddKeyVersion(v)
		return nil
	}
	return fmt.Errorf("unknown RoomMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RoomMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(roommessage.FieldCiphertext) {
		fields = append(fields, roommessage.FieldCiphertext)
	}
	if m.FieldCleared(roommessage.FieldNonce) {
		fields = append(fields, roommessage.FieldNonce)
	}
	if m.FieldCleared(roommessage.FieldWrappedDek) {
		fields = append(fields, roommessage.FieldWrappedDek)
	}
	if m.FieldCleared(roommessage.FieldDekNonce) {
		fields = append(fields, roommessage.FieldDekNonce)
	}
	if m.FieldCleared(roommessage.FieldDeletedAt) {
		fields = append(fields, roommessage.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RoomMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RoomMessageMutation) ClearField(name string) error {
	switch name {
	case roommessage.FieldCiphertext:
		m.ClearCiphertext()
		return nil
	case roommessage.FieldNonce:
		m.ClearNonce()
		return nil
	case roommessage.FieldWrappedDek:
		m.ClearWrappedDek()
		return nil
	case roommessage.FieldDekNonce:
		m.ClearDekNonce()
		return nil
	case roommessage.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown RoomMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RoomMessageMutation) ResetField(name string) error {
	switch name {
	case roommessage.FieldRoomID:
		m.ResetRoomID()
		return nil
	case roommessage.FieldSenderID:
		m.ResetSenderID()
		return nil
	case roommessage.FieldSeq:
		m.ResetSeq()
		return nil
	case roommessage.FieldCiphertext:
		m.ResetCiphertext()
		return nil
	case roommessage.FieldNonce:
		m.ResetNonce()
		return nil
	case roommessage.FieldWrappedDek:
		m.ResetWrappedDek()
		return nil
	case roommessage.FieldDekNonce:
		m.ResetDekNonce()
		return nil
	case roommessage.FieldKeyVersion:
		m.ResetKeyVersion()
		return nil
	case roommessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case roommessage.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown RoomMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RoomMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.room != nil {
		edges = append(edges, roommessage.EdgeRoom)
	}
	if m.reactions != nil {
		edges = append(edges, roommessage.EdgeReactions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RoomMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case roommessage.EdgeRoom:
		if id := m.room; id != nil {
			return []ent.Value{*id}
		}
	case roommessage.EdgeReactions:
		ids := make([]ent.Value, 0, len(m.reactions))
		for id := range m.reactions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RoomMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedreactions != nil {
		edges = append(edges, roommessage.EdgeReactions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RoomMessageMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case roommessage.EdgeReactions:
		ids := make([]ent.Value, 0, len(m.removedreactions))
		for id := range m.removedreactions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RoomMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedroom {
		edges = append(edges, roommessage.EdgeRoom)
	}
	if m.clearedreactions {
		edges = append(edges, roommessage.EdgeReactions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RoomMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case roommessage.EdgeRoom:
		return m.clearedroom
	case roommessage.EdgeReactions:
		return m.clearedreactions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RoomMessageMutation) ClearEdge(name string) error {
	switch name {
	case roommessage.EdgeRoom:
		m.ClearRoom()
		return nil
	}
	return fmt.Errorf("unknown RoomMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RoomMessageMutation) ResetEdge(name string) error {
	switch name {
	case roommessage.EdgeRoom:
		m.ResetRoom()
		return nil
	case roommessage.EdgeReactions:
		m.ResetReactions()
		return nil
	}
	return fmt.Errorf("unknown RoomMessage edge %s", name)
}

// RoomParticipantMutation represents an operation that mutates the RoomParticipant nodes in the graph.
type RoomParticipantMutation struct {
	config
	op               Op
	typ              string
	id               *string
	user_id          *string
	last_read_seq    *int64
	addlast_read_seq *int64
	last_read_at     *time.Time
	joined_at        *time.Time
	clearedFields    map[string]struct{}
	room             *string
	clearedroom      bool
	done             bool
	oldValue         func(context.Context) (*RoomParticipant, error)
	predicates       []predicate.RoomParticipant
}

var _ ent.Mutation = (*RoomParticipantMutation)(nil)

// roomparticipantOption allows management of the mutation configuration using functional options.
type roomparticipantOption func(*RoomParticipantMutation)

// newRoomParticipantMutation creates new mutation for the RoomParticipant entity.
func newRoomParticipantMutation(c config, op Op, opts ...roomparticipantOption) *RoomParticipantMutation {
	m := &RoomParticipantMutation{
		config:        c,
		op:            op,
		typ:           TypeRoomParticipant,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRoomParticipantID sets the ID field of the mutation.
func withRoomParticipantID(id string) roomparticipantOption {
	return func(m *RoomParticipantMutation) {
		var (
			err   error
			once  sync.Once
			value *RoomParticipant
		)
		m.oldValue = func(ctx context.Context) (*RoomParticipant, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RoomParticipant.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRoomParticipant sets the old RoomParticipant of the mutation.
func withRoomParticipant(node *RoomParticipant) roomparticipantOption {
	return func(m *RoomParticipantMutation) {
		m.oldValue = func(context.Context) (*RoomParticipant, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RoomParticipantMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RoomParticipantMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RoomParticipant entities.
func (m *RoomParticipantMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RoomParticipantMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RoomParticipantMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RoomParticipant.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRoomID sets the "room_id" field.
func (m *RoomParticipantMutation) SetRoomID(s string) {
	m.room = &s
}

// RoomID returns the value of the "room_id" field in the mutation.
func (m *RoomParticipantMutation) RoomID() (r string, exists bool) {
	v := m.room
	if v == nil {
		return
	}
	return *v, true
}

// OldRoomID returns the old "room_id" field's value of the RoomParticipant entity.
// If the RoomParticipant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomParticipantMutation) OldRoomID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoomID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoomID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoomID: %w", err)
	}
	return oldValue.RoomID, nil
}

// ResetRoomID resets all changes to the "room_id" field.
func (m *RoomParticipantMutation) ResetRoomID() {
	m.room = nil
}

// SetUserID sets the "user_id" field.
func (m *RoomParticipantMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *RoomParticipantMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the RoomParticipant entity.
// If the RoomParticipant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomParticipantMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *RoomParticipantMutation) ResetUserID() {
	m.user_id = nil
}

// SetLastReadSeq sets the "last_read_seq" field.
func (m *RoomParticipantMutation) SetLastReadSeq(i int64) {
	m.last_read_seq = &i
	m.addlast_read_seq = nil
}

// LastReadSeq returns the value of the "last_read_seq" field in the mutation.
func (m *RoomParticipantMutation) LastReadSeq() (r int64, exists bool) {
	v := m.last_read_seq
	if v == nil {
		return
	}
	return *v, true
}

// OldLastReadSeq returns the old "last_read_seq" field's value of the RoomParticipant entity.
// If the RoomParticipant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomParticipantMutation) OldLastReadSeq(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastReadSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastReadSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastReadSeq: %w", err)
	}
	return oldValue.LastReadSeq, nil
}

// AddLastReadSeq adds i to the "last_read_seq" field.
func (m *RoomParticipantMutation) AddLastReadSeq(i int64) {
	if m.addlast_read_seq != nil {
		*m.addlast_read_seq += i
	} else {
		m.addlast_read_seq = &i
	}
}

// AddedLastReadSeq returns the value that was added to the "last_read_seq" field in this mutation.
func (m *RoomParticipantMutation) AddedLastReadSeq() (r int64, exists bool) {
	v := m.addlast_read_seq
	if v == nil {
		return
	}
	return *v, true
}

// ResetLastReadSeq resets all changes to the "last_read_seq" field.
func (m *RoomParticipantMutation) ResetLastReadSeq() {
	m.last_read_seq = nil
	m.addlast_read_seq = nil
}

// SetLastReadAt sets the "last_read_at" field.
func (m *RoomParticipantMutation) SetLastReadAt(t time.Time) {
	m.last_read_at = &t
}

// LastReadAt returns the value of the "last_read_at" field in the mutation.
func (m *RoomParticipantMutation) LastReadAt() (r time.Time, exists bool) {
	v := m.last_read_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastReadAt returns the old "last_read_at" field's value of the RoomParticipant entity.
// If the RoomParticipant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomParticipantMutation) OldLastReadAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastReadAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastReadAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastReadAt: %w", err)
	}
	return oldValue.LastReadAt, nil
}

// ClearLastReadAt clears the value of the "last_read_at" field.
func (m *RoomParticipantMutation) ClearLastReadAt() {
	m.last_read_at = nil
	m.clearedFields[roomparticipant.FieldLastReadAt] = struct{}{}
}

// LastReadAtCleared returns if the "last_read_at" field was cleared in this mutation.
func (m *RoomParticipantMutation) LastReadAtCleared() bool {
	_, ok := m.clearedFields[roomparticipant.FieldLastReadAt]
	return ok
}

// ResetLastReadAt resets all changes to the "last_read_at" field.
func (m *RoomParticipantMutation) ResetLastReadAt() {
	m.last_read_at = nil
	delete(m.clearedFields, roomparticipant.FieldLastReadAt)
}

// SetJoinedAt sets the "joined_at" field.
func (m *RoomParticipantMutation) SetJoinedAt(t time.Time) {
	m.joined_at = &t
}

// JoinedAt returns the value of the "joined_at" field in the mutation.
func (m *RoomParticipantMutation) JoinedAt() (r time.Time, exists bool) {
	v := m.joined_at
	if v == nil {
		return
	}
	return *v, true
}

// OldJoinedAt returns the old "joined_at" field's value of the RoomParticipant entity.
// If the RoomParticipant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomParticipantMutation) OldJoinedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJoinedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJoinedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJoinedAt: %w", err)
	}
	return oldValue.JoinedAt, nil
}

// ResetJoinedAt resets all changes to the "joined_at" field.
func (m *RoomParticipantMutation) ResetJoinedAt() {
	m.joined_at = nil
}

// ClearRoom clears the "room" edge to the Room entity.
func (m *RoomParticipantMutation) ClearRoom() {
	m.clearedroom = true
	m.clearedFields[roomparticipant.FieldRoomID] = struct{}{}
}

// RoomCleared reports if the "room" edge to the Room entity was cleared.
func (m *RoomParticipantMutation) RoomCleared() bool {
	return m.clearedroom
}

// RoomIDs returns the "room" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RoomID instead. It exists only for internal usage by the builders.
func (m *RoomParticipantMutation) RoomIDs() (ids []string) {
	if id := m.room; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRoom resets all changes to the "room" edge.
func (m *RoomParticipantMutation) ResetRoom() {
	m.room = nil
	m.clearedroom = false
}

// Where appends a list predicates to the RoomParticipantMutation builder.
func (m *RoomParticipantMutation) Where(ps ...predicate.RoomParticipant) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RoomParticipantMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RoomParticipantMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RoomParticipant, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RoomParticipantMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RoomParticipantMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RoomParticipant).
func (m *RoomParticipantMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RoomParticipantMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.room != nil {
		fields = append(fields, roomparticipant.FieldRoomID)
	}
	if m.user_id != nil {
		fields = append(fields, roomparticipant.FieldUserID)
	}
	if m.last_read_seq != nil {
		fields = append(fields, roomparticipant.FieldLastReadSeq)
	}
	if m.last_read_at != nil {
		fields = append(fields, roomparticipant.FieldLastReadAt)
	}
	if m.joined_at != nil {
		fields = append(fields, roomparticipant.FieldJoinedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RoomParticipantMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case roomparticipant.FieldRoomID:
		return m.RoomID()
	case roomparticipant.FieldUserID:
		return m.UserID()
	case roomparticipant.FieldLastReadSeq:
		return m.LastReadSeq()
	case roomparticipant.FieldLastReadAt:
		return m.LastReadAt()
	case roomparticipant.FieldJoinedAt:
		return m.JoinedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RoomParticipantMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case roomparticipant.FieldRoomID:
		return m.OldRoomID(ctx)
	case roomparticipant.FieldUserID:
		return m.OldUserID(ctx)
	case roomparticipant.FieldLastReadSeq:
		return m.OldLastReadSeq(ctx)
	case roomparticipant.FieldLastReadAt:
		return m.OldLastReadAt(ctx)
	case roomparticipant.FieldJoinedAt:
		return m.OldJoinedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RoomParticipant field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoomParticipantMutation) SetField(name string, value ent.Value) error {
	switch name {
	case roomparticipant.FieldRoomID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoomID(v)
		return nil
	case roomparticipant.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case roomparticipant.FieldLastReadSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastReadSeq(v)
		return nil
	case roomparticipant.FieldLastReadAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastReadAt(v)
		return nil
	case roomparticipant.FieldJoinedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJoinedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RoomParticipant field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RoomParticipantMutation) AddedFields() []string {
	var fields []string
	if m.addlast_read_seq != nil {
		fields = append(fields, roomparticipant.FieldLastReadSeq)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RoomParticipantMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case roomparticipant.FieldLastReadSeq:
		return m.AddedLastReadSeq()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoomParticipantMutation) AddField(name string, value ent.Value) error {
	switch name {
	case roomparticipant.FieldLastReadSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastReadSeq(v)
		return nil
	}
	return fmt.Errorf("unknown RoomParticipant numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RoomParticipantMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(roomparticipant.FieldLastReadAt) {
		fields = append(fields, roomparticipant.FieldLastReadAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RoomParticipantMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RoomParticipantMutation) ClearField(name string) error {
	switch name {
	case roomparticipant.FieldLastReadAt:
		m.ClearLastReadAt()
		return nil
	}
	return fmt.Errorf("unknown RoomParticipant nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RoomParticipantMutation) ResetField(name string) error {
	switch name {
	case roomparticipant.FieldRoomID:
		m.ResetRoomID()
		return nil
	case roomparticipant.FieldUserID:
		m.ResetUserID()
		return nil
	case roomparticipant.FieldLastReadSeq:
		m.ResetLastReadSeq()
		return nil
	case roomparticipant.FieldLastReadAt:
		m.ResetLastReadAt()
		return nil
	case roomparticipant.FieldJoinedAt:
		m.ResetJoinedAt()
		return nil
	}
	return fmt.Errorf("unknown RoomParticipant field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RoomParticipantMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.room != nil {
		edges = append(edges, roomparticipant.EdgeRoom)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RoomParticipantMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case roomparticipant.EdgeRoom:
		if id := m.room; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RoomParticipantMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RoomParticipantMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RoomParticipantMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedroom {
		edges = append(edges, roomparticipant.EdgeRoom)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RoomParticipantMutation) EdgeCleared(name string) bool {
	switch name {
	case roomparticipant.EdgeRoom:
		return m.clearedroom
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RoomParticipantMutation) ClearEdge(name string) error {
	switch name {
	case roomparticipant.EdgeRoom:
		m.ClearRoom()
		return nil
	}
	return fmt.Errorf("unknown RoomParticipant unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RoomParticipantMutation) ResetEdge(name string) error {
	switch name {
	case roomparticipant.EdgeRoom:
		m.ResetRoom()
		return nil
	}
	return fmt.Errorf("unknown RoomParticipant edge %s", name)
}

// WorkflowMutation represents an operation that mutates the Workflow nodes in the graph.
type WorkflowMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	user_id             *string
	template_name       *string
	status              *workflow.Status
	user_context        *map[string]interface{}
	max_parallel        *int
	addmax_parallel     *int
	final_output        *string
	error_message       *string
	pod_id              *string
	last_heartbeat_at   *time.Time
	created_at          *time.Time
	started_at          *time.Time
	completed_at        *time.Time
	archived_at         *time.Time
	clearedFields       map[string]struct{}
	conversation        *string
	clearedconversation bool
	steps               map[string]struct{}
	removedsteps        map[string]struct{}
	clearedsteps        bool
	checkpoints         map[string]struct{}
	removedcheckpoints  map[string]struct{}
	clearedcheckpoints  bool
	done                bool
	oldValue            func(context.Context) (*Workflow, error)
	predicates          []predicate.Workflow
}

var _ ent.Mutation = (*WorkflowMutation)(nil)

// workflowOption allows management of the mutation configuration using functional options.
type workflowOption func(*WorkflowMutation)

// newWorkflowMutation creates new mutation for the Workflow entity.
func newWorkflowMutation(c config, op Op, opts ...workflowOption) *WorkflowMutation {
	m := &WorkflowMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkflow,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkflowID sets the ID field of the mutation.
func withWorkflowID(id string) workflowOption {
	return func(m *WorkflowMutation) {
		var (
			err   error
			once  sync.Once
			value *Workflow
		)
		m.oldValue = func(ctx context.Context) (*Workflow, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Workflow.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkflow sets the old Workflow of the mutation.
func withWorkflow(node *Workflow) workflowOption {
	return func(m *WorkflowMutation) {
		m.oldValue = func(context.Context) (*Workflow, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkflowMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkflowMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Workflow entities.
func (m *WorkflowMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkflowMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkflowMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Workflow.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetConversationID sets the "conversation_id" field.
func (m *WorkflowMutation) SetConversationID(s string) {
	m.conversation = &s
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *WorkflowMutation) ConversationID() (r string, exists bool) {
	v := m.conversation
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldConversationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *WorkflowMutation) ResetConversationID() {
	m.conversation = nil
}

// SetUserID sets the "user_id" field.
func (m *WorkflowMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *WorkflowMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *WorkflowMutation) ResetUserID() {
	m.user_id = nil
}

// SetTemplateName sets the "template_name" field.
func (m *WorkflowMutation) SetTemplateName(s string) {
	m.template_name = &s
}

// TemplateName returns the value of the "template_name" field in the mutation.
func (m *WorkflowMutation) TemplateName() (r string, exists bool) {
	v := m.template_name
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateName returns the old "template_name" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldTemplateName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateName: %w", err)
	}
	return oldValue.TemplateName, nil
}

// ResetTemplateName resets all changes to the "template_name" field.
func (m *WorkflowMutation) ResetTemplateName() {
	m.template_name = nil
}

// SetStatus sets the "status" field.
func (m *WorkflowMutation) SetStatus(w workflow.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WorkflowMutation) Status() (r workflow.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldStatus(ctx context.Context) (v workflow.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WorkflowMutation) ResetStatus() {
	m.status = nil
}

// SetUserContext sets the "user_context" field.
func (m *WorkflowMutation) SetUserContext(value map[string]interface{}) {
	m.user_context = &value
}

// UserContext returns the value of the "user_context" field in the mutation.
func (m *WorkflowMutation) UserContext() (r map[string]interface{}, exists bool) {
	v := m.user_context
	if v == nil {
		return
	}
	return *v, true
}

// OldUserContext returns the old "user_context" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldUserContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserContext: %w", err)
	}
	return oldValue.UserContext, nil
}

// ClearUserContext clears the value of the "user_context" field.
func (m *WorkflowMutation) ClearUserContext() {
	m.user_context = nil
	m.clearedFields[workflow.FieldUserContext] = struct{}{}
}

// UserContextCleared returns if the "user_context" field was cleared in this mutation.
func (m *WorkflowMutation) UserContextCleared() bool {
	_, ok := m.clearedFields[workflow.FieldUserContext]
	return ok
}

// ResetUserContext resets all changes to the "user_context" field.
func (m *WorkflowMutation) ResetUserContext() {
	m.user_context = nil
	delete(m.clearedFields, workflow.FieldUserContext)
}

// SetMaxParallel sets the "max_parallel" field.
func (m *WorkflowMutation) SetMaxParallel(i int) {
	m.max_parallel = &i
	m.addmax_parallel = nil
}

// MaxParallel returns the value of the "max_parallel" field in the mutation.
func (m *WorkflowMutation) MaxParallel() (r int, exists bool) {
	v := m.max_parallel
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxParallel returns the old "max_parallel" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldMaxParallel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxParallel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxParallel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxParallel: %w", err)
	}
	return oldValue.MaxParallel, nil
}

// AddMaxParallel adds i to the "max_parallel" field.
func (m *WorkflowMutation) AddMaxParallel(i int) {
	if m.addmax_parallel != nil {
		*m.addmax_parallel += i
	} else {
		m.addmax_parallel = &i
	}
}

// AddedMaxParallel returns the value that was added to the "max_parallel" field in this mutation.
func (m *WorkflowMutation) AddedMaxParallel() (r int, exists bool) {
	v := m.addmax_parallel
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxParallel resets all changes to the "max_parallel" field.
func (m *WorkflowMutation) ResetMaxParallel() {
	m.max_parallel = nil
	m.addmax_parallel = nil
}

// SetFinalOutput sets the "final_output" field.
func (m *WorkflowMutation) SetFinalOutput(s string) {
	m.final_output = &s
}

// FinalOutput returns the value of the "final_output" field in the mutation.
func (m *WorkflowMutation) FinalOutput() (r string, exists bool) {
	v := m.final_output
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalOutput returns the old "final_output" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldFinalOutput(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalOutput: %w", err)
	}
	return oldValue.FinalOutput, nil
}

// ClearFinalOutput clears the value of the "final_output" field.
func (m *WorkflowMutation) ClearFinalOutput() {
	m.final_output = nil
	m.clearedFields[workflow.FieldFinalOutput] = struct{}{}
}

// FinalOutputCleared returns if the "final_output" field was cleared in this mutation.
func (m *WorkflowMutation) FinalOutputCleared() bool {
	_, ok := m.clearedFields[workflow.FieldFinalOutput]
	return ok
}

// ResetFinalOutput resets all changes to the "final_output" field.
func (m *WorkflowMutation) ResetFinalOutput() {
	m.final_output = nil
	delete(m.clearedFields, workflow.FieldFinalOutput)
}

// SetErrorMessage sets the "error_message" field.
func (m *WorkflowMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *WorkflowMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *WorkflowMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[workflow.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *WorkflowMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[workflow.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *WorkflowMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, workflow.FieldErrorMessage)
}

// SetPodID sets the "pod_id" field.
func (m *WorkflowMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *WorkflowMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *WorkflowMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[workflow.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *WorkflowMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[workflow.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *WorkflowMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, workflow.FieldPodID)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *WorkflowMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *WorkflowMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *WorkflowMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[workflow.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *WorkflowMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[workflow.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *WorkflowMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, workflow.FieldLastHeartbeatAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkflowMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkflowMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkflowMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *WorkflowMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *WorkflowMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *WorkflowMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[workflow.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *WorkflowMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[workflow.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *WorkflowMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, workflow.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *WorkflowMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *WorkflowMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *WorkflowMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[workflow.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *WorkflowMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[workflow.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *WorkflowMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, workflow.FieldCompletedAt)
}

// SetArchivedAt sets the "archived_at" field.
func (m *WorkflowMutation) SetArchivedAt(t time.Time) {
	m.archived_at = &t
}

// ArchivedAt returns the value of the "archived_at" field in the mutation.
func (m *WorkflowMutation) ArchivedAt() (r time.Time, exists bool) {
	v := m.archived_at
	if v == nil {
		return
	}
	return *v, true
}

// OldArchivedAt returns the old "archived_at" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldArchivedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchivedAt: %w", err)
	}
	return oldValue.ArchivedAt, nil
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (m *WorkflowMutation) ClearArchivedAt() {
	m.archived_at = nil
	m.clearedFields[workflow.FieldArchivedAt] = struct{}{}
}

// ArchivedAtCleared returns if the "archived_at" field was cleared in this mutation.
func (m *WorkflowMutation) ArchivedAtCleared() bool {
	_, ok := m.clearedFields[workflow.FieldArchivedAt]
	return ok
}

// ResetArchivedAt resets all changes to the "archived_at" field.
func (m *WorkflowMutation) ResetArchivedAt() {
	m.archived_at = nil
	delete(m.clearedFields, workflow.FieldArchivedAt)
}

// ClearConversation clears the "conversation" edge to the Conversation entity.
func (m *WorkflowMutation) ClearConversation() {
	m.clearedconversation = true
	m.clearedFields[workflow.FieldConversationID] = struct{}{}
}

// ConversationCleared reports if the "conversation" edge to the Conversation entity was cleared.
func (m *WorkflowMutation) ConversationCleared() bool {
	return m.clearedconversation
}

// ConversationIDs returns the "conversation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ConversationID instead. It exists only for internal usage by the builders.
func (m *WorkflowMutation) ConversationIDs() (ids []string) {
	if id := m.conversation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetConversation resets all changes to the "conversation" edge.
func (m *WorkflowMutation) ResetConversation() {
	m.conversation = nil
	m.clearedconversation = false
}

// AddStepIDs adds the "steps" edge to the WorkflowStep entity by ids.
func (m *WorkflowMutation) AddStepIDs(ids ...string) {
	if m.steps == nil {
		m.steps = make(map[string]struct{})
	}
	for i := range ids {
		m.steps[ids[i]] = struct{}{}
	}
}

// ClearSteps clears the "steps" edge to the WorkflowStep entity.
func (m *WorkflowMutation) ClearSteps() {
	m.clearedsteps = true
}

// StepsCleared reports if the "steps" edge to the WorkflowStep entity was cleared.
func (m *WorkflowMutation) StepsCleared() bool {
	return m.clearedsteps
}

// RemoveStepIDs removes the "steps" edge to the WorkflowStep entity by IDs.
func (m *WorkflowMutation) RemoveStepIDs(ids ...string) {
	if m.removedsteps == nil {
		m.removedsteps = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.steps, ids[i])
		m.removedsteps[ids[i]] = struct{}{}
	}
}

// RemovedSteps returns the removed IDs of the "steps" edge to the WorkflowStep entity.
func (m *WorkflowMutation) RemovedStepsIDs() (ids []string) {
	for id := range m.removedsteps {
		ids = append(ids, id)
	}
	return
}

// StepsIDs returns the "steps" edge IDs in the mutation.
func (m *WorkflowMutation) StepsIDs() (ids []string) {
	for id := range m.steps {
		ids = append(ids, id)
	}
	return
}

// ResetSteps resets all changes to the "steps" edge.
func (m *WorkflowMutation) ResetSteps() {
	m.steps = nil
	m.clearedsteps = false
	m.removedsteps = nil
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by ids.
func (m *WorkflowMutation) AddCheckpointIDs(ids ...string) {
	if m.checkpoints == nil {
		m.checkpoints = make(map[string]struct{})
	}
	for i := range ids {
		m.checkpoints[ids[i]] = struct{}{}
	}
}

// ClearCheckpoints clears the "checkpoints" edge to the Checkpoint entity.
func (m *WorkflowMutation) ClearCheckpoints() {
	m.clearedcheckpoints = true
}

// CheckpointsCleared reports if the "checkpoints" edge to the Checkpoint entity was cleared.
func (m *WorkflowMutation) CheckpointsCleared() bool {
	return m.clearedcheckpoints
}

// RemoveCheckpointIDs removes the "checkpoints" edge to the Checkpoint entity by IDs.
func (m *WorkflowMutation) RemoveCheckpointIDs(ids ...string) {
	if m.removedcheckpoints == nil {
		m.removedcheckpoints = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.checkpoints, ids[i])
		m.removedcheckpoints[ids[i]] = struct{}{}
	}
}

// RemovedCheckpoints returns the removed IDs of the "checkpoints" edge to the Checkpoint entity.
func (m *WorkflowMutation) RemovedCheckpointsIDs() (ids []string) {
	for id := range m.removedcheckpoints {
		ids = append(ids, id)
	}
	return
}

// CheckpointsIDs returns the "checkpoints" edge IDs in the mutation.
func (m *WorkflowMutation) CheckpointsIDs() (ids []string) {
	for id := range m.checkpoints {
		ids = append(ids, id)
	}
	return
}

// ResetCheckpoints resets all changes to the "checkpoints" edge.
func (m *WorkflowMutation) ResetCheckpoints() {
	m.checkpoints = nil
	m.clearedcheckpoints = false
	m.removedcheckpoints = nil
}

// Where appends a list predicates to the WorkflowMutation builder.
func (m *WorkflowMutation) Where(ps ...predicate.Workflow) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkflowMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkflowMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Workflow, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkflowMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkflowMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Workflow).
func (m *WorkflowMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkflowMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.conversation != nil {
		fields = append(fields, workflow.FieldConversationID)
	}
	if m.user_id != nil {
		fields = append(fields, workflow.FieldUserID)
	}
	if m.template_name != nil {
		fields = append(fields, workflow.FieldTemplateName)
	}
	if m.status != nil {
		fields = append(fields, workflow.FieldStatus)
	}
	if m.user_context != nil {
		fields = append(fields, workflow.FieldUserContext)
	}
	if m.max_parallel != nil {
		fields = append(fields, workflow.FieldMaxParallel)
	}
	if m.final_output != nil {
		fields = append(fields, workflow.FieldFinalOutput)
	}
	if m.error_message != nil {
		fields = append(fields, workflow.FieldErrorMessage)
	}
	if m.pod_id != nil {
		fields = append(fields, workflow.FieldPodID)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, workflow.FieldLastHeartbeatAt)
	}
	if m.created_at != nil {
		fields = append(fields, workflow.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, workflow.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, workflow.FieldCompletedAt)
	}
	if m.archived_at != nil {
		fields = append(fields, workflow.FieldArchivedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkflowMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workflow.FieldConversationID:
		return m.ConversationID()
	case workflow.FieldUserID:
		return m.UserID()
	case workflow.FieldTemplateName:
		return m.TemplateName()
	case workflow.FieldStatus:
		return m.Status()
	case workflow.FieldUserContext:
		return m.UserContext()
	case workflow.FieldMaxParallel:
		return m.MaxParallel()
	case workflow.FieldFinalOutput:
		return m.FinalOutput()
	case workflow.FieldErrorMessage:
		return m.ErrorMessage()
	case workflow.FieldPodID:
		return m.PodID()
	case workflow.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case workflow.FieldCreatedAt:
		return m.CreatedAt()
	case workflow.FieldStartedAt:
		return m.StartedAt()
	case workflow.FieldCompletedAt:
		return m.CompletedAt()
	case workflow.FieldArchivedAt:
		return m.ArchivedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkflowMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workflow.FieldConversationID:
		return m.OldConversationID(ctx)
	case workflow.FieldUserID:
		return m.OldUserID(ctx)
	case workflow.FieldTemplateName:
		return m.OldTemplateName(ctx)
	case workflow.FieldStatus:
		return m.OldStatus(ctx)
	case workflow.FieldUserContext:
		return m.OldUserContext(ctx)
	case workflow.FieldMaxParallel:
		return m.OldMaxParallel(ctx)
	case workflow.FieldFinalOutput:
		return m.OldFinalOutput(ctx)
	case workflow.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case workflow.FieldPodID:
		return m.OldPodID(ctx)
	case workflow.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case workflow.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workflow.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case workflow.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case workflow.FieldArchivedAt:
		return m.OldArchivedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Workflow field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workflow.FieldConversationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case workflow.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case workflow.FieldTemplateName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateName(v)
		return nil
	case workflow.FieldStatus:
		v, ok := value.(workflow.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case workflow.FieldUserContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserContext(v)
		return nil
	case workflow.FieldMaxParallel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxParallel(v)
		return nil
	case workflow.FieldFinalOutput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalOutput(v)
		return nil
	case workflow.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case workflow.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case workflow.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case workflow.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workflow.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case workflow.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case workflow.FieldArchivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchivedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Workflow field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkflowMutation) AddedFields() []string {
	var fields []string
	if m.addmax_parallel != nil {
		fields = append(fields, workflow.FieldMaxParallel)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkflowMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case workflow.FieldMaxParallel:
		return m.AddedMaxParallel()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowMutation) AddField(name string, value ent.Value) error {
	switch name {
	case workflow.FieldMaxParallel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxParallel(v)
		return nil
	}
	return fmt.Errorf("unknown Workflow numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkflowMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workflow.FieldUserContext) {
		fields = append(fields, workflow.FieldUserContext)
	}
	if m.FieldCleared(workflow.FieldFinalOutput) {
		fields = append(fields, workflow.FieldFinalOutput)
	}
	if m.FieldCleared(workflow.FieldErrorMessage) {
		fields = append(fields, workflow.FieldErrorMessage)
	}
	if m.FieldCleared(workflow.FieldPodID) {
		fields = append(fields, workflow.FieldPodID)
	}
	if m.FieldCleared(workflow.FieldLastHeartbeatAt) {
		fields = append(fields, workflow.FieldLastHeartbeatAt)
	}
	if m.FieldCleared(workflow.FieldStartedAt) {
		fields = append(fields, workflow.FieldStartedAt)
	}
	if m.FieldCleared(workflow.FieldCompletedAt) {
		fields = append(fields, workflow.FieldCompletedAt)
	}
	if m.FieldCleared(workflow.FieldArchivedAt) {
		fields = append(fields, workflow.FieldArchivedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkflowMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkflowMutation) ClearField(name string) error {
	switch name {
	case workflow.FieldUserContext:
		m.ClearUserContext()
		return nil
	case workflow.FieldFinalOutput:
		m.ClearFinalOutput()
		return nil
	case workflow.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case workflow.FieldPodID:
		m.ClearPodID()
		return nil
	case workflow.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	case workflow.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case workflow.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case workflow.FieldArchivedAt:
		m.ClearArchivedAt()
		return nil
	}
	return fmt.Errorf("unknown Workflow nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkflowMutation) ResetField(name string) error {
	switch name {
	case workflow.FieldConversationID:
		m.ResetConversationID()
		return nil
	case workflow.FieldUserID:
		m.ResetUserID()
		return nil
	case workflow.FieldTemplateName:
		m.ResetTemplateName()
		return nil
	case workflow.FieldStatus:
		m.ResetStatus()
		return nil
	case workflow.FieldUserContext:
		m.ResetUserContext()
		return nil
	case workflow.FieldMaxParallel:
		m.ResetMaxParallel()
		return nil
	case workflow.FieldFinalOutput:
		m.ResetFinalOutput()
		return nil
	case workflow.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case workflow.FieldPodID:
		m.ResetPodID()
		return nil
	case workflow.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case workflow.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workflow.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case workflow.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case workflow.FieldArchivedAt:
		m.ResetArchivedAt()
		return nil
	}
	return fmt.Errorf("unknown Workflow field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkflowMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.conversation != nil {
		edges = append(edges, workflow.EdgeConversation)
	}
	if m.steps != nil {
		edges = append(edges, workflow.EdgeSteps)
	}
	if m.checkpoints != nil {
		edges = append(edges, workflow.EdgeCheckpoints)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkflowMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workflow.EdgeConversation:
		if id := m.conversation; id != nil {
			return []ent.Value{*id}
		}
	case workflow.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.steps))
		for id := range m.steps {
			ids = append(ids, id)
		}
		return ids
	case workflow.EdgeCheckpoints:
		ids := make([]ent.Value, 0, len(m.checkpoints))
		for id := range m.checkpoints {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkflowMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedsteps != nil {
		edges = append(edges, workflow.EdgeSteps)
	}
	if m.removedcheckpoints != nil {
		edges = append(edges, workflow.EdgeCheckpoints)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkflowMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case workflow.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.removedsteps))
		for id := range m.removedsteps {
			ids = append(ids, id)
		}
		return ids
	case workflow.EdgeCheckpoints:
		ids := make([]ent.Value, 0, len(m.removedcheckpoints))
		for id := range m.removedcheckpoints {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkflowMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedconversation {
		edges = append(edges, workflow.EdgeConversation)
	}
	if m.clearedsteps {
		edges = append(edges, workflow.EdgeSteps)
	}
	if m.clearedcheckpoints {
		edges = append(edges, workflow.EdgeCheckpoints)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkflowMutation) EdgeCleared(name string) bool {
	switch name {
	case workflow.EdgeConversation:
		return m.clearedconversation
	case workflow.EdgeSteps:
		return m.clearedsteps
	case workflow.EdgeCheckpoints:
		return m.clearedcheckpoints
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkflowMutation) ClearEdge(name string) error {
	switch name {
	case workflow.EdgeConversation:
		m.ClearConversation()
		return nil
	}
	return fmt.Errorf("unknown Workflow unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkflowMutation) ResetEdge(name string) error {
	switch name {
	case workflow.EdgeConversation:
		m.ResetConversation()
		return nil
	case workflow.EdgeSteps:
		m.ResetSteps()
		return nil
	case workflow.EdgeCheckpoints:
		m.ResetCheckpoints()
		return nil
	}
	return fmt.Errorf("unknown Workflow edge %s", name)
}

// WorkflowStepMutation represents an operation that mutates the WorkflowStep nodes in the graph.
type WorkflowStepMutation struct {
	config
	op                          Op
	typ                         string
	id                          *string
	step_id                     *string
	agent_type                  *string
	task_description            *string
	depends_on                  *[]string
	appenddepends_on            []string
	input_requirements          *[]string
	appendinput_requirements    []string
	output_specifications       *[]string
	appendoutput_specifications []string
	status                      *workflowstep.Status
	retry_count                 *int
	addretry_count              *int
	max_retries                 *int
	addmax_retries              *int
	result                      *map[string]interface{}
	error_message               *string
	started_at                  *time.Time
	completed_at                *time.Time
	execution_ms                *int64
	addexecution_ms             *int64
	clearedFields               map[string]struct{}
	workflow                    *string
	clearedworkflow             bool
	done                        bool
	oldValue                    func(context.Context) (*WorkflowStep, error)
	predicates                  []predicate.WorkflowStep
}

var _ ent.Mutation = (*WorkflowStepMutation)(nil)

// workflowstepOption allows management of the mutation configuration using functional options.
type workflowstepOption func(*WorkflowStepMutation)

// newWorkflowStepMutation creates new mutation for the WorkflowStep entity.
func newWorkflowStepMutation(c config, op Op, opts ...workflowstepOption) *WorkflowStepMutation {
	m := &WorkflowStepMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkflowStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkflowStepID sets the ID field of the mutation.
func withWorkflowStepID(id string) workflowstepOption {
	return func(m *WorkflowStepMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkflowStep
		)
		m.oldValue = func(ctx context.Context) (*WorkflowStep, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkflowStep.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkflowStep sets the old WorkflowStep of the mutation.
func withWorkflowStep(node *WorkflowStep) workflowstepOption {
	return func(m *WorkflowStepMutation) {
		m.oldValue = func(context.Context) (*WorkflowStep, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkflowStepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkflowStepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WorkflowStep entities.
func (m *WorkflowStepMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkflowStepMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkflowStepMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkflowStep.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkflowID sets the "workflow_id" field.
func (m *WorkflowStepMutation) SetWorkflowID(s string) {
	m.workflow = &s
}

// WorkflowID returns the value of the "workflow_id" field in the mutation.
func (m *WorkflowStepMutation) WorkflowID() (r string, exists bool) {
	v := m.workflow
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowID returns the old "workflow_id" field's value of the WorkflowStep entity.
// If the WorkflowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepMutation) OldWorkflowID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowID: %w", err)
	}
	return oldValue.WorkflowID, nil
}

// ResetWorkflowID resets all changes to the "workflow_id" field.
func (m *WorkflowStepMutation) ResetWorkflowID() {
	m.workflow = nil
}

// SetStepID sets the "step_id" field.
func (m *WorkflowStepMutation) SetStepID(s string) {
	m.step_id = &s
}

// StepID returns the value of the "step_id" field in the mutation.
func (m *WorkflowStepMutation) StepID() (r string, exists bool) {
	v := m.step_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStepID returns the old "step_id" field's value of the WorkflowStep entity.
// If the WorkflowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepMutation) OldStepID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepID: %w", err)
	}
	return oldValue.StepID, nil
}

// ResetStepID resets all changes to the "step_id" field.
func (m *WorkflowStepMutation) ResetStepID() {
	m.step_id = nil
}

// SetAgentType sets the "agent_type" field.
func (m *WorkflowStepMutation) SetAgentType(s string) {
	m.agent_type = &s
}

// AgentType returns the value of the "agent_type" field in the mutation.
func (m *WorkflowStepMutation) AgentType() (r string, exists bool) {
	v := m.agent_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentType returns the old "agent_type" field's value of the WorkflowStep entity.
// If the WorkflowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepMutation) OldAgentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentType: %w", err)
	}
	return oldValue.AgentType, nil
}

// ResetAgentType resets all changes to the "agent_type" field.
func (m *WorkflowStepMutation) ResetAgentType() {
	m.agent_type = nil
}

// SetTaskDescription sets the "task_description" field.
func (m *WorkflowStepMutation) SetTaskDescription(s string) {
	m.task_description = &s
}

// TaskDescription returns the value of the "task_description" field in the mutation.
func (m *WorkflowStepMutation) TaskDescription() (r string, exists bool) {
	v := m.task_description
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskDescription returns the old "task_description" field's value of the WorkflowStep entity.
// If the WorkflowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepMutation) OldTaskDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskDescription: %w", err)
	}
	return oldValue.TaskDescription, nil
}

// ResetTaskDescription resets all changes to the "task_description" field.
func (m *WorkflowStepMutation) ResetTaskDescription() {
	m.task_description = nil
}

// SetDependsOn sets the "depends_on" field.
func (m *WorkflowStepMutation) SetDependsOn(s []string) {
	m.depends_on = &s
	m.appenddepends_on = nil
}

// DependsOn returns the value of the "depends_on" field in the mutation.
func (m *WorkflowStepMutation) DependsOn() (r []string, exists bool) {
	v := m.depends_on
	if v == nil {
		return
	}
	return *v, true
}

// OldDependsOn returns the old "depends_on" field's value of the WorkflowStep entity.
// If the WorkflowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepMutation) OldDependsOn(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDependsOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDependsOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDependsOn: %w", err)
	}
	return oldValue.DependsOn, nil
}

// AppendDependsOn adds s to the "depends_on" field.
func (m *WorkflowStepMutation) AppendDependsOn(s []string) {
	m.appenddepends_on = append(m.appenddepends_on, s...)
}

// AppendedDependsOn returns the list of values that were appended to the "depends_on" field in this mutation.
func (m *WorkflowStepMutation) AppendedDependsOn() ([]string, bool) {
	if len(m.appenddepends_on) == 0 {
		return nil, false
	}
	return m.appenddepends_on, true
}

// ClearDependsOn clears the value of the "depends_on" field.
func (m *WorkflowStepMutation) ClearDependsOn() {
	m.depends_on = nil
	m.appenddepends_on = nil
	m.clearedFields[workflowstep.FieldDependsOn] = struct{}{}
}

// DependsOnCleared returns if the "depends_on" field was cleared in this mutation.
func (m *WorkflowStepMutation) DependsOnCleared() bool {
	_, ok := m.clearedFields[workflowstep.FieldDependsOn]
	return ok
}

// ResetDependsOn resets all changes to the "depends_on" field.
func (m *WorkflowStepMutation) ResetDependsOn() {
	m.depends_on = nil
	m.appenddepends_on = nil
	delete(m.clearedFields, workflowstep.FieldDependsOn)
}

// SetInputRequirements sets the "input_requirements" field.
func (m *WorkflowStepMutation) SetInputRequirements(s []string) {
	m.input_requirements = &s
	m.appendinput_requirements = nil
}

// InputRequirements returns the value of the "input_requirements" field in the mutation.
func (m *WorkflowStepMutation) InputRequirements() (r []string, exists bool) {
	v := m.input_requirements
	if v == nil {
		return
	}
	return *v, true
}

// OldInputRequirements returns the old "input_requirements" field's value of the WorkflowStep entity.
// If the WorkflowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepMutation) OldInputRequirements(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputRequirements is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputRequirements requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputRequirements: %w", err)
	}
	return oldValue.InputRequirements, nil
}

// AppendInputRequirements adds s to the "input_requirements" field.
func (m *WorkflowStepMutation) AppendInputRequirements(s []string) {
	m.appendinput_requirements = append(m.appendinput_requirements, s...)
}

// AppendedInputRequirements returns the list of values that were appended to the "input_requirements" field in this mutation.
func (m *WorkflowStepMutation) AppendedInputRequirements() ([]string, bool) {
	if len(m.appendinput_requirements) == 0 {
		return nil, false
	}
	return m.appendinput_requirements, true
}

// ClearInputRequirements clears the value of the "input_requirements" field.
func (m *WorkflowStepMutation) ClearInputRequirements() {
	m.input_requirements = nil
	m.appendinput_requirements = nil
	m.clearedFields[workflowstep.FieldInputRequirements] = struct{}{}
}

// InputRequirementsCleared returns if the "input_requirements" field was cleared in this mutation.
func (m *WorkflowStepMutation) InputRequirementsCleared() bool {
	_, ok := m.clearedFields[workflowstep.FieldInputRequirements]
	return ok
}

// ResetInputRequirements resets all changes to the "input_requirements" field.
func (m *WorkflowStepMutation) ResetInputRequirements() {
	m.input_requirements = nil
	m.appendinput_requirements = nil
	delete(m.clearedFields, workflowstep.FieldInputRequirements)
}

// SetOutputSpecifications sets the "output_specifications" field.
func (m *WorkflowStepMutation) SetOutputSpecifications(s []string) {
	m.output_specifications = &s
	m.appendoutput_specifications = nil
}

// OutputSpecifications returns the value of the "output_specifications" field in the mutation.
func (m *WorkflowStepMutation) OutputSpecifications() (r []string, exists bool) {
	v := m.output_specifications
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputSpecifications returns the old "output_specifications" field's value of the WorkflowStep entity.
// If the WorkflowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepMutation) OldOutputSpecifications(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputSpecifications is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputSpecifications requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputSpecifications: %w", err)
	}
	return oldValue.OutputSpecifications, nil
}

// AppendOutputSpecifications adds s to the "output_specifications" field.
func (m *WorkflowStepMutation) AppendOutputSpecifications(s []string) {
	m.appendoutput_specifications = append(m.appendoutput_specifications, s...)
}

// AppendedOutputSpecifications returns the list of values that were appended to the "output_specifications" field in this mutation.
func (m *WorkflowStepMutation) AppendedOutputSpecifications() ([]string, bool) {
	if len(m.appendoutput_specifications) == 0 {
		return nil, false
	}
	return m.appendoutput_specifications, true
}

// ClearOutputSpecifications clears the value of the "output_specifications" field.
func (m *WorkflowStepMutation) ClearOutputSpecifications() {
	m.output_specifications = nil
	m.appendoutput_specifications = nil
	m.clearedFields[workflowstep.FieldOutputSpecifications] = struct{}{}
}

// OutputSpecificationsCleared returns if the "output_specifications" field was cleared in this mutation.
func (m *WorkflowStepMutation) OutputSpecificationsCleared() bool {
	_, ok := m.clearedFields[workflowstep.FieldOutputSpecifications]
	return ok
}

// ResetOutputSpecifications resets all changes to the "output_specifications" field.
func (m *WorkflowStepMutation) ResetOutputSpecifications() {
	m.output_specifications = nil
	m.appendoutput_specifications = nil
	delete(m.clearedFields, workflowstep.FieldOutputSpecifications)
}

// SetStatus sets the "status" field.
func (m *WorkflowStepMutation) SetStatus(w workflowstep.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WorkflowStepMutation) Status() (r workflowstep.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the WorkflowStep entity.
// If the WorkflowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepMutation) OldStatus(ctx context.Context) (v workflowstep.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WorkflowStepMutation) ResetStatus() {
	m.status = nil
}

// SetRetryCount sets the "retry_count" field.
func (m *WorkflowStepMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *WorkflowStepMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the WorkflowStep entity.
// If the WorkflowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *WorkflowStepMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *WorkflowStepMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *WorkflowStepMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetMaxRetries sets the "max_retries" field.
func (m *WorkflowStepMutation) SetMaxRetries(i int) {
	m.max_retries = &i
	m.addmax_retries = nil
}

// MaxRetries returns the value of the "max_retries" field in the mutation.
func (m *WorkflowStepMutation) MaxRetries() (r int, exists bool) {
	v := m.max_retries
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxRetries returns the old "max_retries" field's value of the WorkflowStep entity.
// If the WorkflowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepMutation) OldMaxRetries(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxRetries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxRetries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxRetries: %w", err)
	}
	return oldValue.MaxRetries, nil
}

// AddMaxRetries adds i to the "max_retries" field.
func (m *WorkflowStepMutation) AddMaxRetries(i int) {
	if m.addmax_retries != nil {
		*m.addmax_retries += i
	} else {
		m.addmax_retries = &i
	}
}

// AddedMaxRetries returns the value that was added to the "max_retries" field in this mutation.
func (m *WorkflowStepMutation) AddedMaxRetries() (r int, exists bool) {
	v := m.addmax_retries
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxRetries resets all changes to the "max_retries" field.
func (m *WorkflowStepMutation) ResetMaxRetries() {
	m.max_retries = nil
	m.addmax_retries = nil
}

// SetResult sets the "result" field.
func (m *WorkflowStepMutation) SetResult(value map[string]interface{}) {
	m.result = &value
}

// Result returns the value of the "result" field in the mutation.
func (m *WorkflowStepMutation) Result() (r map[string]interface{}, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the WorkflowStep entity.
// If the WorkflowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepMutation) OldResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *WorkflowStepMutation) ClearResult() {
	m.result = nil
	m.clearedFields[workflowstep.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *WorkflowStepMutation) ResultCleared() bool {
	_, ok := m.clearedFields[workflowstep.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *WorkflowStepMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, workflowstep.FieldResult)
}

// SetErrorMessage sets the "error_message" field.
func (m *WorkflowStepMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *WorkflowStepMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the WorkflowStep entity.
// If the WorkflowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *WorkflowStepMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[workflowstep.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *WorkflowStepMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[workflowstep.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *WorkflowStepMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, workflowstep.FieldErrorMessage)
}

// SetStartedAt sets the "started_at" field.
func (m *WorkflowStepMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *WorkflowStepMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the WorkflowStep entity.
// If the WorkflowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *WorkflowStepMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[workflowstep.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *WorkflowStepMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[workflowstep.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *WorkflowStepMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, workflowstep.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *WorkflowStepMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *WorkflowStepMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the WorkflowStep entity.
// If the WorkflowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *WorkflowStepMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[workflowstep.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *WorkflowStepMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[workflowstep.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *WorkflowStepMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, workflowstep.FieldCompletedAt)
}

// SetExecutionMs sets the "execution_ms" field.
func (m *WorkflowStepMutation) SetExecutionMs(i int64) {
	m.execution_ms = &i
	m.addexecution_ms = nil
}

// ExecutionMs returns the value of the "execution_ms" field in the mutation.
func (m *WorkflowStepMutation) ExecutionMs() (r int64, exists bool) {
	v := m.execution_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionMs returns the old "execution_ms" field's value of the WorkflowStep entity.
// If the WorkflowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepMutation) OldExecutionMs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionMs: %w", err)
	}
	return oldValue.ExecutionMs, nil
}

// AddExecutionMs adds i to the "execution_ms" field.
func (m *WorkflowStepMutation) AddExecutionMs(i int64) {
	if m.addexecution_ms != nil {
		*m.addexecution_ms += i
	} else {
		m.addexecution_ms = &i
	}
}

// AddedExecutionMs returns the value that was added to the "execution_ms" field in this mutation.
func (m *WorkflowStepMutation) AddedExecutionMs() (r int64, exists bool) {
	v := m.addexecution_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearExecutionMs clears the value of the "execution_ms" field.
func (m *WorkflowStepMutation) ClearExecutionMs() {
	m.execution_ms = nil
	m.addexecution_ms = nil
	m.clearedFields[workflowstep.FieldExecutionMs] = struct{}{}
}

// ExecutionMsCleared returns if the "execution_ms" field was cleared in this mutation.
func (m *WorkflowStepMutation) ExecutionMsCleared() bool {
	_, ok := m.clearedFields[workflowstep.FieldExecutionMs]
	return ok
}

// ResetExecutionMs resets all changes to the "execution_ms" field.
func (m *WorkflowStepMutation) ResetExecutionMs() {
	m.execution_ms = nil
	m.addexecution_ms = nil
	delete(m.clearedFields, workflowstep.FieldExecutionMs)
}

// ClearWorkflow clears the "workflow" edge to the Workflow entity.
func (m *WorkflowStepMutation) ClearWorkflow() {
	m.clearedworkflow = true
	m.clearedFields[workflowstep.FieldWorkflowID] = struct{}{}
}

// WorkflowCleared reports if the "workflow" edge to the Workflow entity was cleared.
func (m *WorkflowStepMutation) WorkflowCleared() bool {
	return m.clearedworkflow
}

// WorkflowIDs returns the "workflow" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkflowID instead. It exists only for internal usage by the builders.
func (m *WorkflowStepMutation) WorkflowIDs() (ids []string) {
	if id := m.workflow; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkflow resets all changes to the "workflow" edge.
func (m *WorkflowStepMutation) ResetWorkflow() {
	m.workflow = nil
	m.clearedworkflow = false
}

// Where appends a list predicates to the WorkflowStepMutation builder.
func (m *WorkflowStepMutation) Where(ps ...predicate.WorkflowStep) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkflowStepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkflowStepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkflowStep, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkflowStepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkflowStepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkflowStep).
func (m *WorkflowStepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkflowStepMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.workflow != nil {
		fields = append(fields, workflowstep.FieldWorkflowID)
	}
	if m.step_id != nil {
		fields = append(fields, workflowstep.FieldStepID)
	}
	if m.agent_type != nil {
		fields = append(fields, workflowstep.FieldAgentType)
	}
	if m.task_description != nil {
		fields = append(fields, workflowstep.FieldTaskDescription)
	}
	if m.depends_on != nil {
		fields = append(fields, workflowstep.FieldDependsOn)
	}
	if m.input_requirements != nil {
		fields = append(fields, workflowstep.FieldInputRequirements)
	}
	if m.output_specifications != nil {
		fields = append(fields, workflowstep.FieldOutputSpecifications)
	}
	if m.status != nil {
		fields = append(fields, workflowstep.FieldStatus)
	}
	if m.retry_count != nil {
		fields = append(fields, workflowstep.FieldRetryCount)
	}
	if m.max_retries != nil {
		fields = append(fields, workflowstep.FieldMaxRetries)
	}
	if m.result != nil {
		fields = append(fields, workflowstep.FieldResult)
	}
	if m.error_message != nil {
		fields = append(fields, workflowstep.FieldErrorMessage)
	}
	if m.started_at != nil {
		fields = append(fields, workflowstep.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, workflowstep.FieldCompletedAt)
	}
	if m.execution_ms != nil {
		fields = append(fields, workflowstep.FieldExecutionMs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkflowStepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workflowstep.FieldWorkflowID:
		return m.WorkflowID()
	case workflowstep.FieldStepID:
		return m.StepID()
	case workflowstep.FieldAgentType:
		return m.AgentType()
	case workflowstep.FieldTaskDescription:
		return m.TaskDescription()
	case workflowstep.FieldDependsOn:
		return m.DependsOn()
	case workflowstep.FieldInputRequirements:
		return m.InputRequirements()
	case workflowstep.FieldOutputSpecifications:
		return m.OutputSpecifications()
	case workflowstep.FieldStatus:
		return m.Status()
	case workflowstep.FieldRetryCount:
		return m.RetryCount()
	case workflowstep.FieldMaxRetries:
		return m.MaxRetries()
	case workflowstep.FieldResult:
		return m.Result()
	case workflowstep.FieldErrorMessage:
		return m.ErrorMessage()
	case workflowstep.FieldStartedAt:
		return m.StartedAt()
	case workflowstep.FieldCompletedAt:
		return m.CompletedAt()
	case workflowstep.FieldExecutionMs:
		return m.ExecutionMs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkflowStepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workflowstep.FieldWorkflowID:
		return m.OldWorkflowID(ctx)
	case workflowstep.FieldStepID:
		return m.OldStepID(ctx)
	case workflowstep.FieldAgentType:
		return m.OldAgentType(ctx)
	case workflowstep.FieldTaskDescription:
		return m.OldTaskDescription(ctx)
	case workflowstep.FieldDependsOn:
		return m.OldDependsOn(ctx)
	case workflowstep.FieldInputRequirements:
		return m.OldInputRequirements(ctx)
	case workflowstep.FieldOutputSpecifications:
		return m.OldOutputSpecifications(ctx)
	case workflowstep.FieldStatus:
		return m.OldStatus(ctx)
	case workflowstep.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case workflowstep.FieldMaxRetries:
		return m.OldMaxRetries(ctx)
	case workflowstep.FieldResult:
		return m.OldResult(ctx)
	case workflowstep.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case workflowstep.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case workflowstep.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case workflowstep.FieldExecutionMs:
		return m.OldExecutionMs(ctx)
	}
	return nil, fmt.Errorf("unknown WorkflowStep field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowStepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workflowstep.FieldWorkflowID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowID(v)
		return nil
	case workflowstep.FieldStepID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepID(v)
		return nil
	case workflowstep.FieldAgentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentType(v)
		return nil
	case workflowstep.FieldTaskDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskDescription(v)
		return nil
	case workflowstep.FieldDependsOn:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDependsOn(v)
		return nil
	case workflowstep.FieldInputRequirements:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputRequirements(v)
		return nil
	case workflowstep.FieldOutputSpecifications:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputSpecifications(v)
		return nil
	case workflowstep.FieldStatus:
		v, ok := value.(workflowstep.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case workflowstep.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case workflowstep.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxRetries(v)
		return nil
	case workflowstep.FieldResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case workflowstep.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case workflowstep.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case workflowstep.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case workflowstep.FieldExecutionMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionMs(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowStep field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkflowStepMutation) AddedFields() []string {
	var fields []string
	if m.addretry_count != nil {
		fields = append(fields, workflowstep.FieldRetryCount)
	}
	if m.addmax_retries != nil {
		fields = append(fields, workflowstep.FieldMaxRetries)
	}
	if m.addexecution_ms != nil {
		fields = append(fields, workflowstep.FieldExecutionMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkflowStepMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case workflowstep.FieldRetryCount:
		return m.AddedRetryCount()
	case workflowstep.FieldMaxRetries:
		return m.AddedMaxRetries()
	case workflowstep.FieldExecutionMs:
		return m.AddedExecutionMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowStepMutation) AddField(name string, value ent.Value) error {
	switch name {
	case workflowstep.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	case workflowstep.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxRetries(v)
		return nil
	case workflowstep.FieldExecutionMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExecutionMs(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowStep numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkflowStepMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workflowstep.FieldDependsOn) {
		fields = append(fields, workflowstep.FieldDependsOn)
	}
	if m.FieldCleared(workflowstep.FieldInputRequirements) {
		fields = append(fields, workflowstep.FieldInputRequirements)
	}
	if m.FieldCleared(workflowstep.FieldOutputSpecifications) {
		fields = append(fields, workflowstep.FieldOutputSpecifications)
	}
	if m.FieldCleared(workflowstep.FieldResult) {
		fields = append(fields, workflowstep.FieldResult)
	}
	if m.FieldCleared(workflowstep.FieldErrorMessage) {
		fields = append(fields, workflowstep.FieldErrorMessage)
	}
	if m.FieldCleared(workflowstep.FieldStartedAt) {
		fields = append(fields, workflowstep.FieldStartedAt)
	}
	if m.FieldCleared(workflowstep.FieldCompletedAt) {
		fields = append(fields, workflowstep.FieldCompletedAt)
	}
	if m.FieldCleared(workflowstep.FieldExecutionMs) {
		fields = append(fields, workflowstep.FieldExecutionMs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkflowStepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkflowStepMutation) ClearField(name string) error {
	switch name {
	case workflowstep.FieldDependsOn:
		m.ClearDependsOn()
		return nil
	case workflowstep.FieldInputRequirements:
		m.ClearInputRequirements()
		return nil
	case workflowstep.FieldOutputSpecifications:
		m.ClearOutputSpecifications()
		return nil
	case workflowstep.FieldResult:
		m.ClearResult()
		return nil
	case workflowstep.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case workflowstep.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case workflowstep.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case workflowstep.FieldExecutionMs:
		m.ClearExecutionMs()
		return nil
	}
	return fmt.Errorf("unknown WorkflowStep nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkflowStepMutation) ResetField(name string) error {
	switch name {
	case workflowstep.FieldWorkflowID:
		m.ResetWorkflowID()
		return nil
	case workflowstep.FieldStepID:
		m.ResetStepID()
		return nil
	case workflowstep.FieldAgentType:
		m.ResetAgentType()
		return nil
	case workflowstep.FieldTaskDescription:
		m.ResetTaskDescription()
		return nil
	case workflowstep.FieldDependsOn:
		m.ResetDependsOn()
		return nil
	case workflowstep.FieldInputRequirements:
		m.ResetInputRequirements()
		return nil
	case workflowstep.FieldOutputSpecifications:
		m.ResetOutputSpecifications()
		return nil
	case workflowstep.FieldStatus:
		m.ResetStatus()
		return nil
	case workflowstep.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case workflowstep.FieldMaxRetries:
		m.ResetMaxRetries()
		return nil
	case workflowstep.FieldResult:
		m.ResetResult()
		return nil
	case workflowstep.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case workflowstep.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case workflowstep.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case workflowstep.FieldExecutionMs:
		m.ResetExecutionMs()
		return nil
	}
	return fmt.Errorf("unknown WorkflowStep field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkflowStepMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.workflow != nil {
		edges = append(edges, workflowstep.EdgeWorkflow)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkflowStepMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workflowstep.EdgeWorkflow:
		if id := m.workflow; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkflowStepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkflowStepMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkflowStepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedworkflow {
		edges = append(edges, workflowstep.EdgeWorkflow)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkflowStepMutation) EdgeCleared(name string) bool {
	switch name {
	case workflowstep.EdgeWorkflow:
		return m.clearedworkflow
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkflowStepMutation) ClearEdge(name string) error {
	switch name {
	case workflowstep.EdgeWorkflow:
		m.ClearWorkflow()
		return nil
	}
	return fmt.Errorf("unknown WorkflowStep unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkflowStepMutation) ResetEdge(name string) error {
	switch name {
	case workflowstep.EdgeWorkflow:
		m.ResetWorkflow()
		return nil
	}
	return fmt.Errorf("unknown WorkflowStep edge %s", name)
}
