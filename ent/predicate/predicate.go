// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ChatMessage is the predicate function for chatmessage builders.
type ChatMessage func(*sql.Selector)

// Checkpoint is the predicate function for checkpoint builders.
type Checkpoint func(*sql.Selector)

// ContinuityState is the predicate function for continuitystate builders.
type ContinuityState func(*sql.Selector)

// Conversation is the predicate function for conversation builders.
type Conversation func(*sql.Selector)

// EditProposal is the predicate function for editproposal builders.
type EditProposal func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Feed is the predicate function for feed builders.
type Feed func(*sql.Selector)

// FeedArticle is the predicate function for feedarticle builders.
type FeedArticle func(*sql.Selector)

// MessageReaction is the predicate function for messagereaction builders.
type MessageReaction func(*sql.Selector)

// Presence is the predicate function for presence builders.
type Presence func(*sql.Selector)

// Room is the predicate function for room builders.
type Room func(*sql.Selector)

// RoomMessage is the predicate function for roommessage builders.
type RoomMessage func(*sql.Selector)

// RoomParticipant is the predicate function for roomparticipant builders.
type RoomParticipant func(*sql.Selector)

// Workflow is the predicate function for workflow builders.
type Workflow func(*sql.Selector)

// WorkflowStep is the predicate function for workflowstep builders.
type WorkflowStep func(*sql.Selector)
