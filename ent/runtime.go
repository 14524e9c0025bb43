// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/scriptor-ai/scriptor/ent/chatmessage"
	"github.com/scriptor-ai/scriptor/ent/checkpoint"
	"github.com/scriptor-ai/scriptor/ent/continuitystate"
	"github.com/scriptor-ai/scriptor/ent/conversation"
	"github.com/scriptor-ai/scriptor/ent/editproposal"
	"github.com/scriptor-ai/scriptor/ent/event"
	"github.com/scriptor-ai/scriptor/ent/feed"
	"github.com/scriptor-ai/scriptor/ent/feedarticle"
	"github.com/scriptor-ai/scriptor/ent/messagereaction"
	"github.com/scriptor-ai/scriptor/ent/presence"
	"github.com/scriptor-ai/scriptor/ent/room"
	"github.com/scriptor-ai/scriptor/ent/roommessage"
	"github.com/scriptor-ai/scriptor/ent/roomparticipant"
	"github.com/scriptor-ai/scriptor/ent/schema"
	"github.com/scriptor-ai/scriptor/ent/workflow"
	"github.com/scriptor-ai/scriptor/ent/workflowstep"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	chatmessageFields := schema.ChatMessage{}.Fields()
	_ = chatmessageFields
	// chatmessageDescConversationID is the schema descriptor for conversation_id field.
	chatmessageDescConversationID := chatmessageFields[1].Descriptor()
	// chatmessage.ConversationIDValidator is a validator for the "conversation_id" field. It is called by the builders before save.
	chatmessage.ConversationIDValidator = chatmessageDescConversationID.Validators[0].(func(string) error)
	// chatmessageDescCreatedAt is the schema descriptor for created_at field.
	chatmessageDescCreatedAt := chatmessageFields[5].Descriptor()
	// chatmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatmessage.DefaultCreatedAt = chatmessageDescCreatedAt.Default.(func() time.Time)
	checkpointFields := schema.Checkpoint{}.Fields()
	_ = checkpointFields
	// checkpointDescConversationID is the schema descriptor for conversation_id field.
	checkpointDescConversationID := checkpointFields[1].Descriptor()
	// checkpoint.ConversationIDValidator is a validator for the "conversation_id" field. It is called by the builders before save.
	checkpoint.ConversationIDValidator = checkpointDescConversationID.Validators[0].(func(string) error)
	// checkpointDescWorkflowID is the schema descriptor for workflow_id field.
	checkpointDescWorkflowID := checkpointFields[2].Descriptor()
	// checkpoint.WorkflowIDValidator is a validator for the "workflow_id" field. It is called by the builders before save.
	checkpoint.WorkflowIDValidator = checkpointDescWorkflowID.Validators[0].(func(string) error)
	// checkpointDescPhase is the schema descriptor for phase field.
	checkpointDescPhase := checkpointFields[5].Descriptor()
	// checkpoint.PhaseValidator is a validator for the "phase" field. It is called by the builders before save.
	checkpoint.PhaseValidator = checkpointDescPhase.Validators[0].(func(string) error)
	// checkpointDescCreatedAt is the schema descriptor for created_at field.
	checkpointDescCreatedAt := checkpointFields[7].Descriptor()
	// checkpoint.DefaultCreatedAt holds the default value on creation for the created_at field.
	checkpoint.DefaultCreatedAt = checkpointDescCreatedAt.Default.(func() time.Time)
	continuitystateFields := schema.ContinuityState{}.Fields()
	_ = continuitystateFields
	// continuitystateDescUserID is the schema descriptor for user_id field.
	continuitystateDescUserID := continuitystateFields[1].Descriptor()
	// continuitystate.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	continuitystate.UserIDValidator = continuitystateDescUserID.Validators[0].(func(string) error)
	// continuitystateDescManuscriptFilename is the schema descriptor for manuscript_filename field.
	continuitystateDescManuscriptFilename := continuitystateFields[2].Descriptor()
	// continuitystate.ManuscriptFilenameValidator is a validator for the "manuscript_filename" field. It is called by the builders before save.
	continuitystate.ManuscriptFilenameValidator = continuitystateDescManuscriptFilename.Validators[0].(func(string) error)
	// continuitystateDescLastAnalyzedChapter is the schema descriptor for last_analyzed_chapter field.
	continuitystateDescLastAnalyzedChapter := continuitystateFields[3].Descriptor()
	// continuitystate.DefaultLastAnalyzedChapter holds the default value on creation for the last_analyzed_chapter field.
	continuitystate.DefaultLastAnalyzedChapter = continuitystateDescLastAnalyzedChapter.Default.(int)
	// continuitystateDescCreatedAt is the schema descriptor for created_at field.
	continuitystateDescCreatedAt := continuitystateFields[10].Descriptor()
	// continuitystate.DefaultCreatedAt holds the default value on creation for the created_at field.
	continuitystate.DefaultCreatedAt = continuitystateDescCreatedAt.Default.(func() time.Time)
	// continuitystateDescUpdatedAt is the schema descriptor for updated_at field.
	continuitystateDescUpdatedAt := continuitystateFields[11].Descriptor()
	// continuitystate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	continuitystate.DefaultUpdatedAt = continuitystateDescUpdatedAt.Default.(func() time.Time)
	// continuitystate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	continuitystate.UpdateDefaultUpdatedAt = continuitystateDescUpdatedAt.UpdateDefault.(func() time.Time)
	conversationFields := schema.Conversation{}.Fields()
	_ = conversationFields
	// conversationDescUserID is the schema descriptor for user_id field.
	conversationDescUserID := conversationFields[1].Descriptor()
	// conversation.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	conversation.UserIDValidator = conversationDescUserID.Validators[0].(func(string) error)
	// conversationDescCreatedAt is the schema descriptor for created_at field.
	conversationDescCreatedAt := conversationFields[3].Descriptor()
	// conversation.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversation.DefaultCreatedAt = conversationDescCreatedAt.Default.(func() time.Time)
	// conversationDescUpdatedAt is the schema descriptor for updated_at field.
	conversationDescUpdatedAt := conversationFields[4].Descriptor()
	// conversation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	conversation.DefaultUpdatedAt = conversationDescUpdatedAt.Default.(func() time.Time)
	// conversation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	conversation.UpdateDefaultUpdatedAt = conversationDescUpdatedAt.UpdateDefault.(func() time.Time)
	editproposalFields := schema.EditProposal{}.Fields()
	_ = editproposalFields
	// editproposalDescUserID is the schema descriptor for user_id field.
	editproposalDescUserID := editproposalFields[1].Descriptor()
	// editproposal.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	editproposal.UserIDValidator = editproposalDescUserID.Validators[0].(func(string) error)
	// editproposalDescDocumentID is the schema descriptor for document_id field.
	editproposalDescDocumentID := editproposalFields[2].Descriptor()
	// editproposal.DocumentIDValidator is a validator for the "document_id" field. It is called by the builders before save.
	editproposal.DocumentIDValidator = editproposalDescDocumentID.Validators[0].(func(string) error)
	// editproposalDescAgentName is the schema descriptor for agent_name field.
	editproposalDescAgentName := editproposalFields[3].Descriptor()
	// editproposal.AgentNameValidator is a validator for the "agent_name" field. It is called by the builders before save.
	editproposal.AgentNameValidator = editproposalDescAgentName.Validators[0].(func(string) error)
	// editproposalDescApplied is the schema descriptor for applied field.
	editproposalDescApplied := editproposalFields[9].Descriptor()
	// editproposal.DefaultApplied holds the default value on creation for the applied field.
	editproposal.DefaultApplied = editproposalDescApplied.Default.(bool)
	// editproposalDescCreatedAt is the schema descriptor for created_at field.
	editproposalDescCreatedAt := editproposalFields[12].Descriptor()
	// editproposal.DefaultCreatedAt holds the default value on creation for the created_at field.
	editproposal.DefaultCreatedAt = editproposalDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescChannel is the schema descriptor for channel field.
	eventDescChannel := eventFields[0].Descriptor()
	// event.ChannelValidator is a validator for the "channel" field. It is called by the builders before save.
	event.ChannelValidator = eventDescChannel.Validators[0].(func(string) error)
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[2].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	feedFields := schema.Feed{}.Fields()
	_ = feedFields
	// feedDescURL is the schema descriptor for url field.
	feedDescURL := feedFields[1].Descriptor()
	// feed.URLValidator is a validator for the "url" field. It is called by the builders before save.
	feed.URLValidator = feedDescURL.Validators[0].(func(string) error)
	// feedDescCheckIntervalSeconds is the schema descriptor for check_interval_seconds field.
	feedDescCheckIntervalSeconds := feedFields[3].Descriptor()
	// feed.DefaultCheckIntervalSeconds holds the default value on creation for the check_interval_seconds field.
	feed.DefaultCheckIntervalSeconds = feedDescCheckIntervalSeconds.Default.(int)
	// feedDescIsPolling is the schema descriptor for is_polling field.
	feedDescIsPolling := feedFields[5].Descriptor()
	// feed.DefaultIsPolling holds the default value on creation for the is_polling field.
	feed.DefaultIsPolling = feedDescIsPolling.Default.(bool)
	// feedDescConsecutiveFailures is the schema descriptor for consecutive_failures field.
	feedDescConsecutiveFailures := feedFields[10].Descriptor()
	// feed.DefaultConsecutiveFailures holds the default value on creation for the consecutive_failures field.
	feed.DefaultConsecutiveFailures = feedDescConsecutiveFailures.Default.(int)
	// feedDescCreatedAt is the schema descriptor for created_at field.
	feedDescCreatedAt := feedFields[11].Descriptor()
	// feed.DefaultCreatedAt holds the default value on creation for the created_at field.
	feed.DefaultCreatedAt = feedDescCreatedAt.Default.(func() time.Time)
	feedarticleFields := schema.FeedArticle{}.Fields()
	_ = feedarticleFields
	// feedarticleDescFeedID is the schema descriptor for feed_id field.
	feedarticleDescFeedID := feedarticleFields[1].Descriptor()
	// feedarticle.FeedIDValidator is a validator for the "feed_id" field. It is called by the builders before save.
	feedarticle.FeedIDValidator = feedarticleDescFeedID.Validators[0].(func(string) error)
	// feedarticleDescTitle is the schema descriptor for title field.
	feedarticleDescTitle := feedarticleFields[3].Descriptor()
	// feedarticle.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	feedarticle.TitleValidator = feedarticleDescTitle.Validators[0].(func(string) error)
	// feedarticleDescURL is the schema descriptor for url field.
	feedarticleDescURL := feedarticleFields[4].Descriptor()
	// feedarticle.URLValidator is a validator for the "url" field. It is called by the builders before save.
	feedarticle.URLValidator = feedarticleDescURL.Validators[0].(func(string) error)
	// feedarticleDescContentHash is the schema descriptor for content_hash field.
	feedarticleDescContentHash := feedarticleFields[8].Descriptor()
	// feedarticle.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	feedarticle.ContentHashValidator = feedarticleDescContentHash.Validators[0].(func(string) error)
	// feedarticleDescEnriched is the schema descriptor for enriched field.
	feedarticleDescEnriched := feedarticleFields[9].Descriptor()
	// feedarticle.DefaultEnriched holds the default value on creation for the enriched field.
	feedarticle.DefaultEnriched = feedarticleDescEnriched.Default.(bool)
	// feedarticleDescCreatedAt is the schema descriptor for created_at field.
	feedarticleDescCreatedAt := feedarticleFields[11].Descriptor()
	// feedarticle.DefaultCreatedAt holds the default value on creation for the created_at field.
	feedarticle.DefaultCreatedAt = feedarticleDescCreatedAt.Default.(func() time.Time)
	messagereactionFields := schema.MessageReaction{}.Fields()
	_ = messagereactionFields
	// messagereactionDescMessageID is the schema descriptor for message_id field.
	messagereactionDescMessageID := messagereactionFields[1].Descriptor()
	// messagereaction.MessageIDValidator is a validator for the "message_id" field. It is called by the builders before save.
	messagereaction.MessageIDValidator = messagereactionDescMessageID.Validators[0].(func(string) error)
	// messagereactionDescUserID is the schema descriptor for user_id field.
	messagereactionDescUserID := messagereactionFields[2].Descriptor()
	// messagereaction.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	messagereaction.UserIDValidator = messagereactionDescUserID.Validators[0].(func(string) error)
	// messagereactionDescEmoji is the schema descriptor for emoji field.
	messagereactionDescEmoji := messagereactionFields[3].Descriptor()
	// messagereaction.EmojiValidator is a validator for the "emoji" field. It is called by the builders before save.
	messagereaction.EmojiValidator = messagereactionDescEmoji.Validators[0].(func(string) error)
	// messagereactionDescCreatedAt is the schema descriptor for created_at field.
	messagereactionDescCreatedAt := messagereactionFields[4].Descriptor()
	// messagereaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	messagereaction.DefaultCreatedAt = messagereactionDescCreatedAt.Default.(func() time.Time)
	presenceFields := schema.Presence{}.Fields()
	_ = presenceFields
	// presenceDescUserID is the schema descriptor for user_id field.
	presenceDescUserID := presenceFields[1].Descriptor()
	// presence.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	presence.UserIDValidator = presenceDescUserID.Validators[0].(func(string) error)
	// presenceDescLastSeenAt is the schema descriptor for last_seen_at field.
	presenceDescLastSeenAt := presenceFields[3].Descriptor()
	// presence.DefaultLastSeenAt holds the default value on creation for the last_seen_at field.
	presence.DefaultLastSeenAt = presenceDescLastSeenAt.Default.(func() time.Time)
	// presenceDescUpdatedAt is the schema descriptor for updated_at field.
	presenceDescUpdatedAt := presenceFields[4].Descriptor()
	// presence.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	presence.DefaultUpdatedAt = presenceDescUpdatedAt.Default.(func() time.Time)
	// presence.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	presence.UpdateDefaultUpdatedAt = presenceDescUpdatedAt.UpdateDefault.(func() time.Time)
	roomFields := schema.Room{}.Fields()
	_ = roomFields
	// roomDescName is the schema descriptor for name field.
	roomDescName := roomFields[1].Descriptor()
	// room.NameValidator is a validator for the "name" field. It is called by the builders before save.
	room.NameValidator = roomDescName.Validators[0].(func(string) error)
	// roomDescCreatedBy is the schema descriptor for created_by field.
	roomDescCreatedBy := roomFields[2].Descriptor()
	// room.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	room.CreatedByValidator = roomDescCreatedBy.Validators[0].(func(string) error)
	// roomDescLastSeq is the schema descriptor for last_seq field.
	roomDescLastSeq := roomFields[3].Descriptor()
	// room.DefaultLastSeq holds the default value on creation for the last_seq field.
	room.DefaultLastSeq = roomDescLastSeq.Default.(int64)
	// roomDescCreatedAt is the schema descriptor for created_at field.
	roomDescCreatedAt := roomFields[5].Descriptor()
	// room.DefaultCreatedAt holds the default value on creation for the created_at field.
	room.DefaultCreatedAt = roomDescCreatedAt.Default.(func() time.Time)
	roommessageFields := schema.RoomMessage{}.Fields()
	_ = roommessageFields
	// roommessageDescRoomID is the schema descriptor for room_id field.
	roommessageDescRoomID := roommessageFields[1].Descriptor()
	// roommessage.RoomIDValidator is a validator for the "room_id" field. It is called by the builders before save.
	roommessage.RoomIDValidator = roommessageDescRoomID.Validators[0].(func(string) error)
	// roommessageDescSenderID is the schema descriptor for sender_id field.
	roommessageDescSenderID := roommessageFields[2].Descriptor()
	// roommessage.SenderIDValidator is a validator for the "sender_id" field. It is called by the builders before save.
	roommessage.SenderIDValidator = roommessageDescSenderID.Validators[0].(func(string) error)
	// roommessageDescKeyVersion is the schema descriptor for key_version field.
	roommessageDescKeyVersion := roommessageFields[8].Descriptor()
	// roommessage.DefaultKeyVersion holds the default value on creation for the key_version field.
	roommessage.DefaultKeyVersion = roommessageDescKeyVersion.Default.(int)
	// roommessageDescCreatedAt is the schema descriptor for created_at field.
	roommessageDescCreatedAt := roommessageFields[9].Descriptor()
	// roommessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	roommessage.DefaultCreatedAt = roommessageDescCreatedAt.Default.(func() time.Time)
	roomparticipantFields := schema.RoomParticipant{}.Fields()
	_ = roomparticipantFields
	// roomparticipantDescRoomID is the schema descriptor for room_id field.
	roomparticipantDescRoomID := roomparticipantFields[1].Descriptor()
	// roomparticipant.RoomIDValidator is a validator for the "room_id" field. It is called by the builders before save.
	roomparticipant.RoomIDValidator = roomparticipantDescRoomID.Validators[0].(func(string) error)
	// roomparticipantDescUserID is the schema descriptor for user_id field.
	roomparticipantDescUserID := roomparticipantFields[2].Descriptor()
	// roomparticipant.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	roomparticipant.UserIDValidator = roomparticipantDescUserID.Validators[0].(func(string) error)
	// roomparticipantDescLastReadSeq is the schema descriptor for last_read_seq field.
	roomparticipantDescLastReadSeq := roomparticipantFields[3].Descriptor()
	// roomparticipant.DefaultLastReadSeq holds the default value on creation for the last_read_seq field.
	roomparticipant.DefaultLastReadSeq = roomparticipantDescLastReadSeq.Default.(int64)
	// roomparticipantDescJoinedAt is the schema descriptor for joined_at field.
	roomparticipantDescJoinedAt := roomparticipantFields[5].Descriptor()
	// roomparticipant.DefaultJoinedAt holds the default value on creation for the joined_at field.
	roomparticipant.DefaultJoinedAt = roomparticipantDescJoinedAt.Default.(func() time.Time)
	workflowFields := schema.Workflow{}.Fields()
	_ = workflowFields
	// workflowDescConversationID is the schema descriptor for conversation_id field.
	workflowDescConversationID := workflowFields[1].Descriptor()
	// workflow.ConversationIDValidator is a validator for the "conversation_id" field. It is called by the builders before save.
	workflow.ConversationIDValidator = workflowDescConversationID.Validators[0].(func(string) error)
	// workflowDescUserID is the schema descriptor for user_id field.
	workflowDescUserID := workflowFields[2].Descriptor()
	// workflow.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	workflow.UserIDValidator = workflowDescUserID.Validators[0].(func(string) error)
	// workflowDescTemplateName is the schema descriptor for template_name field.
	workflowDescTemplateName := workflowFields[3].Descriptor()
	// workflow.TemplateNameValidator is a validator for the "template_name" field. It is called by the builders before save.
	workflow.TemplateNameValidator = workflowDescTemplateName.Validators[0].(func(string) error)
	// workflowDescMaxParallel is the schema descriptor for max_parallel field.
	workflowDescMaxParallel := workflowFields[6].Descriptor()
	// workflow.DefaultMaxParallel holds the default value on creation for the max_parallel field.
	workflow.DefaultMaxParallel = workflowDescMaxParallel.Default.(int)
	// workflowDescCreatedAt is the schema descriptor for created_at field.
	workflowDescCreatedAt := workflowFields[11].Descriptor()
	// workflow.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflow.DefaultCreatedAt = workflowDescCreatedAt.Default.(func() time.Time)
	workflowstepFields := schema.WorkflowStep{}.Fields()
	_ = workflowstepFields
	// workflowstepDescWorkflowID is the schema descriptor for workflow_id field.
	workflowstepDescWorkflowID := workflowstepFields[1].Descriptor()
	// workflowstep.WorkflowIDValidator is a validator for the "workflow_id" field. It is called by the builders before save.
	workflowstep.WorkflowIDValidator = workflowstepDescWorkflowID.Validators[0].(func(string) error)
	// workflowstepDescStepID is the schema descriptor for step_id field.
	workflowstepDescStepID := workflowstepFields[2].Descriptor()
	// workflowstep.StepIDValidator is a validator for the "step_id" field. It is called by the builders before save.
	workflowstep.StepIDValidator = workflowstepDescStepID.Validators[0].(func(string) error)
	// workflowstepDescAgentType is the schema descriptor for agent_type field.
	workflowstepDescAgentType := workflowstepFields[3].Descriptor()
	// workflowstep.AgentTypeValidator is a validator for the "agent_type" field. It is called by the builders before save.
	workflowstep.AgentTypeValidator = workflowstepDescAgentType.Validators[0].(func(string) error)
	// workflowstepDescRetryCount is the schema descriptor for retry_count field.
	workflowstepDescRetryCount := workflowstepFields[9].Descriptor()
	// workflowstep.DefaultRetryCount holds the default value on creation for the retry_count field.
	workflowstep.DefaultRetryCount = workflowstepDescRetryCount.Default.(int)
	// workflowstepDescMaxRetries is the schema descriptor for max_retries field.
	workflowstepDescMaxRetries := workflowstepFields[10].Descriptor()
	// workflowstep.DefaultMaxRetries holds the default value on creation for the max_retries field.
	workflowstep.DefaultMaxRetries = workflowstepDescMaxRetries.Default.(int)
}
