// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChatMessagesColumns holds the columns for the "chat_messages" table.
	ChatMessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"human", "ai", "system", "tool"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "conversation_id", Type: field.TypeString},
	}
	// ChatMessagesTable holds the schema information for the "chat_messages" table.
	ChatMessagesTable = &schema.Table{
		Name:       "chat_messages",
		Columns:    ChatMessagesColumns,
		PrimaryKey: []*schema.Column{ChatMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chat_messages_conversations_messages",
				Columns:    []*schema.Column{ChatMessagesColumns[6]},
				RefColumns: []*schema.Column{ConversationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chatmessage_conversation_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[6], ChatMessagesColumns[4]},
			},
		},
	}
	// CheckpointsColumns holds the columns for the "checkpoints" table.
	CheckpointsColumns = []*schema.Column{
		{Name: "checkpoint_id", Type: field.TypeString, Unique: true},
		{Name: "conversation_id", Type: field.TypeString},
		{Name: "seq", Type: field.TypeInt64},
		{Name: "parent_seq", Type: field.TypeInt64, Nullable: true},
		{Name: "phase", Type: field.TypeString},
		{Name: "state", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "workflow_id", Type: field.TypeString},
	}
	// CheckpointsTable holds the schema information for the "checkpoints" table.
	CheckpointsTable = &schema.Table{
		Name:       "checkpoints",
		Columns:    CheckpointsColumns,
		PrimaryKey: []*schema.Column{CheckpointsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "checkpoints_workflows_checkpoints",
				Columns:    []*schema.Column{CheckpointsColumns[7]},
				RefColumns: []*schema.Column{WorkflowsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "checkpoint_workflow_id_seq",
				Unique:  true,
				Columns: []*schema.Column{CheckpointsColumns[7], CheckpointsColumns[2]},
			},
			{
				Name:    "checkpoint_conversation_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{CheckpointsColumns[1], CheckpointsColumns[6]},
			},
		},
	}
	// ContinuityStatesColumns holds the columns for the "continuity_states" table.
	ContinuityStatesColumns = []*schema.Column{
		{Name: "continuity_state_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "manuscript_filename", Type: field.TypeString},
		{Name: "last_analyzed_chapter", Type: field.TypeInt, Default: 0},
		{Name: "character_states", Type: field.TypeJSON, Nullable: true},
		{Name: "plot_threads", Type: field.TypeJSON, Nullable: true},
		{Name: "timeline", Type: field.TypeJSON, Nullable: true},
		{Name: "world_state_changes", Type: field.TypeJSON, Nullable: true},
		{Name: "unresolved_tensions", Type: field.TypeJSON, Nullable: true},
		{Name: "current_chapter_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ContinuityStatesTable holds the schema information for the "continuity_states" table.
	ContinuityStatesTable = &schema.Table{
		Name:       "continuity_states",
		Columns:    ContinuityStatesColumns,
		PrimaryKey: []*schema.Column{ContinuityStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "continuitystate_user_id_manuscript_filename",
				Unique:  true,
				Columns: []*schema.Column{ContinuityStatesColumns[1], ContinuityStatesColumns[2]},
			},
		},
	}
	// ConversationsColumns holds the columns for the "conversations" table.
	ConversationsColumns = []*schema.Column{
		{Name: "conversation_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// ConversationsTable holds the schema information for the "conversations" table.
	ConversationsTable = &schema.Table{
		Name:       "conversations",
		Columns:    ConversationsColumns,
		PrimaryKey: []*schema.Column{ConversationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conversation_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[1], ConversationsColumns[3]},
			},
		},
	}
	// EditProposalsColumns holds the columns for the "edit_proposals" table.
	EditProposalsColumns = []*schema.Column{
		{Name: "proposal_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "document_id", Type: field.TypeString},
		{Name: "agent_name", Type: field.TypeString},
		{Name: "edit_type", Type: field.TypeEnum, Enums: []string{"operations", "content"}},
		{Name: "operations", Type: field.TypeJSON, Nullable: true},
		{Name: "content_edit", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "summary", Type: field.TypeString, Size: 2147483647},
		{Name: "preview", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "applied", Type: field.TypeBool, Default: false},
		{Name: "applied_at", Type: field.TypeTime, Nullable: true},
		{Name: "apply_result", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
	}
	// EditProposalsTable holds the schema information for the "edit_proposals" table.
	EditProposalsTable = &schema.Table{
		Name:       "edit_proposals",
		Columns:    EditProposalsColumns,
		PrimaryKey: []*schema.Column{EditProposalsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "editproposal_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{EditProposalsColumns[1], EditProposalsColumns[12]},
			},
			{
				Name:    "editproposal_document_id",
				Unique:  false,
				Columns: []*schema.Column{EditProposalsColumns[2]},
			},
			{
				Name:    "editproposal_applied_expires_at",
				Unique:  false,
				Columns: []*schema.Column{EditProposalsColumns[9], EditProposalsColumns[13]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[3]},
			},
		},
	}
	// FeedsColumns holds the columns for the "feeds" table.
	FeedsColumns = []*schema.Column{
		{Name: "feed_id", Type: field.TypeString, Unique: true},
		{Name: "url", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "check_interval_seconds", Type: field.TypeInt, Default: 1800},
		{Name: "last_check", Type: field.TypeTime, Nullable: true},
		{Name: "is_polling", Type: field.TypeBool, Default: false},
		{Name: "polling_started_at", Type: field.TypeTime, Nullable: true},
		{Name: "etag", Type: field.TypeString, Nullable: true},
		{Name: "last_modified", Type: field.TypeString, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "consecutive_failures", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// FeedsTable holds the schema information for the "feeds" table.
	FeedsTable = &schema.Table{
		Name:       "feeds",
		Columns:    FeedsColumns,
		PrimaryKey: []*schema.Column{FeedsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "feed_is_polling_last_check",
				Unique:  false,
				Columns: []*schema.Column{FeedsColumns[5], FeedsColumns[4]},
			},
		},
	}
	// FeedArticlesColumns holds the columns for the "feed_articles" table.
	FeedArticlesColumns = []*schema.Column{
		{Name: "feed_article_id", Type: field.TypeString, Unique: true},
		{Name: "guid", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString},
		{Name: "url", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "author", Type: field.TypeString, Nullable: true},
		{Name: "content_hash", Type: field.TypeString},
		{Name: "enriched", Type: field.TypeBool, Default: false},
		{Name: "published_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "feed_id", Type: field.TypeString},
	}
	// FeedArticlesTable holds the schema information for the "feed_articles" table.
	FeedArticlesTable = &schema.Table{
		Name:       "feed_articles",
		Columns:    FeedArticlesColumns,
		PrimaryKey: []*schema.Column{FeedArticlesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "feed_articles_feeds_articles",
				Columns:    []*schema.Column{FeedArticlesColumns[11]},
				RefColumns: []*schema.Column{FeedsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "feedarticle_feed_id_content_hash",
				Unique:  true,
				Columns: []*schema.Column{FeedArticlesColumns[11], FeedArticlesColumns[7]},
			},
			{
				Name:    "feedarticle_feed_id_published_at",
				Unique:  false,
				Columns: []*schema.Column{FeedArticlesColumns[11], FeedArticlesColumns[9]},
			},
		},
	}
	// MessageReactionsColumns holds the columns for the "message_reactions" table.
	MessageReactionsColumns = []*schema.Column{
		{Name: "message_reaction_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "emoji", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "message_id", Type: field.TypeString},
	}
	// MessageReactionsTable holds the schema information for the "message_reactions" table.
	MessageReactionsTable = &schema.Table{
		Name:       "message_reactions",
		Columns:    MessageReactionsColumns,
		PrimaryKey: []*schema.Column{MessageReactionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "message_reactions_room_messages_reactions",
				Columns:    []*schema.Column{MessageReactionsColumns[4]},
				RefColumns: []*schema.Column{RoomMessagesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "messagereaction_message_id_user_id_emoji",
				Unique:  true,
				Columns: []*schema.Column{MessageReactionsColumns[4], MessageReactionsColumns[1], MessageReactionsColumns[2]},
			},
		},
	}
	// PresencesColumns holds the columns for the "presences" table.
	PresencesColumns = []*schema.Column{
		{Name: "presence_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"online", "away", "offline"}, Default: "offline"},
		{Name: "last_seen_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PresencesTable holds the schema information for the "presences" table.
	PresencesTable = &schema.Table{
		Name:       "presences",
		Columns:    PresencesColumns,
		PrimaryKey: []*schema.Column{PresencesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "presence_status_last_seen_at",
				Unique:  false,
				Columns: []*schema.Column{PresencesColumns[2], PresencesColumns[3]},
			},
		},
	}
	// RoomsColumns holds the columns for the "rooms" table.
	RoomsColumns = []*schema.Column{
		{Name: "room_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "created_by", Type: field.TypeString},
		{Name: "last_seq", Type: field.TypeInt64, Default: 0},
		{Name: "last_message_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// RoomsTable holds the schema information for the "rooms" table.
	RoomsTable = &schema.Table{
		Name:       "rooms",
		Columns:    RoomsColumns,
		PrimaryKey: []*schema.Column{RoomsColumns[0]},
	}
	// RoomMessagesColumns holds the columns for the "room_messages" table.
	RoomMessagesColumns = []*schema.Column{
		{Name: "room_message_id", Type: field.TypeString, Unique: true},
		{Name: "sender_id", Type: field.TypeString},
		{Name: "seq", Type: field.TypeInt64},
		{Name: "ciphertext", Type: field.TypeBytes, Nullable: true},
		{Name: "nonce", Type: field.TypeBytes, Nullable: true},
		{Name: "wrapped_dek", Type: field.TypeBytes, Nullable: true},
		{Name: "dek_nonce", Type: field.TypeBytes, Nullable: true},
		{Name: "key_version", Type: field.TypeInt, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "room_id", Type: field.TypeString},
	}
	// RoomMessagesTable holds the schema information for the "room_messages" table.
	RoomMessagesTable = &schema.Table{
		Name:       "room_messages",
		Columns:    RoomMessagesColumns,
		PrimaryKey: []*schema.Column{RoomMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "room_messages_rooms_messages",
				Columns:    []*schema.Column{RoomMessagesColumns[10]},
				RefColumns: []*schema.Column{RoomsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "roommessage_room_id_seq",
				Unique:  true,
				Columns: []*schema.Column{RoomMessagesColumns[10], RoomMessagesColumns[2]},
			},
			{
				Name:    "roommessage_room_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{RoomMessagesColumns[10], RoomMessagesColumns[8]},
			},
		},
	}
	// RoomParticipantsColumns holds the columns for the "room_participants" table.
	RoomParticipantsColumns = []*schema.Column{
		{Name: "room_participant_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "last_read_seq", Type: field.TypeInt64, Default: 0},
		{Name: "last_read_at", Type: field.TypeTime, Nullable: true},
		{Name: "joined_at", Type: field.TypeTime},
		{Name: "room_id", Type: field.TypeString},
	}
	// RoomParticipantsTable holds the schema information for the "room_participants" table.
	RoomParticipantsTable = &schema.Table{
		Name:       "room_participants",
		Columns:    RoomParticipantsColumns,
		PrimaryKey: []*schema.Column{RoomParticipantsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "room_participants_rooms_participants",
				Columns:    []*schema.Column{RoomParticipantsColumns[5]},
				RefColumns: []*schema.Column{RoomsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "roomparticipant_room_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{RoomParticipantsColumns[5], RoomParticipantsColumns[1]},
			},
			{
				Name:    "roomparticipant_user_id",
				Unique:  false,
				Columns: []*schema.Column{RoomParticipantsColumns[1]},
			},
		},
	}
	// WorkflowsColumns holds the columns for the "workflows" table.
	WorkflowsColumns = []*schema.Column{
		{Name: "workflow_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "template_name", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "user_context", Type: field.TypeJSON, Nullable: true},
		{Name: "max_parallel", Type: field.TypeInt, Default: 4},
		{Name: "final_output", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "archived_at", Type: field.TypeTime, Nullable: true},
		{Name: "conversation_id", Type: field.TypeString},
	}
	// WorkflowsTable holds the schema information for the "workflows" table.
	WorkflowsTable = &schema.Table{
		Name:       "workflows",
		Columns:    WorkflowsColumns,
		PrimaryKey: []*schema.Column{WorkflowsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "workflows_conversations_workflows",
				Columns:    []*schema.Column{WorkflowsColumns[14]},
				RefColumns: []*schema.Column{ConversationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "workflow_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{WorkflowsColumns[3], WorkflowsColumns[10]},
			},
			{
				Name:    "workflow_conversation_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{WorkflowsColumns[14], WorkflowsColumns[10]},
			},
		},
	}
	// WorkflowStepsColumns holds the columns for the "workflow_steps" table.
	WorkflowStepsColumns = []*schema.Column{
		{Name: "workflow_step_id", Type: field.TypeString, Unique: true},
		{Name: "step_id", Type: field.TypeString},
		{Name: "agent_type", Type: field.TypeString},
		{Name: "task_description", Type: field.TypeString, Size: 2147483647},
		{Name: "depends_on", Type: field.TypeJSON, Nullable: true},
		{Name: "input_requirements", Type: field.TypeJSON, Nullable: true},
		{Name: "output_specifications", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "max_retries", Type: field.TypeInt, Default: 2},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "execution_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "workflow_id", Type: field.TypeString},
	}
	// WorkflowStepsTable holds the schema information for the "workflow_steps" table.
	WorkflowStepsTable = &schema.Table{
		Name:       "workflow_steps",
		Columns:    WorkflowStepsColumns,
		PrimaryKey: []*schema.Column{WorkflowStepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "workflow_steps_workflows_steps",
				Columns:    []*schema.Column{WorkflowStepsColumns[15]},
				RefColumns: []*schema.Column{WorkflowsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "workflowstep_workflow_id_step_id",
				Unique:  true,
				Columns: []*schema.Column{WorkflowStepsColumns[15], WorkflowStepsColumns[1]},
			},
			{
				Name:    "workflowstep_workflow_id_status",
				Unique:  false,
				Columns: []*schema.Column{WorkflowStepsColumns[15], WorkflowStepsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChatMessagesTable,
		CheckpointsTable,
		ContinuityStatesTable,
		ConversationsTable,
		EditProposalsTable,
		EventsTable,
		FeedsTable,
		FeedArticlesTable,
		MessageReactionsTable,
		PresencesTable,
		RoomsTable,
		RoomMessagesTable,
		RoomParticipantsTable,
		WorkflowsTable,
		WorkflowStepsTable,
	}
)

func init() {
	ChatMessagesTable.ForeignKeys[0].RefTable = ConversationsTable
	CheckpointsTable.ForeignKeys[0].RefTable = WorkflowsTable
	FeedArticlesTable.ForeignKeys[0].RefTable = FeedsTable
	MessageReactionsTable.ForeignKeys[0].RefTable = RoomMessagesTable
	RoomMessagesTable.ForeignKeys[0].RefTable = RoomsTable
	RoomParticipantsTable.ForeignKeys[0].RefTable = RoomsTable
	WorkflowsTable.ForeignKeys[0].RefTable = ConversationsTable
	WorkflowStepsTable.ForeignKeys[0].RefTable = WorkflowsTable
}
