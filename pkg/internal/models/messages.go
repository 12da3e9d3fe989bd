package models

import (
	"time"

	"gorm.io/datatypes"
)

// AuthorSnapshot is the sender identity denormalized onto each message at
// write time. Later profile edits never rewrite history.
type AuthorSnapshot struct {
	AuthorID    uint   `json:"author_id"`
	AuthorName  string `json:"author_name"`
	AuthorEmail string `json:"author_email"`
}

type Message struct {
	BaseModel
	AuthorSnapshot

	Uuid        string                      `json:"uuid" gorm:"uniqueIndex"`
	Content     string                      `json:"content"`
	Attachments datatypes.JSONSlice[string] `json:"attachments"`
	ChannelID   uint                        `json:"channel_id"`
	Channel     Channel                     `json:"channel"`

	RelatedUsers datatypes.JSONSlice[uint] `json:"related_users"`

	// Thread aggregate, maintained in the same transaction as each reply
	// insert so the count never drifts from the reply rows.
	ReplyCount         int64             `json:"reply_count"`
	LastReply          datatypes.JSONMap `json:"last_reply"`
	LastThreadActivity *time.Time        `json:"last_thread_activity"`

	IsPinned bool       `json:"is_pinned"`
	EditedAt *time.Time `json:"edited_at"`

	Reactions []Reaction `json:"reactions"`
	Replies   []Reply    `json:"replies"`
}

type Reply struct {
	BaseModel
	AuthorSnapshot

	Uuid        string                      `json:"uuid" gorm:"uniqueIndex"`
	Content     string                      `json:"content"`
	Attachments datatypes.JSONSlice[string] `json:"attachments"`
	MessageID   uint                        `json:"message_id"`
	ChannelID   uint                        `json:"channel_id"`
}

type Reaction struct {
	BaseModel

	MessageID uint   `json:"message_id" gorm:"uniqueIndex:idx_reactions_identity"`
	AccountID uint   `json:"account_id" gorm:"uniqueIndex:idx_reactions_identity"`
	Symbol    string `json:"symbol" gorm:"uniqueIndex:idx_reactions_identity"`
}

type ReactionGroup struct {
	Symbol   string `json:"symbol"`
	Count    int    `json:"count"`
	Accounts []uint `json:"accounts"`
}
