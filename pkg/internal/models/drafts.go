package models

import "gorm.io/datatypes"

// Draft is uncommitted composer content keyed by (account, channel, thread).
// ThreadID zero means the channel-level composer; a draft written for the
// channel composer is never served to a thread composer or vice versa.
type Draft struct {
	BaseModel

	AccountID uint `json:"account_id" gorm:"uniqueIndex:idx_drafts_scope"`
	ChannelID uint `json:"channel_id" gorm:"uniqueIndex:idx_drafts_scope"`
	ThreadID  uint `json:"thread_id" gorm:"uniqueIndex:idx_drafts_scope"`

	Content     string                      `json:"content"`
	Attachments datatypes.JSONSlice[string] `json:"attachments"`
}
