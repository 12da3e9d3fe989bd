package models

import "time"

type TaskStatus = uint8

const (
	TaskStatusOpen = TaskStatus(iota)
	TaskStatusDone
)

// Task is a message promoted to a tracked item. The task detail view reads
// the promoted message's reply stream, so MessageID doubles as the thread key.
type Task struct {
	BaseModel
	AuthorSnapshot

	Title       string     `json:"title"`
	Notes       string     `json:"notes"`
	Status      TaskStatus `json:"status"`
	ChannelID   uint       `json:"channel_id"`
	MessageID   *uint      `json:"message_id"`
	AssigneeID  *uint      `json:"assignee_id"`
	CompletedAt *time.Time `json:"completed_at"`
}
