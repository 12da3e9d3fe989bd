package services

import (
	"testing"

	"github.com/BienNg/chatter-sub000/pkg/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromoteMessageToTaskSharesReplyStream(t *testing.T) {
	useTestDatabase(t)

	account := seedAccount(t, "manager")
	channel := seedChannel(t, account, "work")
	message := seedMessage(t, channel, account, "fix the boiler")

	task, err := PromoteMessageToTask(channel, message, "", nil)
	require.NoError(t, err)
	assert.Equal(t, "fix the boiler", task.Title)
	assert.Equal(t, models.TaskStatusOpen, task.Status)
	require.NotNil(t, task.MessageID)

	// Replies posted to the message show up under the task's thread key.
	_, err = NewReply(message, models.Reply{
		AuthorSnapshot: models.AuthorSnapshot{AuthorID: account.ID, AuthorName: account.Name},
		Content:        "plumber booked",
	})
	require.NoError(t, err)

	replies, err := ListReply(*task.MessageID, 100, 0)
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.Equal(t, "plumber booked", replies[0].Content)
}

func TestPromoteMessageToTaskRejectsForeignChannel(t *testing.T) {
	useTestDatabase(t)

	account := seedAccount(t, "confused")
	home := seedChannel(t, account, "home")
	away := seedChannel(t, account, "away")
	message := seedMessage(t, home, account, "wrong place")

	_, err := PromoteMessageToTask(away, message, "nope", nil)
	require.Error(t, err)
}

func TestCompleteTaskStampsCompletion(t *testing.T) {
	useTestDatabase(t)

	account := seedAccount(t, "closer")
	channel := seedChannel(t, account, "done-pile")
	message := seedMessage(t, channel, account, "ship release")

	task, err := PromoteMessageToTask(channel, message, "release", nil)
	require.NoError(t, err)
	require.Nil(t, task.CompletedAt)

	done, err := CompleteTask(task)
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusDone, done.Status)
	require.NotNil(t, done.CompletedAt)

	listed, err := ListTask(channel)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, models.TaskStatusDone, listed[0].Status)
}
