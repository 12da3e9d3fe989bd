package services

import (
	"fmt"
	"testing"

	"github.com/BienNg/chatter-sub000/pkg/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFeedSnapshotCapsTheWindow(t *testing.T) {
	useTestDatabase(t)

	account := seedAccount(t, "firehose")
	channel := seedChannel(t, account, "busy")

	total := FeedMaxLength + 5
	for idx := 1; idx <= total; idx++ {
		seedMessage(t, channel, account, fmt.Sprintf("msg %d", idx))
	}

	snapshot, err := BuildFeedSnapshot(channel.ID)
	require.NoError(t, err)
	assert.Equal(t, "feed.snapshot", snapshot.Action)

	payload := snapshot.Payload.(map[string]any)
	assert.EqualValues(t, total, payload["count"])

	messages := payload["messages"].([]models.Message)
	require.Len(t, messages, FeedMaxLength)

	// Capped to the newest window; within it, oldest first.
	assert.Equal(t, "msg 6", messages[0].Content)
	assert.Equal(t, fmt.Sprintf("msg %d", total), messages[len(messages)-1].Content)
}

func TestBuildThreadSnapshotForFreshThread(t *testing.T) {
	useTestDatabase(t)

	account := seedAccount(t, "threader")
	channel := seedChannel(t, account, "threads")
	parent := seedMessage(t, channel, account, "root")

	snapshot, err := BuildThreadSnapshot(channel.ID, parent.ID)
	require.NoError(t, err)
	assert.Equal(t, "thread.snapshot", snapshot.Action)

	payload := snapshot.Payload.(map[string]any)
	assert.EqualValues(t, 0, payload["count"])
	assert.Empty(t, payload["replies"].([]models.Reply))
}
