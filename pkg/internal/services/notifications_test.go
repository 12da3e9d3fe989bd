package services

import (
	"testing"

	"github.com/BienNg/chatter-sub000/pkg/internal/database"
	"github.com/BienNg/chatter-sub000/pkg/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setNotifyLevel(t *testing.T, user models.Account, channel models.Channel, level models.NotifyLevel) {
	t.Helper()

	member, err := GetChannelMember(user, channel.ID)
	require.NoError(t, err)
	member.Notify = level
	_, err = EditChannelMember(member)
	require.NoError(t, err)
}

func TestNotifyChannelMessageHonorsNotifyLevels(t *testing.T) {
	useTestDatabase(t)

	author := seedAccount(t, "speaker")
	everything := seedAccount(t, "everything")
	mentionsOnly := seedAccount(t, "mentions-only")
	muted := seedAccount(t, "muted")

	channel := seedChannel(t, author, "announcements")
	for _, account := range []models.Account{everything, mentionsOnly, muted} {
		require.NoError(t, AddChannelMember(account, channel))
	}
	setNotifyLevel(t, mentionsOnly, channel, models.NotifyLevelMentioned)
	setNotifyLevel(t, muted, channel, models.NotifyLevelNone)

	// No mentions: only the all-messages member hears about it. The author
	// never gets notified about their own message.
	seedMessage(t, channel, author, "meeting moved to 3pm")

	unread, err := ListNotification(everything, true)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, "meeting moved to 3pm", unread[0].Body)

	for _, account := range []models.Account{author, mentionsOnly, muted} {
		unread, err := ListNotification(account, true)
		require.NoError(t, err)
		assert.Empty(t, unread)
	}

	// A mention reaches the mentions-only member; the muted one stays quiet.
	message, err := NewMessage(models.Message{
		AuthorSnapshot: models.AuthorSnapshot{AuthorID: author.ID, AuthorName: author.Name},
		Content:        "ping @mentions-only",
		ChannelID:      channel.ID,
		RelatedUsers:   []uint{mentionsOnly.ID, muted.ID},
	})
	require.NoError(t, err)

	unread, err = ListNotification(mentionsOnly, true)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.EqualValues(t, float64(message.ID), unread[0].Metadata["message_id"])

	unread, err = ListNotification(muted, true)
	require.NoError(t, err)
	assert.Empty(t, unread)
}

func TestMarkNotificationReadOnlyTouchesOwnRows(t *testing.T) {
	useTestDatabase(t)

	author := seedAccount(t, "sender")
	mine := seedAccount(t, "mine")
	theirs := seedAccount(t, "theirs")

	channel := seedChannel(t, author, "shared")
	require.NoError(t, AddChannelMember(mine, channel))
	require.NoError(t, AddChannelMember(theirs, channel))

	seedMessage(t, channel, author, "read receipts incoming")

	mineUnread, err := ListNotification(mine, true)
	require.NoError(t, err)
	require.Len(t, mineUnread, 1)
	theirsUnread, err := ListNotification(theirs, true)
	require.NoError(t, err)
	require.Len(t, theirsUnread, 1)

	// Marking with the other user's id must not cross account boundaries.
	require.NoError(t, MarkNotificationRead(mine, []uint{mineUnread[0].ID, theirsUnread[0].ID}))

	mineUnread, err = ListNotification(mine, true)
	require.NoError(t, err)
	assert.Empty(t, mineUnread)

	theirsUnread, err = ListNotification(theirs, true)
	require.NoError(t, err)
	assert.Len(t, theirsUnread, 1)

	var total int64
	require.NoError(t, database.C.Model(&models.Notification{}).Count(&total).Error)
	assert.EqualValues(t, 2, total)
}
