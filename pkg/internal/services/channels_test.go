package services

import (
	"testing"

	"github.com/BienNg/chatter-sub000/pkg/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChannelEnrollsCreatorAsOperator(t *testing.T) {
	useTestDatabase(t)

	owner := seedAccount(t, "founder")
	channel := seedChannel(t, owner, "general")

	member, err := GetChannelMember(owner, channel.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, member.PowerLevel)

	count, err := CountChannelMember(channel.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestGetAvailableChannelRequiresMembership(t *testing.T) {
	useTestDatabase(t)

	owner := seedAccount(t, "insider")
	outsider := seedAccount(t, "outsider")
	channel := seedChannel(t, owner, "private-ish")

	_, _, err := GetAvailableChannel(channel.ID, owner.ID)
	require.NoError(t, err)

	_, _, err = GetAvailableChannel(channel.ID, outsider.ID)
	require.Error(t, err)

	require.NoError(t, AddChannelMember(outsider, channel))
	_, membership, err := GetAvailableChannel(channel.ID, outsider.ID)
	require.NoError(t, err)
	assert.Equal(t, outsider.ID, membership.AccountID)
}

func TestRemoveChannelMemberAllowsRejoining(t *testing.T) {
	useTestDatabase(t)

	owner := seedAccount(t, "keeper")
	guest := seedAccount(t, "guest")
	channel := seedChannel(t, owner, "revolving-door")

	require.NoError(t, AddChannelMember(guest, channel))
	member, err := GetChannelMember(guest, channel.ID)
	require.NoError(t, err)

	require.NoError(t, RemoveChannelMember(member, channel))
	_, err = GetChannelMember(guest, channel.ID)
	require.Error(t, err)

	require.NoError(t, AddChannelMember(guest, channel))
	_, err = GetChannelMember(guest, channel.ID)
	require.NoError(t, err)
}

func TestArchiveChannelKeepsHistoryReadable(t *testing.T) {
	useTestDatabase(t)

	owner := seedAccount(t, "archivist")
	channel := seedChannel(t, owner, "season-one")
	seedMessage(t, channel, owner, "for the record")

	archived, err := ArchiveChannel(channel, true)
	require.NoError(t, err)
	assert.True(t, archived.IsArchived)

	messages, err := ListMessage(archived, 100, 0)
	require.NoError(t, err)
	assert.Len(t, messages, 1)

	restored, err := ArchiveChannel(archived, false)
	require.NoError(t, err)
	assert.False(t, restored.IsArchived)
}

func TestDeleteChannelCascadesMessages(t *testing.T) {
	useTestDatabase(t)

	owner := seedAccount(t, "demolisher")
	channel := seedChannel(t, owner, "doomed")
	message := seedMessage(t, channel, owner, "last words")

	_, err := NewReply(message, models.Reply{
		AuthorSnapshot: models.AuthorSnapshot{AuthorID: owner.ID, AuthorName: owner.Name},
		Content:        "echo",
	})
	require.NoError(t, err)

	require.NoError(t, DeleteChannel(channel))

	_, err = GetChannel(channel.ID)
	require.Error(t, err)
	assert.EqualValues(t, 0, CountMessage(channel))
	assert.EqualValues(t, 0, CountReply(message.ID))
}
