package services

import (
	"fmt"
	"testing"

	"github.com/BienNg/chatter-sub000/pkg/internal/database"
	"github.com/BienNg/chatter-sub000/pkg/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// useTestDatabase points database.C at a fresh in-memory sqlite source and
// runs the regular migrations against it. The single-connection pool keeps
// the in-memory schema alive for the whole test.
func useTestDatabase(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	raw, err := db.DB()
	require.NoError(t, err)
	raw.SetMaxOpenConns(1)

	require.NoError(t, database.RunMigration(db))
	database.C = db
}

func seedAccount(t *testing.T, name string) models.Account {
	t.Helper()

	account := models.Account{
		Name:  name,
		Nick:  name,
		Email: fmt.Sprintf("%s@example.com", name),
	}
	require.NoError(t, database.C.Create(&account).Error)
	return account
}

func seedChannel(t *testing.T, owner models.Account, name string) models.Channel {
	t.Helper()

	channel, err := NewChannel(models.Channel{
		Name:      name,
		Type:      models.ChannelTypeGeneral,
		AccountID: owner.ID,
	})
	require.NoError(t, err)
	return channel
}

func seedMessage(t *testing.T, channel models.Channel, author models.Account, content string) models.Message {
	t.Helper()

	message, err := NewMessage(models.Message{
		AuthorSnapshot: models.AuthorSnapshot{
			AuthorID:    author.ID,
			AuthorName:  author.Name,
			AuthorEmail: author.Email,
		},
		Content:   content,
		ChannelID: channel.ID,
	})
	require.NoError(t, err)
	return message
}
