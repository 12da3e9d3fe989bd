package services

import (
	"errors"
	"sync"
	"time"

	"github.com/BienNg/chatter-sub000/pkg/internal/database"
	"github.com/BienNg/chatter-sub000/pkg/internal/models"
	"github.com/bep/debounce"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// DraftFlushDelay is how long the store waits after the last keystroke
// before persisting a draft.
const DraftFlushDelay = time.Second

type draftKey struct {
	AccountID uint
	ChannelID uint
	ThreadID  uint // zero means the channel composer
}

var (
	draftLock     sync.Mutex
	draftEntries  = make(map[draftKey]models.Draft)
	draftFlushers = make(map[draftKey]func(f func()))
)

// SaveDraft records in-progress composer content and schedules a debounced
// flush. Rapid successive saves for the same key collapse into one write.
func SaveDraft(user models.Account, channelId, threadId uint, content string, attachments []string) {
	key := draftKey{AccountID: user.ID, ChannelID: channelId, ThreadID: threadId}

	draftLock.Lock()
	draftEntries[key] = models.Draft{
		AccountID:   key.AccountID,
		ChannelID:   key.ChannelID,
		ThreadID:    key.ThreadID,
		Content:     content,
		Attachments: attachments,
	}
	flusher, ok := draftFlushers[key]
	if !ok {
		flusher = debounce.New(DraftFlushDelay)
		draftFlushers[key] = flusher
	}
	draftLock.Unlock()

	flusher(func() {
		FlushDraft(key.AccountID, key.ChannelID, key.ThreadID)
	})
}

// FlushDraft persists the pending entry for one key immediately.
func FlushDraft(accountId, channelId, threadId uint) {
	key := draftKey{AccountID: accountId, ChannelID: channelId, ThreadID: threadId}

	draftLock.Lock()
	entry, ok := draftEntries[key]
	draftLock.Unlock()
	if !ok {
		return
	}

	var draft models.Draft
	err := database.C.
		Where("account_id = ? AND channel_id = ? AND thread_id = ?", key.AccountID, key.ChannelID, key.ThreadID).
		First(&draft).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Warn().Err(err).Msg("Unable to load draft for flushing...")
		return
	}

	draft.AccountID = key.AccountID
	draft.ChannelID = key.ChannelID
	draft.ThreadID = key.ThreadID
	draft.Content = entry.Content
	draft.Attachments = entry.Attachments

	if err := database.C.Save(&draft).Error; err != nil {
		log.Warn().Err(err).Msg("Unable to flush draft...")
	}
}

// LoadDraft reads the draft for exactly (account, channel, thread); a
// channel-level draft is never served for a thread key and vice versa.
func LoadDraft(user models.Account, channelId, threadId uint) (models.Draft, bool) {
	key := draftKey{AccountID: user.ID, ChannelID: channelId, ThreadID: threadId}

	draftLock.Lock()
	if entry, ok := draftEntries[key]; ok {
		draftLock.Unlock()
		return entry, true
	}
	draftLock.Unlock()

	var draft models.Draft
	if err := database.C.
		Where("account_id = ? AND channel_id = ? AND thread_id = ?", key.AccountID, key.ChannelID, key.ThreadID).
		First(&draft).Error; err != nil {
		return draft, false
	}

	return draft, true
}

// ClearDraft drops the entry for one key and supersedes any pending flush,
// so a stale debounce cannot resurrect cleared content.
func ClearDraft(user models.Account, channelId, threadId uint) error {
	key := draftKey{AccountID: user.ID, ChannelID: channelId, ThreadID: threadId}

	draftLock.Lock()
	delete(draftEntries, key)
	if flusher, ok := draftFlushers[key]; ok {
		flusher(func() {})
		delete(draftFlushers, key)
	}
	draftLock.Unlock()

	return database.C.Unscoped().
		Where("account_id = ? AND channel_id = ? AND thread_id = ?", key.AccountID, key.ChannelID, key.ThreadID).
		Delete(&models.Draft{}).Error
}

// PruneDrafts removes drafts untouched since the cutoff; ran by the cleaner.
func PruneDrafts(cutoff time.Time) (int64, error) {
	tx := database.C.Unscoped().
		Where("updated_at < ?", cutoff).
		Delete(&models.Draft{})
	return tx.RowsAffected, tx.Error
}
