package services

import (
	"context"
	"fmt"

	localCache "github.com/BienNg/chatter-sub000/pkg/internal/cache"
	"github.com/BienNg/chatter-sub000/pkg/internal/database"
	"github.com/BienNg/chatter-sub000/pkg/internal/models"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/samber/lo"
)

type channelIdentityCacheEntry struct {
	Channel       models.Channel
	ChannelMember models.ChannelMember
}

func GetChannelIdentityCacheKey(channel uint, user uint) string {
	return fmt.Sprintf("channel-identity-%d#%d", channel, user)
}

func CacheChannelIdentity(channel models.Channel, member models.ChannelMember, user uint) {
	if localCache.S == nil {
		return
	}

	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)
	contx := context.Background()

	_ = marshal.Set(
		contx,
		GetChannelIdentityCacheKey(channel.ID, user),
		channelIdentityCacheEntry{channel, member},
		store.WithTags([]string{"channel-identity", fmt.Sprintf("channel#%d", channel.ID), fmt.Sprintf("user#%d", user)}),
	)
}

func invalidateChannelCache(channel models.Channel) {
	if localCache.S == nil {
		return
	}

	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)
	contx := context.Background()

	_ = marshal.Invalidate(
		contx,
		store.WithInvalidateTags([]string{fmt.Sprintf("channel#%d", channel.ID)}),
	)
}

// GetChannelIdentity resolves (channel, membership) for one user, backed by
// the redis identity cache.
func GetChannelIdentity(channelId uint, user uint) (models.Channel, models.ChannelMember, error) {
	if localCache.S != nil {
		cacheManager := cache.New[any](localCache.S)
		marshal := marshaler.New(cacheManager)
		contx := context.Background()

		if val, err := marshal.Get(contx, GetChannelIdentityCacheKey(channelId, user), new(channelIdentityCacheEntry)); err == nil {
			entry := val.(*channelIdentityCacheEntry)
			return entry.Channel, entry.ChannelMember, nil
		}
	}

	channel, member, err := GetAvailableChannel(channelId, user)
	if err == nil {
		CacheChannelIdentity(channel, member, user)
	}

	return channel, member, err
}

func GetChannel(id uint) (models.Channel, error) {
	var channel models.Channel
	if err := database.C.Where(models.Channel{
		BaseModel: models.BaseModel{ID: id},
	}).Preload("Members").Preload("Members.Account").First(&channel).Error; err != nil {
		return channel, err
	}

	return channel, nil
}

func GetAvailableChannel(id uint, user uint) (models.Channel, models.ChannelMember, error) {
	var err error
	var member models.ChannelMember
	var channel models.Channel
	if channel, err = GetChannel(id); err != nil {
		return channel, member, err
	}

	if err := database.C.Where(models.ChannelMember{
		AccountID: user,
		ChannelID: channel.ID,
	}).Preload("Account").First(&member).Error; err != nil {
		return channel, member, fmt.Errorf("channel principal not found: %v", err.Error())
	}

	return channel, member, nil
}

func ListChannel(user *models.Account) ([]models.Channel, error) {
	var idRange []uint
	if user != nil {
		var identities []models.ChannelMember
		if err := database.C.Where("account_id = ?", user.ID).Find(&identities).Error; err != nil {
			return nil, fmt.Errorf("unable to get identities: %v", err)
		}
		idRange = lo.Map(identities, func(item models.ChannelMember, index int) uint {
			return item.ChannelID
		})
	}

	var channels []models.Channel
	if err := database.C.
		Where("id IN ?", idRange).
		Preload("Members").Preload("Members.Account").
		Find(&channels).Error; err != nil {
		return channels, err
	}

	return channels, nil
}

func ListOwnedChannel(user models.Account) ([]models.Channel, error) {
	var channels []models.Channel
	if err := database.C.Where(&models.Channel{AccountID: user.ID}).Find(&channels).Error; err != nil {
		return channels, err
	}

	return channels, nil
}

func NewChannel(channel models.Channel) (models.Channel, error) {
	channel.Members = []models.ChannelMember{
		{AccountID: channel.AccountID, PowerLevel: 100},
	}

	err := database.C.Save(&channel).Error
	return channel, err
}

func EditChannel(channel models.Channel, name, description string, kind models.ChannelType) (models.Channel, error) {
	channel.Name = name
	channel.Description = description
	channel.Type = kind

	err := database.C.Save(&channel).Error

	if err == nil {
		invalidateChannelCache(channel)
	}

	return channel, err
}

// ArchiveChannel flips the archive flag instead of removing the record; the
// channel stays readable but drops out of active listings.
func ArchiveChannel(channel models.Channel, archived bool) (models.Channel, error) {
	channel.IsArchived = archived
	err := database.C.Save(&channel).Error

	if err == nil {
		invalidateChannelCache(channel)
	}

	return channel, err
}

func DeleteChannel(channel models.Channel) error {
	if err := database.C.Delete(&channel).Error; err != nil {
		return err
	}

	database.C.Where("channel_id = ?", channel.ID).Delete(&models.Message{})
	database.C.Where("channel_id = ?", channel.ID).Delete(&models.Reply{})

	invalidateChannelCache(channel)
	UnsubscribeAllWithChannel(channel.ID)

	return nil
}
