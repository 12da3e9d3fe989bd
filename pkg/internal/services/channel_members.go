package services

import (
	"errors"

	"github.com/BienNg/chatter-sub000/pkg/internal/database"
	"github.com/BienNg/chatter-sub000/pkg/internal/models"
	"gorm.io/gorm"
)

func CountChannelMember(channelId uint) (int64, error) {
	var count int64
	if err := database.C.Where(&models.ChannelMember{
		ChannelID: channelId,
	}).Model(&models.ChannelMember{}).Count(&count).Error; err != nil {
		return 0, err
	} else {
		return count, nil
	}
}

func ListChannelMember(channelId uint, take int, offset int) ([]models.ChannelMember, error) {
	var members []models.ChannelMember

	if err := database.C.
		Limit(take).Offset(offset).
		Where(&models.ChannelMember{ChannelID: channelId}).
		Preload("Account").
		Find(&members).Error; err != nil {
		return members, err
	}

	return members, nil
}

func GetChannelMember(user models.Account, channelId uint) (models.ChannelMember, error) {
	var member models.ChannelMember

	if err := database.C.
		Where(&models.ChannelMember{AccountID: user.ID, ChannelID: channelId}).
		Preload("Account").
		First(&member).Error; err != nil {
		return member, err
	}

	return member, nil
}

func AddChannelMember(user models.Account, target models.Channel) error {
	var member models.ChannelMember
	if err := database.C.Where(&models.ChannelMember{
		AccountID: user.ID,
		ChannelID: target.ID,
	}).First(&member).Error; err == nil || !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}

	member = models.ChannelMember{
		ChannelID: target.ID,
		AccountID: user.ID,
	}

	err := database.C.Save(&member).Error

	if err == nil {
		invalidateChannelCache(target)
	}

	return err
}

func EditChannelMember(membership models.ChannelMember) (models.ChannelMember, error) {
	if err := database.C.Save(&membership).Error; err != nil {
		return membership, err
	}

	invalidateChannelCache(models.Channel{BaseModel: models.BaseModel{ID: membership.ChannelID}})

	return membership, nil
}

func RemoveChannelMember(member models.ChannelMember, target models.Channel) error {
	// Hard delete so the member can rejoin without tripping the identity index.
	if err := database.C.Unscoped().Delete(&member).Error; err != nil {
		return err
	}

	invalidateChannelCache(target)

	return nil
}
