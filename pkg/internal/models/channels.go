package models

import "fmt"

type ChannelType = uint8

const (
	ChannelTypeGeneral = ChannelType(iota)
	ChannelTypeClass
	ChannelTypeManagement
	ChannelTypeDirect
)

type Channel struct {
	BaseModel

	Name        string      `json:"name"`
	Description string      `json:"description"`
	Type        ChannelType `json:"type"`
	IsArchived  bool        `json:"is_archived"`
	AccountID   uint        `json:"account_id"`

	Members  []ChannelMember `json:"members"`
	Messages []Message       `json:"messages"`
}

func (v Channel) DisplayText() string {
	if v.Type == ChannelTypeDirect {
		return "DM"
	}
	if v.Type == ChannelTypeClass {
		return fmt.Sprintf("%s (class)", v.Name)
	}
	return v.Name
}

type NotifyLevel = int8

const (
	NotifyLevelAll = NotifyLevel(iota)
	NotifyLevelMentioned
	NotifyLevelNone
)

type ChannelMember struct {
	BaseModel

	ChannelID  uint        `json:"channel_id" gorm:"uniqueIndex:idx_channel_members_identity"`
	AccountID  uint        `json:"account_id" gorm:"uniqueIndex:idx_channel_members_identity"`
	Channel    Channel     `json:"channel"`
	Account    Account     `json:"account"`
	Notify     NotifyLevel `json:"notify"`
	PowerLevel int         `json:"power_level"`
}
