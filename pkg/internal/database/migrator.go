package database

import (
	"github.com/BienNg/chatter-sub000/pkg/internal/models"
	"gorm.io/gorm"
)

var AutoMaintainRange = []any{
	&models.Account{},
	&models.Channel{},
	&models.ChannelMember{},
	&models.Message{},
	&models.Reply{},
	&models.Reaction{},
	&models.Draft{},
	&models.Task{},
	&models.Student{},
	&models.Course{},
	&models.Class{},
	&models.ClassStudent{},
	&models.Enrollment{},
	&models.Payment{},
	&models.Notification{},
}

func RunMigration(source *gorm.DB) error {
	if err := source.AutoMigrate(AutoMaintainRange...); err != nil {
		return err
	}

	return nil
}
