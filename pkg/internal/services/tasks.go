package services

import (
	"fmt"
	"time"

	"github.com/BienNg/chatter-sub000/pkg/internal/database"
	"github.com/BienNg/chatter-sub000/pkg/internal/models"
)

func ListTask(channel models.Channel) ([]models.Task, error) {
	var tasks []models.Task
	if err := database.C.Where(models.Task{
		ChannelID: channel.ID,
	}).Order("created_at DESC").Find(&tasks).Error; err != nil {
		return tasks, err
	}
	return tasks, nil
}

func GetTask(id uint) (models.Task, error) {
	var task models.Task
	if err := database.C.Where(models.Task{
		BaseModel: models.BaseModel{ID: id},
	}).First(&task).Error; err != nil {
		return task, err
	}
	return task, nil
}

// PromoteMessageToTask turns a message into a tracked item. The task keeps
// the message reference so its detail view reads the same reply stream as
// the plain thread view.
func PromoteMessageToTask(channel models.Channel, message models.Message, title string, assigneeId *uint) (models.Task, error) {
	if message.ChannelID != channel.ID {
		return models.Task{}, fmt.Errorf("message does not belong to this channel")
	}
	if len(title) == 0 {
		title = message.Content
	}

	task := models.Task{
		AuthorSnapshot: message.AuthorSnapshot,
		Title:          title,
		Notes:          message.Content,
		Status:         models.TaskStatusOpen,
		ChannelID:      channel.ID,
		MessageID:      &message.ID,
		AssigneeID:     assigneeId,
	}

	if err := database.C.Save(&task).Error; err != nil {
		return task, err
	}

	return task, nil
}

func CompleteTask(task models.Task) (models.Task, error) {
	now := time.Now()
	task.Status = models.TaskStatusDone
	task.CompletedAt = &now

	if err := database.C.Save(&task).Error; err != nil {
		return task, err
	}

	return task, nil
}

func DeleteTask(task models.Task) error {
	return database.C.Delete(&task).Error
}
