package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostelshub_backend/internals/constants"
	"hostelshub_backend/internals/features/chat/model"
	userModel "hostelshub_backend/internals/features/users/user/model"
	helper "hostelshub_backend/internals/helpers"
)

// StartConversation opens (or returns) the thread between a student
// and a manager. Either side may initiate; staff have no chat.
func StartConversation(db *gorm.DB, userID, withUserID uuid.UUID) (*model.ConversationModel, error) {
	if userID == withUserID {
		return nil, helper.NewValidation("You cannot start a conversation with yourself")
	}

	var me, other userModel.UserModel
	if err := db.First(&me, "id = ?", userID).Error; err != nil {
		return nil, helper.NewInternal(err)
	}
	if err := db.First(&other, "id = ?", withUserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NewNotFound("User not found")
		}
		return nil, helper.NewInternal(err)
	}

	var studentUserID, managerUserID uuid.UUID
	switch {
	case me.Role == constants.RoleStudent && other.Role == constants.RoleManager:
		studentUserID, managerUserID = me.ID, other.ID
	case me.Role == constants.RoleManager && other.Role == constants.RoleStudent:
		studentUserID, managerUserID = other.ID, me.ID
	default:
		return nil, helper.NewDomainRule("Conversations run between one student and one manager")
	}

	var conv model.ConversationModel
	err := db.Where("student_id = ? AND manager_id = ?", studentUserID, managerUserID).
		First(&conv).Error
	if err == nil {
		return &conv, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NewInternal(err)
	}

	conv = model.ConversationModel{StudentID: studentUserID, ManagerID: managerUserID}
	if err := db.Create(&conv).Error; err != nil {
		return nil, helper.NewInternal(err)
	}
	return &conv, nil
}

// conversationFor loads a thread and checks the caller participates.
func conversationFor(db *gorm.DB, userID, conversationID uuid.UUID) (*model.ConversationModel, error) {
	var conv model.ConversationModel
	if err := db.First(&conv, "id = ?", conversationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NewNotFound("Conversation not found")
		}
		return nil, helper.NewInternal(err)
	}
	if conv.StudentID != userID && conv.ManagerID != userID {
		return nil, helper.NewForbidden("You are not part of this conversation")
	}
	return &conv, nil
}

// SendMessage appends to a thread the caller participates in.
func SendMessage(db *gorm.DB, userID, conversationID uuid.UUID, body string) (*model.MessageModel, error) {
	conv, err := conversationFor(db, userID, conversationID)
	if err != nil {
		return nil, err
	}

	msg := model.MessageModel{
		ConversationID: conv.ID,
		SenderID:       userID,
		Body:           body,
	}
	if err := db.Create(&msg).Error; err != nil {
		return nil, helper.NewInternal(err)
	}
	// Bump the thread so inboxes sort by activity.
	if err := db.Model(conv).Update("updated_at", msg.CreatedAt).Error; err != nil {
		return nil, helper.NewInternal(err)
	}
	return &msg, nil
}

// MyConversations lists the caller's threads, most recent activity first.
func MyConversations(db *gorm.DB, userID uuid.UUID) ([]model.ConversationModel, error) {
	var conversations []model.ConversationModel
	if err := db.Where("student_id = ? OR manager_id = ?", userID, userID).
		Order("updated_at DESC").
		Find(&conversations).Error; err != nil {
		return nil, helper.NewInternal(err)
	}
	return conversations, nil
}

// Messages pages through one thread, oldest first.
func Messages(db *gorm.DB, userID, conversationID uuid.UUID, paging helper.Paging) ([]model.MessageModel, int64, error) {
	if _, err := conversationFor(db, userID, conversationID); err != nil {
		return nil, 0, err
	}

	q := db.Model(&model.MessageModel{}).Where("conversation_id = ?", conversationID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, helper.NewInternal(err)
	}

	var messages []model.MessageModel
	if err := q.Order("created_at ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&messages).Error; err != nil {
		return nil, 0, helper.NewInternal(err)
	}
	return messages, total, nil
}
