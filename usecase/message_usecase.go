package usecase

import (
	"context"
	"strings"
	"time"

	"swap-backend/model"
)

const maxCommentLen = 2000

type MessageUsecase struct {
	repos Repositories
}

func NewMessageUsecase(repos Repositories) *MessageUsecase {
	return &MessageUsecase{repos: repos}
}

func (u *MessageUsecase) Send(ctx context.Context, senderID, recipientID, text string) (*model.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, validationf("text may not be blank")
	}
	if recipientID == senderID {
		return nil, validationf("you cannot send a message to yourself")
	}
	recipient, err := u.repos.Users.GetByID(ctx, recipientID)
	if err != nil {
		return nil, err
	}
	if recipient == nil {
		return nil, validationf("user %q does not exist", recipientID)
	}

	msg := &model.Message{
		ID:          newID(),
		SenderID:    senderID,
		RecipientID: recipientID,
		Text:        text,
		CreatedAt:   time.Now().UTC(),
	}
	if err := u.repos.Messages.Insert(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// Inbox lists the messages the user sent or received, newest first.
func (u *MessageUsecase) Inbox(ctx context.Context, userID string) ([]model.Message, error) {
	msgs, err := u.repos.Messages.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if msgs == nil {
		msgs = []model.Message{}
	}
	return msgs, nil
}

func (u *MessageUsecase) Get(ctx context.Context, userID, id string) (*model.Message, error) {
	msg, err := u.repos.Messages.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, notFoundf("message not found")
	}
	if msg.SenderID != userID && msg.RecipientID != userID {
		return nil, unauthorizedf("this message is not yours")
	}
	return msg, nil
}

func (u *MessageUsecase) Comment(ctx context.Context, userID, itemID, content string) (*model.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, validationf("content may not be blank")
	}
	if len(content) > maxCommentLen {
		return nil, validationf("content has more than %d characters", maxCommentLen)
	}
	item, err := u.repos.Items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, notFoundf("item not found")
	}

	c := &model.Comment{ID: newID(), ItemID: itemID, UserID: userID, Content: content, CreatedAt: time.Now().UTC()}
	if err := u.repos.Comments.Insert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Comments lists an item's comments, oldest first.
func (u *MessageUsecase) Comments(ctx context.Context, itemID string) ([]model.Comment, error) {
	item, err := u.repos.Items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, notFoundf("item not found")
	}
	comments, err := u.repos.Comments.ListByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []model.Comment{}
	}
	return comments, nil
}
