package controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"swap-backend/usecase"
)

type MessageController struct {
	usecase *usecase.MessageUsecase
	logger  *log.Logger
}

func NewMessageController(usecase *usecase.MessageUsecase, logger *log.Logger) *MessageController {
	return &MessageController{usecase: usecase, logger: logger}
}

type messageRequest struct {
	RecipientID string `json:"recipient" binding:"required"`
	Text        string `json:"text"`
}

func (h *MessageController) Send(c *gin.Context) {
	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	msg, err := h.usecase.Send(c.Request.Context(), currentUser(c), req.RecipientID, req.Text)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

func (h *MessageController) Inbox(c *gin.Context) {
	msgs, err := h.usecase.Inbox(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

func (h *MessageController) Get(c *gin.Context) {
	msg, err := h.usecase.Get(c.Request.Context(), currentUser(c), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}

type commentRequest struct {
	Content string `json:"content"`
}

func (h *MessageController) Comment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	comment, err := h.usecase.Comment(c.Request.Context(), currentUser(c), c.Param("id"), req.Content)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (h *MessageController) Comments(c *gin.Context) {
	comments, err := h.usecase.Comments(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}
