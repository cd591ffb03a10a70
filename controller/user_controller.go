package controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"swap-backend/model"
	"swap-backend/usecase"
)

const tokenTTL = 30 * 24 * time.Hour

type UserController struct {
	usecase *usecase.UserUsecase
	secret  []byte
	logger  *log.Logger
}

func NewUserController(usecase *usecase.UserUsecase, secret []byte, logger *log.Logger) *UserController {
	return &UserController{usecase: usecase, secret: secret, logger: logger}
}

type registerResponse struct {
	*model.User
	Token string `json:"token"`
}

// Register creates the account and returns it with a bearer token.
func (h *UserController) Register(c *gin.Context) {
	var in usecase.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	user, err := h.usecase.Register(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	token, err := IssueToken(h.secret, user.ID, tokenTTL)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, registerResponse{User: user, Token: token})
}

func (h *UserController) Profile(c *gin.Context) {
	profile, err := h.usecase.PublicProfile(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *UserController) Account(c *gin.Context) {
	acc, err := h.usecase.Account(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, acc)
}

func (h *UserController) UpdateLocation(c *gin.Context) {
	var loc model.Location
	if err := c.ShouldBindJSON(&loc); err != nil {
		badRequest(c, err)
		return
	}
	user, err := h.usecase.UpdateLocation(c.Request.Context(), currentUser(c), loc)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type interestsRequest struct {
	Categories []string `json:"categories"`
}

func (h *UserController) SetInterests(c *gin.Context) {
	var req interestsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	categories, err := h.usecase.SetInterests(c.Request.Context(), currentUser(c), req.Categories)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}
