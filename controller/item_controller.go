package controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"swap-backend/usecase"
)

type ItemController struct {
	usecase *usecase.ItemUsecase
	logger  *log.Logger
}

func NewItemController(usecase *usecase.ItemUsecase, logger *log.Logger) *ItemController {
	return &ItemController{usecase: usecase, logger: logger}
}

// List serves both the filtered search and, without query parameters, the
// suggestions for the current user.
func (h *ItemController) List(c *gin.Context) {
	items, err := h.usecase.Search(c.Request.Context(), currentUser(c), c.Request.URL.Query())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ItemController) Get(c *gin.Context) {
	item, err := h.usecase.GetItem(c.Request.Context(), currentUser(c), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ItemController) Create(c *gin.Context) {
	var in usecase.ItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	item, err := h.usecase.CreateItem(c.Request.Context(), currentUser(c), in)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Update handles PUT (every field required) and PATCH.
func (h *ItemController) Update(c *gin.Context) {
	var in usecase.ItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	partial := c.Request.Method == http.MethodPatch
	item, err := h.usecase.UpdateItem(c.Request.Context(), currentUser(c), c.Param("id"), in, partial)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ItemController) Delete(c *gin.Context) {
	if err := h.usecase.DeleteItem(c.Request.Context(), currentUser(c), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
