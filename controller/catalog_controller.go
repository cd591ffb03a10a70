package controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"swap-backend/usecase"
)

// CatalogController serves categories, likes and item images.
type CatalogController struct {
	usecase *usecase.CatalogUsecase
	logger  *log.Logger
}

func NewCatalogController(usecase *usecase.CatalogUsecase, logger *log.Logger) *CatalogController {
	return &CatalogController{usecase: usecase, logger: logger}
}

func (h *CatalogController) ListCategories(c *gin.Context) {
	categories, err := h.usecase.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CatalogController) GetCategory(c *gin.Context) {
	category, err := h.usecase.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

type likeRequest struct {
	ItemID string `json:"item" binding:"required"`
}

func (h *CatalogController) Like(c *gin.Context) {
	var req likeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	like, err := h.usecase.Like(c.Request.Context(), currentUser(c), req.ItemID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, like)
}

func (h *CatalogController) ListLikes(c *gin.Context) {
	likes, err := h.usecase.ListLikes(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, likes)
}

func (h *CatalogController) GetLike(c *gin.Context) {
	like, err := h.usecase.GetLike(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, like)
}

func (h *CatalogController) Unlike(c *gin.Context) {
	if err := h.usecase.Unlike(c.Request.Context(), currentUser(c), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type imageRequest struct {
	ItemID string `json:"item" binding:"required"`
	URL    string `json:"image" binding:"required"`
}

func (h *CatalogController) AddImage(c *gin.Context) {
	var req imageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	img, err := h.usecase.AddImage(c.Request.Context(), currentUser(c), req.ItemID, req.URL)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, img)
}

func (h *CatalogController) RemoveImage(c *gin.Context) {
	if err := h.usecase.RemoveImage(c.Request.Context(), currentUser(c), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
