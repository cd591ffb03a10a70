package controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"swap-backend/model"
	"swap-backend/usecase"
)

// OfferController serves trade offers and the notes left on them.
type OfferController struct {
	offers *usecase.OfferUsecase
	notes  *usecase.NoteUsecase
	logger *log.Logger
}

func NewOfferController(offers *usecase.OfferUsecase, notes *usecase.NoteUsecase, logger *log.Logger) *OfferController {
	return &OfferController{offers: offers, notes: notes, logger: logger}
}

type offerResponse struct {
	*model.Offer
	State model.OfferState `json:"state"`
}

func renderOffer(o *model.Offer) offerResponse {
	return offerResponse{Offer: o, State: o.State()}
}

func (h *OfferController) Create(c *gin.Context) {
	var in usecase.OfferInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	offer, err := h.offers.Create(c.Request.Context(), currentUser(c), in)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, renderOffer(offer))
}

func (h *OfferController) Get(c *gin.Context) {
	offer, err := h.offers.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, renderOffer(offer))
}

func (h *OfferController) Update(c *gin.Context) {
	var in usecase.OfferInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	partial := c.Request.Method == http.MethodPatch
	offer, err := h.offers.Update(c.Request.Context(), currentUser(c), c.Param("id"), in, partial)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, renderOffer(offer))
}

func (h *OfferController) Delete(c *gin.Context) {
	if err := h.offers.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OfferController) CreateNote(c *gin.Context) {
	var in usecase.NoteInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	note, err := h.notes.Create(c.Request.Context(), currentUser(c), in)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, note)
}

func (h *OfferController) GetNote(c *gin.Context) {
	note, err := h.notes.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

func (h *OfferController) UpdateNote(c *gin.Context) {
	var in usecase.NoteInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	note, err := h.notes.Update(c.Request.Context(), currentUser(c), c.Param("id"), in)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, note)
}
