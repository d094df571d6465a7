package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/wine-collection-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/wine-collection-service/internal/app"
)

// WinemakerHandler handles /api/v1/winemakers.
type WinemakerHandler struct {
	service *app.InventoryService
}

// NewWinemakerHandler creates a new winemaker handler.
func NewWinemakerHandler(service *app.InventoryService) *WinemakerHandler {
	return &WinemakerHandler{service: service}
}

// List handles GET /api/v1/winemakers.
//
// @Summary List winemakers
// @Tags winemakers
// @Produce json
// @Success 200 {array} dto.WinemakerResponse
// @Router /api/v1/winemakers [get]
func (h *WinemakerHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewWinemakerResponses(h.service.ListWinemakers(c.Request.Context())))
}

// Get handles GET /api/v1/winemakers/:id.
//
// @Summary Get a winemaker with its bottles
// @Tags winemakers
// @Produce json
// @Param id path int true "Winemaker ID"
// @Success 200 {object} dto.WinemakerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/winemakers/{id} [get]
func (h *WinemakerHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	w, err := h.service.GetWinemaker(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewWinemakerResponse(w))
}

// Create handles POST /api/v1/winemakers. Bottles listed in the body are
// created with the winemaker, all or nothing.
//
// @Summary Create a winemaker
// @Tags winemakers
// @Accept json
// @Produce json
// @Param winemaker body dto.WinemakerRequest true "Winemaker"
// @Success 201 {object} dto.WinemakerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/v1/winemakers [post]
func (h *WinemakerHandler) Create(c *gin.Context) {
	var req dto.WinemakerRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindError(c, err, msgMalformedBody)
		return
	}

	w, err := h.service.CreateWinemaker(c.Request.Context(), req.ToDomain())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	created(c, c.Request.URL.Path+"/"+strconv.Itoa(w.ID), dto.NewWinemakerResponse(w))
}

// Update handles PUT /api/v1/winemakers/:id. The body id must equal the
// path id.
//
// @Summary Update a winemaker
// @Tags winemakers
// @Accept json
// @Param id path int true "Winemaker ID"
// @Param winemaker body dto.WinemakerRequest true "Winemaker"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/winemakers/{id} [put]
func (h *WinemakerHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.WinemakerRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindError(c, err, msgMalformedBody)
		return
	}

	if req.ID != id {
		dto.RespondWithCode(c, dto.ErrorCodeBadRequest, msgIDMismatch)
		return
	}

	if err := h.service.UpdateWinemaker(c.Request.Context(), req.ToDomain()); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /api/v1/winemakers/:id. Bottles of the winemaker
// are kept.
//
// @Summary Delete a winemaker
// @Tags winemakers
// @Param id path int true "Winemaker ID"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/winemakers/{id} [delete]
func (h *WinemakerHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteWinemaker(c.Request.Context(), id); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RegisterWinemakerRoutes registers winemaker routes on the given router group.
func (h *WinemakerHandler) RegisterWinemakerRoutes(rg *gin.RouterGroup) {
	winemakers := rg.Group("/winemakers")
	winemakers.GET("", h.List)
	winemakers.GET("/:id", h.Get)
	winemakers.POST("", h.Create)
	winemakers.PUT("/:id", h.Update)
	winemakers.DELETE("/:id", h.Delete)
}
