package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/wine-collection-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/wine-collection-service/internal/app"
)

// BottleHandler handles /api/v1/winebottles.
type BottleHandler struct {
	service *app.InventoryService
}

// NewBottleHandler creates a new bottle handler.
func NewBottleHandler(service *app.InventoryService) *BottleHandler {
	return &BottleHandler{service: service}
}

// List handles GET /api/v1/winebottles.
//
// @Summary List bottles
// @Tags winebottles
// @Produce json
// @Success 200 {array} dto.BottleResponse
// @Router /api/v1/winebottles [get]
func (h *BottleHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewBottleResponses(h.service.ListBottles(c.Request.Context())))
}

// ListByWinemaker handles GET /api/v1/winebottles/winemaker/:winemakerId.
// An unknown winemaker yields an empty list.
//
// @Summary List bottles of a winemaker
// @Tags winebottles
// @Produce json
// @Param winemakerId path int true "Winemaker ID"
// @Success 200 {array} dto.BottleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/winebottles/winemaker/{winemakerId} [get]
func (h *BottleHandler) ListByWinemaker(c *gin.Context) {
	winemakerID, ok := pathID(c, "winemakerId")
	if !ok {
		return
	}

	bottles := h.service.ListBottlesByWinemaker(c.Request.Context(), winemakerID)
	c.JSON(http.StatusOK, dto.NewBottleResponses(bottles))
}

// Filter handles GET /api/v1/winebottles/filter. Every supplied query
// parameter must match; none returns the whole collection.
//
// @Summary Filter bottles
// @Tags winebottles
// @Produce json
// @Param year query int false "Vintage"
// @Param size query int false "Size in milliliters"
// @Param countInWineCellar query int false "Bottles in the cellar"
// @Param style query string false "Dry, Sweet, SemiDry, SemiSweet, Sparkling or Fortified"
// @Param taste query string false "Case-insensitive substring of the taste notes"
// @Param foodPairing query string false "Case-insensitive substring of the food pairing"
// @Success 200 {array} dto.BottleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/winebottles/filter [get]
func (h *BottleHandler) Filter(c *gin.Context) {
	var q dto.BottleFilterQuery
	if err := dto.BindQueryAndValidate(c, &q); err != nil {
		dto.RespondWithBindError(c, err, msgMalformedQuery)
		return
	}

	bottles := h.service.FilterBottles(c.Request.Context(), q.ToDomain())
	c.JSON(http.StatusOK, dto.NewBottleResponses(bottles))
}

// Get handles GET /api/v1/winebottles/:id.
//
// @Summary Get a bottle
// @Tags winebottles
// @Produce json
// @Param id path int true "Bottle ID"
// @Success 200 {object} dto.BottleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/winebottles/{id} [get]
func (h *BottleHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	b, err := h.service.GetBottle(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBottleResponse(b))
}

// Create handles POST /api/v1/winebottles.
//
// @Summary Create a bottle
// @Tags winebottles
// @Accept json
// @Produce json
// @Param bottle body dto.BottleRequest true "Bottle"
// @Success 201 {object} dto.BottleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/v1/winebottles [post]
func (h *BottleHandler) Create(c *gin.Context) {
	var req dto.BottleRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindError(c, err, msgMalformedBody)
		return
	}

	b, err := h.service.CreateBottle(c.Request.Context(), req.ToDomain())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	created(c, c.Request.URL.Path+"/"+strconv.Itoa(b.ID), dto.NewBottleResponse(b))
}

// Update handles PUT /api/v1/winebottles/:id. The body id must equal the
// path id.
//
// @Summary Update a bottle
// @Tags winebottles
// @Accept json
// @Param id path int true "Bottle ID"
// @Param bottle body dto.BottleRequest true "Bottle"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/winebottles/{id} [put]
func (h *BottleHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.BottleRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindError(c, err, msgMalformedBody)
		return
	}

	if req.ID != id {
		dto.RespondWithCode(c, dto.ErrorCodeBadRequest, msgIDMismatch)
		return
	}

	if err := h.service.UpdateBottle(c.Request.Context(), req.ToDomain()); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /api/v1/winebottles/:id.
//
// @Summary Delete a bottle
// @Tags winebottles
// @Param id path int true "Bottle ID"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/winebottles/{id} [delete]
func (h *BottleHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteBottle(c.Request.Context(), id); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RegisterBottleRoutes registers bottle routes on the given router group.
// Static segments take precedence over :id in gin's tree, so /filter and
// /winemaker/:winemakerId never reach Get.
func (h *BottleHandler) RegisterBottleRoutes(rg *gin.RouterGroup) {
	bottles := rg.Group("/winebottles")
	bottles.GET("", h.List)
	bottles.GET("/filter", h.Filter)
	bottles.GET("/winemaker/:winemakerId", h.ListByWinemaker)
	bottles.GET("/:id", h.Get)
	bottles.POST("", h.Create)
	bottles.PUT("/:id", h.Update)
	bottles.DELETE("/:id", h.Delete)
}
