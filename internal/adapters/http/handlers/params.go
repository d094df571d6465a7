package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/wine-collection-service/internal/adapters/http/dto"
)

// Messages for requests rejected before reaching the service.
const (
	msgMalformedBody  = "malformed request body"
	msgMalformedQuery = "malformed query parameters"
	msgIDMismatch     = "id in path does not match id in body"
)

// pathID parses a non-negative integer path parameter. On failure it writes
// a 400 and returns false.
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 0 {
		dto.RespondWithCode(c, dto.ErrorCodeBadRequest, name+" must be a non-negative integer")
		return 0, false
	}

	return id, true
}

// created writes a 201 with a Location header pointing at the new resource.
func created(c *gin.Context, location string, body any) {
	c.Header("Location", location)
	c.JSON(http.StatusCreated, body)
}
