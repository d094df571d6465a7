package dto

import (
	"strconv"

	"github.com/jsamuelsen/wine-collection-service/internal/domain"
)

// BottleRequest is the body of POST and PUT /api/v1/winebottles.
type BottleRequest struct {
	ID                int    `json:"id" validate:"gte=0"`
	Name              string `json:"name" validate:"required"`
	Year              int    `json:"year" validate:"gte=1900,lte=2100"`
	Size              int    `json:"size" validate:"gte=0"`
	CountInWineCellar int    `json:"countInWineCellar" validate:"gte=0"`
	Style             string `json:"style" validate:"omitempty,winestyle"`
	Taste             string `json:"taste"`
	Description       string `json:"description"`
	FoodPairing       string `json:"foodPairing"`
	Link              string `json:"link" validate:"httpurl"`
	Image             string `json:"image" validate:"imageext"`
	WinemakerID       int    `json:"winemakerId" validate:"gte=0"`
}

// ToDomain converts a validated request. An omitted style means Dry.
func (r BottleRequest) ToDomain() domain.Bottle {
	var style domain.WineStyle
	if r.Style != "" {
		// validated by the winestyle tag
		style, _ = domain.ParseWineStyle(r.Style)
	}

	return domain.Bottle{
		ID:                r.ID,
		Name:              r.Name,
		Year:              r.Year,
		SizeInMilliliter:  r.Size,
		CountInWineCellar: r.CountInWineCellar,
		Style:             style,
		Taste:             r.Taste,
		Description:       r.Description,
		FoodPairing:       r.FoodPairing,
		Link:              r.Link,
		Image:             r.Image,
		WinemakerID:       r.WinemakerID,
	}
}

// BottleResponse is the JSON form of a bottle.
type BottleResponse struct {
	ID                int              `json:"id"`
	Name              string           `json:"name"`
	Year              int              `json:"year"`
	Size              int              `json:"size"`
	CountInWineCellar int              `json:"countInWineCellar"`
	Style             domain.WineStyle `json:"style"`
	Taste             string           `json:"taste"`
	Description       string           `json:"description"`
	FoodPairing       string           `json:"foodPairing"`
	Link              string           `json:"link"`
	Image             string           `json:"image"`
	WinemakerID       int              `json:"winemakerId"`
}

// NewBottleResponse converts a domain bottle.
func NewBottleResponse(b domain.Bottle) BottleResponse {
	return BottleResponse{
		ID:                b.ID,
		Name:              b.Name,
		Year:              b.Year,
		Size:              b.SizeInMilliliter,
		CountInWineCellar: b.CountInWineCellar,
		Style:             b.Style,
		Taste:             b.Taste,
		Description:       b.Description,
		FoodPairing:       b.FoodPairing,
		Link:              b.Link,
		Image:             b.Image,
		WinemakerID:       b.WinemakerID,
	}
}

// NewBottleResponses converts a list. The result is never nil so an empty
// collection encodes as [].
func NewBottleResponses(bottles []domain.Bottle) []BottleResponse {
	out := make([]BottleResponse, len(bottles))
	for i, b := range bottles {
		out[i] = NewBottleResponse(b)
	}

	return out
}

// WinemakerRequest is the body of POST and PUT /api/v1/winemakers.
// WineBottles is only honored on create. Nested bottles are linked to the
// new winemaker, so their winemakerId is ignored.
type WinemakerRequest struct {
	ID          int             `json:"id" validate:"gte=0"`
	Name        string          `json:"name" validate:"required"`
	Address     string          `json:"address"`
	WineBottles []BottleRequest `json:"wineBottles" validate:"dive"`
}

// ToDomain converts a validated request.
func (r WinemakerRequest) ToDomain() domain.Winemaker {
	w := domain.Winemaker{
		ID:      r.ID,
		Name:    r.Name,
		Address: r.Address,
	}

	if len(r.WineBottles) > 0 {
		w.Bottles = make([]domain.Bottle, len(r.WineBottles))
		for i, b := range r.WineBottles {
			w.Bottles[i] = b.ToDomain()
		}
	}

	return w
}

// WinemakerResponse is the JSON form of a winemaker with its bottles.
type WinemakerResponse struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	Address     string           `json:"address"`
	WineBottles []BottleResponse `json:"wineBottles"`
}

// NewWinemakerResponse converts a domain winemaker.
func NewWinemakerResponse(w domain.Winemaker) WinemakerResponse {
	return WinemakerResponse{
		ID:          w.ID,
		Name:        w.Name,
		Address:     w.Address,
		WineBottles: NewBottleResponses(w.Bottles),
	}
}

// NewWinemakerResponses converts a list, never returning nil.
func NewWinemakerResponses(winemakers []domain.Winemaker) []WinemakerResponse {
	out := make([]WinemakerResponse, len(winemakers))
	for i, w := range winemakers {
		out[i] = NewWinemakerResponse(w)
	}

	return out
}

// BottleFilterQuery binds the query string of GET /api/v1/winebottles/filter.
// Absent or empty parameters leave the criterion unset. Numbers are bound as
// text so "?year=" stays distinct from "?year=0".
type BottleFilterQuery struct {
	Year              string `form:"year"              validate:"omitempty,number,max=9"`
	Size              string `form:"size"              validate:"omitempty,number,max=9"`
	CountInWineCellar string `form:"countInWineCellar" validate:"omitempty,number,max=9"`
	Style             string `form:"style"             validate:"omitempty,winestyle"`
	Taste             string `form:"taste"`
	FoodPairing       string `form:"foodPairing"`
}

// ToDomain converts a validated query.
func (q BottleFilterQuery) ToDomain() domain.BottleFilter {
	f := domain.BottleFilter{
		Year:              optionalInt(q.Year),
		SizeInMilliliter:  optionalInt(q.Size),
		CountInWineCellar: optionalInt(q.CountInWineCellar),
		Taste:             q.Taste,
		FoodPairing:       q.FoodPairing,
	}

	if q.Style != "" {
		if style, err := domain.ParseWineStyle(q.Style); err == nil {
			f.Style = &style
		}
	}

	return f
}

func optionalInt(s string) *int {
	if s == "" {
		return nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}

	return &n
}
