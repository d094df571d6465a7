package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/wine-collection-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/wine-collection-service/internal/domain"
)

const newBottleJSON = `{
	"name": "Pinot Noir",
	"year": 2016,
	"size": 750,
	"countInWineCellar": 3,
	"style": "Dry",
	"taste": "Raspberry, Earth",
	"foodPairing": "Duck",
	"link": "https://example.com/pinot-noir",
	"image": "https://example.com/images/pinot-noir.png",
	"winemakerId": 2
}`

func bottleNames(bottles []dto.BottleResponse) []string {
	names := make([]string, len(bottles))
	for i, b := range bottles {
		names[i] = b.Name
	}

	return names
}

func TestBottleHandler_List(t *testing.T) {
	t.Run("empty store returns an empty array", func(t *testing.T) {
		w := newInventoryAPI(t, false).do(http.MethodGet, "/api/v1/winebottles", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("insertion order", func(t *testing.T) {
		w := newInventoryAPI(t, true).do(http.MethodGet, "/api/v1/winebottles", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t,
			[]string{"Cabernet Sauvignon", "Chardonnay", "Merlot", "Sauvignon Blanc"},
			bottleNames(decodeBody[[]dto.BottleResponse](t, w)))
	})
}

func TestBottleHandler_ListByWinemaker(t *testing.T) {
	api := newInventoryAPI(t, true)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantNames  []string
	}{
		{
			name:       "winemaker with bottles",
			path:       "/api/v1/winebottles/winemaker/2",
			wantStatus: http.StatusOK,
			wantNames:  []string{"Chardonnay", "Sauvignon Blanc"},
		},
		{
			name:       "unknown winemaker",
			path:       "/api/v1/winebottles/winemaker/77",
			wantStatus: http.StatusOK,
			wantNames:  []string{},
		},
		{
			name:       "bad id",
			path:       "/api/v1/winebottles/winemaker/two",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := api.do(http.MethodGet, tt.path, "")

			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantNames != nil {
				assert.Equal(t, tt.wantNames, bottleNames(decodeBody[[]dto.BottleResponse](t, w)))
			}
		})
	}
}

func TestBottleHandler_Filter(t *testing.T) {
	api := newInventoryAPI(t, true)

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantNames  []string
	}{
		{
			name:       "no criteria returns everything",
			query:      "",
			wantStatus: http.StatusOK,
			wantNames:  []string{"Cabernet Sauvignon", "Chardonnay", "Merlot", "Sauvignon Blanc"},
		},
		{
			name:       "size and style",
			query:      "?size=750&style=dry",
			wantStatus: http.StatusOK,
			wantNames:  []string{"Chardonnay", "Sauvignon Blanc"},
		},
		{
			name:       "taste substring ignores case",
			query:      "?taste=APPLE",
			wantStatus: http.StatusOK,
			wantNames:  []string{"Chardonnay", "Sauvignon Blanc"},
		},
		{
			name:       "food pairing and year",
			query:      "?foodPairing=beef&year=2019",
			wantStatus: http.StatusOK,
			wantNames:  []string{"Merlot"},
		},
		{
			name:       "count in cellar",
			query:      "?countInWineCellar=10",
			wantStatus: http.StatusOK,
			wantNames:  []string{"Cabernet Sauvignon"},
		},
		{
			name:       "empty numeric values impose nothing",
			query:      "?year=&size=&countInWineCellar=",
			wantStatus: http.StatusOK,
			wantNames:  []string{"Cabernet Sauvignon", "Chardonnay", "Merlot", "Sauvignon Blanc"},
		},
		{
			name:       "empty size beside empty taste",
			query:      "?size=&taste=",
			wantStatus: http.StatusOK,
			wantNames:  []string{"Cabernet Sauvignon", "Chardonnay", "Merlot", "Sauvignon Blanc"},
		},
		{
			name:       "zero count still filters",
			query:      "?countInWineCellar=0",
			wantStatus: http.StatusOK,
			wantNames:  []string{},
		},
		{
			name:       "no match",
			query:      "?year=1999",
			wantStatus: http.StatusOK,
			wantNames:  []string{},
		},
		{
			name:       "unknown style",
			query:      "?style=Rose",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "non-numeric year",
			query:      "?year=old",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := api.do(http.MethodGet, "/api/v1/winebottles/filter"+tt.query, "")

			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())

			if tt.wantNames != nil {
				assert.Equal(t, tt.wantNames, bottleNames(decodeBody[[]dto.BottleResponse](t, w)))
			}
		})
	}
}

func TestBottleHandler_Get(t *testing.T) {
	api := newInventoryAPI(t, true)

	t.Run("found", func(t *testing.T) {
		w := api.do(http.MethodGet, "/api/v1/winebottles/3", "")

		require.Equal(t, http.StatusOK, w.Code)

		got := decodeBody[dto.BottleResponse](t, w)
		assert.Equal(t, "Merlot", got.Name)
		assert.Equal(t, domain.WineStyleSemiDry, got.Style)
		assert.Equal(t, 500, got.Size)
		assert.Equal(t, 1, got.WinemakerID)
		assert.Contains(t, w.Body.String(), `"style":"SemiDry"`)
	})

	t.Run("missing", func(t *testing.T) {
		w := api.do(http.MethodGet, "/api/v1/winebottles/40", "")

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, dto.ErrorCodeNotFound, decodeErrorBody(t, w).Error.Code)
	})
}

func TestBottleHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		api := newInventoryAPI(t, true)

		w := api.do(http.MethodPost, "/api/v1/winebottles", newBottleJSON)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.Equal(t, "/api/v1/winebottles/5", w.Header().Get("Location"))

		got := decodeBody[dto.BottleResponse](t, w)
		assert.Equal(t, 5, got.ID)
		assert.Equal(t, 2, got.WinemakerID)

		maker := decodeBody[dto.WinemakerResponse](t, api.do(http.MethodGet, "/api/v1/winemakers/2", ""))
		assert.Equal(t, []string{"Chardonnay", "Sauvignon Blanc", "Pinot Noir"}, bottleNames(maker.WineBottles))
	})

	t.Run("unknown winemaker", func(t *testing.T) {
		api := newInventoryAPI(t, false)

		w := api.do(http.MethodPost, "/api/v1/winebottles", newBottleJSON)

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, dto.ErrorCodeReferentialIntegrity, decodeErrorBody(t, w).Error.Code)
		assert.JSONEq(t, `[]`, api.do(http.MethodGet, "/api/v1/winebottles", "").Body.String())
	})

	validation := []struct {
		name  string
		body  string
		field string
	}{
		{"year too late", `{"name": "X", "year": 2101}`, "year"},
		{"negative count", `{"name": "X", "year": 2000, "countInWineCellar": -1}`, "countInWineCellar"},
		{"unknown style", `{"name": "X", "year": 2000, "style": "Rose"}`, "style"},
		{"relative link", `{"name": "X", "year": 2000, "link": "/wines/x"}`, "link"},
		{"gif image", `{"name": "X", "year": 2000, "image": "x.gif"}`, "image"},
		{"negative winemaker", `{"name": "X", "year": 2000, "winemakerId": -3}`, "winemakerId"},
	}

	for _, tt := range validation {
		t.Run(tt.name, func(t *testing.T) {
			w := newInventoryAPI(t, true).do(http.MethodPost, "/api/v1/winebottles", tt.body)

			require.Equal(t, http.StatusBadRequest, w.Code)

			resp := decodeErrorBody(t, w)
			assert.Equal(t, dto.ErrorCodeValidation, resp.Error.Code)
			assert.Contains(t, resp.Error.Details, tt.field)
		})
	}
}

func TestBottleHandler_Update(t *testing.T) {
	t.Run("replaces the bottle", func(t *testing.T) {
		api := newInventoryAPI(t, true)

		w := api.do(http.MethodPut, "/api/v1/winebottles/3",
			`{"id": 3, "name": "Merlot Reserve", "year": 2019, "size": 750, "style": "SemiDry", "winemakerId": 1}`)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		got := decodeBody[dto.BottleResponse](t, api.do(http.MethodGet, "/api/v1/winebottles/3", ""))
		assert.Equal(t, "Merlot Reserve", got.Name)
		assert.Equal(t, 750, got.Size)

		maker := decodeBody[dto.WinemakerResponse](t, api.do(http.MethodGet, "/api/v1/winemakers/1", ""))
		assert.Equal(t, []string{"Cabernet Sauvignon", "Merlot Reserve"}, bottleNames(maker.WineBottles))
	})

	t.Run("id mismatch", func(t *testing.T) {
		w := newInventoryAPI(t, true).do(http.MethodPut, "/api/v1/winebottles/3", `{"id": 4, "name": "X", "year": 2000}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "id in path does not match id in body", decodeErrorBody(t, w).Error.Message)
	})

	t.Run("missing id", func(t *testing.T) {
		body := `{"id": 9, "name": "X", "year": 2000}`

		assert.Equal(t, http.StatusNoContent,
			newInventoryAPI(t, true).do(http.MethodPut, "/api/v1/winebottles/9", body).Code)
		assert.Equal(t, http.StatusNotFound,
			newInventoryAPI(t, true, strictMutations).do(http.MethodPut, "/api/v1/winebottles/9", body).Code)
	})
}

func TestBottleHandler_Delete(t *testing.T) {
	api := newInventoryAPI(t, true)

	w := api.do(http.MethodDelete, "/api/v1/winebottles/1", "")
	require.Equal(t, http.StatusNoContent, w.Code)

	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/api/v1/winebottles/1", "").Code)

	maker := decodeBody[dto.WinemakerResponse](t, api.do(http.MethodGet, "/api/v1/winemakers/1", ""))
	assert.Equal(t, []string{"Merlot"}, bottleNames(maker.WineBottles))

	assert.Equal(t, http.StatusNoContent, api.do(http.MethodDelete, "/api/v1/winebottles/1", "").Code)
	assert.Equal(t, http.StatusNotFound,
		newInventoryAPI(t, true, strictMutations).do(http.MethodDelete, "/api/v1/winebottles/10", "").Code)
}
