package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/wine-collection-service/internal/adapters/http/dto"
)

func TestWinemakerHandler_List(t *testing.T) {
	t.Run("empty store returns an empty array", func(t *testing.T) {
		api := newInventoryAPI(t, false)

		w := api.do(http.MethodGet, "/api/v1/winemakers", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("seeded store", func(t *testing.T) {
		api := newInventoryAPI(t, true)

		w := api.do(http.MethodGet, "/api/v1/winemakers", "")

		require.Equal(t, http.StatusOK, w.Code)

		got := decodeBody[[]dto.WinemakerResponse](t, w)
		require.Len(t, got, 2)
		assert.Equal(t, "Winemaker A", got[0].Name)
		require.Len(t, got[0].WineBottles, 2)
		assert.Equal(t, "Merlot", got[0].WineBottles[1].Name)
	})
}

func TestWinemakerHandler_Get(t *testing.T) {
	api := newInventoryAPI(t, true)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantCode   string
	}{
		{name: "found", path: "/api/v1/winemakers/2", wantStatus: http.StatusOK},
		{name: "missing", path: "/api/v1/winemakers/99", wantStatus: http.StatusNotFound, wantCode: dto.ErrorCodeNotFound},
		{name: "negative id", path: "/api/v1/winemakers/-1", wantStatus: http.StatusBadRequest, wantCode: dto.ErrorCodeBadRequest},
		{name: "non-numeric id", path: "/api/v1/winemakers/abc", wantStatus: http.StatusBadRequest, wantCode: dto.ErrorCodeBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := api.do(http.MethodGet, tt.path, "")

			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeErrorBody(t, w).Error.Code)
				return
			}

			got := decodeBody[dto.WinemakerResponse](t, w)
			assert.Equal(t, 2, got.ID)
			assert.Equal(t, "456 Vineyard Rd, Sonoma, CA", got.Address)
		})
	}
}

func TestWinemakerHandler_Create(t *testing.T) {
	t.Run("with nested bottles", func(t *testing.T) {
		api := newInventoryAPI(t, false)

		w := api.do(http.MethodPost, "/api/v1/winemakers", `{
			"name": "Winemaker C",
			"address": "789 Cellar Ln",
			"wineBottles": [
				{"name": "Zinfandel", "year": 2017, "size": 750, "style": "Dry", "winemakerId": 42},
				{"name": "Port", "year": 2005, "size": 500, "style": "fortified"}
			]
		}`)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.Equal(t, "/api/v1/winemakers/1", w.Header().Get("Location"))

		got := decodeBody[dto.WinemakerResponse](t, w)
		assert.Equal(t, 1, got.ID)
		require.Len(t, got.WineBottles, 2)
		assert.Equal(t, 1, got.WineBottles[0].WinemakerID)
		assert.Equal(t, "Fortified", got.WineBottles[1].Style.String())

		bottles := api.do(http.MethodGet, "/api/v1/winebottles/winemaker/1", "")
		assert.Len(t, decodeBody[[]dto.BottleResponse](t, bottles), 2)
	})

	t.Run("invalid nested bottle creates nothing", func(t *testing.T) {
		api := newInventoryAPI(t, false)

		w := api.do(http.MethodPost, "/api/v1/winemakers", `{
			"name": "Winemaker C",
			"wineBottles": [{"name": "Zinfandel", "year": 1850}]
		}`)

		require.Equal(t, http.StatusBadRequest, w.Code)

		resp := decodeErrorBody(t, w)
		assert.Equal(t, dto.ErrorCodeValidation, resp.Error.Code)
		assert.Contains(t, resp.Error.Details, "wineBottles[0].year")

		assert.JSONEq(t, `[]`, api.do(http.MethodGet, "/api/v1/winemakers", "").Body.String())
	})

	t.Run("missing name", func(t *testing.T) {
		api := newInventoryAPI(t, false)

		w := api.do(http.MethodPost, "/api/v1/winemakers", `{"address": "nowhere"}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "this field is required", decodeErrorBody(t, w).Error.Details["name"])
	})

	t.Run("malformed json", func(t *testing.T) {
		api := newInventoryAPI(t, false)

		w := api.do(http.MethodPost, "/api/v1/winemakers", `{"name":`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrorCodeBadRequest, decodeErrorBody(t, w).Error.Code)
	})
}

func TestWinemakerHandler_Update(t *testing.T) {
	tests := []struct {
		name       string
		strict     bool
		path       string
		body       string
		wantStatus int
	}{
		{
			name:       "existing winemaker",
			path:       "/api/v1/winemakers/1",
			body:       `{"id": 1, "name": "Winemaker A2", "address": "New Address"}`,
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "id mismatch",
			path:       "/api/v1/winemakers/1",
			body:       `{"id": 2, "name": "Winemaker A2"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing id is a no-op by default",
			path:       "/api/v1/winemakers/99",
			body:       `{"id": 99, "name": "Ghost"}`,
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "missing id in strict mode",
			strict:     true,
			path:       "/api/v1/winemakers/99",
			body:       `{"id": 99, "name": "Ghost"}`,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "empty name",
			path:       "/api/v1/winemakers/1",
			body:       `{"id": 1, "name": ""}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []apiOption
			if tt.strict {
				opts = append(opts, strictMutations)
			}

			api := newInventoryAPI(t, true, opts...)

			w := api.do(http.MethodPut, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
		})
	}

	t.Run("update keeps bottles", func(t *testing.T) {
		api := newInventoryAPI(t, true)

		w := api.do(http.MethodPut, "/api/v1/winemakers/1", `{"id": 1, "name": "Renamed", "address": "Elsewhere"}`)
		require.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())

		got := decodeBody[dto.WinemakerResponse](t, api.do(http.MethodGet, "/api/v1/winemakers/1", ""))
		assert.Equal(t, "Renamed", got.Name)
		assert.Equal(t, "Elsewhere", got.Address)
		assert.Len(t, got.WineBottles, 2)
	})
}

func TestWinemakerHandler_Delete(t *testing.T) {
	t.Run("does not cascade to bottles", func(t *testing.T) {
		api := newInventoryAPI(t, true)

		w := api.do(http.MethodDelete, "/api/v1/winemakers/1", "")
		require.Equal(t, http.StatusNoContent, w.Code)

		assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/api/v1/winemakers/1", "").Code)

		bottles := decodeBody[[]dto.BottleResponse](t, api.do(http.MethodGet, "/api/v1/winebottles", ""))
		assert.Len(t, bottles, 4)
	})

	t.Run("missing id", func(t *testing.T) {
		assert.Equal(t, http.StatusNoContent,
			newInventoryAPI(t, false).do(http.MethodDelete, "/api/v1/winemakers/5", "").Code)
		assert.Equal(t, http.StatusNotFound,
			newInventoryAPI(t, false, strictMutations).do(http.MethodDelete, "/api/v1/winemakers/5", "").Code)
	})

	t.Run("bad id", func(t *testing.T) {
		w := newInventoryAPI(t, false).do(http.MethodDelete, "/api/v1/winemakers/x", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
