package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avvvet/playhub-services/internal/apperr"
	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name   *string `json:"name" validate:"required"`
	Status string  `json:"status" validate:"omitempty,oneof=NEW FINISHED"`
}

func TestErrorMapsStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		body string
	}{
		{"not found", fmt.Errorf("game 7: %w", apperr.ErrNotFound), http.StatusNotFound, "resource not found"},
		{"validation", apperr.Invalid("name", "is required"), http.StatusBadRequest, "name: is required"},
		{"other", errors.New("dial tcp: refused"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			Error(rr, httptest.NewRequest(http.MethodGet, "/game/7", nil), tt.err)

			assert.Equal(t, tt.code, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.body)
			assert.NotContains(t, rr.Body.String(), "refused")
		})
	}
}

func TestDecodeReportsJSONFieldNames(t *testing.T) {
	var req sampleRequest
	err := Decode(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`)), &req)

	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.Equal(t, "name: is required", err.Error())
}

func TestDecodeRejectsUnknownEnumValue(t *testing.T) {
	var req sampleRequest
	body := `{"name":"chess","status":"PAUSED"}`
	err := Decode(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)), &req)

	require.Error(t, err)
	assert.Equal(t, "status: must be one of NEW FINISHED", err.Error())
}

func TestDecodeRejectsMalformedBody(t *testing.T) {
	var req sampleRequest
	err := Decode(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`)), &req)

	assert.True(t, apperr.IsValidation(err))
}

func TestDecodeAcceptsValidBody(t *testing.T) {
	var req sampleRequest
	err := Decode(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"chess"}`)), &req)

	require.NoError(t, err)
	assert.Equal(t, "chess", *req.Name)
}

func TestParseID(t *testing.T) {
	withParam := func(value string) *http.Request {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", value)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	id, err := ParseID(withParam("42"), "id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = ParseID(withParam("abc"), "id")
	assert.True(t, apperr.IsValidation(err))
}

func TestPathParamDecodesReservedCharacters(t *testing.T) {
	var got string
	r := chi.NewRouter()
	r.Get("/player/{name}/games", func(w http.ResponseWriter, r *http.Request) {
		name, err := PathParam(r, "name")
		if err != nil {
			Error(w, r, err)
			return
		}
		got = name
	})

	tests := []struct {
		target string
		want   string
	}{
		{"/player/ann/games", "ann"},
		{"/player/ann%20lee/games", "ann lee"},
		{"/player/ann%2Clee/games", "ann,lee"},
		{"/player/a%3Bb/games", "a;b"},
		{"/player/x%2Fy/games", "x/y"},
		{"/player/100%25/games", "100%"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got = ""
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.target, nil))

			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.want, got)
		})
	}
}
