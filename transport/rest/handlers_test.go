package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResultService struct {
	results []*entity.GameResult
	err     error

	gotLimit int
}

func (that *stubResultService) RecentResults(_ context.Context, limit int) ([]*entity.GameResult, error) {
	that.gotLimit = limit

	if that.err != nil {
		return nil, that.err
	}

	return that.results, nil
}

func newTestHandlers(results resultService) *Handlers {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return NewHandlers(logger, results)
}

func TestHandlers_Ping(t *testing.T) {
	// Given: the ping handler
	handlers := newTestHandlers(&stubResultService{})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/ping", nil)

	// When: pinging the server
	handlers.Ping(recorder, request)

	// Then: it answers with pong
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "pong", recorder.Body.String())
}

func TestHandlers_RecentResults(t *testing.T) {
	t.Run("Returns archived games as JSON", func(t *testing.T) {
		// Given: one archived game
		board, err := engine.ParseBoard("XXXOO----")
		require.NoError(t, err)

		stub := &stubResultService{
			results: []*entity.GameResult{
				{
					GameID:     "123",
					Board:      *board,
					Winner:     "X",
					Moves:      5,
					FinishedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
				},
			},
		}
		handlers := newTestHandlers(stub)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/results", nil)

		// When: requesting the archive
		handlers.RecentResults(recorder, request)

		// Then: the archived game is returned
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

		var response struct {
			Results []*entity.GameResult `json:"results"`
		}
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))

		require.Len(t, response.Results, 1)
		assert.Equal(t, "123", response.Results[0].GameID)
		assert.Equal(t, "X", response.Results[0].Winner)
		assert.Equal(t, *board, response.Results[0].Board)
	})

	t.Run("Empty archive returns an empty list", func(t *testing.T) {
		// Given: no archived games
		handlers := newTestHandlers(&stubResultService{})

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/results", nil)

		// When: requesting the archive
		handlers.RecentResults(recorder, request)

		// Then: the list is empty, not null
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"results": []}`, recorder.Body.String())
	})

	t.Run("Limit is parsed and capped", func(t *testing.T) {
		// Given: a handler
		stub := &stubResultService{}
		handlers := newTestHandlers(stub)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/results?limit=500", nil)

		// When: requesting more than the cap allows
		handlers.RecentResults(recorder, request)

		// Then: the limit passed down is capped
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, maxRecentLimit, stub.gotLimit)
	})

	t.Run("Rejects a non-numeric limit", func(t *testing.T) {
		// Given: a handler
		handlers := newTestHandlers(&stubResultService{})

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/results?limit=abc", nil)

		// When: requesting with a broken limit
		handlers.RecentResults(recorder, request)

		// Then: the request is rejected
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Storage failure turns into a 500", func(t *testing.T) {
		// Given: a failing archive
		handlers := newTestHandlers(&stubResultService{err: errors.New("boom")})

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/results", nil)

		// When: requesting the archive
		handlers.RecentResults(recorder, request)

		// Then: the failure is reported as an internal error
		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}
