package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const maxRecentLimit = 100

type resultService interface {
	RecentResults(ctx context.Context, limit int) ([]*entity.GameResult, error)
}

type Handlers struct {
	logger  *slog.Logger
	results resultService
}

func NewHandlers(logger *slog.Logger, results resultService) *Handlers {
	return &Handlers{
		logger:  logger,
		results: results,
	}
}

func (that *Handlers) Ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// RecentResults - returns the latest archived games, newest first.
func (that *Handlers) RecentResults(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("handler", "RecentResults")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	results, err := that.results.RecentResults(r.Context(), limit)
	if err != nil {
		log.Error("failed to list results", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if results == nil {
		results = []*entity.GameResult{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(map[string]any{"results": results}); err != nil {
		log.Error("failed to encode results", "error", err)
	}
}
