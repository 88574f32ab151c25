package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"jersey-quiz-service/internal/app"
	"jersey-quiz-service/internal/domain"
)

func handlePlayers(svc *app.Service, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := svc.Players(r.Context())
		if err != nil {
			logger.Error("fetch players failed", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to fetch cricket players")
			return
		}
		writeJSON(w, http.StatusOK, players)
	}
}

func handlePlayer(svc *app.Service, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player, err := svc.Player(r.Context(), chi.URLParam(r, "id"))
		switch {
		case errors.Is(err, domain.ErrPlayerNotFound):
			writeError(w, http.StatusNotFound, "Player not found")
		case err != nil:
			logger.Error("fetch player failed", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to fetch cricket players")
		default:
			writeJSON(w, http.StatusOK, player)
		}
	}
}

func handleSaveScore(svc *app.Service, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sub domain.ScoreSubmission
		if err := readJSON(w, r, &sub); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid score data")
			return
		}

		record, err := svc.SaveScore(r.Context(), sub)
		switch {
		case errors.Is(err, domain.ErrInvalidScore):
			writeError(w, http.StatusBadRequest, "Invalid score data")
		case err != nil:
			logger.Error("save score failed", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to save score")
		default:
			writeJSON(w, http.StatusOK, record)
		}
	}
}

func handleTopScores(svc *app.Service, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		top, err := svc.TopScores(r.Context())
		if err != nil {
			logger.Error("fetch top scores failed", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to fetch top scores")
			return
		}
		writeJSON(w, http.StatusOK, top)
	}
}
