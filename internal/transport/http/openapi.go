package http

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"jersey-quiz-service/internal/domain"
)

type playerPath struct {
	ID string `path:"id"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "Jersey Quiz API"
	r.Spec.Info.Version = "1.0.0"
	r.Spec.Info.WithDescription("Player catalog and score board for the cricket jersey quiz.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of configured backends.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// GET /api/cricket-players
	listPlayers, _ := r.NewOperationContext(http.MethodGet, "/api/cricket-players")
	listPlayers.SetSummary("List players")
	listPlayers.SetDescription("Returns every player in the catalog.")
	listPlayers.AddRespStructure([]domain.Player{}, openapi.WithHTTPStatus(http.StatusOK))
	listPlayers.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusInternalServerError))
	_ = r.AddOperation(listPlayers)

	// GET /api/cricket-players/{id}
	getPlayer, _ := r.NewOperationContext(http.MethodGet, "/api/cricket-players/{id}")
	getPlayer.SetSummary("Get player")
	getPlayer.AddReqStructure(playerPath{})
	getPlayer.AddRespStructure(domain.Player{}, openapi.WithHTTPStatus(http.StatusOK))
	getPlayer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getPlayer)

	// POST /api/game-scores
	postScore, _ := r.NewOperationContext(http.MethodPost, "/api/game-scores")
	postScore.SetSummary("Save score")
	postScore.SetDescription("Stores the tallies of a finished game. Level is required; counts default to 0.")
	postScore.AddReqStructure(domain.ScoreSubmission{})
	postScore.AddRespStructure(domain.ScoreRecord{}, openapi.WithHTTPStatus(http.StatusOK))
	postScore.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postScore)

	// GET /api/top-scores
	getTop, _ := r.NewOperationContext(http.MethodGet, "/api/top-scores")
	getTop.SetSummary("Top scores")
	getTop.SetDescription("Returns the best games ordered by correct answers.")
	getTop.AddRespStructure([]domain.ScoreRecord{}, openapi.WithHTTPStatus(http.StatusOK))
	getTop.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusInternalServerError))
	_ = r.AddOperation(getTop)

	// GET /ws/top-scores
	getStream, _ := r.NewOperationContext(http.MethodGet, "/ws/top-scores")
	getStream.SetSummary("Top scores stream")
	getStream.SetDescription("Upgrades to a WebSocket that pushes a leaderboard message whenever a score is saved.")
	getStream.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusSwitchingProtocols),
		openapi.WithContentType("text/plain"))
	_ = r.AddOperation(getStream)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
