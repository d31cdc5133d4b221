package controller

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/kernel808/banknet/internal/adapter/http/models"
	"github.com/kernel808/banknet/internal/commons"
	"github.com/kernel808/banknet/internal/usecase/service_interfaces"
)

type AnalyticsController struct {
	transfers  service_interfaces.TransferService
	riskScorer service_interfaces.RiskScorer
}

func NewAnalyticsController(transfers service_interfaces.TransferService, riskScorer service_interfaces.RiskScorer) *AnalyticsController {
	return &AnalyticsController{transfers: transfers, riskScorer: riskScorer}
}

func (c *AnalyticsController) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/analytics/risk-score/{id}", c.riskScore).Methods(http.MethodGet)
}

func (c *AnalyticsController) riskScore(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	id := mux.Vars(r)["id"]
	transfer, err := c.transfers.Get(r.Context(), id)
	if err != nil {
		writeError[models.RiskScoreResponse](w, r, err, "failed to fetch transfer", start)
		return
	}

	assessment, err := c.riskScorer.Score(r.Context(), transfer)
	if err != nil {
		writeError[models.RiskScoreResponse](w, r, err, "failed to score transfer", start)
		return
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("risk score computed", models.MapRiskToResponse(assessment)))
	logResponse(r, http.StatusOK, start)
}
