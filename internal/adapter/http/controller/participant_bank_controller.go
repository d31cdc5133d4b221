package controller

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/kernel808/banknet/internal/adapter/http/models"
	"github.com/kernel808/banknet/internal/commons"
	"github.com/kernel808/banknet/internal/usecase/service_interfaces"
)

type ParticipantBankController struct {
	service service_interfaces.ParticipantBankService
}

func NewParticipantBankController(service service_interfaces.ParticipantBankService) *ParticipantBankController {
	return &ParticipantBankController{service: service}
}

func (c *ParticipantBankController) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/banks", c.list).Methods(http.MethodGet)
}

func (c *ParticipantBankController) list(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	banks, err := c.service.ListBanks(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		writeError[[]models.ParticipantBankResponse](w, r, err, "failed to list banks", start)
		return
	}

	resp := make([]models.ParticipantBankResponse, 0, len(banks))
	for _, bank := range banks {
		resp = append(resp, models.MapParticipantBankToResponse(bank))
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("banks fetched", resp))
	logResponse(r, http.StatusOK, start)
}
