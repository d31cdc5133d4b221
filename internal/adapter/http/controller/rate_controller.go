package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/kernel808/banknet/internal/adapter/http/models"
	"github.com/kernel808/banknet/internal/commons"
	"github.com/kernel808/banknet/internal/usecase/service_interfaces"
)

type RateController struct {
	service service_interfaces.RateService
}

func NewRateController(service service_interfaces.RateService) *RateController {
	return &RateController{service: service}
}

func (c *RateController) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/rates", c.list).Methods(http.MethodGet)
	router.HandleFunc("/rates/convert", c.convert).Methods(http.MethodPost)
}

func (c *RateController) list(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	query := r.URL.Query()
	if from, to := query.Get("from"), query.Get("to"); from != "" && to != "" {
		rate, err := c.service.GetRate(r.Context(), from, to)
		if err != nil {
			writeError[models.RateResponse](w, r, err, "failed to fetch rate", start)
			return
		}
		writeJSON(w, http.StatusOK, commons.SuccessResponse("rate fetched", models.MapRateToResponse(rate)))
		logResponse(r, http.StatusOK, start)
		return
	}

	rates, err := c.service.ListRates(r.Context(), query.Get("base"))
	if err != nil {
		writeError[[]models.RateResponse](w, r, err, "failed to fetch rates", start)
		return
	}

	resp := make([]models.RateResponse, 0, len(rates))
	for _, rate := range rates {
		resp = append(resp, models.MapRateToResponse(rate))
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("rates fetched", resp))
	logResponse(r, http.StatusOK, start)
}

func (c *RateController) convert(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.ConvertResponse]("invalid request body", err.Error()))
		logResponse(r, http.StatusBadRequest, start)
		return
	}
	logRequest(r, req)

	resp, err := c.service.Convert(r.Context(), req)
	if err != nil {
		writeError[models.ConvertResponse](w, r, err, "failed to convert amount", start)
		return
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("conversion computed", resp))
	logResponse(r, http.StatusOK, start)
}
