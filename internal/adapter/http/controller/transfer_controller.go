package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/kernel808/banknet/internal/adapter/http/middleware"
	"github.com/kernel808/banknet/internal/adapter/http/models"
	"github.com/kernel808/banknet/internal/commons"
	"github.com/kernel808/banknet/internal/domain"
	"github.com/kernel808/banknet/internal/usecase/service_interfaces"
)

type TransferController struct {
	service service_interfaces.TransferService
}

func NewTransferController(service service_interfaces.TransferService) *TransferController {
	return &TransferController{service: service}
}

func (c *TransferController) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/transfers", c.create).Methods(http.MethodPost)
	router.HandleFunc("/transfers", c.list).Methods(http.MethodGet)
	router.HandleFunc("/transfers/stats", c.stats).Methods(http.MethodGet)
	router.HandleFunc("/transfers/action", c.action).Methods(http.MethodPost)
	router.HandleFunc("/transfers/bulk-action", c.bulkAction).Methods(http.MethodPost)
	router.HandleFunc("/transfers/advance-stage", c.advanceStage).Methods(http.MethodPost)
	router.HandleFunc("/transfers/toggle-auto-progression", c.toggleAutoProgression).Methods(http.MethodPost)
	router.HandleFunc("/transfers/{id}", c.get).Methods(http.MethodGet)
}

func (c *TransferController) create(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.CreateTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.TransferResponse]("invalid request body", err.Error()))
		logResponse(r, http.StatusBadRequest, start)
		return
	}
	logRequest(r, req)

	actor, _ := middleware.ActorFromContext(r.Context())
	transfer, err := c.service.Create(r.Context(), req, actor)
	if err != nil {
		writeError[models.TransferResponse](w, r, err, "failed to create transfer", start)
		return
	}

	writeJSON(w, http.StatusCreated, commons.SuccessResponse("transfer created", models.MapTransferToResponse(transfer)))
	logResponse(r, http.StatusCreated, start)
}

func (c *TransferController) list(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	filter, err := parseTransferFilter(r)
	if err != nil {
		writeError[[]models.TransferResponse](w, r, err, "invalid filter parameters", start)
		return
	}

	transfers, err := c.service.List(r.Context(), filter)
	if err != nil {
		writeError[[]models.TransferResponse](w, r, err, "failed to list transfers", start)
		return
	}

	resp := make([]models.TransferResponse, 0, len(transfers))
	for _, t := range transfers {
		resp = append(resp, models.MapTransferToResponse(t))
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("transfers fetched", resp))
	logResponse(r, http.StatusOK, start)
}

func (c *TransferController) stats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	transfers, err := c.service.List(r.Context(), domain.TransferFilter{})
	if err != nil {
		writeError[models.TransferStats](w, r, err, "failed to compute transfer stats", start)
		return
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("transfer stats computed", c.service.Stats(transfers)))
	logResponse(r, http.StatusOK, start)
}

func (c *TransferController) get(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	id := mux.Vars(r)["id"]
	transfer, err := c.service.Get(r.Context(), id)
	if err != nil {
		writeError[models.TransferResponse](w, r, err, "failed to fetch transfer", start)
		return
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("transfer fetched", models.MapTransferToResponse(transfer)))
	logResponse(r, http.StatusOK, start)
}

func (c *TransferController) action(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.TransferActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.TransferResponse]("invalid request body", err.Error()))
		logResponse(r, http.StatusBadRequest, start)
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		writeError[models.TransferResponse](w, r, err, "validation failed", start)
		return
	}

	actor, _ := middleware.ActorFromContext(r.Context())
	transfer, err := c.service.ApplyAction(r.Context(), req.TransferID, req.Action, req.Notes, actor)
	if err != nil {
		writeError[models.TransferResponse](w, r, err, fmt.Sprintf("failed to %s transfer", req.Action), start)
		return
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse(fmt.Sprintf("transfer %sd successfully", req.Action), models.MapTransferToResponse(transfer)))
	logResponse(r, http.StatusOK, start)
}

func (c *TransferController) bulkAction(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.BulkTransferActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.BulkActionReport]("invalid request body", err.Error()))
		logResponse(r, http.StatusBadRequest, start)
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		writeError[models.BulkActionReport](w, r, err, "validation failed", start)
		return
	}

	actor, _ := middleware.ActorFromContext(r.Context())
	report := c.service.BulkApplyAction(r.Context(), req.TransferIDs, req.Action, req.Notes, actor)

	writeJSON(w, http.StatusOK, commons.SuccessResponse(
		fmt.Sprintf("bulk %s completed: %d/%d successful", req.Action, report.Successful, report.TotalRequested),
		report,
	))
	logResponse(r, http.StatusOK, start)
}

func (c *TransferController) advanceStage(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.AdvanceStageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.TransferResponse]("invalid request body", err.Error()))
		logResponse(r, http.StatusBadRequest, start)
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		writeError[models.TransferResponse](w, r, err, "validation failed", start)
		return
	}

	actor, _ := middleware.ActorFromContext(r.Context())
	transfer, err := c.service.AdvanceStage(r.Context(), req.TransferID, actor)
	if err != nil {
		writeError[models.TransferResponse](w, r, err, "failed to advance stage", start)
		return
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("stage advanced", models.MapTransferToResponse(transfer)))
	logResponse(r, http.StatusOK, start)
}

func (c *TransferController) toggleAutoProgression(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.ToggleAutoProgressionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.TransferResponse]("invalid request body", err.Error()))
		logResponse(r, http.StatusBadRequest, start)
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		writeError[models.TransferResponse](w, r, err, "validation failed", start)
		return
	}

	actor, _ := middleware.ActorFromContext(r.Context())
	transfer, err := c.service.ToggleAutoProgression(r.Context(), req.TransferID, req.Enable, actor)
	if err != nil {
		writeError[models.TransferResponse](w, r, err, "failed to toggle auto-progression", start)
		return
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("auto-progression updated", models.MapTransferToResponse(transfer)))
	logResponse(r, http.StatusOK, start)
}

func parseTransferFilter(r *http.Request) (domain.TransferFilter, error) {
	query := r.URL.Query()
	filter := domain.TransferFilter{
		TransferType: strings.TrimSpace(query.Get("type")),
		Search:       strings.TrimSpace(query.Get("search")),
	}

	if status := strings.TrimSpace(query.Get("status")); status != "" && status != "all" {
		filter.Status = domain.TransferStatus(status)
	}
	if transferType := filter.TransferType; transferType == "all" {
		filter.TransferType = ""
	}

	if raw := query.Get("minAmount"); raw != "" {
		value, err := decimal.NewFromString(raw)
		if err != nil {
			return domain.TransferFilter{}, &domain.ValidationError{Problems: []string{"minAmount must be a number"}}
		}
		filter.MinAmount = &value
	}
	if raw := query.Get("maxAmount"); raw != "" {
		value, err := decimal.NewFromString(raw)
		if err != nil {
			return domain.TransferFilter{}, &domain.ValidationError{Problems: []string{"maxAmount must be a number"}}
		}
		filter.MaxAmount = &value
	}
	if raw := query.Get("from"); raw != "" {
		value, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return domain.TransferFilter{}, &domain.ValidationError{Problems: []string{"from must be a YYYY-MM-DD date"}}
		}
		filter.From = &value
	}
	if raw := query.Get("to"); raw != "" {
		value, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return domain.TransferFilter{}, &domain.ValidationError{Problems: []string{"to must be a YYYY-MM-DD date"}}
		}
		// Inclusive day range.
		end := value.Add(24*time.Hour - time.Nanosecond)
		filter.To = &end
	}
	if raw := query.Get("limit"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 0 {
			return domain.TransferFilter{}, &domain.ValidationError{Problems: []string{"limit must be a non-negative integer"}}
		}
		filter.Limit = value
	}

	return filter, nil
}
