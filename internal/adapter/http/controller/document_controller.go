package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/kernel808/banknet/internal/adapter/http/models"
	"github.com/kernel808/banknet/internal/usecase/service_interfaces"
)

type DocumentController struct {
	transfers service_interfaces.TransferService
	documents service_interfaces.DocumentService
}

func NewDocumentController(transfers service_interfaces.TransferService, documents service_interfaces.DocumentService) *DocumentController {
	return &DocumentController{transfers: transfers, documents: documents}
}

func (c *DocumentController) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/documents/transfer-receipt/{id}", c.transferReceipt).Methods(http.MethodGet)
}

func (c *DocumentController) transferReceipt(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	id := mux.Vars(r)["id"]
	transfer, err := c.transfers.Get(r.Context(), id)
	if err != nil {
		writeError[models.TransferResponse](w, r, err, "failed to fetch transfer", start)
		return
	}

	pdf, err := c.documents.RenderTransferReceipt(r.Context(), transfer)
	if err != nil {
		writeError[models.TransferResponse](w, r, err, "failed to render document", start)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=transfer-receipt-%s.pdf", transfer.ID))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
	logResponse(r, http.StatusOK, start)
}
