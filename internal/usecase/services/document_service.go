package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/kernel808/banknet/internal/domain"
	"github.com/kernel808/banknet/internal/logger"
	"github.com/kernel808/banknet/internal/usecase/service_interfaces"
)

// Verify that DocumentService implements the service_interfaces.DocumentService interface
var _ service_interfaces.DocumentService = (*DocumentService)(nil)

const documentWatermark = "EDUCATIONAL SIMULATION"

// DocumentService renders MT103-style payment confirmations. The documents
// are deliberately watermarked: nothing produced here carries any real-world
// meaning.
type DocumentService struct{}

func NewDocumentService() *DocumentService {
	return &DocumentService{}
}

func (s *DocumentService) RenderTransferReceipt(_ context.Context, transfer domain.Transfer) ([]byte, error) {
	logger.Info("document service render transfer receipt", logger.Fields{
		"transferId": transfer.ID,
	})

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Payment Confirmation "+transfer.ID, false)
	pdf.AddPage()

	s.renderHeader(pdf)
	s.renderDetails(pdf, transfer)
	s.renderTimeline(pdf, transfer)
	if err := s.renderVerificationCode(pdf, transfer); err != nil {
		return nil, err
	}
	s.renderWatermark(pdf)
	s.renderFooter(pdf)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		logger.Error("document service pdf output failed", err, logger.Fields{
			"transferId": transfer.ID,
		})
		return nil, fmt.Errorf("render transfer receipt: %w", err)
	}

	return buf.Bytes(), nil
}

func (s *DocumentService) renderHeader(pdf *fpdf.Fpdf) {
	pdf.SetFillColor(31, 78, 121)
	pdf.Rect(0, 0, 210, 28, "F")

	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(12, 8)
	pdf.CellFormat(0, 8, "PAYMENT CONFIRMATION", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetX(12)
	pdf.CellFormat(0, 6, "SWIFT-style interbank funds transfer advice", "", 1, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetY(34)
}

func (s *DocumentService) renderDetails(pdf *fpdf.Fpdf, transfer domain.Transfer) {
	rows := [][2]string{
		{"Transaction Reference", transfer.ID},
		{"Message Type", transfer.TransferType},
		{"Ordering Customer", fmt.Sprintf("%s (%s)", transfer.SenderName, transfer.SenderBIC)},
		{"Beneficiary", fmt.Sprintf("%s (%s)", transfer.ReceiverName, transfer.ReceiverBIC)},
		{"Amount", fmt.Sprintf("%s %s", transfer.Currency, transfer.Amount.StringFixed(2))},
		{"Remittance Information", transfer.Reference},
		{"Details of Payment", transfer.Purpose},
		{"Status", string(transfer.Status)},
		{"Current Location", transfer.Location},
		{"Value Date", transfer.CreatedAt.Format("2006-01-02")},
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 8, "Transfer Details", "B", 1, "L", false, 0, "")
	pdf.Ln(1)

	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(60, 6, row[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(0, 6, row[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func (s *DocumentService) renderTimeline(pdf *fpdf.Fpdf, transfer domain.Transfer) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 8, "Processing Timeline", "B", 1, "L", false, 0, "")
	pdf.Ln(1)

	pdf.SetFont("Helvetica", "", 9)
	for i, stage := range transfer.Stages {
		marker := "[ ]"
		detail := "pending"
		switch stage.Status {
		case domain.StageStatusCompleted:
			marker = "[x]"
			detail = "completed"
			if stage.CompletedAt != nil {
				detail = "completed " + stage.CompletedAt.Format("2006-01-02 15:04:05")
			}
		case domain.StageStatusInProgress:
			marker = "[>]"
			detail = "in progress"
		}
		pdf.CellFormat(0, 5, fmt.Sprintf("%s %d. %s - %s (%s)", marker, i+1, stage.Name, detail, stage.Location), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func (s *DocumentService) renderVerificationCode(pdf *fpdf.Fpdf, transfer domain.Transfer) error {
	payload := fmt.Sprintf("banknet:transfer:%s:%s:%s%s", transfer.ID, transfer.Status, transfer.Currency, transfer.Amount.StringFixed(2))
	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("encode verification qr: %w", err)
	}

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("verification-qr", opts, bytes.NewReader(png))
	pdf.ImageOptions("verification-qr", 160, 35, 36, 36, false, opts, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(160, 72)
	pdf.CellFormat(36, 4, "Document verification code", "", 1, "C", false, 0, "")
	pdf.SetY(pdf.GetY() + 2)
	return nil
}

func (s *DocumentService) renderWatermark(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 48)
	pdf.SetTextColor(232, 232, 232)
	pdf.TransformBegin()
	pdf.TransformRotate(45, 105, 160)
	pdf.Text(35, 170, documentWatermark)
	pdf.TransformEnd()
	pdf.SetTextColor(0, 0, 0)
}

func (s *DocumentService) renderFooter(pdf *fpdf.Fpdf) {
	pdf.SetY(-30)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.SetTextColor(120, 120, 120)
	pdf.MultiCell(0, 4, fmt.Sprintf(
		"Generated %s by the banknet training environment. This document is part of an educational banking-network simulation. "+
			"No funds have moved and no SWIFT message has been sent.",
		time.Now().UTC().Format(time.RFC3339),
	), "T", "L", false)
}
