package models

import (
	"time"

	"github.com/kernel808/banknet/internal/domain"
)

type RiskScoreResponse struct {
	TransferID string   `json:"transferId"`
	RiskScore  float64  `json:"riskScore"`
	RiskLevel  string   `json:"riskLevel"`
	Factors    []string `json:"riskFactors"`
	Confidence float64  `json:"confidence"`
	ScoredAt   string   `json:"timestamp"`
}

func MapRiskToResponse(assessment domain.RiskAssessment) RiskScoreResponse {
	return RiskScoreResponse{
		TransferID: assessment.TransferID,
		RiskScore:  assessment.Score,
		RiskLevel:  assessment.Level,
		Factors:    assessment.Factors,
		Confidence: assessment.Confidence,
		ScoredAt:   assessment.ScoredAt.Format(time.RFC3339),
	}
}

type ParticipantBankResponse struct {
	BankName      string `json:"bankName"`
	BIC           string `json:"bic"`
	Country       string `json:"country"`
	City          string `json:"city"`
	Correspondent bool   `json:"correspondent"`
}

func MapParticipantBankToResponse(bank domain.ParticipantBank) ParticipantBankResponse {
	return ParticipantBankResponse{
		BankName:      bank.BankName,
		BIC:           bank.BIC,
		Country:       bank.Country,
		City:          bank.City,
		Correspondent: bank.Correspondent,
	}
}
