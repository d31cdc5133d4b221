package domain

// ParticipantBank is a directory entry for a bank counterparty. The BIC is an
// opaque identifier, never interpreted structurally.
type ParticipantBank struct {
	BankName      string
	BIC           string
	Country       string
	City          string
	Correspondent bool
}
