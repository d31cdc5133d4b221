package domain

type TransferAction string

const (
	ActionApprove TransferAction = "approve"
	ActionHold    TransferAction = "hold"
	ActionReject  TransferAction = "reject"
)

// Valid reports whether the action label is one of the known mutations.
func (a TransferAction) Valid() bool {
	switch a {
	case ActionApprove, ActionHold, ActionReject:
		return true
	default:
		return false
	}
}
