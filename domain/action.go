package domain

import "github.com/readydoer/marketplace-core/apperror"

// Action is a user-initiated status mutation on a listed record.
type Action string

const (
	ActionAccept    Action = "accept"
	ActionReject    Action = "reject"
	ActionArchive   Action = "archive"
	ActionCancel    Action = "cancel"
	ActionNegotiate Action = "negotiate"
	// ActionReopen returns a record from negotiation back to pending.
	ActionReopen Action = "reopen"
)

var actionTargets = map[Action]string{
	ActionAccept:    "accepted",
	ActionReject:    "rejected",
	ActionArchive:   "archived",
	ActionCancel:    "cancelled",
	ActionNegotiate: "negotiation",
	ActionReopen:    "pending",
}

// TargetStatus returns the status string the action assigns.
func (a Action) TargetStatus() (string, error) {
	status, ok := actionTargets[a]
	if !ok {
		return "", apperror.New(apperror.ErrCodeValidation, "unknown action")
	}
	return status, nil
}
