// Package workflow holds the approval-item state machine. The rules here
// govern only the client action surface; agency staff bypass them via a
// full-record edit, which is an intentional authority asymmetry.
package workflow

import (
	"errors"
	"fmt"

	"framelight/api/internal/store"
)

type Action string

const (
	ActionApprove        Action = "approve"
	ActionRequestChanges Action = "request_changes"
)

// ErrTerminal is returned for any action on an APPROVED item. Approval
// is the one terminal state of the machine.
var ErrTerminal = errors.New("approval is final")

// ValidStatus reports whether a status value is one the machine knows.
// Used to validate administrative edits before they are saved.
func ValidStatus(status string) bool {
	switch status {
	case store.ApprovalPending, store.ApprovalApproved, store.ApprovalChangesRequested:
		return true
	}
	return false
}

// Apply returns the status an action moves an item to. Both actions are
// permitted from any non-terminal state: approve always lands on
// Approved, request-changes on Changes Requested.
func Apply(current string, action Action) (string, error) {
	if current == store.ApprovalApproved {
		return "", ErrTerminal
	}
	switch action {
	case ActionApprove:
		return store.ApprovalApproved, nil
	case ActionRequestChanges:
		return store.ApprovalChangesRequested, nil
	default:
		return "", fmt.Errorf("unknown approval action %q", action)
	}
}
