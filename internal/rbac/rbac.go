// Package rbac defines the two-role permission matrix for the portal.
package rbac

import "framelight/api/internal/store"

type Action string

const (
	// ActionManageOrgs covers organization and actor directory CRUD.
	ActionManageOrgs Action = "manage_orgs"
	// ActionEditProject covers project, milestone, and approval-item
	// record edits, including the administrative status override.
	ActionEditProject Action = "edit_project"
	// ActionPostInternal marks a message as internal-only.
	ActionPostInternal Action = "post_internal"
	// ActionViewInternal sees internal messages and hidden files.
	ActionViewInternal Action = "view_internal"
	// ActionViewStats reads the agency-wide dashboard counters.
	ActionViewStats Action = "view_stats"
	// ActionDecideApproval triggers the approve / request-changes
	// actions. Deliberately CLIENT-only: agency staff change approval
	// state by editing the record, clients through the action surface.
	ActionDecideApproval Action = "decide_approval"
	// ActionParticipate posts messages, feedback, and file records.
	ActionParticipate Action = "participate"
)

func Can(role string, action Action) bool {
	switch role {
	case store.RoleAdmin:
		return action != ActionDecideApproval
	case store.RoleClient:
		return action == ActionParticipate || action == ActionDecideApproval
	default:
		return false
	}
}
