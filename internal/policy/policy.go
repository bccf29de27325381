// Package policy holds the visibility and scoping rules as pure
// functions over store records. Nothing here touches the store or any
// other state; callers pass collections in and get filtered copies back.
package policy

import (
	"sort"

	"framelight/api/internal/store"
)

// Actor is the authorization context every rule evaluates against.
type Actor struct {
	Role           string
	OrganizationID string
}

func ActorFor(user store.User) Actor {
	return Actor{Role: user.Role, OrganizationID: user.OrganizationID}
}

func (a Actor) IsAdmin() bool {
	return a.Role == store.RoleAdmin
}

// ScopeProjects keeps every project for ADMIN actors and only the
// actor's own organization's projects for CLIENT actors.
func ScopeProjects(actor Actor, projects []store.Project) []store.Project {
	if actor.IsAdmin() {
		return projects
	}
	out := make([]store.Project, 0, len(projects))
	for _, p := range projects {
		if p.OrganizationID == actor.OrganizationID {
			out = append(out, p)
		}
	}
	return out
}

// CanSeeFile: client-visible files are visible to everyone, the rest
// only to ADMIN actors.
func CanSeeFile(actor Actor, file store.FileRecord) bool {
	return file.IsClientVisible || actor.IsAdmin()
}

func VisibleFiles(actor Actor, files []store.FileRecord) []store.FileRecord {
	out := make([]store.FileRecord, 0, len(files))
	for _, f := range files {
		if CanSeeFile(actor, f) {
			out = append(out, f)
		}
	}
	return out
}

// CanSeeMessage governs the message body itself; thread placement is a
// separate concern handled by GeneralThread/ApprovalThread.
func CanSeeMessage(actor Actor, message store.Message) bool {
	return !message.IsInternal || actor.IsAdmin()
}

// GeneralThread filters a project's messages to the general
// conversation: internal messages are dropped for CLIENT actors and
// approval-threaded messages are excluded for every role. The result is
// sorted ascending by creation time.
func GeneralThread(actor Actor, messages []store.Message) []store.Message {
	out := make([]store.Message, 0, len(messages))
	for _, m := range messages {
		if m.ApprovalItemID != "" {
			continue
		}
		if !CanSeeMessage(actor, m) {
			continue
		}
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// ApprovalThread returns the feedback messages attached to one approval
// item, in insertion order.
func ApprovalThread(actor Actor, messages []store.Message, approvalItemID string) []store.Message {
	out := make([]store.Message, 0, len(messages))
	for _, m := range messages {
		if m.ApprovalItemID != approvalItemID {
			continue
		}
		if !CanSeeMessage(actor, m) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// VisibleMessages applies only the role rule, preserving thread links
// and order. Used where the caller does its own thread grouping.
func VisibleMessages(actor Actor, messages []store.Message) []store.Message {
	out := make([]store.Message, 0, len(messages))
	for _, m := range messages {
		if CanSeeMessage(actor, m) {
			out = append(out, m)
		}
	}
	return out
}

// UploadBuckets groups files by the uploader's role.
type UploadBuckets struct {
	ClientUploads      []store.FileRecord
	AgencyDeliverables []store.FileRecord
}

// ClassifyUploads resolves each uploader against the actor directory. A
// file whose uploader no longer resolves lands in neither bucket.
func ClassifyUploads(files []store.FileRecord, lookup func(id string) (store.User, bool)) UploadBuckets {
	var buckets UploadBuckets
	for _, f := range files {
		uploader, ok := lookup(f.UploadedByID)
		if !ok {
			continue
		}
		switch uploader.Role {
		case store.RoleClient:
			buckets.ClientUploads = append(buckets.ClientUploads, f)
		case store.RoleAdmin:
			buckets.AgencyDeliverables = append(buckets.AgencyDeliverables, f)
		}
	}
	return buckets
}
