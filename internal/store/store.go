// Package store holds the durable entity collections for the portal. The
// in-memory collections are the single source of truth; every mutation is
// committed through the persistence adapter before the call returns.
package store

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// Entity kind keys used by the persistence adapter. One durable key per
// kind, value = JSON array of that kind's records.
const (
	KindUsers         = "users"
	KindOrganizations = "organizations"
	KindProjects      = "projects"
	KindMilestones    = "milestones"
	KindMessages      = "messages"
	KindFiles         = "files"
	KindApprovals     = "approvals"
)

// Persistence is the durable substrate seen from the store: load a kind's
// collection at init, save it back after every mutation. Save is
// best-effort and must never fail the mutation.
type Persistence interface {
	Load(ctx context.Context, kind string, out any) bool
	Save(ctx context.Context, kind string, records any)
}

// Store owns every entity instance. All access goes through its methods;
// callers observe a single sequential history.
type Store struct {
	mu      sync.Mutex
	persist Persistence

	users      []User
	orgs       []Organization
	projects   []Project
	milestones []Milestone
	messages   []Message
	files      []FileRecord
	approvals  []ApprovalItem
}

// Load reads every collection from the persistence adapter, seeding any
// kind whose durable key is absent or unreadable.
func Load(ctx context.Context, p Persistence) *Store {
	s := &Store{persist: p}
	if !p.Load(ctx, KindUsers, &s.users) {
		s.users = SeedUsers()
	}
	if !p.Load(ctx, KindOrganizations, &s.orgs) {
		s.orgs = SeedOrganizations()
	}
	if !p.Load(ctx, KindProjects, &s.projects) {
		s.projects = SeedProjects()
	}
	if !p.Load(ctx, KindMilestones, &s.milestones) {
		s.milestones = SeedMilestones()
	}
	if !p.Load(ctx, KindMessages, &s.messages) {
		s.messages = SeedMessages()
	}
	if !p.Load(ctx, KindFiles, &s.files) {
		s.files = SeedFiles()
	}
	if !p.Load(ctx, KindApprovals, &s.approvals) {
		s.approvals = SeedApprovals()
	}
	return s
}

// --- Users ---

func (s *Store) Users(ctx context.Context) []User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]User(nil), s.users...)
}

func (s *Store) UserByID(ctx context.Context, id string) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// UserByEmail matches case-insensitively; email is the login key.
func (s *Store) UserByEmail(ctx context.Context, email string) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return User{}, false
}

func (s *Store) SaveUser(ctx context.Context, user User) User {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = replaceOrAppend(s.users, user, func(u User) string { return u.ID })
	s.persist.Save(ctx, KindUsers, s.users)
	return user
}

func (s *Store) DeleteUser(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = removeByID(s.users, id, func(u User) string { return u.ID })
	s.persist.Save(ctx, KindUsers, s.users)
}

// --- Organizations ---

func (s *Store) Organizations(ctx context.Context) []Organization {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Organization(nil), s.orgs...)
}

func (s *Store) OrganizationByID(ctx context.Context, id string) (Organization, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orgs {
		if o.ID == id {
			return o, true
		}
	}
	return Organization{}, false
}

func (s *Store) SaveOrganization(ctx context.Context, org Organization) Organization {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orgs = replaceOrAppend(s.orgs, org, func(o Organization) string { return o.ID })
	s.persist.Save(ctx, KindOrganizations, s.orgs)
	return org
}

func (s *Store) DeleteOrganization(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orgs = removeByID(s.orgs, id, func(o Organization) string { return o.ID })
	s.persist.Save(ctx, KindOrganizations, s.orgs)
}

// --- Projects ---

// Projects returns newest-first: new projects are prepended on insert.
func (s *Store) Projects(ctx context.Context) []Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Project(nil), s.projects...)
}

func (s *Store) ProjectByID(ctx context.Context, id string) (Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

func (s *Store) SaveProject(ctx context.Context, project Project) Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = replaceOrPrepend(s.projects, project, func(p Project) string { return p.ID })
	s.persist.Save(ctx, KindProjects, s.projects)
	return project
}

// DeleteProject removes the project and every dependent milestone,
// message, file, and approval in the same commit. Leaving orphans would
// leak them through unscoped paths such as the search fallback scan.
func (s *Store) DeleteProject(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = removeByID(s.projects, id, func(p Project) string { return p.ID })
	s.milestones = removeWhere(s.milestones, func(m Milestone) bool { return m.ProjectID == id })
	s.messages = removeWhere(s.messages, func(m Message) bool { return m.ProjectID == id })
	s.files = removeWhere(s.files, func(f FileRecord) bool { return f.ProjectID == id })
	s.approvals = removeWhere(s.approvals, func(a ApprovalItem) bool { return a.ProjectID == id })
	s.persist.Save(ctx, KindProjects, s.projects)
	s.persist.Save(ctx, KindMilestones, s.milestones)
	s.persist.Save(ctx, KindMessages, s.messages)
	s.persist.Save(ctx, KindFiles, s.files)
	s.persist.Save(ctx, KindApprovals, s.approvals)
}

// --- Milestones ---

// MilestonesForProject is sorted ascending by due date; equal due dates
// keep insertion order.
func (s *Store) MilestonesForProject(ctx context.Context, projectID string) []Milestone {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Milestone, 0, 4)
	for _, m := range s.milestones {
		if m.ProjectID == projectID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DueDate < out[j].DueDate })
	return out
}

func (s *Store) MilestoneByID(ctx context.Context, id string) (Milestone, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.milestones {
		if m.ID == id {
			return m, true
		}
	}
	return Milestone{}, false
}

func (s *Store) SaveMilestone(ctx context.Context, milestone Milestone) Milestone {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.milestones = replaceOrAppend(s.milestones, milestone, func(m Milestone) string { return m.ID })
	s.persist.Save(ctx, KindMilestones, s.milestones)
	return milestone
}

func (s *Store) DeleteMilestone(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.milestones = removeByID(s.milestones, id, func(m Milestone) string { return m.ID })
	s.persist.Save(ctx, KindMilestones, s.milestones)
}

// --- Messages ---

// Messages returns every message in insertion order. Thread ordering
// (general chat by timestamp, approval threads by insertion) is applied
// by the callers that assemble views.
func (s *Store) Messages(ctx context.Context) []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message(nil), s.messages...)
}

func (s *Store) MessagesForProject(ctx context.Context, projectID string) []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, 0, 8)
	for _, m := range s.messages {
		if m.ProjectID == projectID {
			out = append(out, m)
		}
	}
	return out
}

func (s *Store) SaveMessage(ctx context.Context, message Message) Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = replaceOrAppend(s.messages, message, func(m Message) string { return m.ID })
	s.persist.Save(ctx, KindMessages, s.messages)
	return message
}

// --- Files ---

// FilesForProject is newest-first: new uploads are prepended on insert.
func (s *Store) FilesForProject(ctx context.Context, projectID string) []FileRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]FileRecord, 0, 8)
	for _, f := range s.files {
		if f.ProjectID == projectID {
			out = append(out, f)
		}
	}
	return out
}

func (s *Store) FileByID(ctx context.Context, id string) (FileRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.files {
		if f.ID == id {
			return f, true
		}
	}
	return FileRecord{}, false
}

func (s *Store) SaveFile(ctx context.Context, file FileRecord) FileRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files = replaceOrPrepend(s.files, file, func(f FileRecord) string { return f.ID })
	s.persist.Save(ctx, KindFiles, s.files)
	return file
}

func (s *Store) DeleteFile(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files = removeByID(s.files, id, func(f FileRecord) string { return f.ID })
	s.persist.Save(ctx, KindFiles, s.files)
}

// --- Approvals ---

func (s *Store) Approvals(ctx context.Context) []ApprovalItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ApprovalItem(nil), s.approvals...)
}

func (s *Store) ApprovalsForProject(ctx context.Context, projectID string) []ApprovalItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ApprovalItem, 0, 4)
	for _, a := range s.approvals {
		if a.ProjectID == projectID {
			out = append(out, a)
		}
	}
	return out
}

func (s *Store) ApprovalByID(ctx context.Context, id string) (ApprovalItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.approvals {
		if a.ID == id {
			return a, true
		}
	}
	return ApprovalItem{}, false
}

func (s *Store) SaveApproval(ctx context.Context, item ApprovalItem) ApprovalItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.approvals = replaceOrAppend(s.approvals, item, func(a ApprovalItem) string { return a.ID })
	s.persist.Save(ctx, KindApprovals, s.approvals)
	return item
}

func (s *Store) DeleteApproval(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.approvals = removeByID(s.approvals, id, func(a ApprovalItem) string { return a.ID })
	s.persist.Save(ctx, KindApprovals, s.approvals)
}

// --- helpers ---

func replaceOrAppend[T any](records []T, record T, id func(T) string) []T {
	for i := range records {
		if id(records[i]) == id(record) {
			records[i] = record
			return records
		}
	}
	return append(records, record)
}

func replaceOrPrepend[T any](records []T, record T, id func(T) string) []T {
	for i := range records {
		if id(records[i]) == id(record) {
			records[i] = record
			return records
		}
	}
	return append([]T{record}, records...)
}

// removeByID is idempotent: deleting an unknown id is a no-op.
func removeByID[T any](records []T, target string, id func(T) string) []T {
	for i := range records {
		if id(records[i]) == target {
			return append(records[:i:i], records[i+1:]...)
		}
	}
	return records
}

func removeWhere[T any](records []T, drop func(T) bool) []T {
	out := records[:0:0]
	for _, r := range records {
		if !drop(r) {
			out = append(out, r)
		}
	}
	return out
}
