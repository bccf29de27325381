package store

import "time"

// Roles an actor can hold. CLIENT actors belong to exactly one
// organization; ADMIN actors have agency-wide scope and no affiliation.
const (
	RoleAdmin  = "ADMIN"
	RoleClient = "CLIENT"
)

// Project lifecycle statuses. The display strings are part of the
// persisted payload, so they never change once written.
const (
	ProjectDiscovery      = "Discovery"
	ProjectPreProduction  = "Pre-Production"
	ProjectProduction     = "Production"
	ProjectPostProduction = "Post-Production"
	ProjectOnHold         = "On Hold"
	ProjectDelivered      = "Delivered"
	ProjectArchived       = "Archived"
)

const (
	MilestoneNotStarted = "Not Started"
	MilestoneInProgress = "In Progress"
	MilestoneCompleted  = "Completed"
	MilestoneBlocked    = "Blocked"
)

// Approval statuses; see internal/workflow for the transition rules.
const (
	ApprovalPending          = "Pending Review"
	ApprovalApproved         = "Approved"
	ApprovalChangesRequested = "Changes Requested"
)

type User struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	OrganizationID string `json:"organizationId,omitempty"`
	AvatarURL      string `json:"avatarUrl,omitempty"`
	JobTitle       string `json:"jobTitle,omitempty"`
	Phone          string `json:"phone,omitempty"`
	// PasswordHash is a bcrypt hash. Empty means no credential is set;
	// such actors can only sign in when seed logins are enabled.
	PasswordHash string `json:"passwordHash,omitempty"`
}

// Organization is a client company. The primary contact is a denormalized
// name/email pair, not a reference into the actor directory.
type Organization struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	PrimaryContactName  string `json:"primaryContactName"`
	PrimaryContactEmail string `json:"primaryContactEmail"`
}

type Project struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organizationId"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Status         string `json:"status"`
	StartDate      string `json:"startDate"`
	DueDate        string `json:"dueDate,omitempty"`
}

type Milestone struct {
	ID          string `json:"id"`
	ProjectID   string `json:"projectId"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DueDate     string `json:"dueDate"`
	Status      string `json:"status"`
}

// Message is a project chat entry. SenderName is a snapshot taken at send
// time so history survives actor renames. A non-empty ApprovalItemID
// threads the message to a review instead of the general conversation.
type Message struct {
	ID             string    `json:"id"`
	ProjectID      string    `json:"projectId"`
	SenderID       string    `json:"senderId"`
	SenderName     string    `json:"senderName"`
	IsInternal     bool      `json:"isInternal"`
	Body           string    `json:"body"`
	CreatedAt      time.Time `json:"createdAt"`
	ApprovalItemID string    `json:"approvalItemId,omitempty"`
}

// FileRecord describes an exchanged file by reference only; the content
// lives with the file host. A record with IsClientVisible=false must
// never reach a CLIENT actor on any query path.
type FileRecord struct {
	ID              string    `json:"id"`
	ProjectID       string    `json:"projectId"`
	UploadedByID    string    `json:"uploadedById"`
	UploadedByName  string    `json:"uploadedByName"`
	FileName        string    `json:"fileName"`
	FileType        string    `json:"fileType"`
	FileSize        string    `json:"fileSize"`
	IsClientVisible bool      `json:"isClientVisible"`
	CreatedAt       time.Time `json:"createdAt"`
	URL             string    `json:"url"`
}

type ApprovalItem struct {
	ID           string `json:"id"`
	ProjectID    string `json:"projectId"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	LinkToReview string `json:"linkToReview"`
	Status       string `json:"status"`
}
