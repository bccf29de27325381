package app

import (
	"context"
	"log"
	"path/filepath"
	"strings"
	"time"

	"framelight/api/internal/auth"
	"framelight/api/internal/authpw"
	"framelight/api/internal/config"
	"framelight/api/internal/policy"
	"framelight/api/internal/rbac"
	"framelight/api/internal/search"
	"framelight/api/internal/session"
	"framelight/api/internal/store"
	"framelight/api/internal/util"
	"framelight/api/internal/workflow"

	"github.com/dustin/go-humanize"
)

// Session is the authenticated actor context handed to every operation.
type Session struct {
	Token          string
	RefreshToken   string
	UserID         string
	UserName       string
	Role           string
	OrganizationID string
	JTI            string
	ExpiresAt      time.Time
}

func (s Session) Actor() policy.Actor {
	return policy.Actor{Role: s.Role, OrganizationID: s.OrganizationID}
}

// ApprovalView is an approval item with its feedback thread attached,
// feedback in insertion order.
type ApprovalView struct {
	store.ApprovalItem
	Feedback []store.Message `json:"feedback"`
}

// Bundle is the composed project-detail view: the project plus every
// dependent collection, ordered per kind and filtered to the requesting
// actor's visibility.
type Bundle struct {
	Project            store.Project      `json:"project"`
	Milestones         []store.Milestone  `json:"milestones"`
	Messages           []store.Message    `json:"messages"`
	Files              []store.FileRecord `json:"files"`
	Approvals          []ApprovalView     `json:"approvals"`
	ClientUploads      []string           `json:"clientUploads"`
	AgencyDeliverables []string           `json:"agencyDeliverables"`
}

// Stats are the agency-wide dashboard counters, computed over the
// unfiltered store. Admin-only; callers enforce the scope.
type Stats struct {
	ActiveProjects   int `json:"activeProjects"`
	TotalOrgs        int `json:"totalOrgs"`
	PendingApprovals int `json:"pendingApprovals"`
}

type sessionStore interface {
	Save(ctx context.Context, tokenHash string, data session.TokenData, expiresAt time.Time) error
	Lookup(ctx context.Context, tokenHash string) (session.TokenData, error)
	Revoke(ctx context.Context, tokenHash string) error
}

type searchService interface {
	Search(q search.Query) search.Response
	IndexProject(rec search.ProjectRecord)
	IndexMessage(rec search.MessageRecord)
	DeleteProject(id string)
}

type urlResolver interface {
	ResolveURL(ctx context.Context, ref, fileName string) (string, error)
}

type mailer interface {
	IsConfigured() bool
	SendReviewReady(to, contactName, projectName, itemTitle, reviewURL string) error
	SendDecision(to, projectName, itemTitle, status, decidedBy string) error
}

type pinger interface {
	Ping(ctx context.Context) error
}

type Service struct {
	cfg      config.Config
	store    *store.Store
	gate     *authpw.Service
	sessions sessionStore
	search   searchService
	files    urlResolver
	mail     mailer
	pinger   pinger
}

// New wires the service. search, files, and mail may be nil when the
// corresponding backend is not configured.
func New(cfg config.Config, dataStore *store.Store, gate *authpw.Service, sessions sessionStore, searcher searchService, files urlResolver, mail mailer) *Service {
	return &Service{
		cfg:      cfg,
		store:    dataStore,
		gate:     gate,
		sessions: sessions,
		search:   searcher,
		files:    files,
		mail:     mail,
	}
}

func (s *Service) Can(role string, action rbac.Action) bool {
	return rbac.Can(role, action)
}

// --- Sessions ---

func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	user, err := s.gate.Authenticate(ctx, email, password)
	if err != nil {
		return Session{}, authFailed("Invalid email or password")
	}
	return s.issueSession(ctx, user)
}

func (s *Service) issueSession(ctx context.Context, user store.User) (Session, error) {
	now := time.Now()
	expiresAt := now.Add(s.cfg.AccessTTL)
	jti := util.NewID("jti")

	token, err := auth.IssueToken([]byte(s.cfg.JWTSecret), auth.Claims{
		Sub:  user.ID,
		Name: user.Name,
		Role: user.Role,
		Org:  user.OrganizationID,
		JTI:  jti,
		Exp:  expiresAt.Unix(),
	})
	if err != nil {
		return Session{}, err
	}

	refresh := util.NewID("rft") + util.NewID("")
	refreshExpires := now.Add(s.cfg.RefreshTTL)
	if err := s.sessions.Save(ctx, auth.HashToken(refresh), session.TokenData{
		UserID:         user.ID,
		Name:           user.Name,
		Role:           user.Role,
		OrganizationID: user.OrganizationID,
	}, refreshExpires); err != nil {
		return Session{}, err
	}

	return Session{
		Token:          token,
		RefreshToken:   refresh,
		UserID:         user.ID,
		UserName:       user.Name,
		Role:           user.Role,
		OrganizationID: user.OrganizationID,
		JTI:            jti,
		ExpiresAt:      expiresAt,
	}, nil
}

// Refresh rotates a refresh token and issues a fresh access token. The
// actor is re-read from the directory so role or organization changes
// take effect at the next refresh.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (Session, error) {
	tokenHash := auth.HashToken(refreshToken)
	data, err := s.sessions.Lookup(ctx, tokenHash)
	if err != nil {
		return Session{}, authFailed("Invalid refresh token")
	}
	if err := s.sessions.Revoke(ctx, tokenHash); err != nil {
		return Session{}, err
	}
	user, ok := s.store.UserByID(ctx, data.UserID)
	if !ok {
		return Session{}, authFailed("Account no longer exists")
	}
	return s.issueSession(ctx, user)
}

func (s *Service) SessionFromToken(ctx context.Context, token string) (Session, error) {
	claims, err := auth.ParseToken([]byte(s.cfg.JWTSecret), token)
	if err != nil {
		return Session{}, err
	}

	user, ok := s.store.UserByID(ctx, claims.Sub)
	if !ok {
		return Session{}, auth.ErrInvalidToken
	}

	return Session{
		Token:          token,
		UserID:         user.ID,
		UserName:       user.Name,
		Role:           user.Role,
		OrganizationID: user.OrganizationID,
		JTI:            claims.JTI,
		ExpiresAt:      time.Unix(claims.Exp, 0),
	}, nil
}

func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken != "" {
		_ = s.sessions.Revoke(ctx, auth.HashToken(refreshToken))
	}
	return nil
}

// --- Organizations ---

func (s *Service) ListOrganizations(ctx context.Context) []store.Organization {
	return s.store.Organizations(ctx)
}

func (s *Service) GetOrganization(ctx context.Context, id string) (store.Organization, error) {
	org, ok := s.store.OrganizationByID(ctx, id)
	if !ok {
		return store.Organization{}, notFound("Organization not found")
	}
	return org, nil
}

func (s *Service) SaveOrganization(ctx context.Context, org store.Organization) (store.Organization, error) {
	org.Name = strings.TrimSpace(org.Name)
	if org.Name == "" {
		return store.Organization{}, validationError("organization name is required")
	}
	if org.ID == "" {
		org.ID = util.NewID("org")
	} else if _, ok := s.store.OrganizationByID(ctx, org.ID); !ok {
		return store.Organization{}, notFound("Organization not found")
	}
	return s.store.SaveOrganization(ctx, org), nil
}

// DeleteOrganization refuses while projects still reference the
// organization; deleting would orphan them.
func (s *Service) DeleteOrganization(ctx context.Context, id string) error {
	for _, p := range s.store.Projects(ctx) {
		if p.OrganizationID == id {
			return conflict("organization still owns projects")
		}
	}
	s.store.DeleteOrganization(ctx, id)
	return nil
}

// --- Users ---

// ListUsers strips credential hashes; they never leave the service.
func (s *Service) ListUsers(ctx context.Context) []store.User {
	users := s.store.Users(ctx)
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users
}

type SaveUserInput struct {
	store.User
	// Password, when set, replaces the stored credential.
	Password string `json:"password,omitempty"`
}

func (s *Service) SaveUser(ctx context.Context, input SaveUserInput) (store.User, error) {
	user := input.User
	user.Name = strings.TrimSpace(user.Name)
	user.Email = strings.TrimSpace(user.Email)
	if user.Name == "" || user.Email == "" {
		return store.User{}, validationError("name and email are required")
	}
	if user.Role != store.RoleAdmin && user.Role != store.RoleClient {
		return store.User{}, validationError("role must be ADMIN or CLIENT")
	}
	if user.Role == store.RoleClient {
		if user.OrganizationID == "" {
			return store.User{}, validationError("client users must belong to an organization")
		}
		if _, ok := s.store.OrganizationByID(ctx, user.OrganizationID); !ok {
			return store.User{}, validationError("organization does not exist")
		}
	} else {
		user.OrganizationID = ""
	}

	if existing, ok := s.store.UserByEmail(ctx, user.Email); ok && existing.ID != user.ID {
		return store.User{}, conflict("email already registered")
	}

	if user.ID == "" {
		user.ID = util.NewID("usr")
	} else {
		existing, ok := s.store.UserByID(ctx, user.ID)
		if !ok {
			return store.User{}, notFound("User not found")
		}
		// Edits keep the stored credential unless a new one is given.
		user.PasswordHash = existing.PasswordHash
	}

	if input.Password != "" {
		hash, err := authpw.HashPassword(input.Password)
		if err != nil {
			return store.User{}, validationError(err.Error())
		}
		user.PasswordHash = hash
	}

	saved := s.store.SaveUser(ctx, user)
	saved.PasswordHash = ""
	return saved, nil
}

func (s *Service) DeleteUser(ctx context.Context, id string) {
	s.store.DeleteUser(ctx, id)
}

// --- Projects ---

// ListProjects applies the actor's scope: admins see everything,
// clients only their own organization's projects. Newest first.
func (s *Service) ListProjects(ctx context.Context, sess Session) []store.Project {
	return policy.ScopeProjects(sess.Actor(), s.store.Projects(ctx))
}

func (s *Service) SaveProject(ctx context.Context, project store.Project) (store.Project, error) {
	project.Name = strings.TrimSpace(project.Name)
	if project.Name == "" {
		return store.Project{}, validationError("project name is required")
	}
	if project.OrganizationID == "" {
		return store.Project{}, validationError("organization is required")
	}
	if _, ok := s.store.OrganizationByID(ctx, project.OrganizationID); !ok {
		return store.Project{}, validationError("organization does not exist")
	}
	if project.ID != "" {
		existing, ok := s.store.ProjectByID(ctx, project.ID)
		if !ok {
			return store.Project{}, notFound("Project not found")
		}
		if existing.OrganizationID != project.OrganizationID {
			return store.Project{}, conflict("projects cannot move between organizations")
		}
	}
	if project.Status == "" {
		project.Status = store.ProjectDiscovery
	}
	if project.StartDate == "" {
		project.StartDate = time.Now().UTC().Format("2006-01-02")
	}
	if project.ID == "" {
		project.ID = util.NewID("prj")
	}

	saved := s.store.SaveProject(ctx, project)
	if s.search != nil {
		s.search.IndexProject(search.ProjectRecord{
			ID:             saved.ID,
			Name:           saved.Name,
			Description:    saved.Description,
			OrganizationID: saved.OrganizationID,
			Status:         saved.Status,
		})
	}
	return saved, nil
}

func (s *Service) DeleteProject(ctx context.Context, id string) error {
	if _, ok := s.store.ProjectByID(ctx, id); !ok {
		// Idempotent: deleting an unknown project is a no-op.
		return nil
	}
	s.store.DeleteProject(ctx, id)
	if s.search != nil {
		s.search.DeleteProject(id)
	}
	return nil
}

// resolveBundle assembles the composite project view with per-kind
// ordering applied but no actor filtering; visibility is layered on by
// ProjectBundle so the resolver stays reusable for any role.
func (s *Service) resolveBundle(ctx context.Context, projectID string) (store.Project, []store.Milestone, []store.Message, []store.FileRecord, []store.ApprovalItem, error) {
	project, ok := s.store.ProjectByID(ctx, projectID)
	if !ok {
		return store.Project{}, nil, nil, nil, nil, notFound("Project not found")
	}
	return project,
		s.store.MilestonesForProject(ctx, projectID),
		s.store.MessagesForProject(ctx, projectID),
		s.store.FilesForProject(ctx, projectID),
		s.store.ApprovalsForProject(ctx, projectID),
		nil
}

// ProjectBundle returns the project-detail payload for an actor. An
// unknown project id is NOT_FOUND, never an empty bundle; a client
// requesting another organization's project gets the same NOT_FOUND so
// existence does not leak.
func (s *Service) ProjectBundle(ctx context.Context, sess Session, projectID string) (Bundle, error) {
	project, milestones, messages, files, approvals, err := s.resolveBundle(ctx, projectID)
	if err != nil {
		return Bundle{}, err
	}

	actor := sess.Actor()
	if !actor.IsAdmin() && project.OrganizationID != actor.OrganizationID {
		return Bundle{}, notFound("Project not found")
	}

	visibleFiles := policy.VisibleFiles(actor, files)
	for i := range visibleFiles {
		resolved, err := s.resolveFileURL(ctx, visibleFiles[i])
		if err != nil {
			log.Printf("filehost: resolve %s: %v", visibleFiles[i].ID, err)
			continue
		}
		visibleFiles[i].URL = resolved
	}

	buckets := policy.ClassifyUploads(visibleFiles, func(id string) (store.User, bool) {
		return s.store.UserByID(ctx, id)
	})

	views := make([]ApprovalView, 0, len(approvals))
	for _, item := range approvals {
		views = append(views, ApprovalView{
			ApprovalItem: item,
			Feedback:     policy.ApprovalThread(actor, messages, item.ID),
		})
	}

	return Bundle{
		Project:            project,
		Milestones:         milestones,
		Messages:           policy.GeneralThread(actor, messages),
		Files:              visibleFiles,
		Approvals:          views,
		ClientUploads:      fileIDs(buckets.ClientUploads),
		AgencyDeliverables: fileIDs(buckets.AgencyDeliverables),
	}, nil
}

func (s *Service) resolveFileURL(ctx context.Context, file store.FileRecord) (string, error) {
	if s.files == nil {
		return file.URL, nil
	}
	return s.files.ResolveURL(ctx, file.URL, file.FileName)
}

func fileIDs(files []store.FileRecord) []string {
	ids := make([]string, 0, len(files))
	for _, f := range files {
		ids = append(ids, f.ID)
	}
	return ids
}

// --- Milestones ---

func (s *Service) SaveMilestone(ctx context.Context, projectID string, milestone store.Milestone) (store.Milestone, error) {
	if _, ok := s.store.ProjectByID(ctx, projectID); !ok {
		return store.Milestone{}, notFound("Project not found")
	}
	milestone.ProjectID = projectID
	milestone.Title = strings.TrimSpace(milestone.Title)
	if milestone.Title == "" {
		return store.Milestone{}, validationError("milestone title is required")
	}
	if milestone.DueDate == "" {
		return store.Milestone{}, validationError("milestone due date is required")
	}
	if _, err := time.Parse("2006-01-02", milestone.DueDate); err != nil {
		return store.Milestone{}, validationError("due date must be YYYY-MM-DD")
	}
	if milestone.Status == "" {
		milestone.Status = store.MilestoneNotStarted
	}
	if milestone.ID == "" {
		milestone.ID = util.NewID("mls")
	} else if existing, ok := s.store.MilestoneByID(ctx, milestone.ID); !ok || existing.ProjectID != projectID {
		return store.Milestone{}, notFound("Milestone not found")
	}
	return s.store.SaveMilestone(ctx, milestone), nil
}

func (s *Service) DeleteMilestone(ctx context.Context, id string) {
	s.store.DeleteMilestone(ctx, id)
}

// --- Messages ---

type PostMessageInput struct {
	Body           string `json:"body"`
	IsInternal     bool   `json:"isInternal"`
	ApprovalItemID string `json:"approvalItemId,omitempty"`
}

// PostMessage appends to a project's conversation. Internal messages
// require agency rights; feedback threaded to an approval item is
// always client-visible so both sides see the review discussion.
func (s *Service) PostMessage(ctx context.Context, sess Session, projectID string, input PostMessageInput) (store.Message, error) {
	project, ok := s.store.ProjectByID(ctx, projectID)
	if !ok {
		return store.Message{}, notFound("Project not found")
	}
	actor := sess.Actor()
	if !actor.IsAdmin() && project.OrganizationID != actor.OrganizationID {
		return store.Message{}, notFound("Project not found")
	}

	body := strings.TrimSpace(input.Body)
	if body == "" {
		return store.Message{}, validationError("message body is required")
	}
	if input.IsInternal && !rbac.Can(sess.Role, rbac.ActionPostInternal) {
		return store.Message{}, forbidden("only agency staff can post internal notes")
	}
	if input.ApprovalItemID != "" {
		item, ok := s.store.ApprovalByID(ctx, input.ApprovalItemID)
		if !ok || item.ProjectID != projectID {
			return store.Message{}, notFound("Approval item not found")
		}
		input.IsInternal = false
	}

	message := store.Message{
		ID:             util.NewID("msg"),
		ProjectID:      projectID,
		SenderID:       sess.UserID,
		SenderName:     sess.UserName,
		IsInternal:     input.IsInternal,
		Body:           body,
		CreatedAt:      time.Now().UTC(),
		ApprovalItemID: input.ApprovalItemID,
	}
	saved := s.store.SaveMessage(ctx, message)

	if s.search != nil && saved.ApprovalItemID == "" {
		s.search.IndexMessage(search.MessageRecord{
			ID:             saved.ID,
			ProjectID:      saved.ProjectID,
			OrganizationID: project.OrganizationID,
			SenderName:     saved.SenderName,
			Body:           saved.Body,
			IsInternal:     saved.IsInternal,
		})
	}
	return saved, nil
}

// --- Files ---

type AddFileInput struct {
	FileName        string `json:"fileName"`
	SizeBytes       uint64 `json:"sizeBytes,omitempty"`
	FileSize        string `json:"fileSize,omitempty"`
	IsClientVisible bool   `json:"isClientVisible"`
	// Ref is the content reference: an absolute URL or an object key
	// on the file host.
	Ref string `json:"ref"`
}

// AddFile records an exchanged file. Content is never streamed through
// the engine; the record carries a reference only.
func (s *Service) AddFile(ctx context.Context, sess Session, projectID string, input AddFileInput) (store.FileRecord, error) {
	project, ok := s.store.ProjectByID(ctx, projectID)
	if !ok {
		return store.FileRecord{}, notFound("Project not found")
	}
	actor := sess.Actor()
	if !actor.IsAdmin() && project.OrganizationID != actor.OrganizationID {
		return store.FileRecord{}, notFound("Project not found")
	}

	fileName := strings.TrimSpace(input.FileName)
	if fileName == "" {
		return store.FileRecord{}, validationError("file name is required")
	}
	if strings.TrimSpace(input.Ref) == "" {
		return store.FileRecord{}, validationError("content reference is required")
	}

	sizeLabel := strings.TrimSpace(input.FileSize)
	if input.SizeBytes > 0 {
		sizeLabel = humanize.Bytes(input.SizeBytes)
	}

	visible := input.IsClientVisible
	if !actor.IsAdmin() {
		// A client cannot hide their own upload from themselves.
		visible = true
	}

	record := store.FileRecord{
		ID:              util.NewID("fil"),
		ProjectID:       projectID,
		UploadedByID:    sess.UserID,
		UploadedByName:  sess.UserName,
		FileName:        fileName,
		FileType:        fileExtension(fileName),
		FileSize:        sizeLabel,
		IsClientVisible: visible,
		CreatedAt:       time.Now().UTC(),
		URL:             strings.TrimSpace(input.Ref),
	}
	return s.store.SaveFile(ctx, record), nil
}

func (s *Service) DeleteFile(ctx context.Context, id string) {
	s.store.DeleteFile(ctx, id)
}

func fileExtension(fileName string) string {
	ext := strings.TrimPrefix(filepath.Ext(fileName), ".")
	return strings.ToLower(ext)
}

// --- Approvals ---

// SaveApproval is the administrative surface: it may set any status
// directly, bypassing the action-triggered transition rules.
func (s *Service) SaveApproval(ctx context.Context, projectID string, item store.ApprovalItem) (store.ApprovalItem, error) {
	project, ok := s.store.ProjectByID(ctx, projectID)
	if !ok {
		return store.ApprovalItem{}, notFound("Project not found")
	}
	item.ProjectID = projectID
	item.Title = strings.TrimSpace(item.Title)
	if item.Title == "" {
		return store.ApprovalItem{}, validationError("approval title is required")
	}
	if strings.TrimSpace(item.LinkToReview) == "" {
		return store.ApprovalItem{}, validationError("review link is required")
	}
	if item.Status == "" {
		item.Status = store.ApprovalPending
	}
	if !workflow.ValidStatus(item.Status) {
		return store.ApprovalItem{}, validationError("unknown approval status")
	}

	isNew := item.ID == ""
	if isNew {
		item.ID = util.NewID("apr")
	} else if existing, ok := s.store.ApprovalByID(ctx, item.ID); !ok || existing.ProjectID != projectID {
		return store.ApprovalItem{}, notFound("Approval item not found")
	}

	saved := s.store.SaveApproval(ctx, item)
	if isNew {
		s.notifyReviewReady(ctx, project, saved)
	}
	return saved, nil
}

func (s *Service) DeleteApproval(ctx context.Context, id string) {
	s.store.DeleteApproval(ctx, id)
}

// DecideApproval runs a client action through the state machine. An
// APPROVED item is terminal for this surface: further actions are
// rejected, and only an administrative edit can move it again.
func (s *Service) DecideApproval(ctx context.Context, sess Session, projectID, approvalID string, action workflow.Action) (store.ApprovalItem, error) {
	item, ok := s.store.ApprovalByID(ctx, approvalID)
	if !ok || item.ProjectID != projectID {
		return store.ApprovalItem{}, notFound("Approval item not found")
	}
	project, ok := s.store.ProjectByID(ctx, projectID)
	if !ok {
		return store.ApprovalItem{}, notFound("Project not found")
	}
	actor := sess.Actor()
	if !actor.IsAdmin() && project.OrganizationID != actor.OrganizationID {
		return store.ApprovalItem{}, notFound("Approval item not found")
	}

	next, err := workflow.Apply(item.Status, action)
	if err != nil {
		if err == workflow.ErrTerminal {
			return store.ApprovalItem{}, conflict("approval is already final")
		}
		return store.ApprovalItem{}, validationError(err.Error())
	}

	item.Status = next
	saved := s.store.SaveApproval(ctx, item)
	s.notifyDecision(project, saved, sess.UserName)
	return saved, nil
}

func (s *Service) notifyReviewReady(ctx context.Context, project store.Project, item store.ApprovalItem) {
	if s.mail == nil || !s.mail.IsConfigured() {
		return
	}
	org, ok := s.store.OrganizationByID(ctx, project.OrganizationID)
	if !ok || org.PrimaryContactEmail == "" {
		return
	}
	reviewURL := strings.TrimRight(s.cfg.PortalURL, "/") + "/projects/" + project.ID
	go func() {
		if err := s.mail.SendReviewReady(org.PrimaryContactEmail, org.PrimaryContactName, project.Name, item.Title, reviewURL); err != nil {
			log.Printf("email: review-ready for %s: %v", item.ID, err)
		}
	}()
}

func (s *Service) notifyDecision(project store.Project, item store.ApprovalItem, decidedBy string) {
	if s.mail == nil || !s.mail.IsConfigured() || s.cfg.AgencyInbox == "" {
		return
	}
	go func() {
		if err := s.mail.SendDecision(s.cfg.AgencyInbox, project.Name, item.Title, item.Status, decidedBy); err != nil {
			log.Printf("email: decision for %s: %v", item.ID, err)
		}
	}()
}

// --- Stats & search ---

func (s *Service) Stats(ctx context.Context) Stats {
	pending := 0
	for _, a := range s.store.Approvals(ctx) {
		if a.Status == store.ApprovalPending {
			pending++
		}
	}
	return Stats{
		ActiveProjects:   len(s.store.Projects(ctx)),
		TotalOrgs:        len(s.store.Organizations(ctx)),
		PendingApprovals: pending,
	}
}

func (s *Service) Search(ctx context.Context, sess Session, text string, filterType search.ResultType, limit, offset int) search.Response {
	if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}
	q := search.Query{
		Text:           text,
		FilterType:     filterType,
		Limit:          limit,
		Offset:         offset,
		ClientScoped:   sess.Role == store.RoleClient,
		OrganizationID: sess.OrganizationID,
	}
	if s.search == nil {
		return search.Response{Results: []search.Result{}, Query: text}
	}
	return s.search.Search(q)
}

// SetPinger wires the readiness probe to the persistence substrate.
func (s *Service) SetPinger(p pinger) {
	s.pinger = p
}

func (s *Service) Ping(ctx context.Context) error {
	if s.pinger == nil {
		return nil
	}
	return s.pinger.Ping(ctx)
}
