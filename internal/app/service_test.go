package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"framelight/api/internal/authpw"
	"framelight/api/internal/config"
	"framelight/api/internal/persist"
	"framelight/api/internal/search"
	"framelight/api/internal/session"
	"framelight/api/internal/store"
)

type fakeSessions struct {
	mu   sync.Mutex
	data map[string]session.TokenData
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{data: make(map[string]session.TokenData)}
}

func (f *fakeSessions) Save(ctx context.Context, tokenHash string, data session.TokenData, expiresAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[tokenHash] = data
	return nil
}

func (f *fakeSessions) Lookup(ctx context.Context, tokenHash string) (session.TokenData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.data[tokenHash]
	if !ok {
		return session.TokenData{}, errors.New("token not found")
	}
	return data, nil
}

func (f *fakeSessions) Revoke(ctx context.Context, tokenHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, tokenHash)
	return nil
}

func testConfig() config.Config {
	return config.Config{
		JWTSecret:       "test-secret",
		AccessTTL:       15 * time.Minute,
		RefreshTTL:      30 * 24 * time.Hour,
		AllowSeedLogins: true,
		PortalURL:       "http://localhost:5173",
	}
}

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	ctx := context.Background()
	dataStore := store.Load(ctx, persist.NewAdapter(persist.NewMemorySubstrate(), "test"))
	gate := authpw.NewService(dataStore, true)
	svc := New(testConfig(), dataStore, gate, newFakeSessions(), nil, nil, nil)
	return svc, dataStore
}

func loginAs(t *testing.T, svc *Service, email string) Session {
	t.Helper()
	sess, err := svc.Login(context.Background(), email, "password")
	if err != nil {
		t.Fatalf("Login(%s) failed: %v", email, err)
	}
	return sess
}

func wantDomainError(t *testing.T, err error, status int, code string) {
	t.Helper()
	var domainErr *DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("error = %v, want DomainError", err)
	}
	if domainErr.Status != status || domainErr.Code != code {
		t.Fatalf("error = %d %s, want %d %s", domainErr.Status, domainErr.Code, status, code)
	}
}

func TestLoginAndSessionRoundtrip(t *testing.T) {
	svc, _ := newTestService(t)

	sess := loginAs(t, svc, "admin@validate.com")
	if sess.Role != store.RoleAdmin || sess.UserID != "u1" {
		t.Errorf("session = %+v, want admin u1", sess)
	}

	parsed, err := svc.SessionFromToken(context.Background(), sess.Token)
	if err != nil {
		t.Fatalf("SessionFromToken failed: %v", err)
	}
	if parsed.UserID != "u1" || parsed.Role != store.RoleAdmin {
		t.Errorf("parsed session = %+v", parsed)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// Seed actors carry a stored credential, so the exact secret is
	// required even with seed logins enabled.
	_, err := svc.Login(ctx, "admin@validate.com", "wrong")
	wantDomainError(t, err, 401, "AUTH_FAILED")

	if _, err := svc.Login(ctx, "admin@validate.com", "password"); err != nil {
		t.Fatalf("Login with the seed credential failed: %v", err)
	}
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	wantDomainError(t, err, 401, "AUTH_FAILED")
}

func TestRefreshRotatesToken(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first := loginAs(t, svc, "mike@sdc.com")
	second, err := svc.Refresh(ctx, first.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if second.UserID != "u2" || second.OrganizationID != "org1" {
		t.Errorf("refreshed session = %+v", second)
	}

	// The first refresh token is single-use.
	if _, err := svc.Refresh(ctx, first.RefreshToken); err == nil {
		t.Error("reused refresh token was accepted")
	}
}

func TestProjectBundleNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	admin := loginAs(t, svc, "admin@validate.com")
	_, err := svc.ProjectBundle(context.Background(), admin, "no-such-project")
	wantDomainError(t, err, 404, "NOT_FOUND")
}

func TestProjectBundleHidesOtherOrgFromClient(t *testing.T) {
	svc, dataStore := newTestService(t)
	ctx := context.Background()

	dataStore.SaveProject(ctx, store.Project{ID: "p3", OrganizationID: "org2", Name: "Lodge Film", Status: store.ProjectDiscovery})

	client := loginAs(t, svc, "mike@sdc.com")
	_, err := svc.ProjectBundle(ctx, client, "p3")
	wantDomainError(t, err, 404, "NOT_FOUND")

	admin := loginAs(t, svc, "admin@validate.com")
	if _, err := svc.ProjectBundle(ctx, admin, "p3"); err != nil {
		t.Errorf("admin bundle for p3 failed: %v", err)
	}
}

func TestProjectBundleVisibility(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	client := loginAs(t, svc, "mike@sdc.com")
	bundle, err := svc.ProjectBundle(ctx, client, "p1")
	if err != nil {
		t.Fatalf("client bundle failed: %v", err)
	}

	// The internal budget file stays with the agency.
	if len(bundle.Files) != 3 {
		t.Errorf("client sees %d files, want 3", len(bundle.Files))
	}
	for _, f := range bundle.Files {
		if !f.IsClientVisible {
			t.Errorf("client saw hidden file %s", f.ID)
		}
	}

	// The internal editor note stays with the agency too.
	if len(bundle.Messages) != 2 {
		t.Errorf("client sees %d messages, want 2", len(bundle.Messages))
	}
	if len(bundle.Approvals) != 1 || bundle.Approvals[0].ID != "a1" {
		t.Errorf("approvals = %+v, want [a1]", bundle.Approvals)
	}

	admin := loginAs(t, svc, "admin@validate.com")
	adminBundle, err := svc.ProjectBundle(ctx, admin, "p1")
	if err != nil {
		t.Fatalf("admin bundle failed: %v", err)
	}
	if len(adminBundle.Files) != 4 {
		t.Errorf("admin sees %d files, want 4", len(adminBundle.Files))
	}
	if len(adminBundle.Messages) != 3 {
		t.Errorf("admin sees %d messages, want 3", len(adminBundle.Messages))
	}

	// Milestones arrive due-date ascending.
	for i := 1; i < len(adminBundle.Milestones); i++ {
		if adminBundle.Milestones[i-1].DueDate > adminBundle.Milestones[i].DueDate {
			t.Errorf("milestones out of order at %d", i)
		}
	}
}

func TestProjectBundleUploadBuckets(t *testing.T) {
	svc, _ := newTestService(t)

	client := loginAs(t, svc, "mike@sdc.com")
	bundle, err := svc.ProjectBundle(context.Background(), client, "p1")
	if err != nil {
		t.Fatalf("bundle failed: %v", err)
	}

	if len(bundle.ClientUploads) != 1 || bundle.ClientUploads[0] != "f2" {
		t.Errorf("client uploads = %v, want [f2]", bundle.ClientUploads)
	}
	if len(bundle.AgencyDeliverables) != 2 {
		t.Errorf("agency deliverables = %v, want [f1 f4]", bundle.AgencyDeliverables)
	}
}

func TestPostMessageInternalRequiresAdmin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	client := loginAs(t, svc, "mike@sdc.com")
	_, err := svc.PostMessage(ctx, client, "p1", PostMessageInput{Body: "sneaky note", IsInternal: true})
	wantDomainError(t, err, 403, "FORBIDDEN")

	admin := loginAs(t, svc, "admin@validate.com")
	msg, err := svc.PostMessage(ctx, admin, "p1", PostMessageInput{Body: "editor note", IsInternal: true})
	if err != nil {
		t.Fatalf("admin internal message failed: %v", err)
	}
	if !msg.IsInternal || msg.SenderName != "Sarah Producer" {
		t.Errorf("saved message = %+v", msg)
	}
}

func TestPostMessageFeedbackIsAlwaysClientVisible(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	admin := loginAs(t, svc, "admin@validate.com")
	msg, err := svc.PostMessage(ctx, admin, "p1", PostMessageInput{Body: "see 00:42", IsInternal: true, ApprovalItemID: "a1"})
	if err != nil {
		t.Fatalf("feedback post failed: %v", err)
	}
	if msg.IsInternal {
		t.Error("approval feedback was marked internal")
	}

	client := loginAs(t, svc, "mike@sdc.com")
	bundle, err := svc.ProjectBundle(ctx, client, "p1")
	if err != nil {
		t.Fatalf("bundle failed: %v", err)
	}
	if len(bundle.Approvals[0].Feedback) != 1 || bundle.Approvals[0].Feedback[0].ID != msg.ID {
		t.Errorf("feedback thread = %+v, want the posted message", bundle.Approvals[0].Feedback)
	}
	for _, m := range bundle.Messages {
		if m.ID == msg.ID {
			t.Error("feedback leaked into the general thread")
		}
	}
}

func TestPostMessageRejectsForeignApprovalItem(t *testing.T) {
	svc, dataStore := newTestService(t)
	ctx := context.Background()

	dataStore.SaveApproval(ctx, store.ApprovalItem{ID: "a2", ProjectID: "p2", Title: "Teaser", LinkToReview: "https://example.com/r", Status: store.ApprovalPending})

	admin := loginAs(t, svc, "admin@validate.com")
	_, err := svc.PostMessage(ctx, admin, "p1", PostMessageInput{Body: "wrong thread", ApprovalItemID: "a2"})
	wantDomainError(t, err, 404, "NOT_FOUND")
}

func TestDecideApproval(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	client := loginAs(t, svc, "mike@sdc.com")

	item, err := svc.DecideApproval(ctx, client, "p1", "a1", "request_changes")
	if err != nil {
		t.Fatalf("request changes failed: %v", err)
	}
	if item.Status != store.ApprovalChangesRequested {
		t.Errorf("status = %q, want %q", item.Status, store.ApprovalChangesRequested)
	}

	item, err = svc.DecideApproval(ctx, client, "p1", "a1", "approve")
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if item.Status != store.ApprovalApproved {
		t.Errorf("status = %q, want %q", item.Status, store.ApprovalApproved)
	}

	// Approved is terminal for the action surface.
	_, err = svc.DecideApproval(ctx, client, "p1", "a1", "request_changes")
	wantDomainError(t, err, 409, "CONFLICT")
}

func TestSaveApprovalValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.SaveApproval(ctx, "p1", store.ApprovalItem{LinkToReview: "https://example.com/r"})
	wantDomainError(t, err, 422, "VALIDATION_ERROR")

	_, err = svc.SaveApproval(ctx, "p1", store.ApprovalItem{Title: "Cut 2"})
	wantDomainError(t, err, 422, "VALIDATION_ERROR")

	_, err = svc.SaveApproval(ctx, "p1", store.ApprovalItem{Title: "Cut 2", LinkToReview: "https://example.com/r", Status: "Rejected"})
	wantDomainError(t, err, 422, "VALIDATION_ERROR")

	saved, err := svc.SaveApproval(ctx, "p1", store.ApprovalItem{Title: "Cut 2", LinkToReview: "https://example.com/r"})
	if err != nil {
		t.Fatalf("valid approval failed: %v", err)
	}
	if saved.Status != store.ApprovalPending {
		t.Errorf("default status = %q, want %q", saved.Status, store.ApprovalPending)
	}
}

func TestAdminOverridesApprovalState(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	client := loginAs(t, svc, "mike@sdc.com")

	if _, err := svc.DecideApproval(ctx, client, "p1", "a1", "approve"); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	// The record edit surface can reopen a final item.
	reopened, err := svc.SaveApproval(ctx, "p1", store.ApprovalItem{
		ID: "a1", Title: "Latest Cut - 60s Spot", LinkToReview: "https://example.com/r", Status: store.ApprovalPending,
	})
	if err != nil {
		t.Fatalf("admin override failed: %v", err)
	}
	if reopened.Status != store.ApprovalPending {
		t.Errorf("status = %q, want %q", reopened.Status, store.ApprovalPending)
	}
}

func TestDeleteOrganizationRefusedWhileProjectsExist(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	err := svc.DeleteOrganization(ctx, "org1")
	wantDomainError(t, err, 409, "CONFLICT")

	if err := svc.DeleteProject(ctx, "p1"); err != nil {
		t.Fatalf("delete p1 failed: %v", err)
	}
	if err := svc.DeleteProject(ctx, "p2"); err != nil {
		t.Fatalf("delete p2 failed: %v", err)
	}
	if err := svc.DeleteOrganization(ctx, "org1"); err != nil {
		t.Errorf("delete of empty org failed: %v", err)
	}
}

func TestSaveUserRules(t *testing.T) {
	svc, dataStore := newTestService(t)
	ctx := context.Background()

	_, err := svc.SaveUser(ctx, SaveUserInput{User: store.User{Name: "Jo", Email: "jo@x.com", Role: store.RoleClient}})
	wantDomainError(t, err, 422, "VALIDATION_ERROR")

	_, err = svc.SaveUser(ctx, SaveUserInput{User: store.User{Name: "Jo", Email: "mike@sdc.com", Role: store.RoleAdmin}})
	wantDomainError(t, err, 409, "CONFLICT")

	saved, err := svc.SaveUser(ctx, SaveUserInput{
		User:     store.User{Name: "Jo", Email: "jo@x.com", Role: store.RoleClient, OrganizationID: "org1"},
		Password: "long enough password",
	})
	if err != nil {
		t.Fatalf("valid user failed: %v", err)
	}
	if saved.PasswordHash != "" {
		t.Error("password hash leaked in response")
	}

	// The credential is stored and usable.
	gate := authpw.NewService(dataStore, false)
	if _, err := gate.Authenticate(ctx, "jo@x.com", "long enough password"); err != nil {
		t.Errorf("new credential rejected: %v", err)
	}

	for _, u := range svc.ListUsers(ctx) {
		if u.PasswordHash != "" {
			t.Errorf("listing leaked hash for %s", u.ID)
		}
	}
}

func TestAddFile(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	client := loginAs(t, svc, "mike@sdc.com")
	file, err := svc.AddFile(ctx, client, "p1", AddFileInput{
		FileName:        "Location_Photos.ZIP",
		SizeBytes:       2400000,
		IsClientVisible: false,
		Ref:             "uploads/location_photos.zip",
	})
	if err != nil {
		t.Fatalf("AddFile failed: %v", err)
	}
	if file.FileType != "zip" {
		t.Errorf("file type = %q, want zip", file.FileType)
	}
	if !file.IsClientVisible {
		t.Error("client upload was hidden from the client")
	}
	if file.FileSize == "" {
		t.Error("file size label not set")
	}
	if file.UploadedByName != "Mike Client" {
		t.Errorf("uploader snapshot = %q", file.UploadedByName)
	}

	admin := loginAs(t, svc, "admin@validate.com")
	hidden, err := svc.AddFile(ctx, admin, "p1", AddFileInput{FileName: "edl.xml", FileSize: "12 kB", Ref: "uploads/edl.xml"})
	if err != nil {
		t.Fatalf("admin AddFile failed: %v", err)
	}
	if hidden.IsClientVisible {
		t.Error("admin upload defaulted to client-visible")
	}
}

func TestSaveProjectDefaults(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	saved, err := svc.SaveProject(ctx, store.Project{Name: "New Spot", OrganizationID: "org2"})
	if err != nil {
		t.Fatalf("SaveProject failed: %v", err)
	}
	if saved.Status != store.ProjectDiscovery {
		t.Errorf("default status = %q, want Discovery", saved.Status)
	}
	if saved.StartDate == "" {
		t.Error("start date not defaulted")
	}
	if saved.ID == "" {
		t.Error("id not assigned")
	}

	_, err = svc.SaveProject(ctx, store.Project{Name: "No Org"})
	wantDomainError(t, err, 422, "VALIDATION_ERROR")

	_, err = svc.SaveProject(ctx, store.Project{ID: "ghost", Name: "Ghost", OrganizationID: "org1"})
	wantDomainError(t, err, 404, "NOT_FOUND")
}

func TestSaveMilestoneValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.SaveMilestone(ctx, "p1", store.Milestone{Title: "Mix", DueDate: "not-a-date"})
	wantDomainError(t, err, 422, "VALIDATION_ERROR")

	_, err = svc.SaveMilestone(ctx, "no-such", store.Milestone{Title: "Mix", DueDate: "2024-06-01"})
	wantDomainError(t, err, 404, "NOT_FOUND")

	saved, err := svc.SaveMilestone(ctx, "p1", store.Milestone{Title: "Mix", DueDate: "2024-06-01"})
	if err != nil {
		t.Fatalf("SaveMilestone failed: %v", err)
	}
	if saved.Status != store.MilestoneNotStarted {
		t.Errorf("default status = %q", saved.Status)
	}
	if saved.ProjectID != "p1" {
		t.Errorf("project id = %q, want p1", saved.ProjectID)
	}
}

func TestStats(t *testing.T) {
	svc, _ := newTestService(t)

	stats := svc.Stats(context.Background())
	if stats.ActiveProjects != 2 {
		t.Errorf("active projects = %d, want 2", stats.ActiveProjects)
	}
	if stats.TotalOrgs != 2 {
		t.Errorf("total orgs = %d, want 2", stats.TotalOrgs)
	}
	if stats.PendingApprovals != 1 {
		t.Errorf("pending approvals = %d, want 1", stats.PendingApprovals)
	}
}

func TestSearchClampsNegativePagination(t *testing.T) {
	ctx := context.Background()
	dataStore := store.Load(ctx, persist.NewAdapter(persist.NewMemorySubstrate(), "test"))
	gate := authpw.NewService(dataStore, true)
	searcher := search.NewService(nil, search.NewStoreScan(dataStore))
	svc := New(testConfig(), dataStore, gate, newFakeSessions(), searcher, nil, nil)

	admin := loginAs(t, svc, "admin@validate.com")
	resp := svc.Search(ctx, admin, "film", "", -5, -1)
	if len(resp.Results) == 0 {
		t.Error("search with negative paging returned no results")
	}
}
