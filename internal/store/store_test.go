package store

import (
	"context"
	"testing"

	"framelight/api/internal/persist"
)

func newTestStore(t *testing.T) (*Store, *persist.Adapter) {
	t.Helper()
	adapter := persist.NewAdapter(persist.NewMemorySubstrate(), "test")
	return Load(context.Background(), adapter), adapter
}

func TestLoadSeedsEmptySubstrate(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	if len(s.Users(ctx)) == 0 {
		t.Error("empty substrate did not seed users")
	}
	if len(s.Projects(ctx)) == 0 {
		t.Error("empty substrate did not seed projects")
	}
	if _, ok := s.UserByEmail(ctx, "admin@validate.com"); !ok {
		t.Error("seed admin actor missing")
	}
	if _, ok := s.ProjectByID(ctx, "p1"); !ok {
		t.Error("seed project p1 missing")
	}
}

func TestReloadReproducesState(t *testing.T) {
	ctx := context.Background()
	adapter := persist.NewAdapter(persist.NewMemorySubstrate(), "test")
	s := Load(ctx, adapter)

	s.SaveProject(ctx, Project{ID: "p9", OrganizationID: "org1", Name: "Reload Check"})
	s.DeleteMilestone(ctx, "m1")

	reloaded := Load(ctx, adapter)
	if _, ok := reloaded.ProjectByID(ctx, "p9"); !ok {
		t.Error("saved project lost on reload")
	}
	if _, ok := reloaded.MilestoneByID(ctx, "m1"); ok {
		t.Error("deleted milestone came back on reload")
	}
	if len(reloaded.Projects(ctx)) != len(s.Projects(ctx)) {
		t.Error("reloaded project count differs")
	}
}

func TestUserByEmailCaseInsensitive(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	user, ok := s.UserByEmail(ctx, "ADMIN@Validate.COM")
	if !ok {
		t.Fatal("case-variant lookup failed")
	}
	if user.ID != "u1" {
		t.Errorf("lookup returned %s, want u1", user.ID)
	}
}

func TestSaveProjectPrependsNewest(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.SaveProject(ctx, Project{ID: "p9", OrganizationID: "org1", Name: "Newest"})

	projects := s.Projects(ctx)
	if projects[0].ID != "p9" {
		t.Errorf("newest project is %s, want p9 first", projects[0].ID)
	}

	// Updating in place keeps position.
	s.SaveProject(ctx, Project{ID: "p1", OrganizationID: "org1", Name: "Renamed"})
	projects = s.Projects(ctx)
	if projects[0].ID != "p9" {
		t.Error("update moved an existing project to the front")
	}
	updated, _ := s.ProjectByID(ctx, "p1")
	if updated.Name != "Renamed" {
		t.Errorf("project p1 name = %q, want Renamed", updated.Name)
	}
}

func TestMilestonesSortedByDueDate(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.SaveMilestone(ctx, Milestone{ID: "late", ProjectID: "p9", Title: "Late", DueDate: "2024-03-01"})
	s.SaveMilestone(ctx, Milestone{ID: "early", ProjectID: "p9", Title: "Early", DueDate: "2024-01-15"})
	s.SaveMilestone(ctx, Milestone{ID: "tie", ProjectID: "p9", Title: "Tie", DueDate: "2024-03-01"})

	got := s.MilestonesForProject(ctx, "p9")
	if len(got) != 3 {
		t.Fatalf("got %d milestones, want 3", len(got))
	}
	if got[0].ID != "early" || got[1].ID != "late" || got[2].ID != "tie" {
		t.Errorf("order = [%s %s %s], want [early late tie]", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestSaveFilePrependsNewest(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.SaveFile(ctx, FileRecord{ID: "f9", ProjectID: "p1", FileName: "latest.mp4"})

	files := s.FilesForProject(ctx, "p1")
	if files[0].ID != "f9" {
		t.Errorf("newest file is %s, want f9 first", files[0].ID)
	}
}

func TestDeleteProjectCascades(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.DeleteProject(ctx, "p1")

	if _, ok := s.ProjectByID(ctx, "p1"); ok {
		t.Fatal("project p1 still present")
	}
	if got := s.MilestonesForProject(ctx, "p1"); len(got) != 0 {
		t.Errorf("%d orphan milestones left", len(got))
	}
	if got := s.MessagesForProject(ctx, "p1"); len(got) != 0 {
		t.Errorf("%d orphan messages left", len(got))
	}
	if got := s.FilesForProject(ctx, "p1"); len(got) != 0 {
		t.Errorf("%d orphan files left", len(got))
	}
	if got := s.ApprovalsForProject(ctx, "p1"); len(got) != 0 {
		t.Errorf("%d orphan approvals left", len(got))
	}

	// Other projects are untouched.
	if _, ok := s.ProjectByID(ctx, "p2"); !ok {
		t.Error("project p2 was removed by cascade")
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	before := len(s.Users(ctx))
	s.DeleteUser(ctx, "no-such-user")
	if len(s.Users(ctx)) != before {
		t.Error("deleting an unknown id changed the collection")
	}

	s.DeleteMilestone(ctx, "m1")
	s.DeleteMilestone(ctx, "m1")
	if _, ok := s.MilestoneByID(ctx, "m1"); ok {
		t.Error("milestone m1 survived delete")
	}
}

func TestMutationsPersistImmediately(t *testing.T) {
	ctx := context.Background()
	sub := persist.NewMemorySubstrate()
	s := Load(ctx, persist.NewAdapter(sub, "test"))

	s.SaveOrganization(ctx, Organization{ID: "org9", Name: "New Client"})

	// A fresh adapter over the same substrate sees the write.
	fresh := Load(ctx, persist.NewAdapter(sub, "test"))
	if _, ok := fresh.OrganizationByID(ctx, "org9"); !ok {
		t.Error("organization save not committed to substrate")
	}
}
