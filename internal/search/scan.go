package search

import (
	"context"
	"strings"

	"framelight/api/internal/store"
)

// Scanner is the store surface the fallback search needs.
type Scanner interface {
	Projects(ctx context.Context) []store.Project
	Messages(ctx context.Context) []store.Message
	ProjectByID(ctx context.Context, id string) (store.Project, bool)
}

// StoreScan is the fallback Searcher: a case-insensitive substring scan
// over the in-memory store. Always healthy, no ranking, good enough for
// the portal's data volumes when Meilisearch is down or not configured.
type StoreScan struct {
	store Scanner
}

func NewStoreScan(s Scanner) *StoreScan {
	return &StoreScan{store: s}
}

func (s *StoreScan) Healthy() bool { return true }

func (s *StoreScan) Search(q Query) ([]Result, int, error) {
	needle := strings.ToLower(strings.TrimSpace(q.Text))
	if needle == "" {
		return []Result{}, 0, nil
	}
	limit := q.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}

	ctx := context.Background()
	var results []Result

	if q.FilterType == "" || q.FilterType == ResultProject {
		for _, p := range s.store.Projects(ctx) {
			if q.ClientScoped && p.OrganizationID != q.OrganizationID {
				continue
			}
			if !containsFold(needle, p.Name, p.Description) {
				continue
			}
			results = append(results, Result{
				Type:           ResultProject,
				ID:             p.ID,
				Title:          p.Name,
				Snippet:        p.Description,
				ProjectID:      p.ID,
				OrganizationID: p.OrganizationID,
			})
		}
	}

	if q.FilterType == "" || q.FilterType == ResultMessage {
		for _, m := range s.store.Messages(ctx) {
			// Approval feedback stays inside its review thread.
			if m.ApprovalItemID != "" {
				continue
			}
			if q.ClientScoped && m.IsInternal {
				continue
			}
			project, ok := s.store.ProjectByID(ctx, m.ProjectID)
			if !ok {
				continue
			}
			if q.ClientScoped && project.OrganizationID != q.OrganizationID {
				continue
			}
			if !containsFold(needle, m.Body, m.SenderName) {
				continue
			}
			results = append(results, Result{
				Type:           ResultMessage,
				ID:             m.ID,
				Title:          m.SenderName,
				Snippet:        m.Body,
				ProjectID:      m.ProjectID,
				OrganizationID: project.OrganizationID,
				IsInternal:     m.IsInternal,
			})
		}
	}

	total := len(results)
	if offset >= total {
		return []Result{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return results[offset:end], total, nil
}

func containsFold(needle string, haystacks ...string) bool {
	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), needle) {
			return true
		}
	}
	return false
}
