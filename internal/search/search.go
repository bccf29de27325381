package search

// ResultType identifies the kind of entity in a search result.
type ResultType string

const (
	ResultProject ResultType = "project"
	ResultMessage ResultType = "message"
)

// Result is a single search hit returned to the caller.
type Result struct {
	Type           ResultType `json:"type"`
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Snippet        string     `json:"snippet"`
	ProjectID      string     `json:"projectId"`
	OrganizationID string     `json:"organizationId"`
	IsInternal     bool       `json:"isInternal,omitempty"`
}

// Query describes a search request. Role and OrganizationID come from
// the authenticated actor and drive index-side filtering.
type Query struct {
	Text           string
	FilterType     ResultType // empty = all types
	Limit          int
	Offset         int
	ClientScoped   bool   // true for CLIENT actors
	OrganizationID string // the client actor's organization
}

// Response is the envelope returned by the search endpoint.
type Response struct {
	Results []Result `json:"results"`
	Total   int      `json:"total"`
	Query   string   `json:"query"`
}

// Searcher can execute a full-text search.
type Searcher interface {
	Search(q Query) ([]Result, int, error)
	Healthy() bool
}

// ProjectRecord is the data indexed for a project.
type ProjectRecord struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	OrganizationID string `json:"organizationId"`
	Status         string `json:"status"`
}

// MessageRecord is the data indexed for a general-thread message.
// Approval feedback is never indexed; it surfaces only inside its
// approval item's discussion view.
type MessageRecord struct {
	ID             string `json:"id"`
	ProjectID      string `json:"projectId"`
	OrganizationID string `json:"organizationId"`
	SenderName     string `json:"senderName"`
	Body           string `json:"body"`
	IsInternal     bool   `json:"isInternal"`
}

func sanitizeResults(results []Result, q Query) []Result {
	out := make([]Result, 0, len(results))
	for _, r := range results {
		if q.ClientScoped {
			if r.OrganizationID != q.OrganizationID {
				continue
			}
			if r.IsInternal {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

func nonNil(results []Result) []Result {
	if results == nil {
		return []Result{}
	}
	return results
}
