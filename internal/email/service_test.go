package email

import (
	"strings"
	"testing"
)

func TestIsConfigured(t *testing.T) {
	if NewService(Config{}).IsConfigured() {
		t.Error("empty config reported as configured")
	}
	if NewService(Config{Host: "smtp.example.com", Port: "587"}).IsConfigured() {
		t.Error("config without From reported as configured")
	}
	svc := NewService(Config{Host: "smtp.example.com", Port: "587", From: "noreply@framelight.io"})
	if !svc.IsConfigured() {
		t.Error("complete config reported as unconfigured")
	}
}

func TestUnconfiguredSendFails(t *testing.T) {
	svc := NewService(Config{})
	if err := svc.SendEmail([]string{"a@b.com"}, "subject", "body"); err == nil {
		t.Error("SendEmail succeeded without configuration")
	}
	if err := svc.SendHTMLEmail([]string{"a@b.com"}, "subject", "<p>body</p>"); err == nil {
		t.Error("SendHTMLEmail succeeded without configuration")
	}
}

func TestReviewReadyTemplate(t *testing.T) {
	html, err := renderTemplate(reviewReadyTemplate, ReviewReadyData{
		AppName:     "Framelight",
		ContactName: "Mike Client",
		ProjectName: "Spring Brand Film",
		ItemTitle:   "Latest Cut - 60s Spot",
		ReviewURL:   "http://localhost:5173/projects/p1",
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	for _, want := range []string{"Mike Client", "Spring Brand Film", "Latest Cut - 60s Spot", "http://localhost:5173/projects/p1"} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered email missing %q", want)
		}
	}
}

func TestDecisionTemplate(t *testing.T) {
	html, err := renderTemplate(decisionTemplate, DecisionData{
		AppName:     "Framelight",
		ProjectName: "Spring Brand Film",
		ItemTitle:   "Latest Cut - 60s Spot",
		Status:      "Approved",
		DecidedBy:   "Mike Client",
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	for _, want := range []string{"Approved", "Mike Client", "Spring Brand Film"} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered email missing %q", want)
		}
	}
}
