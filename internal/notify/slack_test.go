package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dileepchowdary-git/geolocation/internal/domain"
)

func captureServer(t *testing.T, status int) (*httptest.Server, *slackPayload) {
	t.Helper()
	var got slackPayload
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(status)
	}))
	return ts, &got
}

func downResult(name, addr string) domain.CheckResult {
	return domain.CheckResult{
		Target:    domain.Target{Name: name, Address: addr},
		Status:    domain.StatusDown,
		Method:    "All checks failed",
		CheckedAt: time.Date(2025, 8, 18, 12, 0, 0, 0, time.UTC),
	}
}

func TestSlack_Alert_PayloadShape(t *testing.T) {
	ts, got := captureServer(t, 200)
	defer ts.Close()

	s := NewSlack(ts.URL)
	if s == nil {
		t.Fatal("expected slack client")
	}
	if err := s.Alert(context.Background(), downResult("web-1", "10.0.0.2")); err != nil {
		t.Fatalf("alert err: %v", err)
	}
	if !strings.Contains(got.Text, "web-1") || !strings.Contains(got.Text, "DOWN") {
		t.Fatalf("fallback text not as expected: %q", got.Text)
	}
	if len(got.Blocks) != 5 {
		t.Fatalf("want 5 blocks (header, 2 sections, divider, context), got %d", len(got.Blocks))
	}
	if got.Blocks[0].Type != "header" {
		t.Fatalf("first block should be header, got %s", got.Blocks[0].Type)
	}
	if !strings.Contains(got.Blocks[1].Fields[1].Text, "10.0.0.2") {
		t.Fatalf("address missing from fields: %+v", got.Blocks[1].Fields)
	}
	if !strings.Contains(got.Blocks[4].Elements[0].Text, "All methods tried") {
		t.Fatalf("all-failed method text missing: %q", got.Blocks[4].Elements[0].Text)
	}
}

func TestSlack_Alert_ErrorStatusKeepsFaultMessage(t *testing.T) {
	ts, got := captureServer(t, 200)
	defer ts.Close()

	r := downResult("web-1", "10.0.0.2")
	r.Status = domain.StatusError
	r.Method = "lookup failed"

	s := NewSlack(ts.URL)
	if err := s.Alert(context.Background(), r); err != nil {
		t.Fatalf("alert err: %v", err)
	}
	if !strings.Contains(got.Text, "ERROR") {
		t.Fatalf("want ERROR in fallback text, got %q", got.Text)
	}
	if !strings.Contains(got.Blocks[4].Elements[0].Text, "lookup failed") {
		t.Fatalf("fault message missing from context block: %q", got.Blocks[4].Elements[0].Text)
	}
}

func TestSlack_Summary_TruncatesToTenFields(t *testing.T) {
	ts, got := captureServer(t, 200)
	defer ts.Close()

	results := make([]domain.CheckResult, 0, 13)
	for i := 0; i < 13; i++ {
		results = append(results, downResult(fmt.Sprintf("vm-%02d", i), fmt.Sprintf("10.0.0.%d", i)))
	}
	sum := domain.Summarize(results)

	s := NewSlack(ts.URL)
	if err := s.Summary(context.Background(), sum); err != nil {
		t.Fatalf("summary err: %v", err)
	}
	if !strings.Contains(got.Text, "13/13") {
		t.Fatalf("aggregate count must stay truthful when truncated, got %q", got.Text)
	}

	var fieldSection *slackBlock
	for i := range got.Blocks {
		if got.Blocks[i].Type == "section" && len(got.Blocks[i].Fields) > 0 {
			fieldSection = &got.Blocks[i]
		}
	}
	if fieldSection == nil {
		t.Fatalf("no field section in summary: %+v", got.Blocks)
	}
	if len(fieldSection.Fields) != 10 {
		t.Fatalf("want 10 listed targets, got %d", len(fieldSection.Fields))
	}
	if !strings.Contains(fieldSection.Fields[0].Text, "vm-00") {
		t.Fatalf("truncation should keep the first targets, got %q", fieldSection.Fields[0].Text)
	}
}

func TestSlack_Non2xxIsError(t *testing.T) {
	ts, _ := captureServer(t, 500)
	defer ts.Close()

	s := NewSlack(ts.URL)
	if err := s.Alert(context.Background(), downResult("x", "10.0.0.1")); err == nil {
		t.Fatalf("expected error on non-2xx")
	}
}

func TestNewSlack_EmptyWebhookDisabled(t *testing.T) {
	if s := NewSlack(""); s != nil {
		t.Fatalf("want nil client for empty webhook")
	}
}
