package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dileepchowdary-git/geolocation/internal/domain"
)

// maxSummaryFields caps how many down targets the summary section lists.
// Slack limits section fields to ten; anything past that is silently cut.
const maxSummaryFields = 10

type Slack struct {
	Webhook string
	Client  *http.Client
}

func NewSlack(webhook string) *Slack {
	if webhook == "" {
		return nil
	}
	return &Slack{
		Webhook: webhook,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Block Kit wire types. Only the shapes we emit.

type slackText struct {
	Type  string `json:"type"`
	Text  string `json:"text"`
	Emoji bool   `json:"emoji,omitempty"`
}

type slackBlock struct {
	Type     string      `json:"type"`
	Text     *slackText  `json:"text,omitempty"`
	Fields   []slackText `json:"fields,omitempty"`
	Elements []slackText `json:"elements,omitempty"`
}

type slackPayload struct {
	Text   string       `json:"text"`
	Blocks []slackBlock `json:"blocks,omitempty"`
}

func mrkdwn(s string) slackText  { return slackText{Type: "mrkdwn", Text: s} }
func header(s string) slackBlock { return slackBlock{Type: "header", Text: &slackText{Type: "plain_text", Text: s, Emoji: true}} }

// slackDate renders Slack's client-local timestamp token with a plain
// fallback for clients that don't expand it.
func slackDate(ts time.Time, format string) string {
	return fmt.Sprintf("<!date^%d^%s|%s>", ts.Unix(), format, ts.Format("2006-01-02 15:04:05"))
}

func statusEmoji(s domain.Status) string {
	switch s {
	case domain.StatusDown:
		return "🔴"
	case domain.StatusError:
		return "⚠️"
	default:
		return "❌"
	}
}

// Alert posts the rich per-target down notification.
func (s *Slack) Alert(ctx context.Context, r domain.CheckResult) error {
	emoji := statusEmoji(r.Status)

	methodText := "\n*Last Successful Check:* " + r.Method
	if r.Method == "All checks failed" {
		methodText = "\n*Check Method:* All methods tried (TCP ports, HTTP, Ping)"
	}

	p := slackPayload{
		Text: fmt.Sprintf("%s ALERT: %s is %s!", emoji, r.Target.Name, r.Status),
		Blocks: []slackBlock{
			header("🚨 SERVER DOWN ALERT"),
			{Type: "section", Fields: []slackText{
				mrkdwn("*Server Name:*\n`" + r.Target.Name + "`"),
				mrkdwn("*IP Address:*\n`" + r.Target.Address + "`"),
			}},
			{Type: "section", Fields: []slackText{
				mrkdwn(fmt.Sprintf("*Status:*\n%s *%s*", emoji, r.Status)),
				mrkdwn("*Detected At:*\n" + slackDate(r.CheckedAt, "{time} {date_short}")),
			}},
			{Type: "divider"},
			{Type: "context", Elements: []slackText{
				mrkdwn("⚡ *Action Required:* Server is not responding to any connectivity checks." + methodText),
			}},
		},
	}
	return s.post(ctx, p)
}

// Summary posts the aggregate end-of-run report listing the first ten
// down targets.
func (s *Slack) Summary(ctx context.Context, sum domain.RunSummary) error {
	down := sum.Down()
	fields := make([]slackText, 0, maxSummaryFields)
	for _, r := range down {
		if len(fields) == maxSummaryFields {
			break
		}
		fields = append(fields, mrkdwn(fmt.Sprintf("*%s*\n`%s` - _%s_", r.Target.Name, r.Target.Address, r.Status)))
	}

	p := slackPayload{
		Text: fmt.Sprintf("⚠️ MONITORING SUMMARY: %d/%d servers are DOWN", sum.DownCount, sum.Total),
		Blocks: []slackBlock{
			header("📊 Monitoring Summary Report"),
			{Type: "section", Text: &slackText{
				Type: "mrkdwn",
				Text: fmt.Sprintf("*%d out of %d servers are currently DOWN* 🔴", sum.DownCount, sum.Total),
			}},
			{Type: "divider"},
			{Type: "section", Fields: fields},
			{Type: "context", Elements: []slackText{
				mrkdwn("Scan completed at " + slackDate(time.Now(), "{time} {date_long}")),
			}},
		},
	}
	return s.post(ctx, p)
}

func (s *Slack) post(ctx context.Context, p slackPayload) error {
	if s == nil || s.Webhook == "" {
		return errors.New("slack disabled")
	}
	body, _ := json.Marshal(p)
	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, s.Webhook, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("slack non-2xx: %s", resp.Status)
	}
	return nil
}
