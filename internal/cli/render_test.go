package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/gameon-app/gameon-go/internal/domain/browse"
	"github.com/gameon-app/gameon-go/internal/domain/request"
)

func TestRenderTableAlignsColumns(t *testing.T) {
	out := renderTable(
		[]string{"ID", "NAME"},
		[][]string{
			{"1", "short"},
			{"1234", "a much longer value"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("unexpected line count: %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "ID  ") {
		t.Fatalf("header not padded: %q", lines[0])
	}
	width := len(lines[0])
	for _, line := range lines[1:] {
		if len(strings.TrimRight(line, " ")) > width+2 {
			t.Fatalf("row wider than header allows: %q", line)
		}
	}
}

func TestRenderRequestsEmptyCollection(t *testing.T) {
	out := renderRequests(nil, nil, 0)
	if !strings.Contains(out, "no play requests") {
		t.Fatalf("unexpected empty render: %q", out)
	}
}

func TestRenderRequestsMarksJoinedAndHosted(t *testing.T) {
	items := []request.PlayRequest{
		{
			ID:         1,
			HostUserID: 7,
			HostName:   "Host",
			Sport:      map[string]string{"tennis": "Basic"},
			Location:   "Senayan",
			Scheduled:  time.Date(2026, 9, 5, 18, 0, 0, 0, time.UTC),
			Status:     request.StatusOpen,
		},
		{
			ID:         2,
			HostUserID: 9,
			HostName:   "Other",
			Sport:      map[string]string{"futsal": "Pro"},
			Location:   "Kemang",
			Scheduled:  time.Date(2026, 9, 6, 18, 0, 0, 0, time.UTC),
			Status:     request.StatusOpen,
		},
	}
	joined := browse.JoinedSet{2: {}}

	out := renderRequests(items, joined, 7)
	if !strings.Contains(out, "host") {
		t.Fatalf("expected host marker: %s", out)
	}
	if !strings.Contains(out, "joined") {
		t.Fatalf("expected joined marker: %s", out)
	}
}

func TestFormatPrice(t *testing.T) {
	if got := formatPrice(0); got != "free" {
		t.Fatalf("unexpected zero price: %q", got)
	}
	if got := formatPrice(150000); got != "150000" {
		t.Fatalf("unexpected price: %q", got)
	}
}
