package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/valyala/bytebufferpool"

	"github.com/gameon-app/gameon-go/internal/domain/browse"
	"github.com/gameon-app/gameon-go/internal/domain/participant"
	"github.com/gameon-app/gameon-go/internal/domain/rating"
	"github.com/gameon-app/gameon-go/internal/domain/request"
)

const renderTimeLayout = "Mon 02 Jan 15:04"

// renderTable writes rows as fixed-width columns. Buffers come from a shared
// pool; dashboard re-renders are frequent enough for allocation churn to show.
func renderTable(header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for i, cell := range header {
		widths[i] = len(cell)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				_, _ = buf.WriteString("  ")
			}
			_, _ = buf.WriteString(cell)
			if pad := widths[i] - len(cell); pad > 0 {
				_, _ = buf.WriteString(strings.Repeat(" ", pad))
			}
		}
		_ = buf.WriteByte('\n')
	}

	writeRow(header)
	separators := make([]string, len(header))
	for i, width := range widths {
		separators[i] = strings.Repeat("-", width)
	}
	writeRow(separators)
	for _, row := range rows {
		writeRow(row)
	}

	return buf.String()
}

func renderRequests(items []request.PlayRequest, joined browse.JoinedSet, viewerID int64) string {
	if len(items) == 0 {
		return "no play requests match the current view\n"
	}

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		marker := ""
		if _, ok := joined[item.ID]; ok {
			marker = "joined"
		}
		if item.HostUserID == viewerID && viewerID > 0 {
			marker = "host"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", item.ID),
			item.SportName(),
			item.SportLevel(),
			item.Location,
			item.Scheduled.Local().Format(renderTimeLayout),
			formatPrice(item.CourtPrice),
			string(item.Status),
			item.HostName,
			marker,
		})
	}

	return renderTable(
		[]string{"ID", "SPORT", "LEVEL", "LOCATION", "TIME", "PRICE", "STATUS", "HOST", ""},
		rows,
	)
}

func renderParticipants(items []participant.Participant) string {
	if len(items) == 0 {
		return "no participants yet\n"
	}

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			fmt.Sprintf("%d", item.ID),
			fmt.Sprintf("%d", item.UserID),
			item.Name,
			string(item.Status),
		})
	}
	return renderTable([]string{"ID", "USER", "NAME", "STATUS"}, rows)
}

func renderRatings(items []rating.CompleteRating) string {
	if len(items) == 0 {
		return "no ratings yet\n"
	}

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		sport := ""
		for name := range item.Sport {
			if sport == "" || name < sport {
				sport = name
			}
		}
		rows = append(rows, []string{
			strings.Repeat("*", item.Rating),
			item.GivenByName,
			sport,
			item.CreatedAt.Local().Format("2006-01-02"),
			item.Feedback,
		})
	}
	return renderTable([]string{"RATING", "FROM", "SPORT", "DATE", "FEEDBACK"}, rows)
}

func renderRequestDetail(item request.PlayRequest) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = fmt.Fprintf(buf, "request #%d (%s)\n", item.ID, item.Status)
	_, _ = fmt.Fprintf(buf, "  sport:    %s (%s)\n", item.SportName(), item.SportLevel())
	_, _ = fmt.Fprintf(buf, "  location: %s\n", item.Location)
	_, _ = fmt.Fprintf(buf, "  time:     %s\n", item.Scheduled.Local().Format(time.RFC1123))
	_, _ = fmt.Fprintf(buf, "  price:    %s\n", formatPrice(item.CourtPrice))
	_, _ = fmt.Fprintf(buf, "  host:     %s <%s> %s\n", item.HostName, item.HostEmail, item.HostPhone)
	return buf.String()
}

func formatPrice(price float64) string {
	if price == 0 {
		return "free"
	}
	return fmt.Sprintf("%.0f", price)
}
