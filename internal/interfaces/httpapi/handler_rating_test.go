package httpapi

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gameon-app/gameon-go/internal/domain/rating"
	"github.com/gameon-app/gameon-go/internal/infrastructure/repository/memory"
)

func TestSubmitAndListRatings(t *testing.T) {
	server := newTestServer(t)
	cahyo := loginAs(t, server, "cahyo@gameon.dev", "cahyo-secret")

	t.Run("cannot rate for someone else", func(t *testing.T) {
		resp := doRequest(t, http.MethodPost, server.URL+"/ratings", cahyo.Token, map[string]any{
			"given_by":   memory.SeedUserIDAndi,
			"given_to":   memory.SeedUserIDDewi,
			"request_id": 3,
			"rating":     4,
		})
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("unexpected status: %d", resp.StatusCode)
		}
	})

	t.Run("submit and list", func(t *testing.T) {
		resp := doRequest(t, http.MethodPost, server.URL+"/ratings", cahyo.Token, map[string]any{
			"given_by":   cahyo.ID,
			"given_to":   memory.SeedUserIDAndi,
			"request_id": 3,
			"rating":     5,
			"feedback":   "Solid keeper.",
		})
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("unexpected status: %d", resp.StatusCode)
		}

		listResp := doRequest(t, http.MethodGet, fmt.Sprintf("%s/user/%d/ratings", server.URL, memory.SeedUserIDAndi), "", nil)
		if listResp.StatusCode != http.StatusOK {
			t.Fatalf("unexpected status: %d", listResp.StatusCode)
		}
		var items []rating.CompleteRating
		decodeInto(t, listResp, &items)
		if len(items) != 1 {
			t.Fatalf("unexpected ratings count: %d", len(items))
		}
		if items[0].GivenByName != "Cahyo Nugroho" {
			t.Fatalf("unexpected giver name: %q", items[0].GivenByName)
		}
		if items[0].Sport == nil {
			t.Fatalf("expected request sport on joined rating")
		}
	})

	t.Run("out of range rating is rejected", func(t *testing.T) {
		resp := doRequest(t, http.MethodPost, server.URL+"/ratings", cahyo.Token, map[string]any{
			"given_by":   cahyo.ID,
			"given_to":   memory.SeedUserIDAndi,
			"request_id": 3,
			"rating":     9,
		})
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("unexpected status: %d", resp.StatusCode)
		}
	})
}
