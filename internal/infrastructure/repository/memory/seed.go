package memory

import (
	"time"

	"github.com/gameon-app/gameon-go/internal/domain/participant"
	"github.com/gameon-app/gameon-go/internal/domain/rating"
	"github.com/gameon-app/gameon-go/internal/domain/request"
	"github.com/gameon-app/gameon-go/internal/domain/user"
)

const (
	SeedUserIDAndi  = 1
	SeedUserIDBella = 2
	SeedUserIDCahyo = 3
	SeedUserIDDewi  = 4
)

func SeedUsers() []UserSeed {
	return []UserSeed{
		{
			Profile: user.Profile{
				ID:        SeedUserIDAndi,
				Name:      "Andi Pratama",
				Email:     "andi@gameon.dev",
				Phone:     "+628111111111",
				Sports:    map[string]string{"tennis": "Intermediate", "badminton": "Basic"},
				CreatedAt: time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC),
			},
			Password: "andi-secret",
		},
		{
			Profile: user.Profile{
				ID:        SeedUserIDBella,
				Name:      "Bella Hartono",
				Email:     "bella@gameon.dev",
				Phone:     "+628122222222",
				Sports:    map[string]string{"basketball": "Pro"},
				CreatedAt: time.Date(2026, 1, 7, 9, 30, 0, 0, time.UTC),
			},
			Password: "bella-secret",
		},
		{
			Profile: user.Profile{
				ID:        SeedUserIDCahyo,
				Name:      "Cahyo Nugroho",
				Email:     "cahyo@gameon.dev",
				Phone:     "+628133333333",
				Sports:    map[string]string{"futsal": "Intermediate"},
				CreatedAt: time.Date(2026, 1, 12, 14, 15, 0, 0, time.UTC),
			},
			Password: "cahyo-secret",
		},
		{
			Profile: user.Profile{
				ID:        SeedUserIDDewi,
				Name:      "Dewi Lestari",
				Email:     "dewi@gameon.dev",
				Phone:     "+628144444444",
				Sports:    map[string]string{"tennis": "Basic", "futsal": "Basic"},
				CreatedAt: time.Date(2026, 1, 20, 19, 45, 0, 0, time.UTC),
			},
			Password: "dewi-secret",
		},
	}
}

func SeedRequests() []request.PlayRequest {
	return []request.PlayRequest{
		{
			ID:         1,
			HostUserID: SeedUserIDAndi,
			HostName:   "Andi Pratama",
			HostEmail:  "andi@gameon.dev",
			HostPhone:  "+628111111111",
			Sport:      map[string]string{"tennis": "Intermediate"},
			Location:   "Senayan",
			Scheduled:  time.Date(2026, 9, 5, 18, 0, 0, 0, time.UTC),
			CourtPrice: 150000,
			Status:     request.StatusOpen,
			CreatedAt:  time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:         2,
			HostUserID: SeedUserIDBella,
			HostName:   "Bella Hartono",
			HostEmail:  "bella@gameon.dev",
			HostPhone:  "+628122222222",
			Sport:      map[string]string{"basketball": "Pro"},
			Location:   "Kelapa Gading",
			Scheduled:  time.Date(2026, 9, 6, 9, 0, 0, 0, time.UTC),
			CourtPrice: 200000,
			Status:     request.StatusOpen,
			CreatedAt:  time.Date(2026, 8, 21, 11, 30, 0, 0, time.UTC),
		},
		{
			ID:         3,
			HostUserID: SeedUserIDCahyo,
			HostName:   "Cahyo Nugroho",
			HostEmail:  "cahyo@gameon.dev",
			HostPhone:  "+628133333333",
			Sport:      map[string]string{"futsal": "Intermediate"},
			Location:   "Kemang",
			Scheduled:  time.Date(2026, 8, 25, 20, 0, 0, 0, time.UTC),
			CourtPrice: 120000,
			Status:     request.StatusCompleted,
			CreatedAt:  time.Date(2026, 8, 10, 16, 0, 0, 0, time.UTC),
		},
		{
			ID:         4,
			HostUserID: SeedUserIDDewi,
			HostName:   "Dewi Lestari",
			HostEmail:  "dewi@gameon.dev",
			HostPhone:  "+628144444444",
			Sport:      map[string]string{"tennis": "Basic"},
			Location:   "Senayan",
			Scheduled:  time.Date(2026, 9, 8, 7, 0, 0, 0, time.UTC),
			CourtPrice: 0,
			Status:     request.StatusAccepted,
			CreatedAt:  time.Date(2026, 8, 22, 8, 0, 0, 0, time.UTC),
		},
	}
}

func SeedParticipants() []participant.Participant {
	return []participant.Participant{
		{ID: 1, RequestID: 3, UserID: SeedUserIDDewi, Name: "Dewi Lestari", Status: participant.StatusConfirmed},
		{ID: 2, RequestID: 4, UserID: SeedUserIDAndi, Name: "Andi Pratama", Status: participant.StatusConfirmed},
		{ID: 3, RequestID: 2, UserID: SeedUserIDCahyo, Name: "Cahyo Nugroho", Status: participant.StatusPending},
	}
}

func SeedRatings() []rating.Rating {
	return []rating.Rating{
		{
			ID:        1,
			GivenBy:   SeedUserIDCahyo,
			GivenTo:   SeedUserIDDewi,
			RequestID: 3,
			Rating:    5,
			Feedback:  "On time and great sport.",
			CreatedAt: time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:        2,
			GivenBy:   SeedUserIDDewi,
			GivenTo:   SeedUserIDCahyo,
			RequestID: 3,
			Rating:    4,
			Feedback:  "Good host, court was a bit far.",
			CreatedAt: time.Date(2026, 8, 26, 9, 5, 0, 0, time.UTC),
		},
	}
}
