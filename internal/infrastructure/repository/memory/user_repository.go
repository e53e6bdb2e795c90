package memory

import (
	"context"
	"fmt"
	"maps"
	"strings"
	"sync"
	"time"

	"github.com/gameon-app/gameon-go/internal/domain/user"
	"github.com/gameon-app/gameon-go/internal/usecase"
)

// UserSeed is a user profile plus the plaintext password it authenticates
// with. Dev-stub only; nothing here ever leaves the process.
type UserSeed struct {
	Profile  user.Profile
	Password string
}

type UserRepository struct {
	mu        sync.RWMutex
	items     map[int64]user.Profile
	passwords map[int64]string
	idByEmail map[string]int64
	nextID    int64
}

func NewUserRepository(seed []UserSeed) *UserRepository {
	items := make(map[int64]user.Profile, len(seed))
	passwords := make(map[int64]string, len(seed))
	idByEmail := make(map[string]int64, len(seed))
	var maxID int64
	for _, entry := range seed {
		items[entry.Profile.ID] = entry.Profile
		passwords[entry.Profile.ID] = entry.Password
		idByEmail[normalizeEmail(entry.Profile.Email)] = entry.Profile.ID
		if entry.Profile.ID > maxID {
			maxID = entry.Profile.ID
		}
	}

	return &UserRepository{
		items:     items,
		passwords: passwords,
		idByEmail: idByEmail,
		nextID:    maxID,
	}
}

func (r *UserRepository) Create(_ context.Context, profile user.Profile, password string) (user.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := normalizeEmail(profile.Email)
	if _, exists := r.idByEmail[email]; exists {
		return user.Profile{}, fmt.Errorf("%w: email %q is already registered", usecase.ErrInvalidInput, profile.Email)
	}

	r.nextID++
	profile.ID = r.nextID
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now().UTC()
	}

	r.items[profile.ID] = cloneProfile(profile)
	r.passwords[profile.ID] = password
	r.idByEmail[email] = profile.ID
	return cloneProfile(profile), nil
}

func (r *UserRepository) GetByID(_ context.Context, id int64) (user.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return user.Profile{}, fmt.Errorf("%w: user %d", usecase.ErrNotFound, id)
	}
	return cloneProfile(item), nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (user.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.idByEmail[normalizeEmail(email)]
	if !ok {
		return user.Profile{}, fmt.Errorf("%w: user %q", usecase.ErrNotFound, email)
	}
	return cloneProfile(r.items[id]), nil
}

func (r *UserRepository) Authenticate(_ context.Context, email, password string) (user.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.idByEmail[normalizeEmail(email)]
	if !ok || r.passwords[id] != password {
		return user.Profile{}, fmt.Errorf("%w: invalid email or password", usecase.ErrUnauthorized)
	}
	return cloneProfile(r.items[id]), nil
}

func (r *UserRepository) Update(_ context.Context, profile user.Profile) (user.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[profile.ID]
	if !ok {
		return user.Profile{}, fmt.Errorf("%w: user %d", usecase.ErrNotFound, profile.ID)
	}

	if strings.TrimSpace(profile.Name) != "" {
		current.Name = profile.Name
	}
	if strings.TrimSpace(profile.Email) != "" && normalizeEmail(profile.Email) != normalizeEmail(current.Email) {
		email := normalizeEmail(profile.Email)
		if owner, exists := r.idByEmail[email]; exists && owner != profile.ID {
			return user.Profile{}, fmt.Errorf("%w: email %q is already registered", usecase.ErrInvalidInput, profile.Email)
		}
		delete(r.idByEmail, normalizeEmail(current.Email))
		r.idByEmail[email] = profile.ID
		current.Email = profile.Email
	}
	if strings.TrimSpace(profile.Phone) != "" {
		current.Phone = profile.Phone
	}
	if len(profile.Sports) > 0 {
		current.Sports = maps.Clone(profile.Sports)
	}

	r.items[profile.ID] = current
	return cloneProfile(current), nil
}

func cloneProfile(item user.Profile) user.Profile {
	out := item
	if item.Sports != nil {
		out.Sports = maps.Clone(item.Sports)
	}
	return out
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
