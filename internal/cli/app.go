package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gameon-app/gameon-go/external/gameon"
	"github.com/gameon-app/gameon-go/internal/config"
	"github.com/gameon-app/gameon-go/internal/domain/browse"
	"github.com/gameon-app/gameon-go/internal/domain/participant"
	"github.com/gameon-app/gameon-go/internal/domain/request"
	"github.com/gameon-app/gameon-go/internal/domain/user"
	"github.com/gameon-app/gameon-go/internal/platform/cache"
	"github.com/gameon-app/gameon-go/internal/platform/logging"
	"github.com/gameon-app/gameon-go/internal/platform/resilience"
	"github.com/gameon-app/gameon-go/internal/session"
	"github.com/gameon-app/gameon-go/internal/usecase"
)

const usageText = `gameon <command> [flags]

commands:
  login           store a login session          (-email, -password)
  register        create an account              (-name, -email, -password, -phone, -sports)
  logout          drop the stored session
  whoami          show and verify the stored session
  dashboard       browse play requests           (-view, -sort, -sport, -search, ...)
  show            one request with participants  (-id)
  create          host a play request            (-sport, -location, -time, -price)
  join            join an open request           (-id)
  cancel          cancel a hosted request        (-id)
  accept          confirm a pending participant  (-id, -user)
  reject          remove a participant           (-id, -participant)
  rate            rate a fellow participant      (-request, -to, -stars, -feedback)
  ratings         rating history                 (-user)
  profile         show a profile                 (-id)
  profile-update  edit the viewer profile        (-name, -email, -phone, -sports)
`

// App wires the gateway client and the services behind the command surface.
type App struct {
	cfg      config.Config
	logger   *logging.Logger
	out      io.Writer
	sessions *session.Store
	auth     *usecase.AuthService
	browser  *usecase.BrowseService
	actions  *usecase.ActionService
	ratings  *usecase.RatingService
	profiles *usecase.ProfileService
}

func New(cfg config.Config, logger *logging.Logger, out io.Writer) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	sessions := session.NewStore(cfg.SessionFilePath)
	gateway := gameon.NewClient(gameon.ClientConfig{
		BaseURL: cfg.GameONBaseURL,
		Tokens:  sessions,
		Timeout: cfg.GameONTimeout,
		Logger:  logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.GameONCircuitEnabled,
			FailureThreshold: cfg.GameONCircuitFailureCount,
			OpenTimeout:      cfg.GameONCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.GameONCircuitHalfOpenMaxReq,
		},
	})

	return newApp(cfg, logger, out, gateway, sessions)
}

func newApp(
	cfg config.Config,
	logger *logging.Logger,
	out io.Writer,
	gateway usecase.Gateway,
	sessions *session.Store,
) (*App, error) {
	store := cache.NewStore(cfg.CacheTTL)
	browseStore := store
	if !cfg.CacheEnabled {
		browseStore = nil
	}

	state := usecase.NewJoinState()
	browser := usecase.NewBrowseService(gateway, state, browseStore)
	profiles, err := usecase.NewProfileService(gateway, store, cfg.ProfilePrefetchWorkers)
	if err != nil {
		return nil, err
	}

	return &App{
		cfg:      cfg,
		logger:   logger,
		out:      out,
		sessions: sessions,
		auth:     usecase.NewAuthService(gateway, sessions),
		browser:  browser,
		actions:  usecase.NewActionService(gateway, state, browser),
		ratings:  usecase.NewRatingService(gateway),
		profiles: profiles,
	}, nil
}

func (a *App) Close() {
	if a.profiles != nil {
		a.profiles.Close()
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usageText)
		return fmt.Errorf("%w: command is required", usecase.ErrInvalidInput)
	}

	command, rest := args[0], args[1:]
	switch command {
	case "login":
		return a.runLogin(ctx, rest)
	case "register":
		return a.runRegister(ctx, rest)
	case "logout":
		return a.runLogout(ctx)
	case "whoami":
		return a.runWhoami(ctx)
	case "dashboard":
		return a.runDashboard(ctx, rest)
	case "show":
		return a.runShow(ctx, rest)
	case "create":
		return a.runCreate(ctx, rest)
	case "join":
		return a.runJoin(ctx, rest)
	case "cancel":
		return a.runCancel(ctx, rest)
	case "accept":
		return a.runAccept(ctx, rest)
	case "reject":
		return a.runReject(ctx, rest)
	case "rate":
		return a.runRate(ctx, rest)
	case "ratings":
		return a.runRatings(ctx, rest)
	case "profile":
		return a.runProfile(ctx, rest)
	case "profile-update":
		return a.runProfileUpdate(ctx, rest)
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usageText)
		return nil
	default:
		fmt.Fprint(a.out, usageText)
		return fmt.Errorf("%w: unknown command %q", usecase.ErrInvalidInput, command)
	}
}

func (a *App) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

func (a *App) requireLogin(ctx context.Context) (session.Session, error) {
	sess, ok, err := a.auth.Current(ctx)
	if err != nil {
		return session.Session{}, err
	}
	if !ok {
		return session.Session{}, fmt.Errorf("%w: not logged in, run 'gameon login' first", usecase.ErrUnauthorized)
	}
	return sess, nil
}

func (a *App) runLogin(ctx context.Context, args []string) error {
	fs := a.flagSet("login")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	authed, err := a.auth.Login(ctx, user.Credentials{Email: *email, Password: *password})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "logged in as %s (#%d)\n", authed.Name, authed.ID)
	return nil
}

func (a *App) runRegister(ctx context.Context, args []string) error {
	fs := a.flagSet("register")
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	phone := fs.String("phone", "", "phone number")
	sports := fs.String("sports", "", "sports with levels, e.g. tennis:Basic,futsal:Pro")
	if err := fs.Parse(args); err != nil {
		return err
	}

	authed, err := a.auth.Register(ctx, usecase.RegisterInput{
		Name:     *name,
		Email:    *email,
		Password: *password,
		Phone:    *phone,
		Sports:   parseSports(*sports),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "registered and logged in as %s (#%d)\n", authed.Name, authed.ID)
	return nil
}

func (a *App) runLogout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "logged out")
	return nil
}

func (a *App) runWhoami(ctx context.Context) error {
	sess, ok, err := a.auth.Current(ctx)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "not logged in")
		return nil
	}

	status, err := a.auth.Verify(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "%s <%s> (#%d), verification unavailable: %v\n", sess.Name, sess.Email, sess.UserID, err)
		return nil
	}
	if !status.IsLoggedIn {
		fmt.Fprintln(a.out, "stored session was rejected by the backend; logged out")
		return nil
	}

	fmt.Fprintf(a.out, "%s <%s> (#%d)\n", sess.Name, sess.Email, sess.UserID)
	return nil
}

func (a *App) runDashboard(ctx context.Context, args []string) error {
	fs := a.flagSet("dashboard")
	view := fs.String("view", "all", "view: all, joined, mine, confirmed")
	sortBy := fs.String("sort", string(browse.SortUpcoming), "sort: upcoming, price-low-high, price-high-low, newest, oldest")
	sportTab := fs.String("sport", browse.SportTabAll, "sport tab")
	search := fs.String("search", "", "search term over sport, location and host name")
	statuses := fs.String("status", "", "comma separated statuses")
	locations := fs.String("location", "", "comma separated locations")
	levels := fs.String("level", "", "comma separated proficiency levels")
	minPrice := fs.Float64("min-price", 0, "minimum court price")
	maxPrice := fs.Float64("max-price", -1, "maximum court price (default: highest loaded)")
	from := fs.String("from", "", "earliest play date, RFC3339")
	to := fs.String("to", "", "latest play date, RFC3339")
	refresh := fs.Bool("refresh", false, "force a refetch before rendering")
	if err := fs.Parse(args); err != nil {
		return err
	}

	mode, err := parseViewMode(*view)
	if err != nil {
		return err
	}
	order, err := parseSortOption(*sortBy)
	if err != nil {
		return err
	}

	viewerID := int64(0)
	if sess, ok, loadErr := a.auth.Current(ctx); loadErr != nil {
		return loadErr
	} else if ok {
		viewerID = sess.UserID
	}
	if viewerID == 0 && mode != browse.ViewAllRequests {
		return fmt.Errorf("%w: the %s view needs a login", usecase.ErrUnauthorized, *view)
	}

	var snap usecase.BrowseSnapshot
	if *refresh {
		snap, err = a.browser.Refresh(ctx)
	} else {
		snap, err = a.browser.Snapshot(ctx)
	}
	if err != nil {
		return err
	}

	criteria := browse.DefaultCriteria(snap.Requests)
	criteria.ActiveSportTab = strings.ToLower(strings.TrimSpace(*sportTab))
	criteria.SearchTerm = *search
	criteria.Sports = nil
	criteria.Locations = splitCSV(*locations)
	criteria.ProficiencyLevels = splitCSV(*levels)
	for _, raw := range splitCSV(*statuses) {
		criteria.Statuses = append(criteria.Statuses, request.NormalizeStatus(raw))
	}
	criteria.Price.Min = *minPrice
	if *maxPrice >= 0 {
		criteria.Price.Max = *maxPrice
	}
	criteria.Dates, err = parseDateRange(*from, *to)
	if err != nil {
		return err
	}

	items, err := a.browser.Browse(ctx, criteria, mode, order, viewerID)
	if err != nil {
		return err
	}
	a.profiles.PrefetchHosts(ctx, items)

	fmt.Fprint(a.out, renderRequests(items, snap.Joined, viewerID))
	fmt.Fprintf(a.out, "\n%d of %d requests; sports: %s\n",
		len(items), len(snap.Requests), strings.Join(snap.SportTabs, ", "))
	return nil
}

func (a *App) runShow(ctx context.Context, args []string) error {
	fs := a.flagSet("show")
	id := fs.Int64("id", 0, "request id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	target, err := a.findRequest(ctx, *id)
	if err != nil {
		return err
	}
	participants, err := a.actions.Participants(ctx, target.ID)
	if err != nil {
		return err
	}

	fmt.Fprint(a.out, renderRequestDetail(target))
	fmt.Fprint(a.out, renderParticipants(participants))
	return nil
}

func (a *App) runCreate(ctx context.Context, args []string) error {
	fs := a.flagSet("create")
	sport := fs.String("sport", "", "sport with level, e.g. tennis:Basic")
	location := fs.String("location", "", "court location")
	when := fs.String("time", "", "play time, RFC3339")
	price := fs.Float64("price", 0, "court price")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sess, err := a.requireLogin(ctx)
	if err != nil {
		return err
	}

	created, err := a.actions.Create(ctx, usecase.CreateRequestInput{
		UserID:     sess.UserID,
		Sport:      parseSports(*sport),
		Location:   *location,
		Time:       *when,
		CourtPrice: *price,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "created request #%d\n", created.ID)
	return nil
}

func (a *App) runJoin(ctx context.Context, args []string) error {
	fs := a.flagSet("join")
	id := fs.Int64("id", 0, "request id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sess, err := a.requireLogin(ctx)
	if err != nil {
		return err
	}
	target, err := a.findRequest(ctx, *id)
	if err != nil {
		return err
	}

	joined, err := a.actions.Join(ctx, sess.UserID, target)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "joined request #%d, membership #%d is %s\n", target.ID, joined.ID, joined.Status)
	return nil
}

func (a *App) runCancel(ctx context.Context, args []string) error {
	fs := a.flagSet("cancel")
	id := fs.Int64("id", 0, "request id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sess, err := a.requireLogin(ctx)
	if err != nil {
		return err
	}
	target, err := a.findRequest(ctx, *id)
	if err != nil {
		return err
	}

	if err := a.actions.Delete(ctx, sess.UserID, target); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "cancelled request #%d\n", target.ID)
	return nil
}

func (a *App) runAccept(ctx context.Context, args []string) error {
	fs := a.flagSet("accept")
	id := fs.Int64("id", 0, "request id")
	userID := fs.Int64("user", 0, "participant user id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sess, err := a.requireLogin(ctx)
	if err != nil {
		return err
	}
	target, err := a.findRequest(ctx, *id)
	if err != nil {
		return err
	}

	if err := a.actions.Accept(ctx, sess.UserID, target, *userID); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "accepted user #%d on request #%d\n", *userID, target.ID)
	return nil
}

func (a *App) runReject(ctx context.Context, args []string) error {
	fs := a.flagSet("reject")
	id := fs.Int64("id", 0, "request id")
	participantID := fs.Int64("participant", 0, "participant record id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sess, err := a.requireLogin(ctx)
	if err != nil {
		return err
	}
	target, err := a.findRequest(ctx, *id)
	if err != nil {
		return err
	}

	if err := a.actions.Reject(ctx, sess.UserID, target, *participantID); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "rejected participant #%d on request #%d\n", *participantID, target.ID)
	return nil
}

func (a *App) runRate(ctx context.Context, args []string) error {
	fs := a.flagSet("rate")
	requestID := fs.Int64("request", 0, "request id")
	to := fs.Int64("to", 0, "rated user id")
	stars := fs.Int("stars", 0, "rating value, 1 to 5")
	feedback := fs.String("feedback", "", "optional feedback")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sess, err := a.requireLogin(ctx)
	if err != nil {
		return err
	}
	target, err := a.findRequest(ctx, *requestID)
	if err != nil {
		return err
	}
	participants, err := a.actions.Participants(ctx, target.ID)
	if err != nil {
		return err
	}

	ratee := participantByUser(participants, *to)
	submitted, err := a.ratings.Submit(ctx, usecase.SubmitRatingInput{
		GivenBy:   sess.UserID,
		GivenTo:   *to,
		RequestID: target.ID,
		Rating:    *stars,
		Feedback:  *feedback,
	}, target, ratee)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "rated user #%d with %d stars (rating #%d)\n", *to, submitted.Rating, submitted.ID)
	return nil
}

func (a *App) runRatings(ctx context.Context, args []string) error {
	fs := a.flagSet("ratings")
	userID := fs.Int64("user", 0, "user id (default: the viewer)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *userID == 0 {
		sess, err := a.requireLogin(ctx)
		if err != nil {
			return err
		}
		*userID = sess.UserID
	}

	history, err := a.ratings.History(ctx, *userID)
	if err != nil {
		return err
	}
	fmt.Fprint(a.out, renderRatings(history))
	return nil
}

func (a *App) runProfile(ctx context.Context, args []string) error {
	fs := a.flagSet("profile")
	userID := fs.Int64("id", 0, "user id (default: the viewer)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *userID == 0 {
		sess, err := a.requireLogin(ctx)
		if err != nil {
			return err
		}
		*userID = sess.UserID
	}

	profile, err := a.profiles.Get(ctx, *userID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s <%s> %s\n", profile.Name, profile.Email, profile.Phone)
	for sport, level := range profile.Sports {
		fmt.Fprintf(a.out, "  %s: %s\n", sport, level)
	}
	return nil
}

func (a *App) runProfileUpdate(ctx context.Context, args []string) error {
	fs := a.flagSet("profile-update")
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "account email")
	phone := fs.String("phone", "", "phone number")
	sports := fs.String("sports", "", "sports with levels, e.g. tennis:Basic,futsal:Pro")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := a.requireLogin(ctx); err != nil {
		return err
	}

	updated, err := a.profiles.Update(ctx, usecase.UpdateProfileInput{
		Name:   *name,
		Email:  *email,
		Phone:  *phone,
		Sports: parseSports(*sports),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "profile updated for %s (#%d)\n", updated.Name, updated.ID)
	return nil
}

// findRequest resolves a request id against the cached collection, refreshing
// once when the id is not there. Actions take the resolved record so their
// preconditions run locally.
func (a *App) findRequest(ctx context.Context, id int64) (request.PlayRequest, error) {
	if id <= 0 {
		return request.PlayRequest{}, fmt.Errorf("%w: -id must be a positive request id", usecase.ErrInvalidInput)
	}

	snap, err := a.browser.Snapshot(ctx)
	if err != nil {
		return request.PlayRequest{}, err
	}
	if found, ok := requestByID(snap.Requests, id); ok {
		return found, nil
	}

	snap, err = a.browser.Refresh(ctx)
	if err != nil {
		return request.PlayRequest{}, err
	}
	if found, ok := requestByID(snap.Requests, id); ok {
		return found, nil
	}
	return request.PlayRequest{}, fmt.Errorf("%w: request %d", usecase.ErrNotFound, id)
}

func requestByID(items []request.PlayRequest, id int64) (request.PlayRequest, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return request.PlayRequest{}, false
}

// participantByUser returns the most relevant membership record for a user,
// preferring a confirmed one. A zero record is returned when the user never
// joined; the rating service rejects that case.
func participantByUser(items []participant.Participant, userID int64) participant.Participant {
	var fallback participant.Participant
	for _, item := range items {
		if item.UserID != userID {
			continue
		}
		if item.IsConfirmed() {
			return item
		}
		fallback = item
	}
	return fallback
}

func parseViewMode(raw string) (browse.ViewMode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "all", string(browse.ViewAllRequests):
		return browse.ViewAllRequests, nil
	case "joined", string(browse.ViewJoinedRequests):
		return browse.ViewJoinedRequests, nil
	case "mine", "my", string(browse.ViewMyRequests):
		return browse.ViewMyRequests, nil
	case "confirmed", string(browse.ViewConfirmedRequests):
		return browse.ViewConfirmedRequests, nil
	default:
		return "", fmt.Errorf("%w: unknown view %q", usecase.ErrInvalidInput, raw)
	}
}

func parseSortOption(raw string) (browse.SortOption, error) {
	option := browse.SortOption(strings.ToLower(strings.TrimSpace(raw)))
	switch option {
	case browse.SortUpcoming, browse.SortPriceLowHigh, browse.SortPriceHighLow, browse.SortNewest, browse.SortOldest:
		return option, nil
	default:
		return "", fmt.Errorf("%w: unknown sort %q", usecase.ErrInvalidInput, raw)
	}
}

func parseDateRange(from, to string) (browse.DateRange, error) {
	if strings.TrimSpace(from) == "" && strings.TrimSpace(to) == "" {
		return browse.DateRange{}, nil
	}

	start, err := parseFlexibleTime(from)
	if err != nil {
		return browse.DateRange{}, fmt.Errorf("%w: -from: %v", usecase.ErrInvalidInput, err)
	}
	end, err := parseFlexibleTime(to)
	if err != nil {
		return browse.DateRange{}, fmt.Errorf("%w: -to: %v", usecase.ErrInvalidInput, err)
	}
	return browse.DateRange{Start: start, End: end}, nil
}

func parseFlexibleTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("value is required")
	}
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02", raw)
}

// parseSports turns "tennis:Basic,futsal:Pro" into a sport-to-level map. A
// bare sport name gets an empty level; validation downstream decides whether
// that is acceptable.
func parseSports(raw string) map[string]string {
	out := make(map[string]string)
	for _, pair := range splitCSV(raw) {
		name, level, found := strings.Cut(pair, ":")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if !found {
			out[name] = ""
			continue
		}
		out[name] = strings.TrimSpace(level)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func splitCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
