package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/okian/slate/internal/domain/model"
	"github.com/okian/slate/pkg/logger"
	"github.com/okian/slate/pkg/metrics"
)

// Default ESPN client configuration constants.
const (
	DefaultESPNBaseURL = "https://site.api.espn.com/apis/site/v2/sports"

	defaultFetchDelay  = 600 * time.Millisecond
	defaultHTTPTimeout = 10 * time.Second
	defaultWindowDays  = 14
	defaultLimit       = 1000
	espnDateParam      = "20060102"
	espnTimeLayout     = "2006-01-02T15:04Z07:00"
	providerName       = "espn"
	userAgent          = "slate/1.0 (+https://github.com/okian/slate)"
)

// ESPN reads the public ESPN site API for one sport.
type ESPN struct {
	client     *http.Client
	baseURL    string
	sportPath  string
	delay      time.Duration
	windowDays int
	limit      int
	log        logger.Logger

	mu   sync.Mutex
	last time.Time
}

// NewESPN creates a client for sportPath, e.g. "basketball/nba".
func NewESPN(sportPath string, opts ...ESPNOption) *ESPN {
	e := &ESPN{
		client:     &http.Client{Timeout: defaultHTTPTimeout},
		baseURL:    DefaultESPNBaseURL,
		sportPath:  strings.Trim(sportPath, "/"),
		delay:      defaultFetchDelay,
		windowDays: defaultWindowDays,
		limit:      defaultLimit,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = logger.Get().Named(providerName)
	}
	return e
}

// Results fetches the range in windows of windowDays days and keeps
// concluded games.
func (e *ESPN) Results(ctx context.Context, from, to time.Time) ([]model.Game, error) {
	days, err := dayList(from, to)
	if err != nil {
		return nil, err
	}

	var out []model.Game
	for start := 0; start < len(days); start += e.windowDays {
		end := min(start+e.windowDays, len(days)) - 1
		dates := days[start].Format(espnDateParam)
		if end > start {
			dates += "-" + days[end].Format(espnDateParam)
		}
		games, err := e.scoreboard(ctx, dates)
		if err != nil {
			return nil, err
		}
		for _, g := range games {
			if g.Completed() && inRange(g.Date, from, to) {
				out = append(out, g)
			}
		}
	}

	metrics.RecordGamesFetched(providerName, "results", len(out))
	return out, nil
}

// Schedule fetches one scoreboard per day in the range.
func (e *ESPN) Schedule(ctx context.Context, from, to time.Time) ([]model.Game, error) {
	days, err := dayList(from, to)
	if err != nil {
		return nil, err
	}

	var out []model.Game
	for _, day := range days {
		games, err := e.scoreboard(ctx, day.Format(espnDateParam))
		if err != nil {
			return nil, err
		}
		for _, g := range games {
			if inRange(g.Date, from, to) {
				out = append(out, g)
			}
		}
	}

	metrics.RecordGamesFetched(providerName, "schedule", len(out))
	return out, nil
}

// Teams fetches the league team list.
func (e *ESPN) Teams(ctx context.Context) (*Directory, error) {
	var resp espnTeamsResponse
	if err := e.getJSON(ctx, "teams", e.endpoint("teams", nil), &resp); err != nil {
		return nil, err
	}

	var teams []Team
	for _, s := range resp.Sports {
		for _, l := range s.Leagues {
			for _, t := range l.Teams {
				teams = append(teams, Team{
					ID:           t.Team.ID,
					Abbreviation: t.Team.Abbreviation,
					Name:         t.Team.DisplayName,
				})
			}
		}
	}
	return NewDirectory(teams), nil
}

func (e *ESPN) scoreboard(ctx context.Context, dates string) ([]model.Game, error) {
	q := url.Values{}
	q.Set("dates", dates)
	q.Set("limit", strconv.Itoa(e.limit))

	var resp espnScoreboard
	if err := e.getJSON(ctx, "scoreboard", e.endpoint("scoreboard", q), &resp); err != nil {
		return nil, err
	}

	games := make([]model.Game, 0, len(resp.Events))
	for _, ev := range resp.Events {
		g, err := parseEvent(ev)
		if err != nil {
			metrics.RecordInvalidRecord()
			e.log.Warn(ctx, "skipping malformed event",
				logger.String("event_id", ev.ID),
				logger.String("dates", dates),
				logger.Error(err),
			)
			continue
		}
		games = append(games, g)
	}
	return games, nil
}

func (e *ESPN) endpoint(resource string, q url.Values) string {
	u := strings.TrimRight(e.baseURL, "/") + "/" + e.sportPath + "/" + resource
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

// getJSON performs a paced GET and decodes the JSON body into dst.
func (e *ESPN) getJSON(ctx context.Context, endpoint, rawURL string, dst any) error {
	if err := e.pace(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", acceptEncoding)

	start := time.Now()
	resp, err := e.client.Do(req)
	e.markDone()
	metrics.RecordFetch(providerName, endpoint, float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.RecordFetchError(providerName, "transport")
		return fmt.Errorf("fetch %s: %w", endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	e.log.Debug(ctx, "upstream response",
		logger.String("url", rawURL),
		logger.Int("status", resp.StatusCode),
		logger.Duration("took", time.Since(start)),
	)

	if resp.StatusCode != http.StatusOK {
		metrics.RecordFetchError(providerName, "status")
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("%w: %s returned %d", ErrUpstreamStatus, endpoint, resp.StatusCode)
	}

	body, err := decodeBody(resp)
	if err != nil {
		metrics.RecordFetchError(providerName, "decode")
		return err
	}
	defer func() { _ = body.Close() }()

	if err := json.NewDecoder(body).Decode(dst); err != nil {
		metrics.RecordFetchError(providerName, "decode")
		return fmt.Errorf("%w: %s: %w", ErrDecode, endpoint, err)
	}
	return nil
}

// pace blocks until delay has elapsed since the previous request finished.
func (e *ESPN) pace(ctx context.Context) error {
	e.mu.Lock()
	last := e.last
	e.mu.Unlock()

	if last.IsZero() || e.delay <= 0 {
		return ctx.Err()
	}
	wait := e.delay - time.Since(last)
	if wait <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return fmt.Errorf("pacing: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}

func (e *ESPN) markDone() {
	e.mu.Lock()
	e.last = time.Now()
	e.mu.Unlock()
}

func parseEvent(ev espnEvent) (model.Game, error) {
	if len(ev.Competitions) == 0 {
		return model.Game{}, errors.New("no competitions")
	}
	comp := ev.Competitions[0]

	raw := ev.Date
	if raw == "" {
		raw = comp.Date
	}
	date, err := parseESPNTime(raw)
	if err != nil {
		return model.Game{}, err
	}

	g := model.Game{
		ID:     ev.ID,
		Date:   date,
		Status: ev.Status.Type.ShortDetail,
	}
	if g.Status == "" {
		g.Status = ev.Status.Type.Description
	}
	if ev.Week != nil {
		g.Week = ev.Week.Number
	}

	var awayScore, homeScore string
	for _, c := range comp.Competitors {
		switch c.HomeAway {
		case "home":
			g.HomeTeamID, homeScore = c.Team.ID, c.Score
		case "away":
			g.AwayTeamID, awayScore = c.Team.ID, c.Score
		}
	}
	if g.HomeTeamID == "" || g.AwayTeamID == "" {
		return model.Game{}, errors.New("missing home or away competitor")
	}

	// Scheduled games carry "0" scores upstream; only concluded ones count.
	if ev.Status.Type.Completed {
		a, errA := strconv.Atoi(strings.TrimSpace(awayScore))
		h, errH := strconv.Atoi(strings.TrimSpace(homeScore))
		if errA != nil || errH != nil {
			return model.Game{}, fmt.Errorf("unparseable final score %q-%q", awayScore, homeScore)
		}
		g.AwayScore, g.HomeScore = model.Score(a), model.Score(h)
	}

	if err := g.Validate(); err != nil {
		return model.Game{}, err
	}
	return g, nil
}

func parseESPNTime(s string) (time.Time, error) {
	if t, err := time.Parse(espnTimeLayout, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unparseable date %q", s)
	}
	return t.UTC(), nil
}

// dayList returns the calendar days (in from's location) touched by
// [from, to).
func dayList(from, to time.Time) ([]time.Time, error) {
	if !to.After(from) {
		return nil, fmt.Errorf("%w: %s is not before %s", ErrInvalidRange, from, to)
	}
	loc := from.Location()
	last := to.Add(-time.Nanosecond).In(loc)
	day := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, loc)
	end := time.Date(last.Year(), last.Month(), last.Day(), 0, 0, 0, 0, loc)

	var days []time.Time
	for !day.After(end) {
		days = append(days, day)
		day = day.AddDate(0, 0, 1)
	}
	return days, nil
}
