package match

import "strings"

// Status is the provider match status.
type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusTimed     Status = "TIMED"
	StatusLive      Status = "LIVE"
	StatusInPlay    Status = "IN_PLAY"
	StatusPaused    Status = "PAUSED"
	StatusFinished  Status = "FINISHED"
	StatusPostponed Status = "POSTPONED"
	StatusSuspended Status = "SUSPENDED"
	StatusCanceled  Status = "CANCELED"
)

// FilterStatuses are the status values accepted as a list filter.
var FilterStatuses = []Status{
	StatusScheduled,
	StatusTimed,
	StatusLive,
	StatusInPlay,
	StatusPaused,
	StatusFinished,
	StatusPostponed,
	StatusSuspended,
	StatusCanceled,
}

// NormalizeStatus cleans a status typed by a user into a list filter.
// Provider statuses are kept as sent.
func NormalizeStatus(value string) Status {
	return Status(strings.ToUpper(strings.TrimSpace(value)))
}

func (s Status) IsLive() bool {
	return s == StatusLive || s == StatusInPlay
}

type TeamRef struct {
	ID        int64
	Name      string
	ShortName string
	TLA       string
	Crest     string
}

// HasID reports whether the team is known well enough to load its squad.
func (t TeamRef) HasID() bool {
	return t.ID > 0
}

// ScoreLine is one home/away pair. Either side may be null.
type ScoreLine struct {
	Home *int
	Away *int
}

func (l *ScoreLine) Present() bool {
	return l != nil && l.Home != nil
}

type Score struct {
	Winner    string
	Duration  string
	FullTime  *ScoreLine
	HalfTime  *ScoreLine
	ExtraTime *ScoreLine
	Penalties *ScoreLine
}

type CompetitionRef struct {
	ID     int64
	Name   string
	Code   string
	Emblem string
}

// Match is one fixture as reported by the provider.
type Match struct {
	ID          int64
	UTCDate     string
	Status      Status
	HomeTeam    TeamRef
	AwayTeam    TeamRef
	Score       *Score
	Matchday    *int
	Stage       string
	Venue       string
	Competition *CompetitionRef
}

// FullTimeScore returns the full-time result. ok is false unless the score,
// its full-time line and the home value are all present; a missing score is
// never reported as 0-0.
func (m Match) FullTimeScore() (home, away int, ok bool) {
	if m.Score == nil || !m.Score.FullTime.Present() {
		return 0, 0, false
	}
	home = *m.Score.FullTime.Home
	if m.Score.FullTime.Away != nil {
		away = *m.Score.FullTime.Away
	}
	return home, away, true
}

// ListFilter narrows a competition's match list. Values are forwarded to the
// provider as query parameters only.
type ListFilter struct {
	DateFrom string
	DateTo   string
	Status   Status
}

func (f ListFilter) IsZero() bool {
	return f.DateFrom == "" && f.DateTo == "" && f.Status == ""
}
