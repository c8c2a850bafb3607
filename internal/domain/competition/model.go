package competition

// Type separates round-robin leagues from knockout tournaments.
type Type string

const (
	TypeLeague Type = "LEAGUE"
	TypeCup    Type = "CUP"
)

// Area is the country or region a competition belongs to.
type Area struct {
	ID   int64
	Name string
	Code string
	Flag string
}

type Season struct {
	ID              int64
	StartDate       string
	EndDate         string
	CurrentMatchday *int
}

// StartYear returns the year part of StartDate, empty when the date is missing.
func (s Season) StartYear() string {
	return yearOf(s.StartDate)
}

func (s Season) EndYear() string {
	return yearOf(s.EndDate)
}

// Competition is a league or cup served by the provider.
type Competition struct {
	ID            int64
	Name          string
	Code          string
	Area          *Area
	Type          Type
	CurrentSeason *Season
	Emblem        string
}

func (c Competition) AreaName() string {
	if c.Area == nil {
		return ""
	}
	return c.Area.Name
}

// Listing is the result of listing competitions. Found is false when the
// provider answered without a competitions array at all, which is different
// from an empty array.
type Listing struct {
	Competitions []Competition
	Found        bool
}

func yearOf(date string) string {
	if len(date) < 4 {
		return ""
	}
	return date[:4]
}
