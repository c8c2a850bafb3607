package team

// Player is one squad member.
type Player struct {
	ID          int64
	Name        string
	Position    string
	DateOfBirth string
	Nationality string
}

// Team is a club with its current squad.
type Team struct {
	ID        int64
	Name      string
	ShortName string
	TLA       string
	Crest     string
	Venue     string
	Founded   *int
	Squad     []Player
}
