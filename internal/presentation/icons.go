package presentation

import "github.com/riskibarqy/football-center/internal/domain/team"

const (
	DefaultLeagueIcon = "🏆"
	HomeIcon          = "🏠"
	AwayIcon          = "✈️"
)

// LeagueIcon returns the flag or symbol shown next to a competition code.
func LeagueIcon(code string) string {
	switch code {
	case "PL", "ELC":
		return "🏴\U000e0067\U000e0062\U000e0065\U000e006e\U000e0067\U000e007f"
	case "PD":
		return "🇪🇸"
	case "SA":
		return "🇮🇹"
	case "BL1":
		return "🇩🇪"
	case "FL1":
		return "🇫🇷"
	case "CL":
		return "⭐"
	case "EC":
		return "🇪🇺"
	case "WC":
		return "🌍"
	case "PPL":
		return "🇵🇹"
	case "DED":
		return "🇳🇱"
	default:
		return DefaultLeagueIcon
	}
}

func GroupIcon(group team.PositionGroup) string {
	switch group {
	case team.GroupGoalkeepers:
		return "🧤"
	case team.GroupDefenders:
		return "🛡️"
	case team.GroupMidfielders:
		return "⚙️"
	case team.GroupForwards:
		return "⚡"
	default:
		return "👤"
	}
}

// PositionIcon maps a free-text position through its roster group.
func PositionIcon(position string) string {
	return GroupIcon(team.GroupOf(position))
}
