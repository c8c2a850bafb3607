package team

import "strings"

// PositionGroup is a roster section.
type PositionGroup string

const (
	GroupGoalkeepers PositionGroup = "goalkeepers"
	GroupDefenders   PositionGroup = "defenders"
	GroupMidfielders PositionGroup = "midfielders"
	GroupForwards    PositionGroup = "forwards"
	GroupOther       PositionGroup = "other"
)

// GroupOrder is the fixed roster display order.
var GroupOrder = []PositionGroup{GroupGoalkeepers, GroupDefenders, GroupMidfielders, GroupForwards, GroupOther}

type PositionBucket struct {
	Group   PositionGroup
	Players []Player
}

// GroupOf maps the provider's free-text position to a roster section.
func GroupOf(position string) PositionGroup {
	switch strings.ToLower(strings.TrimSpace(position)) {
	case "goalkeeper":
		return GroupGoalkeepers
	case "defence", "defender":
		return GroupDefenders
	case "midfield", "midfielder":
		return GroupMidfielders
	case "offence", "forward", "attacker":
		return GroupForwards
	default:
		return GroupOther
	}
}

// GroupByPosition partitions players into GroupOrder, dropping empty groups.
func GroupByPosition(players []Player) []PositionBucket {
	byGroup := make(map[PositionGroup][]Player, len(GroupOrder))
	for _, p := range players {
		group := GroupOf(p.Position)
		byGroup[group] = append(byGroup[group], p)
	}

	out := make([]PositionBucket, 0, len(GroupOrder))
	for _, group := range GroupOrder {
		if len(byGroup[group]) == 0 {
			continue
		}
		out = append(out, PositionBucket{Group: group, Players: byGroup[group]})
	}
	return out
}
