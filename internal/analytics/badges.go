package analytics

import "time"

type BadgeID string

const (
	BadgeSharpshooter  BadgeID = "sharpshooter"
	BadgeSpeedDemon    BadgeID = "speed_demon"
	BadgeLightning     BadgeID = "lightning"
	BadgeCenturion     BadgeID = "centurion"
	BadgePerfectionist BadgeID = "perfectionist"
)

type Badge struct {
	ID          BadgeID
	Name        string
	Description string
	Icon        string
}

var AllBadges = map[BadgeID]Badge{
	BadgeSharpshooter:  {ID: BadgeSharpshooter, Name: "Sharpshooter", Description: "10+ hits in a session", Icon: "🎯"},
	BadgeSpeedDemon:    {ID: BadgeSpeedDemon, Name: "Speed Demon", Description: "Average reaction time under 300ms", Icon: "⚡"},
	BadgeLightning:     {ID: BadgeLightning, Name: "Lightning", Description: "Spawn interval squeezed below one second", Icon: "🔥"},
	BadgeCenturion:     {ID: BadgeCenturion, Name: "Centurion", Description: "100+ hits in a session", Icon: "💯"},
	BadgePerfectionist: {ID: BadgePerfectionist, Name: "Perfectionist", Description: "90%+ of targets hit after 20 spawns", Icon: "✨"},
}

// badgeOrder keeps evaluation output stable.
var badgeOrder = []BadgeID{BadgeSharpshooter, BadgeSpeedDemon, BadgeLightning, BadgeCenturion, BadgePerfectionist}

// EvaluateSessionBadges checks which badges the stats have earned so far.
func EvaluateSessionBadges(stats SessionStats) []Badge {
	earned := map[BadgeID]bool{
		BadgeSharpshooter: stats.Hits >= 10,
		BadgeSpeedDemon:   stats.Hits > 0 && stats.AvgReaction < 300*time.Millisecond,
		BadgeLightning:    stats.Interval > 0 && stats.Interval < time.Second,
		BadgeCenturion:    stats.Hits >= 100,
		// Perfectionist needs a meaningful sample before the rate counts.
		BadgePerfectionist: stats.Spawns >= 20 && stats.HitRate() >= 90,
	}

	var badges []Badge
	for _, id := range badgeOrder {
		if earned[id] {
			badges = append(badges, AllBadges[id])
		}
	}
	return badges
}
