package generator

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Username generates a fitness themed username by combining randomly selected
// elements. Used by the seeder to pad the roster with believable accounts.
func Username() string {
	adjectives := []string{
		"Mighty", "Swift", "Iron", "Steady", "Blazing",
		"Restless", "Fearless", "Tireless", "Rapid", "Sturdy",
		"Lean", "Hardy", "Nimble", "Bold", "Relentless",
		"Steel", "Thundering", "Roaring", "Dauntless", "Unbroken",
	}
	nouns := []string{
		"Strider", "Sprinter", "Lifter", "Climber", "Rower",
		"Cyclist", "Swimmer", "Runner", "Jumper", "Boxer",
		"Pacer", "Racer", "Trekker", "Vaulter", "Skipper",
		"Crusher", "Charger", "Dasher", "Grinder", "Pusher",
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	adj := adjectives[r.Intn(len(adjectives))]
	noun := nouns[r.Intn(len(nouns))]
	// A numeric suffix keeps generated usernames unique enough for seeding.
	return fmt.Sprintf("%s%s%d", strings.ToLower(adj), strings.ToLower(noun), r.Intn(1000))
}

// TeamName generates a team name with optional location flair.
func TeamName() string {
	prefixes := []string{
		"Team", "Club", "Squad", "Crew", "League",
	}
	themes := []string{
		"Thunder", "Velocity", "Endurance", "Momentum", "Cadence",
		"Pursuit", "Summit", "Horizon", "Tempo", "Stamina",
		"Apex", "Stride", "Pulse", "Surge", "Grit",
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	usePrefix := r.Float64() < 0.5

	theme := themes[r.Intn(len(themes))]
	if usePrefix {
		prefix := prefixes[r.Intn(len(prefixes))]
		return fmt.Sprintf("%s %s", prefix, theme)
	}
	second := themes[r.Intn(len(themes))]
	if second == theme {
		return theme
	}
	return fmt.Sprintf("%s %s", theme, second)
}
