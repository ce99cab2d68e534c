package notifier

import "github.com/charmbracelet/log"

// Notifier defines a high-level interface for announcing business events.
// This decouples the rest of the application from the specific provider (e.g., Slack).
type Notifier interface {
	// AnnounceGoal announces a recorded goal.
	AnnounceGoal(playerName, clubName string, minute int, dryRun bool) error
	// AnnounceResult announces a finalized match score.
	AnnounceResult(homeClub, awayClub string, homeScore, awayScore int, dryRun bool) error
}

// noop is used when no announcement channel is configured.
type noop struct{}

// NewNoop creates a Notifier that only logs.
func NewNoop() Notifier {
	return &noop{}
}

func (n *noop) AnnounceGoal(playerName, clubName string, minute int, dryRun bool) error {
	log.Debug("Announcements disabled, skipping goal", "player", playerName, "minute", minute)
	return nil
}

func (n *noop) AnnounceResult(homeClub, awayClub string, homeScore, awayScore int, dryRun bool) error {
	log.Debug("Announcements disabled, skipping result", "home", homeClub, "away", awayClub)
	return nil
}
