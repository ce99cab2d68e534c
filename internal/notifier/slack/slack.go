package slack

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/passabola/futstats/internal/metrics"
	"github.com/passabola/futstats/internal/notifier"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier posts match announcements to a Slack channel.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendText(text string, dryRun bool) error {
	if dryRun {
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "text", text)
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionText(text, false),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return nil
}

func (s *Notifier) AnnounceGoal(playerName, clubName string, minute int, dryRun bool) error {
	text := fmt.Sprintf(":soccer: *GOL!* %s (%s) aos %d'", playerName, clubName, minute)
	if clubName == "" {
		text = fmt.Sprintf(":soccer: *GOL!* %s aos %d'", playerName, minute)
	}
	return s.sendText(text, dryRun)
}

func (s *Notifier) AnnounceResult(homeClub, awayClub string, homeScore, awayScore int, dryRun bool) error {
	text := fmt.Sprintf(":checkered_flag: Fim de jogo: %s %d x %d %s", homeClub, homeScore, awayScore, awayClub)
	return s.sendText(text, dryRun)
}
