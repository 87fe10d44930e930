package suite

import (
	"context"
	"log/slog"
	"math/rand"
	"os"
	"testing"
	"time"

	"github.com/ayayrom/cs491-ex2/internal/service"
)

const (
	maxWaitDuration = 10 * time.Second
	botSeed         = 7
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Bot service.BotService
}

// New - returns a context bound to the test and the components shared by game tests.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Bot:    service.NewBotService(rand.New(rand.NewSource(botSeed))), //nolint: gosec // deterministic tests
	}
}
