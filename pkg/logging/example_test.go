package logging_test

import (
	"context"
	"os"

	"github.com/agentstation/cubesync/pkg/logging"
)

// Example shows the usual setup: configure once, then carry the logger
// through the context and add the card being worked on.
func Example() {
	logging.Configure(&logging.Config{
		Level:  "debug",
		Format: os.Getenv("LOG_FORMAT"),
		Output: "stderr",
	})

	ctx := logging.WithOperation(context.Background(), "sync")
	ctx = logging.WithCard(ctx, "Kor Skyfisher")

	logging.FromContext(ctx).Info().
		Int("status", 404).
		Msg("Failed to fetch card")
}

// Example_json writes structured records to any writer.
func Example_json() {
	logger := logging.New(os.Stdout)
	ctx := logging.WithLogger(context.Background(), &logger)
	ctx = logging.WithPath(ctx, "cube.json")

	logging.Ctx(ctx).Debug().Int("cards", 25).Msg("Checkpoint saved")
}
