package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/muesli/termenv"

	"github.com/ayayrom/cs491-ex2/internal/config"
	"github.com/ayayrom/cs491-ex2/internal/service"
	"github.com/ayayrom/cs491-ex2/internal/usecase"
	"github.com/ayayrom/cs491-ex2/transport/console"
)

// RunApp - runs the game on the process terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	return Run(context.Background(), logger, conf, os.Stdin, os.Stdout)
}

// Run - wires the game together and plays it on in and out until the player quits or a signal arrives.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debug("random source seeded", "seed", seed)

	botService := service.NewBotService(rand.New(rand.NewSource(seed))) //nolint: gosec // game randomness
	gameManager := usecase.NewGameManager(logger, botService, conf.ComputerDelay)

	var opts []termenv.OutputOption
	if conf.NoColor {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	consoleServer := console.New(logger, gameManager, in, termenv.NewOutput(out, opts...))

	// run console
	consoleErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting console")
		consoleErrCh <- consoleServer.Start(ctx)
	}()

	select {
	case err := <-consoleErrCh:
		if err != nil {
			return fmt.Errorf("console error: %w", err)
		}

		log.Info("Console closed, shutting down")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
