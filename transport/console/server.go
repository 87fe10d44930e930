package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/ayayrom/cs491-ex2/internal/entity"
)

var errQuit = errors.New("quit requested")

type uGame interface {
	NewGame(ctx context.Context) *entity.Game
	ResetGame(ctx context.Context, game *entity.Game)
	MakeTurn(ctx context.Context, game *entity.Game, cell int) (int, error)
}

type handler func(ctx context.Context, command string, writer *strings.Builder) error

// Server plays the game on a text terminal: it reads one command per line and answers with the rendered board.
type Server struct {
	logger *slog.Logger
	uGame  uGame

	in     *bufio.Scanner
	out    io.Writer
	output *termenv.Output

	game   *entity.Game
	active bool

	handlers map[string]handler
}

func New(logger *slog.Logger, uGame uGame, in io.Reader, output *termenv.Output) *Server {
	server := &Server{
		logger: logger.With("component", "console"),
		uGame:  uGame,

		in:     bufio.NewScanner(in),
		out:    output,
		output: output,

		handlers: make(map[string]handler),
	}

	server.handlers["start"] = server.handleStart
	server.handlers["new"] = server.handleStart
	server.handlers["reset"] = server.handleReset
	server.handlers["help"] = server.handleHelp
	server.handlers["quit"] = server.handleQuit
	server.handlers["exit"] = server.handleQuit

	return server
}

// Start - runs the read and render loop until quit, end of input or context cancellation.
func (that *Server) Start(ctx context.Context) error {
	log := that.logger.With("method", "Start")

	var greeting strings.Builder
	greeting.WriteString("Tic-tac-toe: you are X, the computer is O.\n")
	writeHelp(&greeting)
	if err := that.flush(&greeting); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil //nolint: nilerr // cancellation is a normal shutdown
		}

		if err := that.prompt(); err != nil {
			return err
		}

		if !that.in.Scan() {
			if err := that.in.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			log.Info("input closed")
			return nil
		}

		command := strings.ToLower(strings.TrimSpace(that.in.Text()))
		if command == "" {
			continue
		}

		var response strings.Builder
		err := that.dispatch(ctx, command, &response)
		if errors.Is(err, errQuit) {
			return that.flush(&response)
		}
		if err != nil {
			log.Error("error processing command", "command", command, "error", err)
		}

		if err = that.flush(&response); err != nil {
			return err
		}
	}
}

func (that *Server) dispatch(ctx context.Context, command string, writer *strings.Builder) error {
	if h, ok := that.handlers[command]; ok {
		return h(ctx, command, writer)
	}

	if _, err := strconv.Atoi(command); err == nil {
		return that.handleMove(ctx, command, writer)
	}

	fmt.Fprintf(writer, "Unknown command %q. Type 'help' for the list of commands.\n", command)

	return nil
}

func (that *Server) prompt() error {
	if _, err := io.WriteString(that.out, "> "); err != nil {
		return fmt.Errorf("failed to write prompt: %w", err)
	}

	return nil
}

func (that *Server) flush(response *strings.Builder) error {
	if response.Len() == 0 {
		return nil
	}

	if _, err := io.WriteString(that.out, response.String()); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}

	return nil
}
