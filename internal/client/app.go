package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type command struct {
	usage string
	nargs int
	run   func(ctx context.Context, api adapter.NotesAPI, args []string) (any, error)
}

var commands = map[string]command{
	"signup": {
		usage: "signup <email> <password>",
		nargs: 2,
		run: func(ctx context.Context, api adapter.NotesAPI, args []string) (any, error) {
			return api.Signup(ctx, models.Credentials{Email: args[0], Password: args[1]})
		},
	},
	"login": {
		usage: "login <email> <password>",
		nargs: 2,
		run: func(ctx context.Context, api adapter.NotesAPI, args []string) (any, error) {
			return api.Login(ctx, models.Credentials{Email: args[0], Password: args[1]})
		},
	},
	"list": {
		usage: "list <userID>",
		nargs: 1,
		run: func(ctx context.Context, api adapter.NotesAPI, args []string) (any, error) {
			notes, err := api.ListNotes(ctx, args[0])
			if err != nil {
				return nil, err
			}
			if notes == nil {
				notes = []models.Note{}
			}
			return models.NotesResponse{Notes: notes}, nil
		},
	},
	"create": {
		usage: "create <userID> <title> <content>",
		nargs: 3,
		run: func(ctx context.Context, api adapter.NotesAPI, args []string) (any, error) {
			note, err := api.CreateNote(ctx, args[0], models.NoteBody{Title: args[1], Content: args[2]})
			if err != nil {
				return nil, err
			}
			return models.NoteResponse{Note: note}, nil
		},
	},
	"get": {
		usage: "get <userID> <noteID>",
		nargs: 2,
		run: func(ctx context.Context, api adapter.NotesAPI, args []string) (any, error) {
			note, err := api.GetNote(ctx, args[0], args[1])
			if err != nil {
				return nil, err
			}
			return models.NoteResponse{Note: note}, nil
		},
	},
	"edit": {
		usage: "edit <userID> <noteID> <title> <content>",
		nargs: 4,
		run: func(ctx context.Context, api adapter.NotesAPI, args []string) (any, error) {
			note, err := api.EditNote(ctx, args[0], args[1], models.NoteBody{Title: args[2], Content: args[3]})
			if err != nil {
				return nil, err
			}
			return models.NoteResponse{Note: note}, nil
		},
	},
	"delete": {
		usage: "delete <userID> <noteID>",
		nargs: 2,
		run: func(ctx context.Context, api adapter.NotesAPI, args []string) (any, error) {
			return nil, api.DeleteNote(ctx, args[0], args[1])
		},
	},
}

// Usage lists every command with its arguments, one per line.
func Usage() string {
	lines := make([]string, 0, len(commands))
	for _, c := range commands {
		lines = append(lines, "  "+c.usage)
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n")
}

// App runs single commands against the notes API.
type App struct {
	api    adapter.NotesAPI
	out    io.Writer
	logger *logger.Logger
}

// NewApp returns an App that prints results to out.
func NewApp(api adapter.NotesAPI, out io.Writer, logger *logger.Logger) *App {
	return &App{api: api, out: out, logger: logger}
}

// Run executes args[0] with the remaining arguments. A successful delete
// prints nothing.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: none given", ErrUnknownCommand)
	}

	name, rest := args[0], args[1:]
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	if len(rest) != cmd.nargs {
		return fmt.Errorf("%w: usage: %s", ErrWrongArguments, cmd.usage)
	}

	a.logger.Debug().Str("command", name).Msg("running command")

	result, err := cmd.run(ctx, a.api, rest)
	if err != nil {
		a.logger.Error().Err(err).Str("command", name).Msg("command failed")
		return fmt.Errorf("%s: %w", name, err)
	}
	if result == nil {
		return nil
	}

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
