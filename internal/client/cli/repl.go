package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// fprintlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var fprintlnFn = fmt.Fprintln

// execIface is the command surface the REPL dispatches to. *App satisfies it;
// tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	SignUp(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error

	Boards(ctx context.Context) error
	Board(ctx context.Context, id int64) error
	NewBoard(ctx context.Context) error
	EditBoard(ctx context.Context, id int64) error
	DeleteBoard(ctx context.Context, id int64) error

	Post(ctx context.Context, id int64) error
	NewPost(ctx context.Context) error
	EditPost(ctx context.Context, id int64) error
	DeletePost(ctx context.Context, id int64) error
}

const (
	helpLoggedOut = "Available commands: signup, login, whoami, exit"
	helpLoggedIn  = "Available commands: boards, board <id>, newboard, editboard <id>, delboard <id>, " +
		"post <id>, newpost, editpost <id>, delpost <id>, whoami, logout, exit"
)

// runREPL reads one command per line from reader and dispatches it to a.
// The prompt and messages go to out. Errors returned by commands are printed
// and the loop continues. The loop exits on EOF or when the user types "exit"
// or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	for {
		fprintlnFn(out, fmt.Sprintf("board %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if err := dispatch(ctx, a, out, cmd, args); err != nil {
			if errors.Is(err, errExit) {
				fprintlnFn(out, "Bye!")
				return
			}
			fprintlnFn(out, "Error:", err)
		}
	}
}

var (
	errExit  = errors.New("exit")
	errUsage = errors.New("usage")
)

func dispatch(ctx context.Context, a execIface, out io.Writer, cmd string, args []string) error {
	withID := func(name string, fn func(context.Context, int64) error) error {
		if len(args) != 1 {
			return fmt.Errorf("%w: %s <id>", errUsage, name)
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || id <= 0 {
			return fmt.Errorf("%w: %s <id>, id must be a positive number", errUsage, name)
		}
		return fn(ctx, id)
	}

	switch cmd {
	case "help":
		if a.isLoggedIn() {
			fprintlnFn(out, helpLoggedIn)
		} else {
			fprintlnFn(out, helpLoggedOut)
		}
		return nil

	case "signup":
		return a.SignUp(ctx)
	case "login":
		return a.Login(ctx)
	case "logout":
		return a.Logout(ctx)
	case "whoami":
		return a.Whoami(ctx)

	case "boards", "home", "l":
		return a.Boards(ctx)
	case "board":
		return withID(cmd, a.Board)
	case "newboard":
		return a.NewBoard(ctx)
	case "editboard":
		return withID(cmd, a.EditBoard)
	case "delboard":
		return withID(cmd, a.DeleteBoard)

	case "post":
		return withID(cmd, a.Post)
	case "newpost":
		return a.NewPost(ctx)
	case "editpost":
		return withID(cmd, a.EditPost)
	case "delpost":
		return withID(cmd, a.DeletePost)

	case "exit", "quit":
		return errExit
	}

	fprintlnFn(out, "Unknown command:", cmd)
	return nil
}
