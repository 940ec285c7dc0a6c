package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/facultyip/internal/client/models"
	"github.com/dmitrijs2005/facultyip/internal/client/session"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	View() session.View
	Status() string
	Navigate(view session.View) session.Decision

	Login(ctx context.Context, role models.Role) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Open(ctx context.Context, path string) error
	WhoAmI(ctx context.Context) error

	Overview(ctx context.Context) error
	Patents(ctx context.Context) error
	AddPatent(ctx context.Context) error
	Scholar(ctx context.Context) error

	FacultyList(ctx context.Context) error
	ShowFaculty(ctx context.Context, id string) error
	Export(ctx context.Context, id string) error
}

// command is a REPL command. A command with a view is only reachable from
// that view; the route guard is asked on every invocation.
type command struct {
	name  string
	usage string
	help  string
	view  session.View
	args  int
	run   func(ctx context.Context, a execIface, args []string) error
}

var anywhere session.View

// errUsage makes the REPL print the command's usage line.
var errUsage = errors.New("usage")

var commands = []command{
	{name: "login", usage: "login <faculty|admin>", help: "sign in with the given role", view: session.ViewLanding, args: 1,
		run: func(ctx context.Context, a execIface, args []string) error {
			role, err := models.ParseRole(strings.ToLower(args[0]))
			if err != nil {
				return fmt.Errorf("%w: %w", errUsage, err)
			}
			return a.Login(ctx, role)
		}},
	{name: "register", usage: "register", help: "create a faculty account", view: session.ViewLanding,
		run: func(ctx context.Context, a execIface, _ []string) error { return a.Register(ctx) }},

	{name: "overview", usage: "overview", help: "portfolio summary", view: session.ViewFaculty,
		run: func(ctx context.Context, a execIface, _ []string) error { return a.Overview(ctx) }},
	{name: "patents", usage: "patents", help: "list your patents", view: session.ViewFaculty,
		run: func(ctx context.Context, a execIface, _ []string) error { return a.Patents(ctx) }},
	{name: "addpatent", usage: "addpatent", help: "record a new patent", view: session.ViewFaculty,
		run: func(ctx context.Context, a execIface, _ []string) error { return a.AddPatent(ctx) }},
	{name: "scholar", usage: "scholar", help: "link your Google Scholar profile", view: session.ViewFaculty,
		run: func(ctx context.Context, a execIface, _ []string) error { return a.Scholar(ctx) }},

	{name: "faculty", usage: "faculty", help: "list faculty members", view: session.ViewAdmin,
		run: func(ctx context.Context, a execIface, _ []string) error { return a.FacultyList(ctx) }},
	{name: "show", usage: "show <id>", help: "show a faculty member and their patents", view: session.ViewAdmin, args: 1,
		run: func(ctx context.Context, a execIface, args []string) error { return a.ShowFaculty(ctx, args[0]) }},
	{name: "export", usage: "export <id>", help: "export a faculty member's data", view: session.ViewAdmin, args: 1,
		run: func(ctx context.Context, a execIface, args []string) error { return a.Export(ctx, args[0]) }},

	{name: "open", usage: "open <path>", help: "navigate to /, /faculty or /admin", view: anywhere, args: 1,
		run: func(ctx context.Context, a execIface, args []string) error { return a.Open(ctx, args[0]) }},
	{name: "whoami", usage: "whoami", help: "show the signed-in user", view: anywhere,
		run: func(ctx context.Context, a execIface, _ []string) error { return a.WhoAmI(ctx) }},
	{name: "logout", usage: "logout", help: "sign out", view: anywhere,
		run: func(ctx context.Context, a execIface, _ []string) error { return a.Logout(ctx) }},
}

func lookup(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

// helpText lists the commands reachable from view.
func helpText(view session.View) string {
	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, c := range commands {
		if c.view != anywhere && c.view != view {
			continue
		}
		if c.name == "logout" && view == session.ViewLanding {
			continue
		}
		fmt.Fprintf(&b, "  %-22s %s\n", c.usage, c.help)
	}
	fmt.Fprintf(&b, "  %-22s %s", "exit", "leave the program")
	return b.String()
}

// runREPL starts a simple read–eval–print loop for the facultyip CLI.
//
// It reads a line from reader, parses the first token as the command and
// dispatches it. Everything the loop prints goes to w. Prompts inside
// handlers share the same reader. Commands bound to a view first navigate
// there; when the route guard redirects, the command is refused. The loop
// exits on EOF, on "exit"/"quit" or when ctx is done.
//
// Errors returned by command handlers are ignored here; handlers report
// their own failures.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(w, "facultyip %s> ", a.Status())
		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "help":
			fmt.Fprintln(w, helpText(a.View()))
			continue
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		}

		cmd, ok := lookup(name)
		if !ok {
			fmt.Fprintln(w, "Unknown command:", name)
			continue
		}

		if cmd.view != anywhere {
			if d := a.Navigate(cmd.view); d.View != cmd.view {
				fmt.Fprintf(w, "%s is not available here\n", name)
				continue
			}
		}

		if len(args) < cmd.args {
			fmt.Fprintln(w, "Usage:", cmd.usage)
			continue
		}

		switch err := cmd.run(ctx, a, args); {
		case errors.Is(err, errUsage):
			fmt.Fprintln(w, "Usage:", cmd.usage)
		case isBusy(err):
			fmt.Fprintln(w, err.Error())
		}
	}
}
