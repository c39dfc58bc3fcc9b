package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/aretw0/rowexpand"
	"github.com/aretw0/rowexpand/internal/presentation/tui"
	"github.com/aretw0/rowexpand/pkg/domain"
)

const sessionHelp = `Commands:
  t, toggle <key>     flip a row
  e, expand <key>     expand a row
  c, collapse <key>   collapse a row
  keys                list expanded keys
  set <k1,k2,...>     replace the expanded keys
  side <body|left|right>
  q, quit             leave`

// errQuit ends a session without error.
var errQuit = errors.New("quit")

// Session is an interactive loop over one table: it renders the visible
// rows, reads a command per line and applies it.
type Session struct {
	in     io.Reader
	out    io.Writer
	rows   *tui.RowWriter
	logger *slog.Logger

	mu    sync.Mutex
	table *rowexpand.Table
	side  domain.FixedSide
}

// NewSession creates a session reading commands from in and writing to out.
func NewSession(table *rowexpand.Table, in io.Reader, out io.Writer, logger *slog.Logger, opts ...tui.Option) *Session {
	return &Session{
		in:     in,
		out:    out,
		rows:   tui.NewRowWriter(out, opts...),
		logger: logger,
		table:  table,
	}
}

// Replace swaps the table, e.g. after its file changed, and redraws.
func (s *Session) Replace(table *rowexpand.Table) error {
	s.mu.Lock()
	s.table = table
	s.mu.Unlock()
	return s.Draw()
}

// Table returns the current table.
func (s *Session) Table() *rowexpand.Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table
}

// Draw renders the visible rows of the current side.
func (s *Session) Draw() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.Render(s.side, s.rows)
}

// Run draws the table and processes commands until quit, EOF or ctx is done.
func (s *Session) Run(ctx context.Context) error {
	if err := s.Draw(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(NewInterruptibleReader(s.in, ctx.Done()))
	fmt.Fprint(s.out, "> ")
	for scanner.Scan() {
		err := s.Exec(scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			printSystemMessage(s.out, "%v", err)
		}
		fmt.Fprint(s.out, "> ")
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return io.EOF
}

// Exec applies one command line and redraws when the view may have changed.
func (s *Session) Exec(line string) error {
	clean, err := SanitizeInput(line)
	if err != nil {
		s.logger.Warn("Session: input rejected", "error", err, "size", len(line))
		return err
	}

	fields := strings.Fields(clean)
	if len(fields) == 0 {
		return s.Draw()
	}
	cmd, args := fields[0], fields[1:]
	table := s.Table()

	switch cmd {
	case "q", "quit", "exit":
		return errQuit
	case "h", "help", "?":
		fmt.Fprintln(s.out, sessionHelp)
		return nil
	case "keys":
		printSystemMessage(s.out, "expanded: %s", strings.Join(table.ExpandedRowKeys().Strings(), ", "))
		return nil
	case "set":
		keys, err := domain.ParseKeySet(strings.Join(args, ""))
		if err != nil {
			return err
		}
		table.SetExpandedRowKeys(keys)
	case "side":
		side, err := parseSide(args)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.side = side
		s.mu.Unlock()
	case "t", "toggle", "e", "expand", "c", "collapse":
		if len(args) != 1 {
			return fmt.Errorf("usage: %s <key>", cmd)
		}
		if err := s.toggle(table, cmd, domain.RowKey(args[0])); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown command %q (try 'help')", cmd)
	}
	return s.Draw()
}

func (s *Session) toggle(table *rowexpand.Table, cmd string, key domain.RowKey) error {
	ev := domain.NewEvent("key")
	var err error
	switch cmd {
	case "e", "expand":
		_, err = table.ExpandKey(key, ev)
	case "c", "collapse":
		_, err = table.CollapseKey(key, ev)
	default:
		_, err = table.ToggleKey(key, ev)
	}
	if err != nil {
		return err
	}
	s.logger.Debug("Row toggled", "command", cmd, "key", string(key), "controlled", table.Controlled())
	if table.Controlled() {
		printSystemMessage(s.out, "Expanded keys are controlled; use 'set' to change them.")
	}
	return nil
}

func parseSide(args []string) (domain.FixedSide, error) {
	if len(args) != 1 {
		return domain.FixedNone, errors.New("usage: side <body|left|right>")
	}
	switch args[0] {
	case "body", "":
		return domain.FixedNone, nil
	case "left":
		return domain.FixedLeft, nil
	case "right":
		return domain.FixedRight, nil
	}
	return domain.FixedNone, fmt.Errorf("invalid side %q", args[0])
}
