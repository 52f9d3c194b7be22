package cli

import (
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/flowboard/flowboard/pkg/board"
	"github.com/flowboard/flowboard/pkg/document"
	"github.com/flowboard/flowboard/pkg/errors"
)

// loadBoard reads the board document at path.
func loadBoard(path string) (*board.Board, error) {
	return document.ReadFile(path)
}

// saveBoard writes the board document back to path.
func saveBoard(b *board.Board, path string) error {
	return document.WriteFile(b, path)
}

// classify maps board sentinel rejections onto coded errors so command
// output and the TUI status line share one user-facing phrasing.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, board.ErrSelfLoop):
		return errors.Wrap(errors.CodeSelfLoop, err, "a node cannot connect to itself")
	case stderrors.Is(err, board.ErrWouldCycle):
		return errors.Wrap(errors.CodeWouldCycle, err, "that would make a node its own ancestor")
	case stderrors.Is(err, board.ErrUnknownNode):
		return errors.Wrap(errors.CodeNotFound, err, "unknown node")
	default:
		return errors.Wrap(errors.CodeInternal, err, "unexpected error")
	}
}

// resolveNode resolves a user-supplied node reference to a node ID.
// Exact ID wins, then a unique ID prefix, then a unique exact label.
// Ambiguous or unknown references return a NOT_FOUND error listing the
// candidates so the message is directly actionable.
func resolveNode(b *board.Board, ref string) (string, error) {
	if _, ok := b.Node(ref); ok {
		return ref, nil
	}

	var matches []string
	for _, n := range b.Nodes() {
		if strings.HasPrefix(n.ID, ref) {
			matches = append(matches, n.ID)
		}
	}
	if len(matches) == 0 {
		for _, n := range b.Nodes() {
			if n.Label == ref {
				matches = append(matches, n.ID)
			}
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", errors.New(errors.CodeNotFound, "no node matches %q", ref)
	default:
		short := make([]string, len(matches))
		for i, id := range matches {
			short[i] = shortID(id)
		}
		return "", errors.New(errors.CodeNotFound, "%q is ambiguous: %s", ref, strings.Join(short, ", "))
	}
}

// shortID abbreviates a node ID for display. UUIDs are long; the first
// group is enough to disambiguate on small boards.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// parsePoint parses an "x,y" coordinate pair.
func parsePoint(s string) (board.Position, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return board.Position{}, fmt.Errorf("expected x,y but got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return board.Position{}, fmt.Errorf("invalid x coordinate %q", parts[0])
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return board.Position{}, fmt.Errorf("invalid y coordinate %q", parts[1])
	}
	return board.Position{X: x, Y: y}, nil
}

// parseSize parses a "WxH" dimension pair.
func parseSize(s string) (w, h float64, err error) {
	parts := strings.SplitN(strings.ToLower(s), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected WxH but got %q", s)
	}
	w, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width %q", parts[0])
	}
	h, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height %q", parts[1])
	}
	return w, h, nil
}
