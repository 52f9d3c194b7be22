package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/flowboard/flowboard/pkg/board"
)

// Marshal converts a board to interchange JSON bytes.
func Marshal(b *board.Board) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(b, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal deserializes interchange JSON bytes into a fresh board.
// Malformed input fails with a single CodeInvalidDocument error; the caller's
// live board is never touched.
func Unmarshal(data []byte) (*board.Board, error) {
	doc, err := parse(data)
	if err != nil {
		return nil, err
	}
	return ToBoard(doc)
}

// Write encodes a board as indented interchange JSON to w.
func Write(b *board.Board, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromBoard(b)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Read decodes an interchange document from r into a fresh board.
// Use ReadFile for files or pass bytes.NewReader for in-memory data.
func Read(r io.Reader) (*board.Board, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return Unmarshal(data)
}

// WriteFile writes a board to a JSON file.
// The file is created with 0644 permissions.
func WriteFile(b *board.Board, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(b, f)
}

// ReadFile reads a JSON file and returns the decoded board.
// Returns validation errors for malformed documents.
func ReadFile(path string) (*board.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}
