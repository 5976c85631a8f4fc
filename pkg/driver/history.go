package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// History persists REPL input lines in a sqlite database.
type History struct {
	conn       *sqlite.Conn
	stmtInsert *sqlite.Stmt
	stmtRecent *sqlite.Stmt
}

// OpenHistory opens or creates the history database at path.
func OpenHistory(path string) (*History, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("history: create %s: %w", dir, err)
		}
	}
	conn, err := sqlite.OpenConn(path, sqlite.OpenReadWrite|sqlite.OpenCreate)
	if err != nil {
		return nil, fmt.Errorf("history: open %s: %w", path, err)
	}
	h := &History{conn: conn}
	if err := h.prepare(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("history: prepare %s: %w", path, err)
	}
	return h, nil
}

func (h *History) prepare() error {
	err := sqlitex.ExecuteTransient(h.conn, "CREATE TABLE IF NOT EXISTS history "+
		"(`id` INTEGER PRIMARY KEY AUTOINCREMENT, `line` TEXT NOT NULL, `created_at` INTEGER NOT NULL);", &sqlitex.ExecOptions{})
	if err != nil {
		return err
	}
	h.stmtInsert, err = h.conn.Prepare("INSERT INTO history (`line`, `created_at`) VALUES ($line, $created_at);")
	if err != nil {
		return err
	}
	h.stmtRecent, err = h.conn.Prepare("SELECT `line` FROM " +
		"(SELECT `id`, `line` FROM history ORDER BY `id` DESC LIMIT $limit) ORDER BY `id` ASC;")
	return err
}

// Append records one input line.
func (h *History) Append(line string) error {
	defer h.stmtInsert.Reset()
	h.stmtInsert.SetText("$line", line)
	h.stmtInsert.SetInt64("$created_at", time.Now().Unix())
	if _, err := h.stmtInsert.Step(); err != nil {
		return fmt.Errorf("history: append: %w", err)
	}
	return nil
}

// Recent returns up to limit of the latest lines, oldest first.
func (h *History) Recent(limit int) ([]string, error) {
	defer h.stmtRecent.Reset()
	h.stmtRecent.SetInt64("$limit", int64(limit))
	var lines []string
	for {
		hasRow, err := h.stmtRecent.Step()
		if err != nil {
			return nil, fmt.Errorf("history: read: %w", err)
		}
		if !hasRow {
			break
		}
		lines = append(lines, h.stmtRecent.GetText("line"))
	}
	return lines, nil
}

// Clear deletes every recorded line.
func (h *History) Clear() error {
	if err := sqlitex.ExecuteTransient(h.conn, "DELETE FROM history;", &sqlitex.ExecOptions{}); err != nil {
		return fmt.Errorf("history: clear: %w", err)
	}
	return nil
}

// Close releases the database connection.
func (h *History) Close() error {
	return h.conn.Close()
}
