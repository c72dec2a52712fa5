// Package source provides the row lists combo boxes pick from and the
// loaders that fill them.
package source

import (
	"context"
	"sync"

	"github.com/hy4ri/combobox-tui/internal/combobox"
)

// Row is one pickable entry.
type Row struct {
	ID     string
	Title  string
	Detail string
}

// Rows builds rows from plain titles. Each title doubles as the ID.
func Rows(titles ...string) []Row {
	rows := make([]Row, len(titles))
	for i, t := range titles {
		rows[i] = Row{ID: t, Title: t}
	}
	return rows
}

// Loader fetches a row list.
type Loader interface {
	Load(ctx context.Context) ([]Row, error)
}

// Static is a Loader over a fixed slice.
type Static []Row

// Load implements Loader.
func (s Static) Load(ctx context.Context) ([]Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]Row, len(s))
	copy(out, s)
	return out, nil
}

// List is a mutable row list usable as a combo box data source. Rows may be
// replaced from any goroutine; the combo box picks the new count up the
// next time it asks.
type List struct {
	mu     sync.RWMutex
	rows   []Row
	closed bool
}

// NewList returns a list holding rows.
func NewList(rows ...Row) *List {
	l := &List{}
	l.SetRows(rows)
	return l
}

// SetRows replaces the rows.
func (l *List) SetRows(rows []Row) {
	cp := make([]Row, len(rows))
	copy(cp, rows)

	l.mu.Lock()
	l.rows = cp
	l.mu.Unlock()
}

// Len returns the number of rows.
func (l *List) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.rows)
}

// Row returns row i.
func (l *List) Row(i int) (Row, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if i < 0 || i >= len(l.rows) {
		return Row{}, false
	}
	return l.rows[i], true
}

// Title returns the title of row i, or "" when i is out of range.
func (l *List) Title(i int) string {
	r, _ := l.Row(i)
	return r.Title
}

// Index returns the position of the row with the given ID, or
// combobox.NoSelection.
func (l *List) Index(id string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for i, r := range l.rows {
		if r.ID == id {
			return i
		}
	}
	return combobox.NoSelection
}

// RowCount implements combobox.RowProvider.
func (l *List) RowCount(*combobox.ComboBox) int {
	return l.Len()
}

// Close detaches the list from every combo box that uses it. A closed
// list reports itself unavailable and the combo box treats it as missing.
func (l *List) Close() {
	l.mu.Lock()
	l.closed = true
	l.mu.Unlock()
}

// Available implements combobox.Availability.
func (l *List) Available() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return !l.closed
}
