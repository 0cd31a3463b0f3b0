package chooserui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"golang.org/x/text/unicode/norm"

	"github.com/datatug/filechooser/pkg/chooser"
)

var icons = map[chooser.IconKind]string{
	chooser.IconUp:     "⬆️ ",
	chooser.IconFolder: "📁",
	chooser.IconFile:   "📄",
}

// renderEntry draws any entry; only its IconKind changes the look.
func renderEntry(entry chooser.Entry) *tview.TableCell {
	text := icons[entry.Kind()] + tview.Escape(norm.NFC.String(entry.Name))
	return tview.NewTableCell(text).
		SetTextColor(entryColor(entry)).
		SetExpansion(1).
		SetReference(entry)
}

func entryColor(entry chooser.Entry) tcell.Color {
	switch entry.Kind() {
	case chooser.IconUp:
		return current.up
	case chooser.IconFolder:
		return current.folder
	default:
		return colorByFileName(entry.Name)
	}
}

var _ tview.TableContent = (*entryRows)(nil)

// entryRows is a read-only snapshot of one listing.
type entryRows struct {
	tview.TableContentReadOnly
	entries []chooser.Entry
	err     error
}

func newEntryRows(entries []chooser.Entry, err error) *entryRows {
	return &entryRows{entries: entries, err: err}
}

func (r *entryRows) hasStatusRow() bool {
	return r.err != nil || len(r.entries) == 0
}

func (r *entryRows) GetRowCount() int {
	if r.hasStatusRow() {
		return len(r.entries) + 1
	}
	return len(r.entries)
}

func (r *entryRows) GetColumnCount() int {
	return 1
}

func (r *entryRows) GetCell(row, col int) *tview.TableCell {
	if col != 0 || row < 0 {
		return nil
	}
	if row < len(r.entries) {
		return renderEntry(r.entries[row])
	}
	if row == len(r.entries) && r.hasStatusRow() {
		return r.statusCell()
	}
	return nil
}

// statusCell stands in for the missing children. A failed listing looks
// like an empty one; the cause is logged by the browser.
func (r *entryRows) statusCell() *tview.TableCell {
	return tview.NewTableCell("[::i]No entries[::-]").
		SetTextColor(current.up).
		SetSelectable(false)
}

func (r *entryRows) entryAt(row int) (chooser.Entry, bool) {
	if row < 0 || row >= len(r.entries) {
		return chooser.Entry{}, false
	}
	return r.entries[row], true
}
