package pricing

import (
	"context"

	"luppolo.dev/Luppolo/pkg/model"
)

// EntryField names one mutable field of a working-list entry.
type EntryField string

const (
	FieldSize   EntryField = "size"
	FieldPrice  EntryField = "price"
	FieldFormat EntryField = "format"
)

// PriceReplacer is the slice of the repository the editor needs: a wholesale
// replacement of one offering's flexible price list.
type PriceReplacer interface {
	ReplacePrices(ctx context.Context, offeringID uint, kind model.OfferingKind, entries []model.PriceEntry) error
}

// Editor accumulates edits to one offering's price list in memory and
// submits the complete result in one replace. The working list survives a
// failed submit untouched so the caller can retry without re-entering
// anything.
type Editor struct {
	offeringID uint
	kind       model.OfferingKind
	entries    []model.PriceEntry
	replacer   PriceReplacer
}

// NewEditor seeds an editor from the offering's normalized price list.
func NewEditor(offering model.Offering, replacer PriceReplacer) *Editor {
	return &Editor{
		offeringID: offering.ID,
		kind:       offering.Kind,
		entries:    Normalize(offering),
		replacer:   replacer,
	}
}

// Entries returns a copy of the working list.
func (e *Editor) Entries() []model.PriceEntry {
	entries := make([]model.PriceEntry, len(e.entries))
	copy(entries, e.entries)

	return entries
}

// AddEntry appends to the working list. Blank fields are allowed here;
// incomplete rows are dropped at submit time instead.
func (e *Editor) AddEntry(entry model.PriceEntry) {
	e.entries = append(e.entries, entry)
}

// UpdateEntry mutates one field of the entry at index. An out-of-range
// index is a programming error and panics like any slice index.
func (e *Editor) UpdateEntry(index int, field EntryField, value string) {
	switch field {
	case FieldSize:
		e.entries[index].Size = value
	case FieldPrice:
		e.entries[index].Price = value
	case FieldFormat:
		e.entries[index].Format = value
	}
}

// RemoveEntry removes the entry at index. Entries are positional, so the
// remainder simply shifts down.
func (e *Editor) RemoveEntry(index int) {
	e.entries = append(e.entries[:index], e.entries[index+1:]...)
}

// Replace loads a complete working list, discarding the current one. This
// is how a finished client edit session lands in the editor before submit.
func (e *Editor) Replace(entries []model.PriceEntry) {
	e.entries = make([]model.PriceEntry, len(entries))
	copy(e.entries, entries)
}

// Submit filters the working list to complete rows and replaces the stored
// price list with them. The filtered list actually sent is returned. On
// failure the working list is left exactly as it was.
func (e *Editor) Submit(ctx context.Context) ([]model.PriceEntry, error) {
	complete := FilterComplete(e.entries)

	if err := e.replacer.ReplacePrices(ctx, e.offeringID, e.kind, complete); err != nil {
		return nil, err
	}

	return complete, nil
}
