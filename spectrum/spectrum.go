// Package spectrum holds the seven-band light spectrum table and the
// single-band selection shown in the detail panel.
package spectrum

import (
	"errors"
	"fmt"

	"lightwork-server/models"
)

// BandCount is the fixed number of bands in the table.
const BandCount = 7

var ErrBandOutOfRange = errors.New("spectrum band out of range")

// Table is the read-only band table.
type Table struct {
	bands []models.SpectrumBand
}

// NewTable copies bands into a Table.
func NewTable(bands []models.SpectrumBand) (*Table, error) {
	if len(bands) != BandCount {
		return nil, fmt.Errorf("spectrum table must hold %d bands, got %d", BandCount, len(bands))
	}
	return &Table{bands: append([]models.SpectrumBand(nil), bands...)}, nil
}

// Bands returns a copy of the table in display order.
func (t *Table) Bands() []models.SpectrumBand {
	return append([]models.SpectrumBand(nil), t.bands...)
}

// Band returns the band at index.
func (t *Table) Band(index int) (models.SpectrumBand, error) {
	if index < 0 || index >= len(t.bands) {
		return models.SpectrumBand{}, fmt.Errorf("%w: %d", ErrBandOutOfRange, index)
	}
	return t.bands[index], nil
}

// Selection is the currently selected band, unset by default.
type Selection struct {
	index int
	set   bool
}

// Index returns the selected band index and whether one is selected.
func (s Selection) Index() (int, bool) {
	return s.index, s.set
}

// Select replaces the selection. An out-of-range index leaves it unchanged.
func (t *Table) Select(s Selection, index int) (Selection, error) {
	if index < 0 || index >= len(t.bands) {
		return s, fmt.Errorf("%w: %d", ErrBandOutOfRange, index)
	}
	return Selection{index: index, set: true}, nil
}

// Selected returns the selected band, if any.
func (t *Table) Selected(s Selection) (models.SpectrumBand, bool) {
	if !s.set {
		return models.SpectrumBand{}, false
	}
	b, err := t.Band(s.index)
	return b, err == nil
}
