package reservation

import "github.com/savioruz/bookease/pkg/helper"

// Catalogue is the fixed ordered set of bookable time labels.
type Catalogue struct {
	labels []string
}

func NewCatalogue(raw string) *Catalogue {
	return &Catalogue{labels: helper.SplitList(raw)}
}

func (c *Catalogue) Labels() []string {
	out := make([]string, len(c.labels))
	copy(out, c.labels)

	return out
}

func (c *Catalogue) Known(label string) bool {
	return helper.IsKnownSlot(label, c.labels)
}

type SlotView struct {
	Label    string
	Booked   bool
	Selected bool
}

// Grid marks exactly the labels in booked as booked and every other label as selectable.
func (c *Catalogue) Grid(booked []string, selected string) []SlotView {
	grid := make([]SlotView, 0, len(c.labels))

	for _, l := range c.labels {
		grid = append(grid, SlotView{
			Label:    l,
			Booked:   helper.IsKnownSlot(l, booked),
			Selected: l == selected,
		})
	}

	return grid
}
