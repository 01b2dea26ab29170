// File: pkg/config/options.go
package config

import "slices"

// Numbering selects how output lines are numbered.
type Numbering int

const (
	// NumberNone leaves lines unnumbered.
	NumberNone Numbering = iota
	// NumberAll numbers every line.
	NumberAll
	// NumberNonBlank numbers only lines with non-whitespace content.
	NumberNonBlank
)

// String returns the mode name used in logs.
func (n Numbering) String() string {
	switch n {
	case NumberAll:
		return "all"
	case NumberNonBlank:
		return "nonblank"
	default:
		return "none"
	}
}

// Options is the resolved, read-only configuration consumed by the cat
// package. It never carries composite flags. The zero value copies every
// source verbatim from standard input.
type Options struct {
	showEnds        bool
	showTabs        bool
	squeezeBlank    bool
	showNonprinting bool
	numbering       Numbering
	files           []string
}

// Resolve expands the composite flags of f and freezes the result.
func Resolve(f Flags) Options {
	e := f.Expand()

	numbering := NumberNone
	switch {
	case e.NumberNonblank:
		numbering = NumberNonBlank
	case e.Number:
		numbering = NumberAll
	}

	return Options{
		showEnds:        e.ShowEnds,
		showTabs:        e.ShowTabs,
		squeezeBlank:    e.SqueezeBlank,
		showNonprinting: e.ShowNonprinting,
		numbering:       numbering,
		files:           e.Files,
	}
}

// ShowEnds reports whether '$' is written before each line end.
func (o Options) ShowEnds() bool { return o.showEnds }

// ShowTabs reports whether a leading TAB is rendered as ^I.
func (o Options) ShowTabs() bool { return o.showTabs }

// SqueezeBlank reports whether repeated blank lines are dropped.
func (o Options) SqueezeBlank() bool { return o.squeezeBlank }

// Numbering returns the selected numbering mode.
func (o Options) Numbering() Numbering { return o.numbering }

// Files returns a copy of the configured input paths.
func (o Options) Files() []string {
	return slices.Clone(o.files)
}

// NumberingActive reports whether lines receive a number prefix.
func (o Options) NumberingActive() bool {
	return o.numbering != NumberNone
}

// FastPathEligible reports whether no option changes the bytes of a source.
func (o Options) FastPathEligible() bool {
	return !o.showEnds && !o.showTabs && !o.squeezeBlank && !o.showNonprinting && o.numbering == NumberNone
}
