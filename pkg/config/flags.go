// File: pkg/config/flags.go
package config

import "slices"

// Flags holds the raw options as parsed from the command line.
// Composite flags are still present here; Expand folds them into the
// primitive flags they stand for.
type Flags struct {
	ShowAll                bool     `koanf:"show_all"`                  // Equivalent to ShowNonprinting + ShowEnds + ShowTabs.
	NumberNonblank         bool     `koanf:"number_nonblank"`           // Number non-blank output lines; overrides Number.
	ShowEndsAndNonprinting bool     `koanf:"show_ends_and_nonprinting"` // Equivalent to ShowNonprinting + ShowEnds.
	ShowEnds               bool     `koanf:"show_ends"`                 // Display '$' at the end of each line.
	Number                 bool     `koanf:"number"`                    // Number all output lines.
	SqueezeBlank           bool     `koanf:"squeeze_blank"`             // Suppress repeated blank output lines.
	ShowTabs               bool     `koanf:"show_tabs"`                 // Display a leading TAB as ^I.
	Ignored                bool     `koanf:"ignored"`                   // Accepted for compatibility, no effect.
	ShowNonprinting        bool     `koanf:"show_nonprinting"`          // Accepted; disables the fast path only.
	Files                  []string `koanf:"-"`                         // Input paths; empty or "-" means standard input.
}

// Expand returns a copy of f with the composite flags folded into their
// primitive flags. Expanding an already expanded value is a no-op.
func (f Flags) Expand() Flags {
	out := f
	out.Files = slices.Clone(f.Files)
	if f.ShowAll {
		out.ShowNonprinting = true
		out.ShowEnds = true
		out.ShowTabs = true
	}
	if f.ShowEndsAndNonprinting {
		out.ShowNonprinting = true
		out.ShowEnds = true
	}
	return out
}

// Merge returns f with every option that is enabled in defaults also
// enabled. Files are taken from f.
func (f Flags) Merge(defaults Flags) Flags {
	out := f
	out.ShowAll = f.ShowAll || defaults.ShowAll
	out.NumberNonblank = f.NumberNonblank || defaults.NumberNonblank
	out.ShowEndsAndNonprinting = f.ShowEndsAndNonprinting || defaults.ShowEndsAndNonprinting
	out.ShowEnds = f.ShowEnds || defaults.ShowEnds
	out.Number = f.Number || defaults.Number
	out.SqueezeBlank = f.SqueezeBlank || defaults.SqueezeBlank
	out.ShowTabs = f.ShowTabs || defaults.ShowTabs
	out.Ignored = f.Ignored || defaults.Ignored
	out.ShowNonprinting = f.ShowNonprinting || defaults.ShowNonprinting
	return out
}

// NumberingActive reports whether any line numbering mode is selected.
func (f Flags) NumberingActive() bool {
	return f.Number || f.NumberNonblank
}

// FastPathEligible reports whether files can be copied verbatim, without
// being split into lines.
func (f Flags) FastPathEligible() bool {
	return !(f.Number ||
		f.ShowEnds ||
		f.ShowTabs ||
		f.ShowNonprinting ||
		f.ShowEndsAndNonprinting ||
		f.NumberNonblank ||
		f.ShowAll ||
		f.SqueezeBlank)
}
