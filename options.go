package scagnostics

import (
	"math"

	"github.com/scagviz/scagnostics/bin"
)

// Options configures the Scagnostics entry point. Every field is
// optional; zero values are replaced by their documented defaults.
type Options struct {
	// BinType selects the binning strategy. Only bin.Hexagon is
	// implemented; a zero value defaults to it.
	BinType bin.Type

	// StartBinGridSize is the initial hex-grid resolution the adaptive
	// binner searches from. Default 40.
	StartBinGridSize int

	// MinBins and MaxBins bound the accepted bin count. Defaults 50 and
	// 500; MinBins must not exceed MaxBins.
	MinBins, MaxBins int

	// IsNormalized skips the normalization stage when the caller has
	// already scaled points into [0,1]².
	IsNormalized bool

	// IsBinned skips binning entirely, treating points as sites
	// directly — each distinct input point becomes its own zero-radius
	// bin.
	IsBinned bool

	// OutlyingUpperBound, if non-nil, overrides the IQR-derived ω used
	// to prune outlying MST edges.
	OutlyingUpperBound *float64

	// Verbose enables diagnostic logging from the binning stage
	// (non-convergence warnings).
	Verbose bool
}

func (o Options) withDefaults() Options {
	if o.BinType == "" {
		o.BinType = bin.Hexagon
	}
	if o.StartBinGridSize <= 0 {
		o.StartBinGridSize = 40
	}
	if o.MinBins <= 0 {
		o.MinBins = 50
	}
	if o.MaxBins <= 0 {
		o.MaxBins = 500
	}
	return o
}

// Validate reports ErrInvalidOption for malformed fields: negative
// sizes, MinBins > MaxBins, an unrecognized BinType, or a non-finite
// OutlyingUpperBound. Negative sizes are checked before defaults are
// applied; the remaining checks run on the defaulted values. Called
// internally by Scagnostics; exported so callers can validate Options
// before use.
func (o Options) Validate() error {
	if o.StartBinGridSize < 0 || o.MinBins < 0 || o.MaxBins < 0 {
		return ErrInvalidOption
	}
	o = o.withDefaults()
	if o.BinType != bin.Hexagon {
		return ErrInvalidOption
	}
	if o.MinBins > o.MaxBins {
		return ErrInvalidOption
	}
	if o.OutlyingUpperBound != nil && (math.IsNaN(*o.OutlyingUpperBound) || math.IsInf(*o.OutlyingUpperBound, 0)) {
		return ErrInvalidOption
	}
	return nil
}
