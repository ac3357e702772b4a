// Package nddata holds the generic data-container contract shared by spectral
// types: an intensity array plus optional per-sample uncertainty and mask.
// Spectrum composes an NDData rather than inheriting container behavior, so
// the storage contract stays in one place.
package nddata

import (
	"github.com/heliogo/spectra/pkg/errors"
)

// NDData is a one-dimensional data container with optional per-sample
// standard deviations and an optional boolean exclusion mask. Uncertainty and
// Mask are nil when absent; when present they are the same length as Data.
type NDData struct {
	Data        []float64
	Uncertainty []float64
	Mask        []bool
}

// Option configures optional container fields during construction.
type Option func(*NDData)

// WithUncertainty attaches per-sample standard deviations.
func WithUncertainty(uncertainty []float64) Option {
	return func(n *NDData) {
		n.Uncertainty = uncertainty
	}
}

// WithMask attaches a per-sample exclusion mask. Masked samples are excluded
// from weighted fits.
func WithMask(mask []bool) Option {
	return func(n *NDData) {
		n.Mask = mask
	}
}

// New validates and builds an NDData. Data must be non-empty; uncertainty and
// mask, when given, must match its length.
func New(data []float64, opts ...Option) (NDData, error) {
	if len(data) == 0 {
		return NDData{}, errors.Wrap(errors.ErrEmptyData, "nddata.New")
	}

	n := NDData{Data: data}
	for _, opt := range opts {
		opt(&n)
	}

	if n.Uncertainty != nil && len(n.Uncertainty) != len(data) {
		return NDData{}, errors.NewDimensionError("nddata.New: uncertainty", len(data), len(n.Uncertainty))
	}
	if n.Mask != nil && len(n.Mask) != len(data) {
		return NDData{}, errors.NewDimensionError("nddata.New: mask", len(data), len(n.Mask))
	}
	return n, nil
}

// HasUncertainty reports whether per-sample standard deviations are attached.
func (n NDData) HasUncertainty() bool {
	return n.Uncertainty != nil
}

// Len returns the number of samples.
func (n NDData) Len() int {
	return len(n.Data)
}
