// Package pipeline provides the core rendering pipeline for Kintree.
//
// This package implements the complete fetch → compose → render pipeline
// that can be used by CLI, server, and TUI components. By centralizing
// this logic, we ensure consistent behavior across all entry points and
// avoid code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Fetch: Resolve the relationship set for a person from a provider
//  2. Compose: Lay out the three-row family tree frame
//  3. Render: Generate output in various formats (SVG, JSON, DOT)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(prov, cache, logger)
//	opts := pipeline.Options{
//	    PersonID: "marie",
//	    OwnTree:  true,
//	    Formats:  []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/kintreeapp/kintree/pkg/cache"
	"github.com/kintreeapp/kintree/pkg/errors"
	"github.com/kintreeapp/kintree/pkg/render/tree/layout"
	"github.com/kintreeapp/kintree/pkg/render/tree/styles"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, Server, and TUI
// =============================================================================

const (
	// DefaultFrameWidth is the default frame width in pixels. It matches
	// the layout engine's default so standalone renders and embedded
	// renders agree on geometry.
	DefaultFrameWidth = layout.DefaultFrameWidth

	// DefaultStyle is the default visual style.
	DefaultStyle = "classic"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
	FormatDOT:  true,
}

// ValidStyles is the set of supported visual styles.
var ValidStyles = map[string]bool{
	"classic": true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the rendering pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Fetch options
	PersonID string `json:"person_id"`
	Refresh  bool   `json:"refresh,omitempty"`

	// Compose options
	OwnTree    bool    `json:"own_tree,omitempty"`
	FrameWidth float64 `json:"frame_width,omitempty"`

	// Render options
	Formats     []string `json:"formats,omitempty"`
	Style       string   `json:"style,omitempty"`
	HrefBase    string   `json:"href_base,omitempty"`
	AddHref     string   `json:"add_href,omitempty"`
	Interactive bool     `json:"interactive,omitempty"`
	Detailed    bool     `json:"detailed,omitempty"` // Include lifespans in DOT labels

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, json, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return errors.New(errors.ErrCodeInvalidStyle,
			"invalid style: %q (must be: classic)", style)
	}
	return nil
}

// StyleFor returns the style implementation for a validated style name.
func StyleFor(style string) (styles.Style, error) {
	if err := ValidateStyle(style); err != nil {
		return nil, err
	}
	return styles.Classic{}, nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent - calling it multiple times has
// the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := errors.ValidatePersonID(o.PersonID); err != nil {
		return err
	}

	if o.FrameWidth == 0 {
		o.FrameWidth = DefaultFrameWidth
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:      format,
		Style:       o.Style,
		OwnTree:     o.OwnTree,
		FrameWidth:  o.FrameWidth,
		HrefBase:    o.HrefBase,
		AddHref:     o.AddHref,
		Interactive: o.Interactive,
		Detailed:    o.Detailed,
	}
}
