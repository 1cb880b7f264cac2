package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/kintreeapp/kintree/pkg/cache"
	"github.com/kintreeapp/kintree/pkg/errors"
	"github.com/kintreeapp/kintree/pkg/family"
	"github.com/kintreeapp/kintree/pkg/observability"
	"github.com/kintreeapp/kintree/pkg/provider"
	"github.com/kintreeapp/kintree/pkg/render/pedigree"
	"github.com/kintreeapp/kintree/pkg/render/tree"
	"github.com/kintreeapp/kintree/pkg/render/tree/sink"
)

// Runner encapsulates pipeline execution with artifact caching.
// CLI, server, and TUI can all use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the provider, cache, and logger - it
// doesn't store pipeline results. Multiple goroutines can safely use the
// same Runner with different options.
type Runner struct {
	Provider provider.Provider
	Cache    cache.Cache
	Logger   *log.Logger
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Set is the fetched relationship set.
	Set family.RelationshipSet

	// Tree is the composed three-row frame.
	Tree tree.Tree

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks whether rendering hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	PersonCount    int
	ConnectorCount int
	FetchTime      time.Duration
	ComposeTime    time.Duration
	RenderTime     time.Duration
}

// CacheInfo tracks cache hits for the render stage. Fetch and compose are
// never cached: relationship data must stay fresh and composition is cheap.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}

// NewRunner creates a runner with the given provider and cache.
// If c is nil, a NullCache is used (caching disabled).
// If logger is nil, the default logger is used.
func NewRunner(p provider.Provider, c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Provider: p,
		Cache:    c,
		Logger:   logger,
	}
}

// Execute runs the complete fetch → compose → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Fetch
	fetchStart := time.Now()
	observability.Pipeline().OnFetchStart(ctx, opts.PersonID)
	set, err := r.Fetch(ctx, opts)
	result.Stats.FetchTime = time.Since(fetchStart)
	fetched := 0
	if err == nil {
		fetched = set.Count()
	}
	observability.Pipeline().OnFetchComplete(ctx, opts.PersonID, fetched, result.Stats.FetchTime, err)
	if err != nil {
		return nil, err
	}
	result.Set = set

	// Stage 2: Compose
	composeStart := time.Now()
	observability.Pipeline().OnComposeStart(ctx, opts.PersonID)
	t, err := tree.Compose(set, tree.Options{
		FrameWidth: opts.FrameWidth,
		OwnTree:    opts.OwnTree,
	})
	observability.Pipeline().OnComposeComplete(ctx, opts.PersonID, len(t.Connectors), time.Since(composeStart), err)
	if err != nil {
		return nil, err
	}
	result.Tree = t
	result.Stats.ComposeTime = time.Since(composeStart)
	result.Stats.PersonCount = len(t.People())
	result.Stats.ConnectorCount = len(t.Connectors)

	r.Logger.Info("composed tree",
		"person", opts.PersonID,
		"people", result.Stats.PersonCount,
		"connectors", result.Stats.ConnectorCount,
		"duration", result.Stats.ComposeTime)

	// Stage 3: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, t, set, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Fetch resolves the relationship set for the person in opts.
// Relationship data is never cached here: the provider owns freshness.
func (r *Runner) Fetch(ctx context.Context, opts Options) (family.RelationshipSet, error) {
	if r.Provider == nil {
		return family.RelationshipSet{}, errors.New(errors.ErrCodeInternal, "no provider configured")
	}
	if err := errors.ValidatePersonID(opts.PersonID); err != nil {
		return family.RelationshipSet{}, err
	}

	set, err := r.Provider.FetchRelationshipSet(ctx, opts.PersonID)
	if err != nil {
		if errors.GetCode(err) != "" {
			return family.RelationshipSet{}, err
		}
		return family.RelationshipSet{}, errors.Wrap(errors.ErrCodeFetchFailed, err,
			"fetch relationships for %q", opts.PersonID)
	}
	return set, nil
}

// RenderWithCacheInfo renders artifacts with caching and returns cache hit
// info. All requested formats must come from cache for the run to count as
// a hit; a partial hit re-renders everything so formats stay consistent.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, t tree.Tree, set family.RelationshipSet, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	artifacts := make(map[string][]byte)

	if !opts.Refresh {
		allCached := true
		for _, format := range opts.Formats {
			key := cache.ArtifactKey(opts.PersonID, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, "artifact")
				artifacts[format] = data
			} else {
				observability.Cache().OnCacheMiss(ctx, "artifact")
				allCached = false
				break
			}
		}
		if allCached && len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil
		}
	}

	rendered := make(map[string][]byte)
	for _, format := range opts.Formats {
		data, err := r.renderFormat(t, set, format, opts)
		if err != nil {
			return nil, false, err
		}
		rendered[format] = data
	}

	for format, data := range rendered {
		key := cache.ArtifactKey(opts.PersonID, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, key, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards
// the cache hit info.
func (r *Runner) Render(ctx context.Context, t tree.Tree, set family.RelationshipSet, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, t, set, opts)
	return artifacts, err
}

func (r *Runner) renderFormat(t tree.Tree, set family.RelationshipSet, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		style, err := StyleFor(opts.Style)
		if err != nil {
			return nil, err
		}
		sinkOpts := []sink.SVGOption{sink.WithStyle(style)}
		if opts.HrefBase != "" {
			sinkOpts = append(sinkOpts, sink.WithHrefBase(opts.HrefBase))
		}
		if opts.AddHref != "" {
			sinkOpts = append(sinkOpts, sink.WithAddHref(opts.AddHref))
		}
		if opts.Interactive {
			sinkOpts = append(sinkOpts, sink.WithKeyboardActivation())
		}
		return sink.RenderSVG(t, sinkOpts...), nil

	case FormatJSON:
		return sink.RenderJSON(t)

	case FormatDOT:
		return []byte(pedigree.ToDOT(set, pedigree.Options{Detailed: opts.Detailed})), nil

	default:
		return nil, ValidateFormat(format)
	}
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
