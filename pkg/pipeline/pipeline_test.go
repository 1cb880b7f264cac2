package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/kintreeapp/kintree/pkg/cache"
	"github.com/kintreeapp/kintree/pkg/errors"
	"github.com/kintreeapp/kintree/pkg/provider/memory"
)

func TestValidateAndSetDefaults(t *testing.T) {
	opts := Options{PersonID: "marie"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.FrameWidth != DefaultFrameWidth {
		t.Errorf("FrameWidth = %v, want %v", opts.FrameWidth, DefaultFrameWidth)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want [svg]", opts.Formats)
	}
	if opts.Style != DefaultStyle {
		t.Errorf("Style = %q, want %q", opts.Style, DefaultStyle)
	}
}

func TestValidateAndSetDefaultsRejects(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"empty person id", Options{}, errors.ErrCodeInvalidPerson},
		{"bad format", Options{PersonID: "marie", Formats: []string{"pdf"}}, errors.ErrCodeInvalidFormat},
		{"bad style", Options{PersonID: "marie", Style: "neon"}, errors.ErrCodeInvalidStyle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("code = %v, want %v", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{FormatSVG, FormatJSON, FormatDOT}); err != nil {
		t.Errorf("valid formats rejected: %v", err)
	}
	if err := ValidateFormats([]string{FormatSVG, "png"}); err == nil {
		t.Error("invalid format accepted")
	}
}

func TestExecuteAllFormats(t *testing.T) {
	store := memory.New()
	focal := memory.SeedDemo(store)

	runner := NewRunner(store, nil, nil)
	result, err := runner.Execute(context.Background(), Options{
		PersonID: focal.ID,
		OwnTree:  true,
		Formats:  []string{FormatSVG, FormatJSON, FormatDOT},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	for _, format := range []string{FormatSVG, FormatJSON, FormatDOT} {
		if len(result.Artifacts[format]) == 0 {
			t.Errorf("artifact %q is empty", format)
		}
	}
	if !strings.Contains(string(result.Artifacts[FormatSVG]), focal.ID) {
		t.Error("SVG does not mention the selected person")
	}
	if !strings.Contains(string(result.Artifacts[FormatDOT]), "digraph pedigree") {
		t.Error("DOT artifact is not a pedigree digraph")
	}
	if result.Stats.PersonCount != 8 {
		t.Errorf("PersonCount = %d, want 8", result.Stats.PersonCount)
	}
	if result.CacheInfo.RenderHit {
		t.Error("first run should not be a cache hit")
	}
}

func TestExecuteRenderCache(t *testing.T) {
	store := memory.New()
	focal := memory.SeedDemo(store)

	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	runner := NewRunner(store, fc, nil)
	defer runner.Close()

	opts := Options{PersonID: focal.ID, Formats: []string{FormatSVG, FormatJSON}}

	first, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if first.CacheInfo.RenderHit {
		t.Error("first run should miss the cache")
	}

	second, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !second.CacheInfo.RenderHit {
		t.Error("second run should hit the cache")
	}
	if string(first.Artifacts[FormatSVG]) != string(second.Artifacts[FormatSVG]) {
		t.Error("cached SVG differs from rendered SVG")
	}

	refreshed, err := runner.Execute(context.Background(), Options{
		PersonID: focal.ID,
		Formats:  []string{FormatSVG, FormatJSON},
		Refresh:  true,
	})
	if err != nil {
		t.Fatalf("refresh Execute: %v", err)
	}
	if refreshed.CacheInfo.RenderHit {
		t.Error("refresh should bypass the cache")
	}
}

func TestExecutePersonNotFound(t *testing.T) {
	store := memory.New()
	memory.SeedDemo(store)

	runner := NewRunner(store, nil, nil)
	_, err := runner.Execute(context.Background(), Options{PersonID: "nobody"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, errors.ErrCodePersonNotFound) {
		t.Errorf("code = %v, want PERSON_NOT_FOUND", errors.GetCode(err))
	}
}

func TestExecuteNoProvider(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	_, err := runner.Execute(context.Background(), Options{PersonID: "marie"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, errors.ErrCodeInternal) {
		t.Errorf("code = %v, want INTERNAL_ERROR", errors.GetCode(err))
	}
}

func TestArtifactKeyOptsVaryByFormat(t *testing.T) {
	opts := Options{PersonID: "marie", Style: "classic"}
	k1 := cache.ArtifactKey(opts.PersonID, opts.ArtifactKeyOpts(FormatSVG))
	k2 := cache.ArtifactKey(opts.PersonID, opts.ArtifactKeyOpts(FormatJSON))
	if k1 == k2 {
		t.Error("different formats should produce different cache keys")
	}
}
