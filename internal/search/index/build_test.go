package index

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lextransition/lexcite-cli/internal/corpus"
)

// fakeProvider embeds text into a fixed 2-dim vector keyed on content so
// tests get deterministic, distinguishable embeddings without a model.
type fakeProvider struct {
	calls []string
	fail  bool
}

func (p *fakeProvider) ModelID() string { return "fake:unit" }
func (p *fakeProvider) Dim() int        { return 2 }

func (p *fakeProvider) Embed(_ context.Context, text string) ([]float32, error) {
	if p.fail {
		return nil, fmt.Errorf("provider down")
	}
	p.calls = append(p.calls, text)
	if strings.Contains(text, "murder") {
		return []float32{1, 0}, nil
	}
	return []float32{0, 1}, nil
}

func buildPages() []corpus.Page {
	return []corpus.Page{
		{File: "bns.pdf", Number: 1, Text: "murder is punishable with imprisonment for life"},
		{File: "bns.pdf", Number: 2, Text: "theft shall be punished"},
	}
}

func TestBuild_PersistsLoadableIndex(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "search")
	prov := &fakeProvider{}

	idx, err := Build(context.Background(), prov, buildPages(), BuildOptions{OutDir: outDir, Normalize: true})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if idx.Manifest.ModelID != "fake:unit" || idx.Manifest.Dim != 2 || !idx.Manifest.Normalize {
		t.Fatalf("unexpected manifest: %+v", idx.Manifest)
	}

	loaded, err := Load(outDir)
	if err != nil {
		t.Fatalf("Load after Build: %v", err)
	}
	if len(loaded.Pages) != 2 {
		t.Fatalf("unexpected pages: %+v", loaded.Pages)
	}

	hits, err := loaded.Search([]float32{1, 0}, 1)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) != 1 || hits[0].Page != 1 {
		t.Fatalf("unexpected hits: %+v", hits)
	}
}

func TestBuild_ReplacesExistingIndexWholesale(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "search")
	prov := &fakeProvider{}

	if _, err := Build(context.Background(), prov, buildPages(), BuildOptions{OutDir: outDir, Normalize: true}); err != nil {
		t.Fatalf("first Build: %v", err)
	}
	single := []corpus.Page{{File: "only.pdf", Number: 1, Text: "theft"}}
	if _, err := Build(context.Background(), prov, single, BuildOptions{OutDir: outDir, Normalize: true}); err != nil {
		t.Fatalf("second Build: %v", err)
	}

	loaded, err := Load(outDir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded.Pages) != 1 || loaded.Pages[0].File != "only.pdf" {
		t.Fatalf("old index survived: %+v", loaded.Pages)
	}
	if _, err := os.Stat(outDir + ".bak"); !os.IsNotExist(err) {
		t.Fatalf("backup dir left behind: %v", err)
	}
}

func TestBuildInMemory_TruncatesEmbedInput(t *testing.T) {
	prov := &fakeProvider{}
	long := []corpus.Page{{File: "x.pdf", Number: 1, Text: strings.Repeat("murder ", 400)}}

	if _, err := BuildInMemory(context.Background(), prov, long, false); err != nil {
		t.Fatalf("BuildInMemory: %v", err)
	}
	if len(prov.calls) != 1 {
		t.Fatalf("expected 1 embed call, got %d", len(prov.calls))
	}
	if len(prov.calls[0]) > 1000 {
		t.Fatalf("embed input not truncated: %d bytes", len(prov.calls[0]))
	}
}

func TestBuildInMemory_NoPagesFails(t *testing.T) {
	if _, err := BuildInMemory(context.Background(), &fakeProvider{}, nil, false); err == nil {
		t.Fatal("expected error for empty page set")
	}
}

func TestBuildInMemory_ProviderErrorPropagates(t *testing.T) {
	if _, err := BuildInMemory(context.Background(), &fakeProvider{fail: true}, buildPages(), false); err == nil {
		t.Fatal("expected provider error to propagate")
	}
}

func TestTruncateText_RuneSafe(t *testing.T) {
	s := strings.Repeat("§", 600) // 2 bytes per rune
	out := truncateText(s, 1001)
	if len(out) > 1001 {
		t.Fatalf("too long: %d", len(out))
	}
	if len(out)%2 != 0 {
		t.Fatalf("split a rune: %d bytes", len(out))
	}
}
