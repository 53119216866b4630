package index

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gofrs/flock"

	"github.com/lextransition/lexcite-cli/internal/corpus"
	"github.com/lextransition/lexcite-cli/internal/embeddings"
)

const (
	// embedTextLimit bounds the page prefix sent to the embedding model so
	// model latency and memory stay bounded on long pages.
	embedTextLimit = 1000
	// metaSnippetLimit bounds the snippet stored in the metadata sidecar.
	metaSnippetLimit = 300

	buildLockTimeout = 30 * time.Second
)

// BuildOptions controls persisted index building.
type BuildOptions struct {
	OutDir    string
	Normalize bool
}

// Build embeds every page and writes a fresh index to opts.OutDir, replacing
// any prior persisted index wholesale.
func Build(ctx context.Context, prov embeddings.Provider, pages []corpus.Page, opts BuildOptions) (*Index, error) {
	idx, err := BuildInMemory(ctx, prov, pages, opts.Normalize)
	if err != nil {
		return nil, err
	}
	if err := Persist(idx, opts.OutDir); err != nil {
		return nil, err
	}
	return idx, nil
}

// BuildInMemory embeds every page and returns the resulting index without
// touching durable storage.
func BuildInMemory(ctx context.Context, prov embeddings.Provider, pages []corpus.Page, normalize bool) (*Index, error) {
	if prov == nil {
		return nil, fmt.Errorf("embeddings provider is required")
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("no pages to index")
	}

	var (
		entries []PageEntry
		vectors []float32
		dim     int
	)
	for _, p := range pages {
		emb, err := prov.Embed(ctx, truncateText(p.Text, embedTextLimit))
		if err != nil {
			return nil, fmt.Errorf("cannot embed %s page %d: %w", p.File, p.Number, err)
		}
		if dim == 0 {
			dim = len(emb)
		}
		if len(emb) != dim {
			return nil, fmt.Errorf("embedding dim changed mid-run: got %d want %d", len(emb), dim)
		}
		if normalize {
			emb = NormalizeL2(emb)
		}
		entries = append(entries, PageEntry{
			File:    p.File,
			Page:    p.Number,
			Snippet: metaSnippet(p.Text),
		})
		vectors = append(vectors, emb...)
	}

	manifest := Manifest{
		IndexVersion: 1,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
		ModelID:      prov.ModelID(),
		Dim:          dim,
		Normalize:    normalize,
		VectorFile:   "vectors.f32",
		PagesFile:    "pages.jsonl",
	}
	return &Index{Manifest: manifest, Pages: entries, Vectors: vectors}, nil
}

// Persist writes idx to outDir, replacing any prior persisted index
// wholesale. The artifacts are first written to a temporary sibling
// directory and atomically swapped in, so a concurrent reader sees either
// the fully-old or fully-new index. A file lock next to outDir serializes
// concurrent builds.
func Persist(idx *Index, outDir string) error {
	if outDir == "" {
		return fmt.Errorf("out dir is required")
	}
	parent := filepath.Dir(outDir)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return fmt.Errorf("cannot create index parent dir %s: %w", parent, err)
	}

	unlock, err := acquireBuildLock(filepath.Join(parent, "index.lock"), buildLockTimeout)
	if err != nil {
		return err
	}
	defer unlock()

	tmpDir, err := os.MkdirTemp(parent, ".index-build-*")
	if err != nil {
		return fmt.Errorf("cannot create temp index dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	if err := Write(tmpDir, idx.Manifest, idx.Pages, idx.Vectors); err != nil {
		return err
	}
	if err := AtomicSwap(tmpDir, outDir); err != nil {
		return fmt.Errorf("cannot install index: %w", err)
	}
	return nil
}

// AtomicSwap replaces destDir with srcDir by renaming.
func AtomicSwap(srcDir, destDir string) error {
	parent := filepath.Dir(destDir)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return err
	}
	backup := destDir + ".bak"
	_ = os.RemoveAll(backup)
	if _, err := os.Stat(destDir); err == nil {
		if err := os.Rename(destDir, backup); err != nil {
			return err
		}
	}
	if err := os.Rename(srcDir, destDir); err != nil {
		// rollback best-effort
		if _, stErr := os.Stat(backup); stErr == nil {
			_ = os.Rename(backup, destDir)
		}
		return err
	}
	_ = os.RemoveAll(backup)
	return nil
}

// acquireBuildLock obtains the per-index build lock, retrying until timeout.
func acquireBuildLock(lockPath string, timeout time.Duration) (func(), error) {
	l := flock.New(lockPath)
	deadline := time.Now().Add(timeout)
	for {
		locked, err := l.TryLock()
		if err != nil {
			return nil, fmt.Errorf("cannot acquire index build lock: %w", err)
		}
		if locked {
			return func() { _ = l.Unlock() }, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("another index build is in progress (lock: %s)", lockPath)
		}
		time.Sleep(200 * time.Millisecond)
	}
}

// metaSnippet builds the bounded sidecar snippet: a truncated page prefix
// with newlines collapsed to spaces.
func metaSnippet(text string) string {
	s := truncateText(text, metaSnippetLimit)
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.TrimSpace(s)
}

// truncateText cuts s to at most limit bytes without splitting a rune.
func truncateText(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
