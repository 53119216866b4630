// Package engine coordinates corpus ingestion and the two retrieval
// strategies: term-frequency keyword search and embedding similarity search.
//
// Routing is a static decision per call, driven by configuration and not by
// content. When embedding-based retrieval is enabled but unusable the engine
// reports no result rather than silently substituting keyword scoring:
// swapping strategies behind the operator's back would change the
// evidentiary basis of a legal citation.
package engine

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lextransition/lexcite-cli/internal/config"
	"github.com/lextransition/lexcite-cli/internal/corpus"
	"github.com/lextransition/lexcite-cli/internal/embeddings"
	"github.com/lextransition/lexcite-cli/internal/search"
	"github.com/lextransition/lexcite-cli/internal/search/index"
)

// ErrPDFSupport is returned by indexing operations when PDF text extraction
// is entirely unavailable — as opposed to an empty or missing corpus, which
// indexes successfully to an empty index.
var ErrPDFSupport = corpus.ErrNoExtractor

// Engine owns all index state explicitly: the keyword index behind an atomic
// pointer (rebuilds swap a fully-built replacement in, so in-flight queries
// see either the old or the new index), the in-process embedding index from
// the latest build, and a lazily-loaded persisted embedding index.
type Engine struct {
	cfg    *config.Config
	caps   config.Capabilities
	loader *corpus.Loader
	log    *zap.Logger

	kw     atomic.Pointer[search.KeywordIndex]
	embMem atomic.Pointer[index.Index]

	diskMu    sync.Mutex
	embDisk   *index.Index
	diskTried bool

	provOnce sync.Once
	prov     embeddings.Provider
	provErr  error
}

// New constructs the engine. loader may be nil, in which case every indexing
// operation reports ErrPDFSupport. log may be nil.
func New(cfg *config.Config, loader *corpus.Loader, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	if loader == nil {
		loader = corpus.NewLoader(nil, log)
	}
	return &Engine{
		cfg:    cfg,
		caps:   config.DetectCapabilities(cfg, loader.Available()),
		loader: loader,
		log:    log,
	}
}

// Capabilities returns the capability descriptor detected at construction.
func (e *Engine) Capabilities() config.Capabilities { return e.caps }

// IndexDir rebuilds the page index from every PDF immediately inside dir,
// replacing the previous index wholesale. dir defaults to the configured
// corpus directory and is created when missing. An empty corpus is a valid,
// queryable, always-no-result index.
//
// When embedding retrieval is enabled and a provider is configured, the
// embedding index is rebuilt as well and persisted to the configured index
// directory. Failures in the embedding stage degrade to whatever succeeded —
// the keyword index stays valid, and an in-process embedding index survives
// a failed persist.
func (e *Engine) IndexDir(ctx context.Context, dir string) error {
	if dir == "" {
		dir = e.cfg.CorpusDir
	}
	pages, err := e.loader.LoadDir(dir)
	if err != nil {
		return err
	}

	e.kw.Store(search.NewKeywordIndex(pages))
	e.embMem.Store(nil)
	e.invalidateDiskIndex()
	e.log.Info("corpus indexed", zap.String("dir", dir), zap.Int("pages", len(pages)))

	if !e.cfg.UseEmbeddings || !e.caps.Embeddings || len(pages) == 0 {
		return nil
	}

	prov, err := e.provider()
	if err != nil {
		e.log.Warn("embedding provider unavailable, keyword index only", zap.Error(err))
		return nil
	}
	idx, err := index.BuildInMemory(ctx, prov, pages, true)
	if err != nil {
		e.log.Warn("embedding index build failed, keyword index only", zap.Error(err))
		return nil
	}
	e.embMem.Store(idx)
	if err := index.Persist(idx, e.cfg.IndexDir); err != nil {
		e.log.Warn("cannot persist embedding index", zap.Error(err))
	}
	return nil
}

// AddDocument re-indexes the parent directory of a document already written
// to disk. The rebuild is a full pass, not an incremental add.
func (e *Engine) AddDocument(ctx context.Context, path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		dir = e.cfg.CorpusDir
	}
	return e.IndexDir(ctx, dir)
}

// ClearIndex drops all in-process index state. Subsequent queries return no
// result until the next indexing pass.
func (e *Engine) ClearIndex() {
	e.kw.Store(search.NewKeywordIndex(nil))
	e.embMem.Store(nil)
	e.diskMu.Lock()
	e.embDisk = nil
	e.diskTried = true
	e.diskMu.Unlock()
}

// Search returns the topK best grounded citations for query, or nil when
// nothing grounded was found. Absence of results is not an error: the only
// error conditions are contract violations such as a non-positive topK.
func (e *Engine) Search(ctx context.Context, query string, topK int) ([]search.Hit, error) {
	if topK < 1 {
		return nil, fmt.Errorf("top_k must be a positive integer, got %d", topK)
	}
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}

	if e.cfg.UseEmbeddings {
		return e.semanticSearch(ctx, query, topK), nil
	}
	return e.keywordSearch(ctx, query, topK), nil
}

// keywordSearch queries the keyword index, triggering a lazy corpus build
// when no indexing pass has run yet.
func (e *Engine) keywordSearch(ctx context.Context, query string, topK int) []search.Hit {
	kw := e.kw.Load()
	if kw == nil {
		if err := e.IndexDir(ctx, e.cfg.CorpusDir); err != nil {
			e.log.Warn("lazy index build failed", zap.Error(err))
			return nil
		}
		kw = e.kw.Load()
	}
	if kw == nil || kw.Len() == 0 {
		return nil
	}
	return kw.Query(query, topK)
}

// semanticSearch routes an embeddings-enabled query: persisted index first,
// then the in-process index, and otherwise no result. It never falls back to
// keyword scoring.
func (e *Engine) semanticSearch(ctx context.Context, query string, topK int) []search.Hit {
	if !e.caps.Embeddings {
		return nil
	}
	prov, err := e.provider()
	if err != nil {
		e.log.Warn("embedding provider unavailable", zap.Error(err))
		return nil
	}
	qv, err := prov.Embed(ctx, query)
	if err != nil {
		e.log.Warn("cannot embed query", zap.Error(err))
		return nil
	}

	if idx := e.diskIndex(); idx != nil {
		hits, err := idx.Search(qv, topK)
		if err == nil && len(hits) > 0 {
			return hits
		}
		if err != nil {
			e.log.Warn("persisted index query failed", zap.Error(err))
		}
	}
	if idx := e.embMem.Load(); idx != nil {
		hits, err := idx.Search(qv, topK)
		if err != nil {
			e.log.Warn("in-process index query failed", zap.Error(err))
			return nil
		}
		return hits
	}
	return nil
}

// diskIndex lazily loads the persisted embedding index, at most once per
// rebuild cycle. A missing or unreadable index is not an error, just an
// unavailable tier.
func (e *Engine) diskIndex() *index.Index {
	e.diskMu.Lock()
	defer e.diskMu.Unlock()
	if e.diskTried {
		return e.embDisk
	}
	e.diskTried = true
	idx, err := index.Load(e.cfg.IndexDir)
	if err != nil {
		e.log.Debug("no persisted embedding index", zap.Error(err))
		return nil
	}
	e.embDisk = idx
	return idx
}

func (e *Engine) invalidateDiskIndex() {
	e.diskMu.Lock()
	e.embDisk = nil
	e.diskTried = false
	e.diskMu.Unlock()
}

// provider memoizes embedding provider construction so the backing model
// client is created at most once per process, even under concurrent first
// use.
func (e *Engine) provider() (embeddings.Provider, error) {
	e.provOnce.Do(func() {
		cfg, err := embeddings.LoadConfig()
		if err != nil {
			e.provErr = err
			return
		}
		e.prov, e.provErr = embeddings.NewFromConfig(cfg)
	})
	return e.prov, e.provErr
}
