package index

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Write writes index artifacts to dir: the manifest, the pages sidecar and
// the vector file. The three are always written together; Load refuses an
// index where any of them is missing.
func Write(dir string, manifest Manifest, pages []PageEntry, vectors []float32) error {
	if manifest.Dim <= 0 {
		return fmt.Errorf("invalid dim: %d", manifest.Dim)
	}
	if len(pages) == 0 {
		return fmt.Errorf("no pages to write")
	}
	if len(vectors) != len(pages)*manifest.Dim {
		return fmt.Errorf("vector length mismatch: got %d want %d", len(vectors), len(pages)*manifest.Dim)
	}
	if manifest.VectorFile == "" {
		manifest.VectorFile = "vectors.f32"
	}
	if manifest.PagesFile == "" {
		manifest.PagesFile = "pages.jsonl"
	}
	if manifest.CreatedAt == "" {
		manifest.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create index dir %s: %w", dir, err)
	}

	// manifest
	mb, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, "index_manifest.json"), mb, 0o644); err != nil {
		return fmt.Errorf("cannot write manifest: %w", err)
	}

	// pages jsonl
	pf, err := os.Create(filepath.Join(dir, manifest.PagesFile))
	if err != nil {
		return fmt.Errorf("cannot create pages file: %w", err)
	}
	bw := bufio.NewWriter(pf)
	for _, p := range pages {
		line, err := json.Marshal(p)
		if err != nil {
			_ = pf.Close()
			return err
		}
		if _, err := bw.Write(line); err != nil {
			_ = pf.Close()
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			_ = pf.Close()
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		_ = pf.Close()
		return err
	}
	if err := pf.Close(); err != nil {
		return err
	}

	// vectors
	vf, err := os.Create(filepath.Join(dir, manifest.VectorFile))
	if err != nil {
		return fmt.Errorf("cannot create vectors file: %w", err)
	}
	if err := binary.Write(vf, binary.LittleEndian, vectors); err != nil {
		_ = vf.Close()
		return fmt.Errorf("cannot write vectors: %w", err)
	}
	if err := vf.Close(); err != nil {
		return err
	}

	return nil
}
