package corpus

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ImportFile copies the PDF at src into the corpus directory and returns the
// destination path. A file that already lives inside dir is returned as-is.
// Name collisions with different content get a numeric suffix rather than
// overwriting an existing corpus document.
func ImportFile(src, dir string) (string, error) {
	abs, err := filepath.Abs(src)
	if err != nil {
		return "", err
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	if filepath.Dir(abs) == absDir {
		return abs, nil
	}

	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create corpus dir %s: %w", absDir, err)
	}

	dst := uniqueDestPath(filepath.Join(absDir, filepath.Base(abs)))
	if err := copyFile(abs, dst); err != nil {
		return "", fmt.Errorf("cannot copy %s into corpus: %w", src, err)
	}
	return dst, nil
}

// uniqueDestPath returns dst, or dst with a numeric suffix inserted before
// the extension when dst already exists: law.pdf → law-1.pdf, law-2.pdf, ...
func uniqueDestPath(dst string) string {
	if _, err := os.Stat(dst); os.IsNotExist(err) {
		return dst
	}
	ext := filepath.Ext(dst)
	base := strings.TrimSuffix(dst, ext)
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d%s", base, i, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}

// copyFile copies src to dst, preserving permissions.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode())
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
