package tabular

import (
	"encoding/csv"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/crypto/blake2b"

	"github.com/heartmarshall/slangbridge/internal/domain"
)

// Output column names.
const (
	ColSource    = "source_text"
	ColTarget    = "target_text"
	ColLanguage  = "language"
	ColRefPrefix = "target_ref_"
)

// FileInfo describes one written output file.
type FileInfo struct {
	Name     string `json:"name"`
	Rows     int    `json:"rows"`
	Checksum string `json:"blake2b_256"`
}

// WritePairs writes pairs as source_text,target_text,language.
func WritePairs(path string, pairs []domain.TranslationPair) (FileInfo, error) {
	records := make([][]string, len(pairs))
	for i, p := range pairs {
		records[i] = []string{p.Source, p.Target, p.Language.String()}
	}
	return writeCSV(path, []string{ColSource, ColTarget, ColLanguage}, records)
}

// WriteMultiRef writes records with the primary target in target_text and the
// alternates in target_ref_1..N, where N is the widest record in the file.
func WriteMultiRef(path string, recs []domain.MultiRefRecord) (FileInfo, error) {
	width := 0
	for _, r := range recs {
		width = max(width, len(r.Alternates))
	}

	header := []string{ColSource, ColTarget, ColLanguage}
	for i := 1; i <= width; i++ {
		header = append(header, ColRefPrefix+strconv.Itoa(i))
	}

	records := make([][]string, len(recs))
	for i, r := range recs {
		rec := make([]string, len(header))
		rec[0], rec[1], rec[2] = r.Source, r.Primary, r.Language.String()
		copy(rec[3:], r.Alternates)
		records[i] = rec
	}
	return writeCSV(path, header, records)
}

func writeCSV(path string, header []string, records [][]string) (FileInfo, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return FileInfo{}, fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return FileInfo{}, fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	h, err := newHash()
	if err != nil {
		return FileInfo{}, err
	}
	w := csv.NewWriter(io.MultiWriter(f, h))
	if err := w.Write(header); err != nil {
		return FileInfo{}, fmt.Errorf("write header: %w", err)
	}
	if err := w.WriteAll(records); err != nil {
		return FileInfo{}, fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return FileInfo{}, fmt.Errorf("close %s: %w", path, err)
	}

	return FileInfo{
		Name:     filepath.Base(path),
		Rows:     len(records),
		Checksum: hex.EncodeToString(h.Sum(nil)),
	}, nil
}

// Checksum returns the hex BLAKE2b-256 digest of a file.
func Checksum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	h, err := newHash()
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func newHash() (hash.Hash, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return nil, fmt.Errorf("init blake2b: %w", err)
	}
	return h, nil
}
