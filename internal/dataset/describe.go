package dataset

import (
	"strings"

	"github.com/heartmarshall/slangbridge/internal/dataset/tabular"
	"github.com/heartmarshall/slangbridge/internal/domain"
	"github.com/heartmarshall/slangbridge/internal/lexicon"
)

// Summary describes a raw dataset before cleaning.
type Summary struct {
	Rows    int
	Columns []string
	// Languages counts rows by the raw language cell, trimmed; blank cells count under "".
	Languages map[string]int
	// Missing counts blank cells per column.
	Missing map[string]int
}

// Describe summarizes a raw table.
func Describe(tbl tabular.Table, cols Columns) Summary {
	s := Summary{
		Rows:      len(tbl.Rows),
		Columns:   tbl.Header,
		Languages: make(map[string]int),
		Missing:   make(map[string]int, len(tbl.Header)),
	}
	for _, h := range tbl.Header {
		s.Missing[h] = 0
	}
	for _, row := range tbl.Rows {
		for _, h := range tbl.Header {
			if strings.TrimSpace(row.Get(h)) == "" {
				s.Missing[h]++
			}
		}
		s.Languages[strings.TrimSpace(row.Get(cols.Language))]++
	}
	return s
}

// ScanRows adapts raw rows for lexicon.Scan. Rows whose language cell does
// not parse are left untagged and land in the English bucket.
func ScanRows(rows []tabular.Row, cols Columns) []lexicon.ScanRow {
	out := make([]lexicon.ScanRow, len(rows))
	for i, row := range rows {
		lang, _ := domain.ParseLanguageTag(row.Get(cols.Language))
		out[i] = lexicon.ScanRow{Text: row.Get(cols.Source), Language: lang}
	}
	return out
}
