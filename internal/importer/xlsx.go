package importer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/tealeg/xlsx"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// DetectFormat picks the parser from the file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("unsupported file type %q (want .csv or .xlsx)", filepath.Ext(path))
}

type sheetRows struct {
	rows [][]string
	pos  int
}

func (s *sheetRows) Read() ([]string, error) {
	if s.pos >= len(s.rows) {
		return nil, io.EOF
	}
	r := s.rows[s.pos]
	s.pos++
	return r, nil
}

// NewXLSXImporter reads the first sheet of a workbook.
func NewXLSXImporter(data []byte, w Writers, logger *log.Logger) (*Importer, error) {
	file, err := xlsx.OpenReaderAt(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	if len(file.Sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	sheet := file.Sheets[0]
	src := &sheetRows{rows: make([][]string, 0, len(sheet.Rows))}
	for _, r := range sheet.Rows {
		if r == nil {
			src.rows = append(src.rows, nil)
			continue
		}
		cells := make([]string, len(r.Cells))
		for j, c := range r.Cells {
			if c != nil {
				cells[j] = c.String()
			}
		}
		src.rows = append(src.rows, cells)
	}
	return newImporter(src, w, logger), nil
}
