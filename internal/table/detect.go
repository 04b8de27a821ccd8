package table

import (
	"path/filepath"
	"strings"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatTSV  Format = "tsv"
	FormatXLSX Format = "xlsx"
)

// DetectFormat picks the decoder from the file name. Anything that is not
// tab-separated or a workbook is read as CSV.
func DetectFormat(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".tsv", ".txt":
		return FormatTSV
	case ".xlsx", ".xlsm":
		return FormatXLSX
	default:
		return FormatCSV
	}
}

func (f Format) delimiter() rune {
	if f == FormatTSV {
		return '\t'
	}
	return ','
}

// wrongDelimiter reports whether a header read as a single column looks like
// it was written with another delimiter.
func wrongDelimiter(header []string, used rune) bool {
	if len(header) != 1 {
		return false
	}
	other := "\t"
	if used == '\t' {
		other = ","
	}
	return strings.Contains(header[0], other) || strings.Contains(header[0], ";")
}
