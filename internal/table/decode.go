package table

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"faersview/internal"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Load decodes an uploaded export. The format follows the file name.
func Load(name string, r io.Reader) (*Table, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	src := internal.TableSource{Kind: internal.SourceFile, Name: name, LoadedAt: time.Now().UTC()}
	return Decode(DetectFormat(name), content, src)
}

func Decode(format Format, content []byte, src internal.TableSource) (*Table, error) {
	switch format {
	case FormatXLSX:
		return decodeXLSX(content, src)
	case FormatCSV, FormatTSV:
		return decodeDelimited(content, format.delimiter(), src)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func decodeDelimited(content []byte, delim rune, src internal.TableSource) (*Table, error) {
	content = bytes.TrimPrefix(content, utf8BOM)
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%w: input is not valid UTF-8", ErrMalformed)
	}

	r := csv.NewReader(bytes.NewReader(content))
	r.Comma = delim
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: missing header row", ErrMalformed)
	}
	if wrongDelimiter(records[0], delim) {
		return nil, fmt.Errorf("%w: header has a single column, check the delimiter", ErrMalformed)
	}
	return FromRecords(records[0], records[1:], src)
}

func decodeXLSX(content []byte, src internal.TableSource) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrMalformed)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: missing header row", ErrMalformed)
	}
	return FromRecords(rows[0], rows[1:], src)
}
