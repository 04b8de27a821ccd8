package table

import (
	_ "embed"
	"time"

	"faersview/internal"
)

//go:embed sample.csv
var sampleCSV []byte

// Sample returns the built-in demonstration case.
func Sample() (*Table, error) {
	src := internal.TableSource{Kind: internal.SourceSample, Name: "sample.csv", LoadedAt: time.Now().UTC()}
	return Decode(FormatCSV, sampleCSV, src)
}
