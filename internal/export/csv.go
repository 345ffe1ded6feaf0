// Package export renders query results as tabular text. It performs no
// I/O; serving the bytes is the web layer's job.
package export

import (
	"bytes"
	"encoding/csv"
)

// CSV renders a header row followed by one row per record, with
// RFC 4180 quoting (fields containing commas, quotes or newlines are
// quoted, embedded quotes doubled).
func CSV(columns []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(columns); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
