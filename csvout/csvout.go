package csvout

import (
	"bufio"
	"encoding/csv"
	"os"

	"github.com/UnaiZubeldia/PCM-CDB-CSV/file"
	"github.com/UnaiZubeldia/PCM-CDB-CSV/model"
	"github.com/pkg/errors"
)

// Write serializes a table as delimited text: one header row, then the
// data rows in table order. Nulls become empty fields.
func Write(path string, t *model.Table, comma rune) error {
	f, err := file.New(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer f.Close()
	buf := bufio.NewWriter(f)
	w := csv.NewWriter(buf)
	w.Comma = comma
	if err := w.Write(t.Cols); err != nil {
		return errors.Wrap(err, "write header")
	}
	record := make([]string, len(t.Cols))
	for _, row := range t.Rows {
		for i := range record {
			record[i] = ""
			if i < len(row) {
				record[i] = row[i].Field()
			}
		}
		if err := w.Write(record); err != nil {
			return errors.Wrap(err, "write row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.Wrap(err, "flush csv")
	}
	return errors.Wrap(buf.Flush(), "flush csv")
}
