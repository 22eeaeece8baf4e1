package parser

import (
	"bytes"
	"encoding/xml"
	"io"
	"os"
	"strconv"

	"github.com/UnaiZubeldia/PCM-CDB-CSV/consts"
	"github.com/UnaiZubeldia/PCM-CDB-CSV/file"
	"github.com/UnaiZubeldia/PCM-CDB-CSV/model"
	"github.com/pkg/errors"
)

var (
	ErrTableNotFound = errors.New("table not found")
	ErrNoDataTable   = errors.New("no table with data")
)

// Document is a parsed export file: every Table element in the tree in
// document order, parents before nested tables.
type Document struct {
	Tables []*Table
}

// Table is the column-oriented view the exporter writes. NumRows is kept
// as text, it is a selection hint and not a trusted count.
type Table struct {
	Name    string
	NumRows string
	Columns []*Column
}

type Column struct {
	Name  string
	Cells []model.Value
}

type frame struct {
	table *Table
	col   *Column
	cell  bool
}

func ParseFile(path string) (*Document, error) {
	f, err := file.New(path, os.O_RDONLY)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()
	data, err := f.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return Parse(data)
}

// Parse walks the whole document once. Columns count only as direct
// children of a Table, cells only as direct children of a Column. A cell
// without text content is null.
func Parse(data []byte) (*Document, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	doc := &Document{Tables: make([]*Table, 0)}
	stack := make([]*frame, 0)
	text := bytes.Buffer{}
	sawText := false
	for {
		token, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "parse xml")
		}
		switch x := token.(type) {
		case xml.StartElement:
			fr := &frame{}
			var parent *frame
			if len(stack) > 0 {
				parent = stack[len(stack)-1]
			}
			switch x.Name.Local {
			case consts.ElementTable:
				tb := &Table{Columns: make([]*Column, 0)}
				for _, a := range x.Attr {
					switch a.Name.Local {
					case consts.AttrTableName:
						tb.Name = a.Value
					case consts.AttrNumRows:
						tb.NumRows = a.Value
					}
				}
				doc.Tables = append(doc.Tables, tb)
				fr.table = tb
			case consts.ElementColumn:
				if parent != nil && parent.table != nil {
					col := &Column{}
					for _, a := range x.Attr {
						if a.Name.Local == consts.AttrColumnName {
							col.Name = a.Value
						}
					}
					parent.table.Columns = append(parent.table.Columns, col)
					fr.col = col
				}
			case consts.ElementCell:
				if parent != nil && parent.col != nil {
					fr.cell = true
					text.Reset()
					sawText = false
				}
			}
			stack = append(stack, fr)
		case xml.CharData:
			if len(stack) > 0 && stack[len(stack)-1].cell {
				text.Write(x)
				sawText = true
			}
		case xml.EndElement:
			if len(stack) == 0 {
				continue
			}
			fr := stack[len(stack)-1]
			if fr.cell {
				col := stack[len(stack)-2].col
				v := model.Null()
				if sawText {
					v = model.String(text.String())
				}
				col.Cells = append(col.Cells, v)
			}
			stack = stack[:len(stack)-1]
		}
	}
	return doc, nil
}

// Extract tabulates the named table, or the first table whose NumRows
// attribute is a positive integer when name is empty.
func Extract(doc *Document, name string) (*model.Table, error) {
	var selected *Table
	if name != "" {
		for _, tb := range doc.Tables {
			if tb.Name == name {
				selected = tb
				break
			}
		}
		if selected == nil {
			return nil, errors.Wrapf(ErrTableNotFound, "TableName=%s", name)
		}
	} else {
		for _, tb := range doc.Tables {
			n, err := strconv.Atoi(tb.NumRows)
			if err == nil && n > 0 {
				selected = tb
				break
			}
		}
		if selected == nil {
			return nil, errors.WithStack(ErrNoDataTable)
		}
	}
	return tabulate(selected), nil
}

// tabulate transposes a column-oriented table into rows. Columns without
// a name are dropped before the padding length is computed; the retained
// ones are right-padded with nulls to the longest cell list, so every row
// comes out as wide as the header.
func tabulate(tb *Table) *model.Table {
	cols := make([]string, 0, len(tb.Columns))
	data := make([][]model.Value, 0, len(tb.Columns))
	maxLen := 0
	for _, col := range tb.Columns {
		if col.Name == "" {
			continue
		}
		cols = append(cols, col.Name)
		data = append(data, col.Cells)
		if len(col.Cells) > maxLen {
			maxLen = len(col.Cells)
		}
	}
	result := model.New(tb.Name, cols)
	for i := 0; i < maxLen; i++ {
		row := make(model.Row, len(data))
		for j, cells := range data {
			if i < len(cells) {
				row[j] = cells[i]
			} else {
				row[j] = model.Null()
			}
		}
		result.Append(row)
	}
	return result
}
