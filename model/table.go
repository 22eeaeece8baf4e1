package model

// Table is row-oriented tabular data with an ordered header. Cols keeps
// duplicates in document order; ColsIndex resolves a name to its position
// and is last-write-wins when names repeat.
type Table struct {
	Name      string
	Cols      []string
	ColsIndex map[string]int
	Rows      Rows
}

func New(name string, cols []string) *Table {
	colsIndex := map[string]int{}
	for i, col := range cols {
		colsIndex[col] = i
	}
	return &Table{
		Name:      name,
		Cols:      cols,
		ColsIndex: colsIndex,
		Rows:      make(Rows, 0),
	}
}

func (t *Table) Append(row Row) {
	t.Rows = append(t.Rows, row)
}

func (t *Table) HasCol(col string) bool {
	_, ok := t.ColsIndex[col]
	return ok
}

// Value reads the named column out of a row of this table. Unknown names
// and short rows read as null.
func (t *Table) Value(row Row, col string) Value {
	i, ok := t.ColsIndex[col]
	if !ok || i >= len(row) {
		return Null()
	}
	return row[i]
}

// Select projects the table onto the listed columns, silently dropping
// names the table does not have.
func (t *Table) Select(cols ...string) *Table {
	kept := make([]string, 0, len(cols))
	for _, col := range cols {
		if t.HasCol(col) {
			kept = append(kept, col)
		}
	}
	result := New(t.Name, kept)
	for _, row := range t.Rows {
		projected := make(Row, len(kept))
		for i, col := range kept {
			projected[i] = t.Value(row, col)
		}
		result.Append(projected)
	}
	return result
}

// AppendCol adds a derived column on the right. Missing values are null.
func (t *Table) AppendCol(col string, values []Value) {
	t.ColsIndex[col] = len(t.Cols)
	t.Cols = append(t.Cols, col)
	for i := range t.Rows {
		v := Null()
		if i < len(values) {
			v = values[i]
		}
		t.Rows[i] = append(t.Rows[i], v)
	}
}
