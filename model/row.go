package model

type Row []Value

type Rows []Row

// Value is one cell: opaque text or null. Cell text is never typed, the
// export format does not distinguish numbers from strings.
type Value struct {
	S    string
	null bool
}

func String(s string) Value {
	return Value{S: s}
}

func Null() Value {
	return Value{null: true}
}

func (v Value) IsNull() bool {
	return v.null
}

// Field renders the value for delimited output, null as empty field.
func (v Value) Field() string {
	if v.null {
		return ""
	}
	return v.S
}

func (v Value) Equals(o Value) bool {
	if v.null || o.null {
		return false
	}
	return v.S == o.S
}
