package wire

// State records how an optional key appeared in the source document.
type State uint8

const (
	// StateAbsent means the key was not present at all.
	StateAbsent State = iota
	// StateNull means the key was present with a JSON null.
	StateNull
	// StatePresent means the key carried a value.
	StatePresent
)

func (s State) String() string {
	switch s {
	case StateNull:
		return "null"
	case StatePresent:
		return "present"
	default:
		return "absent"
	}
}

// Field is an optional value that remembers whether it was never set,
// explicitly cleared (null) or populated. The zero value is absent.
type Field[T any] struct {
	state State
	value T
}

// Some returns a present field holding v.
func Some[T any](v T) Field[T] {
	return Field[T]{state: StatePresent, value: v}
}

// Nil returns a field that is present but null.
func Nil[T any]() Field[T] {
	return Field[T]{state: StateNull}
}

func (f Field[T]) State() State    { return f.state }
func (f Field[T]) IsAbsent() bool  { return f.state == StateAbsent }
func (f Field[T]) IsNull() bool    { return f.state == StateNull }
func (f Field[T]) IsPresent() bool { return f.state == StatePresent }
func (f Field[T]) IsZero() bool    { return f.state == StateAbsent }
func (f Field[T]) Get() (T, bool)  { return f.value, f.state == StatePresent }
func (f Field[T]) Or(def T) T {
	if f.state == StatePresent {
		return f.value
	}
	return def
}

// Ptr returns a pointer to the held value, or nil when the field is not present.
func (f *Field[T]) Ptr() *T {
	if f.state != StatePresent {
		return nil
	}
	return &f.value
}

// optional lets the codec reach into any Field[T] without knowing T.
type optional interface {
	fieldState() State
	setState(State)
	slot() any
}

func (f *Field[T]) fieldState() State { return f.state }
func (f *Field[T]) setState(s State)  { f.state = s }
func (f *Field[T]) slot() any         { return &f.value }

// MarshalJSON lets Field values pass through encoding/json. Absent fields
// should be dropped with the omitzero tag option.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if f.state != StatePresent {
		return []byte("null"), nil
	}
	return Marshal(f.value)
}

// UnmarshalJSON decodes a present or null value. A missing key never
// reaches this method, leaving the field absent.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	return decodeOptional(data, f, "", false)
}
