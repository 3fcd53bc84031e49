package source

// Value is the set of numeric types a variable-backed source can wrap.
type Value interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Numeric reports the live value of an externally-owned variable.
//
// The pointer is non-owning: the referenced storage must stay valid for the
// whole lifetime of the source. Nothing is cached, so a write to the
// variable between two queries is visible on the second query.
type Numeric[T Value] struct {
	name string
	v    *T
}

// NewNumeric wraps v as a data source named name.
func NewNumeric[T Value](name string, v *T) *Numeric[T] {
	return &Numeric[T]{name: name, v: v}
}

func (s *Numeric[T]) Name() string { return s.name }

func (s *Numeric[T]) Number() float64 { return float64(*s.v) }

func (s *Numeric[T]) Text() string { return Format(s.Number()) }
