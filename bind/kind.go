package bind

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind classifies how a field was accounted for in an accumulator chain.
type Kind int

const (
	_ Kind = iota // skip zero value, it is the default for "not covered"

	KindBind
	KindBindOptional
	KindIgnore
)

// Binding reports how a single field is covered.
type Binding struct {
	Field string
	Kind  Kind
}
