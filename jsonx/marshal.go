package jsonx

import "encoding/json"

// Marshaler serializes a value to its wire text. It is the serializer
// collaborator of the form-data builder; nested structures of any depth
// are the implementation's concern.
type Marshaler interface {
	Marshal(v any) ([]byte, error)
}

type compactMarshaler struct{}

var _ Marshaler = (*compactMarshaler)(nil)

// NewMarshaler returns the default Marshaler, producing compact
// encoding/json output.
func NewMarshaler() Marshaler {
	return compactMarshaler{}
}

func (compactMarshaler) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}
