package avro

import (
	"fmt"
	"sync"

	"github.com/linkedin/goavro/v2"
)

// Encoder wraps a goavro codec for thread-safe encoding and decoding.
type Encoder struct {
	codec *goavro.Codec
	mu    sync.Mutex
}

func NewEncoder(schema string) (*Encoder, error) {
	codec, err := goavro.NewCodec(schema)
	if err != nil {
		return nil, fmt.Errorf("parse avro schema: %w", err)
	}
	return &Encoder{codec: codec}, nil
}

// NewWorkOrderEncoder builds an encoder for the work-order schema.
func NewWorkOrderEncoder() (*Encoder, error) {
	return NewEncoder(WorkOrderSchema)
}

// Encode serializes a native map (union-wrapped, see mapper.go) to Avro
// binary.
func (e *Encoder) Encode(native map[string]interface{}) ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	data, err := e.codec.BinaryFromNative(nil, native)
	if err != nil {
		return nil, fmt.Errorf("avro encode: %w", err)
	}
	return data, nil
}

// Decode deserializes Avro binary back into the native union-wrapped map.
func (e *Encoder) Decode(data []byte) (map[string]interface{}, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	native, _, err := e.codec.NativeFromBinary(data)
	if err != nil {
		return nil, fmt.Errorf("avro decode: %w", err)
	}
	m, ok := native.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("avro decode: unexpected native type %T", native)
	}
	return m, nil
}
