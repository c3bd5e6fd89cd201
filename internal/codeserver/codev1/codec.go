package codev1

import (
	"fmt"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/proto"
)

// CodecName is the content-subtype the codec reports. It matches the standard
// protobuf codec, so peers using generated code interoperate.
const CodecName = "proto"

// Codec marshals Message values with their own wire encoding and defers to
// the standard protobuf runtime for everything else, which keeps services
// such as grpc.health.v1 working on the same server.
type Codec struct{}

var _ encoding.Codec = Codec{}

func (Codec) Marshal(v any) ([]byte, error) {
	switch m := v.(type) {
	case Message:
		return m.MarshalWire()
	case proto.Message:
		return proto.Marshal(m)
	default:
		return nil, fmt.Errorf("codev1: cannot marshal %T", v)
	}
}

func (Codec) Unmarshal(data []byte, v any) error {
	switch m := v.(type) {
	case Message:
		return m.UnmarshalWire(data)
	case proto.Message:
		return proto.Unmarshal(data, m)
	default:
		return fmt.Errorf("codev1: cannot unmarshal into %T", v)
	}
}

func (Codec) Name() string { return CodecName }
