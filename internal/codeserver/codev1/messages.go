// Package codev1 defines the petcode.server.v1 wire types, the gRPC codec
// that carries them and the PetCodeService client and server bindings.
package codev1

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/seerbp/petcode/internal/petcode"
	"github.com/seerbp/petcode/internal/petcode/codec"
)

// EncodeRequest asks for the share code of a message.
type EncodeRequest struct {
	PetCodeMessage *petcode.Message
}

// EncodeResponse carries a share code.
type EncodeResponse struct {
	Base64 string
}

// DecodeRequest asks for the message behind a share code.
type DecodeRequest struct {
	Base64 string
}

// DecodeResponse carries a decoded message.
type DecodeResponse struct {
	PetCodeMessage *petcode.Message
}

func (r *EncodeRequest) GetPetCodeMessage() *petcode.Message {
	if r == nil {
		return nil
	}
	return r.PetCodeMessage
}

func (r *EncodeResponse) GetBase64() string {
	if r == nil {
		return ""
	}
	return r.Base64
}

func (r *DecodeRequest) GetBase64() string {
	if r == nil {
		return ""
	}
	return r.Base64
}

func (r *DecodeResponse) GetPetCodeMessage() *petcode.Message {
	if r == nil {
		return nil
	}
	return r.PetCodeMessage
}

// Message is implemented by every type in this package.
type Message interface {
	MarshalWire() ([]byte, error)
	UnmarshalWire(b []byte) error
}

const fieldPayload protowire.Number = 1

func (r *EncodeRequest) MarshalWire() ([]byte, error)  { return marshalMessage(r.PetCodeMessage), nil }
func (r *DecodeResponse) MarshalWire() ([]byte, error) { return marshalMessage(r.PetCodeMessage), nil }
func (r *EncodeResponse) MarshalWire() ([]byte, error) { return marshalString(r.Base64), nil }
func (r *DecodeRequest) MarshalWire() ([]byte, error)  { return marshalString(r.Base64), nil }

func (r *EncodeRequest) UnmarshalWire(b []byte) (err error) {
	r.PetCodeMessage, err = unmarshalMessage(b)
	return err
}

func (r *DecodeResponse) UnmarshalWire(b []byte) (err error) {
	r.PetCodeMessage, err = unmarshalMessage(b)
	return err
}

func (r *EncodeResponse) UnmarshalWire(b []byte) (err error) {
	r.Base64, err = unmarshalString(b)
	return err
}

func (r *DecodeRequest) UnmarshalWire(b []byte) (err error) {
	r.Base64, err = unmarshalString(b)
	return err
}

// marshalMessage writes m as embedded field 1. A nil message is omitted; an
// empty one is written with zero length so that its presence survives.
func marshalMessage(m *petcode.Message) []byte {
	if m == nil {
		return []byte{}
	}
	b := protowire.AppendTag(nil, fieldPayload, protowire.BytesType)
	return protowire.AppendBytes(b, codec.MarshalBinary(m))
}

func marshalString(s string) []byte {
	if s == "" {
		return []byte{}
	}
	b := protowire.AppendTag(nil, fieldPayload, protowire.BytesType)
	return protowire.AppendString(b, s)
}

// unmarshalMessage reads embedded field 1. Repeated occurrences merge, which
// for the protobuf encoding is the same as parsing their concatenation.
func unmarshalMessage(b []byte) (*petcode.Message, error) {
	var payload []byte
	present := false
	err := eachField(b, func(num protowire.Number, typ protowire.Type, v []byte) error {
		if num != fieldPayload {
			return nil
		}
		if typ != protowire.BytesType {
			return fmt.Errorf("field %d: unexpected wire type %d", num, typ)
		}
		present = true
		payload = append(payload, v...)
		return nil
	})
	if err != nil || !present {
		return nil, err
	}
	return codec.UnmarshalBinary(payload)
}

func unmarshalString(b []byte) (string, error) {
	var s string
	err := eachField(b, func(num protowire.Number, typ protowire.Type, v []byte) error {
		if num != fieldPayload {
			return nil
		}
		if typ != protowire.BytesType {
			return fmt.Errorf("field %d: unexpected wire type %d", num, typ)
		}
		if !utf8.Valid(v) {
			return errors.New("field 1: invalid UTF-8")
		}
		s = string(v)
		return nil
	})
	return s, err
}

// eachField walks the top-level fields of b. For length-delimited fields v is
// the payload; for other wire types it is the raw value bytes.
func eachField(b []byte, fn func(protowire.Number, protowire.Type, []byte) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var v []byte
		if typ == protowire.BytesType {
			v, n = protowire.ConsumeBytes(b)
		} else {
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n >= 0 {
				v = b[:n]
			}
		}
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		if err := fn(num, typ, v); err != nil {
			return err
		}
	}
	return nil
}
