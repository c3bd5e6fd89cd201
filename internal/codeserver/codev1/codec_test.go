package codev1_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
	"pgregory.net/rapid"

	"github.com/seerbp/petcode/internal/codeserver/codev1"
	"github.com/seerbp/petcode/internal/petcode"
	"github.com/seerbp/petcode/internal/petcode/codec"
	"github.com/seerbp/petcode/internal/testutil"
)

func TestCodec_Name(t *testing.T) {
	assert.Equal(t, "proto", codev1.Codec{}.Name())
}

func TestCodec_StringMessagesMatchProtobufRuntime(t *testing.T) {
	c := codev1.Codec{}
	b, err := c.Marshal(&codev1.DecodeRequest{Base64: "H4sIAAAA"})
	require.NoError(t, err)

	var sv wrapperspb.StringValue
	require.NoError(t, proto.Unmarshal(b, &sv))
	assert.Equal(t, "H4sIAAAA", sv.GetValue())

	ref, err := proto.Marshal(wrapperspb.String("abc"))
	require.NoError(t, err)
	var resp codev1.EncodeResponse
	require.NoError(t, c.Unmarshal(ref, &resp))
	assert.Equal(t, "abc", resp.GetBase64())
}

func TestCodec_MessagePayloadIsCanonicalBinary(t *testing.T) {
	msg := testutil.SampleMessage()
	b, err := codev1.Codec{}.Marshal(&codev1.EncodeRequest{PetCodeMessage: msg})
	require.NoError(t, err)

	var bv wrapperspb.BytesValue
	require.NoError(t, proto.Unmarshal(b, &bv))
	assert.Equal(t, codec.MarshalBinary(msg), bv.GetValue())
}

func TestCodec_FallsBackToProto(t *testing.T) {
	c := codev1.Codec{}
	b, err := c.Marshal(wrapperspb.Int32(7))
	require.NoError(t, err)

	var got wrapperspb.Int32Value
	require.NoError(t, c.Unmarshal(b, &got))
	assert.Equal(t, int32(7), got.GetValue())
}

func TestCodec_RejectsForeignTypes(t *testing.T) {
	c := codev1.Codec{}
	_, err := c.Marshal("not a message")
	assert.Error(t, err)
	assert.Error(t, c.Unmarshal(nil, new(int)))
}

func TestEncodeRequest_Presence(t *testing.T) {
	c := codev1.Codec{}

	b, err := c.Marshal(&codev1.EncodeRequest{})
	require.NoError(t, err)
	assert.Empty(t, b)
	var absent codev1.EncodeRequest
	require.NoError(t, c.Unmarshal(b, &absent))
	assert.Nil(t, absent.GetPetCodeMessage())

	b, err = c.Marshal(&codev1.EncodeRequest{PetCodeMessage: &petcode.Message{}})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x0a, 0x00}, b)
	var empty codev1.EncodeRequest
	require.NoError(t, c.Unmarshal(b, &empty))
	assert.Equal(t, &petcode.Message{}, empty.GetPetCodeMessage())
}

func TestDecodeResponse_MergesRepeatedPayload(t *testing.T) {
	first := codec.MarshalBinary(&petcode.Message{Server: petcode.ServerOfficial})
	second := codec.MarshalBinary(&petcode.Message{DisplayMode: petcode.DisplayModeBoss})
	var b []byte
	for _, part := range [][]byte{first, second} {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendBytes(b, part)
	}

	var resp codev1.DecodeResponse
	require.NoError(t, codev1.Codec{}.Unmarshal(b, &resp))
	assert.Equal(t, &petcode.Message{Server: petcode.ServerOfficial, DisplayMode: petcode.DisplayModeBoss}, resp.GetPetCodeMessage())
}

func TestUnmarshal_SkipsUnknownFields(t *testing.T) {
	b := protowire.AppendTag(nil, 9, protowire.VarintType)
	b = protowire.AppendVarint(b, 3)
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendString(b, "code")

	var req codev1.DecodeRequest
	require.NoError(t, codev1.Codec{}.Unmarshal(b, &req))
	assert.Equal(t, "code", req.GetBase64())
}

func TestUnmarshal_Errors(t *testing.T) {
	c := codev1.Codec{}
	wrongType := protowire.AppendVarint(protowire.AppendTag(nil, 1, protowire.VarintType), 1)
	badUTF8 := protowire.AppendBytes(protowire.AppendTag(nil, 1, protowire.BytesType), []byte{0xff, 0xfe})
	truncated := []byte{0x0a, 0x05, 'a'}

	assert.Error(t, c.Unmarshal(wrongType, &codev1.DecodeRequest{}))
	assert.Error(t, c.Unmarshal(wrongType, &codev1.EncodeRequest{}))
	assert.Error(t, c.Unmarshal(badUTF8, &codev1.DecodeRequest{}))
	assert.Error(t, c.Unmarshal(truncated, &codev1.EncodeResponse{}))
	assert.Error(t, c.Unmarshal(truncated, &codev1.DecodeResponse{}))
}

func TestNilGetters(t *testing.T) {
	assert.Nil(t, (*codev1.EncodeRequest)(nil).GetPetCodeMessage())
	assert.Nil(t, (*codev1.DecodeResponse)(nil).GetPetCodeMessage())
	assert.Empty(t, (*codev1.EncodeResponse)(nil).GetBase64())
	assert.Empty(t, (*codev1.DecodeRequest)(nil).GetBase64())
}

func TestPropertyRequestRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		msg := testutil.MessageGen().Draw(t, "msg")
		c := codev1.Codec{}
		b, err := c.Marshal(&codev1.EncodeRequest{PetCodeMessage: msg})
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		var got codev1.EncodeRequest
		if err := c.Unmarshal(b, &got); err != nil {
			t.Fatalf("Unmarshal: %v", err)
		}
		assert.Equal(t, msg, got.PetCodeMessage)
	})
}
