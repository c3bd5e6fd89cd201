package codev1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "petcode.server.v1.PetCodeService"

const (
	PetCodeService_EncodePetCodeMessageToBase64_FullMethodName   = "/" + ServiceName + "/EncodePetCodeMessageToBase64"
	PetCodeService_DecodePetCodeMessageFromBase64_FullMethodName = "/" + ServiceName + "/DecodePetCodeMessageFromBase64"
)

// ServerOption forces Codec for every service on the server.
func ServerOption() grpc.ServerOption { return grpc.ForceServerCodec(Codec{}) }

// PetCodeServiceClient is the client API for PetCodeService.
type PetCodeServiceClient interface {
	EncodePetCodeMessageToBase64(ctx context.Context, in *EncodeRequest, opts ...grpc.CallOption) (*EncodeResponse, error)
	DecodePetCodeMessageFromBase64(ctx context.Context, in *DecodeRequest, opts ...grpc.CallOption) (*DecodeResponse, error)
}

type petCodeServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewPetCodeServiceClient returns a client that always uses Codec.
func NewPetCodeServiceClient(cc grpc.ClientConnInterface) PetCodeServiceClient {
	return &petCodeServiceClient{cc}
}

func (c *petCodeServiceClient) EncodePetCodeMessageToBase64(ctx context.Context, in *EncodeRequest, opts ...grpc.CallOption) (*EncodeResponse, error) {
	out := new(EncodeResponse)
	opts = append([]grpc.CallOption{grpc.ForceCodec(Codec{})}, opts...)
	if err := c.cc.Invoke(ctx, PetCodeService_EncodePetCodeMessageToBase64_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *petCodeServiceClient) DecodePetCodeMessageFromBase64(ctx context.Context, in *DecodeRequest, opts ...grpc.CallOption) (*DecodeResponse, error) {
	out := new(DecodeResponse)
	opts = append([]grpc.CallOption{grpc.ForceCodec(Codec{})}, opts...)
	if err := c.cc.Invoke(ctx, PetCodeService_DecodePetCodeMessageFromBase64_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// PetCodeServiceServer is the server API for PetCodeService. Implementations
// should embed UnimplementedPetCodeServiceServer.
type PetCodeServiceServer interface {
	EncodePetCodeMessageToBase64(context.Context, *EncodeRequest) (*EncodeResponse, error)
	DecodePetCodeMessageFromBase64(context.Context, *DecodeRequest) (*DecodeResponse, error)
	mustEmbedUnimplementedPetCodeServiceServer()
}

// UnimplementedPetCodeServiceServer answers every method with Unimplemented.
type UnimplementedPetCodeServiceServer struct{}

func (UnimplementedPetCodeServiceServer) EncodePetCodeMessageToBase64(context.Context, *EncodeRequest) (*EncodeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method EncodePetCodeMessageToBase64 not implemented")
}

func (UnimplementedPetCodeServiceServer) DecodePetCodeMessageFromBase64(context.Context, *DecodeRequest) (*DecodeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DecodePetCodeMessageFromBase64 not implemented")
}

func (UnimplementedPetCodeServiceServer) mustEmbedUnimplementedPetCodeServiceServer() {}

// RegisterPetCodeServiceServer registers srv on s. The server must be built
// with ServerOption so that requests are decoded with Codec.
func RegisterPetCodeServiceServer(s grpc.ServiceRegistrar, srv PetCodeServiceServer) {
	s.RegisterService(&PetCodeService_ServiceDesc, srv)
}

func _PetCodeService_EncodePetCodeMessageToBase64_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(EncodeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PetCodeServiceServer).EncodePetCodeMessageToBase64(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PetCodeService_EncodePetCodeMessageToBase64_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PetCodeServiceServer).EncodePetCodeMessageToBase64(ctx, req.(*EncodeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PetCodeService_DecodePetCodeMessageFromBase64_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DecodeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PetCodeServiceServer).DecodePetCodeMessageFromBase64(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PetCodeService_DecodePetCodeMessageFromBase64_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PetCodeServiceServer).DecodePetCodeMessageFromBase64(ctx, req.(*DecodeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PetCodeService_ServiceDesc is the grpc.ServiceDesc for PetCodeService.
var PetCodeService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PetCodeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "EncodePetCodeMessageToBase64",
			Handler:    _PetCodeService_EncodePetCodeMessageToBase64_Handler,
		},
		{
			MethodName: "DecodePetCodeMessageFromBase64",
			Handler:    _PetCodeService_DecodePetCodeMessageFromBase64_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "petcode/server/v1/service.proto",
}
