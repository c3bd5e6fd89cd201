// Package codeserver implements PetCodeService: share-code encoding and
// decoding over gRPC.
package codeserver

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/seerbp/petcode/internal/codeserver/codev1"
	"github.com/seerbp/petcode/internal/petcode/codec"
)

// Service implements codev1.PetCodeServiceServer on top of a codec.Codec.
type Service struct {
	codev1.UnimplementedPetCodeServiceServer

	codec  *codec.Codec
	logger *zap.Logger
}

// NewService creates a Service.
//
// Precondition: c and logger must be non-nil.
func NewService(c *codec.Codec, logger *zap.Logger) *Service {
	return &Service{codec: c, logger: logger}
}

// EncodePetCodeMessageToBase64 returns the share code of the request message.
//
// Postcondition: Returns InvalidArgument when the message is missing or cannot
// be encoded.
func (s *Service) EncodePetCodeMessageToBase64(ctx context.Context, req *codev1.EncodeRequest) (*codev1.EncodeResponse, error) {
	msg := req.GetPetCodeMessage()
	if msg == nil {
		return nil, status.Error(codes.InvalidArgument, "petCodeMessage is required")
	}
	code, err := s.codec.ToBase64(msg)
	if err != nil {
		s.logger.Warn("encoding pet code", requestIDField(ctx), zap.Error(err))
		return nil, status.Error(codes.InvalidArgument, "invalid petCodeMessage")
	}
	s.logger.Debug("encoded pet code",
		requestIDField(ctx),
		zap.Int("pets", len(msg.Pets)),
		zap.Int("length", len(code)),
	)
	return &codev1.EncodeResponse{Base64: code}, nil
}

// DecodePetCodeMessageFromBase64 returns the message behind the request's
// share code.
//
// Postcondition: Returns InvalidArgument when the code is empty or does not
// decode.
func (s *Service) DecodePetCodeMessageFromBase64(ctx context.Context, req *codev1.DecodeRequest) (*codev1.DecodeResponse, error) {
	code := req.GetBase64()
	if code == "" {
		return nil, status.Error(codes.InvalidArgument, "base64 is required")
	}
	msg, err := s.codec.FromBase64(code)
	if err != nil {
		s.logger.Debug("rejected pet code", requestIDField(ctx), zap.Error(err))
		return nil, status.Error(codes.InvalidArgument, "invalid base64")
	}
	return &codev1.DecodeResponse{PetCodeMessage: msg}, nil
}
