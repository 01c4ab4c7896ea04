package grpc

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/quentinrf/berlin-clock/internal/domain"
	"github.com/quentinrf/berlin-clock/internal/ports"
)

// Converter is what the handler needs from the conversion service
type Converter interface {
	ports.TimeConverter
	ConvertNow(ctx context.Context) (domain.Time, domain.Clock, error)
}

// BerlinClockHandler implements the gRPC BerlinClock service
type BerlinClockHandler struct {
	converter Converter
}

var _ BerlinClockServer = (*BerlinClockHandler)(nil)

// NewBerlinClockHandler creates a new gRPC handler
func NewBerlinClockHandler(converter Converter) *BerlinClockHandler {
	return &BerlinClockHandler{
		converter: converter,
	}
}

// Convert renders the lamp grid for the requested time
func (h *BerlinClockHandler) Convert(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	log.Info().Str("input", req.GetValue()).Msg("Convert called")

	lamps, err := h.converter.ConvertTime(ctx, req.GetValue())
	if errors.Is(err, domain.ErrInvalidFormat) {
		log.Warn().Err(err).Msg("rejected time value")
		return nil, status.Error(codes.InvalidArgument, err.Error())
	} else if err != nil {
		log.Error().Err(err).Msg("failed to convert time")
		return nil, status.Error(codes.Internal, "failed to convert time")
	}

	return wrapperspb.String(lamps), nil
}

// GetCurrentClock renders the server's current time
func (h *BerlinClockHandler) GetCurrentClock(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	log.Info().Msg("GetCurrentClock called")

	t, face, err := h.converter.ConvertNow(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to read clock")
		return nil, status.Error(codes.Unavailable, "failed to read clock")
	}

	resp, err := convertClockToProto(t, face)
	if err != nil {
		log.Error().Err(err).Msg("failed to build response")
		return nil, status.Error(codes.Internal, "failed to build response")
	}
	return resp, nil
}

// convertClockToProto converts the rendered face to a protobuf struct
func convertClockToProto(t domain.Time, face domain.Clock) (*structpb.Struct, error) {
	rows := face.Rows()
	values := make([]any, len(rows))
	for i, r := range rows {
		values[i] = r.String()
	}

	return structpb.NewStruct(map[string]any{
		"time":  t.String(),
		"lamps": face.String(),
		"rows":  values,
	})
}
