package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// The service only exchanges well-known protobuf types, so it is declared
// here by hand instead of being generated from a .proto file (descriptor.go
// registers the matching file descriptor):
//
//	service BerlinClock {
//	  rpc Convert(google.protobuf.StringValue) returns (google.protobuf.StringValue);
//	  rpc GetCurrentClock(google.protobuf.Empty) returns (google.protobuf.Struct);
//	}
const (
	ServiceName = "berlinclock.v1.BerlinClock"

	convertFullMethod         = "/" + ServiceName + "/Convert"
	getCurrentClockFullMethod = "/" + ServiceName + "/GetCurrentClock"
)

// BerlinClockServer is the server API for the BerlinClock service
type BerlinClockServer interface {
	// Convert takes an HH:mm:ss time and returns the five-line lamp grid
	Convert(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error)

	// GetCurrentClock renders the server's current time.
	// The struct carries "time", "lamps" and "rows" fields.
	GetCurrentClock(context.Context, *emptypb.Empty) (*structpb.Struct, error)
}

// RegisterBerlinClockServer registers srv on s
func RegisterBerlinClockServer(s grpc.ServiceRegistrar, srv BerlinClockServer) {
	s.RegisterService(&berlinClockServiceDesc, srv)
}

func convertHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BerlinClockServer).Convert(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: convertFullMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BerlinClockServer).Convert(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func getCurrentClockHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BerlinClockServer).GetCurrentClock(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: getCurrentClockFullMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BerlinClockServer).GetCurrentClock(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

var berlinClockServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BerlinClockServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Convert",
			Handler:    convertHandler,
		},
		{
			MethodName: "GetCurrentClock",
			Handler:    getCurrentClockHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: protoFile,
}
