package grpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/quentinrf/berlin-clock/internal/domain"
)

// Client calls a remote BerlinClock service
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient creates a client on an established connection
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// CurrentClock is the server's answer to GetCurrentClock
type CurrentClock struct {
	Time  string
	Lamps string
}

// Convert asks the server to render text.
// A rejected input comes back as an error matching domain.ErrInvalidFormat
// whose message is the server's message.
func (c *Client) Convert(ctx context.Context, text string, opts ...grpc.CallOption) (string, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, convertFullMethod, wrapperspb.String(text), out, opts...); err != nil {
		return "", fromStatus(err)
	}
	return out.GetValue(), nil
}

// GetCurrentClock asks the server to render its current time
func (c *Client) GetCurrentClock(ctx context.Context, opts ...grpc.CallOption) (CurrentClock, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, getCurrentClockFullMethod, &emptypb.Empty{}, out, opts...); err != nil {
		return CurrentClock{}, fromStatus(err)
	}

	fields := out.GetFields()
	return CurrentClock{
		Time:  fields["time"].GetStringValue(),
		Lamps: fields["lamps"].GetStringValue(),
	}, nil
}

// remoteInvalidFormat carries a server-side rejection message verbatim
type remoteInvalidFormat struct {
	msg string
}

func (e *remoteInvalidFormat) Error() string { return e.msg }
func (e *remoteInvalidFormat) Unwrap() error { return domain.ErrInvalidFormat }

func fromStatus(err error) error {
	if st, ok := status.FromError(err); ok && st.Code() == codes.InvalidArgument {
		return &remoteInvalidFormat{msg: st.Message()}
	}
	return fmt.Errorf("berlin clock rpc: %w", err)
}
