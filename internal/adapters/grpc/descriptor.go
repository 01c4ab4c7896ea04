package grpc

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
)

const protoFile = "berlinclock/v1/berlinclock.proto"

// File describes berlinclock/v1/berlinclock.proto for reflection clients such as grpcurl
var File protoreflect.FileDescriptor

func init() {
	fd, err := protodesc.NewFile(serviceFileProto(), protoregistry.GlobalFiles)
	if err != nil {
		panic(fmt.Sprintf("invalid descriptor for %s: %v", protoFile, err))
	}
	if err := protoregistry.GlobalFiles.RegisterFile(fd); err != nil {
		panic(fmt.Sprintf("failed to register %s: %v", protoFile, err))
	}
	File = fd
}

func serviceFileProto() *descriptorpb.FileDescriptorProto {
	method := func(name, in, out string) *descriptorpb.MethodDescriptorProto {
		return &descriptorpb.MethodDescriptorProto{
			Name:       proto.String(name),
			InputType:  proto.String(in),
			OutputType: proto.String(out),
		}
	}

	return &descriptorpb.FileDescriptorProto{
		Name:    proto.String(protoFile),
		Package: proto.String("berlinclock.v1"),
		Syntax:  proto.String("proto3"),
		Dependency: []string{
			"google/protobuf/empty.proto",
			"google/protobuf/struct.proto",
			"google/protobuf/wrappers.proto",
		},
		Options: &descriptorpb.FileOptions{
			GoPackage: proto.String("github.com/quentinrf/berlin-clock/internal/adapters/grpc"),
		},
		Service: []*descriptorpb.ServiceDescriptorProto{{
			Name: proto.String("BerlinClock"),
			Method: []*descriptorpb.MethodDescriptorProto{
				method("Convert", ".google.protobuf.StringValue", ".google.protobuf.StringValue"),
				method("GetCurrentClock", ".google.protobuf.Empty", ".google.protobuf.Struct"),
			},
		}},
	}
}
