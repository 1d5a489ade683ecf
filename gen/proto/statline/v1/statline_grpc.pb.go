// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: statline/v1/statline.proto

package statlinev1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	StatlineService_LearnProcessor_FullMethodName    = "/statline.v1.StatlineService/LearnProcessor"
	StatlineService_ExtractDocument_FullMethodName   = "/statline.v1.StatlineService/ExtractDocument"
	StatlineService_GetProcessor_FullMethodName      = "/statline.v1.StatlineService/GetProcessor"
	StatlineService_ListProcessors_FullMethodName    = "/statline.v1.StatlineService/ListProcessors"
	StatlineService_ExportExtractions_FullMethodName = "/statline.v1.StatlineService/ExportExtractions"
)

// StatlineServiceClient is the client API for StatlineService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// StatlineService learns extraction processors from example documents and
// applies them to new ones.
type StatlineServiceClient interface {
	LearnProcessor(ctx context.Context, in *LearnProcessorRequest, opts ...grpc.CallOption) (*LearnProcessorResponse, error)
	ExtractDocument(ctx context.Context, in *ExtractDocumentRequest, opts ...grpc.CallOption) (*ExtractDocumentResponse, error)
	GetProcessor(ctx context.Context, in *GetProcessorRequest, opts ...grpc.CallOption) (*GetProcessorResponse, error)
	ListProcessors(ctx context.Context, in *ListProcessorsRequest, opts ...grpc.CallOption) (*ListProcessorsResponse, error)
	ExportExtractions(ctx context.Context, in *ExportExtractionsRequest, opts ...grpc.CallOption) (*ExportExtractionsResponse, error)
}

type statlineServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewStatlineServiceClient(cc grpc.ClientConnInterface) StatlineServiceClient {
	return &statlineServiceClient{cc}
}

func (c *statlineServiceClient) LearnProcessor(ctx context.Context, in *LearnProcessorRequest, opts ...grpc.CallOption) (*LearnProcessorResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(LearnProcessorResponse)
	err := c.cc.Invoke(ctx, StatlineService_LearnProcessor_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *statlineServiceClient) ExtractDocument(ctx context.Context, in *ExtractDocumentRequest, opts ...grpc.CallOption) (*ExtractDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExtractDocumentResponse)
	err := c.cc.Invoke(ctx, StatlineService_ExtractDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *statlineServiceClient) GetProcessor(ctx context.Context, in *GetProcessorRequest, opts ...grpc.CallOption) (*GetProcessorResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetProcessorResponse)
	err := c.cc.Invoke(ctx, StatlineService_GetProcessor_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *statlineServiceClient) ListProcessors(ctx context.Context, in *ListProcessorsRequest, opts ...grpc.CallOption) (*ListProcessorsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListProcessorsResponse)
	err := c.cc.Invoke(ctx, StatlineService_ListProcessors_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *statlineServiceClient) ExportExtractions(ctx context.Context, in *ExportExtractionsRequest, opts ...grpc.CallOption) (*ExportExtractionsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportExtractionsResponse)
	err := c.cc.Invoke(ctx, StatlineService_ExportExtractions_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// StatlineServiceServer is the server API for StatlineService service.
// All implementations must embed UnimplementedStatlineServiceServer
// for forward compatibility.
//
// StatlineService learns extraction processors from example documents and
// applies them to new ones.
type StatlineServiceServer interface {
	LearnProcessor(context.Context, *LearnProcessorRequest) (*LearnProcessorResponse, error)
	ExtractDocument(context.Context, *ExtractDocumentRequest) (*ExtractDocumentResponse, error)
	GetProcessor(context.Context, *GetProcessorRequest) (*GetProcessorResponse, error)
	ListProcessors(context.Context, *ListProcessorsRequest) (*ListProcessorsResponse, error)
	ExportExtractions(context.Context, *ExportExtractionsRequest) (*ExportExtractionsResponse, error)
	mustEmbedUnimplementedStatlineServiceServer()
}

// UnimplementedStatlineServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedStatlineServiceServer struct{}

func (UnimplementedStatlineServiceServer) LearnProcessor(context.Context, *LearnProcessorRequest) (*LearnProcessorResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method LearnProcessor not implemented")
}
func (UnimplementedStatlineServiceServer) ExtractDocument(context.Context, *ExtractDocumentRequest) (*ExtractDocumentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExtractDocument not implemented")
}
func (UnimplementedStatlineServiceServer) GetProcessor(context.Context, *GetProcessorRequest) (*GetProcessorResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetProcessor not implemented")
}
func (UnimplementedStatlineServiceServer) ListProcessors(context.Context, *ListProcessorsRequest) (*ListProcessorsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListProcessors not implemented")
}
func (UnimplementedStatlineServiceServer) ExportExtractions(context.Context, *ExportExtractionsRequest) (*ExportExtractionsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportExtractions not implemented")
}
func (UnimplementedStatlineServiceServer) mustEmbedUnimplementedStatlineServiceServer() {}
func (UnimplementedStatlineServiceServer) testEmbeddedByValue()                         {}

// UnsafeStatlineServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to StatlineServiceServer will
// result in compilation errors.
type UnsafeStatlineServiceServer interface {
	mustEmbedUnimplementedStatlineServiceServer()
}

func RegisterStatlineServiceServer(s grpc.ServiceRegistrar, srv StatlineServiceServer) {
	// If the following call panics, it indicates UnimplementedStatlineServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&StatlineService_ServiceDesc, srv)
}

func _StatlineService_LearnProcessor_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LearnProcessorRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StatlineServiceServer).LearnProcessor(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StatlineService_LearnProcessor_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StatlineServiceServer).LearnProcessor(ctx, req.(*LearnProcessorRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StatlineService_ExtractDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExtractDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StatlineServiceServer).ExtractDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StatlineService_ExtractDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StatlineServiceServer).ExtractDocument(ctx, req.(*ExtractDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StatlineService_GetProcessor_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetProcessorRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StatlineServiceServer).GetProcessor(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StatlineService_GetProcessor_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StatlineServiceServer).GetProcessor(ctx, req.(*GetProcessorRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StatlineService_ListProcessors_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListProcessorsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StatlineServiceServer).ListProcessors(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StatlineService_ListProcessors_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StatlineServiceServer).ListProcessors(ctx, req.(*ListProcessorsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StatlineService_ExportExtractions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportExtractionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StatlineServiceServer).ExportExtractions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StatlineService_ExportExtractions_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StatlineServiceServer).ExportExtractions(ctx, req.(*ExportExtractionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// StatlineService_ServiceDesc is the grpc.ServiceDesc for StatlineService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var StatlineService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "statline.v1.StatlineService",
	HandlerType: (*StatlineServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "LearnProcessor",
			Handler:    _StatlineService_LearnProcessor_Handler,
		},
		{
			MethodName: "ExtractDocument",
			Handler:    _StatlineService_ExtractDocument_Handler,
		},
		{
			MethodName: "GetProcessor",
			Handler:    _StatlineService_GetProcessor_Handler,
		},
		{
			MethodName: "ListProcessors",
			Handler:    _StatlineService_ListProcessors_Handler,
		},
		{
			MethodName: "ExportExtractions",
			Handler:    _StatlineService_ExportExtractions_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "statline/v1/statline.proto",
}
