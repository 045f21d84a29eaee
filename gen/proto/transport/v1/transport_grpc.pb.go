// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: transport/v1/transport.proto

package transportv1

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
	TransportService_SubmitDeliveryNote_FullMethodName  = "/transport.v1.TransportService/SubmitDeliveryNote"
	TransportService_CreateTollCapture_FullMethodName   = "/transport.v1.TransportService/CreateTollCapture"
	TransportService_ProcessTollDocument_FullMethodName = "/transport.v1.TransportService/ProcessTollDocument"
	TransportService_GetCaptureStatus_FullMethodName    = "/transport.v1.TransportService/GetCaptureStatus"
	TransportService_ExportTolls_FullMethodName         = "/transport.v1.TransportService/ExportTolls"
)

// TransportServiceClient is the client API for TransportService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type TransportServiceClient interface {
	SubmitDeliveryNote(ctx context.Context, in *SubmitDeliveryNoteRequest, opts ...grpc.CallOption) (*SubmitDeliveryNoteResponse, error)
	CreateTollCapture(ctx context.Context, in *CreateTollCaptureRequest, opts ...grpc.CallOption) (*CreateTollCaptureResponse, error)
	ProcessTollDocument(ctx context.Context, in *ProcessTollDocumentRequest, opts ...grpc.CallOption) (*ProcessTollDocumentResponse, error)
	GetCaptureStatus(ctx context.Context, in *GetCaptureStatusRequest, opts ...grpc.CallOption) (*GetCaptureStatusResponse, error)
	ExportTolls(ctx context.Context, in *ExportTollsRequest, opts ...grpc.CallOption) (*ExportTollsResponse, error)
}

type transportServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewTransportServiceClient(cc grpc.ClientConnInterface) TransportServiceClient {
	return &transportServiceClient{cc}
}

func (c *transportServiceClient) SubmitDeliveryNote(ctx context.Context, in *SubmitDeliveryNoteRequest, opts ...grpc.CallOption) (*SubmitDeliveryNoteResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitDeliveryNoteResponse)
	err := c.cc.Invoke(ctx, TransportService_SubmitDeliveryNote_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *transportServiceClient) CreateTollCapture(ctx context.Context, in *CreateTollCaptureRequest, opts ...grpc.CallOption) (*CreateTollCaptureResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateTollCaptureResponse)
	err := c.cc.Invoke(ctx, TransportService_CreateTollCapture_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *transportServiceClient) ProcessTollDocument(ctx context.Context, in *ProcessTollDocumentRequest, opts ...grpc.CallOption) (*ProcessTollDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProcessTollDocumentResponse)
	err := c.cc.Invoke(ctx, TransportService_ProcessTollDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *transportServiceClient) GetCaptureStatus(ctx context.Context, in *GetCaptureStatusRequest, opts ...grpc.CallOption) (*GetCaptureStatusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetCaptureStatusResponse)
	err := c.cc.Invoke(ctx, TransportService_GetCaptureStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *transportServiceClient) ExportTolls(ctx context.Context, in *ExportTollsRequest, opts ...grpc.CallOption) (*ExportTollsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportTollsResponse)
	err := c.cc.Invoke(ctx, TransportService_ExportTolls_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TransportServiceServer is the server API for TransportService service.
// All implementations must embed UnimplementedTransportServiceServer
// for forward compatibility.
type TransportServiceServer interface {
	SubmitDeliveryNote(context.Context, *SubmitDeliveryNoteRequest) (*SubmitDeliveryNoteResponse, error)
	CreateTollCapture(context.Context, *CreateTollCaptureRequest) (*CreateTollCaptureResponse, error)
	ProcessTollDocument(context.Context, *ProcessTollDocumentRequest) (*ProcessTollDocumentResponse, error)
	GetCaptureStatus(context.Context, *GetCaptureStatusRequest) (*GetCaptureStatusResponse, error)
	ExportTolls(context.Context, *ExportTollsRequest) (*ExportTollsResponse, error)
	mustEmbedUnimplementedTransportServiceServer()
}

// UnimplementedTransportServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedTransportServiceServer struct{}

func (UnimplementedTransportServiceServer) SubmitDeliveryNote(context.Context, *SubmitDeliveryNoteRequest) (*SubmitDeliveryNoteResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitDeliveryNote not implemented")
}
func (UnimplementedTransportServiceServer) CreateTollCapture(context.Context, *CreateTollCaptureRequest) (*CreateTollCaptureResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateTollCapture not implemented")
}
func (UnimplementedTransportServiceServer) ProcessTollDocument(context.Context, *ProcessTollDocumentRequest) (*ProcessTollDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ProcessTollDocument not implemented")
}
func (UnimplementedTransportServiceServer) GetCaptureStatus(context.Context, *GetCaptureStatusRequest) (*GetCaptureStatusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetCaptureStatus not implemented")
}
func (UnimplementedTransportServiceServer) ExportTolls(context.Context, *ExportTollsRequest) (*ExportTollsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportTolls not implemented")
}
func (UnimplementedTransportServiceServer) mustEmbedUnimplementedTransportServiceServer() {}
func (UnimplementedTransportServiceServer) testEmbeddedByValue()                          {}

// UnsafeTransportServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to TransportServiceServer will
// result in compilation errors.
type UnsafeTransportServiceServer interface {
	mustEmbedUnimplementedTransportServiceServer()
}

func RegisterTransportServiceServer(s grpc.ServiceRegistrar, srv TransportServiceServer) {
	// If the following call pancis, it indicates UnimplementedTransportServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&TransportService_ServiceDesc, srv)
}

func _TransportService_SubmitDeliveryNote_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitDeliveryNoteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TransportServiceServer).SubmitDeliveryNote(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TransportService_SubmitDeliveryNote_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TransportServiceServer).SubmitDeliveryNote(ctx, req.(*SubmitDeliveryNoteRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TransportService_CreateTollCapture_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateTollCaptureRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TransportServiceServer).CreateTollCapture(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TransportService_CreateTollCapture_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TransportServiceServer).CreateTollCapture(ctx, req.(*CreateTollCaptureRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TransportService_ProcessTollDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProcessTollDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TransportServiceServer).ProcessTollDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TransportService_ProcessTollDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TransportServiceServer).ProcessTollDocument(ctx, req.(*ProcessTollDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TransportService_GetCaptureStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetCaptureStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TransportServiceServer).GetCaptureStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TransportService_GetCaptureStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TransportServiceServer).GetCaptureStatus(ctx, req.(*GetCaptureStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TransportService_ExportTolls_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportTollsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TransportServiceServer).ExportTolls(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TransportService_ExportTolls_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TransportServiceServer).ExportTolls(ctx, req.(*ExportTollsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// TransportService_ServiceDesc is the grpc.ServiceDesc for TransportService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var TransportService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "transport.v1.TransportService",
	HandlerType: (*TransportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SubmitDeliveryNote",
			Handler:    _TransportService_SubmitDeliveryNote_Handler,
		},
		{
			MethodName: "CreateTollCapture",
			Handler:    _TransportService_CreateTollCapture_Handler,
		},
		{
			MethodName: "ProcessTollDocument",
			Handler:    _TransportService_ProcessTollDocument_Handler,
		},
		{
			MethodName: "GetCaptureStatus",
			Handler:    _TransportService_GetCaptureStatus_Handler,
		},
		{
			MethodName: "ExportTolls",
			Handler:    _TransportService_ExportTolls_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "transport/v1/transport.proto",
}
