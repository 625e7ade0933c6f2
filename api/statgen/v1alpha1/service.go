package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "statgen.v1alpha1.StatGenService"

// Full method names
const (
	StatGenService_ListMethods_FullMethodName = "/" + ServiceName + "/ListMethods"
	StatGenService_CreateCharacter_FullMethodName = "/" + ServiceName + "/CreateCharacter"
	StatGenService_GetCharacter_FullMethodName = "/" + ServiceName + "/GetCharacter"
	StatGenService_GeneratePriority_FullMethodName = "/" + ServiceName + "/GeneratePriority"
	StatGenService_GenerateHardcore_FullMethodName = "/" + ServiceName + "/GenerateHardcore"
	StatGenService_StartAssignment_FullMethodName = "/" + ServiceName + "/StartAssignment"
	StatGenService_GetAssignment_FullMethodName = "/" + ServiceName + "/GetAssignment"
	StatGenService_PickValue_FullMethodName = "/" + ServiceName + "/PickValue"
	StatGenService_ResetAssignment_FullMethodName = "/" + ServiceName + "/ResetAssignment"
	StatGenService_RerollAssignment_FullMethodName = "/" + ServiceName + "/RerollAssignment"
	StatGenService_CommitAssignment_FullMethodName = "/" + ServiceName + "/CommitAssignment"
	StatGenService_DiscardAssignment_FullMethodName = "/" + ServiceName + "/DiscardAssignment"
)

// StatGenServiceClient is the client API for StatGenService
type StatGenServiceClient interface {
	ListMethods(ctx context.Context, in *ListMethodsRequest, opts ...grpc.CallOption) (*ListMethodsResponse, error)
	CreateCharacter(ctx context.Context, in *CreateCharacterRequest, opts ...grpc.CallOption) (*CreateCharacterResponse, error)
	GetCharacter(ctx context.Context, in *GetCharacterRequest, opts ...grpc.CallOption) (*GetCharacterResponse, error)
	GeneratePriority(ctx context.Context, in *GeneratePriorityRequest, opts ...grpc.CallOption) (*GeneratePriorityResponse, error)
	GenerateHardcore(ctx context.Context, in *GenerateHardcoreRequest, opts ...grpc.CallOption) (*GenerateHardcoreResponse, error)
	StartAssignment(ctx context.Context, in *StartAssignmentRequest, opts ...grpc.CallOption) (*AssignmentResponse, error)
	GetAssignment(ctx context.Context, in *GetAssignmentRequest, opts ...grpc.CallOption) (*AssignmentResponse, error)
	PickValue(ctx context.Context, in *PickValueRequest, opts ...grpc.CallOption) (*AssignmentResponse, error)
	ResetAssignment(ctx context.Context, in *ResetAssignmentRequest, opts ...grpc.CallOption) (*AssignmentResponse, error)
	RerollAssignment(ctx context.Context, in *RerollAssignmentRequest, opts ...grpc.CallOption) (*AssignmentResponse, error)
	CommitAssignment(ctx context.Context, in *CommitAssignmentRequest, opts ...grpc.CallOption) (*CommitAssignmentResponse, error)
	DiscardAssignment(ctx context.Context, in *DiscardAssignmentRequest, opts ...grpc.CallOption) (*DiscardAssignmentResponse, error)
}

type statGenServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewStatGenServiceClient returns a client that sends every call with the
// JSON codec.
func NewStatGenServiceClient(cc grpc.ClientConnInterface) StatGenServiceClient {
	return &statGenServiceClient{cc}
}

func (c *statGenServiceClient) ListMethods(ctx context.Context, in *ListMethodsRequest, opts ...grpc.CallOption) (*ListMethodsResponse, error) {
	out := new(ListMethodsResponse)
	err := c.cc.Invoke(ctx, StatGenService_ListMethods_FullMethodName, in, out, append([]grpc.CallOption{CallOption()}, opts...)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *statGenServiceClient) CreateCharacter(ctx context.Context, in *CreateCharacterRequest, opts ...grpc.CallOption) (*CreateCharacterResponse, error) {
	out := new(CreateCharacterResponse)
	err := c.cc.Invoke(ctx, StatGenService_CreateCharacter_FullMethodName, in, out, append([]grpc.CallOption{CallOption()}, opts...)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *statGenServiceClient) GetCharacter(ctx context.Context, in *GetCharacterRequest, opts ...grpc.CallOption) (*GetCharacterResponse, error) {
	out := new(GetCharacterResponse)
	err := c.cc.Invoke(ctx, StatGenService_GetCharacter_FullMethodName, in, out, append([]grpc.CallOption{CallOption()}, opts...)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *statGenServiceClient) GeneratePriority(ctx context.Context, in *GeneratePriorityRequest, opts ...grpc.CallOption) (*GeneratePriorityResponse, error) {
	out := new(GeneratePriorityResponse)
	err := c.cc.Invoke(ctx, StatGenService_GeneratePriority_FullMethodName, in, out, append([]grpc.CallOption{CallOption()}, opts...)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *statGenServiceClient) GenerateHardcore(ctx context.Context, in *GenerateHardcoreRequest, opts ...grpc.CallOption) (*GenerateHardcoreResponse, error) {
	out := new(GenerateHardcoreResponse)
	err := c.cc.Invoke(ctx, StatGenService_GenerateHardcore_FullMethodName, in, out, append([]grpc.CallOption{CallOption()}, opts...)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *statGenServiceClient) StartAssignment(ctx context.Context, in *StartAssignmentRequest, opts ...grpc.CallOption) (*AssignmentResponse, error) {
	out := new(AssignmentResponse)
	err := c.cc.Invoke(ctx, StatGenService_StartAssignment_FullMethodName, in, out, append([]grpc.CallOption{CallOption()}, opts...)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *statGenServiceClient) GetAssignment(ctx context.Context, in *GetAssignmentRequest, opts ...grpc.CallOption) (*AssignmentResponse, error) {
	out := new(AssignmentResponse)
	err := c.cc.Invoke(ctx, StatGenService_GetAssignment_FullMethodName, in, out, append([]grpc.CallOption{CallOption()}, opts...)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *statGenServiceClient) PickValue(ctx context.Context, in *PickValueRequest, opts ...grpc.CallOption) (*AssignmentResponse, error) {
	out := new(AssignmentResponse)
	err := c.cc.Invoke(ctx, StatGenService_PickValue_FullMethodName, in, out, append([]grpc.CallOption{CallOption()}, opts...)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *statGenServiceClient) ResetAssignment(ctx context.Context, in *ResetAssignmentRequest, opts ...grpc.CallOption) (*AssignmentResponse, error) {
	out := new(AssignmentResponse)
	err := c.cc.Invoke(ctx, StatGenService_ResetAssignment_FullMethodName, in, out, append([]grpc.CallOption{CallOption()}, opts...)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *statGenServiceClient) RerollAssignment(ctx context.Context, in *RerollAssignmentRequest, opts ...grpc.CallOption) (*AssignmentResponse, error) {
	out := new(AssignmentResponse)
	err := c.cc.Invoke(ctx, StatGenService_RerollAssignment_FullMethodName, in, out, append([]grpc.CallOption{CallOption()}, opts...)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *statGenServiceClient) CommitAssignment(ctx context.Context, in *CommitAssignmentRequest, opts ...grpc.CallOption) (*CommitAssignmentResponse, error) {
	out := new(CommitAssignmentResponse)
	err := c.cc.Invoke(ctx, StatGenService_CommitAssignment_FullMethodName, in, out, append([]grpc.CallOption{CallOption()}, opts...)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *statGenServiceClient) DiscardAssignment(ctx context.Context, in *DiscardAssignmentRequest, opts ...grpc.CallOption) (*DiscardAssignmentResponse, error) {
	out := new(DiscardAssignmentResponse)
	err := c.cc.Invoke(ctx, StatGenService_DiscardAssignment_FullMethodName, in, out, append([]grpc.CallOption{CallOption()}, opts...)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// StatGenServiceServer is the server API for StatGenService. Implementations
// embed UnimplementedStatGenServiceServer.
type StatGenServiceServer interface {
	ListMethods(context.Context, *ListMethodsRequest) (*ListMethodsResponse, error)
	CreateCharacter(context.Context, *CreateCharacterRequest) (*CreateCharacterResponse, error)
	GetCharacter(context.Context, *GetCharacterRequest) (*GetCharacterResponse, error)
	GeneratePriority(context.Context, *GeneratePriorityRequest) (*GeneratePriorityResponse, error)
	GenerateHardcore(context.Context, *GenerateHardcoreRequest) (*GenerateHardcoreResponse, error)
	StartAssignment(context.Context, *StartAssignmentRequest) (*AssignmentResponse, error)
	GetAssignment(context.Context, *GetAssignmentRequest) (*AssignmentResponse, error)
	PickValue(context.Context, *PickValueRequest) (*AssignmentResponse, error)
	ResetAssignment(context.Context, *ResetAssignmentRequest) (*AssignmentResponse, error)
	RerollAssignment(context.Context, *RerollAssignmentRequest) (*AssignmentResponse, error)
	CommitAssignment(context.Context, *CommitAssignmentRequest) (*CommitAssignmentResponse, error)
	DiscardAssignment(context.Context, *DiscardAssignmentRequest) (*DiscardAssignmentResponse, error)
	mustEmbedUnimplementedStatGenServiceServer()
}

// UnimplementedStatGenServiceServer answers every call with Unimplemented.
type UnimplementedStatGenServiceServer struct{}

func (UnimplementedStatGenServiceServer) ListMethods(context.Context, *ListMethodsRequest) (*ListMethodsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListMethods not implemented")
}

func (UnimplementedStatGenServiceServer) CreateCharacter(context.Context, *CreateCharacterRequest) (*CreateCharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateCharacter not implemented")
}

func (UnimplementedStatGenServiceServer) GetCharacter(context.Context, *GetCharacterRequest) (*GetCharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCharacter not implemented")
}

func (UnimplementedStatGenServiceServer) GeneratePriority(context.Context, *GeneratePriorityRequest) (*GeneratePriorityResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GeneratePriority not implemented")
}

func (UnimplementedStatGenServiceServer) GenerateHardcore(context.Context, *GenerateHardcoreRequest) (*GenerateHardcoreResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GenerateHardcore not implemented")
}

func (UnimplementedStatGenServiceServer) StartAssignment(context.Context, *StartAssignmentRequest) (*AssignmentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method StartAssignment not implemented")
}

func (UnimplementedStatGenServiceServer) GetAssignment(context.Context, *GetAssignmentRequest) (*AssignmentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetAssignment not implemented")
}

func (UnimplementedStatGenServiceServer) PickValue(context.Context, *PickValueRequest) (*AssignmentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PickValue not implemented")
}

func (UnimplementedStatGenServiceServer) ResetAssignment(context.Context, *ResetAssignmentRequest) (*AssignmentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ResetAssignment not implemented")
}

func (UnimplementedStatGenServiceServer) RerollAssignment(context.Context, *RerollAssignmentRequest) (*AssignmentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RerollAssignment not implemented")
}

func (UnimplementedStatGenServiceServer) CommitAssignment(context.Context, *CommitAssignmentRequest) (*CommitAssignmentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CommitAssignment not implemented")
}

func (UnimplementedStatGenServiceServer) DiscardAssignment(context.Context, *DiscardAssignmentRequest) (*DiscardAssignmentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DiscardAssignment not implemented")
}
func (UnimplementedStatGenServiceServer) mustEmbedUnimplementedStatGenServiceServer() {}

// RegisterStatGenServiceServer registers srv on s
func RegisterStatGenServiceServer(s grpc.ServiceRegistrar, srv StatGenServiceServer) {
	s.RegisterService(&StatGenService_ServiceDesc, srv)
}

func _StatGenService_ListMethods_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListMethodsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StatGenServiceServer).ListMethods(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StatGenService_ListMethods_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(StatGenServiceServer).ListMethods(ctx, req.(*ListMethodsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StatGenService_CreateCharacter_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateCharacterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StatGenServiceServer).CreateCharacter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StatGenService_CreateCharacter_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(StatGenServiceServer).CreateCharacter(ctx, req.(*CreateCharacterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StatGenService_GetCharacter_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetCharacterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StatGenServiceServer).GetCharacter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StatGenService_GetCharacter_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(StatGenServiceServer).GetCharacter(ctx, req.(*GetCharacterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StatGenService_GeneratePriority_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GeneratePriorityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StatGenServiceServer).GeneratePriority(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StatGenService_GeneratePriority_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(StatGenServiceServer).GeneratePriority(ctx, req.(*GeneratePriorityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StatGenService_GenerateHardcore_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GenerateHardcoreRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StatGenServiceServer).GenerateHardcore(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StatGenService_GenerateHardcore_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(StatGenServiceServer).GenerateHardcore(ctx, req.(*GenerateHardcoreRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StatGenService_StartAssignment_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(StartAssignmentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StatGenServiceServer).StartAssignment(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StatGenService_StartAssignment_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(StatGenServiceServer).StartAssignment(ctx, req.(*StartAssignmentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StatGenService_GetAssignment_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetAssignmentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StatGenServiceServer).GetAssignment(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StatGenService_GetAssignment_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(StatGenServiceServer).GetAssignment(ctx, req.(*GetAssignmentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StatGenService_PickValue_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(PickValueRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StatGenServiceServer).PickValue(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StatGenService_PickValue_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(StatGenServiceServer).PickValue(ctx, req.(*PickValueRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StatGenService_ResetAssignment_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ResetAssignmentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StatGenServiceServer).ResetAssignment(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StatGenService_ResetAssignment_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(StatGenServiceServer).ResetAssignment(ctx, req.(*ResetAssignmentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StatGenService_RerollAssignment_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RerollAssignmentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StatGenServiceServer).RerollAssignment(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StatGenService_RerollAssignment_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(StatGenServiceServer).RerollAssignment(ctx, req.(*RerollAssignmentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StatGenService_CommitAssignment_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CommitAssignmentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StatGenServiceServer).CommitAssignment(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StatGenService_CommitAssignment_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(StatGenServiceServer).CommitAssignment(ctx, req.(*CommitAssignmentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StatGenService_DiscardAssignment_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DiscardAssignmentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StatGenServiceServer).DiscardAssignment(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StatGenService_DiscardAssignment_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(StatGenServiceServer).DiscardAssignment(ctx, req.(*DiscardAssignmentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// StatGenService_ServiceDesc is the grpc.ServiceDesc for StatGenService
var StatGenService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*StatGenServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListMethods",
			Handler:    _StatGenService_ListMethods_Handler,
		},
		{
			MethodName: "CreateCharacter",
			Handler:    _StatGenService_CreateCharacter_Handler,
		},
		{
			MethodName: "GetCharacter",
			Handler:    _StatGenService_GetCharacter_Handler,
		},
		{
			MethodName: "GeneratePriority",
			Handler:    _StatGenService_GeneratePriority_Handler,
		},
		{
			MethodName: "GenerateHardcore",
			Handler:    _StatGenService_GenerateHardcore_Handler,
		},
		{
			MethodName: "StartAssignment",
			Handler:    _StatGenService_StartAssignment_Handler,
		},
		{
			MethodName: "GetAssignment",
			Handler:    _StatGenService_GetAssignment_Handler,
		},
		{
			MethodName: "PickValue",
			Handler:    _StatGenService_PickValue_Handler,
		},
		{
			MethodName: "ResetAssignment",
			Handler:    _StatGenService_ResetAssignment_Handler,
		},
		{
			MethodName: "RerollAssignment",
			Handler:    _StatGenService_RerollAssignment_Handler,
		},
		{
			MethodName: "CommitAssignment",
			Handler:    _StatGenService_CommitAssignment_Handler,
		},
		{
			MethodName: "DiscardAssignment",
			Handler:    _StatGenService_DiscardAssignment_Handler,
		},
	},
	Streams:     []grpc.StreamDesc{},
}
