package handler

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	PairServiceName                = "pairs.v1.PairService"
	PairServiceFindLongestPairName = "/pairs.v1.PairService/FindLongestPair"
)

// PairServiceServer は pairs.v1.PairService のサーバー側インターフェースです。
// リクエスト・レスポンスは google.protobuf.Struct で表現します。
type PairServiceServer interface {
	FindLongestPair(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// RegisterPairServiceServer は PairService を gRPC サーバーへ登録します。
func RegisterPairServiceServer(s grpc.ServiceRegistrar, srv PairServiceServer) {
	s.RegisterService(&pairServiceDesc, srv)
}

func findLongestPairHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PairServiceServer).FindLongestPair(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PairServiceFindLongestPairName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PairServiceServer).FindLongestPair(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

var pairServiceDesc = grpc.ServiceDesc{
	ServiceName: PairServiceName,
	HandlerType: (*PairServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "FindLongestPair",
			Handler:    findLongestPairHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pairs/v1/pair.proto",
}

// PairServiceClient は pairs.v1.PairService のクライアントです。
type PairServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewPairServiceClient は PairServiceClient を生成します。
func NewPairServiceClient(cc grpc.ClientConnInterface) *PairServiceClient {
	return &PairServiceClient{cc: cc}
}

// FindLongestPair は最も長く一緒に働いたペアを問い合わせます。
func (c *PairServiceClient) FindLongestPair(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, PairServiceFindLongestPairName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
