package handler

import (
	"context"
	"errors"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/rl1809/shelf-service/internal/adapter/handler/shelfpb"
	"github.com/rl1809/shelf-service/internal/core/domain"
	"github.com/rl1809/shelf-service/internal/core/service"
	"github.com/rl1809/shelf-service/internal/logging"
)

type GRPCHandler struct {
	shelfpb.UnimplementedShelfServiceServer
	shelves ShelfUseCase
}

func NewGRPCHandler(shelves ShelfUseCase) *GRPCHandler {
	return &GRPCHandler{shelves: shelves}
}

func (h *GRPCHandler) RecordShelf(ctx context.Context, req *shelfpb.RecordShelfRequest) (*shelfpb.MessageResponse, error) {
	shelf := make([]domain.ShelfItem, len(req.GetShelf()))
	for i, item := range req.GetShelf() {
		if item == nil {
			return nil, status.Errorf(codes.InvalidArgument, "shelf[%d] is required", i)
		}
		shelf[i] = domain.ShelfItem{ProductID: item.GetProductId(), RelevancyScore: item.GetRelevancyScore()}
	}

	if err := h.shelves.RecordShelf(ctx, req.GetShopperId(), shelf); err != nil {
		return nil, toStatus(err)
	}
	return &shelfpb.MessageResponse{Message: msgShelfRecorded}, nil
}

// RecordProduct stores an unset category or brand as NULL.
func (h *GRPCHandler) RecordProduct(ctx context.Context, req *shelfpb.RecordProductRequest) (*shelfpb.MessageResponse, error) {
	err := h.shelves.RecordProduct(ctx, domain.Product{
		ProductID: req.GetProductId(),
		Category:  req.Category,
		Brand:     req.Brand,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &shelfpb.MessageResponse{Message: msgProductRecorded}, nil
}

func (h *GRPCHandler) QueryProducts(ctx context.Context, req *shelfpb.QueryProductsRequest) (*shelfpb.QueryProductsResponse, error) {
	products, err := h.shelves.QueryProducts(ctx, domain.ProductQuery{
		ShopperID: req.GetShopperId(),
		Category:  req.GetCategory(),
		Brand:     req.GetBrand(),
		Limit:     int(req.GetLimit()),
	})
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &shelfpb.QueryProductsResponse{Products: make([]*shelfpb.Product, len(products))}
	for i, p := range products {
		resp.Products[i] = &shelfpb.Product{
			ProductId:      p.ProductID,
			Category:       p.Category,
			Brand:          p.Brand,
			RelevancyScore: p.RelevancyScore,
		}
	}
	return resp, nil
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, service.ErrShopperNotFound):
		return status.Error(codes.InvalidArgument, msgUnknownShopper)
	case errors.Is(err, service.ErrInvalidRequest):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// UnaryLogger is the gRPC counterpart of RequestLogger. The request id is
// read from the x-request-id metadata key when present.
func UnaryLogger() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		start := time.Now()

		requestID := ""
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if ids := md.Get(RequestIDHeader); len(ids) > 0 {
				requestID = ids[0]
			}
		}
		if requestID == "" {
			requestID = logging.GenerateRequestID()
		}
		ctx = logging.ContextWithRequestID(ctx, requestID)

		resp, err := next(ctx, req)

		code := status.Code(err)
		event := logging.Ctx(ctx).Info()
		if code == codes.Internal || code == codes.Unknown {
			event = logging.Ctx(ctx).Error().Err(err)
		} else if err != nil {
			event = logging.Ctx(ctx).Warn().Err(err)
		}
		event.
			Str("method", info.FullMethod).
			Str("code", code.String()).
			Dur("latency", time.Since(start)).
			Msg("rpc")

		return resp, err
	}
}

// NewGRPCServer builds a server with the shelf service registered.
func NewGRPCServer(h *GRPCHandler) *grpc.Server {
	srv := grpc.NewServer(grpc.UnaryInterceptor(UnaryLogger()))
	shelfpb.RegisterShelfServiceServer(srv, h)
	return srv
}
