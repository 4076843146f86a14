// Package discount - discount code administration use cases.
package discount

import (
	"context"

	"storefront/domain/discount"
	"storefront/domain/shared"
	apperrors "storefront/pkg/errors"
	"storefront/pkg/logger"

	"go.uber.org/zap"
)

// Service implements discount code administration.
type Service struct {
	codes    discount.Repository
	currency string
}

// NewService creates the discount application service.
func NewService(codes discount.Repository, currency string) *Service {
	return &Service{codes: codes, currency: currency}
}

// CreateCode defines a new discount code.
func (s *Service) CreateCode(ctx context.Context, req *CreateCodeRequest) (*CodeResponse, error) {
	opts := discount.CodeOptions{MaxUses: req.MaxUses}
	if req.MinAmount != nil {
		opts.MinAmount = shared.NewMoney(*req.MinAmount, s.currency)
	}
	if req.MaxDiscount != nil {
		opts.MaxDiscount = shared.NewMoney(*req.MaxDiscount, s.currency)
	}

	code, err := discount.NewCode(req.Code, discount.Kind(req.Kind), req.Value, req.ValidFrom, req.ValidUntil, opts)
	if err != nil {
		return nil, apperrors.FromDomainError(err)
	}
	if err := s.codes.Save(ctx, code); err != nil {
		return nil, apperrors.FromDomainError(err)
	}

	logger.Info("Discount code created",
		zap.String("discount_code", code.Code()),
		zap.String("kind", string(code.Kind())),
		zap.Int64("value", code.Value()),
	)
	return ToCodeResponse(code), nil
}

// ListCodes lists all discount codes.
func (s *Service) ListCodes(ctx context.Context) ([]*CodeResponse, error) {
	codes, err := s.codes.FindAll(ctx)
	if err != nil {
		return nil, apperrors.FromDomainError(err)
	}

	responses := make([]*CodeResponse, len(codes))
	for i, code := range codes {
		responses[i] = ToCodeResponse(code)
	}
	return responses, nil
}
