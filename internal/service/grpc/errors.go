package grpcsvc

import (
	"context"
	"errors"
	"strings"

	log "github.com/sirupsen/logrus"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// ErrorDomain — значение ErrorInfo.Domain для ошибок витрины.
const ErrorDomain = "storefront"

// Причины ошибок в ErrorInfo.Reason.
const (
	ReasonInvalidInput       = "INVALID_INPUT"
	ReasonCustomerNotFound   = "CUSTOMER_NOT_FOUND"
	ReasonProductNotFound    = "PRODUCT_NOT_FOUND"
	ReasonInsufficientStock  = "INSUFFICIENT_STOCK"
	ReasonOrderNotFound      = "ORDER_NOT_FOUND"
	ReasonAlreadyExists      = "ALREADY_EXISTS"
	ReasonPersistenceFailure = "PERSISTENCE_FAILURE"
	ReasonIdempotencyReused  = "IDEMPOTENCY_KEY_REUSED"
	ReasonIdempotencyPending = "IDEMPOTENCY_KEY_IN_PROGRESS"
)

// metadataProductIDs — ключ ErrorInfo.Metadata со списком товаров через запятую.
const metadataProductIDs = "product_ids"

type errorMapping struct {
	code   codes.Code
	reason string
}

var kindMappings = map[domain.ErrorKind]errorMapping{
	domain.ErrorKindInvalidInput:      {codes.InvalidArgument, ReasonInvalidInput},
	domain.ErrorKindCustomerNotFound:  {codes.NotFound, ReasonCustomerNotFound},
	domain.ErrorKindProductNotFound:   {codes.NotFound, ReasonProductNotFound},
	domain.ErrorKindInsufficientStock: {codes.FailedPrecondition, ReasonInsufficientStock},
	domain.ErrorKindNotFound:          {codes.NotFound, ReasonOrderNotFound},
	domain.ErrorKindConflict:          {codes.AlreadyExists, ReasonAlreadyExists},
	domain.ErrorKindPersistence:       {codes.Unavailable, ReasonPersistenceFailure},
}

// toStatus переводит доменную ошибку в gRPC-статус с ErrorInfo.
// Текст ошибок хранилища наружу не отдаётся.
func (s *StorefrontService) toStatus(ctx context.Context, operation string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled):
		return status.Error(codes.Canceled, "request canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "request deadline exceeded")
	}

	kind := domain.KindOf(err)
	mapping := kindMappings[kind]
	message := err.Error()
	if kind == domain.ErrorKindPersistence {
		s.logger.WithError(err).WithField("operation", operation).Error("storage failure")
		message = "storage is unavailable, retry the request"
	}

	var metadata map[string]string
	if ids := domain.ProductIDsOf(err); len(ids) > 0 {
		metadata = map[string]string{metadataProductIDs: strings.Join(ids, ",")}
	}
	return statusWithInfo(mapping.code, message, mapping.reason, metadata)
}

func statusWithInfo(code codes.Code, message, reason string, metadata map[string]string) error {
	st := status.New(code, message)
	withDetails, err := st.WithDetails(&errdetails.ErrorInfo{
		Reason:   reason,
		Domain:   ErrorDomain,
		Metadata: metadata,
	})
	if err != nil {
		log.WithError(err).WithField("reason", reason).Warn("failed to attach error details")
		return st.Err()
	}
	return withDetails.Err()
}

// ErrorInfoOf извлекает ErrorInfo из gRPC-ошибки.
func ErrorInfoOf(err error) (*errdetails.ErrorInfo, bool) {
	st, ok := status.FromError(err)
	if !ok {
		return nil, false
	}
	for _, detail := range st.Details() {
		if info, ok := detail.(*errdetails.ErrorInfo); ok {
			return info, true
		}
	}
	return nil, false
}
