package grpcsvc

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

const (
	// IdempotencyKeyHeader — имя заголовка gRPC metadata с ключом идемпотентности.
	IdempotencyKeyHeader  = "idempotency-key"
	defaultIdempotencyTTL = 24 * time.Hour

	previousFailureMessage = "previous request with the same idempotency key failed"
)

var errNilRequest = errors.New("request is nil")

// idempotencyErrorPayload — сохранённая окончательная ошибка запроса.
type idempotencyErrorPayload struct {
	Code     int32             `json:"code"`
	Message  string            `json:"message"`
	Reason   string            `json:"reason,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// withIdempotency выполняет handler не более одного раза на ключ.
// Без заголовка запрос обрабатывается как обычный.
func withIdempotency[T proto.Message](
	s *StorefrontService,
	ctx context.Context,
	method string,
	req proto.Message,
	newResp func() T,
	handler func(context.Context) (T, error),
) (T, error) {
	var zero T

	key, ok := readIdempotencyKey(ctx)
	if s.idemRepo == nil || !ok {
		return handler(ctx)
	}
	logger := s.logger.WithField("idempotency_key", key).WithField("method", method)

	hash, err := buildIdempotencyRequestHash(method, req)
	if err != nil {
		logger.WithError(err).Warn("failed to hash idempotent request")
		return zero, status.Error(codes.Internal, "failed to initialize idempotency request")
	}

	record, err := s.idemRepo.CreateProcessing(ctx, key, hash, time.Now().UTC().Add(s.idemTTL))
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrIdempotencyHashMismatch):
		return zero, statusWithInfo(codes.FailedPrecondition,
			"idempotency key is already used with different request payload", ReasonIdempotencyReused, nil)
	case errors.Is(err, domain.ErrIdempotencyKeyAlreadyExists):
		return replayRecord(record, newResp)
	default:
		logger.WithError(err).Warn("failed to create idempotency record")
		return zero, status.Error(codes.Unavailable, "failed to initialize idempotency request")
	}

	resp, runErr := handler(ctx)

	// Результат фиксируется даже если клиент уже отключился.
	storeCtx := context.WithoutCancel(ctx)
	if runErr != nil {
		s.settleFailure(storeCtx, key, runErr)
		return zero, runErr
	}
	body, err := protojson.Marshal(resp)
	if err == nil {
		err = s.idemRepo.MarkDone(storeCtx, key, body, int(codes.OK))
	}
	if err != nil {
		logger.WithError(err).Warn("failed to store idempotent response")
	}
	return resp, nil
}

// replayRecord отдаёт сохранённый результат для ключа, который уже занят
// запросом с тем же телом.
func replayRecord[T proto.Message](record domain.IdempotencyRecord, newResp func() T) (T, error) {
	var zero T

	switch record.Status {
	case domain.IdempotencyStatusProcessing:
		return zero, statusWithInfo(codes.Aborted,
			"request with the same idempotency key is already processing", ReasonIdempotencyPending, nil)
	case domain.IdempotencyStatusFailed:
		return zero, decodeIdempotencyFailure(record)
	case domain.IdempotencyStatusDone:
		resp := newResp()
		if len(record.ResponseBody) == 0 || protojson.Unmarshal(record.ResponseBody, resp) != nil {
			return zero, status.Error(codes.Internal, "stored idempotent response is unreadable")
		}
		return resp, nil
	default:
		return zero, status.Errorf(codes.Internal, "unknown idempotency record status %q", record.Status)
	}
}

// settleFailure сохраняет окончательную ошибку. Временные сбои освобождают
// ключ, чтобы клиент мог повторить запрос.
func (s *StorefrontService) settleFailure(ctx context.Context, key string, runErr error) {
	st := status.Convert(runErr)
	code := st.Code()
	if code == codes.OK {
		code = codes.Internal
	}
	logger := s.logger.WithField("idempotency_key", key)

	if retryableCode(code) {
		if err := s.idemRepo.Release(ctx, key); err != nil {
			logger.WithError(err).Warn("failed to release idempotency key")
		}
		return
	}

	body, err := json.Marshal(failurePayload(code, st))
	if err != nil {
		logger.WithError(err).Warn("failed to encode idempotency failure")
		body = nil
	}
	if err := s.idemRepo.MarkFailed(ctx, key, body, int(code)); err != nil {
		logger.WithError(err).Warn("failed to store idempotency failure")
	}
}

func failurePayload(code codes.Code, st *status.Status) idempotencyErrorPayload {
	p := idempotencyErrorPayload{
		Code:    int32(code), //nolint:gosec // codes.Code is a bounded enum value.
		Message: st.Message(),
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			p.Reason, p.Metadata = info.GetReason(), info.GetMetadata()
			break
		}
	}
	return p
}

func retryableCode(code codes.Code) bool {
	switch code {
	case codes.Unavailable, codes.Canceled, codes.DeadlineExceeded, codes.Aborted:
		return true
	default:
		return false
	}
}

// decodeIdempotencyFailure восстанавливает сохранённую ошибку. Если тело
// повреждено, используется только код ответа.
func decodeIdempotencyFailure(record domain.IdempotencyRecord) error {
	var p idempotencyErrorPayload
	if len(record.ResponseBody) > 0 && json.Unmarshal(record.ResponseBody, &p) == nil {
		if code, ok := failureCode(int64(p.Code)); ok {
			msg := p.Message
			if msg == "" {
				msg = previousFailureMessage
			}
			if p.Reason == "" {
				return status.Error(code, msg)
			}
			return statusWithInfo(code, msg, p.Reason, p.Metadata)
		}
	}

	code, ok := failureCode(int64(record.ResponseCode))
	if !ok {
		code = codes.Internal
	}
	return status.Error(code, previousFailureMessage)
}

// failureCode принимает только известные gRPC-коды ошибок.
func failureCode(v int64) (codes.Code, bool) {
	if v <= int64(codes.OK) || v > int64(codes.Unauthenticated) {
		return codes.Internal, false
	}
	return codes.Code(uint32(v)), true
}

func readIdempotencyKey(ctx context.Context) (string, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", false
	}
	for _, v := range md.Get(IdempotencyKeyHeader) {
		if key := strings.TrimSpace(v); key != "" {
			return key, true
		}
	}
	return "", false
}

// buildIdempotencyRequestHash хеширует имя метода и детерминированный
// protobuf запроса: один ключ с разными методами даёт разные хеши.
func buildIdempotencyRequestHash(method string, req proto.Message) (string, error) {
	if req == nil {
		return "", errNilRequest
	}
	data, err := proto.MarshalOptions{Deterministic: true}.Marshal(req)
	if err != nil {
		return "", err
	}

	h := sha256.New()
	h.Write([]byte(method))
	h.Write([]byte{':'})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil)), nil
}
