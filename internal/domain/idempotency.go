package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// IdempotencyStatus описывает жизненный цикл ключа идемпотентности.
type IdempotencyStatus string

const (
	// IdempotencyStatusProcessing — запрос принят и ещё выполняется.
	IdempotencyStatusProcessing IdempotencyStatus = "processing"
	// IdempotencyStatusDone — ответ сохранён и отдаётся повторам.
	IdempotencyStatusDone IdempotencyStatus = "done"
	// IdempotencyStatusFailed — сохранена окончательная ошибка.
	IdempotencyStatusFailed IdempotencyStatus = "failed"
)

// maxIdempotencyKeyLen ограничивает длину клиентского ключа.
const maxIdempotencyKeyLen = 128

var (
	ErrIdempotencyKeyRequired         = errors.New("idempotency key is required")
	ErrIdempotencyKeyTooLong          = fmt.Errorf("idempotency key must be at most %d characters", maxIdempotencyKeyLen)
	ErrIdempotencyRequestHashRequired = errors.New("idempotency request hash is required")
	ErrIdempotencyKeyNotFound         = errors.New("idempotency key not found")
	ErrIdempotencyKeyAlreadyExists    = errors.New("idempotency key already exists")
	// ErrIdempotencyHashMismatch — ключ переиспользован с другим телом запроса.
	ErrIdempotencyHashMismatch = errors.New("idempotency key reused with different request")
	// ErrIdempotencyStatusNotFinal — попытка завершить запись статусом processing.
	ErrIdempotencyStatusNotFinal = errors.New("idempotency status must be done or failed")
)

// IdempotencyKey — клиентский ключ в пространстве пользователя.
// Одинаковые ключи разных пользователей не пересекаются.
type IdempotencyKey struct {
	UserID string
	Key    string
}

// NewIdempotencyKey нормализует и проверяет ключ.
func NewIdempotencyKey(userID, key string) (IdempotencyKey, error) {
	k := IdempotencyKey{UserID: strings.TrimSpace(userID), Key: strings.TrimSpace(key)}
	if err := k.Validate(); err != nil {
		return IdempotencyKey{}, err
	}
	return k, nil
}

// Validate проверяет, что обе части ключа заданы.
func (k IdempotencyKey) Validate() error {
	if k.UserID == "" {
		return ErrUserRequired
	}
	if k.Key == "" {
		return ErrIdempotencyKeyRequired
	}
	if len(k.Key) > maxIdempotencyKeyLen {
		return ErrIdempotencyKeyTooLong
	}
	return nil
}

func (k IdempotencyKey) String() string {
	return k.UserID + "/" + k.Key
}

// IdempotencyRecord хранит состояние обработки запроса с idempotency-key.
// ResponseCode содержит gRPC-код сохранённого ответа.
type IdempotencyRecord struct {
	UserID       string
	Key          string
	RequestHash  string
	ResponseBody []byte
	ResponseCode int
	Status       IdempotencyStatus
	TTLAt        time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Expired сообщает, что запись больше не защищает ключ и может быть перезаписана.
func (r IdempotencyRecord) Expired(now time.Time) bool {
	return !r.TTLAt.After(now)
}

// Valid проверяет, что статус относится к поддерживаемым значениям.
func (s IdempotencyStatus) Valid() bool {
	switch s {
	case IdempotencyStatusProcessing, IdempotencyStatusDone, IdempotencyStatusFailed:
		return true
	default:
		return false
	}
}

// Final — статус с сохранённым ответом.
func (s IdempotencyStatus) Final() bool {
	return s == IdempotencyStatusDone || s == IdempotencyStatusFailed
}
