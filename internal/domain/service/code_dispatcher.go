package service

import (
	"context"

	"github.com/google/uuid"
)

// CodeDispatcher queues a loyalty code email for asynchronous delivery.
// Dispatch is best effort; a failed enqueue never invalidates the issued code.
type CodeDispatcher interface {
	// EnqueueSendCode schedules the email for the given code record.
	EnqueueSendCode(ctx context.Context, codeID uuid.UUID) error
}
