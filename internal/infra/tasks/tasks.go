// Package tasks defines the asynq task types exchanged between the API and the worker.
package tasks

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/pkg/errors"
)

// TypeSendCodeEmail is the task type for delivering a loyalty code email.
const TypeSendCodeEmail = "email:send_code"

// SendCodeEmailPayload carries the code record to deliver.
// Only the ID travels on the queue; the worker re-reads the code so a resend
// always sees current state.
type SendCodeEmailPayload struct {
	CodeID uuid.UUID `json:"code_id"`
}

// NewSendCodeEmailTask builds the asynq task for a loyalty code email.
func NewSendCodeEmailTask(codeID uuid.UUID) (*asynq.Task, error) {
	payload, err := json.Marshal(SendCodeEmailPayload{CodeID: codeID})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return asynq.NewTask(TypeSendCodeEmail, payload, asynq.MaxRetry(5)), nil
}

// ParseSendCodeEmailPayload decodes the payload of a send-code task.
func ParseSendCodeEmailPayload(data []byte) (*SendCodeEmailPayload, error) {
	var payload SendCodeEmailPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode send code email payload")
	}

	return &payload, nil
}
