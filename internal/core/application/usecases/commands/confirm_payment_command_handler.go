package commands

import (
	"context"

	"mescolis/internal/core/domain/model/payment"
	"mescolis/internal/core/ports"
)

// ConfirmPaymentCommandHandler reconciles local payment records against the
// processor. The processor is the source of truth: whatever status the
// intent reports is mapped onto the local record.
type ConfirmPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	gateway    ports.PaymentGateway
}

// NewConfirmPaymentCommandHandler creates a handler for payment
// reconciliation.
func NewConfirmPaymentCommandHandler(
	uowFactory PaymentUoWFactory,
	gateway ports.PaymentGateway,
) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the reconciliation command.
// Confirming an already-settled payment is a no-op that reports the settled
// state again, so the operation is safe to repeat.
func (h *ConfirmPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentCommand) (*payment.Payment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	paymentRepo := uow.PaymentRepository()
	aggregate, err := paymentRepo.GetByIntentID(ctx, cmd.IntentID())
	if err != nil {
		return nil, err
	}

	intent, err := h.gateway.GetIntent(ctx, cmd.IntentID())
	if err != nil {
		return nil, err
	}

	aggregate.ApplyIntentStatus(intent.Status, timeNow())

	if err = paymentRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
