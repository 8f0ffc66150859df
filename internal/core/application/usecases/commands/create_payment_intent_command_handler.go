package commands

import (
	"context"
	"strconv"
	"strings"

	"mescolis/internal/core/domain/model/payment"
	"mescolis/internal/core/ports"

	"github.com/shopspring/decimal"
)

// CreatePaymentIntentResponse carries what a client needs to complete the
// payment on its side.
type CreatePaymentIntentResponse struct {
	ClientSecret    string
	PaymentIntentID string
	Amount          decimal.Decimal
	Currency        string
}

// CreatePaymentIntentCommandHandler opens payment intents with the processor
// and records a pending local payment for later reconciliation.
type CreatePaymentIntentCommandHandler struct {
	uowFactory PaymentUoWFactory
	gateway    ports.PaymentGateway
}

// NewCreatePaymentIntentCommandHandler creates a handler for opening payment
// intents.
func NewCreatePaymentIntentCommandHandler(
	uowFactory PaymentUoWFactory,
	gateway ports.PaymentGateway,
) CreatePaymentIntentCommandHandler {
	return CreatePaymentIntentCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the payment intent command.
// The intent is opened under the user's processor customer and tagged with
// enough metadata to reconcile webhooks. The local record starts Pending.
func (h *CreatePaymentIntentCommandHandler) Handle(
	ctx context.Context, cmd CreatePaymentIntentCommand,
) (*CreatePaymentIntentResponse, error) {
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

	payer, err := uow.UserRepository().Get(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}

	shipmentID := ""
	if cmd.ShipmentID() != nil {
		shipmentID = strconv.FormatInt(*cmd.ShipmentID(), 10)
	}

	intent, err := h.gateway.CreateIntent(ctx, ports.CreateIntentRequest{
		Amount:      cmd.Amount(),
		Currency:    strings.ToLower(cmd.Currency()),
		CustomerID:  payer.PaymentCustomerID(),
		Description: cmd.Description(),
		UserID:      payer.ID().String(),
		PaymentType: cmd.PaymentType().String(),
		ShipmentID:  shipmentID,
	})
	if err != nil {
		return nil, err
	}

	aggregate, err := payment.NewPayment(
		cmd.UserID(),
		intent.ID,
		cmd.Amount(),
		cmd.Currency(),
		cmd.PaymentType(),
		cmd.Description(),
		timeNow(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.PaymentRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return &CreatePaymentIntentResponse{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
		Amount:          cmd.Amount(),
		Currency:        cmd.Currency(),
	}, nil
}
