package commands

import (
	"context"

	"orderintake/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler applies status changes requested through
// the admin surface. Loads the order, applies the new status and persists it
// within a single transaction.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	tx         transactionConfig
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory, opts ...TransactionOption) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		tx:         newTransactionConfig(opts),
	}
}

// Handle processes the status update and returns the updated aggregate.
// Returns ErrObjectNotFound when the order does not exist.
func (h UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	txCtx, cancel := h.tx.bound(ctx)
	defer cancel()

	uow := h.uowFactory.Create()
	if err := uow.Begin(txCtx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(txCtx)
	}()

	repo := uow.OrderRepository()

	aggregate, err := repo.Get(txCtx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return nil, err
	}

	if err = repo.Update(txCtx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(txCtx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
