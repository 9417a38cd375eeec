package commands

import (
	"context"

	"orderintake/internal/core/domain/model/customer"
	"orderintake/internal/core/domain/model/order"
	"orderintake/internal/core/domain/model/zone"
	"orderintake/internal/core/domain/services"
	"orderintake/internal/core/ports"
	"orderintake/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Runs the validation chain, resolves the delivery zone, and persists the
// order, its items and the customer atomically.
//
// Zone resolution happens before the transaction opens: the zone table is
// read rarely and the polygon test is pure computation, so holding a
// transaction open for it would only add contention. The fee captured here
// is the fee charged even if an administrator changes the zone concurrently.
type CreateOrderCommandHandler struct {
	uowFactory IntakeUoWFactory
	zones      ports.ZoneRepository
	validator  services.OrderValidator
	resolver   services.ZoneResolver
	tx         transactionConfig
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// The zone repository is read outside the unit of work and may be bound to
// the shared connection pool rather than a transaction.
func NewCreateOrderCommandHandler(
	uowFactory IntakeUoWFactory,
	zones ports.ZoneRepository,
	validator services.OrderValidator,
	resolver services.ZoneResolver,
	opts ...TransactionOption,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		zones:      zones,
		validator:  validator,
		resolver:   resolver,
		tx:         newTransactionConfig(opts),
	}
}

// Handle processes the order placement command and returns the persisted
// aggregate with its database-assigned identifiers.
//
// Failure modes surface as typed errors: business-rule violations from the
// validation chain, ErrOutOfServiceArea when no zone covers the delivery
// point, and ErrObjectNotFound when an item references an unknown product.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.validator.Validate(draftFromCommand(cmd)); err != nil {
		return nil, err
	}

	resolvedZone, err := h.resolveZone(ctx, cmd)
	if err != nil {
		return nil, err
	}

	aggregate, err := buildOrder(cmd, resolvedZone)
	if err != nil {
		return nil, err
	}

	// The whole unit-of-work span runs under a deadline: exceeding it
	// aborts the transaction rather than holding the connection open.
	txCtx, cancel := h.tx.bound(ctx)
	defer cancel()

	uow := h.uowFactory.Create()
	if err = uow.Begin(txCtx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(txCtx)
	}()

	if err = h.checkProducts(txCtx, uow.ProductRepository(), cmd.Items()); err != nil {
		return nil, err
	}

	cust, err := h.upsertCustomer(txCtx, uow.CustomerRepository(), cmd)
	if err != nil {
		return nil, err
	}
	if err = aggregate.AssignCustomer(cust.ID()); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(txCtx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(txCtx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

func draftFromCommand(cmd CreateOrderCommand) services.OrderDraft {
	items := make([]services.DraftItem, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		items = append(items, services.DraftItem{
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
		})
	}

	return services.OrderDraft{
		DeliveryType: cmd.DeliveryType(),
		Address:      cmd.Address(),
		Email:        cmd.Email(),
		Phone:        cmd.Phone(),
		Items:        items,
	}
}

// resolveZone returns the zone covering the delivery point, nil for pickup.
func (h CreateOrderCommandHandler) resolveZone(ctx context.Context, cmd CreateOrderCommand) (*zone.Zone, error) {
	if cmd.DeliveryType() != order.Delivery {
		return nil, nil
	}

	point := cmd.Point()
	if point == nil {
		return nil, errs.NewValueIsRequiredError("location")
	}

	zones, err := h.zones.GetAllActive(ctx)
	if err != nil {
		return nil, err
	}

	resolved, err := h.resolver.Resolve(*point, zones)
	if err != nil {
		return nil, err
	}
	if resolved == nil {
		return nil, errs.NewOutOfServiceAreaError(point.Lat(), point.Lng())
	}

	return resolved, nil
}

func buildOrder(cmd CreateOrderCommand, resolvedZone *zone.Zone) (*order.Order, error) {
	items := make([]order.Item, 0, len(cmd.Items()))
	for _, line := range cmd.Items() {
		item, err := order.NewItem(line.ProductID, line.Name, line.Quantity, line.UnitPrice, line.TotalPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	var (
		shippingFee float64
		zoneID      *int64
	)
	if resolvedZone != nil {
		shippingFee = float64(resolvedZone.DeliveryFee())
		id := resolvedZone.ID()
		zoneID = &id
	}

	return order.NewOrder(
		cmd.DeliveryType(),
		cmd.Address(),
		cmd.Point(),
		cmd.Comments(),
		cmd.PaymentMethod(),
		items,
		shippingFee,
		zoneID,
	)
}

// checkProducts verifies that every catalog reference in the cart exists.
func (h CreateOrderCommandHandler) checkProducts(
	ctx context.Context,
	products ports.ProductRepository,
	items []CreateOrderItem,
) error {
	ids := make([]int64, 0, len(items))
	seen := make(map[int64]bool, len(items))
	for _, item := range items {
		if item.ProductID == nil || seen[*item.ProductID] {
			continue
		}
		seen[*item.ProductID] = true
		ids = append(ids, *item.ProductID)
	}
	if len(ids) == 0 {
		return nil
	}

	existing, err := products.FindExistingIDs(ctx, ids)
	if err != nil {
		return err
	}

	found := make(map[int64]bool, len(existing))
	for _, id := range existing {
		found[id] = true
	}

	var missing []any
	for _, id := range ids {
		if !found[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return errs.NewObjectNotFoundErrorWithIDs("products", missing)
	}

	return nil
}

// upsertCustomer reuses an existing customer matched by email or normalized
// phone, refreshing its contact data, or creates a new one. The lookup and
// write run inside the caller's transaction, but no unique constraint backs
// the contact columns, so two concurrent orders with the same new contact
// can still create duplicate customers.
func (h CreateOrderCommandHandler) upsertCustomer(
	ctx context.Context,
	customers ports.CustomerRepository,
	cmd CreateOrderCommand,
) (*customer.Customer, error) {
	existing, err := customers.FindByContact(ctx, cmd.Email(), customer.NormalizePhone(cmd.Phone()))
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if err = existing.Refresh(cmd.FullName(), cmd.Email(), cmd.Phone()); err != nil {
			return nil, err
		}
		if err = customers.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	created, err := customer.NewCustomer(cmd.FullName(), cmd.Email(), cmd.Phone())
	if err != nil {
		return nil, err
	}
	if err = customers.Add(ctx, created); err != nil {
		return nil, err
	}

	return created, nil
}
