package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"vizoshop/internal/core/domain/model/kernel"
	"vizoshop/internal/core/domain/model/order"
	"vizoshop/internal/core/domain/model/shipment"
	"vizoshop/internal/core/domain/services"
	"vizoshop/internal/core/ports"
	"vizoshop/internal/pkg/errs"
)

// SubmitOrderCommandHandler runs the order submission pipeline: validate,
// price, record, then hand the shipment to the delivery partner relays.
//
// Recording is the commit point. A persistence failure rejects the whole
// submission and leaves the cart untouched; a dispatch failure after that
// only downgrades the outcome to PartiallyCompleted.
//
// Example:
//
//	handler := NewSubmitOrderCommandHandler(uowFactory, catalog, validator, calculator, builder, dispatcher, logger)
//	result, err := handler.Handle(ctx, cmd)
//	switch result.State {
//	case Completed:          // result.Tracking holds the partner reference
//	case PartiallyCompleted: // saved, shipment to be arranged manually
//	case Rejected:           // err is ErrAuthenticationRequired, *ValidationError or ErrNoItems
//	case PersistenceFailed:  // err is *PersistenceError
//	}
type SubmitOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.CatalogRepository
	validator  services.OrderValidator
	calculator services.ShippingCostCalculator
	builder    shipment.Builder
	dispatcher ports.ShipmentDispatcher
	now        func() time.Time
	logger     *slog.Logger
}

func NewSubmitOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.CatalogRepository,
	validator services.OrderValidator,
	calculator services.ShippingCostCalculator,
	builder shipment.Builder,
	dispatcher ports.ShipmentDispatcher,
	logger *slog.Logger,
) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		validator:  validator,
		calculator: calculator,
		builder:    builder,
		dispatcher: dispatcher,
		now:        time.Now,
		logger:     logger.With("component", "order_submission"),
	}
}

// WithClock returns a copy of the handler reading submission time from now.
func (h SubmitOrderCommandHandler) WithClock(now func() time.Time) SubmitOrderCommandHandler {
	h.now = now
	return h
}

// Handle runs one submission to a terminal state. The returned error is nil
// for every accepted outcome (Completed, PartiallyCompleted, Duplicate).
func (h *SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) (SubmitOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return SubmitOrderResult{State: Idle}, err
	}

	s := &submission{
		ctx:    ctx,
		logger: h.logger.With("idempotencyKey", cmd.IdempotencyKey()),
		result: SubmitOrderResult{State: Idle, Trace: []SubmissionState{Idle}},
	}
	s.enter(Validating)

	owner, err := kernel.NewOwnerID(cmd.OwnerID())
	if err != nil {
		return s.reject(ErrAuthenticationRequired)
	}

	if fieldErrors := h.validator.Validate(cmd.Customer(), cmd.DeliveryMethod()); len(fieldErrors) > 0 {
		s.result.FieldErrors = fieldErrors
		return s.reject(&ValidationError{Fields: fieldErrors})
	}

	existing, err := h.findByIdempotencyKey(ctx, owner, cmd.IdempotencyKey())
	if err != nil {
		return s.fail(err)
	}
	if existing != nil {
		return s.duplicate(existing)
	}

	items, err := h.loadItems(ctx, owner, cmd)
	if err != nil {
		if isSelectionError(err) {
			fieldErrors := map[string]string{"items": err.Error()}
			s.result.FieldErrors = fieldErrors
			return s.reject(&ValidationError{Fields: fieldErrors})
		}
		return s.fail(err)
	}
	if len(items) == 0 {
		return s.reject(ErrNoItems)
	}

	customer := cmd.Customer().Trimmed()
	quote := h.calculator.ComputeFee(customer.Region, cmd.DeliveryMethod())
	s.result.ShippingResolved = quote.Resolved
	if !quote.Resolved {
		s.logger.WarnContext(ctx, "No tariff for region, shipping priced at zero",
			"region", customer.Region, "deliveryMethod", cmd.DeliveryMethod().String())
	}

	submittedAt := h.now()
	placed, err := order.NewOrder(
		kernel.NewUUID(), owner, cmd.IdempotencyKey(), customer, cmd.DeliveryMethod(),
		items, quote.Fee, cmd.Source(), submittedAt,
	)
	if err != nil {
		return s.reject(err)
	}

	s.enter(Persisting)
	if err = h.persist(ctx, placed); err != nil {
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			if winner, findErr := h.findByIdempotencyKey(ctx, owner, cmd.IdempotencyKey()); findErr == nil && winner != nil {
				return s.duplicate(winner)
			}
		}
		return s.fail(err)
	}
	s.result.OrderID = placed.ID()
	s.result.Summary = placed.Summary()

	s.enter(Dispatching)
	h.dispatch(s, placed, submittedAt, cmd)

	if placed.Source() == order.SourceCart {
		h.clearCart(ctx, s.logger, owner)
	}

	return s.result, nil
}

func (h *SubmitOrderCommandHandler) findByIdempotencyKey(ctx context.Context, owner kernel.OwnerID, key string) (*order.Order, error) {
	uow := h.uowFactory.Create()

	existing, err := uow.OrderRepository().GetByIdempotencyKey(ctx, owner, key)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return existing, nil
}

func (h *SubmitOrderCommandHandler) loadItems(
	ctx context.Context,
	owner kernel.OwnerID,
	cmd SubmitOrderCommand,
) ([]order.Item, error) {
	if cmd.Source() == order.SourceCart {
		uow := h.uowFactory.Create()
		return uow.CartRepository().Items(ctx, owner)
	}

	selections := cmd.Selections()
	items := make([]order.Item, 0, len(selections))
	for _, sel := range selections {
		item, err := h.catalog.Snapshot(ctx, sel.ProductID, sel.Quantity, sel.Size)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (h *SubmitOrderCommandHandler) persist(ctx context.Context, placed *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Add(ctx, placed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *SubmitOrderCommandHandler) dispatch(
	s *submission,
	placed *order.Order,
	submittedAt time.Time,
	cmd SubmitOrderCommand,
) {
	req := h.builder.Build(placed, submittedAt, cmd.Overrides())
	s.result.Reference = req.OrderID

	if req.RegionDefaulted || req.SubRegionDefaulted {
		s.logger.WarnContext(s.ctx, "Destination not in partner tables, capital ids used",
			"region", req.ToRegionName, "regionDefaulted", req.RegionDefaulted,
			"subRegion", req.ToSubRegionName, "subRegionDefaulted", req.SubRegionDefaulted)
	}

	receipt, err := h.dispatcher.Dispatch(s.ctx, req, placed.IdempotencyKey())
	if err != nil {
		s.logger.WarnContext(s.ctx, "Shipment dispatch failed, order kept for manual arrangement",
			"orderID", placed.ID().String(), "reference", req.OrderID, "error", err)
		s.enter(PartiallyCompleted)
		return
	}

	s.result.Tracking = receipt.Tracking
	s.result.Label = receipt.Label
	s.result.Endpoint = receipt.Endpoint
	s.enter(Completed)
}

func (h *SubmitOrderCommandHandler) clearCart(ctx context.Context, logger *slog.Logger, owner kernel.OwnerID) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		logger.WarnContext(ctx, "Cart not cleared", "error", err)
		return
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.CartRepository().Clear(ctx, owner); err != nil {
		logger.WarnContext(ctx, "Cart not cleared", "error", err)
		return
	}

	if err := uow.Commit(ctx); err != nil {
		logger.WarnContext(ctx, "Cart not cleared", "error", err)
	}
}

func isSelectionError(err error) bool {
	return errors.Is(err, errs.ErrObjectNotFound) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsRequired)
}

// submission tracks one run through the state machine.
type submission struct {
	ctx    context.Context
	logger *slog.Logger
	result SubmitOrderResult
}

func (s *submission) enter(state SubmissionState) {
	s.result.State = state
	s.result.Trace = append(s.result.Trace, state)
	s.logger.InfoContext(s.ctx, "Order submission state changed", "state", state.String())
}

func (s *submission) reject(err error) (SubmitOrderResult, error) {
	s.enter(Rejected)
	s.logger.InfoContext(s.ctx, "Order submission rejected", "reason", err.Error())
	return s.result, err
}

func (s *submission) fail(err error) (SubmitOrderResult, error) {
	s.enter(PersistenceFailed)
	s.logger.ErrorContext(s.ctx, "Order could not be recorded", "error", err)
	return s.result, &PersistenceError{Cause: err}
}

func (s *submission) duplicate(existing *order.Order) (SubmitOrderResult, error) {
	s.result.OrderID = existing.ID()
	s.result.Summary = existing.Summary()
	s.enter(Duplicate)
	return s.result, nil
}
