package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"vizoshop/internal/core/domain/model/shipment"
	"vizoshop/internal/core/ports"
)

// ErrShipmentAlreadyRequested refuses a key whose parcel was already sent to
// the partner within the ledger ttl.
var ErrShipmentAlreadyRequested = errors.New("shipment already requested for this idempotency key")

// RelayShipmentResult is the partner's reply and what the relay changed on
// the way.
type RelayShipmentResult struct {
	Body               []byte
	Request            shipment.Request
	RegionDefaulted    bool
	SubRegionDefaulted bool
}

// RelayShipmentCommandHandler is the delivery partner gateway. It is
// stateless apart from the shipment ledger shared by all replicas.
type RelayShipmentCommandHandler struct {
	partner      ports.PartnerClient
	resolver     shipment.Resolver
	originRegion string
	ledger       ports.ShipmentLedger
	ledgerTTL    time.Duration
	logger       *slog.Logger
}

func NewRelayShipmentCommandHandler(
	partner ports.PartnerClient,
	resolver shipment.Resolver,
	originRegion string,
	ledger ports.ShipmentLedger,
	ledgerTTL time.Duration,
	logger *slog.Logger,
) RelayShipmentCommandHandler {
	return RelayShipmentCommandHandler{
		partner:      partner,
		resolver:     resolver,
		originRegion: originRegion,
		ledger:       ledger,
		ledgerTTL:    ledgerTTL,
		logger:       logger.With("component", "shipment_relay"),
	}
}

// Handle normalizes and resolves the parcel, claims its idempotency key and
// posts it to the partner. The partner's JSON is returned untouched.
//
// A partner failure releases the key so the storefront's next candidate
// endpoint may try again. A 2xx reply that cannot be used keeps the key: the
// parcel may already exist.
func (h *RelayShipmentCommandHandler) Handle(ctx context.Context, cmd RelayShipmentCommand) (RelayShipmentResult, error) {
	if err := cmd.Validate(); err != nil {
		return RelayShipmentResult{}, err
	}

	req := cmd.Request().Normalize()
	if h.originRegion != "" {
		req.FromRegionName = h.originRegion
	}
	req = h.resolver.Resolve(req)

	logger := h.logger.With("reference", req.OrderID, "idempotencyKey", cmd.IdempotencyKey())
	if req.RegionDefaulted {
		logger.WarnContext(ctx, "Unknown region, capital id used", "region", req.ToRegionName)
	}
	if req.SubRegionDefaulted {
		logger.WarnContext(ctx, "Unknown sub-region, capital id used", "subRegion", req.ToSubRegionName)
	}

	key := cmd.IdempotencyKey()
	if key != "" {
		claimed, err := h.ledger.MarkProcessed(ctx, key, h.ledgerTTL)
		if err != nil {
			return RelayShipmentResult{}, fmt.Errorf("claim idempotency key: %w", err)
		}
		if !claimed {
			logger.InfoContext(ctx, "Shipment already requested, refusing replay")
			return RelayShipmentResult{}, ErrShipmentAlreadyRequested
		}
	}

	body, err := h.partner.CreateParcels(ctx, []shipment.Request{req}, key)
	if err != nil {
		logger.WarnContext(ctx, "Partner refused parcel", "error", err)
		if key != "" && !errors.Is(err, ports.ErrPartnerReplyUnreadable) {
			if releaseErr := h.ledger.Release(context.WithoutCancel(ctx), key); releaseErr != nil {
				logger.ErrorContext(ctx, "Idempotency key not released", "error", releaseErr)
			}
		}
		return RelayShipmentResult{}, err
	}

	logger.InfoContext(ctx, "Parcel created")
	return RelayShipmentResult{
		Body:               body,
		Request:            req,
		RegionDefaulted:    req.RegionDefaulted,
		SubRegionDefaulted: req.SubRegionDefaulted,
	}, nil
}
