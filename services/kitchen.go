package services

import (
	"context"
	"fmt"
	"strings"

	"jamjam-resort-api/models"
	"jamjam-resort-api/statemachine"
	"jamjam-resort-api/store"
)

// KitchenService moves restaurant orders through their kitchen-order-ticket states.
type KitchenService struct {
	orders *Repository
}

// SetStatus validates the transition from the order's current status and records the new
// one. Invalid transitions return a *statemachine.TransitionError.
func (k *KitchenService) SetStatus(ctx context.Context, orderID string, status models.KitchenStatus) (models.Document, error) {
	if !statemachine.Known(status) {
		return nil, fmt.Errorf("%w: unknown status %q", models.ErrValidation, status)
	}
	order, err := k.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	current := models.KitchenStatus(order.String(models.FieldStatus))
	if err := statemachine.CanTransition(current, status); err != nil {
		return nil, err
	}
	return k.orders.Apply(ctx, orderID, store.NewUpdate().Set(models.FieldStatus, string(status)))
}

// SetPaymentMethod records how the order was paid.
func (k *KitchenService) SetPaymentMethod(ctx context.Context, orderID, method string) (models.Document, error) {
	method = strings.TrimSpace(method)
	if method == "" {
		return nil, fmt.Errorf("%w: paymentMethod is required", models.ErrValidation)
	}
	return k.orders.Apply(ctx, orderID, store.NewUpdate().Set(models.FieldPaymentMethod, method))
}
