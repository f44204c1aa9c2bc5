package services

import (
	"errors"
	"fmt"

	"github.com/supunpriyanath333/JAPURA-EATS-Food-Pre-Ordering-System-For-Japura-University/entity"

	"gorm.io/gorm"
)

// AdvanceResult is what a status transition hands back to the UI.
type AdvanceResult struct {
	ID       uint         `json:"id"`
	Status   entity.Stage `json:"status"`
	Advanced bool         `json:"advanced"`
}

// AdvanceStatus moves an order one step along the seller flow. The write is
// conditional on the stored status still matching the caller's expected
// stage: a stale expectation is rejected with ErrConflict so the UI refetches
// the true state instead of clobbering a newer one. Advancing an order
// already at the terminal stage is a no-op, not an error.
func (s *OrderService) AdvanceStatus(orderID uint, expected entity.Stage) (*AdvanceResult, error) {
	if expected == entity.StagePickedUp {
		o, err := s.Repo.GetOrder(orderID)
		if err != nil {
			return nil, storeErr(err)
		}
		return &AdvanceResult{ID: o.ID, Status: entity.StageOf(o.Status), Advanced: false}, nil
	}

	next, ok := entity.NextStage(expected)
	if !ok {
		return nil, fmt.Errorf("%w: unknown order status %q", ErrValidation, expected)
	}
	target := entity.StorageOf(next)
	guard := entity.StorageStatusesOf(expected)

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, orderID, guard, target)
		if err != nil {
			return storeErr(err)
		}
		if affected == 0 {
			if _, err := s.Repo.GetOrder(orderID); errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("%w: order already moved past %s", ErrConflict, expected)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &AdvanceResult{ID: orderID, Status: next, Advanced: true}, nil
}

// CancelOrder marks an order cancelled from any non-terminal state. The data
// model supports it even though no seller screen drives it yet.
func (s *OrderService) CancelOrder(orderID uint) error {
	nonTerminal := []entity.OrderStatus{
		entity.StatusPending, entity.StatusAccepted,
		entity.StatusPreparing, entity.StatusReadyForPickup,
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, orderID, nonTerminal, entity.StatusCancelled)
		if err != nil {
			return storeErr(err)
		}
		if affected == 0 {
			if _, err := s.Repo.GetOrder(orderID); errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("%w: order is already in a terminal state", ErrConflict)
		}
		return nil
	})
}
