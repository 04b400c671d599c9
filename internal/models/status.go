package models

import (
	"fmt"
	"slices"
)

// GoalStatus is the lifecycle state of a savings goal
type GoalStatus string

const (
	GoalStatusSaved     GoalStatus = "SAVED"
	GoalStatusActive    GoalStatus = "ACTIVE"
	GoalStatusCompleted GoalStatus = "COMPLETED"
	GoalStatusRedeemed  GoalStatus = "REDEEMED"
	GoalStatusCancelled GoalStatus = "CANCELLED"
	GoalStatusRefunded  GoalStatus = "REFUNDED"
)

// ACTIVE and SAVED are the same live stage; SAVED only marks a draft
var goalTransitions = map[GoalStatus][]GoalStatus{
	GoalStatusSaved:     {GoalStatusActive, GoalStatusCompleted, GoalStatusCancelled},
	GoalStatusActive:    {GoalStatusSaved, GoalStatusCompleted, GoalStatusCancelled},
	GoalStatusCompleted: {GoalStatusRedeemed},
	GoalStatusCancelled: {GoalStatusRefunded},
}

// IsLive reports whether the goal still accepts edits, deposits and cancellation
func (s GoalStatus) IsLive() bool {
	return s == GoalStatusActive || s == GoalStatusSaved
}

// Valid reports whether s is a known goal status
func (s GoalStatus) Valid() bool {
	switch s {
	case GoalStatusSaved, GoalStatusActive, GoalStatusCompleted,
		GoalStatusRedeemed, GoalStatusCancelled, GoalStatusRefunded:
		return true
	}
	return false
}

// CanTransitionTo reports whether the goal may move from s to next
func (s GoalStatus) CanTransitionTo(next GoalStatus) bool {
	return slices.Contains(goalTransitions[s], next)
}

// EscrowStatus is the settlement state of an escrow record
type EscrowStatus string

const (
	EscrowStatusHeld     EscrowStatus = "HELD"
	EscrowStatusReleased EscrowStatus = "RELEASED"
	EscrowStatusRefunded EscrowStatus = "REFUNDED"
)

var escrowTransitions = map[EscrowStatus][]EscrowStatus{
	EscrowStatusHeld: {EscrowStatusReleased, EscrowStatusRefunded},
}

// CanTransitionTo reports whether the escrow may move from s to next
func (s EscrowStatus) CanTransitionTo(next EscrowStatus) bool {
	return slices.Contains(escrowTransitions[s], next)
}

// DeliveryStatus is the fulfilment state of a delivery. Statuses only move forward.
type DeliveryStatus string

const (
	DeliveryStatusPending    DeliveryStatus = "PENDING"
	DeliveryStatusDispatched DeliveryStatus = "DISPATCHED"
	DeliveryStatusInTransit  DeliveryStatus = "IN_TRANSIT"
	DeliveryStatusDelivered  DeliveryStatus = "DELIVERED"
)

var deliveryTransitions = map[DeliveryStatus][]DeliveryStatus{
	DeliveryStatusPending:    {DeliveryStatusDispatched, DeliveryStatusInTransit, DeliveryStatusDelivered},
	DeliveryStatusDispatched: {DeliveryStatusInTransit, DeliveryStatusDelivered},
	DeliveryStatusInTransit:  {DeliveryStatusDelivered},
}

// Valid reports whether s is a known delivery status
func (s DeliveryStatus) Valid() bool {
	switch s {
	case DeliveryStatusPending, DeliveryStatusDispatched, DeliveryStatusInTransit, DeliveryStatusDelivered:
		return true
	}
	return false
}

// CanTransitionTo reports whether the delivery may move from s to next
func (s DeliveryStatus) CanTransitionTo(next DeliveryStatus) bool {
	return slices.Contains(deliveryTransitions[s], next)
}

// CustomerConfirmable reports whether the customer may confirm receipt from s
func (s DeliveryStatus) CustomerConfirmable() bool {
	return s == DeliveryStatusDispatched || s == DeliveryStatusInTransit
}

// RefundRequestStatus is the review state of a cancellation ticket
type RefundRequestStatus string

const (
	RefundRequestStatusRequested RefundRequestStatus = "REQUESTED"
	RefundRequestStatusApproved  RefundRequestStatus = "APPROVED"
)

// Transition returns an error wrapping ErrInvalidTransition when from may not become to.
func Transition[S ~string](from, to S, allowed func(S) bool) error {
	if !allowed(to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}
