package service

import (
	"strings"

	"pos-backend/pos-svc/internal/domain"
)

// TransitionPolicy decides whether an order may move between two statuses.
// Membership in the status enum is checked before the policy runs.
type TransitionPolicy interface {
	Allow(from, to domain.OrderStatus) error
}

// PermissivePolicy accepts any move, including out of served or cancelled.
type PermissivePolicy struct{}

func (PermissivePolicy) Allow(from, to domain.OrderStatus) error {
	return nil
}

// StrictPolicy only lets orders move forward along
// pending -> preparing -> ready -> served, with cancelled reachable from any
// non-final status. served and cancelled are final.
type StrictPolicy struct{}

var statusRank = map[domain.OrderStatus]int{
	domain.StatusPending:   0,
	domain.StatusPreparing: 1,
	domain.StatusReady:     2,
	domain.StatusServed:    3,
}

func (StrictPolicy) Allow(from, to domain.OrderStatus) error {
	if from == to {
		return nil
	}
	if from == domain.StatusServed || from == domain.StatusCancelled {
		return domain.NewValidationError("status", "order is %s and can no longer change", from)
	}
	if to == domain.StatusCancelled {
		return nil
	}
	if statusRank[to] < statusRank[from] {
		return domain.NewValidationError("status", "cannot move from %s back to %s", from, to)
	}
	return nil
}

// PolicyByName maps ORDER_STATUS_POLICY values to a policy. Anything other
// than "strict" yields the permissive default.
func PolicyByName(name string) TransitionPolicy {
	if strings.EqualFold(strings.TrimSpace(name), "strict") {
		return StrictPolicy{}
	}
	return PermissivePolicy{}
}
