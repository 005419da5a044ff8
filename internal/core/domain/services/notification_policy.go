package services

import (
	"ordering/internal/core/domain/model/order"
)

// Routing describes who should hear about a lifecycle event and which message
// template renders it. Delivery itself is best-effort and happens outside the
// domain; the policy only decides the audience.
type Routing struct {
	// Template is the message template key for the event.
	Template string

	// Customer is true when the owning customer should be notified.
	Customer bool

	// Approver is true when the approver channel should be notified.
	Approver bool
}

// NotificationPolicy is a domain service that maps order lifecycle events to
// notification routings. It keeps the audience rules out of the transition
// handlers so every status change notifies the same parties no matter which
// caller drove it.
//
// Business rules:
//   - Submission alerts the approver and confirms to the customer
//   - Approver decisions (approved/rejected) and fulfilment progress
//     (preparing/delivering/completed) go to the customer
//   - Payment and cancellation alert the approver; payment also thanks the customer
type NotificationPolicy struct{}

// NewNotificationPolicy creates a new NotificationPolicy instance.
func NewNotificationPolicy() NotificationPolicy {
	return NotificationPolicy{}
}

// RoutingFor returns the audience and template for an order reaching the
// given status. Statuses without a routing (including Unknown) notify nobody.
func (NotificationPolicy) RoutingFor(status order.Status) Routing {
	switch status {
	case order.Pending:
		return Routing{Template: "order_submitted", Customer: true, Approver: true}
	case order.Approved:
		return Routing{Template: "order_approved", Customer: true}
	case order.Rejected:
		return Routing{Template: "order_rejected", Customer: true}
	case order.Paid:
		return Routing{Template: "order_paid", Customer: true, Approver: true}
	case order.Preparing:
		return Routing{Template: "order_preparing", Customer: true}
	case order.Delivering:
		return Routing{Template: "order_delivering", Customer: true}
	case order.Completed:
		return Routing{Template: "order_completed", Customer: true}
	case order.Cancelled:
		return Routing{Template: "order_cancelled", Approver: true}
	default:
		return Routing{}
	}
}
