// Package notifications fans order state changes out to the parties entitled
// to see them.
//
// Notifier is the write side. Command handlers hand it an order after their
// transaction committed; it queues the event and returns at once. A single
// dispatcher goroutine publishes queued events to the bus in the order they
// were queued, so publishing never blocks or fails a command.
//
// Subscriptions is the read side. It subscribes to a bus topic and filters the
// embedded customer, owner and driver identifiers against the subscriber.
//
// Topics:
//   - new-pending-order: a customer placed an order; delivered to its owner
//   - order-cooked: an owner marked an order Cooked; delivered to drivers
//   - order-status-updated: any change; delivered to customer, owner and driver
package notifications
