// Package notifications implements the subscription registry and the event
// fan-out for order changes. Clients subscribe with a scope, either every
// order (staff) or one customer's orders, and receive full order snapshots
// over buffered per-subscriber channels. Delivery is at-least-once and
// best-effort; the pull listings are the safety net for missed events.
package notifications
