// Package leg provides the OrderLeg aggregate: one custody hop of an order
// between two parties, with a lifecycle independent of the order's.
//
// The package includes:
//   - Leg: the aggregate root for a single hop, owned by its sending party
//   - Status: a state machine enforcing valid hop transitions
//   - PartyType: the kinds of parties a hop can connect
//
// Key business rules:
//   - Legs are numbered per order, starting at 1 and strictly increasing;
//     numbers are never reused, so rejected hops stay visible in the history
//   - Exactly one sender identifier is set, matching the sender type
//   - The recipient distributor id is set iff the hop targets a distributor
//   - Only the recipient may accept or reject a hop; only the sender ships it;
//     a customer-bound hop ships directly from Pending since a customer
//     cannot accept
package leg
