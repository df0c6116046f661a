// Package matroid provides the matroid collaborator consumed by the
// Orlik–Solomon engine: a ground set, its circuits, and the
// no-broken-circuit (NBC) sets for a given ordering.
//
// What
//
//   - Matroid[E]: the three-method interface the algebra depends on.
//   - CircuitMatroid[E]: a matroid given by an explicit list of circuits.
//   - Uniform(r, n): U(r, n), whose circuits are all (r+1)-subsets.
//   - Graphic(g): the cycle matroid of a small core.Graph multigraph, one
//     ground element per edge ID, circuits = edge sets of simple cycles
//     (loops and parallel pairs included).
//   - Relabel, Indexed: rename elements, e.g. edge IDs to 0..n-1.
//   - CheckAxioms: an optional sanity pass over supplied circuits.
//
// NBC enumeration
//
//	NoBrokenCircuitsSets walks subsets in ascending rank order and prunes a
//	branch as soon as the newest element completes a broken circuit. Being
//	NBC is hereditary, so every NBC set is reached from its own prefixes and
//	no branch is explored twice. Output is sorted by size, then
//	lexicographically by rank.
//
// Errors
//
//   - ErrDuplicateElement  ground set or circuit lists an element twice.
//   - ErrUnknownElement    a circuit or ordering mentions a foreign element.
//   - ErrEmptyCircuit      a circuit has no elements.
//   - ErrInvalidOrdering   ordering is not a permutation of the ground set.
//   - ErrInvalidParameter  bad constructor arguments (e.g. Uniform(4, 3)).
//   - ErrCircuitAxiom      CheckAxioms found a violated circuit axiom.
package matroid
