// Package ring simulates particles hopping between capacity-limited nodes
// arranged on a ring.
//
// A run starts from a uniform State, then advances for a fixed number of
// ticks. On every tick each node draws a direction from a DirectionSource and
// tries to hand one particle to the neighbor on that side. A transfer happens
// only if the node holds a particle and the neighbor is below capacity.
//
// Two update disciplines are provided. The SynchronousScheduler decides all
// transfers of a tick against the state at the start of the tick and applies
// them together, so a node can briefly hold one particle over capacity. The
// SequentialScheduler applies each transfer immediately, so later nodes in a
// tick see the effect of earlier ones and capacity is never exceeded.
package ring
