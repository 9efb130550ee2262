// Package physics declares the narrow contract the dungeon pipeline needs
// from a rigid-body engine, and the separation gate that waits on it.
//
// What
//
//   - World is the capability surface: create a rectangular body and insert
//     it into the simulation. Nothing else is required of an engine.
//   - Body is a borrowed handle. The pipeline reads position, vertices and
//     the sleeping flag; it never copies, frees or steps a body.
//   - StepNotifier is optional. Engines that publish a per-step signal let
//     the gate re-check settlement exactly once per step instead of polling.
//
// Separation gate
//
//	AllSettled(bodies) is true iff every body reports IsSleeping(). The empty
//	set is settled. Gate.Wait blocks until AllSettled holds for the bodies of
//	the current run, the context is done, or Gate.Timeout elapses. The
//	latter two return an error matching ErrNotSettled.
//
// The engine is driven by its own loop; this package neither owns nor
// advances that loop. A concrete engine lives in physics/separation.
package physics
