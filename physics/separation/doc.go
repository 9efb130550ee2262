// SPDX-License-Identifier: MIT
// Package: dungeongen/physics/separation
//
// Package separation is a minimal rigid-body world that pushes overlapping
// axis-aligned rectangles apart until they come to rest. It implements
// physics.World and physics.StepNotifier, so the dungeon pipeline can run
// end to end without an external engine.
//
// Model:
//   - Zero gravity, no rotation, no restitution. Bodies only move to resolve
//     penetration.
//   - Every Step visits each unordered pair (i<j) once, in index order.
//     Overlapping pairs are separated along the axis of least penetration;
//     each body absorbs half of Config.Correction × depth, applied at once
//     so later pairs see the corrected positions. Coincident centers break
//     ties by index (the higher index moves toward +axis).
//   - A body that penetrated a neighbor in a step, or moved more than
//     Config.WakeEpsilon, is awake and its quiet counter resets. Otherwise
//     it counts a quiet step; after BodyOptions.SleepThreshold consecutive
//     quiet steps it sleeps.
//   - Settled therefore implies that the last step resolved no pair, i.e.
//     no two bodies penetrate deeper than Config.Slop.
//
// Concurrency:
//   - All state is guarded by one sync.RWMutex. Body reads (Position,
//     Vertices, IsSleeping) take the read lock and are safe while Run steps
//     the world from another goroutine.
//   - Subscribers receive a non-blocking signal after each step.
//
// Complexity: Step is O(n²) in the number of bodies.
package separation
