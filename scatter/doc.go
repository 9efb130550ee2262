// Package scatter samples the initial room set of a dungeon and registers
// each room with a physics world.
//
// Sampling:
//
//   - Position: PointInCircle draws a uniformly distributed point on a disk.
//     The angle is uniform in [0, 2π); the radius fraction uses the sum of
//     two uniforms folded at 1 (u > 1 ⇒ 2-u), which is areally uniform.
//     A radius of 0 is replaced by 1. Coordinates are rounded.
//   - Size: MinRoomSize + round(U · (target + stdDeviation)), drawn
//     independently for width and height.
//
// Registration:
//
//	Each room's body is centered at offset + (BoundsWidth/2, BoundsHeight/2)
//	and created with Params.SleepThreshold, then inserted with AddBody.
//
// Determinism: every draw comes from the caller's *rand.Rand, in the fixed
// order position(angle, u1, u2) → width → height, room by room.
package scatter
