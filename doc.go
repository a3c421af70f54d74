// Package cubesim animates a 3x3x3 Rubik's cube as 27 rigid pieces on a
// discrete grid.
//
// # Features
//
//   - Layer rotations animated over scheduler ticks, one at a time
//   - Pivot reparenting that keeps unaffected pieces untouched
//   - Canonical snapping: transforms land exactly on the grid after every move
//   - FIFO move queue with shuffle generation
//   - Whole-cube free rotation with configurable axis and speed
//   - Standard face notation (R, U', F2, slice moves M/E/S)
//   - Facelet projection, solved detection and an ASCII net
//
// # Quick Start
//
// Create a simulation, shuffle it and pump it from a render loop:
//
//	sim := cubesim.NewSim()
//	sim.Shuffle()
//
//	for sim.IsShuffling() {
//	    sim.Advance(1.0 / 60) // once per frame, elapsed seconds
//	}
//
//	fmt.Println(sim.String())
//
// # Direct Moves
//
// Moves can be enqueued from predefined constants or notation:
//
//	sim.Play(cubesim.R, cubesim.U, cubesim.RPrime, cubesim.UPrime)
//	sim.PlayNotation("F B2 L' D")
//
// A Move addresses a layer directly:
//
//	sim.Play(cubesim.Move{Axis: cubesim.AxisY, Layer: 1, Angle: cubesim.QuarterTurn})
//
// Positive angles turn a layer clockwise as seen from the positive end of
// its axis, so the move above is U.
//
// # Scheduling
//
// All animation progress happens inside Advance, which the external render
// loop calls once per frame with the elapsed time. Nothing blocks, nothing
// reschedules itself, and queued rotations run strictly sequentially: a
// rotation's pieces are always detached, snapped and released before the
// next rotation selects its layer.
//
// # Rendering
//
// Renderers query each piece's world transform every frame:
//
//	for _, p := range sim.Assembly().Pieces() {
//	    t := sim.PieceWorld(p)
//	    // draw piece p at t.Pos with orientation t.Rot
//	}
//
// Sticker colors are static per piece; the renderer derives visible faces
// from the piece orientation (or uses the Facelets projection directly).
package cubesim
