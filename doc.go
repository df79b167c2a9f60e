// Package genie implements a touch-driven "genie lamp" distortion effect
// for [Ebitengine]: content squeezes and stretches toward the pointer while
// a floating thumbnail follows the finger, with synchronized tactile pulses.
//
// The package has three parts:
//
//   - [Warp], a pure inverse-warp function mapping a screen position and
//     four scalar control values to the source position to sample. The same
//     math runs on the GPU via [ShaderSource], wrapped by [Effect].
//   - [Driver], the animation state machine that owns the four control
//     values and the floating indicator, advancing them over time in
//     response to Press, Move, and Release events.
//   - [Haptics], the sink for the two tactile pulse signals the driver
//     emits during a gesture.
//
// # Quick start
//
// Create a driver sized to the surface being distorted, feed it pointer
// events and time, and draw through an [Effect] each frame:
//
//	driver := genie.NewDriver(genie.Config{
//		Bounds: genie.Bounds{Width: 420, Height: 760},
//	})
//	effect := genie.NewEffect()
//
//	// per pointer event:
//	driver.Press(genie.Vec2{X: x, Y: y}) // or Move / Release
//
//	// per frame:
//	driver.Update(1.0 / float64(ebiten.TPS()))
//	effect.Apply(screen, source, driver.Params())
//
// The driver's [Driver.Indicator] reports where to draw the floating
// thumbnail and how visible it should be. See examples/gridgenie for a
// complete interactive program.
//
// Timed transitions use [gween]; spring transitions use [harmonica].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [harmonica]: https://github.com/charmbracelet/harmonica
package genie
