// Package kaleido renders an animated kaleidoscope.
//
// # Overview
//
// A small seed texture is rotated on its own surface, sampled as a
// repeating fill, replicated with six-fold rotational symmetry into a
// flower motif, packed into a block that tiles the plane, and stamped
// across the output surface. A Driver repeats this once per frame.
//
//	cfg := kaleido.DefaultConfig()
//	seed, _ := canvas.NewPatternBrush(img, canvas.Repeat)
//	loop := frameloop.New(60)
//	d, err := kaleido.New(cfg, seed, out, loop)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := d.Start(); err != nil {
//		log.Fatal(err)
//	}
//	err = loop.Run(ctx)
//
// # Pipeline
//
// Data flows PatternSource → fill pattern → Flower → Composer → ImageData
// → Output. The only state carried between frames is the PatternSource
// angle.
//
// # Surfaces
//
// The core draws only through the Surface interface, which
// *canvas.Context satisfies. Every drawing call that changes the transform
// runs inside a scope that restores the transform stack depth on every exit
// path, so no offset survives a call.
//
// # Concurrency
//
// Nothing in this package is safe for concurrent use. A Driver expects its
// Scheduler to deliver frame callbacks serially on one goroutine.
package kaleido

// Version is the current version of the library
const Version = "0.1.0"
