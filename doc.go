// Package scrambler provides randomized pixel-obfuscation transforms for
// RGBA images.
//
// # Overview
//
// scrambler implements the image-scrambling transforms used in visual
// perception experiments: tile shuffling, mosaic blocking, random-noise
// injection, and Fourier phase scrambling. Transforms operate on a Pixmap,
// a flat RGBA pixel buffer, and can be restricted to a circular Region
// selected interactively through a PointerTracker.
//
// # Quick Start
//
//	import "github.com/altunenes/scrambler"
//
//	pm := scrambler.FromImage(img)
//
//	ts := scrambler.NewTileScrambler(8)
//	if err := ts.Apply(pm); err != nil {
//		log.Fatal(err)
//	}
//
// # Determinism
//
// Every randomized transform accepts an injectable *rand.Rand. Supplying a
// seeded source makes the output fully reproducible; leaving it nil uses a
// time-seeded source. The randomness is for visual obfuscation only and
// carries no cryptographic guarantee.
//
// # Concurrency
//
// Transforms are synchronous and single-threaded. A transform expects
// exclusive access to its Pixmap for the duration of the call; the package
// never issues concurrent operations on one buffer.
package scrambler
