/*
Package seq implements an immutable persistent sequence of values, the
classical singly-linked cons list of functional languages.

A sequence is built by prepending elements onto an existing sequence, most
often starting out from the empty sequence:

    s := seq.From(1, 2, 3)    // ⟨1 2 3⟩
    t := s.Prepend(0)         // ⟨0 1 2 3⟩, s unchanged

“Modifying” a sequence never touches the original: a prepend allocates a
single cell and shares the rest of the sequence, making copies cheap in both
space- and time-complexity. Inspecting a sequence never modifies it. Every
sequence ends in the one canonical empty sequence, which is shared
process-wide between sequences of every element type.

Immutable sequences are inherently concurrency-safe.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package seq

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cons.seq'.
func tracer() tracing.Trace {
	return tracing.Select("cons.seq")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("seq: "+msg, msgargs...)
		panic(msg)
	}
}
