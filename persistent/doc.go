/*
Immutable persistent data structures are data structures which can be copied
and modified efficiently, leaving the original unchanged. Functional
programming languages like Lisp have long relied on using them; Lisp's list,
built from linked cons cells, is the archetype, and package seq below
implements exactly that structure.

Immutable data structures in many cases offer benefits over mutable data
structures in terms of concurrent access and functional reasoning.
*Persistent* immutable data-structures offer structural sharing: two
sequences differing in a prefix share their common suffix, and a "modified"
copy costs memory only for the cells that actually differ.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
