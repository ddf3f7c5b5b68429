// Package template turns a kernel template string plus an (element type, vector width,
// work-group shape) binding into complete kernel source text (spec §4.1, component C4).
//
// A template is ordinary text carrying two kinds of `%`-prefixed tokens: built-in and
// user-registered placeholders that expand to a literal (%TYPE, %PTYPE, a Put'd key), and
// macro-style operators that expand to a statement or expression built from the element
// type's shape (%MUL(...), %REDUCE(...), and friends). Placeholders are resolved first,
// macros second, so a macro's argument list may itself reference a placeholder.
package template
