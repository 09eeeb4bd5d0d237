// Package namespace makes shape documents safe to concatenate.
//
// Every shape is assigned a token derived from its position in the sorted
// shape sequence: a, b, ..., z, aa, ab, ... optionally preceded by a fixed
// prefix. Each id and class name in the shape's document is rewritten to
// token + "-" + name, and every reference to a rewritten id inside the same
// document follows:
//
//	href="#grad"              → href="#a-grad"
//	fill="url(#grad)"         → fill="url(#a-grad)"
//	aria-labelledby="t d"     → aria-labelledby="a-t a-d"
//	<style>.st0{fill:red}     → <style>.a-st0{fill:red}
//
// Tokens depend only on sort position, so repeated compilations of the same
// input produce identical documents regardless of scheduling.
//
// Rewriting happens on a copy of the document that is swapped in only after
// it serializes to well-formed markup, so a failing shape never leaves a
// half-rewritten document behind.
package namespace
