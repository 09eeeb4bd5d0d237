// Package layout places shapes inside position-addressed sprites.
//
// Shapes are stacked along one axis in sorted order. A shape's offset on
// the stacking axis is the running extent of every item placed before it,
// where an item's extent includes its padding. On the cross axis the item
// is interpolated between 0 and (largest extent - own extent) by its
// alignment weight: 0 is flush with the top/left edge, 1 flush with the
// bottom/right edge.
//
// A shape with several alignment templates produces one [Item] per
// template. Each item is stacked independently; selectors generated from
// different templates never share a position.
//
// All coordinates stored in a [Sprite] are already rounded to the
// configured precision, so the merged document and any companion
// stylesheet that print them agree exactly.
package layout
