// Package newick loads gene trees written in the Newick format.
//
// Parsing is delegated to github.com/evolbioinfo/gotree. Inputs holding
// several trees are split on their terminal ';' first, so every tree gets a
// fresh parser and parse errors can name the tree they come from.
//
// gotree does not understand quoted labels, so they are masked before
// parsing and restored afterwards without their quotes; a doubled quote
// inside a quoted label reads as one quote, the form Format writes.
package newick
