// SPDX-License-Identifier: MIT

// Package testfixtures builds small, deterministic mesh/path scenarios
// for exercising boundary cases: collinear gaps, perpendicular crossings,
// narrow roads, terrain cliffs, and other edge conditions a link search
// must handle correctly. Each constructor returns a self-contained
// Scenario a test can feed straight into package linker, bridge, or
// integrate without reaching into those packages' own internals.
package testfixtures
