// Package meshbridge reconstructs a continuous 3-D surface mesh of a
// transportation network from fragments a coarser pipeline left
// disconnected under overpasses, through tunnels, and across other
// gaps — detecting the gaps from each path's straight skeleton,
// synthesizing a bridge or tunnel ribbon across them, and corefining
// that ribbon into the master mesh.
//
// What is meshbridge?
//
//	A library that brings together:
//
//	  - Straight-skeleton geometry: arena-indexed half-edge graphs with
//	    a bounded, Dijkstra-style neighborhood query.
//	  - A road-width estimator and a path-linker that together find
//	    every gap worth bridging.
//	  - A Gauss-Newton bridge optimizer solving for a ribbon's
//	    centerline and asymmetric half-widths against the surrounding
//	    terrain and the crossed surface itself.
//	  - A visitor-driven mesh integrator that folds the solved ribbon
//	    into the master mesh via attribute-preserving corefinement.
//
// Under the hood, everything is organized under subpackages:
//
//	geom/          — 2-D/3-D primitives, exact-rational points, AABB location queries
//	skeleton/      — arena-indexed straight-skeleton plane graph
//	meshmodel/     — arena-indexed 2-manifold triangle mesh with owned attribute maps
//	roadwidth/     — C4 neighborhood-based half-width estimator
//	linker/        — C5 path-linker: candidate enumeration, dominance, polygon-exit filtering
//	bridge/        — C6 nonlinear least-squares bridge/tunnel optimizer
//	ribbon/        — ribbon surface, support tube, and removal tube construction
//	integrate/     — C7 mesh integrator: union, difference, point-cloud relabeling
//	config/        — YAML-backed parameter table
//	testfixtures/  — deterministic scenarios for link-detection and bridging boundary cases
package meshbridge
