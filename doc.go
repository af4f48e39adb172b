// Package geokernel is the core geometry kernel of a Building Information
// Modeling system: a library for representing, healing, and analyzing 2D
// wall networks and their 3D extrusions.
//
// It offers a deterministic, always-valid model of a building floor to
// higher layers (authoring UIs, tool servers, IFC import/export,
// multi-user collaboration sessions) via an in-process command executor;
// no network transport ships in this module.
//
// Under the hood, the kernel is organized under a dozen focused
// subpackages:
//
//	mathx/       — float guards, robust predicates, points/vectors/lines/bbox/polygon
//	spatial/     — node/edge spatial indices over an R-tree
//	topology/    — planar graph, healing passes, half-edge room tracer
//	quantize/    — quantization and canonical JSON for deterministic I/O
//	kernelexec/  — command executor, delta diffing, dispatch table
//	mesh/        — ear-clip triangulator with hole bridging, prism extrusion, OBJ export
//	joins/       — wall-join detection and miter profile geometry
//	clash/       — AABB broad-phase clash detection
//	crdt/        — vector clock, LWW register, operation log
//	element/     — typed BIM elements (walls, floors, doors, rooms, ...) over topology+mesh
//	ifcio/       — IFC STEP-physical-file import/export with a self-healing parser
//	circulation/ — egress, service backbone, coverage, and construction sequencing over a floor plan
//	builder/     — abstract structural graph generators (cycle, grid, star, ...)
//	layoutgen/   — procedural starter floor plans wiring builder's generators to topology
//
// cmd/geokernelctl is a thin CLI driver exercising the command executor
// end to end.
package geokernel
