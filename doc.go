// Package capsphere turns a set of scored, colored capabilities into a
// connected, colored surface on a sphere.
//
// What is capsphere?
//
//	A small, deterministic geometry and graph engine that brings together:
//		• Layout: fixed tables for 1–6 nodes, a Fibonacci spiral beyond
//		• Positions: bars from a core sphere, tips pushed out by magnitude
//		• Connectivity: exact convex hull or k-nearest-neighbor graphs
//		• Faces: triangles inferred from the edge set
//		• Surfaces: flat or curved Bezier patches with gradient colors
//		• Labels: distance-compensated font sizes
//
// Packages, leaves first:
//
//	sphere/        - layout angles and spherical → Cartesian mapping
//	core/          - Node, Edge, Face, canonical keys, hash-set adjacency
//	bfs/           - breadth-first search and connected components
//	connect/       - hull and k-NN graph builders, edge control points
//	surface/       - face tessellation into a flat vertex buffer
//	label/         - font-size scaling
//	constellation/ - live capability set with add/remove/re-score relayout
//	engine/        - fingerprint-cached pipeline with zap logging and metrics
//	config/        - viper-loaded, validated settings
//	observability/ - zap logger construction
//	cmd/capsphere  - demo CLI emitting text, JSON or YAML
//
// Quick ASCII example (four nodes → tetrahedron, χ = V − E + F = 4 − 6 + 4 = 2):
//
//	       A
//	      /|\
//	     / | \
//	    B--+--C
//	     \ | /
//	       D
//
//	go get github.com/katalvlaran/capsphere
package capsphere
