// Package lvroute turns raw road segments into a routable directed graph and
// checks that independent shortest-path engines agree on it.
//
// What is in the box?
//
//	segment/     - road records, direction labels, coordinate node keys
//	core/        - immutable graph: nodes keyed by coordinates, costed edges
//	dedup/       - collapse parallel segments, keep the cheapest per direction
//	reconstruct/ - node sequence → edge sequence and exact total cost
//	search/      - Dijkstra / A* engine and a gonum-backed cross-check engine
//	validate/    - cost-spread check and a parallel multi-engine runner
//	bfs/         - hop-count reachability along directed edges
//	builder/     - synthetic street grids with one-ways and duplicates
//	ingest/      - GeoJSON in and out (_cost, _id, _direction, ...)
//	config/      - YAML settings of the command line tool
//	metrics/     - Prometheus counters for validation runs
//
// A typical pipeline:
//
//	segs   → core.Build          → raw graph
//	segs   → dedup.Resolve       → core.Build → deduplicated graph
//	engine.Find(origin, dest)    → reconstruct.Reconstruct → cost
//	costs of all engines         → validate.Validate → agree / spread
//
// Quick ASCII example:
//
//	    A═══B        two segments A→B with costs 5 and 3:
//	                 the deduplicated graph keeps only the 3,
//	                 and every engine must report cost 3 for A→B.
//
//	go install github.com/katalvlaran/lvroute/cmd/lvroute@latest
package lvroute
