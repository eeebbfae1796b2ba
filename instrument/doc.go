// Package instrument exports search runs as Prometheus metrics.
//
// A Recorder owns a fixed set of collectors registered on a caller-supplied
// prometheus.Registerer:
//
//	<ns>_searches_total{algorithm,status}        counter
//	<ns>_nodes_expanded_total{algorithm}          counter
//	<ns>_path_cost{algorithm}                     histogram, solved runs only
//	<ns>_max_queue_size{algorithm}                histogram
//	<ns>_search_duration_seconds{algorithm}       histogram
//
// The namespace defaults to "lvsearch". Track wraps any search call and
// records its outcome; runs that return an error are counted with
// status="error". WriteText renders a registry in the Prometheus text format.
package instrument
