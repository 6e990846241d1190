// Package xmltree parses a whole XML document into a generic element tree.
//
// The router's API answers every call with a small XML document whose shape
// depends on the endpoint, e.g.
//
//	<response><ConnectionStatus>901</ConnectionStatus></response>
//
// or, on failure,
//
//	<error><code>125002</code><message></message></error>
//
// so callers often need to inspect a document before (or instead of)
// unmarshalling it into a typed struct. Node offers path lookups for that
// and Map renders the tree as nested maps for printing.
package xmltree
