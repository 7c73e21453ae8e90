// Package schema defines the wire types the backend uses to describe a
// storefront view: atoms (one typed value plus a visual treatment), widgets
// (atoms grouped into slots and rendered through a named template), and
// formations (a page-level arrangement of widgets).
//
// Three overlapping schema generations exist in the wild. Normalize upgrades
// a payload to the current generation once at ingestion so the rest of the
// pipeline never deals with legacy fallbacks.
package schema
