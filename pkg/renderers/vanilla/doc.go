// Package vanilla renders formations to framework-free HTML. Widget markup is
// assembled with strings.Builder; the page shell around it goes through the
// template seam so hosts can restyle the chrome without touching layout code.
//
// Interaction points (carousel taps, reveal sentinel, expand buttons, action
// chips) are emitted as data attributes for a thin client runtime to bind to;
// the renderer itself stays a pure function of formation plus options.
package vanilla
