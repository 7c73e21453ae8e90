// Package template defines the template-renderer contract page shells are
// rendered through, decoupling renderers from any specific template engine.
package template
