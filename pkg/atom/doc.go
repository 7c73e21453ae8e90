// Package atom resolves a single atom into a concrete visual treatment. The
// resolution is deterministic and total: explicit display wins, then the
// legacy type table, then inference from the type/subtype pair, and every
// branch has a textual fallback so no atom is ever unrenderable.
package atom
