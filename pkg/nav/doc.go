// Package nav owns the navigation state of a shopping conversation: the
// trail of formations the user has moved through, and the engine that
// mutates it in response to queries, card expansions, and back navigation.
//
// The trail is the client's source of truth for what is currently on
// screen. Server notifications for locally resolved actions are decoupled
// fire-and-forget calls; they may arrive late or not at all.
package nav
