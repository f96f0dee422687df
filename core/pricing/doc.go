// Package pricing implements the layered pricing resolution engine.
//
// A Pricing tree is addressed by tier id. Resolving a price for an instant
// walks a fixed-depth tree: tier → override/season → item → price set →
// price, applying override → season → base precedence at the tier and
// priority-descending, declaration-order-stable selection at every level.
// "No applicable price" is a nil result at every level; resolution never
// fails on malformed input because priorities are clamped and records are
// defaulted at construction time.
//
// Resolution is pure and synchronous. A tree may be queried concurrently
// as long as no caller mutates it mid-flight; the engine takes no locks.
package pricing
