// Package menu implements the slash menu: the Open/Closed state machine that
// owns the highlighted option, and the pure key dispatcher that decides which
// transition a key event maps to.
package menu
