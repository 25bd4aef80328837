// Package brain implements the interpreter engine.
//
// The engine holds the immutable instruction sequence, a program counter,
// an address pointer, and the memory tape. Execution is a fetch/dispatch
// loop that ends when the program counter runs past the last instruction;
// there is no halt instruction. Loop delimiters are resolved lazily by a
// nesting-counter scan each time a jump is taken, so an unbalanced
// delimiter only fails if control actually reaches it.
//
// Every operation returns an error instead of aborting, leaving the
// abort-on-failure policy to the driver.
package brain
