// Package exec provides a blocking, policy-ordered task queue.
//
// A Task wraps fallible work and runs to a result.Result. A Queue hands
// tasks from producers to consumers through a mutex-guarded handoff point:
// Push/Emplace on the producer side, Pop (context-driven) and PopFor
// (timed) on the consumer side, with FIFO or LIFO ordering.
//
// The package does not schedule work: consumers decide when and where to
// run the tasks they pop.
package exec
