package forkjoin

// Result holds the outcome of a task started with Fork. It must only be read
// after Sync has returned for the Block the task was forked on.
type Result[T any] struct {
	value T
	err   error
}

// Get returns the value and error produced by the forked function.
func (r *Result[T]) Get() (T, error) {
	return r.value, r.err
}

// Fork spawns fn on b and returns the Result it will write into.
//
// Example:
//
//	var b forkjoin.Block
//	left := forkjoin.Fork(pool, &b, func() (int, error) { return count(xs[:mid]) })
//	right, rightErr := count(xs[mid:])
//	pool.Sync(&b)
//	l, leftErr := left.Get()
func Fork[T any](p Pool, b *Block, fn func() (T, error)) *Result[T] {
	r := &Result[T]{}
	p.Spawn(b, func() {
		r.value, r.err = fn()
	})
	return r
}
