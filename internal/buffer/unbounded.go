// Package buffer provides a channel adapter that never blocks producers.
package buffer

// Unbounded returns a pair of channels joined by a growable queue. Sends on
// in never block while the queue is under hardLimit; past that the oldest
// item is discarded and passed to onDrop (which may be nil). Closing in
// flushes the queue to out and then closes out.
//
//	in, out := buffer.Unbounded[event.Event](64, 4096, nil)
//	in <- ev
//	ev := <-out
func Unbounded[T any](initialCap, hardLimit int, onDrop func(T)) (chan<- T, <-chan T) {
	in := make(chan T, 16)
	out := make(chan T, 16)

	go func() {
		defer close(out)
		queue := make([]T, 0, initialCap)

		for {
			// A nil channel disables the send case while the queue is empty.
			var head T
			var downstream chan T
			if len(queue) > 0 {
				head = queue[0]
				downstream = out
			}

			select {
			case v, ok := <-in:
				if !ok {
					for _, item := range queue {
						out <- item
					}
					return
				}
				if len(queue) >= hardLimit {
					if onDrop != nil {
						onDrop(queue[0])
					}
					queue = queue[1:]
				}
				queue = append(queue, v)

			case downstream <- head:
				queue = queue[1:]
			}
		}
	}()

	return in, out
}
