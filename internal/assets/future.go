package assets

// Future is the pending result of an asynchronous load. It is resolved by
// Loader.Poll on the polling goroutine, and its callbacks run there too, so
// a Future must only be used from that goroutine.
type Future[T any] struct {
	name  string
	done  bool
	value T
	err   error

	then  []func(T)
	catch []func(error)
}

// Name returns the asset path being loaded.
func (f *Future[T]) Name() string {
	return f.name
}

// Then registers fn to receive the value. If the future already succeeded,
// fn runs immediately.
func (f *Future[T]) Then(fn func(T)) *Future[T] {
	if f.done {
		if f.err == nil {
			fn(f.value)
		}
		return f
	}
	f.then = append(f.then, fn)
	return f
}

// Catch registers fn to receive a load error. If the future already
// failed, fn runs immediately.
func (f *Future[T]) Catch(fn func(error)) *Future[T] {
	if f.done {
		if f.err != nil {
			fn(f.err)
		}
		return f
	}
	f.catch = append(f.catch, fn)
	return f
}

// Done reports whether the future has been resolved.
func (f *Future[T]) Done() bool {
	return f.done
}

// Result returns the value and error. Both are zero until Done.
func (f *Future[T]) Result() (T, error) {
	return f.value, f.err
}

func (f *Future[T]) resolve(v T, err error) {
	f.done = true
	f.value, f.err = v, err
	if err != nil {
		for _, fn := range f.catch {
			fn(err)
		}
	} else {
		for _, fn := range f.then {
			fn(v)
		}
	}
	f.then, f.catch = nil, nil
}
