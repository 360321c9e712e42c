package aoc

// Stack is a LIFO stack. The zero value is ready to use.
type Stack[T any] struct {
	s []T
}

func NewStack[T any](in ...T) *Stack[T] {
	return &Stack[T]{s: in}
}

func (s *Stack[T]) Len() int {
	return len(s.s)
}

func (s *Stack[T]) Push(v ...T) {
	s.s = append(s.s, v...)
}

func (s *Stack[T]) Pop() (T, bool) {
	if len(s.s) == 0 {
		var zero T
		return zero, false
	}
	v := s.s[len(s.s)-1]
	var zero T
	s.s[len(s.s)-1] = zero
	s.s = s.s[:len(s.s)-1]
	return v, true
}

// While pops values and passes them to f until the stack is empty or f
// returns false. f may push more values.
func (s *Stack[T]) While(f func(T) bool) {
	for {
		v, ok := s.Pop()
		if !ok {
			return
		}
		if !f(v) {
			return
		}
	}
}

func (s *Stack[T]) Peek() (T, bool) {
	if len(s.s) == 0 {
		var zero T
		return zero, false
	}
	return s.s[len(s.s)-1], true
}

func NewQueue[T any](in ...T) Queue[T] {
	return Queue[T]{
		q: in,
	}
}

// Queue is a FIFO queue. The zero value is ready to use.
type Queue[T any] struct {
	q []T
}

func (q *Queue[T]) Len() int {
	return len(q.q)
}

func (q *Queue[T]) Push(v T) {
	q.q = append(q.q, v)
}

func (q *Queue[T]) Pop() (T, bool) {
	if len(q.q) == 0 {
		var zero T
		return zero, false
	}
	v := q.q[0]
	q.q = q.q[1:]
	return v, true
}

func (q *Queue[T]) While(f func(T) bool) {
	for {
		v, ok := q.Pop()
		if !ok {
			return
		}
		if !f(v) {
			return
		}
	}
}
