package solver

import "container/list"

// Frontier holds discovered cells (as grid indexes) that have not been expanded yet.
type Frontier interface {
	Push(index int)
	// Pop removes the next cell to expand. It returns false when the frontier is empty.
	Pop() (int, bool)
	Len() int
}

// deque is the double-ended sequence both frontier disciplines share.
type deque struct {
	items *list.List
}

func newDeque() deque {
	return deque{items: list.New()}
}

// Push adds a cell to the back.
func (d deque) Push(index int) {
	d.items.PushBack(index)
}

// Len returns the number of pending cells.
func (d deque) Len() int {
	return d.items.Len()
}

func (d deque) take(elem *list.Element) (int, bool) {
	if elem == nil {
		return 0, false
	}
	d.items.Remove(elem)
	return elem.Value.(int), true
}

// Stack is a last-in-first-out frontier (depth-first).
type Stack struct{ deque }

// NewStack creates an empty stack.
func NewStack() *Stack {
	return &Stack{deque: newDeque()}
}

// Pop removes the most recently pushed cell.
func (s *Stack) Pop() (int, bool) {
	return s.take(s.items.Back())
}

// Queue is a first-in-first-out frontier (breadth-first).
type Queue struct{ deque }

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{deque: newDeque()}
}

// Pop removes the earliest pushed cell.
func (q *Queue) Pop() (int, bool) {
	return q.take(q.items.Front())
}
