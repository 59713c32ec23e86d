package util

import (
	"golang.org/x/exp/constraints"
)

type _PQItem[T any, P constraints.Ordered] struct {
	value    T
	priority P
}

// Binary min-heap.
//
// There is no decrease-key, callers push a new entry instead and
// skip the stale ones when they come out of the queue.
type PriorityQueue[T any, P constraints.Ordered] struct {
	items List[_PQItem[T, P]]
}

func NewPriorityQueue[T any, P constraints.Ordered](cap int) PriorityQueue[T, P] {
	return PriorityQueue[T, P]{
		items: NewList[_PQItem[T, P]](cap),
	}
}

func (self *PriorityQueue[T, P]) Enqueue(value T, priority P) {
	self.items.Add(_PQItem[T, P]{value, priority})
	self._Up(self.items.Length() - 1)
}

// Removes the item with the smallest priority.
//
// Returns false if the queue is empty.
func (self *PriorityQueue[T, P]) Dequeue() (T, bool) {
	if self.items.Length() == 0 {
		var t T
		return t, false
	}
	last := self.items.Length() - 1
	top := self.items[0]
	self.items[0] = self.items[last]
	self.items = self.items[:last]
	if last > 0 {
		self._Down(0)
	}
	return top.value, true
}

func (self *PriorityQueue[T, P]) Peek() (T, P, bool) {
	if self.items.Length() == 0 {
		var t T
		var p P
		return t, p, false
	}
	top := self.items[0]
	return top.value, top.priority, true
}

func (self *PriorityQueue[T, P]) Length() int {
	return self.items.Length()
}

func (self *PriorityQueue[T, P]) Clear() {
	self.items = self.items[:0]
}

func (self *PriorityQueue[T, P]) _Up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !(self.items[i].priority < self.items[parent].priority) {
			break
		}
		self.items[i], self.items[parent] = self.items[parent], self.items[i]
		i = parent
	}
}

func (self *PriorityQueue[T, P]) _Down(i int) {
	n := self.items.Length()
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		smallest := left
		if right := left + 1; right < n && self.items[right].priority < self.items[left].priority {
			smallest = right
		}
		if !(self.items[smallest].priority < self.items[i].priority) {
			break
		}
		self.items[i], self.items[smallest] = self.items[smallest], self.items[i]
		i = smallest
	}
}
