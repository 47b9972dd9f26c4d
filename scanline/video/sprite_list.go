package video

const noNode = -1

type listNode struct {
	prev, next int
}

// spriteList orders sprite slots for drawing. Nodes live in a fixed array
// indexed by slot, so reordering never moves sprite data or allocates.
type spriteList struct {
	first, last int
	nodes       []listNode
	linked      []bool
}

func newSpriteList(n int) *spriteList {
	l := &spriteList{
		first:  noNode,
		last:   noNode,
		nodes:  make([]listNode, n),
		linked: make([]bool, n),
	}
	for i := range l.nodes {
		l.nodes[i] = listNode{prev: noNode, next: noNode}
	}
	return l
}

func (l *spriteList) contains(n int) bool {
	return l.linked[n]
}

// append links n at the end. Linked nodes are left in place.
func (l *spriteList) append(n int) {
	if l.linked[n] {
		return
	}
	l.nodes[n] = listNode{prev: l.last, next: noNode}
	if l.last != noNode {
		l.nodes[l.last].next = n
	} else {
		l.first = n
	}
	l.last = n
	l.linked[n] = true
}

// unlink removes n, joining its neighbours.
func (l *spriteList) unlink(n int) {
	if !l.linked[n] {
		return
	}
	node := l.nodes[n]
	if node.prev != noNode {
		l.nodes[node.prev].next = node.next
	} else {
		l.first = node.next
	}
	if node.next != noNode {
		l.nodes[node.next].prev = node.prev
	} else {
		l.last = node.prev
	}
	l.nodes[n] = listNode{prev: noNode, next: noNode}
	l.linked[n] = false
}

// moveFirst makes n the first node.
func (l *spriteList) moveFirst(n int) {
	l.unlink(n)
	l.nodes[n] = listNode{prev: noNode, next: l.first}
	if l.first != noNode {
		l.nodes[l.first].prev = n
	} else {
		l.last = n
	}
	l.first = n
	l.linked[n] = true
}

// moveAfter relinks next right after n, which must be linked.
func (l *spriteList) moveAfter(n, next int) {
	l.unlink(next)
	after := l.nodes[n].next
	l.nodes[next] = listNode{prev: n, next: after}
	l.nodes[n].next = next
	if after != noNode {
		l.nodes[after].prev = next
	} else {
		l.last = next
	}
	l.linked[next] = true
}

// order returns the linked slots from first to last.
func (l *spriteList) order() []int {
	var out []int
	for n := l.first; n != noNode; n = l.nodes[n].next {
		out = append(out, n)
	}
	return out
}
