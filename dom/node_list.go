package dom

// NodeList is an ordered list of nodes.
// https://dom.whatwg.org/#nodelist
type NodeList []*Node

// Contains returns the index of n in the list, -1 when absent. Identity
// comparison, not structural equality.
func (h *NodeList) Contains(n *Node) int {
	for i := range *h {
		if n == (*h)[i] {
			return i
		}
	}
	return -1
}

// Remove takes the node at index i out of the list and returns it. Out of
// range indices return nil.
func (h *NodeList) Remove(i int) *Node {
	if i < 0 {
		return nil
	}
	if i >= len(*h) {
		return nil
	}
	node := (*h)[i]
	*h = append((*h)[:i], (*h)[i+1:]...)
	return node
}

// WedgeIn places n at index i, shifting the rest of the list right. An index
// past the end appends.
func (h *NodeList) WedgeIn(i int, n *Node) {
	if i < 0 {
		return
	}
	if i >= len(*h) {
		*h = append(*h, n)
		return
	}
	*h = append((*h)[:i+1], (*h)[i:]...)
	(*h)[i] = n
}

type NodeIterator struct {
	nodeList NodeList
	i        int
}

func NewNodeIterator(nl NodeList) *NodeIterator {
	return &NodeIterator{
		nodeList: nl,
		i:        0,
	}
}

func (n *NodeIterator) Next() bool {
	return n.i < len(n.nodeList)
}

func (n *NodeIterator) Node() *Node {
	if n.i >= 0 && n.i < len(n.nodeList) {
		node := n.nodeList[n.i]
		n.i++
		return node
	}
	return nil
}

func (n *NodeIterator) WithStart(i int) *NodeIterator {
	n.i = i
	return n
}
