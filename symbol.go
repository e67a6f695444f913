// symbol.go: symbol state and the multi-character symbol prefix tree
package kassemblix

// symbolNode is one node of the prefix tree of registered symbols. A node
// is terminal when the path from the root down to it spells a complete
// registered symbol.
type symbolNode struct {
	children map[byte]*symbolNode
	terminal bool
}

func newSymbolNode() *symbolNode {
	return &symbolNode{children: make(map[byte]*symbolNode)}
}

func (n *symbolNode) ensure(c byte) *symbolNode {
	child := n.children[c]
	if child == nil {
		child = newSymbolNode()
		n.children[c] = child
	}
	return child
}

// symbolState tokenizes symbols, preferring the longest registered
// multi-character symbol over a single character. Every single character
// is implicitly a symbol, so matching never fails.
type symbolState struct {
	root *symbolNode
}

func newSymbolState() *symbolState {
	s := &symbolState{root: newSymbolNode()}
	s.add("!=")
	s.add(">=")
	s.add("<=")
	return s
}

// add registers a multi-character symbol.
func (s *symbolState) add(sym string) {
	node := s.root
	for i := 0; i < len(sym); i++ {
		node = node.ensure(sym[i])
	}
	node.terminal = true
}

func (s *symbolState) nextToken(r *CharReader, c int, t *Tokenizer) (Token, error) {
	return NewSymbolToken(s.readLongest(r, byte(c))), nil
}

// readLongest walks the tree as far as the input allows, then unreads the
// characters beyond the longest complete symbol seen.
func (s *symbolState) readLongest(r *CharReader, first byte) string {
	buf := []byte{first}
	keep := 1 // a lone character is always a symbol
	node := s.root.children[first]
	for node != nil {
		if node.terminal {
			keep = len(buf)
		}
		c := r.Read()
		if c < 0 {
			break
		}
		child := node.children[byte(c)]
		if child == nil {
			r.Unread(c)
			break
		}
		buf = append(buf, byte(c))
		node = child
	}
	for i := len(buf) - 1; i >= keep; i-- {
		r.Unread(int(buf[i]))
	}
	return string(buf[:keep])
}
