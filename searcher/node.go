package searcher

import (
	"golang.org/x/exp/rand"

	"parques/game"
)

// node is one state in the search tree. Untried moves are expanded in order
// before any child is revisited; a node with no untried moves and no
// children is terminal for the mover.
type node struct {
	parent   *node
	move     game.Move
	state    *game.GameState
	untried  []game.Move
	children []*node
	visits   int
	rewards  float64
}

func newNode(parent *node, move game.Move, state *game.GameState, untried []game.Move) *node {
	return &node{
		parent:  parent,
		move:    move,
		state:   state,
		untried: untried,
	}
}

// selectChild picks the child maximizing the UCB1 score. Call only on a
// fully expanded node with at least one visit.
func (n *node) selectChild(cSquared float64) *node {
	policy := newUCT(cSquared, float64(n.visits))

	var best *node
	bestScore := 0.0
	for _, child := range n.children {
		score := policy.evaluate(child.rewards, float64(child.visits))
		if best == nil || score > bestScore {
			best = child
			bestScore = score
		}
	}
	return best
}

// expand pops the next untried move, plays it on a clone and attaches the
// resulting child. Fresh dice are sampled for the child so its own legal
// moves can be generated.
func (n *node) expand(rng *rand.Rand) *node {
	last := len(n.untried) - 1
	move := n.untried[last]
	n.untried = n.untried[:last]

	state := n.state.Clone()
	applySimulated(state, move)

	var untried []game.Move
	if mover := state.CurrentPlayer(); mover != nil {
		dice := sampleDice(state, rng)
		untried = state.LegalMoves(mover.ID, dice)
	}

	added := newNode(n, move, state, untried)
	n.children = append(n.children, added)
	return added
}

// terminal reports a node nothing can be expanded or selected from.
func (n *node) terminal() bool {
	return len(n.untried) == 0 && len(n.children) == 0
}

// backup propagates a rollout reward from this node to the root.
func (n *node) backup(reward float64) {
	for cursor := n; cursor != nil; cursor = cursor.parent {
		cursor.visits++
		cursor.rewards += reward
	}
}

// bestMove is the move of the most-visited root child.
func (n *node) bestMove() game.Move {
	if len(n.children) == 0 {
		panic("node has no children")
	}

	best := n.children[0]
	for _, child := range n.children[1:] {
		if child.visits > best.visits {
			best = child
		}
	}
	return best.move
}
