package searcher

import (
	"math"

	"golang.org/x/exp/rand"

	"flagfall/game"
)

type nodeID = int32

const rootID nodeID = 0

// node is one search-tree node. The producing move is the move that led
// here from the parent (zero value at the root). untried is populated
// lazily at creation unless the node's state is already terminal.
type node struct {
	parent   nodeID
	move     game.Move
	state    *game.Board
	children []nodeID
	untried  []game.Move
	visits   int
	wins     float64
}

// tree keeps all nodes in a flat arena; parents and children reference each
// other by index, never by pointer, so there are no reference cycles and
// the whole tree is dropped in one free. agent is the searching side whose
// wins are credited on every backup, regardless of whose turn a node
// represents.
type tree struct {
	nodes []node
	agent game.Side
}

func newTree(root *game.Board, agent game.Side) *tree {
	t := &tree{agent: agent}
	t.addNode(-1, game.Move{}, root.Clone())
	return t
}

func (t *tree) addNode(parent nodeID, mv game.Move, state *game.Board) nodeID {
	n := node{parent: parent, move: mv, state: state}
	if !state.Over() {
		n.untried = state.LegalMovesFor(state.CurrentPlayer())
	}
	id := nodeID(len(t.nodes))
	t.nodes = append(t.nodes, n)
	if parent >= 0 {
		t.nodes[parent].children = append(t.nodes[parent].children, id)
	}
	return id
}

// selectNode descends from the root while the node is fully expanded and
// has children, picking the max-UCT child at each step.
func (t *tree) selectNode() nodeID {
	id := rootID
	for len(t.nodes[id].untried) == 0 && len(t.nodes[id].children) > 0 {
		id = t.bestChild(id)
	}
	return id
}

// bestChild returns the child maximizing UCT. An unvisited child scores
// unbounded, so every child gets tried once before any comparison.
func (t *tree) bestChild(id nodeID) nodeID {
	parent := &t.nodes[id]
	normalizer := CSquared * math.Log(float64(parent.visits))

	best := parent.children[0]
	bestScore := math.Inf(-1)
	for _, childID := range parent.children {
		child := &t.nodes[childID]
		if child.visits == 0 {
			return childID
		}
		if score := uctScore(child.wins, child.visits, normalizer); score > bestScore {
			bestScore = score
			best = childID
		}
	}
	return best
}

// expand pops one untried move at random, plays it on a clone and attaches
// the resulting child. A node with nothing untried is returned unchanged.
func (t *tree) expand(id nodeID, rng *rand.Rand) nodeID {
	n := &t.nodes[id]
	if len(n.untried) == 0 {
		return id
	}

	i := rng.Intn(len(n.untried))
	mv := n.untried[i]
	n.untried[i] = n.untried[len(n.untried)-1]
	n.untried = n.untried[:len(n.untried)-1]

	state := n.state.Clone()
	state.Apply(mv)
	return t.addNode(id, mv, state)
}

// backup walks from id to the root inclusive. Every node's visit count
// increments; wins go up by Win when the playout winner is the searching
// agent's side and by Draw on the draw sentinel - the reward is never
// flipped by whose turn the node represents.
func (t *tree) backup(id nodeID, winner game.Side) {
	for id >= 0 {
		n := &t.nodes[id]
		n.visits++
		switch winner {
		case t.agent:
			n.wins += Win
		case game.NoSide:
			n.wins += Draw
		}
		id = n.parent
	}
}

// bestMove returns the root child with the highest visit count, ties broken
// by first encountered.
func (t *tree) bestMove() (game.Move, bool) {
	root := &t.nodes[rootID]
	if len(root.children) == 0 {
		return game.Move{}, false
	}
	best := root.children[0]
	for _, childID := range root.children[1:] {
		if t.nodes[childID].visits > t.nodes[best].visits {
			best = childID
		}
	}
	return t.nodes[best].move, true
}
