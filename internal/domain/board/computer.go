package board

import (
	"math"
	"math/rand/v2"
)

const winScore = 1_000_000

// Computer chooses moves by a depth-limited negamax search.
// Ties between equally scored columns are broken by its random source.
type Computer struct {
	depth int
	rng   *rand.Rand
}

// NewComputer creates a computer searching depth plies ahead.
// Depths below 1 are raised to 1.
func NewComputer(depth int, seed uint64) *Computer {
	return &Computer{
		depth: max(depth, 1),
		rng:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Depth returns the search depth in plies.
func (c *Computer) Depth() int { return c.depth }

// Choose returns the column to drop me in. The board is left unchanged.
// It returns -1 only when the board is full.
func (c *Computer) Choose(b *Board, me Disc) int {
	work := b.Clone()
	best := math.MinInt
	var picks []int
	for _, col := range columnOrder(work.Columns()) {
		if !work.CanDrop(col) {
			continue
		}
		score := c.scoreMove(work, col, me)
		switch {
		case score > best:
			best = score
			picks = append(picks[:0], col)
		case score == best:
			picks = append(picks, col)
		}
	}
	if len(picks) == 0 {
		return -1
	}
	return picks[c.rng.IntN(len(picks))]
}

func (c *Computer) scoreMove(b *Board, col int, me Disc) int {
	row, _ := b.Drop(col, me)
	defer b.undo(col)
	if b.Connects(col, row) {
		return winScore + c.depth
	}
	return -negamax(b, me.Other(), c.depth-1, -math.MaxInt, math.MaxInt)
}

func negamax(b *Board, d Disc, depth, alpha, beta int) int {
	if b.Full() {
		return 0
	}
	if depth == 0 {
		return evaluate(b, d)
	}
	best := -math.MaxInt
	for _, col := range columnOrder(b.Columns()) {
		if !b.CanDrop(col) {
			continue
		}
		row, _ := b.Drop(col, d)
		var score int
		if b.Connects(col, row) {
			score = winScore + depth
		} else {
			score = -negamax(b, d.Other(), depth-1, -beta, -alpha)
		}
		b.undo(col)

		best = max(best, score)
		alpha = max(alpha, score)
		if alpha >= beta {
			break
		}
	}
	return best
}

// evaluate scores the position for d by counting open windows.
func evaluate(b *Board, d Disc) int {
	score := 0
	center := b.Columns() / 2
	for r := 0; r < b.Rows(); r++ {
		switch b.At(center, r) {
		case d:
			score += 3
		case d.Other():
			score -= 3
		}
	}
	for _, dir := range [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}} {
		for c := 0; c < b.Columns(); c++ {
			for r := 0; r < b.Rows(); r++ {
				score += window(b, c, r, dir[0], dir[1], d)
			}
		}
	}
	return score
}

func window(b *Board, col, row, dc, dr int, d Disc) int {
	endC, endR := col+dc*(ConnectLength-1), row+dr*(ConnectLength-1)
	if endC < 0 || endC >= b.Columns() || endR < 0 || endR >= b.Rows() {
		return 0
	}
	mine, theirs := 0, 0
	for i := 0; i < ConnectLength; i++ {
		switch b.At(col+dc*i, row+dr*i) {
		case d:
			mine++
		case d.Other():
			theirs++
		}
	}
	switch {
	case mine > 0 && theirs > 0:
		return 0
	case mine == 3:
		return 5
	case mine == 2:
		return 2
	case theirs == 3:
		return -4
	}
	return 0
}

// columnOrder lists columns center first.
func columnOrder(cols int) []int {
	order := make([]int, 0, cols)
	mid := (cols - 1) / 2
	order = append(order, mid)
	for off := 1; len(order) < cols; off++ {
		if c := mid - off; c >= 0 {
			order = append(order, c)
		}
		if c := mid + off; c < cols {
			order = append(order, c)
		}
	}
	return order
}
