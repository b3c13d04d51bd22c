// Package reach answers "can the agent reach that cell under this
// movement rule" with a family of BFS searches. Generators use it to
// confirm every game-critical placement is reachable before accepting
// an instance; games use it for win-condition queries.
package reach

import "github.com/zelenka/puzzlebox/model"

// Blocked reports whether a cell is impassable. Cells outside the board
// are never passed to it.
type Blocked func(p model.Pos) bool

// Walk returns every cell reachable from start by orthogonal steps that
// stay in bounds and off blocked cells.
func Walk(w, h int, start model.Pos, blocked Blocked) map[model.Pos]bool {
	visited := map[model.Pos]bool{start: true}
	queue := []model.Pos{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range model.Dirs {
			next := model.Pos{X: cur.X + d.X, Y: cur.Y + d.Y}
			if next.X < 0 || next.X >= w || next.Y < 0 || next.Y >= h {
				continue
			}
			if visited[next] || blocked(next) {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}
	return visited
}

// SlideCollectible reports whether an agent starting at start can touch
// target under ice-slide movement: each move slides the full line until
// a blocked cell or the boundary stops it, and any cell passed through
// along the slide counts as touched.
func SlideCollectible(w, h int, start, target model.Pos, blocked Blocked) bool {
	visited := map[model.Pos]bool{start: true}
	queue := []model.Pos{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range model.Dirs {
			rest, passed := slide(w, h, cur, d, target, blocked)
			if passed {
				return true
			}
			if !visited[rest] {
				visited[rest] = true
				queue = append(queue, rest)
			}
		}
	}
	return false
}

// slide walks from p in direction d to the resting cell, reporting
// whether target was passed on the way (resting cell included).
func slide(w, h int, p, d, target model.Pos, blocked Blocked) (model.Pos, bool) {
	passed := false
	for {
		next := model.Pos{X: p.X + d.X, Y: p.Y + d.Y}
		if next.X < 0 || next.X >= w || next.Y < 0 || next.Y >= h {
			break
		}
		if blocked(next) {
			break
		}
		if next == target {
			passed = true
		}
		p = next
	}
	return p, passed
}

// TeleportPath reports whether target is reachable from start by
// walking, where arriving on a warp cell substitutes arrival at its
// paired cell. Both the pre- and post-warp cells are marked visited.
func TeleportPath(w, h int, start, target model.Pos, blocked Blocked, warps map[model.Pos]model.Pos) bool {
	visited := map[model.Pos]bool{start: true}
	queue := []model.Pos{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == target {
			return true
		}
		for _, d := range model.Dirs {
			next := model.Pos{X: cur.X + d.X, Y: cur.Y + d.Y}
			if next.X < 0 || next.X >= w || next.Y < 0 || next.Y >= h {
				continue
			}
			if blocked(next) {
				continue
			}
			final := next
			if dest, ok := warps[next]; ok {
				final = dest
			}
			if !visited[final] {
				visited[final] = true
				queue = append(queue, final)
			}
			if !visited[next] {
				visited[next] = true
			}
		}
	}
	return false
}

// Connected reports whether start and end are joined by orthogonal
// steps confined to cells. Used by the path puzzle's win check, where
// cells is one color's occupied set with both endpoints added.
func Connected(cells map[model.Pos]bool, start, end model.Pos) bool {
	visited := map[model.Pos]bool{start: true}
	queue := []model.Pos{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == end {
			return true
		}
		for _, d := range model.Dirs {
			next := model.Pos{X: cur.X + d.X, Y: cur.Y + d.Y}
			if !visited[next] && cells[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return false
}
