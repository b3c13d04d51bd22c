package reach

import "github.com/zelenka/puzzlebox/model"

// JointState is the combined position of the two mirrored agents, used
// only as a BFS search node. It is a plain value: comparable, hashable,
// never persisted.
type JointState struct {
	MainX, MainY     int
	MirrorX, MirrorY int
}

// Joint reports whether the main agent and its mirror can stand on
// target simultaneously. Per turn the main agent attempts (dx,dy) and
// the mirror attempts (-dx,-dy); an agent whose destination is out of
// bounds or a wall is pinned in place while the other still moves; the
// turn itself always happens.
func Joint(w, h int, walls map[model.Pos]bool, main, mirror, target model.Pos) bool {
	start := JointState{main.X, main.Y, mirror.X, mirror.Y}
	if onTarget(start, target) {
		return true
	}
	visited := map[JointState]bool{start: true}
	queue := []JointState{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range model.Dirs {
			next := advance(w, h, walls, cur, d)
			if visited[next] {
				continue
			}
			visited[next] = true
			if onTarget(next, target) {
				return true
			}
			queue = append(queue, next)
		}
	}
	return false
}

// advance applies one joint turn with the pinning rule.
func advance(w, h int, walls map[model.Pos]bool, s JointState, d model.Pos) JointState {
	mx, my := s.MainX+d.X, s.MainY+d.Y
	if mx < 0 || mx >= w || my < 0 || my >= h || walls[model.Pos{X: mx, Y: my}] {
		mx, my = s.MainX, s.MainY
	}
	rx, ry := s.MirrorX-d.X, s.MirrorY-d.Y
	if rx < 0 || rx >= w || ry < 0 || ry >= h || walls[model.Pos{X: rx, Y: ry}] {
		rx, ry = s.MirrorX, s.MirrorY
	}
	return JointState{mx, my, rx, ry}
}

func onTarget(s JointState, t model.Pos) bool {
	return s.MainX == t.X && s.MainY == t.Y && s.MirrorX == t.X && s.MirrorY == t.Y
}
