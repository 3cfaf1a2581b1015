// internal/input/edge.go
package input

// EdgeDetector превращает уровень (зажато/отпущено) в фронт:
// Step возвращает true только на том тике, где кнопка перешла из
// отпущенного состояния в нажатое.
type EdgeDetector struct {
	prev [actionCount]bool
}

func (d *EdgeDetector) Step(a Action, held bool) bool {
	if a < 0 || a >= actionCount {
		return false
	}
	rising := held && !d.prev[a]
	d.prev[a] = held
	return rising
}

// Reset забывает предыдущее состояние всех кнопок.
func (d *EdgeDetector) Reset() {
	d.prev = [actionCount]bool{}
}
