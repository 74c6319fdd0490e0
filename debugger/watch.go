package debugger

type watch struct {
	ma   mappedAddress
	data uint8
	prev uint8
}

// checkWatches returns the first watch with a changed value. The watch is
// updated with the new value
func (m *debugger) checkWatches() *watch {
	for a, w := range m.watches {
		d := w.ma.peek()
		if d != w.data {
			w.prev = w.data
			w.data = d
			m.watches[a] = w
			return &w
		}
	}
	return nil
}
