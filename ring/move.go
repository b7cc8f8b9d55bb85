package ring

// Move transfers one particle from node src to node dst when read[src] > 0
// and read[dst] < capacity. The check reads from read and the transfer is
// written to write; passing the same State for both moves in place. It reports
// whether a particle moved. A refused move leaves write untouched.
func Move(read, write State, src, dst, capacity int) bool {
	if read[src] <= 0 || read[dst] >= capacity {
		return false
	}

	write[src]--
	write[dst]++

	return true
}

// MoveParticle is the copy-on-write form of Move. The input is never
// modified.
func MoveParticle(s State, src, dst, capacity int) State {
	next := s.Clone()
	Move(s, next, src, dst, capacity)

	return next
}
