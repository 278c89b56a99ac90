package timer

// Pending reports how many timers are armed and not yet delivered or cancelled.
func (s *LocalService) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.timers)
}
