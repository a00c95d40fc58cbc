package process

// Notes:
// - Only an unused PID is exercised. PID 0 would target the current process
//   group and real PIDs would kill real processes; browser cleanup is covered
//   by the chrome engine integration tests.

import "testing"

func TestKillProcessGroup_UnusedPID(t *testing.T) {
	t.Parallel()

	KillProcessGroup(999999999)
}
