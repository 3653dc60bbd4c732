package inmemory

import "sync"

type Snapshot struct {
	SolveTotal      uint64            `json:"solve_total"`
	SolveSolved     uint64            `json:"solve_solved"`
	SolveNoSolution uint64            `json:"solve_no_solution"`
	SolveFailure    uint64            `json:"solve_failure"`
	ByMode          map[string]uint64 `json:"by_mode"`
}

type Recorder struct {
	mu         sync.Mutex
	solved     uint64
	noSolution uint64
	failure    uint64
	byMode     map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byMode: map[string]uint64{},
	}
}

func (r *Recorder) RecordSolved(mode string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.solved++
	r.byMode[mode]++
}

func (r *Recorder) RecordNoSolution(mode string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.noSolution++
	r.byMode[mode]++
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		SolveSolved:     r.solved,
		SolveNoSolution: r.noSolution,
		SolveFailure:    r.failure,
		SolveTotal:      r.solved + r.noSolution + r.failure,
		ByMode:          make(map[string]uint64, len(r.byMode)),
	}
	for k, v := range r.byMode {
		out.ByMode[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
