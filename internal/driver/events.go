package driver

// Stage identifies a step of the per-file pipeline for progress
// reporting.
type Stage uint8

const (
	StageCollect Stage = iota
	StageFormat
	StageWrite
)

// Status is the lifecycle state of a file within a stage.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusError
)

// Event is one progress update. File is empty for run-wide updates.
type Event struct {
	File   string
	Stage  Stage
	Status Status
}

func emit(events chan<- Event, ev Event) {
	if events == nil {
		return
	}
	events <- ev
}
