package model

// TaskStatus represents the stage of a transcription task
type TaskStatus string

const (
	// TaskStatusIdle means the task has been created but not submitted
	TaskStatusIdle TaskStatus = "Idle"

	// TaskStatusResolving means the video ID is being extracted from the URL
	TaskStatusResolving TaskStatus = "Resolving"

	// TaskStatusAcquiring means the audio track is being downloaded
	TaskStatusAcquiring TaskStatus = "Acquiring"

	// TaskStatusTranscribing means speech recognition is running
	TaskStatusTranscribing TaskStatus = "Transcribing"

	// TaskStatusDone means the task finished with a transcript
	TaskStatusDone TaskStatus = "Done"

	// TaskStatusFailed means the task failed at some stage
	TaskStatusFailed TaskStatus = "Failed"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task is in an active pipeline stage
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusResolving || ts == TaskStatusAcquiring || ts == TaskStatusTranscribing
}

// IsTerminal returns true if the task reached a final state for this run
func (ts TaskStatus) IsTerminal() bool {
	return ts == TaskStatusDone || ts == TaskStatusFailed
}

// CanTransitionTo reports whether the status may move to next. The pipeline
// is strictly linear: every active stage may fail, only Transcribing reaches
// Done, and terminal states have no outgoing edges within a run.
func (ts TaskStatus) CanTransitionTo(next TaskStatus) bool {
	switch ts {
	case TaskStatusIdle:
		return next == TaskStatusResolving
	case TaskStatusResolving:
		return next == TaskStatusAcquiring || next == TaskStatusFailed
	case TaskStatusAcquiring:
		return next == TaskStatusTranscribing || next == TaskStatusFailed
	case TaskStatusTranscribing:
		return next == TaskStatusDone || next == TaskStatusFailed
	default:
		return false
	}
}
