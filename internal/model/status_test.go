package model

import "testing"

func TestTaskStatusIsActive(t *testing.T) {
	activeStatuses := []TaskStatus{TaskStatusResolving, TaskStatusAcquiring, TaskStatusTranscribing}
	for _, status := range activeStatuses {
		if !status.IsActive() {
			t.Errorf("Expected %s to be active", status)
		}
	}

	inactiveStatuses := []TaskStatus{TaskStatusIdle, TaskStatusDone, TaskStatusFailed}
	for _, status := range inactiveStatuses {
		if status.IsActive() {
			t.Errorf("Expected %s to not be active", status)
		}
	}
}

func TestTaskStatusIsTerminal(t *testing.T) {
	terminalStatuses := []TaskStatus{TaskStatusDone, TaskStatusFailed}
	for _, status := range terminalStatuses {
		if !status.IsTerminal() {
			t.Errorf("Expected %s to be terminal", status)
		}
	}

	nonTerminalStatuses := []TaskStatus{TaskStatusIdle, TaskStatusResolving, TaskStatusAcquiring, TaskStatusTranscribing}
	for _, status := range nonTerminalStatuses {
		if status.IsTerminal() {
			t.Errorf("Expected %s to not be terminal", status)
		}
	}
}

func TestCanTransitionTo(t *testing.T) {
	allowed := []struct {
		from TaskStatus
		to   TaskStatus
	}{
		{TaskStatusIdle, TaskStatusResolving},
		{TaskStatusResolving, TaskStatusAcquiring},
		{TaskStatusResolving, TaskStatusFailed},
		{TaskStatusAcquiring, TaskStatusTranscribing},
		{TaskStatusAcquiring, TaskStatusFailed},
		{TaskStatusTranscribing, TaskStatusDone},
		{TaskStatusTranscribing, TaskStatusFailed},
	}
	for _, tr := range allowed {
		if !tr.from.CanTransitionTo(tr.to) {
			t.Errorf("Expected transition %s -> %s to be allowed", tr.from, tr.to)
		}
	}

	denied := []struct {
		from TaskStatus
		to   TaskStatus
	}{
		{TaskStatusIdle, TaskStatusDone},
		{TaskStatusIdle, TaskStatusTranscribing},
		{TaskStatusResolving, TaskStatusDone},
		{TaskStatusAcquiring, TaskStatusResolving},
		{TaskStatusDone, TaskStatusResolving},
		{TaskStatusFailed, TaskStatusResolving},
		{TaskStatusFailed, TaskStatusAcquiring},
	}
	for _, tr := range denied {
		if tr.from.CanTransitionTo(tr.to) {
			t.Errorf("Expected transition %s -> %s to be denied", tr.from, tr.to)
		}
	}
}

func TestTaskStatusString(t *testing.T) {
	if TaskStatusResolving.String() != "Resolving" {
		t.Errorf("Expected 'Resolving', got '%s'", TaskStatusResolving.String())
	}
}
