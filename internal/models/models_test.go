package models

import (
	"testing"
)

func TestParentGateIsSet(t *testing.T) {
	tests := []struct {
		name string
		gate ParentGate
		want bool
	}{
		{
			name: "no credential",
			gate: ParentGate{},
			want: false,
		},
		{
			name: "both fields present",
			gate: ParentGate{SaltHex: "ab", PINHashHex: "cd"},
			want: true,
		},
		{
			name: "salt without hash",
			gate: ParentGate{SaltHex: "ab"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.gate.IsSet(); got != tt.want {
				t.Errorf("ParentGate.IsSet() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWorldProgressCompleted(t *testing.T) {
	world := &WorldProgress{
		CompletedLevelIDs: []string{"lv1", "lv2"},
		LevelStars:        map[string]int{"lv1": 3, "lv2": 2},
	}

	tests := []struct {
		name    string
		world   *WorldProgress
		levelID string
		want    bool
	}{
		{
			name:    "completed level",
			world:   world,
			levelID: "lv2",
			want:    true,
		},
		{
			name:    "uncompleted level",
			world:   world,
			levelID: "lv3",
			want:    false,
		},
		{
			name:    "nil world",
			world:   nil,
			levelID: "lv1",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.world.Completed(tt.levelID); got != tt.want {
				t.Errorf("Completed(%q) = %v, want %v", tt.levelID, got, tt.want)
			}
		})
	}
}

func TestProgressStateFocusEnabled(t *testing.T) {
	tests := []struct {
		name    string
		focus   []Subject
		subject Subject
		want    bool
	}{
		{
			name:    "empty focus set shows everything",
			focus:   nil,
			subject: SubjectLetters,
			want:    true,
		},
		{
			name:    "subject in focus set",
			focus:   []Subject{SubjectNumbers, SubjectShapes},
			subject: SubjectShapes,
			want:    true,
		},
		{
			name:    "subject outside focus set",
			focus:   []Subject{SubjectNumbers},
			subject: SubjectLetters,
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := ProgressState{FocusSubjects: tt.focus}
			if got := state.FocusEnabled(tt.subject); got != tt.want {
				t.Errorf("FocusEnabled(%q) = %v, want %v", tt.subject, got, tt.want)
			}
		})
	}
}

func TestSubjectIsValid(t *testing.T) {
	for _, subject := range AllSubjects {
		if !subject.IsValid() {
			t.Errorf("subject %q should be valid", subject)
		}
	}

	if Subject("dinosaurs").IsValid() {
		t.Error("unknown subject should not be valid")
	}
	if Subject("").IsValid() {
		t.Error("empty subject should not be valid")
	}
}

func TestLevelID(t *testing.T) {
	if got := LevelID(1); got != "lv1" {
		t.Errorf("LevelID(1) = %q, want %q", got, "lv1")
	}
	if got := LevelID(200); got != "lv200" {
		t.Errorf("LevelID(200) = %q, want %q", got, "lv200")
	}
}
