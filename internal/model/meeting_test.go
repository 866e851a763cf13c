package model

import (
	"testing"
	"time"
)

func TestMeeting_Title(t *testing.T) {
	t.Parallel()

	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		hint string
		want string
	}{
		{"empty hint", "", "2024-01-15 – Meeting"},
		{"whitespace hint", "   ", "2024-01-15 – Meeting"},
		{"explicit hint", "Kickoff", "2024-01-15 – Kickoff"},
		{"hint with surrounding spaces", "  Kickoff  ", "2024-01-15 – Kickoff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meeting := &Meeting{MeetingDate: date, TitleHint: tt.hint}
			if got := meeting.Title(); got != tt.want {
				t.Errorf("Title() = %q, want %q", got, tt.want)
			}
		})
	}
}
