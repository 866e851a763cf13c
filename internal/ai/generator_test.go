package ai

import (
	"strings"
	"testing"
)

func TestMeetingSummaryMarkdown_English(t *testing.T) {
	t.Parallel()

	out := MeetingSummaryMarkdown("2024-01-15 – Kickoff", "We agreed on rollout dates.", "en")

	if !strings.HasPrefix(out, "# Meeting Summary - 2024-01-15 – Kickoff") {
		t.Errorf("summary should open with the title heading, got:\n%s", out)
	}
	if !strings.Contains(out, "## Key Decisions\nWe agreed on rollout dates.") {
		t.Error("raw notes should appear verbatim under Key Decisions")
	}
	for _, section := range []string{"## Agenda", "## Action Items", "## Next Steps", "## ARR Impact"} {
		if !strings.Contains(out, section) {
			t.Errorf("missing section %q", section)
		}
	}
}

func TestMeetingSummaryMarkdown_EmptyNotesPlaceholder(t *testing.T) {
	t.Parallel()

	out := MeetingSummaryMarkdown("2024-01-15 – Meeting", "", "en")
	if !strings.Contains(out, "No notes available") {
		t.Error("empty notes should render the placeholder")
	}
}

func TestMeetingSummaryMarkdown_Hebrew(t *testing.T) {
	t.Parallel()

	out := MeetingSummaryMarkdown("2024-01-15 – Meeting", "", "he")
	if !strings.Contains(out, "סיכום פגישה") {
		t.Error("hebrew summary should use the hebrew heading")
	}
	if !strings.Contains(out, "אין הערות זמינות") {
		t.Error("hebrew summary should use the hebrew notes placeholder")
	}
	if strings.Contains(out, "No notes available") {
		t.Error("hebrew summary should not contain english placeholder text")
	}
}

func TestMeetingSummaryMarkdown_UnsupportedLanguageFallsBack(t *testing.T) {
	t.Parallel()

	fr := MeetingSummaryMarkdown("t", "notes", "fr")
	en := MeetingSummaryMarkdown("t", "notes", "en")
	if fr != en {
		t.Error("unsupported language should render identically to english")
	}
}

func TestEmailDraft_SubjectFormat(t *testing.T) {
	t.Parallel()

	content := EmailDraft("Acme Corp", "2024-01-15", "notes", "en")
	want := "Acme Corp – 2024-01-15 – Meeting Summary & Next Steps"
	if content.Subject != want {
		t.Errorf("subject = %q, want %q", content.Subject, want)
	}
	if !strings.Contains(content.Body, "<li>notes</li>") {
		t.Error("body should embed raw notes in a list item")
	}
}

func TestEmailDraft_HebrewIsRightToLeft(t *testing.T) {
	t.Parallel()

	content := EmailDraft("Acme Corp", "2024-01-15", "", "he")
	if !strings.HasPrefix(content.Body, `<div dir="rtl">`) {
		t.Error("hebrew body should be wrapped in an rtl div")
	}
	if !strings.Contains(content.Subject, "סיכום פגישה") {
		t.Errorf("hebrew subject expected, got %q", content.Subject)
	}
	if !strings.Contains(content.Body, "לא צוינו פרטים") {
		t.Error("hebrew body should use the hebrew placeholder for empty notes")
	}
}

func TestEmailDraft_EmptyCustomerName(t *testing.T) {
	t.Parallel()

	content := EmailDraft("", "2024-01-15", "", "en")
	if !strings.HasPrefix(content.Subject, "Customer – ") {
		t.Errorf("empty customer name should fall back to 'Customer', got %q", content.Subject)
	}
}

func TestExtractTextFromImage_Placeholder(t *testing.T) {
	t.Parallel()

	got := ExtractTextFromImage("data/assets/m1/scan.png")
	want := "[OCR text from data/assets/m1/scan.png would appear here]"
	if got != want {
		t.Errorf("ocr stub = %q, want %q", got, want)
	}
}
