// Package ai renders meeting summaries and email drafts from fixed templates.
// Output is fully deterministic: no model call is made, and the OCR hook is a
// placeholder.
package ai

import (
	"fmt"
	"strings"
)

const LanguageHebrew = "he"

// EmailContent is a rendered draft: subject plus an HTML body fragment.
type EmailContent struct {
	Subject string
	Body    string
}

// MeetingSummaryMarkdown renders the fixed-shape markdown summary. Raw notes
// are substituted verbatim under Key Decisions; an unsupported language code
// falls back to English formatting.
func MeetingSummaryMarkdown(title, rawNotes, language string) string {
	if language == LanguageHebrew {
		notes := rawNotes
		if notes == "" {
			notes = "אין הערות זמינות"
		}
		return strings.TrimSpace(fmt.Sprintf(`
# סיכום פגישה - %s

## סדר יום
- דיון בנושאים עיקריים
- החלטות שהתקבלו

## החלטות מרכזיות
%s

## פעולות נדרשות
- [ ] מעקב אחר החלטות
- [ ] תיאום פגישה הבאה

## צעדים הבאים
- המשך תיאום
- דיווח לצוות

## השפעה על ARR
לא צוין
`, title, notes))
	}

	notes := rawNotes
	if notes == "" {
		notes = "No notes available"
	}
	return strings.TrimSpace(fmt.Sprintf(`
# Meeting Summary - %s

## Agenda
- Discussion of key topics
- Decisions made

## Key Decisions
%s

## Action Items
- [ ] Follow up on decisions
- [ ] Schedule next meeting

## Next Steps
- Continue coordination
- Report to team

## ARR Impact
Not specified
`, title, notes))
}

// EmailDraft renders the follow-up email for a meeting. meetingDate is the
// ISO date (YYYY-MM-DD). Hebrew output is wrapped right-to-left; any other
// language code renders the English templates.
func EmailDraft(customerName, meetingDate, rawNotes, language string) EmailContent {
	if customerName == "" {
		customerName = "Customer"
	}

	if language == LanguageHebrew {
		notes := rawNotes
		if notes == "" {
			notes = "לא צוינו פרטים"
		}
		return EmailContent{
			Subject: fmt.Sprintf("%s – %s – סיכום פגישה וצעדים הבאים", customerName, meetingDate),
			Body: strings.TrimSpace(fmt.Sprintf(`
<div dir="rtl">
<p>שלום,</p>

<p>אני שולח/ת סיכום הפגישה שלנו מהיום (%s) עם %s.</p>

<h3>נושאים עיקריים שנדונו:</h3>
<ul>
<li>%s</li>
</ul>

<h3>פעולות נדרשות:</h3>
<ul>
<li>מעקב אחר החלטות שהתקבלו</li>
<li>תיאום הפגישה הבאה</li>
</ul>

<p>אשמח לשמוע הערות או שאלות.</p>

<p>תודה,<br>
[השם שלך]</p>
</div>
`, meetingDate, customerName, notes)),
		}
	}

	notes := rawNotes
	if notes == "" {
		notes = "No details provided"
	}
	return EmailContent{
		Subject: fmt.Sprintf("%s – %s – Meeting Summary & Next Steps", customerName, meetingDate),
		Body: strings.TrimSpace(fmt.Sprintf(`
<p>Hello,</p>

<p>I'm sending a summary of our meeting today (%s) with %s.</p>

<h3>Key Topics Discussed:</h3>
<ul>
<li>%s</li>
</ul>

<h3>Action Items:</h3>
<ul>
<li>Follow up on decisions made</li>
<li>Schedule next meeting</li>
</ul>

<p>Please let me know if you have any questions or feedback.</p>

<p>Best regards,<br>
[Your Name]</p>
`, meetingDate, customerName, notes)),
	}
}

// ExtractTextFromImage is the OCR stub: it performs no image processing and
// returns a placeholder naming the input path.
func ExtractTextFromImage(imagePath string) string {
	return fmt.Sprintf("[OCR text from %s would appear here]", imagePath)
}
