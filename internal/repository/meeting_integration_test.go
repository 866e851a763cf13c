//go:build integration

package repository

import (
	"testing"
	"time"

	"github.com/ZivNavon/customer-management-tool/internal/model"
	"github.com/ZivNavon/customer-management-tool/internal/testutil"
)

func mustDate(t testing.TB, value string) time.Time {
	t.Helper()
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("parse date %q failed: %v", value, err)
	}
	return date
}

func newMeetingTestEnv(t *testing.T) (*MeetingRepository, *model.Meeting) {
	t.Helper()
	db := testutil.OpenTestDB(t)

	customerRepo := NewCustomerRepository(db)
	customer := &model.Customer{Name: "Versioned Co"}
	if err := customerRepo.Create(customer); err != nil {
		t.Fatalf("create customer failed: %v", err)
	}

	meetingRepo := NewMeetingRepository(db)
	meeting := &model.Meeting{
		CustomerID:  customer.ID,
		MeetingDate: mustDate(t, "2024-01-15"),
		RawNotes:    "quarterly review",
	}
	if err := meetingRepo.Create(meeting); err != nil {
		t.Fatalf("create meeting failed: %v", err)
	}
	return meetingRepo, meeting
}

func TestIntegrationSummaryRepository_VersionsIncrement(t *testing.T) {
	db := testutil.OpenTestDB(t)
	customerRepo := NewCustomerRepository(db)
	meetingRepo := NewMeetingRepository(db)
	summaryRepo := NewSummaryRepository(db)

	customer := &model.Customer{Name: "Summary Co"}
	if err := customerRepo.Create(customer); err != nil {
		t.Fatalf("create customer failed: %v", err)
	}
	meeting := &model.Meeting{CustomerID: customer.ID, MeetingDate: mustDate(t, "2024-01-15")}
	if err := meetingRepo.Create(meeting); err != nil {
		t.Fatalf("create meeting failed: %v", err)
	}

	first := &model.MeetingSummary{MeetingID: meeting.ID, Language: "en", SummaryMD: "# v1", Model: "gpt-4"}
	if err := summaryRepo.CreateNextVersion(first); err != nil {
		t.Fatalf("first CreateNextVersion failed: %v", err)
	}
	second := &model.MeetingSummary{MeetingID: meeting.ID, Language: "en", SummaryMD: "# v2", Model: "gpt-4"}
	if err := summaryRepo.CreateNextVersion(second); err != nil {
		t.Fatalf("second CreateNextVersion failed: %v", err)
	}

	if first.Version != 1 || second.Version != 2 {
		t.Errorf("versions = %d, %d; want 1, 2", first.Version, second.Version)
	}

	// Both rows are independently retrievable.
	for _, id := range []string{first.ID, second.ID} {
		got, err := summaryRepo.GetByID(id)
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		if got == nil {
			t.Fatalf("summary %s not found", id)
		}
	}

	all, err := summaryRepo.ListByMeetingID(meeting.ID)
	if err != nil {
		t.Fatalf("ListByMeetingID failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("listed %d summaries, want 2", len(all))
	}
}

func TestIntegrationDraftRepository_VersionsPerMeeting(t *testing.T) {
	db := testutil.OpenTestDB(t)
	customerRepo := NewCustomerRepository(db)
	meetingRepo := NewMeetingRepository(db)
	draftRepo := NewDraftRepository(db)

	customer := &model.Customer{Name: "Draft Co"}
	if err := customerRepo.Create(customer); err != nil {
		t.Fatalf("create customer failed: %v", err)
	}

	// Versions are scoped per meeting, not global.
	meetingA := &model.Meeting{CustomerID: customer.ID, MeetingDate: mustDate(t, "2024-01-15")}
	meetingB := &model.Meeting{CustomerID: customer.ID, MeetingDate: mustDate(t, "2024-02-20")}
	for _, m := range []*model.Meeting{meetingA, meetingB} {
		if err := meetingRepo.Create(m); err != nil {
			t.Fatalf("create meeting failed: %v", err)
		}
	}

	draftA1 := &model.EmailDraft{MeetingID: meetingA.ID, Subject: "a1", BodyHTML: "<p>a</p>", Language: "en"}
	draftA1.SetRecipients(nil, nil)
	draftA2 := &model.EmailDraft{MeetingID: meetingA.ID, Subject: "a2", BodyHTML: "<p>a</p>", Language: "en"}
	draftA2.SetRecipients(nil, nil)
	draftB1 := &model.EmailDraft{MeetingID: meetingB.ID, Subject: "b1", BodyHTML: "<p>b</p>", Language: "en"}
	draftB1.SetRecipients(nil, nil)

	for _, d := range []*model.EmailDraft{draftA1, draftA2, draftB1} {
		if err := draftRepo.CreateNextVersion(d); err != nil {
			t.Fatalf("CreateNextVersion failed: %v", err)
		}
	}

	if draftA1.Version != 1 || draftA2.Version != 2 {
		t.Errorf("meeting A versions = %d, %d; want 1, 2", draftA1.Version, draftA2.Version)
	}
	if draftB1.Version != 1 {
		t.Errorf("meeting B first version = %d, want 1", draftB1.Version)
	}

	got, err := draftRepo.GetByID(draftA2.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got == nil || got.Subject != "a2" {
		t.Errorf("GetByID returned %+v, want subject a2", got)
	}

	drafts, err := draftRepo.ListByMeetingID(meetingA.ID)
	if err != nil {
		t.Fatalf("ListByMeetingID failed: %v", err)
	}
	if len(drafts) != 2 || drafts[0].Version != 1 || drafts[1].Version != 2 {
		t.Errorf("listed drafts out of order: %+v", drafts)
	}
}

func TestIntegrationAssetRepository_OCRText(t *testing.T) {
	db := testutil.OpenTestDB(t)
	customerRepo := NewCustomerRepository(db)
	meetingRepo := NewMeetingRepository(db)
	assetRepo := NewAssetRepository(db)

	customer := &model.Customer{Name: "Asset Co"}
	if err := customerRepo.Create(customer); err != nil {
		t.Fatalf("create customer failed: %v", err)
	}
	meeting := &model.Meeting{CustomerID: customer.ID, MeetingDate: mustDate(t, "2024-01-15")}
	if err := meetingRepo.Create(meeting); err != nil {
		t.Fatalf("create meeting failed: %v", err)
	}

	asset := &model.MeetingAsset{
		MeetingID: meeting.ID,
		Kind:      model.AssetKindImage,
		FileURL:   "data/assets/m/scan.png",
		FileName:  "scan.png",
	}
	if err := assetRepo.Create(asset); err != nil {
		t.Fatalf("create asset failed: %v", err)
	}

	if err := assetRepo.SetOCRText(asset.ID, "extracted text"); err != nil {
		t.Fatalf("SetOCRText failed: %v", err)
	}

	got, err := assetRepo.GetByID(asset.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got == nil || got.OCRText != "extracted text" {
		t.Errorf("GetByID returned %+v, want ocr text set", got)
	}

	assets, err := assetRepo.ListByMeetingID(meeting.ID)
	if err != nil {
		t.Fatalf("ListByMeetingID failed: %v", err)
	}
	if len(assets) != 1 {
		t.Errorf("listed %d assets, want 1", len(assets))
	}
}

func TestIntegrationMeetingRepository_ListOrdering(t *testing.T) {
	db := testutil.OpenTestDB(t)
	customerRepo := NewCustomerRepository(db)
	meetingRepo := NewMeetingRepository(db)

	customer := &model.Customer{Name: "Ordered Co"}
	if err := customerRepo.Create(customer); err != nil {
		t.Fatalf("create customer failed: %v", err)
	}

	for _, date := range []string{"2024-01-10", "2024-03-05", "2024-02-01"} {
		if err := meetingRepo.Create(&model.Meeting{CustomerID: customer.ID, MeetingDate: mustDate(t, date)}); err != nil {
			t.Fatalf("create meeting failed: %v", err)
		}
	}

	meetings, err := meetingRepo.ListByCustomerID(customer.ID)
	if err != nil {
		t.Fatalf("ListByCustomerID failed: %v", err)
	}
	if len(meetings) != 3 {
		t.Fatalf("listed %d meetings, want 3", len(meetings))
	}
	for i := 1; i < len(meetings); i++ {
		if meetings[i].MeetingDate.After(meetings[i-1].MeetingDate) {
			t.Errorf("meetings not in descending date order: %v before %v",
				meetings[i-1].MeetingDate, meetings[i].MeetingDate)
		}
	}
}

func TestIntegrationMeetingRepository_GetDetailNested(t *testing.T) {
	meetingRepo, meeting := newMeetingTestEnv(t)

	detail, err := meetingRepo.GetDetail(meeting.ID)
	if err != nil {
		t.Fatalf("GetDetail failed: %v", err)
	}
	if detail == nil {
		t.Fatal("meeting not found")
	}
	if len(detail.Assets) != 0 || len(detail.Summaries) != 0 || len(detail.Drafts) != 0 {
		t.Error("fresh meeting should have no artifacts")
	}
	if got := detail.Title(); got != "2024-01-15 – Meeting" {
		t.Errorf("Title() = %q", got)
	}
}
