//go:build integration

package repository

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ZivNavon/customer-management-tool/internal/model"
	"github.com/ZivNavon/customer-management-tool/internal/testutil"
)

func TestIntegrationCustomerRepository_RoundTrip(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewCustomerRepository(db)

	arr, _ := decimal.NewFromString("125000.50")
	customer := &model.Customer{
		Name:   "Acme Corp",
		ARRUSD: arr,
		Notes:  "strategic account",
	}
	if err := repo.Create(customer); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if customer.ID == "" {
		t.Fatal("Create should assign an id")
	}

	got, err := repo.GetByID(customer.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got == nil {
		t.Fatal("customer not found after create")
	}
	if got.Name != "Acme Corp" {
		t.Errorf("Name = %q", got.Name)
	}
	if !got.ARRUSD.Equal(arr) {
		t.Errorf("ARRUSD = %s, want %s", got.ARRUSD, arr)
	}
	if got.Notes != "strategic account" {
		t.Errorf("Notes = %q", got.Notes)
	}
}

func TestIntegrationCustomerRepository_GetByID_Missing(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewCustomerRepository(db)

	got, err := repo.GetByID("00000000-0000-0000-0000-000000000000")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got != nil {
		t.Error("missing customer should return nil, nil")
	}
}

func TestIntegrationCustomerRepository_SearchCaseInsensitive(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewCustomerRepository(db)

	for _, name := range []string{"Globex Industries", "Initech", "GLOBAL Shipping"} {
		if err := repo.Create(&model.Customer{Name: name}); err != nil {
			t.Fatalf("Create %q failed: %v", name, err)
		}
	}

	matches, err := repo.List("glob", 50, 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("search 'glob' matched %d customers, want 2", len(matches))
	}
	for _, c := range matches {
		if c.Name == "Initech" {
			t.Error("Initech should not match search 'glob'")
		}
	}
}

func TestIntegrationCustomerRepository_ListPagination(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewCustomerRepository(db)

	for i := 0; i < 5; i++ {
		if err := repo.Create(&model.Customer{Name: "Paging Co"}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	page, err := repo.List("paging", 2, 2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(page) != 2 {
		t.Errorf("limit=2 offset=2 returned %d rows", len(page))
	}
}

func TestIntegrationCustomerRepository_CascadeDelete(t *testing.T) {
	db := testutil.OpenTestDB(t)
	customerRepo := NewCustomerRepository(db)
	contactRepo := NewContactRepository(db)
	meetingRepo := NewMeetingRepository(db)
	assetRepo := NewAssetRepository(db)
	summaryRepo := NewSummaryRepository(db)
	draftRepo := NewDraftRepository(db)

	customer := &model.Customer{Name: "Doomed Inc"}
	if err := customerRepo.Create(customer); err != nil {
		t.Fatalf("create customer failed: %v", err)
	}

	email := "cfo@doomed.example"
	if err := contactRepo.Create(&model.Contact{CustomerID: customer.ID, Name: "CFO", Email: &email}); err != nil {
		t.Fatalf("create contact failed: %v", err)
	}

	meeting := &model.Meeting{CustomerID: customer.ID, MeetingDate: mustDate(t, "2024-01-15")}
	if err := meetingRepo.Create(meeting); err != nil {
		t.Fatalf("create meeting failed: %v", err)
	}

	if err := assetRepo.Create(&model.MeetingAsset{
		MeetingID: meeting.ID,
		Kind:      model.AssetKindFile,
		FileURL:   "data/assets/x/a.pdf",
		FileName:  "a.pdf",
	}); err != nil {
		t.Fatalf("create asset failed: %v", err)
	}

	summary := &model.MeetingSummary{MeetingID: meeting.ID, Language: "en", SummaryMD: "# s", Model: "gpt-4"}
	if err := summaryRepo.CreateNextVersion(summary); err != nil {
		t.Fatalf("create summary failed: %v", err)
	}

	draft := &model.EmailDraft{MeetingID: meeting.ID, Subject: "s", BodyHTML: "<p>b</p>", Language: "en"}
	draft.SetRecipients([]string{email}, nil)
	if err := draftRepo.CreateNextVersion(draft); err != nil {
		t.Fatalf("create draft failed: %v", err)
	}

	if err := customerRepo.Delete(customer.ID); err != nil {
		t.Fatalf("delete customer failed: %v", err)
	}

	var contacts, meetings, assets, summaries, drafts int64
	db.Model(&model.Contact{}).Where("customer_id = ?", customer.ID).Count(&contacts)
	db.Model(&model.Meeting{}).Where("customer_id = ?", customer.ID).Count(&meetings)
	db.Model(&model.MeetingAsset{}).Where("meeting_id = ?", meeting.ID).Count(&assets)
	db.Model(&model.MeetingSummary{}).Where("meeting_id = ?", meeting.ID).Count(&summaries)
	db.Model(&model.EmailDraft{}).Where("meeting_id = ?", meeting.ID).Count(&drafts)

	if contacts+meetings+assets+summaries+drafts != 0 {
		t.Errorf("cascade left rows behind: contacts=%d meetings=%d assets=%d summaries=%d drafts=%d",
			contacts, meetings, assets, summaries, drafts)
	}
}
