package services

import (
	"testing"
	"time"

	"finance-assistant-api/models"
)

var extractNow = time.Date(2025, 8, 21, 12, 0, 0, 0, time.UTC)

func TestExtractExpensesDynamicItem(t *testing.T) {
	records := ExtractExpenses("i bought headsets of 2000rs", "", extractNow)

	if len(records) != 1 {
		t.Fatalf("expected exactly 1 record, got %d: %+v", len(records), records)
	}
	rec := records[0]
	if rec.Description != "Headsets" {
		t.Errorf("description = %q, want Headsets", rec.Description)
	}
	if rec.Amount != 2000 {
		t.Errorf("amount = %v, want 2000", rec.Amount)
	}
	if rec.Category != models.CategoryPersonal {
		t.Errorf("category = %q, want %q", rec.Category, models.CategoryPersonal)
	}
	if rec.Date != "2025-08-21" {
		t.Errorf("date = %q, want 2025-08-21", rec.Date)
	}
}

func TestExtractExpensesFlightAndAirportFood(t *testing.T) {
	records := ExtractExpenses("i took a flight which cost me 4000 rs also ate at airport for 1200 rs", "", extractNow)

	if len(records) != 2 {
		t.Fatalf("expected exactly 2 records, got %d: %+v", len(records), records)
	}
	if records[0].Description != "Flight Ticket" || records[0].Amount != 4000 || records[0].Category != models.CategoryTransport {
		t.Errorf("first record = %+v, want Flight Ticket / 4000 / Transportation", records[0])
	}
	if records[1].Description != "Airport Food" || records[1].Amount != 1200 || records[1].Category != models.CategoryFood {
		t.Errorf("second record = %+v, want Airport Food / 1200 / Food & Dining", records[1])
	}
}

func TestExtractExpensesSpentKeywordDispatch(t *testing.T) {
	// "spent X on Y" binds the amount from group 1 and the item from
	// group 2, the reverse of the other dynamic rules.
	records := ExtractExpenses("i spent 150 on books", "", extractNow)

	if len(records) != 1 {
		t.Fatalf("expected exactly 1 record, got %d: %+v", len(records), records)
	}
	if records[0].Amount != 150 {
		t.Errorf("amount = %v, want 150", records[0].Amount)
	}
	if records[0].Description != "Books" {
		t.Errorf("description = %q, want Books", records[0].Description)
	}
}

func TestExtractExpensesFallbackAmountOnly(t *testing.T) {
	records := ExtractExpenses("the ticket was 100 rs", "", extractNow)

	if len(records) == 0 {
		t.Fatal("expected at least one record for a message with an explicit amount token")
	}
	if records[0].Amount != 100 {
		t.Errorf("amount = %v, want 100", records[0].Amount)
	}
	if records[0].Description != "Expense 1" {
		t.Errorf("description = %q, want synthesized Expense 1", records[0].Description)
	}
}

func TestExtractExpensesFallbackPairing(t *testing.T) {
	records := ExtractExpenses("we went to goa and paid 500 rupees entry", "", extractNow)

	if len(records) == 0 {
		t.Fatal("expected records from the fallback scan")
	}
	// Positional pairing: the first amount goes with the first
	// verb-anchored description.
	if records[0].Amount != 500 {
		t.Errorf("amount = %v, want 500", records[0].Amount)
	}
}

func TestExtractExpensesNoAmount(t *testing.T) {
	records := ExtractExpenses("hello, how do i plan a budget?", "", extractNow)
	if len(records) != 0 {
		t.Errorf("expected no records, got %+v", records)
	}
}

func TestExtractExpensesAssistantTextIgnored(t *testing.T) {
	records := ExtractExpenses("just saying hi", "you spent 9999 rs on gadgets", extractNow)
	if len(records) != 0 {
		t.Errorf("assistant text must not drive extraction, got %+v", records)
	}
}

func TestExtractItemsGuardDeduplication(t *testing.T) {
	// Both the specific flight rule and the flight guard match this
	// phrasing; the guard must not add a second Flight Ticket.
	items := ExtractItems("took a flight for 3000 rs")

	flights := 0
	for _, item := range items {
		if item.Description == "Flight Ticket" {
			flights++
		}
	}
	if flights != 1 {
		t.Errorf("expected exactly 1 Flight Ticket item, got %d: %+v", flights, items)
	}
}

func TestExtractExpensesDateFromMessage(t *testing.T) {
	records := ExtractExpenses("i bought headsets of 2000rs yesterday", "", extractNow)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Date != "2025-08-20" {
		t.Errorf("date = %q, want 2025-08-20", records[0].Date)
	}
}

func TestAssembleRecordsPreservesOrder(t *testing.T) {
	items := []ExpenseItem{
		{Description: "First", Amount: 1, Category: models.CategoryOther},
		{Description: "Second", Amount: 2, Category: models.CategoryOther},
	}
	records := AssembleRecords(items, "2025-08-21")

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Description != "First" || records[1].Description != "Second" {
		t.Errorf("order not preserved: %+v", records)
	}
	for _, rec := range records {
		if rec.Date != "2025-08-21" {
			t.Errorf("record %q date = %q, want shared 2025-08-21", rec.Description, rec.Date)
		}
	}
}

func TestAssembleRecordsEmpty(t *testing.T) {
	if records := AssembleRecords(nil, "2025-08-21"); records != nil {
		t.Errorf("expected nil for no items, got %+v", records)
	}
}
