package services

import "finance-assistant-api/models"

// AssembleRecords stamps every extracted item with the single date
// resolved for the message. Items are trusted as-is and their discovery
// order is preserved.
func AssembleRecords(items []ExpenseItem, date string) []models.ExpenseRecord {
	if len(items) == 0 {
		return nil
	}
	records := make([]models.ExpenseRecord, 0, len(items))
	for _, item := range items {
		records = append(records, models.ExpenseRecord{
			Date:        date,
			Description: item.Description,
			Amount:      item.Amount,
			Category:    item.Category,
		})
	}
	return records
}
