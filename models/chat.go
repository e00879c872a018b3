package models

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Message     string   `json:"message" binding:"required"`
	MaxTokens   *int     `json:"max_tokens"`
	Temperature *float64 `json:"temperature"`
}

// ChatResponse is returned by POST /chat. ExcelData carries the
// base64-encoded workbook when the message contained expenses.
type ChatResponse struct {
	Response    string `json:"response"`
	Status      string `json:"status"`
	HasExpenses bool   `json:"has_expenses"`
	ExcelData   string `json:"excel_data,omitempty"`
}

// DailyTipRequest is the body of POST /daily-tip.
type DailyTipRequest struct {
	Category         string `json:"category"`
	NotificationType string `json:"notification_type"`
	ExcelData        string `json:"excel_data"`
}

// DownloadRequest carries a previously generated workbook back to the
// server for download.
type DownloadRequest struct {
	ExcelData string `json:"excel_data"`
}

// GenerateExcelRequest is the body of POST /generate-excel.
type GenerateExcelRequest struct {
	Message string `json:"message"`
}
