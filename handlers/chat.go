package handlers

import (
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"finance-assistant-api/models"
	"finance-assistant-api/services"
)

// ChatHandler serves the conversational endpoint.
type ChatHandler struct {
	AI *services.GeminiService
}

// Words that mark a message as spending-related; only then does
// extraction run.
var expenseKeywords = []string{"spent", "bought", "paid", "cost", "amount", "expense", "money", "rupees", "₹", "$"}

const defaultMaxTokens = 1000

// Chat forwards the message to the model and, when it talks about
// spending, attaches a base64-encoded expense workbook plus a summary
// appended to the reply text.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.AI.Configured() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gemini API key not configured"})
		return
	}

	maxTokens := defaultMaxTokens
	if req.MaxTokens != nil {
		maxTokens = *req.MaxTokens
	}
	temperature := 0.7
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	aiResponse, err := h.AI.GenerateContent(c.Request.Context(), req.Message, maxTokens, &temperature)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Error generating response: %v", err)})
		return
	}

	hasExpenses := containsExpenseKeyword(req.Message)

	excelData := ""
	if hasExpenses {
		records := services.ExtractExpenses(req.Message, aiResponse, time.Now())
		if len(records) > 0 {
			workbook, err := services.BuildWorkbook(records)
			if err != nil {
				log.Printf("[Chat] workbook build failed: %v", err)
			} else if len(workbook) > 0 {
				excelData = base64.StdEncoding.EncodeToString(workbook)
				aiResponse += expenseSummary(records)
			}
		}
	}

	c.JSON(http.StatusOK, models.ChatResponse{
		Response:    aiResponse,
		Status:      "success",
		HasExpenses: hasExpenses && excelData != "",
		ExcelData:   excelData,
	})
}

func containsExpenseKeyword(message string) bool {
	message = strings.ToLower(message)
	for _, keyword := range expenseKeywords {
		if strings.Contains(message, keyword) {
			return true
		}
	}
	return false
}

func expenseSummary(records []models.ExpenseRecord) string {
	var b strings.Builder
	b.WriteString("\n\n📊 **Expense Summary:**\n")
	fmt.Fprintf(&b, "• Total Amount: ₹%.2f\n", services.SumAmounts(records))
	fmt.Fprintf(&b, "• Number of Items: %d\n", len(records))
	b.WriteString("• Expenses extracted and Excel file generated!\n")
	b.WriteString("Click the download button below to get your expense report.")
	return b.String()
}
