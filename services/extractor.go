package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"finance-assistant-api/models"
	"finance-assistant-api/utils"
)

// ExpenseItem is an extracted (description, amount, category) tuple
// before it is stamped with a date.
type ExpenseItem struct {
	Description string
	Amount      float64
	Category    string
}

// itemRule is one entry of the pattern library. Rules with a fixed
// Description/Category bind those literals regardless of the captured
// text; dynamic rules capture the item name and route it through the
// classifier. AmountFirst marks the "spent X on Y" shape where the
// amount group precedes the item group.
type itemRule struct {
	re          *regexp.Regexp
	description string
	category    string
	amountFirst bool
}

// Specific rules, evaluated in priority order against the lowercased
// message.
var itemRules = []itemRule{
	{re: regexp.MustCompile(`(?:took\s+)?flight(?:\s+(?:which|for))?.*?(\d+)(?:\s*rs)?`), description: "Flight Ticket", category: models.CategoryTransport},
	{re: regexp.MustCompile(`ate\s+at\s+(?:airport|restaurant|hotel).*?(?:for|cost).*?(\d+)(?:\s*rs)?`), description: "Airport Food", category: models.CategoryFood},
	{re: regexp.MustCompile(`flight.*?(?:for|cost).*?(\d+)(?:\s*rs)?`), description: "Flight Ticket", category: models.CategoryTransport},
	{re: regexp.MustCompile(`airport.*?food.*?(\d+)(?:\s*rs)?`), description: "Airport Food", category: models.CategoryFood},
	{re: regexp.MustCompile(`bought\s+([^0-9]+?)\s+(?:of|for|cost)\s+(\d+)(?:\s*rs)?`)},
	{re: regexp.MustCompile(`(\w+(?:\s+\w+)?)\s+(?:of|for|cost|price)\s+(\d+)(?:\s*rs)?`)},
	{re: regexp.MustCompile(`spent.*?₹?(\d+).*?on\s+([^.\n]+)`), amountFirst: true},
}

// Guard rules catch phrasings the main rules miss. Each is gated on a
// substring check against already-collected descriptions so the same
// real-world expense is never counted twice.
var guardRules = []struct {
	re          *regexp.Regexp
	gate        string
	description string
	category    string
}{
	{regexp.MustCompile(`flight.*?for.*?(\d+).*?rs`), "Flight", "Flight Ticket", models.CategoryTransport},
	{regexp.MustCompile(`ate.*?airport.*?for.*?(\d+).*?rs`), "Airport", "Airport Food", models.CategoryFood},
}

// Generic fallback scan, used only when no specific rule fired.
var fallbackAmountRules = []*regexp.Regexp{
	regexp.MustCompile(`(?:cost\s+me|amount\s+was|for|paid|spent)\s*(?:rs\.?|₹|dollars?|\$)?\s*(\d+(?:\.\d{2})?)`),
	regexp.MustCompile(`(\d+(?:\.\d{2})?)\s*(?:rs\.?|rupees?|dollars?|₹|\$)`),
	regexp.MustCompile(`(?:₹|\$)\s*(\d+(?:\.\d{2})?)`),
	regexp.MustCompile(`of\s+(\d+(?:\.\d{2})?)\s*(?:rs\.?|rupees?)`),
}

var fallbackDescriptionRules = []*regexp.Regexp{
	regexp.MustCompile(`(?:bought|purchased|got|ate\s+at|went\s+to|paid\s+for|took)\s+([^0-9₹$]+?)\s+(?:for|amount\s+was|cost|paid|spent|of)`),
	regexp.MustCompile(`(?:i|we)\s+(?:bought|purchased|got|ate\s+at|went\s+to|paid\s+for|took)\s+([^0-9₹$]+)`),
}

// ExtractExpenses turns a chat message into finalized expense records.
// assistantText is accepted for signature parity with the chat flow but
// only the user's message drives extraction. A message with no
// expense-like phrasing yields nil, never an error.
func ExtractExpenses(userText, assistantText string, now time.Time) []models.ExpenseRecord {
	items := ExtractItems(userText)
	if len(items) == 0 {
		return nil
	}
	return AssembleRecords(items, ResolveDate(userText, now))
}

// ExtractItems runs the pattern library over the message: specific
// rules first, then guard rules, then the generic fallback scan if
// nothing specific fired.
func ExtractItems(userText string) []ExpenseItem {
	text := strings.ToLower(userText)

	var items []ExpenseItem
	// Offsets of amount tokens already bound to an item. Two rules
	// that capture the same numeric literal describe the same expense,
	// so the token is counted once.
	claimed := make(map[int]bool)

	for _, rule := range itemRules {
		for _, m := range rule.re.FindAllStringSubmatchIndex(text, -1) {
			// Group order is dispatched on the rule shape, not
			// assumed: fixed and "spent"-style rules capture the
			// amount first, the other dynamic rules capture the
			// item name first.
			amountGroup, nameGroup := 1, 2
			if rule.description == "" && !rule.amountFirst {
				amountGroup, nameGroup = 2, 1
			}
			if claimed[m[2*amountGroup]] {
				continue
			}
			amount, err := parseAmount(text[m[2*amountGroup]:m[2*amountGroup+1]])
			if err != nil {
				continue
			}
			claimed[m[2*amountGroup]] = true

			if rule.description != "" {
				items = append(items, ExpenseItem{rule.description, amount, rule.category})
				continue
			}
			name := strings.TrimSpace(text[m[2*nameGroup]:m[2*nameGroup+1]])
			items = append(items, ExpenseItem{utils.TitleCase(name), amount, ClassifyExpense(name)})
		}
	}

	for _, guard := range guardRules {
		if hasDescription(items, guard.gate) {
			continue
		}
		m := guard.re.FindStringSubmatchIndex(text)
		if m == nil {
			continue
		}
		amount, err := parseAmount(text[m[2]:m[3]])
		if err != nil {
			continue
		}
		claimed[m[2]] = true
		items = append(items, ExpenseItem{guard.description, amount, guard.category})
	}

	if len(items) == 0 {
		items = fallbackScan(text, claimed)
	}
	return items
}

// fallbackScan collects all amount tokens and all verb-anchored
// descriptive phrases independently, then pairs them positionally: the
// i-th amount goes with the i-th description. The pairing is a
// heuristic, not a semantic link between the two scans; amounts beyond
// the last description get a synthesized label.
func fallbackScan(text string, claimed map[int]bool) []ExpenseItem {
	var amounts []float64
	for _, re := range fallbackAmountRules {
		for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
			if claimed[m[2]] {
				continue
			}
			amount, err := parseAmount(text[m[2]:m[3]])
			if err != nil {
				continue
			}
			claimed[m[2]] = true
			amounts = append(amounts, amount)
		}
	}

	var descriptions []string
	for _, re := range fallbackDescriptionRules {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			desc := strings.TrimSpace(m[1])
			if len(desc) > 2 {
				descriptions = append(descriptions, desc)
			}
		}
	}

	var items []ExpenseItem
	for i, amount := range amounts {
		desc := fmt.Sprintf("Expense %d", i+1)
		if i < len(descriptions) {
			desc = descriptions[i]
		}
		items = append(items, ExpenseItem{utils.TitleCase(desc), amount, ClassifyExpense(desc)})
	}
	return items
}

func hasDescription(items []ExpenseItem, substr string) bool {
	for _, item := range items {
		if strings.Contains(item.Description, substr) {
			return true
		}
	}
	return false
}

// parseAmount is structurally infallible for rule captures: the
// pattern alphabet restricts them to digits with an optional 2-decimal
// fraction.
func parseAmount(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
