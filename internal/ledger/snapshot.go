package ledger

import "time"

// Snapshot is the complete serializable state of all nine ledger collections at
// one instant. It is the interchange format for persistence, export, and import;
// the key names are part of that format.
type Snapshot struct {
	Timestamp        time.Time        `json:"timestamp"`
	Persons          []Person         `json:"persons"`
	Accounts         []Account        `json:"accounts"`
	Categories       []Category       `json:"categories"`
	Transactions     []Transaction    `json:"transactions"`
	RecurringEntries []RecurringEntry `json:"recurringEntries"`
	AmountSchedules  []AmountSchedule `json:"amountSchedules"`
	Subscriptions    []Subscription   `json:"subscriptions"`
	Debts            []Debt           `json:"debts"`
	Investments      []Investment     `json:"investments"`
}
