// Package expense tracks spending against a trip: backend-persisted expense
// records plus the budget arithmetic the planning screen shows.
package expense

// Category buckets an expense for reporting.
type Category string

const (
	CategoryAccommodation Category = "ACCOMMODATION"
	CategoryFood          Category = "FOOD"
	CategoryTransport     Category = "TRANSPORT"
	CategoryActivities    Category = "ACTIVITIES"
	CategoryShopping      Category = "SHOPPING"
	CategoryEntertainment Category = "ENTERTAINMENT"
	CategoryHealth        Category = "HEALTH"
	CategoryInsurance     Category = "INSURANCE"
	CategoryVisas         Category = "VISAS"
	CategoryFees          Category = "FEES"
	CategoryTips          Category = "TIPS"
	CategoryOther         Category = "OTHER"
)

// Status tracks an expense through payment.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusPaid      Status = "PAID"
	StatusCancelled Status = "CANCELLED"
	StatusRefunded  Status = "REFUNDED"
)

// Expense is one recorded cost on a trip day.
type Expense struct {
	ID            int64    `json:"id,omitempty"`
	TripID        int64    `json:"tripId,omitempty"`
	DayNumber     int      `json:"dayNumber"`
	ExpenseDate   string   `json:"expenseDate"`
	Category      Category `json:"category"`
	Description   string   `json:"description"`
	Amount        float64  `json:"amount"`
	Currency      string   `json:"currency,omitempty"`
	ReceiptURL    string   `json:"receiptUrl,omitempty"`
	PaymentMethod string   `json:"paymentMethod,omitempty"`
	Vendor        string   `json:"vendor,omitempty"`
	Location      string   `json:"location,omitempty"`
	Notes         string   `json:"notes,omitempty"`
	Reimbursable  bool     `json:"reimbursable,omitempty"`
	Reimbursed    bool     `json:"reimbursed,omitempty"`
	Status        Status   `json:"status,omitempty"`
	ActivityID    int64    `json:"activityId,omitempty"`
	PlaceID       int64    `json:"placeId,omitempty"`
}

// Summary is the budget view of a trip: the manual budget plus planned
// activity costs form the total budget; recorded expenses plus activity
// costs form the spend.
type Summary struct {
	ManualBudget  float64
	ActivityCosts float64
	ExpenseTotal  float64
}

func (s Summary) TotalBudget() float64 {
	return s.ManualBudget + s.ActivityCosts
}

func (s Summary) TotalSpent() float64 {
	return s.ExpenseTotal + s.ActivityCosts
}

func (s Summary) Remaining() float64 {
	return s.TotalBudget() - s.TotalSpent()
}

// Summarize folds activity costs and expense amounts into a budget summary.
func Summarize(manualBudget float64, activityCosts []float64, expenses []Expense) Summary {
	s := Summary{ManualBudget: manualBudget}
	for _, cost := range activityCosts {
		s.ActivityCosts += cost
	}
	for _, e := range expenses {
		s.ExpenseTotal += e.Amount
	}
	return s
}
