package tracker

// Expense is a single recorded expense.
//
// Expenses are immutable once created: there is no edit or delete operation,
// the expense log is strictly append-only.
type Expense struct {
	title    string
	category Category
	amount   Money
	at       Timestamp
}

// NewExpense creates an expense. The amount must be non-negative; that rule
// is enforced at the input boundary, not here.
func NewExpense(title string, category Category, amount Money, at Timestamp) Expense {
	return Expense{title: title, category: category, amount: amount, at: at}
}

func (e Expense) Title() string      { return e.title }
func (e Expense) Category() Category { return e.category }
func (e Expense) Amount() Money      { return e.amount }
func (e Expense) When() Timestamp    { return e.at }
