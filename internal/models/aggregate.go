package models

// The budget's five derived fields are maintained with delta
// arithmetic: every income or expense mutation adds or subtracts only
// the changed amounts instead of re-summing all children. Each method
// takes the current budget snapshot by value and returns the next
// snapshot; callers persist the result exactly once per mutation.
//
// The methods are total: given well-formed snapshots they cannot fail.
// Callers are responsible for passing the actual old and new child
// states, in particular for updates.

// ApplyIncomeCreate adds a new income's contribution to the budget.
func (b Budget) ApplyIncomeCreate(income Income) Budget {
	b.TotalIncome = b.TotalIncome.Add(income.Amount)
	b.BalanceProjected = b.TotalIncome.Sub(b.TotalBudgetedExpenses)

	if income.Received {
		b.BalanceActual = b.BalanceActual.Add(income.Amount)
	}

	return b
}

// ApplyIncomeUpdate moves the budget from the old income state to the
// new one. When neither the amount nor the received flag changed, the
// budget is returned unchanged.
func (b Budget) ApplyIncomeUpdate(old, updated Income) Budget {
	if old.Amount.Equal(updated.Amount) && old.Received == updated.Received {
		return b
	}

	b.TotalIncome = b.TotalIncome.Sub(old.Amount).Add(updated.Amount)
	b.BalanceProjected = b.TotalIncome.Sub(b.TotalBudgetedExpenses)

	switch {
	case old.Received && !updated.Received:
		// No longer received, remove the old contribution
		b.BalanceActual = b.BalanceActual.Sub(old.Amount)
	case !old.Received && updated.Received:
		// Newly received
		b.BalanceActual = b.BalanceActual.Add(updated.Amount)
	case old.Received && updated.Received && !old.Amount.Equal(updated.Amount):
		// Still received, but the amount changed
		b.BalanceActual = b.BalanceActual.Sub(old.Amount).Add(updated.Amount)
	}

	return b
}

// ApplyIncomeDelete removes an income's contribution from the budget.
// It is the exact inverse of ApplyIncomeCreate.
func (b Budget) ApplyIncomeDelete(income Income) Budget {
	b.TotalIncome = b.TotalIncome.Sub(income.Amount)
	b.BalanceProjected = b.TotalIncome.Sub(b.TotalBudgetedExpenses)

	if income.Received {
		b.BalanceActual = b.BalanceActual.Sub(income.Amount)
	}

	return b
}

// ApplyExpenseCreate adds a new expense's contribution to the budget.
// The budgeted amount always counts, the actual amount only while the
// expense is paid or partially paid.
func (b Budget) ApplyExpenseCreate(expense Expense) Budget {
	b.TotalBudgetedExpenses = b.TotalBudgetedExpenses.Add(expense.BudgetedAmount)
	b.BalanceProjected = b.TotalIncome.Sub(b.TotalBudgetedExpenses)

	if expense.AffectsActuals() {
		b.TotalActualExpenses = b.TotalActualExpenses.Add(expense.ActualAmount)
		b.BalanceActual = b.BalanceActual.Sub(expense.ActualAmount)
	}

	return b
}

// ApplyExpenseUpdate moves the budget from the old expense state to the
// new one. The budgeted and actual sides are adjusted independently;
// both, either or neither may apply.
func (b Budget) ApplyExpenseUpdate(old, updated Expense) Budget {
	if !old.BudgetedAmount.Equal(updated.BudgetedAmount) {
		b.TotalBudgetedExpenses = b.TotalBudgetedExpenses.Sub(old.BudgetedAmount).Add(updated.BudgetedAmount)
		b.BalanceProjected = b.TotalIncome.Sub(b.TotalBudgetedExpenses)
	}

	if old.Status != updated.Status || !old.ActualAmount.Equal(updated.ActualAmount) {
		// Reverse the old contribution, then apply the new one
		if old.AffectsActuals() {
			b.TotalActualExpenses = b.TotalActualExpenses.Sub(old.ActualAmount)
			b.BalanceActual = b.BalanceActual.Add(old.ActualAmount)
		}

		if updated.AffectsActuals() {
			b.TotalActualExpenses = b.TotalActualExpenses.Add(updated.ActualAmount)
			b.BalanceActual = b.BalanceActual.Sub(updated.ActualAmount)
		}
	}

	return b
}

// ApplyExpenseDelete removes an expense's contribution from the budget.
// It is the exact inverse of ApplyExpenseCreate.
func (b Budget) ApplyExpenseDelete(expense Expense) Budget {
	b.TotalBudgetedExpenses = b.TotalBudgetedExpenses.Sub(expense.BudgetedAmount)
	b.BalanceProjected = b.TotalIncome.Sub(b.TotalBudgetedExpenses)

	if expense.AffectsActuals() {
		b.TotalActualExpenses = b.TotalActualExpenses.Sub(expense.ActualAmount)
		b.BalanceActual = b.BalanceActual.Add(expense.ActualAmount)
	}

	return b
}
