package entity

import "time"

// ExpenseCategory é uma categoria de despesa do livro-caixa.
type ExpenseCategory struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
