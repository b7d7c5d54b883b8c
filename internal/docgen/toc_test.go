package docgen

import (
	"testing"

	"github.com/mishpatech/lawdocs-backend/internal/domain"
)

func TestEstimateBodyPages(t *testing.T) {
	t.Parallel()

	t.Run("minimal claim", func(t *testing.T) {
		t.Parallel()
		if got := estimateBodyPages(Input{}); got != 3 {
			t.Fatalf("got=%d want=3", got)
		}
	})

	t.Run("rows and form pages add up", func(t *testing.T) {
		t.Parallel()
		in := Input{
			Form: domain.FormData{
				Children:   make([]domain.Child, 8),
				Apartments: make([]domain.PropertyItem, 10),
				Debts:      make([]domain.DebtItem, 20),
				Alimony:    &domain.AlimonyClaim{Expenses: make([]domain.ExpenseRow, 24)},
			},
			Form4Pages: make([][]byte, 4),
		}
		// 3 base + 8/4 + 10/10 + 20/10 + 24/12 + 4 form pages.
		if got := estimateBodyPages(in); got != 14 {
			t.Fatalf("got=%d want=14", got)
		}
	})
}
