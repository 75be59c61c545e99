package postgres

import (
	clientdomain "github.com/cobramax/backend/internal/domain/client"
	closingdomain "github.com/cobramax/backend/internal/domain/closing"
	expensedomain "github.com/cobramax/backend/internal/domain/expense"
	loandomain "github.com/cobramax/backend/internal/domain/loan"
)

var (
	_ clientdomain.Repository      = (*ClientRepository)(nil)
	_ loandomain.Repository        = (*LoanRepository)(nil)
	_ loandomain.ClientRepository  = (*ClientRepository)(nil)
	_ loandomain.PaymentRepository = (*PaymentRepository)(nil)
	_ expensedomain.Repository     = (*ExpenseRepository)(nil)
	_ closingdomain.Repository     = (*ClosingRepository)(nil)
)
