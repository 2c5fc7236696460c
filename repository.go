package bankdesk

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Repository is the storage contract. Every mutating method runs as a
// single storage transaction; implementations must leave state
// untouched when they return an error.
type Repository interface {
	CreateAccount(ctx context.Context, acct Account) error
	GetAccount(ctx context.Context, accNo int64) (*Account, error)
	ListAccounts(ctx context.Context) ([]Account, error)
	DeleteAccount(ctx context.Context, accNo int64) error
	NextAccountNumber(ctx context.Context) (int64, error)

	// Deposit and Withdraw lock the account row, move the balance, and
	// append exactly one transaction record.
	Deposit(ctx context.Context, accNo int64, amount decimal.Decimal) (*BalanceChange, error)
	Withdraw(ctx context.Context, accNo int64, amount decimal.Decimal) (*BalanceChange, error)
	ListTransactions(ctx context.Context, accNo int64) ([]Transaction, error)

	// RenumberAccount rewrites the account's primary identity and
	// cascades it to transactions, lockers, and requests in one
	// transaction.
	RenumberAccount(ctx context.Context, oldAccNo, newAccNo int64, name string) error

	CreateLocker(ctx context.Context, lkr Locker) error
	GetLocker(ctx context.Context, accNo int64) (*Locker, error)

	InsertRequest(ctx context.Context, req Request) error
	GetRequest(ctx context.Context, id snowflake.ID) (*Request, error)
	ListRequests(ctx context.Context) ([]Request, error)
	RejectRequest(ctx context.Context, id snowflake.ID) error

	// Approve* perform the requested effect and flip the request to
	// APPROVED atomically; a PENDING guard on the status update turns
	// concurrent double-decisions into ErrInvalidState.
	ApproveCreateAccount(ctx context.Context, id snowflake.ID, acct Account) error
	ApproveCreateLocker(ctx context.Context, id snowflake.ID, lkr Locker) error
	ApproveUpdateAccount(ctx context.Context, id snowflake.ID, oldAccNo, newAccNo int64, name string) error

	WipeAll(ctx context.Context) error
}

// BalanceChange reports the balances observed inside the locked
// section of a deposit or withdrawal.
type BalanceChange struct {
	Before decimal.Decimal `json:"before"`
	After  decimal.Decimal `json:"after"`
}
