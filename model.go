package bankdesk

import (
	"encoding/json"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Account floor used when the ledger is empty; the first allocated
// account number is 1001.
const accNoFloor = 1000

const (
	minNameLen      = 2
	minLockerKeyLen = 8
)

type Account struct {
	AccNo     int64           `json:"acc_no"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
}

type TxnType string

const (
	TxnDeposit  TxnType = "DEPOSIT"
	TxnWithdraw TxnType = "WITHDRAW"
	TxnOpen     TxnType = "OPEN"
)

func (t TxnType) Valid() bool {
	switch t {
	case TxnDeposit, TxnWithdraw, TxnOpen:
		return true
	}
	return false
}

// Transaction is an append-only ledger entry; rows are never updated
// except for acc_no, which follows the account through renumbering.
type Transaction struct {
	ID            int64           `json:"id"`
	AccNo         int64           `json:"acc_no"`
	Type          TxnType         `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	BeforeBalance decimal.Decimal `json:"before_balance"`
	AfterBalance  decimal.Decimal `json:"after_balance"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Locker holds the write-once access key issued per account.
type Locker struct {
	AccNo     int64     `json:"acc_no"`
	LockerKey string    `json:"locker_key"`
	CreatedAt time.Time `json:"created_at"`
}

type RequestType string

const (
	ReqCreateAccount RequestType = "CREATE_ACCOUNT"
	ReqCreateLocker  RequestType = "CREATE_LOCKER"
	ReqUpdateAccount RequestType = "UPDATE_ACCOUNT"
)

func (t RequestType) Valid() bool {
	switch t {
	case ReqCreateAccount, ReqCreateLocker, ReqUpdateAccount:
		return true
	}
	return false
}

type RequestStatus string

const (
	StatusPending  RequestStatus = "PENDING"
	StatusApproved RequestStatus = "APPROVED"
	StatusRejected RequestStatus = "REJECTED"
)

// Request is a staff-submitted change awaiting decision. AccNo is nil
// only for CREATE_ACCOUNT requests; approval fills it in with the
// allocated number.
type Request struct {
	ID        snowflake.ID    `json:"id"`
	AccNo     *int64          `json:"acc_no"`
	Type      RequestType     `json:"request_type"`
	Payload   json.RawMessage `json:"payload"`
	Status    RequestStatus   `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

// CreateAccountPayload is the typed payload of a CREATE_ACCOUNT request.
type CreateAccountPayload struct {
	Name           string          `json:"name"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
}

// UpdateAccountPayload is the typed payload of an UPDATE_ACCOUNT request.
type UpdateAccountPayload struct {
	NewAccNo int64  `json:"new_acc_no"`
	Name     string `json:"name"`
}
