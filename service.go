package bankdesk

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type CreateAccountReq struct {
	AccNo   int64           `json:"acc_no" validate:"gt=0"`
	Name    string          `json:"name" validate:"min=2"`
	Balance decimal.Decimal `json:"balance" validate:"gte=0"`
}

type ChargeReq struct {
	AccNo  int64           `json:"acc_no" validate:"gt=0"`
	Amount decimal.Decimal `json:"amount" validate:"gt=0"`
}

type RenumberReq struct {
	OldAccNo int64  `json:"old_acc_no" validate:"gt=0"`
	NewAccNo int64  `json:"new_acc_no" validate:"gt=0"`
	Name     string `json:"name" validate:"min=2"`
}

type SubmitRequestReq struct {
	Type    RequestType     `json:"request_type" validate:"required"`
	AccNo   *int64          `json:"acc_no" validate:"omitempty,gt=0"`
	Payload json.RawMessage `json:"payload"`
}

type DecisionAction string

const (
	ActionApprove DecisionAction = "APPROVE"
	ActionReject  DecisionAction = "REJECT"
)

// Decision is the outcome of deciding a request. AutoRejected marks
// approvals that were turned into rejections by re-validation, so
// callers can tell them apart from a clean approve or staff reject.
type Decision struct {
	ID           snowflake.ID  `json:"id"`
	Status       RequestStatus `json:"status"`
	AccNo        *int64        `json:"acc_no,omitempty"`
	AutoRejected bool          `json:"auto_rejected,omitempty"`
	Reason       string        `json:"reason,omitempty"`
}

type Service interface {
	CreateAccount(ctx context.Context, req CreateAccountReq) (*Account, error)
	GetAccount(ctx context.Context, accNo int64) (*Account, error)
	ListAccounts(ctx context.Context) ([]Account, error)
	DeleteAccount(ctx context.Context, accNo int64) error
	Deposit(ctx context.Context, req ChargeReq) (*BalanceChange, error)
	Withdraw(ctx context.Context, req ChargeReq) (*BalanceChange, error)
	ListTransactions(ctx context.Context, accNo int64) ([]Transaction, error)
	RenumberAccount(ctx context.Context, req RenumberReq) error
	CreateLocker(ctx context.Context, accNo int64) (*Locker, error)
	GetLocker(ctx context.Context, accNo int64) (*Locker, error)
	VerifyAccess(ctx context.Context, accNo int64, key string) error
	SubmitRequest(ctx context.Context, req SubmitRequestReq) (*Request, error)
	ListRequests(ctx context.Context) ([]Request, error)
	DecideRequest(ctx context.Context, id snowflake.ID, action DecisionAction) (*Decision, error)
	Statement(ctx context.Context, w io.Writer, accNo int64) error
	WipeAll(ctx context.Context) error
}

// how many times DecideRequest retries account-number allocation when
// a concurrent approval grabs the same number first
const maxAllocRetries = 3

func NewService(repo Repository, node *snowflake.Node, log *zerolog.Logger) (*serviceImpl, error) {
	if repo == nil {
		return nil, errors.New("nil repository")
	}
	if node == nil {
		return nil, errors.New("nil snowflake node")
	}
	return &serviceImpl{
		repo: repo,
		node: node,
		log:  log,
	}, nil
}

type serviceImpl struct {
	repo Repository
	node *snowflake.Node
	log  *zerolog.Logger
}

var (
	_ Service = (*serviceImpl)(nil)
)

func (s *serviceImpl) CreateAccount(ctx context.Context, req CreateAccountReq) (*Account, error) {
	acct := Account{
		AccNo:   req.AccNo,
		Name:    strings.TrimSpace(req.Name),
		Balance: req.Balance,
	}
	if err := s.repo.CreateAccount(ctx, acct); err != nil {
		return nil, err
	}
	return &acct, nil
}

func (s *serviceImpl) GetAccount(ctx context.Context, accNo int64) (*Account, error) {
	return s.repo.GetAccount(ctx, accNo)
}

func (s *serviceImpl) ListAccounts(ctx context.Context) ([]Account, error) {
	return s.repo.ListAccounts(ctx)
}

func (s *serviceImpl) DeleteAccount(ctx context.Context, accNo int64) error {
	return s.repo.DeleteAccount(ctx, accNo)
}

func (s *serviceImpl) Deposit(ctx context.Context, req ChargeReq) (*BalanceChange, error) {
	return s.repo.Deposit(ctx, req.AccNo, req.Amount)
}

func (s *serviceImpl) Withdraw(ctx context.Context, req ChargeReq) (*BalanceChange, error) {
	return s.repo.Withdraw(ctx, req.AccNo, req.Amount)
}

func (s *serviceImpl) ListTransactions(ctx context.Context, accNo int64) ([]Transaction, error) {
	return s.repo.ListTransactions(ctx, accNo)
}

func (s *serviceImpl) RenumberAccount(ctx context.Context, req RenumberReq) error {
	return s.repo.RenumberAccount(ctx, req.OldAccNo, req.NewAccNo, strings.TrimSpace(req.Name))
}

func (s *serviceImpl) CreateLocker(ctx context.Context, accNo int64) (*Locker, error) {
	if _, err := s.repo.GetAccount(ctx, accNo); err != nil {
		return nil, err
	}
	lkr := Locker{
		AccNo:     accNo,
		LockerKey: newLockerKey(),
	}
	if err := s.repo.CreateLocker(ctx, lkr); err != nil {
		return nil, err
	}
	return &lkr, nil
}

func (s *serviceImpl) GetLocker(ctx context.Context, accNo int64) (*Locker, error) {
	return s.repo.GetLocker(ctx, accNo)
}

func (s *serviceImpl) VerifyAccess(ctx context.Context, accNo int64, key string) error {
	lkr, err := s.repo.GetLocker(ctx, accNo)
	if err != nil {
		if errors.As(err, &ErrNotFound{}) {
			return ErrUnauthorized{}
		}
		return err
	}
	if subtle.ConstantTimeCompare([]byte(lkr.LockerKey), []byte(key)) != 1 {
		return ErrUnauthorized{}
	}
	return nil
}

func (s *serviceImpl) SubmitRequest(ctx context.Context, req SubmitRequestReq) (*Request, error) {
	if !req.Type.Valid() {
		return nil, ErrBadRequest{Fields: map[string]string{"request_type": "unknown type"}}
	}

	if req.Type == ReqCreateAccount {
		if req.AccNo != nil {
			return nil, ErrBadRequest{Fields: map[string]string{"acc_no": "must be absent for CREATE_ACCOUNT"}}
		}
		p, ok := decodeCreateAccountPayload(req.Payload)
		if !ok {
			return nil, ErrBadRequest{Fields: map[string]string{"payload": "invalid name or opening balance"}}
		}
		req.Payload, _ = json.Marshal(p)
	} else {
		if req.AccNo == nil || *req.AccNo <= 0 {
			return nil, ErrBadRequest{Fields: map[string]string{"acc_no": "missing or invalid"}}
		}
		if _, err := s.repo.GetAccount(ctx, *req.AccNo); err != nil {
			return nil, err
		}
	}
	// an omitted payload would reach the jsonb column as SQL NULL
	if len(req.Payload) == 0 {
		req.Payload = json.RawMessage("{}")
	}

	stored := Request{
		ID:      s.node.Generate(),
		AccNo:   req.AccNo,
		Type:    req.Type,
		Payload: req.Payload,
		Status:  StatusPending,
	}
	if err := s.repo.InsertRequest(ctx, stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

func (s *serviceImpl) ListRequests(ctx context.Context) ([]Request, error) {
	return s.repo.ListRequests(ctx)
}

func (s *serviceImpl) DecideRequest(ctx context.Context, id snowflake.ID, action DecisionAction) (*Decision, error) {
	if action != ActionApprove && action != ActionReject {
		return nil, ErrBadRequest{Fields: map[string]string{"action": "must be APPROVE or REJECT"}}
	}

	req, err := s.repo.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status != StatusPending {
		return nil, ErrInvalidState{Status: req.Status}
	}

	if action == ActionReject {
		if err := s.repo.RejectRequest(ctx, id); err != nil {
			return nil, err
		}
		return &Decision{ID: id, Status: StatusRejected}, nil
	}

	switch req.Type {
	case ReqCreateAccount:
		return s.approveCreateAccount(ctx, req)
	case ReqCreateLocker:
		return s.approveCreateLocker(ctx, req)
	case ReqUpdateAccount:
		return s.approveUpdateAccount(ctx, req)
	default:
		return s.autoReject(ctx, req, "unknown request type")
	}
}

func (s *serviceImpl) approveCreateAccount(ctx context.Context, req *Request) (*Decision, error) {
	p, ok := decodeCreateAccountPayload(req.Payload)
	if !ok {
		return s.autoReject(ctx, req, "invalid payload")
	}

	// max(acc_no)+1 allocation races with concurrent approvals; the
	// unique constraint on accounts surfaces the loser, which retries
	// with a fresh number.
	var lastErr error
	for i := 0; i < maxAllocRetries; i++ {
		accNo, err := s.repo.NextAccountNumber(ctx)
		if err != nil {
			return nil, err
		}
		err = s.repo.ApproveCreateAccount(ctx, req.ID, Account{
			AccNo:   accNo,
			Name:    p.Name,
			Balance: p.OpeningBalance,
		})
		if err == nil {
			return &Decision{ID: req.ID, Status: StatusApproved, AccNo: &accNo}, nil
		}
		if !errors.As(err, &ErrConflict{}) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

func (s *serviceImpl) approveCreateLocker(ctx context.Context, req *Request) (*Decision, error) {
	if req.AccNo == nil {
		return s.autoReject(ctx, req, "request has no account")
	}
	lkr := Locker{
		AccNo:     *req.AccNo,
		LockerKey: newLockerKey(),
	}
	err := s.repo.ApproveCreateLocker(ctx, req.ID, lkr)
	if err == nil {
		return &Decision{ID: req.ID, Status: StatusApproved, AccNo: req.AccNo}, nil
	}
	if errors.As(err, &ErrConflict{}) {
		return s.autoReject(ctx, req, "locker already exists")
	}
	if errors.As(err, &ErrNotFound{}) {
		return s.autoReject(ctx, req, "account no longer exists")
	}
	return nil, err
}

func (s *serviceImpl) approveUpdateAccount(ctx context.Context, req *Request) (*Decision, error) {
	if req.AccNo == nil {
		return s.autoReject(ctx, req, "request has no account")
	}
	p, ok := decodeUpdateAccountPayload(req.Payload)
	if !ok {
		return s.autoReject(ctx, req, "invalid payload")
	}
	err := s.repo.ApproveUpdateAccount(ctx, req.ID, *req.AccNo, p.NewAccNo, p.Name)
	if err == nil {
		newNo := p.NewAccNo
		return &Decision{ID: req.ID, Status: StatusApproved, AccNo: &newNo}, nil
	}
	if errors.As(err, &ErrConflict{}) {
		return s.autoReject(ctx, req, "new account number already in use")
	}
	if errors.As(err, &ErrNotFound{}) {
		return s.autoReject(ctx, req, "account no longer exists")
	}
	return nil, err
}

func (s *serviceImpl) autoReject(ctx context.Context, req *Request, reason string) (*Decision, error) {
	if err := s.repo.RejectRequest(ctx, req.ID); err != nil {
		return nil, err
	}
	s.log.Info().
		Int64("request_id", req.ID.Int64()).
		Str("reason", reason).
		Msg("request auto-rejected on approval")
	return &Decision{
		ID:           req.ID,
		Status:       StatusRejected,
		AutoRejected: true,
		Reason:       reason,
	}, nil
}

func (s *serviceImpl) WipeAll(ctx context.Context) error {
	return s.repo.WipeAll(ctx)
}

// decodeCreateAccountPayload reports malformed JSON the same way as an
// invalid field so approval turns either into an auto-reject instead
// of a hard failure.
func decodeCreateAccountPayload(raw json.RawMessage) (CreateAccountPayload, bool) {
	var p CreateAccountPayload
	if len(raw) == 0 || json.Unmarshal(raw, &p) != nil {
		return p, false
	}
	p.Name = strings.TrimSpace(p.Name)
	if utf8.RuneCountInString(p.Name) < minNameLen || p.OpeningBalance.IsNegative() {
		return p, false
	}
	return p, true
}

func decodeUpdateAccountPayload(raw json.RawMessage) (UpdateAccountPayload, bool) {
	var p UpdateAccountPayload
	if len(raw) == 0 || json.Unmarshal(raw, &p) != nil {
		return p, false
	}
	p.Name = strings.TrimSpace(p.Name)
	if p.NewAccNo <= 0 || utf8.RuneCountInString(p.Name) < minNameLen {
		return p, false
	}
	return p, true
}

// newLockerKey draws 16 hex characters from a v4 UUID, which is backed
// by crypto/rand, and formats them in the issued-key shape
// LOCK-XXXXXXXX-XXXXXXXX.
func newLockerKey() string {
	hex := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("LOCK-%s-%s", hex[:8], hex[8:16])
}
