package bankdesk

import (
	"context"
	"errors"
	"io"
	"reflect"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/sync/semaphore"
)

type Middleware func(Service) Service

//
// Validation middleware
//

// validationMiddleware rejects malformed input before any storage
// lock is taken. Struct requests are checked with validator tags;
// scalar arguments are checked inline.
type validationMiddleware struct {
	next     Service
	validate *validator.Validate
}

var (
	_ Service = (*validationMiddleware)(nil)
)

func NewValidationMiddleware() Middleware {
	v := validator.New()
	// report field names by their json tag
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// validator sees decimal.Decimal as an opaque struct; hand it the
	// float value instead
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	return func(next Service) Service {
		return &validationMiddleware{
			next:     next,
			validate: v,
		}
	}
}

func (v *validationMiddleware) check(req interface{}) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return ErrInternalServer
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = "failed " + fe.Tag() + " check"
	}
	return ErrBadRequest{Fields: fields}
}

func checkAccNo(accNo int64) error {
	if accNo <= 0 {
		return ErrBadRequest{Fields: map[string]string{"acc_no": "must be positive"}}
	}
	return nil
}

func (v *validationMiddleware) CreateAccount(ctx context.Context, req CreateAccountReq) (*Account, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := v.check(req); err != nil {
		return nil, err
	}
	return v.next.CreateAccount(ctx, req)
}

func (v *validationMiddleware) GetAccount(ctx context.Context, accNo int64) (*Account, error) {
	if err := checkAccNo(accNo); err != nil {
		return nil, err
	}
	return v.next.GetAccount(ctx, accNo)
}

func (v *validationMiddleware) ListAccounts(ctx context.Context) ([]Account, error) {
	return v.next.ListAccounts(ctx)
}

func (v *validationMiddleware) DeleteAccount(ctx context.Context, accNo int64) error {
	if err := checkAccNo(accNo); err != nil {
		return err
	}
	return v.next.DeleteAccount(ctx, accNo)
}

func (v *validationMiddleware) Deposit(ctx context.Context, req ChargeReq) (*BalanceChange, error) {
	if err := v.check(req); err != nil {
		return nil, err
	}
	return v.next.Deposit(ctx, req)
}

func (v *validationMiddleware) Withdraw(ctx context.Context, req ChargeReq) (*BalanceChange, error) {
	if err := v.check(req); err != nil {
		return nil, err
	}
	return v.next.Withdraw(ctx, req)
}

func (v *validationMiddleware) ListTransactions(ctx context.Context, accNo int64) ([]Transaction, error) {
	if err := checkAccNo(accNo); err != nil {
		return nil, err
	}
	return v.next.ListTransactions(ctx, accNo)
}

func (v *validationMiddleware) RenumberAccount(ctx context.Context, req RenumberReq) error {
	req.Name = strings.TrimSpace(req.Name)
	if err := v.check(req); err != nil {
		return err
	}
	return v.next.RenumberAccount(ctx, req)
}

func (v *validationMiddleware) CreateLocker(ctx context.Context, accNo int64) (*Locker, error) {
	if err := checkAccNo(accNo); err != nil {
		return nil, err
	}
	return v.next.CreateLocker(ctx, accNo)
}

func (v *validationMiddleware) GetLocker(ctx context.Context, accNo int64) (*Locker, error) {
	if err := checkAccNo(accNo); err != nil {
		return nil, err
	}
	return v.next.GetLocker(ctx, accNo)
}

func (v *validationMiddleware) VerifyAccess(ctx context.Context, accNo int64, key string) error {
	if err := checkAccNo(accNo); err != nil {
		return err
	}
	if len(key) < minLockerKeyLen {
		return ErrBadRequest{Fields: map[string]string{"locker_key": "too short"}}
	}
	return v.next.VerifyAccess(ctx, accNo, key)
}

func (v *validationMiddleware) SubmitRequest(ctx context.Context, req SubmitRequestReq) (*Request, error) {
	if err := v.check(req); err != nil {
		return nil, err
	}
	return v.next.SubmitRequest(ctx, req)
}

func (v *validationMiddleware) ListRequests(ctx context.Context) ([]Request, error) {
	return v.next.ListRequests(ctx)
}

func (v *validationMiddleware) DecideRequest(ctx context.Context, id snowflake.ID, action DecisionAction) (*Decision, error) {
	return v.next.DecideRequest(ctx, id, action)
}

func (v *validationMiddleware) Statement(ctx context.Context, w io.Writer, accNo int64) error {
	if err := checkAccNo(accNo); err != nil {
		return err
	}
	return v.next.Statement(ctx, w, accNo)
}

func (v *validationMiddleware) WipeAll(ctx context.Context) error {
	return v.next.WipeAll(ctx)
}

//
// Rate limiting middlewares
//

const semAcquireTimeout = 3 * time.Second

// limitMiddleware sheds load on the lock-heavy operations with
// weighted semaphores acquired under a short timeout. Static limits
// are crude next to adaptive schemes, but they bound how many callers
// can pile up behind the same row locks.
type limitMiddleware struct {
	next   Service
	limits *ServiceLimits
}

var (
	_ Service = (*limitMiddleware)(nil)
)

type ServiceLimits struct {
	Deposit   *semaphore.Weighted
	Withdraw  *semaphore.Weighted
	Decide    *semaphore.Weighted
	Statement *semaphore.Weighted
}

func NewLimitMiddleware(limits *ServiceLimits) Middleware {
	return func(next Service) Service {
		return &limitMiddleware{
			next:   next,
			limits: limits,
		}
	}
}

func acquire(ctx context.Context, sem *semaphore.Weighted) (func(), error) {
	if sem == nil {
		return func() {}, nil
	}
	actx, cancel := context.WithTimeout(ctx, semAcquireTimeout)
	defer cancel()
	if err := sem.Acquire(actx, 1); err != nil {
		return nil, ErrInternalServer
	}
	return func() { sem.Release(1) }, nil
}

func (l *limitMiddleware) CreateAccount(ctx context.Context, req CreateAccountReq) (*Account, error) {
	return l.next.CreateAccount(ctx, req)
}

func (l *limitMiddleware) GetAccount(ctx context.Context, accNo int64) (*Account, error) {
	return l.next.GetAccount(ctx, accNo)
}

func (l *limitMiddleware) ListAccounts(ctx context.Context) ([]Account, error) {
	return l.next.ListAccounts(ctx)
}

func (l *limitMiddleware) DeleteAccount(ctx context.Context, accNo int64) error {
	return l.next.DeleteAccount(ctx, accNo)
}

func (l *limitMiddleware) Deposit(ctx context.Context, req ChargeReq) (*BalanceChange, error) {
	release, err := acquire(ctx, l.limits.Deposit)
	if err != nil {
		return nil, err
	}
	defer release()
	return l.next.Deposit(ctx, req)
}

func (l *limitMiddleware) Withdraw(ctx context.Context, req ChargeReq) (*BalanceChange, error) {
	release, err := acquire(ctx, l.limits.Withdraw)
	if err != nil {
		return nil, err
	}
	defer release()
	return l.next.Withdraw(ctx, req)
}

func (l *limitMiddleware) ListTransactions(ctx context.Context, accNo int64) ([]Transaction, error) {
	return l.next.ListTransactions(ctx, accNo)
}

func (l *limitMiddleware) RenumberAccount(ctx context.Context, req RenumberReq) error {
	return l.next.RenumberAccount(ctx, req)
}

func (l *limitMiddleware) CreateLocker(ctx context.Context, accNo int64) (*Locker, error) {
	return l.next.CreateLocker(ctx, accNo)
}

func (l *limitMiddleware) GetLocker(ctx context.Context, accNo int64) (*Locker, error) {
	return l.next.GetLocker(ctx, accNo)
}

func (l *limitMiddleware) VerifyAccess(ctx context.Context, accNo int64, key string) error {
	return l.next.VerifyAccess(ctx, accNo, key)
}

func (l *limitMiddleware) SubmitRequest(ctx context.Context, req SubmitRequestReq) (*Request, error) {
	return l.next.SubmitRequest(ctx, req)
}

func (l *limitMiddleware) ListRequests(ctx context.Context) ([]Request, error) {
	return l.next.ListRequests(ctx)
}

func (l *limitMiddleware) DecideRequest(ctx context.Context, id snowflake.ID, action DecisionAction) (*Decision, error) {
	release, err := acquire(ctx, l.limits.Decide)
	if err != nil {
		return nil, err
	}
	defer release()
	return l.next.DecideRequest(ctx, id, action)
}

func (l *limitMiddleware) Statement(ctx context.Context, w io.Writer, accNo int64) error {
	release, err := acquire(ctx, l.limits.Statement)
	if err != nil {
		return err
	}
	defer release()
	return l.next.Statement(ctx, w, accNo)
}

func (l *limitMiddleware) WipeAll(ctx context.Context) error {
	return l.next.WipeAll(ctx)
}

//
// Circuit breaker middleware
//

type ServiceBreaker struct {
	Deposit  *gobreaker.TwoStepCircuitBreaker[*BalanceChange]
	Withdraw *gobreaker.TwoStepCircuitBreaker[*BalanceChange]
	Decide   *gobreaker.TwoStepCircuitBreaker[*Decision]
}

// circuitBreakMiddleware trips on storage failures in the hot write
// paths. Domain outcomes like insufficient funds or a conflict are
// counted as successes; they mean storage answered.
type circuitBreakMiddleware struct {
	next  Service
	brkrs *ServiceBreaker
}

var (
	_ Service = (*circuitBreakMiddleware)(nil)
)

func NewCircuitBreakMiddleware(brkrs *ServiceBreaker) Middleware {
	return func(next Service) Service {
		return &circuitBreakMiddleware{
			next:  next,
			brkrs: brkrs,
		}
	}
}

// domainOutcome reports whether err is a typed domain result rather
// than a storage-level failure.
func domainOutcome(err error) bool {
	if err == nil {
		return true
	}
	return errors.As(err, &ErrBadRequest{}) ||
		errors.As(err, &ErrNotFound{}) ||
		errors.As(err, &ErrConflict{}) ||
		errors.As(err, &ErrInsufficientFunds{}) ||
		errors.As(err, &ErrUnauthorized{}) ||
		errors.As(err, &ErrInvalidState{})
}

func (c *circuitBreakMiddleware) CreateAccount(ctx context.Context, req CreateAccountReq) (*Account, error) {
	return c.next.CreateAccount(ctx, req)
}

func (c *circuitBreakMiddleware) GetAccount(ctx context.Context, accNo int64) (*Account, error) {
	return c.next.GetAccount(ctx, accNo)
}

func (c *circuitBreakMiddleware) ListAccounts(ctx context.Context) ([]Account, error) {
	return c.next.ListAccounts(ctx)
}

func (c *circuitBreakMiddleware) DeleteAccount(ctx context.Context, accNo int64) error {
	return c.next.DeleteAccount(ctx, accNo)
}

func (c *circuitBreakMiddleware) Deposit(ctx context.Context, req ChargeReq) (*BalanceChange, error) {
	done, err := c.brkrs.Deposit.Allow()
	if err != nil {
		return nil, ErrInternalServer
	}
	bal, err := c.next.Deposit(ctx, req)
	done(domainOutcome(err))
	return bal, err
}

func (c *circuitBreakMiddleware) Withdraw(ctx context.Context, req ChargeReq) (*BalanceChange, error) {
	done, err := c.brkrs.Withdraw.Allow()
	if err != nil {
		return nil, ErrInternalServer
	}
	bal, err := c.next.Withdraw(ctx, req)
	done(domainOutcome(err))
	return bal, err
}

func (c *circuitBreakMiddleware) ListTransactions(ctx context.Context, accNo int64) ([]Transaction, error) {
	return c.next.ListTransactions(ctx, accNo)
}

func (c *circuitBreakMiddleware) RenumberAccount(ctx context.Context, req RenumberReq) error {
	return c.next.RenumberAccount(ctx, req)
}

func (c *circuitBreakMiddleware) CreateLocker(ctx context.Context, accNo int64) (*Locker, error) {
	return c.next.CreateLocker(ctx, accNo)
}

func (c *circuitBreakMiddleware) GetLocker(ctx context.Context, accNo int64) (*Locker, error) {
	return c.next.GetLocker(ctx, accNo)
}

func (c *circuitBreakMiddleware) VerifyAccess(ctx context.Context, accNo int64, key string) error {
	return c.next.VerifyAccess(ctx, accNo, key)
}

func (c *circuitBreakMiddleware) SubmitRequest(ctx context.Context, req SubmitRequestReq) (*Request, error) {
	return c.next.SubmitRequest(ctx, req)
}

func (c *circuitBreakMiddleware) ListRequests(ctx context.Context) ([]Request, error) {
	return c.next.ListRequests(ctx)
}

func (c *circuitBreakMiddleware) DecideRequest(ctx context.Context, id snowflake.ID, action DecisionAction) (*Decision, error) {
	done, err := c.brkrs.Decide.Allow()
	if err != nil {
		return nil, ErrInternalServer
	}
	dec, err := c.next.DecideRequest(ctx, id, action)
	done(domainOutcome(err))
	return dec, err
}

func (c *circuitBreakMiddleware) Statement(ctx context.Context, w io.Writer, accNo int64) error {
	return c.next.Statement(ctx, w, accNo)
}

func (c *circuitBreakMiddleware) WipeAll(ctx context.Context) error {
	return c.next.WipeAll(ctx)
}
