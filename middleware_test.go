package bankdesk_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/sync/semaphore"

	"github.com/kmadriaga/bankdesk"
	"github.com/kmadriaga/bankdesk/mocks"
)

func TestValidationMWCreateAccount(t *testing.T) {
	t.Run("returns an error on a short name", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		v := bankdesk.NewValidationMiddleware()(svc)

		req := bankdesk.CreateAccountReq{
			AccNo:   1001,
			Name:    "A",
			Balance: decimal.NewFromInt(100),
		}
		acct, err := v.CreateAccount(context.Background(), req)
		as.NotNil(err)
		as.ErrorAs(err, &bankdesk.ErrBadRequest{})
		as.Nil(acct)
	})

	t.Run("returns an error on a whitespace-padded short name", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		v := bankdesk.NewValidationMiddleware()(svc)

		req := bankdesk.CreateAccountReq{
			AccNo:   1001,
			Name:    "  B  ",
			Balance: decimal.NewFromInt(100),
		}
		acct, err := v.CreateAccount(context.Background(), req)
		as.NotNil(err)
		as.Nil(acct)
	})

	t.Run("returns an error on a negative opening balance", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		v := bankdesk.NewValidationMiddleware()(svc)

		req := bankdesk.CreateAccountReq{
			AccNo:   1001,
			Name:    "Alice",
			Balance: decimal.NewFromInt(-1),
		}
		acct, err := v.CreateAccount(context.Background(), req)
		as.NotNil(err)
		as.Nil(acct)
	})

	t.Run("returns an error on a non-positive account number", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		v := bankdesk.NewValidationMiddleware()(svc)

		req := bankdesk.CreateAccountReq{
			Name:    "Alice",
			Balance: decimal.NewFromInt(100),
		}
		acct, err := v.CreateAccount(context.Background(), req)
		as.NotNil(err)
		as.Nil(acct)
	})

	t.Run("passes a valid request through", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		v := bankdesk.NewValidationMiddleware()(svc)

		req := bankdesk.CreateAccountReq{
			AccNo:   1001,
			Name:    "Alice",
			Balance: decimal.NewFromInt(100),
		}
		svc.EXPECT().
			CreateAccount(gomock.Any(), req).
			Return(&bankdesk.Account{AccNo: 1001, Name: "Alice", Balance: req.Balance}, nil)
		acct, err := v.CreateAccount(context.Background(), req)
		as.Nil(err)
		as.NotNil(acct)
	})
}

func TestValidationMWCharges(t *testing.T) {
	t.Run("deposit returns an error on a zero amount", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		v := bankdesk.NewValidationMiddleware()(svc)

		chg, err := v.Deposit(context.Background(), bankdesk.ChargeReq{AccNo: 1001})
		as.NotNil(err)
		as.ErrorAs(err, &bankdesk.ErrBadRequest{})
		as.Nil(chg)
	})

	t.Run("withdraw returns an error on a negative amount", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		v := bankdesk.NewValidationMiddleware()(svc)

		req := bankdesk.ChargeReq{AccNo: 1001, Amount: decimal.NewFromInt(-5)}
		chg, err := v.Withdraw(context.Background(), req)
		as.NotNil(err)
		as.Nil(chg)
	})

	t.Run("withdraw passes a valid request through", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		v := bankdesk.NewValidationMiddleware()(svc)

		req := bankdesk.ChargeReq{AccNo: 1001, Amount: decimal.NewFromInt(5)}
		svc.EXPECT().
			Withdraw(gomock.Any(), req).
			Return(&bankdesk.BalanceChange{}, nil)
		chg, err := v.Withdraw(context.Background(), req)
		as.Nil(err)
		as.NotNil(chg)
	})
}

func TestValidationMWRenumber(t *testing.T) {
	t.Run("returns an error on a non-positive new number", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		v := bankdesk.NewValidationMiddleware()(svc)

		err := v.RenumberAccount(context.Background(), bankdesk.RenumberReq{
			OldAccNo: 1001,
			NewAccNo: 0,
			Name:     "Alice",
		})
		as.NotNil(err)
		as.ErrorAs(err, &bankdesk.ErrBadRequest{})
	})
}

func TestValidationMWVerifyAccess(t *testing.T) {
	t.Run("returns an error on a short key", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		v := bankdesk.NewValidationMiddleware()(svc)

		err := v.VerifyAccess(context.Background(), 1001, "short")
		as.NotNil(err)
		as.ErrorAs(err, &bankdesk.ErrBadRequest{})
	})

	t.Run("passes a long enough key to the service", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		v := bankdesk.NewValidationMiddleware()(svc)

		svc.EXPECT().
			VerifyAccess(gomock.Any(), int64(1001), "LOCK-DEADBEEF-CAFEBABE").
			Return(nil)
		as.Nil(v.VerifyAccess(context.Background(), 1001, "LOCK-DEADBEEF-CAFEBABE"))
	})
}

func TestLimitMW(t *testing.T) {
	t.Run("passes through when tokens are available", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		limits := &bankdesk.ServiceLimits{
			Deposit: semaphore.NewWeighted(1),
		}
		l := bankdesk.NewLimitMiddleware(limits)(svc)

		req := bankdesk.ChargeReq{AccNo: 1001, Amount: decimal.NewFromInt(5)}
		svc.EXPECT().
			Deposit(gomock.Any(), req).
			Return(&bankdesk.BalanceChange{}, nil).
			Times(2)

		// the token must be released after each call
		for i := 0; i < 2; i++ {
			chg, err := l.Deposit(context.Background(), req)
			as.Nil(err)
			as.NotNil(chg)
		}
	})

	t.Run("unlimited operations pass through with nil semaphores", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		l := bankdesk.NewLimitMiddleware(&bankdesk.ServiceLimits{})(svc)

		svc.EXPECT().ListAccounts(gomock.Any()).Return([]bankdesk.Account{}, nil)
		_, err := l.ListAccounts(context.Background())
		as.Nil(err)

		req := bankdesk.ChargeReq{AccNo: 1001, Amount: decimal.NewFromInt(5)}
		svc.EXPECT().Withdraw(gomock.Any(), req).Return(&bankdesk.BalanceChange{}, nil)
		_, err = l.Withdraw(context.Background(), req)
		as.Nil(err)
	})
}
