package bankdesk_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kmadriaga/bankdesk"
	"github.com/kmadriaga/bankdesk/mocks"
)

func TestHTTPDeposit(t *testing.T) {
	nooplog := zerolog.Nop()

	t.Run("returns before and after balances on success", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		svc.EXPECT().
			Deposit(gomock.Any(), gomock.AssignableToTypeOf(bankdesk.ChargeReq{})).
			DoAndReturn(func(_ context.Context, r bankdesk.ChargeReq) (*bankdesk.BalanceChange, error) {
				return &bankdesk.BalanceChange{
					Before: decimal.NewFromInt(100),
					After:  decimal.NewFromInt(150),
				}, nil
			}).
			Times(1)

		hndlr := bankdesk.NewHTTPHandler(svc, &nooplog)
		body := bytes.NewBufferString(`{"amount":50}`)
		req := httptest.NewRequest(http.MethodPost, "/api/accounts/1001/deposit", body)
		w := httptest.NewRecorder()
		hndlr.ServeHTTP(w, req)

		as.Equal(http.StatusOK, w.Code)
		resp := map[string]json.RawMessage{}
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		as.Nil(err)
		as.Contains(resp, "before")
		as.Contains(resp, "after")
	})

	t.Run("returns 404 on a non-numeric account number", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		hndlr := bankdesk.NewHTTPHandler(svc, &nooplog)

		body := bytes.NewBufferString(`{"amount":50}`)
		req := httptest.NewRequest(http.MethodPost, "/api/accounts/24j24g/deposit", body)
		w := httptest.NewRecorder()
		hndlr.ServeHTTP(w, req)

		as.Equal(http.StatusNotFound, w.Code)
		resp := map[string]string{}
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		reqrd.Nil(err)
		as.Contains(resp, "path")
	})

	t.Run("returns 400 on a malformed request body", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		hndlr := bankdesk.NewHTTPHandler(svc, &nooplog)

		body := bytes.NewBufferString(`{"amount":50`)
		req := httptest.NewRequest(http.MethodPost, "/api/accounts/1001/deposit", body)
		w := httptest.NewRecorder()
		hndlr.ServeHTTP(w, req)

		as.Equal(http.StatusBadRequest, w.Code)
		resp := map[string]map[string]string{}
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		reqrd.Nil(err)
		as.Contains(resp, "fields")
		as.Contains(resp["fields"], "request body")
	})
}

func TestHTTPWithdraw(t *testing.T) {
	nooplog := zerolog.Nop()

	t.Run("maps insufficient funds to 400", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		svc.EXPECT().
			Withdraw(gomock.Any(), gomock.AssignableToTypeOf(bankdesk.ChargeReq{})).
			Return(nil, bankdesk.ErrInsufficientFunds{AccNo: 1001}).
			Times(1)

		hndlr := bankdesk.NewHTTPHandler(svc, &nooplog)
		body := bytes.NewBufferString(`{"amount":200}`)
		req := httptest.NewRequest(http.MethodPost, "/api/accounts/1001/withdraw", body)
		w := httptest.NewRecorder()
		hndlr.ServeHTTP(w, req)

		as.Equal(http.StatusBadRequest, w.Code)
	})
}

func TestHTTPAccounts(t *testing.T) {
	nooplog := zerolog.Nop()

	t.Run("create returns the new account", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		svc.EXPECT().
			CreateAccount(gomock.Any(), gomock.AssignableToTypeOf(bankdesk.CreateAccountReq{})).
			DoAndReturn(func(_ context.Context, r bankdesk.CreateAccountReq) (*bankdesk.Account, error) {
				return &bankdesk.Account{AccNo: r.AccNo, Name: r.Name, Balance: r.Balance}, nil
			}).
			Times(1)

		hndlr := bankdesk.NewHTTPHandler(svc, &nooplog)
		body := bytes.NewBufferString(`{"acc_no":1001,"name":"Alice","balance":100}`)
		req := httptest.NewRequest(http.MethodPost, "/api/accounts", body)
		w := httptest.NewRecorder()
		hndlr.ServeHTTP(w, req)

		as.Equal(http.StatusOK, w.Code)
		var acct bankdesk.Account
		reqrd.Nil(json.Unmarshal(w.Body.Bytes(), &acct))
		as.Equal(int64(1001), acct.AccNo)
		as.Equal("Alice", acct.Name)
	})

	t.Run("get maps missing account to 404", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		svc.EXPECT().
			GetAccount(gomock.Any(), int64(4242)).
			Return(nil, bankdesk.ErrNotFound{AccNo: 4242}).
			Times(1)

		hndlr := bankdesk.NewHTTPHandler(svc, &nooplog)
		req := httptest.NewRequest(http.MethodGet, "/api/accounts/4242", nil)
		w := httptest.NewRecorder()
		hndlr.ServeHTTP(w, req)

		as.Equal(http.StatusNotFound, w.Code)
	})

	t.Run("duplicate create maps to 409", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		svc.EXPECT().
			CreateAccount(gomock.Any(), gomock.Any()).
			Return(nil, bankdesk.ErrConflict{Msg: "account already exists"}).
			Times(1)

		hndlr := bankdesk.NewHTTPHandler(svc, &nooplog)
		body := bytes.NewBufferString(`{"acc_no":1001,"name":"Alice","balance":100}`)
		req := httptest.NewRequest(http.MethodPost, "/api/accounts", body)
		w := httptest.NewRecorder()
		hndlr.ServeHTTP(w, req)

		as.Equal(http.StatusConflict, w.Code)
	})
}

func TestHTTPLockerAccess(t *testing.T) {
	nooplog := zerolog.Nop()

	t.Run("maps a wrong key to 401", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		svc.EXPECT().
			VerifyAccess(gomock.Any(), int64(1001), "LOCK-00000000-00000000").
			Return(bankdesk.ErrUnauthorized{}).
			Times(1)

		hndlr := bankdesk.NewHTTPHandler(svc, &nooplog)
		body := bytes.NewBufferString(`{"acc_no":1001,"locker_key":"LOCK-00000000-00000000"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/locker/access", body)
		w := httptest.NewRecorder()
		hndlr.ServeHTTP(w, req)

		as.Equal(http.StatusUnauthorized, w.Code)
	})
}

func TestHTTPDecideRequest(t *testing.T) {
	nooplog := zerolog.Nop()

	t.Run("a clean approval returns 200 with the decision", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		accNo := int64(1001)
		svc.EXPECT().
			DecideRequest(gomock.Any(), gomock.Any(), bankdesk.ActionApprove).
			Return(&bankdesk.Decision{Status: bankdesk.StatusApproved, AccNo: &accNo}, nil).
			Times(1)

		hndlr := bankdesk.NewHTTPHandler(svc, &nooplog)
		body := bytes.NewBufferString(`{"action":"APPROVE"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/requests/7241301734201495552/decision", body)
		w := httptest.NewRecorder()
		hndlr.ServeHTTP(w, req)

		as.Equal(http.StatusOK, w.Code)
		var dec bankdesk.Decision
		reqrd.Nil(json.Unmarshal(w.Body.Bytes(), &dec))
		as.Equal(bankdesk.StatusApproved, dec.Status)
	})

	t.Run("an auto-rejected approval returns 400 with the decision", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		svc.EXPECT().
			DecideRequest(gomock.Any(), gomock.Any(), bankdesk.ActionApprove).
			Return(&bankdesk.Decision{
				Status:       bankdesk.StatusRejected,
				AutoRejected: true,
				Reason:       "locker already exists",
			}, nil).
			Times(1)

		hndlr := bankdesk.NewHTTPHandler(svc, &nooplog)
		body := bytes.NewBufferString(`{"action":"APPROVE"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/requests/7241301734201495552/decision", body)
		w := httptest.NewRecorder()
		hndlr.ServeHTTP(w, req)

		as.Equal(http.StatusBadRequest, w.Code)
		var dec bankdesk.Decision
		reqrd.Nil(json.Unmarshal(w.Body.Bytes(), &dec))
		as.Equal(bankdesk.StatusRejected, dec.Status)
		as.True(dec.AutoRejected)
	})

	t.Run("double decision maps to 409", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		svc.EXPECT().
			DecideRequest(gomock.Any(), gomock.Any(), bankdesk.ActionApprove).
			Return(nil, bankdesk.ErrInvalidState{Status: bankdesk.StatusApproved}).
			Times(1)

		hndlr := bankdesk.NewHTTPHandler(svc, &nooplog)
		body := bytes.NewBufferString(`{"action":"APPROVE"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/requests/7241301734201495552/decision", body)
		w := httptest.NewRecorder()
		hndlr.ServeHTTP(w, req)

		as.Equal(http.StatusConflict, w.Code)
	})
}

func TestHTTPWipe(t *testing.T) {
	nooplog := zerolog.Nop()

	t.Run("wipes and reports", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		svc := mocks.NewMockService(ctrl)
		svc.EXPECT().WipeAll(gomock.Any()).Return(nil).Times(1)

		hndlr := bankdesk.NewHTTPHandler(svc, &nooplog)
		req := httptest.NewRequest(http.MethodDelete, "/api/wipe", nil)
		w := httptest.NewRecorder()
		hndlr.ServeHTTP(w, req)

		as.Equal(http.StatusOK, w.Code)
		resp := map[string]string{}
		as.Nil(json.Unmarshal(w.Body.Bytes(), &resp))
		as.Contains(resp, "msg")
	})
}
