package bankdesk_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/kmadriaga/bankdesk"
	"github.com/kmadriaga/bankdesk/mocks"
)

func TestStatement(t *testing.T) {
	t.Run("renders a PDF for the account", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		repo := mocks.NewMockRepository(ctrl)
		svc := newTestService(tt, repo)

		repo.EXPECT().
			GetAccount(gomock.Any(), int64(1001)).
			Return(&bankdesk.Account{AccNo: 1001, Name: "Alice", Balance: decimal.NewFromInt(150)}, nil)
		repo.EXPECT().
			ListTransactions(gomock.Any(), int64(1001)).
			Return([]bankdesk.Transaction{
				{ID: 1, AccNo: 1001, Type: bankdesk.TxnDeposit,
					Amount:        decimal.NewFromInt(50),
					BeforeBalance: decimal.NewFromInt(100),
					AfterBalance:  decimal.NewFromInt(150)},
			}, nil)

		var buf bytes.Buffer
		as.Nil(svc.Statement(context.Background(), &buf, 1001))
		as.True(strings.HasPrefix(buf.String(), "%PDF"))
	})

	t.Run("leaves the writer untouched on a missing account", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		repo := mocks.NewMockRepository(ctrl)
		svc := newTestService(tt, repo)

		repo.EXPECT().
			GetAccount(gomock.Any(), int64(404)).
			Return(nil, bankdesk.ErrNotFound{AccNo: 404})

		var buf bytes.Buffer
		err := svc.Statement(context.Background(), &buf, 404)
		as.ErrorAs(err, &bankdesk.ErrNotFound{})
		as.Zero(buf.Len())
	})
}
