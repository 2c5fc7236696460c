package bankdesk

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// LocalHelper drives a throwaway database for local runs and the
// integration tests: schema setup, demo data, teardown.
type LocalHelper struct {
	Conn *pgx.Conn
}

func NewLocalHelper(connStr string) (*LocalHelper, error) {
	conn, err := pgx.Connect(context.Background(), connStr)
	if err != nil {
		return nil, err
	}
	return &LocalHelper{Conn: conn}, nil
}

func (lh *LocalHelper) InitDB() (func(), error) {
	initSQLpath := filepath.Join("testdata", "init_db.sql")
	bits, err := os.ReadFile(initSQLpath)
	if err != nil {
		return nil, err
	}
	if _, err = lh.Conn.Exec(context.Background(), string(bits)); err != nil {
		return nil, err
	}
	return lh.teardownDB(), nil
}

// SeedAccounts inserts demo accounts directly, bypassing the service
// layer; numbering starts at the allocation floor.
func (lh *LocalHelper) SeedAccounts(names ...string) ([]Account, error) {
	accts := make([]Account, 0, len(names))
	for i, name := range names {
		acct := Account{
			AccNo:   accNoFloor + int64(i) + 1,
			Name:    name,
			Balance: decimal.Zero,
		}
		_, err := lh.Conn.Exec(context.Background(),
			`INSERT INTO accounts (acc_no, name, balance) VALUES ($1, $2, $3);`,
			acct.AccNo, acct.Name, acct.Balance)
		if err != nil {
			return nil, err
		}
		accts = append(accts, acct)
	}
	return accts, nil
}

func (lh *LocalHelper) teardownDB() func() {
	return func() {
		defer lh.Conn.Close(context.Background())

		tearSQLpath := filepath.Join("testdata", "teardown_db.sql")
		bits, err := os.ReadFile(tearSQLpath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "DB cleanup read teardown sql: %s", err.Error())
			return
		}
		if _, err = lh.Conn.Exec(context.Background(), string(bits)); err != nil {
			fmt.Fprintf(os.Stderr, "DB cleanup exec teardown sql: %s", err.Error())
			return
		}
	}
}
