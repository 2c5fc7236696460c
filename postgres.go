package bankdesk

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const pgUniqueViolation = "23505"

var (
	pgSelectBalanceForUpdateSQL = `
		SELECT balance
		FROM accounts
		WHERE acc_no = $1
		FOR UPDATE;
	`

	pgUpdateBalanceSQL = `
		UPDATE accounts
		SET balance = $1
		WHERE acc_no = $2;
	`

	pgInsertTxnSQL = `
		INSERT INTO transactions (acc_no, type, amount, before_balance, after_balance)
		VALUES ($1, $2, $3, $4, $5);
	`

	pgInsertAccountSQL = `
		INSERT INTO accounts (acc_no, name, balance)
		VALUES ($1, $2, $3);
	`

	pgSelectAccountSQL = `
		SELECT acc_no, name, balance, created_at
		FROM accounts
		WHERE acc_no = $1;
	`

	pgListAccountsSQL = `
		SELECT acc_no, name, balance, created_at
		FROM accounts
		ORDER BY acc_no;
	`

	pgDeleteAccountSQL = `
		DELETE FROM accounts
		WHERE acc_no = $1;
	`

	pgNextAccNoSQL = `
		SELECT COALESCE(MAX(acc_no), $1::bigint) + 1
		FROM accounts;
	`

	pgListTxnsSQL = `
		SELECT id, acc_no, type, amount, before_balance, after_balance, created_at
		FROM transactions
		WHERE acc_no = $1
		ORDER BY id DESC;
	`

	pgLockAccountSQL = `
		SELECT name
		FROM accounts
		WHERE acc_no = $1
		FOR UPDATE;
	`

	pgAccountExistsSQL = `
		SELECT 1
		FROM accounts
		WHERE acc_no = $1;
	`

	pgRenumberAccountSQL = `
		UPDATE accounts
		SET acc_no = $1, name = $2
		WHERE acc_no = $3;
	`

	pgRenumberTxnsSQL = `
		UPDATE transactions
		SET acc_no = $1
		WHERE acc_no = $2;
	`

	pgRenumberLockersSQL = `
		UPDATE lockers
		SET acc_no = $1
		WHERE acc_no = $2;
	`

	pgRenumberRequestsSQL = `
		UPDATE requests
		SET acc_no = $1
		WHERE acc_no = $2;
	`

	pgInsertLockerSQL = `
		INSERT INTO lockers (acc_no, locker_key)
		VALUES ($1, $2);
	`

	pgSelectLockerSQL = `
		SELECT acc_no, locker_key, created_at
		FROM lockers
		WHERE acc_no = $1;
	`

	pgInsertRequestSQL = `
		INSERT INTO requests (id, acc_no, request_type, payload, status)
		VALUES ($1, $2, $3, $4, $5);
	`

	pgSelectRequestSQL = `
		SELECT id, acc_no, request_type, payload, status, created_at
		FROM requests
		WHERE id = $1;
	`

	pgListRequestsSQL = `
		SELECT id, acc_no, request_type, payload, status, created_at
		FROM requests
		ORDER BY id DESC;
	`

	// The PENDING guard makes concurrent double-decisions lose with
	// zero rows affected instead of overwriting a terminal status.
	pgApproveRequestSQL = `
		UPDATE requests
		SET status = 'APPROVED', acc_no = $1
		WHERE id = $2 AND status = 'PENDING';
	`

	pgRejectRequestSQL = `
		UPDATE requests
		SET status = 'REJECTED'
		WHERE id = $1 AND status = 'PENDING';
	`
)

type PostgresEndpoint struct {
	pool *pgxpool.Pool
	log  *zerolog.Logger
}

var (
	_ Repository = (*PostgresEndpoint)(nil)
)

func NewPostgresEndpoint(connStr string, log *zerolog.Logger) (*PostgresEndpoint, error) {
	cfg, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), cfg)
	if err != nil {
		return nil, err
	}
	if err = pool.Ping(context.Background()); err != nil {
		return nil, err
	}

	endpt := &PostgresEndpoint{
		pool: pool,
		log:  log,
	}
	return endpt, nil
}

func (pg *PostgresEndpoint) Close() {
	pg.pool.Close()
}

func (pg *PostgresEndpoint) CreateAccount(ctx context.Context, acct Account) error {
	conn, err := pg.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err = conn.Exec(ctx, pgInsertAccountSQL, acct.AccNo, acct.Name, acct.Balance); err != nil {
		if isUniqueViolation(err) {
			return ErrConflict{Msg: "account already exists"}
		}
		return err
	}
	return nil
}

func (pg *PostgresEndpoint) GetAccount(ctx context.Context, accNo int64) (*Account, error) {
	conn, err := pg.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	var acct Account
	row := conn.QueryRow(ctx, pgSelectAccountSQL, accNo)
	if err = row.Scan(&acct.AccNo, &acct.Name, &acct.Balance, &acct.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound{AccNo: accNo}
		}
		return nil, err
	}
	return &acct, nil
}

func (pg *PostgresEndpoint) ListAccounts(ctx context.Context) ([]Account, error) {
	conn, err := pg.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, pgListAccountsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accts := []Account{}
	for rows.Next() {
		var acct Account
		if err = rows.Scan(&acct.AccNo, &acct.Name, &acct.Balance, &acct.CreatedAt); err != nil {
			return nil, err
		}
		accts = append(accts, acct)
	}
	return accts, rows.Err()
}

func (pg *PostgresEndpoint) DeleteAccount(ctx context.Context, accNo int64) error {
	conn, err := pg.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tag, err := conn.Exec(ctx, pgDeleteAccountSQL, accNo)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound{AccNo: accNo}
	}
	return nil
}

func (pg *PostgresEndpoint) NextAccountNumber(ctx context.Context) (int64, error) {
	conn, err := pg.pool.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	var next int64
	if err = conn.QueryRow(ctx, pgNextAccNoSQL, accNoFloor).Scan(&next); err != nil {
		return 0, err
	}
	return next, nil
}

func (pg *PostgresEndpoint) Deposit(ctx context.Context, accNo int64, amount decimal.Decimal) (*BalanceChange, error) {
	return pg.charge(ctx, accNo, amount, TxnDeposit)
}

func (pg *PostgresEndpoint) Withdraw(ctx context.Context, accNo int64, amount decimal.Decimal) (*BalanceChange, error) {
	return pg.charge(ctx, accNo, amount, TxnWithdraw)
}

func (pg *PostgresEndpoint) charge(ctx context.Context, accNo int64, amount decimal.Decimal, typ TxnType) (*BalanceChange, error) {
	conn, err := pg.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	tx, err := conn.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, err
	}
	defer pg.rollback(ctx, tx, "charge")

	var before decimal.Decimal
	row := tx.QueryRow(ctx, pgSelectBalanceForUpdateSQL, accNo)
	if err = row.Scan(&before); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound{AccNo: accNo}
		}
		return nil, err
	}

	var after decimal.Decimal
	switch typ {
	case TxnWithdraw:
		if amount.GreaterThan(before) {
			return nil, ErrInsufficientFunds{AccNo: accNo}
		}
		after = before.Sub(amount)
	default:
		after = before.Add(amount)
	}

	batch := &pgx.Batch{}
	batch.Queue(pgUpdateBalanceSQL, after, accNo)
	batch.Queue(pgInsertTxnSQL, accNo, typ, amount, before, after)
	btresults := tx.SendBatch(ctx, batch)
	for i := 0; i < 2; i++ {
		if _, err = btresults.Exec(); err != nil {
			btresults.Close()
			return nil, err
		}
	}
	if err = btresults.Close(); err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &BalanceChange{Before: before, After: after}, nil
}

func (pg *PostgresEndpoint) ListTransactions(ctx context.Context, accNo int64) ([]Transaction, error) {
	conn, err := pg.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, pgListTxnsSQL, accNo)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	txns := []Transaction{}
	for rows.Next() {
		var txn Transaction
		err = rows.Scan(&txn.ID, &txn.AccNo, &txn.Type, &txn.Amount,
			&txn.BeforeBalance, &txn.AfterBalance, &txn.CreatedAt)
		if err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}
	return txns, rows.Err()
}

func (pg *PostgresEndpoint) RenumberAccount(ctx context.Context, oldAccNo, newAccNo int64, name string) error {
	conn, err := pg.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tx, err := conn.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return err
	}
	defer pg.rollback(ctx, tx, "renumber")

	if err = pg.renumberInTx(ctx, tx, oldAccNo, newAccNo, name); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// renumberInTx rewrites the account identity and cascades it to every
// dependent row. FK checks on the dependents are deferred to commit,
// so the parent row moves first and the children follow within the
// same transaction.
func (pg *PostgresEndpoint) renumberInTx(ctx context.Context, tx pgx.Tx, oldAccNo, newAccNo int64, name string) error {
	var lockedName string
	row := tx.QueryRow(ctx, pgLockAccountSQL, oldAccNo)
	if err := row.Scan(&lockedName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound{AccNo: oldAccNo}
		}
		return err
	}

	if newAccNo != oldAccNo {
		var one int
		err := tx.QueryRow(ctx, pgAccountExistsSQL, newAccNo).Scan(&one)
		if err == nil {
			return ErrConflict{Msg: "new account number already exists"}
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return err
		}
	}

	if _, err := tx.Exec(ctx, "SET CONSTRAINTS ALL DEFERRED;"); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, pgRenumberAccountSQL, newAccNo, name, oldAccNo); err != nil {
		if isUniqueViolation(err) {
			return ErrConflict{Msg: "new account number already exists"}
		}
		return err
	}

	batch := &pgx.Batch{}
	batch.Queue(pgRenumberTxnsSQL, newAccNo, oldAccNo)
	batch.Queue(pgRenumberLockersSQL, newAccNo, oldAccNo)
	batch.Queue(pgRenumberRequestsSQL, newAccNo, oldAccNo)
	btresults := tx.SendBatch(ctx, batch)
	for i := 0; i < 3; i++ {
		if _, err := btresults.Exec(); err != nil {
			btresults.Close()
			return err
		}
	}
	return btresults.Close()
}

func (pg *PostgresEndpoint) CreateLocker(ctx context.Context, lkr Locker) error {
	conn, err := pg.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err = conn.Exec(ctx, pgInsertLockerSQL, lkr.AccNo, lkr.LockerKey); err != nil {
		return lockerInsertErr(err, lkr.AccNo)
	}
	return nil
}

func (pg *PostgresEndpoint) GetLocker(ctx context.Context, accNo int64) (*Locker, error) {
	conn, err := pg.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	var lkr Locker
	row := conn.QueryRow(ctx, pgSelectLockerSQL, accNo)
	if err = row.Scan(&lkr.AccNo, &lkr.LockerKey, &lkr.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound{AccNo: accNo}
		}
		return nil, err
	}
	return &lkr, nil
}

func (pg *PostgresEndpoint) InsertRequest(ctx context.Context, req Request) error {
	conn, err := pg.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	_, err = conn.Exec(ctx, pgInsertRequestSQL,
		req.ID.Int64(), req.AccNo, req.Type, req.Payload, req.Status)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrConflict{Msg: "a pending request of this type already exists"}
		}
		return err
	}
	return nil
}

func (pg *PostgresEndpoint) GetRequest(ctx context.Context, id snowflake.ID) (*Request, error) {
	conn, err := pg.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	req, err := scanRequest(conn.QueryRow(ctx, pgSelectRequestSQL, id.Int64()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound{}
		}
		return nil, err
	}
	return req, nil
}

func (pg *PostgresEndpoint) ListRequests(ctx context.Context) ([]Request, error) {
	conn, err := pg.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, pgListRequestsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reqs := []Request{}
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, *req)
	}
	return reqs, rows.Err()
}

func (pg *PostgresEndpoint) RejectRequest(ctx context.Context, id snowflake.ID) error {
	conn, err := pg.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tag, err := conn.Exec(ctx, pgRejectRequestSQL, id.Int64())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrInvalidState{Status: StatusRejected}
	}
	return nil
}

func (pg *PostgresEndpoint) ApproveCreateAccount(ctx context.Context, id snowflake.ID, acct Account) error {
	conn, err := pg.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tx, err := conn.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return err
	}
	defer pg.rollback(ctx, tx, "approve create account")

	if _, err = tx.Exec(ctx, pgInsertAccountSQL, acct.AccNo, acct.Name, acct.Balance); err != nil {
		if isUniqueViolation(err) {
			return ErrConflict{Msg: "account number already exists"}
		}
		return err
	}
	zero := decimal.Zero
	if _, err = tx.Exec(ctx, pgInsertTxnSQL, acct.AccNo, TxnOpen, acct.Balance, zero, acct.Balance); err != nil {
		return err
	}
	if err = pg.approveInTx(ctx, tx, id, acct.AccNo); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (pg *PostgresEndpoint) ApproveCreateLocker(ctx context.Context, id snowflake.ID, lkr Locker) error {
	conn, err := pg.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tx, err := conn.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return err
	}
	defer pg.rollback(ctx, tx, "approve create locker")

	if _, err = tx.Exec(ctx, pgInsertLockerSQL, lkr.AccNo, lkr.LockerKey); err != nil {
		return lockerInsertErr(err, lkr.AccNo)
	}
	if err = pg.approveInTx(ctx, tx, id, lkr.AccNo); err != nil {
		return err
	}
	// FK checks are deferred, so a vanished account surfaces here
	return lockerInsertErr(tx.Commit(ctx), lkr.AccNo)
}

func (pg *PostgresEndpoint) ApproveUpdateAccount(ctx context.Context, id snowflake.ID, oldAccNo, newAccNo int64, name string) error {
	conn, err := pg.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tx, err := conn.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return err
	}
	defer pg.rollback(ctx, tx, "approve update account")

	if err = pg.renumberInTx(ctx, tx, oldAccNo, newAccNo, name); err != nil {
		return err
	}
	// the cascade above has already moved the request row to the new
	// number, so the guard below sees it there
	if err = pg.approveInTx(ctx, tx, id, newAccNo); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (pg *PostgresEndpoint) approveInTx(ctx context.Context, tx pgx.Tx, id snowflake.ID, accNo int64) error {
	tag, err := tx.Exec(ctx, pgApproveRequestSQL, accNo, id.Int64())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrInvalidState{Status: StatusApproved}
	}
	return nil
}

func (pg *PostgresEndpoint) WipeAll(ctx context.Context) error {
	conn, err := pg.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tx, err := conn.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return err
	}
	defer pg.rollback(ctx, tx, "wipe")

	for _, table := range []string{"transactions", "requests", "lockers", "accounts"} {
		if _, err = tx.Exec(ctx, "DELETE FROM "+table+";"); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (pg *PostgresEndpoint) rollback(ctx context.Context, tx pgx.Tx, op string) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		pg.log.Err(err).Str("op", op).Msg("transaction rollback fail")
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequest(row rowScanner) (*Request, error) {
	var (
		req Request
		id  int64
	)
	err := row.Scan(&id, &req.AccNo, &req.Type, &req.Payload, &req.Status, &req.CreatedAt)
	if err != nil {
		return nil, err
	}
	req.ID = snowflake.ParseInt64(id)
	return &req, nil
}

func isUniqueViolation(err error) bool {
	var pgerr *pgconn.PgError
	return errors.As(err, &pgerr) && pgerr.Code == pgUniqueViolation
}

// lockerInsertErr separates "locker already exists" from "account does
// not exist"; the lockers PK and its accounts FK raise distinct codes.
func lockerInsertErr(err error, accNo int64) error {
	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		switch pgerr.Code {
		case pgUniqueViolation:
			return ErrConflict{Msg: "locker already exists for this account"}
		case "23503": // foreign_key_violation
			return ErrNotFound{AccNo: accNo}
		}
	}
	return err
}
