package transaction_repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/models/entities"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/payment"
)

// SQLite keeps the history in a local embedded file, the server-side analog
// of the original deployment's browser-local persistence.

const transactionSchema = `
CREATE TABLE IF NOT EXISTS transactions (
	transaction_id TEXT PRIMARY KEY,
	product_id     TEXT NOT NULL,
	title          TEXT NOT NULL,
	seller_id      INTEGER NOT NULL,
	store_name     TEXT NOT NULL,
	buyer_id       INTEGER NOT NULL,
	amount         TEXT NOT NULL,
	commission     TEXT NOT NULL,
	tax            TEXT NOT NULL,
	net            TEXT NOT NULL,
	currency       TEXT NOT NULL,
	method         TEXT NOT NULL,
	delivery_type  TEXT NOT NULL,
	billing_name   TEXT NOT NULL,
	billing_email  TEXT NOT NULL,
	billing_phone  TEXT NOT NULL,
	billing_addr   TEXT NOT NULL,
	billing_city   TEXT NOT NULL,
	billing_prov   TEXT NOT NULL,
	created_at     TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_transactions_buyer  ON transactions(buyer_id);
CREATE INDEX IF NOT EXISTS idx_transactions_seller ON transactions(seller_id);
`

const insertTransactionQuery = `
INSERT INTO transactions (
	transaction_id, product_id, title, seller_id, store_name, buyer_id,
	amount, commission, tax, net, currency, method, delivery_type,
	billing_name, billing_email, billing_phone, billing_addr, billing_city, billing_prov,
	created_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

const selectTransactionColumns = `
SELECT transaction_id, product_id, title, seller_id, store_name, buyer_id,
	amount, commission, tax, net, currency, method, delivery_type,
	billing_name, billing_email, billing_phone, billing_addr, billing_city, billing_prov,
	created_at
FROM transactions`

type transactionRow struct {
	TransactionId string    `db:"transaction_id"`
	ProductId     string    `db:"product_id"`
	Title         string    `db:"title"`
	SellerId      uint64    `db:"seller_id"`
	StoreName     string    `db:"store_name"`
	BuyerId       uint64    `db:"buyer_id"`
	Amount        string    `db:"amount"`
	Commission    string    `db:"commission"`
	Tax           string    `db:"tax"`
	Net           string    `db:"net"`
	Currency      string    `db:"currency"`
	Method        string    `db:"method"`
	DeliveryType  string    `db:"delivery_type"`
	BillingName   string    `db:"billing_name"`
	BillingEmail  string    `db:"billing_email"`
	BillingPhone  string    `db:"billing_phone"`
	BillingAddr   string    `db:"billing_addr"`
	BillingCity   string    `db:"billing_city"`
	BillingProv   string    `db:"billing_prov"`
	CreatedAt     time.Time `db:"created_at"`
}

type iSQLiteRepositoryImpl struct {
	db *sqlx.DB
}

func NewSQLiteRepository(path string) (ITransactionRepository, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite transaction store failed")
	}

	if _, err := db.Exec(transactionSchema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "create transactions schema failed")
	}

	return &iSQLiteRepositoryImpl{db: db}, nil
}

func (repository iSQLiteRepositoryImpl) InsertAll(ctx context.Context, transactions []*entities.Transaction) error {
	tx, err := repository.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin transaction insert failed")
	}

	for _, transaction := range transactions {
		_, err := tx.ExecContext(ctx, insertTransactionQuery,
			transaction.TransactionId, transaction.ProductId, transaction.Title,
			transaction.SellerId, transaction.StoreName, transaction.BuyerId,
			transaction.Amount.String(), transaction.Commission.String(),
			transaction.Tax.String(), transaction.Net.String(),
			transaction.Currency, transaction.Method.String(), transaction.DeliveryType,
			transaction.Billing.FullName, transaction.Billing.Email, transaction.Billing.Phone,
			transaction.Billing.Address, transaction.Billing.City, transaction.Billing.Province,
			transaction.CreatedAt)
		if err != nil {
			_ = tx.Rollback()
			return errors.Wrapf(err, "insert transaction %s failed", transaction.TransactionId)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit transaction insert failed")
	}
	return nil
}

func (repository iSQLiteRepositoryImpl) FindById(ctx context.Context, transactionId string) (*entities.Transaction, error) {
	var row transactionRow
	err := repository.db.GetContext(ctx, &row,
		selectTransactionColumns+" WHERE transaction_id = ?", transactionId)
	if err != nil {
		return nil, errors.Wrapf(err, "select transaction %s failed", transactionId)
	}
	return fromRow(&row)
}

func (repository iSQLiteRepositoryImpl) FindByBuyerId(ctx context.Context, buyerId uint64) ([]*entities.Transaction, error) {
	return repository.findWhere(ctx, " WHERE buyer_id = ? ORDER BY created_at", buyerId)
}

func (repository iSQLiteRepositoryImpl) FindBySellerId(ctx context.Context, sellerId uint64) ([]*entities.Transaction, error) {
	return repository.findWhere(ctx, " WHERE seller_id = ? ORDER BY created_at", sellerId)
}

func (repository iSQLiteRepositoryImpl) FindAll(ctx context.Context) ([]*entities.Transaction, error) {
	return repository.findWhere(ctx, " ORDER BY created_at")
}

func (repository iSQLiteRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repository.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM transactions"); err != nil {
		return 0, errors.Wrap(err, "count transactions failed")
	}
	return count, nil
}

func (repository iSQLiteRepositoryImpl) findWhere(ctx context.Context, clause string, args ...interface{}) ([]*entities.Transaction, error) {
	var rows []transactionRow
	if err := repository.db.SelectContext(ctx, &rows, selectTransactionColumns+clause, args...); err != nil {
		return nil, errors.Wrap(err, "select transactions failed")
	}

	transactions := make([]*entities.Transaction, 0, len(rows))
	for i := range rows {
		transaction, err := fromRow(&rows[i])
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, nil
}

func fromRow(row *transactionRow) (*entities.Transaction, error) {
	amount, err := decimal.NewFromString(row.Amount)
	if err != nil {
		return nil, errors.Wrap(err, "invalid amount in transaction row")
	}
	commission, err := decimal.NewFromString(row.Commission)
	if err != nil {
		return nil, errors.Wrap(err, "invalid commission in transaction row")
	}
	tax, err := decimal.NewFromString(row.Tax)
	if err != nil {
		return nil, errors.Wrap(err, "invalid tax in transaction row")
	}
	net, err := decimal.NewFromString(row.Net)
	if err != nil {
		return nil, errors.Wrap(err, "invalid net in transaction row")
	}
	method, err := payment.FromString(row.Method)
	if err != nil {
		return nil, errors.Wrap(err, "invalid method in transaction row")
	}

	return &entities.Transaction{
		TransactionId: row.TransactionId,
		ProductId:     row.ProductId,
		Title:         row.Title,
		SellerId:      row.SellerId,
		StoreName:     row.StoreName,
		BuyerId:       row.BuyerId,
		Amount:        amount,
		Commission:    commission,
		Tax:           tax,
		Net:           net,
		Currency:      row.Currency,
		Method:        method,
		DeliveryType:  row.DeliveryType,
		Billing: entities.BillingDetails{
			FullName: row.BillingName,
			Email:    row.BillingEmail,
			Phone:    row.BillingPhone,
			Address:  row.BillingAddr,
			City:     row.BillingCity,
			Province: row.BillingProv,
		},
		CreatedAt: row.CreatedAt,
	}, nil
}
