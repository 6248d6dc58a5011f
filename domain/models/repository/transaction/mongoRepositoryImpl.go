package transaction_repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/models/entities"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/payment"
)

const defaultCollection = "transactions"

// transactionDoc is the persisted shape: decimals as strings to keep exact
// values, method as its wire name.
type transactionDoc struct {
	TransactionId string                  `bson:"transactionId"`
	ProductId     string                  `bson:"productId"`
	Title         string                  `bson:"title"`
	SellerId      uint64                  `bson:"sellerId"`
	StoreName     string                  `bson:"storeName"`
	BuyerId       uint64                  `bson:"buyerId"`
	Amount        string                  `bson:"amount"`
	Commission    string                  `bson:"commission"`
	Tax           string                  `bson:"tax"`
	Net           string                  `bson:"net"`
	Currency      string                  `bson:"currency"`
	Method        string                  `bson:"method"`
	DeliveryType  string                  `bson:"deliveryType"`
	Billing       entities.BillingDetails `bson:"billing"`
	CreatedAt     time.Time               `bson:"createdAt"`
}

type iMongoRepositoryImpl struct {
	collection *mongo.Collection
}

func NewMongoRepository(database *mongo.Database) ITransactionRepository {
	return &iMongoRepositoryImpl{collection: database.Collection(defaultCollection)}
}

func (repository iMongoRepositoryImpl) InsertAll(ctx context.Context, transactions []*entities.Transaction) error {
	documents := make([]interface{}, 0, len(transactions))
	for _, transaction := range transactions {
		documents = append(documents, toDoc(transaction))
	}

	if _, err := repository.collection.InsertMany(ctx, documents); err != nil {
		return errors.Wrap(err, "InsertMany transactions failed")
	}
	return nil
}

func (repository iMongoRepositoryImpl) FindById(ctx context.Context, transactionId string) (*entities.Transaction, error) {
	var document transactionDoc
	err := repository.collection.FindOne(ctx, bson.D{{Key: "transactionId", Value: transactionId}}).Decode(&document)
	if err != nil {
		return nil, errors.Wrapf(err, "FindOne transaction %s failed", transactionId)
	}
	return fromDoc(&document)
}

func (repository iMongoRepositoryImpl) FindByBuyerId(ctx context.Context, buyerId uint64) ([]*entities.Transaction, error) {
	return repository.findByFilter(ctx, bson.D{{Key: "buyerId", Value: buyerId}})
}

func (repository iMongoRepositoryImpl) FindBySellerId(ctx context.Context, sellerId uint64) ([]*entities.Transaction, error) {
	return repository.findByFilter(ctx, bson.D{{Key: "sellerId", Value: sellerId}})
}

func (repository iMongoRepositoryImpl) FindAll(ctx context.Context) ([]*entities.Transaction, error) {
	return repository.findByFilter(ctx, bson.D{})
}

func (repository iMongoRepositoryImpl) Count(ctx context.Context) (int64, error) {
	count, err := repository.collection.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, errors.Wrap(err, "CountDocuments transactions failed")
	}
	return count, nil
}

func (repository iMongoRepositoryImpl) findByFilter(ctx context.Context, filter bson.D) ([]*entities.Transaction, error) {
	cursor, err := repository.collection.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "Find transactions failed")
	}
	defer func() { _ = cursor.Close(ctx) }()

	transactions := make([]*entities.Transaction, 0, 16)
	for cursor.Next(ctx) {
		var document transactionDoc
		if err := cursor.Decode(&document); err != nil {
			return nil, errors.Wrap(err, "Decode transaction failed")
		}
		transaction, err := fromDoc(&document)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	if err := cursor.Err(); err != nil {
		return nil, errors.Wrap(err, "transactions cursor failed")
	}
	return transactions, nil
}

func toDoc(transaction *entities.Transaction) *transactionDoc {
	return &transactionDoc{
		TransactionId: transaction.TransactionId,
		ProductId:     transaction.ProductId,
		Title:         transaction.Title,
		SellerId:      transaction.SellerId,
		StoreName:     transaction.StoreName,
		BuyerId:       transaction.BuyerId,
		Amount:        transaction.Amount.String(),
		Commission:    transaction.Commission.String(),
		Tax:           transaction.Tax.String(),
		Net:           transaction.Net.String(),
		Currency:      transaction.Currency,
		Method:        transaction.Method.String(),
		DeliveryType:  transaction.DeliveryType,
		Billing:       transaction.Billing,
		CreatedAt:     transaction.CreatedAt,
	}
}

func fromDoc(document *transactionDoc) (*entities.Transaction, error) {
	amount, err := decimal.NewFromString(document.Amount)
	if err != nil {
		return nil, errors.Wrap(err, "invalid amount in transaction document")
	}
	commission, err := decimal.NewFromString(document.Commission)
	if err != nil {
		return nil, errors.Wrap(err, "invalid commission in transaction document")
	}
	tax, err := decimal.NewFromString(document.Tax)
	if err != nil {
		return nil, errors.Wrap(err, "invalid tax in transaction document")
	}
	net, err := decimal.NewFromString(document.Net)
	if err != nil {
		return nil, errors.Wrap(err, "invalid net in transaction document")
	}
	method, err := payment.FromString(document.Method)
	if err != nil {
		return nil, errors.Wrap(err, "invalid method in transaction document")
	}

	return &entities.Transaction{
		TransactionId: document.TransactionId,
		ProductId:     document.ProductId,
		Title:         document.Title,
		SellerId:      document.SellerId,
		StoreName:     document.StoreName,
		BuyerId:       document.BuyerId,
		Amount:        amount,
		Commission:    commission,
		Tax:           tax,
		Net:           net,
		Currency:      document.Currency,
		Method:        method,
		DeliveryType:  document.DeliveryType,
		Billing:       document.Billing,
		CreatedAt:     document.CreatedAt,
	}, nil
}
