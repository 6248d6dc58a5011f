package converter

import (
	"github.com/devfeel/mapper"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/models/entities"
)

type iConverterImpl struct {
}

func NewConverter() IConverter {
	_ = mapper.Register(&entities.Transaction{})
	_ = mapper.Register(&ReceiptItem{})
	return &iConverterImpl{}
}

// Map converts []*entities.Transaction to *Receipt.
func (iconv iConverterImpl) Map(in interface{}, out interface{}) (interface{}, error) {
	transactions, ok := in.([]*entities.Transaction)
	if !ok {
		return nil, errors.New("mapping from input type not supported")
	}

	if _, ok = out.(Receipt); !ok {
		return nil, errors.New("mapping to output type not supported")
	}

	return convert(transactions)
}

func convert(transactions []*entities.Transaction) (*Receipt, error) {
	if len(transactions) == 0 {
		return nil, errors.New("no transactions to convert")
	}

	receipt := &Receipt{
		BuyerName: transactions[0].Billing.FullName,
		Address:   transactions[0].Billing.Address,
		Items:     make([]*ReceiptItem, 0, len(transactions)),
	}

	total := decimal.Zero
	for _, transaction := range transactions {
		item := &ReceiptItem{}
		// same-named string fields copy over; money fields are formatted below
		if err := mapper.AutoMapper(transaction, item); err != nil {
			return nil, errors.Wrapf(err, "mapping transaction %s failed", transaction.TransactionId)
		}
		item.Method = transaction.Method.String()
		item.Amount = transaction.Currency + transaction.Amount.String()
		item.Commission = transaction.Currency + transaction.Commission.String()
		item.Tax = transaction.Currency + transaction.Tax.String()
		item.Net = transaction.Currency + transaction.Net.String()
		receipt.Items = append(receipt.Items, item)
		total = total.Add(transaction.Amount)
	}

	receipt.Total = transactions[0].Currency + total.String()
	return receipt, nil
}
