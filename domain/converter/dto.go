package converter

// ReceiptItem is the display record of one settled transaction, handed to the
// caller for the receipt view. Monetary fields are formatted strings prefixed
// with the currency symbol.
type ReceiptItem struct {
	TransactionId string
	Title         string
	StoreName     string
	DeliveryType  string
	Method        string
	Amount        string
	Commission    string
	Tax           string
	Net           string
}

type Receipt struct {
	BuyerName string
	Address   string
	Items     []*ReceiptItem
	Total     string
}
