package frame

type HeaderEnum string

const (
	HeaderSessionId    HeaderEnum = "SESSION_ID"
	HeaderBuyerId      HeaderEnum = "BUYER_ID"
	HeaderSellerId     HeaderEnum = "SELLER_ID"
	HeaderFuture       HeaderEnum = "FUTURE"
	HeaderEvent        HeaderEnum = "EVENT"
	HeaderMethod       HeaderEnum = "METHOD"
	HeaderTransactions HeaderEnum = "TRANSACTIONS"
)

// IFrame is the carrier passed between checkout states: a loose header map
// plus a body holding the checkout session.
type IFrame interface {
	Header() IFrameHeader
	Body() IFrameBody
	Copy() IFrame
	CopyFrom(iFrame IFrame)
}

type IFrameHeader interface {
	KeyExists(key string) bool
	Value(key string) interface{}
	Copy() IFrameHeader
	CopyFrom(header IFrameHeader)
	CopyIfAbsent(header IFrameHeader)
}

type IFrameBody interface {
	SetContent(body interface{})
	Content() interface{}
	Copy() IFrameBody
	CopyFrom(body IFrameBody)
}
