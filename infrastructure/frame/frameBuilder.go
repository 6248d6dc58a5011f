package frame

import (
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/models/entities"
	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/infrastructure/future"
)

type Builder struct {
	body   IFrameBody
	header map[string]interface{}
}

func Factory() Builder {
	builder := &Builder{}
	builder.initBuilder(nil)
	return *builder
}

func FactoryOf(frame IFrame) Builder {
	builder := &Builder{}
	builder.initBuilder(frame)
	return *builder
}

func (builder *Builder) initBuilder(frame IFrame) {
	if frame != nil {
		frameHeader := frame.Header().(*iFrameHeaderImpl)
		builder.header = deepCopy(frameHeader.header)
		builder.body = NewBodyFrom(frame.Body())
	} else {
		builder.header = make(map[string]interface{}, 8)
		builder.body = NewBody()
	}
}

func (builder Builder) SetHeader(key string, value interface{}) Builder {
	builder.header[key] = value
	return builder
}

func (builder Builder) SetDefaultHeader(key HeaderEnum, value interface{}) Builder {
	builder.header[string(key)] = value
	return builder
}

func (builder Builder) SetBody(body interface{}) Builder {
	builder.body.SetContent(body)
	return builder
}

func (builder Builder) SetSession(session *entities.CheckoutSession) Builder {
	builder.body.SetContent(session)
	builder.header[string(HeaderSessionId)] = session.SessionId
	builder.header[string(HeaderBuyerId)] = session.BuyerId
	return builder
}

func (builder Builder) SetFuture(iFuture future.IFuture) Builder {
	builder.header[string(HeaderFuture)] = iFuture
	return builder
}

func (builder Builder) SetEvent(event interface{}) Builder {
	builder.header[string(HeaderEvent)] = event
	return builder
}

func (builder Builder) SetSellerId(sellerId uint64) Builder {
	builder.header[string(HeaderSellerId)] = sellerId
	return builder
}

func (builder Builder) SetTransactions(transactions []*entities.Transaction) Builder {
	builder.header[string(HeaderTransactions)] = transactions
	return builder
}

func (builder Builder) Build() IFrame {
	return newFrame(newHeader(builder.header), builder.body)
}
