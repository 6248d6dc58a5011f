package frame

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/domain/models/entities"
)

func TestFrameHeader(t *testing.T) {
	iFrame := Factory().
		SetDefaultHeader(HeaderSellerId, uint64(1001)).
		SetBody(11111111).Build()

	iFrame2 := Factory().
		SetDefaultHeader(HeaderBuyerId, uint64(9999999)).
		SetBody(222222222).Build()

	iFrame.Header().CopyFrom(iFrame2.Header())
	require.True(t, iFrame.Header().KeyExists(string(HeaderBuyerId)))
	require.Equal(t, uint64(9999999), iFrame.Header().Value(string(HeaderBuyerId)))
	require.Equal(t, 11111111, iFrame.Body().Content())
}

func TestFrameSession(t *testing.T) {
	session := &entities.CheckoutSession{SessionId: "s-1", BuyerId: 42}
	iFrame := Factory().SetSession(session).Build()

	require.Equal(t, "s-1", iFrame.Header().Value(string(HeaderSessionId)))
	require.Equal(t, uint64(42), iFrame.Header().Value(string(HeaderBuyerId)))
	require.Equal(t, session, iFrame.Body().Content())
}

func TestFrameCopy(t *testing.T) {
	iFrame := Factory().
		SetDefaultHeader(HeaderSellerId, uint64(7)).
		SetBody("body").Build()

	copied := FactoryOf(iFrame).SetDefaultHeader(HeaderBuyerId, uint64(8)).Build()
	require.Equal(t, uint64(7), copied.Header().Value(string(HeaderSellerId)))
	require.Equal(t, "body", copied.Body().Content())
	require.False(t, iFrame.Header().KeyExists(string(HeaderBuyerId)))
}
