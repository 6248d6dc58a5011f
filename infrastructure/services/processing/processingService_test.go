package processing_service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/celstintech-maker/OMNI-MARKET-PLACE-sub000/infrastructure/future"
)

func TestConfirmSettlement_DeliversAfterDelay(t *testing.T) {
	service := NewProcessingService(50 * time.Millisecond)

	started := time.Now()
	futureData := service.ConfirmSettlement(context.Background(), "session-1").Get()
	elapsed := time.Since(started)

	require.NotNil(t, futureData)
	require.Nil(t, futureData.Error())
	require.Equal(t, "session-1", futureData.Data())
	require.GreaterOrEqual(t, elapsed, 50*time.Millisecond)
}

func TestConfirmSettlement_CanceledContext(t *testing.T) {
	service := NewProcessingService(5 * time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	started := time.Now()
	futureData := service.ConfirmSettlement(ctx, "session-1").Get()

	require.NotNil(t, futureData)
	require.NotNil(t, futureData.Error())
	require.Equal(t, future.NotAccepted, futureData.Error().Code())
	require.Less(t, time.Since(started), time.Second, "cancellation must not wait out the delay")
}

func TestConfirmSettlementMock_Immediate(t *testing.T) {
	service := NewProcessingServiceMock()

	futureData := service.ConfirmSettlement(context.Background(), "session-1").Get()
	require.Nil(t, futureData.Error())
	require.Equal(t, "session-1", futureData.Data())
}
