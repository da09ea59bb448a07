package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/rewipay-ledger/internal/models"
)

func TestEventPublisher_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockKafkaWriter(ctrl)
	event := models.TransactionEvent{
		EventID:       "e-1",
		TransactionID: 3,
		WalletAddress: "0xA",
		Type:          models.TransactionTypeUtilityPayment,
		Amount:        dec("-140"),
		Balance:       dec("9860"),
		Timestamp:     1700000000,
	}

	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			assert.Equal(t, []byte("0xA"), msgs[0].Key)

			var got map[string]any
			require.NoError(t, json.Unmarshal(msgs[0].Value, &got))
			assert.Equal(t, "utility_payment", got["type"])
			assert.Equal(t, float64(-140), got["amount"])
			assert.Equal(t, float64(3), got["transaction_id"])
			return nil
		})

	NewEventPublisher(writer).Publish(context.Background(), event)
}

func TestEventPublisher_WriteErrorIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockKafkaWriter(ctrl)
	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	assert.NotPanics(t, func() {
		NewEventPublisher(writer).Publish(context.Background(),
			models.TransactionEvent{TransactionID: 1, WalletAddress: "0xA"},
			models.TransactionEvent{TransactionID: 2, WalletAddress: "0xB"},
		)
	})
}

func TestEventPublisher_NoWriter(t *testing.T) {
	assert.NotPanics(t, func() {
		NewEventPublisher(nil).Publish(context.Background(), models.TransactionEvent{TransactionID: 1})
	})
}

func TestEventPublisher_NoEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No call is expected on the writer.
	NewEventPublisher(NewMockKafkaWriter(ctrl)).Publish(context.Background())
}
