package progress_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_progress "github.com/hellodocs/flashdeck/internal/mocks/progress"
	"github.com/hellodocs/flashdeck/internal/progress"
)

func TestLedger_Add(t *testing.T) {
	t.Run("appends up to the limit", func(t *testing.T) {
		ledger := progress.NewLedger()
		for i := 0; i < progress.Limit; i++ {
			assert.True(t, ledger.Add(i, true))
		}
		assert.Equal(t, progress.Limit, ledger.Count())
		assert.False(t, ledger.CanAddMore())
	})

	t.Run("rejects the record past the limit without mutating", func(t *testing.T) {
		ledger := progress.NewLedger()
		for i := 0; i < progress.Limit; i++ {
			require.True(t, ledger.Add(i, true))
		}

		assert.False(t, ledger.Add(999, true))
		assert.Equal(t, progress.Limit, ledger.Count())
		assert.False(t, ledger.Contains(999))
	})

	t.Run("records carry the outcome and a timestamp", func(t *testing.T) {
		ledger := progress.NewLedger()
		require.True(t, ledger.Add(7, false))

		records := ledger.Records()
		require.Len(t, records, 1)
		assert.Equal(t, 7, records[0].FlashcardID)
		assert.False(t, records[0].IsCorrect)
		assert.WithinDuration(t, time.Now(), records[0].Timestamp, time.Minute)
	})
}

func TestLedger_Contains(t *testing.T) {
	ledger := progress.NewLedger()
	require.True(t, ledger.Add(1, true))
	require.True(t, ledger.Add(2, false))

	assert.True(t, ledger.Contains(1))
	assert.True(t, ledger.Contains(2))
	assert.False(t, ledger.Contains(3))
}

func TestLedger_Records_ReturnsCopy(t *testing.T) {
	ledger := progress.NewLedger()
	require.True(t, ledger.Add(1, true))

	records := ledger.Records()
	records[0].FlashcardID = 42

	assert.Equal(t, 1, ledger.Records()[0].FlashcardID)
}

func TestNewLedgerFromRecords(t *testing.T) {
	t.Run("restores records", func(t *testing.T) {
		ledger := progress.NewLedgerFromRecords([]progress.Record{
			{FlashcardID: 1, IsCorrect: true},
			{FlashcardID: 2, IsCorrect: false},
		})
		assert.Equal(t, 2, ledger.Count())
		assert.True(t, ledger.Contains(1))
	})

	t.Run("truncates beyond the limit", func(t *testing.T) {
		records := make([]progress.Record, progress.Limit+10)
		for i := range records {
			records[i] = progress.Record{FlashcardID: i}
		}
		ledger := progress.NewLedgerFromRecords(records)
		assert.Equal(t, progress.Limit, ledger.Count())
		assert.False(t, ledger.CanAddMore())
	})
}

func TestLedger_Migrate(t *testing.T) {
	ctx := context.Background()

	t.Run("empty ledger migrates trivially", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sender := mock_progress.NewMockBatchSender(ctrl)

		ledger := progress.NewLedger()
		assert.NoError(t, ledger.Migrate(ctx, sender, "token"))
	})

	t.Run("success sends all records and clears", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sender := mock_progress.NewMockBatchSender(ctrl)

		ledger := progress.NewLedger()
		require.True(t, ledger.Add(1, true))
		require.True(t, ledger.Add(2, false))

		sender.EXPECT().
			SendProgressBatch(ctx, "token", gomock.Len(2)).
			Return(nil)

		require.NoError(t, ledger.Migrate(ctx, sender, "token"))
		assert.Equal(t, 0, ledger.Count())
	})

	t.Run("failure leaves the ledger untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sender := mock_progress.NewMockBatchSender(ctrl)

		ledger := progress.NewLedger()
		require.True(t, ledger.Add(1, true))

		sender.EXPECT().
			SendProgressBatch(ctx, "token", gomock.Any()).
			Return(errors.New("network down"))

		err := ledger.Migrate(ctx, sender, "token")
		assert.Error(t, err)
		assert.Equal(t, 1, ledger.Count())
		assert.True(t, ledger.Contains(1))
	})
}
