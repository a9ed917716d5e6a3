package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/dmarochko/emergency_alert_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCreate_AssignsSequentialIDs(t *testing.T) {
	repo := NewMemoryAlertRepository()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		alert := &models.Alert{RawMessage: "fire", Status: models.StatusPending}
		require.NoError(t, repo.Create(ctx, alert))
		assert.Equal(t, i, alert.ID)
		assert.False(t, alert.CreatedAt.IsZero())
	}

	alerts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 5)
	for i, alert := range alerts {
		assert.Equal(t, i, alert.ID)
	}
}

func TestMemoryCreate_ConcurrentSubmissions(t *testing.T) {
	repo := NewMemoryAlertRepository()
	ctx := context.Background()
	const n = 100

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			alert := &models.Alert{RawMessage: "flood", Status: models.StatusPending}
			assert.NoError(t, repo.Create(ctx, alert))
		}()
	}
	wg.Wait()

	// Идентификаторы идут подряд без пропусков и дубликатов
	alerts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, n)

	seen := make(map[int]bool, n)
	for _, alert := range alerts {
		assert.False(t, seen[alert.ID], "duplicate id %d", alert.ID)
		assert.GreaterOrEqual(t, alert.ID, 0)
		assert.Less(t, alert.ID, n)
		seen[alert.ID] = true
	}
}

func TestMemoryApprove_Success(t *testing.T) {
	repo := NewMemoryAlertRepository()
	ctx := context.Background()

	alert := &models.Alert{
		ReporterName: "Anna",
		RawMessage:   "fire at block 7",
		Status:       models.StatusPending,
	}
	require.NoError(t, repo.Create(ctx, alert))

	approved, err := repo.Approve(ctx, alert.ID, "crew dispatched")
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, approved.Status)
	assert.Equal(t, "crew dispatched", approved.AdminNote)
	require.NotNil(t, approved.ApprovedAt)

	// Остальные поля не изменились
	assert.Equal(t, alert.ID, approved.ID)
	assert.Equal(t, "Anna", approved.ReporterName)
	assert.Equal(t, "fire at block 7", approved.RawMessage)
}

func TestMemoryApprove_NotFound(t *testing.T) {
	repo := NewMemoryAlertRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Alert{RawMessage: "smoke", Status: models.StatusPending}))

	_, err := repo.Approve(ctx, 5, "note")
	assert.True(t, errors.Is(err, models.ErrAlertNotFound))

	_, err = repo.Approve(ctx, -1, "note")
	assert.True(t, errors.Is(err, models.ErrAlertNotFound))

	// Коллекция не изменилась
	alerts, listErr := repo.List(ctx)
	require.NoError(t, listErr)
	require.Len(t, alerts, 1)
	assert.Equal(t, models.StatusPending, alerts[0].Status)
}

func TestMemoryApprove_RepeatedApprovalOverwritesNote(t *testing.T) {
	repo := NewMemoryAlertRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Alert{RawMessage: "flood", Status: models.StatusPending}))

	first, err := repo.Approve(ctx, 0, "first note")
	require.NoError(t, err)

	second, err := repo.Approve(ctx, 0, "second note")
	require.NoError(t, err)

	assert.Equal(t, models.StatusApproved, second.Status)
	assert.Equal(t, "second note", second.AdminNote)
	require.NotNil(t, second.ApprovedAt)
	assert.False(t, second.ApprovedAt.Before(*first.ApprovedAt))

	alerts, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second note", alerts[0].AdminNote)
}

func TestMemoryList_ReturnsSnapshot(t *testing.T) {
	repo := NewMemoryAlertRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Alert{RawMessage: "one", Status: models.StatusPending}))

	alerts, err := repo.List(ctx)
	require.NoError(t, err)

	// Изменение снимка не затрагивает хранилище
	alerts[0].AdminNote = "mutated"

	fresh, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", fresh[0].AdminNote)
}
