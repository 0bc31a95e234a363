package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"foodbridge/internal/domain/repository"
	mockRepo "foodbridge/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// testNow is noon UTC so day arithmetic never straddles midnight.
var testNow = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return testNow
}

func ptr[T any](v T) *T {
	return &v
}

// expectTx runs the transaction callback against factory and returns what it returns.
func expectTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
