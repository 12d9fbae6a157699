package dbmetrics

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type fakeRecorder struct {
	mu         sync.Mutex
	operations []string
	statsCalls int
}

func (f *fakeRecorder) ObserveDBQuery(operation string, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.operations = append(f.operations, operation)
}

func (f *fakeRecorder) SetDBStats(_ sql.DBStats) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statsCalls++
}

func TestOperation(t *testing.T) {
	assert.Equal(t, "select", Operation("SELECT id FROM reservations"))
	assert.Equal(t, "update", Operation("  update reservations SET status = $1"))
	assert.Equal(t, "unknown", Operation("   "))
}

func TestDB_ObservesQueries(t *testing.T) {
	defer goleak.VerifyNone(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlMock.ExpectExec("UPDATE reservations").WillReturnResult(sqlmock.NewResult(0, 1))

	rec := &fakeRecorder{}
	stop := make(chan struct{})
	wrapped := Wrap(db, rec, time.Hour, stop)

	_, err = wrapped.ExecContext(context.Background(), "UPDATE reservations SET status = $1", "完了")
	require.NoError(t, err)
	close(stop)

	require.NoError(t, sqlMock.ExpectationsWereMet())

	// горутина сбора статистики должна завершиться после закрытия stop
	assert.Eventually(t, func() bool {
		rec.mu.Lock()
		defer rec.mu.Unlock()
		return rec.statsCalls >= 1
	}, time.Second, 10*time.Millisecond)

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Equal(t, []string{"update"}, rec.operations)
}
