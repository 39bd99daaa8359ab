package stores

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}
	return db, mock
}

func TestAppendTransactionRef_SingleAtomicUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewInvestmentStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE `investments` SET `transactions`=JSON_ARRAY_APPEND(COALESCE(transactions, JSON_ARRAY()), '$', ?),`updated_at`=? WHERE id = ?",
	)).WithArgs("42", sqlmock.AnyArg(), 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := store.AppendTransactionRef(context.Background(), 7, "42"); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestAppendTransactionRef_MissingInvestment(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewInvestmentStore(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `investments`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := store.AppendTransactionRef(context.Background(), 99, "42")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestRemoveTransactionRef_GuardedByMembership(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewInvestmentStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE `investments` SET `transactions`=JSON_REMOVE(transactions, JSON_UNQUOTE(JSON_SEARCH(transactions, 'one', ?))),`updated_at`=? WHERE id = ? AND JSON_SEARCH(transactions, 'one', ?) IS NOT NULL",
	)).WithArgs("42", sqlmock.AnyArg(), 7, "42").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := store.RemoveTransactionRef(context.Background(), 7, "42"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestRemoveTransactionRef_AbsentRef(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewInvestmentStore(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `investments`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := store.RemoveTransactionRef(context.Background(), 7, "404")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDelete_MissingRowIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewInvestmentStore(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `investments`").
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	if err := store.Delete(context.Background(), 5); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
