package pgsql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/openbookshq/openbooks/internal/apperrors"
	"github.com/openbookshq/openbooks/internal/core/domain"
	"github.com/openbookshq/openbooks/internal/repositories/database/pgsql"
)

// --- Transaction stubs ---
//
// SaveEntry's commit discipline (header insert, batched line inserts, commit
// only after every line succeeded) is exercised against a stub transaction so
// the failure paths are reachable without a live database.

type stubRow struct {
	scan func(dest ...any) error
}

func (r stubRow) Scan(dest ...any) error { return r.scan(dest...) }

func idRow(id int64) stubRow {
	return stubRow{scan: func(dest ...any) error {
		*(dest[0].(*int64)) = id
		return nil
	}}
}

func errRow(err error) stubRow {
	return stubRow{scan: func(dest ...any) error { return err }}
}

type stubBatchResults struct {
	rows   []stubRow
	next   int
	closed bool
}

func (b *stubBatchResults) Exec() (pgconn.CommandTag, error) { return pgconn.CommandTag{}, nil }
func (b *stubBatchResults) Query() (pgx.Rows, error)         { return nil, errors.New("not implemented") }
func (b *stubBatchResults) Close() error                     { b.closed = true; return nil }

func (b *stubBatchResults) QueryRow() pgx.Row {
	row := b.rows[b.next]
	b.next++
	return row
}

type stubTx struct {
	headerRow stubRow
	batch     *stubBatchResults

	commits   int
	rollbacks int
	committed bool
}

func (t *stubTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }

func (t *stubTx) Commit(ctx context.Context) error {
	t.commits++
	t.committed = true
	return nil
}

func (t *stubTx) Rollback(ctx context.Context) error {
	if t.committed {
		return pgx.ErrTxClosed
	}
	t.rollbacks++
	t.committed = true
	return nil
}

func (t *stubTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, errors.New("not implemented")
}

func (t *stubTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return t.batch }
func (t *stubTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }

func (t *stubTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, errors.New("not implemented")
}

func (t *stubTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errors.New("not implemented")
}

func (t *stubTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (t *stubTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return t.headerRow }
func (t *stubTx) Conn() *pgx.Conn                                               { return nil }

type stubDB struct {
	tx *stubTx
}

func (d *stubDB) Begin(ctx context.Context) (pgx.Tx, error) { return d.tx, nil }

func (d *stubDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (d *stubDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return errRow(errors.New("not implemented"))
}

func (d *stubDB) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errors.New("not implemented")
}

// --- Test Suite ---

type JournalRepositoryTestSuite struct {
	suite.Suite
	ctx context.Context
}

func (suite *JournalRepositoryTestSuite) SetupTest() {
	suite.ctx = context.Background()
}

func (suite *JournalRepositoryTestSuite) newRepo(tx *stubTx) *pgsql.PgxJournalRepository {
	return &pgsql.PgxJournalRepository{BaseRepository: pgsql.BaseRepository{Pool: &stubDB{tx: tx}}}
}

func (suite *JournalRepositoryTestSuite) sampleEntry() (domain.JournalEntry, []domain.JournalLine) {
	entry := domain.JournalEntry{
		CompanyID:   42,
		EntryDate:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Description: "Invoice payment received",
	}
	lines := []domain.JournalLine{
		{AccountID: 101, Debit: decimal.NewFromInt(500), Position: 0},
		{AccountID: 102, Credit: decimal.NewFromInt(500), Position: 1},
	}
	return entry, lines
}

func (suite *JournalRepositoryTestSuite) TestSaveEntry_Success() {
	tx := &stubTx{
		headerRow: idRow(301),
		batch:     &stubBatchResults{rows: []stubRow{idRow(1), idRow(2)}},
	}
	repo := suite.newRepo(tx)
	entry, lines := suite.sampleEntry()

	saved, err := repo.SaveEntry(suite.ctx, entry, lines)

	suite.Require().NoError(err)
	suite.Equal(int64(301), saved.EntryID)
	suite.Require().Len(saved.Lines, 2)
	suite.Equal(int64(1), saved.Lines[0].LineID)
	suite.Equal(int64(301), saved.Lines[0].EntryID)
	suite.Equal(1, tx.commits)
	suite.Equal(0, tx.rollbacks, "a committed transaction must not be rolled back")
	suite.True(tx.batch.closed)
}

func (suite *JournalRepositoryTestSuite) TestSaveEntry_LineFailureRollsBackHeader() {
	// The header insert succeeds and returns an ID; the first line insert then
	// fails. The transaction must roll back so the header never becomes
	// visible without its lines.
	lineErr := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
	tx := &stubTx{
		headerRow: idRow(301),
		batch:     &stubBatchResults{rows: []stubRow{errRow(lineErr)}},
	}
	repo := suite.newRepo(tx)
	entry, lines := suite.sampleEntry()

	saved, err := repo.SaveEntry(suite.ctx, entry, lines)

	suite.Nil(saved)
	suite.ErrorIs(err, apperrors.ErrConstraintViolation)
	suite.Equal(0, tx.commits, "a failed line insert must never commit the header")
	suite.Equal(1, tx.rollbacks)
	suite.True(tx.batch.closed)
}

func (suite *JournalRepositoryTestSuite) TestSaveEntry_HeaderFailureRollsBack() {
	tx := &stubTx{
		headerRow: errRow(&pgconn.PgError{Code: "23502", Message: "null value in column"}),
		batch:     &stubBatchResults{},
	}
	repo := suite.newRepo(tx)
	entry, lines := suite.sampleEntry()

	saved, err := repo.SaveEntry(suite.ctx, entry, lines)

	suite.Nil(saved)
	suite.ErrorIs(err, apperrors.ErrConstraintViolation)
	suite.Equal(0, tx.commits)
	suite.Equal(1, tx.rollbacks)
}

func TestJournalRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(JournalRepositoryTestSuite))
}
