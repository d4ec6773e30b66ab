package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openbookshq/openbooks/internal/core/domain"
	portsrepo "github.com/openbookshq/openbooks/internal/core/ports/repositories"
)

type PgxJournalRepository struct {
	BaseRepository
}

func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

const entryColumns = `entry_id, company_id, entry_date, description,
	created_at, created_by, last_updated_at, last_updated_by`

func scanEntry(row pgx.Row) (*domain.JournalEntry, error) {
	var e domain.JournalEntry
	err := row.Scan(
		&e.EntryID, &e.CompanyID, &e.EntryDate, &e.Description,
		&e.CreatedAt, &e.CreatedBy, &e.LastUpdatedAt, &e.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func scanLine(row pgx.Row) (*domain.JournalLine, error) {
	var l domain.JournalLine
	err := row.Scan(&l.LineID, &l.EntryID, &l.AccountID, &l.Debit, &l.Credit, &l.Position)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// SaveEntry persists the entry header and all of its lines in one database
// transaction. The header insert returns the assigned entry ID; the lines are
// batch-inserted against it, and only then does the transaction commit. A
// failure at any step rolls everything back, so a partial entry is never
// observable.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) (*domain.JournalEntry, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	headerQuery := `
		INSERT INTO journal_entries (company_id, entry_date, description,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING entry_id;
	`
	err = tx.QueryRow(ctx, headerQuery,
		entry.CompanyID, entry.EntryDate, entry.Description,
		entry.CreatedAt, entry.CreatedBy, entry.LastUpdatedAt, entry.LastUpdatedBy,
	).Scan(&entry.EntryID)
	if err != nil {
		return nil, mapWriteError(err, "insert journal entry")
	}

	lineQuery := `
		INSERT INTO journal_lines (entry_id, account_id, debit, credit, position)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING line_id;
	`
	batch := &pgx.Batch{}
	for i := range lines {
		lines[i].EntryID = entry.EntryID
		batch.Queue(lineQuery, entry.EntryID, lines[i].AccountID, lines[i].Debit, lines[i].Credit, lines[i].Position)
	}

	results := tx.SendBatch(ctx, batch)
	for i := range lines {
		if err := results.QueryRow().Scan(&lines[i].LineID); err != nil {
			results.Close()
			return nil, mapWriteError(err, "insert journal line")
		}
	}
	if err := results.Close(); err != nil {
		return nil, mapWriteError(err, "flush journal line batch")
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	entry.Lines = lines
	return &entry, nil
}

func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID int64) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE entry_id = $1;`
	entry, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		return nil, mapReadError(err, "find journal entry by id")
	}
	return entry, nil
}

func (r *PgxJournalRepository) FindLinesByEntryID(ctx context.Context, entryID int64) ([]domain.JournalLine, error) {
	query := `
		SELECT line_id, entry_id, account_id, debit, credit, position
		FROM journal_lines
		WHERE entry_id = $1
		ORDER BY position;
	`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, mapReadError(err, "find lines by entry id")
	}
	defer rows.Close()

	var lines []domain.JournalLine
	for rows.Next() {
		l, err := scanLine(rows)
		if err != nil {
			return nil, mapReadError(err, "scan journal line row")
		}
		lines = append(lines, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, mapReadError(err, "iterate journal line rows")
	}
	return lines, nil
}

func (r *PgxJournalRepository) FindLinesByEntryIDs(ctx context.Context, entryIDs []int64) (map[int64][]domain.JournalLine, error) {
	linesByEntry := make(map[int64][]domain.JournalLine, len(entryIDs))
	if len(entryIDs) == 0 {
		return linesByEntry, nil
	}

	query := `
		SELECT line_id, entry_id, account_id, debit, credit, position
		FROM journal_lines
		WHERE entry_id = ANY($1)
		ORDER BY entry_id, position;
	`
	rows, err := r.Pool.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, mapReadError(err, "find lines by entry ids")
	}
	defer rows.Close()

	for rows.Next() {
		l, err := scanLine(rows)
		if err != nil {
			return nil, mapReadError(err, "scan journal line row")
		}
		linesByEntry[l.EntryID] = append(linesByEntry[l.EntryID], *l)
	}
	if err := rows.Err(); err != nil {
		return nil, mapReadError(err, "iterate journal line rows")
	}
	return linesByEntry, nil
}

func (r *PgxJournalRepository) ListEntriesByCompany(ctx context.Context, companyID int64, limit int) ([]domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries
		WHERE company_id = $1
		ORDER BY entry_date DESC, entry_id DESC
		LIMIT $2;`
	rows, err := r.Pool.Query(ctx, query, companyID, limit)
	if err != nil {
		return nil, mapReadError(err, "list entries by company")
	}
	defer rows.Close()

	var entries []domain.JournalEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, mapReadError(err, "scan journal entry row")
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, mapReadError(err, "iterate journal entry rows")
	}
	return entries, nil
}

// SumByAccountType aggregates posted debit and credit totals per account type
// in SQL, joining lines to their accounts within the company.
func (r *PgxJournalRepository) SumByAccountType(ctx context.Context, companyID int64) ([]domain.AccountTypeTotals, error) {
	query := `
		SELECT a.account_type, COALESCE(SUM(l.debit), 0), COALESCE(SUM(l.credit), 0)
		FROM journal_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		JOIN accounts a ON a.account_id = l.account_id
		WHERE e.company_id = $1
		GROUP BY a.account_type
		ORDER BY a.account_type;
	`
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, mapReadError(err, "sum by account type")
	}
	defer rows.Close()

	var totals []domain.AccountTypeTotals
	for rows.Next() {
		var t domain.AccountTypeTotals
		if err := rows.Scan(&t.AccountType, &t.Debits, &t.Credits); err != nil {
			return nil, mapReadError(err, "scan account type totals row")
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, mapReadError(err, "iterate account type totals rows")
	}
	return totals, nil
}
