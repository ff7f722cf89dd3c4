package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/huangsam/shsat/internal/contract"
	"github.com/huangsam/shsat/schema"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver
)

// Table names for estimate history.
const (
	estimatesTable     = "shsat_estimates"
	schoolChancesTable = "shsat_school_chances"
)

// HistoryStoreImpl implements the HistoryStore interface.
type HistoryStoreImpl struct {
	db         *sql.DB
	backend    schema.DatabaseBackend
	driverName string
}

var _ contract.HistoryStore = &HistoryStoreImpl{} // Compile-time check

// NewHistoryStore creates a new HistoryStore with the specified backend.
func NewHistoryStore(backend schema.DatabaseBackend, connStr string) (contract.HistoryStore, error) {
	var db *sql.DB
	var err error
	driverName := driverNameFor(backend)

	switch backend {
	case schema.SQLiteBackend:
		dbPath := connStr
		if dbPath == "" {
			dbPath = GetDBFilePath()
		}
		db, err = sql.Open(driverName, dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite database at %q: %w. Check that the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		dsn, err := withParseTime(connStr)
		if err != nil {
			return nil, fmt.Errorf("invalid MySQL connection string: %w. Check format: user:password@tcp(host:port)/dbname", err)
		}
		db, err = sql.Open(driverName, dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open MySQL database: %w. Check connection string format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open PostgreSQL database: %w. Check connection string format: host=... dbname=...", err)
		}

	case schema.NoneBackend:
		// Return a no-op store for disabled history
		return &HistoryStoreImpl{backend: backend}, nil

	default:
		return nil, fmt.Errorf("unsupported backend: %s", backend)
	}

	// Ping to verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		var connDetail string
		switch backend {
		case schema.MySQLBackend:
			connDetail = "Check that MySQL is running and the connection string is correct. Ensure user/password are valid."
		case schema.PostgreSQLBackend:
			connDetail = "Check that PostgreSQL is running and the connection string is correct. Ensure user/password are valid."
		default:
			connDetail = "Verify the database file is accessible."
		}
		return nil, fmt.Errorf("failed to connect to %s database: %w. %s", backend, err, connDetail)
	}

	if err := createHistoryTables(db, backend); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create history tables: %w", err)
	}

	return &HistoryStoreImpl{
		db:         db,
		backend:    backend,
		driverName: driverName,
	}, nil
}

// withParseTime makes the MySQL driver return DATETIME columns as time.Time.
func withParseTime(connStr string) (string, error) {
	cfg, err := mysql.ParseDSN(connStr)
	if err != nil {
		return "", err
	}
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	return cfg.FormatDSN(), nil
}

// createHistoryTables creates the history tables.
func createHistoryTables(db *sql.DB, backend schema.DatabaseBackend) error {
	tables := []struct {
		name  string
		query string
	}{
		{estimatesTable, getCreateEstimatesQuery(backend)},
		{schoolChancesTable, getCreateSchoolChancesQuery(backend)},
	}

	for _, table := range tables {
		if _, err := db.Exec(table.query); err != nil {
			return fmt.Errorf("failed to create table %s: %w", table.name, err)
		}
	}

	return nil
}

// getCreateEstimatesQuery returns the CREATE TABLE query for shsat_estimates.
func getCreateEstimatesQuery(backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(estimatesTable, backend)

	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				estimate_id BIGINT AUTO_INCREMENT PRIMARY KEY,
				created_at DATETIME(6) NOT NULL,
				curve VARCHAR(32) NOT NULL,
				math_raw INT NOT NULL,
				ela_raw INT NOT NULL,
				math_scaled INT NOT NULL,
				ela_scaled INT NOT NULL,
				composite INT NOT NULL,
				percentage DOUBLE NOT NULL,
				percentile VARCHAR(64) NOT NULL
			)
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				estimate_id BIGSERIAL PRIMARY KEY,
				created_at TIMESTAMPTZ NOT NULL,
				curve TEXT NOT NULL,
				math_raw INT NOT NULL,
				ela_raw INT NOT NULL,
				math_scaled INT NOT NULL,
				ela_scaled INT NOT NULL,
				composite INT NOT NULL,
				percentage DOUBLE PRECISION NOT NULL,
				percentile TEXT NOT NULL
			)
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				estimate_id INTEGER PRIMARY KEY AUTOINCREMENT,
				created_at TEXT NOT NULL,
				curve TEXT NOT NULL,
				math_raw INTEGER NOT NULL,
				ela_raw INTEGER NOT NULL,
				math_scaled INTEGER NOT NULL,
				ela_scaled INTEGER NOT NULL,
				composite INTEGER NOT NULL,
				percentage REAL NOT NULL,
				percentile TEXT NOT NULL
			)
		`, quotedTableName)
	}
}

// getCreateSchoolChancesQuery returns the CREATE TABLE query for shsat_school_chances.
func getCreateSchoolChancesQuery(backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(schoolChancesTable, backend)

	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				estimate_id BIGINT NOT NULL,
				position INT NOT NULL,
				school VARCHAR(255) NOT NULL,
				cutoff INT NOT NULL,
				chance INT NOT NULL,
				discovery VARCHAR(64) NOT NULL,
				PRIMARY KEY (estimate_id, position)
			)
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				estimate_id BIGINT NOT NULL,
				position INT NOT NULL,
				school TEXT NOT NULL,
				cutoff INT NOT NULL,
				chance INT NOT NULL,
				discovery TEXT NOT NULL,
				PRIMARY KEY (estimate_id, position)
			)
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				estimate_id INTEGER NOT NULL,
				position INTEGER NOT NULL,
				school TEXT NOT NULL,
				cutoff INTEGER NOT NULL,
				chance INTEGER NOT NULL,
				discovery TEXT NOT NULL,
				PRIMARY KEY (estimate_id, position)
			)
		`, quotedTableName)
	}
}

// RecordEstimate stores an estimate and its per-school rows in one transaction.
func (hs *HistoryStoreImpl) RecordEstimate(createdAt time.Time, est schema.Estimate) (int64, error) {
	// Skip for NoneBackend
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return 0, nil
	}

	tx, err := hs.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	estimateQuery := fmt.Sprintf(`INSERT INTO %s (created_at, curve, math_raw, ela_raw, math_scaled, ela_scaled, composite, percentage, percentile) VALUES (%s)`,
		quoteTableName(estimatesTable, hs.backend), placeholders(hs.backend, 9))
	args := []any{
		formatTime(createdAt, hs.backend), string(est.Curve), est.MathRaw, est.ELARaw,
		est.MathScaled, est.ELAScaled, est.CompositeScore, est.Percentage, est.Percentile,
	}

	var estimateID int64
	switch hs.backend {
	case schema.PostgreSQLBackend:
		err = tx.QueryRow(estimateQuery+" RETURNING estimate_id", args...).Scan(&estimateID)
	default: // SQLite and MySQL
		var result sql.Result
		result, err = tx.Exec(estimateQuery, args...)
		if err == nil {
			estimateID, err = result.LastInsertId()
		}
	}
	if err != nil {
		return 0, fmt.Errorf("failed to insert estimate: %w", err)
	}

	chanceQuery := fmt.Sprintf(`INSERT INTO %s (estimate_id, position, school, cutoff, chance, discovery) VALUES (%s)`,
		quoteTableName(schoolChancesTable, hs.backend), placeholders(hs.backend, 6))
	for i, s := range est.PerSchool {
		if _, err := tx.Exec(chanceQuery, estimateID, i, s.School, s.Cutoff, s.Chance, s.Discovery.String()); err != nil {
			return 0, fmt.Errorf("failed to insert school chance for %s: %w", s.School, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit estimate: %w", err)
	}
	return estimateID, nil
}

// Close closes the underlying connection.
func (hs *HistoryStoreImpl) Close() error {
	if hs.db != nil {
		return hs.db.Close()
	}
	return nil
}

// scanTime reads a timestamp column stored as text (SQLite) or a native type.
func (hs *HistoryStoreImpl) scanTime(scan func(dest ...any) error, dest ...any) (time.Time, error) {
	if hs.backend == schema.SQLiteBackend {
		var s string
		if err := scan(append(dest, &s)...); err != nil {
			return time.Time{}, err
		}
		return time.Parse(time.RFC3339Nano, s)
	}
	var t time.Time
	if err := scan(append(dest, &t)...); err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// GetStatus returns status information about the history store.
func (hs *HistoryStoreImpl) GetStatus() (schema.HistoryStatus, error) {
	status := schema.HistoryStatus{
		Backend:    string(hs.backend),
		Connected:  hs.db != nil,
		TableSizes: make(map[string]int64),
	}

	if hs.backend == schema.NoneBackend || hs.db == nil {
		return status, nil
	}

	quotedEstimates := quoteTableName(estimatesTable, hs.backend)
	row := hs.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", quotedEstimates))
	if err := row.Scan(&status.TotalEstimates); err != nil {
		return status, fmt.Errorf("failed to get total estimates: %w", err)
	}

	if status.TotalEstimates > 0 {
		row = hs.db.QueryRow(fmt.Sprintf("SELECT estimate_id, created_at FROM %s ORDER BY estimate_id DESC LIMIT 1", quotedEstimates))
		lastTime, err := hs.scanTime(row.Scan, &status.LastEstimateID)
		if err != nil {
			return status, fmt.Errorf("failed to get last estimate info: %w", err)
		}
		status.LastEstimateTime = lastTime

		row = hs.db.QueryRow(fmt.Sprintf("SELECT created_at FROM %s ORDER BY estimate_id ASC LIMIT 1", quotedEstimates))
		oldestTime, err := hs.scanTime(row.Scan)
		if err != nil {
			return status, fmt.Errorf("failed to get oldest estimate time: %w", err)
		}
		status.OldestEstimateTime = oldestTime
	}

	for _, table := range []string{estimatesTable, schoolChancesTable} {
		row = hs.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", quoteTableName(table, hs.backend)))
		var count int64
		if err := row.Scan(&count); err != nil {
			return status, fmt.Errorf("failed to get count for table %s: %w", table, err)
		}
		status.TableSizes[table] = count
	}

	return status, nil
}

// GetAllEstimates retrieves all recorded estimates ordered by ID.
func (hs *HistoryStoreImpl) GetAllEstimates() ([]schema.EstimateRecord, error) {
	// Skip for NoneBackend
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return nil, nil
	}

	query := fmt.Sprintf(`SELECT estimate_id, curve, math_raw, ela_raw, math_scaled, ela_scaled, composite, percentage, percentile, created_at
		FROM %s ORDER BY estimate_id`, quoteTableName(estimatesTable, hs.backend))
	rows, err := hs.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query estimates: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.EstimateRecord
	for rows.Next() {
		var r schema.EstimateRecord
		createdAt, err := hs.scanTime(rows.Scan, &r.EstimateID, &r.Curve, &r.MathRaw, &r.ELARaw,
			&r.MathScaled, &r.ELAScaled, &r.CompositeScore, &r.Percentage, &r.Percentile)
		if err != nil {
			return nil, fmt.Errorf("failed to scan estimate: %w", err)
		}
		r.CreatedAt = createdAt
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating estimates: %w", err)
	}
	return results, nil
}

// GetAllSchoolChances retrieves all recorded school rows in table order per estimate.
func (hs *HistoryStoreImpl) GetAllSchoolChances() ([]schema.SchoolChanceRecord, error) {
	// Skip for NoneBackend
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return nil, nil
	}

	query := fmt.Sprintf(`SELECT estimate_id, school, cutoff, chance, discovery
		FROM %s ORDER BY estimate_id, position`, quoteTableName(schoolChancesTable, hs.backend))
	rows, err := hs.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query school chances: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.SchoolChanceRecord
	for rows.Next() {
		var r schema.SchoolChanceRecord
		if err := rows.Scan(&r.EstimateID, &r.School, &r.Cutoff, &r.Chance, &r.Discovery); err != nil {
			return nil, fmt.Errorf("failed to scan school chance: %w", err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating school chances: %w", err)
	}
	return results, nil
}
