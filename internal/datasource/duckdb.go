// Package datasource loads price series for the indicator engine. The core
// itself is a pure computation; this package is the one-shot file loader
// feeding it.
package datasource

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/moznion/go-optional"
	"go.uber.org/zap"

	"github.com/theAfricanQuant/capstone/internal/logger"
	"github.com/theAfricanQuant/capstone/internal/series"
	"github.com/theAfricanQuant/capstone/pkg/errors"
)

// PriceSource loads a price series, optionally restricted to a time range.
type PriceSource interface {
	Load(start, end optional.Option[time.Time]) (*series.Series, error)
	Count(start, end optional.Option[time.Time]) (int, error)
	Close() error
}

// DuckDBPriceSource reads a CSV file of (time, price) rows through an
// in-memory DuckDB instance.
type DuckDBPriceSource struct {
	db     *sql.DB
	logger *logger.Logger
	sq     squirrel.StatementBuilderType
}

var _ PriceSource = (*DuckDBPriceSource)(nil)

// NewDuckDBPriceSource opens an in-memory DuckDB database and exposes the
// CSV file at path as a prices view. The CSV must have time and price
// columns; read_csv_auto infers the rest.
func NewDuckDBPriceSource(path string, log *logger.Logger) (*DuckDBPriceSource, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDataSourceUnavailable, "failed to open DuckDB", err)
	}

	log.Debug("initializing DuckDB price source", zap.String("path", path))

	// Raw SQL: squirrel doesn't support CREATE VIEW.
	query := fmt.Sprintf(`
		CREATE VIEW prices AS
		SELECT time, price FROM read_csv_auto('%s');
	`, path)

	if _, err := db.Exec(query); err != nil {
		_ = db.Close()

		return nil, errors.Wrapf(errors.ErrCodeQueryFailed, err, "failed to create prices view over %s", path)
	}

	return &DuckDBPriceSource{
		db:     db,
		logger: log,
		sq:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}, nil
}

// Load reads the price series ordered by time, bounded by the optional
// start and end (inclusive).
func (d *DuckDBPriceSource) Load(start, end optional.Option[time.Time]) (*series.Series, error) {
	q := d.sq.Select("time", "price").From("prices").OrderBy("time ASC")

	if start.IsSome() {
		q = q.Where(squirrel.GtOrEq{"time": start.Unwrap()})
	}

	if end.IsSome() {
		q = q.Where(squirrel.LtOrEq{"time": end.Unwrap()})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to build price query", err)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to query prices", err)
	}
	defer rows.Close()

	var (
		times  []time.Time
		values []float64
	)

	for rows.Next() {
		var (
			t time.Time
			v float64
		)

		if err := rows.Scan(&t, &v); err != nil {
			return nil, errors.Wrap(errors.ErrCodeDataParseFailed, "failed to scan price row", err)
		}

		times = append(times, t)
		values = append(values, v)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to read price rows", err)
	}

	if len(times) == 0 {
		return nil, errors.New(errors.ErrCodeNoDataFound, "no price rows in the requested range")
	}

	d.logger.Debug("loaded price series", zap.Int("rows", len(times)))

	return series.New(series.ColumnPrice, times, values)
}

// Count returns the number of price rows in the optional time range.
func (d *DuckDBPriceSource) Count(start, end optional.Option[time.Time]) (int, error) {
	q := d.sq.Select("COUNT(*)").From("prices")

	if start.IsSome() {
		q = q.Where(squirrel.GtOrEq{"time": start.Unwrap()})
	}

	if end.IsSome() {
		q = q.Where(squirrel.LtOrEq{"time": end.Unwrap()})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeQueryFailed, "failed to build count query", err)
	}

	var count int
	if err := d.db.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(errors.ErrCodeQueryFailed, "failed to count prices", err)
	}

	return count, nil
}

// Close releases the underlying database.
func (d *DuckDBPriceSource) Close() error {
	return d.db.Close()
}
