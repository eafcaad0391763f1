package provider

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AssignmentService/internal/domain"
	"github.com/m04kA/SMC-AssignmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AssignmentService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AssignmentService/pkg/types"
)

// pqUniqueViolation код ошибки PostgreSQL для нарушения уникального ограничения
const pqUniqueViolation = "23505"

// providerColumns колонки таблицы providers в порядке сканирования
var providerColumns = []string{
	"id",
	"name",
	"phone",
	"city",
	"service_category",
	"is_verified",
	"latitude",
	"longitude",
	"service_radius_km",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога провайдеров и их календарей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория провайдеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает провайдера по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Provider, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(providerColumns...).
		From("providers").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	provider, err := r.scanProvider(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrProviderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan provider: %v", ErrScanRow, err)
	}

	return provider, nil
}

// ListVerifiedByCategoryAndCity получает верифицированных провайдеров
// нужной категории в нужном городе.
// Индексный запрос (is_verified, service_category, city) - полный скан
// каталога на каждый подбор кандидатов недопустим при росте справочника
func (r *Repository) ListVerifiedByCategoryAndCity(ctx context.Context, category, city string) ([]*domain.Provider, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(providerColumns...).
		From("providers").
		Where(squirrel.Eq{
			"is_verified":      true,
			"service_category": category,
			"city":             city,
		}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListVerifiedByCategoryAndCity - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListVerifiedByCategoryAndCity - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanProviders(rows)
}

// ListWithFilter получает провайдеров с опциональной фильтрацией
// по городу, категории и статусу верификации
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.ProvidersFilter) ([]*domain.Provider, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(providerColumns...).
		From("providers").
		OrderBy("id ASC")

	if filter.City != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"city": *filter.City})
	}
	if filter.ServiceCategory != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"service_category": *filter.ServiceCategory})
	}
	if filter.IsVerified != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_verified": *filter.IsVerified})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanProviders(rows)
}

// HasConflict проверяет, пересекается ли запрошенный слот с существующими
// обязательствами провайдера на эту дату.
// Интервалы полуоткрытые: обязательство, заканчивающееся ровно в начале слота,
// конфликтом не считается
func (r *Repository) HasConflict(
	ctx context.Context,
	providerID int64,
	date time.Time,
	startTime types.TimeString,
	durationMinutes int,
) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	endTime, err := startTime.AddMinutes(durationMinutes)
	if err != nil {
		return false, fmt.Errorf("%w: HasConflict - compute slot end: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("provider_commitments").
		Where(squirrel.Eq{
			"provider_id":     providerID,
			"commitment_date": date.Format(domain.DateFormat),
		}).
		Where(squirrel.Lt{"start_time": endTime.String()}).
		Where(squirrel.Expr("start_time + make_interval(mins => duration_minutes) > ?::time", startTime.String())).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: HasConflict - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: HasConflict - scan count: %v", ErrScanRow, err)
	}

	return count > 0, nil
}

// AppendCommitment добавляет запись в календарь провайдера
// UNIQUE (provider_id, commitment_date, start_time) гарантирует отсутствие
// двойного бронирования на уровне БД: нарушение возвращается как ErrSlotTaken
func (r *Repository) AppendCommitment(ctx context.Context, commitment *domain.Commitment) (*domain.Commitment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("provider_commitments").
		Columns(
			"provider_id",
			"booking_id",
			"commitment_date",
			"start_time",
			"duration_minutes",
		).
		Values(
			commitment.ProviderID,
			commitment.BookingID,
			commitment.CommitmentDate,
			commitment.StartTime,
			commitment.DurationMinutes,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: AppendCommitment - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&commitment.ID,
		&createdAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: AppendCommitment - execute insert: %v", ErrExecQuery, err)
	}

	commitment.CreatedAt = createdAt.Time

	return commitment, nil
}

// SetVerified помечает провайдера как верифицированного
// Повторная верификация уже верифицированного провайдера не является ошибкой
func (r *Repository) SetVerified(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("providers").
		Set("is_verified", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetVerified - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetVerified - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetVerified - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrProviderNotFound
	}

	return nil
}

// CountByVerification возвращает количество верифицированных и ожидающих
// верификации провайдеров. Используется для счётчиков дашборда
func (r *Repository) CountByVerification(ctx context.Context) (verified int64, pending int64, err error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"COUNT(*) FILTER (WHERE is_verified)",
		"COUNT(*) FILTER (WHERE NOT is_verified)",
	).
		From("providers").
		ToSql()

	if err != nil {
		return 0, 0, fmt.Errorf("%w: CountByVerification - build select query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&verified, &pending); err != nil {
		return 0, 0, fmt.Errorf("%w: CountByVerification - scan counts: %v", ErrScanRow, err)
	}

	return verified, pending, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanProvider сканирует одну строку в модель провайдера
func (r *Repository) scanProvider(row rowScanner) (*domain.Provider, error) {
	var provider domain.Provider
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&provider.ID,
		&provider.Name,
		&provider.Phone,
		&provider.City,
		&provider.ServiceCategory,
		&provider.IsVerified,
		&provider.Latitude,
		&provider.Longitude,
		&provider.ServiceRadiusKm,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	provider.CreatedAt = createdAt.Time
	provider.UpdatedAt = updatedAt.Time

	return &provider, nil
}

// scanProviders сканирует результаты запроса в слайс провайдеров
func (r *Repository) scanProviders(rows *sql.Rows) ([]*domain.Provider, error) {
	providers := make([]*domain.Provider, 0)

	for rows.Next() {
		provider, err := r.scanProvider(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanProviders - scan row: %v", ErrScanRow, err)
		}
		providers = append(providers, provider)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanProviders - rows error: %v", ErrScanRow, err)
	}

	return providers, nil
}
