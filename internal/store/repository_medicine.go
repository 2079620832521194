package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-med-reminder/internal/logger"
	"github.com/MKhiriev/go-med-reminder/models"
)

var medicineColumns = []string{"id", "name", "dose", "frequency", "time_of_day", "owner_email"}

type medicineRepository struct {
	*DB
	logger *logger.Logger
}

func NewMedicineRepository(db *DB, logger *logger.Logger) MedicineRepository {
	logger.Debug().Msg("creating medicine repository")
	return &medicineRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *medicineRepository) Insert(ctx context.Context, m models.Medicine) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert(m.TableName()).
		Columns("name", "dose", "frequency", "time_of_day", "owner_email").
		Values(m.Name, m.Dose, m.Frequency, string(m.TimeOfDay), m.OwnerEmail).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "medicineRepository.Insert").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = r.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).
			Str("func", "medicineRepository.Insert").
			Str("owner", m.OwnerEmail).
			Msg("failed to insert medicine")
		if r.errorClassificator.Classify(err) == ForeignKeyViolation {
			return 0, ErrUnknownOwner
		}
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return id, nil
}

func (r *medicineRepository) Update(ctx context.Context, m models.Medicine) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Update(m.TableName()).
		SetMap(map[string]any{
			"name":        m.Name,
			"dose":        m.Dose,
			"frequency":   m.Frequency,
			"time_of_day": string(m.TimeOfDay),
			"owner_email": m.OwnerEmail,
		}).
		Where(sq.Eq{"id": m.ID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "medicineRepository.Update").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "medicineRepository.Update").
			Int64("id", m.ID).
			Msg("failed to update medicine")
		if r.errorClassificator.Classify(err) == ForeignKeyViolation {
			return ErrUnknownOwner
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrMedicineNotFound
	}

	return nil
}

// Delete removes the row with m.ID. Deleting a missing row is not an error.
func (r *medicineRepository) Delete(ctx context.Context, m models.Medicine) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Delete(m.TableName()).
		Where(sq.Eq{"id": m.ID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "medicineRepository.Delete").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "medicineRepository.Delete").
			Int64("id", m.ID).
			Msg("failed to delete medicine")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *medicineRepository) GetByID(ctx context.Context, id int64) (models.Medicine, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(medicineColumns...).
		From(models.Medicine{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "medicineRepository.GetByID").Msg("error building query")
		return models.Medicine{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	m, err := scanMedicine(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Medicine{}, ErrMedicineNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "medicineRepository.GetByID").
			Int64("id", id).
			Msg("failed to scan medicine")
		return models.Medicine{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return m, nil
}

func (r *medicineRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]models.Medicine, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(medicineColumns...).
		From(models.Medicine{}.TableName()).
		Where(sq.Eq{"owner_email": ownerEmail}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "medicineRepository.ListByOwner").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "medicineRepository.ListByOwner").
			Str("owner", ownerEmail).
			Msg("failed to list medicines")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]models.Medicine, 0)
	for rows.Next() {
		m, err := scanMedicine(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		result = append(result, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMedicine(row rowScanner) (models.Medicine, error) {
	var (
		m         models.Medicine
		timeOfDay string
	)
	if err := row.Scan(&m.ID, &m.Name, &m.Dose, &m.Frequency, &timeOfDay, &m.OwnerEmail); err != nil {
		return models.Medicine{}, err
	}
	m.TimeOfDay = models.TimeOfDay(timeOfDay)
	return m, nil
}
