package postgre

import (
	"context"
	"database/sql"

	"condopay-srv/internal/apartment/repository"
	"condopay-srv/internal/model"
	pkgPostgre "condopay-srv/pkg/postgre"

	"github.com/friendsofgo/errors"
	"github.com/lib/pq"
)

const apartmentColumns = `id, number, floor, resident_name, resident_email,
	amount, due_date, paid, paid_at, last_notified, created_at, updated_at`

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanApartment(row rowScanner) (model.Apartment, error) {
	var (
		apt          model.Apartment
		paidAt       sql.NullTime
		lastNotified sql.NullTime
	)
	err := row.Scan(
		&apt.ID,
		&apt.Number,
		&apt.Floor,
		&apt.ResidentName,
		&apt.ResidentEmail,
		&apt.Amount,
		&apt.DueDate,
		&apt.Paid,
		&paidAt,
		&lastNotified,
		&apt.CreatedAt,
		&apt.UpdatedAt,
	)
	if err != nil {
		return model.Apartment{}, err
	}
	if paidAt.Valid {
		apt.PaidAt = &paidAt.Time
	}
	if lastNotified.Valid {
		apt.LastNotified = &lastNotified.Time
	}
	return apt, nil
}

func (r *implRepository) List(ctx context.Context) ([]model.Apartment, error) {
	query := `SELECT ` + apartmentColumns + ` FROM apartments ORDER BY floor, number`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "internal.apartment.repository.postgre.List.Query: %v", err)
		return nil, errors.Wrap(err, "listing apartments")
	}
	defer rows.Close()

	var apts []model.Apartment
	for rows.Next() {
		apt, err := scanApartment(rows)
		if err != nil {
			r.l.Errorf(ctx, "internal.apartment.repository.postgre.List.Scan: %v", err)
			return nil, errors.Wrap(err, "scanning apartment")
		}
		apts = append(apts, apt)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating apartments")
	}
	return apts, nil
}

func (r *implRepository) Detail(ctx context.Context, id string) (model.Apartment, error) {
	if err := pkgPostgre.IsUUID(id); err != nil {
		return model.Apartment{}, repository.ErrNotFound
	}

	query := `SELECT ` + apartmentColumns + ` FROM apartments WHERE id = $1`

	apt, err := scanApartment(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Apartment{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.apartment.repository.postgre.Detail.Scan: %v", err)
		return model.Apartment{}, errors.Wrap(err, "getting apartment")
	}
	return apt, nil
}

func (r *implRepository) GetByNumber(ctx context.Context, number string) (model.Apartment, error) {
	query := `SELECT ` + apartmentColumns + ` FROM apartments WHERE number = $1`

	apt, err := scanApartment(r.db.QueryRowContext(ctx, query, number))
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Apartment{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.apartment.repository.postgre.GetByNumber.Scan: %v", err)
		return model.Apartment{}, errors.Wrap(err, "getting apartment by number")
	}
	return apt, nil
}

func (r *implRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.Apartment, error) {
	apt := opts.Apartment
	query := `INSERT INTO apartments
		(id, number, floor, resident_name, resident_email, amount, due_date, paid, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + apartmentColumns

	var paidAt any
	if apt.PaidAt != nil {
		paidAt = *apt.PaidAt
	}

	created, err := scanApartment(r.db.QueryRowContext(ctx, query,
		apt.ID, apt.Number, apt.Floor, apt.ResidentName, apt.ResidentEmail,
		apt.Amount, apt.DueDate, apt.Paid, paidAt,
	))
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
			return model.Apartment{}, repository.ErrDuplicate
		}
		r.l.Errorf(ctx, "internal.apartment.repository.postgre.Create.Insert: %v", err)
		return model.Apartment{}, errors.Wrap(err, "creating apartment")
	}
	return created, nil
}

func (r *implRepository) Update(ctx context.Context, opts repository.UpdateOptions) (model.Apartment, error) {
	apt := opts.Apartment
	query := `UPDATE apartments SET
		resident_name = $2,
		resident_email = $3,
		amount = $4,
		due_date = $5,
		paid = $6,
		paid_at = $7,
		updated_at = now()
		WHERE id = $1
		RETURNING ` + apartmentColumns

	var paidAt any
	if apt.PaidAt != nil {
		paidAt = *apt.PaidAt
	}

	updated, err := scanApartment(r.db.QueryRowContext(ctx, query,
		apt.ID, apt.ResidentName, apt.ResidentEmail, apt.Amount,
		apt.DueDate, apt.Paid, paidAt,
	))
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Apartment{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.apartment.repository.postgre.Update.Scan: %v", err)
		return model.Apartment{}, errors.Wrap(err, "updating apartment")
	}
	return updated, nil
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	if err := pkgPostgre.IsUUID(id); err != nil {
		return repository.ErrNotFound
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM apartments WHERE id = $1`, id)
	if err != nil {
		r.l.Errorf(ctx, "internal.apartment.repository.postgre.Delete.Exec: %v", err)
		return errors.Wrap(err, "deleting apartment")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "deleting apartment")
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
