package postgre

import (
	"context"
	"database/sql"
	"time"

	"condopay-srv/internal/apartment/repository"
	"condopay-srv/internal/model"
	pkgPostgre "condopay-srv/pkg/postgre"

	"github.com/friendsofgo/errors"
)

func (r *implRepository) MarkPaid(ctx context.Context, opts repository.MarkPaidOptions) (model.Apartment, error) {
	if err := pkgPostgre.IsUUID(opts.ID); err != nil {
		return model.Apartment{}, repository.ErrNotFound
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "internal.apartment.repository.postgre.MarkPaid.Begin: %v", err)
		return model.Apartment{}, errors.Wrap(err, "beginning payment tx")
	}
	defer tx.Rollback()

	settle := `UPDATE apartments SET
		paid = TRUE,
		paid_at = $2,
		updated_at = now()
		WHERE id = $1
		RETURNING ` + apartmentColumns

	apt, err := scanApartment(tx.QueryRowContext(ctx, settle, opts.ID, opts.At))
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Apartment{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.apartment.repository.postgre.MarkPaid.Settle: %v", err)
		return model.Apartment{}, errors.Wrap(err, "settling charge")
	}

	history := `INSERT INTO payments (apartment_id, amount, paid_at, note)
		VALUES ($1, $2, $3, $4)`
	if _, err := tx.ExecContext(ctx, history, opts.ID, opts.Amount, opts.At, opts.Note); err != nil {
		r.l.Errorf(ctx, "internal.apartment.repository.postgre.MarkPaid.History: %v", err)
		return model.Apartment{}, errors.Wrap(err, "recording payment")
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "internal.apartment.repository.postgre.MarkPaid.Commit: %v", err)
		return model.Apartment{}, errors.Wrap(err, "committing payment tx")
	}
	return apt, nil
}

func (r *implRepository) MarkNotified(ctx context.Context, id string, at time.Time) error {
	if err := pkgPostgre.IsUUID(id); err != nil {
		return repository.ErrNotFound
	}

	query := `UPDATE apartments SET last_notified = $2, updated_at = now() WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, at)
	if err != nil {
		r.l.Errorf(ctx, "internal.apartment.repository.postgre.MarkNotified.Exec: %v", err)
		return errors.Wrap(err, "stamping notification")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "stamping notification")
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *implRepository) History(ctx context.Context, id string) ([]model.Payment, error) {
	if err := pkgPostgre.IsUUID(id); err != nil {
		return nil, repository.ErrNotFound
	}

	query := `SELECT id, apartment_id, amount, paid_at, note
		FROM payments WHERE apartment_id = $1 ORDER BY paid_at DESC`

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		r.l.Errorf(ctx, "internal.apartment.repository.postgre.History.Query: %v", err)
		return nil, errors.Wrap(err, "listing payments")
	}
	defer rows.Close()

	var payments []model.Payment
	for rows.Next() {
		var (
			p    model.Payment
			note sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.ApartmentID, &p.Amount, &p.PaidAt, &note); err != nil {
			r.l.Errorf(ctx, "internal.apartment.repository.postgre.History.Scan: %v", err)
			return nil, errors.Wrap(err, "scanning payment")
		}
		p.Note = note.String
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating payments")
	}
	return payments, nil
}

func (r *implRepository) ListDueSoon(ctx context.Context, now time.Time, window time.Duration) ([]model.Apartment, error) {
	query := `SELECT ` + apartmentColumns + ` FROM apartments
		WHERE paid = FALSE AND due_date >= $1 AND due_date <= $2
		ORDER BY due_date`

	rows, err := r.db.QueryContext(ctx, query, now, now.Add(window))
	if err != nil {
		r.l.Errorf(ctx, "internal.apartment.repository.postgre.ListDueSoon.Query: %v", err)
		return nil, errors.Wrap(err, "listing due apartments")
	}
	defer rows.Close()

	var apts []model.Apartment
	for rows.Next() {
		apt, err := scanApartment(rows)
		if err != nil {
			r.l.Errorf(ctx, "internal.apartment.repository.postgre.ListDueSoon.Scan: %v", err)
			return nil, errors.Wrap(err, "scanning apartment")
		}
		apts = append(apts, apt)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating due apartments")
	}
	return apts, nil
}

func (r *implRepository) CountByStatus(ctx context.Context, now time.Time) (repository.StatusCounts, error) {
	query := `SELECT
		count(*),
		count(*) FILTER (WHERE paid),
		count(*) FILTER (WHERE NOT paid),
		count(*) FILTER (WHERE NOT paid AND due_date < $1)
		FROM apartments`

	var counts repository.StatusCounts
	err := r.db.QueryRowContext(ctx, query, now).Scan(
		&counts.Total,
		&counts.Paid,
		&counts.Unpaid,
		&counts.Overdue,
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.apartment.repository.postgre.CountByStatus.Scan: %v", err)
		return repository.StatusCounts{}, errors.Wrap(err, "counting apartments")
	}
	return counts, nil
}
