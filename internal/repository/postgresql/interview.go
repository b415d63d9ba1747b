package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kerjalink/jobboard-backend-go/internal/domain/interview"
	"github.com/kerjalink/jobboard-backend-go/internal/pkg/database"
)

type notificationRepositoryImpl struct {
	db *database.DB
}

// NewNotificationRepository creates a new interview notification repository
// instance
func NewNotificationRepository(db *database.DB) interview.NotificationRepository {
	return &notificationRepositoryImpl{db: db}
}

const notificationColumns = `id, employer_id, candidate_id, designation, message,
		time_slots, status, selected_slot_date, selected_slot_time,
		created_at, updated_at`

func scanNotification(row pgx.Row) (interview.Notification, error) {
	var n interview.Notification
	err := row.Scan(
		&n.ID, &n.EmployerID, &n.CandidateID, &n.Designation, &n.Message,
		&n.TimeSlots, &n.Status, &n.SelectedSlotDate, &n.SelectedSlotTime,
		&n.CreatedAt, &n.UpdatedAt,
	)
	return n, err
}

// Create implements interview.NotificationRepository.
func (r *notificationRepositoryImpl) Create(ctx context.Context, n interview.Notification) (interview.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO interview_notifications (
			employer_id, candidate_id, designation, message, time_slots, status
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + notificationColumns

	created, err := scanNotification(q.QueryRow(ctx, query,
		n.EmployerID, n.CandidateID, n.Designation, n.Message, n.TimeSlots, n.Status,
	))
	if err != nil {
		return interview.Notification{}, fmt.Errorf("failed to create interview notification: %w", err)
	}
	return created, nil
}

// GetByID implements interview.NotificationRepository.
func (r *notificationRepositoryImpl) GetByID(ctx context.Context, id string) (interview.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + notificationColumns + ` FROM interview_notifications WHERE id = $1`
	n, err := scanNotification(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return interview.Notification{}, interview.ErrNotificationNotFound
		}
		return interview.Notification{}, fmt.Errorf("failed to get interview notification: %w", err)
	}
	return n, nil
}

// Listings join in the candidate and company display names so both sides of
// the negotiation see who they are talking to.
func (r *notificationRepositoryImpl) list(ctx context.Context, ownerColumn, ownerID string, q interview.ListQuery) ([]interview.NotificationWithNames, int64, error) {
	querier := GetQuerier(ctx, r.db)

	whereClause := fmt.Sprintf("WHERE n.%s = $1", ownerColumn)
	args := []interface{}{ownerID}
	if q.Status != nil {
		whereClause += fmt.Sprintf(" AND n.status = $%d", len(args)+1)
		args = append(args, *q.Status)
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM interview_notifications n %s`, whereClause)
	var total int64
	if err := querier.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count interview notifications: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT n.id, n.employer_id, n.candidate_id, n.designation, n.message,
			   n.time_slots, n.status, n.selected_slot_date, n.selected_slot_time,
			   n.created_at, n.updated_at,
			   TRIM(CONCAT_WS(' ', u.first_name, u.last_name)),
			   c.name
		FROM interview_notifications n
		JOIN candidates ca ON ca.id = n.candidate_id
		JOIN users u ON u.id = ca.user_id
		JOIN employers e ON e.id = n.employer_id
		JOIN companies c ON c.id = e.company_id
		%s
		ORDER BY n.created_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, len(args)+1, len(args)+2)
	args = append(args, q.Limit, (q.Page-1)*q.Limit)

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list interview notifications: %w", err)
	}
	defer rows.Close()

	var notifications []interview.NotificationWithNames
	for rows.Next() {
		var n interview.NotificationWithNames
		err := rows.Scan(
			&n.ID, &n.EmployerID, &n.CandidateID, &n.Designation, &n.Message,
			&n.TimeSlots, &n.Status, &n.SelectedSlotDate, &n.SelectedSlotTime,
			&n.CreatedAt, &n.UpdatedAt,
			&n.CandidateName, &n.CompanyName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan interview notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return notifications, total, nil
}

// ListByCandidateID implements interview.NotificationRepository.
func (r *notificationRepositoryImpl) ListByCandidateID(ctx context.Context, candidateID string, q interview.ListQuery) ([]interview.NotificationWithNames, int64, error) {
	return r.list(ctx, "candidate_id", candidateID, q)
}

// ListByEmployerID implements interview.NotificationRepository.
func (r *notificationRepositoryImpl) ListByEmployerID(ctx context.Context, employerID string, q interview.ListQuery) ([]interview.NotificationWithNames, int64, error) {
	return r.list(ctx, "employer_id", employerID, q)
}

// ConfirmSlot implements interview.NotificationRepository.
//
// The status guard lives in the WHERE clause so the pending check and the
// transition are a single atomically-visible operation: of two concurrent
// confirmations exactly one matches the pending row.
func (r *notificationRepositoryImpl) ConfirmSlot(ctx context.Context, id string, slot interview.TimeSlot) (interview.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE interview_notifications
		SET status = 'accepted', selected_slot_date = $2, selected_slot_time = $3, updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
		RETURNING ` + notificationColumns

	updated, err := scanNotification(q.QueryRow(ctx, query, id, slot.Date, slot.Time))
	if err != nil {
		if err == pgx.ErrNoRows {
			var exists bool
			if checkErr := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM interview_notifications WHERE id = $1)`, id).Scan(&exists); checkErr != nil {
				return interview.Notification{}, fmt.Errorf("failed to check interview notification existence: %w", checkErr)
			}
			if !exists {
				return interview.Notification{}, interview.ErrNotificationNotFound
			}
			return interview.Notification{}, interview.ErrAlreadyProcessed
		}
		return interview.Notification{}, fmt.Errorf("failed to confirm interview slot: %w", err)
	}
	return updated, nil
}

// ExpirePending implements interview.NotificationRepository.
//
// Slot dates are ISO formatted so the string MAX over the JSONB array orders
// chronologically.
func (r *notificationRepositoryImpl) ExpirePending(ctx context.Context, cutoffDate string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE interview_notifications
		SET status = 'expired', updated_at = NOW()
		WHERE status = 'pending'
		  AND (SELECT MAX(s->>'date') FROM jsonb_array_elements(time_slots) s) < $1
	`
	tag, err := q.Exec(ctx, query, cutoffDate)
	if err != nil {
		return 0, fmt.Errorf("failed to expire interview notifications: %w", err)
	}
	return tag.RowsAffected(), nil
}
