package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"reviewboard/internal/domain"
)

// ---- reviews ----

func (r *Repo) ListReviewsByItem(ctx context.Context, itemID int64) ([]domain.Review, error) {
	rows, err := r.db.QueryContext(ctx, listReviewsByItemSQL, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Review{}
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func (r *Repo) ListReviewsByUser(ctx context.Context, userID int64, order domain.SortOrder) ([]domain.Review, error) {
	dir := "DESC"
	if order == domain.SortAsc {
		dir = "ASC"
	}
	q := listReviewsByUserPrefix + fmt.Sprintf("ORDER BY r.created_at %s, r.id %s", dir, dir)
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Review{}
	for rows.Next() {
		var rv domain.Review
		var text sql.NullString
		if err := rows.Scan(&rv.ID, &rv.ItemID, &rv.UserID, &rv.Rating, &text,
			&rv.ItemName, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
			return nil, err
		}
		if text.Valid {
			t := text.String
			rv.ReviewText = &t
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func (r *Repo) CreateReview(ctx context.Context, itemID, userID int64, rating int, text *string) (domain.Review, error) {
	res, err := r.db.ExecContext(ctx, insertReviewSQL, itemID, userID, rating, textArg(text))
	if err != nil {
		return domain.Review{}, mapErr(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Review{}, err
	}
	return r.getReview(ctx, id)
}

func (r *Repo) UpdateReview(ctx context.Context, reviewID, userID int64, rating int, text *string) (domain.Review, error) {
	res, err := r.db.ExecContext(ctx, updateReviewSQL, rating, textArg(text), reviewID, userID)
	if err != nil {
		return domain.Review{}, mapErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return domain.Review{}, err
	}
	if n == 0 {
		// Missing row and foreign owner are indistinguishable here on purpose.
		return domain.Review{}, domain.ErrForbidden
	}
	return r.getReview(ctx, reviewID)
}

func (r *Repo) DeleteReview(ctx context.Context, reviewID, userID int64) (int64, error) {
	// The item id is read first so callers can invalidate caches; the
	// conditional DELETE below remains the only authorization gate.
	var itemID int64
	if err := r.db.QueryRowContext(ctx, reviewItemIDSQL, reviewID).Scan(&itemID); err != nil {
		if err == sql.ErrNoRows {
			return 0, domain.ErrForbidden
		}
		return 0, err
	}
	res, err := r.db.ExecContext(ctx, deleteReviewSQL, reviewID, userID)
	if err != nil {
		return 0, mapErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, domain.ErrForbidden
	}
	return itemID, nil
}

func (r *Repo) getReview(ctx context.Context, id int64) (domain.Review, error) {
	return scanReview(r.db.QueryRowContext(ctx, getReviewSQL, id))
}

func scanReview(row scanner) (domain.Review, error) {
	var rv domain.Review
	var text sql.NullString
	if err := row.Scan(&rv.ID, &rv.ItemID, &rv.UserID, &rv.Rating, &text,
		&rv.CreatedAt, &rv.UpdatedAt); err != nil {
		return domain.Review{}, mapErr(err)
	}
	if text.Valid {
		t := text.String
		rv.ReviewText = &t
	}
	return rv, nil
}

func textArg(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

// ---- comments ----

func (r *Repo) ListCommentsByReview(ctx context.Context, reviewID int64) ([]domain.Comment, error) {
	rows, err := r.db.QueryContext(ctx, listCommentsByReviewSQL, reviewID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *Repo) ListCommentsByUser(ctx context.Context, userID int64, order domain.SortOrder) ([]domain.Comment, error) {
	dir := "DESC"
	if order == domain.SortAsc {
		dir = "ASC"
	}
	q := listCommentsByUserPrefix + fmt.Sprintf("ORDER BY c.created_at %s, c.id %s", dir, dir)
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Comment{}
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.ReviewID, &c.UserID, &c.CommentText,
			&c.ItemName, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *Repo) CreateComment(ctx context.Context, reviewID, userID int64, text string) (domain.Comment, error) {
	res, err := r.db.ExecContext(ctx, insertCommentSQL, reviewID, userID, text)
	if err != nil {
		return domain.Comment{}, mapErr(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Comment{}, err
	}
	return r.getComment(ctx, id)
}

func (r *Repo) UpdateComment(ctx context.Context, commentID, userID int64, text string) (domain.Comment, error) {
	res, err := r.db.ExecContext(ctx, updateCommentSQL, text, commentID, userID)
	if err != nil {
		return domain.Comment{}, mapErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return domain.Comment{}, err
	}
	if n == 0 {
		return domain.Comment{}, domain.ErrForbidden
	}
	return r.getComment(ctx, commentID)
}

func (r *Repo) DeleteComment(ctx context.Context, commentID, userID int64) (int64, error) {
	var reviewID int64
	if err := r.db.QueryRowContext(ctx, commentReviewIDSQL, commentID).Scan(&reviewID); err != nil {
		if err == sql.ErrNoRows {
			return 0, domain.ErrForbidden
		}
		return 0, err
	}
	res, err := r.db.ExecContext(ctx, deleteCommentSQL, commentID, userID)
	if err != nil {
		return 0, mapErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, domain.ErrForbidden
	}
	return reviewID, nil
}

func (r *Repo) getComment(ctx context.Context, id int64) (domain.Comment, error) {
	return scanComment(r.db.QueryRowContext(ctx, getCommentSQL, id))
}

func scanComment(row scanner) (domain.Comment, error) {
	var c domain.Comment
	if err := row.Scan(&c.ID, &c.ReviewID, &c.UserID, &c.CommentText,
		&c.CreatedAt, &c.UpdatedAt); err != nil {
		return domain.Comment{}, mapErr(err)
	}
	return c, nil
}
