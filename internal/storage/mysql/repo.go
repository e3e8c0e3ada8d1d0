package mysql

import (
	"context"
	"database/sql"

	"reviewboard/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// ---- users ----

func (r *Repo) CreateUser(ctx context.Context, username, email, passwordHash string) (domain.User, error) {
	res, err := r.db.ExecContext(ctx, insertUserSQL, username, email, passwordHash)
	if err != nil {
		return domain.User{}, mapErr(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.User{}, err
	}
	return r.GetUser(ctx, id)
}

func (r *Repo) GetUser(ctx context.Context, id int64) (domain.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx, getUserSQL, id))
}

func (r *Repo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx, getUserByEmailSQL, email))
}

func (r *Repo) scanUser(row *sql.Row) (domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		return domain.User{}, mapErr(err)
	}
	return u, nil
}

// ---- items ----

func (r *Repo) ListItems(ctx context.Context, pq domain.PageQuery) (domain.ItemPage, error) {
	rows, err := r.db.QueryContext(ctx, listItemsSQL, pq.Limit, pq.Offset())
	if err != nil {
		return domain.ItemPage{}, err
	}
	defer rows.Close()

	out := domain.ItemPage{Items: []domain.Item{}, Limit: pq.Limit, Page: pq.Page}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return domain.ItemPage{}, err
		}
		out.Items = append(out.Items, it)
	}
	if err := rows.Err(); err != nil {
		return domain.ItemPage{}, err
	}

	// Total is counted independently of paging.
	if err := r.db.QueryRowContext(ctx, countItemsSQL).Scan(&out.Total); err != nil {
		return domain.ItemPage{}, err
	}
	return out, nil
}

func (r *Repo) GetItem(ctx context.Context, id int64) (domain.Item, error) {
	it, err := scanItem(r.db.QueryRowContext(ctx, getItemSQL, id))
	if err != nil {
		return domain.Item{}, err
	}
	return it, nil
}

type scanner interface{ Scan(dest ...any) error }

func scanItem(row scanner) (domain.Item, error) {
	var it domain.Item
	var desc, img sql.NullString
	if err := row.Scan(&it.ID, &it.Name, &desc, &img, &it.AverageRating, &it.CreatedAt); err != nil {
		return domain.Item{}, mapErr(err)
	}
	if desc.Valid {
		d := desc.String
		it.Description = &d
	}
	if img.Valid {
		u := img.String
		it.ImageURL = &u
	}
	return it, nil
}

func (r *Repo) ListItemIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, listItemIDsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// RecomputeItemRating refreshes the denormalized average from current reviews
// and returns the stored value. Items without reviews go back to 0.
func (r *Repo) RecomputeItemRating(ctx context.Context, id int64) (float64, error) {
	var avg float64
	if err := r.db.QueryRowContext(ctx, avgItemRatingSQL, id).Scan(&avg); err != nil {
		return 0, mapErr(err)
	}
	if _, err := r.db.ExecContext(ctx, setItemRatingSQL, avg, id); err != nil {
		return 0, mapErr(err)
	}
	return avg, nil
}
