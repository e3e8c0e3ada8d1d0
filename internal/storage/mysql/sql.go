package mysql

const insertUserSQL = `
INSERT INTO users (username, email, password_hash)
VALUES (?, ?, ?)
`

const getUserSQL = `
SELECT id, username, email, password_hash, created_at
FROM users
WHERE id = ?
`

const getUserByEmailSQL = `
SELECT id, username, email, password_hash, created_at
FROM users
WHERE email = ?
`

const listItemsSQL = `
SELECT id, name, description, image_url, average_rating, created_at
FROM items
ORDER BY created_at DESC, id DESC
LIMIT ? OFFSET ?
`

const countItemsSQL = `SELECT COUNT(*) FROM items`

const getItemSQL = `
SELECT id, name, description, image_url, average_rating, created_at
FROM items
WHERE id = ?
`

const listItemIDsSQL = `SELECT id FROM items ORDER BY id`

const avgItemRatingSQL = `
SELECT COALESCE(AVG(rating), 0)
FROM reviews
WHERE item_id = ?
`

const setItemRatingSQL = `
UPDATE items SET average_rating = ? WHERE id = ?
`

const reviewColumns = `id, item_id, user_id, rating, review_text, created_at, updated_at`

const listReviewsByItemSQL = `
SELECT ` + reviewColumns + `
FROM reviews
WHERE item_id = ?
ORDER BY created_at DESC, id DESC
`

// User listings join the item name for display.
const listReviewsByUserPrefix = `
SELECT r.id, r.item_id, r.user_id, r.rating, r.review_text, i.name,
       r.created_at, r.updated_at
FROM reviews r
JOIN items i ON i.id = r.item_id
WHERE r.user_id = ?
`

const insertReviewSQL = `
INSERT INTO reviews (item_id, user_id, rating, review_text)
VALUES (?, ?, ?, ?)
`

const getReviewSQL = `
SELECT ` + reviewColumns + `
FROM reviews
WHERE id = ?
`

// Ownership gate: the WHERE clause carries the authorization check, so a
// zero-row result conflates "missing" with "not yours".
const updateReviewSQL = `
UPDATE reviews
SET rating = ?, review_text = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ? AND user_id = ?
`

const reviewItemIDSQL = `SELECT item_id FROM reviews WHERE id = ?`

const deleteReviewSQL = `DELETE FROM reviews WHERE id = ? AND user_id = ?`

const commentColumns = `id, review_id, user_id, comment_text, created_at, updated_at`

const listCommentsByReviewSQL = `
SELECT ` + commentColumns + `
FROM comments
WHERE review_id = ?
ORDER BY created_at ASC, id ASC
`

const listCommentsByUserPrefix = `
SELECT c.id, c.review_id, c.user_id, c.comment_text, i.name,
       c.created_at, c.updated_at
FROM comments c
JOIN reviews r ON r.id = c.review_id
JOIN items i ON i.id = r.item_id
WHERE c.user_id = ?
`

const insertCommentSQL = `
INSERT INTO comments (review_id, user_id, comment_text)
VALUES (?, ?, ?)
`

const getCommentSQL = `
SELECT ` + commentColumns + `
FROM comments
WHERE id = ?
`

const updateCommentSQL = `
UPDATE comments
SET comment_text = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ? AND user_id = ?
`

const commentReviewIDSQL = `SELECT review_id FROM comments WHERE id = ?`

const deleteCommentSQL = `DELETE FROM comments WHERE id = ? AND user_id = ?`
