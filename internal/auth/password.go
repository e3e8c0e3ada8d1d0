package auth

import "golang.org/x/crypto/bcrypt"

// dummyHash is compared against when the email matches no user, so a login
// attempt costs one bcrypt comparison whether or not the account exists.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

func HashPassword(password string, cost int) (string, error) {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// BurnPassword performs a throwaway comparison to equalize timing on
// unknown-email logins.
func BurnPassword(password string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}
