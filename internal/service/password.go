package service

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a bcrypt digest for storing alongside a user record.
// bcrypt digests embed their own cost parameters, so digests written under
// older settings keep verifying after the cost changes.
func HashPassword(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// checkPassword reports whether plain matches the stored bcrypt digest.
func checkPassword(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
