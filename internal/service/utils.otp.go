package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// randomCode returns a 6-digit code uniform over [100000, 999999].
func randomCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		panic(err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000)
}
