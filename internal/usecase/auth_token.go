package usecase

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"time"

	"elegance/internal/domain/model"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// accesstokenの有効期限
const accessTokenTTL = 24 * time.Hour

// AdminとCustomerで同じ形のbearer tokenを発行する。
// logoutはstatelessなので、期限が切れるまでtokenは有効のまま。
func issueToken(secret string, account model.Credentialed, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":   strconv.FormatInt(account.AccountID(), 10),
		"email": account.AccountEmail(),
		"role":  string(account.AccountRole()),
		"iat":   now.Unix(),
		"exp":   now.Add(accessTokenTTL).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(secret))
}

// ゲスト顧客用のランダム仮パスワード（ハッシュ済みで返す）
func randomPasswordHash() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(hex.EncodeToString(buf)), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
