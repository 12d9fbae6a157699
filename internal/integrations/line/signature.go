package line

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// SignatureHeader заголовок с подписью тела запроса
const SignatureHeader = "X-Line-Signature"

// ValidateSignature проверяет подпись: base64(HMAC-SHA256(channelSecret, body))
func ValidateSignature(body []byte, channelSecret, signature string) bool {
	decoded, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(decoded, Sign(body, channelSecret))
}

// Sign вычисляет HMAC-SHA256 тела запроса
func Sign(body []byte, channelSecret string) []byte {
	mac := hmac.New(sha256.New, []byte(channelSecret))
	mac.Write(body)
	return mac.Sum(nil)
}
