package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rajivgeraev/phoneswap-api/internal/models"
)

// SignInitData собирает initData, подписанные botToken так же, как это делает Telegram.
// Используется в тестах и для локальной разработки без клиента Telegram.
func SignInitData(botToken string, user *models.User, authDate time.Time) string {
	values := url.Values{}
	values.Set("auth_date", strconv.FormatInt(authDate.Unix(), 10))
	values.Set("query_id", "AAHdF6IQAAAAAN0XohDhrOrc")
	if user != nil {
		payload, _ := json.Marshal(struct {
			ID           int64  `json:"id"`
			FirstName    string `json:"first_name"`
			LastName     string `json:"last_name,omitempty"`
			Username     string `json:"username,omitempty"`
			LanguageCode string `json:"language_code,omitempty"`
		}{user.ID, user.FirstName, user.LastName, user.Username, user.LanguageCode})
		values.Set("user", string(payload))
	}

	pairs := make([]string, 0, len(values))
	for k := range values {
		pairs = append(pairs, k+"="+values.Get(k))
	}
	sort.Strings(pairs)

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(botToken))
	h := hmac.New(sha256.New, secret.Sum(nil))
	h.Write([]byte(strings.Join(pairs, "\n")))

	values.Set("hash", hex.EncodeToString(h.Sum(nil)))
	return values.Encode()
}
