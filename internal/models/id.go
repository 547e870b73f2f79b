package models

import (
	"encoding/json"
	"fmt"
)

// maxNumericIDLen ограничивает числовые идентификаторы точными целыми float64 (2^53)
const maxNumericIDLen = 15

// storedID – идентификатор в сохраненных данных. Веб-клиент писал Date.now() числом,
// сервер создает строковые UUID. Число читается как его десятичная запись,
// а чисто десятичный идентификатор записывается обратно числом.
type storedID string

func (id *storedID) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = storedID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("идентификатор должен быть строкой или числом: %w", err)
	}
	*id = storedID(n.String())
	return nil
}

func (id storedID) MarshalJSON() ([]byte, error) {
	if isNumericID(string(id)) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func isNumericID(s string) bool {
	if s == "" || len(s) > maxNumericIDLen || (len(s) > 1 && s[0] == '0') {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
