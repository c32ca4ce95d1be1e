package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// PaymobID is an order id as paymob sent it. Accept returns numbers today,
// but the id is treated as opaque text: a numeric id is sent back as a JSON
// number and anything else as a string.
type PaymobID string

func (id *PaymobID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if string(b) == "null" {
		*id = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("decode paymob id: %w", err)
		}
		*id = PaymobID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("decode paymob id: %w", err)
	}
	*id = PaymobID(n.String())
	return nil
}

func (id PaymobID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseUint(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id PaymobID) String() string {
	return string(id)
}
