package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Strings is a list stored as a jsonb array. It never marshals as null.
type Strings []string

func (s Strings) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(s))
}

func (s *Strings) Scan(src any) error {
	return scanJSON(src, (*[]string)(s))
}

func (s Strings) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(s))
	return string(b), err
}

func scanJSON(src any, dest any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("model: cannot scan %T as json", src)
	}
}
