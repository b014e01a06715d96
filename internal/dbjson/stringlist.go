package dbjson

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList stores a []string column as a JSON document so the same model
// works on postgres and sqlite without array-type support in the driver.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, (*[]string)(l))
	case string:
		return json.Unmarshal([]byte(v), (*[]string)(l))
	default:
		return fmt.Errorf("dbjson.StringList: unsupported scan type %T", value)
	}
}
