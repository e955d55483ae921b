package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// StringList is a []string persisted as a JSON column. On the wire it
// accepts either a JSON array or a single comma-separated string, so
// "AutoCAD, Revit" and ["AutoCAD","Revit"] bind to the same value.
type StringList []string

// UnmarshalJSON accepts a JSON array of strings or a comma-separated string.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = items
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("string list: expected array or string: %w", err)
	}
	*l = SplitList(raw)
	return nil
}

// MarshalJSON renders nil as an empty array rather than null.
func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// Value implements driver.Valuer for JSON column storage.
func (l StringList) Value() (driver.Value, error) {
	data, err := l.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, (*[]string)(l))
	case string:
		return json.Unmarshal([]byte(v), (*[]string)(l))
	default:
		return fmt.Errorf("string list: cannot scan %T", src)
	}
}

// GormDataType tells GORM to use a JSON column.
func (l StringList) GormDataType() string {
	return "json"
}

// SplitList splits a comma-separated string into trimmed entries,
// dropping empty ones.
func SplitList(raw string) StringList {
	parts := strings.Split(raw, ",")
	out := make(StringList, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
