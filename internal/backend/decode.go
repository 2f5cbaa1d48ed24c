package backend

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999-0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// object is a single JSON record, fields decoded on demand.
// Missing, null or wrongly typed fields yield zero values.
type object map[string]json.RawMessage

// decodeObjects splits a JSON array into records. Elements that are not
// JSON objects are skipped; a non-array value yields no records.
func decodeObjects(raw json.RawMessage, what string) []object {
	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		log.Warnf("decode %s: expected a JSON array: %s", what, err)
		return nil
	}

	objects := make([]object, 0, len(elements))
	for i, el := range elements {
		obj, ok := decodeObject(el)
		if !ok {
			log.Warnf("decode %s: skipping element %d, not a JSON object", what, i)
			continue
		}
		objects = append(objects, obj)
	}

	return objects
}

func decodeObject(raw json.RawMessage) (object, bool) {
	var obj object
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return nil, false
	}
	return obj, true
}

// field returns the first present, non-null value among keys
func (o object) field(keys ...string) (json.RawMessage, bool) {
	for _, k := range keys {
		v, ok := o[k]
		if !ok || len(v) == 0 || string(v) == "null" {
			continue
		}
		return v, true
	}
	return nil, false
}

func (o object) str(keys ...string) string {
	v, ok := o.field(keys...)
	if !ok {
		return ""
	}

	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}

	// numbers and booleans are kept in their literal form
	var n json.Number
	if err := json.Unmarshal(v, &n); err == nil {
		return n.String()
	}
	var b bool
	if err := json.Unmarshal(v, &b); err == nil {
		return strconv.FormatBool(b)
	}

	return ""
}

func (o object) float(keys ...string) float64 {
	v, ok := o.field(keys...)
	if !ok {
		return 0
	}

	var f float64
	if err := json.Unmarshal(v, &f); err == nil {
		return finite(f)
	}

	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0
		}
		return finite(f)
	}

	return 0
}

func (o object) int(keys ...string) int {
	return int(math.Round(o.float(keys...)))
}

func (o object) bool(keys ...string) bool {
	v, ok := o.field(keys...)
	if !ok {
		return false
	}

	var b bool
	if err := json.Unmarshal(v, &b); err == nil {
		return b
	}

	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		b, err := strconv.ParseBool(strings.TrimSpace(s))
		return err == nil && b
	}

	var f float64
	if err := json.Unmarshal(v, &f); err == nil {
		return f != 0
	}

	return false
}

func (o object) time(keys ...string) time.Time {
	return parseTimestamp(o.str(keys...))
}

func (o object) strings(keys ...string) []string {
	v, ok := o.field(keys...)
	if !ok {
		return nil
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(v, &elements); err != nil {
		// a single string is a list of one
		if s := (object{"v": v}).str("v"); s != "" {
			return []string{s}
		}
		return nil
	}

	list := make([]string, 0, len(elements))
	for _, el := range elements {
		if s := (object{"v": el}).str("v"); s != "" {
			list = append(list, s)
		}
	}

	return list
}

func parseTimestamp(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
