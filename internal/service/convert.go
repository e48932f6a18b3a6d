package service

import (
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/velastore/vela/internal/domain"
)

// scanUUID parses a string into a pgtype.UUID, returning an EINVALID error
// for malformed input.
func scanUUID(op, field, value string) (pgtype.UUID, error) {
	var u pgtype.UUID
	if err := u.Scan(value); err != nil {
		return pgtype.UUID{}, domain.Invalid(op, field+" must be a valid UUID")
	}
	return u, nil
}

// uuidString renders a pgtype.UUID in its canonical text form. Invalid
// (null) values render as the empty string.
func uuidString(u pgtype.UUID) string {
	if !u.Valid {
		return ""
	}
	v, err := u.Value()
	if err != nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// numericFloat converts a pgtype.Numeric to float64, zero when null.
func numericFloat(n pgtype.Numeric) float64 {
	if !n.Valid {
		return 0
	}
	v, err := n.Float64Value()
	if err != nil || !v.Valid {
		return 0
	}
	return v.Float64
}

// numericFloatPtr converts a pgtype.Numeric to *float64, nil when null.
func numericFloatPtr(n pgtype.Numeric) *float64 {
	if !n.Valid {
		return nil
	}
	v, err := n.Float64Value()
	if err != nil || !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

// textPtr converts a pgtype.Text to *string, nil when null.
func textPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}
