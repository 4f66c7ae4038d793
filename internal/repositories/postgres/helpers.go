package postgres

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique_violation
const uniqueViolation = "23505"

// isUniqueViolation reports whether err was raised by a unique index
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}
	return false
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns a plain substring into a LIKE pattern.
// Wildcards in s are matched literally.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// setClause accumulates "column = $n" fragments for partial updates
type setClause struct {
	parts []string
	args  []interface{}
}

func (s *setClause) add(column string, value interface{}) {
	s.args = append(s.args, value)
	s.parts = append(s.parts, fmt.Sprintf("%s = $%d", column, len(s.args)))
}

// build appends updated_at and the WHERE id placeholder and returns the statement
func (s *setClause) build(table string, id int64) (string, []interface{}) {
	s.add("updated_at", time.Now())
	s.args = append(s.args, id)
	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $%d AND deleted = FALSE",
		table, strings.Join(s.parts, ", "), len(s.args),
	)
	return query, s.args
}
