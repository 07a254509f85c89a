// Package query composes list and search filters for directory records.
//
// A Predicate is an AND of conditions; each condition matches one term, case-insensitively
// and as a literal substring, against any of its fields. Predicates do no I/O: Scope applies
// them to a gorm query and Match evaluates them against a loaded record.
package query

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Field is a filterable column.
type Field struct {
	Name   string
	Column string
	// Serialized fields hold JSON; they are matched against their text encoding.
	Serialized bool
}

func (f Field) expr() string {
	if f.Serialized {
		return fmt.Sprintf("LOWER(CAST(%s AS TEXT))", f.Column)
	}
	return fmt.Sprintf("LOWER(%s)", f.Column)
}

// Valuer exposes the text of a record's fields.
type Valuer interface {
	FieldValue(field string) string
}

type condition struct {
	term   string
	fields []Field
}

type Predicate struct {
	conds []condition
}

// And returns p with an additional condition. Blank terms leave p unchanged.
func (p Predicate) And(term string, fields ...Field) Predicate {
	term = strings.TrimSpace(term)
	if term == "" || len(fields) == 0 {
		return p
	}
	conds := make([]condition, len(p.conds), len(p.conds)+1)
	copy(conds, p.conds)
	p.conds = append(conds, condition{term: term, fields: fields})
	return p
}

// Empty reports whether p matches everything.
func (p Predicate) Empty() bool { return len(p.conds) == 0 }

// Terms returns the terms of p in the order they were added.
func (p Predicate) Terms() []string {
	out := make([]string, len(p.conds))
	for i, c := range p.conds {
		out[i] = c.term
	}
	return out
}

// Scope adds p's conditions to db as WHERE clauses.
func (p Predicate) Scope(db *gorm.DB) *gorm.DB {
	for _, c := range p.conds {
		pattern := "%" + escapeLike(strings.ToLower(c.term)) + "%"
		parts := make([]string, len(c.fields))
		args := make([]interface{}, len(c.fields))
		for i, f := range c.fields {
			parts[i] = f.expr() + ` LIKE ? ESCAPE '\'`
			args[i] = pattern
		}
		db = db.Where("("+strings.Join(parts, " OR ")+")", args...)
	}
	return db
}

// Match evaluates p against r.
func (p Predicate) Match(r Valuer) bool {
	for _, c := range p.conds {
		term := strings.ToLower(c.term)
		matched := false
		for _, f := range c.fields {
			if strings.Contains(strings.ToLower(r.FieldValue(f.Name)), term) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }
