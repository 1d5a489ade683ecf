// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Example is the predicate function for example builders.
type Example func(*sql.Selector)

// Extraction is the predicate function for extraction builders.
type Extraction func(*sql.Selector)

// Processor is the predicate function for processor builders.
type Processor func(*sql.Selector)
