// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Appointment is the predicate function for appointment builders.
type Appointment func(*sql.Selector)

// Customer is the predicate function for customer builders.
type Customer func(*sql.Selector)

// Employee is the predicate function for employee builders.
type Employee func(*sql.Selector)

// Issue is the predicate function for issue builders.
type Issue func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// Part is the predicate function for part builders.
type Part func(*sql.Selector)

// ServiceCatalogItem is the predicate function for servicecatalogitem builders.
type ServiceCatalogItem func(*sql.Selector)

// ServiceRecord is the predicate function for servicerecord builders.
type ServiceRecord func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// Vehicle is the predicate function for vehicle builders.
type Vehicle func(*sql.Selector)
