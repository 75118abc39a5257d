// package models defines the data model for the employee analysis dashboard
package models

import (
	"math"
	"sort"
	"strings"
	"time"
)

// CSV column names the remote dataset is required to carry.
const (
	ColEmployeeID    = "Employee_ID"
	ColHometown      = "Hometown"
	ColUnit          = "Unit"
	ColAge           = "Age"
	ColAttritionRate = "Attrition_rate"
	ColTimeOfService = "Time_of_service"
)

// RequiredColumns lists the columns a source file must contain, in export order.
var RequiredColumns = []string{
	ColEmployeeID,
	ColHometown,
	ColUnit,
	ColAge,
	ColAttritionRate,
	ColTimeOfService,
}

// Employee is one row of the dataset. Missing numeric values are NaN.
type Employee struct {
	ID            string
	Hometown      string
	Unit          string
	Age           float64
	AttritionRate float64
	TimeOfService float64
}

// Dataset holds the parsed rows plus source metadata.
type Dataset struct {
	Rows      []Employee
	Source    string
	FetchedAt time.Time
}

// Len returns the number of rows.
func (d *Dataset) Len() int { return len(d.Rows) }

// Hometowns returns the distinct hometown values in sorted order.
func (d *Dataset) Hometowns() []string {
	return distinct(d.Rows, func(e Employee) string { return e.Hometown })
}

// Units returns the distinct unit values in sorted order.
func (d *Dataset) Units() []string {
	return distinct(d.Rows, func(e Employee) string { return e.Unit })
}

func distinct(rows []Employee, key func(Employee) string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, row := range rows {
		k := key(row)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// MatchID reports whether the employee ID contains query, case-insensitively.
func (e Employee) MatchID(query string) bool {
	return strings.Contains(strings.ToLower(e.ID), strings.ToLower(query))
}

// HasAge reports whether the row carries an age value.
func (e Employee) HasAge() bool { return !math.IsNaN(e.Age) }
