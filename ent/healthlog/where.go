// Code generated by ent, DO NOT EDIT.

package healthlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/snapjobs/snapjobs-back/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldLTE(FieldID, id))
}

// LogDate applies equality check predicate on the "log_date" field. It's identical to LogDateEQ.
func LogDate(v time.Time) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldEQ(FieldLogDate, v))
}

// TotalSeconds applies equality check predicate on the "total_seconds" field. It's identical to TotalSecondsEQ.
func TotalSeconds(v int) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldEQ(FieldTotalSeconds, v))
}

// TotalUptimeSeconds applies equality check predicate on the "total_uptime_seconds" field. It's identical to TotalUptimeSecondsEQ.
func TotalUptimeSeconds(v int) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldEQ(FieldTotalUptimeSeconds, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldEQ(FieldUpdatedAt, v))
}

// LogDateEQ applies the EQ predicate on the "log_date" field.
func LogDateEQ(v time.Time) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldEQ(FieldLogDate, v))
}

// LogDateNEQ applies the NEQ predicate on the "log_date" field.
func LogDateNEQ(v time.Time) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldNEQ(FieldLogDate, v))
}

// LogDateIn applies the In predicate on the "log_date" field.
func LogDateIn(vs ...time.Time) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldIn(FieldLogDate, vs...))
}

// LogDateNotIn applies the NotIn predicate on the "log_date" field.
func LogDateNotIn(vs ...time.Time) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldNotIn(FieldLogDate, vs...))
}

// LogDateGT applies the GT predicate on the "log_date" field.
func LogDateGT(v time.Time) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldGT(FieldLogDate, v))
}

// LogDateGTE applies the GTE predicate on the "log_date" field.
func LogDateGTE(v time.Time) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldGTE(FieldLogDate, v))
}

// LogDateLT applies the LT predicate on the "log_date" field.
func LogDateLT(v time.Time) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldLT(FieldLogDate, v))
}

// LogDateLTE applies the LTE predicate on the "log_date" field.
func LogDateLTE(v time.Time) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldLTE(FieldLogDate, v))
}

// TotalSecondsEQ applies the EQ predicate on the "total_seconds" field.
func TotalSecondsEQ(v int) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldEQ(FieldTotalSeconds, v))
}

// TotalSecondsNEQ applies the NEQ predicate on the "total_seconds" field.
func TotalSecondsNEQ(v int) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldNEQ(FieldTotalSeconds, v))
}

// TotalSecondsIn applies the In predicate on the "total_seconds" field.
func TotalSecondsIn(vs ...int) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldIn(FieldTotalSeconds, vs...))
}

// TotalSecondsNotIn applies the NotIn predicate on the "total_seconds" field.
func TotalSecondsNotIn(vs ...int) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldNotIn(FieldTotalSeconds, vs...))
}

// TotalSecondsGT applies the GT predicate on the "total_seconds" field.
func TotalSecondsGT(v int) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldGT(FieldTotalSeconds, v))
}

// TotalSecondsGTE applies the GTE predicate on the "total_seconds" field.
func TotalSecondsGTE(v int) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldGTE(FieldTotalSeconds, v))
}

// TotalSecondsLT applies the LT predicate on the "total_seconds" field.
func TotalSecondsLT(v int) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldLT(FieldTotalSeconds, v))
}

// TotalSecondsLTE applies the LTE predicate on the "total_seconds" field.
func TotalSecondsLTE(v int) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldLTE(FieldTotalSeconds, v))
}

// TotalUptimeSecondsEQ applies the EQ predicate on the "total_uptime_seconds" field.
func TotalUptimeSecondsEQ(v int) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldEQ(FieldTotalUptimeSeconds, v))
}

// TotalUptimeSecondsNEQ applies the NEQ predicate on the "total_uptime_seconds" field.
func TotalUptimeSecondsNEQ(v int) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldNEQ(FieldTotalUptimeSeconds, v))
}

// TotalUptimeSecondsIn applies the In predicate on the "total_uptime_seconds" field.
func TotalUptimeSecondsIn(vs ...int) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldIn(FieldTotalUptimeSeconds, vs...))
}

// TotalUptimeSecondsNotIn applies the NotIn predicate on the "total_uptime_seconds" field.
func TotalUptimeSecondsNotIn(vs ...int) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldNotIn(FieldTotalUptimeSeconds, vs...))
}

// TotalUptimeSecondsGT applies the GT predicate on the "total_uptime_seconds" field.
func TotalUptimeSecondsGT(v int) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldGT(FieldTotalUptimeSeconds, v))
}

// TotalUptimeSecondsGTE applies the GTE predicate on the "total_uptime_seconds" field.
func TotalUptimeSecondsGTE(v int) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldGTE(FieldTotalUptimeSeconds, v))
}

// TotalUptimeSecondsLT applies the LT predicate on the "total_uptime_seconds" field.
func TotalUptimeSecondsLT(v int) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldLT(FieldTotalUptimeSeconds, v))
}

// TotalUptimeSecondsLTE applies the LTE predicate on the "total_uptime_seconds" field.
func TotalUptimeSecondsLTE(v int) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldLTE(FieldTotalUptimeSeconds, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldNotIn(FieldStatus, vs...))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.HealthLog {
	return predicate.HealthLog(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.HealthLog) predicate.HealthLog {
	return predicate.HealthLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.HealthLog) predicate.HealthLog {
	return predicate.HealthLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.HealthLog) predicate.HealthLog {
	return predicate.HealthLog(sql.NotPredicates(p))
}
